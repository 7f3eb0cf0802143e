package httpserver

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"todo-api/internal/middleware"
	"todo-api/internal/todo/repository"
	"todo-api/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration
	trustedProxies  []string
	middleware      middleware.Config

	// Todo domain
	todoRepo repository.Repository

	// Optional: probed by /ready when the database backend is in use.
	db *gorm.DB
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration
	// TrustedProxies lists the proxies whose forwarding headers are honoured.
	// Empty means the socket peer is always the client.
	TrustedProxies []string
	Middleware     middleware.Config

	// Todo domain
	TodoRepository repository.Repository

	DB *gorm.DB
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	srv := &HTTPServer{
		l:               logger,
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		trustedProxies:  cfg.TrustedProxies,
		middleware:      cfg.Middleware,
		todoRepo:        cfg.TodoRepository,
		db:              cfg.DB,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	gin.SetMode(srv.mode)
	srv.gin = gin.New()
	if err := srv.gin.SetTrustedProxies(srv.trustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

// Handler exposes the gin engine, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if !IsValidMode(srv.mode) {
		return fmt.Errorf("unknown gin mode %q", srv.mode)
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.todoRepo == nil {
		return errors.New("todo repository is required")
	}
	return nil
}

// IsValidMode reports whether mode is one gin.SetMode accepts.
func IsValidMode(mode string) bool {
	switch mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		return true
	default:
		return false
	}
}
