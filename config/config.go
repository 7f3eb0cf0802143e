package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"

	"todo-api/internal/todo/repository"
	"todo-api/pkg/database"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Storage
	Repository RepositoryConfig
	Database   DatabaseConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
	TrustedProxies  []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	RequestsPerMin int
}

// RepositoryConfig picks the todo storage backend: "memory" or "database".
type RepositoryConfig struct {
	Backend string
}

type DatabaseConfig struct {
	Driver          string
	Host            string
	Port            int
	Name            string
	User            string
	Password        string
	SSLMode         string
	AutoMigrate     bool
	LogSQL          bool
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, . and /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = v.GetDuration("http_server.shutdown_timeout")
	cfg.HTTPServer.TrustedProxies = v.GetStringSlice("http_server.trusted_proxies")
	if port := v.GetInt("port"); port != 0 {
		cfg.HTTPServer.Port = port
	}
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")

	// Storage
	cfg.Repository.Backend = v.GetString("repository.backend")

	cfg.Database.Driver = v.GetString("database.driver")
	cfg.Database.Host = v.GetString("database.host")
	cfg.Database.Port = v.GetInt("database.port")
	cfg.Database.Name = v.GetString("database.name")
	cfg.Database.User = v.GetString("database.user")
	cfg.Database.Password = v.GetString("database.password")
	cfg.Database.SSLMode = v.GetString("database.sslmode")
	cfg.Database.AutoMigrate = v.GetBool("database.auto_migrate")
	cfg.Database.LogSQL = v.GetBool("database.log_sql")
	cfg.Database.MaxOpenConns = v.GetInt("database.max_open_conns")
	cfg.Database.MaxIdleConns = v.GetInt("database.max_idle_conns")
	cfg.Database.ConnMaxLifetime = v.GetDuration("database.conn_max_lifetime")

	// Flat DB_* variables from the .env files of earlier deployments win.
	if driver := v.GetString("db_driver"); driver != "" {
		cfg.Database.Driver = driver
	}
	if host := v.GetString("db_host"); host != "" {
		cfg.Database.Host = host
	}
	if name := v.GetString("db_name"); name != "" {
		cfg.Database.Name = name
	}
	if user := v.GetString("db_user"); user != "" {
		cfg.Database.User = user
	}
	if pass := v.GetString("db_pass"); pass != "" {
		cfg.Database.Password = pass
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the service cannot start with.
func (c *Config) Validate() error {
	backend, err := repository.ParseBackend(c.Repository.Backend)
	if err != nil {
		return err
	}
	c.Repository.Backend = string(backend)

	if backend == repository.BackendDatabase && !database.IsSupportedDriver(c.Database.Driver) {
		return fmt.Errorf("%w: %q", database.ErrUnsupportedDriver, c.Database.Driver)
	}
	switch c.HTTPServer.Mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return fmt.Errorf("invalid http_server.mode %q", c.HTTPServer.Mode)
	}
	if c.HTTPServer.Port <= 0 {
		return fmt.Errorf("invalid http_server.port %d", c.HTTPServer.Port)
	}
	return nil
}

// DatabaseOptions converts the database section into pkg/database settings.
func (c *Config) DatabaseOptions() database.Config {
	return database.Config{
		Driver:          c.Database.Driver,
		Host:            c.Database.Host,
		Port:            c.Database.Port,
		Name:            c.Database.Name,
		User:            c.Database.User,
		Password:        c.Database.Password,
		SSLMode:         c.Database.SSLMode,
		MaxOpenConns:    c.Database.MaxOpenConns,
		MaxIdleConns:    c.Database.MaxIdleConns,
		ConnMaxLifetime: c.Database.ConnMaxLifetime,
		LogSQL:          c.Database.LogSQL,
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 3000)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.shutdown_timeout", "10s")
	v.SetDefault("http_server.trusted_proxies", []string{})
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "development")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.requests_per_min", 0)

	// Storage defaults
	v.SetDefault("repository.backend", string(repository.BackendMemory))
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("database.log_sql", false)
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
}
