package database

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"todo-api/pkg/log"
)

// Supported SQL drivers.
const (
	DriverPostgres  = "postgres"
	DriverMySQL     = "mysql"
	DriverMariaDB   = "mariadb"
	DriverSQLite    = "sqlite"
	DriverSQLServer = "sqlserver"
	DriverMSSQL     = "mssql"
)

var ErrUnsupportedDriver = errors.New("invalid or missing database driver")

// Config holds the connection parameters of the relational backend.
type Config struct {
	Driver   string
	Host     string
	Port     int
	Name     string
	User     string
	Password string
	SSLMode  string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration

	// LogSQL logs every statement through Logger.
	LogSQL bool
	Logger log.Logger
}

// IsSupportedDriver reports whether driver can be opened by Open.
func IsSupportedDriver(driver string) bool {
	switch strings.ToLower(driver) {
	case DriverPostgres, DriverMySQL, DriverMariaDB, DriverSQLite, DriverSQLServer, DriverMSSQL:
		return true
	default:
		return false
	}
}

// Dialector builds the GORM dialector for cfg.Driver.
func Dialector(cfg Config) (gorm.Dialector, error) {
	switch strings.ToLower(cfg.Driver) {
	case DriverPostgres:
		return postgres.Open(PostgresDSN(cfg)), nil
	case DriverMySQL, DriverMariaDB:
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.User, cfg.Password, cfg.Host, portOr(cfg.Port, 3306), cfg.Name)
		return mysql.Open(dsn), nil
	case DriverSQLServer, DriverMSSQL:
		return sqlserver.Open(SQLServerDSN(cfg)), nil
	case DriverSQLite:
		// Name is the database file; ":memory:" is accepted.
		return sqlite.Open(cfg.Name), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// PostgresDSN builds a postgres:// URL with credentials escaped.
func PostgresDSN(cfg Config) string {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, strconv.Itoa(portOr(cfg.Port, 5432))),
		Path:     "/" + cfg.Name,
		RawQuery: url.Values{"sslmode": {sslMode}}.Encode(),
	}
	return u.String()
}

// SQLServerDSN builds a sqlserver:// URL with credentials escaped.
func SQLServerDSN(cfg Config) string {
	u := url.URL{
		Scheme:   "sqlserver",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, strconv.Itoa(portOr(cfg.Port, 1433))),
		RawQuery: url.Values{"database": {cfg.Name}}.Encode(),
	}
	return u.String()
}

// Open connects to the configured database and applies the pool settings.
func Open(cfg Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	logLevel := gormLogger.Silent
	if cfg.LogSQL {
		logLevel = gormLogger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: NewGormLogger(cfg.Logger, logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	return db, nil
}

// Close releases the connection pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func portOr(port, fallback int) int {
	if port > 0 {
		return port
	}
	return fallback
}
