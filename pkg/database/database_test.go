package database_test

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"testing"

	"todo-api/pkg/database"
	"todo-api/pkg/log"
)

// recordingLogger keeps the formatted Info lines and the request id each was logged with.
type recordingLogger struct {
	mu      sync.Mutex
	entries []string
	ids     []string
}

func (r *recordingLogger) record(ctx context.Context, format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, fmt.Sprintf(format, args...))
	r.ids = append(r.ids, log.RequestIDFromContext(ctx))
}

func (r *recordingLogger) Debug(ctx context.Context, args ...any)                 {}
func (r *recordingLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (r *recordingLogger) Info(ctx context.Context, args ...any)                  {}
func (r *recordingLogger) Infof(ctx context.Context, format string, args ...any) {
	r.record(ctx, format, args...)
}
func (r *recordingLogger) Warn(ctx context.Context, args ...any) {}
func (r *recordingLogger) Warnf(ctx context.Context, format string, args ...any) {
	r.record(ctx, format, args...)
}
func (r *recordingLogger) Error(ctx context.Context, args ...any) {}
func (r *recordingLogger) Errorf(ctx context.Context, format string, args ...any) {
	r.record(ctx, format, args...)
}
func (r *recordingLogger) DPanic(ctx context.Context, args ...any)                 {}
func (r *recordingLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (r *recordingLogger) Panic(ctx context.Context, args ...any)                  {}
func (r *recordingLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (r *recordingLogger) Fatal(ctx context.Context, args ...any)                  {}
func (r *recordingLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func TestDialector(t *testing.T) {
	cases := []struct {
		driver string
		name   string
	}{
		{database.DriverPostgres, "postgres"},
		{"POSTGRES", "postgres"},
		{database.DriverMySQL, "mysql"},
		{database.DriverMariaDB, "mysql"},
		{database.DriverSQLServer, "sqlserver"},
		{database.DriverMSSQL, "sqlserver"},
		{database.DriverSQLite, "sqlite"},
	}

	for _, tc := range cases {
		t.Run(tc.driver, func(t *testing.T) {
			d, err := database.Dialector(database.Config{Driver: tc.driver, Host: "localhost", Name: "todos"})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if d.Name() != tc.name {
				t.Errorf("expected dialector %s, got %s", tc.name, d.Name())
			}
		})
	}
}

func TestUnsupportedDriver(t *testing.T) {
	for _, driver := range []string{"", "oracle", "mongodb"} {
		if database.IsSupportedDriver(driver) {
			t.Errorf("driver %q must not be supported", driver)
		}
		if _, err := database.Open(database.Config{Driver: driver}); !errors.Is(err, database.ErrUnsupportedDriver) {
			t.Errorf("driver %q: expected ErrUnsupportedDriver, got %v", driver, err)
		}
	}
}

func TestOpenSQLite(t *testing.T) {
	db, err := database.Open(database.Config{Driver: database.DriverSQLite, Name: ":memory:", MaxOpenConns: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer database.Close(db)

	var one int
	if err := db.Raw("SELECT 1").Scan(&one).Error; err != nil {
		t.Fatalf("query: %v", err)
	}
	if one != 1 {
		t.Errorf("expected 1, got %d", one)
	}
}

func TestSQLLogging(t *testing.T) {
	query := func(t *testing.T, logSQL bool) *recordingLogger {
		t.Helper()
		rec := &recordingLogger{}
		db, err := database.Open(database.Config{
			Driver:       database.DriverSQLite,
			Name:         ":memory:",
			MaxOpenConns: 1,
			LogSQL:       logSQL,
			Logger:       rec,
		})
		if err != nil {
			t.Fatalf("open: %v", err)
		}
		defer database.Close(db)

		ctx := log.WithRequestID(context.Background(), "req-42")
		var one int
		if err := db.WithContext(ctx).Raw("SELECT 1").Scan(&one).Error; err != nil {
			t.Fatalf("query: %v", err)
		}
		return rec
	}

	t.Run("Enabled", func(t *testing.T) {
		rec := query(t, true)

		found := false
		for i, entry := range rec.entries {
			if strings.Contains(entry, "SELECT 1") {
				found = true
				if rec.ids[i] != "req-42" {
					t.Errorf("expected request id req-42, got %q", rec.ids[i])
				}
			}
		}
		if !found {
			t.Errorf("expected SELECT 1 in logged statements, got %v", rec.entries)
		}
	})

	t.Run("Disabled", func(t *testing.T) {
		rec := query(t, false)
		if len(rec.entries) != 0 {
			t.Errorf("expected no SQL lines, got %v", rec.entries)
		}
	})
}

func TestDSNEscapesCredentials(t *testing.T) {
	cfg := database.Config{
		Host:     "db.internal",
		Port:     6543,
		Name:     "todos",
		User:     "app user",
		Password: `p@ss w'rd/?#`,
	}

	cases := []struct {
		name   string
		dsn    string
		scheme string
	}{
		{"Postgres", database.PostgresDSN(cfg), "postgres"},
		{"SQL Server", database.SQLServerDSN(cfg), "sqlserver"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u, err := url.Parse(tc.dsn)
			if err != nil {
				t.Fatalf("parse %q: %v", tc.dsn, err)
			}
			if u.Scheme != tc.scheme {
				t.Errorf("expected scheme %s, got %s", tc.scheme, u.Scheme)
			}
			if u.User.Username() != cfg.User {
				t.Errorf("expected user %q, got %q", cfg.User, u.User.Username())
			}
			if pass, _ := u.User.Password(); pass != cfg.Password {
				t.Errorf("expected password %q, got %q", cfg.Password, pass)
			}
			if u.Host != "db.internal:6543" {
				t.Errorf("unexpected host %q", u.Host)
			}
		})
	}

	t.Run("Postgres Defaults", func(t *testing.T) {
		u, err := url.Parse(database.PostgresDSN(database.Config{Host: "localhost", Name: "todos"}))
		if err != nil {
			t.Fatalf("parse: %v", err)
		}
		if u.Port() != "5432" || u.Path != "/todos" || u.Query().Get("sslmode") != "disable" {
			t.Errorf("unexpected defaults in %s", u)
		}
	})
}
