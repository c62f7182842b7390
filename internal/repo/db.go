// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file contains database bootstrapping helpers: driver
// selection from a DATABASE_URL-style DSN, SQLite PRAGMAs, pool sizing,
// tracing and schema migrations.
package repo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"

	"github.com/tbourn/transport-edu-backend/internal/domain"
)

// DefaultDSN is used when no DATABASE_URL is configured: a local SQLite file.
const DefaultDSN = "sqlite://app.db"

// ErrUnsupportedDSN is returned by Open for URL schemes it cannot serve.
var ErrUnsupportedDSN = errors.New("unsupported database url")

// Options tune connection handling for Open.
type Options struct {
	// MaxOpenConns caps the pool; zero keeps the driver default of 10.
	MaxOpenConns int
	// Silent disables GORM's SQL logger.
	Silent bool
	// Tracing registers the OpenTelemetry GORM plugin.
	Tracing bool
}

// Open selects a driver from dsn and returns a ready *gorm.DB.
//
// Accepted forms:
//   - "", "sqlite://path", "sqlite:///path" or "file:..." → SQLite (pure Go)
//   - "postgres://..." or "postgresql://..." or a key=value Postgres DSN → Postgres
func Open(dsn string, opts Options) (*gorm.DB, error) {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		dsn = DefaultDSN
	}

	var (
		db  *gorm.DB
		err error
	)
	switch {
	case strings.HasPrefix(dsn, "sqlite://"):
		db, err = OpenSQLite(sqlitePath(dsn), opts)
	case strings.HasPrefix(dsn, "file:"):
		db, err = OpenSQLite(dsn, opts)
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"),
		strings.Contains(dsn, "host="):
		db, err = OpenPostgres(dsn, opts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, redactDSN(dsn))
	}
	if err != nil {
		return nil, err
	}

	if opts.Tracing {
		if err := db.Use(tracing.NewPlugin()); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// OpenSQLite opens (or creates) a SQLite database and applies PRAGMAs.
func OpenSQLite(path string, opts Options) (*gorm.DB, error) {
	// Fail early if parent directory does not exist (instead of sqlite "out of memory (14)" on Windows).
	if !strings.HasPrefix(path, "file:") {
		if dir := filepath.Dir(path); dir != "." {
			if _, err := os.Stat(dir); err != nil {
				return nil, err
			}
		}
	}

	db, err := gorm.Open(sqlite.Open(path), gormConfig(opts))
	if err != nil {
		return nil, err
	}

	// PRAGMAs
	db.Exec("PRAGMA journal_mode=WAL;")
	db.Exec("PRAGMA synchronous=NORMAL;")
	db.Exec("PRAGMA foreign_keys=ON;")
	db.Exec("PRAGMA busy_timeout=5000;")

	configurePool(db, opts)
	return db, nil
}

// OpenPostgres connects to a PostgreSQL server.
func OpenPostgres(dsn string, opts Options) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), gormConfig(opts))
	if err != nil {
		return nil, err
	}
	configurePool(db, opts)
	return db, nil
}

// AutoMigrate ensures every table and index exists. Safe to call repeatedly;
// a failure here is fatal at startup.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Bookmark{},
		&domain.LearningProgress{},
		&domain.QuizResult{},
		&domain.SearchLog{},
		&domain.Idempotency{},
	)
}

// Ping checks that the underlying connection pool can reach the database.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Dialect returns the short driver name ("sqlite" or "postgres").
func Dialect(db *gorm.DB) string {
	return db.Dialector.Name()
}

func gormConfig(opts Options) *gorm.Config {
	cfg := &gorm.Config{NowFunc: func() time.Time { return time.Now().UTC() }}
	if opts.Silent {
		cfg.Logger = logger.Default.LogMode(logger.Silent)
	}
	return cfg
}

func configurePool(db *gorm.DB, opts Options) {
	n := opts.MaxOpenConns
	if n <= 0 {
		n = 10
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(n)
		sqlDB.SetMaxIdleConns(n)
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}
}

// sqlitePath follows the SQLAlchemy URL convention: "sqlite:///app.db" is
// relative, "sqlite:////var/app.db" is absolute. "sqlite://app.db" is accepted too.
func sqlitePath(dsn string) string {
	p := strings.TrimPrefix(dsn, "sqlite://")
	p = strings.TrimPrefix(p, "/")
	if p == "" {
		return "app.db"
	}
	return p
}

// redactDSN hides credentials in error messages.
func redactDSN(dsn string) string {
	if at := strings.LastIndex(dsn, "@"); at >= 0 {
		if scheme := strings.Index(dsn, "://"); scheme >= 0 && scheme < at {
			return dsn[:scheme+3] + "***" + dsn[at:]
		}
	}
	return dsn
}
