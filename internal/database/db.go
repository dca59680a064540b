// Package database opens the MySQL connection the portal records are
// published to.
package database

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"
	"time"

	"github.com/avast/retry-go"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/mvzaanen/N-uu-conversion/internal/config"
)

// DSN returns the MySQL data source name for cfg.
func DSN(cfg config.DatabaseConfig) string {
	mysqlCfg := mysql.NewConfig()
	mysqlCfg.User = cfg.Username
	mysqlCfg.Passwd = cfg.Password
	mysqlCfg.Net = "tcp"
	mysqlCfg.Addr = fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	mysqlCfg.DBName = cfg.Database
	mysqlCfg.ParseTime = true
	mysqlCfg.MultiStatements = true
	// Portal records carry clicks and IPA.
	mysqlCfg.Collation = "utf8mb4_unicode_ci"
	if cfg.TLS {
		mysqlCfg.TLSConfig = "true"
	}
	if len(cfg.Params) > 0 {
		mysqlCfg.Params = cfg.Params
	}
	return mysqlCfg.FormatDSN()
}

// Open opens a MySQL connection pool using the provided config. No
// connection is made until the pool is used.
func Open(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("mysql", DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("sqlx.Open() > %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)
	}

	return db, nil
}

// Connect opens the pool and pings the server, retrying up to
// cfg.RetryAttempts times while it is unreachable.
func Connect(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*sqlx.DB, error) {
	if logger == nil {
		logger = slog.Default()
	}
	db, err := Open(cfg)
	if err != nil {
		return nil, err
	}

	if err := retry.Do(
		func() error {
			return db.PingContext(ctx)
		},
		retry.Context(ctx),
		retry.Attempts(cfg.RetryAttempts+1),
		retry.Delay(time.Second),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			logger.Warn("database is not reachable", "attempt", n+1, "addr", fmt.Sprintf("%s:%d", cfg.Host, cfg.Port), "error", err)
		}),
	); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db.PingContext() > %w", err)
	}
	return db, nil
}

// Migrate runs every .sql file of migrations in name order.
func Migrate(ctx context.Context, db *sqlx.DB, migrations fs.FS) error {
	names, err := fs.Glob(migrations, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("fs.Glob() > %w", err)
	}
	sort.Strings(names)
	for _, name := range names {
		statements, err := fs.ReadFile(migrations, name)
		if err != nil {
			return fmt.Errorf("fs.ReadFile(%s) > %w", name, err)
		}
		if _, err := db.ExecContext(ctx, string(statements)); err != nil {
			return fmt.Errorf("db.ExecContext(%s) > %w", name, err)
		}
	}
	return nil
}
