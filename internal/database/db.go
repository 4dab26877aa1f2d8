// Package database provides read-only connections to word list databases.
package database

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/avast/retry-go"
	"github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/at-ishikawa/letterquiz/internal/config"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

var pingDelay = 500 * time.Millisecond

// DataSourceName builds the DSN of cfg.Driver. SQLite files are opened read-only.
func DataSourceName(cfg config.DatabaseConfig) (string, error) {
	switch cfg.Driver {
	case DriverMySQL:
		mysqlCfg := mysql.NewConfig()
		mysqlCfg.User = cfg.Username
		mysqlCfg.Passwd = cfg.Password
		mysqlCfg.Net = "tcp"
		mysqlCfg.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
		mysqlCfg.DBName = cfg.Database
		mysqlCfg.ParseTime = true
		if cfg.TLS {
			mysqlCfg.TLSConfig = "true"
		}
		if len(cfg.Params) > 0 {
			mysqlCfg.Params = cfg.Params
		}
		return mysqlCfg.FormatDSN(), nil

	case DriverPostgres:
		query := url.Values{}
		query.Set("sslmode", "disable")
		if cfg.TLS {
			query.Set("sslmode", "require")
		}
		for key, value := range cfg.Params {
			query.Set(key, value)
		}
		dsn := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(cfg.Username, cfg.Password),
			Host:     net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
			Path:     "/" + cfg.Database,
			RawQuery: query.Encode(),
		}
		return dsn.String(), nil

	case DriverSQLite:
		query := url.Values{}
		query.Set("mode", "ro")
		for key, value := range cfg.Params {
			query.Set(key, value)
		}
		return "file:" + cfg.Path + "?" + query.Encode(), nil
	}
	return "", fmt.Errorf("unsupported database driver %q", cfg.Driver)
}

// Open opens a connection pool without connecting
func Open(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	dsn, err := DataSourceName(cfg)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(cfg.Driver, dsn)
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

// Connect opens a connection pool and pings it, retrying with backoff
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*sqlx.DB, error) {
	db, err := Open(cfg)
	if err != nil {
		return nil, err
	}
	if err := ping(ctx, db, cfg.ConnectAttempts); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func ping(ctx context.Context, db *sqlx.DB, attempts uint) error {
	if attempts == 0 {
		attempts = 1
	}
	if err := retry.Do(
		func() error {
			return db.PingContext(ctx)
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(pingDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			slog.Default().Warn("failed to ping the database",
				slog.Uint64("attempt", uint64(n+1)),
				slog.Any("error", err),
			)
		}),
	); err != nil {
		return fmt.Errorf("db.PingContext() > %w", err)
	}
	return nil
}
