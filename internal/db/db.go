package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/vaughan-dsouza/salesdesk/internal/config"
)

const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// Connect opens the pool described by cfg, checks connectivity and applies
// pending migrations.
func Connect(ctx context.Context, cfg config.Database) (*sqlx.DB, error) {
	db, err := open(cfg)
	if err != nil {
		return nil, err
	}

	// ---- Connection Pool Settings ----
	db.SetMaxOpenConns(cfg.MaxOpen)
	db.SetMaxIdleConns(cfg.MaxIdle)
	db.SetConnMaxLifetime(cfg.MaxLifetime)

	// ---- Connectivity Check ----
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("db: failed to connect to %s: %w", cfg.Driver, err)
	}

	// ---- Health Check Query ----
	var tmp int
	if err := db.QueryRowContext(ctx, "SELECT 1").Scan(&tmp); err != nil {
		db.Close()
		return nil, fmt.Errorf("db: health check failed: %w", err)
	}

	if err := Migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func open(cfg config.Database) (*sqlx.DB, error) {
	switch cfg.Driver {
	case DriverPostgres:
		// Parse DSN → pgx config struct
		pgCfg, err := pgx.ParseConfig(cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("db: failed to parse DSN: %w", err)
		}

		// Fail fast on startup if PG is unreachable
		pgCfg.ConnectTimeout = 5 * time.Second

		return sqlx.NewDb(stdlib.OpenDB(*pgCfg), DriverPostgres), nil
	case DriverSQLite:
		db, err := sqlx.Open(DriverSQLite, cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("db: failed to open sqlite: %w", err)
		}
		return db, nil
	default:
		return nil, fmt.Errorf("db: unsupported driver %q", cfg.Driver)
	}
}
