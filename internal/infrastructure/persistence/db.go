package persistence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/DanielPopoola/paypal-payment-gateway/db"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/config"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DB struct {
	Pool   *pgxpool.Pool
	logger *slog.Logger
}

// Connect establishes a connection to the PostgreSQL database using the provided configuration.
// It creates a connection pool with the specified settings and verifies connectivity by pinging the database.
func Connect(ctx context.Context, cfg *config.DatabaseConfig, logger *slog.Logger) (*DB, error) {
	pgxCfg, err := cfg.PgxConfig(ctx)
	if err != nil {
		logger.Error("failed to build pgx config", "error", err)
		return nil, err
	}

	logger.Info("connecting to database",
		"host", cfg.Host,
		"port", cfg.Port,
		"database", cfg.Name,
	)

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		logger.Error("failed to create connection pool", "error", err)
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		logger.Error("failed to ping database", "error", err)
		pool.Close()
		return nil, err
	}

	logger.Info("successfully connected to database",
		"max_conns", pgxCfg.MaxConns,
		"min_conns", pgxCfg.MinConns,
	)

	return &DB{
		Pool:   pool,
		logger: logger,
	}, nil
}

// Migrate applies the embedded schema. Every script is idempotent.
func (d *DB) Migrate(ctx context.Context) error {
	scripts, err := db.UpMigrations()
	if err != nil {
		return fmt.Errorf("read migrations: %w", err)
	}

	for i, script := range scripts {
		if _, err := d.Pool.Exec(ctx, script); err != nil {
			return fmt.Errorf("execute migration %d: %w", i+1, err)
		}
	}

	d.logger.Info("database migrations applied", "count", len(scripts))
	return nil
}

func (d *DB) Close() {
	d.logger.Info("closing database connection pool")
	d.Pool.Close()
}

// IsUniqueViolation checks if the given error is a PostgreSQL unique constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
