package infra

import (
	"context"
	"fmt"
	"time"

	"github.com/Vovarama1992/showcase/internal/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPgxPool opens the pool and checks the store answers before the server starts.
func NewPgxPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("cannot create pgxpool (%s): %w", cfg.SafeDSN(), err)
	}

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(ctxPing); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping failed (%s): %w", cfg.SafeDSN(), err)
	}

	return pool, nil
}
