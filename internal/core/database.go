// Package core owns the PostgreSQL connection pool and one-time schema
// setup. Repositories built on the pool live in core/repository.
package core

import (
	"context"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog/log"

	"github.com/sentinelshield/shield/config"
	"github.com/sentinelshield/shield/internal/core/migrations"
)

// Connect opens a pgx pool for cfg.URL and verifies it with a ping.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	var version string
	if err := pool.QueryRow(ctx, `SELECT version()`).Scan(&version); err == nil {
		log.Debug().Str("version", version).Msg("Database connected")
	}

	return pool, nil
}

// Initializer applies migrations and, optionally, seed data exactly once per
// process. Run is safe to call from several goroutines; later calls return
// the first result.
type Initializer struct {
	once sync.Once
	err  error

	migrate func(ctx context.Context) error
	seed    func(ctx context.Context) error
}

// NewInitializer returns an Initializer for pool. When seed is false only
// migrations run.
func NewInitializer(pool *pgxpool.Pool, seed bool) *Initializer {
	in := &Initializer{
		migrate: func(ctx context.Context) error { return Migrate(ctx, pool) },
	}
	if seed {
		in.seed = NewSeeder(pool).Seed
	}
	return in
}

// Run performs initialization on the first call.
func (in *Initializer) Run(ctx context.Context) error {
	in.once.Do(func() {
		if err := in.migrate(ctx); err != nil {
			in.err = fmt.Errorf("migrate: %w", err)
			return
		}
		log.Info().Msg("Database tables initialized successfully")

		if in.seed == nil {
			return
		}
		if err := in.seed(ctx); err != nil {
			in.err = fmt.Errorf("seed: %w", err)
			return
		}
		log.Info().Msg("Database seeded successfully with sample data")
	})
	return in.err
}

// Migrate applies the embedded goose migrations through a database/sql
// handle backed by pool.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}
