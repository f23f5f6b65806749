package store

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	pool *pgxpool.Pool
	once sync.Once
)

// InitDB opens the session database pool from DATABASE_URL. Safe to call
// more than once; only the first call connects. The ICU workflow runs on a
// handful of concurrent editors, so the pool stays small.
func InitDB(ctx context.Context) error {
	var err error
	once.Do(func() {
		dbURL := os.Getenv("DATABASE_URL")
		if dbURL == "" {
			err = fmt.Errorf("DATABASE_URL environment variable not set")
			return
		}

		config, parseErr := pgxpool.ParseConfig(dbURL)
		if parseErr != nil {
			err = fmt.Errorf("failed to parse database config: %w", parseErr)
			return
		}
		if config.MaxConns > 8 {
			config.MaxConns = 8
		}
		config.MaxConnIdleTime = 5 * time.Minute

		pool, err = pgxpool.NewWithConfig(ctx, config)
		if err == nil {
			fmt.Printf("[STORE] Session database connected\n")
		}
	})
	return err
}

// GetPool returns the session database pool, nil when storage is not
// configured.
func GetPool() *pgxpool.Pool {
	return pool
}

// Close closes the session database pool.
func Close() {
	if pool != nil {
		pool.Close()
	}
}
