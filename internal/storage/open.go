// internal/storage/open.go
package storage

import (
	"cardhawk/internal/storage/memory"
	"cardhawk/internal/storage/postgres"
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// Open returns the preference store for backend. The close func is never nil.
func Open(ctx context.Context, backend, dsn string) (PreferenceStorage, func(), error) {
	switch backend {
	case BackendMemory:
		slog.Warn("Using in-memory storage, preferences are lost on restart")
		return memory.New(), func() {}, nil
	case BackendPostgres, "":
		pool, err := pgxpool.New(ctx, dsn)
		if err != nil {
			return nil, func() {}, fmt.Errorf("connect to db: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, func() {}, fmt.Errorf("ping db: %w", err)
		}
		return postgres.NewStorage(pool), pool.Close, nil
	default:
		return nil, func() {}, fmt.Errorf("unknown storage backend %q", backend)
	}
}
