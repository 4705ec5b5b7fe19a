package kvstore

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eliozeb/dinner-sharing-app/internal/domain"
)

type postgresStore struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgres returns a Store backed by the kv_entries table.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Store {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresStore{pool: pool, logger: logger}
}

func (s *postgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	const q = `
SELECT value
FROM kv_entries
WHERE key = $1
`
	var value []byte
	if err := s.pool.QueryRow(ctx, q, key).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		s.logger.Printf("kvstore: get key=%s error=%v", key, err)
		return nil, err
	}
	return value, nil
}

func (s *postgresStore) Set(ctx context.Context, key string, value []byte) error {
	const q = `
INSERT INTO kv_entries (key, value, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE
SET value = EXCLUDED.value,
    updated_at = now()
`
	if _, err := s.pool.Exec(ctx, q, key, value); err != nil {
		s.logger.Printf("kvstore: set key=%s error=%v", key, err)
		return err
	}
	return nil
}

func (s *postgresStore) Delete(ctx context.Context, key string) error {
	const q = `
DELETE FROM kv_entries
WHERE key = $1
`
	if _, err := s.pool.Exec(ctx, q, key); err != nil {
		s.logger.Printf("kvstore: delete key=%s error=%v", key, err)
		return err
	}
	return nil
}
