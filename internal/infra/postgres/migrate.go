package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGINT PRIMARY KEY,
		chat_id       BIGINT NOT NULL,
		username      TEXT NOT NULL DEFAULT '',
		first_name    TEXT NOT NULL DEFAULT '',
		language_code TEXT NOT NULL DEFAULT '',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		last_seen_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_users_chat_id ON users (chat_id)`,
}

// Migrate creates the schema if it does not exist. It is safe to run on every start.
func Migrate(ctx context.Context, t *Transactor) error {
	return t.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		for _, stmt := range schema {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
		}
		return nil
	})
}
