package database

import (
	"context"
	"fmt"
)

// Table definitions executed at startup. Uniqueness of usernames is enforced
// here, in the storage layer, because concurrent register requests can race
// past any application-level existence check.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGSERIAL PRIMARY KEY,
		username      VARCHAR(100) NOT NULL,
		password_hash VARCHAR(100) NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_username ON users (username)`,
	`CREATE TABLE IF NOT EXISTS books (
		id          BIGSERIAL PRIMARY KEY,
		title       VARCHAR(100) NOT NULL,
		author      VARCHAR(50)  NOT NULL,
		description VARCHAR(500) NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// EnsureSchema creates the tables and indexes the service needs.
// Every statement is idempotent, so repeated startups are safe.
func (db *PostgresDB) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
