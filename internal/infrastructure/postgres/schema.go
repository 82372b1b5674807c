package postgres

import (
	"context"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS products (
		code        TEXT PRIMARY KEY,
		description TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS stock_adjustment_entries (
		id          BIGSERIAL PRIMARY KEY,
		date        TEXT,
		code        TEXT,
		description TEXT,
		quantity    NUMERIC,
		unit        TEXT,
		reason      TEXT,
		lot         TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS transformation_entries (
		id                      BIGSERIAL PRIMARY KEY,
		date                    TEXT,
		source_code             TEXT,
		source_description      TEXT,
		quantity                NUMERIC,
		unit                    TEXT,
		destination_code        TEXT,
		destination_description TEXT,
		lot                     TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_stock_adjustment_entries_date ON stock_adjustment_entries(date)`,
	`CREATE INDEX IF NOT EXISTS idx_transformation_entries_date ON transformation_entries(date)`,
}

// EnsureSchema crea las tablas si no existen; no trunca datos existentes.
func EnsureSchema(ctx context.Context, q Querier) error {
	for _, stmt := range schema {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("crear esquema: %w", err)
		}
	}
	return nil
}
