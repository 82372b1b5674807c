package sqlite

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// schema es idempotente: correrlo sobre una base existente no trunca datos.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS products (
		code        TEXT PRIMARY KEY,
		description TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS stock_adjustment_entries (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		date        TEXT,
		code        TEXT,
		description TEXT,
		quantity    REAL,
		unit        TEXT,
		reason      TEXT,
		lot         TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS transformation_entries (
		id                      INTEGER PRIMARY KEY AUTOINCREMENT,
		date                    TEXT,
		source_code             TEXT,
		source_description      TEXT,
		quantity                REAL,
		unit                    TEXT,
		destination_code        TEXT,
		destination_description TEXT,
		lot                     TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_stock_adjustment_entries_date ON stock_adjustment_entries(date)`,
	`CREATE INDEX IF NOT EXISTS idx_transformation_entries_date ON transformation_entries(date)`,
}

// EnsureSchema crea las tablas si no existen.
func EnsureSchema(ctx context.Context, db *gorm.DB) error {
	for _, stmt := range schema {
		if err := db.WithContext(ctx).Exec(stmt).Error; err != nil {
			return fmt.Errorf("sqlite: crear esquema: %w", err)
		}
	}
	return nil
}
