// Package store abre el almacén configurado (SQLite o PostgreSQL) y expone los
// repositorios y el TxRunner sin que el llamador conozca el driver.
package store

import (
	"context"
	"fmt"

	"github.com/jhoicas/fast-api/internal/domain/repository"
	"github.com/jhoicas/fast-api/internal/infrastructure/postgres"
	"github.com/jhoicas/fast-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/fast-api/pkg/config"
)

// Store repositorios listos para usar sobre una conexión abierta.
type Store struct {
	Driver string
	Tx     repository.TxRunner
	Repos  repository.Repos
	close  func() error
}

// Close libera la conexión.
func (s *Store) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// Open conecta según cfg.Driver y asegura el esquema.
func Open(ctx context.Context, cfg config.DBConfig) (*Store, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return &Store{
			Driver: cfg.Driver,
			Tx:     postgres.NewTxRunner(pool),
			Repos:  postgres.NewRepos(pool),
			close:  func() error { pool.Close(); return nil },
		}, nil
	case config.DriverSQLite, "":
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &Store{
			Driver: config.DriverSQLite,
			Tx:     sqlite.NewTxRunner(db),
			Repos:  sqlite.NewRepos(db),
			close:  func() error { return sqlite.Close(db) },
		}, nil
	}
	return nil, fmt.Errorf("store: driver %q no soportado", cfg.Driver)
}
