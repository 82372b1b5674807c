package sqlite

import (
	"context"

	"gorm.io/gorm"

	"github.com/jhoicas/fast-api/internal/domain/repository"
)

var _ repository.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción SQLite.
type TxRunner struct {
	db *gorm.DB
}

// NewTxRunner construye el runner con la conexión.
func NewTxRunner(db *gorm.DB) *TxRunner {
	return &TxRunner{db: db}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(repos repository.Repos) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepos(tx))
	})
}

// NewRepos construye los tres repositorios sobre db (conexión o tx).
func NewRepos(db *gorm.DB) repository.Repos {
	return repository.Repos{
		Products:        NewProductRepository(db),
		StockEntries:    NewStockEntryRepository(db),
		Transformations: NewTransformationRepository(db),
	}
}
