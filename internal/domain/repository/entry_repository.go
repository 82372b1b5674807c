package repository

import (
	"context"

	"github.com/jhoicas/fast-api/internal/domain/entity"
)

// StockEntryRepository persiste los registros de la panadería.
type StockEntryRepository interface {
	Create(ctx context.Context, entry *entity.StockAdjustmentEntry) (int64, error)
	// List devuelve todos los registros en orden de inserción.
	List(ctx context.Context) ([]entity.StockAdjustmentEntry, error)
	ListByDate(ctx context.Context, date string) ([]entity.StockAdjustmentEntry, error)
	// Delete no falla si el id no existe.
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// TransformationRepository persiste las transformaciones de carne.
type TransformationRepository interface {
	Create(ctx context.Context, entry *entity.TransformationEntry) (int64, error)
	List(ctx context.Context) ([]entity.TransformationEntry, error)
	ListByDate(ctx context.Context, date string) ([]entity.TransformationEntry, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// Repos agrupa los repositorios atados a una misma transacción.
type Repos struct {
	Products        ProductRepository
	StockEntries    StockEntryRepository
	Transformations TransformationRepository
}

// TxRunner ejecuta fn dentro de una transacción: Commit si fn devuelve nil, Rollback si no.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos Repos) error) error
}
