package repository

import (
	"context"

	"github.com/jhoicas/fast-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia del catálogo (DIP).
type ProductRepository interface {
	// InsertIgnore inserta el par si el código no existe; si existe no hace nada.
	InsertIgnore(ctx context.Context, product entity.Product) error
	// GetByCode devuelve nil, nil cuando el código no existe.
	GetByCode(ctx context.Context, code string) (*entity.Product, error)
	List(ctx context.Context) ([]entity.Product, error)
	// ReplaceAll borra el catálogo completo e inserta rows.
	ReplaceAll(ctx context.Context, rows []entity.Product) error
}
