package sqlite

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jhoicas/fast-api/internal/domain/entity"
	"github.com/jhoicas/fast-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del catálogo sobre SQLite (usable con la conexión o una tx).
type ProductRepo struct {
	db *gorm.DB
}

// NewProductRepository construye el adaptador. Pasar la conexión o una tx.
func NewProductRepository(db *gorm.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

// InsertIgnore inserta el producto; un código existente queda intacto (ON CONFLICT DO NOTHING).
func (r *ProductRepo) InsertIgnore(ctx context.Context, product entity.Product) error {
	rec := productRecord{Code: product.Code, Description: product.Description}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByCode obtiene un producto por código exacto; nil si no existe.
func (r *ProductRepo) GetByCode(ctx context.Context, code string) (*entity.Product, error) {
	var rec productRecord
	err := r.db.WithContext(ctx).Where("code = ?", code).Take(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &entity.Product{Code: rec.Code, Description: rec.Description}, nil
}

// List devuelve el catálogo ordenado por código.
func (r *ProductRepo) List(ctx context.Context) ([]entity.Product, error) {
	var recs []productRecord
	if err := r.db.WithContext(ctx).Order("code ASC").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	out := make([]entity.Product, 0, len(recs))
	for _, rec := range recs {
		out = append(out, entity.Product{Code: rec.Code, Description: rec.Description})
	}
	return out, nil
}

// ReplaceAll borra el catálogo e inserta rows. Debe correr dentro de una tx para ser atómico.
func (r *ProductRepo) ReplaceAll(ctx context.Context, rows []entity.Product) error {
	db := r.db.WithContext(ctx)
	if err := db.Exec("DELETE FROM products").Error; err != nil {
		return fmt.Errorf("clear products: %w", err)
	}
	if len(rows) == 0 {
		return nil
	}
	recs := make([]productRecord, 0, len(rows))
	for _, p := range rows {
		recs = append(recs, productRecord{Code: p.Code, Description: p.Description})
	}
	if err := db.CreateInBatches(recs, 200).Error; err != nil {
		return fmt.Errorf("insert products: %w", err)
	}
	return nil
}
