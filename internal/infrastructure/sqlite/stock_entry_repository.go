package sqlite

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/jhoicas/fast-api/internal/domain/entity"
	"github.com/jhoicas/fast-api/internal/domain/repository"
)

var _ repository.StockEntryRepository = (*StockEntryRepo)(nil)

// StockEntryRepo registros de la panadería sobre SQLite.
type StockEntryRepo struct {
	db *gorm.DB
}

// NewStockEntryRepository construye el adaptador. Pasar la conexión o una tx.
func NewStockEntryRepository(db *gorm.DB) *StockEntryRepo {
	return &StockEntryRepo{db: db}
}

// Create inserta el registro y devuelve el id asignado por el almacén.
func (r *StockEntryRepo) Create(ctx context.Context, entry *entity.StockAdjustmentEntry) (int64, error) {
	rec := toStockEntryRecord(entry)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return 0, fmt.Errorf("insert stock entry: %w", err)
	}
	entry.ID = rec.ID
	return rec.ID, nil
}

// List devuelve todos los registros en orden de inserción.
func (r *StockEntryRepo) List(ctx context.Context) ([]entity.StockAdjustmentEntry, error) {
	return r.find(r.db.WithContext(ctx))
}

// ListByDate devuelve los registros de una fecha ("YYYY-MM-DD").
func (r *StockEntryRepo) ListByDate(ctx context.Context, date string) ([]entity.StockAdjustmentEntry, error) {
	return r.find(r.db.WithContext(ctx).Where("date = ?", date))
}

func (r *StockEntryRepo) find(q *gorm.DB) ([]entity.StockAdjustmentEntry, error) {
	var recs []stockEntryRecord
	if err := q.Order("id ASC").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list stock entries: %w", err)
	}
	out := make([]entity.StockAdjustmentEntry, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.toEntity())
	}
	return out, nil
}

// Delete elimina por id. Un id inexistente no es error.
func (r *StockEntryRepo) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&stockEntryRecord{}, id).Error; err != nil {
		return fmt.Errorf("delete stock entry: %w", err)
	}
	return nil
}

// Count número de registros.
func (r *StockEntryRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&stockEntryRecord{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count stock entries: %w", err)
	}
	return n, nil
}
