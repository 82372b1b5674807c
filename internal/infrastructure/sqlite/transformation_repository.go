package sqlite

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/jhoicas/fast-api/internal/domain/entity"
	"github.com/jhoicas/fast-api/internal/domain/repository"
)

var _ repository.TransformationRepository = (*TransformationRepo)(nil)

// TransformationRepo transformaciones de carne sobre SQLite.
type TransformationRepo struct {
	db *gorm.DB
}

// NewTransformationRepository construye el adaptador. Pasar la conexión o una tx.
func NewTransformationRepository(db *gorm.DB) *TransformationRepo {
	return &TransformationRepo{db: db}
}

// Create inserta el registro y devuelve el id asignado por el almacén.
func (r *TransformationRepo) Create(ctx context.Context, entry *entity.TransformationEntry) (int64, error) {
	rec := toTransformationRecord(entry)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return 0, fmt.Errorf("insert transformation: %w", err)
	}
	entry.ID = rec.ID
	return rec.ID, nil
}

// List devuelve todos los registros en orden de inserción.
func (r *TransformationRepo) List(ctx context.Context) ([]entity.TransformationEntry, error) {
	return r.find(r.db.WithContext(ctx))
}

// ListByDate devuelve los registros de una fecha ("YYYY-MM-DD").
func (r *TransformationRepo) ListByDate(ctx context.Context, date string) ([]entity.TransformationEntry, error) {
	return r.find(r.db.WithContext(ctx).Where("date = ?", date))
}

func (r *TransformationRepo) find(q *gorm.DB) ([]entity.TransformationEntry, error) {
	var recs []transformationRecord
	if err := q.Order("id ASC").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list transformations: %w", err)
	}
	out := make([]entity.TransformationEntry, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.toEntity())
	}
	return out, nil
}

// Delete elimina por id. Un id inexistente no es error.
func (r *TransformationRepo) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&transformationRecord{}, id).Error; err != nil {
		return fmt.Errorf("delete transformation: %w", err)
	}
	return nil
}

// Count número de registros.
func (r *TransformationRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&transformationRecord{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count transformations: %w", err)
	}
	return n, nil
}
