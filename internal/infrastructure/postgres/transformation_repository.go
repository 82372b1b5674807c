package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/fast-api/internal/domain/entity"
	"github.com/jhoicas/fast-api/internal/domain/repository"
)

var _ repository.TransformationRepository = (*TransformationRepo)(nil)

// TransformationRepo transformaciones de carne sobre PostgreSQL.
type TransformationRepo struct {
	q Querier
}

// NewTransformationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransformationRepository(q Querier) *TransformationRepo {
	return &TransformationRepo{q: q}
}

const transformationColumns = `id, date, source_code, source_description, quantity, unit, destination_code, destination_description, lot`

// Create inserta la transformación y devuelve el id generado.
func (r *TransformationRepo) Create(ctx context.Context, e *entity.TransformationEntry) (int64, error) {
	query := `
		INSERT INTO transformation_entries (date, source_code, source_description, quantity, unit, destination_code, destination_description, lot)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		e.Date, e.SourceCode, e.SourceDescription, e.Quantity, string(e.Unit),
		e.DestinationCode, e.DestinationDescription, optional(e.Lot),
	).Scan(&e.ID)
	if err != nil {
		return 0, fmt.Errorf("insert transformation: %w", err)
	}
	return e.ID, nil
}

// List devuelve todas las transformaciones en orden de inserción.
func (r *TransformationRepo) List(ctx context.Context) ([]entity.TransformationEntry, error) {
	rows, err := r.q.Query(ctx, `SELECT `+transformationColumns+` FROM transformation_entries ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list transformations: %w", err)
	}
	return scanTransformations(rows)
}

// ListByDate transformaciones de una fecha.
func (r *TransformationRepo) ListByDate(ctx context.Context, date string) ([]entity.TransformationEntry, error) {
	rows, err := r.q.Query(ctx, `SELECT `+transformationColumns+` FROM transformation_entries WHERE date = $1 ORDER BY id`, date)
	if err != nil {
		return nil, fmt.Errorf("list transformations by date: %w", err)
	}
	return scanTransformations(rows)
}

func scanTransformations(rows pgx.Rows) ([]entity.TransformationEntry, error) {
	defer rows.Close()
	var list []entity.TransformationEntry
	for rows.Next() {
		var e entity.TransformationEntry
		var unit string
		var lot *string
		if err := rows.Scan(&e.ID, &e.Date, &e.SourceCode, &e.SourceDescription, &e.Quantity, &unit,
			&e.DestinationCode, &e.DestinationDescription, &lot); err != nil {
			return nil, fmt.Errorf("scan transformation: %w", err)
		}
		e.Unit, e.Lot = entity.Unit(unit), deref(lot)
		list = append(list, e)
	}
	return list, rows.Err()
}

// Delete elimina por id; un id inexistente no es error.
func (r *TransformationRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM transformation_entries WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete transformation: %w", err)
	}
	return nil
}

// Count número de transformaciones.
func (r *TransformationRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM transformation_entries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count transformations: %w", err)
	}
	return n, nil
}
