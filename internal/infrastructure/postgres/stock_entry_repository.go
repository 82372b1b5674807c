package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/fast-api/internal/domain/entity"
	"github.com/jhoicas/fast-api/internal/domain/repository"
)

var _ repository.StockEntryRepository = (*StockEntryRepo)(nil)

// StockEntryRepo registros de la panadería sobre PostgreSQL.
type StockEntryRepo struct {
	q Querier
}

// NewStockEntryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockEntryRepository(q Querier) *StockEntryRepo {
	return &StockEntryRepo{q: q}
}

const stockEntryColumns = `id, date, code, description, quantity, unit, reason, lot`

// Create inserta el registro y devuelve el id generado.
func (r *StockEntryRepo) Create(ctx context.Context, e *entity.StockAdjustmentEntry) (int64, error) {
	query := `
		INSERT INTO stock_adjustment_entries (date, code, description, quantity, unit, reason, lot)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		e.Date, e.Code, e.Description, e.Quantity, string(e.Unit), string(e.Reason), optional(e.Lot),
	).Scan(&e.ID)
	if err != nil {
		return 0, fmt.Errorf("insert stock entry: %w", err)
	}
	return e.ID, nil
}

// List devuelve todos los registros en orden de inserción.
func (r *StockEntryRepo) List(ctx context.Context) ([]entity.StockAdjustmentEntry, error) {
	rows, err := r.q.Query(ctx, `SELECT `+stockEntryColumns+` FROM stock_adjustment_entries ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list stock entries: %w", err)
	}
	return scanStockEntries(rows)
}

// ListByDate registros de una fecha.
func (r *StockEntryRepo) ListByDate(ctx context.Context, date string) ([]entity.StockAdjustmentEntry, error) {
	rows, err := r.q.Query(ctx, `SELECT `+stockEntryColumns+` FROM stock_adjustment_entries WHERE date = $1 ORDER BY id`, date)
	if err != nil {
		return nil, fmt.Errorf("list stock entries by date: %w", err)
	}
	return scanStockEntries(rows)
}

func scanStockEntries(rows pgx.Rows) ([]entity.StockAdjustmentEntry, error) {
	defer rows.Close()
	var list []entity.StockAdjustmentEntry
	for rows.Next() {
		var e entity.StockAdjustmentEntry
		var unit, reason string
		var lot *string
		if err := rows.Scan(&e.ID, &e.Date, &e.Code, &e.Description, &e.Quantity, &unit, &reason, &lot); err != nil {
			return nil, fmt.Errorf("scan stock entry: %w", err)
		}
		e.Unit, e.Reason, e.Lot = entity.Unit(unit), entity.Reason(reason), deref(lot)
		list = append(list, e)
	}
	return list, rows.Err()
}

// Delete elimina por id; un id inexistente no es error.
func (r *StockEntryRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM stock_adjustment_entries WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete stock entry: %w", err)
	}
	return nil
}

// Count número de registros.
func (r *StockEntryRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM stock_adjustment_entries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count stock entries: %w", err)
	}
	return n, nil
}
