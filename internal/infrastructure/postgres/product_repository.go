package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/fast-api/internal/domain/entity"
	"github.com/jhoicas/fast-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// InsertIgnore inserta el producto; si el código ya existe no modifica nada.
func (r *ProductRepo) InsertIgnore(ctx context.Context, product entity.Product) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO products (code, description) VALUES ($1, $2) ON CONFLICT (code) DO NOTHING`,
		product.Code, product.Description,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByCode obtiene un producto por código.
func (r *ProductRepo) GetByCode(ctx context.Context, code string) (*entity.Product, error) {
	var p entity.Product
	var desc *string
	err := r.q.QueryRow(ctx, `SELECT code, description FROM products WHERE code = $1`, code).Scan(&p.Code, &desc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	p.Description = deref(desc)
	return &p, nil
}

// List lista el catálogo ordenado por código.
func (r *ProductRepo) List(ctx context.Context) ([]entity.Product, error) {
	rows, err := r.q.Query(ctx, `SELECT code, description FROM products ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []entity.Product
	for rows.Next() {
		var p entity.Product
		var desc *string
		if err := rows.Scan(&p.Code, &desc); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		p.Description = deref(desc)
		list = append(list, p)
	}
	return list, rows.Err()
}

// ReplaceAll borra el catálogo e inserta rows. Llamar dentro de TxRunner.
func (r *ProductRepo) ReplaceAll(ctx context.Context, rows []entity.Product) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM products`); err != nil {
		return fmt.Errorf("clear products: %w", err)
	}
	for _, p := range rows {
		if _, err := r.q.Exec(ctx, `INSERT INTO products (code, description) VALUES ($1, $2)`, p.Code, p.Description); err != nil {
			return fmt.Errorf("insert product %q: %w", p.Code, err)
		}
	}
	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
