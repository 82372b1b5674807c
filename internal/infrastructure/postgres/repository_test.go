package postgres_test

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fast-api/internal/domain/entity"
	"github.com/jhoicas/fast-api/internal/domain/repository"
	"github.com/jhoicas/fast-api/internal/infrastructure/postgres"
	"github.com/jhoicas/fast-api/pkg/config"
)

// newTestPool conecta a FAST_TEST_DATABASE_URL; sin esa variable el test se omite.
func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("FAST_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("FAST_TEST_DATABASE_URL no definido; se omiten tests de PostgreSQL")
	}
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: url})
	require.NoError(t, err)
	_, err = pool.Exec(ctx, `TRUNCATE products, stock_adjustment_entries, transformation_entries RESTART IDENTITY`)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func TestProductRepo_InsertIgnore(t *testing.T) {
	ctx := context.Background()
	repo := postgres.NewProductRepository(newTestPool(t))

	require.NoError(t, repo.InsertIgnore(ctx, entity.Product{Code: "A1", Description: "X"}))
	require.NoError(t, repo.InsertIgnore(ctx, entity.Product{Code: "A1", Description: "Y"}))

	got, err := repo.GetByCode(ctx, "A1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "X", got.Description)

	missing, err := repo.GetByCode(ctx, "ZZ")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStockEntryRepo_NumericConservaDecimales(t *testing.T) {
	ctx := context.Background()
	repo := postgres.NewStockEntryRepository(newTestPool(t))

	_, err := repo.Create(ctx, &entity.StockAdjustmentEntry{
		Date: "2024-01-10", Code: "A1", Description: "Flour",
		Quantity: decimal.RequireFromString("10.125"), Unit: entity.UnitKG, Reason: entity.ReasonAvaria,
	})
	require.NoError(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "10.125", list[0].Quantity.String())
	assert.Empty(t, list[0].Lot)

	require.NoError(t, repo.Delete(ctx, 12345))
	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestTxRunner_ReplaceAllAtomico(t *testing.T) {
	ctx := context.Background()
	pool := newTestPool(t)
	runner := postgres.NewTxRunner(pool)

	require.NoError(t, postgres.NewProductRepository(pool).InsertIgnore(ctx, entity.Product{Code: "OLD", Description: "x"}))

	// La segunda fila repite la clave primaria: toda la tx debe revertirse.
	err := runner.Run(ctx, func(repos repository.Repos) error {
		return repos.Products.ReplaceAll(ctx, []entity.Product{{Code: "A", Description: "a"}, {Code: "A", Description: "b"}})
	})
	require.Error(t, err)

	list, err := postgres.NewProductRepository(pool).List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []entity.Product{{Code: "OLD", Description: "x"}}, list)
}
