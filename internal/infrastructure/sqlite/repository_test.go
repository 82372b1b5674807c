package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/jhoicas/fast-api/internal/domain/entity"
	"github.com/jhoicas/fast-api/internal/domain/repository"
	"github.com/jhoicas/fast-api/internal/infrastructure/sqlite"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := sqlite.Open(context.Background(), ":memory:")
	require.NoError(t, err, "sqlite en memoria debe abrir")
	t.Cleanup(func() { _ = sqlite.Close(db) })
	return db
}

func stockEntry(code, desc, qty string, reason entity.Reason) *entity.StockAdjustmentEntry {
	return &entity.StockAdjustmentEntry{
		Date:        "2024-01-10",
		Code:        code,
		Description: desc,
		Quantity:    decimal.RequireFromString(qty),
		Unit:        entity.UnitKG,
		Reason:      reason,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestProductRepo_InsertIgnoreNoSobrescribe(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewProductRepository(newTestDB(t))

	got, err := repo.GetByCode(ctx, "A1")
	require.NoError(t, err)
	assert.Nil(t, got, "código inexistente devuelve nil sin error")

	require.NoError(t, repo.InsertIgnore(ctx, entity.Product{Code: "A1", Description: "X"}))
	require.NoError(t, repo.InsertIgnore(ctx, entity.Product{Code: "A1", Description: "Y"}),
		"insertar un código duplicado no es error")

	got, err = repo.GetByCode(ctx, "A1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "X", got.Description, "la descripción previa se conserva")
}

func TestProductRepo_ReplaceAll(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewProductRepository(newTestDB(t))

	require.NoError(t, repo.InsertIgnore(ctx, entity.Product{Code: "OLD", Description: "Velho"}))
	require.NoError(t, repo.ReplaceAll(ctx, []entity.Product{
		{Code: "B2", Description: "Pão"},
		{Code: "A1", Description: "Farinha"},
	}))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []entity.Product{
		{Code: "A1", Description: "Farinha"},
		{Code: "B2", Description: "Pão"},
	}, list, "el reemplazo es total y la lista sale ordenada por código")
}

// ──────────────────────────────────────────────────────────────────────────────
// Registros
// ──────────────────────────────────────────────────────────────────────────────

func TestStockEntryRepo_CreateListDelete(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewStockEntryRepository(newTestDB(t))

	e1 := stockEntry("A1", "Flour", "10.5", entity.ReasonAvaria)
	e1.Lot = "L-01"
	id1, err := repo.Create(ctx, e1)
	require.NoError(t, err)
	id2, err := repo.Create(ctx, stockEntry("A1", "Flour", "4.5", entity.ReasonDoacao))
	require.NoError(t, err)
	assert.Greater(t, id2, id1, "ids autoincrementales")

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, id1, list[0].ID)
	assert.Equal(t, "10.5", list[0].Quantity.String())
	assert.Equal(t, "L-01", list[0].Lot)
	assert.Equal(t, entity.ReasonDoacao, list[1].Reason)
	assert.Empty(t, list[1].Lot)

	require.NoError(t, repo.Delete(ctx, 999), "borrar un id inexistente no es error")
	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	require.NoError(t, repo.Delete(ctx, id1))
	list, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, id2, list[0].ID)
}

func TestStockEntryRepo_ListByDate(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewStockEntryRepository(newTestDB(t))

	e := stockEntry("A1", "Flour", "1", entity.ReasonAvaria)
	e.Date = "2024-01-09"
	_, err := repo.Create(ctx, e)
	require.NoError(t, err)
	_, err = repo.Create(ctx, stockEntry("A1", "Flour", "2", entity.ReasonAvaria))
	require.NoError(t, err)

	list, err := repo.ListByDate(ctx, "2024-01-10")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "2", list[0].Quantity.String())
}

func TestTransformationRepo_CreateList(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewTransformationRepository(newTestDB(t))

	_, err := repo.Create(ctx, &entity.TransformationEntry{
		Date:                   "2024-01-10",
		SourceCode:             "B2",
		SourceDescription:      "Costela",
		Quantity:               decimal.RequireFromString("2"),
		Unit:                   entity.UnitKG,
		DestinationCode:        "C3",
		DestinationDescription: "Costela fatiada",
	})
	require.NoError(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "B2", list[0].SourceCode)
	assert.Equal(t, "C3", list[0].DestinationCode)
	assert.Equal(t, entity.UnitKG, list[0].Unit)
}

// ──────────────────────────────────────────────────────────────────────────────
// Esquema y transacciones
// ──────────────────────────────────────────────────────────────────────────────

func TestOpen_EsquemaIdempotenteNoTrunca(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "fast.db")

	db, err := sqlite.Open(ctx, path)
	require.NoError(t, err)
	_, err = sqlite.NewStockEntryRepository(db).Create(ctx, stockEntry("A1", "Flour", "1", entity.ReasonAvaria))
	require.NoError(t, err)
	require.NoError(t, sqlite.Close(db))

	db, err = sqlite.Open(ctx, path)
	require.NoError(t, err, "reabrir con el esquema existente no falla")
	defer sqlite.Close(db)

	n, err := sqlite.NewStockEntryRepository(db).Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n, "los datos existentes se conservan")
}

func TestTxRunner_RollbackNoDejaEscriturasParciales(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	runner := sqlite.NewTxRunner(db)

	boom := errors.New("boom")
	err := runner.Run(ctx, func(repos repository.Repos) error {
		if _, err := repos.StockEntries.Create(ctx, stockEntry("A1", "Flour", "1", entity.ReasonAvaria)); err != nil {
			return err
		}
		if err := repos.Products.InsertIgnore(ctx, entity.Product{Code: "A1", Description: "Flour"}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	n, err := sqlite.NewStockEntryRepository(db).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
	p, err := sqlite.NewProductRepository(db).GetByCode(ctx, "A1")
	require.NoError(t, err)
	assert.Nil(t, p)
}
