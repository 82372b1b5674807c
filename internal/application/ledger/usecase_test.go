package ledger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fast-api/internal/application/catalog"
	"github.com/jhoicas/fast-api/internal/application/ledger"
	"github.com/jhoicas/fast-api/internal/domain"
	"github.com/jhoicas/fast-api/internal/domain/entity"
	"github.com/jhoicas/fast-api/internal/domain/repository"
	"github.com/jhoicas/fast-api/internal/infrastructure/cache"
	"github.com/jhoicas/fast-api/internal/infrastructure/sqlite"
)

type fixture struct {
	ledger  *ledger.UseCase
	catalog *catalog.UseCase
}

func fixedClock() time.Time {
	return time.Date(2024, 1, 10, 23, 30, 0, 0, time.UTC)
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	db, err := sqlite.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close(db) })

	tx := sqlite.NewTxRunner(db)
	repos := sqlite.NewRepos(db)
	cat := catalog.NewUseCase(tx, repos.Products, cache.NewCatalogCache(), nil, nil)
	led := ledger.NewUseCase(tx, repos,
		ledger.WithClock(fixedClock),
		ledger.WithLocation(time.UTC),
		ledger.WithCatalogInvalidator(cat),
	)
	return fixture{ledger: led, catalog: cat}
}

func validStock() ledger.StockEntryInput {
	return ledger.StockEntryInput{
		Date:        "2024-01-10",
		Code:        "A1",
		Description: "Flour",
		Quantity:    "10.5",
		Unit:        "kg",
		Reason:      "Avaria",
	}
}

func validTransformation() ledger.TransformationInput {
	return ledger.TransformationInput{
		Date:                   "2024-01-10",
		SourceCode:             "B2",
		SourceDescription:      "Dianteiro",
		Quantity:               "2",
		Unit:                   "kg",
		DestinationCode:        "C3",
		DestinationDescription: "Acém",
	}
}

func TestAppendStockEntry_GuardaYRegistraCatalogo(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	desc, err := f.catalog.Lookup(ctx, "A1")
	require.NoError(t, err)
	require.Empty(t, desc)

	in := validStock()
	in.Code, in.Description, in.Lot = "  A1 ", " Flour ", "  "
	id, err := f.ledger.AppendStockEntry(ctx, in)
	require.NoError(t, err)
	assert.Positive(t, id)

	desc, err = f.catalog.Lookup(ctx, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Flour", desc, "la búsqueda cacheada se invalida tras el alta")

	list, err := f.ledger.ListStockEntries(ctx, "")
	require.NoError(t, err)
	require.Len(t, list, 1)
	got := list[0]
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "A1", got.Code)
	assert.Equal(t, "Flour", got.Description)
	assert.True(t, decimal.RequireFromString("10.5").Equal(got.Quantity))
	assert.Equal(t, entity.UnitKG, got.Unit)
	assert.Equal(t, entity.ReasonAvaria, got.Reason)
	assert.Empty(t, got.Lot)
}

func TestAppendStockEntry_DescripcionEsCopia(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.NoError(t, f.catalog.UpsertIgnore(ctx, "A1", "Farinha"))
	_, err := f.ledger.AppendStockEntry(ctx, validStock())
	require.NoError(t, err)

	desc, err := f.catalog.Lookup(ctx, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Farinha", desc, "el alta no modifica un producto existente")

	list, err := f.ledger.ListStockEntries(ctx, "")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Flour", list[0].Description)
}

func TestAppendStockEntry_CantidadNoPositivaSeRechaza(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.ledger.AppendStockEntry(ctx, validStock())
	require.NoError(t, err)

	for _, q := range []string{"0", "-1", "-0.001", "0,0", "abc", ""} {
		in := validStock()
		in.Quantity = q
		_, err := f.ledger.AppendStockEntry(ctx, in)
		require.Error(t, err, "cantidad %q", q)
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Equal(t, "quantity", domain.FieldOf(err))
	}

	n, err := f.ledger.Count(ctx, entity.KindBakery)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n, "los rechazos no cambian el libro")
}

func TestAppendEntry_CantidadFueraDeRangoSeRechaza(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	for _, q := range []string{"1e400", "-1e400", "1e-400", "1,5e-400"} {
		in := validStock()
		in.Quantity = q
		_, err := f.ledger.AppendStockEntry(ctx, in)
		require.Error(t, err, "cantidad %q", q)
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Equal(t, "quantity", domain.FieldOf(err))

		tr := validTransformation()
		tr.Quantity = q
		_, err = f.ledger.AppendTransformationEntry(ctx, tr)
		require.Error(t, err, "cantidad %q", q)
		assert.Equal(t, "quantity", domain.FieldOf(err))
	}

	for _, kind := range []entity.Kind{entity.KindBakery, entity.KindMeat} {
		n, err := f.ledger.Count(ctx, kind)
		require.NoError(t, err)
		assert.Zero(t, n, "el libro %s no cambia", kind)
	}
	assert.NotPanics(t, func() {
		list, err := f.ledger.ListStockEntries(ctx, "")
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}

func TestAppendStockEntry_Validaciones(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	cases := []struct {
		name  string
		mut   func(*ledger.StockEntryInput)
		field string
	}{
		{"código vacío", func(in *ledger.StockEntryInput) { in.Code = "  " }, "code"},
		{"descripción vacía", func(in *ledger.StockEntryInput) { in.Description = "" }, "description"},
		{"unidad desconocida", func(in *ledger.StockEntryInput) { in.Unit = "lt" }, "unit"},
		{"motivo desconocido", func(in *ledger.StockEntryInput) { in.Reason = "Roubo" }, "reason"},
		{"fecha mal formada", func(in *ledger.StockEntryInput) { in.Date = "10/01/2024" }, "date"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validStock()
			tc.mut(&in)
			_, err := f.ledger.AppendStockEntry(ctx, in)
			require.Error(t, err)
			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tc.field, verr.Field)
			assert.NotEmpty(t, verr.Message)
		})
	}

	n, err := f.ledger.Count(ctx, entity.KindBakery)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestAppendStockEntry_NormalizaUnidadMotivoYFecha(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	in := validStock()
	in.Date = ""
	in.Unit = " KG "
	in.Reason = "doação"
	in.Quantity = "10,5"
	_, err := f.ledger.AppendStockEntry(ctx, in)
	require.NoError(t, err)

	list, err := f.ledger.ListStockEntries(ctx, ledger.Today)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "2024-01-10", list[0].Date, "la fecha por defecto es hoy en la zona configurada")
	assert.Equal(t, entity.UnitKG, list[0].Unit)
	assert.Equal(t, entity.ReasonDoacao, list[0].Reason)
	assert.True(t, decimal.RequireFromString("10.5").Equal(list[0].Quantity))
}

func TestToday_UsaZonaConfigurada(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	led := ledger.NewUseCase(nil, repository.Repos{},
		ledger.WithClock(func() time.Time { return time.Date(2024, 1, 11, 1, 0, 0, 0, time.UTC) }),
		ledger.WithLocation(loc),
	)
	assert.Equal(t, "2024-01-10", led.Today())
}

func TestListStockEntries_PorFecha(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	for _, d := range []string{"2024-01-09", "2024-01-10", "2024-01-10"} {
		in := validStock()
		in.Date = d
		_, err := f.ledger.AppendStockEntry(ctx, in)
		require.NoError(t, err)
	}

	all, err := f.ledger.ListStockEntries(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Less(t, all[0].ID, all[1].ID)
	assert.Less(t, all[1].ID, all[2].ID)

	day, err := f.ledger.ListStockEntries(ctx, "2024-01-10")
	require.NoError(t, err)
	assert.Len(t, day, 2)

	_, err = f.ledger.ListStockEntries(ctx, "ayer")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAppendTransformationEntry_RegistraAmbosCodigos(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	id, err := f.ledger.AppendTransformationEntry(ctx, ledger.TransformationInput{
		Date:                   "2024-01-10",
		SourceCode:             "B2",
		SourceDescription:      "Dianteiro",
		Quantity:               "2.0",
		Unit:                   "kg",
		DestinationCode:        "C3",
		DestinationDescription: "Acém",
		Lot:                    "L-7",
	})
	require.NoError(t, err)
	assert.Positive(t, id)

	for code, want := range map[string]string{"B2": "Dianteiro", "C3": "Acém"} {
		desc, err := f.catalog.Lookup(ctx, code)
		require.NoError(t, err)
		assert.Equal(t, want, desc, "código %s", code)
	}

	list, err := f.ledger.ListTransformations(ctx, "")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "L-7", list[0].Lot)
	assert.True(t, decimal.NewFromInt(2).Equal(list[0].Quantity))
}

func TestAppendTransformationEntry_Validaciones(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.ledger.AppendTransformationEntry(ctx, ledger.TransformationInput{
		SourceCode:        "B2",
		SourceDescription: "Dianteiro",
		Quantity:          "2",
		Unit:              "kg",
		DestinationCode:   "C3",
	})
	require.Error(t, err)
	assert.Equal(t, "destination_description", domain.FieldOf(err))

	desc, err := f.catalog.Lookup(ctx, "B2")
	require.NoError(t, err)
	assert.Empty(t, desc, "un alta rechazada no registra códigos")
}

func TestDeleteByID(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	id, err := f.ledger.AppendStockEntry(ctx, validStock())
	require.NoError(t, err)
	before, err := f.ledger.ListStockEntries(ctx, "")
	require.NoError(t, err)

	require.NoError(t, f.ledger.DeleteByID(ctx, entity.KindBakery, id+100), "un id inexistente no es error")
	after, err := f.ledger.ListStockEntries(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, before, after)

	require.NoError(t, f.ledger.DeleteByID(ctx, entity.KindBakery, id))
	n, err := f.ledger.Count(ctx, entity.KindBakery)
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, f.ledger.DeleteByID(ctx, entity.KindMeat, 1))
	assert.ErrorIs(t, f.ledger.DeleteByID(ctx, entity.Kind("fish"), 1), domain.ErrValidation)
}

// failingTx simula una falla del almacén dentro de la transacción.
type failingTx struct{}

func (failingTx) Run(context.Context, func(repository.Repos) error) error {
	return errors.New("database is locked")
}

func TestAppendStockEntry_ErrorDeAlmacen(t *testing.T) {
	led := ledger.NewUseCase(failingTx{}, repository.Repos{}, ledger.WithClock(fixedClock))

	_, err := led.AppendStockEntry(context.Background(), validStock())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStorage)
	assert.NotErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "database is locked")
}
