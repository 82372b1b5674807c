package report_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fast-api/internal/domain/report"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func bakeryTable(rows ...[]any) report.Table {
	t := report.NewTable("id", "data", "codigo", "descricao", "quantidade", "unidade", "motivo", "lote")
	for _, r := range rows {
		t.Append(r...)
	}
	return t
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ──────────────────────────────────────────────────────────────────────────────
// AggregateBy
// ──────────────────────────────────────────────────────────────────────────────

func TestTotals_DosAvariasSumanQuince(t *testing.T) {
	tbl := bakeryTable(
		[]any{int64(1), "2024-01-10", "A1", "Flour", dec("10.5"), "kg", "Avaria", ""},
		[]any{int64(2), "2024-01-10", "A1", "Flour", dec("4.5"), "kg", "Avaria", ""},
	)

	totals, err := report.Totals(tbl, "motivo", "quantidade")
	require.NoError(t, err)
	require.Len(t, totals, 1)
	assert.True(t, dec("15").Equal(totals["Avaria"]), "Avaria debe sumar 15, got %s", totals["Avaria"])
}

func TestTotals_SoloMotivosPresentes(t *testing.T) {
	tbl := bakeryTable(
		[]any{int64(1), "2024-01-10", "A1", "Flour", dec("1"), "kg", "Avaria", ""},
		[]any{int64(2), "2024-01-10", "B2", "Bread", dec("2"), "un", "Doação", ""},
		[]any{int64(3), "2024-01-11", "A1", "Flour", dec("3.25"), "kg", "Doação", ""},
		[]any{int64(4), "2024-01-11", "C3", "Cake", dec("0.75"), "un", "Refeitório", ""},
	)

	totals, err := report.Totals(tbl, "motivo", "quantidade")
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"Avaria", "Doação", "Refeitório"}, keys(totals),
		"no deben aparecer motivos sin registros (Inventário)")
	assert.Equal(t, "1", totals["Avaria"].String())
	assert.Equal(t, "5.25", totals["Doação"].String())
	assert.Equal(t, "0.75", totals["Refeitório"].String())
}

func TestAggregateBy_OrdenDePrimeraAparicion(t *testing.T) {
	tbl := bakeryTable(
		[]any{int64(1), "d", "B2", "Bread", dec("1"), "un", "Avaria", ""},
		[]any{int64(2), "d", "A1", "Flour", dec("2"), "kg", "Avaria", ""},
		[]any{int64(3), "d", "B2", "Bread", dec("3"), "un", "Avaria", ""},
	)

	out, err := report.AggregateBy(tbl, []string{"codigo", "descricao"}, "quantidade")
	require.NoError(t, err)

	assert.Equal(t, []string{"codigo", "descricao", "quantidade"}, out.Columns)
	require.Equal(t, 2, out.Len())
	assert.Equal(t, "B2", out.Rows[0][0])
	assert.Equal(t, "4", out.Rows[0][2].(decimal.Decimal).String())
	assert.Equal(t, "A1", out.Rows[1][0])
}

func TestAggregateBy_CantidadConComaSeNormaliza(t *testing.T) {
	tbl := bakeryTable(
		[]any{int64(1), "d", "A1", "Flour", "10,5", "kg", "Avaria", ""},
		[]any{int64(2), "d", "A1", "Flour", 1.5, "kg", "Avaria", ""},
	)

	totals, err := report.Totals(tbl, "motivo", "quantidade")
	require.NoError(t, err)
	assert.Equal(t, "12", totals["Avaria"].String(), "10,5 debe leerse como 10.5")
}

func TestAggregateBy_ResiduoNoNumericoValeCero(t *testing.T) {
	tbl := bakeryTable(
		[]any{int64(1), "d", "A1", "Flour", "abc", "kg", "Avaria", ""},
		[]any{int64(2), "d", "A1", "Flour", nil, "kg", "Avaria", ""},
		[]any{int64(3), "d", "A1", "Flour", dec("2"), "kg", "Avaria", ""},
	)

	totals, err := report.Totals(tbl, "motivo", "quantidade")
	require.NoError(t, err, "un valor no numérico no debe abortar la agregación")
	assert.Equal(t, "2", totals["Avaria"].String())
}

func TestAggregateBy_ColumnaInexistente(t *testing.T) {
	_, err := report.AggregateBy(bakeryTable(), []string{"destino"}, "quantidade")
	assert.Error(t, err)
}

func TestAggregateBy_TablaVacia(t *testing.T) {
	out, err := report.AggregateBy(bakeryTable(), []string{"motivo"}, "quantidade")
	require.NoError(t, err)
	assert.Equal(t, 0, out.Len())
}

// ──────────────────────────────────────────────────────────────────────────────
// ParseQuantity
// ──────────────────────────────────────────────────────────────────────────────

func TestParseQuantity(t *testing.T) {
	cases := map[string]string{
		"10,5":    "10.5",
		"10.5":    "10.5",
		" 3 ":     "3",
		"1.234,5": "1234.5",
		"1,234.5": "1234.5",
		"0,01":    "0.01",
	}
	for in, want := range cases {
		got, err := report.ParseQuantity(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got.String(), in)
	}

	for _, bad := range []string{"", "abc", "1,2,3x"} {
		_, err := report.ParseQuantity(bad)
		assert.Error(t, err, bad)
	}
}

func TestTableIndex_IgnoraMayusculasYEspacios(t *testing.T) {
	tbl := report.NewTable(" Codigo ", "DESCRICAO")
	assert.Equal(t, 0, tbl.Index("codigo"))
	assert.Equal(t, 1, tbl.Index("descricao"))
	assert.Equal(t, -1, tbl.Index("lote"))
}

func keys(m map[string]decimal.Decimal) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
