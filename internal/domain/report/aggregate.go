package report

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Group suma de cantidad para una combinación de valores de las columnas clave.
type Group struct {
	Key      []string
	Quantity decimal.Decimal
}

// Groups agrupa las filas de t por keyColumns y suma quantityColumn.
// Los grupos salen en orden de primera aparición; no hay grupos en cero para claves ausentes.
func Groups(t Table, keyColumns []string, quantityColumn string) ([]Group, error) {
	keyIdx := make([]int, len(keyColumns))
	for i, c := range keyColumns {
		keyIdx[i] = t.Index(c)
		if keyIdx[i] < 0 {
			return nil, fmt.Errorf("columna %q no existe", c)
		}
	}
	qIdx := t.Index(quantityColumn)
	if qIdx < 0 {
		return nil, fmt.Errorf("columna %q no existe", quantityColumn)
	}

	var groups []Group
	pos := make(map[string]int)
	for _, row := range t.Rows {
		key := make([]string, len(keyIdx))
		for i, idx := range keyIdx {
			key[i] = CellString(at(row, idx))
		}
		// \x1f no aparece en códigos ni descripciones
		k := strings.Join(key, "\x1f")
		i, ok := pos[k]
		if !ok {
			i = len(groups)
			pos[k] = i
			groups = append(groups, Group{Key: key, Quantity: decimal.Zero})
		}
		groups[i].Quantity = groups[i].Quantity.Add(quantityOf(at(row, qIdx)))
	}
	return groups, nil
}

// AggregateBy devuelve una tabla con las columnas clave seguidas de quantityColumn.
func AggregateBy(t Table, keyColumns []string, quantityColumn string) (Table, error) {
	groups, err := Groups(t, keyColumns, quantityColumn)
	if err != nil {
		return Table{}, err
	}
	out := NewTable(append(append([]string{}, keyColumns...), quantityColumn)...)
	for _, g := range groups {
		cells := make([]any, 0, len(g.Key)+1)
		for _, k := range g.Key {
			cells = append(cells, k)
		}
		cells = append(cells, g.Quantity)
		out.Append(cells...)
	}
	return out, nil
}

// Totals atajo para una sola columna clave: clave → cantidad sumada.
func Totals(t Table, keyColumn, quantityColumn string) (map[string]decimal.Decimal, error) {
	groups, err := Groups(t, []string{keyColumn}, quantityColumn)
	if err != nil {
		return nil, err
	}
	out := make(map[string]decimal.Decimal, len(groups))
	for _, g := range groups {
		out[g.Key[0]] = g.Quantity
	}
	return out, nil
}

// CellString representación textual de una celda; nil es "".
func CellString(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case decimal.Decimal:
		return c.String()
	case fmt.Stringer:
		return c.String()
	default:
		return fmt.Sprint(c)
	}
}

func at(row []any, idx int) any {
	if idx < len(row) {
		return row[idx]
	}
	return nil
}
