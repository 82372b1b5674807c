// Package report contiene el motor de agregación: tablas en memoria y sumas agrupadas
// sobre la columna de cantidad. No depende del almacén ni del formato de salida.
package report

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Table tabla rectangular con columnas nombradas. Las celdas pueden ser string,
// decimal.Decimal, números de Go o nil.
type Table struct {
	Columns []string
	Rows    [][]any
}

// NewTable crea una tabla vacía con las columnas dadas.
func NewTable(columns ...string) Table {
	return Table{Columns: columns}
}

// Append agrega una fila. Faltantes se completan con nil; sobrantes se descartan.
func (t *Table) Append(cells ...any) {
	row := make([]any, len(t.Columns))
	copy(row, cells)
	t.Rows = append(t.Rows, row)
}

// Index devuelve la posición de la columna name, o -1. La comparación ignora mayúsculas,
// espacios alrededor y diferencias de normalización Unicode.
func (t Table) Index(name string) int {
	want := normalizeHeader(name)
	for i, c := range t.Columns {
		if normalizeHeader(c) == want {
			return i
		}
	}
	return -1
}

// Len número de filas.
func (t Table) Len() int { return len(t.Rows) }

// Sheet par (nombre de hoja, tabla) de un artefacto exportado.
type Sheet struct {
	Name  string
	Table Table
}

func normalizeHeader(s string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(s)))
}
