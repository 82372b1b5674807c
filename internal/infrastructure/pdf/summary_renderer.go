// Package pdf genera el resumen imprimible de los agregados del libro de registros.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de emisión                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SECCIÓN por hoja: nombre                                    │
//	│  TABLA: columnas clave | quantidade                          │
//	│  TOTAL de la sección                                         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/fast-api/internal/domain/report"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

const gridSize = 12

// ── Renderer ──────────────────────────────────────────────────────────────────

// SummaryRenderer implementa export.SummaryRenderer usando Maroto v2.
type SummaryRenderer struct {
	author string
}

// NewSummaryRenderer construye el renderer; author va en los metadatos del PDF.
func NewSummaryRenderer(author string) *SummaryRenderer { return &SummaryRenderer{author: author} }

// Render genera el PDF con una sección por hoja. La última columna de cada hoja es la
// cantidad y se totaliza al pie de la sección.
func (g *SummaryRenderer) Render(title string, sheets []report.Sheet) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(headerRow(title))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	for _, s := range sheets {
		if len(s.Table.Columns) == 0 {
			continue
		}
		m.AddRows(sectionRows(s)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(title string) core.Row {
	return row.New(14).Add(
		col.New(gridSize).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 2,
			}),
		),
	)
}

// sectionRows: nombre de la hoja, encabezado, filas y total.
func sectionRows(s report.Sheet) []core.Row {
	sizes := columnSizes(len(s.Table.Columns))
	qIdx := len(s.Table.Columns) - 1

	rows := []core.Row{
		row.New(4),
		row.New(8).Add(col.New(gridSize).Add(text.New(s.Name, props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2,
		}))),
	}

	header := make([]core.Col, len(s.Table.Columns))
	for i, c := range s.Table.Columns {
		header[i] = col.New(sizes[i]).Add(text.New(c, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: alignOf(i, qIdx), Top: 1, Left: 1, Right: 1,
		}))
	}
	rows = append(rows, row.New(6).Add(header...))
	rows = append(rows, line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.2}))

	total := decimal.Zero
	for _, r := range s.Table.Rows {
		cells := make([]core.Col, len(s.Table.Columns))
		for i := range s.Table.Columns {
			var v any
			if i < len(r) {
				v = r[i]
			}
			label := report.CellString(v)
			if i == qIdx {
				q := quantityOf(v)
				total = total.Add(q)
				label = formatQuantity(q)
			}
			cells[i] = col.New(sizes[i]).Add(text.New(label, props.Text{
				Size: 8, Align: alignOf(i, qIdx), Top: 1, Left: 1, Right: 1,
			}))
		}
		rows = append(rows, row.New(6).Add(cells...))
	}

	rows = append(rows, line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.2}))
	rows = append(rows, row.New(7).Add(
		col.New(gridSize-sizes[qIdx]).Add(text.New("Total", props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1, Right: 2,
		})),
		col.New(sizes[qIdx]).Add(text.New(formatQuantity(total), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorPrimary, Top: 1, Right: 1,
		})),
	))
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

// columnSizes reparte la grilla: 3 para la cantidad y el resto entre las columnas clave.
func columnSizes(n int) []int {
	if n <= 1 {
		return []int{gridSize}
	}
	sizes := make([]int, n)
	sizes[n-1] = 3
	keys := n - 1
	rest := gridSize - 3
	for i := 0; i < keys; i++ {
		sizes[i] = rest / keys
	}
	sizes[0] += rest % keys
	return sizes
}

func alignOf(i, qIdx int) align.Type {
	if i == qIdx {
		return align.Right
	}
	return align.Left
}

func quantityOf(v any) decimal.Decimal {
	switch c := v.(type) {
	case decimal.Decimal:
		return c
	case nil:
		return decimal.Zero
	}
	d, err := report.ParseQuantity(report.CellString(v))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// formatQuantity separa miles con punto y decimales con coma, hasta 3 decimales.
// Ej: 1234.5 → "1.234,5"
func formatQuantity(d decimal.Decimal) string {
	s := d.Round(3).String()
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, frac, _ := strings.Cut(s, ".")
	out := groupThousands(intPart)
	if frac != "" {
		out += "," + frac
	}
	if neg {
		out = "-" + out
	}
	return out
}

// groupThousands inserta puntos de miles en un entero sin signo.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
