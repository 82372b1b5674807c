// Package spreadsheet lee y escribe tablas en XLSX (excelize) y CSV.
package spreadsheet

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/fast-api/internal/domain/report"
)

// XLSXWriter genera un libro con una hoja por report.Sheet, en memoria.
type XLSXWriter struct {
	// Creator se escribe en las propiedades del documento.
	Creator string
}

// NewXLSXWriter construye el writer.
func NewXLSXWriter(creator string) *XLSXWriter {
	return &XLSXWriter{Creator: creator}
}

// Write serializa las hojas en el orden recibido. La primera fila de cada hoja es el encabezado.
func (w *XLSXWriter) Write(sheets []report.Sheet) ([]byte, error) {
	if len(sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet: no hay hojas para escribir")
	}
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetDocProps(&excelize.DocProperties{Creator: w.Creator, Title: sheets[0].Name}); err != nil {
		return nil, fmt.Errorf("spreadsheet: propiedades: %w", err)
	}
	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("spreadsheet: estilo: %w", err)
	}

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), s.Name); err != nil {
				return nil, fmt.Errorf("spreadsheet: hoja %q: %w", s.Name, err)
			}
		} else if _, err := f.NewSheet(s.Name); err != nil {
			return nil, fmt.Errorf("spreadsheet: hoja %q: %w", s.Name, err)
		}
		if err := writeSheet(f, s, header); err != nil {
			return nil, err
		}
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("spreadsheet: serializar: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, s report.Sheet, headerStyle int) error {
	cols := make([]any, len(s.Table.Columns))
	for i, c := range s.Table.Columns {
		cols[i] = c
	}
	if err := f.SetSheetRow(s.Name, "A1", &cols); err != nil {
		return fmt.Errorf("spreadsheet: encabezado %q: %w", s.Name, err)
	}
	if len(cols) > 0 {
		last, _ := excelize.CoordinatesToCellName(len(cols), 1)
		if err := f.SetCellStyle(s.Name, "A1", last, headerStyle); err != nil {
			return fmt.Errorf("spreadsheet: estilo %q: %w", s.Name, err)
		}
		lastCol, _ := excelize.ColumnNumberToName(len(cols))
		_ = f.SetColWidth(s.Name, "A", lastCol, 16)
	}

	for r, row := range s.Table.Rows {
		cells := make([]any, len(row))
		for i, v := range row {
			cells[i] = cellValue(v)
		}
		start, _ := excelize.CoordinatesToCellName(1, r+2)
		if err := f.SetSheetRow(s.Name, start, &cells); err != nil {
			return fmt.Errorf("spreadsheet: fila %d de %q: %w", r+1, s.Name, err)
		}
	}
	return nil
}

// cellValue convierte a un tipo que excelize escribe de forma nativa. Las cantidades van
// como número para que la planilla pueda sumarlas.
func cellValue(v any) any {
	switch c := v.(type) {
	case nil:
		return ""
	case decimal.Decimal:
		return c.InexactFloat64()
	case *decimal.Decimal:
		if c == nil {
			return ""
		}
		return c.InexactFloat64()
	case string, int, int64, int32, float64, float32, bool:
		return c
	default:
		return report.CellString(c)
	}
}
