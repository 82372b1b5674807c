package export

import (
	"context"

	"github.com/jhoicas/fast-api/internal/domain/entity"
	"github.com/jhoicas/fast-api/internal/domain/report"
)

// EntrySource lectura del libro de registros. date vacío devuelve todo.
type EntrySource interface {
	ListStockEntries(ctx context.Context, date string) ([]entity.StockAdjustmentEntry, error)
	ListTransformations(ctx context.Context, date string) ([]entity.TransformationEntry, error)
}

// SpreadsheetWriter serializa hojas a un libro XLSX.
type SpreadsheetWriter interface {
	Write(sheets []report.Sheet) ([]byte, error)
}

// SummaryRenderer genera el resumen imprimible (PDF) de las hojas agregadas.
type SummaryRenderer interface {
	Render(title string, sheets []report.Sheet) ([]byte, error)
}

// Artifact archivo generado en memoria, listo para descargar.
type Artifact struct {
	FileName    string
	ContentType string
	Data        []byte
}
