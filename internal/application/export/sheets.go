package export

import (
	"fmt"

	"github.com/jhoicas/fast-api/internal/domain/entity"
	"github.com/jhoicas/fast-api/internal/domain/report"
)

// Nombres de hojas y columnas del artefacto. Los consumen planillas existentes.
const (
	SheetDetail        = "Detalhado"
	SheetByReason      = "Por Motivo"
	SheetByProduct     = "Por Produto"
	SheetByDestination = "Por Destino"

	ColID                     = "id"
	ColDate                   = "data"
	ColCode                   = "codigo"
	ColDescription            = "descricao"
	ColQuantity               = "quantidade"
	ColUnit                   = "unidade"
	ColReason                 = "motivo"
	ColLot                    = "lote"
	ColSourceCode             = "codigo_origem"
	ColSourceDescription      = "descricao_origem"
	ColDestinationCode        = "codigo_destino"
	ColDestinationDescription = "descricao_destino"
)

// StockEntriesTable tabla detallada de ajustes en el orden recibido.
func StockEntriesTable(entries []entity.StockAdjustmentEntry) report.Table {
	t := report.NewTable(ColID, ColDate, ColCode, ColDescription, ColQuantity, ColUnit, ColReason, ColLot)
	for _, e := range entries {
		t.Append(e.ID, e.Date, e.Code, e.Description, e.Quantity, string(e.Unit), string(e.Reason), e.Lot)
	}
	return t
}

// TransformationsTable tabla detallada de transformaciones en el orden recibido.
func TransformationsTable(entries []entity.TransformationEntry) report.Table {
	t := report.NewTable(ColID, ColDate, ColSourceCode, ColSourceDescription, ColQuantity, ColUnit,
		ColDestinationCode, ColDestinationDescription, ColLot)
	for _, e := range entries {
		t.Append(e.ID, e.Date, e.SourceCode, e.SourceDescription, e.Quantity, string(e.Unit),
			e.DestinationCode, e.DestinationDescription, e.Lot)
	}
	return t
}

// BakerySheets Detalhado, Por Motivo y Por Produto.
func BakerySheets(entries []entity.StockAdjustmentEntry) ([]report.Sheet, error) {
	detail := StockEntriesTable(entries)
	return withAggregates(detail,
		aggregate{SheetByReason, []string{ColReason}},
		aggregate{SheetByProduct, []string{ColCode, ColDescription}},
	)
}

// MeatSheets Detalhado, Por Produto (origen) y Por Destino.
func MeatSheets(entries []entity.TransformationEntry) ([]report.Sheet, error) {
	detail := TransformationsTable(entries)
	return withAggregates(detail,
		aggregate{SheetByProduct, []string{ColSourceCode, ColSourceDescription}},
		aggregate{SheetByDestination, []string{ColDestinationCode}},
	)
}

type aggregate struct {
	sheet string
	keys  []string
}

func withAggregates(detail report.Table, aggs ...aggregate) ([]report.Sheet, error) {
	sheets := []report.Sheet{{Name: SheetDetail, Table: detail}}
	for _, a := range aggs {
		t, err := report.AggregateBy(detail, a.keys, ColQuantity)
		if err != nil {
			return nil, fmt.Errorf("hoja %s: %w", a.sheet, err)
		}
		sheets = append(sheets, report.Sheet{Name: a.sheet, Table: t})
	}
	return sheets, nil
}
