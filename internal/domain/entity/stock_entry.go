package entity

import "github.com/shopspring/decimal"

// DateLayout formato de la fecha de un registro ("YYYY-MM-DD").
const DateLayout = "2006-01-02"

// StockAdjustmentEntry registro de la panadería (avaria, doação, refeitório, inventário).
// Description es una copia de Product.Description al momento del insert.
type StockAdjustmentEntry struct {
	ID          int64
	Date        string
	Code        string
	Description string
	Quantity    decimal.Decimal
	Unit        Unit
	Reason      Reason
	Lot         string
}
