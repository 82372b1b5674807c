package sqlite

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/fast-api/internal/domain/entity"
)

type productRecord struct {
	Code        string `gorm:"column:code;primaryKey"`
	Description string `gorm:"column:description"`
}

func (productRecord) TableName() string { return "products" }

type stockEntryRecord struct {
	ID          int64   `gorm:"column:id;primaryKey;autoIncrement"`
	Date        string  `gorm:"column:date"`
	Code        string  `gorm:"column:code"`
	Description string  `gorm:"column:description"`
	Quantity    float64 `gorm:"column:quantity"`
	Unit        string  `gorm:"column:unit"`
	Reason      string  `gorm:"column:reason"`
	Lot         *string `gorm:"column:lot"`
}

func (stockEntryRecord) TableName() string { return "stock_adjustment_entries" }

type transformationRecord struct {
	ID                     int64   `gorm:"column:id;primaryKey;autoIncrement"`
	Date                   string  `gorm:"column:date"`
	SourceCode             string  `gorm:"column:source_code"`
	SourceDescription      string  `gorm:"column:source_description"`
	Quantity               float64 `gorm:"column:quantity"`
	Unit                   string  `gorm:"column:unit"`
	DestinationCode        string  `gorm:"column:destination_code"`
	DestinationDescription string  `gorm:"column:destination_description"`
	Lot                    *string `gorm:"column:lot"`
}

func (transformationRecord) TableName() string { return "transformation_entries" }

func toStockEntryRecord(e *entity.StockAdjustmentEntry) stockEntryRecord {
	return stockEntryRecord{
		Date:        e.Date,
		Code:        e.Code,
		Description: e.Description,
		Quantity:    e.Quantity.InexactFloat64(),
		Unit:        string(e.Unit),
		Reason:      string(e.Reason),
		Lot:         optional(e.Lot),
	}
}

func (r stockEntryRecord) toEntity() entity.StockAdjustmentEntry {
	return entity.StockAdjustmentEntry{
		ID:          r.ID,
		Date:        r.Date,
		Code:        r.Code,
		Description: r.Description,
		Quantity:    decimal.NewFromFloat(r.Quantity),
		Unit:        entity.Unit(r.Unit),
		Reason:      entity.Reason(r.Reason),
		Lot:         deref(r.Lot),
	}
}

func toTransformationRecord(e *entity.TransformationEntry) transformationRecord {
	return transformationRecord{
		Date:                   e.Date,
		SourceCode:             e.SourceCode,
		SourceDescription:      e.SourceDescription,
		Quantity:               e.Quantity.InexactFloat64(),
		Unit:                   string(e.Unit),
		DestinationCode:        e.DestinationCode,
		DestinationDescription: e.DestinationDescription,
		Lot:                    optional(e.Lot),
	}
}

func (r transformationRecord) toEntity() entity.TransformationEntry {
	return entity.TransformationEntry{
		ID:                     r.ID,
		Date:                   r.Date,
		SourceCode:             r.SourceCode,
		SourceDescription:      r.SourceDescription,
		Quantity:               decimal.NewFromFloat(r.Quantity),
		Unit:                   entity.Unit(r.Unit),
		DestinationCode:        r.DestinationCode,
		DestinationDescription: r.DestinationDescription,
		Lot:                    deref(r.Lot),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
