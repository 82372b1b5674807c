package dto

import "github.com/shopspring/decimal"

// CreateStockEntryRequest body para POST /api/bakery/entries.
// Description vacío se completa con la descripción del catálogo al momento del guardado.
type CreateStockEntryRequest struct {
	Date        string   `json:"date,omitempty"`
	Code        string   `json:"code"`
	Description string   `json:"description,omitempty"`
	Quantity    Quantity `json:"quantity"`
	Unit        string   `json:"unit"`
	Reason      string   `json:"reason"`
	Lot         string   `json:"lot,omitempty"`
}

// CreateTransformationRequest body para POST /api/meat/transformations.
type CreateTransformationRequest struct {
	Date                   string   `json:"date,omitempty"`
	SourceCode             string   `json:"source_code"`
	SourceDescription      string   `json:"source_description,omitempty"`
	Quantity               Quantity `json:"quantity"`
	Unit                   string   `json:"unit"`
	DestinationCode        string   `json:"destination_code"`
	DestinationDescription string   `json:"destination_description,omitempty"`
	Lot                    string   `json:"lot,omitempty"`
}

// CreatedResponse id asignado por el almacén.
type CreatedResponse struct {
	ID int64 `json:"id"`
}

// StockEntryResponse salida de un registro de la panadería.
type StockEntryResponse struct {
	ID          int64           `json:"id"`
	Date        string          `json:"date"`
	Code        string          `json:"code"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	Reason      string          `json:"reason"`
	Lot         string          `json:"lot,omitempty"`
}

// TransformationResponse salida de una transformación de carne.
type TransformationResponse struct {
	ID                     int64           `json:"id"`
	Date                   string          `json:"date"`
	SourceCode             string          `json:"source_code"`
	SourceDescription      string          `json:"source_description"`
	Quantity               decimal.Decimal `json:"quantity"`
	Unit                   string          `json:"unit"`
	DestinationCode        string          `json:"destination_code"`
	DestinationDescription string          `json:"destination_description"`
	Lot                    string          `json:"lot,omitempty"`
}

// EntryListResponse listado de registros.
type EntryListResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}
