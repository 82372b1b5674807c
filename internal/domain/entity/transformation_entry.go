package entity

import "github.com/shopspring/decimal"

// TransformationEntry transformación de carne: un producto origen se convierte en un destino.
// Ambas descripciones son copias tomadas al momento del insert.
type TransformationEntry struct {
	ID                     int64
	Date                   string
	SourceCode             string
	SourceDescription      string
	Quantity               decimal.Decimal
	Unit                   Unit
	DestinationCode        string
	DestinationDescription string
	Lot                    string
}
