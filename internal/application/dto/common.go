package dto

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/fast-api/internal/domain/report"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// MessageResponse respuesta simple de confirmación.
type MessageResponse struct {
	Message string `json:"message"`
}

// Quantity cantidad recibida en JSON: acepta número (10.5) o texto con coma ("10,5").
// Un texto no numérico deja Valid en false; la validación lo rechaza después.
type Quantity struct {
	Value decimal.Decimal
	Raw   string
	Valid bool
}

// UnmarshalJSON implementa json.Unmarshaler.
func (q *Quantity) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*q = Quantity{}
		return nil
	}
	var raw string
	if len(b) > 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &raw); err != nil {
			return fmt.Errorf("quantity: %w", err)
		}
	} else {
		raw = string(b)
	}
	q.Raw = raw
	d, err := report.ParseQuantity(raw)
	q.Value, q.Valid = d, err == nil
	return nil
}

// MarshalJSON implementa json.Marshaler.
func (q Quantity) MarshalJSON() ([]byte, error) {
	if !q.Valid {
		return []byte("null"), nil
	}
	return q.Value.MarshalJSON()
}
