package report

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseQuantity convierte una cantidad escrita por el operador. Acepta coma como separador
// decimal ("10,5" → 10.5). Devuelve error si el texto no es numérico.
func ParseQuantity(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("cantidad vacía")
	}
	d, err := decimal.NewFromString(normalizeDecimal(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("cantidad %q no numérica", s)
	}
	return d, nil
}

// normalizeDecimal: "1.234,5" → "1234.5", "1,234.5" → "1234.5", "10,5" → "10.5".
func normalizeDecimal(s string) string {
	s = strings.ReplaceAll(s, " ", "")
	comma, dot := strings.LastIndex(s, ","), strings.LastIndex(s, ".")
	switch {
	case comma < 0:
		return s
	case dot < 0 || comma > dot:
		s = strings.ReplaceAll(s, ".", "")
		return strings.ReplaceAll(s, ",", ".")
	default:
		return strings.ReplaceAll(s, ",", "")
	}
}

// quantityOf lee una celda de cantidad. Lo no numérico vale cero.
func quantityOf(v any) decimal.Decimal {
	switch q := v.(type) {
	case decimal.Decimal:
		return q
	case *decimal.Decimal:
		if q == nil {
			return decimal.Zero
		}
		return *q
	case float64:
		return decimal.NewFromFloat(q)
	case float32:
		return decimal.NewFromFloat32(q)
	case int:
		return decimal.NewFromInt(int64(q))
	case int64:
		return decimal.NewFromInt(q)
	case string:
		d, err := ParseQuantity(q)
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}
