package ledger

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMustRegister_FallaAlRegistrar(t *testing.T) {
	assert.NotPanics(t, func() { newValidator() })
	assert.Panics(t, func() {
		mustRegister(validator.New(), "", func(validator.FieldLevel) bool { return true })
	})
}

func TestStorableQuantity(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"10.5", true},
		{"0.001", true},
		{"0", false},
		{"-1", false},
		{"1e400", false},
		{"1e-400", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, storableQuantity(decimal.RequireFromString(tc.in)), tc.in)
	}
}
