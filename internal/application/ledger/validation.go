package ledger

import (
	"errors"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/fast-api/internal/domain"
	"github.com/jhoicas/fast-api/internal/domain/entity"
	"github.com/jhoicas/fast-api/internal/domain/report"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	mustRegister(v, "quantity", func(fl validator.FieldLevel) bool {
		d, err := report.ParseQuantity(fl.Field().String())
		return err == nil && storableQuantity(d)
	})
	mustRegister(v, "unit", func(fl validator.FieldLevel) bool {
		_, ok := entity.ParseUnit(fl.Field().String())
		return ok
	})
	mustRegister(v, "reason", func(fl validator.FieldLevel) bool {
		_, ok := entity.ParseReason(fl.Field().String())
		return ok
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic("ledger: registrar validación " + tag + ": " + err.Error())
	}
}

// storableQuantity exige una cantidad positiva que siga siendo finita y mayor que cero
// como float64, que es como la guarda SQLite.
func storableQuantity(d decimal.Decimal) bool {
	if !d.IsPositive() {
		return false
	}
	f := d.InexactFloat64()
	return f > 0 && !math.IsInf(f, 0)
}

// validateInput valida in y traduce el primer campo inválido a *domain.ValidationError.
func validateInput(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return domain.NewValidationError(fe.Field(), validationMessage(fe))
	}
	return domain.NewValidationError("", err.Error())
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "campo obligatorio"
	case "quantity":
		return "la cantidad debe ser un número mayor que cero y dentro de rango"
	case "unit":
		return "unidad inválida (kg, un)"
	case "reason":
		return "motivo inválido (Avaria, Doação, Refeitório, Inventário)"
	case "datetime":
		return "fecha inválida, formato YYYY-MM-DD"
	}
	return "valor inválido"
}
