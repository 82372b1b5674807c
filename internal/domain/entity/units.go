package entity

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Unit unidad de medida de un registro.
type Unit string

const (
	UnitKG Unit = "kg"
	UnitUN Unit = "un"
)

// Units devuelve las unidades aceptadas en el orden mostrado al operador.
func Units() []Unit { return []Unit{UnitKG, UnitUN} }

// ParseUnit normaliza y valida una unidad ("KG", " kg " → kg).
func ParseUnit(s string) (Unit, bool) {
	u := Unit(strings.ToLower(strings.TrimSpace(s)))
	switch u {
	case UnitKG, UnitUN:
		return u, true
	}
	return "", false
}

// Reason motivo de un ajuste de stock de la panadería.
type Reason string

const (
	ReasonAvaria     Reason = "Avaria"
	ReasonDoacao     Reason = "Doação"
	ReasonRefeitorio Reason = "Refeitório"
	ReasonInventario Reason = "Inventário"
)

// Reasons devuelve los motivos aceptados en el orden mostrado al operador.
func Reasons() []Reason {
	return []Reason{ReasonAvaria, ReasonDoacao, ReasonRefeitorio, ReasonInventario}
}

// ParseReason compara en forma NFC e insensible a mayúsculas; "doação" escrito con
// diacríticos combinados (NFD) también es aceptado.
func ParseReason(s string) (Reason, bool) {
	in := norm.NFC.String(strings.TrimSpace(s))
	for _, r := range Reasons() {
		if strings.EqualFold(in, string(r)) {
			return r, true
		}
	}
	return "", false
}

// Kind distingue los dos libros de registros.
type Kind string

const (
	KindBakery Kind = "bakery"
	KindMeat   Kind = "meat"
)

// ParseKind valida el tipo de libro.
func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindBakery, KindMeat:
		return Kind(s), true
	}
	return "", false
}
