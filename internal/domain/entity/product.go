package entity

// Product representa un producto del catálogo (código → descripción).
// El código es único; un insert sobre un código existente no modifica la descripción.
type Product struct {
	Code        string
	Description string
}
