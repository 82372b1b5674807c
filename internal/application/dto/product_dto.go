package dto

// CreateProductRequest entrada para registrar un producto en el catálogo.
type CreateProductRequest struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// ProductResponse salida de un producto. Found es false cuando el código no existe
// (Description vacío); no es un error.
type ProductResponse struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Found       bool   `json:"found"`
}

// ProductListResponse catálogo completo.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// ImportResponse resultado de la importación del catálogo.
type ImportResponse struct {
	Imported int `json:"imported"`
}
