package http

import (
	"io"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/jhoicas/fast-api/internal/application/catalog"
	"github.com/jhoicas/fast-api/internal/application/dto"
	"github.com/jhoicas/fast-api/internal/domain"
	"github.com/jhoicas/fast-api/internal/infrastructure/spreadsheet"
)

// maxImportSize límite del archivo de importación del catálogo.
const maxImportSize = 10 << 20

// ProductHandler maneja las peticiones HTTP del catálogo de productos.
type ProductHandler struct {
	uc *catalog.UseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *catalog.UseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar producto (no modifica un código existente)
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Código y descripción"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.UpsertIgnore(c.UserContext(), in.Code, in.Description); err != nil {
		return writeError(c, err)
	}
	desc, err := h.uc.Lookup(c.UserContext(), in.Code)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(productResponse(in.Code, desc))
}

// Lookup godoc
// @Summary      Buscar descripción por código
// @Tags         products
// @Produce      json
// @Param        code  path  string  true  "Código del producto"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/products/{code} [get]
func (h *ProductHandler) Lookup(c *fiber.Ctx) error {
	code, err := pathCode(c)
	if err != nil {
		return writeError(c, err)
	}
	desc, err := h.uc.Lookup(c.UserContext(), code)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(productResponse(code, desc))
}

// pathCode devuelve el parámetro :code decodificado y copiado fuera del buffer de fasthttp.
func pathCode(c *fiber.Ctx) (string, error) {
	code, err := url.PathUnescape(c.Params("code"))
	if err != nil {
		return "", domain.NewValidationError("code", "código mal codificado")
	}
	return utils.CopyString(code), nil
}

// List godoc
// @Summary      Listar catálogo
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	out := dto.ProductListResponse{Items: make([]dto.ProductResponse, 0, len(list)), Total: len(list)}
	for _, p := range list {
		out.Items = append(out.Items, productResponse(p.Code, p.Description))
	}
	return c.JSON(out)
}

// Import godoc
// @Summary      Reemplazar el catálogo desde un archivo (.xlsx o .csv con columnas codigo y descricao)
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Archivo del catálogo"
// @Success      200   {object}  dto.ImportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products/import [post]
func (h *ProductHandler) Import(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return writeError(c, domain.NewValidationError("file", "archivo requerido"))
	}
	if fh.Size > maxImportSize {
		return writeError(c, domain.NewValidationError("file", "archivo demasiado grande"))
	}
	f, err := fh.Open()
	if err != nil {
		return writeError(c, err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return writeError(c, err)
	}

	table, err := spreadsheet.ReadFile(fh.Filename, data)
	if err != nil {
		return writeError(c, err)
	}
	n, err := h.uc.Import(c.UserContext(), table)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ImportResponse{Imported: n})
}

func productResponse(code, desc string) dto.ProductResponse {
	return dto.ProductResponse{Code: code, Description: desc, Found: desc != ""}
}
