package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fast-api/internal/application/catalog"
	"github.com/jhoicas/fast-api/internal/application/dto"
	"github.com/jhoicas/fast-api/internal/application/ledger"
	"github.com/jhoicas/fast-api/internal/domain"
	"github.com/jhoicas/fast-api/internal/domain/entity"
)

// EntryHandler maneja los registros de la panadería y de la carnicería.
type EntryHandler struct {
	ledger  *ledger.UseCase
	catalog *catalog.UseCase
}

// NewEntryHandler construye el handler. Las descripciones vacías se completan con el catálogo.
func NewEntryHandler(l *ledger.UseCase, cat *catalog.UseCase) *EntryHandler {
	return &EntryHandler{ledger: l, catalog: cat}
}

// CreateStockEntry godoc
// @Summary      Registrar ajuste de stock de la panadería
// @Tags         bakery
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockEntryRequest  true  "Ajuste"
// @Success      201   {object}  dto.CreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/bakery/entries [post]
func (h *EntryHandler) CreateStockEntry(c *fiber.Ctx) error {
	var in dto.CreateStockEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	desc, err := h.describe(c, in.Code, in.Description)
	if err != nil {
		return writeError(c, err)
	}
	id, err := h.ledger.AppendStockEntry(c.UserContext(), ledger.StockEntryInput{
		Date:        in.Date,
		Code:        in.Code,
		Description: desc,
		Quantity:    in.Quantity.Raw,
		Unit:        in.Unit,
		Reason:      in.Reason,
		Lot:         in.Lot,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{ID: id})
}

// ListStockEntries godoc
// @Summary      Listar ajustes de la panadería
// @Tags         bakery
// @Produce      json
// @Param        date  query  string  false  "YYYY-MM-DD o today; vacío lista todo"
// @Success      200   {object}  dto.EntryListResponse[dto.StockEntryResponse]
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/bakery/entries [get]
func (h *EntryHandler) ListStockEntries(c *fiber.Ctx) error {
	list, err := h.ledger.ListStockEntries(c.UserContext(), c.Query("date"))
	if err != nil {
		return writeError(c, err)
	}
	out := dto.EntryListResponse[dto.StockEntryResponse]{Items: make([]dto.StockEntryResponse, 0, len(list)), Total: len(list)}
	for _, e := range list {
		out.Items = append(out.Items, dto.StockEntryResponse{
			ID: e.ID, Date: e.Date, Code: e.Code, Description: e.Description, Quantity: e.Quantity,
			Unit: string(e.Unit), Reason: string(e.Reason), Lot: e.Lot,
		})
	}
	return c.JSON(out)
}

// CreateTransformation godoc
// @Summary      Registrar transformación de carne
// @Tags         meat
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransformationRequest  true  "Transformación"
// @Success      201   {object}  dto.CreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/meat/transformations [post]
func (h *EntryHandler) CreateTransformation(c *fiber.Ctx) error {
	var in dto.CreateTransformationRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	srcDesc, err := h.describe(c, in.SourceCode, in.SourceDescription)
	if err != nil {
		return writeError(c, err)
	}
	dstDesc, err := h.describe(c, in.DestinationCode, in.DestinationDescription)
	if err != nil {
		return writeError(c, err)
	}
	id, err := h.ledger.AppendTransformationEntry(c.UserContext(), ledger.TransformationInput{
		Date:                   in.Date,
		SourceCode:             in.SourceCode,
		SourceDescription:      srcDesc,
		Quantity:               in.Quantity.Raw,
		Unit:                   in.Unit,
		DestinationCode:        in.DestinationCode,
		DestinationDescription: dstDesc,
		Lot:                    in.Lot,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{ID: id})
}

// ListTransformations godoc
// @Summary      Listar transformaciones de carne
// @Tags         meat
// @Produce      json
// @Param        date  query  string  false  "YYYY-MM-DD o today; vacío lista todo"
// @Success      200   {object}  dto.EntryListResponse[dto.TransformationResponse]
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/meat/transformations [get]
func (h *EntryHandler) ListTransformations(c *fiber.Ctx) error {
	list, err := h.ledger.ListTransformations(c.UserContext(), c.Query("date"))
	if err != nil {
		return writeError(c, err)
	}
	out := dto.EntryListResponse[dto.TransformationResponse]{Items: make([]dto.TransformationResponse, 0, len(list)), Total: len(list)}
	for _, e := range list {
		out.Items = append(out.Items, dto.TransformationResponse{
			ID: e.ID, Date: e.Date, SourceCode: e.SourceCode, SourceDescription: e.SourceDescription,
			Quantity: e.Quantity, Unit: string(e.Unit), DestinationCode: e.DestinationCode,
			DestinationDescription: e.DestinationDescription, Lot: e.Lot,
		})
	}
	return c.JSON(out)
}

// Delete devuelve el handler DELETE para el libro kind. Un id inexistente responde 204.
//
// @Summary      Eliminar registro
// @Tags         bakery,meat
// @Param        id  path  int  true  "ID del registro"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/bakery/entries/{id} [delete]
// @Router       /api/meat/transformations/{id} [delete]
func (h *EntryHandler) Delete(kind entity.Kind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return writeError(c, domain.NewValidationError("id", "id inválido"))
		}
		if err := h.ledger.DeleteByID(c.UserContext(), kind, int64(id)); err != nil {
			return writeError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// describe devuelve desc o, si está vacío, la descripción registrada para code.
func (h *EntryHandler) describe(c *fiber.Ctx, code, desc string) (string, error) {
	if strings.TrimSpace(desc) != "" || h.catalog == nil {
		return desc, nil
	}
	return h.catalog.Lookup(c.UserContext(), code)
}
