package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fast-api/internal/application/export"
	"github.com/jhoicas/fast-api/internal/domain/entity"
)

// ExportHandler descarga de artefactos (XLSX y PDF).
type ExportHandler struct {
	uc *export.UseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *export.UseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// Export godoc
// @Summary      Descargar planilla (Detalhado + agregados)
// @Tags         bakery,meat
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/bakery/export [get]
// @Router       /api/meat/export [get]
func (h *ExportHandler) Export(kind entity.Kind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		art, err := h.uc.Export(c.UserContext(), kind)
		if err != nil {
			return writeError(c, err)
		}
		return sendArtifact(c, art)
	}
}

// Summary godoc
// @Summary      Descargar resumen PDF de los agregados
// @Tags         bakery,meat
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/bakery/summary [get]
// @Router       /api/meat/summary [get]
func (h *ExportHandler) Summary(kind entity.Kind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		art, err := h.uc.Summary(c.UserContext(), kind)
		if err != nil {
			return writeError(c, err)
		}
		return sendArtifact(c, art)
	}
}

func sendArtifact(c *fiber.Ctx, art export.Artifact) error {
	c.Set(fiber.HeaderContentType, art.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", art.FileName))
	return c.Send(art.Data)
}
