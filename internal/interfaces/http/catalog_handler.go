package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastror/resto-inventario/internal/application/dto"
	"github.com/jcastror/resto-inventario/internal/application/usecase"
)

// CatalogHandler expone los catálogos de solo lectura para los formularios
// del frontend: categorías, unidades y motivos de movimiento.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// Categories GET /api/categories
func (h *CatalogHandler) Categories(c *fiber.Ctx) error {
	items, err := h.uc.Categories()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.CatalogResponse{Categories: items})
}

// Units GET /api/units
func (h *CatalogHandler) Units(c *fiber.Ctx) error {
	items, err := h.uc.Units()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.CatalogResponse{Units: items})
}

// MovementReasons GET /api/movement-reasons
func (h *CatalogHandler) MovementReasons(c *fiber.Ctx) error {
	items, err := h.uc.MovementReasons()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.CatalogResponse{MovementReasons: items})
}
