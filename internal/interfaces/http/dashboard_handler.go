package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jcastror/resto-inventario/internal/application/analytics"
	"github.com/jcastror/resto-inventario/internal/application/dto"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve el resumen del inventario.
// GET /api/dashboard/summary
//
// Respuesta: DashboardSummaryDTO (total_products, total_value,
// low_stock_items, category_count, container_count, categories[], date_label).
// No requiere parámetros; los agregados se calculan sobre el estado actual.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(summary)
}
