package http

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jcastror/resto-inventario/internal/application/dto"
	appkardex "github.com/jcastror/resto-inventario/internal/application/kardex"
	"github.com/jcastror/resto-inventario/internal/domain"
)

// KardexHandler maneja la consulta del kardex y sus exportaciones (protegido).
type KardexHandler struct {
	uc       *appkardex.UseCase
	exportUC *appkardex.ExportUseCase
}

// NewKardexHandler construye el handler.
func NewKardexHandler(uc *appkardex.UseCase, exportUC *appkardex.ExportUseCase) *KardexHandler {
	return &KardexHandler{uc: uc, exportUC: exportUC}
}

// Get godoc
// @Summary      Kardex de un producto
// @Description  Movimientos con saldo corrido más estadísticas del período.
//
//	from/to aceptan fecha (2006-01-02) o timestamp RFC3339; un `to`
//	de solo fecha cubre el día completo.
//
// @Tags         kardex
// @Security     Bearer
// @Produce      json
// @Param        id    path   string  true   "ID del producto"
// @Param        from  query  string  false  "Inicio del período"
// @Param        to    query  string  false  "Fin del período"
// @Success      200   {object}  dto.KardexResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/kardex [get]
func (h *KardexHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	from, to, err := rangeParams(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_RANGE", Message: err.Error()})
	}
	out, err := h.uc.Compute(c.Context(), id, from, to)
	if err != nil {
		return kardexError(c, err)
	}
	return c.JSON(out)
}

// ExportXLSX godoc
// @Summary      Exportar kardex a Excel
// @Tags         kardex
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        id    path   string  true   "ID del producto"
// @Param        from  query  string  false  "Inicio del período"
// @Param        to    query  string  false  "Fin del período"
// @Success      200   {file}    file
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/kardex/export [get]
func (h *KardexHandler) ExportXLSX(c *fiber.Ctx) error {
	return h.export(c, h.exportUC.ExportWorkbook)
}

// ExportPDF godoc
// @Summary      Exportar kardex a PDF
// @Tags         kardex
// @Security     Bearer
// @Produce      application/pdf
// @Param        id    path   string  true   "ID del producto"
// @Param        from  query  string  false  "Inicio del período"
// @Param        to    query  string  false  "Fin del período"
// @Success      200   {file}    file
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/kardex/pdf [get]
func (h *KardexHandler) ExportPDF(c *fiber.Ctx) error {
	return h.export(c, h.exportUC.ExportPDF)
}

type exportFn func(ctx context.Context, productID string, from, to *time.Time) (*appkardex.ExportResult, error)

func (h *KardexHandler) export(c *fiber.Ctx, fn exportFn) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	from, to, err := rangeParams(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_RANGE", Message: err.Error()})
	}
	result, err := fn(c.Context(), id, from, to)
	if err != nil {
		return kardexError(c, err)
	}
	c.Set(fiber.HeaderContentType, result.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+result.Filename+`"`)
	return c.Send(result.Data)
}

func kardexError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_RANGE", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// rangeParams parsea from/to de la query string. Acepta fecha sin hora o
// RFC3339; la fecha sin hora conserva el reloj en cero para que el rango
// normalizado extienda `to` al fin del día.
func rangeParams(c *fiber.Ctx) (*time.Time, *time.Time, error) {
	from, err := parseTimeParam(c.Query("from"))
	if err != nil {
		return nil, nil, errors.New("from: formato esperado 2006-01-02 o RFC3339")
	}
	to, err := parseTimeParam(c.Query("to"))
	if err != nil {
		return nil, nil, errors.New("to: formato esperado 2006-01-02 o RFC3339")
	}
	return from, to, nil
}

func parseTimeParam(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
