package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jcastror/resto-inventario/internal/application/dto"
	"github.com/jcastror/resto-inventario/internal/application/usecase"
	"github.com/jcastror/resto-inventario/internal/domain"
)

// ContainerHandler maneja las peticiones HTTP para Container (protegido).
type ContainerHandler struct {
	uc *usecase.ContainerUseCase
}

// NewContainerHandler construye el handler.
func NewContainerHandler(uc *usecase.ContainerUseCase) *ContainerHandler {
	return &ContainerHandler{uc: uc}
}

// Create godoc
// @Summary      Crear contenedor
// @Tags         containers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateContainerRequest  true  "Datos del contenedor"
// @Success      201   {object}  dto.ContainerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/containers [post]
func (h *ContainerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateContainerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un contenedor con ese nombre"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener contenedor por ID
// @Tags         containers
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del contenedor"
// @Success      200  {object}  dto.ContainerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/containers/{id} [get]
func (h *ContainerHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contenedor no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar contenedores
// @Tags         containers
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.ContainerListResponse
// @Router       /api/containers [get]
func (h *ContainerHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar contenedor
// @Tags         containers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del contenedor"
// @Param        body  body  dto.UpdateContainerRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ContainerResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/containers/{id} [put]
func (h *ContainerHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateContainerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(GetUserID(c), id, in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un contenedor con ese nombre"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contenedor no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar contenedor (soft delete)
// @Tags         containers
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del contenedor"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/containers/{id} [delete]
func (h *ContainerHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(GetUserID(c), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contenedor no encontrado"})
		}
		if errors.Is(err, domain.ErrHasDependents) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "HAS_DEPENDENTS", Message: "el contenedor tiene stock activo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "contenedor eliminado"})
}
