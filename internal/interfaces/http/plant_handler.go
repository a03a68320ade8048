package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vivero-api/internal/application/dto"
	"github.com/jhoicas/vivero-api/internal/application/usecase"
)

// PlantHandler maneja las peticiones HTTP para Plant.
type PlantHandler struct {
	uc *usecase.PlantUseCase
}

// NewPlantHandler construye el handler.
func NewPlantHandler(uc *usecase.PlantUseCase) *PlantHandler {
	return &PlantHandler{uc: uc}
}

// List godoc
// @Summary      Listar plantas
// @Tags         plants
// @Produce      json
// @Param        page        query  int     false  "Página"   default(1)
// @Param        limit       query  int     false  "Límite"   default(20)
// @Param        sort        query  string  false  "Campo (prefijo - para descendente)"
// @Param        search      query  string  false  "Búsqueda en name/description"
// @Param        status      query  string  false  "Filtro por estado"
// @Param        categoryId  query  string  false  "Filtro por pertenencia a categoría"
// @Param        dateFrom    query  string  false  "Desde (RFC3339 o YYYY-MM-DD)"
// @Param        dateTo      query  string  false  "Hasta (inclusivo)"
// @Success      200  {object}  dto.PlantListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/plants [get]
func (h *PlantHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Queries())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener planta por ID
// @Tags         plants
// @Produce      json
// @Param        id   path  string  true  "ID de la planta"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/plants/{id} [get]
func (h *PlantHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.NewError("NOT_FOUND", "planta no encontrada"))
	}
	return c.JSON(dto.Response{Success: true, Data: out})
}

// Create godoc
// @Summary      Crear planta
// @Tags         plants
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePlantRequest  true  "Datos de la planta"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/plants [post]
func (h *PlantHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePlantRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("INVALID_BODY", "cuerpo inválido"))
	}
	if err := validate.Struct(in); err != nil {
		return respondValidation(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Response{
		Success: true,
		Message: "planta creada",
		Data:    out,
	})
}

// Update godoc
// @Summary      Actualizar planta (parcial)
// @Tags         plants
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la planta"
// @Param        body  body  dto.UpdatePlantRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.Response
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/plants/{id} [put]
func (h *PlantHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdatePlantRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("INVALID_BODY", "cuerpo inválido"))
	}
	if err := validate.Struct(in); err != nil {
		return respondValidation(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.NewError("NOT_FOUND", "planta no encontrada"))
	}
	return c.JSON(dto.Response{Success: true, Message: "planta actualizada", Data: out})
}

// Delete godoc
// @Summary      Eliminar planta
// @Tags         plants
// @Produce      json
// @Param        id   path  string  true  "ID de la planta"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/plants/{id} [delete]
func (h *PlantHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Response{Success: true, Message: "planta eliminada"})
}
