package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vivero-api/internal/application/dto"
	"github.com/jhoicas/vivero-api/internal/application/usecase"
)

// CategoryHandler maneja las peticiones HTTP para Category.
type CategoryHandler struct {
	uc    *usecase.CategoryUseCase
	stats *usecase.StatsUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase, stats *usecase.StatsUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc, stats: stats}
}

// List godoc
// @Summary      Listar categorías
// @Tags         categories
// @Produce      json
// @Param        page      query  int     false  "Página"          default(1)
// @Param        limit     query  int     false  "Límite"          default(20)
// @Param        sort      query  string  false  "Campo (prefijo - para descendente)"
// @Param        search    query  string  false  "Búsqueda en name/description"
// @Param        parentId  query  string  false  "Filtro por padre"
// @Param        dateFrom  query  string  false  "Desde (RFC3339 o YYYY-MM-DD)"
// @Param        dateTo    query  string  false  "Hasta (inclusivo)"
// @Success      200  {object}  dto.CategoryListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Queries())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Tree godoc
// @Summary      Árbol completo de categorías
// @Tags         categories
// @Produce      json
// @Success      200  {object}  dto.Response
// @Router       /api/categories/tree [get]
func (h *CategoryHandler) Tree(c *fiber.Ctx) error {
	out, err := h.uc.Tree(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Response{Success: true, Data: out})
}

// MostPopular godoc
// @Summary      Categorías más populares (por cantidad de plantas)
// @Tags         categories
// @Produce      json
// @Success      200  {object}  dto.Response
// @Router       /api/categories/popular [get]
func (h *CategoryHandler) MostPopular(c *fiber.Ctx) error {
	out, err := h.stats.MostPopular(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Response{Success: true, Data: out})
}

// WithCounts godoc
// @Summary      Categorías con conteo de plantas (incluye cero)
// @Tags         categories
// @Produce      json
// @Success      200  {object}  dto.Response
// @Router       /api/categories/with-counts [get]
func (h *CategoryHandler) WithCounts(c *fiber.Ctx) error {
	out, err := h.stats.WithCounts(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Response{Success: true, Data: out})
}

// GetByID godoc
// @Summary      Obtener categoría por ID
// @Tags         categories
// @Produce      json
// @Param        id   path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [get]
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.NewError("NOT_FOUND", "categoría no encontrada"))
	}
	return c.JSON(dto.Response{Success: true, Data: out})
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "Datos de la categoría"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
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
		Message: "categoría creada",
		Data:    out,
	})
}

// Update godoc
// @Summary      Actualizar categoría (parcial)
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la categoría"
// @Param        body  body  dto.UpdateCategoryRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.Response
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateCategoryRequest
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
		return c.Status(fiber.StatusNotFound).JSON(dto.NewError("NOT_FOUND", "categoría no encontrada"))
	}
	return c.JSON(dto.Response{Success: true, Message: "categoría actualizada", Data: out})
}

// Delete godoc
// @Summary      Eliminar categoría (cascade: desactiva sus plantas)
// @Tags         categories
// @Produce      json
// @Param        id   path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.DeleteCategoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.Delete(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
