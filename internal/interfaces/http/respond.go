package http

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vivero-api/internal/application/dto"
	"github.com/jhoicas/vivero-api/internal/domain"
)

// validate instancia compartida para los DTOs de entrada (tags `validate`).
var validate = validator.New(validator.WithRequiredStructEnabled())

// respondError mapea los errores de dominio a códigos HTTP. Errores no
// reconocidos se responden como INTERNAL opaco: el texto del error de
// storage no se filtra al caller.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidQuery):
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("INVALID_QUERY", err.Error()))
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("VALIDATION", err.Error()))
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.NewError("NOT_FOUND", "recurso no encontrado"))
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.NewError("DUPLICATE", "ya existe un recurso con ese nombre"))
	case errors.Is(err, domain.ErrCascadeIncomplete):
		// Completitud parcial: la categoría se eliminó pero quedan plantas
		// sin desactivar. Distinguible de un fallo total y de un éxito.
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError("CASCADE_INCOMPLETE",
			"la categoría fue eliminada pero la desactivación de plantas falló; reintente la consistencia"))
	case errors.Is(err, domain.ErrHierarchyCycle):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError("DATA_INTEGRITY", err.Error()))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError("INTERNAL", "error interno"))
	}
}

// respondValidation formatea errores del validador de structs como 400.
func respondValidation(c *fiber.Ctx, err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		f := verrs[0]
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("VALIDATION",
			"campo inválido: "+f.Field()+" ("+f.Tag()+")"))
	}
	return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("VALIDATION", "entrada inválida"))
}
