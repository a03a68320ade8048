package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vivero-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC *usecase.CategoryUseCase
	PlantUC    *usecase.PlantUseCase
	StatsUC    *usecase.StatsUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Categories
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC, deps.StatsUC)
	categories.Get("/", categoryHandler.List)
	// Las rutas fijas van antes que /:id para que el router no las capture.
	categories.Get("/tree", categoryHandler.Tree)
	categories.Get("/popular", categoryHandler.MostPopular)
	categories.Get("/with-counts", categoryHandler.WithCounts)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Post("/", categoryHandler.Create)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Plants
	plants := api.Group("/plants")
	plantHandler := NewPlantHandler(deps.PlantUC)
	plants.Get("/", plantHandler.List)
	plants.Get("/:id", plantHandler.GetByID)
	plants.Post("/", plantHandler.Create)
	plants.Put("/:id", plantHandler.Update)
	plants.Delete("/:id", plantHandler.Delete)
}
