package repository

import (
	"context"

	"github.com/jhoicas/vivero-api/internal/domain/entity"
	"github.com/jhoicas/vivero-api/internal/domain/listquery"
)

// PlantRepository define el puerto de persistencia para Plant (DIP).
type PlantRepository interface {
	Create(ctx context.Context, plant *entity.Plant) error
	GetByID(ctx context.Context, id string) (*entity.Plant, error)
	Update(ctx context.Context, plant *entity.Plant) error
	List(ctx context.Context, q *listquery.Descriptor) ([]*entity.Plant, error)
	Count(ctx context.Context, q *listquery.Descriptor) (int64, error)
	// Delete devuelve false si el ID no existía.
	Delete(ctx context.Context, id string) (bool, error)
	// DeactivateByCategory marca status=inactive en toda planta cuyo
	// category_ids contenga categoryID, sin tocar la membresía ni borrar.
	// Devuelve la cantidad de filas afectadas (cero no es error).
	DeactivateByCategory(ctx context.Context, categoryID string) (int64, error)
}
