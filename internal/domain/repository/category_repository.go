package repository

import (
	"context"

	"github.com/jhoicas/vivero-api/internal/domain/entity"
	"github.com/jhoicas/vivero-api/internal/domain/listquery"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Los métodos de lectura devuelven (nil, nil) cuando el recurso no existe.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	GetByName(ctx context.Context, name string) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	// List y Count deben evaluar el mismo predicado del descriptor:
	// Count ignora página y límite pero nunca los filtros.
	List(ctx context.Context, q *listquery.Descriptor) ([]*entity.Category, error)
	Count(ctx context.Context, q *listquery.Descriptor) (int64, error)
	// ListAll devuelve la colección completa (el árbol siempre se arma entero).
	ListAll(ctx context.Context) ([]*entity.Category, error)
	// Delete elimina y devuelve la fila eliminada, o nil si no existía.
	Delete(ctx context.Context, id string) (*entity.Category, error)
}
