package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/vivero-api/internal/application/dto"
	"github.com/jhoicas/vivero-api/internal/domain"
	"github.com/jhoicas/vivero-api/internal/domain/entity"
	"github.com/jhoicas/vivero-api/internal/domain/listquery"
	"github.com/jhoicas/vivero-api/internal/domain/repository"
)

// categoryListConfig define qué acepta el listado de categorías.
var categoryListConfig = listquery.Config{
	DefaultLimit:        20,
	MaxLimit:            100,
	DefaultSort:         "createdAt",
	AllowedSortFields:   []string{"name", "createdAt", "updatedAt"},
	AllowedFilterFields: []string{"parentId", "name"},
	SearchFields:        []string{"name", "description"},
	DateField:           "createdAt",
}

// CategoryUseCase casos de uso CRUD, árbol y cascade para categorías.
type CategoryUseCase struct {
	repo       repository.CategoryRepository
	plants     repository.PlantRepository
	staticBase string
}

// NewCategoryUseCase construye el caso de uso. staticBase es la URL base
// para derivar imageUrl en las respuestas.
func NewCategoryUseCase(repo repository.CategoryRepository, plants repository.PlantRepository, staticBase string) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, plants: plants, staticBase: staticBase}
}

// List lista categorías según los query params crudos: filtros, búsqueda,
// rango de fechas, ordenamiento y paginación pasan por el parser de listados.
// La página y el total se consultan en paralelo (ambas lecturas evalúan el
// mismo predicado, el orden entre ellas no afecta el resultado).
func (uc *CategoryUseCase) List(ctx context.Context, params map[string]string) (*dto.CategoryListResponse, error) {
	q, err := categoryListConfig.Parse(params)
	if err != nil {
		return nil, err
	}

	var (
		items []*entity.Category
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = uc.repo.List(gctx, q)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = uc.repo.Count(gctx, q)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	data := make([]dto.CategoryResponse, 0, len(items))
	for _, c := range items {
		data = append(data, *uc.toResponse(c))
	}
	return &dto.CategoryListResponse{
		Success:  true,
		Data:     data,
		PageMeta: dto.NewPageMeta(q.Page, q.Limit, total),
	}, nil
}

// Create crea una categoría. El nombre es único global. Un parentId que no
// resuelve a una categoría existente se tolera (integridad no forzada).
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	existing, err := uc.repo.GetByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	c := &entity.Category{
		ID:          uuid.New().String(),
		ParentID:    in.ParentID,
		Name:        in.Name,
		Description: in.Description,
		Icon:        in.Icon,
		Image:       in.Image,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return uc.toResponse(c), nil
}

// GetByID obtiene una categoría por ID. Devuelve (nil, nil) si no existe.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	return uc.toResponse(c), nil
}

// Update actualización parcial (name/description/icon/parentId).
// Devuelve (nil, nil) si la categoría no existe.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	if in.Name != nil && *in.Name != c.Name {
		other, err := uc.repo.GetByName(ctx, *in.Name)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != c.ID {
			return nil, domain.ErrDuplicate
		}
		c.Name = *in.Name
	}
	if in.Description != nil {
		c.Description = *in.Description
	}
	if in.Icon != nil {
		c.Icon = *in.Icon
	}
	if in.ParentID != nil {
		c.ParentID = *in.ParentID
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return uc.toResponse(c), nil
}

// Delete elimina una categoría y ejecuta el cascade de consistencia:
// toda planta que la referencie pasa a inactive (nunca se borra).
//
// Orden garantizado: el cascade solo corre si el DELETE eliminó
// exactamente una fila; un ID inexistente devuelve ErrNotFound y no toca
// ninguna planta. Los dos pasos NO van en una transacción (dos viajes al
// store); si la desactivación falla tras el borrado, el resultado es
// ErrCascadeIncomplete para que el caller distinga la completitud parcial.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) (*dto.DeleteCategoryResponse, error) {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if deleted == nil {
		return nil, domain.ErrNotFound
	}

	n, err := uc.plants.DeactivateByCategory(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCascadeIncomplete, err)
	}

	return &dto.DeleteCategoryResponse{
		Success: true,
		Message: "categoría eliminada",
		DeletedData: dto.DeletedCategory{
			ID:   deleted.ID,
			Name: deleted.Name,
		},
		DeactivatedPlants: n,
	}, nil
}

// Tree arma el bosque completo de categorías. Siempre lee la colección
// entera: el árbol no se pagina.
func (uc *CategoryUseCase) Tree(ctx context.Context) ([]*dto.CategoryTreeNode, error) {
	all, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return BuildCategoryTree(all, uc.staticBase)
}

func (uc *CategoryUseCase) toResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:          c.ID,
		ParentID:    c.ParentID,
		Name:        c.Name,
		Description: c.Description,
		Icon:        c.Icon,
		Image:       c.Image,
		ImageURL:    dto.ImageURL(uc.staticBase, c.Image),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
