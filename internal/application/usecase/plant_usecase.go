package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/vivero-api/internal/application/dto"
	"github.com/jhoicas/vivero-api/internal/domain"
	"github.com/jhoicas/vivero-api/internal/domain/entity"
	"github.com/jhoicas/vivero-api/internal/domain/listquery"
	"github.com/jhoicas/vivero-api/internal/domain/repository"
)

// plantListConfig define qué acepta el listado de plantas. El filtro
// categoryId es pertenencia en el arreglo de membresías, no igualdad
// de columna; el ejecutor lo resuelve por el mapeo de columnas.
var plantListConfig = listquery.Config{
	DefaultLimit:        20,
	MaxLimit:            100,
	DefaultSort:         "createdAt",
	AllowedSortFields:   []string{"name", "status", "createdAt", "updatedAt"},
	AllowedFilterFields: []string{"status", "categoryId"},
	SearchFields:        []string{"name", "description"},
	DateField:           "createdAt",
}

// PlantUseCase casos de uso CRUD para plantas.
type PlantUseCase struct {
	repo       repository.PlantRepository
	staticBase string
}

// NewPlantUseCase construye el caso de uso.
func NewPlantUseCase(repo repository.PlantRepository, staticBase string) *PlantUseCase {
	return &PlantUseCase{repo: repo, staticBase: staticBase}
}

// List lista plantas vía el parser de listados; página y total en paralelo.
func (uc *PlantUseCase) List(ctx context.Context, params map[string]string) (*dto.PlantListResponse, error) {
	q, err := plantListConfig.Parse(params)
	if err != nil {
		return nil, err
	}

	var (
		items []*entity.Plant
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

	data := make([]dto.PlantResponse, 0, len(items))
	for _, p := range items {
		data = append(data, *uc.toResponse(p))
	}
	return &dto.PlantListResponse{
		Success:  true,
		Data:     data,
		PageMeta: dto.NewPageMeta(q.Page, q.Limit, total),
	}, nil
}

// Create crea una planta. Status por defecto: active. Entradas de
// categoryIds que no resuelven a categorías existentes se toleran
// (las vistas agregadas las omiten).
func (uc *PlantUseCase) Create(ctx context.Context, in dto.CreatePlantRequest) (*dto.PlantResponse, error) {
	status := in.Status
	if status == "" {
		status = entity.PlantStatusActive
	}
	categoryIDs := in.CategoryIDs
	if categoryIDs == nil {
		categoryIDs = []string{}
	}
	now := time.Now()
	p := &entity.Plant{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Image:       in.Image,
		Status:      status,
		CategoryIDs: categoryIDs,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return uc.toResponse(p), nil
}

// GetByID obtiene una planta por ID. Devuelve (nil, nil) si no existe.
func (uc *PlantUseCase) GetByID(ctx context.Context, id string) (*dto.PlantResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return uc.toResponse(p), nil
}

// Update actualización parcial. Devuelve (nil, nil) si no existe.
func (uc *PlantUseCase) Update(ctx context.Context, id string, in dto.UpdatePlantRequest) (*dto.PlantResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Image != nil {
		p.Image = *in.Image
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	if in.CategoryIDs != nil {
		p.CategoryIDs = in.CategoryIDs
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return uc.toResponse(p), nil
}

// Delete elimina una planta por ID. ErrNotFound si no existía.
func (uc *PlantUseCase) Delete(ctx context.Context, id string) error {
	ok, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

func (uc *PlantUseCase) toResponse(p *entity.Plant) *dto.PlantResponse {
	categoryIDs := p.CategoryIDs
	if categoryIDs == nil {
		categoryIDs = []string{}
	}
	return &dto.PlantResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Image:       p.Image,
		ImageURL:    dto.ImageURL(uc.staticBase, p.Image),
		Status:      p.Status,
		CategoryIDs: categoryIDs,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
