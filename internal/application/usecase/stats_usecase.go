package usecase

import (
	"context"

	"github.com/jhoicas/vivero-api/internal/application/dto"
	"github.com/jhoicas/vivero-api/internal/domain/repository"
)

// StatsUseCase vistas agregadas de solo lectura sobre categorías y plantas.
type StatsUseCase struct {
	repo repository.StatsRepository
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(repo repository.StatsRepository) *StatsUseCase {
	return &StatsUseCase{repo: repo}
}

// MostPopular categorías rankeadas por cantidad de plantas; las que no
// tienen ninguna planta no aparecen.
func (uc *StatsUseCase) MostPopular(ctx context.Context) ([]dto.CategoryCountResponse, error) {
	rows, err := uc.repo.MostPopular(ctx)
	if err != nil {
		return nil, err
	}
	return toCategoryCounts(rows), nil
}

// WithCounts toda categoría con su cantidad de plantas (0 incluido).
func (uc *StatsUseCase) WithCounts(ctx context.Context) ([]dto.CategoryCountResponse, error) {
	rows, err := uc.repo.WithCounts(ctx)
	if err != nil {
		return nil, err
	}
	return toCategoryCounts(rows), nil
}

func toCategoryCounts(rows []repository.CategoryCount) []dto.CategoryCountResponse {
	out := make([]dto.CategoryCountResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.CategoryCountResponse{
			CategoryID: r.CategoryID,
			Name:       r.Name,
			Icon:       r.Icon,
			Count:      r.Count,
		})
	}
	return out
}
