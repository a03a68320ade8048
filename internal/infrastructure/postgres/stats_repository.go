package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/vivero-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas agregadas de solo lectura sobre categorías y plantas.
// Siempre opera sobre las colecciones completas, sin paginación.
type StatsRepo struct {
	pool *pgxpool.Pool
}

// NewStatsRepository construye el adaptador de agregación.
func NewStatsRepository(pool *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{pool: pool}
}

// MostPopular cuenta cada membresía (planta, categoría) desanidando el
// arreglo category_ids y uniendo con categories. Entradas colgantes del
// arreglo (categoría ya inexistente) se descartan por el JOIN. Las
// categorías sin plantas no aparecen. Desempate estable: nombre ascendente.
func (r *StatsRepo) MostPopular(ctx context.Context) ([]repository.CategoryCount, error) {
	const query = `
	SELECT
	    c.id,
	    c.name,
	    c.icon,
	    COUNT(*) AS plant_count
	FROM plants p
	CROSS JOIN LATERAL unnest(p.category_ids) AS cid
	JOIN categories c ON c.id = cid
	GROUP BY c.id, c.name, c.icon
	ORDER BY plant_count DESC, c.name ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("stats.MostPopular: %w", err)
	}
	defer rows.Close()
	return scanCategoryCounts(rows, "stats.MostPopular")
}

// WithCounts toda categoría con su cantidad de plantas; LEFT JOIN para que
// las categorías sin plantas aparezcan con count 0. Mismo orden y desempate
// que MostPopular.
func (r *StatsRepo) WithCounts(ctx context.Context) ([]repository.CategoryCount, error) {
	const query = `
	SELECT
	    c.id,
	    c.name,
	    c.icon,
	    COUNT(p.id) AS plant_count
	FROM categories c
	LEFT JOIN plants p ON c.id = ANY(p.category_ids)
	GROUP BY c.id, c.name, c.icon
	ORDER BY plant_count DESC, c.name ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("stats.WithCounts: %w", err)
	}
	defer rows.Close()
	return scanCategoryCounts(rows, "stats.WithCounts")
}

func scanCategoryCounts(rows pgx.Rows, op string) ([]repository.CategoryCount, error) {
	results := []repository.CategoryCount{}
	for rows.Next() {
		var row repository.CategoryCount
		if err := rows.Scan(&row.CategoryID, &row.Name, &row.Icon, &row.Count); err != nil {
			return nil, fmt.Errorf("%s scan: %w", op, err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s rows: %w", op, err)
	}
	return results, nil
}
