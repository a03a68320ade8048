package repository

import "context"

// CategoryCount fila agregada de plantas por categoría.
type CategoryCount struct {
	CategoryID string
	Name       string
	Icon       string
	Count      int64
}

// StatsRepository consultas agregadas de solo lectura sobre las
// colecciones completas (sin paginación).
type StatsRepository interface {
	// MostPopular cuenta membresías (planta, categoría) y omite las
	// categorías sin plantas. Orden: count descendente, nombre ascendente.
	MostPopular(ctx context.Context) ([]CategoryCount, error)
	// WithCounts incluye toda categoría, con count 0 si no tiene plantas
	// (semántica left-outer). Mismo orden que MostPopular.
	WithCounts(ctx context.Context) ([]CategoryCount, error)
}
