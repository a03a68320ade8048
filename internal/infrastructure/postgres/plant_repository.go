package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/vivero-api/internal/domain/entity"
	"github.com/jhoicas/vivero-api/internal/domain/listquery"
	"github.com/jhoicas/vivero-api/internal/domain/repository"
)

var _ repository.PlantRepository = (*PlantRepo)(nil)

// Mapeo campo de API -> columna para los listados de plantas.
// categoryId filtra por pertenencia en el arreglo uuid[] de membresías.
var plantListBuilder = ListBuilder{
	Columns: map[string]string{
		"status":     "status",
		"categoryId": "category_ids",
		"name":       "name",
		"createdAt":  "created_at",
		"updatedAt":  "updated_at",
	},
	ArrayColumns: map[string]bool{
		"categoryId": true,
	},
}

const plantColumns = `id, name, description, image, status, category_ids, created_at, updated_at`

// PlantRepo implementación del puerto PlantRepository sobre PostgreSQL.
type PlantRepo struct {
	q Querier
}

// NewPlantRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPlantRepository(q Querier) *PlantRepo {
	return &PlantRepo{q: q}
}

// Create persiste una nueva planta.
func (r *PlantRepo) Create(ctx context.Context, p *entity.Plant) error {
	query := `
		INSERT INTO plants (id, name, description, image, status, category_ids, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.Description, p.Image, p.Status, p.CategoryIDs, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert plant: %w", err)
	}
	return nil
}

// GetByID obtiene una planta por ID. Devuelve (nil, nil) si no existe.
func (r *PlantRepo) GetByID(ctx context.Context, id string) (*entity.Plant, error) {
	query := `SELECT ` + plantColumns + ` FROM plants WHERE id = $1`
	var p entity.Plant
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Image, &p.Status, &p.CategoryIDs, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get plant: %w", err)
	}
	return &p, nil
}

// Update actualiza una planta existente, incluida su membresía de categorías.
func (r *PlantRepo) Update(ctx context.Context, p *entity.Plant) error {
	query := `
		UPDATE plants SET name = $2, description = $3, image = $4, status = $5, category_ids = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.Description, p.Image, p.Status, p.CategoryIDs, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update plant: %w", err)
	}
	return nil
}

// List devuelve la página de plantas que satisface el descriptor.
func (r *PlantRepo) List(ctx context.Context, q *listquery.Descriptor) ([]*entity.Plant, error) {
	where, args := plantListBuilder.Where(q)
	order := plantListBuilder.OrderBy(q)
	page, args := plantListBuilder.Paginate(q, args)
	query := fmt.Sprintf(`SELECT %s FROM plants %s %s %s`, plantColumns, where, order, page)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list plants: %w", err)
	}
	defer rows.Close()

	var list []*entity.Plant
	for rows.Next() {
		var p entity.Plant
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Image, &p.Status, &p.CategoryIDs, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan plant: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Count total de plantas que satisfacen el predicado del descriptor.
// Usa el mismo Where que List para que página y total no diverjan.
func (r *PlantRepo) Count(ctx context.Context, q *listquery.Descriptor) (int64, error) {
	where, args := plantListBuilder.Where(q)
	query := fmt.Sprintf(`SELECT COUNT(*) FROM plants %s`, where)
	var total int64
	if err := r.q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count plants: %w", err)
	}
	return total, nil
}

// Delete elimina una planta. Devuelve false si el ID no existía.
func (r *PlantRepo) Delete(ctx context.Context, id string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM plants WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete plant: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// DeactivateByCategory marca status=inactive en toda planta cuya membresía
// contenga categoryID. No borra filas ni toca category_ids; devuelve la
// cantidad de plantas afectadas (cero no es error).
func (r *PlantRepo) DeactivateByCategory(ctx context.Context, categoryID string) (int64, error) {
	query := `UPDATE plants SET status = $2, updated_at = now() WHERE $1 = ANY(category_ids)`
	cmd, err := r.q.Exec(ctx, query, categoryID, entity.PlantStatusInactive)
	if err != nil {
		return 0, fmt.Errorf("deactivate plants by category: %w", err)
	}
	return cmd.RowsAffected(), nil
}
