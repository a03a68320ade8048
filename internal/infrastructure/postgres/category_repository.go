package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/vivero-api/internal/domain"
	"github.com/jhoicas/vivero-api/internal/domain/entity"
	"github.com/jhoicas/vivero-api/internal/domain/listquery"
	"github.com/jhoicas/vivero-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// Mapeo campo de API -> columna para los listados de categorías.
var categoryListBuilder = ListBuilder{
	Columns: map[string]string{
		"parentId":  "parent_id",
		"name":      "name",
		"createdAt": "created_at",
		"updatedAt": "updated_at",
	},
}

const categoryColumns = `id, parent_id, name, description, icon, image, created_at, updated_at`

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una nueva categoría. Nombre duplicado => domain.ErrDuplicate.
func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	query := `
		INSERT INTO categories (id, parent_id, name, description, icon, image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		c.ID, nullIfEmpty(c.ParentID), c.Name, c.Description, c.Icon, c.Image, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID. Devuelve (nil, nil) si no existe.
func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id), "get category")
}

// GetByName obtiene una categoría por nombre (único global).
func (r *CategoryRepo) GetByName(ctx context.Context, name string) (*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE name = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, name), "get category by name")
}

// Update actualiza una categoría existente.
func (r *CategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	query := `
		UPDATE categories SET parent_id = $2, name = $3, description = $4, icon = $5, image = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		c.ID, nullIfEmpty(c.ParentID), c.Name, c.Description, c.Icon, c.Image, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// List devuelve la página de categorías que satisface el descriptor.
func (r *CategoryRepo) List(ctx context.Context, q *listquery.Descriptor) ([]*entity.Category, error) {
	where, args := categoryListBuilder.Where(q)
	order := categoryListBuilder.OrderBy(q)
	page, args := categoryListBuilder.Paginate(q, args)
	query := fmt.Sprintf(`SELECT %s FROM categories %s %s %s`, categoryColumns, where, order, page)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	return scanCategories(rows)
}

// Count total de categorías que satisfacen el predicado del descriptor,
// ignorando la paginación. Usa el mismo Where que List.
func (r *CategoryRepo) Count(ctx context.Context, q *listquery.Descriptor) (int64, error) {
	where, args := categoryListBuilder.Where(q)
	query := fmt.Sprintf(`SELECT COUNT(*) FROM categories %s`, where)
	var total int64
	if err := r.q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	return total, nil
}

// ListAll devuelve la colección completa en orden de creación (el
// armado del árbol anexa hijos en este orden).
func (r *CategoryRepo) ListAll(ctx context.Context) ([]*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories ORDER BY created_at ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list all categories: %w", err)
	}
	defer rows.Close()
	return scanCategories(rows)
}

// Delete elimina y devuelve la fila eliminada, o (nil, nil) si no existía.
func (r *CategoryRepo) Delete(ctx context.Context, id string) (*entity.Category, error) {
	query := `DELETE FROM categories WHERE id = $1 RETURNING ` + categoryColumns
	return r.scanOne(r.q.QueryRow(ctx, query, id), "delete category")
}

func (r *CategoryRepo) scanOne(row pgx.Row, op string) (*entity.Category, error) {
	var c entity.Category
	var parentID *string
	err := row.Scan(&c.ID, &parentID, &c.Name, &c.Description, &c.Icon, &c.Image, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	c.ParentID = orEmpty(parentID)
	return &c, nil
}

func scanCategories(rows pgx.Rows) ([]*entity.Category, error) {
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		var parentID *string
		if err := rows.Scan(&c.ID, &parentID, &c.Name, &c.Description, &c.Icon, &c.Image, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		c.ParentID = orEmpty(parentID)
		list = append(list, &c)
	}
	return list, rows.Err()
}
