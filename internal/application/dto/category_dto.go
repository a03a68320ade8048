package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría.
// La imagen llega como nombre de archivo ya subido (el upload es externo).
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"max=2000"`
	Icon        string `json:"icon" validate:"max=500"`
	Image       string `json:"image" validate:"max=500"`
	ParentID    string `json:"parentId" validate:"omitempty,uuid4"`
}

// UpdateCategoryRequest entrada para actualización parcial (punteros = omitido).
type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Icon        *string `json:"icon" validate:"omitempty,max=500"`
	ParentID    *string `json:"parentId" validate:"omitempty"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          string    `json:"id"`
	ParentID    string    `json:"parentId,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Icon        string    `json:"icon,omitempty"`
	Image       string    `json:"image,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CategoryListResponse lista paginada con el sobre {success, data, ...meta}.
type CategoryListResponse struct {
	Success bool               `json:"success"`
	Data    []CategoryResponse `json:"data"`
	PageMeta
}

// CategoryTreeNode nodo del bosque de categorías. Children nunca es nil.
type CategoryTreeNode struct {
	ID          string              `json:"id"`
	ParentID    string              `json:"parentId,omitempty"`
	Name        string              `json:"name"`
	Description string              `json:"description,omitempty"`
	Icon        string              `json:"icon,omitempty"`
	Image       string              `json:"image,omitempty"`
	ImageURL    string              `json:"imageUrl,omitempty"`
	Children    []*CategoryTreeNode `json:"children"`
}

// DeletedCategory datos mínimos de la categoría eliminada, como los
// devuelve el endpoint de borrado junto al conteo del cascade.
type DeletedCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DeleteCategoryResponse resultado del borrado con cascade.
type DeleteCategoryResponse struct {
	Success           bool            `json:"success"`
	Message           string          `json:"message"`
	DeletedData       DeletedCategory `json:"deletedData"`
	DeactivatedPlants int64           `json:"deactivatedPlants"`
}

// CategoryCountResponse fila de las vistas agregadas (popular / with-counts).
type CategoryCountResponse struct {
	CategoryID string `json:"categoryId"`
	Name       string `json:"name"`
	Icon       string `json:"icon,omitempty"`
	Count      int64  `json:"count"`
}
