package dto

import "time"

// CreatePlantRequest entrada para crear una planta.
type CreatePlantRequest struct {
	Name        string   `json:"name" validate:"required,min=1,max=200"`
	Description string   `json:"description" validate:"max=2000"`
	Image       string   `json:"image" validate:"max=500"`
	Status      string   `json:"status" validate:"omitempty,oneof=active inactive"`
	CategoryIDs []string `json:"categoryIds" validate:"dive,uuid4"`
}

// UpdatePlantRequest actualización parcial de una planta.
type UpdatePlantRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
	Image       *string  `json:"image" validate:"omitempty,max=500"`
	Status      *string  `json:"status" validate:"omitempty,oneof=active inactive"`
	CategoryIDs []string `json:"categoryIds" validate:"omitempty,dive,uuid4"`
}

// PlantResponse salida de una planta.
type PlantResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Status      string    `json:"status"`
	CategoryIDs []string  `json:"categoryIds"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PlantListResponse lista paginada con el sobre {success, data, ...meta}.
type PlantListResponse struct {
	Success bool            `json:"success"`
	Data    []PlantResponse `json:"data"`
	PageMeta
}
