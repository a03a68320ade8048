package entity

import "time"

// Category representa una categoría de plantas (jerárquica opcional).
type Category struct {
	ID          string
	ParentID    string // vacío si es raíz
	Name        string // único global
	Description string
	Icon        string
	Image       string // nombre de archivo, la URL se deriva en presentación
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
