package entity

import "time"

// Estados posibles de una planta.
const (
	PlantStatusActive   = "active"
	PlantStatusInactive = "inactive"
)

// Plant representa una planta del catálogo. Puede pertenecer a varias categorías;
// al eliminar una categoría referenciada la planta pasa a inactive (nunca se borra).
type Plant struct {
	ID          string
	Name        string
	Description string
	Image       string // nombre de archivo, la URL se deriva en presentación
	Status      string // active, inactive
	CategoryIDs []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
