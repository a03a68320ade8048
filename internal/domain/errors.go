package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidQuery      = errors.New("parámetros de consulta inválidos")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrHierarchyCycle    = errors.New("ciclo detectado en la jerarquía de categorías")
	ErrCascadeIncomplete = errors.New("categoría eliminada pero la desactivación de plantas falló")
)
