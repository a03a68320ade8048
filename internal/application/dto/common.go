package dto

import "strings"

// PageMeta metadatos de paginación aplanados en las respuestas de listado.
type PageMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// NewPageMeta calcula los metadatos derivados: totalPages = ceil(total/limit).
func NewPageMeta(page, limit int, total int64) PageMeta {
	totalPages := total / int64(limit)
	if total%int64(limit) != 0 {
		totalPages++
	}
	return PageMeta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    int64(page) < totalPages,
		HasPrev:    page > 1,
	}
}

// Response sobre genérico de éxito {success, message?, data?}.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewError construye un ErrorResponse con success=false.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{Success: false, Code: code, Message: message}
}

// ImageURL deriva la URL pública de una imagen uniendo la base estática
// con el nombre de archivo almacenado. Archivo vacío produce URL vacía
// (concern de presentación, el dominio solo guarda el filename).
func ImageURL(staticBase, filename string) string {
	if filename == "" {
		return ""
	}
	return strings.TrimRight(staticBase, "/") + "/" + filename
}
