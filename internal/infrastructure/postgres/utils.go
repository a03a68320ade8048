package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return false
}

// nullIfEmpty mapea "" a NULL para columnas opcionales (ej. parent_id uuid).
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// orEmpty deref de un *string escaneado de una columna nullable.
func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
