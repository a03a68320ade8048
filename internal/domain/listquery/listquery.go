package listquery

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/vivero-api/internal/domain"
)

// Config describe, por entidad, qué acepta el parser de listados:
// paginación por defecto, ordenamiento y los campos permitidos para
// filtrar, buscar y acotar por fecha. Los campos usan nombres de API
// (camelCase); el mapeo a columnas es responsabilidad del ejecutor.
type Config struct {
	DefaultLimit        int
	MaxLimit            int
	DefaultSort         string   // usado si el caller omite sort o pide un campo no permitido
	AllowedSortFields   []string // whitelist de ordenamiento
	AllowedFilterFields []string // whitelist de filtros exactos; claves desconocidas se ignoran
	SearchFields        []string // campos combinados con OR para el parámetro search
	DateField           string   // campo usado por dateFrom/dateTo (rango inclusivo)
}

// Filter es una cláusula de igualdad exacta campo = valor.
type Filter struct {
	Field string
	Value string
}

// Descriptor es la representación validada de una petición de listado.
// SearchFields y DateField se copian de la Config para que el ejecutor
// no necesite conocerla.
type Descriptor struct {
	Page         int
	Limit        int
	SortField    string
	Descending   bool
	Filters      []Filter
	Search       string
	DateFrom     *time.Time
	DateTo       *time.Time
	SearchFields []string
	DateField    string
}

// Offset devuelve el desplazamiento de la página actual.
func (d *Descriptor) Offset() int {
	return (d.Page - 1) * d.Limit
}

// Parámetros reservados que nunca se interpretan como filtros.
var reservedParams = map[string]bool{
	"page":     true,
	"limit":    true,
	"sort":     true,
	"search":   true,
	"dateFrom": true,
	"dateTo":   true,
}

// Parse convierte los query params crudos en un Descriptor validado.
//
// Contrato de errores: page/limit/fechas malformados fallan con
// domain.ErrInvalidQuery (el caller debe poder corregir la petición);
// claves de filtro u ordenamiento desconocidas NUNCA fallan, se ignoran
// en favor del default (fail-open para compatibilidad hacia adelante).
func (c Config) Parse(params map[string]string) (*Descriptor, error) {
	d := &Descriptor{
		Page:         1,
		Limit:        c.DefaultLimit,
		SortField:    c.DefaultSort,
		Descending:   true,
		SearchFields: c.SearchFields,
		DateField:    c.DateField,
	}

	if raw, ok := params["page"]; ok && raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("%w: page debe ser un entero >= 1, recibido %q", domain.ErrInvalidQuery, raw)
		}
		d.Page = n
	}

	if raw, ok := params["limit"]; ok && raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("%w: limit debe ser un entero >= 1, recibido %q", domain.ErrInvalidQuery, raw)
		}
		if n > c.MaxLimit {
			n = c.MaxLimit
		}
		d.Limit = n
	}

	if raw, ok := params["sort"]; ok && raw != "" {
		field := raw
		desc := false
		if strings.HasPrefix(raw, "-") {
			field = raw[1:]
			desc = true
		}
		if contains(c.AllowedSortFields, field) {
			d.SortField = field
			d.Descending = desc
		}
		// Campo no permitido: se conserva el default (descendente).
	}

	// Los filtros se recorren en el orden de la whitelist para que el
	// descriptor sea determinista independiente del orden del query string.
	for _, field := range c.AllowedFilterFields {
		if reservedParams[field] {
			continue
		}
		if v, ok := params[field]; ok && v != "" {
			d.Filters = append(d.Filters, Filter{Field: field, Value: v})
		}
	}

	if v, ok := params["search"]; ok {
		d.Search = strings.TrimSpace(v)
	}

	if raw, ok := params["dateFrom"]; ok && raw != "" {
		t, _, err := parseDate(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: dateFrom inválido %q", domain.ErrInvalidQuery, raw)
		}
		d.DateFrom = &t
	}
	if raw, ok := params["dateTo"]; ok && raw != "" {
		t, dateOnly, err := parseDate(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: dateTo inválido %q", domain.ErrInvalidQuery, raw)
		}
		if dateOnly {
			// Rango inclusivo: un dateTo sin hora cubre el día completo.
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		d.DateTo = &t
	}

	return d, nil
}

// parseDate acepta RFC3339 o fecha sola (YYYY-MM-DD). El segundo valor
// indica si el input venía sin componente de hora.
func parseDate(raw string) (time.Time, bool, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, false, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, false, err
	}
	return t, true, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
