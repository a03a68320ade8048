package postgres

import (
	"fmt"
	"strings"

	"github.com/jhoicas/vivero-api/internal/domain/listquery"
)

// ListBuilder traduce un Descriptor validado a fragmentos SQL con
// placeholders. Columns mapea nombres de campo de API a columnas; solo
// columnas de ese mapa llegan al SQL, nunca texto del caller. Las
// entradas en ArrayColumns son columnas de arreglo: el filtro exacto se
// vuelve pertenencia ($n = ANY(col)).
//
// El mismo Where alimenta el SELECT de página y el COUNT(*), de modo que
// ambos evalúan exactamente el mismo predicado.
type ListBuilder struct {
	Columns      map[string]string
	ArrayColumns map[string]bool
}

// Where devuelve la cláusula WHERE (o "" si no hay condiciones) y sus
// argumentos posicionales $1..$n: filtros exactos AND búsqueda (OR de
// ILIKE sobre SearchFields) AND rango de fechas inclusivo.
func (b ListBuilder) Where(q *listquery.Descriptor) (string, []any) {
	var clauses []string
	var args []any

	for _, f := range q.Filters {
		col, ok := b.Columns[f.Field]
		if !ok {
			continue
		}
		args = append(args, f.Value)
		if b.ArrayColumns[f.Field] {
			clauses = append(clauses, fmt.Sprintf("$%d = ANY(%s)", len(args), col))
		} else {
			clauses = append(clauses, fmt.Sprintf("%s = $%d", col, len(args)))
		}
	}

	if q.Search != "" && len(q.SearchFields) > 0 {
		var ors []string
		args = append(args, "%"+escapeLike(q.Search)+"%")
		n := len(args)
		for _, field := range q.SearchFields {
			col, ok := b.Columns[field]
			if !ok {
				continue
			}
			ors = append(ors, fmt.Sprintf("%s ILIKE $%d", col, n))
		}
		if len(ors) > 0 {
			clauses = append(clauses, "("+strings.Join(ors, " OR ")+")")
		} else {
			args = args[:len(args)-1]
		}
	}

	if col, ok := b.Columns[q.DateField]; ok {
		if q.DateFrom != nil {
			args = append(args, *q.DateFrom)
			clauses = append(clauses, fmt.Sprintf("%s >= $%d", col, len(args)))
		}
		if q.DateTo != nil {
			args = append(args, *q.DateTo)
			clauses = append(clauses, fmt.Sprintf("%s <= $%d", col, len(args)))
		}
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(clauses, " AND "), args
}

// OrderBy devuelve la cláusula de ordenamiento. El campo ya pasó la
// whitelist del parser; un campo sin columna mapeada produce "".
func (b ListBuilder) OrderBy(q *listquery.Descriptor) string {
	col, ok := b.Columns[q.SortField]
	if !ok {
		return ""
	}
	dir := "ASC"
	if q.Descending {
		dir = "DESC"
	}
	return fmt.Sprintf("ORDER BY %s %s", col, dir)
}

// Paginate agrega LIMIT/OFFSET como placeholders y devuelve el fragmento
// junto con los argumentos extendidos.
func (b ListBuilder) Paginate(q *listquery.Descriptor, args []any) (string, []any) {
	args = append(args, q.Limit)
	limit := len(args)
	args = append(args, q.Offset())
	return fmt.Sprintf("LIMIT $%d OFFSET $%d", limit, len(args)), args
}

// escapeLike escapa los metacaracteres de LIKE en el término de búsqueda
// para que un "%" del caller se busque literal.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
