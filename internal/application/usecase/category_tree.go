package usecase

import (
	"github.com/jhoicas/vivero-api/internal/application/dto"
	"github.com/jhoicas/vivero-api/internal/domain"
	"github.com/jhoicas/vivero-api/internal/domain/entity"
)

// BuildCategoryTree reconstruye el bosque a partir de la colección plana.
//
// Reglas:
//   - ParentID vacío => raíz.
//   - Los hijos se anexan en el orden de iteración del input (estable,
//     no se reordenan por separado).
//   - Un registro cuyo ParentID no resuelve a ningún ID presente se
//     descarta en silencio (ni raíz ni hijo), igual que todo su subárbol —
//     integridad referencial no forzada, tolerada por omisión.
//   - Children siempre se inicializa, aunque quede vacío.
//
// Complejidad O(n): un índice id→nodo, verificación de ciclos siguiendo
// cadenas de padres con marcado de estado, y una pasada de anexado.
// Un ciclo en parent_id es un error de integridad de datos: se reporta
// como domain.ErrHierarchyCycle en vez de serializar un árbol infinito.
func BuildCategoryTree(categories []*entity.Category, staticBase string) ([]*dto.CategoryTreeNode, error) {
	index := make(map[string]*dto.CategoryTreeNode, len(categories))
	parentOf := make(map[string]string, len(categories))
	for _, c := range categories {
		index[c.ID] = &dto.CategoryTreeNode{
			ID:          c.ID,
			ParentID:    c.ParentID,
			Name:        c.Name,
			Description: c.Description,
			Icon:        c.Icon,
			Image:       c.Image,
			ImageURL:    dto.ImageURL(staticBase, c.Image),
			Children:    []*dto.CategoryTreeNode{},
		}
		parentOf[c.ID] = c.ParentID
	}

	if err := detectCycles(parentOf); err != nil {
		return nil, err
	}

	var roots []*dto.CategoryTreeNode
	for _, c := range categories {
		node := index[c.ID]
		if c.ParentID == "" {
			roots = append(roots, node)
			continue
		}
		parent, ok := index[c.ParentID]
		if !ok {
			// Padre colgante: el registro se omite del bosque.
			continue
		}
		parent.Children = append(parent.Children, node)
	}

	if roots == nil {
		roots = []*dto.CategoryTreeNode{}
	}
	return roots, nil
}

// Estados del recorrido de cadenas de padres.
const (
	chainUnvisited = iota
	chainInProgress
	chainVerified
)

// detectCycles sigue la cadena de padres de cada nodo. Revisitar un nodo
// marcado "en progreso" dentro de la misma cadena significa un ciclo.
// Cada nodo se verifica una sola vez, así que el total es O(n).
func detectCycles(parentOf map[string]string) error {
	state := make(map[string]int, len(parentOf))
	path := make([]string, 0, 8)
	for start := range parentOf {
		if state[start] != chainUnvisited {
			continue
		}
		path = path[:0]
		id := start
		for {
			if state[id] == chainVerified {
				break
			}
			if state[id] == chainInProgress {
				return domain.ErrHierarchyCycle
			}
			state[id] = chainInProgress
			path = append(path, id)
			pid := parentOf[id]
			if pid == "" {
				break
			}
			if _, ok := parentOf[pid]; !ok {
				// Padre colgante: la cadena termina aquí.
				break
			}
			id = pid
		}
		for _, p := range path {
			state[p] = chainVerified
		}
	}
	return nil
}
