package catalog

import (
	"sort"

	"github.com/jhoicas/storefront-api/internal/domain/entity"
)

// DuplicateGroup filas que comparten exactamente el mismo nombre.
type DuplicateGroup struct {
	Name string
	Rows []entity.Category
}

// FindDuplicateNames agrupa las filas con nombre repetido, ordenadas por nombre.
// Los nombres duplicados son un problema de calidad de datos conocido; el resolver no asume unicidad.
func FindDuplicateNames(rows []entity.Category) []DuplicateGroup {
	byName := make(map[string][]entity.Category)
	for _, r := range rows {
		byName[r.Name] = append(byName[r.Name], r)
	}
	var out []DuplicateGroup
	for name, group := range byName {
		if len(group) > 1 {
			out = append(out, DuplicateGroup{Name: name, Rows: group})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Index acceso por id a un conjunto de filas.
type Index struct {
	byID map[string]*entity.Category
}

// NewIndex indexa rows por id. Con ids repetidos gana la última fila.
func NewIndex(rows []entity.Category) *Index {
	idx := &Index{byID: make(map[string]*entity.Category, len(rows))}
	for i := range rows {
		idx.byID[rows[i].ID] = &rows[i]
	}
	return idx
}

// ByID devuelve la fila o nil.
func (x *Index) ByID(id string) *entity.Category {
	return x.byID[id]
}

// ParentName nombre del padre de row; "" si no tiene o el padre no está en el conjunto.
func (x *Index) ParentName(row entity.Category) string {
	if !row.HasParent() {
		return ""
	}
	if p := x.byID[row.ParentID]; p != nil {
		return p.Name
	}
	return ""
}

// Names nombres de los ids dados, en el mismo orden; ids desconocidos se omiten.
func (x *Index) Names(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if r := x.byID[id]; r != nil {
			out = append(out, r.Name)
		}
	}
	return out
}
