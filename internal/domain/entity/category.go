package entity

// Category representa una fila de categoría o subcategoría de la tienda.
// Las filas se administran fuera de esta API; aquí son de solo lectura.
type Category struct {
	ID           string
	Name         string // no es único: puede haber nombres duplicados
	Slug         string
	Description  string
	Image        string
	ParentID     string // vacío si es raíz
	ProductCount int
}

// HasParent indica si la categoría cuelga de otra.
func (c Category) HasParent() bool {
	return c.ParentID != ""
}
