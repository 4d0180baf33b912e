package dto

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Description  string `json:"description,omitempty"`
	Image        string `json:"image,omitempty"`
	ParentID     string `json:"parent_id,omitempty"`
	ProductCount int    `json:"product_count"`
}

// ResolveCategoryResponse resultado de resolver ?category=&subcategory=.
type ResolveCategoryResponse struct {
	Category    string             `json:"category"`
	Subcategory string             `json:"subcategory,omitempty"`
	Strategy    string             `json:"strategy"`
	CategoryIDs []string           `json:"category_ids"`
	Categories  []CategoryResponse `json:"categories"`
}
