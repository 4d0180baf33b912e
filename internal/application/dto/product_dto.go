package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// ProductListRequest filtros del listado de la tienda (query string).
type ProductListRequest struct {
	Category    string           `query:"category"`
	Subcategory string           `query:"subcategory"`
	CategoryIDs []string         `query:"category_ids"`
	Search      string           `query:"search"`
	MinPrice    *decimal.Decimal `query:"min_price"`
	MaxPrice    *decimal.Decimal `query:"max_price"`
	StockStatus string           `query:"stock_status"`
	Featured    *bool            `query:"featured"`
	Sort        string           `query:"sort"`
	Page        int              `query:"page"`
	PageSize    int              `query:"page_size"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	Slug             string             `json:"slug"`
	SKU              string             `json:"sku,omitempty"`
	Description      string             `json:"description,omitempty"`
	ShortDescription string             `json:"short_description,omitempty"`
	Price            *decimal.Decimal   `json:"price"`
	RegularPrice     *decimal.Decimal   `json:"regular_price,omitempty"`
	SalePrice        *decimal.Decimal   `json:"sale_price,omitempty"`
	DiscountPercent  int                `json:"discount_percent,omitempty"`
	VariantMinPrice  *decimal.Decimal   `json:"variant_min_price,omitempty"`
	VariantMaxPrice  *decimal.Decimal   `json:"variant_max_price,omitempty"`
	StockQuantity    *int               `json:"stock_quantity,omitempty"`
	StockStatus      string             `json:"stock_status"`
	ImageURL         string             `json:"image_url,omitempty"`
	GalleryURLs      []string           `json:"gallery_urls,omitempty"`
	IsFeatured       bool               `json:"is_featured"`
	Type             string             `json:"type,omitempty"`
	Weight           *decimal.Decimal   `json:"weight,omitempty"`
	Length           *decimal.Decimal   `json:"length,omitempty"`
	Width            *decimal.Decimal   `json:"width,omitempty"`
	Height           *decimal.Decimal   `json:"height,omitempty"`
	SizeChart        string             `json:"size_chart,omitempty"`
	Categories       []CategoryResponse `json:"categories,omitempty"`
	Variants         []VariantResponse  `json:"variants,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
}

// VariantResponse salida de una variante.
type VariantResponse struct {
	ID             string           `json:"id"`
	SKU            string           `json:"sku,omitempty"`
	Price          *decimal.Decimal `json:"price"`
	RegularPrice   *decimal.Decimal `json:"regular_price,omitempty"`
	SalePrice      *decimal.Decimal `json:"sale_price,omitempty"`
	CompareAtPrice *decimal.Decimal `json:"compare_at_price,omitempty"`
	StockQuantity  *int             `json:"stock_quantity,omitempty"`
	StockStatus    string           `json:"stock_status"`
	Attributes     json.RawMessage  `json:"attributes,omitempty"`
	Images         []string         `json:"images,omitempty"`
}

// ProductListResponse lista paginada de productos con la resolución de categoría aplicada.
type ProductListResponse struct {
	Items            []ProductResponse `json:"items"`
	Page             PageResponse      `json:"page"`
	CategoryStrategy string            `json:"category_strategy,omitempty"`
}
