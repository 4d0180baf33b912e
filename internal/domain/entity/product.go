package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Estados de publicación y de stock de un producto.
const (
	ProductStatusPublished = "published"
	ProductStatusDraft     = "draft"

	StockInStock    = "instock"
	StockOutOfStock = "outofstock"
	StockBackorder  = "onbackorder"
)

// Product representa un producto del catálogo. Los precios son opcionales en origen;
// nil significa "sin valor".
type Product struct {
	ID               string
	Name             string
	Slug             string
	SKU              string
	Description      string
	ShortDescription string
	Price            *decimal.Decimal
	RegularPrice     *decimal.Decimal
	SalePrice        *decimal.Decimal
	StockQuantity    *int
	StockStatus      string
	ImageURL         string
	GalleryURLs      []string
	IsFeatured       bool
	Type             string
	Status           string
	Weight           *decimal.Decimal
	Length           *decimal.Decimal
	Width            *decimal.Decimal
	Height           *decimal.Decimal
	SizeChart        string
	VariantMinPrice  *decimal.Decimal
	VariantMaxPrice  *decimal.Decimal
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Categories []Category
	Variants   []Variant
}

// Variant representa una variante (talla, color...) de un producto.
type Variant struct {
	ID             string
	ProductID      string
	SKU            string
	Price          *decimal.Decimal
	RegularPrice   *decimal.Decimal
	SalePrice      *decimal.Decimal
	CompareAtPrice *decimal.Decimal
	StockQuantity  *int
	StockStatus    string
	Attributes     json.RawMessage
	Images         []string
}

// ProductFilter criterios de listado de productos publicados.
type ProductFilter struct {
	CategoryIDs []string
	Search      string
	MinPrice    *decimal.Decimal
	MaxPrice    *decimal.Decimal
	StockStatus string
	IsFeatured  *bool
	SortBy      string // name, price_asc, price_desc, newest
	Limit       int
	Offset      int
}

// Orden de listado aceptado por ProductFilter.SortBy.
const (
	SortByName      = "name"
	SortByPriceAsc  = "price_asc"
	SortByPriceDesc = "price_desc"
	SortByNewest    = "newest"
)
