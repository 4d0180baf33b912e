package postgres

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/storefront-api/internal/domain/entity"
)

func TestProductWhere_SinFiltros_SoloPublicados(t *testing.T) {
	where, args := productWhere(entity.ProductFilter{})
	assert.Equal(t, "WHERE p.status = 'published'", where)
	assert.Empty(t, args)
}

func TestProductWhere_TodosLosFiltros(t *testing.T) {
	min := decimal.NewFromInt(100)
	max := decimal.NewFromInt(900)
	featured := true
	where, args := productWhere(entity.ProductFilter{
		CategoryIDs: []string{"a", "b"},
		Search:      " 50%_off ",
		MinPrice:    &min,
		MaxPrice:    &max,
		StockStatus: entity.StockInStock,
		IsFeatured:  &featured,
	})

	assert.Contains(t, where, "ANY($1)")
	assert.Contains(t, where, "p.name ILIKE $2 OR p.description ILIKE $2")
	assert.Contains(t, where, "p.price >= $3")
	assert.Contains(t, where, "p.price <= $4")
	assert.Contains(t, where, "p.stock_status = $5")
	assert.Contains(t, where, "p.is_featured = $6")

	assert.Equal(t, []string{"a", "b"}, args[0])
	assert.Equal(t, `%50\%\_off%`, args[1])
	assert.Equal(t, min, args[2])
	assert.Equal(t, true, args[5])
}

func TestProductOrder(t *testing.T) {
	assert.Contains(t, productOrder(entity.SortByName), "p.name ASC")
	assert.Contains(t, productOrder(entity.SortByPriceAsc), "p.price ASC")
	assert.Contains(t, productOrder(entity.SortByPriceDesc), "p.price DESC")
	assert.Contains(t, productOrder(""), "p.created_at DESC")
	assert.Contains(t, productOrder("desconocido"), "p.created_at DESC")
}
