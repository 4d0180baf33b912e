package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/pricing"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func intPtr(n int) *int { return &n }

func TestUnitPrice_Prioridades(t *testing.T) {
	p := &entity.Product{Price: dec("799"), RegularPrice: dec("999")}
	assert.True(t, pricing.UnitPrice(p, nil).Equal(decimal.NewFromInt(799)))

	p.SalePrice = dec("699")
	assert.True(t, pricing.UnitPrice(p, nil).Equal(decimal.NewFromInt(699)), "la oferta gana al precio")

	v := &entity.Variant{Price: dec("850")}
	assert.True(t, pricing.UnitPrice(p, v).Equal(decimal.NewFromInt(850)), "la variante gana al producto")

	v.SalePrice = dec("0")
	assert.True(t, pricing.UnitPrice(p, v).Equal(decimal.NewFromInt(850)), "oferta cero se ignora")

	assert.True(t, pricing.UnitPrice(&entity.Product{RegularPrice: dec("100")}, &entity.Variant{}).Equal(decimal.NewFromInt(100)))
	assert.True(t, pricing.UnitPrice(nil, nil).IsZero())
}

func TestTotalsOf(t *testing.T) {
	items := []entity.CartItem{
		{Quantity: 2, Product: &entity.Product{Price: dec("499.50")}},
		{Quantity: 1, Product: &entity.Product{Price: dec("100")}, Variant: &entity.Variant{Price: dec("120.25")}},
		{Quantity: 3},
	}
	got := pricing.TotalsOf(items)
	assert.Equal(t, "1119.25", got.Subtotal.StringFixed(2))
	assert.Equal(t, 6, got.ItemCount)

	empty := pricing.TotalsOf(nil)
	assert.True(t, empty.Subtotal.IsZero())
	assert.Equal(t, 0, empty.ItemCount)
}

func TestLineTotal_CantidadNoPositiva(t *testing.T) {
	assert.True(t, pricing.LineTotal(decimal.NewFromInt(10), 0).IsZero())
	assert.True(t, pricing.LineTotal(decimal.NewFromInt(10), -2).IsZero())
}

func TestDiscountPercent(t *testing.T) {
	assert.Equal(t, 30, pricing.DiscountPercent(dec("999"), dec("699")))
	assert.Equal(t, 0, pricing.DiscountPercent(dec("500"), dec("500")))
	assert.Equal(t, 0, pricing.DiscountPercent(nil, dec("10")))
	assert.Equal(t, 0, pricing.DiscountPercent(dec("0"), dec("10")))
	assert.Equal(t, 33, pricing.DiscountPercent(dec("3"), dec("2")))
}

func TestInStock(t *testing.T) {
	assert.True(t, pricing.InStock(entity.StockInStock, nil, 5))
	assert.True(t, pricing.InStock(entity.StockInStock, intPtr(5), 5))
	assert.False(t, pricing.InStock(entity.StockInStock, intPtr(4), 5))
	assert.False(t, pricing.InStock(entity.StockOutOfStock, nil, 1))
	assert.True(t, pricing.InStock(entity.StockBackorder, intPtr(0), 3))
}
