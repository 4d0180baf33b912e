package checkout_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/storefront-api/internal/domain/checkout"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
)

func TestNumberGenerator_Formato(t *testing.T) {
	g := &checkout.NumberGenerator{
		Now:  func() time.Time { return time.UnixMilli(1_718_000_123_456) },
		Rand: func(int) int { return 7 },
	}
	assert.Equal(t, "ORD-00123456-007", g.Next())

	real := checkout.NewNumberGenerator()
	assert.Regexp(t, regexp.MustCompile(`^ORD-\d{8}-\d{3}$`), real.Next())
}

func TestShippingCost(t *testing.T) {
	def := decimal.RequireFromString("450.00")
	threshold := decimal.NewFromInt(2000)
	rate := &entity.ShippingRate{Rate: decimal.NewFromInt(150), FreeShippingThreshold: &threshold}

	assert.True(t, checkout.ShippingCost(nil, def, decimal.NewFromInt(5000)).Equal(def), "sin zona usa la tarifa por defecto")
	assert.True(t, checkout.ShippingCost(rate, def, decimal.NewFromInt(1999)).Equal(decimal.NewFromInt(150)))
	assert.True(t, checkout.ShippingCost(rate, def, decimal.NewFromInt(2000)).IsZero(), "alcanza el umbral: envío gratis")

	noThreshold := &entity.ShippingRate{Rate: decimal.NewFromInt(250)}
	assert.True(t, checkout.ShippingCost(noThreshold, def, decimal.NewFromInt(99999)).Equal(decimal.NewFromInt(250)))
}

func TestSplitName(t *testing.T) {
	first, last := checkout.SplitName("Juan  dela Cruz")
	assert.Equal(t, "Juan", first)
	assert.Equal(t, "dela Cruz", last)

	first, last = checkout.SplitName("Maria")
	assert.Equal(t, "Maria", first)
	assert.Equal(t, "", last)
}
