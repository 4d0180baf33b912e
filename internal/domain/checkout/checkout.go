// Package checkout reglas de dominio del pedido: numeración y costo de envío.
package checkout

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/storefront-api/internal/domain/entity"
)

// NumberGenerator genera números de pedido ORD-<últimos 8 dígitos del epoch en ms>-<3 dígitos>.
// El número no es único por construcción; la tabla orders tiene índice único y el caso de uso reintenta.
type NumberGenerator struct {
	Now  func() time.Time
	Rand func(n int) int
}

// NewNumberGenerator generador con reloj y aleatorio reales.
func NewNumberGenerator() *NumberGenerator {
	return &NumberGenerator{Now: time.Now, Rand: rand.IntN}
}

// Next devuelve un nuevo número de pedido.
func (g *NumberGenerator) Next() string {
	ms := g.Now().UnixMilli() % 100_000_000
	return fmt.Sprintf("ORD-%08d-%03d", ms, g.Rand(1000))
}

// ShippingCost costo de envío para un subtotal. Sin tarifa de zona se usa defaultRate;
// si la zona define umbral de envío gratis y el subtotal lo alcanza, el envío es cero.
func ShippingCost(rate *entity.ShippingRate, defaultRate, subtotal decimal.Decimal) decimal.Decimal {
	if rate == nil {
		return defaultRate
	}
	if rate.FreeShippingThreshold != nil && rate.FreeShippingThreshold.IsPositive() &&
		subtotal.GreaterThanOrEqual(*rate.FreeShippingThreshold) {
		return decimal.Zero
	}
	return rate.Rate
}

// SplitName separa "Juan dela Cruz" en nombre y apellidos para la dirección del pedido.
func SplitName(full string) (first, last string) {
	first, last, _ = strings.Cut(strings.TrimSpace(full), " ")
	return first, strings.TrimSpace(last)
}
