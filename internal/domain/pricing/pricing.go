// Package pricing reglas de precio compartidas por carrito, pedidos y listados.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/storefront-api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// UnitPrice precio vigente de una línea.
// Variante: oferta > precio. Producto: oferta > precio > precio regular. Sin precio devuelve cero.
func UnitPrice(p *entity.Product, v *entity.Variant) decimal.Decimal {
	if v != nil {
		if d, ok := firstPositive(v.SalePrice, v.Price); ok {
			return d
		}
	}
	if p != nil {
		if d, ok := firstPositive(p.SalePrice, p.Price, p.RegularPrice); ok {
			return d
		}
	}
	return decimal.Zero
}

// LineTotal precio unitario por cantidad, redondeado a centavos.
func LineTotal(unit decimal.Decimal, qty int) decimal.Decimal {
	if qty <= 0 {
		return decimal.Zero
	}
	return unit.Mul(decimal.NewFromInt(int64(qty))).Round(2)
}

// CartTotals totales del carrito.
type CartTotals struct {
	Subtotal  decimal.Decimal
	ItemCount int
}

// TotalsOf suma las líneas del carrito usando el producto/variante cargados en cada item.
func TotalsOf(items []entity.CartItem) CartTotals {
	t := CartTotals{Subtotal: decimal.Zero}
	for i := range items {
		it := &items[i]
		t.Subtotal = t.Subtotal.Add(LineTotal(UnitPrice(it.Product, it.Variant), it.Quantity))
		t.ItemCount += it.Quantity
	}
	return t
}

// DiscountPercent porcentaje de descuento entero (redondeado) de sale respecto a regular.
// Devuelve 0 si falta alguno de los dos o la oferta no es menor.
func DiscountPercent(regular, sale *decimal.Decimal) int {
	if regular == nil || sale == nil || !regular.IsPositive() || !sale.IsPositive() {
		return 0
	}
	if sale.GreaterThanOrEqual(*regular) {
		return 0
	}
	pct := regular.Sub(*sale).Div(*regular).Mul(hundred).Round(0)
	return int(pct.IntPart())
}

// InStock indica si hay existencias para qty unidades. Cantidad nil significa stock no gestionado.
func InStock(status string, quantity *int, qty int) bool {
	if status == entity.StockOutOfStock {
		return false
	}
	if quantity == nil || status == entity.StockBackorder {
		return true
	}
	return *quantity >= qty
}

func firstPositive(values ...*decimal.Decimal) (decimal.Decimal, bool) {
	for _, v := range values {
		if v != nil && v.IsPositive() {
			return *v, true
		}
	}
	return decimal.Zero, false
}
