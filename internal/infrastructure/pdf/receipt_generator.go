// Package pdf genera el recibo PDF de un pedido de la tienda.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Tienda + contacto    │  N° Pedido + Fecha + Estado  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ENVÍO: Nombre + dirección + teléfono                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | SKU | P.Unit | Total               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Envío / TOTAL                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR con el número de pedido + nota del cliente       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/storefront-api/internal/application/checkout"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/pkg/money"
)

var _ checkout.ReceiptGenerator = (*ReceiptGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 20, Green: 20, Blue: 20}
	colorGray    = &props.Color{Red: 110, Green: 110, Blue: 110}
	colorAccent  = &props.Color{Red: 190, Green: 30, Blue: 45}
)

// StoreInfo datos de la tienda impresos en la cabecera.
type StoreInfo struct {
	Name    string
	Email   string
	Phone   string
	Website string
}

// ── Generator ─────────────────────────────────────────────────────────────────

// ReceiptGenerator implementa checkout.ReceiptGenerator usando Maroto v2.
type ReceiptGenerator struct {
	store StoreInfo
}

// NewReceiptGenerator construye el generador.
func NewReceiptGenerator(store StoreInfo) *ReceiptGenerator {
	if store.Name == "" {
		store.Name = "Storefront"
	}
	return &ReceiptGenerator{store: store}
}

// Receipt genera el PDF del pedido (con sus líneas cargadas) y devuelve sus bytes.
func (g *ReceiptGenerator) Receipt(order *entity.Order) ([]byte, error) {
	if order == nil {
		return nil, fmt.Errorf("pdf: pedido nil")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Receipt "+order.OrderNumber, true).
		WithAuthor(g.store.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(shipToRow(order.Shipping))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(itemRows(order.Items)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(order))

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRows(order)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: tienda (izq) y número de pedido + fecha + estado (der).
func (g *ReceiptGenerator) headerRow(order *entity.Order) core.Row {
	contact := joinNonEmpty("   |   ", g.store.Website, g.store.Email, g.store.Phone)
	return row.New(20).Add(
		col.New(7).Add(
			text.New(g.store.Name, props.Text{Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1}),
			text.New(contact, props.Text{Size: 8, Top: 10, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("ORDER RECEIPT", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorAccent, Top: 1}),
			text.New(order.OrderNumber, props.Text{Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 6}),
			text.New("Date: "+order.OrderDate.Format("Jan 2, 2006"), props.Text{Size: 8, Align: align.Right, Top: 12, Color: colorGray}),
			text.New("Status: "+strings.ToUpper(order.Status), props.Text{Size: 8, Align: align.Right, Top: 16, Color: colorGray}),
		),
	)
}

// shipToRow: destinatario del envío. La facturación es la misma dirección.
func shipToRow(a entity.OrderAddress) core.Row {
	name := strings.TrimSpace(a.FirstName + " " + a.LastName)
	street := joinNonEmpty(", ", a.Address1, a.Address2)
	city := joinNonEmpty(", ", a.City, a.State, a.Postcode, a.Country)
	return row.New(22).Add(
		col.New(12).Add(
			text.New("SHIP TO", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(nonEmpty(name, "-"), props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(street, props.Text{Size: 8, Top: 11, Color: colorGray}),
			text.New(city, props.Text{Size: 8, Top: 15, Color: colorGray}),
			text.New(joinNonEmpty("   |   ", a.Phone, a.Email), props.Text{Size: 8, Top: 19, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qty", 1, align.Center),
		h("Product", 5, align.Left),
		h("SKU", 2, align.Left),
		h("Unit price", 2, align.Right),
		h("Total", 2, align.Right),
	)
}

// itemRows: una fila por línea del pedido.
func itemRows(items []entity.OrderItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d", it.Quantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(5).Add(text.New(it.ProductName, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(2).Add(text.New(nonEmpty(it.SKU, "-"), props.Text{Size: 7, Align: align.Left, Top: 1, Left: 1, Color: colorGray})),
			col.New(2).Add(text.New(money.Format(it.UnitPrice), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(money.Format(it.Total), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// totalsRow: subtotal, envío y total alineados a la derecha.
func totalsRow(order *entity.Order) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	shipping := money.Format(order.ShippingTotal)
	if order.ShippingTotal.IsZero() {
		shipping = "FREE"
	}
	return row.New(22).Add(
		col.New(6),
		col.New(3).Add(
			label("Subtotal:", 1),
			label("Shipping:", 6),
			text.New("TOTAL:", props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorAccent, Right: 2, Top: 12}),
		),
		col.New(3).Add(
			value(money.Format(order.Subtotal), 1),
			value(shipping, 6),
			text.New(money.Format(order.Total), props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorAccent, Right: 1, Top: 12}),
		),
	)
}

// footerRows: QR con el número de pedido, método de pago y nota del cliente.
func footerRows(order *entity.Order) []core.Row {
	rows := []core.Row{
		line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}),
		row.New(34).Add(
			col.New(3).Add(code.NewQr(order.OrderNumber, props.Rect{Percent: 90, Center: true})),
			col.New(9).Add(
				text.New("Payment method: "+paymentLabel(order.PaymentMethod), props.Text{Size: 8, Top: 4, Left: 3}),
				text.New("Keep this receipt. Quote your order number when contacting us.", props.Text{
					Size: 8, Top: 10, Left: 3, Color: colorGray,
				}),
			),
		),
	}
	if note := strings.TrimSpace(order.CustomerNote); note != "" {
		rows = append(rows, row.New(10).Add(col.New(12).Add(
			text.New("Note: "+note, props.Text{Size: 8, Top: 2, Color: colorGray}),
		)))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func paymentLabel(method string) string {
	switch strings.ToLower(method) {
	case "cod":
		return "Cash on delivery"
	case "":
		return "-"
	default:
		return method
	}
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
