package pdf

import (
	"bytes"
	"compress/zlib"
	"io"
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storefront-api/internal/domain/entity"
)

func sampleOrder() *entity.Order {
	return &entity.Order{
		ID:          "o-1",
		OrderNumber: "ORD-12345678-042",
		OrderDate:   time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
		Status:      entity.OrderStatusPending,
		Shipping: entity.OrderAddress{
			FirstName: "Ana", LastName: "dela Cruz", Phone: "0917", Address1: "12 Ayala Ave",
			City: "Makati", State: "Metro Manila", Country: "PH",
		},
		Subtotal:      decimal.RequireFromString("1598"),
		ShippingTotal: decimal.Zero,
		Total:         decimal.RequireFromString("1598"),
		PaymentMethod: "cod",
		CustomerNote:  "Dejar en recepción",
		Items: []entity.OrderItem{{
			ProductName: "Slim Jeans", SKU: "J-1", Quantity: 2,
			UnitPrice: decimal.RequireFromString("799"), Total: decimal.RequireFromString("1598"),
		}},
	}
}

func TestReceipt_GeneraPDF(t *testing.T) {
	g := NewReceiptGenerator(StoreInfo{Name: "Hilo Apparel", Email: "hola@example.com"})

	out, err := g.Receipt(sampleOrder())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "debe ser un documento PDF")
}

var pdfStream = regexp.MustCompile(`(?s)stream\r?\n(.*?)endstream`)

// pageText descomprime los streams del PDF y concatena su contenido.
func pageText(t *testing.T, doc []byte) string {
	t.Helper()
	var out bytes.Buffer
	for _, m := range pdfStream.FindAllSubmatch(doc, -1) {
		zr, err := zlib.NewReader(bytes.NewReader(m[1]))
		if err != nil {
			out.Write(m[1])
			continue
		}
		data, _ := io.ReadAll(zr)
		_ = zr.Close()
		out.Write(data)
	}
	return out.String()
}

func TestReceipt_MontosConCodigoDeMoneda(t *testing.T) {
	out, err := NewReceiptGenerator(StoreInfo{Name: "Hilo Apparel"}).Receipt(sampleOrder())
	require.NoError(t, err)

	content := pageText(t, out)
	assert.Contains(t, content, "(PHP 799.00)")
	assert.GreaterOrEqual(t, bytes.Count([]byte(content), []byte("(PHP 1,598.00)")), 3, "línea, subtotal y total")
	assert.NotContains(t, content, ".1,598.00")
	assert.Contains(t, content, "(FREE)")
}

func TestReceipt_PedidoNil(t *testing.T) {
	_, err := NewReceiptGenerator(StoreInfo{}).Receipt(nil)
	assert.Error(t, err)
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, "a, c", joinNonEmpty(", ", "a", " ", "c"))
	assert.Equal(t, "", joinNonEmpty(", "))
	assert.Equal(t, "Cash on delivery", paymentLabel("COD"))
	assert.Equal(t, "gcash", paymentLabel("gcash"))
	assert.Equal(t, "-", nonEmpty("", "-"))
	assert.Equal(t, "Storefront", NewReceiptGenerator(StoreInfo{}).store.Name)
}
