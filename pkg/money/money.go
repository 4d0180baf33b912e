// Package money formatea montos en pesos filipinos para textos visibles al cliente
// (recibos PDF, salidas del CLI). Las respuestas JSON siguen usando decimal.Decimal.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Currency es la moneda de la tienda.
var Currency = currency.MustParseISO("PHP")

var printer = message.NewPrinter(language.English)

// Format devuelve el monto con el código ISO y dos decimales, ej. "PHP 1,234.50".
// Se usa el código y no el símbolo ₱: las fuentes estándar del PDF son cp1252 y no lo tienen.
func Format(amount decimal.Decimal) string {
	f, _ := amount.Round(2).Float64()
	sign := ""
	if f < 0 {
		sign = "-"
		f = -f
	}
	return sign + Currency.String() + " " + printer.Sprint(number.Decimal(f, number.Scale(2)))
}
