package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/storefront-api/pkg/money"
)

func TestCurrency_EsPHP(t *testing.T) {
	assert.Equal(t, "PHP", money.Currency.String())
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "PHP 1,234.50", money.Format(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "PHP 0.00", money.Format(decimal.Zero))
	assert.Equal(t, "-PHP 10.00", money.Format(decimal.NewFromInt(-10)))
	assert.Equal(t, "PHP 1,598.00", money.Format(decimal.RequireFromString("1598")))
}

func TestFormat_SoloASCII(t *testing.T) {
	s := money.Format(decimal.RequireFromString("987654.321"))
	for _, r := range s {
		assert.Less(t, r, rune(0x80), "carácter fuera de ASCII en %q", s)
	}
	assert.Equal(t, "PHP 987,654.32", s)
}
