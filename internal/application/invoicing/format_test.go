package invoicing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	cases := map[string]string{
		"0":          "$0.00",
		"3":          "$3.00",
		"19.98":      "$19.98",
		"1234.5":     "$1,234.50",
		"1000000":    "$1,000,000.00",
		"0.005":      "$0.01",
		"2.344":      "$2.34",
		"-1500.25":   "-$1,500.25",
		"999.999":    "$1,000.00",
		"123456.789": "$123,456.79",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatCurrency(decimal.RequireFromString(in)), in)
	}
}

func TestFormatQuantityYRate(t *testing.T) {
	assert.Equal(t, "2", FormatQuantity(decimal.RequireFromString("2")))
	assert.Equal(t, "1.5", FormatQuantity(decimal.RequireFromString("1.50")))
	assert.Equal(t, "15%", FormatRate(decimal.RequireFromString("0.15")))
	assert.Equal(t, "19%", FormatRate(decimal.RequireFromString("0.19")))
}
