package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "$0.00"},
		{15, "$15.00"},
		{82.6, "$82.60"},
		{1234.5, "$1,234.50"},
		{1000000, "$1,000,000.00"},
		{-413, "-$413.00"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatCurrency("$", tc.amount))
	}

	assert.Equal(t, "S/ 413.00", FormatCurrency("S/ ", 413))
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "10", FormatHours(10))
	assert.Equal(t, "7.5", FormatHours(7.5))
	assert.Equal(t, "0", FormatHours(0))
}

func TestFormatWeeks(t *testing.T) {
	assert.Equal(t, "0.2", FormatWeeks(0.25))
	assert.Equal(t, "1.0", FormatWeeks(1))
	assert.Equal(t, "2.5", FormatWeeks(2.5))
}
