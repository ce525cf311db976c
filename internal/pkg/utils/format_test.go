package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "$2,695.50", FormatCurrency(2695.5))
	assert.Equal(t, "$12.00", FormatCurrency(12))
	assert.Equal(t, "9.0%", FormatPercent(8.985))

	payback := 11.1296
	assert.Equal(t, "11.1 years", FormatPayback(&payback, "N/A"))
	assert.Equal(t, "N/A", FormatPayback(nil, "N/A"))
}
