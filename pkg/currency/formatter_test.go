package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmount(t *testing.T) {
	assert.Equal(t, "850.00", Amount(850))
	assert.Equal(t, "845.50", Amount(845.5))
	assert.Equal(t, "0.00", Amount(0))
}

func TestParse(t *testing.T) {
	assert.Equal(t, 845.5, Parse("845.50"))
	assert.Equal(t, 1245.0, Parse("EUR 1,245.00"))
	assert.Equal(t, 1245.0, Parse(" 1245.00 "))
	assert.Equal(t, 0.0, Parse("garbled"))
	assert.Equal(t, 0.0, Parse(""))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "EUR 1,245.00", Format(1245, "EUR"))
	assert.Equal(t, "EUR 850.00", Format(850, "EUR"))
	assert.Equal(t, "USD 1,234,567.89", Format(1234567.89, "USD"))
	assert.Equal(t, "-EUR 12.50", Format(-12.5, "EUR"))
}

func TestParseRoundTripsFormat(t *testing.T) {
	assert.Equal(t, 1245.0, Parse(Format(1245, "EUR")))
	assert.Equal(t, 850.0, Parse(Amount(850)))
}
