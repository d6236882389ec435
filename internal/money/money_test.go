package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvert(t *testing.T) {
	assert.InDelta(t, 109.95, Convert(109.95, USD), 1e-9)
	assert.InDelta(t, 1_835_835.15, Convert(109.95, IDR), 1e-6)
}

func TestParse(t *testing.T) {
	c, ok := Parse("idr")
	assert.True(t, ok)
	assert.Equal(t, "Rp", c.Symbol)

	_, ok = Parse("EUR")
	assert.False(t, ok)
	_, ok = Parse("nope")
	assert.False(t, ok)
}

func TestFormatDropsRupiahFraction(t *testing.T) {
	s := Format(0.5, IDR)
	assert.Equal(t, "Rp", s[:2])
	assert.NotContains(t, s[2:], ",")
	assert.Contains(t, Format(22.3, USD), "22.30")
}
