package part

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStockCount(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"12", 12},
		{"0003", 3},
		{"12u", 12},
		{" 5 ", 5},
		{"-2", -2},
		{"", 0},
		{"abc", 0},
		{"∞", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseStockCount(tt.input))
		})
	}
}

func TestUpdateAutoDeactivatesOnZeroStock(t *testing.T) {
	p, err := NewPart("Ventilador 40mm", "", "3", "cooling", "12.300", true)
	require.NoError(t, err)

	// Finite stock hits zero without an explicit active flag.
	require.NoError(t, p.Update("Ventilador 40mm", "", "0", "cooling", "12.300", true, false))
	assert.False(t, p.IsActive())

	// Explicit active flag wins over the auto rule.
	require.NoError(t, p.Update("Ventilador 40mm", "", "0", "cooling", "12.300", true, true))
	assert.True(t, p.IsActive())

	// Infinite stock never deactivates.
	require.NoError(t, p.Update("Ventilador 40mm", "", "∞", "cooling", "12.300", true, false))
	assert.True(t, p.IsActive())
}

func TestHasInfiniteStock(t *testing.T) {
	p, err := NewPart("Hotend", "", "INF", "extrusion", "900", true)
	require.NoError(t, err)
	assert.True(t, p.HasInfiniteStock())

	require.NoError(t, p.Update("Hotend", "", "4", "extrusion", "900", true, true))
	assert.False(t, p.HasInfiniteStock())
	assert.Equal(t, 4, p.StockCount())
}

func TestUnitPrice(t *testing.T) {
	p, err := NewPart("Hotend", "", "4", "extrusion", "1.820,50", true)
	require.NoError(t, err)
	price, ok := p.UnitPrice()
	require.True(t, ok)
	assert.InDelta(t, 1820.5, price, 0.001)

	require.NoError(t, p.Update("Hotend", "", "4", "extrusion", "a convenir", true, true))
	_, ok = p.UnitPrice()
	assert.False(t, ok)
}
