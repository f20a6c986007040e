package allometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTreeAGB(t *testing.T) {
	// 0.0509 * 0.62 * 25^2 * 25
	assert.InDelta(t, 493.094, TreeAGB(0.62, 25, 25), 0.01)

	// Biomass grows with the square of diameter
	assert.InDelta(t, 4*TreeAGB(0.62, 25, 25), TreeAGB(0.62, 50, 25), 1e-9)
}

func TestTreeAGB_NonPositiveInputs(t *testing.T) {
	tests := []struct {
		name      string
		rho, d, h float64
	}{
		{"zero diameter", 0.62, 0, 25},
		{"negative diameter", 0.62, -5, 25},
		{"zero height", 0.62, 25, 0},
		{"zero density", 0, 25, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Zero(t, TreeAGB(tt.rho, tt.d, tt.h))
		})
	}
}

func TestLianaAGB(t *testing.T) {
	// exp(-1.484 + 2.657 * ln(3.5))
	assert.InDelta(t, 6.326, LianaAGB(3.5), 0.01)

	// Monotone in diameter
	assert.Greater(t, LianaAGB(10), LianaAGB(5))

	// Non-positive diameters must not produce NaN
	assert.Zero(t, LianaAGB(0))
	assert.Zero(t, LianaAGB(-1))
}

func TestConversions(t *testing.T) {
	assert.InDelta(t, 0.47, CarbonFromBiomass(1), 1e-12)
	assert.InDelta(t, 44.0/12.0, CO2eFromCarbon(1), 1e-12)
	assert.InDelta(t, 0.47*44.0/12.0, CO2eFromBiomass(1), 1e-12)
	assert.InDelta(t, 1.5, TonnesFromKg(1500), 1e-12)
}
