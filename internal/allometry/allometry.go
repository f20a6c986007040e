// Package allometry holds the two aboveground-biomass equations used by the
// liberation model and the biomass -> carbon -> CO2-equivalent conversions.
package allometry

import "math"

// Equation coefficients and conversion factors.
const (
	// Moist-forest stand model of Chave et al. (2005):
	// AGB = 0.0509 * rho * D^2 * H, AGB in kg, rho in g/cm3, D in cm, H in m.
	chaveCoefficient = 0.0509

	// Liana model of Schnitzer et al. (2006):
	// AGB = exp(-1.484 + 2.657 * ln(D)), AGB in kg, D in cm.
	schnitzerIntercept = -1.484
	schnitzerSlope     = 2.657

	// CarbonFraction is the carbon content of dry woody biomass (kg C / kg).
	CarbonFraction = 0.47

	// CO2PerCarbon converts carbon mass to CO2 equivalent (44 g CO2 / 12 g C).
	CO2PerCarbon = 44.0 / 12.0

	// KgPerTonne converts kilograms to tonnes.
	KgPerTonne = 1000.0
)

// TreeAGB returns the aboveground biomass (kg) of a tree with stem diameter
// d (cm), height h (m) and wood density rho (g/cm3). Non-positive inputs
// yield zero biomass.
func TreeAGB(rho, d, h float64) float64 {
	if rho <= 0 || d <= 0 || h <= 0 {
		return 0
	}
	return chaveCoefficient * rho * d * d * h
}

// LianaAGB returns the aboveground biomass (kg) of a liana with stem
// diameter d (cm). Non-positive diameters yield zero biomass.
func LianaAGB(d float64) float64 {
	if d <= 0 {
		return 0
	}
	return math.Exp(schnitzerIntercept + schnitzerSlope*math.Log(d))
}

// CarbonFromBiomass converts dry biomass (kg) to carbon mass (kg C).
func CarbonFromBiomass(agb float64) float64 {
	return agb * CarbonFraction
}

// CO2eFromCarbon converts carbon mass (kg C) to CO2 equivalent (kg CO2e).
func CO2eFromCarbon(c float64) float64 {
	return c * CO2PerCarbon
}

// CO2eFromBiomass converts dry biomass (kg) directly to CO2 equivalent (kg CO2e).
func CO2eFromBiomass(agb float64) float64 {
	return CO2eFromCarbon(CarbonFromBiomass(agb))
}

// TonnesFromKg converts kilograms to tonnes.
func TonnesFromKg(kg float64) float64 {
	return kg / KgPerTonne
}
