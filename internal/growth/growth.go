// Package growth evaluates the liberation model over the fixed year vector:
// per-year diameter series for the control tree, the liberated tree and the
// liana load, converted to biomass, carbon and CO2 equivalent, and reduced
// to the net additional sequestration of cutting.
package growth

import (
	"github.com/dcaye93/ftc-liberation-FEM/internal/allometry"
	"github.com/dcaye93/ftc-liberation-FEM/internal/scenario"
)

// Years returns the year vector 0..horizon inclusive (horizon+1 points).
func Years(horizon int) []float64 {
	years := make([]float64, horizon+1)
	for t := range years {
		years[t] = float64(t)
	}
	return years
}

// DiameterSeries returns d0 + rate*t for every year in the vector.
func DiameterSeries(d0, rate float64, years []float64) []float64 {
	series := make([]float64, len(years))
	for t, yr := range years {
		series[t] = d0 + rate*yr
	}
	return series
}

// Ledger holds every per-year series derived from one scenario. All series
// have exactly len(Years) points. CO2e ledgers are cumulative gains since
// year 0 in kg CO2e per treated tree; the liberated ledger starts at the
// (negative) severed-liana decay debt.
type Ledger struct {
	Years []float64

	ControlDiameter   []float64 // control tree stem diameter, cm
	LiberatedDiameter []float64 // liberated tree stem diameter, cm
	LianaDiameter     []float64 // liana stem diameter on the control tree, cm

	ControlTreeAGB   []float64 // kg per tree
	LiberatedTreeAGB []float64 // kg per tree
	LianaAGB         []float64 // kg per tree (all liana stems)

	ControlCO2e   []float64 // kg CO2e gained per control tree + its lianas
	LiberatedCO2e []float64 // kg CO2e gained per liberated tree, net of the liana debt
	NetCO2e       []float64 // LiberatedCO2e - ControlCO2e
}

// LianaDebt returns the severed-liana stock assumed emitted at liberation,
// in kg CO2e per treated tree.
func LianaDebt(sc scenario.Scenario) float64 {
	stock := sc.LianasPerTree * allometry.LianaAGB(sc.LianaDiameter)
	return sc.LianaRelease * allometry.CO2eFromBiomass(stock)
}

// Evaluate runs the full calculation pipeline for one scenario.
func Evaluate(sc scenario.Scenario) *Ledger {
	years := Years(sc.HorizonYears)
	n := len(years)

	l := &Ledger{
		Years:             years,
		ControlDiameter:   DiameterSeries(sc.TreeDiameter, sc.GrowthControl, years),
		LiberatedDiameter: DiameterSeries(sc.TreeDiameter, sc.GrowthLiberated, years),
		LianaDiameter:     DiameterSeries(sc.LianaDiameter, sc.LianaGrowth, years),
		ControlTreeAGB:    make([]float64, n),
		LiberatedTreeAGB:  make([]float64, n),
		LianaAGB:          make([]float64, n),
		ControlCO2e:       make([]float64, n),
		LiberatedCO2e:     make([]float64, n),
		NetCO2e:           make([]float64, n),
	}

	for t := 0; t < n; t++ {
		l.ControlTreeAGB[t] = allometry.TreeAGB(sc.WoodDensity, l.ControlDiameter[t], sc.TreeHeight)
		l.LiberatedTreeAGB[t] = allometry.TreeAGB(sc.WoodDensity, l.LiberatedDiameter[t], sc.TreeHeight)
		l.LianaAGB[t] = sc.LianasPerTree * allometry.LianaAGB(l.LianaDiameter[t])
	}

	debt := LianaDebt(sc)
	for t := 0; t < n; t++ {
		treeGainCtrl := allometry.CO2eFromBiomass(l.ControlTreeAGB[t] - l.ControlTreeAGB[0])
		lianaGain := allometry.CO2eFromBiomass(l.LianaAGB[t] - l.LianaAGB[0])
		treeGainLib := allometry.CO2eFromBiomass(l.LiberatedTreeAGB[t] - l.LiberatedTreeAGB[0])

		l.ControlCO2e[t] = treeGainCtrl + lianaGain
		l.LiberatedCO2e[t] = treeGainLib - debt
		l.NetCO2e[t] = l.LiberatedCO2e[t] - l.ControlCO2e[t]
	}

	return l
}

// AnnualNetIncrement returns the year-on-year change of the net ledger,
// kg CO2e per tree. The year-0 increment is the initial debt itself.
func (l *Ledger) AnnualNetIncrement() []float64 {
	inc := make([]float64, len(l.NetCO2e))
	inc[0] = l.NetCO2e[0]
	for t := 1; t < len(l.NetCO2e); t++ {
		inc[t] = l.NetCO2e[t] - l.NetCO2e[t-1]
	}
	return inc
}
