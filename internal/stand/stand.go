// Package stand aggregates the per-tree ledger to hectare and global scale
// and derives the cost-effectiveness of liberation.
package stand

import (
	"github.com/dcaye93/ftc-liberation-FEM/internal/allometry"
	"github.com/dcaye93/ftc-liberation-FEM/internal/growth"
	"github.com/dcaye93/ftc-liberation-FEM/internal/scenario"
)

const (
	haPerMha    = 1e6 // hectares per million hectares
	tonnesPerPg = 1e9 // tonnes per petagram
)

// Summary holds the scalar roll-ups of one evaluated scenario, all taken at
// the simulation horizon.
type Summary struct {
	PerTreeKgCO2e      float64 // net additional sequestration per treated tree
	PerHaTonnesCO2e    float64 // net additional sequestration per treated hectare
	AnnualTonnesCO2eHa float64 // mean annual rate per hectare
	GlobalPgCO2e       float64 // net additional sequestration over the treatable area
	USDPerTonneCO2e    float64 // one-off treatment cost per tonne sequestered
	PaybackYear        int     // first year the net ledger is positive, -1 if never
}

// PerHaTonnes converts a per-tree ledger value (kg CO2e) to t CO2e per
// treated hectare.
func PerHaTonnes(perTreeKg, stemsPerHa float64) float64 {
	return allometry.TonnesFromKg(perTreeKg * stemsPerHa)
}

// Summarize reduces an evaluated ledger to the published roll-up figures.
func Summarize(l *growth.Ledger, sc scenario.Scenario) Summary {
	last := len(l.NetCO2e) - 1
	perTree := l.NetCO2e[last]
	perHa := PerHaTonnes(perTree, sc.StemsPerHa)

	s := Summary{
		PerTreeKgCO2e:      perTree,
		PerHaTonnesCO2e:    perHa,
		AnnualTonnesCO2eHa: perHa / l.Years[last],
		GlobalPgCO2e:       perHa * sc.TreatableMha * haPerMha / tonnesPerPg,
		PaybackYear:        -1,
	}
	if perHa > 0 {
		s.USDPerTonneCO2e = sc.CostPerHaUSD / perHa
	}
	for t, net := range l.NetCO2e {
		if net > 0 {
			s.PaybackYear = t
			break
		}
	}
	return s
}
