// Package scenario defines the free parameters of the liberation model.
// The defaults reproduce the published run; a YAML file can override any
// subset of them for sensitivity variants.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario holds every free parameter of the liberation model.
type Scenario struct {
	HorizonYears int `yaml:"horizon_years"` // simulation horizon; 30 gives a 31-point series

	// Focal canopy tree
	TreeDiameter    float64 `yaml:"tree_diameter_cm"`       // initial stem diameter, cm
	TreeHeight      float64 `yaml:"tree_height_m"`          // canopy height, m
	WoodDensity     float64 `yaml:"wood_density_g_cm3"`     // g/cm3
	GrowthControl   float64 `yaml:"growth_control_cm_yr"`   // diameter increment under liana load, cm/yr
	GrowthLiberated float64 `yaml:"growth_liberated_cm_yr"` // diameter increment after liberation, cm/yr

	// Liana load carried by the control tree
	LianasPerTree float64 `yaml:"lianas_per_tree"`        // stems per infested tree
	LianaDiameter float64 `yaml:"liana_diameter_cm"`      // initial liana stem diameter, cm
	LianaGrowth   float64 `yaml:"liana_growth_cm_yr"`     // liana diameter increment, cm/yr
	LianaRelease  float64 `yaml:"liana_release_fraction"` // fraction of severed liana stock emitted through decay

	// Scaling and cost
	StemsPerHa   float64 `yaml:"stems_per_ha"`    // liana-infested canopy stems treated per hectare
	TreatableMha float64 `yaml:"treatable_mha"`   // global treatable forest area, million hectares
	CostPerHaUSD float64 `yaml:"cost_per_ha_usd"` // one-off cutting cost, USD/ha
}

// Default returns the parameterization behind the published figure.
func Default() Scenario {
	return Scenario{
		HorizonYears:    30,
		TreeDiameter:    25.0,
		TreeHeight:      25.0,
		WoodDensity:     0.62,
		GrowthControl:   0.18,
		GrowthLiberated: 0.60,
		LianasPerTree:   3.0,
		LianaDiameter:   3.5,
		LianaGrowth:     0.28,
		LianaRelease:    0.85,
		StemsPerHa:      95.0,
		TreatableMha:    250.0,
		CostPerHaUSD:    42.0,
	}
}

// Load reads a YAML scenario file and overlays it on the defaults. Fields
// absent from the file keep their default values.
func Load(path string) (Scenario, error) {
	sc := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return sc, fmt.Errorf("read scenario file: %w", err)
	}
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return sc, fmt.Errorf("parse scenario file %s: %w", path, err)
	}
	if err := sc.Validate(); err != nil {
		return sc, fmt.Errorf("scenario file %s: %w", path, err)
	}
	return sc, nil
}

// Validate rejects parameter combinations the model cannot evaluate.
func (sc Scenario) Validate() error {
	if sc.HorizonYears < 1 {
		return fmt.Errorf("horizon_years must be at least 1, got %d", sc.HorizonYears)
	}
	if sc.TreeDiameter <= 0 {
		return fmt.Errorf("tree_diameter_cm must be positive, got %g", sc.TreeDiameter)
	}
	if sc.TreeHeight <= 0 {
		return fmt.Errorf("tree_height_m must be positive, got %g", sc.TreeHeight)
	}
	if sc.WoodDensity <= 0 {
		return fmt.Errorf("wood_density_g_cm3 must be positive, got %g", sc.WoodDensity)
	}
	if sc.GrowthControl < 0 {
		return fmt.Errorf("growth_control_cm_yr must not be negative, got %g", sc.GrowthControl)
	}
	if sc.GrowthLiberated < sc.GrowthControl {
		return fmt.Errorf("growth_liberated_cm_yr (%g) must be at least growth_control_cm_yr (%g)",
			sc.GrowthLiberated, sc.GrowthControl)
	}
	if sc.LianasPerTree < 0 {
		return fmt.Errorf("lianas_per_tree must not be negative, got %g", sc.LianasPerTree)
	}
	if sc.LianasPerTree > 0 && sc.LianaDiameter <= 0 {
		return fmt.Errorf("liana_diameter_cm must be positive, got %g", sc.LianaDiameter)
	}
	if sc.LianaGrowth < 0 {
		return fmt.Errorf("liana_growth_cm_yr must not be negative, got %g", sc.LianaGrowth)
	}
	if sc.LianaRelease < 0 || sc.LianaRelease > 1 {
		return fmt.Errorf("liana_release_fraction must be in [0,1], got %g", sc.LianaRelease)
	}
	if sc.StemsPerHa <= 0 {
		return fmt.Errorf("stems_per_ha must be positive, got %g", sc.StemsPerHa)
	}
	if sc.TreatableMha < 0 {
		return fmt.Errorf("treatable_mha must not be negative, got %g", sc.TreatableMha)
	}
	if sc.CostPerHaUSD < 0 {
		return fmt.Errorf("cost_per_ha_usd must not be negative, got %g", sc.CostPerHaUSD)
	}
	return nil
}

// Marshal renders the scenario as YAML, used to print the effective
// parameterization of a run.
func (sc Scenario) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(sc)
	if err != nil {
		return nil, fmt.Errorf("marshal scenario: %w", err)
	}
	return data, nil
}
