package stand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcaye93/ftc-liberation-FEM/internal/growth"
	"github.com/dcaye93/ftc-liberation-FEM/internal/scenario"
)

func TestPerHaTonnes(t *testing.T) {
	// 400 kg/tree * 95 stems/ha = 38 t/ha
	assert.InDelta(t, 38.0, PerHaTonnes(400, 95), 1e-9)
}

func TestSummarize(t *testing.T) {
	sc := scenario.Default()
	l := growth.Evaluate(sc)
	s := Summarize(l, sc)

	last := sc.HorizonYears
	assert.InDelta(t, l.NetCO2e[last], s.PerTreeKgCO2e, 1e-9)
	assert.InDelta(t, l.NetCO2e[last]*sc.StemsPerHa/1000, s.PerHaTonnesCO2e, 1e-9)
	assert.InDelta(t, s.PerHaTonnesCO2e/float64(last), s.AnnualTonnesCO2eHa, 1e-9)
	assert.InDelta(t, s.PerHaTonnesCO2e*sc.TreatableMha*1e6/1e9, s.GlobalPgCO2e, 1e-9)
	assert.InDelta(t, sc.CostPerHaUSD/s.PerHaTonnesCO2e, s.USDPerTonneCO2e, 1e-9)
}

func TestSummarize_PaybackYear(t *testing.T) {
	sc := scenario.Default()
	l := growth.Evaluate(sc)
	s := Summarize(l, sc)

	// The ledger starts with a decay debt, so payback is after year 0 and
	// within the horizon for the published parameterization.
	require.Greater(t, s.PaybackYear, 0)
	require.LessOrEqual(t, s.PaybackYear, sc.HorizonYears)
	assert.Positive(t, l.NetCO2e[s.PaybackYear])
	assert.LessOrEqual(t, l.NetCO2e[s.PaybackYear-1], 0.0)
}

func TestSummarize_NoBenefit(t *testing.T) {
	// Equal growth rates: liberation only pays the decay debt, the net
	// ledger never turns positive and cost per tonne is left at zero.
	sc := scenario.Default()
	sc.GrowthLiberated = sc.GrowthControl
	l := growth.Evaluate(sc)
	s := Summarize(l, sc)

	assert.Negative(t, s.PerTreeKgCO2e)
	assert.Equal(t, -1, s.PaybackYear)
	assert.Zero(t, s.USDPerTonneCO2e)
}
