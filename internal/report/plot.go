package report

import (
	"fmt"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/dcaye93/ftc-liberation-FEM/internal/growth"
	"github.com/dcaye93/ftc-liberation-FEM/internal/scenario"
	"github.com/dcaye93/ftc-liberation-FEM/internal/stand"
)

// RenderAnnualIncrementPlot writes the diagnostic figure: year-on-year net
// sequestration increment per hectare. Year 0 carries the severed-liana
// decay debt and is expected to dip below zero.
func RenderAnnualIncrementPlot(path string, l *growth.Ledger, sc scenario.Scenario) error {
	p := plot.New()

	p.Title.Text = "Annual Net Sequestration Increment"
	p.X.Label.Text = "Years since liberation"
	p.Y.Label.Text = "t CO2e / ha / yr"

	// Integer tick marks every 5 years
	p.X.Tick.Marker = plot.TickerFunc(func(min, max float64) []plot.Tick {
		var ticks []plot.Tick
		for i := 0.0; i <= max; i += ticksInterval {
			ticks = append(ticks, plot.Tick{Value: i, Label: strconv.Itoa(int(i))})
		}
		return ticks
	})

	increments := l.AnnualNetIncrement()
	points := make(plotter.XYs, len(increments))
	for i := range points {
		points[i].X = l.Years[i]
		points[i].Y = stand.PerHaTonnes(increments[i], sc.StemsPerHa)
	}

	if err := plotutil.AddLinePoints(p, "Net increment", points); err != nil {
		return fmt.Errorf("add increment series: %w", err)
	}

	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("save increment plot: %w", err)
	}
	return nil
}
