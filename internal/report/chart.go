package report

import (
	"bytes"
	"fmt"
	"os"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/dcaye93/ftc-liberation-FEM/internal/growth"
	"github.com/dcaye93/ftc-liberation-FEM/internal/scenario"
	"github.com/dcaye93/ftc-liberation-FEM/internal/stand"
)

// Chart canvas dimensions, shared by the standalone figure and the
// animation frames so axis ranges stay comparable.
const (
	chartWidth    = 960
	chartHeight   = 480
	ticksInterval = 5.0 // X-axis tick every 5 years
)

// generateTicks produces integer tick marks from 0 to xMax at the given interval.
func generateTicks(xMax float64, interval float64) []chart.Tick {
	var ticks []chart.Tick
	for value := 0.0; value <= xMax; value += interval {
		ticks = append(ticks, chart.Tick{
			Value: value,
			Label: fmt.Sprintf("%.0f", value),
		})
	}
	return ticks
}

// axisRange returns fixed Y-axis bounds covering every series of the ledger
// in t CO2e/ha, padded so the lines do not touch the frame.
func axisRange(l *growth.Ledger, sc scenario.Scenario) (yMin, yMax float64) {
	for t := range l.Years {
		for _, v := range []float64{
			stand.PerHaTonnes(l.ControlCO2e[t], sc.StemsPerHa),
			stand.PerHaTonnes(l.LiberatedCO2e[t], sc.StemsPerHa),
			stand.PerHaTonnes(l.NetCO2e[t], sc.StemsPerHa),
		} {
			if v < yMin {
				yMin = v
			}
			if v > yMax {
				yMax = v
			}
		}
	}
	return yMin * 1.1, yMax * 1.1
}

// perHaSeries converts a per-tree ledger series (kg CO2e) to t CO2e/ha,
// truncated to years 0..upTo.
func perHaSeries(series []float64, stemsPerHa float64, upTo int) []float64 {
	out := make([]float64, upTo+1)
	for t := 0; t <= upTo; t++ {
		out[t] = stand.PerHaTonnes(series[t], stemsPerHa)
	}
	return out
}

// renderChart renders the cumulative-sequestration chart truncated to years
// 0..upTo and returns the PNG bytes. Axis ranges span the full ledger so
// animation frames share one coordinate system.
func renderChart(l *growth.Ledger, sc scenario.Scenario, upTo int) ([]byte, error) {
	if upTo < 1 || upTo >= len(l.Years) {
		upTo = len(l.Years) - 1
	}
	xMax := l.Years[len(l.Years)-1]
	yMin, yMax := axisRange(l, sc)
	years := l.Years[:upTo+1]

	graph := chart.Chart{
		Width:  chartWidth,
		Height: chartHeight,
		XAxis: chart.XAxis{
			Name: "Years since liberation",
			Style: chart.Style{
				FontSize: 10.0,
			},
			Range: &chart.ContinuousRange{Min: 0, Max: xMax}, // Fixed X-axis range
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64))) // Format X-axis labels as integers
			},
			Ticks: generateTicks(xMax, ticksInterval),
		},
		YAxis: chart.YAxis{
			Name: "Cumulative sequestration (t CO2e/ha)",
			Style: chart.Style{
				FontSize: 10.0,
			},
			Range: &chart.ContinuousRange{Min: yMin, Max: yMax}, // Fixed Y-axis range
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Liberated",
				XValues: years,
				YValues: perHaSeries(l.LiberatedCO2e, sc.StemsPerHa, upTo),
				Style: chart.Style{
					StrokeColor: chart.ColorGreen,
					StrokeWidth: 3.0,
				},
			},
			chart.ContinuousSeries{
				Name:    "Control",
				XValues: years,
				YValues: perHaSeries(l.ControlCO2e, sc.StemsPerHa, upTo),
				Style: chart.Style{
					StrokeColor: chart.ColorRed,
					StrokeWidth: 3.0,
				},
			},
			chart.ContinuousSeries{
				Name:    "Net additional",
				XValues: years,
				YValues: perHaSeries(l.NetCO2e, sc.StemsPerHa, upTo),
				Style: chart.Style{
					StrokeColor: drawing.Color{R: 255, G: 165, B: 0, A: 255}, // Deep orange
					StrokeWidth: 4.0,
				},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	return buffer.Bytes(), nil
}

// RenderCumulativeChart writes the full cumulative-sequestration figure as PNG.
func RenderCumulativeChart(path string, l *growth.Ledger, sc scenario.Scenario) error {
	png, err := renderChart(l, sc, len(l.Years)-1)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return fmt.Errorf("write chart file: %w", err)
	}
	return nil
}
