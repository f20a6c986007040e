// Package report writes the run artifacts: the per-year CSV table, the
// cumulative-sequestration chart, the annual-increment plot and the MJPEG
// animation of the chart building up year by year.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/dcaye93/ftc-liberation-FEM/internal/growth"
	"github.com/dcaye93/ftc-liberation-FEM/internal/scenario"
	"github.com/dcaye93/ftc-liberation-FEM/internal/stand"
)

// csvHeaders lists every column of the per-year table.
var csvHeaders = []string{
	"Year",
	"Control Tree Diameter (cm)", "Liberated Tree Diameter (cm)", "Liana Diameter (cm)",
	"Control Tree AGB (kg)", "Liberated Tree AGB (kg)", "Liana AGB per Tree (kg)",
	"Control Gain (kg CO2e/tree)", "Liberated Gain (kg CO2e/tree)", "Net Additional (kg CO2e/tree)",
	"Net Additional (t CO2e/ha)",
}

// WriteCSV dumps the complete per-year table of one evaluated scenario.
func WriteCSV(path string, l *growth.Ledger, sc scenario.Scenario) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(csvHeaders); err != nil {
		return fmt.Errorf("write csv headers: %w", err)
	}

	for t := range l.Years {
		row := []string{
			strconv.Itoa(int(l.Years[t])),
			strconv.FormatFloat(l.ControlDiameter[t], 'f', 6, 64),
			strconv.FormatFloat(l.LiberatedDiameter[t], 'f', 6, 64),
			strconv.FormatFloat(l.LianaDiameter[t], 'f', 6, 64),
			strconv.FormatFloat(l.ControlTreeAGB[t], 'f', 6, 64),
			strconv.FormatFloat(l.LiberatedTreeAGB[t], 'f', 6, 64),
			strconv.FormatFloat(l.LianaAGB[t], 'f', 6, 64),
			strconv.FormatFloat(l.ControlCO2e[t], 'f', 6, 64),
			strconv.FormatFloat(l.LiberatedCO2e[t], 'f', 6, 64),
			strconv.FormatFloat(l.NetCO2e[t], 'f', 6, 64),
			strconv.FormatFloat(stand.PerHaTonnes(l.NetCO2e[t], sc.StemsPerHa), 'f', 6, 64),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row %d: %w", t, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
