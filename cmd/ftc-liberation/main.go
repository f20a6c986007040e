// Command ftc-liberation reproduces the liana-liberation carbon analysis:
// it evaluates the 30-year liberation scenario against the untreated
// control and writes the per-year table, the publication chart and the
// scalar roll-ups.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dcaye93/ftc-liberation-FEM/internal/growth"
	"github.com/dcaye93/ftc-liberation-FEM/internal/report"
	"github.com/dcaye93/ftc-liberation-FEM/internal/scenario"
	"github.com/dcaye93/ftc-liberation-FEM/internal/stand"
)

// Output file names inside the --out directory.
const (
	csvName       = "sequestration.csv"
	chartName     = "cumulative_sequestration.png"
	incrementName = "annual_increment.png"
	videoName     = "sequestration_30yr.mp4"
)

var (
	// Global flags
	scenarioPath string
	outDir       string
	animate      bool
	verbose      bool

	// Logger
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "ftc-liberation",
	Short: "Carbon accumulation in trees liberated from lianas",
	Long: `ftc-liberation models 30 years of carbon accumulation in tropical
canopy trees liberated from competing lianas, compares the result to an
untreated control, and renders the cumulative-sequestration figure together
with per-hectare, global and cost-effectiveness roll-ups.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// runCmd evaluates the scenario and writes all artifacts.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Evaluate the scenario and write CSV, figures and roll-ups",
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := loadScenario()
		if err != nil {
			return err
		}

		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}

		ledger := growth.Evaluate(sc)
		summary := stand.Summarize(ledger, sc)

		csvPath := filepath.Join(outDir, csvName)
		if err := report.WriteCSV(csvPath, ledger, sc); err != nil {
			return err
		}
		logger.Debug("wrote per-year table", zap.String("path", csvPath))

		chartPath := filepath.Join(outDir, chartName)
		if err := report.RenderCumulativeChart(chartPath, ledger, sc); err != nil {
			return err
		}
		logger.Debug("wrote cumulative chart", zap.String("path", chartPath))

		incrementPath := filepath.Join(outDir, incrementName)
		if err := report.RenderAnnualIncrementPlot(incrementPath, ledger, sc); err != nil {
			return err
		}
		logger.Debug("wrote annual increment plot", zap.String("path", incrementPath))

		if animate {
			videoPath := filepath.Join(outDir, videoName)
			if err := report.WriteAnimation(videoPath, ledger, sc); err != nil {
				return err
			}
			logger.Debug("wrote animation", zap.String("path", videoPath))
		}

		logger.Info("liberation scenario evaluated",
			zap.Int("horizon_years", sc.HorizonYears),
			zap.Float64("net_kg_co2e_per_tree", summary.PerTreeKgCO2e),
			zap.Float64("net_t_co2e_per_ha", summary.PerHaTonnesCO2e),
			zap.Float64("annual_t_co2e_per_ha", summary.AnnualTonnesCO2eHa),
			zap.Float64("global_pg_co2e", summary.GlobalPgCO2e),
			zap.Float64("usd_per_t_co2e", summary.USDPerTonneCO2e),
			zap.Int("payback_year", summary.PaybackYear),
			zap.String("out_dir", outDir),
		)
		return nil
	},
}

// scenarioCmd prints the effective parameterization as YAML.
var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Print the effective scenario (defaults merged with --scenario) as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := loadScenario()
		if err != nil {
			return err
		}
		data, err := sc.Marshal()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	},
}

// loadScenario returns the default parameterization, overridden by the
// --scenario YAML file when one is given.
func loadScenario() (scenario.Scenario, error) {
	if scenarioPath == "" {
		return scenario.Default(), nil
	}
	return scenario.Load(scenarioPath)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&scenarioPath, "scenario", "", "YAML scenario file overriding the published defaults")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	runCmd.Flags().StringVar(&outDir, "out", "out", "output directory for CSV, figures and video")
	runCmd.Flags().BoolVar(&animate, "animate", false, "also render the year-by-year MJPEG animation")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(scenarioCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
