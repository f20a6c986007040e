package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcaye93/ftc-liberation-FEM/internal/growth"
	"github.com/dcaye93/ftc-liberation-FEM/internal/scenario"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func evaluated(t *testing.T, horizon int) (*growth.Ledger, scenario.Scenario) {
	t.Helper()
	sc := scenario.Default()
	sc.HorizonYears = horizon
	return growth.Evaluate(sc), sc
}

func TestWriteCSV(t *testing.T) {
	l, sc := evaluated(t, 30)
	path := filepath.Join(t.TempDir(), "sequestration.csv")
	require.NoError(t, WriteCSV(path, l, sc))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)

	// Header plus one row per year
	require.Len(t, records, 32)
	assert.Equal(t, csvHeaders, records[0])
	assert.Equal(t, "0", records[1][0])
	assert.Equal(t, "30", records[31][0])
	for _, record := range records {
		assert.Len(t, record, len(csvHeaders))
	}
}

func TestRenderCumulativeChart(t *testing.T) {
	l, sc := evaluated(t, 30)
	path := filepath.Join(t.TempDir(), "chart.png")
	require.NoError(t, RenderCumulativeChart(path, l, sc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(data), len(pngMagic))
	assert.Equal(t, pngMagic, data[:len(pngMagic)])
}

func TestRenderChart_Truncated(t *testing.T) {
	l, sc := evaluated(t, 30)

	png, err := renderChart(l, sc, 5)
	require.NoError(t, err)
	assert.NotEmpty(t, png)

	// Out-of-range truncation falls back to the full series.
	full, err := renderChart(l, sc, 99)
	require.NoError(t, err)
	assert.NotEmpty(t, full)
}

func TestRenderAnnualIncrementPlot(t *testing.T) {
	l, sc := evaluated(t, 30)
	path := filepath.Join(t.TempDir(), "increment.png")
	require.NoError(t, RenderAnnualIncrementPlot(path, l, sc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, pngMagic, data[:len(pngMagic)])
}

func TestWriteAnimation(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping video rendering in short mode")
	}
	l, sc := evaluated(t, 5)
	path := filepath.Join(t.TempDir(), "anim.mp4")
	require.NoError(t, WriteAnimation(path, l, sc))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestAxisRange_CoversNegativeDebt(t *testing.T) {
	l, sc := evaluated(t, 30)
	yMin, yMax := axisRange(l, sc)
	assert.Negative(t, yMin)
	assert.Positive(t, yMax)
	assert.Greater(t, yMax, -yMin)
}
