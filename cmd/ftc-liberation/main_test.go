package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dcaye93/ftc-liberation-FEM/internal/scenario"
)

func TestScenarioCommand(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"scenario"})
	require.NoError(t, rootCmd.Execute())

	var sc scenario.Scenario
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &sc))
	assert.Equal(t, scenario.Default(), sc)
}

func TestRunCommand(t *testing.T) {
	out := t.TempDir()
	rootCmd.SetArgs([]string{"run", "--out", out})
	require.NoError(t, rootCmd.Execute())

	for _, name := range []string{csvName, chartName, incrementName} {
		_, err := os.Stat(filepath.Join(out, name))
		assert.NoError(t, err, "expected artifact %s", name)
	}

	// Animation is opt-in and must not be written by default.
	_, err := os.Stat(filepath.Join(out, videoName))
	assert.True(t, os.IsNotExist(err))
}

func TestLoadScenario_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "variant.yaml")
	require.NoError(t, os.WriteFile(path, []byte("stems_per_ha: 120\n"), 0o644))

	scenarioPath = path
	defer func() { scenarioPath = "" }()

	sc, err := loadScenario()
	require.NoError(t, err)
	assert.Equal(t, 120.0, sc.StemsPerHa)
}
