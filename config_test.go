package reporter

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	reporterflags "github.com/ethereum-optimism/infra/op-reporter/flags"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "op-reporter.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, DefaultOutputPath, cfg.OutputPath)
	assert.Equal(t, DefaultPageTitle, cfg.PageTitle)
	assert.Empty(t, cfg.StyleOverridePath)
	assert.False(t, cfg.EnableTestReportCategory)
	assert.False(t, cfg.IncludeFailureMsg)
}

func TestLoadConfigFromManifest(t *testing.T) {
	path := writeManifest(t, `
reporter:
  outputPath: out/report.html
  pageTitle: Acceptance run
  styleOverridePath: style/custom.css
  enableTestReportCategory: true
  includeFailureMsg: true
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "out/report.html", cfg.OutputPath)
	assert.Equal(t, "Acceptance run", cfg.PageTitle)
	assert.Equal(t, "style/custom.css", cfg.StyleOverridePath)
	assert.True(t, cfg.EnableTestReportCategory)
	assert.True(t, cfg.IncludeFailureMsg)
}

func TestLoadConfigEnvOverridesOutputPath(t *testing.T) {
	path := writeManifest(t, `
reporter:
  outputPath: out/report.html
`)
	t.Setenv(OutputPathEnvVar, "env/report.html")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	// The environment variable overrides the output path specifically;
	// every other option keeps its manifest or default value.
	assert.Equal(t, "env/report.html", cfg.OutputPath)
	assert.Equal(t, DefaultPageTitle, cfg.PageTitle)
}

func TestLoadConfigMissingManifest(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadConfigInvalidManifest(t *testing.T) {
	path := writeManifest(t, "reporter: [not a mapping")
	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestNewConfigFlagOverrides(t *testing.T) {
	manifestPath := writeManifest(t, `
reporter:
  outputPath: out/report.html
  pageTitle: Acceptance run
`)

	set := flag.NewFlagSet("test", flag.ContinueOnError)
	for _, f := range reporterflags.Flags {
		require.NoError(t, f.Apply(set))
	}
	require.NoError(t, set.Parse([]string{
		"--results", "results.json",
		"--config", manifestPath,
		"--output", "flag/report.html",
		"--categories",
	}))
	ctx := cli.NewContext(cli.NewApp(), set, nil)

	cfg, err := NewConfig(ctx)
	require.NoError(t, err)

	// Flags beat the manifest; unset flags leave the manifest values alone.
	assert.Equal(t, "flag/report.html", cfg.OutputPath)
	assert.Equal(t, "Acceptance run", cfg.PageTitle)
	assert.True(t, cfg.EnableTestReportCategory)
}
