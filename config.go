package reporter

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/ethereum-optimism/infra/op-reporter/flags"
)

const (
	// DefaultPageTitle is used when no title is configured.
	DefaultPageTitle = "Test suite"
	// DefaultOutputPath is the report destination when neither the manifest
	// nor the environment configures one.
	DefaultOutputPath = "test-report.html"
	// OutputPathEnvVar overrides the configured output path.
	OutputPathEnvVar = "OP_REPORTER_OUTPUT_PATH"
)

// Config holds the application configuration. It is constructed once at
// startup and treated as immutable afterward.
type Config struct {
	OutputPath               string `yaml:"outputPath"`               // destination file path for the generated report
	PageTitle                string `yaml:"pageTitle"`                // title used in <title> and the page heading
	StyleOverridePath        string `yaml:"styleOverridePath"`        // custom stylesheet file; empty means built-in default
	EnableTestReportCategory bool   `yaml:"enableTestReportCategory"` // positive/negative category columns in the index
	IncludeFailureMsg        bool   `yaml:"includeFailureMsg"`        // failure-message blocks under failing case titles
}

// manifest is the project-local configuration file; reporter options live
// under their own section.
type manifest struct {
	Reporter Config `yaml:"reporter"`
}

// LoadConfig reads the reporter section of a manifest file and applies the
// environment override and defaults. An empty path yields the defaults.
func LoadConfig(manifestPath string) (*Config, error) {
	cfg := &Config{}

	if manifestPath != "" {
		raw, err := os.ReadFile(manifestPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read manifest %s: %w", manifestPath, err)
		}
		var m manifest
		if err := yaml.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("failed to parse manifest %s: %w", manifestPath, err)
		}
		*cfg = m.Reporter
	}

	// The environment variable overrides the manifest value for the output
	// path specifically.
	if env := os.Getenv(OutputPathEnvVar); env != "" {
		cfg.OutputPath = env
	}

	cfg.applyDefaults()
	return cfg, nil
}

// NewConfig creates a new Config from cli context. Flag values take
// precedence over both the manifest and the environment.
func NewConfig(ctx *cli.Context) (*Config, error) {
	cfg, err := LoadConfig(ctx.String(flags.ConfigFile.Name))
	if err != nil {
		return nil, err
	}

	if ctx.IsSet(flags.Output.Name) {
		cfg.OutputPath = ctx.String(flags.Output.Name)
	}
	if ctx.IsSet(flags.Title.Name) {
		cfg.PageTitle = ctx.String(flags.Title.Name)
	}
	if ctx.IsSet(flags.Style.Name) {
		cfg.StyleOverridePath = ctx.String(flags.Style.Name)
	}
	if ctx.IsSet(flags.Categories.Name) {
		cfg.EnableTestReportCategory = ctx.Bool(flags.Categories.Name)
	}
	if ctx.IsSet(flags.FailureMsgs.Name) {
		cfg.IncludeFailureMsg = ctx.Bool(flags.FailureMsgs.Name)
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.OutputPath == "" {
		c.OutputPath = DefaultOutputPath
	}
	if c.PageTitle == "" {
		c.PageTitle = DefaultPageTitle
	}
}
