package reporter

import (
	"os"

	"github.com/ethereum-optimism/infra/op-reporter/templates"
	"github.com/ethereum-optimism/infra/op-reporter/types"
)

// Stylesheet returns the stylesheet text for the report: the built-in
// default, or the contents of the configured override file.
func Stylesheet(cfg *Config) (string, error) {
	if cfg.StyleOverridePath == "" {
		return templates.DefaultStylesheet(), nil
	}

	content, err := os.ReadFile(cfg.StyleOverridePath)
	if err != nil {
		return "", types.NewStylesheetNotFoundError(cfg.StyleOverridePath, err)
	}
	return string(content), nil
}
