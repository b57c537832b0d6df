package templates

import (
	"html/template"
	"strings"

	"github.com/ethereum-optimism/infra/op-reporter/types"
)

// GetTemplateFunc returns the centralized template functions used across the application
func GetTemplateFunc() template.FuncMap {
	return template.FuncMap{
		"statusClass": func(status types.TestStatus) string {
			return StatusClass(status)
		},
	}
}

// StatusClass returns a CSS class name for a test status. Known statuses map
// to themselves; runner-defined statuses are sanitized into a usable class.
func StatusClass(status types.TestStatus) string {
	switch status {
	case types.TestStatusPassed, types.TestStatusFailed, types.TestStatusPending:
		return string(status)
	default:
		s := strings.ToLower(strings.TrimSpace(string(status)))
		s = strings.ReplaceAll(s, " ", "-")
		if s == "" {
			return "unknown"
		}
		return s
	}
}
