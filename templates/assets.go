package templates

import (
	"embed"
	"fmt"
)

const (
	ReportTemplateName    = "report.html.tmpl"
	DefaultStylesheetName = "default-style.css"
)

//go:embed report.html.tmpl default-style.css
var assetFS embed.FS

// ReportTemplate returns the embedded HTML report template content.
func ReportTemplate() (string, error) {
	content, err := assetFS.ReadFile(ReportTemplateName)
	if err != nil {
		return "", fmt.Errorf("failed to read embedded template %s: %w", ReportTemplateName, err)
	}
	return string(content), nil
}

// DefaultStylesheet returns the built-in report stylesheet.
func DefaultStylesheet() string {
	content, err := assetFS.ReadFile(DefaultStylesheetName)
	if err != nil {
		// The stylesheet is compiled into the binary; failing to read it
		// means the build itself is broken.
		panic(fmt.Sprintf("embedded stylesheet %s missing: %v", DefaultStylesheetName, err))
	}
	return string(content)
}
