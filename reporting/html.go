package reporting

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/ethereum-optimism/infra/op-reporter/templates"
)

// HTMLFormatter formats report data as a standalone HTML document.
type HTMLFormatter struct {
	template *template.Template
}

// NewHTMLFormatter creates a new HTML formatter from template content
func NewHTMLFormatter(templateContent string) (*HTMLFormatter, error) {
	tmpl, err := template.New("report").Funcs(templates.GetTemplateFunc()).Parse(templateContent)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML template: %w", err)
	}

	return &HTMLFormatter{
		template: tmpl,
	}, nil
}

// Format formats report data as HTML
func (f *HTMLFormatter) Format(data *ReportData) (string, error) {
	var buf bytes.Buffer
	if err := f.template.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute HTML template: %w", err)
	}
	return buf.String(), nil
}
