package reporting

import (
	"os"
	"path/filepath"

	"github.com/ethereum-optimism/infra/op-reporter/types"
)

// HTMLSink renders report data and persists it as a single HTML file.
type HTMLSink struct {
	formatter *HTMLFormatter
}

// NewHTMLSink creates a new HTML sink from template content
func NewHTMLSink(templateContent string) (*HTMLSink, error) {
	formatter, err := NewHTMLFormatter(templateContent)
	if err != nil {
		return nil, err
	}

	return &HTMLSink{
		formatter: formatter,
	}, nil
}

// Generate renders the report and writes it to dest, creating parent
// directories as needed. An existing file at dest is overwritten.
func (s *HTMLSink) Generate(data *ReportData, dest string) error {
	content, err := s.formatter.Format(data)
	if err != nil {
		return err
	}
	return WriteReport(dest, content)
}

// WriteReport persists rendered report content to path. Parent directories
// are created recursively if missing.
func WriteReport(path, content string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return types.NewWriteError(path, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return types.NewWriteError(path, err)
	}
	return nil
}
