package reporting

import (
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// ConsoleSink prints a suite summary table to a writer after a report has
// been generated.
type ConsoleSink struct {
	out io.Writer
}

// NewConsoleSink creates a new console sink writing to stdout
func NewConsoleSink() *ConsoleSink {
	return &ConsoleSink{out: os.Stdout}
}

// NewConsoleSinkWithWriter creates a new console sink writing to out
func NewConsoleSinkWithWriter(out io.Writer) *ConsoleSink {
	return &ConsoleSink{out: out}
}

// Summarize renders the suite index of the report as an ASCII table.
func (s *ConsoleSink) Summarize(data *ReportData) {
	t := table.NewWriter()
	t.SetOutputMirror(s.out)
	t.SetTitle(data.Title)

	headers := table.Row{"#", "SUITE", "TESTS"}
	if data.Categorized {
		headers = append(headers, "POSITIVE", "NEGATIVE")
	}
	headers = append(headers, "PASSED", "FAILED")
	t.AppendHeader(headers)

	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "#", Align: text.AlignRight},
		{Name: "SUITE", WidthMax: 80, WidthMaxEnforcer: text.WrapSoft},
		{Name: "TESTS", Align: text.AlignRight},
		{Name: "PASSED", Align: text.AlignRight},
		{Name: "FAILED", Align: text.AlignRight},
	})

	for _, row := range data.IndexRows {
		r := table.Row{row.Seq, row.Label, row.CaseCount}
		if data.Categorized {
			r = append(r, row.Positive, row.Negative)
		}
		r = append(r, row.PassedCell, row.FailedCell)
		t.AppendRow(r)
	}

	footer := table.Row{"", "TOTAL", data.Tests.Total}
	if data.Categorized {
		footer = append(footer, "", "")
	}
	footer = append(footer, data.Tests.Passed, data.Tests.Failed)
	t.AppendFooter(footer)

	if data.Tests.Failed > 0 {
		t.SetStyle(table.StyleColoredBlackOnRedWhite)
	} else {
		t.SetStyle(table.StyleColoredBlackOnGreenWhite)
	}

	t.Render()
}
