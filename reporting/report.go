package reporting

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"
	"time"

	"github.com/acarl005/stripansi"

	"github.com/ethereum-optimism/infra/op-reporter/types"
)

// Options controls the optional parts of the rendered report.
type Options struct {
	// EnableTestReportCategory adds positive/negative columns to the suite
	// index and renders pass/fail counts per category.
	EnableTestReportCategory bool
	// IncludeFailureMsg includes failure-message blocks under case titles.
	IncludeFailureMsg bool
}

// SuiteSummary aggregates suite-level counters for the summary line.
type SuiteSummary struct {
	Total  int
	Passed int
	Failed int
}

// TestSummary aggregates test-level counters for the summary line.
type TestSummary struct {
	Total   int
	Passed  int
	Failed  int
	Pending int
}

// IndexRow is one row of the suite index table. Rows exist only for
// non-empty suites and carry a contiguous 1-based sequence number.
type IndexRow struct {
	Seq       int
	Label     string // ancestor chain of the suite's first case
	CaseCount int
	Positive  int // only rendered in category mode
	Negative  int // only rendered in category mode

	// Pre-rendered cell text: plain counts, or "P = x N = y" in category mode.
	PassedCell string
	FailedCell string
}

// CaseRow is one row of a suite detail table.
type CaseRow struct {
	AncestorChain   string
	Title           string
	Status          types.TestStatus
	FailureMessages []string // ANSI-stripped; empty unless IncludeFailureMsg is set
	Result          string
}

// DetailSection is the per-suite detail block: the file path line plus one
// row per case.
type DetailSection struct {
	FilePath string
	Elapsed  string // suite wall time in seconds
	Rows     []CaseRow
}

// ReportData is the immutable document model handed to a formatter. It is a
// pure function of (RunResult, stylesheet, options); rendering it twice
// produces byte-identical output.
type ReportData struct {
	Title       string
	Stylesheet  template.CSS
	Timestamp   string
	Suites      SuiteSummary
	Tests       TestSummary
	Categorized bool
	IndexRows   []IndexRow
	Details     []DetailSection
}

// ReportBuilder constructs ReportData from a RunResult.
type ReportBuilder struct {
	title      string
	stylesheet string
	opts       Options
}

// NewReportBuilder creates a new report builder
func NewReportBuilder() *ReportBuilder {
	return &ReportBuilder{}
}

// WithTitle sets the report title used in the head and the page heading.
func (rb *ReportBuilder) WithTitle(title string) *ReportBuilder {
	rb.title = title
	return rb
}

// WithStylesheet sets the stylesheet text inlined into the document head.
func (rb *ReportBuilder) WithStylesheet(stylesheet string) *ReportBuilder {
	rb.stylesheet = stylesheet
	return rb
}

// WithOptions sets the rendering options.
func (rb *ReportBuilder) WithOptions(opts Options) *ReportBuilder {
	rb.opts = opts
	return rb
}

// Build walks the run result and produces the report document model.
// It fails with an InputError when the result is absent; all other inputs
// are assumed well-formed.
func (rb *ReportBuilder) Build(result *types.RunResult) (*ReportData, error) {
	if result == nil {
		return nil, types.NewInputError("test result data is missing")
	}

	data := &ReportData{
		Title:       rb.title,
		Stylesheet:  template.CSS(rb.stylesheet),
		Timestamp:   time.UnixMilli(result.StartTime).Format(time.DateTime),
		Categorized: rb.opts.EnableTestReportCategory,
		Suites: SuiteSummary{
			Total:  result.NumTotalTestSuites,
			Passed: result.NumPassedTestSuites,
			Failed: result.NumFailedTestSuites,
		},
		Tests: TestSummary{
			Total:   result.NumTotalTests,
			Passed:  result.NumPassedTests,
			Failed:  result.NumFailedTests,
			Pending: result.NumPendingTests,
		},
	}

	seq := 0
	for i := range result.TestResults {
		suite := &result.TestResults[i]
		// Empty suites are invisible in both the index and the details.
		if suite.Empty() {
			continue
		}
		seq++
		data.IndexRows = append(data.IndexRows, rb.buildIndexRow(suite, seq))
		data.Details = append(data.Details, rb.buildDetailSection(suite))
	}

	return data, nil
}

// buildIndexRow tallies one non-empty suite into an index table row.
func (rb *ReportBuilder) buildIndexRow(suite *types.SuiteResult, seq int) IndexRow {
	row := IndexRow{
		Seq: seq,
		// The label is representative only: it is drawn from the first
		// case's ancestor chain even when the suite mixes several chains.
		Label:     strings.Join(suite.TestResults[0].AncestorTitles, " > "),
		CaseCount: len(suite.TestResults),
	}

	var passed, failed int
	var passedPos, passedNeg, failedPos, failedNeg int
	for _, c := range suite.TestResults {
		cat := types.Classify(c.Title)
		if cat.Positive {
			row.Positive++
		}
		if cat.Negative {
			row.Negative++
		}
		switch c.Status {
		case types.TestStatusPassed:
			passed++
			if cat.Positive {
				passedPos++
			}
			if cat.Negative {
				passedNeg++
			}
		case types.TestStatusFailed:
			failed++
			if cat.Positive {
				failedPos++
			}
			if cat.Negative {
				failedNeg++
			}
		}
	}

	if rb.opts.EnableTestReportCategory {
		row.PassedCell = fmt.Sprintf("P = %d N = %d", passedPos, passedNeg)
		row.FailedCell = fmt.Sprintf("P = %d N = %d", failedPos, failedNeg)
	} else {
		row.PassedCell = strconv.Itoa(passed)
		row.FailedCell = strconv.Itoa(failed)
	}
	return row
}

// buildDetailSection renders one non-empty suite into a detail block.
func (rb *ReportBuilder) buildDetailSection(suite *types.SuiteResult) DetailSection {
	section := DetailSection{
		FilePath: suite.TestFilePath,
		Elapsed:  formatSeconds(float64(suite.PerfStats.End - suite.PerfStats.Start)),
		Rows:     make([]CaseRow, 0, len(suite.TestResults)),
	}

	for _, c := range suite.TestResults {
		row := CaseRow{
			AncestorChain: strings.Join(c.AncestorTitles, " > "),
			Title:         c.Title,
			Status:        c.Status,
			Result:        resultText(c),
		}
		if rb.opts.IncludeFailureMsg && len(c.FailureMessages) > 0 {
			row.FailureMessages = make([]string, 0, len(c.FailureMessages))
			for _, msg := range c.FailureMessages {
				row.FailureMessages = append(row.FailureMessages, stripansi.Strip(msg))
			}
		}
		section.Rows = append(section.Rows, row)
	}
	return section
}

// resultText renders the result cell: duration is shown for passed cases
// only, any other status renders as the bare status string.
func resultText(c types.CaseResult) string {
	if c.Status == types.TestStatusPassed {
		return fmt.Sprintf("%s in %ss", c.Status, formatSeconds(c.Duration))
	}
	return string(c.Status)
}

// formatSeconds converts milliseconds to a seconds string without trailing
// zeros, e.g. 12 -> "0.012", 1500 -> "1.5".
func formatSeconds(ms float64) string {
	return strconv.FormatFloat(ms/1000, 'f', -1, 64)
}
