package types

import (
	"strings"
)

// TestStatus represents the outcome of a single test case.
// Runners may emit statuses beyond the constants below; those render
// verbatim and count toward no pass/fail bucket.
type TestStatus string

const (
	TestStatusPassed  TestStatus = "passed"
	TestStatusFailed  TestStatus = "failed"
	TestStatusPending TestStatus = "pending"
)

// Title prefixes used by project convention to categorize test cases.
const (
	PositivePrefix = "P_"
	NegativePrefix = "N_"
)

// RunResult is the aggregate outcome of a full test run. It is the input to
// the report renderer and is never mutated by it.
type RunResult struct {
	StartTime           int64         `json:"startTime"` // epoch milliseconds
	NumTotalTestSuites  int           `json:"numTotalTestSuites"`
	NumPassedTestSuites int           `json:"numPassedTestSuites"`
	NumFailedTestSuites int           `json:"numFailedTestSuites"`
	NumTotalTests       int           `json:"numTotalTests"`
	NumPassedTests      int           `json:"numPassedTests"`
	NumFailedTests      int           `json:"numFailedTests"`
	NumPendingTests     int           `json:"numPendingTests"`
	TestResults         []SuiteResult `json:"testResults"`
}

// PerfStats holds the performance window of a suite run, in epoch milliseconds.
type PerfStats struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

// SuiteResult is the outcome of one test file.
type SuiteResult struct {
	TestFilePath    string       `json:"testFilePath"`
	PerfStats       PerfStats    `json:"perfStats"`
	NumFailingTests int          `json:"numFailingTests"`
	TestResults     []CaseResult `json:"testResults"`
}

// Empty reports whether the suite carries no test cases. Empty suites are
// invisible in report output.
func (s *SuiteResult) Empty() bool {
	return len(s.TestResults) == 0
}

// CaseResult is the outcome of one individual test case.
type CaseResult struct {
	Title           string     `json:"title"`
	AncestorTitles  []string   `json:"ancestorTitles"`
	Status          TestStatus `json:"status"`
	Duration        float64    `json:"duration"` // milliseconds
	FailureMessages []string   `json:"failureMessages,omitempty"`
}

// Category is the result of classifying a case title. The two checks are
// independent prefix tests, not mutually exclusive; a title matching neither
// prefix is uncategorized.
type Category struct {
	Positive bool
	Negative bool
}

// Uncategorized reports whether the title matched neither prefix.
func (c Category) Uncategorized() bool {
	return !c.Positive && !c.Negative
}

// Classify categorizes a case title by its convention prefix.
func Classify(title string) Category {
	return Category{
		Positive: strings.HasPrefix(title, PositivePrefix),
		Negative: strings.HasPrefix(title, NegativePrefix),
	}
}
