package reporter

import (
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ethereum-optimism/infra/op-reporter/metrics"
	"github.com/ethereum-optimism/infra/op-reporter/reporting"
	"github.com/ethereum-optimism/infra/op-reporter/templates"
	"github.com/ethereum-optimism/infra/op-reporter/types"
)

// Reporter turns a test-run result into a static HTML report file. It is
// intended to be invoked by a test runner's reporting hook after a run
// completes.
type Reporter struct {
	cfg     *Config
	log     *slog.Logger
	sink    *reporting.HTMLSink
	console *reporting.ConsoleSink
}

// New creates a new Reporter from an immutable configuration.
func New(cfg *Config, log *slog.Logger) (*Reporter, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if log == nil {
		log = slog.Default()
	}

	templateContent, err := templates.ReportTemplate()
	if err != nil {
		return nil, err
	}
	sink, err := reporting.NewHTMLSink(templateContent)
	if err != nil {
		return nil, err
	}

	return &Reporter{
		cfg:  cfg,
		log:  log,
		sink: sink,
	}, nil
}

// WithConsoleSummary enables a console summary table after each successful
// report generation.
func (r *Reporter) WithConsoleSummary(console *reporting.ConsoleSink) *Reporter {
	r.console = console
	return r
}

// CreateReport generates the report for result and writes it to dest (the
// configured output path when dest is empty). It is the sole catch point of
// the pipeline: every outcome terminates in a log line and nothing is raised
// past this boundary.
func (r *Reporter) CreateReport(result *types.RunResult, dest string) {
	runID := uuid.New().String()
	if dest == "" {
		dest = r.cfg.OutputPath
	}

	start := time.Now()
	err := r.generate(result, dest)
	elapsed := time.Since(start)

	if err != nil {
		metrics.RecordError(errorClass(err))
		metrics.RecordReport(metrics.ResultFailure, elapsed)
		r.log.Error("Failed to create test report", "runID", runID, "error", err)
		return
	}

	metrics.RecordReport(metrics.ResultSuccess, elapsed)
	r.log.Info("Created test report", "runID", runID, "path", dest)
}

// generate sequences stylesheet fetch, render and write. Any failure
// short-circuits the remaining stages.
func (r *Reporter) generate(result *types.RunResult, dest string) error {
	stylesheet, err := Stylesheet(r.cfg)
	if err != nil {
		return err
	}

	data, err := reporting.NewReportBuilder().
		WithTitle(r.cfg.PageTitle).
		WithStylesheet(stylesheet).
		WithOptions(reporting.Options{
			EnableTestReportCategory: r.cfg.EnableTestReportCategory,
			IncludeFailureMsg:        r.cfg.IncludeFailureMsg,
		}).
		Build(result)
	if err != nil {
		return err
	}

	if err := r.sink.Generate(data, dest); err != nil {
		return err
	}

	if r.console != nil {
		r.console.Summarize(data)
	}
	return nil
}

// errorClass maps an error to its metrics label.
func errorClass(err error) string {
	switch {
	case types.IsInputError(err):
		return "input"
	case types.IsStylesheetNotFoundError(err):
		return "stylesheet"
	case types.IsWriteError(err):
		return "write"
	default:
		return "other"
	}
}
