package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	reporter "github.com/ethereum-optimism/infra/op-reporter"
	"github.com/ethereum-optimism/infra/op-reporter/flags"
	"github.com/ethereum-optimism/infra/op-reporter/reporting"
	"github.com/ethereum-optimism/infra/op-reporter/types"
)

var (
	Version   = "v0.1.0"
	GitCommit = ""
	GitDate   = ""
)

func main() {
	app := cli.NewApp()
	app.Version = fmt.Sprintf("%s-%s-%s", Version, GitCommit, GitDate)
	app.Name = "op-reporter"
	app.Usage = "Test Report Generator"
	app.Description = "op-reporter renders test-run results into a static HTML report"
	app.Flags = flags.Flags
	app.Action = run
	app.ExitErrHandler = func(c *cli.Context, err error) {
		var exitErr cli.ExitCoder
		if errors.As(err, &exitErr) {
			cli.HandleExitCoder(exitErr)
		} else if err != nil {
			// Invocation errors (unreadable results or config) exit with
			// code 2; report-generation failures never reach this handler.
			if types.IsInputError(err) {
				cli.HandleExitCoder(cli.Exit(err.Error(), 2))
			} else {
				cli.HandleExitCoder(cli.Exit(err.Error(), 1))
			}
		}
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Application failed: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	if err := flags.CheckRequired(ctx); err != nil {
		return fmt.Errorf("missing required flags: %w", err)
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := reporter.NewConfig(ctx)
	if err != nil {
		return types.WrapInputError("failed to load config", err)
	}

	result, err := reporter.LoadRunResult(ctx.String(flags.Results.Name))
	if err != nil {
		return err
	}

	rep, err := reporter.New(cfg, log)
	if err != nil {
		return err
	}
	rep.WithConsoleSummary(reporting.NewConsoleSink())

	// All outcomes of report generation terminate in a log line; the
	// process does not fail because a report could not be written.
	rep.CreateReport(result, "")
	return nil
}
