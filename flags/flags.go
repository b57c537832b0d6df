package flags

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

const EnvVarPrefix = "OP_REPORTER"

func prefixEnvVars(name string) []string {
	return []string{EnvVarPrefix + "_" + name}
}

var (
	Results = &cli.StringFlag{
		Name:     "results",
		Value:    "",
		Required: true,
		EnvVars:  prefixEnvVars("RESULTS"),
		Usage:    "Path to the test-run results file (eg. 'results.json')",
	}
	ConfigFile = &cli.StringFlag{
		Name:    "config",
		Value:   "",
		EnvVars: prefixEnvVars("CONFIG"),
		Usage:   "Path to the project manifest carrying the reporter section",
	}
	Output = &cli.StringFlag{
		Name:    "output",
		Value:   "",
		EnvVars: prefixEnvVars("OUTPUT"),
		Usage:   "Destination file path for the generated HTML report",
	}
	Title = &cli.StringFlag{
		Name:    "title",
		Value:   "",
		EnvVars: prefixEnvVars("TITLE"),
		Usage:   "Title text used in the report head and page heading",
	}
	Style = &cli.StringFlag{
		Name:    "style",
		Value:   "",
		EnvVars: prefixEnvVars("STYLE"),
		Usage:   "Path to a stylesheet replacing the built-in default",
	}
	Categories = &cli.BoolFlag{
		Name:    "categories",
		Value:   false,
		EnvVars: prefixEnvVars("CATEGORIES"),
		Usage:   "Render positive/negative category columns in the suite index",
	}
	FailureMsgs = &cli.BoolFlag{
		Name:    "failure-msgs",
		Value:   false,
		EnvVars: prefixEnvVars("FAILURE_MSGS"),
		Usage:   "Include failure-message detail under failing case titles",
	}
)

var requiredFlags = []cli.Flag{
	Results,
}

var optionalFlags = []cli.Flag{
	ConfigFile,
	Output,
	Title,
	Style,
	Categories,
	FailureMsgs,
}

var Flags []cli.Flag

func init() {
	Flags = append(requiredFlags, optionalFlags...)
}

func CheckRequired(ctx *cli.Context) error {
	for _, f := range requiredFlags {
		if !ctx.IsSet(f.Names()[0]) {
			return fmt.Errorf("flag %s is required", f.Names()[0])
		}
	}
	return nil
}
