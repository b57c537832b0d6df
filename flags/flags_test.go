package flags

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func newContext(t *testing.T, args ...string) *cli.Context {
	t.Helper()
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	for _, f := range Flags {
		require.NoError(t, f.Apply(set))
	}
	require.NoError(t, set.Parse(args))
	return cli.NewContext(cli.NewApp(), set, nil)
}

func TestCheckRequired(t *testing.T) {
	ctx := newContext(t, "--results", "results.json")
	assert.NoError(t, CheckRequired(ctx))
}

func TestCheckRequiredMissing(t *testing.T) {
	ctx := newContext(t)
	err := CheckRequired(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "results")
}

func TestFlagEnvVars(t *testing.T) {
	assert.Equal(t, []string{"OP_REPORTER_RESULTS"}, Results.EnvVars)
	assert.Equal(t, []string{"OP_REPORTER_OUTPUT"}, Output.EnvVars)
}

func TestUniqueFlagNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, f := range Flags {
		for _, name := range f.Names() {
			assert.False(t, seen[name], "duplicate flag name %s", name)
			seen[name] = true
		}
	}
}
