package reporter

import (
	"encoding/json"
	"os"

	"github.com/ethereum-optimism/infra/op-reporter/types"
)

// LoadRunResult reads a test-run result file as written by a test runner's
// JSON output hook.
func LoadRunResult(path string) (*types.RunResult, error) {
	if path == "" {
		return nil, types.NewInputError("results file path is required")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, types.WrapInputError("failed to read results file "+path, err)
	}

	var result types.RunResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, types.WrapInputError("failed to parse results file "+path, err)
	}
	return &result, nil
}
