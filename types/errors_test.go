package types

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorClassification(t *testing.T) {
	inputErr := NewInputError("test result data is missing")
	styleErr := NewStylesheetNotFoundError("/missing/style.css", os.ErrNotExist)
	writeErr := NewWriteError("/out/report.html", os.ErrPermission)

	assert.True(t, IsInputError(inputErr))
	assert.False(t, IsInputError(styleErr))

	assert.True(t, IsStylesheetNotFoundError(styleErr))
	assert.False(t, IsStylesheetNotFoundError(writeErr))

	assert.True(t, IsWriteError(writeErr))
	assert.False(t, IsWriteError(inputErr))

	assert.False(t, IsInputError(nil))
	assert.False(t, IsStylesheetNotFoundError(nil))
	assert.False(t, IsWriteError(nil))
}

func TestErrorWrapping(t *testing.T) {
	styleErr := NewStylesheetNotFoundError("/missing/style.css", os.ErrNotExist)
	wrapped := fmt.Errorf("stage failed: %w", styleErr)

	assert.True(t, IsStylesheetNotFoundError(wrapped))
	assert.True(t, errors.Is(wrapped, os.ErrNotExist))
	assert.Contains(t, styleErr.Error(), "/missing/style.css")

	writeErr := NewWriteError("/out/report.html", os.ErrPermission)
	assert.True(t, errors.Is(writeErr, os.ErrPermission))
	assert.Contains(t, writeErr.Error(), "/out/report.html")

	loadErr := WrapInputError("failed to read results file", os.ErrNotExist)
	assert.True(t, IsInputError(loadErr))
	assert.True(t, errors.Is(loadErr, os.ErrNotExist))
}
