package errors_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biopragmatics/biomap/pkg/errors"
)

func TestIOErrorNotFound(t *testing.T) {
	_, err := os.Open(filepath.Join(t.TempDir(), "absent.tsv"))
	require.Error(t, err)

	wrapped := errors.WrapIO("read", "absent.tsv", err)
	assert.True(t, errors.IsNotFound(wrapped))

	other := errors.WrapIO("write", "table.tsv", fs.ErrPermission)
	assert.False(t, errors.IsNotFound(other))
}

func TestParseErrorMessage(t *testing.T) {
	withLine := errors.NewParseError("predictions.tsv", 7, "expected 10 fields, got 9", nil)
	assert.Equal(t, "parse error in predictions.tsv line 7: expected 10 fields, got 9", withLine.Error())

	withoutLine := errors.NewParseError("predictions.tsv", 0, "missing header line", nil)
	assert.Equal(t, "parse error in predictions.tsv: missing header line", withoutLine.Error())
}

func TestValidationError(t *testing.T) {
	err := errors.NewValidationError("confidence", "high", "confidence is not a number")
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, err.Error(), "confidence")
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, errors.WrapIO("read", "x", nil))
	assert.NoError(t, errors.WrapParse("x", 1, nil))
}
