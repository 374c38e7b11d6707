package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/regex-extractor/internal/report"
)

func TestSampleCommandNoSave(t *testing.T) {
	dir := t.TempDir()

	var out bytes.Buffer
	_, err := execute(t, &out, "sample", "--no-save", "--out-dir", dir, "--credit-card-policy", "issuer")
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Extracting emails...\n  Found 6 matches.")
	assert.Contains(t, out.String(), "--- Credit Cards ---\n  • 4111111111111111\n")
	assert.Contains(t, out.String(), "  • RWF 150,000.00")
	assert.NotContains(t, out.String(), "Saved extracted data files")

	names, err := report.ListSaved(dir)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestSampleCommandSaves(t *testing.T) {
	dir := t.TempDir()

	var out bytes.Buffer
	_, err := execute(t, &out, "sample", "--no-save=false", "--out-dir", dir, "--credit-card-policy", "issuer")
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Saved extracted data files in "+dir+":\n")
	assert.Contains(t, out.String(), "  • all_extracted_data.txt\n")

	names, err := report.ListSaved(dir)
	require.NoError(t, err)
	assert.Len(t, names, 9)
}

var errClosed = errors.New("stdout closed")

type closedWriter struct{}

func (closedWriter) Write(p []byte) (int, error) { return 0, errClosed }

func TestSampleCommandReportsWriteFailure(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, closedWriter{}, "sample", "--no-save", "--out-dir", dir, "--credit-card-policy", "issuer")
	require.ErrorIs(t, err, errClosed)
}
