package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Adithya-Monish-Kumar-K/cooccurrence-aligner/pkg/errors"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), err
}

func TestAlignExampleText(t *testing.T) {
	out, err := run(t, "align", "--example")
	require.NoError(t, err)
	assert.Contains(t, out, "ancient-greek")
	assert.Contains(t, out, "english")
	assert.Contains(t, out, "candidate pairs")
}

func TestAlignExampleJSON(t *testing.T) {
	out, err := run(t, "align", "--example", "--json")
	require.NoError(t, err)

	var report alignReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "english", report.Target.Name)
	assert.Equal(t, 8, report.Target.Segments)
	assert.Equal(t, 8, report.Target.Graph.Nodes)
	for _, p := range report.Unique {
		assert.Contains(t, report.Matches, p)
	}
}

func TestSignaturesJSON(t *testing.T) {
	out, err := run(t, "signatures", "--example", "--side", "target", "--json")
	require.NoError(t, err)

	var rows []signatureRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 8)
	for i, r := range rows {
		assert.Equal(t, i, r.Segment)
		assert.Zero(t, r.Counts[0].No)
		assert.Positive(t, r.Counts[0].Yes)
	}
}

func TestAlignCorpusFileWithMetrics(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pair.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
source:
  name: left
  sentences: ["red cat", "red dog", "blue dog"]
target:
  name: right
  sentences: ["rot katze", "rot hund", "blau hund"]
`), 0o644))
	metricsPath := filepath.Join(dir, "align.prom")

	out, err := run(t, "align", path, "--metrics-file", metricsPath)
	require.NoError(t, err)
	assert.Contains(t, out, "left[1] -> right[1]")

	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `align_runs_total{status="ok"} 1`)
}

func TestUsageErrors(t *testing.T) {
	_, err := run(t, "align")
	require.Error(t, err)
	assert.Equal(t, apperrors.ExitUsage, apperrors.ExitCode(err))

	_, err = run(t, "align", "--example", "extra.yaml")
	assert.Equal(t, apperrors.ExitUsage, apperrors.ExitCode(err))

	_, err = run(t, "signatures", "--example", "--side", "middle")
	assert.Equal(t, apperrors.ExitUsage, apperrors.ExitCode(err))
}

func TestMissingCorpusFile(t *testing.T) {
	_, err := run(t, "align", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Equal(t, apperrors.ExitInput, apperrors.ExitCode(err))
}
