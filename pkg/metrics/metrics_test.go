package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.GraphNodes.WithLabelValues("source").Set(8)
	m.RunsTotal.WithLabelValues("ok").Inc()

	assert.Equal(t, 8.0, testutil.ToFloat64(m.GraphNodes.WithLabelValues("source")))
	n, err := testutil.GatherAndCount(reg, "align_graph_nodes", "align_runs_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestNewWithoutRegistry(t *testing.T) {
	m := New(nil)
	m.MatchPairs.Set(3)
	assert.Equal(t, 3.0, testutil.ToFloat64(m.MatchPairs))
}

func TestWriteTextfile(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.MatchPairs.Set(12)

	path := filepath.Join(t.TempDir(), "align.prom")
	require.NoError(t, WriteTextfile(path, reg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "align_match_pairs 12"))
}
