// Package metrics defines the Prometheus collectors recorded by an alignment
// run and writes them out for the node-exporter textfile collector.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all Prometheus collectors for the pipeline.
type Metrics struct {
	StageDuration      *prometheus.HistogramVec
	SegmentsIndexed    *prometheus.CounterVec
	LocationLists      *prometheus.GaugeVec
	GraphNodes         *prometheus.GaugeVec
	GraphEdges         *prometheus.GaugeVec
	GraphMaxDegree     *prometheus.GaugeVec
	SignaturesComputed *prometheus.CounterVec
	MatchPairs         prometheus.Gauge
	RunsTotal          *prometheus.CounterVec
}

// New creates all collectors and registers them with reg. A nil reg leaves
// them unregistered.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		StageDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "align_stage_duration_seconds",
				Help:    "Duration of each pipeline stage in seconds.",
				Buckets: []float64{0.0001, 0.001, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
			},
			[]string{"corpus", "stage"},
		),
		SegmentsIndexed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "align_segments_indexed_total",
				Help: "Segments scanned by the occurrence indexer.",
			},
			[]string{"corpus", "mode"},
		),
		LocationLists: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "align_location_lists",
				Help: "Deduplicated location lists surviving the recurrence filter.",
			},
			[]string{"corpus"},
		),
		GraphNodes: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "align_graph_nodes",
				Help: "Nodes in the co-occurrence graph.",
			},
			[]string{"corpus"},
		),
		GraphEdges: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "align_graph_edges",
				Help: "Undirected edges in the co-occurrence graph.",
			},
			[]string{"corpus"},
		),
		GraphMaxDegree: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "align_graph_max_degree",
				Help: "Largest neighbor count of any node.",
			},
			[]string{"corpus"},
		),
		SignaturesComputed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "align_signatures_computed_total",
				Help: "Node signatures computed.",
			},
			[]string{"corpus", "filter"},
		),
		MatchPairs: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "align_match_pairs",
				Help: "Candidate pairs produced by the last match.",
			},
		),
		RunsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "align_runs_total",
				Help: "Alignment runs by status.",
			},
			[]string{"status"},
		),
	}

	if reg != nil {
		reg.MustRegister(
			m.StageDuration,
			m.SegmentsIndexed,
			m.LocationLists,
			m.GraphNodes,
			m.GraphEdges,
			m.GraphMaxDegree,
			m.SignaturesComputed,
			m.MatchPairs,
			m.RunsTotal,
		)
	}
	return m
}
