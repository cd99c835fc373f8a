package aligner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Adithya-Monish-Kumar-K/cooccurrence-aligner/internal/corpus"
	"github.com/Adithya-Monish-Kumar-K/cooccurrence-aligner/internal/graph"
	"github.com/Adithya-Monish-Kumar-K/cooccurrence-aligner/internal/indexer/index"
	"github.com/Adithya-Monish-Kumar-K/cooccurrence-aligner/pkg/config"
	apperrors "github.com/Adithya-Monish-Kumar-K/cooccurrence-aligner/pkg/errors"
	"github.com/Adithya-Monish-Kumar-K/cooccurrence-aligner/pkg/logger"
	"github.com/Adithya-Monish-Kumar-K/cooccurrence-aligner/pkg/metrics"
	"github.com/Adithya-Monish-Kumar-K/cooccurrence-aligner/pkg/tracing"
)

// Pipeline runs one corpus through indexing, graph construction and
// signature computation. It holds no per-run state and may be shared.
type Pipeline struct {
	indexer     *index.Indexer
	filter      graph.RevisitFilter
	minFragment int
	metrics     *metrics.Metrics
}

// Output is everything one pipeline run produced for a corpus.
type Output struct {
	Corpus string
	Lists  []index.LocationList
	Graph  *graph.Graph
	Table  graph.Table
	Stats  graph.Stats
}

func NewPipeline(cfg *config.Config, m *metrics.Metrics) (*Pipeline, error) {
	filter, err := graph.ParseRevisitFilter(cfg.Signature.RevisitFilter)
	if err != nil {
		return nil, fmt.Errorf("configuring signatures: %w", err)
	}
	if m == nil {
		m = metrics.New(nil)
	}
	return &Pipeline{
		indexer:     index.New(cfg.Indexer.Stopwords),
		filter:      filter,
		minFragment: cfg.Indexer.MinFragmentLength,
		metrics:     m,
	}, nil
}

func (p *Pipeline) log(ctx context.Context) *slog.Logger {
	return logger.FromContext(ctx).With("component", "pipeline")
}

// Signatures builds the signature table of a corpus. Called outside an
// alignment run it owns the span tree and logs it when done.
func (p *Pipeline) Signatures(ctx context.Context, c *corpus.Corpus) (graph.Table, error) {
	if tracing.SpanFromContext(ctx) == nil {
		var span *tracing.Span
		ctx, span = tracing.StartSpan(ctx, "signatures", logger.RunID(ctx))
		defer func() {
			span.End()
			span.Log(p.log(ctx))
		}()
	}
	out, err := p.Run(ctx, c)
	if err != nil {
		return nil, err
	}
	return out.Table, nil
}

// Run executes every stage for c. Stages run to completion one after the
// other; ctx is only checked between them.
func (p *Pipeline) Run(ctx context.Context, c *corpus.Corpus) (*Output, error) {
	if c == nil {
		return nil, apperrors.Invalid("nil corpus")
	}
	ctx, span := tracing.StartChildSpan(ctx, "pipeline")
	span.SetAttr("corpus", c.Name)
	span.SetAttr("mode", c.Mode.String())
	defer span.End()
	out := &Output{Corpus: c.Name}

	lists, err := p.Locations(ctx, c)
	if err != nil {
		return nil, err
	}
	out.Lists = lists

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	_, gspan := tracing.StartChildSpan(ctx, "graph")
	out.Graph = graph.Build(lists)
	out.Stats = out.Graph.Stats()
	gspan.SetAttr("nodes", out.Stats.Nodes)
	gspan.SetAttr("edges", out.Stats.Edges)
	gspan.End()
	p.observe(c.Name, "graph", start)
	p.metrics.GraphNodes.WithLabelValues(c.Name).Set(float64(out.Stats.Nodes))
	p.metrics.GraphEdges.WithLabelValues(c.Name).Set(float64(out.Stats.Edges))
	p.metrics.GraphMaxDegree.WithLabelValues(c.Name).Set(float64(out.Stats.MaxDegree))
	p.log(ctx).Debug("co-occurrence graph built",
		"corpus", c.Name,
		"nodes", out.Stats.Nodes,
		"edges", out.Stats.Edges,
		"components", out.Stats.Components,
		"max_degree", out.Stats.MaxDegree,
	)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start = time.Now()
	_, sspan := tracing.StartChildSpan(ctx, "signature")
	out.Table = out.Graph.Signatures(p.filter)
	sspan.SetAttr("filter", p.filter.String())
	sspan.End()
	p.observe(c.Name, "signature", start)
	p.metrics.SignaturesComputed.WithLabelValues(c.Name, p.filter.String()).Add(float64(len(out.Table)))

	p.log(ctx).Info("signature table ready",
		"corpus", c.Name,
		"mode", c.Mode.String(),
		"segments", len(c.Segments),
		"lists", len(lists),
		"nodes", len(out.Table),
		"filter", p.filter.String(),
	)
	return out, nil
}

// Locations runs only the occurrence indexer for c.
func (p *Pipeline) Locations(ctx context.Context, c *corpus.Corpus) ([]index.LocationList, error) {
	if c == nil {
		return nil, apperrors.Invalid("nil corpus")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	_, span := tracing.StartChildSpan(ctx, "index")
	defer span.End()
	var (
		table *index.Table
		stop  index.Stopwords
		err   error
	)
	switch c.Mode {
	case index.ModeWord:
		table, err = p.indexer.WordTable(c.Segments)
		stop = p.indexer.Stopwords()
	case index.ModeFragment:
		table, err = p.indexer.FragmentTable(c.Fragments(p.minFragment))
	default:
		err = fmt.Errorf("%w: %s", apperrors.ErrUnknownMode, c.Mode)
	}
	if err != nil {
		return nil, fmt.Errorf("indexing corpus %s: %w", c.Name, err)
	}
	lists := table.Project(stop)
	p.observe(c.Name, "index", start)
	span.SetAttr("lists", len(lists))
	p.metrics.SegmentsIndexed.WithLabelValues(c.Name, c.Mode.String()).Add(float64(len(c.Segments)))
	p.metrics.LocationLists.WithLabelValues(c.Name).Set(float64(len(lists)))
	p.log(ctx).Debug("corpus indexed",
		"corpus", c.Name,
		"segments", len(c.Segments),
		"tokens", table.Len(),
		"lists", len(lists),
	)
	return lists, nil
}

func (p *Pipeline) observe(corpusName, stage string, start time.Time) {
	p.metrics.StageDuration.WithLabelValues(corpusName, stage).Observe(time.Since(start).Seconds())
}
