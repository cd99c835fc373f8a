// Package aligner wires the occurrence indexer, the co-occurrence graph and
// the signature matcher into a complete alignment run over two corpora.
package aligner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Adithya-Monish-Kumar-K/cooccurrence-aligner/internal/corpus"
	"github.com/Adithya-Monish-Kumar-K/cooccurrence-aligner/internal/matcher"
	"github.com/Adithya-Monish-Kumar-K/cooccurrence-aligner/pkg/config"
	apperrors "github.com/Adithya-Monish-Kumar-K/cooccurrence-aligner/pkg/errors"
	"github.com/Adithya-Monish-Kumar-K/cooccurrence-aligner/pkg/logger"
	"github.com/Adithya-Monish-Kumar-K/cooccurrence-aligner/pkg/metrics"
	"github.com/Adithya-Monish-Kumar-K/cooccurrence-aligner/pkg/tracing"
)

// Aligner runs both corpora through a Pipeline and matches the resulting
// signature tables.
type Aligner struct {
	pipeline *Pipeline
	parallel bool
	metrics  *metrics.Metrics
}

// Result holds the per-corpus outputs and the candidate pairs.
type Result struct {
	Source  *Output
	Target  *Output
	Matches []matcher.Pair
}

func New(cfg *config.Config, m *metrics.Metrics) (*Aligner, error) {
	if m == nil {
		m = metrics.New(nil)
	}
	p, err := NewPipeline(cfg, m)
	if err != nil {
		return nil, err
	}
	return &Aligner{
		pipeline: p,
		parallel: cfg.Align.Parallel,
		metrics:  m,
	}, nil
}

// Pipeline exposes the single-corpus pipeline used by the aligner.
func (a *Aligner) Pipeline() *Pipeline {
	return a.pipeline
}

// Align builds a signature table for each corpus of pair and returns every
// pair of segments whose signatures agree. The two corpora share no state,
// so with parallel enabled their pipelines run concurrently; the first
// failure cancels the other.
func (a *Aligner) Align(ctx context.Context, pair *corpus.Pair) (*Result, error) {
	if pair == nil || pair.Source == nil || pair.Target == nil {
		return nil, apperrors.New(apperrors.ErrCorpusNotFound, apperrors.ExitInput, "alignment needs a source and a target corpus")
	}
	start := time.Now()
	ctx, span := tracing.StartSpan(ctx, "align", logger.RunID(ctx))
	res, err := a.align(ctx, pair)
	span.End()
	span.Log(a.log(ctx))
	if err != nil {
		a.metrics.RunsTotal.WithLabelValues("error").Inc()
		a.log(ctx).Error("alignment failed", "error", err)
		return nil, err
	}
	a.metrics.RunsTotal.WithLabelValues("ok").Inc()
	a.metrics.MatchPairs.Set(float64(len(res.Matches)))
	a.log(ctx).Info("alignment complete",
		"source", pair.Source.Name,
		"target", pair.Target.Name,
		"matches", len(res.Matches),
		"duration", time.Since(start),
	)
	return res, nil
}

func (a *Aligner) log(ctx context.Context) *slog.Logger {
	return logger.FromContext(ctx).With("component", "aligner")
}

func (a *Aligner) align(ctx context.Context, pair *corpus.Pair) (*Result, error) {
	res := &Result{}
	runSource := func(ctx context.Context) error {
		out, err := a.pipeline.Run(ctx, pair.Source)
		if err != nil {
			return fmt.Errorf("source corpus: %w", err)
		}
		res.Source = out
		return nil
	}
	runTarget := func(ctx context.Context) error {
		out, err := a.pipeline.Run(ctx, pair.Target)
		if err != nil {
			return fmt.Errorf("target corpus: %w", err)
		}
		res.Target = out
		return nil
	}

	if a.parallel {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error { return runSource(gctx) })
		g.Go(func() error { return runTarget(gctx) })
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		if err := runSource(ctx); err != nil {
			return nil, err
		}
		if err := runTarget(ctx); err != nil {
			return nil, err
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	_, span := tracing.StartChildSpan(ctx, "match")
	res.Matches = matcher.Match(res.Source.Table, res.Target.Table)
	span.SetAttr("pairs", len(res.Matches))
	span.End()
	a.pipeline.observe(pair.Source.Name+"|"+pair.Target.Name, "match", start)
	return res, nil
}
