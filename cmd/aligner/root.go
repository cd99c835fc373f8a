package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/Adithya-Monish-Kumar-K/cooccurrence-aligner/internal/aligner"
	"github.com/Adithya-Monish-Kumar-K/cooccurrence-aligner/internal/corpus"
	"github.com/Adithya-Monish-Kumar-K/cooccurrence-aligner/pkg/config"
	apperrors "github.com/Adithya-Monish-Kumar-K/cooccurrence-aligner/pkg/errors"
	"github.com/Adithya-Monish-Kumar-K/cooccurrence-aligner/pkg/logger"
	"github.com/Adithya-Monish-Kumar-K/cooccurrence-aligner/pkg/metrics"
)

type options struct {
	configPath  string
	metricsFile string
	logLevel    string
	example     bool
	jsonOutput  bool
}

// session is the state shared by every subcommand of one invocation.
type session struct {
	cfg      *config.Config
	registry *prometheus.Registry
	aligner  *aligner.Aligner
	ctx      context.Context
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "aligner",
		Short: "Propose segment alignments between two corpora from co-occurrence topology",
		Long: `aligner indexes the recurring words (or sub-word fragments) of two corpora,
builds a co-occurrence graph over the segments of each, and pairs segments
whose bounded neighbourhood signatures have the same shape.

Corpora are read from a YAML file with a "source" and a "target" section,
or taken from the built-in Ancient Greek / English example with --example.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config file")
	root.PersistentFlags().StringVar(&opts.metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile after the run")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override logging level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&opts.example, "example", false, "use the built-in example corpora")
	root.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "print results as JSON")

	root.AddCommand(newAlignCmd(opts), newSignaturesCmd(opts))
	return root
}

func (o *options) open(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, apperrors.Newf(apperrors.ErrInvalidInput, apperrors.ExitUsage, "%v", err)
	}
	if o.logLevel != "" {
		cfg.Logging.Level = o.logLevel
	}
	if o.metricsFile != "" {
		cfg.Metrics.Enabled = true
		cfg.Metrics.Textfile = o.metricsFile
	}
	logger.SetupWriter(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)

	reg := prometheus.NewRegistry()
	a, err := aligner.New(cfg, metrics.New(reg))
	if err != nil {
		return nil, apperrors.Newf(apperrors.ErrInvalidInput, apperrors.ExitUsage, "%v", err)
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return &session{
		cfg:      cfg,
		registry: reg,
		aligner:  a,
		ctx:      logger.WithRunID(ctx, uuid.NewString()),
	}, nil
}

func (o *options) corpora(args []string) (*corpus.Pair, error) {
	switch {
	case o.example && len(args) > 0:
		return nil, apperrors.New(apperrors.ErrInvalidInput, apperrors.ExitUsage, "--example cannot be combined with a corpus file")
	case o.example:
		return corpus.Example(), nil
	case len(args) == 1:
		return corpus.Load(args[0])
	default:
		return nil, apperrors.New(apperrors.ErrInvalidInput, apperrors.ExitUsage, "a corpus file or --example is required")
	}
}

// finish flushes metrics once the command has produced its output.
func (s *session) finish() error {
	if !s.cfg.Metrics.Enabled {
		return nil
	}
	if err := metrics.WriteTextfile(s.cfg.Metrics.Textfile, s.registry); err != nil {
		return fmt.Errorf("flushing metrics: %w", err)
	}
	return nil
}
