package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Adithya-Monish-Kumar-K/cooccurrence-aligner/internal/aligner"
	"github.com/Adithya-Monish-Kumar-K/cooccurrence-aligner/internal/graph"
	"github.com/Adithya-Monish-Kumar-K/cooccurrence-aligner/internal/matcher"
)

type corpusReport struct {
	Name     string      `json:"name"`
	Segments int         `json:"segments"`
	Lists    int         `json:"location_lists"`
	Graph    graph.Stats `json:"graph"`
}

type alignReport struct {
	Source  corpusReport   `json:"source"`
	Target  corpusReport   `json:"target"`
	Matches []matcher.Pair `json:"matches"`
	Unique  []matcher.Pair `json:"unique"`
}

func newAlignCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "align [corpus.yaml]",
		Short: "Match the segments of the source and target corpora",
		Example: `  aligner align --example
  aligner align pair.yaml --json --metrics-file /var/lib/node_exporter/align.prom`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			pair, err := opts.corpora(args)
			if err != nil {
				return err
			}
			res, err := s.aligner.Align(s.ctx, pair)
			if err != nil {
				return err
			}
			report := buildReport(res, len(pair.Source.Segments), len(pair.Target.Segments))
			if opts.jsonOutput {
				err = writeJSON(cmd.OutOrStdout(), report)
			} else {
				err = writeAlignText(cmd.OutOrStdout(), report)
			}
			if err != nil {
				return err
			}
			return s.finish()
		},
	}
}

func buildReport(res *aligner.Result, srcSegments, tgtSegments int) alignReport {
	return alignReport{
		Source: corpusReport{
			Name:     res.Source.Corpus,
			Segments: srcSegments,
			Lists:    len(res.Source.Lists),
			Graph:    res.Source.Stats,
		},
		Target: corpusReport{
			Name:     res.Target.Corpus,
			Segments: tgtSegments,
			Lists:    len(res.Target.Lists),
			Graph:    res.Target.Stats,
		},
		Matches: res.Matches,
		Unique:  matcher.Unique(res.Matches),
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}

func writeAlignText(w io.Writer, r alignReport) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%d segments\t%d lists\t%d nodes\t%d edges\n",
		r.Source.Name, r.Source.Segments, r.Source.Lists, r.Source.Graph.Nodes, r.Source.Graph.Edges)
	fmt.Fprintf(tw, "%s\t%d segments\t%d lists\t%d nodes\t%d edges\n",
		r.Target.Name, r.Target.Segments, r.Target.Lists, r.Target.Graph.Nodes, r.Target.Graph.Edges)
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%d candidate pairs (%d unique)\n", len(r.Matches), len(r.Unique))
	groups := matcher.Group(r.Matches)
	seen := make(map[int]bool)
	for _, p := range r.Matches {
		if seen[p.Source] {
			continue
		}
		seen[p.Source] = true
		fmt.Fprintf(w, "%s[%d] -> %s%v\n", r.Source.Name, p.Source, r.Target.Name, groups[p.Source])
	}
	return nil
}
