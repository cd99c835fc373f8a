package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Adithya-Monish-Kumar-K/cooccurrence-aligner/internal/corpus"
	"github.com/Adithya-Monish-Kumar-K/cooccurrence-aligner/internal/graph"
	apperrors "github.com/Adithya-Monish-Kumar-K/cooccurrence-aligner/pkg/errors"
)

type signatureRow struct {
	Segment   int             `json:"segment"`
	Counts    [3]graph.Counts `json:"counts"`
	Signature string          `json:"signature"`
}

func newSignaturesCmd(opts *options) *cobra.Command {
	var side string
	cmd := &cobra.Command{
		Use:   "signatures [corpus.yaml]",
		Short: "Print the signature table of one corpus",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			pair, err := opts.corpora(args)
			if err != nil {
				return err
			}
			c, err := pick(pair, side)
			if err != nil {
				return err
			}
			table, err := s.aligner.Pipeline().Signatures(s.ctx, c)
			if err != nil {
				return err
			}
			rows := make([]signatureRow, 0, len(table))
			for _, n := range table.Nodes() {
				rows = append(rows, signatureRow{
					Segment:   n,
					Counts:    table[n].Counts(),
					Signature: table[n].String(),
				})
			}
			if opts.jsonOutput {
				err = writeJSON(cmd.OutOrStdout(), rows)
			} else {
				err = writeSignatureText(cmd.OutOrStdout(), c.Name, rows)
			}
			if err != nil {
				return err
			}
			return s.finish()
		},
	}
	cmd.Flags().StringVar(&side, "side", "source", "which corpus to print (source or target)")
	return cmd
}

func pick(pair *corpus.Pair, side string) (*corpus.Corpus, error) {
	switch side {
	case "source":
		return pair.Source, nil
	case "target":
		return pair.Target, nil
	default:
		return nil, apperrors.Newf(apperrors.ErrInvalidInput, apperrors.ExitUsage, "--side must be source or target, got %q", side)
	}
}

func writeSignatureText(w io.Writer, name string, rows []signatureRow) error {
	fmt.Fprintf(w, "%s: %d signatures\n", name, len(rows))
	for _, r := range rows {
		c := r.Counts
		if _, err := fmt.Fprintf(w, "%4d  Y/N %d/%d %d/%d %d/%d  %s\n", r.Segment,
			c[0].Yes, c[0].No, c[1].Yes, c[1].No, c[2].Yes, c[2].No, r.Signature); err != nil {
			return err
		}
	}
	return nil
}
