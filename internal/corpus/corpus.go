// Package corpus loads the two corpora of an alignment run from YAML and
// prepares them for the occurrence indexer.
package corpus

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Adithya-Monish-Kumar-K/cooccurrence-aligner/internal/indexer/index"
	"github.com/Adithya-Monish-Kumar-K/cooccurrence-aligner/internal/indexer/tokenizer"
	apperrors "github.com/Adithya-Monish-Kumar-K/cooccurrence-aligner/pkg/errors"
)

//go:embed examples/agk.yaml
var exampleYAML []byte

// Corpus is one side of an alignment: tokenized segments plus how they
// should be indexed.
type Corpus struct {
	Name              string
	Mode              index.Mode
	MinFragmentLength int
	Segments          [][]string
}

// Fragments expands the segments into sub-word fragments. min is used when
// the corpus does not set its own minimum.
func (c *Corpus) Fragments(min int) [][][]string {
	if c.MinFragmentLength > 0 {
		min = c.MinFragmentLength
	}
	return tokenizer.FragmentCorpus(c.Segments, min)
}

// Pair holds the two corpora to align.
type Pair struct {
	Source *Corpus
	Target *Corpus
}

type rawFile struct {
	Source *rawCorpus `yaml:"source"`
	Target *rawCorpus `yaml:"target"`
}

type rawCorpus struct {
	Name              string    `yaml:"name"`
	Mode              string    `yaml:"mode"`
	MinFragmentLength int       `yaml:"minFragmentLength"`
	Sentences         yaml.Node `yaml:"sentences"`
}

// Load reads and parses a corpus pair file.
func Load(path string) (*Pair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.Newf(apperrors.ErrCorpusNotFound, apperrors.ExitInput, "%s", path)
		}
		return nil, fmt.Errorf("reading corpus file %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing corpus file %s: %w", path, err)
	}
	return p, nil
}

// Example returns the built-in Ancient Greek / English pair.
func Example() *Pair {
	p, err := Parse(exampleYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded example corpus: %v", err))
	}
	return p
}

// Parse decodes a YAML document with a source and a target corpus. Each
// sentence is either a string, which is tokenized, or a list of string
// tokens taken as is. Any other node is rejected.
func Parse(data []byte) (*Pair, error) {
	var raw rawFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, apperrors.Invalid("%v", err)
	}
	if raw.Source == nil {
		return nil, apperrors.New(apperrors.ErrCorpusNotFound, apperrors.ExitInput, "source corpus missing")
	}
	if raw.Target == nil {
		return nil, apperrors.New(apperrors.ErrCorpusNotFound, apperrors.ExitInput, "target corpus missing")
	}
	src, err := raw.Source.build("source")
	if err != nil {
		return nil, err
	}
	tgt, err := raw.Target.build("target")
	if err != nil {
		return nil, err
	}
	return &Pair{Source: src, Target: tgt}, nil
}

func (r *rawCorpus) build(side string) (*Corpus, error) {
	mode, err := index.ParseMode(r.Mode)
	if err != nil {
		return nil, fmt.Errorf("%s corpus: %w", side, err)
	}
	if r.MinFragmentLength < 0 {
		return nil, apperrors.Invalid("%s corpus: minFragmentLength %d is negative", side, r.MinFragmentLength)
	}
	name := r.Name
	if name == "" {
		name = side
	}
	segments, err := segmentsFromNode(&r.Sentences)
	if err != nil {
		return nil, fmt.Errorf("%s corpus: %w", side, err)
	}
	return &Corpus{
		Name:              name,
		Mode:              mode,
		MinFragmentLength: r.MinFragmentLength,
		Segments:          segments,
	}, nil
}

func segmentsFromNode(n *yaml.Node) ([][]string, error) {
	if n.Kind == 0 {
		return nil, apperrors.Invalid("sentences missing")
	}
	if n.Kind != yaml.SequenceNode {
		return nil, apperrors.Invalid("line %d: sentences must be a list", n.Line)
	}
	segments := make([][]string, 0, len(n.Content))
	for i, item := range n.Content {
		switch item.Kind {
		case yaml.ScalarNode:
			if item.ShortTag() != "!!str" {
				return nil, apperrors.Invalid("line %d: sentence %d is %s, not a string", item.Line, i, item.ShortTag())
			}
			segments = append(segments, tokenizer.Tokenize(item.Value))
		case yaml.SequenceNode:
			tokens := make([]string, 0, len(item.Content))
			for j, tok := range item.Content {
				if tok.Kind != yaml.ScalarNode || tok.ShortTag() != "!!str" {
					return nil, apperrors.Invalid("line %d: sentence %d token %d is not a string", tok.Line, i, j)
				}
				if tok.Value == "" {
					return nil, apperrors.Invalid("line %d: sentence %d token %d is empty", tok.Line, i, j)
				}
				tokens = append(tokens, tok.Value)
			}
			segments = append(segments, tokens)
		default:
			return nil, apperrors.Invalid("line %d: sentence %d must be a string or a list of tokens", item.Line, i)
		}
	}
	return segments, nil
}
