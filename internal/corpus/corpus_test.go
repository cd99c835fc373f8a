package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Adithya-Monish-Kumar-K/cooccurrence-aligner/internal/indexer/index"
	apperrors "github.com/Adithya-Monish-Kumar-K/cooccurrence-aligner/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExample(t *testing.T) {
	p := Example()
	require.NotNil(t, p.Source)
	require.NotNil(t, p.Target)

	assert.Equal(t, "ancient-greek", p.Source.Name)
	assert.Equal(t, index.ModeFragment, p.Source.Mode)
	assert.Equal(t, 3, p.Source.MinFragmentLength)
	assert.Len(t, p.Source.Segments, 8)
	assert.Equal(t, []string{"ho", "ton", "hyion", "dulos"}, p.Source.Segments[0])

	assert.Equal(t, "english", p.Target.Name)
	assert.Equal(t, index.ModeWord, p.Target.Mode)
	assert.Len(t, p.Target.Segments, 8)
	assert.Equal(t, []string{"the", "master", "of", "the", "house"}, p.Target.Segments[7])
}

func TestFragmentsUsesCorpusMinimum(t *testing.T) {
	c := &Corpus{Segments: [][]string{{"ho", "know"}}, MinFragmentLength: 3}
	assert.Equal(t, [][][]string{{{"kno", "now"}}}, c.Fragments(2))

	c.MinFragmentLength = 0
	assert.Equal(t, [][][]string{{{"kn", "no", "ow", "kno", "now"}}}, c.Fragments(2))
}

func TestParsePreTokenizedSentences(t *testing.T) {
	p, err := Parse([]byte(`
source:
  sentences:
    - [Alpha, beta]
    - "Gamma, delta!"
target:
  mode: fragment
  sentences: []
`))
	require.NoError(t, err)
	assert.Equal(t, "source", p.Source.Name)
	assert.Equal(t, index.ModeWord, p.Source.Mode)
	assert.Equal(t, [][]string{{"Alpha", "beta"}, {"gamma", "delta"}}, p.Source.Segments)
	assert.Empty(t, p.Target.Segments)
	assert.Equal(t, index.ModeFragment, p.Target.Mode)
}

func TestParseRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"number sentence", "source:\n  sentences: [1]\ntarget:\n  sentences: []\n", apperrors.ErrInvalidInput},
		{"map sentence", "source:\n  sentences:\n    - {a: b}\ntarget:\n  sentences: []\n", apperrors.ErrInvalidInput},
		{"nested token list", "source:\n  sentences:\n    - [[a]]\ntarget:\n  sentences: []\n", apperrors.ErrInvalidInput},
		{"empty token", "source:\n  sentences:\n    - [a, \"\"]\ntarget:\n  sentences: []\n", apperrors.ErrInvalidInput},
		{"sentences not a list", "source:\n  sentences: hello\ntarget:\n  sentences: []\n", apperrors.ErrInvalidInput},
		{"sentences missing", "source:\n  name: x\ntarget:\n  sentences: []\n", apperrors.ErrInvalidInput},
		{"bad yaml", "source: [\n", apperrors.ErrInvalidInput},
		{"no target", "source:\n  sentences: []\n", apperrors.ErrCorpusNotFound},
		{"no source", "target:\n  sentences: []\n", apperrors.ErrCorpusNotFound},
		{"bad mode", "source:\n  mode: syllable\n  sentences: []\ntarget:\n  sentences: []\n", apperrors.ErrUnknownMode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pair.yaml")
	require.NoError(t, os.WriteFile(path, exampleYAML, 0o644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, p.Source.Segments, 8)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.True(t, errors.Is(err, apperrors.ErrCorpusNotFound))
	assert.Equal(t, apperrors.ExitInput, apperrors.ExitCode(err))
}
