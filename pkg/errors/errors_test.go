package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorUnwrap(t *testing.T) {
	err := Invalid("segment %d: empty token", 4)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Equal(t, "invalid input: segment 4: empty token", err.Error())

	wrapped := fmt.Errorf("indexing source: %w", err)
	assert.True(t, errors.Is(wrapped, ErrInvalidInput))
	assert.Equal(t, ExitInput, ExitCode(wrapped))
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"invalid", fmt.Errorf("x: %w", ErrInvalidInput), ExitInput},
		{"not found", ErrCorpusNotFound, ExitInput},
		{"mode", fmt.Errorf("x: %w", ErrUnknownMode), ExitUsage},
		{"filter", ErrUnknownFilter, ExitUsage},
		{"app error wins", New(ErrInvalidInput, ExitUsage, "flag"), ExitUsage},
		{"other", errors.New("boom"), ExitInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}
