package tracing

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpanTree(t *testing.T) {
	ctx, root := StartSpan(context.Background(), "align", "run-1")
	var wg sync.WaitGroup
	for _, name := range []string{"source", "target"} {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			cctx, sp := StartChildSpan(ctx, name)
			_, stage := StartChildSpan(cctx, "index")
			stage.SetAttr("lists", 3)
			stage.End()
			sp.End()
		}(name)
	}
	wg.Wait()
	root.End()

	require.Len(t, root.Children, 2)
	var names []string
	root.Walk(func(s *Span, depth int) {
		assert.Equal(t, "run-1", s.TraceID)
		names = append(names, strings.Repeat(">", depth)+s.Name)
	})
	assert.Len(t, names, 5)
	assert.Contains(t, names, ">>index")
	assert.Same(t, root, SpanFromContext(ctx))
}

func TestChildWithoutParent(t *testing.T) {
	ctx, sp := StartChildSpan(context.Background(), "orphan")
	assert.Empty(t, sp.TraceID)
	assert.Same(t, sp, SpanFromContext(ctx))
	assert.Nil(t, SpanFromContext(context.Background()))
}

func TestLogWritesEverySpan(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ctx, root := StartSpan(context.Background(), "align", "run-2")
	_, child := StartChildSpan(ctx, "match")
	child.SetAttr("pairs", 4)
	child.End()
	root.End()
	root.Log(log)

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "msg=span"))
	assert.Contains(t, out, "span=match")
	assert.Contains(t, out, "pairs=4")
}
