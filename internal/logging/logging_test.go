package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/hupe1980/graphapi/graph"
	"github.com/hupe1980/graphapi/value"
	"github.com/stretchr/testify/assert"
)

func bufferLogger(buf *bytes.Buffer) *Logger {
	return New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestHelpers(t *testing.T) {
	ctx := context.Background()
	edge := graph.EdgeID{
		Label: 0,
		Tail:  graph.VertexID{Label: 0, Slot: 1},
		Head:  graph.VertexID{Label: 0, Slot: 2},
	}

	tests := []struct {
		name string
		log  func(l *Logger)
		want []string
	}{
		{
			name: "add vertex",
			log:  func(l *Logger) { l.LogAddVertex(ctx, edge.Tail, "Person") },
			want: []string{"level=DEBUG", `msg="vertex added"`, "id=v(0:1)", "label=Person"},
		},
		{
			name: "add edge",
			log:  func(l *Logger) { l.LogAddEdge(ctx, edge, nil) },
			want: []string{"level=DEBUG", `msg="edge added"`},
		},
		{
			name: "add edge failed",
			log:  func(l *Logger) { l.LogAddEdge(ctx, graph.EdgeID{}, graph.ErrVertexNotFound) },
			want: []string{"level=ERROR", `error="vertex not found"`},
		},
		{
			name: "remove missing vertex",
			log:  func(l *Logger) { l.LogRemoveVertex(ctx, edge.Tail, false, 0) },
			want: []string{`msg="remove vertex: not found"`, "id=v(0:1)"},
		},
		{
			name: "remove vertex",
			log:  func(l *Logger) { l.LogRemoveVertex(ctx, edge.Head, true, 3) },
			want: []string{`msg="vertex removed"`, "cascaded_edges=3"},
		},
		{
			name: "remove stale edge",
			log:  func(l *Logger) { l.LogRemoveEdge(ctx, edge, false) },
			want: []string{`msg="remove edge: not found"`},
		},
		{
			name: "index update",
			log: func(l *Logger) {
				l.WithIndex("person_age").LogIndexUpdate(ctx, edge.Tail, value.Uint(20), value.Uint(21))
			},
			want: []string{"index=person_age", "before=20", "after=21"},
		},
		{
			name: "search",
			log:  func(l *Logger) { l.LogSearch(ctx, "range", nil) },
			want: []string{"level=DEBUG", `msg="search opened"`, "search=range"},
		},
		{
			name: "search failed",
			log:  func(l *Logger) { l.LogSearch(ctx, "invalid", graph.ErrInvalidSearch) },
			want: []string{"level=ERROR", "search=invalid"},
		},
		{
			name: "walk element",
			log:  func(l *Logger) { l.LogWalkElement(ctx, "friends", edge.Tail, "x", 2) },
			want: []string{`msg="walker element"`, "tag=friends", "depth=2"},
		},
		{
			name: "walk failed",
			log:  func(l *Logger) { l.LogWalk(ctx, "friends", 0, errors.New("boom")) },
			want: []string{"level=ERROR", "tag=friends", "error=boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(bufferLogger(&buf))
			for _, w := range tt.want {
				assert.Contains(t, buf.String(), w)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	var buf bytes.Buffer
	l := Wrap(slog.New(slog.NewTextHandler(&buf, nil)))
	l.LogWalk(context.Background(), "t", 1, nil)
	assert.Contains(t, buf.String(), `msg="walker exhausted"`)

	noop := Wrap(nil)
	assert.False(t, noop.Enabled(context.Background(), slog.LevelError))
}
