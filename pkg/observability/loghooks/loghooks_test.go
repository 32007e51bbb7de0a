package loghooks

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/toplangs/pkg/observability"
)

func newBuffered(level log.Level) (*Hooks, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: level})
	return New(logger), &buf
}

func TestPipelineEvents(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name string
		fire func(h *Hooks)
		want []string
	}{
		{
			name: "fetch complete",
			fire: func(h *Hooks) { h.OnFetchComplete(ctx, "octocat", 4, 1234567*time.Microsecond, nil) },
			want: []string{"INFO", "fetched languages", "user=octocat", "langs=4", "took=1.235s"},
		},
		{
			name: "fetch failed",
			fire: func(h *Hooks) { h.OnFetchComplete(ctx, "octocat", 0, time.Second, errors.New("boom")) },
			want: []string{"WARN", "fetch failed", "err=boom"},
		},
		{
			name: "token rotate is one-based",
			fire: func(h *Hooks) { h.OnTokenRotate(ctx, 0, "rate limited") },
			want: []string{"WARN", "rotating token", "attempt=1"},
		},
		{
			name: "render complete",
			fire: func(h *Hooks) { h.OnRenderComplete(ctx, "donut", 2048, time.Millisecond, nil) },
			want: []string{"rendered card", "layout=donut", "size=", "2.0 KiB"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, buf := newBuffered(log.InfoLevel)
			tt.fire(h)
			out := buf.String()
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output %q missing %q", out, w)
				}
			}
		})
	}
}

func TestDebugEventsHiddenAtInfo(t *testing.T) {
	ctx := context.Background()
	h, buf := newBuffered(log.InfoLevel)
	h.OnFetchStart(ctx, "octocat")
	h.OnRenderStart(ctx, "pie")
	h.OnCacheHit(ctx, "usage")
	h.OnCacheMiss(ctx, "card")
	h.OnCacheSet(ctx, "card", 100)
	h.OnRequest(ctx, "POST", "api.github.com", "/graphql")
	h.OnResponse(ctx, "POST", "api.github.com", "/graphql", 200, time.Millisecond)
	if buf.Len() != 0 {
		t.Errorf("unexpected output at info level: %q", buf.String())
	}

	h, buf = newBuffered(log.DebugLevel)
	h.OnCacheHit(ctx, "usage")
	if !strings.Contains(buf.String(), "cache hit") {
		t.Errorf("debug output = %q", buf.String())
	}
}

func TestInstall(t *testing.T) {
	t.Cleanup(observability.Reset)

	h := Install(log.New(&bytes.Buffer{}))
	if observability.Pipeline() != h || observability.Cache() != h || observability.HTTP() != h {
		t.Error("Install did not register hooks for every category")
	}
}

func TestNewNilLogger(t *testing.T) {
	if New(nil).logger == nil {
		t.Error("New(nil) should fall back to the default logger")
	}
}
