// Package loghooks implements the observability hooks on top of a
// charmbracelet/log logger.
//
// Fetch, render and token events are logged at info or warn; cache and
// outgoing HTTP events are debug-only, since they fire on every request.
//
//	observability.SetPipelineHooks(loghooks.New(logger))
//
// or, for all three categories at once:
//
//	loghooks.Install(logger)
package loghooks

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"github.com/matzehuels/toplangs/pkg/observability"
)

// Hooks logs every hook event to a logger.
type Hooks struct {
	logger *log.Logger
}

var (
	_ observability.PipelineHooks = (*Hooks)(nil)
	_ observability.CacheHooks    = (*Hooks)(nil)
	_ observability.HTTPHooks     = (*Hooks)(nil)
)

// New returns hooks writing to logger, prefixed with the event category.
func New(logger *log.Logger) *Hooks {
	if logger == nil {
		logger = log.Default()
	}
	return &Hooks{logger: logger}
}

// Install registers h for pipeline, cache and HTTP events.
func Install(logger *log.Logger) *Hooks {
	h := New(logger)
	observability.SetPipelineHooks(h)
	observability.SetCacheHooks(h)
	observability.SetHTTPHooks(h)
	return h
}

// =============================================================================
// Pipeline
// =============================================================================

func (h *Hooks) OnFetchStart(_ context.Context, username string) {
	h.logger.Debug("fetch started", "user", username)
}

func (h *Hooks) OnFetchComplete(_ context.Context, username string, langCount int, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("fetch failed", "user", username, "took", round(d), "err", err)
		return
	}
	h.logger.Info("fetched languages", "user", username, "langs", langCount, "took", round(d))
}

func (h *Hooks) OnTokenRotate(_ context.Context, attempt int, reason string) {
	h.logger.Warn("rotating token", "attempt", attempt+1, "reason", reason)
}

func (h *Hooks) OnRenderStart(_ context.Context, layout string) {
	h.logger.Debug("render started", "layout", layout)
}

func (h *Hooks) OnRenderComplete(_ context.Context, layout string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("render failed", "layout", layout, "err", err)
		return
	}
	h.logger.Info("rendered card", "layout", layout, "size", humanize.IBytes(uint64(size)), "took", round(d))
}

// =============================================================================
// Cache
// =============================================================================

func (h *Hooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *Hooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *Hooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "size", humanize.IBytes(uint64(size)))
}

// =============================================================================
// HTTP
// =============================================================================

func (h *Hooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("http request", "method", method, "host", host, "path", path)
}

func (h *Hooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.logger.Debug("http response", "method", method, "host", host, "path", path, "status", status, "took", round(d))
}

func (h *Hooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Warn("http error", "method", method, "host", host, "path", path, "err", err)
}

func round(d time.Duration) time.Duration {
	return d.Round(time.Millisecond)
}
