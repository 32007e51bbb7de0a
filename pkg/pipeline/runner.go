package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/singleflight"

	"github.com/matzehuels/toplangs/pkg/cache"
	"github.com/matzehuels/toplangs/pkg/integrations/github"
	"github.com/matzehuels/toplangs/pkg/observability"
	"github.com/matzehuels/toplangs/pkg/render/toplangs"
)

// Fetcher retrieves a user's language usage. [*github.Client] implements it.
type Fetcher interface {
	FetchTopLanguages(ctx context.Context, username string, opts github.FetchOptions) (toplangs.Usage, error)
}

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use it so caching logic lives in one place.
//
// The Runner stores no pipeline results. Multiple goroutines can safely
// use the same Runner; concurrent fetches of the same usage are collapsed
// into one upstream call.
type Runner struct {
	Fetcher  Fetcher
	Cache    cache.Cache
	Keyer    cache.Keyer
	Renderer *toplangs.Renderer
	Logger   *log.Logger

	fetches singleflight.Group
}

// NewRunner creates a runner. A nil fetcher limits the runner to requests
// that carry their own usage. If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(f Fetcher, c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Fetcher:  f,
		Cache:    c,
		Keyer:    keyer,
		Renderer: toplangs.New(),
		Logger:   logger,
	}
}

// Execute runs the usage → card pipeline with caching.
func (r *Runner) Execute(ctx context.Context, req Request) (*Result, error) {
	r.applyLogger(&req)
	if err := req.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{}

	// Stage 1: Usage
	fetchStart := time.Now()
	usage := req.Usage
	if usage == nil {
		var hit bool
		var err error
		usage, hit, err = r.UsageWithCacheInfo(ctx, req)
		if err != nil {
			return nil, err
		}
		result.CacheInfo.UsageHit = hit
	}
	result.Stats.FetchTime = time.Since(fetchStart)

	data, err := json.Marshal(usage)
	if err != nil {
		return nil, fmt.Errorf("hash usage: %w", err)
	}
	result.UsageHash = cache.Hash(data)

	// Stage 2: Card
	renderStart := time.Now()
	entry, hit, err := r.CardWithCacheInfo(ctx, usage, result.UsageHash, req)
	if err != nil {
		return nil, err
	}
	result.SVG = entry.SVG
	result.Layout = entry.Layout
	result.Width = entry.Width
	result.Height = entry.Height
	result.Languages = entry.Languages
	result.Stats.RenderTime = time.Since(renderStart)
	result.Stats.LangCount = len(entry.Languages)
	result.Stats.Bytes = len(entry.SVG)
	result.CacheInfo.CardHit = hit

	req.Logger.Info("rendered card",
		"user", req.Username,
		"layout", result.Layout,
		"langs", result.Stats.LangCount,
		"cached", hit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// UsageWithCacheInfo returns the user's language usage and whether it came
// from cache.
func (r *Runner) UsageWithCacheInfo(ctx context.Context, req Request) (toplangs.Usage, bool, error) {
	r.applyLogger(&req)
	if err := req.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	if r.Fetcher == nil {
		return nil, false, fmt.Errorf("no fetcher configured for user %q", req.Username)
	}

	cacheKey := r.Keyer.UsageKey(req.Username, req.UsageKeyOpts())
	hooks := observability.Cache()

	if !req.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var usage toplangs.Usage
			if err := json.Unmarshal(data, &usage); err == nil {
				hooks.OnCacheHit(ctx, "usage")
				return usage, true, nil
			}
		}
		hooks.OnCacheMiss(ctx, "usage")
	}

	v, err, shared := r.fetches.Do(cacheKey, func() (any, error) {
		return r.fetch(ctx, req, cacheKey)
	})
	if err != nil {
		return nil, false, err
	}
	if shared {
		req.Logger.Debug("joined in-flight fetch", "user", req.Username)
	}
	return v.(toplangs.Usage), false, nil
}

// Usage is a convenience wrapper that calls UsageWithCacheInfo and discards the cache hit info.
func (r *Runner) Usage(ctx context.Context, req Request) (toplangs.Usage, error) {
	usage, _, err := r.UsageWithCacheInfo(ctx, req)
	return usage, err
}

func (r *Runner) fetch(ctx context.Context, req Request, cacheKey string) (toplangs.Usage, error) {
	hooks := observability.Pipeline()
	hooks.OnFetchStart(ctx, req.Username)
	start := time.Now()

	usage, err := r.Fetcher.FetchTopLanguages(ctx, req.Username, req.Fetch)
	hooks.OnFetchComplete(ctx, req.Username, len(usage), time.Since(start), err)
	if err != nil {
		req.Logger.Warn("fetch failed", "user", req.Username, "err", err)
		return nil, err
	}

	req.Logger.Info("fetched languages",
		"user", req.Username,
		"langs", len(usage),
		"duration", time.Since(start))

	if data, err := json.Marshal(usage); err == nil {
		if r.Cache.Set(ctx, cacheKey, data, cache.TTLUsage) == nil {
			observability.Cache().OnCacheSet(ctx, "usage", len(data))
		}
	}
	return usage, nil
}

// Card is a rendered card with its dimensions, as stored in the cache.
type Card struct {
	SVG       []byte              `json:"svg"`
	Layout    toplangs.Layout     `json:"layout"`
	Width     int                 `json:"width"`
	Height    int                 `json:"height"`
	Languages []toplangs.Language `json:"languages"`
}

// CardWithCacheInfo renders the card for usage with caching and returns
// cache hit info. usageHash must identify usage.
func (r *Runner) CardWithCacheInfo(ctx context.Context, usage toplangs.Usage, usageHash string, req Request) (*Card, bool, error) {
	r.applyLogger(&req)
	if err := req.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}

	cacheKey := r.Keyer.CardKey(usageHash, req.CardKeyOpts())
	hooks := observability.Cache()

	if !req.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var entry Card
			if err := json.Unmarshal(data, &entry); err == nil {
				hooks.OnCacheHit(ctx, "card")
				return &entry, true, nil
			}
		}
		hooks.OnCacheMiss(ctx, "card")
	}

	layout := req.Card.Layout.String()
	observability.Pipeline().OnRenderStart(ctx, layout)
	start := time.Now()

	res := r.Renderer.Compute(usage, req.Card)
	entry := &Card{
		SVG:       r.Renderer.Frame(res, req.Card),
		Layout:    res.Layout,
		Width:     res.Width,
		Height:    res.Height,
		Languages: res.Data.Languages,
	}
	observability.Pipeline().OnRenderComplete(ctx, layout, len(entry.SVG), time.Since(start), nil)

	if data, err := json.Marshal(entry); err == nil {
		if r.Cache.Set(ctx, cacheKey, data, cache.TTLCard) == nil {
			hooks.OnCacheSet(ctx, "card", len(data))
		}
	}
	return entry, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on the request if not already set.
func (r *Runner) applyLogger(req *Request) {
	if req.Logger == nil {
		req.Logger = r.Logger
	}
}
