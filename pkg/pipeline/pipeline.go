// Package pipeline provides the card pipeline shared by the CLI and the
// HTTP API.
//
// A request flows through two stages:
//
//  1. Usage: fetch a user's language usage from GitHub (or take it from
//     the request), cached per username and fetch options
//  2. Card: reduce the usage and render the SVG card, cached per usage
//     payload and card options
//
// # Usage
//
//	runner := pipeline.NewRunner(githubClient, cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Request{
//	    Username: "octocat",
//	    Fetch:    github.DefaultFetchOptions(),
//	    Card:     toplangs.Options{Layout: toplangs.LayoutDonut},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.Stdout.Write(result.SVG)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/toplangs/pkg/cache"
	"github.com/matzehuels/toplangs/pkg/errors"
	"github.com/matzehuels/toplangs/pkg/i18n"
	"github.com/matzehuels/toplangs/pkg/integrations/github"
	"github.com/matzehuels/toplangs/pkg/render/toplangs"
)

// =============================================================================
// Request
// =============================================================================

// Request describes one card.
type Request struct {
	// Username is the GitHub login whose languages are shown. It is
	// ignored when Usage is set.
	Username string `json:"username,omitempty"`

	// Usage, when non-nil, is rendered as is and nothing is fetched.
	Usage toplangs.Usage `json:"usage,omitempty"`

	Fetch github.FetchOptions `json:"fetch"`
	Card  toplangs.Options    `json:"card"`

	// Refresh bypasses both cache stages. Results are still stored.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults checks the request and fills in defaults.
// This method is idempotent.
func (r *Request) ValidateAndSetDefaults() error {
	if r.validated {
		return nil
	}
	if r.Usage == nil {
		if err := errors.ValidateUsername(r.Username); err != nil {
			return err
		}
	}
	if err := errors.ValidateEnum("stats_format", string(r.Card.StatsFormat), toplangs.StatsFormatNames()); err != nil {
		return err
	}
	if r.Card.Locale != "" && !i18n.IsSupported(r.Card.Locale) {
		return errors.New(errors.ErrCodeInvalidParam, "Language not found")
	}
	if r.Fetch.SizeWeight < 0 || r.Fetch.CountWeight < 0 {
		return errors.New(errors.ErrCodeInvalidParam, "Invalid weights: must not be negative")
	}
	if r.Refresh {
		r.Fetch.Refresh = true
	}
	if r.Logger == nil {
		r.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	r.validated = true
	return nil
}

// UsageKeyOpts returns cache key options for the usage stage.
func (r *Request) UsageKeyOpts() cache.UsageKeyOpts {
	return cache.UsageKeyOpts{
		ExcludeRepos: r.Fetch.ExcludeRepo,
		SizeWeight:   r.Fetch.SizeWeight,
		CountWeight:  r.Fetch.CountWeight,
	}
}

// CardKeyOpts returns cache key options for the card stage.
func (r *Request) CardKeyOpts() cache.CardKeyOpts {
	return cache.CardKeyOpts{Options: r.Card}
}

// =============================================================================
// Result
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// SVG is the complete card document.
	SVG []byte

	// Layout is the layout actually drawn, which may differ from the
	// requested one when progress bars are hidden.
	Layout toplangs.Layout
	Width  int
	Height int

	// Languages are the languages drawn, largest first.
	Languages []toplangs.Language

	// UsageHash is the content hash of the usage the card was built from.
	UsageHash string

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	LangCount  int
	Bytes      int
	FetchTime  time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	UsageHit bool // Whether usage came from cache
	CardHit  bool // Whether the SVG came from cache
}
