package server

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/matzehuels/toplangs/pkg/errors"
	"github.com/matzehuels/toplangs/pkg/integrations/github"
	"github.com/matzehuels/toplangs/pkg/pipeline"
	"github.com/matzehuels/toplangs/pkg/render/toplangs"
)

// Bounds for the card Cache-Control lifetime, in seconds.
const (
	minCacheSeconds   = 6 * 60 * 60
	maxCacheSeconds   = 10 * 24 * 60 * 60
	errorCacheSeconds = 10 * 60
	staleSeconds      = 24 * 60 * 60
)

// cardQuery is a parsed /api/top-langs query.
type cardQuery struct {
	req          pipeline.Request
	cacheSeconds int
}

// parseQuery turns query parameters into a pipeline request. Unset
// parameters take the server's card defaults.
func (s *Server) parseQuery(q url.Values) (cardQuery, error) {
	out := cardQuery{
		req: pipeline.Request{
			Username: strings.TrimSpace(q.Get("username")),
			Fetch:    github.DefaultFetchOptions(),
		},
	}
	if out.req.Username == "" {
		return out, errors.MissingParam("username")
	}

	card := &out.req.Card
	layout := q.Get("layout")
	if err := errors.ValidateEnum("layout", layout, toplangs.LayoutNames()); err != nil {
		return out, err
	}
	if layout == "" {
		layout = s.cfg.Card.Layout
	}
	card.Layout, _ = toplangs.ParseLayout(layout)

	n, ok, err := errors.ValidateRange("langs_count", q.Get("langs_count"), 1, toplangs.MaxLanguages)
	if err != nil {
		return out, err
	}
	if ok {
		card.Count = int(n)
	}

	format := q.Get("stats_format")
	if err := errors.ValidateEnum("stats_format", format, toplangs.StatsFormatNames()); err != nil {
		return out, err
	}
	card.StatsFormat = toplangs.StatsFormat(format)

	card.Hide = splitList(q.Get("hide"))
	card.HideTitle = parseBool(q.Get("hide_title"))
	card.HideBorder = parseBool(q.Get("hide_border"))
	card.HideProgress = parseBool(q.Get("hide_progress"))
	card.DisableAnimations = parseBool(q.Get("disable_animations"))
	card.CardWidth, _ = strconv.Atoi(q.Get("card_width"))
	card.BorderRadius, _ = strconv.ParseFloat(q.Get("border_radius"), 64)
	card.CustomTitle = q.Get("custom_title")
	card.TitleColor = q.Get("title_color")
	card.TextColor = q.Get("text_color")
	card.BgColor = q.Get("bg_color")
	card.BorderColor = q.Get("border_color")

	card.Theme = q.Get("theme")
	if card.Theme == "" {
		card.Theme = s.cfg.Card.Theme
	}
	card.Locale = q.Get("locale")
	if card.Locale == "" {
		card.Locale = s.cfg.Card.Locale
	}

	out.req.Fetch.ExcludeRepo = splitList(q.Get("exclude_repo"))
	if v, err := strconv.ParseFloat(q.Get("size_weight"), 64); err == nil {
		out.req.Fetch.SizeWeight = v
	}
	if v, err := strconv.ParseFloat(q.Get("count_weight"), 64); err == nil {
		out.req.Fetch.CountWeight = v
	}

	out.cacheSeconds = s.cfg.Server.CacheSeconds
	if v, err := strconv.Atoi(q.Get("cache_seconds")); err == nil {
		out.cacheSeconds = v
	}
	out.cacheSeconds = min(max(out.cacheSeconds, minCacheSeconds), maxCacheSeconds)

	return out, nil
}

// parseBool accepts only "true" and "false"; anything else is false.
func parseBool(v string) bool {
	return v == "true"
}

// splitList splits a comma-separated parameter, dropping blanks.
func splitList(v string) []string {
	if v == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
