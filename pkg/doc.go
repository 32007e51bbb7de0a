// Package pkg provides the core libraries for toplangs, a renderer of
// "most used languages" cards for GitHub users.
//
// # Overview
//
// The pkg directory is organized into these areas:
//
//  1. [render] - Card rendering (geometry, frame, the top-languages layouts)
//  2. [theme], [i18n], [fonts] - Palettes, card strings, text metrics
//  3. [integrations] - The GitHub GraphQL client and shared HTTP plumbing
//  4. [cache] - File, memory and Redis caches with typed keys
//  5. [pipeline] - Orchestration (fetch → reduce → render) with caching
//  6. [config], [errors], [observability] - Ambient infrastructure
//
// # Architecture
//
// The typical data flow through toplangs:
//
//	GitHub GraphQL API (or a usage JSON file)
//	         ↓
//	    [integrations/github] (repositories → weighted usage)
//	         ↓
//	    [render/toplangs] (reduce → layout → SVG body)
//	         ↓
//	    [render/card] (frame, title, theme)
//	         ↓
//	    SVG card
//
// # Quick Start
//
// Render a card from known usage:
//
//	import "github.com/matzehuels/toplangs/pkg/render/toplangs"
//
//	usage := toplangs.Usage{
//	    "Go":     {Name: "Go", Size: 3000, Color: "#00ADD8"},
//	    "Python": {Name: "Python", Size: 1000, Color: "#3572A5"},
//	}
//	svg := toplangs.New().Render(usage, toplangs.Options{Layout: toplangs.LayoutDonut})
//
// Or fetch and render with caching:
//
//	gh := github.NewClient(store, tokens, github.DefaultEndpoint, cache.TTLUsage)
//	runner := pipeline.NewRunner(gh, store, nil, logger)
//	res, err := runner.Execute(ctx, pipeline.Request{Username: "octocat"})
//
// [render]: github.com/matzehuels/toplangs/pkg/render
// [theme]: github.com/matzehuels/toplangs/pkg/theme
// [i18n]: github.com/matzehuels/toplangs/pkg/i18n
// [fonts]: github.com/matzehuels/toplangs/pkg/fonts
// [integrations]: github.com/matzehuels/toplangs/pkg/integrations
// [cache]: github.com/matzehuels/toplangs/pkg/cache
// [pipeline]: github.com/matzehuels/toplangs/pkg/pipeline
// [config]: github.com/matzehuels/toplangs/pkg/config
// [errors]: github.com/matzehuels/toplangs/pkg/errors
// [observability]: github.com/matzehuels/toplangs/pkg/observability
package pkg
