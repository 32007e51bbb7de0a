// Package toplangs renders the top-languages card.
//
// # Overview
//
// A card summarises how much code a user has written in each language.
// The input is a [Usage] map from language name to byte size; the output is
// an SVG fragment (via [Renderer.Compute]) or a complete SVG document (via
// [Renderer.Render]).
//
// Rendering happens in three steps:
//
//  1. [Reduce] drops hidden languages, sorts by size and caps the list.
//  2. The layout named in [Options] lays out the reduced [Dataset].
//  3. The card frame from the card package adds title, colors and CSS.
//
// # Layouts
//
// Five layouts are supported, selected with [ParseLayout]:
//
//   - normal: one labelled progress bar per language
//   - compact: one stacked bar plus a two-column legend
//   - donut: a ring of arcs beside a legend
//   - donut-vertical: a dashed ring above a two-column legend
//   - pie: a pie chart above a two-column legend
//
// Every layout's defaults (language count, animation stagger, height
// formula) live in one table keyed by [Layout], so [Layout.Height] and
// [Layout.DefaultCount] can be queried without rendering.
//
// # Determinism
//
// Rendering is a pure function of its input. Languages of equal size are
// ordered by name, so the same usage always yields byte-identical output.
// A [Renderer] has no mutable state and may be shared between goroutines.
package toplangs
