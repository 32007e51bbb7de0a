// Package render provides the SVG building blocks shared by card renderers.
//
// # Overview
//
// Cards are assembled from small markup fragments. This package holds the
// helpers every card needs:
//
//   - [FlexLayout]: stack fragments in a row or column with a fixed gap
//   - [ProgressNode]: a rounded progress bar on a background track
//   - [EscapeXML] and [EncodeHTML]: safe embedding of user-supplied text
//   - [Num] and [Fixed]: number formatting for attributes and labels
//   - [MeasureText]: approximate text width for layout decisions
//
// Layout-specific rendering lives in subpackages:
//
//   - [geom]: circle math and arc paths
//   - [card]: the outer card frame and the error card
//   - [toplangs]: the top-languages card
//
// All helpers are pure functions; fragments are plain strings so they can
// be composed freely and compared byte-for-byte in tests.
//
// [geom]: github.com/matzehuels/toplangs/pkg/render/geom
// [card]: github.com/matzehuels/toplangs/pkg/render/card
// [toplangs]: github.com/matzehuels/toplangs/pkg/render/toplangs
package render
