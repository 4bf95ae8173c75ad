// Package layout positions an ordered collection of pages inside a
// two-dimensional canvas and answers spatial queries against the result.
//
// # The Layout
//
// A [Layout] owns a page sequence and the parameters that shape it:
// margins, spacing, zoom factor, resolution, rotation, and the
// continuous/paged display mode. Parameters are plain exported fields;
// after changing them, or after editing the page sequence, call
// [Layout.Update] to recompute every page's size and position and the
// layout's own bounding geometry:
//
//	l := layout.New(&layout.Stacked{}, pages...)
//	l.ZoomFactor = 1.5
//	if l.Update() {
//	    // visible geometry changed; resize the scroll area
//	}
//
// # Positioning Policies
//
// The position pass is delegated to a [Positioner] chosen at
// construction:
//
//   - nil - plain top-to-bottom stack against the left margin
//   - [Stacked] - single column or row, centered on the cross axis
//   - [Grid] - rows of a fixed column count, with support for a
//     shorter first row
//
// # Spatial Queries
//
// [Layout.PageAt], [Layout.PagesAt] and [Layout.NearestPageAt] answer
// point, rectangle and nearest-neighbor queries over the displayed
// pages. They share a spatial index that is invalidated by Update and
// rebuilt lazily on the first query afterwards.
//
// # Zoom to Fit
//
// [Layout.Fit] computes the zoom factor that makes the layout fit a
// viewport along the requested axes ([FitWidth], [FitHeight] or
// [FitBoth]), using the widest and highest pages as references. A Grid
// with FitAllColumns set divides the available width over its columns
// first.
//
// # Paged Browsing
//
// With ContinuousMode off, only one page set is displayed at a time.
// [Layout.PageSets] partitions the sequence into sets, run-length
// encoded; [Layout.PageSet] locates the set of a page and
// [Layout.DisplayPages] selects the pages of the current set.
//
// # Anchoring
//
// [Layout.Pos2Offset] and [Layout.Offset2Pos] convert between absolute
// positions and page-relative offsets, so a caller can keep the same
// spot on screen across zoom or rotation changes.
//
// # Concurrency
//
// A Layout and its spatial index are single-threaded: run Update and
// all queries on the goroutine that owns the layout.
package layout
