// Package spatial provides a query index over axis-aligned rectangles.
//
// The index answers three questions about a fixed set of rectangle-bearing
// items:
//
//   - [Index.At] - which item is at this point
//   - [Index.Intersecting] - which items touch this rectangle
//   - [Index.Nearest] - which item is closest to this point without
//     containing it
//
// # Usage
//
// An index is built from any slice together with a function extracting
// each item's rectangle:
//
//	ix := spatial.New(pages, func(p page.Page) model.Rect {
//	    return p.Geometry().Rect()
//	})
//	hit, ok := ix.At(model.Point{X: 120, Y: 300})
//
// The index holds a snapshot: it never observes later changes to the
// items, so the owner rebuilds it after the rectangles move. A layout
// does this lazily, dropping its index on update and rebuilding it on
// the next query.
//
// # Complexity
//
// Construction sorts the items by their left edge and records a running
// maximum of right edges, O(n log n). Point and range queries narrow the
// candidate range with two binary searches before testing rectangles;
// nearest-neighbor queries scan all items once.
package spatial
