package spatial

import (
	"sort"

	"github.com/tsawler/folio/model"
)

// Index answers point, range and nearest-neighbor queries over a fixed
// snapshot of rectangle-bearing items.
//
// The index is built once from a slice of items and a rect accessor and
// never observes later changes to the items; rebuild it after the
// rectangles move. Construction costs O(n log n), and range queries
// narrow the candidate set by binary search over the left edges before
// testing rectangles, so sparse query regions do not scan every item.
//
// An Index is not safe for concurrent use.
type Index[T any] struct {
	items []T
	rects []model.Rect

	// byLeft holds item indices sorted by the rect's left edge, and
	// maxRight[i] is the running maximum right edge over byLeft[:i+1].
	// maxRight is nondecreasing, which makes both query bounds binary
	// searchable.
	byLeft   []int
	maxRight []float64
}

// New builds an index over the given items. rectOf extracts the
// axis-aligned rectangle of an item; it is called once per item during
// construction.
func New[T any](items []T, rectOf func(T) model.Rect) *Index[T] {
	ix := &Index[T]{
		items: items,
		rects: make([]model.Rect, len(items)),
	}
	for i, item := range items {
		ix.rects[i] = rectOf(item)
	}

	ix.byLeft = make([]int, len(items))
	for i := range ix.byLeft {
		ix.byLeft[i] = i
	}
	sort.SliceStable(ix.byLeft, func(a, b int) bool {
		return ix.rects[ix.byLeft[a]].Left() < ix.rects[ix.byLeft[b]].Left()
	})

	ix.maxRight = make([]float64, len(items))
	for i, idx := range ix.byLeft {
		right := ix.rects[idx].Right()
		if i > 0 && ix.maxRight[i-1] > right {
			right = ix.maxRight[i-1]
		}
		ix.maxRight[i] = right
	}
	return ix
}

// Len returns the number of indexed items
func (ix *Index[T]) Len() int {
	return len(ix.items)
}

// At returns an item whose rectangle contains the point. When several
// rectangles overlap the point, the item earliest in the original slice
// order wins. The second return value is false if no rectangle contains
// the point.
func (ix *Index[T]) At(p model.Point) (T, bool) {
	best := -1
	ix.scan(model.Rect{X: p.X, Y: p.Y}, func(i int) {
		if (best == -1 || i < best) && ix.rects[i].Contains(p) {
			best = i
		}
	})
	if best == -1 {
		var zero T
		return zero, false
	}
	return ix.items[best], true
}

// Intersecting returns all items whose rectangle intersects r. Touching
// edges count as intersecting. The order of the result is unspecified.
func (ix *Index[T]) Intersecting(r model.Rect) []T {
	var result []T
	ix.scan(r, func(i int) {
		if ix.rects[i].Intersects(r) {
			result = append(result, ix.items[i])
		}
	})
	return result
}

// scan calls fn for every candidate item whose horizontal interval can
// overlap r. Candidates still need a full rectangle test.
func (ix *Index[T]) scan(r model.Rect, fn func(i int)) {
	// Items whose left edge lies beyond the query cannot match.
	hi := sort.Search(len(ix.byLeft), func(i int) bool {
		return ix.rects[ix.byLeft[i]].Left() > r.Right()
	})
	// Items before the first running max reaching the query's left edge
	// cannot match either.
	lo := sort.Search(hi, func(i int) bool {
		return ix.maxRight[i] >= r.Left()
	})
	for _, idx := range ix.byLeft[lo:hi] {
		fn(idx)
	}
}

// Nearest returns the item whose rectangle has the smallest Euclidean
// distance from the point to its nearest edge or corner, among items
// whose rectangle does not contain the point. Ties are broken by the
// original slice order. The second return value is false if every
// rectangle contains the point or the index is empty.
func (ix *Index[T]) Nearest(p model.Point) (T, bool) {
	best := -1
	var bestDist float64
	for i, r := range ix.rects {
		if r.Contains(p) {
			continue
		}
		d := r.DistanceTo(p)
		if best == -1 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	if best == -1 {
		var zero T
		return zero, false
	}
	return ix.items[best], true
}
