package layout

import (
	"math"

	"github.com/tsawler/folio/model"
	"github.com/tsawler/folio/page"
	"github.com/tsawler/folio/spatial"
)

// FitMode selects which axes a Fit call should satisfy
type FitMode int

const (
	// FixedScale requests no fitting at all
	FixedScale FitMode = 0

	// FitWidth fits the layout into the viewport width
	FitWidth FitMode = 1 << iota

	// FitHeight fits the layout into the viewport height
	FitHeight

	// FitBoth fits both axes; the smaller zoom factor wins
	FitBoth = FitWidth | FitHeight
)

// Layout manages an ordered collection of pages and positions them inside
// a two-dimensional canvas.
//
// The exported fields are the layout parameters. After changing any of
// them, or after adding or removing pages, call [Layout.Update] to
// recompute page sizes and positions; until then the computed geometry
// and all spatial queries reflect the previous state.
type Layout struct {
	// Margins is the empty space around the pages. Default 6 on
	// every side.
	Margins model.Margins

	// Spacing is the distance between pages. Default 8.
	Spacing float64

	// ZoomFactor scales all pages. Default 1.
	ZoomFactor float64

	// DPIX and DPIY are the display resolution. Default 72, meaning
	// one pixel per point.
	DPIX float64
	DPIY float64

	// Rotation rotates all pages in addition to their own rotation.
	Rotation page.Rotation

	// ContinuousMode shows all pages when true (the default). When
	// false, only the pages of the current page set are displayed.
	ContinuousMode bool

	// PagesPerSet is the number of pages in a page set. Default 1.
	// A Positioner that derives its own page-set sizes (such as
	// [Grid]) takes precedence over this field.
	PagesPerSet int

	// PagesFirstSet is the number of pages in the first page set, if
	// it differs from PagesPerSet. 0 (the default) disables the
	// distinct first set.
	PagesFirstSet int

	// CurrentPageSet is the page set displayed when ContinuousMode is
	// false. Out-of-range values are clamped into range on display.
	CurrentPageSet int

	pages      []page.Page
	positioner Positioner

	pos   model.Point // top-left of the visible geometry
	size  model.Size  // computed by Update
	index *spatial.Index[page.Page]
}

// New creates a layout using the given positioning policy. A nil
// positioner stacks the pages top to bottom against the left margin;
// see [Stacked] and [Grid] for the richer policies. Any pages passed
// are appended in order.
func New(p Positioner, pages ...page.Page) *Layout {
	return &Layout{
		Margins:        model.Margins{Top: 6, Right: 6, Bottom: 6, Left: 6},
		Spacing:        8,
		ZoomFactor:     1,
		DPIX:           72,
		DPIY:           72,
		ContinuousMode: true,
		PagesPerSet:    1,
		positioner:     p,
		pages:          append([]page.Page(nil), pages...),
	}
}

// ============================================================================
// Page sequence
// ============================================================================

// Count returns the number of pages
func (l *Layout) Count() int {
	return len(l.pages)
}

// Empty returns true if the layout has no pages
func (l *Layout) Empty() bool {
	return len(l.pages) == 0
}

// Page returns the page at the given index, or nil if out of range
func (l *Layout) Page(index int) page.Page {
	if index < 0 || index >= len(l.pages) {
		return nil
	}
	return l.pages[index]
}

// Pages returns the page sequence in display order. The returned slice
// is owned by the layout and must not be modified directly; use Append,
// Insert and Remove instead.
func (l *Layout) Pages() []page.Page {
	return l.pages
}

// Append adds pages to the end of the sequence
func (l *Layout) Append(pages ...page.Page) {
	l.pages = append(l.pages, pages...)
}

// Insert inserts a page at the given index. Indexes out of range are
// clamped to the ends of the sequence.
func (l *Layout) Insert(index int, p page.Page) {
	if index < 0 {
		index = 0
	}
	if index > len(l.pages) {
		index = len(l.pages)
	}
	l.pages = append(l.pages, nil)
	copy(l.pages[index+1:], l.pages[index:])
	l.pages[index] = p
}

// Remove removes and returns the page at the given index, or nil if the
// index is out of range
func (l *Layout) Remove(index int) page.Page {
	if index < 0 || index >= len(l.pages) {
		return nil
	}
	p := l.pages[index]
	l.pages = append(l.pages[:index], l.pages[index+1:]...)
	return p
}

// Clear removes all pages
func (l *Layout) Clear() {
	l.pages = nil
}

// IndexOf returns the index of the given page, comparing by identity,
// or -1 if the page is not in the layout
func (l *Layout) IndexOf(p page.Page) int {
	for i, q := range l.pages {
		if q == p {
			return i
		}
	}
	return -1
}

// Copy returns a deep copy of the layout: every page is copied, so
// mutating the copy never affects the original
func (l *Layout) Copy() *Layout {
	c := *l
	c.index = nil
	c.pages = make([]page.Page, len(l.pages))
	for i, p := range l.pages {
		c.pages[i] = p.Copy()
	}
	return &c
}

// ============================================================================
// Visible geometry
// ============================================================================

// SetPos sets the top-left corner of the visible geometry. Normally this
// is the origin, but in non-continuous mode a caller may move the
// visible page set area.
func (l *Layout) SetPos(p model.Point) {
	l.pos = p
}

// Pos returns the top-left corner of the visible geometry
func (l *Layout) Pos() model.Point {
	return l.pos
}

// Size returns the size computed by the last Update
func (l *Layout) Size() model.Size {
	return l.size
}

// Geometry returns the rectangle describing the visible part of the
// layout
func (l *Layout) Geometry() model.Rect {
	return model.Rect{X: l.pos.X, Y: l.pos.Y, Width: l.size.Width, Height: l.size.Height}
}

// SetGeometry sets the rectangle describing the visible part of the
// layout. Normally Update does this.
func (l *Layout) SetGeometry(r model.Rect) {
	l.pos = r.Pos()
	l.size = r.Size()
}

// ============================================================================
// Update pipeline
// ============================================================================

// Update computes the size and position of every page and finally the
// layout's own geometry. Call it after adding or removing pages or after
// changing any layout parameter. It reports whether the visible geometry
// changed; calling it again without intervening changes is a no-op.
func (l *Layout) Update() bool {
	l.index = nil
	l.updatePageSizes()
	if l.positioner != nil {
		l.positioner.Position(l)
	} else {
		l.positionStackedPlain()
	}
	geometry := l.computeGeometry()
	changed := geometry != l.Geometry()
	l.SetGeometry(geometry)
	return changed
}

// updatePageSizes computes the effective rotation and on-screen size of
// every page
func (l *Layout) updatePageSizes() {
	for _, p := range l.pages {
		g := p.Geometry()
		g.Rotation = (p.PageRotation() + l.Rotation).Normalized()
		size := p.ComputeSize(g.Rotation, l.DPIX, l.DPIY, l.ZoomFactor)
		g.Width = size.Width
		g.Height = size.Height
	}
}

// positionStackedPlain is the fallback policy: pages top to bottom
// against the left margin, no centering
func (l *Layout) positionStackedPlain() {
	top := l.Margins.Top
	for _, p := range l.pages {
		g := p.Geometry()
		g.Pos = model.Point{X: l.Margins.Left, Y: top}
		top += g.Height + l.Spacing
	}
}

// computeGeometry returns the bounding rectangle of all displayed pages
// expanded by the margins
func (l *Layout) computeGeometry() model.Rect {
	display := l.DisplayPages()
	if len(display) == 0 {
		return model.Rect{Width: l.Margins.Horizontal(), Height: l.Margins.Vertical()}
	}
	union := display[0].Geometry().Rect()
	for _, p := range display[1:] {
		union = union.Union(p.Geometry().Rect())
	}
	return union.Expanded(l.Margins)
}

// ============================================================================
// Spatial queries
// ============================================================================

// pageRects returns the spatial index over the displayed pages,
// rebuilding it if an update invalidated it
func (l *Layout) pageRects() *spatial.Index[page.Page] {
	if l.index == nil {
		l.index = spatial.New(l.DisplayPages(), func(p page.Page) model.Rect {
			return p.Geometry().Rect()
		})
	}
	return l.index
}

// PageAt returns the displayed page containing the given point, or nil
// if the point is on no page
func (l *Layout) PageAt(p model.Point) page.Page {
	if hit, ok := l.pageRects().At(p); ok {
		return hit
	}
	return nil
}

// PagesAt returns the displayed pages touched by the given rectangle,
// in unspecified order
func (l *Layout) PagesAt(r model.Rect) []page.Page {
	return l.pageRects().Intersecting(r)
}

// NearestPageAt returns the displayed page at the shortest distance from
// the given point. The returned page does not contain the point; use
// PageAt for that. Returns nil if no page qualifies.
func (l *Layout) NearestPageAt(p model.Point) page.Page {
	if hit, ok := l.pageRects().Nearest(p); ok {
		return hit
	}
	return nil
}

// ============================================================================
// Zoom to fit
// ============================================================================

// WidestPage returns the page that lays out widest, accounting for
// scale and for rotations that swap width and height. Returns nil for
// an empty layout.
func (l *Layout) WidestPage() page.Page {
	var widest page.Page
	var max float64
	for _, p := range l.pages {
		size := p.PageSize()
		sx, sy := p.Scale()
		w := size.Width * sx
		if (p.PageRotation() + l.Rotation).Swapped() {
			w = size.Height * sy
		}
		if widest == nil || w > max {
			widest = p
			max = w
		}
	}
	return widest
}

// HighestPage returns the page that lays out tallest, accounting for
// scale and for rotations that swap width and height. Returns nil for
// an empty layout.
func (l *Layout) HighestPage() page.Page {
	var highest page.Page
	var max float64
	for _, p := range l.pages {
		size := p.PageSize()
		sx, sy := p.Scale()
		h := size.Height * sy
		if (p.PageRotation() + l.Rotation).Swapped() {
			h = size.Width * sx
		}
		if highest == nil || h > max {
			highest = p
			max = h
		}
	}
	return highest
}

// Fit sets the zoom factor so the layout fits in the given viewport
// size for the requested axes. With FitBoth, the smaller of the two
// zoom factors wins so both constraints hold. A FixedScale mode or an
// empty layout leaves the zoom factor untouched.
func (l *Layout) Fit(size model.Size, mode FitMode) {
	if mode == FixedScale || l.Empty() {
		return
	}
	zoom := math.Inf(1)
	if mode&FitWidth != 0 {
		zoom = math.Min(zoom, l.ZoomFitWidth(size.Width))
	}
	if mode&FitHeight != 0 {
		zoom = math.Min(zoom, l.ZoomFitHeight(size.Height))
	}
	l.ZoomFactor = zoom
}

// ZoomFitWidth returns the zoom factor the layout needs to fit in the
// given width. The positioning policy may override the computation (a
// grid divides the width over its columns); the default asks the widest
// page. Returns the current zoom factor for an empty layout.
func (l *Layout) ZoomFitWidth(width float64) float64 {
	if l.Empty() {
		return l.ZoomFactor
	}
	if z, ok := l.positioner.(widthZoomer); ok {
		return z.zoomFitWidth(l, width)
	}
	width -= l.Margins.Horizontal()
	return l.WidestPage().ZoomForWidth(width, l.Rotation, l.DPIX)
}

// ZoomFitHeight returns the zoom factor the layout needs to fit in the
// given height, asking the highest page. Returns the current zoom
// factor for an empty layout.
func (l *Layout) ZoomFitHeight(height float64) float64 {
	if l.Empty() {
		return l.ZoomFactor
	}
	height -= l.Margins.Vertical()
	return l.HighestPage().ZoomForHeight(height, l.Rotation, l.DPIY)
}

// ============================================================================
// Position anchoring
// ============================================================================

// Offset is a page-relative, zoom-independent anchor. Index is the page
// the anchor sits on, or -1 when the layout was empty and the fractions
// are relative to the layout itself. X and Y are in the range 0..1.
//
// Capture an offset with Pos2Offset before changing zoom or rotation,
// run Update, and convert it back with Offset2Pos to keep the same spot
// visible.
type Offset struct {
	Index int
	X     float64
	Y     float64
}

// Pos2Offset converts a position in layout coordinates to an Offset.
// The page under the position is used; if none contains it, the nearest
// page does. Only an empty layout yields Index -1.
func (l *Layout) Pos2Offset(pos model.Point) Offset {
	p := l.PageAt(pos)
	if p == nil {
		p = l.NearestPageAt(pos)
	}
	if p == nil {
		return Offset{
			Index: -1,
			X:     pos.X / l.size.Width,
			Y:     pos.Y / l.size.Height,
		}
	}
	g := p.Geometry()
	return Offset{
		Index: l.IndexOf(p),
		X:     (pos.X - g.Pos.X) / g.Width,
		Y:     (pos.Y - g.Pos.Y) / g.Height,
	}
}

// Offset2Pos converts an Offset back to a position in layout
// coordinates, using the page's current geometry
func (l *Layout) Offset2Pos(offset Offset) model.Point {
	if offset.Index < 0 || offset.Index >= len(l.pages) {
		return model.Point{
			X: offset.X * l.size.Width,
			Y: offset.Y * l.size.Height,
		}
	}
	g := l.pages[offset.Index].Geometry()
	return model.Point{
		X: g.Pos.X + offset.X*g.Width,
		Y: g.Pos.Y + offset.Y*g.Height,
	}
}
