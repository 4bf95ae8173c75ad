package layout

import "github.com/tsawler/folio/model"

// Positioner determines the position of every page in a layout. It runs
// as part of [Layout.Update], after the page sizes have been computed,
// and writes each page's Geometry().Pos. Implementations should respect
// the layout's margins and spacing.
type Positioner interface {
	Position(l *Layout)
}

// widthZoomer is implemented by positioners that compute their own
// fit-width zoom factor instead of the single-page default
type widthZoomer interface {
	zoomFitWidth(l *Layout, width float64) float64
}

// pageSetter is implemented by positioners that derive the page-set
// sizes from their own parameters instead of the layout fields
type pageSetter interface {
	pageSetSizes() (firstSet, perSet int)
}

// Orientation selects the stacking axis of a [Stacked] layout
type Orientation int

const (
	// Vertical stacks pages top to bottom
	Vertical Orientation = iota

	// Horizontal stacks pages left to right
	Horizontal
)

// Stacked positions pages in a single column or row, each page centered
// on the cross axis. The zero value stacks vertically.
type Stacked struct {
	Orientation Orientation
}

// Position places the pages along the stacking axis, centered within
// the widest (or highest) page extent plus margins
func (s *Stacked) Position(l *Layout) {
	if s.Orientation == Horizontal {
		s.positionRow(l)
	} else {
		s.positionColumn(l)
	}
}

func (s *Stacked) positionColumn(l *Layout) {
	var width float64
	for _, p := range l.Pages() {
		if w := p.Geometry().Width; w > width {
			width = w
		}
	}
	width += l.Margins.Horizontal()

	top := l.Margins.Top
	for _, p := range l.Pages() {
		g := p.Geometry()
		g.Pos = model.Point{X: (width - g.Width) / 2, Y: top}
		top += g.Height + l.Spacing
	}
}

func (s *Stacked) positionRow(l *Layout) {
	var height float64
	for _, p := range l.Pages() {
		if h := p.Geometry().Height; h > height {
			height = h
		}
	}
	height += l.Margins.Vertical()

	left := l.Margins.Left
	for _, p := range l.Pages() {
		g := p.Geometry()
		g.Pos = model.Point{X: left, Y: (height - g.Height) / 2}
		left += g.Width + l.Spacing
	}
}
