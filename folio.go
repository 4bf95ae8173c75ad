// Package folio provides a fluent API for arranging document pages for
// display.
//
// Basic usage:
//
//	l := folio.NewView(pages...).Layout()
//
// With options:
//
//	l := folio.NewView(pages...).
//	    Grid(2, 1).
//	    Spacing(12).
//	    Fit(viewport, layout.FitWidth).
//	    Layout()
//
// For advanced use cases, the lower-level layout package is also
// available.
package folio

import (
	"github.com/tsawler/folio/layout"
	"github.com/tsawler/folio/model"
	"github.com/tsawler/folio/page"
)

// View collects layout configuration before building the layout itself.
// The zero value is not useful; create one with [NewView].
type View struct {
	pages      []page.Page
	positioner layout.Positioner
	margins    *model.Margins
	spacing    *float64
	zoom       *float64
	rotation   page.Rotation
	perSet     int
	firstSet   int
	fitSize    *model.Size
	fitMode    layout.FitMode
}

// NewView starts a fluent layout configuration for the given pages.
//
// Example:
//
//	l := folio.NewView(pages...).Stacked(layout.Horizontal).Layout()
func NewView(pages ...page.Page) *View {
	return &View{pages: pages}
}

// Stacked arranges the pages in a single row or column
func (v *View) Stacked(o layout.Orientation) *View {
	v.positioner = &layout.Stacked{Orientation: o}
	return v
}

// Grid arranges the pages in rows of perRow pages, with firstRow pages
// on the first row
func (v *View) Grid(perRow, firstRow int) *View {
	g := layout.NewGrid()
	g.PagesPerRow = perRow
	g.PagesFirstRow = firstRow
	v.positioner = g
	return v
}

// Margins sets the empty border around the laid-out pages
func (v *View) Margins(m model.Margins) *View {
	v.margins = &m
	return v
}

// Spacing sets the distance between adjacent pages
func (v *View) Spacing(s float64) *View {
	v.spacing = &s
	return v
}

// Zoom sets a fixed zoom factor
func (v *View) Zoom(z float64) *View {
	v.zoom = &z
	return v
}

// Rotated rotates the whole layout on top of any per-page rotation
func (v *View) Rotated(r page.Rotation) *View {
	v.rotation = r
	return v
}

// Paged switches the layout from continuous mode to paged mode, showing
// perSet pages at a time with firstSet pages in the first set
func (v *View) Paged(perSet, firstSet int) *View {
	v.perSet = perSet
	v.firstSet = firstSet
	return v
}

// Fit computes the zoom factor that fits the layout into the given
// size, overriding any fixed zoom
func (v *View) Fit(size model.Size, mode layout.FitMode) *View {
	v.fitSize = &size
	v.fitMode = mode
	return v
}

// Layout builds the configured layout and computes its geometry. The
// returned layout is independent of the View; changing either afterward
// does not affect the other.
func (v *View) Layout() *layout.Layout {
	l := layout.New(v.positioner, v.pages...)
	if v.margins != nil {
		l.Margins = *v.margins
	}
	if v.spacing != nil {
		l.Spacing = *v.spacing
	}
	if v.zoom != nil {
		l.ZoomFactor = *v.zoom
	}
	l.Rotation = v.rotation
	if v.perSet > 0 {
		l.ContinuousMode = false
		l.PagesPerSet = v.perSet
		l.PagesFirstSet = v.firstSet
	}
	if v.fitSize != nil {
		l.Fit(*v.fitSize, v.fitMode)
	}
	l.Update()
	return l
}
