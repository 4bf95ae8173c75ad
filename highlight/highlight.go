package highlight

import (
	"image/color"

	"github.com/fogleman/gg"

	"github.com/tsawler/folio/model"
)

// Highlighter draws rounded rectangle outlines around rectangles, for
// example to mark links or search results on a rendered layout. An
// instance represents one style of highlighting.
//
// The color always comes from the caller; the view or theme owning the
// highlighter decides what color marks what. LineWidth is the border
// thickness in pixels and Radius the distance the border keeps from the
// highlighted area, with rounded corners.
type Highlighter struct {
	Color     color.Color
	LineWidth float64
	Radius    float64
}

// New creates a highlighter in the given color with the default line
// width of 2 and radius of 3
func New(c color.Color) *Highlighter {
	return &Highlighter{
		Color:     c,
		LineWidth: 2,
		Radius:    3,
	}
}

// PaintRects draws the highlight outlines for the given rectangles onto
// the drawing context. A highlighter without a color paints nothing.
func (h *Highlighter) PaintRects(dc *gg.Context, rects []model.Rect) {
	if h.Color == nil {
		return
	}
	dc.SetColor(h.Color)
	dc.SetLineWidth(h.LineWidth)
	for _, r := range rects {
		r = r.Adjusted(h.Radius)
		dc.DrawRoundedRectangle(r.X, r.Y, r.Width, r.Height, h.Radius)
		dc.Stroke()
	}
}
