package render

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/tsawler/folio/highlight"
	"github.com/tsawler/folio/layout"
	"github.com/tsawler/folio/model"
)

// Renderer draws the computed geometry of a layout into an image: the
// background, a frame for every displayed page, and optionally the page
// number centered on each page. It renders no page content; it exists
// to inspect and debug layouts visually.
type Renderer struct {
	// Background fills the canvas
	Background color.Color

	// PageFill fills each page rectangle
	PageFill color.Color

	// PageBorder outlines each page rectangle
	PageBorder color.Color

	// Label colors the page numbers. nil disables the labels.
	Label color.Color
}

// New creates a renderer with a light gray canvas, white pages, gray
// borders and gray page numbers
func New() *Renderer {
	return &Renderer{
		Background: color.RGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff},
		PageFill:   color.White,
		PageBorder: color.RGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xff},
		Label:      color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff},
	}
}

// Render draws the layout's displayed pages. The image has the size of
// the layout's computed geometry; run the layout's Update before
// rendering.
func (r *Renderer) Render(l *layout.Layout) image.Image {
	size := l.Size()
	width := int(math.Ceil(size.Width))
	height := int(math.Ceil(size.Height))
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	dc := gg.NewContext(width, height)
	dc.SetColor(r.Background)
	dc.Clear()

	origin := l.Pos()
	for _, p := range l.DisplayPages() {
		rect := p.Geometry().Rect().Translated(-origin.X, -origin.Y)

		dc.SetColor(r.PageFill)
		dc.DrawRectangle(rect.X, rect.Y, rect.Width, rect.Height)
		dc.Fill()

		dc.SetColor(r.PageBorder)
		dc.SetLineWidth(1)
		dc.DrawRectangle(rect.X, rect.Y, rect.Width, rect.Height)
		dc.Stroke()

		if r.Label != nil {
			center := rect.Center()
			dc.SetColor(r.Label)
			dc.SetFontFace(basicfont.Face7x13)
			dc.DrawStringAnchored(strconv.Itoa(l.IndexOf(p)+1), center.X, center.Y, 0.5, 0.5)
		}
	}
	return dc.Image()
}

// RenderHighlighted draws the layout and then paints the given
// highlight rectangles, in layout coordinates, over it
func (r *Renderer) RenderHighlighted(l *layout.Layout, h *highlight.Highlighter, rects []model.Rect) image.Image {
	dc := gg.NewContextForImage(r.Render(l))
	origin := l.Pos()
	translated := make([]model.Rect, len(rects))
	for i, rect := range rects {
		translated[i] = rect.Translated(-origin.X, -origin.Y)
	}
	h.PaintRects(dc, translated)
	return dc.Image()
}

// SavePNG renders the layout and writes the image as a PNG file
func (r *Renderer) SavePNG(l *layout.Layout, path string) error {
	if err := gg.SavePNG(path, r.Render(l)); err != nil {
		return fmt.Errorf("failed to save layout rendering: %w", err)
	}
	return nil
}
