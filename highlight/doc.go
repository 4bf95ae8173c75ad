// Package highlight draws attention markers over rectangular areas.
//
// A [Highlighter] represents one style of highlighting: a color, a
// border width and a corner radius. Its PaintRects method outlines any
// number of rectangles on a drawing context, typically rectangles
// produced by hit tests against a layout or a page's links:
//
//	h := highlight.New(color.RGBA{R: 0x33, G: 0x99, B: 0xff, A: 0xff})
//	h.PaintRects(dc, rects)
//
// The color is always supplied by the caller. A view with a theme
// resolves its own highlight color and passes it in; nothing in this
// package consults any global palette.
package highlight
