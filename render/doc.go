// Package render draws layout previews.
//
// A [Renderer] turns the computed geometry of a [layout.Layout] into an
// image: page frames on a canvas, page numbers, and optionally
// highlight rectangles painted on top through the highlight package.
// The renderer draws geometry only. It does not render page content,
// which is the job of whatever document backend supplies the pages.
//
// # Basic Use
//
//	r := render.New()
//	img := r.Render(l)
//
// or write straight to disk:
//
//	err := r.SavePNG(l, "layout.png")
//
// The renderer reads the layout's current geometry, so call the
// layout's Update before rendering.
package render
