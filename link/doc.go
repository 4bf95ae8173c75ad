// Package link models clickable areas on pages.
//
// A [Link] stores its sensitive area in normalized page coordinates
// between 0 and 1, so the area needs no recomputation when the page is
// zoomed, scaled or rotated. [Links] wraps the links of one page in a
// spatial index for hit testing:
//
//	links := link.NewLinks(pageLinks)
//	if ln := links.AtPos(p.Geometry(), mousePos); ln != nil {
//	    openURL(ln.URL)
//	}
//
// The view owning mouse events decides what clicking a link means; this
// package only answers where the links are.
package link
