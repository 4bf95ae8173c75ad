package link

import (
	"github.com/tsawler/folio/model"
	"github.com/tsawler/folio/page"
	"github.com/tsawler/folio/spatial"
)

// Link is a clickable area on a page. The area is stored in normalized
// page coordinates, the range 0..1 over the unrotated page, so the same
// link stays in place at every zoom level and rotation.
type Link struct {
	// URL is the link target
	URL string

	// Tooltip is an optional hover text
	Tooltip string

	// Area is the sensitive region in normalized page coordinates
	Area model.Rect
}

// Links answers spatial queries over the link areas of one page
type Links struct {
	index *spatial.Index[*Link]
}

// NewLinks builds the query index for the given links
func NewLinks(links []*Link) *Links {
	return &Links{
		index: spatial.New(links, func(ln *Link) model.Rect {
			return ln.Area
		}),
	}
}

// Len returns the number of links
func (ls *Links) Len() int {
	return ls.index.Len()
}

// At returns the link whose area contains the given normalized point,
// or nil if there is none. Overlapping links resolve to the earliest
// one in the original slice order.
func (ls *Links) At(p model.Point) *Link {
	if ln, ok := ls.index.At(p); ok {
		return ln
	}
	return nil
}

// In returns all links whose area touches the given normalized
// rectangle, in unspecified order
func (ls *Links) In(r model.Rect) []*Link {
	return ls.index.Intersecting(r)
}

// AtPos returns the link under a point given in layout coordinates,
// mapping through the laid-out geometry of the page the links belong
// to. Returns nil when the point hits no link.
func (ls *Links) AtPos(g *page.Geometry, pos model.Point) *Link {
	return ls.At(g.ToNormalized(pos))
}
