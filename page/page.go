package page

import "github.com/tsawler/folio/model"

// Rotation represents a rotation by quarter turns, clockwise
type Rotation int

const (
	Rotate0 Rotation = iota
	Rotate90
	Rotate180
	Rotate270
)

// Normalized returns the rotation reduced to the range [Rotate0, Rotate270]
func (r Rotation) Normalized() Rotation {
	return ((r % 4) + 4) % 4
}

// Swapped returns true if the rotation swaps width and height
func (r Rotation) Swapped() bool {
	return r.Normalized()&1 == 1
}

func (r Rotation) String() string {
	switch r.Normalized() {
	case Rotate90:
		return "90"
	case Rotate180:
		return "180"
	case Rotate270:
		return "270"
	default:
		return "0"
	}
}

// Page is the geometry contract a page-like entity must satisfy to be
// positioned by a layout. The layout reads the natural size, rotation
// and scale, asks the page for its on-screen size, and writes the result
// into the mutable [Geometry] returned by Geometry().
//
// Pages are compared by identity: the same Page value must return the
// same *Geometry on every call.
type Page interface {
	// PageSize returns the natural size in points (1/72 inch),
	// independent of rotation, scale and zoom.
	PageSize() model.Size

	// PageRotation returns the page's own rotation quadrant.
	PageRotation() Rotation

	// Scale returns the independent X and Y scale factors.
	Scale() (x, y float64)

	// ComputeSize returns the on-screen size for the given effective
	// rotation, resolution and zoom factor.
	ComputeSize(rotation Rotation, dpiX, dpiY, zoom float64) model.Size

	// ZoomForWidth returns the zoom factor needed to display the page
	// at the given width. The rotation is the layout rotation, which
	// the page combines with its own.
	ZoomForWidth(width float64, rotation Rotation, dpiX float64) float64

	// ZoomForHeight returns the zoom factor needed to display the page
	// at the given height.
	ZoomForHeight(height float64, rotation Rotation, dpiY float64) float64

	// Geometry returns the placement computed by the layout. The
	// returned pointer stays valid for the lifetime of the page and is
	// written during layout updates.
	Geometry() *Geometry

	// Copy returns an independent copy of the page, geometry included.
	Copy() Page
}

// Geometry holds the layout-computed placement of a page. Its fields are
// only meaningful after the owning layout has run an update since the
// last change to the page or the layout parameters.
type Geometry struct {
	// Rotation is the effective rotation: the page's own rotation
	// combined with the layout rotation, normalized to four quadrants.
	Rotation Rotation

	// Pos is the top-left corner in layout coordinates.
	Pos model.Point

	// Width and Height are the computed on-screen dimensions.
	Width  float64
	Height float64
}

// Rect returns the page rectangle in layout coordinates
func (g *Geometry) Rect() model.Rect {
	return model.Rect{X: g.Pos.X, Y: g.Pos.Y, Width: g.Width, Height: g.Height}
}

// Size returns the computed on-screen size
func (g *Geometry) Size() model.Size {
	return model.Size{Width: g.Width, Height: g.Height}
}

// ToNormalized maps a point in layout coordinates, inside the page
// rectangle, to normalized page coordinates: the range 0..1 over the
// unrotated page, X to the right and Y downward. Link areas use this
// coordinate space.
func (g *Geometry) ToNormalized(p model.Point) model.Point {
	x := (p.X - g.Pos.X) / g.Width
	y := (p.Y - g.Pos.Y) / g.Height
	switch g.Rotation.Normalized() {
	case Rotate90:
		return model.Point{X: y, Y: 1 - x}
	case Rotate180:
		return model.Point{X: 1 - x, Y: 1 - y}
	case Rotate270:
		return model.Point{X: 1 - y, Y: x}
	default:
		return model.Point{X: x, Y: y}
	}
}

// FromNormalized is the inverse of ToNormalized: it maps a normalized
// page coordinate back to layout coordinates.
func (g *Geometry) FromNormalized(p model.Point) model.Point {
	var x, y float64
	switch g.Rotation.Normalized() {
	case Rotate90:
		x, y = 1-p.Y, p.X
	case Rotate180:
		x, y = 1-p.X, 1-p.Y
	case Rotate270:
		x, y = p.Y, 1-p.X
	default:
		x, y = p.X, p.Y
	}
	return model.Point{
		X: g.Pos.X + x*g.Width,
		Y: g.Pos.Y + y*g.Height,
	}
}
