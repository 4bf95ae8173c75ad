package page

import "github.com/tsawler/folio/model"

// Base is the standard Page implementation. It covers page sources whose
// natural size is known up front (PDF pages, images, fixed-size previews).
// Specialized page types embed Base and override what they need.
type Base struct {
	// Width and Height describe the natural size in units of DPI,
	// typically points (1/72 inch).
	Width  float64
	Height float64

	// DPI is the resolution of the natural size. 72 means the natural
	// size is in points; image-backed pages typically use 96.
	DPI float64

	// Rotation is the page's own rotation quadrant.
	Rotation Rotation

	// ScaleX and ScaleY stretch the page independently per axis.
	ScaleX float64
	ScaleY float64

	geom Geometry
}

// NewBase creates a page with the given natural size in points
func NewBase(width, height float64) *Base {
	return &Base{
		Width:  width,
		Height: height,
		DPI:    72,
		ScaleX: 1,
		ScaleY: 1,
	}
}

// PageSize returns the natural size
func (b *Base) PageSize() model.Size {
	return model.Size{Width: b.Width, Height: b.Height}
}

// PageRotation returns the page's own rotation
func (b *Base) PageRotation() Rotation {
	return b.Rotation
}

// Scale returns the X and Y scale factors
func (b *Base) Scale() (x, y float64) {
	return b.ScaleX, b.ScaleY
}

// Geometry returns the mutable layout-computed placement
func (b *Base) Geometry() *Geometry {
	return &b.geom
}

// ComputeSize returns the on-screen size of the page for the given
// effective rotation, resolution and zoom factor. The natural size is
// scaled per axis first, swapped for odd rotations, and the resolution
// ratio and zoom are applied last.
func (b *Base) ComputeSize(rotation Rotation, dpiX, dpiY, zoom float64) model.Size {
	w := b.Width * b.ScaleX
	h := b.Height * b.ScaleY
	if rotation.Swapped() {
		w, h = h, w
	}
	return model.Size{
		Width:  w * dpiX / b.DPI * zoom,
		Height: h * dpiY / b.DPI * zoom,
	}
}

// ZoomForWidth returns the zoom factor needed to display the page at the
// given width under the given layout rotation and horizontal resolution
func (b *Base) ZoomForWidth(width float64, rotation Rotation, dpiX float64) float64 {
	w := b.Width * b.ScaleX
	if (b.Rotation + rotation).Swapped() {
		w = b.Height * b.ScaleY
	}
	return width * b.DPI / (w * dpiX)
}

// ZoomForHeight returns the zoom factor needed to display the page at the
// given height under the given layout rotation and vertical resolution
func (b *Base) ZoomForHeight(height float64, rotation Rotation, dpiY float64) float64 {
	h := b.Height * b.ScaleY
	if (b.Rotation + rotation).Swapped() {
		h = b.Width * b.ScaleX
	}
	return height * b.DPI / (h * dpiY)
}

// Copy returns an independent copy of the page
func (b *Base) Copy() Page {
	c := *b
	return &c
}
