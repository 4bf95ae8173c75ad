package model

import "math"

// Point represents a 2D point in layout coordinates
type Point struct {
	X, Y float64
}

// Distance calculates the Euclidean distance to another point
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Size represents a width/height pair
type Size struct {
	Width  float64
	Height float64
}

// IsEmpty returns true if either dimension is zero or negative
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Margins describes empty space around a rectangle
type Margins struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// Horizontal returns the sum of the left and right margins
func (m Margins) Horizontal() float64 {
	return m.Left + m.Right
}

// Vertical returns the sum of the top and bottom margins
func (m Margins) Vertical() float64 {
	return m.Top + m.Bottom
}

// Rect represents a rectangle with a top-left origin.
// The Y axis grows downward, matching screen coordinates.
type Rect struct {
	X      float64 // Left
	Y      float64 // Top
	Width  float64
	Height float64
}

// NewRect creates a rectangle from its top-left corner and size
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Left returns the left edge X coordinate
func (r Rect) Left() float64 {
	return r.X
}

// Right returns the right edge X coordinate
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Top returns the top edge Y coordinate
func (r Rect) Top() float64 {
	return r.Y
}

// Bottom returns the bottom edge Y coordinate
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Pos returns the top-left corner
func (r Rect) Pos() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the width and height
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Center returns the center point
func (r Rect) Center() Point {
	return Point{
		X: r.X + r.Width/2,
		Y: r.Y + r.Height/2,
	}
}

// Contains checks if a point is inside the rectangle.
// Points on the edges count as inside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left() && p.X <= r.Right() &&
		p.Y >= r.Top() && p.Y <= r.Bottom()
}

// Intersects checks if two rectangles intersect.
// Touching edges count as intersecting.
func (r Rect) Intersects(other Rect) bool {
	return !(r.Right() < other.Left() ||
		r.Left() > other.Right() ||
		r.Bottom() < other.Top() ||
		r.Top() > other.Bottom())
}

// Intersection returns the intersection of two rectangles
func (r Rect) Intersection(other Rect) Rect {
	if !r.Intersects(other) {
		return Rect{}
	}

	x := math.Max(r.Left(), other.Left())
	y := math.Max(r.Top(), other.Top())
	right := math.Min(r.Right(), other.Right())
	bottom := math.Min(r.Bottom(), other.Bottom())

	return Rect{
		X:      x,
		Y:      y,
		Width:  right - x,
		Height: bottom - y,
	}
}

// Union returns the union of two rectangles
func (r Rect) Union(other Rect) Rect {
	x := math.Min(r.Left(), other.Left())
	y := math.Min(r.Top(), other.Top())
	right := math.Max(r.Right(), other.Right())
	bottom := math.Max(r.Bottom(), other.Bottom())

	return Rect{
		X:      x,
		Y:      y,
		Width:  right - x,
		Height: bottom - y,
	}
}

// Translated returns the rectangle moved by dx, dy
func (r Rect) Translated(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Expanded returns the rectangle grown outward by the given margins
func (r Rect) Expanded(m Margins) Rect {
	return Rect{
		X:      r.X - m.Left,
		Y:      r.Y - m.Top,
		Width:  r.Width + m.Horizontal(),
		Height: r.Height + m.Vertical(),
	}
}

// Adjusted returns the rectangle grown outward by the given amount on
// all four sides. Negative amounts shrink the rectangle.
func (r Rect) Adjusted(amount float64) Rect {
	return Rect{
		X:      r.X - amount,
		Y:      r.Y - amount,
		Width:  r.Width + 2*amount,
		Height: r.Height + 2*amount,
	}
}

// DistanceTo returns the Euclidean distance from the point to the nearest
// edge or corner of the rectangle. Returns 0 for points inside.
func (r Rect) DistanceTo(p Point) float64 {
	dx := math.Max(0, math.Max(r.Left()-p.X, p.X-r.Right()))
	dy := math.Max(0, math.Max(r.Top()-p.Y, p.Y-r.Bottom()))
	return math.Sqrt(dx*dx + dy*dy)
}

// Area returns the area of the rectangle
func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// IsEmpty returns true if the rectangle has zero area
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// IsValid returns true if the rectangle has positive dimensions
func (r Rect) IsValid() bool {
	return r.Width > 0 && r.Height > 0
}
