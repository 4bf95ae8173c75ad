// Package model provides the geometric primitives shared by the layout
// engine, the spatial index and the drawing helpers.
//
// All coordinates are float64 values in an abstract pixel space with a
// top-left origin: X grows to the right, Y grows downward, matching the
// coordinate system of a viewer widget.
//
// # Types
//
//   - [Point] - 2D point with distance calculation
//   - [Size] - width/height pair
//   - [Rect] - rectangle with containment, intersection, union and
//     point-distance calculations
//   - [Margins] - per-side empty space around a rectangle
//
// # Conventions
//
// [Rect.Contains] treats points on the edges as inside, and
// [Rect.Intersects] treats touching rectangles as intersecting. The layout
// engine and the spatial index rely on both conventions.
package model
