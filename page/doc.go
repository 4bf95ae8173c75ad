// Package page defines the geometry contract between a layout and the
// pages it positions.
//
// # The Page Interface
//
// A [Page] exposes its natural size, rotation quadrant and per-axis scale,
// and computes its on-screen size from an effective rotation, a resolution
// and a zoom factor. It does not render anything; pixel content is the
// concern of whatever owns the page.
//
// The layout writes its results into the [Geometry] returned by
// [Page.Geometry]: the effective rotation, the computed width and height,
// and the position in layout coordinates. These fields are only defined
// after the layout has run an update.
//
// # The Base Implementation
//
// [Base] implements Page for the common case of a fixed natural size:
//
//	p := page.NewBase(595, 842) // A4 in points
//	p.Rotation = page.Rotate90
//
// Specialized page types embed Base and override ComputeSize or the zoom
// calculations when their size is not known up front.
//
// # Rotation
//
// [Rotation] counts quarter turns clockwise. Rotations of a page and its
// layout combine by addition; [Rotation.Normalized] reduces the sum to the
// four quadrants and [Rotation.Swapped] reports whether width and height
// trade places.
//
// # Normalized Coordinates
//
// [Geometry.ToNormalized] and [Geometry.FromNormalized] convert between
// layout coordinates and rotation-independent page coordinates in the
// range 0..1. Link areas (package link) are stored in this space, so a
// link keeps its place on the page regardless of zoom or rotation.
package page
