package clip

import "github.com/philipparndt/polyclip/pkg/geometry"

// Box is an axis-aligned box with Min <= Max on every axis
type Box[T Scalar] struct {
	Min, Max geometry.Vec3[T]
}

// NewBox creates a box from two opposite corners given in any order
func NewBox[T Scalar](x0, y0, z0, x1, y1, z1 T) Box[T] {
	return BoxFromCorners(geometry.V3(x0, y0, z0), geometry.V3(x1, y1, z1))
}

// BoxFromCorners creates a box spanning the two corners
func BoxFromCorners[T Scalar](a, b geometry.Vec3[T]) Box[T] {
	return Box[T]{Min: a.Min(b), Max: a.Max(b)}
}

// face is one half-space of a box in canonical axis form
type face[T Scalar] struct {
	axis      geometry.Axis
	threshold T
	above     bool
}

// faces returns the box half-spaces in clipping order: x-min, x-max,
// y-min, y-max, z-min, z-max.
func (b Box[T]) faces() [6]face[T] {
	var fs [6]face[T]
	for i, axis := range geometry.Axes {
		fs[2*i] = face[T]{axis: axis, threshold: b.Min.Component(axis), above: true}
		fs[2*i+1] = face[T]{axis: axis, threshold: b.Max.Component(axis), above: false}
	}
	return fs
}

// Faces returns the six planes bounding the box, each keeping the inside,
// in clipping order.
func (b Box[T]) Faces() [6]Plane[T] {
	var planes [6]Plane[T]
	for i, f := range b.faces() {
		// axes from faces() are always valid
		planes[i], _ = AxisPlane(f.axis, f.threshold, f.above)
	}
	return planes
}

// IsFinite reports whether both corners are finite
func (b Box[T]) IsFinite() bool {
	return b.Min.IsFinite() && b.Max.IsFinite()
}

// Contains reports whether p lies inside the box, boundary included
func (b Box[T]) Contains(p geometry.Vec3[T]) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}
