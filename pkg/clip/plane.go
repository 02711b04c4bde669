package clip

import (
	"fmt"

	"github.com/philipparndt/polyclip/pkg/geometry"
)

// Scalar is the set of floating point types loops can be built from
type Scalar = geometry.Scalar

// Plane keeps the half-space A·x + B·y + C·z + D >= 0
type Plane[T Scalar] struct {
	A, B, C, D T
}

// NewPlane creates a plane from its coefficients
func NewPlane[T Scalar](a, b, c, d T) Plane[T] {
	return Plane[T]{A: a, B: b, C: c, D: d}
}

// AxisPlane creates the plane coord >= threshold when above is true and
// coord <= threshold otherwise.
func AxisPlane[T Scalar](axis geometry.Axis, threshold T, above bool) (Plane[T], error) {
	if !axis.Valid() {
		return Plane[T]{}, fmt.Errorf("%w: %v", ErrInvalidAxis, axis)
	}
	var sign T = 1
	if !above {
		sign = -1
	}
	normal := geometry.Vec3[T]{}.WithComponent(axis, sign)
	return Plane[T]{A: normal.X, B: normal.Y, C: normal.Z, D: -sign * threshold}, nil
}

// PlaneFromPointNormal creates the plane through p whose kept side faces n
func PlaneFromPointNormal[T Scalar](p, n geometry.Vec3[T]) Plane[T] {
	return Plane[T]{A: n.X, B: n.Y, C: n.Z, D: -n.Dot(p)}
}

// PlaneFromPoints creates the plane through a, b and c. The kept side is the
// one the counter-clockwise winding a→b→c faces. Collinear points return
// ErrDegeneratePlane.
func PlaneFromPoints[T Scalar](a, b, c geometry.Vec3[T]) (Plane[T], error) {
	n := b.Sub(a).Cross(c.Sub(a))
	if n.Length() <= geometry.Tolerance[T]() {
		return Plane[T]{}, ErrDegeneratePlane
	}
	return PlaneFromPointNormal(a, n.Normalize()), nil
}

// Normal returns the (unnormalized) plane normal
func (p Plane[T]) Normal() geometry.Vec3[T] {
	return geometry.Vec3[T]{X: p.A, Y: p.B, Z: p.C}
}

// Distance returns the signed distance of v scaled by the normal length
func (p Plane[T]) Distance(v geometry.Vec3[T]) T {
	return p.A*v.X + p.B*v.Y + p.C*v.Z + p.D
}

// Negate returns the plane keeping the opposite half-space
func (p Plane[T]) Negate() Plane[T] {
	return Plane[T]{A: -p.A, B: -p.B, C: -p.C, D: -p.D}
}

// IsDegenerate reports whether the normal is zero
func (p Plane[T]) IsDegenerate() bool {
	return p.A == 0 && p.B == 0 && p.C == 0
}

// IsFinite reports whether no coefficient is NaN or infinite
func (p Plane[T]) IsFinite() bool {
	return geometry.IsFinite(p.A) && geometry.IsFinite(p.B) &&
		geometry.IsFinite(p.C) && geometry.IsFinite(p.D)
}

// check rejects planes that cannot bound a half-space
func (p Plane[T]) check() error {
	if !p.IsFinite() {
		return fmt.Errorf("%w: %v", ErrMalformedPlane, p)
	}
	if p.IsDegenerate() {
		return ErrDegeneratePlane
	}
	return nil
}

// Axis reports the axis of an axis-aligned plane, one whose normal has
// exactly one nonzero component.
func (p Plane[T]) Axis() (geometry.Axis, bool) {
	switch {
	case p.A != 0 && p.B == 0 && p.C == 0:
		return geometry.AxisX, true
	case p.A == 0 && p.B != 0 && p.C == 0:
		return geometry.AxisY, true
	case p.A == 0 && p.B == 0 && p.C != 0:
		return geometry.AxisZ, true
	}
	return 0, false
}

func (p Plane[T]) String() string {
	return fmt.Sprintf("%gx%+gy%+gz%+g>=0", float64(p.A), float64(p.B), float64(p.C), float64(p.D))
}
