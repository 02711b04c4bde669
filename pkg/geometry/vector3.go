package geometry

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Scalar is the set of floating point types the geometry types are defined over
type Scalar interface {
	constraints.Float
}

// Vec3 represents a 3D point or vector
type Vec3[T Scalar] struct {
	X, Y, Z T
}

// Vector3 is the double precision vector used by the mesh packages
type Vector3 = Vec3[float64]

// NewVector3 creates a new 3D vector
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// V3 creates a vector of any scalar type
func V3[T Scalar](x, y, z T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vec3[T]) Add(other Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

// Sub returns the difference between two vectors
func (v Vec3[T]) Sub(other Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
	}
}

// Mul multiplies the vector by a scalar
func (v Vec3[T]) Mul(scalar T) Vec3[T] {
	return Vec3[T]{
		X: v.X * scalar,
		Y: v.Y * scalar,
		Z: v.Z * scalar,
	}
}

// Dot returns the dot product of two vectors
func (v Vec3[T]) Dot(other Vec3[T]) T {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vec3[T]) Cross(other Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Lerp interpolates from v towards other; t=0 yields v and t=1 yields other.
// Each component is computed as v + (other-v)*t.
func (v Vec3[T]) Lerp(other Vec3[T], t T) Vec3[T] {
	return Vec3[T]{
		X: v.X + (other.X-v.X)*t,
		Y: v.Y + (other.Y-v.Y)*t,
		Z: v.Z + (other.Z-v.Z)*t,
	}
}

// Length returns the magnitude of the vector
func (v Vec3[T]) Length() T {
	return T(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)))
}

// Distance returns the distance between two points
func (v Vec3[T]) Distance(other Vec3[T]) T {
	return v.Sub(other).Length()
}

// Normalize returns a unit vector in the same direction
func (v Vec3[T]) Normalize() Vec3[T] {
	length := v.Length()
	if length == 0 {
		return Vec3[T]{}
	}
	return v.Mul(1 / length)
}

// Min returns a vector with the minimum components of two vectors
func (v Vec3[T]) Min(other Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: min(v.X, other.X),
		Y: min(v.Y, other.Y),
		Z: min(v.Z, other.Z),
	}
}

// Max returns a vector with the maximum components of two vectors
func (v Vec3[T]) Max(other Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: max(v.X, other.X),
		Y: max(v.Y, other.Y),
		Z: max(v.Z, other.Z),
	}
}

// Component returns the coordinate along axis. Invalid axes yield 0.
func (v Vec3[T]) Component(axis Axis) T {
	switch axis {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	case AxisZ:
		return v.Z
	}
	return 0
}

// WithComponent returns a copy of v with the coordinate along axis replaced
func (v Vec3[T]) WithComponent(axis Axis, value T) Vec3[T] {
	switch axis {
	case AxisX:
		v.X = value
	case AxisY:
		v.Y = value
	case AxisZ:
		v.Z = value
	}
	return v
}

// IsFinite reports whether no component is NaN or infinite
func (v Vec3[T]) IsFinite() bool {
	return IsFinite(v.X) && IsFinite(v.Y) && IsFinite(v.Z)
}

// ApproxEqual reports whether every component of v is within eps of other
func (v Vec3[T]) ApproxEqual(other Vec3[T], eps T) bool {
	return ApproxEqual(v.X, other.X, eps) &&
		ApproxEqual(v.Y, other.Y, eps) &&
		ApproxEqual(v.Z, other.Z, eps)
}

// IsFinite reports whether x is neither NaN nor infinite
func IsFinite[T Scalar](x T) bool {
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
