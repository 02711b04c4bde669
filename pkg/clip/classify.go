package clip

import "github.com/philipparndt/polyclip/pkg/geometry"

// classifier measures signed distances of vertices to a plane.
//
// Axis-aligned planes are measured in canonical form, coord - threshold,
// which is positive above the threshold whatever the sign of the plane's
// coefficient; the dispatcher accounts for the orientation. General planes
// use the full dot product.
type classifier[T Scalar] struct {
	plane   Plane[T]
	aligned bool

	// axis is the clip axis of an aligned plane, or the dominant normal
	// component of a general plane. Crossing points are snapped along it.
	axis      geometry.Axis
	threshold T
}

func axisClassifier[T Scalar](axis geometry.Axis, threshold T) classifier[T] {
	// -D/coef is -0 for planes through the origin such as x >= 0
	return classifier[T]{aligned: true, axis: axis, threshold: threshold + 0}
}

func generalClassifier[T Scalar](p Plane[T]) classifier[T] {
	ax, ay, az := abs(p.A), abs(p.B), abs(p.C)
	axis := geometry.AxisX
	switch {
	case ay > ax && ay >= az:
		axis = geometry.AxisY
	case az > ax && az > ay:
		axis = geometry.AxisZ
	}
	return classifier[T]{plane: p, axis: axis}
}

func (c *classifier[T]) distance(v geometry.Vec3[T]) T {
	if c.aligned {
		return v.Component(c.axis) - c.threshold
	}
	return c.plane.Distance(v)
}

// crossing returns the point where edge a→b meets the plane; da and db are
// the distances of its endpoints and lie on different sides. An endpoint on
// the plane is returned unchanged.
func (c *classifier[T]) crossing(a, b geometry.Vec3[T], da, db T) geometry.Vec3[T] {
	if da == 0 {
		return a
	}
	if db == 0 {
		return b
	}
	return c.snap(a.Lerp(b, da/(da-db)))
}

// snap moves p back onto the plane along the clip axis, removing the
// rounding error left by interpolation. Adding 0 turns a solved -0 into 0.
func (c *classifier[T]) snap(p geometry.Vec3[T]) geometry.Vec3[T] {
	if c.aligned {
		return p.WithComponent(c.axis, c.threshold)
	}
	n := c.plane
	switch c.axis {
	case geometry.AxisY:
		p.Y = -(n.A*p.X+n.C*p.Z+n.D)/n.B + 0
	case geometry.AxisZ:
		p.Z = -(n.A*p.X+n.B*p.Y+n.D)/n.C + 0
	default:
		p.X = -(n.B*p.Y+n.C*p.Z+n.D)/n.A + 0
	}
	return p
}

func abs[T Scalar](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
