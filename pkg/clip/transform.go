package clip

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/philipparndt/polyclip/pkg/geometry"
)

// TransformPlane returns the plane that keeps the image under m of the
// half-space kept by p. Planes transform by the inverse transpose of the
// point transform.
func TransformPlane(p Plane[float64], m mgl64.Mat4) (Plane[float64], error) {
	if err := p.check(); err != nil {
		return Plane[float64]{}, err
	}
	if math.Abs(m.Det()) <= geometry.Epsilon {
		return Plane[float64]{}, ErrSingularTransform
	}
	v := m.Inv().Transpose().Mul4x1(mgl64.Vec4{p.A, p.B, p.C, p.D})
	return Plane[float64]{A: v[0], B: v[1], C: v[2], D: v[3]}, nil
}

// RotationXYZ returns the rotation applying rx, ry and rz (degrees) about the
// X, Y and Z axes, in that order.
func RotationXYZ(rx, ry, rz float64) mgl64.Mat4 {
	return mgl64.HomogRotate3DZ(mgl64.DegToRad(rz)).
		Mul4(mgl64.HomogRotate3DY(mgl64.DegToRad(ry))).
		Mul4(mgl64.HomogRotate3DX(mgl64.DegToRad(rx)))
}
