package clip

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertPlaneInDelta(t *testing.T, want, got Plane[float64], delta float64) {
	t.Helper()
	assert.InDelta(t, want.A, got.A, delta, "A of %v", got)
	assert.InDelta(t, want.B, got.B, delta, "B of %v", got)
	assert.InDelta(t, want.C, got.C, delta, "C of %v", got)
	assert.InDelta(t, want.D, got.D, delta, "D of %v", got)
}

func TestTransformPlaneTranslation(t *testing.T) {
	got, err := TransformPlane(NewPlane(1.0, 0, 0, -1), mgl64.Translate3D(2, 0, 0))
	require.NoError(t, err)
	assertPlaneInDelta(t, NewPlane(1.0, 0, 0, -3), got, 1e-12)
}

func TestTransformPlaneRotation(t *testing.T) {
	got, err := TransformPlane(NewPlane(1.0, 0, 0, 0), RotationXYZ(0, 0, 90))
	require.NoError(t, err)
	assertPlaneInDelta(t, NewPlane(0.0, 1, 0, 0), got, 1e-12)
}

func TestTransformPlaneKeepsDistances(t *testing.T) {
	m := mgl64.Translate3D(1, -2, 0.5).Mul4(RotationXYZ(30, 45, 60))
	p := NewPlane(0.0, 0.6, 0.8, -1)

	got, err := TransformPlane(p, m)
	require.NoError(t, err)

	for _, q := range []vec{v(0, 0, 0), v(1, 2, 3), v(-4, 0.5, 2)} {
		moved := mgl64.TransformCoordinate(mgl64.Vec3{q.X, q.Y, q.Z}, m)
		assert.InDelta(t, p.Distance(q), got.Distance(v(moved[0], moved[1], moved[2])), 1e-12)
	}
}

func TestTransformPlaneErrors(t *testing.T) {
	_, err := TransformPlane(NewPlane(1.0, 0, 0, 0), mgl64.Scale3D(1, 0, 1))
	assert.ErrorIs(t, err, ErrSingularTransform)

	_, err = TransformPlane(NewPlane(0.0, 0, 0, 1), mgl64.Ident4())
	assert.ErrorIs(t, err, ErrDegeneratePlane)
}

func TestRotationXYZOrder(t *testing.T) {
	// X first: the Y axis goes to Z, then the Z rotation leaves it there
	m := RotationXYZ(90, 0, 90)
	got := mgl64.TransformCoordinate(mgl64.Vec3{0, 1, 0}, m)
	assert.True(t, got.ApproxEqualThreshold(mgl64.Vec3{0, 0, 1}, 1e-12), "got %v", got)

	// and the X axis goes to Y
	got = mgl64.TransformCoordinate(mgl64.Vec3{1, 0, 0}, m)
	assert.True(t, got.ApproxEqualThreshold(mgl64.Vec3{0, 1, 0}, 1e-12), "got %v", got)
}
