package geometry

// Triangle represents a triangular facet in 3D space
type Triangle struct {
	Normal     Vector3
	V1, V2, V3 Vector3
}

// NewTriangle creates a new triangle
func NewTriangle(normal, v1, v2, v3 Vector3) Triangle {
	return Triangle{
		Normal: normal,
		V1:     v1,
		V2:     v2,
		V3:     v3,
	}
}

// CalculateNormal computes the unit normal from the winding of the vertices
func (t Triangle) CalculateNormal() Vector3 {
	edge1 := t.V2.Sub(t.V1)
	edge2 := t.V3.Sub(t.V1)
	return edge1.Cross(edge2).Normalize()
}

// Area returns the surface area of the triangle
func (t Triangle) Area() float64 {
	edge1 := t.V2.Sub(t.V1)
	edge2 := t.V3.Sub(t.V1)
	return edge1.Cross(edge2).Length() / 2.0
}

// Center returns the centroid of the triangle
func (t Triangle) Center() Vector3 {
	return t.V1.Add(t.V2).Add(t.V3).Mul(1.0 / 3.0)
}

// Loop returns the vertices as a polygon loop, preserving winding
func (t Triangle) Loop() []Vector3 {
	return []Vector3{t.V1, t.V2, t.V3}
}

// IsDegenerate reports whether the triangle has (nearly) zero area
func (t Triangle) IsDegenerate() bool {
	return t.Area() <= Epsilon
}
