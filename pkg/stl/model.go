package stl

import (
	"math"

	"github.com/philipparndt/polyclip/pkg/geometry"
)

// Model represents a complete STL model
type Model struct {
	Name      string
	Triangles []geometry.Triangle
}

// NewModel creates a new STL model
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// AddTriangle adds a triangle to the model
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// Loops returns every facet as a three-vertex loop in file winding order
func (m *Model) Loops() [][]geometry.Vector3 {
	loops := make([][]geometry.Vector3, len(m.Triangles))
	for i, triangle := range m.Triangles {
		loops[i] = triangle.Loop()
	}
	return loops
}

// BoundingBox calculates the bounding box of the entire model
func (m *Model) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, triangle := range m.Triangles {
		bbox.Extend(triangle.V1)
		bbox.Extend(triangle.V2)
		bbox.Extend(triangle.V3)
	}
	return bbox
}

// SurfaceArea calculates the total surface area of the model
func (m *Model) SurfaceArea() float64 {
	totalArea := 0.0
	for _, triangle := range m.Triangles {
		totalArea += triangle.Area()
	}
	return totalArea
}

// Volume calculates the enclosed volume with the signed tetrahedron method.
// The result is only meaningful for closed, consistently wound meshes.
func (m *Model) Volume() float64 {
	volume := 0.0
	for _, triangle := range m.Triangles {
		volume += triangle.V1.Dot(triangle.V2.Cross(triangle.V3))
	}
	return math.Abs(volume / 6.0)
}
