package analysis

import (
	"fmt"

	"github.com/philipparndt/polyclip/pkg/geometry"
)

// LoopNormal returns the Newell normal of a loop. Its length is twice the
// polygon area and it points along the counter-clockwise winding.
func LoopNormal(loop []geometry.Vector3) geometry.Vector3 {
	var n geometry.Vector3
	for i, a := range loop {
		b := loop[(i+1)%len(loop)]
		n = n.Add(a.Cross(b))
	}
	return n
}

// LoopArea returns the area of a planar loop
func LoopArea(loop []geometry.Vector3) float64 {
	if len(loop) < 3 {
		return 0
	}
	return LoopNormal(loop).Length() / 2
}

// LoopCentroid returns the area-weighted centroid of a planar loop. Loops
// without area fall back to the vertex average.
func LoopCentroid(loop []geometry.Vector3) geometry.Vector3 {
	if len(loop) == 0 {
		return geometry.Vector3{}
	}
	normal := LoopNormal(loop)

	var sum geometry.Vector3
	var weight float64
	for i := 1; i+1 < len(loop); i++ {
		a, b, c := loop[0], loop[i], loop[i+1]
		w := b.Sub(a).Cross(c.Sub(a)).Dot(normal)
		sum = sum.Add(a.Add(b).Add(c).Mul(w / 3))
		weight += w
	}
	if weight <= geometry.Epsilon {
		var avg geometry.Vector3
		for _, p := range loop {
			avg = avg.Add(p)
		}
		return avg.Mul(1 / float64(len(loop)))
	}
	return sum.Mul(1 / weight)
}

// TotalArea sums the areas of all polygons
func TotalArea(polygons [][]geometry.Vector3) float64 {
	total := 0.0
	for _, p := range polygons {
		total += LoopArea(p)
	}
	return total
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
