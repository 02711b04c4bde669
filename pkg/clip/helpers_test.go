package clip

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/philipparndt/polyclip/pkg/geometry"
)

type vec = geometry.Vector3

func v(x, y, z float64) vec { return geometry.NewVector3(x, y, z) }

func unitSquare() []vec {
	return []vec{v(0, 0, 0), v(1, 0, 0), v(1, 1, 0), v(0, 1, 0)}
}

// tiltedHexagon is a convex hexagon lying in the plane z = 0.5x
func tiltedHexagon() []vec {
	loop := make([]vec, 6)
	for i := range loop {
		a := float64(i) * math.Pi / 3
		loop[i] = v(math.Cos(a), math.Sin(a), 0.5*math.Cos(a))
	}
	return loop
}

// area computes the polygon area with Newell's method
func area(loop []vec) float64 {
	var n vec
	for i, a := range loop {
		n = n.Add(a.Cross(loop[(i+1)%len(loop)]))
	}
	return n.Length() / 2
}

// requireSameLoop compares two loops vertex by vertex, allowing the start
// index of got to differ.
func requireSameLoop(t *testing.T, want, got []vec, delta float64) {
	t.Helper()
	require.Len(t, got, len(want), "got %v", got)
	if len(want) == 0 {
		return
	}
	start := -1
	for i, g := range got {
		if g.ApproxEqual(want[0], delta) {
			start = i
			break
		}
	}
	require.NotEqual(t, -1, start, "first vertex %v missing from %v", want[0], got)
	for i, w := range want {
		g := got[(start+i)%len(got)]
		require.True(t, g.ApproxEqual(w, delta), "vertex %d: want %v, got %v (loop %v)", i, w, g, got)
	}
}

// requireNoRepeats checks that no two cyclically consecutive vertices are equal
func requireNoRepeats(t *testing.T, loop []vec) {
	t.Helper()
	for i, a := range loop {
		b := loop[(i+1)%len(loop)]
		require.NotEqual(t, a, b, "repeated vertex at %d in %v", i, loop)
	}
}
