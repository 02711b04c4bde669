package analysis

import (
	"fmt"
	"slices"

	"github.com/philipparndt/polyclip/pkg/clip"
	"github.com/philipparndt/polyclip/pkg/geometry"
	"github.com/philipparndt/polyclip/pkg/stl"
)

// Result describes the polygons one side of a clip or split produced
type Result struct {
	Polygons [][]geometry.Vector3
	Area     float64

	// Input is the number of facets processed
	Input     int
	// Kept counts facets with a non-empty result, Cut those among them that changed
	Kept, Cut int
}

// Dropped returns the number of facets that produced nothing
func (r *Result) Dropped() int {
	return r.Input - r.Kept
}

// Centroid returns the area-weighted centroid of the kept polygons
func (r *Result) Centroid() geometry.Vector3 {
	total := TotalArea(r.Polygons)
	if total <= geometry.Epsilon {
		return geometry.Vector3{}
	}
	var sum geometry.Vector3
	for _, p := range r.Polygons {
		sum = sum.Add(LoopCentroid(p).Mul(LoopArea(p)))
	}
	return sum.Mul(1 / total)
}

func (r *Result) add(loop, out []geometry.Vector3) {
	if len(out) == 0 {
		return
	}
	r.Kept++
	if !slices.Equal(loop, out) {
		r.Cut++
	}
	r.Polygons = append(r.Polygons, slices.Clone(out))
	r.Area += LoopArea(out)
}

// SplitResult holds both halves of a model split
type SplitResult struct {
	Negative, Positive Result

	// Spanning counts facets the plane cut in two
	Spanning int
}

type clipFunc func(loop []geometry.Vector3) ([]geometry.Vector3, bool, error)

func clipModel(model *stl.Model, fn clipFunc) (*Result, error) {
	result := &Result{Input: model.TriangleCount()}
	for i, loop := range model.Loops() {
		out, ok, err := fn(loop)
		if err != nil {
			return nil, fmt.Errorf("triangle %d: %w", i, err)
		}
		if ok {
			result.add(loop, out)
		}
	}
	return result, nil
}

// ClipModel keeps the part of every facet in the half-space of plane
func ClipModel(model *stl.Model, plane clip.Plane[float64]) (*Result, error) {
	c := clip.NewClipper[float64](8)
	return clipModel(model, func(loop []geometry.Vector3) ([]geometry.Vector3, bool, error) {
		return c.Clip(loop, plane)
	})
}

// ClipModelToBox keeps the part of every facet inside box
func ClipModelToBox(model *stl.Model, box clip.Box[float64]) (*Result, error) {
	c := clip.NewClipper[float64](8)
	return clipModel(model, func(loop []geometry.Vector3) ([]geometry.Vector3, bool, error) {
		return c.ClipToBox(loop, box)
	})
}

// SplitModel divides every facet by plane
func SplitModel(model *stl.Model, plane clip.Plane[float64], policy clip.Policy) (*SplitResult, error) {
	s := clip.NewSplitter[float64](policy)
	result := &SplitResult{}
	result.Negative.Input = model.TriangleCount()
	result.Positive.Input = model.TriangleCount()

	for i, loop := range model.Loops() {
		neg, pos, side, err := s.Split(loop, plane)
		if err != nil {
			return nil, fmt.Errorf("triangle %d: %w", i, err)
		}
		if side == clip.Spans && len(neg) > 0 && len(pos) > 0 {
			result.Spanning++
		}
		result.Negative.add(loop, neg)
		result.Positive.add(loop, pos)
	}
	return result, nil
}
