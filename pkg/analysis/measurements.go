package analysis

import (
	"math"

	"github.com/philipparndt/polyclip/pkg/geometry"
	"github.com/philipparndt/polyclip/pkg/stl"
)

// MeasurementResult contains various measurements of an STL model
type MeasurementResult struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	Volume        float64
	SurfaceArea   float64
	TriangleCount int
	Degenerate    int
	EdgeCount     int
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
}

// AnalyzeModel computes the statistics printed by the info command
func AnalyzeModel(model *stl.Model) *MeasurementResult {
	result := &MeasurementResult{
		BoundingBox:   model.BoundingBox(),
		SurfaceArea:   model.SurfaceArea(),
		TriangleCount: model.TriangleCount(),
		Volume:        model.Volume(),
	}
	if result.TriangleCount == 0 {
		return result
	}

	result.Dimensions = result.BoundingBox.Size()

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for _, triangle := range model.Triangles {
		if triangle.IsDegenerate() {
			result.Degenerate++
		}
		for _, edge := range [3][2]geometry.Vector3{
			{triangle.V1, triangle.V2},
			{triangle.V2, triangle.V3},
			{triangle.V3, triangle.V1},
		} {
			length := edge[0].Distance(edge[1])
			totalLength += length
			minLength = min(minLength, length)
			maxLength = max(maxLength, length)
		}
	}

	result.EdgeCount = 3 * result.TriangleCount
	result.MinEdgeLength = minLength
	result.MaxEdgeLength = maxLength
	result.AvgEdgeLength = totalLength / float64(result.EdgeCount)

	return result
}
