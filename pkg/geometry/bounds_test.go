package geometry

import (
	"math"
	"testing"
)

func TestBoundingBoxExtend(t *testing.T) {
	bbox := NewBoundingBox()
	if !bbox.IsEmpty() {
		t.Errorf("new bounding box should be empty")
	}

	bbox.Extend(NewVector3(1, 2, 3))
	bbox.Extend(NewVector3(4, 5, 6))
	bbox.Extend(NewVector3(-1, 0, 2))

	expectedMin := NewVector3(-1, 0, 2)
	expectedMax := NewVector3(4, 5, 6)

	if bbox.Min != expectedMin {
		t.Errorf("Min failed: expected %v, got %v", expectedMin, bbox.Min)
	}
	if bbox.Max != expectedMax {
		t.Errorf("Max failed: expected %v, got %v", expectedMax, bbox.Max)
	}
	if bbox.IsEmpty() {
		t.Errorf("extended bounding box should not be empty")
	}
}

func TestBoundingBoxCenterAndSize(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.ExtendAll([]Vector3{NewVector3(0, 0, 0), NewVector3(10, 20, 30)})

	if size := bbox.Size(); size != NewVector3(10, 20, 30) {
		t.Errorf("Size failed: got %v", size)
	}
	if center := bbox.Center(); center != NewVector3(5, 10, 15) {
		t.Errorf("Center failed: got %v", center)
	}
}

func TestBoundingBoxVolume(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.Extend(NewVector3(0, 0, 0))
	bbox.Extend(NewVector3(2, 3, 4))

	volume := bbox.Volume()
	expected := 24.0 // 2 * 3 * 4 = 24

	if math.Abs(volume-expected) > 1e-10 {
		t.Errorf("Volume failed: expected %v, got %v", expected, volume)
	}
}

func TestBoundingBoxContains(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.Extend(NewVector3(0, 0, 0))
	bbox.Extend(NewVector3(1, 1, 1))

	if !bbox.Contains(NewVector3(1, 0.5, 0)) {
		t.Errorf("boundary point should be contained")
	}
	if bbox.Contains(NewVector3(1.0001, 0.5, 0)) {
		t.Errorf("outside point should not be contained")
	}
}
