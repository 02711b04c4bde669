package clip

import (
	"fmt"

	"github.com/philipparndt/polyclip/pkg/geometry"
)

// ClipLoopToBox clips loop to box, boundary included. The six faces are
// applied in the order x-min, x-max, y-min, y-max, z-min, z-max, alternating
// work and out as destination; the result ends up in out. As soon as one face
// leaves fewer than three vertices both buffers are emptied and the
// remaining faces are skipped.
func ClipLoopToBox[T Scalar](loop []geometry.Vec3[T], box Box[T], work, out *LoopBuffer[T]) (bool, error) {
	return clipToBox(loop, box, work, out, nil)
}

// clipToBox calls visit with the index of each face before it is applied
func clipToBox[T Scalar](loop []geometry.Vec3[T], box Box[T], work, out *LoopBuffer[T], visit func(int)) (bool, error) {
	if err := checkOutputs(loop, work, out); err != nil {
		return false, err
	}
	if err := checkLoop(loop); err != nil {
		return false, err
	}
	if !box.IsFinite() {
		return false, fmt.Errorf("%w: box %v-%v", ErrMalformedPlane, box.Min, box.Max)
	}

	src := loop
	dst, next := work, out
	for i, f := range box.faces() {
		if visit != nil {
			visit(i)
		}
		d := axisDispatcher(f.axis, f.threshold, f.above)
		ok, err := d.clip(src, dst)
		if err != nil {
			return false, fmt.Errorf("face %d: %w", i, err)
		}
		if !ok {
			work.Reset()
			out.Reset()
			return false, nil
		}
		src = dst.Vertices()
		dst, next = next, dst
	}
	return true, nil
}

// Clipper owns the scratch and output buffers of repeated clips
type Clipper[T Scalar] struct {
	work, out LoopBuffer[T]
}

// NewClipper creates a clipper with room for capacity vertices per buffer.
// A capacity outside [0, MaxInt32] leaves the buffers empty; they grow on
// first use.
func NewClipper[T Scalar](capacity int) *Clipper[T] {
	c := &Clipper[T]{}
	if capacity > 0 && capacity <= maxCapacity {
		c.work.grow(capacity)
		c.out.grow(capacity)
	}
	return c
}

// ClipToBox clips loop to box. The returned slice aliases the clipper's
// buffer and is valid until the next call.
func (c *Clipper[T]) ClipToBox(loop []geometry.Vec3[T], box Box[T]) ([]geometry.Vec3[T], bool, error) {
	ok, err := ClipLoopToBox(loop, box, &c.work, &c.out)
	if err != nil {
		return nil, false, err
	}
	return c.out.Vertices(), ok, nil
}

// Clip clips loop to the half-space kept by plane. The returned slice
// aliases the clipper's buffer and is valid until the next call.
func (c *Clipper[T]) Clip(loop []geometry.Vec3[T], plane Plane[T]) ([]geometry.Vec3[T], bool, error) {
	ok, err := ClipLoop(loop, plane, &c.out)
	if err != nil {
		return nil, false, err
	}
	return c.out.Vertices(), ok, nil
}
