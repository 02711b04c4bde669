package clip

import (
	"fmt"

	"github.com/philipparndt/polyclip/pkg/geometry"
)

// SplitLoop divides loop by plane into the part in the negative half-space
// (neg) and the part in the kept half-space (pos). Vertices on the plane are
// credited to pos. Both buffers are reset first.
func SplitLoop[T Scalar](loop []geometry.Vec3[T], plane Plane[T], neg, pos *LoopBuffer[T]) (Side, error) {
	return SplitLoopPolicy(loop, plane, Inclusive, neg, pos)
}

// SplitLoopPolicy is SplitLoop with an explicit boundary policy.
//
// The crossing point of every edge that changes side is appended to both
// outputs. The result is Negative when only neg is non-empty, NonNegative
// when only pos is, and Spans otherwise.
func SplitLoopPolicy[T Scalar](loop []geometry.Vec3[T], plane Plane[T], policy Policy, neg, pos *LoopBuffer[T]) (Side, error) {
	if policy != Inclusive && policy != Exclusive {
		return Spans, fmt.Errorf("%w: %v", ErrInvalidPolicy, policy)
	}
	if err := checkOutputs(loop, neg, pos); err != nil {
		return Spans, err
	}
	if err := checkLoop(loop); err != nil {
		return Spans, err
	}
	d, err := newDispatcher(plane)
	if err != nil {
		return Spans, err
	}
	return d.split(loop, policy, neg, pos)
}

// Splitter owns the two output buffers of repeated splits
type Splitter[T Scalar] struct {
	Policy Policy

	neg, pos LoopBuffer[T]
}

// NewSplitter creates a splitter using the given boundary policy
func NewSplitter[T Scalar](policy Policy) *Splitter[T] {
	return &Splitter[T]{Policy: policy}
}

// Split divides loop by plane. The returned slices alias the splitter's
// buffers and are valid until the next call.
func (s *Splitter[T]) Split(loop []geometry.Vec3[T], plane Plane[T]) (neg, pos []geometry.Vec3[T], side Side, err error) {
	side, err = SplitLoopPolicy(loop, plane, s.Policy, &s.neg, &s.pos)
	if err != nil {
		return nil, nil, side, err
	}
	return s.neg.Vertices(), s.pos.Vertices(), side, nil
}
