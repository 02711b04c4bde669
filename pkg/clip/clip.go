package clip

import (
	"fmt"

	"github.com/philipparndt/polyclip/pkg/geometry"
)

// ClipLoop clips loop to the half-space kept by plane and stores the result
// in out, which is reset first. Vertices on the plane are kept. It reports
// whether the result has at least three vertices; otherwise out is empty.
func ClipLoop[T Scalar](loop []geometry.Vec3[T], plane Plane[T], out *LoopBuffer[T]) (bool, error) {
	if err := checkOutputs(loop, out); err != nil {
		return false, err
	}
	if err := checkLoop(loop); err != nil {
		return false, err
	}
	d, err := newDispatcher(plane)
	if err != nil {
		return false, err
	}
	return d.clip(loop, out)
}

// ClipLoopAxis clips loop to coord >= threshold when above is true, or to
// coord <= threshold otherwise.
func ClipLoopAxis[T Scalar](loop []geometry.Vec3[T], axis geometry.Axis, threshold T, above bool, out *LoopBuffer[T]) (bool, error) {
	if !axis.Valid() {
		return false, fmt.Errorf("%w: %v", ErrInvalidAxis, axis)
	}
	if !geometry.IsFinite(threshold) {
		return false, fmt.Errorf("%w: threshold %v", ErrMalformedPlane, threshold)
	}
	if err := checkOutputs(loop, out); err != nil {
		return false, err
	}
	if err := checkLoop(loop); err != nil {
		return false, err
	}
	d := axisDispatcher(axis, threshold, above)
	return d.clip(loop, out)
}

// checkLoop rejects loops that cannot describe a polygon. An empty loop is
// valid and clips to nothing.
func checkLoop[T Scalar](loop []geometry.Vec3[T]) error {
	if n := len(loop); n > 0 && n < 3 {
		return fmt.Errorf("%w: %d vertices", ErrMalformedLoop, n)
	}
	for i, v := range loop {
		if !v.IsFinite() {
			return fmt.Errorf("%w: vertex %d is not finite", ErrMalformedLoop, i)
		}
	}
	return nil
}

// checkOutputs requires distinct, non-nil outputs that do not hold loop
func checkOutputs[T Scalar](loop []geometry.Vec3[T], outs ...*LoopBuffer[T]) error {
	for i, out := range outs {
		if out == nil {
			return ErrNilBuffer
		}
		if out.aliases(loop) {
			return fmt.Errorf("%w: input loop is stored in an output buffer", ErrAliasedBuffers)
		}
		for _, other := range outs[:i] {
			if other == out {
				return fmt.Errorf("%w: the same buffer was passed twice", ErrAliasedBuffers)
			}
		}
	}
	return nil
}
