package clip

import "github.com/philipparndt/polyclip/pkg/geometry"

// dispatcher selects the axis-aligned fast path or the general path for a
// plane. Axis planes whose coefficient is negative keep the region under the
// threshold; they are walked in canonical (above) form with the tie-break
// policy flipped, the outputs exchanged and the classification inverted, so
// callers always see results for the plane as given.
type dispatcher[T Scalar] struct {
	cls     classifier[T]
	flipped bool
}

func newDispatcher[T Scalar](p Plane[T]) (dispatcher[T], error) {
	if err := p.check(); err != nil {
		return dispatcher[T]{}, err
	}
	axis, ok := p.Axis()
	if !ok {
		return dispatcher[T]{cls: generalClassifier(p)}, nil
	}
	coef := p.Normal().Component(axis)
	return dispatcher[T]{
		cls:     axisClassifier(axis, -p.D/coef),
		flipped: coef < 0,
	}, nil
}

// axisDispatcher handles coord >= threshold (above) or coord <= threshold
func axisDispatcher[T Scalar](axis geometry.Axis, threshold T, above bool) dispatcher[T] {
	return dispatcher[T]{cls: axisClassifier(axis, threshold), flipped: !above}
}

func (d *dispatcher[T]) split(loop []geometry.Vec3[T], policy Policy, neg, pos *LoopBuffer[T]) (Side, error) {
	if !d.flipped {
		if err := partition(loop, &d.cls, policy, neg, pos); err != nil {
			return Spans, err
		}
		return sideOf(neg.Len(), pos.Len()), nil
	}

	// Canonical distances are negated plane distances: the caller's
	// non-negative side is the canonical negative one.
	if err := partition(loop, &d.cls, policy.Flip(), pos, neg); err != nil {
		return Spans, err
	}
	return sideOf(pos.Len(), neg.Len()).Flip(), nil
}

func (d *dispatcher[T]) clip(loop []geometry.Vec3[T], out *LoopBuffer[T]) (bool, error) {
	var err error
	if d.flipped {
		err = partition(loop, &d.cls, Exclusive, out, nil)
	} else {
		err = partition(loop, &d.cls, Inclusive, nil, out)
	}
	if err != nil {
		return false, err
	}
	return out.Len() >= 3, nil
}
