package clip

import "github.com/philipparndt/polyclip/pkg/geometry"

// partition walks the edges of loop once, sending every vertex to neg or pos
// according to policy and inserting the plane crossing into both outputs on
// each edge that changes side. Either output may be nil when that side is
// not wanted.
//
// A vertex is never appended twice in a row to the same output, and a closing
// vertex equal to the first is dropped. Afterwards an output is emptied when
// it has fewer than three vertices, or when none of the input vertices lies
// strictly on its side while some lie strictly on the other.
func partition[T Scalar](loop []geometry.Vec3[T], c *classifier[T], policy Policy, neg, pos *LoopBuffer[T]) error {
	n := len(loop)
	if err := neg.prepare(n); err != nil {
		return err
	}
	if err := pos.prepare(n); err != nil {
		return err
	}
	if n == 0 {
		return nil
	}

	var strictNeg, strictPos bool

	a := loop[n-1]
	da := c.distance(a)
	aPos := positive(policy, da)

	for _, b := range loop {
		db := c.distance(b)
		bPos := positive(policy, db)

		if db < 0 {
			strictNeg = true
		} else if db > 0 {
			strictPos = true
		}

		if aPos != bPos {
			x := c.crossing(a, b, da, db)
			neg.push(x)
			pos.push(x)
		}
		if bPos {
			pos.push(b)
		} else {
			neg.push(b)
		}

		a, da, aPos = b, db, bPos
	}

	settle(neg, strictNeg, strictPos)
	settle(pos, strictPos, strictNeg)
	return nil
}

// settle closes an output loop and empties it when it is degenerate
func settle[T Scalar](b *LoopBuffer[T], own, other bool) {
	if b == nil {
		return
	}
	b.closeLoop()
	if b.n < 3 || (!own && other) {
		b.Reset()
	}
}
