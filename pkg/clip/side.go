package clip

import "fmt"

// Side classifies a loop against a plane
type Side int8

const (
	// Negative means the loop lies entirely in the negative half-space
	Negative Side = -1
	// Spans means the plane cuts the loop
	Spans Side = 0
	// NonNegative means the loop lies entirely in the kept half-space
	NonNegative Side = 1
)

// Flip returns the classification relative to the negated plane
func (s Side) Flip() Side {
	return -s
}

func (s Side) String() string {
	switch s {
	case Negative:
		return "negative"
	case Spans:
		return "spans"
	case NonNegative:
		return "non-negative"
	}
	return fmt.Sprintf("Side(%d)", int8(s))
}

// sideOf derives the classification from which outputs ended non-empty
func sideOf(negCount, posCount int) Side {
	switch {
	case negCount > 0 && posCount == 0:
		return Negative
	case posCount > 0 && negCount == 0:
		return NonNegative
	}
	return Spans
}

// Policy decides which side a vertex lying exactly on the plane belongs to
type Policy uint8

const (
	// Inclusive credits on-plane vertices to the non-negative side
	Inclusive Policy = iota
	// Exclusive credits on-plane vertices to the negative side
	Exclusive
)

// Flip returns the policy that keeps the same vertices when the plane is negated
func (p Policy) Flip() Policy {
	if p == Inclusive {
		return Exclusive
	}
	return Inclusive
}

func (p Policy) String() string {
	switch p {
	case Inclusive:
		return "inclusive"
	case Exclusive:
		return "exclusive"
	}
	return fmt.Sprintf("Policy(%d)", uint8(p))
}

// positive reports whether a vertex at signed distance d belongs to the non-negative side
func positive[T Scalar](p Policy, d T) bool {
	if p == Exclusive {
		return d > 0
	}
	return d >= 0
}
