package clip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLoopClassification(t *testing.T) {
	square := unitSquare()

	tests := []struct {
		name    string
		plane   Plane[float64]
		policy  Policy
		want    Side
		negLen  int
		posLen  int
		negLoop []vec
		posLoop []vec
	}{
		{
			name:    "spans",
			plane:   NewPlane(1.0, 0, 0, -0.5),
			want:    Spans,
			negLen:  4,
			posLen:  4,
			negLoop: []vec{v(0, 0, 0), v(0.5, 0, 0), v(0.5, 1, 0), v(0, 1, 0)},
			posLoop: []vec{v(0.5, 0, 0), v(1, 0, 0), v(1, 1, 0), v(0.5, 1, 0)},
		},
		{
			name:    "entirely non-negative",
			plane:   NewPlane(1.0, 0, 0, 1),
			want:    NonNegative,
			posLen:  4,
			posLoop: square,
		},
		{
			name:    "entirely negative",
			plane:   NewPlane(0.0, 1, 0, -2),
			want:    Negative,
			negLen:  4,
			negLoop: square,
		},
		{
			name:    "edge on plane, inclusive",
			plane:   NewPlane(1.0, 0, 0, -1),
			want:    Negative,
			negLen:  4,
			negLoop: square,
		},
		{
			name:    "edge on plane, exclusive",
			plane:   NewPlane(1.0, 0, 0, -1),
			policy:  Exclusive,
			want:    Negative,
			negLen:  4,
			negLoop: square,
		},
		{
			name:    "diagonal through two vertices",
			plane:   NewPlane(-1.0, 1, 0, 0),
			want:    Spans,
			negLen:  3,
			posLen:  3,
			negLoop: []vec{v(0, 0, 0), v(1, 0, 0), v(1, 1, 0)},
			posLoop: []vec{v(0, 0, 0), v(1, 1, 0), v(0, 1, 0)},
		},
		{
			name:    "diagonal through two vertices, exclusive",
			plane:   NewPlane(-1.0, 1, 0, 0),
			policy:  Exclusive,
			want:    Spans,
			negLen:  3,
			posLen:  3,
			negLoop: []vec{v(0, 0, 0), v(1, 0, 0), v(1, 1, 0)},
			posLoop: []vec{v(0, 0, 0), v(1, 1, 0), v(0, 1, 0)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			neg := NewLoopBuffer[float64](0)
			pos := NewLoopBuffer[float64](0)

			side, err := SplitLoopPolicy(square, tt.plane, tt.policy, neg, pos)
			require.NoError(t, err)
			assert.Equal(t, tt.want, side)
			require.Equal(t, tt.negLen, neg.Len(), "neg %v", neg.Vertices())
			require.Equal(t, tt.posLen, pos.Len(), "pos %v", pos.Vertices())
			requireSameLoop(t, tt.negLoop, neg.Vertices(), 1e-15)
			requireSameLoop(t, tt.posLoop, pos.Vertices(), 1e-15)
		})
	}
}

func TestSplitLoopCoplanarLoopFollowsPolicy(t *testing.T) {
	square := unitSquare()
	plane := NewPlane(0.0, 0, 1, 0) // z = 0 holds the whole square
	neg := NewLoopBuffer[float64](0)
	pos := NewLoopBuffer[float64](0)

	side, err := SplitLoopPolicy(square, plane, Inclusive, neg, pos)
	require.NoError(t, err)
	assert.Equal(t, NonNegative, side)
	assert.Equal(t, square, pos.Vertices())
	assert.Zero(t, neg.Len())

	side, err = SplitLoopPolicy(square, plane, Exclusive, neg, pos)
	require.NoError(t, err)
	assert.Equal(t, Negative, side)
	assert.Equal(t, square, neg.Vertices())
	assert.Zero(t, pos.Len())
}

func TestSplitLoopTouchingVertex(t *testing.T) {
	// the apex touches x=0 from the negative side
	tri := []vec{v(0, 0, 0), v(-1, 1, 0), v(-1, -1, 0)}

	for _, policy := range []Policy{Inclusive, Exclusive} {
		t.Run(policy.String(), func(t *testing.T) {
			neg := NewLoopBuffer[float64](0)
			pos := NewLoopBuffer[float64](0)

			side, err := SplitLoopPolicy(tri, NewPlane(1.0, 0, 0, 0), policy, neg, pos)
			require.NoError(t, err)
			assert.Equal(t, Negative, side)
			assert.Zero(t, pos.Len())
			requireSameLoop(t, tri, neg.Vertices(), 0)
		})
	}
}

func TestSplitLoopCollinearRunOnPlane(t *testing.T) {
	// three collinear vertices on y=0, the rest below
	loop := []vec{v(0, -1, 0), v(0, 0, 0), v(1, 0, 0), v(2, 0, 0), v(2, -1, 0)}
	plane := NewPlane(0.0, 1, 0, 0)

	t.Run("inclusive", func(t *testing.T) {
		neg := NewLoopBuffer[float64](0)
		pos := NewLoopBuffer[float64](0)

		side, err := SplitLoopPolicy(loop, plane, Inclusive, neg, pos)
		require.NoError(t, err)
		assert.Equal(t, Negative, side)
		assert.Zero(t, pos.Len(), "an on-plane run is no polygon on the positive side")
		// the run is entered and left through its end points only
		requireSameLoop(t, []vec{v(0, -1, 0), v(0, 0, 0), v(2, 0, 0), v(2, -1, 0)}, neg.Vertices(), 0)
		requireNoRepeats(t, neg.Vertices())
	})

	t.Run("exclusive", func(t *testing.T) {
		neg := NewLoopBuffer[float64](0)
		pos := NewLoopBuffer[float64](0)

		side, err := SplitLoopPolicy(loop, plane, Exclusive, neg, pos)
		require.NoError(t, err)
		assert.Equal(t, Negative, side)
		assert.Zero(t, pos.Len())
		assert.Equal(t, loop, neg.Vertices())
	})
}

func TestSplitLoopAreaConservation(t *testing.T) {
	hex := tiltedHexagon()
	planes := []Plane[float64]{
		NewPlane(0.3, 1, 0.2, -0.1),
		NewPlane(1.0, 0, 0, -0.5),
		NewPlane(0.0, -1, 0, 0.8),
		NewPlane(0.0, 0, 1, 0),
		NewPlane(1.0, 1, 1, 0),
	}
	neg := NewLoopBuffer[float64](0)
	pos := NewLoopBuffer[float64](0)

	for _, p := range planes {
		t.Run(p.String(), func(t *testing.T) {
			side, err := SplitLoop(hex, p, neg, pos)
			require.NoError(t, err)
			require.Equal(t, Spans, side)
			requireNoRepeats(t, neg.Vertices())
			requireNoRepeats(t, pos.Vertices())
			assert.InDelta(t, area(hex), area(neg.Vertices())+area(pos.Vertices()), 1e-12)
		})
	}
}

func TestSplitLoopThroughVertices(t *testing.T) {
	hex := []vec{
		v(1, 0, 0.5), v(0.5, 1, 0.25), v(-0.5, 1, -0.25),
		v(-1, 0, -0.5), v(-0.5, -1, -0.25), v(0.5, -1, 0.25),
	}
	neg := NewLoopBuffer[float64](0)
	pos := NewLoopBuffer[float64](0)

	// y=0 passes through the first and fourth vertex
	side, err := SplitLoop(hex, NewPlane(0.0, 1, 0, 0), neg, pos)
	require.NoError(t, err)
	require.Equal(t, Spans, side)
	requireSameLoop(t, []vec{hex[0], hex[3], hex[4], hex[5]}, neg.Vertices(), 0)
	requireSameLoop(t, hex[:4], pos.Vertices(), 0)
	assert.Equal(t, 4, neg.Len(), "neg %v", neg.Vertices())
	assert.Equal(t, 4, pos.Len(), "pos %v", pos.Vertices())
	requireNoRepeats(t, neg.Vertices())
	requireNoRepeats(t, pos.Vertices())
	assert.InDelta(t, area(hex), area(neg.Vertices())+area(pos.Vertices()), 1e-12)
}

func TestSplitLoopEmpty(t *testing.T) {
	neg := NewLoopBuffer[float64](0)
	pos := NewLoopBuffer[float64](0)

	side, err := SplitLoop(nil, NewPlane(1.0, 0, 0, 0), neg, pos)
	require.NoError(t, err)
	assert.Equal(t, Spans, side)
	assert.Zero(t, neg.Len())
	assert.Zero(t, pos.Len())
}

func TestSplitLoopErrors(t *testing.T) {
	square := unitSquare()
	buf := NewLoopBuffer[float64](0)
	other := NewLoopBuffer[float64](0)

	_, err := SplitLoop(square, NewPlane(0.0, 0, 0, 0), buf, other)
	assert.ErrorIs(t, err, ErrDegeneratePlane)

	_, err = SplitLoop(square, NewPlane(1.0, 0, 0, 0), nil, other)
	assert.ErrorIs(t, err, ErrNilBuffer)

	_, err = SplitLoop(square, NewPlane(1.0, 0, 0, 0), buf, buf)
	assert.ErrorIs(t, err, ErrAliasedBuffers)

	_, err = SplitLoopPolicy(square, NewPlane(1.0, 0, 0, 0), Policy(9), buf, other)
	assert.ErrorIs(t, err, ErrInvalidPolicy)

	_, err = SplitLoop(square[:1], NewPlane(1.0, 0, 0, 0), buf, other)
	assert.ErrorIs(t, err, ErrMalformedLoop)
}

func TestSplitter(t *testing.T) {
	s := NewSplitter[float64](Inclusive)

	neg, pos, side, err := s.Split(unitSquare(), NewPlane(0.0, 1, 0, -0.5))
	require.NoError(t, err)
	assert.Equal(t, Spans, side)
	assert.Len(t, neg, 4)
	assert.Len(t, pos, 4)
	assert.InDelta(t, 0.5, area(neg), 1e-15)
	assert.InDelta(t, 0.5, area(pos), 1e-15)

	_, _, _, err = s.Split(unitSquare(), NewPlane(0.0, 0, 0, 1))
	assert.ErrorIs(t, err, ErrDegeneratePlane)
}
