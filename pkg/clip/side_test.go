package clip

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSideFlip(t *testing.T) {
	assert.Equal(t, NonNegative, Negative.Flip())
	assert.Equal(t, Negative, NonNegative.Flip())
	assert.Equal(t, Spans, Spans.Flip())

	for _, s := range []Side{Negative, Spans, NonNegative} {
		assert.Equal(t, s, s.Flip().Flip())
	}
}

func TestSideOf(t *testing.T) {
	tests := []struct {
		neg, pos int
		want     Side
	}{
		{3, 0, Negative},
		{0, 4, NonNegative},
		{3, 5, Spans},
		{0, 0, Spans},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sideOf(tt.neg, tt.pos), "neg=%d pos=%d", tt.neg, tt.pos)
		assert.Equal(t, tt.want.Flip(), sideOf(tt.pos, tt.neg), "swapped neg=%d pos=%d", tt.neg, tt.pos)
	}
}

func TestSideString(t *testing.T) {
	assert.Equal(t, "negative", Negative.String())
	assert.Equal(t, "spans", Spans.String())
	assert.Equal(t, "non-negative", NonNegative.String())
	assert.Equal(t, "Side(5)", Side(5).String())
}

func TestPolicy(t *testing.T) {
	assert.Equal(t, Exclusive, Inclusive.Flip())
	assert.Equal(t, Inclusive, Exclusive.Flip())
	assert.Equal(t, "inclusive", Inclusive.String())
	assert.Equal(t, "exclusive", Exclusive.String())
	assert.Equal(t, "Policy(9)", Policy(9).String())

	assert.True(t, positive(Inclusive, 0.0))
	assert.False(t, positive(Exclusive, 0.0))
	assert.True(t, positive(Exclusive, 1e-300))
	assert.False(t, positive(Inclusive, -1e-300))
}
