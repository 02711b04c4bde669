package clip

import (
	"fmt"
	"math"

	"github.com/philipparndt/polyclip/pkg/geometry"
)

const (
	maxCapacity = math.MaxInt32
	minCapacity = 8
)

// LoopBuffer is a growable vertex container owned by the caller and reused
// across clip calls. Its capacity grows by roughly 1.5x and never shrinks.
// The zero value is an empty buffer ready for use.
type LoopBuffer[T Scalar] struct {
	data []geometry.Vec3[T]
	n    int
}

// NewLoopBuffer creates a buffer with room for capacity vertices
func NewLoopBuffer[T Scalar](capacity int) *LoopBuffer[T] {
	b := &LoopBuffer[T]{}
	if capacity > 0 && capacity <= maxCapacity {
		b.data = make([]geometry.Vec3[T], capacity)
	}
	return b
}

// Len returns the number of live vertices
func (b *LoopBuffer[T]) Len() int {
	return b.n
}

// Cap returns the number of vertices the buffer can hold without growing
func (b *LoopBuffer[T]) Cap() int {
	return len(b.data)
}

// Reserve makes room for at least n vertices without changing Len
func (b *LoopBuffer[T]) Reserve(n int) error {
	if n < 0 || n > maxCapacity {
		return fmt.Errorf("%w: reserve %d", ErrBufferCapacity, n)
	}
	if n > len(b.data) {
		b.grow(n)
	}
	return nil
}

// Resize sets Len to n. Vertices exposed by growing are zeroed.
func (b *LoopBuffer[T]) Resize(n int) error {
	if err := b.Reserve(n); err != nil {
		return err
	}
	clear(b.data[min(b.n, n):n])
	b.n = n
	return nil
}

// Reset empties the buffer, keeping its storage
func (b *LoopBuffer[T]) Reset() {
	b.n = 0
}

// Append adds v at the end, growing the storage when full
func (b *LoopBuffer[T]) Append(v geometry.Vec3[T]) {
	if b.n == len(b.data) {
		b.grow(b.n + 1)
	}
	b.data[b.n] = v
	b.n++
}

// At returns the vertex at index i; it panics when i is out of range
func (b *LoopBuffer[T]) At(i int) geometry.Vec3[T] {
	return b.data[:b.n][i]
}

// Set replaces the vertex at index i; it panics when i is out of range
func (b *LoopBuffer[T]) Set(i int, v geometry.Vec3[T]) {
	b.data[:b.n][i] = v
}

// Last returns the most recently appended vertex
func (b *LoopBuffer[T]) Last() (geometry.Vec3[T], bool) {
	if b.n == 0 {
		return geometry.Vec3[T]{}, false
	}
	return b.data[b.n-1], true
}

// Vertices returns the live vertices. The slice aliases the buffer and is
// only valid until the next call that mutates it.
func (b *LoopBuffer[T]) Vertices() []geometry.Vec3[T] {
	return b.data[:b.n:b.n]
}

// Clone returns a copy of the live vertices
func (b *LoopBuffer[T]) Clone() []geometry.Vec3[T] {
	out := make([]geometry.Vec3[T], b.n)
	copy(out, b.data[:b.n])
	return out
}

func (b *LoopBuffer[T]) grow(n int) {
	c := len(b.data) + len(b.data)/2
	if c < n {
		c = n
	}
	if c < minCapacity {
		c = minCapacity
	}
	data := make([]geometry.Vec3[T], c)
	copy(data, b.data[:b.n])
	b.data = data
}

// push appends v unless it equals the last vertex. A nil buffer ignores the call.
func (b *LoopBuffer[T]) push(v geometry.Vec3[T]) {
	if b == nil {
		return
	}
	if b.n > 0 && b.data[b.n-1] == v {
		return
	}
	b.Append(v)
}

// closeLoop drops a final vertex that repeats the first one
func (b *LoopBuffer[T]) closeLoop() {
	if b == nil || b.n < 2 {
		return
	}
	if b.data[b.n-1] == b.data[0] {
		b.n--
	}
}

// prepare empties b and reserves room for a clip of an n-vertex loop
func (b *LoopBuffer[T]) prepare(n int) error {
	if b == nil {
		return nil
	}
	b.n = 0
	return b.Reserve(n + n/2 + 1)
}

// aliases reports whether loop is a view of the storage of b, as returned by Vertices
func (b *LoopBuffer[T]) aliases(loop []geometry.Vec3[T]) bool {
	if b == nil || len(loop) == 0 || len(b.data) == 0 {
		return false
	}
	return &b.data[0] == &loop[0]
}
