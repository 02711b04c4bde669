package clip

import "errors"

var (
	// ErrDegeneratePlane is returned for a plane whose normal is zero
	ErrDegeneratePlane = errors.New("clip: degenerate plane has no half-space")
	// ErrMalformedPlane is returned for a plane, threshold or box with NaN or infinite values
	ErrMalformedPlane = errors.New("clip: plane is not finite")
	// ErrMalformedLoop is returned for loops with one or two vertices or with non-finite coordinates
	ErrMalformedLoop = errors.New("clip: malformed loop")
	// ErrNilBuffer is returned when a required output buffer is nil
	ErrNilBuffer = errors.New("clip: nil output buffer")
	// ErrAliasedBuffers is returned when an input or scratch buffer shares storage with an output
	ErrAliasedBuffers = errors.New("clip: buffers must not alias")
	// ErrBufferCapacity is returned when a buffer cannot be grown to the requested size
	ErrBufferCapacity = errors.New("clip: buffer capacity out of range")
	// ErrInvalidPolicy is returned for a boundary policy other than Inclusive or Exclusive
	ErrInvalidPolicy = errors.New("clip: invalid boundary policy")
	// ErrInvalidAxis is returned for an axis other than X, Y or Z
	ErrInvalidAxis = errors.New("clip: invalid axis")
	// ErrSingularTransform is returned when a plane transform cannot be inverted
	ErrSingularTransform = errors.New("clip: singular transform")
)
