package geometry

// Comparison tolerances for code outside the clipping hot path.
// The clip and split walks compare against exact zero.
const (
	Epsilon   = 1e-9
	Epsilon32 = 1e-5
)

// Tolerance returns the comparison epsilon suited to the precision of T
func Tolerance[T Scalar]() T {
	// float32 cannot resolve 1e-10 next to 1
	if T(1)+T(1e-10) == T(1) {
		return T(Epsilon32)
	}
	return T(Epsilon)
}

// ApproxEqual reports whether a and b differ by at most eps
func ApproxEqual[T Scalar](a, b, eps T) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}
