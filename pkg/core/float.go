package core

import "math"

// Epsilon is the tolerance shared by float comparisons, the surface bias of
// over/under points and every near-zero test in the kernel.
const Epsilon = 0.00001

// FloatEqual reports whether a and b differ by at most Epsilon
func FloatEqual(a, b float64) bool {
	return FloatEqualTolerance(a, b, Epsilon)
}

// FloatEqualTolerance reports whether a and b differ by at most tolerance
func FloatEqualTolerance(a, b, tolerance float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= tolerance
}

// IsNearZero reports whether v is within Epsilon of zero
func IsNearZero(v float64) bool {
	return math.Abs(v) < Epsilon
}
