package core

import (
	"fmt"
	"math"
)

// Tuple is a homogeneous coordinate: W=1 marks a point, W=0 a vector
type Tuple struct {
	X, Y, Z, W float64
}

// NewTuple creates a tuple from raw components
func NewTuple(x, y, z, w float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: w}
}

// Point creates a tuple with W=1
func Point(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1}
}

// Vector creates a tuple with W=0
func Vector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0}
}

// Origin is the point (0,0,0)
var Origin = Point(0, 0, 0)

// IsPoint reports whether the tuple is a point
func (t Tuple) IsPoint() bool {
	return FloatEqual(t.W, 1)
}

// IsVector reports whether the tuple is a vector
func (t Tuple) IsVector() bool {
	return FloatEqual(t.W, 0)
}

// Add returns the component-wise sum
func (t Tuple) Add(other Tuple) Tuple {
	return Tuple{t.X + other.X, t.Y + other.Y, t.Z + other.Z, t.W + other.W}
}

// Subtract returns the component-wise difference
func (t Tuple) Subtract(other Tuple) Tuple {
	return Tuple{t.X - other.X, t.Y - other.Y, t.Z - other.Z, t.W - other.W}
}

// Negate returns the tuple with every component negated
func (t Tuple) Negate() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

// Multiply returns the tuple scaled by a scalar
func (t Tuple) Multiply(scalar float64) Tuple {
	return Tuple{t.X * scalar, t.Y * scalar, t.Z * scalar, t.W * scalar}
}

// Divide returns the tuple divided by a scalar
func (t Tuple) Divide(scalar float64) Tuple {
	return Tuple{t.X / scalar, t.Y / scalar, t.Z / scalar, t.W / scalar}
}

// Magnitude returns the length of the tuple
func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z + t.W*t.W)
}

// Normalize returns a unit tuple in the same direction
func (t Tuple) Normalize() Tuple {
	m := t.Magnitude()
	if m == 0 {
		return t
	}
	return t.Divide(m)
}

// Dot returns the dot product of two tuples
func (t Tuple) Dot(other Tuple) float64 {
	return t.X*other.X + t.Y*other.Y + t.Z*other.Z + t.W*other.W
}

// Cross returns the cross product of two vectors.
// It panics when either operand is a point.
func (t Tuple) Cross(other Tuple) Tuple {
	if !t.IsVector() || !other.IsVector() {
		panic("core: cross product is only defined for vectors")
	}
	return Vector(
		t.Y*other.Z-t.Z*other.Y,
		t.Z*other.X-t.X*other.Z,
		t.X*other.Y-t.Y*other.X,
	)
}

// Reflect returns the vector reflected around normal
func (t Tuple) Reflect(normal Tuple) Tuple {
	return t.Subtract(normal.Multiply(2 * t.Dot(normal)))
}

// Equal compares two tuples component-wise within Epsilon
func (t Tuple) Equal(other Tuple) bool {
	return FloatEqual(t.X, other.X) &&
		FloatEqual(t.Y, other.Y) &&
		FloatEqual(t.Z, other.Z) &&
		FloatEqual(t.W, other.W)
}

func (t Tuple) String() string {
	if t.IsPoint() {
		return fmt.Sprintf("point(%g, %g, %g)", t.X, t.Y, t.Z)
	}
	if t.IsVector() {
		return fmt.Sprintf("vector(%g, %g, %g)", t.X, t.Y, t.Z)
	}
	return fmt.Sprintf("tuple(%g, %g, %g, %g)", t.X, t.Y, t.Z, t.W)
}
