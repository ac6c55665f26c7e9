package pattern

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Stripe alternates between A and B on every unit of x
type Stripe struct {
	base
	A, B Pattern
}

// NewStripe creates a stripe pattern from two colors
func NewStripe(a, b core.Color, transform core.Matrix) (*Stripe, error) {
	return NewStripeOf(NewSolid(a), NewSolid(b), transform)
}

// NewStripeOf creates a stripe pattern alternating between two sub-patterns
func NewStripeOf(a, b Pattern, transform core.Matrix) (*Stripe, error) {
	bs, err := newBase(transform)
	if err != nil {
		return nil, err
	}
	return &Stripe{base: bs, A: a, B: b}, nil
}

func (s *Stripe) PatternAt(point core.Tuple) core.Color {
	if isEven(math.Floor(point.X)) {
		return ColorAt(s.A, point)
	}
	return ColorAt(s.B, point)
}

// isEven reports whether a floored coordinate is even, negative values included
func isEven(v float64) bool {
	return math.Mod(v, 2) == 0
}
