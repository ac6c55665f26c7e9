package pattern

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Checkers alternates between A and B in a 3D grid of unit cubes
type Checkers struct {
	base
	A, B Pattern
}

// NewCheckers creates a checkers pattern from two colors
func NewCheckers(a, b core.Color, transform core.Matrix) (*Checkers, error) {
	return NewCheckersOf(NewSolid(a), NewSolid(b), transform)
}

// NewCheckersOf creates a checkers pattern alternating between two sub-patterns
func NewCheckersOf(a, b Pattern, transform core.Matrix) (*Checkers, error) {
	bs, err := newBase(transform)
	if err != nil {
		return nil, err
	}
	return &Checkers{base: bs, A: a, B: b}, nil
}

func (c *Checkers) PatternAt(point core.Tuple) core.Color {
	sum := math.Floor(point.X) + math.Floor(point.Y) + math.Floor(point.Z)
	if isEven(sum) {
		return ColorAt(c.A, point)
	}
	return ColorAt(c.B, point)
}
