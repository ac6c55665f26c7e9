package pattern

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Ring alternates between A and B on concentric rings in the x-z plane
type Ring struct {
	base
	A, B Pattern
}

// NewRing creates a ring pattern from two colors
func NewRing(a, b core.Color, transform core.Matrix) (*Ring, error) {
	return NewRingOf(NewSolid(a), NewSolid(b), transform)
}

// NewRingOf creates a ring pattern alternating between two sub-patterns
func NewRingOf(a, b Pattern, transform core.Matrix) (*Ring, error) {
	bs, err := newBase(transform)
	if err != nil {
		return nil, err
	}
	return &Ring{base: bs, A: a, B: b}, nil
}

func (r *Ring) PatternAt(point core.Tuple) core.Color {
	distance := math.Sqrt(point.X*point.X + point.Z*point.Z)
	if isEven(math.Floor(distance)) {
		return ColorAt(r.A, point)
	}
	return ColorAt(r.B, point)
}
