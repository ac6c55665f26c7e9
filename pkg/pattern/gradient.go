package pattern

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Gradient blends linearly from A to B over each unit of x
type Gradient struct {
	base
	A, B core.Color
}

// NewGradient creates a linear gradient pattern
func NewGradient(a, b core.Color, transform core.Matrix) (*Gradient, error) {
	bs, err := newBase(transform)
	if err != nil {
		return nil, err
	}
	return &Gradient{base: bs, A: a, B: b}, nil
}

func (g *Gradient) PatternAt(point core.Tuple) core.Color {
	fraction := point.X - math.Floor(point.X)
	return lerp(g.A, g.B, fraction)
}

// RadialGradient blends from A to B over each unit of distance from the y axis
type RadialGradient struct {
	base
	A, B core.Color
}

// NewRadialGradient creates a radial gradient pattern
func NewRadialGradient(a, b core.Color, transform core.Matrix) (*RadialGradient, error) {
	bs, err := newBase(transform)
	if err != nil {
		return nil, err
	}
	return &RadialGradient{base: bs, A: a, B: b}, nil
}

func (g *RadialGradient) PatternAt(point core.Tuple) core.Color {
	distance := math.Sqrt(point.X*point.X + point.Z*point.Z)
	return lerp(g.A, g.B, distance-math.Floor(distance))
}

func lerp(a, b core.Color, t float64) core.Color {
	return a.Add(b.Subtract(a).Multiply(t))
}
