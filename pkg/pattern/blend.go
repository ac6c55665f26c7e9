package pattern

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Blend averages two sub-patterns evaluated at the same point
type Blend struct {
	base
	A, B Pattern
}

// NewBlend creates a blended pattern
func NewBlend(a, b Pattern, transform core.Matrix) (*Blend, error) {
	bs, err := newBase(transform)
	if err != nil {
		return nil, err
	}
	return &Blend{base: bs, A: a, B: b}, nil
}

func (b *Blend) PatternAt(point core.Tuple) core.Color {
	return ColorAt(b.A, point).Average(ColorAt(b.B, point))
}
