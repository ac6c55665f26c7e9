package pattern

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Solid is a constant color
type Solid struct {
	base
	Color core.Color
}

// NewSolid creates a solid pattern with an identity transform
func NewSolid(color core.Color) *Solid {
	return &Solid{
		base:  base{transform: core.Identity4(), inverse: core.Identity4()},
		Color: color,
	}
}

func (s *Solid) PatternAt(point core.Tuple) core.Color {
	return s.Color
}
