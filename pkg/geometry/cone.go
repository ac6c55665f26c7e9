package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Cone is a double-napped cone around the y axis whose radius at height y
// is |y|, truncated to (Minimum, Maximum) and optionally capped
type Cone struct {
	Object
	profile
}

// NewCone creates a cone spanning minimum < y < maximum
func NewCone(minimum, maximum float64, closed bool, opts ...Option) (*Cone, error) {
	p, err := newProfile("cone", minimum, maximum, closed, true)
	if err != nil {
		return nil, err
	}
	o, err := newObject("cone", opts)
	if err != nil {
		return nil, err
	}
	return &Cone{Object: o, profile: p}, nil
}

// NewInfiniteCone creates an open double cone with no truncation
func NewInfiniteCone(opts ...Option) (*Cone, error) {
	return NewCone(math.Inf(-1), math.Inf(1), false, opts...)
}

func (c *Cone) LocalIntersect(ray core.Ray) Intersections {
	return c.profile.intersect(c, ray)
}

func (c *Cone) LocalNormalAt(point core.Tuple) core.Tuple {
	return c.profile.normalAt(point)
}

func (c *Cone) Bounds() core.Bounds {
	return c.profile.bounds()
}
