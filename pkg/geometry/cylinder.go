package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Cylinder is a radius-1 cylinder around the y axis, truncated to
// (Minimum, Maximum) and optionally capped
type Cylinder struct {
	Object
	profile
}

// NewCylinder creates a cylinder spanning minimum < y < maximum.
// Pass infinities for an untruncated cylinder.
func NewCylinder(minimum, maximum float64, closed bool, opts ...Option) (*Cylinder, error) {
	p, err := newProfile("cylinder", minimum, maximum, closed, false)
	if err != nil {
		return nil, err
	}
	o, err := newObject("cylinder", opts)
	if err != nil {
		return nil, err
	}
	return &Cylinder{Object: o, profile: p}, nil
}

// NewInfiniteCylinder creates an open cylinder with no truncation
func NewInfiniteCylinder(opts ...Option) (*Cylinder, error) {
	return NewCylinder(math.Inf(-1), math.Inf(1), false, opts...)
}

func (c *Cylinder) LocalIntersect(ray core.Ray) Intersections {
	return c.profile.intersect(c, ray)
}

func (c *Cylinder) LocalNormalAt(point core.Tuple) core.Tuple {
	return c.profile.normalAt(point)
}

func (c *Cylinder) Bounds() core.Bounds {
	return c.profile.bounds()
}
