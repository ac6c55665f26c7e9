package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Plane is the infinite xz plane through the object-space origin
type Plane struct {
	Object
}

// NewPlane creates an xz plane
func NewPlane(opts ...Option) (*Plane, error) {
	o, err := newObject("plane", opts)
	if err != nil {
		return nil, err
	}
	return &Plane{Object: o}, nil
}

func (p *Plane) LocalIntersect(ray core.Ray) Intersections {
	if math.Abs(ray.Direction.Y) < core.Epsilon {
		return nil
	}
	t := -ray.Origin.Y / ray.Direction.Y
	return Intersections{{T: t, Object: p}}
}

func (p *Plane) LocalNormalAt(point core.Tuple) core.Tuple {
	return core.Vector(0, 1, 0)
}

func (p *Plane) Bounds() core.Bounds {
	inf := math.Inf(1)
	return core.NewBounds(core.Point(-inf, 0, -inf), core.Point(inf, 0, inf))
}
