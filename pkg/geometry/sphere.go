package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Sphere is a unit sphere centered on the object-space origin
type Sphere struct {
	Object
}

// NewSphere creates a unit sphere
func NewSphere(opts ...Option) (*Sphere, error) {
	o, err := newObject("sphere", opts)
	if err != nil {
		return nil, err
	}
	return &Sphere{Object: o}, nil
}

// LocalIntersect solves |O + tD|² = 1 and returns the roots in ascending order
func (s *Sphere) LocalIntersect(ray core.Ray) Intersections {
	sphereToRay := ray.Origin.Subtract(core.Origin)

	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)
	return Intersections{{T: t1, Object: s}, {T: t2, Object: s}}
}

func (s *Sphere) LocalNormalAt(point core.Tuple) core.Tuple {
	return point.Subtract(core.Origin)
}

func (s *Sphere) Bounds() core.Bounds {
	return core.NewBounds(core.Point(-1, -1, -1), core.Point(1, 1, 1))
}
