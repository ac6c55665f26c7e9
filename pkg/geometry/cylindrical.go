package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ErrInvalidRange is returned when a cylinder or cone is built with minimum >= maximum
var ErrInvalidRange = errors.New("minimum must be less than maximum")

// profile holds the y-range truncation shared by cylinders and cones. The
// two shapes differ only in their wall coefficients and cap radius.
type profile struct {
	Minimum float64
	Maximum float64
	Closed  bool
	cone    bool
}

func newProfile(kind string, minimum, maximum float64, closed, cone bool) (profile, error) {
	if !(minimum < maximum) {
		return profile{}, fmt.Errorf("%s [%g, %g]: %w", kind, minimum, maximum, ErrInvalidRange)
	}
	return profile{Minimum: minimum, Maximum: maximum, Closed: closed, cone: cone}, nil
}

func (p profile) coefficients(ray core.Ray) (a, b, c float64) {
	o, d := ray.Origin, ray.Direction
	if p.cone {
		a = d.X*d.X - d.Y*d.Y + d.Z*d.Z
		b = 2*o.X*d.X - 2*o.Y*d.Y + 2*o.Z*d.Z
		c = o.X*o.X - o.Y*o.Y + o.Z*o.Z
		return a, b, c
	}
	a = d.X*d.X + d.Z*d.Z
	b = 2*o.X*d.X + 2*o.Z*d.Z
	c = o.X*o.X + o.Z*o.Z - 1
	return a, b, c
}

// capRadius is the radius of the cap disk at height y
func (p profile) capRadius(y float64) float64 {
	if p.cone {
		return math.Abs(y)
	}
	return 1
}

func (p profile) intersect(s Shape, ray core.Ray) Intersections {
	var xs Intersections
	xs = p.intersectWalls(s, ray, xs)
	xs = p.intersectCaps(s, ray, xs)
	return xs
}

func (p profile) withinRange(ray core.Ray, t float64) bool {
	y := ray.Origin.Y + t*ray.Direction.Y
	return p.Minimum < y && y < p.Maximum
}

func (p profile) intersectWalls(s Shape, ray core.Ray, xs Intersections) Intersections {
	a, b, c := p.coefficients(ray)

	if math.Abs(a) < core.Epsilon {
		// Parallel to the cylinder axis: the walls are never crossed.
		// Parallel to one cone half: a single crossing of the other half.
		if !p.cone || math.Abs(b) < core.Epsilon {
			return xs
		}
		t := -c / (2 * b)
		if p.withinRange(ray, t) {
			xs = append(xs, Intersection{T: t, Object: s})
		}
		return xs
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		return xs
	}

	sqrtDisc := math.Sqrt(disc)
	t0 := (-b - sqrtDisc) / (2 * a)
	t1 := (-b + sqrtDisc) / (2 * a)
	if t0 > t1 {
		t0, t1 = t1, t0
	}

	if p.withinRange(ray, t0) {
		xs = append(xs, Intersection{T: t0, Object: s})
	}
	if p.withinRange(ray, t1) {
		xs = append(xs, Intersection{T: t1, Object: s})
	}
	return xs
}

func (p profile) intersectCaps(s Shape, ray core.Ray, xs Intersections) Intersections {
	if !p.Closed || math.Abs(ray.Direction.Y) < core.Epsilon {
		return xs
	}

	for _, y := range [2]float64{p.Minimum, p.Maximum} {
		t := (y - ray.Origin.Y) / ray.Direction.Y
		if p.onCap(ray, t, p.capRadius(y)) {
			xs = append(xs, Intersection{T: t, Object: s})
		}
	}
	return xs
}

func (p profile) onCap(ray core.Ray, t, radius float64) bool {
	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	return x*x+z*z <= radius*radius
}

func (p profile) normalAt(point core.Tuple) core.Tuple {
	dist := point.X*point.X + point.Z*point.Z

	if r := p.capRadius(p.Maximum); dist < r*r && point.Y >= p.Maximum-core.Epsilon {
		return core.Vector(0, 1, 0)
	}
	if r := p.capRadius(p.Minimum); dist < r*r && point.Y <= p.Minimum+core.Epsilon {
		return core.Vector(0, -1, 0)
	}

	if p.cone {
		y := math.Sqrt(dist)
		if point.Y > 0 {
			y = -y
		}
		return core.Vector(point.X, y, point.Z)
	}
	return core.Vector(point.X, 0, point.Z)
}

func (p profile) bounds() core.Bounds {
	r := 1.0
	if p.cone {
		r = math.Max(math.Abs(p.Minimum), math.Abs(p.Maximum))
	}
	return core.NewBounds(core.Point(-r, p.Minimum, -r), core.Point(r, p.Maximum, r))
}
