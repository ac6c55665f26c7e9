package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Cube is the axis-aligned cube spanning [-1, 1] on every axis
type Cube struct {
	Object
}

// NewCube creates a unit cube
func NewCube(opts ...Option) (*Cube, error) {
	o, err := newObject("cube", opts)
	if err != nil {
		return nil, err
	}
	return &Cube{Object: o}, nil
}

func (c *Cube) LocalIntersect(ray core.Ray) Intersections {
	tMin, tMax, ok := c.Bounds().Intersect(ray)
	if !ok {
		return nil
	}
	return Intersections{{T: tMin, Object: c}, {T: tMax, Object: c}}
}

// LocalNormalAt picks the face whose axis has the largest absolute coordinate
func (c *Cube) LocalNormalAt(point core.Tuple) core.Tuple {
	ax, ay, az := math.Abs(point.X), math.Abs(point.Y), math.Abs(point.Z)
	maxc := math.Max(ax, math.Max(ay, az))

	switch maxc {
	case ax:
		return core.Vector(point.X, 0, 0)
	case ay:
		return core.Vector(0, point.Y, 0)
	}
	return core.Vector(0, 0, point.Z)
}

func (c *Cube) Bounds() core.Bounds {
	return core.NewBounds(core.Point(-1, -1, -1), core.Point(1, 1, 1))
}
