package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Triangle is a flat triangle with a precomputed face normal
type Triangle struct {
	Object
	P1, P2, P3 core.Tuple
	E1, E2     core.Tuple
	Normal     core.Tuple
}

// NewTriangle creates a triangle from three points
func NewTriangle(p1, p2, p3 core.Tuple, opts ...Option) (*Triangle, error) {
	for _, p := range []core.Tuple{p1, p2, p3} {
		if !p.IsPoint() {
			return nil, fmt.Errorf("triangle vertex %v: %w", p, core.ErrNotPoint)
		}
	}
	o, err := newObject("triangle", opts)
	if err != nil {
		return nil, err
	}

	e1 := p2.Subtract(p1)
	e2 := p3.Subtract(p1)
	return &Triangle{
		Object: o,
		P1:     p1,
		P2:     p2,
		P3:     p3,
		E1:     e1,
		E2:     e2,
		Normal: e2.Cross(e1).Normalize(),
	}, nil
}

// LocalIntersect uses the Möller–Trumbore algorithm
func (tr *Triangle) LocalIntersect(ray core.Ray) Intersections {
	dirCrossE2 := ray.Direction.Cross(tr.E2)
	det := tr.E1.Dot(dirCrossE2)
	if math.Abs(det) < core.Epsilon {
		return nil
	}

	f := 1.0 / det
	p1ToOrigin := ray.Origin.Subtract(tr.P1)
	u := f * p1ToOrigin.Dot(dirCrossE2)
	if u < 0 || u > 1 {
		return nil
	}

	originCrossE1 := p1ToOrigin.Cross(tr.E1)
	v := f * ray.Direction.Dot(originCrossE1)
	if v < 0 || u+v > 1 {
		return nil
	}

	t := f * tr.E2.Dot(originCrossE1)
	return Intersections{{T: t, Object: tr}}
}

func (tr *Triangle) LocalNormalAt(point core.Tuple) core.Tuple {
	return tr.Normal
}

func (tr *Triangle) Bounds() core.Bounds {
	return core.MergePoints(tr.P1, tr.P2, tr.P3)
}
