package core

import "math"

// Bounds is an axis-aligned bounding box in a shape's local space
type Bounds struct {
	Min Tuple // Minimum corner
	Max Tuple // Maximum corner
}

// NewBounds creates bounds from min and max points
func NewBounds(min, max Tuple) Bounds {
	return Bounds{Min: min, Max: max}
}

// EmptyBounds returns bounds that contain nothing; merging a point into them yields that point
func EmptyBounds() Bounds {
	inf := math.Inf(1)
	return Bounds{Min: Point(inf, inf, inf), Max: Point(-inf, -inf, -inf)}
}

// InfiniteBounds returns bounds covering all of space
func InfiniteBounds() Bounds {
	inf := math.Inf(1)
	return Bounds{Min: Point(-inf, -inf, -inf), Max: Point(inf, inf, inf)}
}

// MergePoints folds a set of points into the smallest bounds containing them all
func MergePoints(points ...Tuple) Bounds {
	b := EmptyBounds()
	for _, p := range points {
		b.Min.X = math.Min(b.Min.X, p.X)
		b.Min.Y = math.Min(b.Min.Y, p.Y)
		b.Min.Z = math.Min(b.Min.Z, p.Z)

		b.Max.X = math.Max(b.Max.X, p.X)
		b.Max.Y = math.Max(b.Max.Y, p.Y)
		b.Max.Z = math.Max(b.Max.Z, p.Z)
	}
	return b
}

// IsEmpty reports whether the bounds contain no point
func (b Bounds) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// IsFinite reports whether every component of both corners is finite
func (b Bounds) IsFinite() bool {
	for _, v := range []float64{b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}

// Corners returns the eight corners of the box, each transformed by m
func (b Bounds) Corners(m Matrix) []Tuple {
	return []Tuple{
		m.MultiplyTuple(b.Min),
		m.MultiplyTuple(Point(b.Min.X, b.Min.Y, b.Max.Z)),
		m.MultiplyTuple(Point(b.Min.X, b.Max.Y, b.Min.Z)),
		m.MultiplyTuple(Point(b.Min.X, b.Max.Y, b.Max.Z)),
		m.MultiplyTuple(Point(b.Max.X, b.Min.Y, b.Min.Z)),
		m.MultiplyTuple(Point(b.Max.X, b.Min.Y, b.Max.Z)),
		m.MultiplyTuple(Point(b.Max.X, b.Max.Y, b.Min.Z)),
		m.MultiplyTuple(b.Max),
	}
}

// Transform returns the bounds of the box after applying m.
// Unbounded boxes stay unbounded on every axis since 0×Inf has no meaning.
func (b Bounds) Transform(m Matrix) Bounds {
	if b.IsEmpty() {
		return b
	}
	if !b.IsFinite() {
		return InfiniteBounds()
	}
	return MergePoints(b.Corners(m)...)
}

// Union returns bounds enclosing both boxes
func (b Bounds) Union(other Bounds) Bounds {
	return Bounds{
		Min: Point(math.Min(b.Min.X, other.Min.X), math.Min(b.Min.Y, other.Min.Y), math.Min(b.Min.Z, other.Min.Z)),
		Max: Point(math.Max(b.Max.X, other.Max.X), math.Max(b.Max.Y, other.Max.Y), math.Max(b.Max.Z, other.Max.Z)),
	}
}

// Intersect runs the slab test and returns the entry and exit parameters.
// ok is false when the ray misses the box.
func (b Bounds) Intersect(ray Ray) (tMin, tMax float64, ok bool) {
	if b.IsEmpty() {
		return 0, 0, false
	}

	tMin, tMax = math.Inf(-1), math.Inf(1)
	axes := [3][4]float64{
		{b.Min.X, b.Max.X, ray.Origin.X, ray.Direction.X},
		{b.Min.Y, b.Max.Y, ray.Origin.Y, ray.Direction.Y},
		{b.Min.Z, b.Max.Z, ray.Origin.Z, ray.Direction.Z},
	}

	for _, axis := range axes {
		lo, hi, origin, direction := axis[0], axis[1], axis[2], axis[3]

		// Parallel to this slab: inside it or a guaranteed miss.
		// Tiny components are still divided; rays under a large scale get them.
		if direction == 0 {
			if origin < lo || origin > hi {
				return 0, 0, false
			}
			continue
		}

		t1 := (lo - origin) / direction
		t2 := (hi - origin) / direction
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, 0, false
		}
	}

	return tMin, tMax, true
}

// Hit reports whether the ray crosses the box at all
func (b Bounds) Hit(ray Ray) bool {
	_, _, ok := b.Intersect(ray)
	return ok
}

// Center returns the midpoint of the box
func (b Bounds) Center() Tuple {
	return Point((b.Min.X+b.Max.X)/2, (b.Min.Y+b.Max.Y)/2, (b.Min.Z+b.Max.Z)/2)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent
func (b Bounds) LongestAxis() int {
	size := b.Max.Subtract(b.Min)
	if size.X > size.Y && size.X > size.Z {
		return 0
	}
	if size.Y > size.Z {
		return 1
	}
	return 2
}
