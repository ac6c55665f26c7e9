package geometry

import "sort"

// Intersection records where along a ray a shape was crossed
type Intersection struct {
	T      float64
	Object Shape
}

// Intersections is a list of intersections, usually sorted by T
type Intersections []Intersection

// NewIntersections collects xs sorted ascending by T
func NewIntersections(xs ...Intersection) Intersections {
	out := Intersections(xs)
	out.Sort()
	return out
}

// Sort orders the list ascending by T, keeping equal values in insertion order
func (xs Intersections) Sort() {
	sort.SliceStable(xs, func(i, j int) bool { return xs[i].T < xs[j].T })
}

// Hit returns the intersection with the lowest non-negative T.
// On ties the first one in the list wins.
func (xs Intersections) Hit() (Intersection, bool) {
	best := -1
	for i, x := range xs {
		if x.T < 0 {
			continue
		}
		if best < 0 || x.T < xs[best].T {
			best = i
		}
	}
	if best < 0 {
		return Intersection{}, false
	}
	return xs[best], true
}
