package geometry

import (
	"fmt"
	"sort"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// DefaultLeafThreshold is the largest number of children Divide leaves in one group
const DefaultLeafThreshold = 8

// Divide builds a bounding volume hierarchy inside the group. Children are
// sorted along the longest axis of their combined bounds and split at the
// median into two subgroups, recursively, until no group holds more than
// leafThreshold children. Unbounded children such as planes stay where they
// are. Existing child groups are divided too.
func (g *Group) Divide(leafThreshold int) error {
	if leafThreshold < 1 {
		return fmt.Errorf("leaf threshold must be positive, got %d", leafThreshold)
	}

	if len(g.children) > leafThreshold {
		if err := g.split(leafThreshold); err != nil {
			return err
		}
	}

	for _, child := range g.children {
		if sub, ok := child.(*Group); ok {
			if err := sub.Divide(leafThreshold); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *Group) split(leafThreshold int) error {
	var bounded, unbounded []Shape
	combined := core.EmptyBounds()
	for _, child := range g.children {
		b := parentSpaceBounds(child)
		if !b.IsFinite() || b.IsEmpty() {
			unbounded = append(unbounded, child)
			continue
		}
		bounded = append(bounded, child)
		combined = combined.Union(b)
	}
	if len(bounded) <= leafThreshold {
		return nil
	}

	sortShapesByAxis(bounded, combined.LongestAxis())
	mid := len(bounded) / 2

	left, err := NewGroup(WithName(g.Name() + "/0"))
	if err != nil {
		return err
	}
	right, err := NewGroup(WithName(g.Name() + "/1"))
	if err != nil {
		return err
	}

	for _, child := range g.children {
		child.object().parent = nil
	}
	g.children = nil

	left.Add(bounded[:mid]...)
	right.Add(bounded[mid:]...)
	g.Add(unbounded...)
	g.Add(left, right)
	return nil
}

// sortShapesByAxis sorts shapes by the center of their parent-space bounds along axis
func sortShapesByAxis(shapes []Shape, axis int) {
	centers := make(map[Shape]core.Tuple, len(shapes))
	for _, s := range shapes {
		centers[s] = parentSpaceBounds(s).Center()
	}

	sort.SliceStable(shapes, func(i, j int) bool {
		ci, cj := centers[shapes[i]], centers[shapes[j]]
		switch axis {
		case 0:
			return ci.X < cj.X
		case 1:
			return ci.Y < cj.Y
		default:
			return ci.Z < cj.Z
		}
	})
}
