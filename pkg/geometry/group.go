package geometry

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Group is a shape made of child shapes sharing a common transform.
// A group owns its children; each child points back to the group only to
// convert points and normals between spaces.
//
// Adding children grows the bounds of the group and of every group
// enclosing it. Groups must not be modified while a render is running.
type Group struct {
	Object
	children []Shape
	bounds   core.Bounds
}

// NewGroup creates an empty group
func NewGroup(opts ...Option) (*Group, error) {
	o, err := newObject("group", opts)
	if err != nil {
		return nil, err
	}
	return &Group{Object: o, bounds: core.EmptyBounds()}, nil
}

// Add moves children into the group, detaching them from any previous group.
// It panics if a child is the group itself or one of its ancestors.
func (g *Group) Add(children ...Shape) {
	grown := g.bounds
	for _, child := range children {
		if sub, ok := child.(*Group); ok && sub.isAncestorOf(g) {
			panic(fmt.Sprintf("geometry: adding group %q to %q would create a cycle", sub.Name(), g.Name()))
		}
		obj := child.object()
		if obj.parent != nil && obj.parent != g {
			obj.parent.remove(child)
		}
		if obj.parent == g {
			continue
		}
		obj.parent = g
		g.children = append(g.children, child)
		grown = grown.Union(parentSpaceBounds(child))
	}
	g.growBounds(grown)
}

// Children returns the group's direct children. The slice must not be modified.
func (g *Group) Children() []Shape {
	return g.children
}

// Len returns the number of direct children
func (g *Group) Len() int {
	return len(g.children)
}

func (g *Group) isAncestorOf(s *Group) bool {
	for p := s; p != nil; p = p.parent {
		if p == g {
			return true
		}
	}
	return false
}

func (g *Group) remove(child Shape) {
	for i, c := range g.children {
		if c == child {
			g.children = append(g.children[:i], g.children[i+1:]...)
			break
		}
	}
	child.object().parent = nil
	g.updateBounds()
}

func (g *Group) updateBounds() {
	bounds := core.EmptyBounds()
	for _, child := range g.children {
		bounds = bounds.Union(parentSpaceBounds(child))
	}
	g.bounds = bounds
	if g.parent != nil {
		g.parent.updateBounds()
	}
}

// growBounds sets bounds that only enlarge the current ones, so ancestors
// can be widened without revisiting their other children
func (g *Group) growBounds(bounds core.Bounds) {
	g.bounds = bounds
	for p := g; p.parent != nil; p = p.parent {
		p.parent.bounds = p.parent.bounds.Union(parentSpaceBounds(p))
	}
}

// parentSpaceBounds returns the bounds of s in the space of its parent
func parentSpaceBounds(s Shape) core.Bounds {
	return s.Bounds().Transform(s.Transform())
}

// LocalIntersect skips every child when the ray misses the group's bounds
func (g *Group) LocalIntersect(ray core.Ray) Intersections {
	if !g.bounds.Hit(ray) {
		return nil
	}

	var xs Intersections
	for _, child := range g.children {
		xs = append(xs, Intersect(child, ray)...)
	}
	xs.Sort()
	return xs
}

// LocalNormalAt panics: normals are always taken from the primitive that was hit
func (g *Group) LocalNormalAt(point core.Tuple) core.Tuple {
	panic(fmt.Sprintf("geometry: normal requested from group %q", g.Name()))
}

func (g *Group) Bounds() core.Bounds {
	return g.bounds
}
