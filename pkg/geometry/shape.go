package geometry

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Shape is implemented by every primitive and by Group.
// Local methods work in the shape's own object space; use Intersect and
// NormalAt to query a shape with world-space rays and points.
type Shape interface {
	LocalIntersect(ray core.Ray) Intersections
	LocalNormalAt(point core.Tuple) core.Tuple
	// Bounds is the object-space box that encloses the shape
	Bounds() core.Bounds

	Transform() core.Matrix
	Inverse() core.Matrix
	Material() *material.Material
	Parent() *Group
	Name() string
	WorldToObject(point core.Tuple) core.Tuple
	NormalToWorld(normal core.Tuple) core.Tuple

	object() *Object
}

// Intersect transforms a world ray into the shape's space and intersects it there
func Intersect(s Shape, ray core.Ray) Intersections {
	return s.LocalIntersect(ray.Transform(s.Inverse()))
}

// NormalAt returns the unit world-space normal of s at a world-space point
func NormalAt(s Shape, worldPoint core.Tuple) core.Tuple {
	localPoint := s.WorldToObject(worldPoint)
	localNormal := s.LocalNormalAt(localPoint)
	return s.NormalToWorld(localNormal)
}

// Object carries the state shared by all shapes: transform, material and the
// link to the enclosing group. Inverse matrices are computed once, when the
// shape is built.
type Object struct {
	transform        core.Matrix
	inverse          core.Matrix
	inverseTranspose core.Matrix
	material         material.Material
	parent           *Group
	name             string
}

// Option configures the Object part of a shape
type Option func(*Object)

// WithTransform sets the object-to-parent transform
func WithTransform(m core.Matrix) Option {
	return func(o *Object) { o.transform = m }
}

// WithMaterial sets the surface material
func WithMaterial(m material.Material) Option {
	return func(o *Object) { o.material = m }
}

// WithName labels the shape for logs and mesh groups
func WithName(name string) Option {
	return func(o *Object) { o.name = name }
}

func newObject(kind string, opts []Option) (Object, error) {
	o := Object{
		transform: core.Identity4(),
		material:  material.Default(),
		name:      kind,
	}
	for _, opt := range opts {
		opt(&o)
	}

	inverse, err := o.transform.Inverse()
	if err != nil {
		return Object{}, fmt.Errorf("%s %q transform: %w", kind, o.name, err)
	}
	if err := o.material.Validate(); err != nil {
		return Object{}, fmt.Errorf("%s %q: %w", kind, o.name, err)
	}
	o.inverse = inverse
	o.inverseTranspose = inverse.Transpose()
	return o, nil
}

func (o *Object) Transform() core.Matrix       { return o.transform }
func (o *Object) Inverse() core.Matrix         { return o.inverse }
func (o *Object) Material() *material.Material { return &o.material }
func (o *Object) Parent() *Group               { return o.parent }
func (o *Object) Name() string                 { return o.name }
func (o *Object) object() *Object              { return o }

// WorldToObject converts a world point into this shape's space, passing
// through every enclosing group on the way
func (o *Object) WorldToObject(point core.Tuple) core.Tuple {
	if o.parent != nil {
		point = o.parent.WorldToObject(point)
	}
	return o.inverse.MultiplyTuple(point)
}

// NormalToWorld converts an object-space normal back to world space
func (o *Object) NormalToWorld(normal core.Tuple) core.Tuple {
	n := o.inverseTranspose.MultiplyTuple(normal)
	n.W = 0
	n = n.Normalize()
	if o.parent != nil {
		n = o.parent.NormalToWorld(n)
	}
	return n
}
