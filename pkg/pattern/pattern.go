// Package pattern provides procedural color functions that can be nested and
// transformed independently of the shapes they decorate.
package pattern

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Pattern is a color function evaluated in its own local space
type Pattern interface {
	// PatternAt returns the color at a point already in pattern space
	PatternAt(point core.Tuple) core.Color
	Transform() core.Matrix
	Inverse() core.Matrix
}

// Space converts world points into an object's local space
type Space interface {
	WorldToObject(point core.Tuple) core.Tuple
}

// ColorAt maps point from the parent's space into pattern space and evaluates p there
func ColorAt(p Pattern, point core.Tuple) core.Color {
	return p.PatternAt(p.Inverse().MultiplyTuple(point))
}

// AtShape evaluates p at a world-space point on object
func AtShape(p Pattern, object Space, worldPoint core.Tuple) core.Color {
	return ColorAt(p, object.WorldToObject(worldPoint))
}

// base holds a pattern transform and its inverse, computed once at construction
type base struct {
	transform core.Matrix
	inverse   core.Matrix
}

func newBase(transform core.Matrix) (base, error) {
	inverse, err := transform.Inverse()
	if err != nil {
		return base{}, fmt.Errorf("pattern transform: %w", err)
	}
	return base{transform: transform, inverse: inverse}, nil
}

// Transform returns the pattern-to-parent transform
func (b base) Transform() core.Matrix {
	return b.transform
}

// Inverse returns the cached inverse transform
func (b base) Inverse() core.Matrix {
	return b.inverse
}
