package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/pattern"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// NewDefaultScene creates a checkered floor and three patterned spheres
func NewDefaultScene(config Config) (*Scene, error) {
	var b builder

	floorPattern := b.pattern(pattern.NewCheckers(
		core.NewColor(0.9, 0.9, 0.9), core.NewColor(0.2, 0.2, 0.25), core.Identity4()))
	floor := b.shape(geometry.NewPlane(
		geometry.WithName("floor"),
		geometry.WithMaterial(b.material(
			material.WithPattern(floorPattern),
			material.WithSpecular(0),
			material.WithReflective(0.1),
		)),
	))

	// Stripes bent by Perlin noise
	stripes := b.pattern(pattern.NewStripe(
		core.NewColor(0.1, 0.5, 0.9), core.NewColor(0.95, 0.95, 0.95),
		core.Chain(core.Scaling(0.2, 0.2, 0.2), core.RotationZ(0.7))))
	marble := b.pattern(pattern.NewPerturbed(stripes, pattern.NewPerlinNoise(7), 0.3, core.Identity4()))
	middle := b.shape(geometry.NewSphere(
		geometry.WithName("middle"),
		geometry.WithTransform(core.Translation(-0.5, 1, 0.5)),
		geometry.WithMaterial(b.material(
			material.WithPattern(marble),
			material.WithDiffuse(0.7),
			material.WithSpecular(0.3),
		)),
	))

	gradient := b.pattern(pattern.NewGradient(
		core.NewColor(0.5, 1, 0.1), core.NewColor(1, 0.2, 0.1),
		core.Chain(core.Scaling(2, 1, 1), core.Translation(-1, 0, 0))))
	right := b.shape(geometry.NewSphere(
		geometry.WithName("right"),
		geometry.WithTransform(core.Chain(core.Scaling(0.5, 0.5, 0.5), core.Translation(1.5, 0.5, -0.5))),
		geometry.WithMaterial(b.material(
			material.WithPattern(gradient),
			material.WithDiffuse(0.7),
			material.WithSpecular(0.3),
		)),
	))

	rings := b.pattern(pattern.NewRing(
		core.NewColor(1, 0.8, 0.1), core.NewColor(0.6, 0.3, 0),
		core.Chain(core.Scaling(0.15, 0.15, 0.15), core.RotationX(1.2))))
	left := b.shape(geometry.NewSphere(
		geometry.WithName("left"),
		geometry.WithTransform(core.Chain(core.Scaling(0.33, 0.33, 0.33), core.Translation(-1.5, 0.33, -0.75))),
		geometry.WithMaterial(b.material(
			material.WithPattern(rings),
			material.WithDiffuse(0.7),
			material.WithSpecular(0.3),
		)),
	))

	light := b.light(core.Point(-10, 10, -10), core.NewColor(1, 1, 1))
	w := world.New(light, floor, middle, right, left)
	return b.finish("default", config, w, core.Point(0, 1.5, -5), core.Point(0, 1, 0))
}
