package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/pattern"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// NewReflectionScene creates a mirror floor, a chrome sphere and a glass
// sphere holding an air bubble
func NewReflectionScene(config Config) (*Scene, error) {
	var b builder

	tiles := b.pattern(pattern.NewCheckers(
		core.NewColor(0.35, 0.35, 0.35), core.NewColor(0.65, 0.65, 0.65), core.Identity4()))
	floor := b.shape(geometry.NewPlane(
		geometry.WithName("floor"),
		geometry.WithMaterial(b.material(
			material.WithPattern(tiles),
			material.WithReflective(0.4),
			material.WithSpecular(0),
		)),
	))

	// Two stripe patterns blended into a plaid
	plaidA := b.pattern(pattern.NewStripe(core.NewColor(0.8, 0.2, 0.2), core.NewColor(1, 1, 1), core.Scaling(0.5, 0.5, 0.5)))
	plaidB := b.pattern(pattern.NewStripe(core.NewColor(0.2, 0.2, 0.8), core.NewColor(1, 1, 1),
		core.Chain(core.Scaling(0.5, 0.5, 0.5), core.RotationY(1.5708))))
	plaid := b.pattern(pattern.NewBlend(plaidA, plaidB, core.Identity4()))
	wall := b.shape(geometry.NewPlane(
		geometry.WithName("wall"),
		geometry.WithTransform(core.Chain(core.RotationX(1.5708), core.Translation(0, 0, 10))),
		geometry.WithMaterial(b.material(
			material.WithPattern(plaid),
			material.WithSpecular(0),
		)),
	))

	mirror := b.shape(geometry.NewSphere(
		geometry.WithName("mirror"),
		geometry.WithTransform(core.Translation(-1.2, 1, 1)),
		geometry.WithMaterial(b.material(
			material.WithColor(core.NewColor(0.1, 0.1, 0.1)),
			material.WithDiffuse(0.2),
			material.WithSpecular(1),
			material.WithShininess(300),
			material.WithReflective(0.9),
		)),
	))

	glassOpts := append(material.GlassOptions(),
		material.WithColor(core.NewColor(0.05, 0.05, 0.05)),
		material.WithAmbient(0.05),
		material.WithDiffuse(0.1),
		material.WithSpecular(1),
		material.WithShininess(300),
		material.WithReflective(0.9),
	)
	glass := b.shape(geometry.NewSphere(
		geometry.WithName("glass"),
		geometry.WithTransform(core.Translation(1.2, 1, -0.5)),
		geometry.WithMaterial(b.material(glassOpts...)),
	))
	bubble := b.shape(geometry.NewSphere(
		geometry.WithName("bubble"),
		geometry.WithTransform(core.Chain(core.Scaling(0.5, 0.5, 0.5), core.Translation(1.2, 1, -0.5))),
		geometry.WithMaterial(b.material(
			material.WithColor(core.NewColor(0, 0, 0)),
			material.WithAmbient(0),
			material.WithDiffuse(0),
			material.WithSpecular(0.9),
			material.WithShininess(300),
			material.WithReflective(0.9),
			material.WithTransparency(0.9),
			material.WithRefractiveIndex(material.Air),
		)),
	))

	light := b.light(core.Point(-5, 8, -8), core.NewColor(1, 1, 1))
	w := world.New(light, floor, wall, mirror, glass, bubble)
	return b.finish("reflections", config, w, core.Point(0, 2, -6), core.Point(0, 1, 0))
}
