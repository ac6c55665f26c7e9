package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/pattern"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// NewCylinderScene creates capped and open cylinders and cones on a striped floor
func NewCylinderScene(config Config) (*Scene, error) {
	var b builder

	stripes := b.pattern(pattern.NewStripe(
		core.NewColor(0.85, 0.85, 0.8), core.NewColor(0.55, 0.6, 0.65), core.RotationY(math.Pi/4)))
	floor := b.shape(geometry.NewPlane(
		geometry.WithName("floor"),
		geometry.WithMaterial(b.material(material.WithPattern(stripes), material.WithSpecular(0))),
	))

	solid := func(r, g, bl float64) material.Material {
		return b.material(
			material.WithColor(core.NewColor(r, g, bl)),
			material.WithDiffuse(0.7),
			material.WithSpecular(0.5),
			material.WithShininess(150),
		)
	}

	barrel := b.shape(geometry.NewCylinder(0, 1, true,
		geometry.WithName("barrel"),
		geometry.WithTransform(core.Chain(core.Scaling(0.6, 1.5, 0.6), core.Translation(-1.6, 0, 0.5))),
		geometry.WithMaterial(solid(0.8, 0.2, 0.2)),
	))
	pipe := b.shape(geometry.NewCylinder(-1, 1, false,
		geometry.WithName("pipe"),
		geometry.WithTransform(core.Chain(
			core.Scaling(0.3, 1, 0.3),
			core.RotationZ(math.Pi/2),
			core.RotationY(-math.Pi/5),
			core.Translation(0, 0.3, -1),
		)),
		geometry.WithMaterial(solid(0.2, 0.6, 0.3)),
	))
	funnel := b.shape(geometry.NewCone(-1, 0, true,
		geometry.WithName("funnel"),
		geometry.WithTransform(core.Chain(core.Scaling(0.7, 1.4, 0.7), core.Translation(0.2, 1.4, 1.2))),
		geometry.WithMaterial(solid(0.2, 0.3, 0.85)),
	))
	// Double cone, open at both ends, with a mirror finish
	hourglass := b.shape(geometry.NewCone(-1, 1, false,
		geometry.WithName("hourglass"),
		geometry.WithTransform(core.Chain(core.Scaling(0.5, 0.8, 0.5), core.Translation(1.7, 0.8, 0))),
		geometry.WithMaterial(b.material(
			material.WithColor(core.NewColor(0.2, 0.2, 0.2)),
			material.WithReflective(0.7),
			material.WithSpecular(1),
			material.WithShininess(300),
		)),
	))

	light := b.light(core.Point(-4, 7, -7), core.NewColor(1, 1, 1))
	w := world.New(light, floor, barrel, pipe, funnel, hourglass)
	return b.finish("cylinders", config, w, core.Point(0, 3, -6), core.Point(0, 0.8, 0))
}
