package world

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewDefaultWorld returns the reference scene: two concentric spheres lit
// by a white light above and to the left of the camera
func NewDefaultWorld() (*World, error) {
	light, err := lights.NewPointLight(core.Point(-10, 10, -10), core.White)
	if err != nil {
		return nil, err
	}

	m, err := material.New(
		material.WithColor(core.NewColor(0.8, 1.0, 0.6)),
		material.WithDiffuse(0.7),
		material.WithSpecular(0.2),
	)
	if err != nil {
		return nil, err
	}
	outer, err := geometry.NewSphere(geometry.WithMaterial(m), geometry.WithName("outer"))
	if err != nil {
		return nil, err
	}
	inner, err := geometry.NewSphere(geometry.WithTransform(core.Scaling(0.5, 0.5, 0.5)), geometry.WithName("inner"))
	if err != nil {
		return nil, err
	}

	return New(light, outer, inner), nil
}
