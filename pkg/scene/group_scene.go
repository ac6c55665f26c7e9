package scene

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/pattern"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// NewGroupScene creates a hexagon of six identical sides, each side a group
// holding one corner sphere and one edge cylinder, resting on a cube table
func NewGroupScene(config Config) (*Scene, error) {
	var b builder

	frame := b.material(
		material.WithColor(core.NewColor(0.8, 0.55, 0.2)),
		material.WithDiffuse(0.6),
		material.WithSpecular(0.6),
		material.WithShininess(120),
		material.WithReflective(0.2),
	)

	hexagon := b.group(
		geometry.WithName("hexagon"),
		geometry.WithTransform(core.Chain(core.RotationX(-math.Pi/6), core.Translation(0, 1.6, 0))),
	)
	for n := 0; n < 6; n++ {
		side := b.hexagonSide(n, frame)
		b.add(hexagon, side)
	}

	wood := b.pattern(pattern.NewRing(
		core.NewColor(0.55, 0.35, 0.2), core.NewColor(0.45, 0.28, 0.15),
		core.Chain(core.Scaling(0.05, 0.05, 0.05), core.RotationX(math.Pi/2))))
	tableMaterial := b.material(material.WithPattern(wood), material.WithSpecular(0.1))
	table := b.group(geometry.WithName("table"))
	top := b.shape(geometry.NewCube(
		geometry.WithName("tabletop"),
		geometry.WithTransform(core.Chain(core.Scaling(1.6, 0.05, 1.6), core.Translation(0, 0.5, 0))),
		geometry.WithMaterial(tableMaterial),
	))
	b.add(table, top)
	for i, corner := range [][2]float64{{-1.4, -1.4}, {1.4, -1.4}, {-1.4, 1.4}, {1.4, 1.4}} {
		leg := b.shape(geometry.NewCube(
			geometry.WithName(fmt.Sprintf("leg%d", i)),
			geometry.WithTransform(core.Chain(core.Scaling(0.05, 0.25, 0.05), core.Translation(corner[0], 0.25, corner[1]))),
			geometry.WithMaterial(tableMaterial),
		))
		b.add(table, leg)
	}

	floor := b.shape(geometry.NewPlane(
		geometry.WithName("floor"),
		geometry.WithMaterial(b.material(
			material.WithColor(core.NewColor(0.9, 0.9, 0.85)),
			material.WithSpecular(0),
		)),
	))

	light := b.light(core.Point(-6, 8, -6), core.NewColor(1, 1, 1))
	w := world.New(light, floor, table, hexagon)
	return b.finish("groups", config, w, core.Point(0, 3.5, -5.5), core.Point(0, 1, 0))
}

// hexagonSide builds the n-th side of the hexagon, rotated into place about y
func (b *builder) hexagonSide(n int, m material.Material) *geometry.Group {
	corner := b.shape(geometry.NewSphere(
		geometry.WithName(fmt.Sprintf("corner%d", n)),
		geometry.WithTransform(core.Chain(core.Scaling(0.25, 0.25, 0.25), core.Translation(0, 0, -1))),
		geometry.WithMaterial(m),
	))
	edge := b.shape(geometry.NewCylinder(0, 1, false,
		geometry.WithName(fmt.Sprintf("edge%d", n)),
		geometry.WithTransform(core.Chain(
			core.Scaling(0.25, 1, 0.25),
			core.RotationZ(-math.Pi/2),
			core.RotationY(-math.Pi/6),
			core.Translation(0, 0, -1),
		)),
		geometry.WithMaterial(m),
	))
	side := b.group(
		geometry.WithName(fmt.Sprintf("side%d", n)),
		geometry.WithTransform(core.RotationY(float64(n)*math.Pi/3)),
	)
	b.add(side, corner, edge)
	return side
}
