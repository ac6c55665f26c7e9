package scene

import (
	"errors"
	"fmt"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/pattern"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// icosahedronOBJ is used when no mesh file is configured
const icosahedronOBJ = `# icosahedron
v -1 1.618034 0
v 1 1.618034 0
v -1 -1.618034 0
v 1 -1.618034 0
v 0 -1 1.618034
v 0 1 1.618034
v 0 -1 -1.618034
v 0 1 -1.618034
v 1.618034 0 -1
v 1.618034 0 1
v -1.618034 0 -1
v -1.618034 0 1

g upper
f 1 12 6
f 1 6 2
f 1 2 8
f 1 8 11
f 1 11 12
f 2 6 10
f 6 12 5
f 12 11 3
f 11 8 7
f 8 2 9

g lower
f 4 10 5
f 4 5 3
f 4 3 7
f 4 7 9
f 4 9 10
f 5 10 6
f 3 5 12
f 7 3 11
f 9 7 8
f 10 9 2
`

// NewMeshScene loads a triangle mesh, fits it into a 2x2x2 box resting on
// the floor and divides it into a bounding volume hierarchy
func NewMeshScene(config Config) (*Scene, error) {
	var b builder

	surface := b.material(
		material.WithColor(core.NewColor(0.3, 0.7, 0.9)),
		material.WithDiffuse(0.7),
		material.WithSpecular(0.6),
		material.WithShininess(200),
		material.WithReflective(0.15),
	)
	data, err := loadMesh(config, geometry.WithMaterial(surface))
	if err != nil {
		return nil, err
	}

	mesh, err := data.ToGroup(geometry.WithName("mesh"))
	if err != nil {
		return nil, err
	}
	bounds := mesh.Bounds()
	if bounds.IsEmpty() {
		return nil, errors.New("mesh has no triangles")
	}
	if err := mesh.Divide(geometry.DefaultLeafThreshold); err != nil {
		return nil, err
	}
	config.Logger.Printf("Mesh: %d triangles in %d groups, divided into %d top-level nodes\n",
		data.Triangles, len(data.Groups), mesh.Len())

	// Scale the longest side to 2 and sit the mesh on y = 0
	extent := bounds.Max.Subtract(bounds.Min)
	longest := [3]float64{extent.X, extent.Y, extent.Z}[bounds.LongestAxis()]
	scale := 2 / longest
	center := bounds.Center()
	placed := b.group(
		geometry.WithName("placed"),
		geometry.WithTransform(core.Chain(
			core.Translation(-center.X, -bounds.Min.Y, -center.Z),
			core.Scaling(scale, scale, scale),
			core.RotationY(0.4),
		)),
	)
	b.add(placed, mesh)

	checkers := b.pattern(pattern.NewCheckers(
		core.NewColor(0.95, 0.95, 0.95), core.NewColor(0.3, 0.3, 0.3), core.Scaling(0.5, 0.5, 0.5)))
	floor := b.shape(geometry.NewPlane(
		geometry.WithName("floor"),
		geometry.WithMaterial(b.material(
			material.WithPattern(checkers),
			material.WithSpecular(0),
			material.WithReflective(0.2),
		)),
	))

	light := b.light(core.Point(-5, 9, -7), core.NewColor(1, 1, 1))
	w := world.New(light, floor, placed)
	return b.finish("mesh", config, w, core.Point(0, 2.5, -5), core.Point(0, 1, 0))
}

func loadMesh(config Config, opts ...geometry.Option) (*loaders.OBJData, error) {
	if config.OBJPath != "" {
		return loaders.LoadOBJ(config.OBJPath, config.Logger, opts...)
	}
	data, err := loaders.ParseOBJ(strings.NewReader(icosahedronOBJ), config.Logger, opts...)
	if err != nil {
		return nil, fmt.Errorf("built-in mesh: %w", err)
	}
	return data, nil
}
