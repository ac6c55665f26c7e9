// Package scene builds ready-to-render worlds and cameras.
package scene

import (
	"fmt"
	"math"
	"sort"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/pattern"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name   string
	World  *world.World
	Camera *renderer.Camera
}

// Config controls the camera and external inputs of a scene
type Config struct {
	Width       int     // Image width in pixels
	Height      int     // Image height in pixels
	FieldOfView float64 // Radians
	OBJPath     string  // Mesh file for the mesh scene; a built-in mesh is used when empty
	Logger      core.Logger
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:       400,
		Height:      225,
		FieldOfView: math.Pi / 3,
		Logger:      core.NewNopLogger(),
	}
}

type constructor struct {
	description string
	build       func(Config) (*Scene, error)
}

var registry = map[string]constructor{
	"default":     {"Checkered floor with three patterned spheres", NewDefaultScene},
	"reflections": {"Mirrors, glass and a nested air bubble", NewReflectionScene},
	"groups":      {"Hexagon built from nested groups of cylinders and spheres", NewGroupScene},
	"cylinders":   {"Capped and open cylinders and cones", NewCylinderScene},
	"mesh":        {"Triangle mesh loaded from OBJ, divided into a hierarchy", NewMeshScene},
}

// Names returns the built-in scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Description returns the one-line description of a built-in scene
func Description(name string) string {
	return registry[name].description
}

// New builds the named scene
func New(name string, config Config) (*Scene, error) {
	c, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, Names())
	}
	if config.Logger == nil {
		config.Logger = core.NewNopLogger()
	}
	s, err := c.build(config)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", name, err)
	}
	return s, nil
}

// builder keeps the first construction error so scenes read as a list of
// shapes instead of a chain of error checks
type builder struct {
	err error
}

func (b *builder) keep(err error) {
	if b.err == nil && err != nil {
		b.err = err
	}
}

func (b *builder) material(opts ...material.Option) material.Material {
	m, err := material.New(opts...)
	b.keep(err)
	return m
}

func (b *builder) pattern(p pattern.Pattern, err error) pattern.Pattern {
	b.keep(err)
	if err != nil {
		return nil
	}
	return p
}

func (b *builder) shape(s geometry.Shape, err error) geometry.Shape {
	b.keep(err)
	if err != nil {
		return nil
	}
	return s
}

func (b *builder) group(opts ...geometry.Option) *geometry.Group {
	g, err := geometry.NewGroup(opts...)
	b.keep(err)
	return g
}

// add puts shapes into g unless an earlier step failed
func (b *builder) add(g *geometry.Group, shapes ...geometry.Shape) {
	if b.err != nil {
		return
	}
	g.Add(shapes...)
}

func (b *builder) light(position core.Tuple, intensity core.Color) lights.PointLight {
	l, err := lights.NewPointLight(position, intensity)
	b.keep(err)
	return l
}

// finish assembles the scene, looking from from toward to
func (b *builder) finish(name string, config Config, w *world.World, from, to core.Tuple) (*Scene, error) {
	if b.err != nil {
		return nil, b.err
	}
	view, err := core.ViewTransform(from, to, core.Vector(0, 1, 0))
	if err != nil {
		return nil, err
	}
	camera, err := renderer.NewCamera(config.Width, config.Height, config.FieldOfView, view)
	if err != nil {
		return nil, err
	}
	return &Scene{Name: name, World: w, Camera: camera}, nil
}
