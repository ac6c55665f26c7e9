// Package world holds a scene's light and shapes and computes the color seen
// along a ray, following reflections and refractions up to a fixed depth.
package world

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// DefaultDepth bounds the recursion of reflected and refracted rays
const DefaultDepth = 5

// World is a light plus the top-level shapes of a scene.
// It is read-only once rendering starts and safe for concurrent use.
type World struct {
	Light   lights.PointLight
	Objects []geometry.Shape
}

// New creates a world lit by light
func New(light lights.PointLight, objects ...geometry.Shape) *World {
	return &World{Light: light, Objects: objects}
}

// Intersect returns every intersection of ray with the world's shapes, sorted by t
func (w *World) Intersect(ray core.Ray) geometry.Intersections {
	var xs geometry.Intersections
	for _, obj := range w.Objects {
		xs = append(xs, geometry.Intersect(obj, ray)...)
	}
	xs.Sort()
	return xs
}

// IsShadowed reports whether something lies between point and the light
func (w *World) IsShadowed(point core.Tuple) bool {
	v := w.Light.Position.Subtract(point)
	distance := v.Magnitude()

	shadowRay := core.Ray{Origin: point, Direction: v.Normalize()}
	hit, ok := w.Intersect(shadowRay).Hit()
	return ok && hit.T < distance
}

// ShadeHit computes the color at a prepared intersection
func (w *World) ShadeHit(comps geometry.Computations, remaining int) core.Color {
	m := comps.Object.Material()
	shadowed := w.IsShadowed(comps.OverPoint)

	surface := m.Lighting(comps.Object, w.Light, comps.OverPoint, comps.EyeVector, comps.NormalVector, shadowed)
	reflected := w.ReflectedColor(comps, remaining)
	refracted := w.RefractedColor(comps, remaining)

	if m.Reflective > 0 && m.Transparency > 0 {
		reflectance := comps.Schlick()
		return surface.
			Add(reflected.Multiply(reflectance)).
			Add(refracted.Multiply(1 - reflectance))
	}
	return surface.Add(reflected).Add(refracted)
}

// ReflectedColor follows the mirror ray from the hit
func (w *World) ReflectedColor(comps geometry.Computations, remaining int) core.Color {
	reflective := comps.Object.Material().Reflective
	if remaining < 1 || core.IsNearZero(reflective) {
		return core.Black
	}

	reflectRay := core.Ray{Origin: comps.OverPoint, Direction: comps.ReflectVector}
	return w.ColorAt(reflectRay, remaining-1).Multiply(reflective)
}

// RefractedColor follows the transmitted ray through the hit using Snell's law
func (w *World) RefractedColor(comps geometry.Computations, remaining int) core.Color {
	transparency := comps.Object.Material().Transparency
	if remaining < 1 || core.IsNearZero(transparency) {
		return core.Black
	}

	nRatio := comps.N1 / comps.N2
	cosI := comps.EyeVector.Dot(comps.NormalVector)
	sin2T := nRatio * nRatio * (1 - cosI*cosI)
	if sin2T > 1 {
		// total internal reflection
		return core.Black
	}

	cosT := math.Sqrt(1 - sin2T)
	direction := comps.NormalVector.Multiply(nRatio*cosI - cosT).
		Subtract(comps.EyeVector.Multiply(nRatio))

	refractRay := core.Ray{Origin: comps.UnderPoint, Direction: direction}
	return w.ColorAt(refractRay, remaining-1).Multiply(transparency)
}

// ColorAt returns the color seen along ray, or black when nothing is hit
func (w *World) ColorAt(ray core.Ray, remaining int) core.Color {
	xs := w.Intersect(ray)
	hit, ok := xs.Hit()
	if !ok {
		return core.Black
	}
	comps := geometry.PrepareComputations(hit, ray, xs)
	return w.ShadeHit(comps, remaining)
}
