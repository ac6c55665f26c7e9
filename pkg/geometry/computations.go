package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Computations holds the values needed to shade one intersection
type Computations struct {
	T             float64
	Object        Shape
	Point         core.Tuple
	EyeVector     core.Tuple
	NormalVector  core.Tuple
	Inside        bool
	OverPoint     core.Tuple // Point lifted off the surface, used for shadow rays
	UnderPoint    core.Tuple // Point pushed below the surface, used for refraction rays
	ReflectVector core.Tuple
	N1            float64 // refractive index of the medium being exited
	N2            float64 // refractive index of the medium being entered
}

// PrepareComputations derives the shading state for hit. xs is the full
// sorted list of intersections along ray and is used to find which
// transparent objects the ray is inside when it reaches the hit.
func PrepareComputations(hit Intersection, ray core.Ray, xs Intersections) Computations {
	comps := Computations{
		T:      hit.T,
		Object: hit.Object,
		Point:  ray.Position(hit.T),
	}
	comps.EyeVector = ray.Direction.Negate()
	comps.NormalVector = NormalAt(hit.Object, comps.Point)

	if comps.NormalVector.Dot(comps.EyeVector) < 0 {
		comps.Inside = true
		comps.NormalVector = comps.NormalVector.Negate()
	}

	bias := comps.NormalVector.Multiply(core.Epsilon)
	comps.OverPoint = comps.Point.Add(bias)
	comps.UnderPoint = comps.Point.Subtract(bias)
	comps.ReflectVector = ray.Direction.Reflect(comps.NormalVector)

	comps.N1, comps.N2 = refractiveIndices(hit, xs)
	return comps
}

// refractiveIndices walks xs keeping the stack of objects the ray is inside
func refractiveIndices(hit Intersection, xs Intersections) (n1, n2 float64) {
	n1, n2 = 1.0, 1.0
	var containers []Shape

	top := func() float64 {
		if len(containers) == 0 {
			return 1.0
		}
		return containers[len(containers)-1].Material().RefractiveIndex
	}

	for _, x := range xs {
		isHit := x == hit
		if isHit {
			n1 = top()
		}

		if i := indexOf(containers, x.Object); i >= 0 {
			containers = append(containers[:i], containers[i+1:]...)
		} else {
			containers = append(containers, x.Object)
		}

		if isHit {
			n2 = top()
			break
		}
	}
	return n1, n2
}

func indexOf(shapes []Shape, s Shape) int {
	for i, c := range shapes {
		if c == s {
			return i
		}
	}
	return -1
}

// Schlick approximates the Fresnel reflectance at the hit
func (c Computations) Schlick() float64 {
	cos := c.EyeVector.Dot(c.NormalVector)

	if c.N1 > c.N2 {
		ratio := c.N1 / c.N2
		sin2t := ratio * ratio * (1 - cos*cos)
		if sin2t > 1 {
			return 1.0
		}
		cos = math.Sqrt(1 - sin2t)
	}

	r0 := (c.N1 - c.N2) / (c.N1 + c.N2)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}
