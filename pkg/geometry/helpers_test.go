package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

const tolerance = 1e-4

// must unwraps a constructor result in test setup, panicking on error
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func ray(t *testing.T, origin, direction core.Tuple) core.Ray {
	t.Helper()
	return must(core.NewRay(origin, direction))
}

func glassSphere(t *testing.T, transform core.Matrix, refractiveIndex float64) *Sphere {
	t.Helper()
	opts := append(material.GlassOptions(), material.WithRefractiveIndex(refractiveIndex))
	m := must(material.New(opts...))
	return must(NewSphere(WithTransform(transform), WithMaterial(m)))
}

func ts(xs Intersections) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = x.T
	}
	return out
}

func assertTs(t *testing.T, xs Intersections, expected ...float64) {
	t.Helper()
	if len(xs) != len(expected) {
		t.Fatalf("Expected %d intersections %v, got %d: %v", len(expected), expected, len(xs), ts(xs))
	}
	for i, want := range expected {
		if math.Abs(xs[i].T-want) > tolerance {
			t.Errorf("Intersection %d: expected t=%v, got t=%v", i, want, xs[i].T)
		}
	}
}

func assertTuple(t *testing.T, expected, got core.Tuple) {
	t.Helper()
	if math.Abs(expected.X-got.X) > tolerance ||
		math.Abs(expected.Y-got.Y) > tolerance ||
		math.Abs(expected.Z-got.Z) > tolerance ||
		math.Abs(expected.W-got.W) > tolerance {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func newTestRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

// randomRayToward casts a ray from distance away toward a random point in
// the cube [-spread, spread]³
func randomRayToward(t *testing.T, rng *rand.Rand, distance, spread float64) core.Ray {
	t.Helper()
	var dir core.Tuple
	for {
		dir = core.Vector(rng.Float64()*2-1, rng.Float64()*2-1, rng.Float64()*2-1)
		if m := dir.Magnitude(); m > 0.1 && m <= 1 {
			break
		}
	}
	origin := core.Origin.Add(dir.Normalize().Multiply(distance))
	target := core.Point(
		(rng.Float64()*2-1)*spread,
		(rng.Float64()*2-1)*spread,
		(rng.Float64()*2-1)*spread,
	)
	return ray(t, origin, target.Subtract(origin).Normalize())
}
