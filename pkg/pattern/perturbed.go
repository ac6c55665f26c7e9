package pattern

import (
	"github.com/aquilax/go-perlin"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Noise displaces sample points before a pattern is evaluated
type Noise interface {
	Jitter(point core.Tuple, scale float64) core.Tuple
}

// PerlinNoise jitters points with three decorrelated Perlin noise samples
type PerlinNoise struct {
	generator *perlin.Perlin
}

const (
	perlinAlpha  = 2.0
	perlinBeta   = 2.0
	perlinOctave = 3
)

// NewPerlinNoise creates a deterministic Perlin noise source.
// The permutation tables are built here, so Jitter is safe for concurrent use.
func NewPerlinNoise(seed int64) *PerlinNoise {
	return &PerlinNoise{generator: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctave, seed)}
}

// Jitter moves each coordinate by up to scale using an independent noise sample
func (n *PerlinNoise) Jitter(point core.Tuple, scale float64) core.Tuple {
	dx := n.generator.Noise3D(point.X, point.Y, point.Z)
	dy := n.generator.Noise3D(point.X, point.Y, point.Z+1)
	dz := n.generator.Noise3D(point.X, point.Y, point.Z+2)
	return core.Tuple{
		X: point.X + dx*scale,
		Y: point.Y + dy*scale,
		Z: point.Z + dz*scale,
		W: point.W,
	}
}

// Perturbed evaluates an inner pattern at a noise-jittered point
type Perturbed struct {
	base
	Pattern Pattern
	Noise   Noise
	Scale   float64
}

// NewPerturbed wraps inner so its sample points are displaced by noise
func NewPerturbed(inner Pattern, noise Noise, scale float64, transform core.Matrix) (*Perturbed, error) {
	bs, err := newBase(transform)
	if err != nil {
		return nil, err
	}
	return &Perturbed{base: bs, Pattern: inner, Noise: noise, Scale: scale}, nil
}

func (p *Perturbed) PatternAt(point core.Tuple) core.Color {
	return ColorAt(p.Pattern, p.Noise.Jitter(point, p.Scale))
}
