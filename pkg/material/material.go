// Package material holds the surface coefficients of the Phong model and the
// lighting function that combines them with a point light.
package material

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/pattern"
)

// ErrInvalidCoefficient is returned when a material coefficient is out of range
var ErrInvalidCoefficient = errors.New("invalid material coefficient")

// Refractive indices of common media
const (
	Vacuum  = 1.0
	Air     = 1.00029
	Water   = 1.333
	Glass   = 1.52
	Diamond = 2.417
)

// Material describes how a surface responds to light
type Material struct {
	Color           core.Color
	Pattern         pattern.Pattern // overrides Color when set
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflective      float64
	Transparency    float64
	RefractiveIndex float64
}

// Option configures a Material
type Option func(*Material)

func WithColor(c core.Color) Option { return func(m *Material) { m.Color = c } }
func WithPattern(p pattern.Pattern) Option { return func(m *Material) { m.Pattern = p } }
func WithAmbient(v float64) Option { return func(m *Material) { m.Ambient = v } }
func WithDiffuse(v float64) Option { return func(m *Material) { m.Diffuse = v } }
func WithSpecular(v float64) Option { return func(m *Material) { m.Specular = v } }
func WithShininess(v float64) Option { return func(m *Material) { m.Shininess = v } }
func WithReflective(v float64) Option { return func(m *Material) { m.Reflective = v } }
func WithTransparency(v float64) Option { return func(m *Material) { m.Transparency = v } }
func WithRefractiveIndex(v float64) Option { return func(m *Material) { m.RefractiveIndex = v } }

// Default returns a white, fully opaque, non-reflective material
func Default() Material {
	return Material{
		Color:           core.White,
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200,
		Reflective:      0,
		Transparency:    0,
		RefractiveIndex: Vacuum,
	}
}

// New builds a material from Default with the given options applied
func New(opts ...Option) (Material, error) {
	m := Default()
	for _, opt := range opts {
		opt(&m)
	}
	if err := m.Validate(); err != nil {
		return Material{}, err
	}
	return m, nil
}

// GlassOptions returns the options for a clear glass surface
func GlassOptions() []Option {
	return []Option{
		WithTransparency(1.0),
		WithRefractiveIndex(1.5),
	}
}

// Validate checks every coefficient against its allowed range
func (m Material) Validate() error {
	unit := []struct {
		name  string
		value float64
	}{
		{"ambient", m.Ambient},
		{"diffuse", m.Diffuse},
		{"specular", m.Specular},
		{"reflective", m.Reflective},
		{"transparency", m.Transparency},
	}
	for _, c := range unit {
		if c.value < 0 || c.value > 1 || math.IsNaN(c.value) {
			return fmt.Errorf("%s must be between 0 and 1, got %g: %w", c.name, c.value, ErrInvalidCoefficient)
		}
	}
	if m.Shininess < 10 || m.Shininess > 1000 || math.IsNaN(m.Shininess) {
		return fmt.Errorf("shininess must be between 10 and 1000, got %g: %w", m.Shininess, ErrInvalidCoefficient)
	}
	if !(m.RefractiveIndex > 0) {
		return fmt.Errorf("refractive index must be positive, got %g: %w", m.RefractiveIndex, ErrInvalidCoefficient)
	}
	return nil
}

// Lighting shades point with the Phong model. The result is not clamped.
// object maps the world point into the pattern's space and may be nil
// when the material has no pattern.
func (m Material) Lighting(object pattern.Space, light lights.PointLight, point, eyeVector, normalVector core.Tuple, inShadow bool) core.Color {
	surface := m.Color
	if m.Pattern != nil {
		if object != nil {
			surface = pattern.AtShape(m.Pattern, object, point)
		} else {
			surface = pattern.ColorAt(m.Pattern, point)
		}
	}

	effectiveColor := surface.MultiplyColor(light.Intensity)
	ambient := effectiveColor.Multiply(m.Ambient)

	lightVector := light.Position.Subtract(point).Normalize()
	lightDotNormal := lightVector.Dot(normalVector)
	if inShadow || lightDotNormal < 0 {
		return ambient
	}

	diffuse := effectiveColor.Multiply(m.Diffuse * lightDotNormal)

	reflectVector := lightVector.Negate().Reflect(normalVector)
	reflectDotEye := reflectVector.Dot(eyeVector)
	if reflectDotEye <= 0 {
		return ambient.Add(diffuse)
	}

	factor := math.Pow(reflectDotEye, m.Shininess)
	specular := light.Intensity.Multiply(m.Specular * factor)
	return ambient.Add(diffuse).Add(specular)
}
