package material

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/pattern"
)

const tolerance = 1e-4

func mustLight(t *testing.T, position core.Tuple) lights.PointLight {
	t.Helper()
	light, err := lights.NewPointLight(position, core.White)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	return light
}

func TestDefault(t *testing.T) {
	m := Default()
	if !m.Color.Equal(core.White) {
		t.Errorf("Expected white, got %v", m.Color)
	}
	if m.Ambient != 0.1 || m.Diffuse != 0.9 || m.Specular != 0.9 || m.Shininess != 200 {
		t.Errorf("Unexpected Phong defaults: %+v", m)
	}
	if m.Reflective != 0 || m.Transparency != 0 || m.RefractiveIndex != 1.0 {
		t.Errorf("Unexpected optical defaults: %+v", m)
	}
	if err := m.Validate(); err != nil {
		t.Errorf("Default material should validate, got %v", err)
	}
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		wantErr bool
	}{
		{"defaults", nil, false},
		{"glass", GlassOptions(), false},
		{"ambient at bounds", []Option{WithAmbient(0), WithDiffuse(1)}, false},
		{"negative ambient", []Option{WithAmbient(-0.1)}, true},
		{"diffuse above one", []Option{WithDiffuse(1.5)}, true},
		{"specular above one", []Option{WithSpecular(2)}, true},
		{"reflective above one", []Option{WithReflective(1.01)}, true},
		{"negative transparency", []Option{WithTransparency(-1)}, true},
		{"shininess too low", []Option{WithShininess(5)}, true},
		{"shininess too high", []Option{WithShininess(1001)}, true},
		{"zero refractive index", []Option{WithRefractiveIndex(0)}, true},
		{"NaN diffuse", []Option{WithDiffuse(math.NaN())}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opts...)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidCoefficient) {
					t.Errorf("Expected ErrInvalidCoefficient, got %v", err)
				}
			} else if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestLighting(t *testing.T) {
	m := Default()
	position := core.Point(0, 0, 0)
	s2 := math.Sqrt(2) / 2

	tests := []struct {
		name     string
		eye      core.Tuple
		light    core.Tuple
		inShadow bool
		expected core.Color
	}{
		{"eye between light and surface", core.Vector(0, 0, -1), core.Point(0, 0, -10), false, core.NewColor(1.9, 1.9, 1.9)},
		{"eye offset 45 degrees", core.Vector(0, s2, -s2), core.Point(0, 0, -10), false, core.NewColor(1.0, 1.0, 1.0)},
		{"light offset 45 degrees", core.Vector(0, 0, -1), core.Point(0, 10, -10), false, core.NewColor(0.7364, 0.7364, 0.7364)},
		{"eye in reflection path", core.Vector(0, -s2, -s2), core.Point(0, 10, -10), false, core.NewColor(1.6364, 1.6364, 1.6364)},
		{"light behind surface", core.Vector(0, 0, -1), core.Point(0, 0, 10), false, core.NewColor(0.1, 0.1, 0.1)},
		{"surface in shadow", core.Vector(0, 0, -1), core.Point(0, 0, -10), true, core.NewColor(0.1, 0.1, 0.1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			light := mustLight(t, tt.light)
			got := m.Lighting(nil, light, position, tt.eye, core.Vector(0, 0, -1), tt.inShadow)
			if !got.EqualTolerance(tt.expected, tolerance) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestLighting_WithPattern(t *testing.T) {
	stripe, err := pattern.NewStripe(core.White, core.Black, core.Identity4())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	m, err := New(WithPattern(stripe), WithAmbient(1), WithDiffuse(0), WithSpecular(0))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	light := mustLight(t, core.Point(0, 0, -10))
	eye := core.Vector(0, 0, -1)
	normal := core.Vector(0, 0, -1)

	if c := m.Lighting(nil, light, core.Point(0.9, 0, 0), eye, normal, false); !c.Equal(core.White) {
		t.Errorf("Expected white at x=0.9, got %v", c)
	}
	if c := m.Lighting(nil, light, core.Point(1.1, 0, 0), eye, normal, false); !c.Equal(core.Black) {
		t.Errorf("Expected black at x=1.1, got %v", c)
	}
}

type halfSpace struct{}

func (halfSpace) WorldToObject(p core.Tuple) core.Tuple {
	return core.Point(p.X/2, p.Y/2, p.Z/2)
}

func TestLighting_PatternUsesObjectSpace(t *testing.T) {
	stripe, err := pattern.NewStripe(core.White, core.Black, core.Identity4())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	m, err := New(WithPattern(stripe), WithAmbient(1), WithDiffuse(0), WithSpecular(0))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	light := mustLight(t, core.Point(0, 0, -10))
	got := m.Lighting(halfSpace{}, light, core.Point(1.5, 0, 0), core.Vector(0, 0, -1), core.Vector(0, 0, -1), false)
	if !got.Equal(core.White) {
		t.Errorf("Expected white once scaled into object space, got %v", got)
	}
}
