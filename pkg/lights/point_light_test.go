package lights

import (
	"errors"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestNewPointLight(t *testing.T) {
	light, err := NewPointLight(core.Point(0, 0, 0), core.NewColor(1, 1, 1))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !light.Position.Equal(core.Point(0, 0, 0)) {
		t.Errorf("Expected position at origin, got %v", light.Position)
	}
	if !light.Intensity.Equal(core.White) {
		t.Errorf("Expected white intensity, got %v", light.Intensity)
	}
}

func TestNewPointLight_RejectsVectorPosition(t *testing.T) {
	if _, err := NewPointLight(core.Vector(0, 1, 0), core.White); !errors.Is(err, core.ErrNotPoint) {
		t.Errorf("Expected ErrNotPoint, got %v", err)
	}
}
