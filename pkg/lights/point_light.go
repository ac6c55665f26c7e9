package lights

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// PointLight is a light source with no size radiating equally in all directions
type PointLight struct {
	Position  core.Tuple
	Intensity core.Color
}

// NewPointLight creates a point light; position must be a point
func NewPointLight(position core.Tuple, intensity core.Color) (PointLight, error) {
	if !position.IsPoint() {
		return PointLight{}, fmt.Errorf("light position %v: %w", position, core.ErrNotPoint)
	}
	return PointLight{Position: position, Intensity: intensity}, nil
}
