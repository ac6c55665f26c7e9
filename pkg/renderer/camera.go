package renderer

import (
	"context"
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// Camera maps pixels of an HSize x VSize canvas onto rays. The canvas sits
// one unit in front of the eye; Transform orients the view in the world.
type Camera struct {
	HSize       int
	VSize       int
	FieldOfView float64

	transform  core.Matrix
	inverse    core.Matrix
	halfWidth  float64
	halfHeight float64
	pixelSize  float64
}

// NewCamera creates a camera. fieldOfView is in radians and must lie in (0, π).
func NewCamera(hsize, vsize int, fieldOfView float64, transform core.Matrix) (*Camera, error) {
	if hsize <= 0 || vsize <= 0 {
		return nil, fmt.Errorf("camera size %dx%d must be positive", hsize, vsize)
	}
	if !(fieldOfView > 0 && fieldOfView < math.Pi) {
		return nil, fmt.Errorf("camera field of view %g must be in (0, π)", fieldOfView)
	}
	inverse, err := transform.Inverse()
	if err != nil {
		return nil, fmt.Errorf("camera transform: %w", err)
	}

	c := &Camera{
		HSize:       hsize,
		VSize:       vsize,
		FieldOfView: fieldOfView,
		transform:   transform,
		inverse:     inverse,
	}

	halfView := math.Tan(fieldOfView / 2)
	aspect := float64(hsize) / float64(vsize)
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = c.halfWidth * 2 / float64(hsize)
	return c, nil
}

// PixelSize returns the world-space size of one pixel on the canvas plane
func (c *Camera) PixelSize() float64 {
	return c.pixelSize
}

func (c *Camera) Transform() core.Matrix {
	return c.transform
}

// RayForPixel returns the ray from the eye through the center of pixel (px, py)
func (c *Camera) RayForPixel(px, py int) core.Ray {
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.inverse.MultiplyTuple(core.Point(worldX, worldY, -1))
	origin := c.inverse.MultiplyTuple(core.Origin)
	direction := pixel.Subtract(origin).Normalize()

	return core.Ray{Origin: origin, Direction: direction}
}

// Render draws w with the default configuration and no logging
func (c *Camera) Render(ctx context.Context, w *world.World) (*canvas.Canvas, error) {
	img, _, err := NewRaytracer(c, w, DefaultRenderConfig(), core.NewNopLogger()).Render(ctx, nil)
	return img, err
}
