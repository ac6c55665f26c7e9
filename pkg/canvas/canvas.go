// Package canvas stores rendered pixels and encodes them as PPM or PNG.
package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ErrOutOfBounds is returned when a pixel outside the canvas is accessed
var ErrOutOfBounds = errors.New("pixel out of bounds")

// Canvas is a width x height grid of colors, initially black.
// Distinct pixels may be written concurrently.
type Canvas struct {
	Width  int
	Height int
	pixels []core.Color
}

// New creates a black canvas. It panics if either dimension is not positive.
func New(width, height int) *Canvas {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("canvas: invalid size %dx%d", width, height))
	}
	return &Canvas{
		Width:  width,
		Height: height,
		pixels: make([]core.Color, width*height),
	}
}

func (c *Canvas) index(x, y int) (int, error) {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return 0, fmt.Errorf("(%d, %d) on %dx%d canvas: %w", x, y, c.Width, c.Height, ErrOutOfBounds)
	}
	return y*c.Width + x, nil
}

// At returns the color of pixel (x, y)
func (c *Canvas) At(x, y int) (core.Color, error) {
	i, err := c.index(x, y)
	if err != nil {
		return core.Color{}, err
	}
	return c.pixels[i], nil
}

// Set writes the color of pixel (x, y)
func (c *Canvas) Set(x, y int, color core.Color) error {
	i, err := c.index(x, y)
	if err != nil {
		return err
	}
	c.pixels[i] = color
	return nil
}

// ToImage converts the canvas to an 8-bit RGBA image, clamping each channel
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	c.CopyTo(img, img.Bounds())
	return img
}

// RegionImage converts the pixels inside r to an image whose bounds are r
// clipped to the canvas
func (c *Canvas) RegionImage(r image.Rectangle) *image.RGBA {
	img := image.NewRGBA(r.Intersect(c.bounds()))
	c.CopyTo(img, img.Bounds())
	return img
}

// CopyTo writes the pixels inside r into dst at the same coordinates.
// Pixels outside the canvas or outside dst are skipped.
func (c *Canvas) CopyTo(dst *image.RGBA, r image.Rectangle) {
	r = r.Intersect(c.bounds()).Intersect(dst.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			p := c.pixels[y*c.Width+x]
			dst.SetRGBA(x, y, color.RGBA{
				R: scale255(p.R),
				G: scale255(p.G),
				B: scale255(p.B),
				A: 255,
			})
		}
	}
}

func (c *Canvas) bounds() image.Rectangle {
	return image.Rect(0, 0, c.Width, c.Height)
}

// scale255 maps [0, 1] onto [0, 255], clamping values outside the range
func scale255(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}
