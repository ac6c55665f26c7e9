package canvas

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestNew_IsBlack(t *testing.T) {
	c := New(10, 20)
	if c.Width != 10 || c.Height != 20 {
		t.Fatalf("Expected 10x20, got %dx%d", c.Width, c.Height)
	}
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			if got, _ := c.At(x, y); !got.Equal(core.Black) {
				t.Fatalf("Expected black at (%d, %d), got %v", x, y, got)
			}
		}
	}
}

func TestCanvas_SetAndAt(t *testing.T) {
	c := New(10, 20)
	red := core.NewColor(1, 0, 0)
	if err := c.Set(2, 3, red); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	got, err := c.At(2, 3)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !got.Equal(red) {
		t.Errorf("Expected %v, got %v", red, got)
	}
}

func TestCanvas_OutOfBounds(t *testing.T) {
	c := New(4, 3)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {10, 10}} {
		if _, err := c.At(p[0], p[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("At%v: expected ErrOutOfBounds, got %v", p, err)
		}
		if err := c.Set(p[0], p[1], core.White); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Set%v: expected ErrOutOfBounds, got %v", p, err)
		}
	}
}

func TestNew_PanicsOnInvalidSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic")
		}
	}()
	New(0, 5)
}

func ppm(t *testing.T, c *Canvas) []string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.WritePPM(&buf); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.HasSuffix(out, "\n") {
		t.Error("Expected PPM to end with a newline")
	}
	return strings.Split(strings.TrimSuffix(out, "\n"), "\n")
}

func TestWritePPM_Header(t *testing.T) {
	lines := ppm(t, New(5, 3))
	expected := []string{"P3", "5 3", "255"}
	for i, want := range expected {
		if lines[i] != want {
			t.Errorf("Line %d: expected %q, got %q", i+1, want, lines[i])
		}
	}
}

func TestWritePPM_PixelData(t *testing.T) {
	c := New(5, 3)
	_ = c.Set(0, 0, core.NewColor(1.5, 0, 0))
	_ = c.Set(2, 1, core.NewColor(0, 0.5, 0))
	_ = c.Set(4, 2, core.NewColor(-0.5, 0, 1))

	lines := ppm(t, c)
	expected := []string{
		"255 0 0 0 0 0 0 0 0 0 0 0 0 0 0",
		"0 0 0 0 0 0 0 128 0 0 0 0 0 0 0",
		"0 0 0 0 0 0 0 0 0 0 0 0 0 0 255",
	}
	for i, want := range expected {
		if lines[3+i] != want {
			t.Errorf("Line %d: expected %q, got %q", i+4, want, lines[3+i])
		}
	}
}

func TestWritePPM_SplitsLongLines(t *testing.T) {
	c := New(10, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 10; x++ {
			_ = c.Set(x, y, core.NewColor(1, 0.8, 0.6))
		}
	}

	lines := ppm(t, c)
	expected := []string{
		"255 204 153 255 204 153 255 204 153 255 204 153 255 204 153 255 204",
		"153 255 204 153 255 204 153 255 204 153 255 204 153",
		"255 204 153 255 204 153 255 204 153 255 204 153 255 204 153 255 204",
		"153 255 204 153 255 204 153 255 204 153 255 204 153",
	}
	for i, want := range expected {
		if lines[3+i] != want {
			t.Errorf("Line %d: expected %q, got %q", i+4, want, lines[3+i])
		}
	}
	for i, line := range lines {
		if len(line) > ppmLineLimit {
			t.Errorf("Line %d has %d characters", i+1, len(line))
		}
	}
}

func TestWritePNG(t *testing.T) {
	c := New(3, 2)
	_ = c.Set(1, 1, core.NewColor(1, 0.5, 2))

	var buf bytes.Buffer
	if err := c.WritePNG(&buf); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Unexpected decode error: %v", err)
	}
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Errorf("Unexpected size %v", img.Bounds())
	}
	r, g, b, _ := img.At(1, 1).RGBA()
	if r>>8 != 255 || g>>8 != 128 || b>>8 != 255 {
		t.Errorf("Expected (255, 128, 255), got (%d, %d, %d)", r>>8, g>>8, b>>8)
	}
}

func TestRegionImage_ClipsToCanvas(t *testing.T) {
	c := New(4, 4)
	_ = c.Set(3, 3, core.NewColor(1, 0, 0))

	img := c.RegionImage(image.Rect(2, 2, 10, 10))
	if img.Bounds() != image.Rect(2, 2, 4, 4) {
		t.Fatalf("Expected bounds (2,2)-(4,4), got %v", img.Bounds())
	}
	if got := img.RGBAAt(3, 3); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("Expected red, got %v", got)
	}
	if got := img.RGBAAt(2, 2); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("Expected opaque black, got %v", got)
	}
}

func TestCopyTo_OnlyTouchesRegion(t *testing.T) {
	c := New(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			_ = c.Set(x, y, core.NewColor(1, 1, 1))
		}
	}
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	c.CopyTo(dst, image.Rect(0, 0, 2, 4))

	if got := dst.RGBAAt(1, 3); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("Expected white inside region, got %v", got)
	}
	if got := dst.RGBAAt(2, 0); got != (color.RGBA{}) {
		t.Errorf("Expected untouched pixel outside region, got %v", got)
	}
}
