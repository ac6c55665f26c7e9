package preview

import (
	"errors"
	"image/color"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

func TestWindow_OnTileCopiesOnlyTile(t *testing.T) {
	c := canvas.New(8, 8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			_ = c.Set(x, y, core.NewColor(0, 1, 0))
		}
	}
	w := NewWindow("test", 8, 8, 2)
	tiles := renderer.NewTileGrid(8, 8, 4)

	w.OnTile(tiles[0], c)

	if !w.dirty {
		t.Error("Expected window to be marked dirty")
	}
	green := color.RGBA{0, 255, 0, 255}
	if got := w.frame.RGBAAt(3, 3); got != green {
		t.Errorf("Expected %v inside tile, got %v", green, got)
	}
	if got := w.frame.RGBAAt(4, 4); got != (color.RGBA{}) {
		t.Errorf("Expected pixel outside tile untouched, got %v", got)
	}
}

func TestWindow_Show(t *testing.T) {
	c := canvas.New(3, 2)
	_ = c.Set(2, 1, core.NewColor(1, 1, 1))
	w := NewWindow("test", 3, 2, 0)

	w.Show(c)

	if w.scale != 1 {
		t.Errorf("Expected scale clamped to 1, got %d", w.scale)
	}
	if got := w.frame.RGBAAt(2, 1); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("Expected white, got %v", got)
	}
}

func TestWindow_Status(t *testing.T) {
	tests := []struct {
		name     string
		finished bool
		err      error
		expected string
	}{
		{"rendering", false, nil, "scene (rendering)"},
		{"done", true, nil, "scene (done)"},
		{"failed", true, errors.New("boom"), "scene (failed)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWindow("scene", 1, 1, 1)
			if tt.finished {
				w.finish(tt.err)
			}
			if got := w.status(); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}
