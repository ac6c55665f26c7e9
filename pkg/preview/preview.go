// Package preview shows a render in a desktop window while tiles complete.
package preview

import (
	"context"
	"image"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// Window mirrors a canvas on screen. OnTile may be called from any goroutine;
// Run must be called from the main goroutine.
type Window struct {
	title  string
	width  int
	height int
	scale  int

	mu       sync.Mutex
	frame    *image.RGBA
	dirty    bool
	finished bool
	err      error
}

// NewWindow creates a window for a width x height render, drawn scale times larger
func NewWindow(title string, width, height, scale int) *Window {
	if scale < 1 {
		scale = 1
	}
	return &Window{
		title:  title,
		width:  width,
		height: height,
		scale:  scale,
		frame:  image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// OnTile copies a finished tile into the window. Its signature matches the
// callback of renderer.Raytracer.Render.
func (w *Window) OnTile(tile renderer.Tile, c *canvas.Canvas) {
	w.mu.Lock()
	defer w.mu.Unlock()
	c.CopyTo(w.frame, tile.Bounds)
	w.dirty = true
}

// Show copies a whole canvas into the window
func (w *Window) Show(c *canvas.Canvas) {
	w.OnTile(renderer.Tile{Bounds: w.frame.Bounds()}, c)
}

// Run opens the window and calls render on another goroutine. It blocks until
// the window is closed, then cancels render's context, waits for it to return
// and returns its error.
func (w *Window) Run(ctx context.Context, render func(context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		w.finish(render(ctx))
	}()

	ebiten.SetWindowTitle(w.status())
	ebiten.SetWindowSize(w.width*w.scale, w.height*w.scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	runErr := ebiten.RunGame(&game{window: w})

	cancel()
	<-done
	if runErr != nil {
		return runErr
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.err
}

func (w *Window) finish(err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.finished = true
	w.err = err
}

// status is the window title for the current render state
func (w *Window) status() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	switch {
	case !w.finished:
		return w.title + " (rendering)"
	case w.err != nil:
		return w.title + " (failed)"
	default:
		return w.title + " (done)"
	}
}

// game adapts Window to ebiten's game loop
type game struct {
	window *Window
	screen *ebiten.Image
	title  string
}

func (g *game) Update() error {
	if title := g.window.status(); title != g.title {
		ebiten.SetWindowTitle(title)
		g.title = title
	}
	return nil
}

func (g *game) Draw(dst *ebiten.Image) {
	w := g.window
	if g.screen == nil {
		g.screen = ebiten.NewImage(w.width, w.height)
	}

	w.mu.Lock()
	if w.dirty {
		g.screen.WritePixels(w.frame.Pix)
		w.dirty = false
	}
	w.mu.Unlock()

	dst.DrawImage(g.screen, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.window.width, g.window.height
}
