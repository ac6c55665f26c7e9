package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
	"github.com/df07/go-whitted-raytracer/pkg/preview"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// options holds the parsed command line
type options struct {
	Scene   string
	Width   int
	Height  int
	FOV     float64 // Degrees
	Depth   int
	Workers int
	Tile    int
	OBJ     string
	Output  string
	Format  string
	Preview bool
	Help    bool
}

// newFlagSet binds the command line flags to opts
func newFlagSet(opts *options, output io.Writer) *flag.FlagSet {
	defaults := scene.DefaultConfig()
	renderDefaults := renderer.DefaultRenderConfig()

	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.Scene, "scene", "default", "Scene name: "+strings.Join(scene.Names(), ", "))
	fs.IntVar(&opts.Width, "width", defaults.Width, "Image width in pixels")
	fs.IntVar(&opts.Height, "height", defaults.Height, "Image height in pixels")
	fs.Float64Var(&opts.FOV, "fov", defaults.FieldOfView*180/math.Pi, "Field of view in degrees")
	fs.IntVar(&opts.Depth, "depth", renderDefaults.MaxDepth, "Maximum reflection/refraction depth")
	fs.IntVar(&opts.Workers, "workers", 0, "Number of parallel workers (0 = auto-detect)")
	fs.IntVar(&opts.Tile, "tile", renderDefaults.TileSize, "Tile size in pixels")
	fs.StringVar(&opts.OBJ, "obj", "", "OBJ file for the mesh scene (built-in mesh when empty)")
	fs.StringVar(&opts.Output, "output", "output", "Output directory")
	fs.StringVar(&opts.Format, "format", "png", "Output format: png or ppm")
	fs.BoolVar(&opts.Preview, "preview", false, "Show the render in a window as tiles complete")
	fs.BoolVar(&opts.Help, "help", false, "Show help information")
	return fs
}

func parseFlags(args []string, output io.Writer) (options, error) {
	var opts options
	fs := newFlagSet(&opts, output)
	fs.Usage = func() {}
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if opts.Format != "png" && opts.Format != "ppm" {
		return options{}, fmt.Errorf("unknown format %q (use png or ppm)", opts.Format)
	}
	if opts.Depth < 0 {
		return options{}, fmt.Errorf("depth must not be negative, got %d", opts.Depth)
	}
	return opts, nil
}

func printHelp(output io.Writer) {
	fmt.Fprintln(output, "Whitted Raytracer")
	fmt.Fprintln(output, "Usage: raytracer [options]")
	fmt.Fprintln(output)
	fmt.Fprintln(output, "Options:")
	newFlagSet(&options{}, output).PrintDefaults()
	fmt.Fprintln(output)
	fmt.Fprintln(output, "Available scenes:")
	for _, name := range scene.Names() {
		fmt.Fprintf(output, "  %-12s %s\n", name, scene.Description(name))
	}
	fmt.Fprintln(output)
	fmt.Fprintln(output, "Output will be saved to <output>/<scene>/render_<timestamp>.<format>")
}

// createScene builds the selected scene with the command line's camera settings
func createScene(opts options) (*scene.Scene, error) {
	config := scene.DefaultConfig()
	config.Width = opts.Width
	config.Height = opts.Height
	config.FieldOfView = opts.FOV * math.Pi / 180
	config.OBJPath = opts.OBJ
	config.Logger = renderer.NewDefaultLogger()
	return scene.New(opts.Scene, config)
}

// saveCanvas writes c to dir/<scene>/render_<timestamp>.<format>
func saveCanvas(c *canvas.Canvas, dir, sceneName, format string, now time.Time) (string, error) {
	sceneDir := filepath.Join(dir, sceneName)
	if err := os.MkdirAll(sceneDir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	filename := filepath.Join(sceneDir, fmt.Sprintf("render_%s.%s", now.Format("20060102_150405"), format))
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}

	if err := writeCanvas(file, c, format); err != nil {
		os.Remove(filename)
		return "", fmt.Errorf("saving %s: %w", filename, err)
	}
	return filename, nil
}

// writeCanvas encodes c into w and closes it; a failed Close is an error
func writeCanvas(w io.WriteCloser, c *canvas.Canvas, format string) error {
	var err error
	switch format {
	case "png":
		err = c.WritePNG(w)
	case "ppm":
		err = c.WritePPM(w)
	default:
		err = fmt.Errorf("unknown format %q", format)
	}

	if cerr := w.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("closing file: %w", cerr)
	}
	return err
}

func run(ctx context.Context, opts options) error {
	fmt.Println("Starting Whitted Raytracer...")

	selected, err := createScene(opts)
	if err != nil {
		return err
	}
	fmt.Printf("Using %s scene (%dx%d)\n", selected.Name, opts.Width, opts.Height)

	config := renderer.RenderConfig{MaxDepth: opts.Depth, TileSize: opts.Tile, NumWorkers: opts.Workers}
	raytracer := renderer.NewRaytracer(selected.Camera, selected.World, config, renderer.NewDefaultLogger())

	render := func(ctx context.Context, onTile func(renderer.Tile, *canvas.Canvas)) error {
		img, stats, err := raytracer.Render(ctx, onTile)
		if err != nil {
			return err
		}
		fmt.Printf("Render completed in %v using %d workers\n", stats.Duration.Round(time.Millisecond), stats.Workers)

		filename, err := saveCanvas(img, opts.Output, selected.Name, opts.Format, time.Now())
		if err != nil {
			return err
		}
		fmt.Printf("Render saved as %s\n", filename)
		return nil
	}

	if !opts.Preview {
		return render(ctx, nil)
	}
	window := preview.NewWindow("Whitted Raytracer: "+selected.Name, opts.Width, opts.Height, 2)
	return window.Run(ctx, func(ctx context.Context) error {
		return render(ctx, window.OnTile)
	})
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		opts.Help = true
	} else if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(2)
	}
	if opts.Help {
		printHelp(os.Stdout)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
