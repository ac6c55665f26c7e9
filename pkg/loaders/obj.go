package loaders

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// DefaultGroupName names the group that collects faces seen before any "g" statement
const DefaultGroupName = "default"

// OBJData is the result of parsing a Wavefront OBJ file
type OBJData struct {
	Vertices     []core.Tuple      // Vertex positions in file order
	Groups       []*geometry.Group // Named groups in order of first appearance
	Triangles    int               // Triangles created from faces
	IgnoredLines int               // Non-blank lines that were not understood
}

// Vertex returns a vertex by its 1-based OBJ index
func (d *OBJData) Vertex(index int) (core.Tuple, error) {
	if index < 1 || index > len(d.Vertices) {
		return core.Tuple{}, fmt.Errorf("vertex %d out of range [1, %d]", index, len(d.Vertices))
	}
	return d.Vertices[index-1], nil
}

// Group returns the group with the given name, or nil
func (d *OBJData) Group(name string) *geometry.Group {
	for _, g := range d.Groups {
		if g.Name() == name {
			return g
		}
	}
	return nil
}

// ToGroup moves every parsed group into a single new group
func (d *OBJData) ToGroup(opts ...geometry.Option) (*geometry.Group, error) {
	root, err := geometry.NewGroup(opts...)
	if err != nil {
		return nil, err
	}
	for _, g := range d.Groups {
		root.Add(g)
	}
	return root, nil
}

// LoadOBJ reads and parses an OBJ file
func LoadOBJ(filename string, logger core.Logger, opts ...geometry.Option) (*OBJData, error) {
	startTime := time.Now()
	if logger == nil {
		logger = core.NewNopLogger()
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open OBJ file: %w", err)
	}
	defer file.Close()

	data, err := ParseOBJ(file, logger, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	logger.Printf("Loaded OBJ %s: %d vertices, %d triangles, %d groups, %d ignored lines in %v\n",
		filename, len(data.Vertices), data.Triangles, len(data.Groups), data.IgnoredLines, time.Since(startTime))
	return data, nil
}

// ParseOBJ reads vertices ("v"), faces ("f") and groups ("g") from r.
// Polygons are fan-triangulated, and opts are applied to every triangle.
// Malformed or unsupported lines are logged and counted, not treated as errors.
func ParseOBJ(r io.Reader, logger core.Logger, opts ...geometry.Option) (*OBJData, error) {
	if logger == nil {
		logger = core.NewNopLogger()
	}
	p := &objParser{data: &OBJData{}, logger: logger, opts: opts}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	for lineNum := 1; scanner.Scan(); lineNum++ {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		var err error
		switch fields[0] {
		case "v":
			err = p.parseVertex(fields[1:])
		case "f":
			err = p.parseFace(fields[1:])
		case "g":
			err = p.parseGroup(fields[1:])
		default:
			p.data.IgnoredLines++
			continue
		}

		if errors.Is(err, errMalformed) {
			p.logger.Printf("OBJ line %d ignored: %v\n", lineNum, err)
			p.data.IgnoredLines++
		} else if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading OBJ data: %w", err)
	}
	return p.data, nil
}

// errMalformed marks a line that is skipped instead of failing the parse
var errMalformed = errors.New("malformed line")

type objParser struct {
	data    *OBJData
	logger  core.Logger
	opts    []geometry.Option
	current *geometry.Group
}

func (p *objParser) parseVertex(args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("%w: vertex needs 3 coordinates, got %d", errMalformed, len(args))
	}
	var xyz [3]float64
	for i := range xyz {
		v, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return fmt.Errorf("%w: invalid vertex coordinate %q", errMalformed, args[i])
		}
		xyz[i] = v
	}
	p.data.Vertices = append(p.data.Vertices, core.Point(xyz[0], xyz[1], xyz[2]))
	return nil
}

// vertexIndex resolves a face reference such as "3", "3/1" or "3/1/2".
// Negative indices count back from the last vertex.
func (p *objParser) vertexIndex(ref string) (core.Tuple, error) {
	if slash := strings.IndexByte(ref, '/'); slash >= 0 {
		ref = ref[:slash]
	}
	index, err := strconv.Atoi(ref)
	if err != nil {
		return core.Tuple{}, fmt.Errorf("%w: invalid vertex reference %q", errMalformed, ref)
	}
	if index < 0 {
		index = len(p.data.Vertices) + index + 1
	}
	v, err := p.data.Vertex(index)
	if err != nil {
		return core.Tuple{}, fmt.Errorf("%w: %v", errMalformed, err)
	}
	return v, nil
}

func (p *objParser) parseFace(args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("%w: face needs at least 3 vertices, got %d", errMalformed, len(args))
	}
	vs := make([]core.Tuple, len(args))
	for i, ref := range args {
		v, err := p.vertexIndex(ref)
		if err != nil {
			return err
		}
		vs[i] = v
	}

	group, err := p.currentGroup()
	if err != nil {
		return err
	}

	for i := 1; i < len(vs)-1; i++ {
		tri, err := geometry.NewTriangle(vs[0], vs[i], vs[i+1], p.opts...)
		if err != nil {
			return err
		}
		group.Add(tri)
		p.data.Triangles++
	}
	return nil
}

func (p *objParser) currentGroup() (*geometry.Group, error) {
	if p.current == nil {
		if err := p.selectGroup(DefaultGroupName); err != nil {
			return nil, err
		}
	}
	return p.current, nil
}

func (p *objParser) parseGroup(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: group statement without a name", errMalformed)
	}
	return p.selectGroup(args[0])
}

// selectGroup makes the named group current, creating it on first use
func (p *objParser) selectGroup(name string) error {
	if g := p.data.Group(name); g != nil {
		p.current = g
		return nil
	}
	g, err := geometry.NewGroup(geometry.WithName(name))
	if err != nil {
		return err
	}
	p.data.Groups = append(p.data.Groups, g)
	p.current = g
	return nil
}
