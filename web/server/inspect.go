package server

import (
	"fmt"
	"math"
	"net/http"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// InspectResponse describes what the primary ray through a pixel hits
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	Object       string                 `json:"object,omitempty"`
	Path         []string               `json:"path,omitempty"` // Enclosing groups, outermost first
	GeometryType string                 `json:"geometryType,omitempty"`
	Geometry     map[string]interface{} `json:"geometry,omitempty"`
	Material     map[string]interface{} `json:"material,omitempty"`
	Distance     float64                `json:"distance"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Inside       bool                   `json:"inside"`
	InShadow     bool                   `json:"inShadow"`
	N1           float64                `json:"n1"`
	N2           float64                `json:"n2"`
	Reflectance  float64                `json:"reflectance"` // Schlick approximation at the hit
	Color        [3]float64             `json:"color"`
}

// handleInspect reports the first object hit through pixel (x, y)
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	req, err := s.parseSceneRequest(values)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	x, err := parseIntParam(values, "x", -1, 0, req.Width-1)
	if err == nil && x < 0 {
		err = fmt.Errorf("missing x")
	}
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	y, err := parseIntParam(values, "y", -1, 0, req.Height-1)
	if err == nil && y < 0 {
		err = fmt.Errorf("missing y")
	}
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	depth, err := parseIntParam(values, "depth", renderer.DefaultRenderConfig().MaxDepth, 0, MaxDepth)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	sceneObj, err := s.createScene(req, core.NewNopLogger())
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	s.writeJSON(w, http.StatusOK, inspectPixel(sceneObj, x, y, depth))
}

// inspectPixel casts the camera ray through (x, y) and describes the hit
func inspectPixel(sceneObj *scene.Scene, x, y, depth int) InspectResponse {
	ray := sceneObj.Camera.RayForPixel(x, y)
	xs := sceneObj.World.Intersect(ray)
	hit, ok := xs.Hit()
	if !ok {
		return InspectResponse{Hit: false}
	}

	comps := geometry.PrepareComputations(hit, ray, xs)
	geometryType, geometryInfo := extractGeometryInfo(hit.Object)
	color := sceneObj.World.ShadeHit(comps, depth)

	return InspectResponse{
		Hit:          true,
		Object:       hit.Object.Name(),
		Path:         groupPath(hit.Object),
		GeometryType: geometryType,
		Geometry:     geometryInfo,
		Material:     extractMaterialInfo(hit.Object.Material()),
		Distance:     comps.T,
		Point:        tuple3(comps.Point),
		Normal:       tuple3(comps.NormalVector),
		Inside:       comps.Inside,
		InShadow:     sceneObj.World.IsShadowed(comps.OverPoint),
		N1:           comps.N1,
		N2:           comps.N2,
		Reflectance:  comps.Schlick(),
		Color:        [3]float64{color.R, color.G, color.B},
	}
}

// groupPath lists the names of the groups enclosing s, outermost first
func groupPath(s geometry.Shape) []string {
	var path []string
	for g := s.Parent(); g != nil; g = g.Parent() {
		path = append([]string{g.Name()}, path...)
	}
	return path
}

// extractGeometryInfo names the shape type and its defining parameters
func extractGeometryInfo(shape geometry.Shape) (string, map[string]interface{}) {
	properties := map[string]interface{}{}

	switch geom := shape.(type) {
	case *geometry.Sphere:
		return "sphere", properties
	case *geometry.Plane:
		return "plane", properties
	case *geometry.Cube:
		return "cube", properties
	case *geometry.Cylinder:
		properties["minimum"] = jsonFloat(geom.Minimum)
		properties["maximum"] = jsonFloat(geom.Maximum)
		properties["closed"] = geom.Closed
		return "cylinder", properties
	case *geometry.Cone:
		properties["minimum"] = jsonFloat(geom.Minimum)
		properties["maximum"] = jsonFloat(geom.Maximum)
		properties["closed"] = geom.Closed
		return "cone", properties
	case *geometry.Triangle:
		properties["p1"] = tuple3(geom.P1)
		properties["p2"] = tuple3(geom.P2)
		properties["p3"] = tuple3(geom.P3)
		properties["normal"] = tuple3(geom.Normal)
		return "triangle", properties
	default:
		return "unknown", properties
	}
}

// extractMaterialInfo lists the Phong coefficients of m
func extractMaterialInfo(m *material.Material) map[string]interface{} {
	properties := map[string]interface{}{
		"color":           fmt.Sprintf("#%02x%02x%02x", channel(m.Color.R), channel(m.Color.G), channel(m.Color.B)),
		"ambient":         m.Ambient,
		"diffuse":         m.Diffuse,
		"specular":        m.Specular,
		"shininess":       m.Shininess,
		"reflective":      m.Reflective,
		"transparency":    m.Transparency,
		"refractiveIndex": m.RefractiveIndex,
	}
	if m.Pattern != nil {
		properties["pattern"] = fmt.Sprintf("%T", m.Pattern)
	}
	return properties
}

func tuple3(t core.Tuple) [3]float64 {
	return [3]float64{t.X, t.Y, t.Z}
}

func channel(v float64) int {
	return int(math.Max(0, math.Min(1, v)) * 255)
}

// jsonFloat maps infinite cylinder bounds to strings, which JSON can encode
func jsonFloat(v float64) interface{} {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return v
}
