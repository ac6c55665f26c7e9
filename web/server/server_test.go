package server

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

func get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	NewServer(0).Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandleHealth(t *testing.T) {
	rec := get(t, "/api/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("Unexpected body %q", rec.Body.String())
	}
}

func TestHandleScenes(t *testing.T) {
	rec := get(t, "/api/scenes")
	var scenes []SceneInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &scenes); err != nil {
		t.Fatalf("Failed to decode scenes: %v", err)
	}
	if len(scenes) != len(scene.Names()) {
		t.Fatalf("Expected %d scenes, got %d", len(scene.Names()), len(scenes))
	}
	for _, s := range scenes {
		if s.Description == "" {
			t.Errorf("Scene %s has no description", s.Name)
		}
	}
}

func TestHandleIndex(t *testing.T) {
	rec := get(t, "/")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "EventSource") {
		t.Errorf("Expected index page, got %d", rec.Code)
	}
}

func TestHandleRender_StreamsTiles(t *testing.T) {
	rec := get(t, "/api/render?scene=default&width=32&height=20&depth=1")
	body := rec.Body.String()

	if ct := rec.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("Expected event stream, got %q", ct)
	}
	// 16 pixel tiles: 2 across, 2 down
	if got := strings.Count(body, "event: tile\n"); got != 4 {
		t.Errorf("Expected 4 tile events, got %d", got)
	}
	if !strings.Contains(body, "event: complete\n") {
		t.Fatal("Expected a complete event")
	}
	if strings.Contains(body, "event: error\n") {
		t.Errorf("Unexpected error event in %q", body)
	}

	completeAt := strings.LastIndex(body, "event: complete\n")
	line := strings.SplitN(body[completeAt:], "\n", 3)[1]
	var complete CompleteUpdate
	if err := json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &complete); err != nil {
		t.Fatalf("Failed to decode complete event: %v", err)
	}
	if complete.TotalPixels != 640 || complete.Tiles != 4 || complete.MaxDepth != 1 {
		t.Errorf("Unexpected completion stats %+v", complete)
	}
}

func TestHandleRender_InvalidRequest(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"width too small", "width=2"},
		{"depth too large", "depth=99"},
		{"unknown scene", "scene=nope&width=16&height=16"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := get(t, "/api/render?"+tt.query).Body.String()
			if !strings.Contains(body, "event: error\n") {
				t.Errorf("Expected error event, got %q", body)
			}
			if strings.Contains(body, "event: complete\n") {
				t.Error("Did not expect a complete event")
			}
		})
	}
}

func TestHandleInspect(t *testing.T) {
	rec := get(t, "/api/inspect?scene=groups&width=40&height=30&x=20&y=15")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp InspectResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !resp.Hit || resp.Object == "" || resp.GeometryType == "" {
		t.Errorf("Expected a named hit, got %+v", resp)
	}
	if resp.Distance <= 0 {
		t.Errorf("Expected positive distance, got %v", resp.Distance)
	}
}

func TestHandleInspect_BadRequest(t *testing.T) {
	for _, query := range []string{
		"width=40&height=30&y=3",
		"width=40&height=30&x=3",
		"width=40&height=30&x=40&y=3",
		"scene=nope&width=40&height=30&x=1&y=1",
	} {
		if rec := get(t, "/api/inspect?"+query); rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", query, rec.Code)
		}
	}
}

func defaultWorldScene(t *testing.T, to core.Tuple) *scene.Scene {
	t.Helper()
	w, err := world.NewDefaultWorld()
	if err != nil {
		t.Fatal(err)
	}
	view, err := core.ViewTransform(core.Point(0, 0, -5), to, core.Vector(0, 1, 0))
	if err != nil {
		t.Fatal(err)
	}
	camera, err := renderer.NewCamera(11, 11, math.Pi/2, view)
	if err != nil {
		t.Fatal(err)
	}
	return &scene.Scene{Name: "test", World: w, Camera: camera}
}

func TestInspectPixel(t *testing.T) {
	resp := inspectPixel(defaultWorldScene(t, core.Point(0, 0, 0)), 5, 5, 5)

	if !resp.Hit || resp.Object != "outer" || resp.GeometryType != "sphere" {
		t.Fatalf("Expected hit on outer sphere, got %+v", resp)
	}
	if math.Abs(resp.Distance-4) > 1e-4 {
		t.Errorf("Expected distance 4, got %v", resp.Distance)
	}
	if math.Abs(resp.Normal[0]) > 1e-4 || math.Abs(resp.Normal[1]) > 1e-4 || math.Abs(resp.Normal[2]+1) > 1e-4 {
		t.Errorf("Expected normal (0, 0, -1), got %v", resp.Normal)
	}
	if resp.Inside || resp.InShadow || len(resp.Path) != 0 {
		t.Errorf("Unexpected flags %+v", resp)
	}
	expected := [3]float64{0.38066, 0.47583, 0.2855}
	for i := range expected {
		if math.Abs(resp.Color[i]-expected[i]) > 1e-4 {
			t.Errorf("Expected color %v, got %v", expected, resp.Color)
			break
		}
	}
}

func TestInspectPixel_Miss(t *testing.T) {
	resp := inspectPixel(defaultWorldScene(t, core.Point(0, 0, -10)), 5, 5, 5)
	if resp.Hit {
		t.Errorf("Expected a miss, got %+v", resp)
	}
}
