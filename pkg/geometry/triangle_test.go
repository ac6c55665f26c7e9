package geometry

import (
	"errors"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func defaultTriangle(t *testing.T) *Triangle {
	t.Helper()
	return must(NewTriangle(core.Point(0, 1, 0), core.Point(-1, 0, 0), core.Point(1, 0, 0)))
}

func TestNewTriangle(t *testing.T) {
	tr := defaultTriangle(t)
	assertTuple(t, core.Vector(-1, -1, 0), tr.E1)
	assertTuple(t, core.Vector(1, -1, 0), tr.E2)
	assertTuple(t, core.Vector(0, 0, -1), tr.Normal)
}

func TestNewTriangle_RejectsVectors(t *testing.T) {
	_, err := NewTriangle(core.Point(0, 1, 0), core.Vector(-1, 0, 0), core.Point(1, 0, 0))
	if !errors.Is(err, core.ErrNotPoint) {
		t.Errorf("Expected ErrNotPoint, got %v", err)
	}
}

func TestTriangle_NormalIsConstant(t *testing.T) {
	tr := defaultTriangle(t)
	for _, p := range []core.Tuple{core.Point(0, 0.5, 0), core.Point(-0.5, 0.75, 0), core.Point(0.5, 0.25, 0)} {
		assertTuple(t, tr.Normal, tr.LocalNormalAt(p))
	}
}

func TestTriangle_LocalIntersect(t *testing.T) {
	tr := defaultTriangle(t)

	tests := []struct {
		name      string
		origin    core.Tuple
		direction core.Tuple
		expected  []float64
	}{
		{"parallel", core.Point(0, -1, -2), core.Vector(0, 1, 0), nil},
		{"misses p1-p3 edge", core.Point(1, 1, -2), core.Vector(0, 0, 1), nil},
		{"misses p1-p2 edge", core.Point(-1, 1, -2), core.Vector(0, 0, 1), nil},
		{"misses p2-p3 edge", core.Point(0, -1, -2), core.Vector(0, 0, 1), nil},
		{"strikes triangle", core.Point(0, 0.5, -2), core.Vector(0, 0, 1), []float64{2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTs(t, tr.LocalIntersect(ray(t, tt.origin, tt.direction)), tt.expected...)
		})
	}
}

func TestTriangle_Bounds(t *testing.T) {
	tr := must(NewTriangle(core.Point(-3, 7, 2), core.Point(6, 2, -4), core.Point(2, -1, -1)))
	b := tr.Bounds()
	if !b.Min.Equal(core.Point(-3, -1, -4)) || !b.Max.Equal(core.Point(6, 7, 2)) {
		t.Errorf("Unexpected bounds %+v", b)
	}
}
