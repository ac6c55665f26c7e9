package core

import (
	"math"
	"testing"
)

func TestMergePoints(t *testing.T) {
	b := MergePoints(Point(-5, 2, 0), Point(7, 0, -3), Point(1, 4, 9))
	if !b.Min.Equal(Point(-5, 0, -3)) || !b.Max.Equal(Point(7, 4, 9)) {
		t.Errorf("Unexpected bounds %+v", b)
	}

	if !MergePoints().IsEmpty() {
		t.Error("Merging no points should give empty bounds")
	}
}

func TestBounds_Transform(t *testing.T) {
	unit := NewBounds(Point(-1, -1, -1), Point(1, 1, 1))

	moved := unit.Transform(Translation(2, 0, 0))
	if !moved.Min.Equal(Point(1, -1, -1)) || !moved.Max.Equal(Point(3, 1, 1)) {
		t.Errorf("Unexpected translated bounds %+v", moved)
	}

	rotated := unit.Transform(RotationY(math.Pi / 4))
	s := math.Sqrt2
	if !rotated.Min.Equal(Point(-s, -1, -s)) || !rotated.Max.Equal(Point(s, 1, s)) {
		t.Errorf("Unexpected rotated bounds %+v", rotated)
	}

	plane := NewBounds(Point(math.Inf(-1), 0, math.Inf(-1)), Point(math.Inf(1), 0, math.Inf(1)))
	if got := plane.Transform(RotationX(0.3)); got.IsFinite() || got.IsEmpty() {
		t.Errorf("Unbounded box should stay unbounded, got %+v", got)
	}
}

func TestBounds_Intersect(t *testing.T) {
	box := NewBounds(Point(-1, -1, -1), Point(1, 1, 1))

	tests := []struct {
		name      string
		origin    Tuple
		direction Tuple
		hit       bool
		tMin      float64
		tMax      float64
	}{
		{"+x", Point(5, 0.5, 0), Vector(-1, 0, 0), true, 4, 6},
		{"-x", Point(-5, 0.5, 0), Vector(1, 0, 0), true, 4, 6},
		{"+y", Point(0.5, 5, 0), Vector(0, -1, 0), true, 4, 6},
		{"-z", Point(0.5, 0, -5), Vector(0, 0, 1), true, 4, 6},
		{"inside", Point(0, 0.5, 0), Vector(0, 0, 1), true, -1, 1},
		{"miss diagonal", Point(-2, 0, 0), Vector(0.2673, 0.5345, 0.8018), false, 0, 0},
		{"miss parallel", Point(2, 2, 0), Vector(-1, 0, 0), false, 0, 0},
		{"miss parallel outside slab", Point(0, 2, 2), Vector(0, 0, -1), false, 0, 0},
		{"slow ray", Point(-5, 0.5, 0), Vector(1e-6, 0, 0), true, 4e6, 6e6},
		{"slow ray missing", Point(-5, 2, 0), Vector(1e-6, 1e-7, 0), false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tMin, tMax, ok := box.Intersect(Ray{Origin: tt.origin, Direction: tt.direction})
			if ok != tt.hit {
				t.Fatalf("Expected hit=%t, got %t", tt.hit, ok)
			}
			if ok && (!FloatEqual(tMin, tt.tMin) || !FloatEqual(tMax, tt.tMax)) {
				t.Errorf("Expected [%f, %f], got [%f, %f]", tt.tMin, tt.tMax, tMin, tMax)
			}
		})
	}
}

func TestBounds_EmptyNeverHit(t *testing.T) {
	if EmptyBounds().Hit(Ray{Origin: Point(0, 0, -5), Direction: Vector(0, 0, 1)}) {
		t.Error("Empty bounds should never be hit")
	}
}

func TestBounds_CenterAndLongestAxis(t *testing.T) {
	tests := []struct {
		name   string
		bounds Bounds
		center Tuple
		axis   int
	}{
		{"wide", NewBounds(Point(-4, -1, -1), Point(4, 1, 1)), Point(0, 0, 0), 0},
		{"tall", NewBounds(Point(0, 0, 0), Point(1, 6, 2)), Point(0.5, 3, 1), 1},
		{"deep", NewBounds(Point(-1, -1, 2), Point(1, 1, 8)), Point(0, 0, 5), 2},
		{"cube ties to z", NewBounds(Point(-1, -1, -1), Point(1, 1, 1)), Point(0, 0, 0), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if c := tt.bounds.Center(); !c.Equal(tt.center) {
				t.Errorf("Expected center %v, got %v", tt.center, c)
			}
			if a := tt.bounds.LongestAxis(); a != tt.axis {
				t.Errorf("Expected axis %d, got %d", tt.axis, a)
			}
		})
	}
}
