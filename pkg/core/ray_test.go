package core

import (
	"errors"
	"testing"
)

func TestNewRay_Validation(t *testing.T) {
	tests := []struct {
		name        string
		origin      Tuple
		direction   Tuple
		expectedErr error
	}{
		{"valid ray", Point(1, 2, 3), Vector(4, 5, 6), nil},
		{"vector origin", Vector(1, 2, 3), Vector(4, 5, 6), ErrNotPoint},
		{"point direction", Point(1, 2, 3), Point(4, 5, 6), ErrNotVector},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray, err := NewRay(tt.origin, tt.direction)
			if !errors.Is(err, tt.expectedErr) {
				t.Fatalf("Expected error %v, got %v", tt.expectedErr, err)
			}
			if err == nil && (!ray.Origin.Equal(tt.origin) || !ray.Direction.Equal(tt.direction)) {
				t.Errorf("Ray does not hold its origin and direction: %+v", ray)
			}
		})
	}
}

func TestRay_Position(t *testing.T) {
	r := Ray{Origin: Point(2, 3, 4), Direction: Vector(1, 0, 0)}

	tests := []struct {
		t        float64
		expected Tuple
	}{
		{0, Point(2, 3, 4)},
		{1, Point(3, 3, 4)},
		{-1, Point(1, 3, 4)},
		{2.5, Point(4.5, 3, 4)},
	}

	for _, tt := range tests {
		if got := r.Position(tt.t); !got.Equal(tt.expected) {
			t.Errorf("Position(%f): expected %v, got %v", tt.t, tt.expected, got)
		}
	}
}

func TestRay_Transform(t *testing.T) {
	r := Ray{Origin: Point(1, 2, 3), Direction: Vector(0, 1, 0)}

	translated := r.Transform(Translation(3, 4, 5))
	if !translated.Origin.Equal(Point(4, 6, 8)) || !translated.Direction.Equal(Vector(0, 1, 0)) {
		t.Errorf("Unexpected translated ray %+v", translated)
	}

	scaled := r.Transform(Scaling(2, 3, 4))
	if !scaled.Origin.Equal(Point(2, 6, 12)) || !scaled.Direction.Equal(Vector(0, 3, 0)) {
		t.Errorf("Unexpected scaled ray %+v", scaled)
	}

	if !r.Origin.Equal(Point(1, 2, 3)) {
		t.Errorf("Transform must not modify the original ray")
	}
}
