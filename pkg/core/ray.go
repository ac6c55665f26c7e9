package core

import (
	"errors"
	"fmt"
)

var (
	// ErrNotPoint is returned when a tuple used as a position has W != 1
	ErrNotPoint = errors.New("tuple is not a point")
	// ErrNotVector is returned when a tuple used as a direction has W != 0
	ErrNotVector = errors.New("tuple is not a vector")
)

// Ray represents a ray with an origin point and a direction vector
type Ray struct {
	Origin    Tuple
	Direction Tuple
}

// NewRay creates a ray, validating that origin is a point and direction a vector
func NewRay(origin, direction Tuple) (Ray, error) {
	if !origin.IsPoint() {
		return Ray{}, fmt.Errorf("ray origin %v: %w", origin, ErrNotPoint)
	}
	if !direction.IsVector() {
		return Ray{}, fmt.Errorf("ray direction %v: %w", direction, ErrNotVector)
	}
	return Ray{Origin: origin, Direction: direction}, nil
}

// Position returns the point at parameter t along the ray
func (r Ray) Position(t float64) Tuple {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Transform returns the ray with m applied to origin and direction
func (r Ray) Transform(m Matrix) Ray {
	return Ray{
		Origin:    m.MultiplyTuple(r.Origin),
		Direction: m.MultiplyTuple(r.Direction),
	}
}
