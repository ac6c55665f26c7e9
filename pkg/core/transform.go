package core

import (
	"fmt"
	"math"
)

// Translation returns a 4×4 translation matrix
func Translation(x, y, z float64) Matrix {
	return NewMatrix(4,
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	)
}

// Scaling returns a 4×4 scaling matrix
func Scaling(x, y, z float64) Matrix {
	return NewMatrix(4,
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	)
}

// RotationX returns a rotation of r radians around the x axis
func RotationX(r float64) Matrix {
	cos, sin := math.Cos(r), math.Sin(r)
	return NewMatrix(4,
		1, 0, 0, 0,
		0, cos, -sin, 0,
		0, sin, cos, 0,
		0, 0, 0, 1,
	)
}

// RotationY returns a rotation of r radians around the y axis
func RotationY(r float64) Matrix {
	cos, sin := math.Cos(r), math.Sin(r)
	return NewMatrix(4,
		cos, 0, sin, 0,
		0, 1, 0, 0,
		-sin, 0, cos, 0,
		0, 0, 0, 1,
	)
}

// RotationZ returns a rotation of r radians around the z axis
func RotationZ(r float64) Matrix {
	cos, sin := math.Cos(r), math.Sin(r)
	return NewMatrix(4,
		cos, -sin, 0, 0,
		sin, cos, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// Shearing returns a shear matrix; xy moves x in proportion to y, and so on
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	return NewMatrix(4,
		1, xy, xz, 0,
		yx, 1, yz, 0,
		zx, zy, 1, 0,
		0, 0, 0, 1,
	)
}

// Chain composes transforms so that the first argument acts first on a point.
// Chain(a, b, c) == c × b × a.
func Chain(transforms ...Matrix) Matrix {
	result := Identity4()
	for _, t := range transforms {
		result = t.Multiply(result)
	}
	return result
}

// ViewTransform orients the world relative to an eye at from looking at to
func ViewTransform(from, to, up Tuple) (Matrix, error) {
	if !from.IsPoint() {
		return Matrix{}, fmt.Errorf("view transform from %v: %w", from, ErrNotPoint)
	}
	if !to.IsPoint() {
		return Matrix{}, fmt.Errorf("view transform to %v: %w", to, ErrNotPoint)
	}
	if !up.IsVector() {
		return Matrix{}, fmt.Errorf("view transform up %v: %w", up, ErrNotVector)
	}

	forward := to.Subtract(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)

	orientation := NewMatrix(4,
		left.X, left.Y, left.Z, 0,
		trueUp.X, trueUp.Y, trueUp.Z, 0,
		-forward.X, -forward.Y, -forward.Z, 0,
		0, 0, 0, 1,
	)
	return orientation.Multiply(Translation(-from.X, -from.Y, -from.Z)), nil
}
