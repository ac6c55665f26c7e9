package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotInvertible is returned when inverting a matrix whose determinant is zero
var ErrNotInvertible = errors.New("matrix is not invertible")

// Matrix is a square, row-major matrix of float64.
// Matrices are never mutated once built; every operation returns a new one.
type Matrix struct {
	size int
	data []float64
}

var (
	identity2 = newIdentity(2)
	identity3 = newIdentity(3)
	identity4 = newIdentity(4)
)

// NewMatrix creates a size×size matrix from row-major values.
// It panics when the number of values does not match.
func NewMatrix(size int, values ...float64) Matrix {
	if len(values) != size*size {
		panic(fmt.Sprintf("core: %dx%d matrix needs %d values, got %d", size, size, size*size, len(values)))
	}
	data := make([]float64, len(values))
	copy(data, values)
	return Matrix{size: size, data: data}
}

// Identity returns the size×size identity matrix; sizes 2, 3 and 4 are shared singletons
func Identity(size int) Matrix {
	switch size {
	case 2:
		return identity2
	case 3:
		return identity3
	case 4:
		return identity4
	}
	return newIdentity(size)
}

// Identity4 returns the 4×4 identity matrix
func Identity4() Matrix {
	return identity4
}

func newIdentity(size int) Matrix {
	m := Matrix{size: size, data: make([]float64, size*size)}
	for i := 0; i < size; i++ {
		m.data[i*size+i] = 1
	}
	return m
}

// Size returns the number of rows (and columns)
func (m Matrix) Size() int {
	return m.size
}

// At returns the element at row, col
func (m Matrix) At(row, col int) float64 {
	return m.data[row*m.size+col]
}

// Multiply returns m × other
func (m Matrix) Multiply(other Matrix) Matrix {
	if m.size != other.size {
		panic(fmt.Sprintf("core: cannot multiply %dx%d by %dx%d", m.size, m.size, other.size, other.size))
	}
	n := m.size
	result := Matrix{size: n, data: make([]float64, n*n)}
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			var sum float64
			for k := 0; k < n; k++ {
				sum += m.data[row*n+k] * other.data[k*n+col]
			}
			result.data[row*n+col] = sum
		}
	}
	return result
}

// MultiplyTuple returns m × t for a 4×4 matrix
func (m Matrix) MultiplyTuple(t Tuple) Tuple {
	if m.size != 4 {
		panic(fmt.Sprintf("core: cannot multiply %dx%d matrix by a tuple", m.size, m.size))
	}
	d := m.data
	return Tuple{
		X: d[0]*t.X + d[1]*t.Y + d[2]*t.Z + d[3]*t.W,
		Y: d[4]*t.X + d[5]*t.Y + d[6]*t.Z + d[7]*t.W,
		Z: d[8]*t.X + d[9]*t.Y + d[10]*t.Z + d[11]*t.W,
		W: d[12]*t.X + d[13]*t.Y + d[14]*t.Z + d[15]*t.W,
	}
}

// Transpose returns the transposed matrix
func (m Matrix) Transpose() Matrix {
	n := m.size
	result := Matrix{size: n, data: make([]float64, n*n)}
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			result.data[col*n+row] = m.data[row*n+col]
		}
	}
	return result
}

// Determinant computes the determinant by cofactor expansion along the first row
func (m Matrix) Determinant() float64 {
	if m.size == 1 {
		return m.data[0]
	}
	if m.size == 2 {
		return m.data[0]*m.data[3] - m.data[1]*m.data[2]
	}
	var det float64
	for col := 0; col < m.size; col++ {
		det += m.data[col] * m.Cofactor(0, col)
	}
	return det
}

// Submatrix returns a copy with the given row and column removed
func (m Matrix) Submatrix(row, col int) Matrix {
	n := m.size - 1
	result := Matrix{size: n, data: make([]float64, 0, n*n)}
	for r := 0; r < m.size; r++ {
		if r == row {
			continue
		}
		for c := 0; c < m.size; c++ {
			if c == col {
				continue
			}
			result.data = append(result.data, m.data[r*m.size+c])
		}
	}
	return result
}

// Minor returns the determinant of the submatrix at row, col
func (m Matrix) Minor(row, col int) float64 {
	return m.Submatrix(row, col).Determinant()
}

// Cofactor returns the signed minor at row, col
func (m Matrix) Cofactor(row, col int) float64 {
	minor := m.Minor(row, col)
	if (row+col)%2 == 1 {
		return -minor
	}
	return minor
}

// IsInvertible reports whether the determinant is nonzero
func (m Matrix) IsInvertible() bool {
	return m.Determinant() != 0
}

// Inverse returns the cofactor matrix transposed and divided by the determinant
func (m Matrix) Inverse() (Matrix, error) {
	det := m.Determinant()
	if det == 0 {
		return Matrix{}, ErrNotInvertible
	}
	n := m.size
	result := Matrix{size: n, data: make([]float64, n*n)}
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			// transposed write
			result.data[col*n+row] = m.Cofactor(row, col) / det
		}
	}
	return result, nil
}

// Equal compares two matrices element-wise within Epsilon
func (m Matrix) Equal(other Matrix) bool {
	if m.size != other.size {
		return false
	}
	for i := range m.data {
		if !FloatEqual(m.data[i], other.data[i]) {
			return false
		}
	}
	return true
}

func (m Matrix) String() string {
	var sb strings.Builder
	for row := 0; row < m.size; row++ {
		sb.WriteString("|")
		for col := 0; col < m.size; col++ {
			fmt.Fprintf(&sb, " %g", m.At(row, col))
		}
		sb.WriteString(" |\n")
	}
	return sb.String()
}
