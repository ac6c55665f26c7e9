package core

// Color is an unclamped RGB triple; components may exceed 1.0
type Color struct {
	R, G, B float64
}

var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Subtract returns the difference of two colors
func (c Color) Subtract(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Multiply returns the color scaled by a scalar
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// MultiplyColor returns the Hadamard product of two colors
func (c Color) MultiplyColor(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Average returns the mean of two colors
func (c Color) Average(other Color) Color {
	return Color{(c.R + other.R) / 2, (c.G + other.G) / 2, (c.B + other.B) / 2}
}

// Clamp returns a color with components clamped to [minVal, maxVal]
func (c Color) Clamp(minVal, maxVal float64) Color {
	return Color{
		R: max(minVal, min(maxVal, c.R)),
		G: max(minVal, min(maxVal, c.G)),
		B: max(minVal, min(maxVal, c.B)),
	}
}

// Equal compares two colors within Epsilon
func (c Color) Equal(other Color) bool {
	return c.EqualTolerance(other, Epsilon)
}

// EqualTolerance compares two colors within tolerance
func (c Color) EqualTolerance(other Color, tolerance float64) bool {
	return FloatEqualTolerance(c.R, other.R, tolerance) &&
		FloatEqualTolerance(c.G, other.G, tolerance) &&
		FloatEqualTolerance(c.B, other.B, tolerance)
}
