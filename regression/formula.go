package regression

import (
	"fmt"
	"math"
	"strings"
)

var powerSuffix = []string{"", "x", "x²", "x³"}

// formatFormula renders coefficients (lowest power first) highest power
// first, e.g. "y = 2x² + 0.5x".
func formatFormula(coeffs []float64) string {
	var b strings.Builder
	b.WriteString("y = ")

	for i := len(coeffs) - 1; i >= 0; i-- {
		c := coeffs[i]
		neg := math.Signbit(c)
		switch {
		case i == len(coeffs)-1 && neg:
			b.WriteString("-")
		case i == len(coeffs)-1:
		case neg:
			b.WriteString(" - ")
		default:
			b.WriteString(" + ")
		}
		b.WriteString(formatCoefficient(math.Abs(c)))
		b.WriteString(powerSuffix[i+1])
	}

	return b.String()
}

// formatCoefficient keeps four significant digits so that tiny cubic terms
// remain readable.
func formatCoefficient(c float64) string {
	return fmt.Sprintf("%.4g", c)
}

// FormatPoint renders an intersection as "(x, y)".
func FormatPoint(p Point) string {
	return fmt.Sprintf("(%.1f, %.4g)", p.X, p.Y)
}
