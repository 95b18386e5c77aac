package regression

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidWindow is returned for a window with Min > Max or non-finite bounds.
var ErrInvalidWindow = errors.New("invalid domain window")

// Window is the closed x-range [Min, Max] over which curves are drawn and
// intersections are accepted.
type Window struct {
	Min float64 `yaml:"min" validate:"gte=0"`
	Max float64 `yaml:"max" validate:"gtfield=Min"`
}

// DefaultWindow is the problem-size range of the scalability plot.
var DefaultWindow = Window{Min: 10, Max: 2500}

// Contains reports whether Min <= x <= Max.
func (w Window) Contains(x float64) bool {
	return x >= w.Min && x <= w.Max
}

// Validate checks that the window is a finite, non-empty interval.
func (w Window) Validate() error {
	if !isFinite(w.Min) || !isFinite(w.Max) || w.Min > w.Max {
		return fmt.Errorf("%w: [%g, %g]", ErrInvalidWindow, w.Min, w.Max)
	}

	return nil
}

// Point is a location where two fitted curves evaluate equal.
type Point struct {
	X float64
	Y float64
}

// Roots solves a·x² + b·x + c = 0 with the quadratic formula.
//
// ok is false when a is exactly zero or the discriminant is negative. A zero
// discriminant yields r1 == r2.
func Roots(a, b, c float64) (r1, r2 float64, ok bool) {
	if a == 0 {
		return 0, 0, false
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, 0, false
	}

	sq := math.Sqrt(disc)

	return (-b + sq) / (2 * a), (-b - sq) / (2 * a), true
}

// Intersect returns the points where a quadratic fit and a linear fit cross.
//
// quadratic holds [c₁, c₂] of y = c₁·x + c₂·x² and linear holds [m] of
// y = m·x. Their difference c₂·x² + (c₁ - m)·x has no constant term and is
// solved with Roots. Each root is kept only if w contains it and the linear
// fit is strictly positive there; y is taken from the linear fit. Both roots
// are filtered independently, so a double root can be reported twice.
//
// An empty, non-nil slice means the curves do not cross inside w.
func Intersect(quadratic, linear []float64, w Window) ([]Point, error) {
	if len(quadratic) != 2 {
		return nil, fmt.Errorf("%w: quadratic curve needs 2 coefficients, got %d", ErrInvalidDegree, len(quadratic))
	}
	if len(linear) != 1 {
		return nil, fmt.Errorf("%w: linear curve needs 1 coefficient, got %d", ErrInvalidDegree, len(linear))
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}

	points := make([]Point, 0, 2)

	slope := linear[0]
	r1, r2, ok := Roots(quadratic[1], quadratic[0]-slope, 0)
	if !ok {
		return points, nil
	}

	for _, x := range []float64{r1, r2} {
		y := slope * x
		if w.Contains(x) && y > 0 {
			points = append(points, Point{X: x, Y: y})
		}
	}

	return points, nil
}

// IntersectModels is Intersect for fitted models.
func IntersectModels(quadratic, linear *Model, w Window) ([]Point, error) {
	if quadratic == nil || linear == nil {
		return nil, fmt.Errorf("%w: missing model", ErrInvalidDegree)
	}

	return Intersect(quadratic.Coefficients, linear.Coefficients, w)
}
