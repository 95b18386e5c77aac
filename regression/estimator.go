package regression

import (
	"fmt"
	"slices"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// ModelType represents the type of regression model.
type ModelType int

const (
	// ModelTypeLinear represents y = a·x
	ModelTypeLinear ModelType = iota + 1
	// ModelTypeQuadratic represents y = a·x + b·x²
	ModelTypeQuadratic
	// ModelTypeCubic represents y = a·x + b·x² + c·x³
	ModelTypeCubic
)

// MaxDegree is the highest supported polynomial degree.
const MaxDegree = 3

var modelTypeNames = map[ModelType]string{
	ModelTypeLinear:    "linear",
	ModelTypeQuadratic: "quadratic",
	ModelTypeCubic:     "cubic",
}

// String returns the string representation of the model type.
func (mt ModelType) String() string {
	if name, exists := modelTypeNames[mt]; exists {
		return name
	}

	return "unknown"
}

// Degree returns the polynomial degree of the model type, or 0 if unknown.
func (mt ModelType) Degree() int {
	if _, ok := modelTypeNames[mt]; !ok {
		return 0
	}

	return int(mt)
}

// ModelTypeForDegree returns the model type fitting a polynomial of degree d.
func ModelTypeForDegree(d int) (ModelType, error) {
	mt := ModelType(d)
	if _, ok := modelTypeNames[mt]; !ok {
		return 0, fmt.Errorf("%w: %d", ErrInvalidDegree, d)
	}

	return mt, nil
}

// ModelTypeFromString returns the ModelType for a case-insensitive name.
// Returns ModelType(-1) for unknown names.
func ModelTypeFromString(name string) ModelType {
	for mt, n := range modelTypeNames {
		if strings.EqualFold(n, name) {
			return mt
		}
	}

	return ModelType(-1)
}

// Estimator evaluates a fitted curve.
type Estimator interface {
	// Estimate returns the predicted runtime for problem size x.
	Estimate(x float64) float64
	// Type returns the model type.
	Type() ModelType
	// Degree returns the polynomial degree.
	Degree() int
	// Coefficients returns the coefficients in ascending order of power,
	// starting at x¹. The slice must not be modified.
	Coefficients() []float64
	// SetCoefficients replaces the coefficients. The count must equal the degree.
	SetCoefficients(coeffs []float64) error
}

// PolynomialEstimator evaluates an origin-pinned polynomial.
type PolynomialEstimator struct {
	typ    ModelType
	coeffs []float64
}

var _ Estimator = (*PolynomialEstimator)(nil)

// NewPolynomialEstimator creates an estimator whose degree equals the number
// of coefficients given. It returns nil when that count is not 1, 2 or 3.
func NewPolynomialEstimator(coeffs ...float64) *PolynomialEstimator {
	mt, err := ModelTypeForDegree(len(coeffs))
	if err != nil {
		return nil
	}

	return &PolynomialEstimator{typ: mt, coeffs: slices.Clone(coeffs)}
}

// Estimate evaluates the polynomial with Horner's method.
func (p *PolynomialEstimator) Estimate(x float64) float64 {
	y := 0.0
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		y = y*x + p.coeffs[i]
	}

	return y * x
}

// Type returns the model type.
func (p *PolynomialEstimator) Type() ModelType {
	return p.typ
}

// Degree returns the polynomial degree.
func (p *PolynomialEstimator) Degree() int {
	return p.typ.Degree()
}

// Coefficients returns the coefficients, lowest power first.
func (p *PolynomialEstimator) Coefficients() []float64 {
	return p.coeffs
}

// SetCoefficients updates the coefficients in place.
func (p *PolynomialEstimator) SetCoefficients(coeffs []float64) error {
	if len(coeffs) != p.Degree() {
		return fmt.Errorf("%s model expects exactly %d coefficients, got %d", p.typ, p.Degree(), len(coeffs))
	}
	copy(p.coeffs, coeffs)

	return nil
}

// NewEstimator creates an estimator by model name ("linear", "quadratic" or
// "cubic", case-insensitive) and coefficients.
func NewEstimator(name string, coeffs []float64) (Estimator, error) {
	mt := ModelTypeFromString(name)
	if mt == ModelType(-1) {
		supported := make([]string, 0, len(modelTypeNames))
		for _, n := range modelTypeNames {
			supported = append(supported, n)
		}
		slices.Sort(supported)

		return nil, fmt.Errorf("unknown model type: %s. Supported types: %s", name, strings.Join(supported, ", "))
	}

	est := &PolynomialEstimator{typ: mt, coeffs: make([]float64, mt.Degree())}
	if err := est.SetCoefficients(coeffs); err != nil {
		return nil, err
	}

	return est, nil
}

// Sample evaluates est at n evenly spaced points across w, both ends included.
// It is used to draw fitted curves.
func Sample(est Estimator, w Window, n int) (xs, ys []float64) {
	if n < 2 {
		n = 2
	}
	xs = floats.Span(make([]float64, n), w.Min, w.Max)
	ys = make([]float64, n)
	for i, x := range xs {
		ys[i] = est.Estimate(x)
	}

	return xs, ys
}
