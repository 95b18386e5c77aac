package regression

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/FrederikvSvane/bachelor-projekt-sub001/dataset"
	"github.com/FrederikvSvane/bachelor-projekt-sub001/internal/options"
)

var (
	// ErrEmptyInput is returned when there is nothing to fit.
	ErrEmptyInput = errors.New("empty input")
	// ErrLengthMismatch is returned when x and y differ in length.
	ErrLengthMismatch = errors.New("x and y lengths differ")
	// ErrInvalidDegree is returned for degrees outside 1..MaxDegree.
	ErrInvalidDegree = errors.New("invalid polynomial degree")
	// ErrInsufficientData is returned when there are fewer points than coefficients.
	ErrInsufficientData = errors.New("insufficient data points")
	// ErrNonFinite is returned when an input value is NaN or infinite.
	ErrNonFinite = errors.New("non-finite input value")
	// ErrDegenerate is returned when the least-squares system has no unique solution.
	ErrDegenerate = errors.New("degenerate least-squares system")
)

// maxCondition bounds the condition number of the scaled design matrix.
// Beyond it the basis columns are numerically collinear, which happens when
// all problem sizes are equal.
const maxCondition = 1e12

// Analyze fits every configured degree to one observation set and ranks the
// models by R², best first.
//
// Example:
//
//	result, err := regression.Analyze(obs, regression.WithDegrees(2, 3))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	quad := result.Model(regression.ModelTypeQuadratic)
func Analyze(obs dataset.Observations, opts ...AnalyzeOption) (*Result, error) {
	cfg := defaultAnalyzeConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	if obs.Len() == 0 {
		return nil, fmt.Errorf("algorithm %q: %w", obs.Name, ErrEmptyInput)
	}

	result := &Result{
		Name:        obs.Name,
		Fingerprint: obs.Fingerprint(),
		AllModels:   make([]*Model, 0, len(cfg.Degrees)),
	}
	for _, d := range cfg.Degrees {
		model, err := Fit(obs.Sizes, obs.Runtimes, d)
		if err != nil {
			return nil, fmt.Errorf("algorithm %q, degree %d: %w", obs.Name, d, err)
		}
		result.AllModels = append(result.AllModels, model)
	}

	// Stable so that equal R² keeps the requested degree order.
	slices.SortStableFunc(result.AllModels, func(a, b *Model) int {
		return cmp.Compare(b.RSquared, a.RSquared)
	})
	result.BestFit = result.AllModels[0]

	return result, nil
}

// AnalyzeEach analyzes each observation set separately with the same options.
func AnalyzeEach(sets []dataset.Observations, opts ...AnalyzeOption) ([]*Result, error) {
	if len(sets) == 0 {
		return nil, fmt.Errorf("no observation sets provided: %w", ErrEmptyInput)
	}

	results := make([]*Result, len(sets))
	for i, obs := range sets {
		result, err := Analyze(obs, opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to analyze set %d: %w", i, err)
		}
		results[i] = result
	}

	return results, nil
}

// Fit fits y = c₁·x + … + c_d·x^d by ordinary least squares with the
// constant term pinned at zero.
//
// The design matrix columns are scaled to unit max-norm before solving, which
// keeps the QR factorization well conditioned when x spans several orders of
// magnitude.
func Fit(x, y []float64, degree int) (*Model, error) {
	mt, err := ModelTypeForDegree(degree)
	if err != nil {
		return nil, err
	}
	if err := validateInput(x, y, degree); err != nil {
		return nil, err
	}

	n := len(x)
	design := mat.NewDense(n, degree, nil)
	scale := make([]float64, degree)
	for j := range degree {
		p := float64(j + 1)
		for i, xi := range x {
			v := math.Pow(xi, p)
			design.Set(i, j, v)
			scale[j] = max(scale[j], math.Abs(v))
		}
	}
	for j, s := range scale {
		if s == 0 {
			return nil, fmt.Errorf("%w: basis column x^%d is all zero", ErrDegenerate, j+1)
		}
		col := mat.Col(nil, j, design)
		floats.Scale(1/s, col)
		design.SetCol(j, col)
	}

	if c := mat.Cond(design, 2); c > maxCondition {
		return nil, fmt.Errorf("%w: condition number %.3g", ErrDegenerate, c)
	}

	var beta mat.VecDense
	if err := beta.SolveVec(design, mat.NewVecDense(n, slices.Clone(y))); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDegenerate, err)
	}

	coeffs := make([]float64, degree)
	for j := range coeffs {
		coeffs[j] = beta.AtVec(j) / scale[j]
	}

	est := &PolynomialEstimator{typ: mt, coeffs: coeffs}
	predicted := make([]float64, n)
	for i, xi := range x {
		predicted[i] = est.Estimate(xi)
	}

	return &Model{
		Type:         mt,
		Coefficients: slices.Clone(coeffs),
		RSquared:     calculateRSquared(y, predicted),
		RMSE:         calculateRMSE(y, predicted),
		Formula:      formatFormula(coeffs),
		N:            n,
		Estimator:    est,
	}, nil
}

func validateInput(x, y []float64, degree int) error {
	if len(x) == 0 || len(y) == 0 {
		return ErrEmptyInput
	}
	if len(x) != len(y) {
		return fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(x), len(y))
	}
	if len(x) < degree {
		return fmt.Errorf("%w: degree %d needs at least %d points, got %d", ErrInsufficientData, degree, degree, len(x))
	}
	for i := range x {
		if !isFinite(x[i]) || !isFinite(y[i]) {
			return fmt.Errorf("%w at index %d: (%g, %g)", ErrNonFinite, i, x[i], y[i])
		}
	}

	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// calculateRSquared returns 1 - SS_res/SS_tot. When the observations have
// zero variance the result is 1 for an exact fit and 0 otherwise.
func calculateRSquared(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	mean := stat.Mean(observed, nil)
	ssTot := 0.0
	for _, v := range observed {
		ssTot += (v - mean) * (v - mean)
	}
	if ssTot == 0 {
		if floats.Equal(observed, predicted) {
			return 1
		}

		return 0
	}

	return stat.RSquaredFrom(predicted, observed, nil)
}

// calculateRMSE returns √(Σ(observed - predicted)² / n).
func calculateRMSE(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	return floats.Distance(observed, predicted, 2) / math.Sqrt(float64(len(observed)))
}
