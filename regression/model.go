package regression

import "fmt"

// Model is a fitted curve together with its goodness-of-fit metrics.
type Model struct {
	// Type is the model type (linear, quadratic, cubic).
	Type ModelType
	// Coefficients holds the fitted coefficients, lowest power (x¹) first.
	Coefficients []float64
	// RSquared is the coefficient of determination. It can be negative for
	// very poor fits since the intercept is pinned.
	RSquared float64
	// RMSE is the root mean square error in the runtime unit.
	RMSE float64
	// Formula is a human-readable representation of the model.
	Formula string
	// N is the number of observations the model was fitted to.
	N int
	// Estimator evaluates the fitted curve.
	Estimator Estimator
}

// Degree returns the polynomial degree of the model.
func (m *Model) Degree() int {
	return len(m.Coefficients)
}

// String returns a string representation of the model.
func (m *Model) String() string {
	return fmt.Sprintf("Model{Type: %s, R²: %.4f, RMSE: %.4g, Formula: %s}",
		m.Type, m.RSquared, m.RMSE, m.Formula)
}

// Result holds every model fitted to one observation set.
type Result struct {
	// Name identifies the observation set.
	Name string
	// Fingerprint is the xxHash64 digest of the observations.
	Fingerprint uint64
	// BestFit is the model with the highest R².
	BestFit *Model
	// AllModels contains all fitted models ranked by R² (best first).
	AllModels []*Model
}

// Model returns the fitted model of the given type, or nil.
func (r *Result) Model(mt ModelType) *Model {
	for _, m := range r.AllModels {
		if m.Type == mt {
			return m
		}
	}

	return nil
}

// String returns a string representation of the result.
func (r *Result) String() string {
	if r.BestFit == nil {
		return "Result{BestFit: nil}"
	}

	return fmt.Sprintf("Result{Name: %s, BestFit: %s, TotalModels: %d}",
		r.Name, r.BestFit, len(r.AllModels))
}
