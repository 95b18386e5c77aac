package regression

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/FrederikvSvane/bachelor-projekt-sub001/dataset"
)

func sizes(from, to, step float64) []float64 {
	var xs []float64
	for x := from; x <= to; x += step {
		xs = append(xs, x)
	}

	return xs
}

func apply(xs []float64, f func(float64) float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = f(x)
	}

	return ys
}

func TestFit_RecoversQuadratic(t *testing.T) {
	x := sizes(10, 2500, 10)
	y := apply(x, func(v float64) float64 { return 2 * v * v })

	model, err := Fit(x, y, 2)
	require.NoError(t, err)
	require.Equal(t, ModelTypeQuadratic, model.Type)
	require.Len(t, model.Coefficients, 2)
	require.InDelta(t, 0, model.Coefficients[0], 1e-6)
	require.InDelta(t, 2, model.Coefficients[1], 1e-9)
	require.InDelta(t, 1.0, model.RSquared, 1e-12)
	require.Less(t, model.RMSE, 1e-3)
	require.Equal(t, len(x), model.N)
}

func TestFit_RecoversLinear(t *testing.T) {
	x := sizes(10, 2500, 10)
	y := apply(x, func(v float64) float64 { return 5 * v })

	model, err := Fit(x, y, 1)
	require.NoError(t, err)
	require.Equal(t, ModelTypeLinear, model.Type)
	require.InDelta(t, 5, model.Coefficients[0], 1e-12)
	require.InDelta(t, 1.0, model.RSquared, 1e-12)
	require.Equal(t, "y = 5x", model.Formula)
}

func TestFit_RecoversCubic(t *testing.T) {
	x := sizes(10, 500, 5)
	y := apply(x, func(v float64) float64 { return 0.5*v + 0.01*v*v + 1e-4*v*v*v })

	model, err := Fit(x, y, 3)
	require.NoError(t, err)
	require.InEpsilon(t, 0.5, model.Coefficients[0], 1e-6)
	require.InEpsilon(t, 0.01, model.Coefficients[1], 1e-6)
	require.InEpsilon(t, 1e-4, model.Coefficients[2], 1e-6)
	require.InDelta(t, 1.0, model.RSquared, 1e-12)
}

func TestFit_NoIntercept(t *testing.T) {
	// A constant offset cannot be absorbed by an origin-pinned line.
	x := []float64{1, 2, 3, 4}
	y := []float64{11, 12, 13, 14}

	model, err := Fit(x, y, 1)
	require.NoError(t, err)

	// Closed form for the no-intercept slope: Σxy / Σx².
	require.InDelta(t, 130.0/30.0, model.Coefficients[0], 1e-12)
	require.InDelta(t, 0, model.Estimator.Estimate(0), 0)
	require.Less(t, model.RSquared, 1.0)
}

func TestFit_NoisyData(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	x := sizes(10, 2500, 25)
	y := apply(x, func(v float64) float64 { return 3e-6*v*v + 1e-3*v + rng.NormFloat64()*0.5 })

	quad, err := Fit(x, y, 2)
	require.NoError(t, err)
	line, err := Fit(x, y, 1)
	require.NoError(t, err)

	require.Greater(t, quad.RSquared, 0.9)
	require.Greater(t, quad.RSquared, line.RSquared)
	require.InEpsilon(t, 3e-6, quad.Coefficients[1], 0.1)
}

func TestFit_Errors(t *testing.T) {
	tests := []struct {
		name    string
		x, y    []float64
		degree  int
		wantErr error
	}{
		{"empty", nil, nil, 1, ErrEmptyInput},
		{"length mismatch", []float64{1, 2}, []float64{1}, 1, ErrLengthMismatch},
		{"degree zero", []float64{1, 2}, []float64{1, 2}, 0, ErrInvalidDegree},
		{"degree four", []float64{1, 2, 3, 4, 5}, []float64{1, 2, 3, 4, 5}, 4, ErrInvalidDegree},
		{"too few points", []float64{1, 2}, []float64{1, 4}, 3, ErrInsufficientData},
		{"nan runtime", []float64{1, 2}, []float64{1, math.NaN()}, 1, ErrNonFinite},
		{"infinite size", []float64{math.Inf(1), 2}, []float64{1, 2}, 1, ErrNonFinite},
		{"all sizes zero", []float64{0, 0, 0}, []float64{1, 2, 3}, 1, ErrDegenerate},
		{"collinear basis", []float64{3, 3, 3}, []float64{1, 2, 3}, 2, ErrDegenerate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model, err := Fit(tt.x, tt.y, tt.degree)
			require.ErrorIs(t, err, tt.wantErr)
			require.Nil(t, model)
		})
	}
}

func TestFit_ExactlyDetermined(t *testing.T) {
	model, err := Fit([]float64{1, 2}, []float64{3, 10}, 2)
	require.NoError(t, err)
	// 3 = a + b, 10 = 2a + 4b
	require.InDelta(t, 1, model.Coefficients[0], 1e-9)
	require.InDelta(t, 2, model.Coefficients[1], 1e-9)
}

func TestCalculateRSquared(t *testing.T) {
	tests := []struct {
		name      string
		observed  []float64
		predicted []float64
		want      float64
	}{
		{"perfect", []float64{1, 2, 3}, []float64{1, 2, 3}, 1},
		{"mean predictor", []float64{1, 2, 3}, []float64{2, 2, 2}, 0},
		{"worse than mean", []float64{1, 2, 3}, []float64{3, 2, 1}, -3},
		{"constant exact", []float64{0, 0, 0}, []float64{0, 0, 0}, 1},
		{"constant inexact", []float64{2, 2, 2}, []float64{1, 2, 3}, 0},
		{"empty", nil, nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.want, calculateRSquared(tt.observed, tt.predicted), 1e-12)
		})
	}
}

func TestCalculateRMSE(t *testing.T) {
	require.InDelta(t, 0, calculateRMSE([]float64{1, 2}, []float64{1, 2}), 0)
	require.InDelta(t, math.Sqrt(2.5), calculateRMSE([]float64{0, 0}, []float64{1, 2}), 1e-12)
	require.Zero(t, calculateRMSE(nil, nil))
}

func quadraticSet(name string) dataset.Observations {
	x := sizes(10, 200, 10)

	return dataset.Observations{
		Name:     name,
		Sizes:    x,
		Runtimes: apply(x, func(v float64) float64 { return 0.002*v*v + 0.01*v }),
	}
}

func TestAnalyze(t *testing.T) {
	obs := quadraticSet("graph_solver_seconds")

	result, err := Analyze(obs)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if len(result.AllModels) != 3 {
		t.Fatalf("Expected 3 models, got %d", len(result.AllModels))
	}

	for i := 1; i < len(result.AllModels); i++ {
		if result.AllModels[i-1].RSquared < result.AllModels[i].RSquared {
			t.Errorf("Models not sorted by R²: model %d has R²=%.6f, model %d has R²=%.6f",
				i-1, result.AllModels[i-1].RSquared, i, result.AllModels[i].RSquared)
		}
	}

	if result.BestFit != result.AllModels[0] {
		t.Error("BestFit should be the first model in AllModels")
	}

	require.Equal(t, "graph_solver_seconds", result.Name)
	require.Equal(t, obs.Fingerprint(), result.Fingerprint)

	quad := result.Model(ModelTypeQuadratic)
	require.NotNil(t, quad)
	require.InDelta(t, 0.002, quad.Coefficients[1], 1e-9)
	require.InDelta(t, 0.01, quad.Coefficients[0], 1e-7)

	linear := result.Model(ModelTypeLinear)
	require.NotNil(t, linear)
	require.Less(t, linear.RSquared, quad.RSquared)
}

func TestAnalyze_WithDegrees(t *testing.T) {
	result, err := Analyze(quadraticSet("a"), WithDegrees(3, 2, 3))
	require.NoError(t, err)
	require.Len(t, result.AllModels, 2)
	require.Nil(t, result.Model(ModelTypeLinear))

	result, err = Analyze(quadraticSet("a"), WithModelTypes(ModelTypeLinear))
	require.NoError(t, err)
	require.Len(t, result.AllModels, 1)
	require.Equal(t, ModelTypeLinear, result.BestFit.Type)

	_, err = Analyze(quadraticSet("a"), WithDegrees(4))
	require.ErrorIs(t, err, ErrInvalidDegree)

	_, err = Analyze(quadraticSet("a"), WithDegrees())
	require.Error(t, err)
	require.Contains(t, err.Error(), "degrees:")
}

func TestAnalyze_Errors(t *testing.T) {
	_, err := Analyze(dataset.Observations{Name: "local_search_seconds"})
	require.ErrorIs(t, err, ErrEmptyInput)
	require.Contains(t, err.Error(), "local_search_seconds")

	short := dataset.Observations{Name: "graph_solver_seconds", Sizes: []float64{10, 20}, Runtimes: []float64{1, 2}}
	_, err = Analyze(short, WithDegrees(3))
	require.ErrorIs(t, err, ErrInsufficientData)
	require.Contains(t, err.Error(), `algorithm "graph_solver_seconds", degree 3`)
}

func TestAnalyzeEach(t *testing.T) {
	a := quadraticSet("a")
	bx := sizes(10, 200, 10)
	b := dataset.Observations{Name: "b", Sizes: bx, Runtimes: apply(bx, func(v float64) float64 { return 5 * v })}

	results, err := AnalyzeEach([]dataset.Observations{a, b}, WithDegrees(1, 2))
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Equal(t, "a", results[0].Name)
	require.Equal(t, ModelTypeQuadratic, results[0].BestFit.Type)
	require.InDelta(t, 5, results[1].Model(ModelTypeLinear).Coefficients[0], 1e-9)

	_, err = AnalyzeEach(nil)
	require.ErrorIs(t, err, ErrEmptyInput)

	_, err = AnalyzeEach([]dataset.Observations{a, {Name: "empty"}})
	require.ErrorIs(t, err, ErrEmptyInput)
	require.Contains(t, err.Error(), "set 1")
}

func TestIndependentFits(t *testing.T) {
	a := quadraticSet("a")
	before, err := Fit(a.Sizes, a.Runtimes, 2)
	require.NoError(t, err)

	bx := sizes(10, 200, 10)
	_, err = AnalyzeEach([]dataset.Observations{a, {Name: "b", Sizes: bx, Runtimes: apply(bx, math.Sqrt)}})
	require.NoError(t, err)

	after, err := Fit(a.Sizes, a.Runtimes, 2)
	require.NoError(t, err)
	require.Equal(t, before.Coefficients, after.Coefficients)
}

func TestResultString(t *testing.T) {
	require.Equal(t, "Result{BestFit: nil}", (&Result{}).String())

	m := &Model{Type: ModelTypeLinear, RSquared: 1, RMSE: 0, Formula: "y = 5x"}
	r := &Result{Name: "b", BestFit: m, AllModels: []*Model{m}}
	require.Equal(t, "Result{Name: b, BestFit: Model{Type: linear, R²: 1.0000, RMSE: 0, Formula: y = 5x}, TotalModels: 1}", r.String())
}

func BenchmarkFit(b *testing.B) {
	x := sizes(10, 2500, 1)
	y := apply(x, func(v float64) float64 { return 1e-6*v*v*v + 2e-3*v*v })

	for _, degree := range []int{1, 2, 3} {
		b.Run(ModelType(degree).String(), func(b *testing.B) {
			for b.Loop() {
				_, _ = Fit(x, y, degree)
			}
		})
	}
}
