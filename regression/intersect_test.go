package regression

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoots(t *testing.T) {
	t.Run("two distinct roots", func(t *testing.T) {
		r1, r2, ok := Roots(1, -3, 2)
		require.True(t, ok)
		require.InDelta(t, 2, r1, 1e-12)
		require.InDelta(t, 1, r2, 1e-12)
	})

	t.Run("double root is reported twice", func(t *testing.T) {
		r1, r2, ok := Roots(1, -4, 4)
		require.True(t, ok)
		require.Equal(t, r1, r2)
		require.InDelta(t, 2, r1, 1e-12)
	})

	t.Run("negative discriminant", func(t *testing.T) {
		_, _, ok := Roots(1, 0, 1)
		require.False(t, ok)
	})

	t.Run("zero leading coefficient", func(t *testing.T) {
		_, _, ok := Roots(0, 2, -4)
		require.False(t, ok)
	})
}

func TestIntersect(t *testing.T) {
	tests := []struct {
		name      string
		quadratic []float64
		linear    []float64
		window    Window
		want      []Point
	}{
		{
			// 2x² = 10x at x = 0 and x = 5, both below the window.
			name:      "roots outside default window",
			quadratic: []float64{0, 2},
			linear:    []float64{10},
			window:    DefaultWindow,
			want:      []Point{},
		},
		{
			name:      "single crossing inside window",
			quadratic: []float64{1, 0.01},
			linear:    []float64{5},
			window:    DefaultWindow,
			want:      []Point{{X: 400, Y: 2000}},
		},
		{
			name:      "crossing beyond window max",
			quadratic: []float64{1, 0.001},
			linear:    []float64{10},
			window:    DefaultWindow,
			want:      []Point{},
		},
		{
			name:      "crossing accepted by wider window",
			quadratic: []float64{1, 0.001},
			linear:    []float64{10},
			window:    Window{Min: 10, Max: 10000},
			want:      []Point{{X: 9000, Y: 90000}},
		},
		{
			name:      "window bounds are inclusive",
			quadratic: []float64{0, 1},
			linear:    []float64{10},
			window:    DefaultWindow,
			want:      []Point{{X: 10, Y: 100}},
		},
		{
			// -0.01x² = -2x at x = 200 but the line is negative there.
			name:      "non-positive linear value is discarded",
			quadratic: []float64{0, -0.01},
			linear:    []float64{-2},
			window:    DefaultWindow,
			want:      []Point{},
		},
		{
			name:      "zero leading coefficient",
			quadratic: []float64{3, 0},
			linear:    []float64{1},
			window:    DefaultWindow,
			want:      []Point{},
		},
		{
			name:      "identical slopes meet only at origin",
			quadratic: []float64{5, 1},
			linear:    []float64{5},
			window:    Window{Min: 0, Max: 100},
			want:      []Point{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Intersect(tt.quadratic, tt.linear, tt.window)
			require.NoError(t, err)
			require.NotNil(t, got)
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				require.InDelta(t, tt.want[i].X, got[i].X, 1e-6)
				require.InDelta(t, tt.want[i].Y, got[i].Y, 1e-6)
			}
		})
	}
}

func TestIntersect_PointsLieOnBothCurves(t *testing.T) {
	quad := NewPolynomialEstimator(0.002, 3e-5)
	line := NewPolynomialEstimator(0.05)

	points, err := Intersect(quad.Coefficients(), line.Coefficients(), DefaultWindow)
	require.NoError(t, err)
	require.Len(t, points, 1)

	p := points[0]
	require.InDelta(t, quad.Estimate(p.X), p.Y, 1e-9)
	require.InDelta(t, line.Estimate(p.X), p.Y, 1e-9)
	require.InDelta(t, 1600, p.X, 1e-6)
}

func TestIntersect_Errors(t *testing.T) {
	_, err := Intersect([]float64{1, 2, 3}, []float64{1}, DefaultWindow)
	require.ErrorIs(t, err, ErrInvalidDegree)

	_, err = Intersect([]float64{1, 2}, []float64{1, 2}, DefaultWindow)
	require.ErrorIs(t, err, ErrInvalidDegree)

	_, err = Intersect([]float64{1, 2}, []float64{1}, Window{Min: 10, Max: 5})
	require.ErrorIs(t, err, ErrInvalidWindow)

	_, err = Intersect([]float64{1, 2}, []float64{1}, Window{Min: math.NaN(), Max: 5})
	require.ErrorIs(t, err, ErrInvalidWindow)
}

func TestIntersectModels(t *testing.T) {
	x := sizes(10, 1000, 10)
	quad, err := Fit(x, apply(x, func(v float64) float64 { return v + 0.01*v*v }), 2)
	require.NoError(t, err)
	line, err := Fit(x, apply(x, func(v float64) float64 { return 5 * v }), 1)
	require.NoError(t, err)

	points, err := IntersectModels(quad, line, DefaultWindow)
	require.NoError(t, err)
	require.Len(t, points, 1)
	require.InDelta(t, 400, points[0].X, 1e-4)
	require.Equal(t, "(400.0, 2000)", FormatPoint(points[0]))

	_, err = IntersectModels(nil, line, DefaultWindow)
	require.ErrorIs(t, err, ErrInvalidDegree)
}

func TestWindow(t *testing.T) {
	require.True(t, DefaultWindow.Contains(10))
	require.True(t, DefaultWindow.Contains(2500))
	require.False(t, DefaultWindow.Contains(9.999))
	require.False(t, DefaultWindow.Contains(2500.001))
	require.NoError(t, DefaultWindow.Validate())
	require.NoError(t, Window{Min: 3, Max: 3}.Validate())
}
