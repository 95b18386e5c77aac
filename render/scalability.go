package render

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/FrederikvSvane/bachelor-projekt-sub001/dataset"
	"github.com/FrederikvSvane/bachelor-projekt-sub001/internal/hash"
	"github.com/FrederikvSvane/bachelor-projekt-sub001/regression"
)

// ErrNothingToPlot is returned when a plot has no data series.
var ErrNothingToPlot = errors.New("nothing to plot")

// Matplotlib's default cycle, kept so the figures match the earlier plots.
var palette = []drawing.Color{
	drawing.ColorFromHex("1f77b4"),
	drawing.ColorFromHex("ff7f0e"),
	drawing.ColorFromHex("2ca02c"),
	drawing.ColorFromHex("d62728"),
	drawing.ColorFromHex("9467bd"),
	drawing.ColorFromHex("8c564b"),
}

var intersectionColor = drawing.ColorFromHex("000000")

// Scatter is one algorithm's measured runtimes.
type Scatter struct {
	Label        string
	Observations dataset.Observations
}

// Curve is a fitted model drawn across the window.
type Curve struct {
	Label string
	Model *regression.Model
	// Dashed draws the curve with a dash pattern.
	Dashed bool
}

// ScalabilityPlot is everything the scalability figure shows.
type ScalabilityPlot struct {
	Title         string
	XLabel        string
	YLabel        string
	Scatters      []Scatter
	Curves        []Curve
	Intersections []regression.Point
	Window        regression.Window
	// Samples is the number of points per curve.
	Samples int
	Width   int
	Height  int
	DPI     float64
}

func pointStyle(col drawing.Color, dpi float64) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    2.5 * dpi / chart.DefaultDPI,
		DotColor:    col,
	}
}

func lineStyle(col drawing.Color, dpi float64, dashed bool) chart.Style {
	st := chart.Style{
		StrokeWidth: 1.5 * dpi / chart.DefaultDPI,
		StrokeColor: col,
	}
	if dashed {
		st.StrokeDashArray = []float64{6 * dpi / chart.DefaultDPI, 4 * dpi / chart.DefaultDPI}
	}

	return st
}

// curveLabel puts the formula and R² into the legend entry.
func curveLabel(c Curve) string {
	return fmt.Sprintf("%s: %s (R² = %.4f)", c.Label, c.Model.Formula, c.Model.RSquared)
}

func (p ScalabilityPlot) validate() error {
	if len(p.Scatters) == 0 && len(p.Curves) == 0 {
		return ErrNothingToPlot
	}
	if err := p.Window.Validate(); err != nil {
		return err
	}
	if p.Window.Min == p.Window.Max {
		return fmt.Errorf("%w: zero-width window", regression.ErrInvalidWindow)
	}
	for _, c := range p.Curves {
		if c.Model == nil || c.Model.Estimator == nil {
			return fmt.Errorf("curve %q has no fitted model", c.Label)
		}
	}
	if p.Width <= 0 || p.Height <= 0 || p.DPI <= 0 {
		return fmt.Errorf("invalid image size %dx%d at %g DPI", p.Width, p.Height, p.DPI)
	}

	return nil
}

func (p ScalabilityPlot) series() []chart.Series {
	series := make([]chart.Series, 0, len(p.Scatters)+len(p.Curves)+2)
	colorIdx := 0
	next := func() drawing.Color {
		c := palette[colorIdx%len(palette)]
		colorIdx++

		return c
	}

	for _, s := range p.Scatters {
		if s.Observations.Len() == 0 {
			continue
		}
		series = append(series, chart.ContinuousSeries{
			Name:    s.Label,
			Style:   pointStyle(next(), p.DPI),
			XValues: s.Observations.Sizes,
			YValues: s.Observations.Runtimes,
		})
	}

	samples := max(p.Samples, 2)
	for _, c := range p.Curves {
		xs, ys := regression.Sample(c.Model.Estimator, p.Window, samples)
		series = append(series, chart.ContinuousSeries{
			Name:    curveLabel(c),
			Style:   lineStyle(next(), p.DPI, c.Dashed),
			XValues: xs,
			YValues: ys,
		})
	}

	if len(p.Intersections) > 0 {
		xs := make([]float64, len(p.Intersections))
		ys := make([]float64, len(p.Intersections))
		annotations := make([]chart.Value2, len(p.Intersections))
		for i, pt := range p.Intersections {
			xs[i], ys[i] = pt.X, pt.Y
			annotations[i] = chart.Value2{XValue: pt.X, YValue: pt.Y, Label: regression.FormatPoint(pt)}
		}

		st := pointStyle(intersectionColor, p.DPI)
		st.DotWidth *= 2
		series = append(series,
			chart.ContinuousSeries{Name: "Intersection", Style: st, XValues: xs, YValues: ys},
			chart.AnnotationSeries{Annotations: annotations},
		)
	}

	return series
}

// Scalability renders the plot as PNG to w.
func Scalability(w io.Writer, p ScalabilityPlot) error {
	if err := p.validate(); err != nil {
		return err
	}

	ch := chart.Chart{
		Title:  p.Title,
		Width:  p.Width,
		Height: p.Height,
		DPI:    p.DPI,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 40, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:  p.XLabel,
			Range: &chart.ContinuousRange{Min: p.Window.Min, Max: p.Window.Max},
		},
		YAxis: chart.YAxis{
			Name: p.YLabel,
		},
		Series: p.series(),
	}
	ch.Elements = []chart.Renderable{chart.LegendLeft(&ch)}

	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}

	return nil
}

// SaveScalability renders the plot and writes it to path. It returns the
// xxHash64 of the PNG bytes so callers can log a fingerprint of the figure.
func SaveScalability(path string, p ScalabilityPlot) (uint64, error) {
	var buf bytes.Buffer
	if err := Scalability(&buf, p); err != nil {
		return 0, err
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", path, err)
	}

	return hash.Bytes(buf.Bytes()), nil
}
