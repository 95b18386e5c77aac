package main

import (
	"encoding/binary"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/FrederikvSvane/bachelor-projekt-sub001/config"
	"github.com/FrederikvSvane/bachelor-projekt-sub001/dataset"
	"github.com/FrederikvSvane/bachelor-projekt-sub001/regression"
	"github.com/FrederikvSvane/bachelor-projekt-sub001/render"
)

// analysis is everything computed from one input table.
type analysis struct {
	Graph         *regression.Result
	Local         *regression.Result
	GraphObs      dataset.Observations
	LocalObs      dataset.Observations
	Intersections []regression.Point
}

// analyze loads the table, fits both algorithms and intersects the
// quadratic graph-solver fit with the local-search line.
func analyze(cfg *config.Scalability) (*analysis, error) {
	table, err := dataset.Load(cfg.Input, cfg.Columns())
	if err != nil {
		return nil, err
	}
	log.Debug().Int("rows", table.Rows()).Strs("columns", table.Columns()).Msg("table loaded")

	a := &analysis{}
	if a.GraphObs, err = observations(table, cfg.Graph); err != nil {
		return nil, err
	}
	if a.LocalObs, err = observations(table, cfg.Local); err != nil {
		return nil, err
	}

	if a.Graph, err = regression.Analyze(a.GraphObs, regression.WithDegrees(cfg.Graph.Degrees...)); err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.Graph.Label, err)
	}
	if a.Local, err = regression.Analyze(a.LocalObs, regression.WithDegrees(cfg.Local.Degrees...)); err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.Local.Label, err)
	}

	quad := a.Graph.Model(regression.ModelTypeQuadratic)
	line := a.Local.Model(regression.ModelTypeLinear)
	if a.Intersections, err = regression.IntersectModels(quad, line, cfg.Window); err != nil {
		return nil, err
	}
	log.Debug().Int("count", len(a.Intersections)).Msg("intersections found")

	return a, nil
}

func observations(table *dataset.Table, alg config.Algorithm) (dataset.Observations, error) {
	obs, err := table.Observations(alg.Column)
	if err != nil {
		return dataset.Observations{}, fmt.Errorf("%s: %w", alg.Label, err)
	}

	log.Debug().
		Str("algorithm", alg.Label).
		Int("points", obs.Len()).
		Int("dropped", obs.Dropped).
		Hex("xxhash", fingerprint(obs.Fingerprint())).
		Msg("observations ready")

	return obs, nil
}

// plot assembles the figure: both scatters, every fitted curve and the
// crossover points. Higher-degree graph fits are dashed.
func plot(cfg *config.Scalability, a *analysis) render.ScalabilityPlot {
	p := render.ScalabilityPlot{
		Title:  "Runtime scalability",
		XLabel: "Problem size",
		YLabel: "Runtime (s)",
		Scatters: []render.Scatter{
			{Label: cfg.Graph.Label, Observations: a.GraphObs},
			{Label: cfg.Local.Label, Observations: a.LocalObs},
		},
		Intersections: a.Intersections,
		Window:        cfg.Window,
		Samples:       cfg.Samples,
		Width:         cfg.Image.Width,
		Height:        cfg.Image.Height,
		DPI:           cfg.Image.DPI,
	}

	for _, m := range byDegree(a.Graph) {
		p.Curves = append(p.Curves, render.Curve{
			Label:  fmt.Sprintf("%s %s fit", cfg.Graph.Label, m.Type),
			Model:  m,
			Dashed: m.Type != regression.ModelTypeQuadratic,
		})
	}
	for _, m := range byDegree(a.Local) {
		p.Curves = append(p.Curves, render.Curve{
			Label:  fmt.Sprintf("%s %s fit", cfg.Local.Label, m.Type),
			Model:  m,
			Dashed: m.Type != regression.ModelTypeLinear,
		})
	}

	return p
}

// byDegree returns the models ordered by degree so that the plot colours do
// not depend on the R² ranking.
func byDegree(r *regression.Result) []*regression.Model {
	out := make([]*regression.Model, 0, len(r.AllModels))
	for mt := regression.ModelTypeLinear; mt <= regression.ModelTypeCubic; mt++ {
		if m := r.Model(mt); m != nil {
			out = append(out, m)
		}
	}

	return out
}

func fingerprint(sum uint64) []byte {
	return binary.BigEndian.AppendUint64(nil, sum)
}
