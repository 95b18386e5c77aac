package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/FrederikvSvane/bachelor-projekt-sub001/compress"
	"github.com/FrederikvSvane/bachelor-projekt-sub001/config"
	"github.com/FrederikvSvane/bachelor-projekt-sub001/regression"
)

// printReport writes the fit summary and the crossover points to w.
func printReport(w io.Writer, cfg *config.Scalability, a *analysis) {
	fmt.Fprintln(w, "=== Scalability Analysis ===")
	fmt.Fprintln(w)
	printResult(w, cfg.Graph.Label, a.Graph)
	printResult(w, cfg.Local.Label, a.Local)

	fmt.Fprintf(w, "Intersections in [%g, %g]:\n", cfg.Window.Min, cfg.Window.Max)
	if len(a.Intersections) == 0 {
		fmt.Fprintln(w, "  none")
	}
	for _, p := range a.Intersections {
		fmt.Fprintf(w, "  %s\n", regression.FormatPoint(p))
	}
}

func printResult(w io.Writer, label string, r *regression.Result) {
	fmt.Fprintf(w, "%s (%d points):\n", label, r.BestFit.N)
	fmt.Fprintf(w, "  %-10s | %-40s | %-8s | %-10s\n", "Model", "Formula", "R²", "RMSE")
	fmt.Fprintln(w, "  "+strings.Repeat("-", 78))
	for _, m := range r.AllModels {
		fmt.Fprintf(w, "  %-10s | %-40s | %-8.4f | %-10.4g\n", m.Type, m.Formula, m.RSquared, m.RMSE)
	}
	fmt.Fprintf(w, "  Best fit: %s (%s)\n", r.BestFit.Type, classifyRSquared(r.BestFit.RSquared))
	fmt.Fprintln(w)
}

func classifyRSquared(r2 float64) string {
	switch {
	case r2 >= 0.98:
		return "excellent fit"
	case r2 >= 0.95:
		return "very good fit"
	case r2 >= 0.90:
		return "good fit"
	case r2 >= 0.80:
		return "fair fit"
	default:
		return "poor fit"
	}
}

var reportHeader = []string{"algorithm", "model", "degree", "n", "r_squared", "rmse", "c1", "c2", "c3", "formula"}

// writeReport writes one CSV row per fitted model.
func writeReport(w io.Writer, a *analysis) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(reportHeader); err != nil {
		return err
	}

	for _, r := range []*regression.Result{a.Graph, a.Local} {
		for _, m := range r.AllModels {
			row := []string{
				r.Name,
				m.Type.String(),
				strconv.Itoa(m.Degree()),
				strconv.Itoa(m.N),
				formatFloat(m.RSquared),
				formatFloat(m.RMSE),
			}
			for i := range regression.MaxDegree {
				if i < len(m.Coefficients) {
					row = append(row, formatFloat(m.Coefficients[i]))
				} else {
					row = append(row, "")
				}
			}
			row = append(row, m.Formula)

			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()

	return cw.Error()
}

// exportReport writes the report to path, compressed according to its
// extension.
func exportReport(path string, a *analysis) (compress.Stats, error) {
	var buf bytes.Buffer
	if err := writeReport(&buf, a); err != nil {
		return compress.Stats{}, err
	}

	return compress.WriteFile(path, buf.Bytes())
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
