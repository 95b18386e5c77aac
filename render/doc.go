// Package render draws the figures of the scalability and simplex tools.
//
// Scalability renders the runtime plot with go-chart: one scatter series per
// algorithm, the fitted curves sampled across the domain window, and a marker
// with an "(x, y)" label for every intersection. Simplex draws the three
// polytope panels with gg.
//
// Both renderers are deterministic: the same input yields byte-identical PNG
// output for a given library version.
package render
