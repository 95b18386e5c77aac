package config

import (
	"github.com/FrederikvSvane/bachelor-projekt-sub001/dataset"
	"github.com/FrederikvSvane/bachelor-projekt-sub001/regression"
)

// Scalability configures the runtime scalability analysis.
type Scalability struct {
	// Input is the measurement table, optionally compressed.
	Input string `yaml:"input" validate:"required"`
	// Output is the PNG file the plot is written to.
	Output string `yaml:"output" validate:"required"`
	// Report is an optional CSV file receiving every fitted model.
	Report string `yaml:"report"`
	// SizeColumn names the problem-size column.
	SizeColumn string `yaml:"size_column" validate:"required"`
	// Graph is the algorithm fitted with polynomials.
	Graph Algorithm `yaml:"graph" validate:"required"`
	// Local is the algorithm fitted with a line.
	Local Algorithm `yaml:"local" validate:"required"`
	// Window is the plotted problem-size range.
	Window regression.Window `yaml:"window"`
	// Samples is the number of points each fitted curve is drawn with.
	Samples int `yaml:"samples" validate:"gte=2,lte=100000"`
	// Image holds the output raster settings.
	Image Image `yaml:"image" validate:"required"`
}

// Algorithm describes one runtime column and the fits applied to it.
type Algorithm struct {
	Column  string `yaml:"column" validate:"required"`
	Label   string `yaml:"label" validate:"required"`
	Degrees []int  `yaml:"degrees" validate:"required,min=1,dive,min=1,max=3"`
}

// Image is the size of a rendered raster.
type Image struct {
	Width  int     `yaml:"width" validate:"gte=200,lte=20000"`
	Height int     `yaml:"height" validate:"gte=200,lte=20000"`
	DPI    float64 `yaml:"dpi" validate:"gte=50,lte=1200"`
}

// DefaultScalability returns the built-in settings: a 10..2500 window, degree
// 2 and 3 fits for the graph solver, a line for local search, and a
// 3000x1800 image at 300 DPI.
func DefaultScalability() *Scalability {
	return &Scalability{
		Input:      "runtimes.csv",
		Output:     "scalability.png",
		SizeColumn: "problem_size",
		Graph: Algorithm{
			Column:  "graph_solver_seconds",
			Label:   "Graph solver",
			Degrees: []int{2, 3},
		},
		Local: Algorithm{
			Column:  "local_search_seconds",
			Label:   "Local search",
			Degrees: []int{1},
		},
		Window:  regression.DefaultWindow,
		Samples: 500,
		Image:   Image{Width: 3000, Height: 1800, DPI: 300},
	}
}

// LoadScalability returns the defaults overlaid with the YAML file at path.
// An empty path returns the validated defaults.
func LoadScalability(path string) (*Scalability, error) {
	cfg := DefaultScalability()
	if path != "" {
		if err := decodeFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field ranges and that the intersection inputs exist: the
// graph solver must include a quadratic fit and local search a linear one.
func (c *Scalability) Validate() error {
	if err := check(c); err != nil {
		return err
	}

	return checkFits(c)
}

func checkFits(c *Scalability) error {
	type fitCheck struct {
		Graph []int `yaml:"graph.degrees" validate:"hasdegree=2"`
		Local []int `yaml:"local.degrees" validate:"hasdegree=1"`
	}

	return check(&fitCheck{Graph: c.Graph.Degrees, Local: c.Local.Degrees})
}

// Columns returns the table columns the analysis reads.
func (c *Scalability) Columns() dataset.Columns {
	return dataset.Columns{
		Size:     c.SizeColumn,
		Runtimes: []string{c.Graph.Column, c.Local.Column},
	}
}
