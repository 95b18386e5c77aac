package config

// Simplex configures the simplex illustration.
type Simplex struct {
	// Output, when set, saves the figure as PNG instead of opening a window.
	Output string `yaml:"output"`
	// Title is the window title.
	Title string `yaml:"title" validate:"required"`
	// Width and Height are the figure size in pixels.
	Width  int `yaml:"width" validate:"gte=300,lte=10000"`
	Height int `yaml:"height" validate:"gte=100,lte=10000"`
}

// DefaultSimplex returns a 1500x500 figure shown in a window.
func DefaultSimplex() *Simplex {
	return &Simplex{
		Title:  "Simplex method in 1D, 2D and 3D",
		Width:  1500,
		Height: 500,
	}
}

// LoadSimplex returns the defaults overlaid with the YAML file at path.
func LoadSimplex(path string) (*Simplex, error) {
	cfg := DefaultSimplex()
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

// Validate checks the figure settings.
func (c *Simplex) Validate() error {
	return check(c)
}
