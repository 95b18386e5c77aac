package regression

import (
	"errors"
	"fmt"
	"slices"

	"github.com/FrederikvSvane/bachelor-projekt-sub001/internal/options"
)

// AnalyzeConfig holds the degrees Analyze fits.
type AnalyzeConfig struct {
	Degrees []int
}

func defaultAnalyzeConfig() AnalyzeConfig {
	return AnalyzeConfig{Degrees: []int{1, 2, 3}}
}

// AnalyzeOption is a functional option for AnalyzeConfig.
type AnalyzeOption = options.Option[*AnalyzeConfig]

// WithDegrees selects the polynomial degrees to fit. Duplicates are ignored.
func WithDegrees(degrees ...int) AnalyzeOption {
	return options.Named("degrees", func(cfg *AnalyzeConfig) error {
		if len(degrees) == 0 {
			return errors.New("at least one degree is required")
		}

		out := make([]int, 0, len(degrees))
		for _, d := range degrees {
			if d < 1 || d > MaxDegree {
				return fmt.Errorf("%w: %d", ErrInvalidDegree, d)
			}
			if !slices.Contains(out, d) {
				out = append(out, d)
			}
		}
		cfg.Degrees = out

		return nil
	})
}

// WithModelTypes is WithDegrees expressed with model types.
func WithModelTypes(types ...ModelType) AnalyzeOption {
	degrees := make([]int, len(types))
	for i, mt := range types {
		degrees[i] = mt.Degree()
	}

	return WithDegrees(degrees...)
}
