package dataset

import "github.com/FrederikvSvane/bachelor-projekt-sub001/internal/hash"

// Observations is the cleaned (problem size, runtime) data of one algorithm.
type Observations struct {
	// Name is the runtime column the data came from.
	Name string
	// Sizes holds the problem sizes, all positive.
	Sizes []float64
	// Runtimes holds the runtimes in seconds, all non-negative.
	Runtimes []float64
	// Dropped counts the rows removed because of missing values.
	Dropped int
}

// Len returns the number of observations.
func (o Observations) Len() int {
	return len(o.Sizes)
}

// Fingerprint returns an xxHash64 digest of the sizes and runtimes. Two sets
// with the same fingerprint produce the same fits.
func (o Observations) Fingerprint() uint64 {
	return hash.Floats(o.Sizes, o.Runtimes)
}

// Bounds returns the smallest and largest problem size. Both are zero for an
// empty set.
func (o Observations) Bounds() (lo, hi float64) {
	if len(o.Sizes) == 0 {
		return 0, 0
	}

	lo, hi = o.Sizes[0], o.Sizes[0]
	for _, s := range o.Sizes[1:] {
		lo = min(lo, s)
		hi = max(hi, s)
	}

	return lo, hi
}
