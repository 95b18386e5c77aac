package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/FrederikvSvane/bachelor-projekt-sub001/compress"
	"github.com/FrederikvSvane/bachelor-projekt-sub001/internal/options"
)

var (
	// ErrNoColumns is returned when Columns names no runtime column.
	ErrNoColumns = errors.New("no runtime columns requested")
	// ErrMissingColumn is returned when a requested column is not in the header.
	ErrMissingColumn = errors.New("column not found")
	// ErrMalformedValue is returned for a cell that is neither numeric nor missing.
	ErrMalformedValue = errors.New("malformed value")
	// ErrOutOfRange is returned for a non-positive problem size or a negative runtime.
	ErrOutOfRange = errors.New("value out of range")
	// ErrEmptyObservations is returned when no rows remain for an algorithm.
	ErrEmptyObservations = errors.New("no observations left after dropping missing values")
)

// defaultMissing mirrors the NA markers recognized by pandas.read_csv.
var defaultMissing = []string{
	"", "#N/A", "#N/A N/A", "#NA", "-1.#IND", "-1.#QNAN", "-NaN", "-nan",
	"1.#IND", "1.#QNAN", "<NA>", "N/A", "NA", "NULL", "NaN", "None", "n/a", "nan", "null",
}

// Columns names the columns to extract from a table.
type Columns struct {
	// Size is the problem-size column shared by all algorithms.
	Size string
	// Runtimes lists one runtime column per algorithm.
	Runtimes []string
}

// Validate checks that at least the size column and one runtime column are named.
func (c Columns) Validate() error {
	if c.Size == "" {
		return fmt.Errorf("%w: empty size column name", ErrMissingColumn)
	}
	if len(c.Runtimes) == 0 {
		return ErrNoColumns
	}

	return nil
}

type readConfig struct {
	comma   rune
	missing map[string]struct{}
}

// ReadOption configures how a table is parsed.
type ReadOption = options.Option[*readConfig]

// WithComma sets the field delimiter. The default is ','.
func WithComma(r rune) ReadOption {
	return options.Named("comma", func(cfg *readConfig) error {
		if r == '"' || r == '\r' || r == '\n' || r == 0 {
			return fmt.Errorf("invalid delimiter %q", r)
		}
		cfg.comma = r

		return nil
	})
}

// WithMissingTokens adds cell values that are treated as missing.
func WithMissingTokens(tokens ...string) ReadOption {
	return options.NoError(func(cfg *readConfig) {
		for _, tok := range tokens {
			cfg.missing[tok] = struct{}{}
		}
	})
}

// Table holds the requested columns of a measurement table. Missing cells are
// stored as NaN until Observations drops them.
type Table struct {
	sizes    []float64
	runtimes map[string][]float64
	order    []string
}

// Load reads a table from path, decompressing it if its extension asks for it.
func Load(path string, columns Columns, opts ...ReadOption) (*Table, error) {
	data, _, err := compress.ReadFile(path)
	if err != nil {
		return nil, err
	}

	t, err := Read(bytes.NewReader(data), columns, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}

// Read parses a CSV table with a header row from r.
func Read(r io.Reader, columns Columns, opts ...ReadOption) (*Table, error) {
	if err := columns.Validate(); err != nil {
		return nil, err
	}

	cfg := &readConfig{comma: ',', missing: make(map[string]struct{}, len(defaultMissing))}
	for _, tok := range defaultMissing {
		cfg.missing[tok] = struct{}{}
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	cr := csv.NewReader(r)
	cr.Comma = cfg.comma
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: table has no header row", ErrMissingColumn)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}

	lookup := func(name string) (int, error) {
		i, ok := index[name]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}

		return i, nil
	}

	sizeIdx, err := lookup(columns.Size)
	if err != nil {
		return nil, err
	}

	t := &Table{runtimes: make(map[string][]float64, len(columns.Runtimes))}
	runtimeIdx := make([]int, 0, len(columns.Runtimes))
	for _, name := range columns.Runtimes {
		i, err := lookup(name)
		if err != nil {
			return nil, err
		}
		if _, seen := t.runtimes[name]; seen {
			continue
		}
		t.runtimes[name] = nil
		t.order = append(t.order, name)
		runtimeIdx = append(runtimeIdx, i)
	}

	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		size, err := cfg.parseCell(cr, record, sizeIdx, columns.Size)
		if err != nil {
			return nil, err
		}
		if !math.IsNaN(size) && size <= 0 {
			line, _ := cr.FieldPos(sizeIdx)
			return nil, fmt.Errorf("line %d, column %q: %w: problem size %g must be positive",
				line, columns.Size, ErrOutOfRange, size)
		}
		t.sizes = append(t.sizes, size)

		for j, name := range t.order {
			v, err := cfg.parseCell(cr, record, runtimeIdx[j], name)
			if err != nil {
				return nil, err
			}
			if v < 0 {
				line, _ := cr.FieldPos(runtimeIdx[j])
				return nil, fmt.Errorf("line %d, column %q: %w: runtime %g must not be negative",
					line, name, ErrOutOfRange, v)
			}
			t.runtimes[name] = append(t.runtimes[name], v)
		}
	}

	return t, nil
}

// parseCell returns NaN for missing cells.
func (cfg *readConfig) parseCell(cr *csv.Reader, record []string, idx int, column string) (float64, error) {
	raw := strings.TrimSpace(record[idx])
	if _, missing := cfg.missing[raw]; missing {
		return math.NaN(), nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		line, _ := cr.FieldPos(idx)
		return 0, fmt.Errorf("line %d, column %q: %w: %q", line, column, ErrMalformedValue, raw)
	}

	return v, nil
}

// Rows returns the number of data rows read, including rows with missing cells.
func (t *Table) Rows() int {
	return len(t.sizes)
}

// Columns returns the runtime column names in request order.
func (t *Table) Columns() []string {
	return append([]string(nil), t.order...)
}

// Observations returns the observation set for one runtime column, dropping
// rows where either the size or that column's runtime is missing.
func (t *Table) Observations(column string) (Observations, error) {
	runtimes, ok := t.runtimes[column]
	if !ok {
		return Observations{}, fmt.Errorf("%w: %q", ErrMissingColumn, column)
	}

	obs := Observations{
		Name:     column,
		Sizes:    make([]float64, 0, len(runtimes)),
		Runtimes: make([]float64, 0, len(runtimes)),
	}
	for i, rt := range runtimes {
		if math.IsNaN(rt) || math.IsNaN(t.sizes[i]) {
			obs.Dropped++
			continue
		}
		obs.Sizes = append(obs.Sizes, t.sizes[i])
		obs.Runtimes = append(obs.Runtimes, rt)
	}

	if obs.Len() == 0 {
		return obs, fmt.Errorf("algorithm %q: %w (%d rows dropped)", column, ErrEmptyObservations, obs.Dropped)
	}

	return obs, nil
}

// All returns one observation set per runtime column, in request order.
func (t *Table) All() ([]Observations, error) {
	sets := make([]Observations, 0, len(t.order))
	for _, name := range t.order {
		obs, err := t.Observations(name)
		if err != nil {
			return nil, err
		}
		sets = append(sets, obs)
	}

	return sets, nil
}
