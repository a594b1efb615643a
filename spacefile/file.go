package spacefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lexspace/builder"
	"github.com/katalvlaran/lexspace/sampler"
	"github.com/katalvlaran/lexspace/space"
)

// Dimension kinds accepted in the kind field.
const (
	KindRepeated    = "repeated"
	KindDistinct    = "distinct"
	KindPermutation = "permutation"
	KindRanged      = "ranged"
	KindArrangement = "arrangement"
	KindBits        = "bits"
)

// prefixScheme introduces a SymbolNumberIDFn scheme: "prefix:k" → k0, k1, …
const prefixScheme = "prefix:"

// File is the decoded form of a space description.
type File struct {
	Name       string      `yaml:"name,omitempty"`
	IDs        string      `yaml:"ids,omitempty"`
	ScanLimit  int64       `yaml:"scanLimit,omitempty"`
	Constraint *Constraint `yaml:"constraint,omitempty"`
	Dimensions []Dimension `yaml:"dimensions"`
}

// Constraint lists the declarative predicates; all enabled ones must hold.
type Constraint struct {
	DistinctItems    bool     `yaml:"distinctItems,omitempty"`
	NoAdjacentRepeat bool     `yaml:"noAdjacentRepeat,omitempty"`
	Contains         []string `yaml:"contains,omitempty"`
	Excludes         []string `yaml:"excludes,omitempty"`
}

// Dimension describes one dimension. Which fields apply depends on Kind:
//
//	repeated, distinct, permutation: count, pool|poolSize
//	ranged:                          min, max, band, pool|poolSize
//	arrangement:                     counts, pool|poolSize
//	bits:                            length, ones
type Dimension struct {
	Kind     string   `yaml:"kind"`
	Count    int      `yaml:"count,omitempty"`
	Min      int      `yaml:"min,omitempty"`
	Max      int      `yaml:"max,omitempty"`
	Band     string   `yaml:"band,omitempty"`
	Pool     []string `yaml:"pool,omitempty"`
	PoolSize int      `yaml:"poolSize,omitempty"`
	Counts   []int    `yaml:"counts,omitempty"`
	Length   int      `yaml:"length,omitempty"`
	Ones     int      `yaml:"ones,omitempty"`
}

// Decode parses a YAML document.
func Decode(data []byte) (*File, error) {
	return Load(bytes.NewReader(data))
}

// LoadFile reads and parses the YAML file at path.
func LoadFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("spacefile: %w", err)
	}
	defer fh.Close()

	f, err := Load(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Load parses one YAML document from r and checks it against the schema.
func Load(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty document: %w", ErrInvalidFile)
		}
		return nil, fmt.Errorf("decode: %v: %w", err, ErrInvalidFile)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// Validate checks the schema-level rules: known kinds, bands and ID scheme,
// a sane scan limit, and an unambiguous pool per dimension.
func (f *File) Validate() error {
	if len(f.Dimensions) == 0 {
		return fmt.Errorf("no dimensions: %w", ErrInvalidFile)
	}
	if f.ScanLimit < -1 {
		return fmt.Errorf("scanLimit %d: want -1, 0 or a positive limit: %w", f.ScanLimit, ErrInvalidFile)
	}
	if _, err := idScheme(f.IDs); err != nil {
		return err
	}
	for i, d := range f.Dimensions {
		if err := d.validate(); err != nil {
			return fmt.Errorf("dimension %d: %w", i, err)
		}
	}

	return nil
}

func (d Dimension) validate() error {
	switch d.Kind {
	case KindRepeated, KindDistinct, KindPermutation, KindArrangement:
	case KindRanged:
		if _, err := bandKind(d.Band); err != nil {
			return err
		}
	case KindBits:
		if len(d.Pool) > 0 || d.PoolSize != 0 {
			return fmt.Errorf("%s takes no pool: %w", KindBits, ErrInvalidFile)
		}
		return nil
	default:
		return fmt.Errorf("kind %q: %w", d.Kind, ErrUnknownKind)
	}

	switch {
	case len(d.Pool) > 0 && d.PoolSize != 0:
		return fmt.Errorf("%s: both pool and poolSize set: %w", d.Kind, ErrInvalidFile)
	case len(d.Pool) == 0 && d.PoolSize == 0:
		return fmt.Errorf("%s: pool or poolSize required: %w", d.Kind, ErrInvalidFile)
	}

	return nil
}

// Options translates the file-level settings into builder options.
func (f *File) Options() ([]builder.BuilderOption, error) {
	var opts []builder.BuilderOption

	ids, err := idScheme(f.IDs)
	if err != nil {
		return nil, err
	}
	opts = append(opts, ids)

	switch {
	case f.ScanLimit == -1:
		opts = append(opts, builder.WithUnboundedScan())
	case f.ScanLimit > 0:
		opts = append(opts, builder.WithScanLimit(uint64(f.ScanLimit)))
	case f.ScanLimit < -1:
		return nil, fmt.Errorf("scanLimit %d: %w", f.ScanLimit, ErrInvalidFile)
	}

	if c := f.Constraint; c != nil {
		if c.DistinctItems {
			opts = append(opts, builder.WithConstraint(sampler.DistinctItems()))
		}
		if c.NoAdjacentRepeat {
			opts = append(opts, builder.WithConstraint(sampler.NoAdjacentRepeat()))
		}
		if len(c.Contains) > 0 {
			opts = append(opts, builder.WithConstraint(sampler.Contains(c.Contains...)))
		}
		if len(c.Excludes) > 0 {
			opts = append(opts, builder.WithConstraint(sampler.Excludes(c.Excludes...)))
		}
	}

	return opts, nil
}

// Dimension returns the builder form of d.
func (d Dimension) Dimension() (builder.Dimension, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}

	pool := builder.Symbols(d.PoolSize)
	if len(d.Pool) > 0 {
		pool = builder.Items(d.Pool...)
	}

	switch d.Kind {
	case KindRepeated:
		return builder.FixedRepeated(d.Count, pool), nil
	case KindDistinct:
		return builder.FixedDistinct(d.Count, pool), nil
	case KindPermutation:
		return builder.Permutation(d.Count, pool), nil
	case KindRanged:
		band, _ := bandKind(d.Band)
		return builder.RangedOf(band, d.Min, d.Max, pool), nil
	case KindArrangement:
		return builder.Arrangement(pool, d.Counts...), nil
	default: // KindBits
		return builder.BitString(d.Length, d.Ones), nil
	}
}

// Generator builds the described space.
func (f *File) Generator() (*builder.Generator, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	opts, err := f.Options()
	if err != nil {
		return nil, err
	}

	dims := make([]builder.Dimension, len(f.Dimensions))
	for i, d := range f.Dimensions {
		if dims[i], err = d.Dimension(); err != nil {
			return nil, fmt.Errorf("dimension %d: %w", i, err)
		}
	}

	return builder.Build(opts, dims...)
}

// Encode writes f as YAML.
func (f *File) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("spacefile: encode: %w", err)
	}

	return enc.Close()
}

func bandKind(band string) (space.Kind, error) {
	switch band {
	case "", KindDistinct:
		return space.KindDistinct, nil
	case KindRepeated:
		return space.KindRepeated, nil
	case KindPermutation:
		return space.KindPermutation, nil
	default:
		return 0, fmt.Errorf("band %q: %w", band, ErrUnknownKind)
	}
}

func idScheme(ids string) (builder.BuilderOption, error) {
	switch ids {
	case "", "default":
		return builder.WithDefaultIDs(), nil
	case "symbol":
		return builder.WithSymbolIDs(), nil
	case "lower":
		return builder.WithLowerIDs(), nil
	case "excel":
		return builder.WithExcelColumnIDs(), nil
	case "alphanumeric":
		return builder.WithAlphanumericIDs(), nil
	case "hex":
		return builder.WithHexIDs(), nil
	}
	if p, ok := strings.CutPrefix(ids, prefixScheme); ok && p != "" {
		return builder.WithSymbNumb(p), nil
	}

	return nil, fmt.Errorf("ids %q: %w", ids, ErrInvalidFile)
}
