// Package tabula provides tabulated real functions: functions of one variable
// known only at a finite, strictly increasing set of sample points and
// evaluated between them by linear interpolation.
//
// # Core Features
//
//   - Two interchangeable storages behind one interface: a contiguous array
//     with O(1) index access and a doubly-linked arena with O(1) splicing
//   - Tolerance-aware ordering, uniqueness and domain checks (tabulated.Epsilon)
//   - Sorted insertion and deletion that never leave fewer than two samples
//   - A compact binary encoding with optional compression (package codec)
//   - YAML definitions (package definition)
//
// # Basic Usage
//
//	fn, err := tabula.NewFromValues(0, 4, []float64{0, 1, 4, 9, 16})
//	if err != nil {
//	    return err
//	}
//	fn.Evaluate(1.5) // 2.5
//	fn.Evaluate(4.5) // NaN, outside the domain
//
//	_ = fn.InsertPoint(tabulated.NewPoint(0.5, 0.25))
//	x, _ := fn.PointX(1) // 0.5
//
// Selecting the linked storage:
//
//	fn, err := tabula.New(0, 1, 100, tabula.WithStorage(format.StorageLinked))
//
// # Package Structure
//
// This package wraps the constructors of package tabulated so callers can
// choose the storage at run time. Use tabulated directly for the concrete
// types and their storage-specific methods.
package tabula

import (
	"fmt"

	"github.com/arloliu/tabula/errs"
	"github.com/arloliu/tabula/format"
	"github.com/arloliu/tabula/internal/options"
	"github.com/arloliu/tabula/tabulated"
)

// Config selects the storage and carries options for the storage constructor.
type Config struct {
	Storage      format.StorageType
	FunctionOpts []tabulated.Option
}

// Option configures the factory functions.
type Option = options.Option[*Config]

// WithStorage selects the storage backing the new function. The default is
// format.StorageArray.
func WithStorage(storage format.StorageType) Option {
	return options.New(func(cfg *Config) error {
		if !storage.Valid() {
			return fmt.Errorf("%w: %s (0x%02x)", errs.ErrUnsupportedStorage, storage, uint8(storage))
		}
		cfg.Storage = storage

		return nil
	})
}

// WithCapacity reserves room for n samples. See tabulated.WithCapacity.
func WithCapacity(n int) Option {
	return options.NoError(func(cfg *Config) {
		cfg.FunctionOpts = append(cfg.FunctionOpts, tabulated.WithCapacity(n))
	})
}

func newConfig(opts []Option) (*Config, error) {
	cfg := &Config{Storage: format.StorageArray}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// New creates count samples evenly spaced over [left, right] with y = 0.
//
// Parameters:
//   - left, right: Domain borders, left < right, both finite
//   - count: Number of samples, at least tabulated.MinPoints
//   - opts: WithStorage, WithCapacity
//
// Returns:
//   - tabulated.Function: The new function
//   - error: errs.ErrInvalidConstruction for bad borders or count, or an option error
func New(left, right float64, count int, opts ...Option) (tabulated.Function, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	if cfg.Storage == format.StorageLinked {
		return build(tabulated.NewLinked(left, right, count, cfg.FunctionOpts...))
	}

	return build(tabulated.NewArray(left, right, count, cfg.FunctionOpts...))
}

// NewFromValues creates len(values) samples evenly spaced over [left, right]
// with y taken from values.
func NewFromValues(left, right float64, values []float64, opts ...Option) (tabulated.Function, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	if cfg.Storage == format.StorageLinked {
		return build(tabulated.NewLinkedFromValues(left, right, values, cfg.FunctionOpts...))
	}

	return build(tabulated.NewArrayFromValues(left, right, values, cfg.FunctionOpts...))
}

// NewFromPoints creates a function from explicit samples, which must have
// finite x strictly increasing by more than tabulated.Epsilon.
func NewFromPoints(points []tabulated.Point, opts ...Option) (tabulated.Function, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	if cfg.Storage == format.StorageLinked {
		return build(tabulated.NewLinkedFromPoints(points, cfg.FunctionOpts...))
	}

	return build(tabulated.NewArrayFromPoints(points, cfg.FunctionOpts...))
}

// Convert copies fn into a new function backed by storage. Options given
// after the storage are applied last.
func Convert(fn tabulated.Function, storage format.StorageType, opts ...Option) (tabulated.Function, error) {
	all := make([]Option, 0, len(opts)+1)
	all = append(all, WithStorage(storage))
	all = append(all, opts...)

	return NewFromPoints(fn.Points(), all...)
}

// build drops the concrete type so that a failed constructor yields a nil
// interface rather than an interface holding a nil pointer.
func build[F tabulated.Function](fn F, err error) (tabulated.Function, error) {
	if err != nil {
		return nil, err
	}

	return fn, nil
}

// Equal reports whether a and b hold the same samples within
// tabulated.Epsilon, whatever their storages.
func Equal(a, b tabulated.Function) bool {
	return tabulated.Equal(a, b)
}
