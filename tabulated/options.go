package tabulated

import (
	"fmt"

	"github.com/arloliu/tabula/errs"
	"github.com/arloliu/tabula/internal/options"
)

// Config holds the construction parameters shared by both storages.
type Config struct {
	// Capacity is the number of points to reserve room for. Values below the
	// initial point count are raised to it.
	Capacity int
}

// Option configures a function at construction time.
type Option = options.Option[*Config]

// WithCapacity reserves room for n points so that insertions up to n do not
// reallocate. A negative n is rejected with errs.ErrInvalidOption.
func WithCapacity(n int) Option {
	return options.New(func(cfg *Config) error {
		if n < 0 {
			return fmt.Errorf("%w: capacity must not be negative, got %d", errs.ErrInvalidOption, n)
		}
		cfg.Capacity = n

		return nil
	})
}

func newConfig(count int, opts []Option) (Config, error) {
	cfg := Config{}
	if err := options.Apply(&cfg, opts...); err != nil {
		return Config{}, err
	}
	cfg.Capacity = max(cfg.Capacity, count)

	return cfg, nil
}
