package definition

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/tabula"
	"github.com/arloliu/tabula/errs"
	"github.com/arloliu/tabula/format"
	"github.com/arloliu/tabula/tabulated"
)

// Mode tells which constructor a Definition maps to.
type Mode uint8

const (
	ModeGrid   Mode = iota + 1 // left, right and count
	ModeValues                 // left, right and values
	ModePoints                 // explicit points
)

func (m Mode) String() string {
	switch m {
	case ModeGrid:
		return "grid"
	case ModeValues:
		return "values"
	case ModePoints:
		return "points"
	default:
		return "unknown"
	}
}

// Definition is a validated function description.
type Definition struct {
	Mode    Mode
	Storage format.StorageType
	Left    float64
	Right   float64
	Count   int
	Values  []float64
	Points  []tabulated.Point
}

// document mirrors the YAML layout. Fields are untyped so that numbers can be
// written as integers, floats or strings.
type document struct {
	Storage string `yaml:"storage,omitempty"`
	Left    any    `yaml:"left,omitempty"`
	Right   any    `yaml:"right,omitempty"`
	Count   any    `yaml:"count,omitempty"`
	Values  []any  `yaml:"values,omitempty"`
	Points  []any  `yaml:"points,omitempty"`
}

// Parse decodes and validates a YAML document. Unknown keys are rejected, and
// so is a stream holding more than one document.
func Parse(data []byte) (Definition, error) {
	var doc document

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Definition{}, fmt.Errorf("%w: empty document", errs.ErrInvalidDefinition)
		}

		return Definition{}, fmt.Errorf("%w: %w", errs.ErrInvalidDefinition, err)
	}

	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return Definition{}, fmt.Errorf("%w: expected a single document", errs.ErrInvalidDefinition)
	}

	return doc.definition()
}

// Load parses data and builds the function it describes.
func Load(data []byte) (tabulated.Function, error) {
	def, err := Parse(data)
	if err != nil {
		return nil, err
	}

	return def.Build()
}

// Build constructs the described function. A zero Storage selects the array
// storage.
func (d Definition) Build() (tabulated.Function, error) {
	if d.Storage == 0 {
		d.Storage = format.StorageArray
	}
	storage := tabula.WithStorage(d.Storage)

	switch d.Mode {
	case ModeGrid:
		return tabula.New(d.Left, d.Right, d.Count, storage)
	case ModeValues:
		return tabula.NewFromValues(d.Left, d.Right, d.Values, storage)
	case ModePoints:
		return tabula.NewFromPoints(d.Points, storage)
	default:
		return nil, fmt.Errorf("%w: unknown mode %d", errs.ErrInvalidDefinition, d.Mode)
	}
}

func (doc document) definition() (Definition, error) {
	def := Definition{Storage: format.StorageArray}

	if doc.Storage != "" {
		storage, ok := format.ParseStorageType(doc.Storage)
		if !ok {
			return Definition{}, fmt.Errorf("%w: %w: %q", errs.ErrInvalidDefinition, errs.ErrUnsupportedStorage, doc.Storage)
		}
		def.Storage = storage
	}

	if doc.Points != nil {
		if doc.Left != nil || doc.Right != nil || doc.Count != nil || doc.Values != nil {
			return Definition{}, fmt.Errorf("%w: points cannot be combined with left, right, count or values",
				errs.ErrInvalidDefinition)
		}

		points, err := toPoints(doc.Points)
		if err != nil {
			return Definition{}, err
		}
		def.Mode = ModePoints
		def.Points = points

		return def, nil
	}

	if doc.Left == nil || doc.Right == nil {
		return Definition{}, fmt.Errorf("%w: left and right are required without points", errs.ErrInvalidDefinition)
	}

	var err error
	if def.Left, err = toNumber("left", doc.Left); err != nil {
		return Definition{}, err
	}
	if def.Right, err = toNumber("right", doc.Right); err != nil {
		return Definition{}, err
	}

	var count int
	hasCount := doc.Count != nil
	if hasCount {
		if count, err = toCount(doc.Count); err != nil {
			return Definition{}, err
		}
	}

	if doc.Values != nil {
		values := make([]float64, len(doc.Values))
		for i, v := range doc.Values {
			if values[i], err = toNumber(fmt.Sprintf("values[%d]", i), v); err != nil {
				return Definition{}, err
			}
		}
		if hasCount && count != len(values) {
			return Definition{}, fmt.Errorf("%w: count %d does not match %d values",
				errs.ErrInvalidDefinition, count, len(values))
		}
		def.Mode = ModeValues
		def.Values = values

		return def, nil
	}

	if !hasCount {
		return Definition{}, fmt.Errorf("%w: one of count, values or points is required", errs.ErrInvalidDefinition)
	}
	def.Mode = ModeGrid
	def.Count = count

	return def, nil
}

func toPoints(raw []any) ([]tabulated.Point, error) {
	points := make([]tabulated.Point, len(raw))

	for i, item := range raw {
		field := fmt.Sprintf("points[%d]", i)

		var xv, yv any
		switch p := item.(type) {
		case []any:
			if len(p) != 2 {
				return nil, fmt.Errorf("%w: %s must be an [x, y] pair, got %d elements", errs.ErrInvalidDefinition, field, len(p))
			}
			xv, yv = p[0], p[1]
		case map[string]any:
			if len(p) != 2 {
				return nil, fmt.Errorf("%w: %s must have exactly the keys x and y", errs.ErrInvalidDefinition, field)
			}
			var okX, okY bool
			xv, okX = p["x"]
			yv, okY = p["y"]
			if !okX || !okY {
				return nil, fmt.Errorf("%w: %s must have exactly the keys x and y", errs.ErrInvalidDefinition, field)
			}
		default:
			return nil, fmt.Errorf("%w: %s must be a pair or a map, got %T", errs.ErrInvalidDefinition, field, item)
		}

		x, err := toNumber(field+".x", xv)
		if err != nil {
			return nil, err
		}
		y, err := toNumber(field+".y", yv)
		if err != nil {
			return nil, err
		}
		points[i] = tabulated.NewPoint(x, y)
	}

	return points, nil
}

// toNumber converts a decoded YAML scalar to float64. Nulls, booleans and
// collections are rejected even where cast would coerce them.
func toNumber(field string, v any) (float64, error) {
	switch v.(type) {
	case nil:
		return 0, fmt.Errorf("%w: %s is missing", errs.ErrInvalidDefinition, field)
	case bool, []any, map[string]any:
		return 0, fmt.Errorf("%w: %s must be a number, got %T", errs.ErrInvalidDefinition, field, v)
	}

	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", errs.ErrInvalidDefinition, field, err)
	}

	return f, nil
}

func toCount(v any) (int, error) {
	f, err := toNumber("count", v)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || f < 0 || f > math.MaxInt32 {
		return 0, fmt.Errorf("%w: count must be a non-negative integer, got %v", errs.ErrInvalidDefinition, v)
	}

	return int(f), nil
}
