package definition

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tabula"
	"github.com/arloliu/tabula/errs"
	"github.com/arloliu/tabula/format"
	"github.com/arloliu/tabula/tabulated"
)

func TestLoad_Grid(t *testing.T) {
	fn, err := Load([]byte("left: 0\nright: 1\ncount: 11\n"))
	require.NoError(t, err)
	require.Equal(t, format.StorageArray, fn.Storage())
	require.Equal(t, 11, fn.PointCount())
	require.Equal(t, 1.0, fn.RightBorder())
	require.Equal(t, 0.0, fn.Evaluate(0.35))
}

func TestLoad_Values(t *testing.T) {
	doc := `
storage: linked
left: 0
right: "4"
values: [0, 1, 4.0, "9", 16]
`
	fn, err := Load([]byte(doc))
	require.NoError(t, err)
	require.Equal(t, format.StorageLinked, fn.Storage())
	require.Equal(t, 2.5, fn.Evaluate(1.5))
	require.Equal(t, 16.0, fn.Evaluate(4))
	require.True(t, math.IsNaN(fn.Evaluate(4.5)))
}

func TestLoad_Points(t *testing.T) {
	doc := `
storage: Array
points:
  - [0, 0]
  - {x: 1, y: 1}
  - [2.5, "6.25"]
`
	fn, err := Load([]byte(doc))
	require.NoError(t, err)
	require.Equal(t, []tabulated.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2.5, Y: 6.25}}, fn.Points())
}

func TestParse_Modes(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		mode Mode
	}{
		{"grid", "left: 0\nright: 1\ncount: 2", ModeGrid},
		{"values", "left: 0\nright: 1\nvalues: [1, 2]", ModeValues},
		{"values with matching count", "left: 0\nright: 1\ncount: 2\nvalues: [1, 2]", ModeValues},
		{"points", "points: [[0, 1], [1, 2]]", ModePoints},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := Parse([]byte(tt.doc))
			require.NoError(t, err)
			require.Equal(t, tt.mode, def.Mode)
			require.Equal(t, format.StorageArray, def.Storage)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", ""},
		{"not yaml", "left: [0"},
		{"unknown key", "left: 0\nright: 1\ncount: 2\nscale: 3"},
		{"unknown storage", "storage: tree\nleft: 0\nright: 1\ncount: 2"},
		{"missing right", "left: 0\ncount: 2"},
		{"missing count", "left: 0\nright: 1"},
		{"points mixed with grid", "left: 0\npoints: [[0, 1], [1, 2]]"},
		{"count mismatch", "left: 0\nright: 1\ncount: 3\nvalues: [1, 2]"},
		{"fractional count", "left: 0\nright: 1\ncount: 2.5"},
		{"negative count", "left: 0\nright: 1\ncount: -2"},
		{"non-numeric border", "left: zero\nright: 1\ncount: 2"},
		{"boolean value", "left: 0\nright: 1\nvalues: [true, 1]"},
		{"null value", "left: 0\nright: 1\nvalues: [~, 1]"},
		{"short pair", "points: [[0], [1, 2]]"},
		{"map without y", "points: [{x: 0}, {x: 1, y: 2}]"},
		{"map with extra key", "points: [{x: 0, y: 1, z: 2}, {x: 1, y: 2}]"},
		{"scalar point", "points: [1, 2]"},
		{"second document", "left: 0\nright: 1\ncount: 2\n---\nleft: 5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.ErrorIs(t, err, errs.ErrInvalidDefinition)
		})
	}
}

func TestLoad_ConstructionErrorsPassThrough(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"reversed borders", "left: 1\nright: 0\ncount: 3"},
		{"single value", "left: 0\nright: 1\nvalues: [1]"},
		{"unordered points", "points: [[1, 0], [0, 1]]"},
		{"infinite x", "points: [[0, 0], [.inf, 1]]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.doc))
			require.ErrorIs(t, err, errs.ErrInvalidConstruction)
			require.NotErrorIs(t, err, errs.ErrInvalidDefinition)
		})
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	for _, storage := range []format.StorageType{format.StorageArray, format.StorageLinked} {
		t.Run(storage.String(), func(t *testing.T) {
			fn, err := tabula.NewFromPoints([]tabulated.Point{
				{X: -1.5, Y: math.Pi},
				{X: 0, Y: math.NaN()},
				{X: 1e-7, Y: math.Inf(-1)},
				{X: 3, Y: 1.0 / 3},
			}, tabula.WithStorage(storage))
			require.NoError(t, err)

			data, err := Marshal(fn)
			require.NoError(t, err)
			require.Contains(t, string(data), "storage: "+map[format.StorageType]string{
				format.StorageArray:  "array",
				format.StorageLinked: "linked",
			}[storage])

			loaded, err := Load(data)
			require.NoError(t, err)
			require.Equal(t, storage, loaded.Storage())
			require.True(t, tabula.Equal(fn, loaded))

			for i, p := range loaded.Points() {
				want, err := fn.Point(i)
				require.NoError(t, err)
				require.Equal(t, math.Float64bits(want.X), math.Float64bits(p.X))
			}
		})
	}
}

func TestMode_String(t *testing.T) {
	require.Equal(t, "grid", ModeGrid.String())
	require.Equal(t, "values", ModeValues.String())
	require.Equal(t, "points", ModePoints.String())
	require.Equal(t, "unknown", Mode(0).String())
}

func TestDefinition_BuildUnknownMode(t *testing.T) {
	_, err := Definition{Storage: format.StorageArray}.Build()
	require.ErrorIs(t, err, errs.ErrInvalidDefinition)
}

func TestDefinition_BuildDefaultsToArray(t *testing.T) {
	fn, err := Definition{Mode: ModeValues, Left: 0, Right: 2, Values: []float64{1, 2, 3}}.Build()
	require.NoError(t, err)
	require.Equal(t, format.StorageArray, fn.Storage())
	require.Equal(t, 1.5, fn.Evaluate(0.5))

	fn, err = Definition{Mode: ModePoints, Storage: format.StorageLinked, Points: []tabulated.Point{{X: 0}, {X: 1, Y: 1}}}.Build()
	require.NoError(t, err)
	require.Equal(t, format.StorageLinked, fn.Storage())
}
