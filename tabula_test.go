package tabula

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tabula/errs"
	"github.com/arloliu/tabula/format"
	"github.com/arloliu/tabula/tabulated"
)

var storages = []format.StorageType{format.StorageArray, format.StorageLinked}

func TestNew_DefaultStorage(t *testing.T) {
	fn, err := New(0, 1, 3)
	require.NoError(t, err)
	require.Equal(t, format.StorageArray, fn.Storage())
	require.IsType(t, &tabulated.ArrayFunction{}, fn)
}

func TestFactory_WorkedExample(t *testing.T) {
	for _, storage := range storages {
		t.Run(storage.String(), func(t *testing.T) {
			fn, err := NewFromValues(0, 4, []float64{0, 1, 4, 9, 16}, WithStorage(storage))
			require.NoError(t, err)
			require.Equal(t, storage, fn.Storage())

			require.Equal(t, 2.5, fn.Evaluate(1.5))
			require.Equal(t, 16.0, fn.Evaluate(4))
			require.True(t, math.IsNaN(fn.Evaluate(4.5)))

			require.NoError(t, fn.InsertPoint(tabulated.NewPoint(0.5, 0.25)))
			require.Equal(t, 6, fn.PointCount())
			x, err := fn.PointX(1)
			require.NoError(t, err)
			require.Equal(t, 0.5, x)
		})
	}
}

func TestFactory_AllConstructors(t *testing.T) {
	for _, storage := range storages {
		t.Run(storage.String(), func(t *testing.T) {
			grid, err := New(-1, 1, 5, WithStorage(storage), WithCapacity(16))
			require.NoError(t, err)
			require.Equal(t, 5, grid.PointCount())
			require.Equal(t, -1.0, grid.LeftBorder())
			require.Equal(t, 1.0, grid.RightBorder())

			pts, err := NewFromPoints([]tabulated.Point{{X: 0, Y: 1}, {X: 2, Y: 3}}, WithStorage(storage))
			require.NoError(t, err)
			require.Equal(t, 2.0, pts.Evaluate(1))
		})
	}
}

func TestFactory_Errors(t *testing.T) {
	for _, storage := range storages {
		t.Run(storage.String(), func(t *testing.T) {
			fn, err := New(1, 0, 3, WithStorage(storage))
			require.ErrorIs(t, err, errs.ErrInvalidConstruction)
			require.Nil(t, fn)

			fn, err = NewFromValues(0, 1, []float64{1}, WithStorage(storage))
			require.ErrorIs(t, err, errs.ErrInvalidConstruction)
			require.Nil(t, fn)

			fn, err = NewFromPoints([]tabulated.Point{{X: 1}, {X: 0}}, WithStorage(storage))
			require.ErrorIs(t, err, errs.ErrInvalidConstruction)
			require.Nil(t, fn)

			fn, err = New(0, 1, 3, WithStorage(storage), WithCapacity(-1))
			require.ErrorIs(t, err, errs.ErrInvalidOption)
			require.Nil(t, fn)
		})
	}

	_, err := New(0, 1, 3, WithStorage(format.StorageType(0x7)))
	require.ErrorIs(t, err, errs.ErrUnsupportedStorage)
}

func TestConvert(t *testing.T) {
	src, err := NewFromValues(0, 3, []float64{3, 1, 4, 1})
	require.NoError(t, err)

	dst, err := Convert(src, format.StorageLinked)
	require.NoError(t, err)
	require.Equal(t, format.StorageLinked, dst.Storage())
	require.True(t, Equal(src, dst))

	require.NoError(t, dst.SetPointY(0, 2))
	require.False(t, Equal(src, dst))
	y, err := src.PointY(0)
	require.NoError(t, err)
	require.Equal(t, 3.0, y)
}
