package tabulated

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tabula/errs"
)

func TestArrayFunction_GrowthDoublesCapacity(t *testing.T) {
	fn, err := NewArrayFromValues(0, 4, []float64{0, 1, 4, 9, 16})
	require.NoError(t, err)
	require.Equal(t, 5, fn.Capacity())

	require.NoError(t, fn.InsertPoint(NewPoint(0.5, 0.25)))
	require.Equal(t, 10, fn.Capacity())
	require.Equal(t, 6, fn.PointCount())

	for _, x := range []float64{1.5, 2.5, 3.5, 4.5} {
		require.NoError(t, fn.InsertPoint(NewPoint(x, x*x)))
	}
	require.Equal(t, 10, fn.Capacity())
	require.Equal(t, 10, fn.PointCount())

	require.NoError(t, fn.InsertPoint(NewPoint(-1, 1)))
	require.Equal(t, 20, fn.Capacity())
	require.Equal(t, -1.0, fn.LeftBorder())
	require.Equal(t, 4.5, fn.RightBorder())
	requireStrictlyIncreasing(t, fn)
}

func TestArrayFunction_WithCapacity(t *testing.T) {
	fn, err := NewArray(0, 1, 3, WithCapacity(8))
	require.NoError(t, err)
	require.Equal(t, 8, fn.Capacity())

	for i := 1; i <= 5; i++ {
		require.NoError(t, fn.InsertPoint(NewPoint(1+float64(i), 0)))
	}
	require.Equal(t, 8, fn.Capacity())

	small, err := NewArray(0, 1, 4, WithCapacity(2))
	require.NoError(t, err)
	require.Equal(t, 4, small.Capacity())

	_, err = NewArray(0, 1, 4, WithCapacity(-1))
	require.ErrorIs(t, err, errs.ErrInvalidOption)
}

func TestArrayFunction_DeleteClearsVacatedSlot(t *testing.T) {
	fn, err := NewArrayFromValues(0, 3, []float64{5, 6, 7, 8})
	require.NoError(t, err)

	require.NoError(t, fn.DeletePoint(1))
	require.Equal(t, 3, fn.PointCount())
	require.Equal(t, 4, fn.Capacity())
	require.Equal(t, Point{}, fn.points[3])
	require.Equal(t, []Point{{0, 5}, {2, 7}, {3, 8}}, fn.Points())
}

func TestArrayFunction_PointsDoesNotAlias(t *testing.T) {
	fn, err := NewArrayFromValues(0, 1, []float64{1, 2})
	require.NoError(t, err)

	pts := fn.Points()
	pts[0].Y = 100
	y, err := fn.PointY(0)
	require.NoError(t, err)
	require.Equal(t, 1.0, y)
}
