package tabulated

import (
	"iter"
	"math"

	"github.com/arloliu/tabula/format"
)

// ArrayFunction stores samples in a contiguous buffer.
//
// The buffer length is the capacity; only points[:count] are live. When an
// insertion finds the buffer full, the buffer doubles. Index access is O(1),
// positional insert and delete shift the tail in O(n).
type ArrayFunction struct {
	points []Point
	count  int
}

var _ Function = (*ArrayFunction)(nil)

// NewArray creates count samples evenly spaced over [left, right] with y = 0.
//
// Returns an error wrapping errs.ErrInvalidConstruction if left >= right,
// either border is not finite, or count < MinPoints.
func NewArray(left, right float64, count int, opts ...Option) (*ArrayFunction, error) {
	points, err := zeroGrid(left, right, count)
	if err != nil {
		return nil, err
	}

	return newArray(points, opts)
}

// NewArrayFromValues creates len(values) samples evenly spaced over
// [left, right] with y taken from values.
//
// Returns an error wrapping errs.ErrInvalidConstruction under the same
// conditions as NewArray, with len(values) as the count.
func NewArrayFromValues(left, right float64, values []float64, opts ...Option) (*ArrayFunction, error) {
	points, err := valuesGrid(left, right, values)
	if err != nil {
		return nil, err
	}

	return newArray(points, opts)
}

// NewArrayFromPoints creates a function from explicit samples. The points are
// copied; x must be finite and strictly increasing by more than Epsilon.
func NewArrayFromPoints(points []Point, opts ...Option) (*ArrayFunction, error) {
	if err := validateSequence(points); err != nil {
		return nil, err
	}

	return newArray(points, opts)
}

func newArray(points []Point, opts []Option) (*ArrayFunction, error) {
	cfg, err := newConfig(len(points), opts)
	if err != nil {
		return nil, err
	}

	buf := make([]Point, cfg.Capacity)
	copy(buf, points)

	return &ArrayFunction{points: buf, count: len(points)}, nil
}

// PointCount returns the number of samples.
func (f *ArrayFunction) PointCount() int {
	return f.count
}

// Capacity returns the number of samples the buffer holds before it grows.
func (f *ArrayFunction) Capacity() int {
	return len(f.points)
}

// LeftBorder returns the x-coordinate of the first sample.
func (f *ArrayFunction) LeftBorder() float64 {
	return f.points[0].X
}

// RightBorder returns the x-coordinate of the last sample.
func (f *ArrayFunction) RightBorder() float64 {
	return f.points[f.count-1].X
}

// Evaluate returns the linearly interpolated value at x, or NaN outside the
// tolerance-expanded domain. There is no separate exact-match pass, but the
// segment kernel snaps x within Epsilon of a sample to that sample's y, so
// results match the linked storage bit for bit.
func (f *ArrayFunction) Evaluate(x float64) float64 {
	if !inDomain(x, f.LeftBorder(), f.RightBorder()) {
		return math.NaN()
	}

	for i := 0; i < f.count-1; i++ {
		p1, p2 := f.points[i], f.points[i+1]
		if inSegment(x, p1.X, p2.X) {
			return segmentValue(x, p1, p2)
		}
	}

	return math.NaN()
}

// Point returns a copy of the sample at index i.
func (f *ArrayFunction) Point(i int) (Point, error) {
	if err := checkIndex(i, f.count); err != nil {
		return Point{}, err
	}

	return f.points[i], nil
}

// SetPoint replaces the sample at index i with a copy of p.
func (f *ArrayFunction) SetPoint(i int, p Point) error {
	if err := f.checkMove(i, p.X); err != nil {
		return err
	}
	f.points[i] = p

	return nil
}

// PointX returns the x-coordinate of the sample at index i.
func (f *ArrayFunction) PointX(i int) (float64, error) {
	if err := checkIndex(i, f.count); err != nil {
		return 0, err
	}

	return f.points[i].X, nil
}

// SetPointX moves the sample at index i to x.
func (f *ArrayFunction) SetPointX(i int, x float64) error {
	if err := f.checkMove(i, x); err != nil {
		return err
	}
	f.points[i].X = x

	return nil
}

// PointY returns the y-coordinate of the sample at index i.
func (f *ArrayFunction) PointY(i int) (float64, error) {
	if err := checkIndex(i, f.count); err != nil {
		return 0, err
	}

	return f.points[i].Y, nil
}

// SetPointY sets the y-coordinate of the sample at index i.
func (f *ArrayFunction) SetPointY(i int, y float64) error {
	if err := checkIndex(i, f.count); err != nil {
		return err
	}
	f.points[i].Y = y

	return nil
}

// InsertPoint splices p in at the position that keeps x sorted, doubling the
// buffer first if it is full.
func (f *ArrayFunction) InsertPoint(p Point) error {
	if err := checkFiniteX(p.X); err != nil {
		return err
	}
	for i := 0; i < f.count; i++ {
		if math.Abs(f.points[i].X-p.X) < Epsilon {
			return duplicateError(p.X, f.points[i].X)
		}
	}

	if f.count == len(f.points) {
		f.grow()
	}

	idx := 0
	for idx < f.count && f.points[idx].X < p.X-Epsilon {
		idx++
	}

	copy(f.points[idx+1:f.count+1], f.points[idx:f.count])
	f.points[idx] = p
	f.count++

	return nil
}

// DeletePoint removes the sample at index i, shifting the tail left.
func (f *ArrayFunction) DeletePoint(i int) error {
	if err := checkIndex(i, f.count); err != nil {
		return err
	}
	if err := checkDeletable(f.count); err != nil {
		return err
	}

	copy(f.points[i:f.count-1], f.points[i+1:f.count])
	f.count--
	f.points[f.count] = Point{}

	return nil
}

// Points returns a copy of all samples in order.
func (f *ArrayFunction) Points() []Point {
	out := make([]Point, f.count)
	copy(out, f.points[:f.count])

	return out
}

// All iterates over copies of all samples in order.
func (f *ArrayFunction) All() iter.Seq2[int, Point] {
	return func(yield func(int, Point) bool) {
		for i := 0; i < f.count; i++ {
			if !yield(i, f.points[i]) {
				return
			}
		}
	}
}

// Storage returns format.StorageArray.
func (f *ArrayFunction) Storage() format.StorageType {
	return format.StorageArray
}

func (f *ArrayFunction) checkMove(i int, x float64) error {
	if err := checkIndex(i, f.count); err != nil {
		return err
	}

	var prevX, nextX float64
	if i > 0 {
		prevX = f.points[i-1].X
	}
	if i < f.count-1 {
		nextX = f.points[i+1].X
	}

	return checkPlacement(x, i, f.count, prevX, nextX)
}

func (f *ArrayFunction) grow() {
	buf := make([]Point, max(len(f.points)*2, MinPoints))
	copy(buf, f.points[:f.count])
	f.points = buf
}
