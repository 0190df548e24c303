package tabulated

import (
	"fmt"
	"iter"
	"math"

	"github.com/samber/lo"

	"github.com/arloliu/tabula/errs"
	"github.com/arloliu/tabula/format"
)

// Epsilon is the tolerance below which two x-coordinates are treated as equal
// for ordering, uniqueness and domain checks.
const Epsilon = 1e-10

// MinPoints is the smallest number of points a function may hold.
const MinPoints = 2

// Function is the operation set shared by every storage.
//
// Indices are zero-based and must lie in [0, PointCount()). Methods that take
// an index return an error wrapping errs.ErrIndexOutOfRange otherwise.
type Function interface {
	// PointCount returns the number of samples, always at least MinPoints.
	PointCount() int
	// LeftBorder returns the x-coordinate of the first sample.
	LeftBorder() float64
	// RightBorder returns the x-coordinate of the last sample.
	RightBorder() float64

	// Evaluate returns the linearly interpolated value at x, or NaN when x lies
	// outside [LeftBorder()-Epsilon, RightBorder()+Epsilon].
	Evaluate(x float64) float64

	// Point returns a copy of the sample at index i.
	Point(i int) (Point, error)
	// SetPoint replaces the sample at index i. The new x must stay strictly
	// between the neighbouring samples.
	SetPoint(i int, p Point) error
	// PointX returns the x-coordinate of the sample at index i.
	PointX(i int) (float64, error)
	// SetPointX moves the sample at index i to x, keeping strict ordering.
	SetPointX(i int, x float64) error
	// PointY returns the y-coordinate of the sample at index i.
	PointY(i int) (float64, error)
	// SetPointY sets the y-coordinate of the sample at index i.
	SetPointY(i int, y float64) error

	// InsertPoint adds p at the position that keeps x sorted. It fails with
	// errs.ErrInvalidPoint when an existing sample has the same x within Epsilon.
	InsertPoint(p Point) error
	// DeletePoint removes the sample at index i. It fails with
	// errs.ErrInvariantViolation when only MinPoints samples remain.
	DeletePoint(i int) error

	// Points returns a copy of all samples in order.
	Points() []Point
	// All iterates over copies of all samples in order.
	All() iter.Seq2[int, Point]
	// Storage reports which storage backs the function.
	Storage() format.StorageType
}

// Equal reports whether a and b hold the same samples, comparing coordinates
// within Epsilon. The storages of a and b may differ.
func Equal(a, b Function) bool {
	if a.PointCount() != b.PointCount() {
		return false
	}

	pa, pb := a.Points(), b.Points()
	for i := range pa {
		if !approxEqual(pa[i].X, pb[i].X) || !approxEqual(pa[i].Y, pb[i].Y) {
			return false
		}
	}

	return true
}

func approxEqual(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}

	return a == b || math.Abs(a-b) < Epsilon
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

// inDomain reports whether x lies in the tolerance-expanded domain.
// NaN is never in the domain.
func inDomain(x, left, right float64) bool {
	return x >= left-Epsilon && x <= right+Epsilon
}

// inSegment reports whether x falls into the tolerance-expanded segment [x1, x2].
func inSegment(x, x1, x2 float64) bool {
	return x >= x1-Epsilon && x <= x2+Epsilon
}

// segmentValue interpolates linearly between p1 and p2. When x is within
// Epsilon of an endpoint the endpoint's y is returned unchanged, which keeps
// sample lookups exact for every storage.
func segmentValue(x float64, p1, p2 Point) float64 {
	if math.Abs(x-p1.X) < Epsilon {
		return p1.Y
	}
	if math.Abs(x-p2.X) < Epsilon {
		return p2.Y
	}

	return p1.Y + (p2.Y-p1.Y)*(x-p1.X)/(p2.X-p1.X)
}

func checkIndex(i, count int) error {
	if i < 0 || i >= count {
		return fmt.Errorf("%w: index %d, point count %d", errs.ErrIndexOutOfRange, i, count)
	}

	return nil
}

// checkPlacement validates x for index i of count samples, where prevX and
// nextX are the neighbouring x-coordinates (ignored at the ends).
func checkPlacement(x float64, i, count int, prevX, nextX float64) error {
	if err := checkFiniteX(x); err != nil {
		return err
	}
	if i > 0 && x <= prevX+Epsilon {
		return fmt.Errorf("%w: x %v must be greater than previous x %v", errs.ErrInvalidPoint, x, prevX)
	}
	if i < count-1 && x >= nextX-Epsilon {
		return fmt.Errorf("%w: x %v must be less than next x %v", errs.ErrInvalidPoint, x, nextX)
	}

	return nil
}

func checkFiniteX(x float64) error {
	if !isFinite(x) {
		return fmt.Errorf("%w: x must be finite, got %v", errs.ErrInvalidPoint, x)
	}

	return nil
}

func checkDeletable(count int) error {
	if count <= MinPoints {
		return fmt.Errorf("%w: cannot delete from a function with %d points, minimum is %d",
			errs.ErrInvariantViolation, count, MinPoints)
	}

	return nil
}

func duplicateError(x, existing float64) error {
	return fmt.Errorf("%w: x %v duplicates existing x %v", errs.ErrInvalidPoint, x, existing)
}

// uniformGrid builds count points evenly spaced over [left, right] and takes
// y from yAt. The last point is pinned to right so the border is exact.
func uniformGrid(left, right float64, count int, yAt func(i int) float64) ([]Point, error) {
	if !isFinite(left) || !isFinite(right) {
		return nil, fmt.Errorf("%w: borders must be finite, got [%v, %v]", errs.ErrInvalidConstruction, left, right)
	}
	if left >= right {
		return nil, fmt.Errorf("%w: left border %v must be less than right border %v",
			errs.ErrInvalidConstruction, left, right)
	}
	if count < MinPoints {
		return nil, fmt.Errorf("%w: point count %d, minimum is %d", errs.ErrInvalidConstruction, count, MinPoints)
	}

	step := (right - left) / float64(count-1)
	if step <= Epsilon {
		return nil, fmt.Errorf("%w: spacing %v over [%v, %v] with %d points is below tolerance",
			errs.ErrInvalidConstruction, step, left, right, count)
	}

	points := lo.Times(count, func(i int) Point {
		return Point{X: left + float64(i)*step, Y: yAt(i)}
	})
	points[count-1].X = right

	// Near large borders the step can fall below the float64 spacing, so
	// neighbouring grid x values may round to the same number.
	if err := validateSequence(points); err != nil {
		return nil, err
	}

	return points, nil
}

func valuesGrid(left, right float64, values []float64) ([]Point, error) {
	return uniformGrid(left, right, len(values), func(i int) float64 { return values[i] })
}

func zeroGrid(left, right float64, count int) ([]Point, error) {
	return uniformGrid(left, right, count, func(int) float64 { return 0 })
}

// validateSequence checks that points can seed a function as given.
func validateSequence(points []Point) error {
	if len(points) < MinPoints {
		return fmt.Errorf("%w: point count %d, minimum is %d", errs.ErrInvalidConstruction, len(points), MinPoints)
	}

	for i, p := range points {
		if !isFinite(p.X) {
			return fmt.Errorf("%w: point %d has non-finite x %v", errs.ErrInvalidConstruction, i, p.X)
		}
		if i > 0 && p.X <= points[i-1].X+Epsilon {
			return fmt.Errorf("%w: points must be strictly increasing in x, point %d x %v follows x %v",
				errs.ErrInvalidConstruction, i, p.X, points[i-1].X)
		}
	}

	return nil
}
