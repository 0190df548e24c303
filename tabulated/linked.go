package tabulated

import (
	"iter"
	"math"

	"github.com/arloliu/tabula/format"
)

// nilNode marks the position past either end of the sequence and terminates
// the free list.
const nilNode = -1

type linkedNode struct {
	point Point
	prev  int
	next  int
}

// LinkedFunction stores samples as a doubly-linked sequence.
//
// Nodes live in an arena slice and refer to each other by index, so the
// structure holds no pointer cycles. head and tail are the logical ends and
// nilNode stands in for "before the first" and "after the last". Slots of
// deleted nodes are chained into a free list and reused by later inserts.
//
// Resolving an index walks from whichever end is closer, O(min(i, n-i)).
// Once a node is located, insert and delete only relink its neighbours.
type LinkedFunction struct {
	nodes []linkedNode
	head  int
	tail  int
	free  int
	count int
}

var _ Function = (*LinkedFunction)(nil)

// NewLinked creates count samples evenly spaced over [left, right] with y = 0.
//
// Returns an error wrapping errs.ErrInvalidConstruction if left >= right,
// either border is not finite, or count < MinPoints.
func NewLinked(left, right float64, count int, opts ...Option) (*LinkedFunction, error) {
	points, err := zeroGrid(left, right, count)
	if err != nil {
		return nil, err
	}

	return newLinked(points, opts)
}

// NewLinkedFromValues creates len(values) samples evenly spaced over
// [left, right] with y taken from values.
func NewLinkedFromValues(left, right float64, values []float64, opts ...Option) (*LinkedFunction, error) {
	points, err := valuesGrid(left, right, values)
	if err != nil {
		return nil, err
	}

	return newLinked(points, opts)
}

// NewLinkedFromPoints creates a function from explicit samples. The points are
// copied; x must be finite and strictly increasing by more than Epsilon.
func NewLinkedFromPoints(points []Point, opts ...Option) (*LinkedFunction, error) {
	if err := validateSequence(points); err != nil {
		return nil, err
	}

	return newLinked(points, opts)
}

func newLinked(points []Point, opts []Option) (*LinkedFunction, error) {
	cfg, err := newConfig(len(points), opts)
	if err != nil {
		return nil, err
	}

	f := &LinkedFunction{
		nodes: make([]linkedNode, 0, cfg.Capacity),
		head:  nilNode,
		tail:  nilNode,
		free:  nilNode,
	}
	for _, p := range points {
		f.linkBefore(nilNode, p)
	}

	return f, nil
}

// PointCount returns the number of samples.
func (f *LinkedFunction) PointCount() int {
	return f.count
}

// LeftBorder returns the x-coordinate of the first sample.
func (f *LinkedFunction) LeftBorder() float64 {
	return f.nodes[f.head].point.X
}

// RightBorder returns the x-coordinate of the last sample.
func (f *LinkedFunction) RightBorder() float64 {
	return f.nodes[f.tail].point.X
}

// Evaluate returns the linearly interpolated value at x, or NaN outside the
// tolerance-expanded domain. A sample within Epsilon of x is returned directly
// before any segment is searched.
func (f *LinkedFunction) Evaluate(x float64) float64 {
	if !inDomain(x, f.LeftBorder(), f.RightBorder()) {
		return math.NaN()
	}

	for ref := f.head; ref != nilNode; ref = f.nodes[ref].next {
		if p := f.nodes[ref].point; math.Abs(p.X-x) < Epsilon {
			return p.Y
		}
	}

	for ref := f.head; ref != nilNode && f.nodes[ref].next != nilNode; ref = f.nodes[ref].next {
		p1 := f.nodes[ref].point
		p2 := f.nodes[f.nodes[ref].next].point
		if inSegment(x, p1.X, p2.X) {
			return segmentValue(x, p1, p2)
		}
	}

	return math.NaN()
}

// Point returns a copy of the sample at index i.
func (f *LinkedFunction) Point(i int) (Point, error) {
	ref, err := f.nodeAt(i)
	if err != nil {
		return Point{}, err
	}

	return f.nodes[ref].point, nil
}

// SetPoint replaces the sample at index i with a copy of p.
func (f *LinkedFunction) SetPoint(i int, p Point) error {
	ref, err := f.movable(i, p.X)
	if err != nil {
		return err
	}
	f.nodes[ref].point = p

	return nil
}

// PointX returns the x-coordinate of the sample at index i.
func (f *LinkedFunction) PointX(i int) (float64, error) {
	ref, err := f.nodeAt(i)
	if err != nil {
		return 0, err
	}

	return f.nodes[ref].point.X, nil
}

// SetPointX moves the sample at index i to x.
func (f *LinkedFunction) SetPointX(i int, x float64) error {
	ref, err := f.movable(i, x)
	if err != nil {
		return err
	}
	f.nodes[ref].point.X = x

	return nil
}

// PointY returns the y-coordinate of the sample at index i.
func (f *LinkedFunction) PointY(i int) (float64, error) {
	ref, err := f.nodeAt(i)
	if err != nil {
		return 0, err
	}

	return f.nodes[ref].point.Y, nil
}

// SetPointY sets the y-coordinate of the sample at index i.
func (f *LinkedFunction) SetPointY(i int, y float64) error {
	ref, err := f.nodeAt(i)
	if err != nil {
		return err
	}
	f.nodes[ref].point.Y = y

	return nil
}

// InsertPoint splices p in before the first sample whose x exceeds p.X.
func (f *LinkedFunction) InsertPoint(p Point) error {
	if err := checkFiniteX(p.X); err != nil {
		return err
	}
	for ref := f.head; ref != nilNode; ref = f.nodes[ref].next {
		if x := f.nodes[ref].point.X; math.Abs(x-p.X) < Epsilon {
			return duplicateError(p.X, x)
		}
	}

	at := f.head
	for at != nilNode && f.nodes[at].point.X < p.X-Epsilon {
		at = f.nodes[at].next
	}
	f.linkBefore(at, p)

	return nil
}

// DeletePoint unlinks the sample at index i and recycles its slot.
func (f *LinkedFunction) DeletePoint(i int) error {
	ref, err := f.nodeAt(i)
	if err != nil {
		return err
	}
	if err := checkDeletable(f.count); err != nil {
		return err
	}
	f.unlink(ref)

	return nil
}

// Points returns a copy of all samples in order.
func (f *LinkedFunction) Points() []Point {
	out := make([]Point, 0, f.count)
	for ref := f.head; ref != nilNode; ref = f.nodes[ref].next {
		out = append(out, f.nodes[ref].point)
	}

	return out
}

// All iterates over copies of all samples in order.
func (f *LinkedFunction) All() iter.Seq2[int, Point] {
	return func(yield func(int, Point) bool) {
		i := 0
		for ref := f.head; ref != nilNode; ref = f.nodes[ref].next {
			if !yield(i, f.nodes[ref].point) {
				return
			}
			i++
		}
	}
}

// Storage returns format.StorageLinked.
func (f *LinkedFunction) Storage() format.StorageType {
	return format.StorageLinked
}

// nodeAt resolves index i to a node handle, walking from the nearer end.
func (f *LinkedFunction) nodeAt(i int) (int, error) {
	if err := checkIndex(i, f.count); err != nil {
		return nilNode, err
	}

	if i < f.count/2 {
		ref := f.head
		for range i {
			ref = f.nodes[ref].next
		}

		return ref, nil
	}

	ref := f.tail
	for range f.count - 1 - i {
		ref = f.nodes[ref].prev
	}

	return ref, nil
}

// movable locates index i and checks that its x may become x.
func (f *LinkedFunction) movable(i int, x float64) (int, error) {
	ref, err := f.nodeAt(i)
	if err != nil {
		return nilNode, err
	}

	var prevX, nextX float64
	if prev := f.nodes[ref].prev; prev != nilNode {
		prevX = f.nodes[prev].point.X
	}
	if next := f.nodes[ref].next; next != nilNode {
		nextX = f.nodes[next].point.X
	}
	if err := checkPlacement(x, i, f.count, prevX, nextX); err != nil {
		return nilNode, err
	}

	return ref, nil
}

// alloc takes a slot from the free list, or appends one to the arena.
func (f *LinkedFunction) alloc(p Point) int {
	if f.free != nilNode {
		ref := f.free
		f.free = f.nodes[ref].next
		f.nodes[ref] = linkedNode{point: p, prev: nilNode, next: nilNode}

		return ref
	}

	f.nodes = append(f.nodes, linkedNode{point: p, prev: nilNode, next: nilNode})

	return len(f.nodes) - 1
}

// linkBefore inserts p in front of node at; at == nilNode appends to the tail.
func (f *LinkedFunction) linkBefore(at int, p Point) {
	ref := f.alloc(p)

	prev := f.tail
	if at != nilNode {
		prev = f.nodes[at].prev
	}

	f.nodes[ref].prev = prev
	f.nodes[ref].next = at

	if prev == nilNode {
		f.head = ref
	} else {
		f.nodes[prev].next = ref
	}
	if at == nilNode {
		f.tail = ref
	} else {
		f.nodes[at].prev = ref
	}

	f.count++
}

func (f *LinkedFunction) unlink(ref int) {
	prev, next := f.nodes[ref].prev, f.nodes[ref].next

	if prev == nilNode {
		f.head = next
	} else {
		f.nodes[prev].next = next
	}
	if next == nilNode {
		f.tail = prev
	} else {
		f.nodes[next].prev = prev
	}

	f.nodes[ref] = linkedNode{prev: nilNode, next: f.free}
	f.free = ref
	f.count--
}
