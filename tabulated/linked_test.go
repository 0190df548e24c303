package tabulated

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tabula/errs"
)

// requireLinksConsistent walks the list in both directions and checks that
// every live node is linked back by its neighbours and that the free list
// and the live list together cover the arena exactly once.
func requireLinksConsistent(t *testing.T, f *LinkedFunction) {
	t.Helper()

	seen := make(map[int]bool, len(f.nodes))

	forward := 0
	prev := nilNode
	for ref := f.head; ref != nilNode; ref = f.nodes[ref].next {
		require.False(t, seen[ref], "node %d visited twice", ref)
		seen[ref] = true
		require.Equal(t, prev, f.nodes[ref].prev, "node %d prev link", ref)
		prev = ref
		forward++
	}
	require.Equal(t, f.tail, prev)
	require.Equal(t, f.count, forward)

	backward := 0
	for ref := f.tail; ref != nilNode; ref = f.nodes[ref].prev {
		backward++
	}
	require.Equal(t, f.count, backward)

	for ref := f.free; ref != nilNode; ref = f.nodes[ref].next {
		require.False(t, seen[ref], "free node %d is also live or repeated", ref)
		seen[ref] = true
	}
	require.Len(t, seen, len(f.nodes))
}

func TestLinkedFunction_Links(t *testing.T) {
	fn, err := NewLinkedFromValues(0, 4, []float64{0, 1, 4, 9, 16})
	require.NoError(t, err)
	requireLinksConsistent(t, fn)

	require.NoError(t, fn.InsertPoint(NewPoint(-1, 1)))
	requireLinksConsistent(t, fn)
	require.NoError(t, fn.InsertPoint(NewPoint(5, 25)))
	requireLinksConsistent(t, fn)
	require.NoError(t, fn.InsertPoint(NewPoint(2.5, 6.25)))
	requireLinksConsistent(t, fn)

	require.NoError(t, fn.DeletePoint(0))
	requireLinksConsistent(t, fn)
	require.NoError(t, fn.DeletePoint(fn.PointCount()-1))
	requireLinksConsistent(t, fn)
	require.NoError(t, fn.DeletePoint(2))
	requireLinksConsistent(t, fn)

	require.Equal(t, []Point{{0, 0}, {1, 1}, {2.5, 6.25}, {3, 9}, {4, 16}}, fn.Points())
}

func TestLinkedFunction_ReusesFreedSlots(t *testing.T) {
	fn, err := NewLinked(0, 5, 6)
	require.NoError(t, err)
	require.Len(t, fn.nodes, 6)

	require.NoError(t, fn.DeletePoint(2))
	require.NoError(t, fn.DeletePoint(2))
	require.Len(t, fn.nodes, 6)

	require.NoError(t, fn.InsertPoint(NewPoint(2.5, 1)))
	require.NoError(t, fn.InsertPoint(NewPoint(3.5, 1)))
	require.Len(t, fn.nodes, 6)
	require.Equal(t, nilNode, fn.free)

	require.NoError(t, fn.InsertPoint(NewPoint(6, 1)))
	require.Len(t, fn.nodes, 7)
	requireLinksConsistent(t, fn)
}

func TestLinkedFunction_NodeAtFromBothEnds(t *testing.T) {
	values := make([]float64, 11)
	for i := range values {
		values[i] = float64(i * 10)
	}
	fn, err := NewLinkedFromValues(0, 10, values)
	require.NoError(t, err)

	for i := range fn.PointCount() {
		ref, err := fn.nodeAt(i)
		require.NoError(t, err)
		require.Equal(t, float64(i), fn.nodes[ref].point.X)
	}

	_, err = fn.nodeAt(11)
	require.ErrorIs(t, err, errs.ErrIndexOutOfRange)
}

func TestLinkedFunction_WithCapacity(t *testing.T) {
	fn, err := NewLinked(0, 1, 2, WithCapacity(32))
	require.NoError(t, err)
	require.Equal(t, 32, cap(fn.nodes))
	require.Len(t, fn.nodes, 2)

	_, err = NewLinkedFromPoints([]Point{{0, 0}, {1, 1}}, WithCapacity(-3))
	require.ErrorIs(t, err, errs.ErrInvalidOption)
}

func TestLinkedFunction_ExactMatchBeforeSegmentSearch(t *testing.T) {
	fn, err := NewLinkedFromPoints([]Point{{0, 0.1}, {1, 0.7}, {3, -0.2}})
	require.NoError(t, err)

	require.Equal(t, 0.7, fn.Evaluate(1))
	require.Equal(t, 0.7, fn.Evaluate(1+Epsilon/4))
	require.Equal(t, -0.2, fn.Evaluate(3-Epsilon/4))
}
