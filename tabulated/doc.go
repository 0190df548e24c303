// Package tabulated implements tabulated functions: functions sampled at a
// finite set of strictly increasing x-coordinates and evaluated between
// samples by linear interpolation.
//
// Two storages implement the shared [Function] interface:
//
//   - [ArrayFunction]: a contiguous, index-addressed buffer that doubles its
//     capacity when an insertion finds it full. O(1) index access, O(n)
//     positional insert and delete.
//   - [LinkedFunction]: a doubly-linked sequence of nodes kept in an arena and
//     addressed by integer handles. O(i) index resolution, O(1) splice once
//     the node is located.
//
// Callers that only use [Function] cannot tell which storage backs an
// instance; both produce identical results for identical inputs.
//
// # Invariants
//
// Every function holds at least two points and, for every adjacent pair,
// x[i] + Epsilon < x[i+1]. Constructors validate their input before anything
// is allocated, and every mutating method validates before it commits, so a
// failed call leaves the function exactly as it was.
//
// # Errors
//
// Failures are reported with the sentinel errors of package errs, wrapped with
// context:
//
//	if err := fn.InsertPoint(tabulated.NewPoint(0.5, 0.25)); errors.Is(err, errs.ErrInvalidPoint) {
//	    // duplicate or out-of-order x
//	}
//
// Evaluating outside the domain is not an error: Evaluate returns NaN.
//
// # Thread Safety
//
// Functions are not safe for concurrent mutation. Accessors return copies of
// points, so a caller can never alias internal state through a returned Point.
package tabulated
