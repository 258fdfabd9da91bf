// Package pqueue provides a generic binary-heap priority queue ordered by an
// injected predicate, used as the scheduling primitive for graph algorithms.
//
// What
//
//   - Queue[T] holds elements of a single type T, ordered only relative to
//     each other by a caller-supplied predicate higher(a, b) reporting
//     "a is strictly higher priority than b".
//   - Push inserts in O(log n); Pop extracts the highest-priority element in
//     O(log n); Peek inspects it in O(1).
//   - NewFromSlice heapifies a batch in one bottom-up O(n) pass rather than
//     n sequential inserts.
//   - IncreasePriority locates an element by a match predicate (linear scan,
//     O(n)) and replaces it with a strictly higher-priority value, restoring
//     heap order by sifting up.
//
// Ordering contract
//
//	The predicate must be a strict ordering: for tied elements it must
//	return false in both directions. Equal-priority elements may be
//	extracted in any order; callers must not rely on a particular
//	tie-break.
//
// Heap invariant
//
//	For every element at position i, the parent at (i-1)/2 is never lower
//	priority than it. Pop repeatedly returns the single highest-priority
//	remaining element, so n pushes followed by n pops yield elements in
//	fully sorted priority order.
//
// Errors
//
//   - ErrLowerPriority — IncreasePriority was asked to replace an element
//     with one that is not strictly higher priority. The heap is left
//     untouched.
//   - ErrNoMatch — no element satisfied the match predicate. The heap is
//     left untouched.
//
// Complexity (n = queue length)
//
//   - Push: O(log n)   Pop: O(log n)   Peek: O(1)
//   - NewFromSlice: O(n)
//   - IncreasePriority: O(n) locate + O(log n) sift
//
// The queue is not safe for concurrent use; it is exclusively owned by the
// single logical caller during an algorithm run.
package pqueue
