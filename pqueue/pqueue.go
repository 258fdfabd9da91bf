package pqueue

// Queue is a binary min-style heap over elements of type T, ordered by the
// injected predicate. The element for which higher(e, x) holds against every
// other enqueued x sits at the root and is returned by Peek and Pop.
//
// The zero value is not usable; construct with New or NewFromSlice.
type Queue[T any] struct {
	items  []T
	higher func(a, b T) bool // strict: tied elements compare false both ways
}

// New returns an empty Queue ordered by higher.
// Panics if higher is nil (programmer error, not a runtime condition).
// Complexity: O(1).
func New[T any](higher func(a, b T) bool) *Queue[T] {
	if higher == nil {
		panic("pqueue: nil ordering predicate")
	}

	return &Queue[T]{higher: higher}
}

// NewFromSlice returns a Queue pre-loaded with items, ordered by higher.
// The batch is heapified with a single bottom-up pass: the heap invariant is
// restored once, not per insert, giving O(n) construction.
// The input slice is copied; the caller may keep using it.
// Panics if higher is nil.
func NewFromSlice[T any](items []T, higher func(a, b T) bool) *Queue[T] {
	if higher == nil {
		panic("pqueue: nil ordering predicate")
	}

	q := &Queue[T]{
		items:  append(make([]T, 0, len(items)), items...),
		higher: higher,
	}
	// Bottom-up heapify: sift down every internal node, last parent first.
	for i := len(q.items)/2 - 1; i >= 0; i-- {
		q.siftDown(i)
	}

	return q
}

// Len returns the number of enqueued elements.
// Complexity: O(1).
func (q *Queue[T]) Len() int { return len(q.items) }

// Push inserts item into the queue: append at the last position, then sift
// up while the parent is lower priority than the new element.
// Complexity: O(log n).
func (q *Queue[T]) Push(item T) {
	q.items = append(q.items, item)
	q.siftUp(len(q.items) - 1)
}

// Peek returns the highest-priority element without removing it.
// The second return is false when the queue is empty.
// Complexity: O(1).
func (q *Queue[T]) Peek() (T, bool) {
	if len(q.items) == 0 {
		var zero T
		return zero, false
	}

	return q.items[0], true
}

// Pop removes and returns the highest-priority element: the root is replaced
// by the last element, which is then sifted down, moving toward the
// higher-priority child at each level until the invariant holds.
// The second return is false when the queue is empty.
// Complexity: O(log n).
func (q *Queue[T]) Pop() (T, bool) {
	n := len(q.items)
	if n == 0 {
		var zero T
		return zero, false
	}

	root := q.items[0]
	q.items[0] = q.items[n-1]
	var zero T
	q.items[n-1] = zero // release the reference for GC
	q.items = q.items[:n-1]
	if len(q.items) > 0 {
		q.siftDown(0)
	}

	return root, true
}

// IncreasePriority locates the first element satisfying match (linear scan)
// and replaces it with replacement, then sifts up to restore heap order.
//
// Returns ErrNoMatch if no element satisfies match, and ErrLowerPriority if
// replacement is not strictly higher priority than the matched element.
// In both error cases the heap is left exactly as it was.
// Complexity: O(n) locate + O(log n) sift.
func (q *Queue[T]) IncreasePriority(match func(T) bool, replacement T) error {
	// Locate the target. The heap carries no secondary index, so this is a
	// linear scan over the backing slice.
	at := -1
	for i := range q.items {
		if match(q.items[i]) {
			at = i
			break
		}
	}
	if at < 0 {
		return ErrNoMatch
	}

	// Verify direction before mutating anything: a replacement that is not
	// strictly higher priority would need a sift *down*, which is the
	// decrease-key contract violated, not a supported operation.
	if !q.higher(replacement, q.items[at]) {
		return ErrLowerPriority
	}

	q.items[at] = replacement
	q.siftUp(at)

	return nil
}

// Items returns a copy of the backing slice in heap order (not sorted order).
// Intended for diagnostics and invariant checks in tests.
// Complexity: O(n).
func (q *Queue[T]) Items() []T {
	out := make([]T, len(q.items))
	copy(out, q.items)

	return out
}

// siftUp moves the element at i toward the root while its parent is lower
// priority than it.
func (q *Queue[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !q.higher(q.items[i], q.items[parent]) {
			break
		}
		q.items[i], q.items[parent] = q.items[parent], q.items[i]
		i = parent
	}
}

// siftDown moves the element at i toward the leaves, swapping with the
// higher-priority child until neither child outranks it.
func (q *Queue[T]) siftDown(i int) {
	n := len(q.items)
	for {
		left := 2*i + 1
		if left >= n {
			return // leaf reached
		}
		// Pick the higher-priority child.
		child := left
		if right := left + 1; right < n && q.higher(q.items[right], q.items[left]) {
			child = right
		}
		if !q.higher(q.items[child], q.items[i]) {
			return // invariant holds
		}
		q.items[i], q.items[child] = q.items[child], q.items[i]
		i = child
	}
}
