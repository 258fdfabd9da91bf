// Package pqueue: sentinel errors for priority-queue misuse.
// All sentinels are package-prefixed and matched by callers via errors.Is.
package pqueue

import "errors"

var (
	// ErrLowerPriority indicates that IncreasePriority was called with a
	// replacement that is not strictly higher priority than the element it
	// would replace. Decrease-key in the wrong direction is a caller error;
	// the queue reports it and leaves the heap untouched.
	ErrLowerPriority = errors.New("pqueue: replacement is not higher priority")

	// ErrNoMatch indicates that no enqueued element satisfied the match
	// predicate passed to IncreasePriority. The heap is left untouched.
	ErrNoMatch = errors.New("pqueue: no element matches predicate")
)
