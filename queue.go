package workq

import "iter"

// compactAt is the number of consumed slots that must build up at the head
// of the backing slice before Next considers shifting the pending items down.
const compactAt = 64

// Queue is a FIFO work queue with optional de-duplication. Items are yielded
// in the order they were accepted, and items accepted while the queue is
// being consumed are yielded by the same pass.
//
// When uniqueness is enabled, an item is dropped if an item with an equal key
// was ever accepted before, even if that earlier item has already been
// consumed. The zero value is not ready for use; construct via New,
// NewWithKey, NewWithKeyErr or NewNonUnique.
type Queue[T any] struct {
	work   []T
	head   int        // index of the next item to yield
	seen   seenSet[T] // nil when uniqueness is disabled
	count  int
	worked int
}

// New creates a unique queue keyed by the items themselves and seeds it with
// items. Duplicates among the seeds are dropped.
//
// An error is only possible when T is an interface type and one of the seeds
// holds an incomparable value; it wraps ErrUnhashable.
func New[T comparable](items ...T) (*Queue[T], error) {
	return NewWithKeyErr(func(v T) (T, error) { return v, nil }, items...)
}

// NewWithKey creates a unique queue where two items are the same work when
// key returns equal values for them. key must be deterministic.
func NewWithKey[T any, K comparable](key func(T) K, items ...T) (*Queue[T], error) {
	if key == nil {
		return nil, ErrNilKeyFunc
	}
	return NewWithKeyErr(func(v T) (K, error) { return key(v), nil }, items...)
}

// NewWithKeyErr is like NewWithKey for a key function that can fail. An error
// from key is returned unmodified by the operation that triggered it, and
// the queue is left as it was before that item.
func NewWithKeyErr[T any, K comparable](key func(T) (K, error), items ...T) (*Queue[T], error) {
	if key == nil {
		return nil, ErrNilKeyFunc
	}
	q := &Queue[T]{
		work: make([]T, 0, len(items)),
		seen: newKeyedSet(key),
	}
	if _, err := q.Extend(items...); err != nil {
		return nil, err
	}
	return q, nil
}

// NewNonUnique creates a queue that accepts every item, duplicates included.
// No seen set is allocated, so T need not be comparable.
func NewNonUnique[T any](items ...T) *Queue[T] {
	q := &Queue[T]{work: make([]T, 0, len(items))}
	q.work = append(q.work, items...)
	q.count = len(items)
	return q
}

// Add appends item to the tail.
//
// Returns true if the item was accepted, or false when uniqueness is enabled
// and an item with the same key was accepted before. On error the queue is
// unchanged. Amortized complexity: O(1).
func (q *Queue[T]) Add(item T) (bool, error) {
	if q.seen != nil {
		added, err := q.seen.insert(item)
		if err != nil || !added {
			return false, err
		}
	}
	q.work = append(q.work, item)
	q.count++
	return true, nil
}

// Extend adds items in order and returns the count actually accepted.
//
// It stops at the first error; items accepted before it remain queued.
func (q *Queue[T]) Extend(items ...T) (int, error) {
	added := 0
	for _, v := range items {
		ok, err := q.Add(v)
		if err != nil {
			return added, err
		}
		if ok {
			added++
		}
	}
	return added, nil
}

// Next removes and returns the head item.
//
// The second result is false when the queue is empty at the time of the
// call. A later Add makes Next succeed again.
func (q *Queue[T]) Next() (T, bool) {
	var zero T
	if q.head == len(q.work) {
		return zero, false
	}
	v := q.work[q.head]
	q.work[q.head] = zero
	q.head++
	q.worked++

	switch {
	case q.head == len(q.work):
		q.work = q.work[:0]
		q.head = 0
	case q.head >= compactAt && q.head*2 >= len(q.work):
		n := copy(q.work, q.work[q.head:])
		clear(q.work[n:])
		q.work = q.work[:n]
		q.head = 0
	}
	return v, true
}

// All returns an iterator that pulls items with Next until the queue is
// empty. The loop body may add items; they are yielded before the loop ends.
// Breaking out of the loop leaves the remaining items queued.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := q.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Peek returns the head item without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	if q.head == len(q.work) {
		var zero T
		return zero, false
	}
	return q.work[q.head], true
}

// Len returns the number of items still pending. It always equals
// Count() - Worked().
func (q *Queue[T]) Len() int { return q.count - q.worked }

// IsEmpty reports whether no items are pending.
func (q *Queue[T]) IsEmpty() bool { return q.Len() == 0 }

// Count returns the number of items accepted over the queue's lifetime.
func (q *Queue[T]) Count() int { return q.count }

// Worked returns the number of items yielded so far.
func (q *Queue[T]) Worked() int { return q.worked }

// Unique reports whether the queue drops previously seen items.
func (q *Queue[T]) Unique() bool { return q.seen != nil }

// Seen reports whether an item with the same key as item has been accepted,
// whether or not it is still pending. It is always false for a queue built
// with NewNonUnique.
func (q *Queue[T]) Seen(item T) (bool, error) {
	if q.seen == nil {
		return false, nil
	}
	return q.seen.contains(item)
}

// ToSlice returns a copy of the pending items in FIFO order.
func (q *Queue[T]) ToSlice() []T {
	out := make([]T, q.Len())
	copy(out, q.work[q.head:])
	return out
}

// Grow makes room for at least n more items without reallocating.
func (q *Queue[T]) Grow(n int) {
	if n <= 0 || cap(q.work)-len(q.work) >= n {
		return
	}
	pending := q.work[q.head:]
	work := make([]T, len(pending), len(pending)+n)
	copy(work, pending)
	q.work = work
	q.head = 0
}
