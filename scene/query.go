package scene

import "iter"

// Query iterates the objects of one concrete type, e.g. Query[*Subject].
// Matches are cached and rebuilt only when the storage changes.
type Query[T Object] struct {
	storage     *Storage
	lastVersion uint64
	cacheValid  bool

	cachedHandles []Handle
	cachedItems   []T
}

// NewQuery creates a query over the given storage
func NewQuery[T Object](storage *Storage) *Query[T] {
	return &Query[T]{storage: storage}
}

func (q *Query[T]) refresh() {
	if q.cacheValid && q.lastVersion == q.storage.Version() {
		return
	}

	q.cachedHandles = q.cachedHandles[:0]
	q.cachedItems = q.cachedItems[:0]
	for h, obj := range q.storage.Iter() {
		if item, ok := obj.(T); ok {
			q.cachedHandles = append(q.cachedHandles, h)
			q.cachedItems = append(q.cachedItems, item)
		}
	}

	q.lastVersion = q.storage.Version()
	q.cacheValid = true
}

// Iter yields matching handles and objects in insertion order
func (q *Query[T]) Iter() iter.Seq2[Handle, T] {
	q.refresh()
	return func(yield func(Handle, T) bool) {
		for i := range q.cachedHandles {
			if !yield(q.cachedHandles[i], q.cachedItems[i]) {
				return
			}
		}
	}
}

// Values yields matching objects only
func (q *Query[T]) Values() iter.Seq[T] {
	q.refresh()
	return func(yield func(T) bool) {
		for i := range q.cachedItems {
			if !yield(q.cachedItems[i]) {
				return
			}
		}
	}
}

// First returns the earliest inserted match
func (q *Query[T]) First() (Handle, T, bool) {
	q.refresh()
	if len(q.cachedItems) == 0 {
		var zero T
		return 0, zero, false
	}
	return q.cachedHandles[0], q.cachedItems[0], true
}

// Len returns the number of matches
func (q *Query[T]) Len() int {
	q.refresh()
	return len(q.cachedItems)
}
