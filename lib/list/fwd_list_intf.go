package list

import "iter"

// Note that the forward list is not thread safe.
// Callers that share a list between goroutines must bring their own locks.

// Position is a place inside a forward list. Both Iterator and ConstIterator
// are positions, so the mutating operations accept either of them.
type Position[T any] interface {
	at() position[T]
}

// ForwardList is a singly linked list anchored by a before-begin sentinel.
// Insertion and removal happen immediately after a held position in O(1).
type ForwardList[T any] interface {
	// Len returns the number of elements in O(1).
	Len() int64
	IsEmpty() bool
	// BeforeBegin returns the sentinel position. It is a valid anchor for
	// InsertAfter and EraseAfter but it can't be dereferenced.
	BeforeBegin() Iterator[T]
	CBeforeBegin() ConstIterator[T]
	// Begin returns the position of the first element or End if the list is empty.
	Begin() Iterator[T]
	// End returns the canonical "no node" position.
	End() Iterator[T]
	CBegin() ConstIterator[T]
	CEnd() ConstIterator[T]
	// Front returns the first value. It panics if the list is empty.
	Front() T
	// PushFront is InsertAfter(BeforeBegin(), v).
	PushFront(v T) error
	// PopFront is EraseAfter(BeforeBegin()). It panics if the list is empty.
	PopFront()
	// InsertAfter splices a new element holding v right after pos and returns
	// its position. pos must be a live position of this list.
	// If the node arena is exhausted, the list is left unmodified and
	// ErrNodeArenaExhausted is returned.
	InsertAfter(pos Position[T], v T) (Iterator[T], error)
	// EraseAfter unlinks and releases the element right after pos and returns
	// the position now following pos (possibly End).
	// pos must be a live position of this list that has a successor.
	EraseAfter(pos Position[T]) Iterator[T]
	// Clear releases every element from front to back.
	Clear()
	// Swap exchanges the elements (and their node arena) with other in O(1).
	// It never allocates.
	Swap(other ForwardList[T])
	// Clone returns a deep copy built with the same options.
	Clone() (ForwardList[T], error)
	// Assign replaces the contents of the list by a deep copy of src.
	// The list is left unchanged if the copy can't be completed.
	Assign(src ForwardList[T]) error
	// All returns a lazy and restartable sequence of the values.
	// It observes the structure at the time each step is taken, so erasing
	// the element currently yielded ends the sequence.
	All() iter.Seq[T]
	// Foreach traverses the list and executes function fn for each value.
	// If fn returns an error, the traversal stops and returns the error.
	Foreach(fn func(idx int64, v T) error) error
	// FindFirst returns the position of the first value matched.
	FindFirst(match func(v T) bool) (Iterator[T], bool)
	ToSlice() []T
	ArenaStats() ArenaStats
	// CheckIntegrity walks the chain and reports every broken invariant.
	CheckIntegrity() error
}
