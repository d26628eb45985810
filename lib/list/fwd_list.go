package list

import (
	"errors"
	"iter"
	"slices"

	"go.uber.org/zap"

	"github.com/benz9527/fwdlist/lib/infra"
)

var _ ForwardList[struct{}] = (*forwardList[struct{}])(nil) // Type check assertion

var (
	ErrNodeArenaExhausted   = errors.New("[fwd-list] node arena exhausted")
	ErrEndPosition          = errors.New("[fwd-list] end position")
	ErrSentinelPosition     = errors.New("[fwd-list] before-begin position is not dereferenceable")
	ErrStalePosition        = errors.New("[fwd-list] position references an erased node")
	ErrForeignPosition      = errors.New("[fwd-list] position belongs to another list")
	ErrNoSuccessor          = errors.New("[fwd-list] position has no successor")
	ErrEmptyForwardList     = errors.New("[fwd-list] empty")
	ErrForeignForwardList   = errors.New("[fwd-list] unknown forward list implementation")
	ErrNilIterationFunc     = errors.New("[fwd-list] nil iteration function")
	ErrCorruptedForwardList = errors.New("[fwd-list] corrupted")
)

type forwardList[T any] struct {
	head  fwdNode[T] // sentinel, head.next is the first element
	arena *nodeArena[T]
	size  int64
}

// NewForwardList returns an empty forward list.
func NewForwardList[T any](opts ...ForwardListOption) ForwardList[T] {
	return newForwardList[T](newNodeArena[T](newForwardListOption(opts...)))
}

// NewForwardListOf builds a forward list holding values in order.
func NewForwardListOf[T any](values []T, opts ...ForwardListOption) (ForwardList[T], error) {
	return NewForwardListFrom[T](slices.Values(values), opts...)
}

// NewForwardListFrom builds a forward list holding the values of seq in order.
// seq must be finite.
func NewForwardListFrom[T any](seq iter.Seq[T], opts ...ForwardListOption) (ForwardList[T], error) {
	l := newForwardList[T](newNodeArena[T](newForwardListOption(opts...)))
	if seq == nil {
		return l, nil
	}
	if err := l.appendSeq(seq); err != nil {
		// Discard the partially built chain.
		l.Clear()
		return nil, err
	}
	return l, nil
}

func newForwardList[T any](arena *nodeArena[T]) *forwardList[T] {
	l := &forwardList[T]{arena: arena}
	l.head.isHead = true
	return l
}

func (l *forwardList[T]) logger() *zap.Logger {
	return l.arena.opt.logger
}

// violate reports a broken precondition. It never returns.
func (l *forwardList[T]) violate(op string, err error) {
	l.logger().Error("[fwd-list] contract violation",
		zap.String("op", op),
		zap.Int64("size", l.size),
		zap.Error(err),
	)
	panic(infra.WrapErrorStackWithMessage(err, "[fwd-list] "+op))
}

// checkPosition returns the node of pos if it is a live node of this list.
func (l *forwardList[T]) checkPosition(op string, pos Position[T]) *fwdNode[T] {
	if pos == nil {
		l.violate(op, ErrEndPosition)
	}
	p := pos.at()
	switch {
	case p.node == nil:
		l.violate(op, ErrEndPosition)
	case p.node.gen != p.gen || !p.node.isLive():
		l.violate(op, ErrStalePosition)
	case p.node != &l.head && p.node.arena != l.arena:
		l.violate(op, ErrForeignPosition)
	}
	return p.node
}

func (l *forwardList[T]) mustOwn(op string, other ForwardList[T]) *forwardList[T] {
	that, ok := other.(*forwardList[T])
	if !ok || that == nil {
		l.violate(op, ErrForeignForwardList)
	}
	return that
}

func (l *forwardList[T]) Len() int64 {
	return l.size
}

func (l *forwardList[T]) IsEmpty() bool {
	return l.size == 0
}

func (l *forwardList[T]) BeforeBegin() Iterator[T] {
	return newIterator(&l.head)
}

func (l *forwardList[T]) CBeforeBegin() ConstIterator[T] {
	return newConstIterator(&l.head)
}

func (l *forwardList[T]) Begin() Iterator[T] {
	return newIterator(l.head.next)
}

func (l *forwardList[T]) End() Iterator[T] {
	return Iterator[T]{}
}

func (l *forwardList[T]) CBegin() ConstIterator[T] {
	return newConstIterator(l.head.next)
}

func (l *forwardList[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{}
}

func (l *forwardList[T]) Front() T {
	if l.size <= 0 {
		l.violate("front", ErrEmptyForwardList)
	}
	return l.head.next.val
}

func (l *forwardList[T]) insertAfter(at *fwdNode[T], v T) (*fwdNode[T], error) {
	n, err := l.arena.allocate(v, at.next)
	if err != nil {
		return nil, err
	}
	at.next = n
	l.size++
	return n, nil
}

func (l *forwardList[T]) InsertAfter(pos Position[T], v T) (Iterator[T], error) {
	at := l.checkPosition("insert after", pos)
	n, err := l.insertAfter(at, v)
	if err != nil {
		return l.End(), err
	}
	return newIterator(n), nil
}

func (l *forwardList[T]) PushFront(v T) error {
	_, err := l.insertAfter(&l.head, v)
	return err
}

func (l *forwardList[T]) eraseAfter(op string, at *fwdNode[T]) *fwdNode[T] {
	victim := at.next
	if victim == nil {
		l.violate(op, ErrNoSuccessor)
	}
	at.next = victim.next
	l.arena.recycle(victim)
	l.size--
	return at.next
}

func (l *forwardList[T]) EraseAfter(pos Position[T]) Iterator[T] {
	at := l.checkPosition("erase after", pos)
	return newIterator(l.eraseAfter("erase after", at))
}

func (l *forwardList[T]) PopFront() {
	if l.size <= 0 {
		l.violate("pop front", ErrEmptyForwardList)
	}
	l.eraseAfter("pop front", &l.head)
}

func (l *forwardList[T]) Clear() {
	for n := l.head.next; n != nil; {
		next := n.next
		l.arena.recycle(n)
		n = next
	}
	l.head.next = nil
	l.size = 0
}

func (l *forwardList[T]) swap(that *forwardList[T]) {
	l.head.next, that.head.next = that.head.next, l.head.next
	l.size, that.size = that.size, l.size
	l.arena, that.arena = that.arena, l.arena
}

func (l *forwardList[T]) Swap(other ForwardList[T]) {
	that := l.mustOwn("swap", other)
	if that == l {
		return
	}
	l.swap(that)
}

// Swap exchanges the contents of a and b.
func Swap[T any](a, b ForwardList[T]) {
	a.Swap(b)
}

// appendSeq links the values of seq after the last element.
// On failure the values appended so far stay linked; callers discard them.
func (l *forwardList[T]) appendSeq(seq iter.Seq[T]) error {
	tail := &l.head
	for tail.next != nil {
		tail = tail.next
	}
	for v := range seq {
		n, err := l.insertAfter(tail, v)
		if err != nil {
			return err
		}
		tail = n
	}
	return nil
}

// rebuild replaces the elements by the values of seq. The values are linked
// into a temporary list first and swapped in once complete, so the list is
// left untouched if the arena runs out partway.
func (l *forwardList[T]) rebuild(seq iter.Seq[T]) error {
	tmp := newForwardList[T](l.arena.spawn())
	if err := tmp.appendSeq(seq); err != nil {
		tmp.Clear()
		return err
	}
	l.swap(tmp)
	// The previous elements.
	tmp.Clear()
	return nil
}

func (l *forwardList[T]) Clone() (ForwardList[T], error) {
	c := newForwardList[T](l.arena.spawn())
	if err := c.appendSeq(l.All()); err != nil {
		c.Clear()
		return nil, err
	}
	return c, nil
}

func (l *forwardList[T]) Assign(src ForwardList[T]) error {
	that := l.mustOwn("assign", src)
	if that == l {
		return nil
	}
	return l.rebuild(that.All())
}

func (l *forwardList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head.next; n != nil; n = n.next {
			if !yield(n.val) {
				return
			}
		}
	}
}

func (l *forwardList[T]) Foreach(fn func(idx int64, v T) error) error {
	if fn == nil {
		return infra.WrapErrorStack(ErrNilIterationFunc)
	}
	idx := int64(0)
	for n := l.head.next; n != nil; n = n.next {
		if err := fn(idx, n.val); err != nil {
			return err
		}
		idx++
	}
	return nil
}

func (l *forwardList[T]) FindFirst(match func(v T) bool) (Iterator[T], bool) {
	if match == nil {
		return l.End(), false
	}
	for n := l.head.next; n != nil; n = n.next {
		if match(n.val) {
			return newIterator(n), true
		}
	}
	return l.End(), false
}

func (l *forwardList[T]) ToSlice() []T {
	res := make([]T, 0, l.size)
	for n := l.head.next; n != nil; n = n.next {
		res = append(res, n.val)
	}
	return res
}

func (l *forwardList[T]) ArenaStats() ArenaStats {
	return l.arena.snapshot()
}
