package list

import (
	"github.com/benz9527/fwdlist/lib/infra"
)

var (
	_ Position[struct{}] = Iterator[struct{}]{}
	_ Position[struct{}] = ConstIterator[struct{}]{}
)

// position is the traversal shared by both iterator flavors.
// A nil node is the End position.
type position[T any] struct {
	node *fwdNode[T]
	gen  uint32
}

func newPosition[T any](n *fwdNode[T]) position[T] {
	if n == nil {
		return position[T]{}
	}
	return position[T]{node: n, gen: n.gen}
}

func (p position[T]) at() position[T] {
	return p
}

// IsEnd reports whether the position is the End of a list.
func (p position[T]) IsEnd() bool {
	return p.node == nil
}

// IsValid reports whether the referenced node is still owned by a list.
// End is never valid.
func (p position[T]) IsValid() bool {
	return p.node != nil && p.node.gen == p.gen && p.node.isLive()
}

// Equal reports whether both positions reference the identical node.
func (p position[T]) Equal(other Position[T]) bool {
	if other == nil {
		return p.node == nil
	}
	return p.node == other.at().node
}

func (p position[T]) mustBeLive(op string) *fwdNode[T] {
	switch {
	case p.node == nil:
		panic(infra.WrapErrorStackWithMessage(ErrEndPosition, "[fwd-list] "+op))
	case p.node.gen != p.gen || !p.node.isLive():
		panic(infra.WrapErrorStackWithMessage(ErrStalePosition, "[fwd-list] "+op))
	}
	return p.node
}

func (p position[T]) advance() position[T] {
	return newPosition(p.mustBeLive("next").next)
}

func (p position[T]) deref(op string) *fwdNode[T] {
	n := p.mustBeLive(op)
	if n.isHead {
		panic(infra.WrapErrorStackWithMessage(ErrSentinelPosition, "[fwd-list] "+op))
	}
	return n
}

// Iterator is a read-write position. The zero value is End.
type Iterator[T any] struct {
	position[T]
}

func newIterator[T any](n *fwdNode[T]) Iterator[T] {
	return Iterator[T]{newPosition(n)}
}

// Next returns the following position, the receiver is left untouched.
// It panics on End or on a stale position.
func (it Iterator[T]) Next() Iterator[T] {
	return Iterator[T]{it.advance()}
}

// Value panics on End, on the sentinel or on a stale position.
func (it Iterator[T]) Value() T {
	return it.deref("value").val
}

func (it Iterator[T]) Ptr() *T {
	return &it.deref("ptr").val
}

func (it Iterator[T]) Set(v T) {
	it.deref("set").val = v
}

// Const narrows the iterator to a read-only one.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{it.position}
}

// ConstIterator is a read-only position. The zero value is End.
type ConstIterator[T any] struct {
	position[T]
}

func newConstIterator[T any](n *fwdNode[T]) ConstIterator[T] {
	return ConstIterator[T]{newPosition(n)}
}

func (it ConstIterator[T]) Next() ConstIterator[T] {
	return ConstIterator[T]{it.advance()}
}

func (it ConstIterator[T]) Value() T {
	return it.deref("value").val
}
