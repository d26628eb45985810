package list

import (
	"github.com/benz9527/fwdlist/lib/infra"
)

// EqualFunc reports whether a and b have the same length and pairwise equal
// values. A list is equal to itself without traversal.
func EqualFunc[T any](a, b ForwardList[T], eq func(i, j T) bool) bool {
	if a == b {
		return true
	}
	if a.Len() != b.Len() {
		return false
	}
	for i, j := a.CBegin(), b.CBegin(); !i.IsEnd() && !j.IsEnd(); i, j = i.Next(), j.Next() {
		if !eq(i.Value(), j.Value()) {
			return false
		}
	}
	return true
}

func Equal[T comparable](a, b ForwardList[T]) bool {
	return EqualFunc(a, b, func(i, j T) bool {
		return i == j
	})
}

func NotEqual[T comparable](a, b ForwardList[T]) bool {
	return !Equal(a, b)
}

// CompareFunc compares a and b lexicographically. The first differing value
// decides; if one list is a prefix of the other, the shorter one is less.
// It returns -1, 0 or 1.
func CompareFunc[T any](a, b ForwardList[T], cmp func(i, j T) int64) int64 {
	if a == b {
		return 0
	}
	i, j := a.CBegin(), b.CBegin()
	for ; !i.IsEnd() && !j.IsEnd(); i, j = i.Next(), j.Next() {
		if res := cmp(i.Value(), j.Value()); res < 0 {
			return -1
		} else if res > 0 {
			return 1
		}
	}
	switch {
	case i.IsEnd() && j.IsEnd():
		return 0
	case i.IsEnd():
		return -1
	default:
	}
	return 1
}

func Compare[T infra.OrderedKey](a, b ForwardList[T]) int64 {
	return CompareFunc(a, b, infra.OrderedKeyCompare[T])
}

func Less[T infra.OrderedKey](a, b ForwardList[T]) bool {
	return Compare(a, b) < 0
}

func LessOrEqual[T infra.OrderedKey](a, b ForwardList[T]) bool {
	return !Less(b, a)
}

func Greater[T infra.OrderedKey](a, b ForwardList[T]) bool {
	return Less(b, a)
}

func GreaterOrEqual[T infra.OrderedKey](a, b ForwardList[T]) bool {
	return !Less(a, b)
}
