package list

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/benz9527/fwdlist/lib/infra"
)

func corrupted(format string, args ...any) error {
	return infra.WrapErrorStackWithMessage(ErrCorruptedForwardList, fmt.Sprintf(format, args...))
}

func (l *forwardList[T]) CheckIntegrity() error {
	var (
		merr  error
		count int64
		// The arena only serves this list, so a longer walk means a cycle.
		bound = max(l.size, l.arena.live)
	)
	for n := l.head.next; n != nil; n = n.next {
		if count >= bound {
			merr = multierr.Append(merr, corrupted("cycle or unaccounted node after %d nodes", count))
			break
		}
		switch {
		case n.isHead:
			merr = multierr.Append(merr, corrupted("sentinel linked at index %d", count))
		case n.arena == nil:
			merr = multierr.Append(merr, corrupted("released node linked at index %d", count))
		case n.arena != l.arena:
			merr = multierr.Append(merr, corrupted("foreign node linked at index %d", count))
		default:
		}
		count++
	}
	if count != l.size {
		merr = multierr.Append(merr, corrupted("size %d, but %d nodes reachable", l.size, count))
	}
	if l.arena.live != l.size {
		merr = multierr.Append(merr, corrupted("size %d, but %d live nodes in arena", l.size, l.arena.live))
	}
	return merr
}
