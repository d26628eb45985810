package list

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/benz9527/fwdlist/lib/infra"
)

type fwdNode[T any] struct {
	next   *fwdNode[T]
	arena  *nodeArena[T] // The owner. Nil for the sentinel and the recycled nodes.
	gen    uint32        // Bumped on every release, positions keep a snapshot.
	isHead bool
	val    T // It should be placed at the end of the struct to avoid taking too much padding.
}

func (n *fwdNode[T]) isLive() bool {
	return n.isHead || n.arena != nil
}

// ArenaStats is a snapshot of the node storage behind a forward list.
type ArenaStats struct {
	Live     int64 // nodes currently linked into a list
	Recycled int64 // released nodes waiting for reuse
	Capacity int64 // max live nodes, 0 means unbounded
	Chunks   int64
}

// nodeArena hands out nodes from fixed size chunks and keeps the released
// ones in a free list for reuse. Every allocate is paired with one recycle.
type nodeArena[T any] struct {
	opt      *forwardListOption
	chunks   [][]fwdNode[T]
	recycled []*fwdNode[T]
	offset   int // next unused slot of the last chunk
	live     int64
}

func newNodeArena[T any](opt *forwardListOption) *nodeArena[T] {
	return &nodeArena[T]{
		opt:      opt,
		chunks:   make([][]fwdNode[T], 0, 4),
		recycled: make([]*fwdNode[T], 0, opt.chunkSize),
	}
}

// spawn returns an empty arena sharing the same options.
func (arena *nodeArena[T]) spawn() *nodeArena[T] {
	return newNodeArena[T](arena.opt)
}

func (arena *nodeArena[T]) grow() {
	arena.chunks = append(arena.chunks, make([]fwdNode[T], arena.opt.chunkSize))
	arena.offset = 0
	arena.opt.stats.recordChunkGrowth()
	arena.opt.logger.Debug("[fwd-list] node arena grows",
		zap.Int("chunks", len(arena.chunks)),
		zap.Int("chunkSize", arena.opt.chunkSize),
		zap.Int64("live", arena.live),
	)
}

func (arena *nodeArena[T]) allocate(v T, next *fwdNode[T]) (*fwdNode[T], error) {
	if arena.opt.capacity > 0 && arena.live >= arena.opt.capacity {
		arena.opt.stats.recordAllocFailure()
		return nil, infra.WrapErrorStackWithMessage(
			ErrNodeArenaExhausted,
			fmt.Sprintf("[fwd-list] capacity %d reached", arena.opt.capacity),
		)
	}

	var n *fwdNode[T]
	if l := len(arena.recycled); l > 0 {
		n = arena.recycled[l-1]
		arena.recycled[l-1] = nil
		arena.recycled = arena.recycled[:l-1]
	} else {
		if len(arena.chunks) <= 0 || arena.offset >= arena.opt.chunkSize {
			arena.grow()
		}
		n = &arena.chunks[len(arena.chunks)-1][arena.offset]
		arena.offset++
	}
	n.arena, n.next, n.val = arena, next, v
	arena.live++
	arena.opt.stats.recordAllocated()
	return n, nil
}

func (arena *nodeArena[T]) recycle(n *fwdNode[T]) {
	var zero T
	// avoid memory leaks
	n.val = zero
	n.next = nil
	n.arena = nil
	n.gen++
	arena.recycled = append(arena.recycled, n)
	arena.live--
	arena.opt.stats.recordRecycled()
}

func (arena *nodeArena[T]) snapshot() ArenaStats {
	return ArenaStats{
		Live:     arena.live,
		Recycled: int64(len(arena.recycled)),
		Capacity: arena.opt.capacity,
		Chunks:   int64(len(arena.chunks)),
	}
}
