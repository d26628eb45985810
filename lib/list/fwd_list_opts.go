package list

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const (
	defaultFwdListChunkSize = 64
	maxFwdListChunkSize     = 1 << 16
)

type forwardListOption struct {
	logger      *zap.Logger
	stats       *fwdListStats
	name        string
	capacity    int64
	chunkSize   int
	enableStats bool
}

func (opt *forwardListOption) validate() {
	if opt.chunkSize <= 0 {
		opt.chunkSize = defaultFwdListChunkSize
	}
	if opt.logger == nil {
		opt.logger = zap.NewNop()
	}
	if opt.enableStats {
		opt.stats = newFwdListStats(opt.name)
	}
}

func newForwardListOption(opts ...ForwardListOption) *forwardListOption {
	opt := &forwardListOption{}
	for _, o := range opts {
		if o != nil {
			o(opt)
		}
	}
	opt.validate()
	return opt
}

type ForwardListOption func(opt *forwardListOption)

// WithForwardListCapacity limits the number of live nodes.
// Zero means unbounded.
func WithForwardListCapacity(capacity int64) ForwardListOption {
	return func(opt *forwardListOption) {
		if capacity < 0 {
			panic("forward list capacity must be greater than or equals to 0")
		}
		opt.capacity = capacity
	}
}

func WithForwardListChunkSize(size int) ForwardListOption {
	return func(opt *forwardListOption) {
		if size < 1 || size > maxFwdListChunkSize {
			panic(fmt.Sprintf("forward list chunk size must be in range [1, %d]", maxFwdListChunkSize))
		}
		opt.chunkSize = size
	}
}

func WithForwardListLogger(logger *zap.Logger) ForwardListOption {
	return func(opt *forwardListOption) {
		if logger == nil {
			panic("forward list logger must be not nil")
		}
		opt.logger = logger
	}
}

// WithForwardListStats enables the otel metrics of the node arena.
// Lists built by Clone and Assign report to the same instruments.
func WithForwardListStats(name string) ForwardListOption {
	return func(opt *forwardListOption) {
		if len(strings.TrimSpace(name)) <= 0 {
			panic("forward list stats name must not be empty or blank")
		}
		opt.name = name
		opt.enableStats = true
	}
}
