package refcount

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// Count is an atomic reference count. The zero value is not usable; call Init
// (or construct with New) so the count starts at one reference.
type Count struct {
	n int32
}

func New() *Count {
	c := &Count{}
	c.Init()
	return c
}

// Init resets the count to a single reference.
func (c *Count) Init() {
	atomic.StoreInt32(&c.n, 1)
}

// Retain adds a reference.
func (c *Count) Retain() {
	atomic.AddInt32(&c.n, 1)
}

// Release drops a reference and reports whether this call dropped the last
// one. It returns true exactly once per Init; the owner frees the guarded
// resource on true.
func (c *Count) Release() bool {
	n := atomic.AddInt32(&c.n, -1)
	if n < 0 {
		// over-release is a caller bug, don't free twice.
		zap.L().Error("reference count released below zero", zap.Int32("count", n))
		return false
	}
	return n == 0
}

// Refs returns the current reference count. Only meaningful in tests, the
// value can be stale by the time the caller looks at it.
func (c *Count) Refs() int32 {
	return atomic.LoadInt32(&c.n)
}
