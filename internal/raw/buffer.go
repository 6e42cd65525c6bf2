// raw holds the concrete pixel buffers behind the handles in pkg/video. A
// buffer owns its plane memory through an atomic reference count; the memory
// goes back to the plane pool when the last reference is released.
package raw

import (
	"github.com/muxable/framebuffer/internal/metrics"
	"github.com/muxable/framebuffer/internal/refcount"
)

// Buffer is the interface every concrete pixel buffer implements.
//
// The As* accessors return a borrowed reference: the receiver itself when the
// kind matches, nil otherwise. They never touch the reference count. A caller
// that wants to hold on to the result must Retain it first.
type Buffer interface {
	Kind() Kind
	Width() int
	Height() int

	// Retain adds a reference to the plane memory.
	Retain()
	// Release drops a reference. The plane memory is freed when the last
	// reference goes.
	Release()

	// ToI420 returns a counted reference to an I420 representation of this
	// buffer. A buffer already in I420 layout retains and returns itself;
	// every other kind converts into a fresh buffer.
	ToI420() *I420

	AsI420() *I420
	AsI420A() *I420A
	AsI422() *I422
	AsI444() *I444
	AsI010() *I010
	AsNV12() *NV12
}

// buffer carries the state common to all kinds. free is set by the
// constructor and runs exactly once, when the last reference is released.
type buffer struct {
	kind          Kind
	width, height int

	rc   refcount.Count
	free func()
}

func (b *buffer) init(kind Kind, width, height int, free func()) {
	b.kind = kind
	b.width = width
	b.height = height
	b.free = free
	b.rc.Init()
	metrics.Allocations.WithLabelValues(kind.String()).Inc()
	metrics.LiveBuffers.Inc()
}

func (b *buffer) Kind() Kind  { return b.kind }
func (b *buffer) Width() int  { return b.width }
func (b *buffer) Height() int { return b.height }

func (b *buffer) Retain() {
	b.rc.Retain()
}

func (b *buffer) Release() {
	if b.rc.Release() {
		metrics.Releases.Inc()
		metrics.LiveBuffers.Dec()
		if b.free != nil {
			b.free()
		}
	}
}

// Default borrowed accessors; each concrete type overrides its own.
func (b *buffer) AsI420() *I420   { return nil }
func (b *buffer) AsI420A() *I420A { return nil }
func (b *buffer) AsI422() *I422   { return nil }
func (b *buffer) AsI444() *I444   { return nil }
func (b *buffer) AsI010() *I010   { return nil }
func (b *buffer) AsNV12() *NV12   { return nil }
