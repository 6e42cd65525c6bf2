package video

import (
	"sync/atomic"

	"github.com/muxable/framebuffer/internal/raw"
	"go.uber.org/zap"
)

// handle is the common core of every concrete handle type. It owns exactly
// one counted reference to buf, released by the first Release call.
type handle struct {
	buf      raw.Buffer
	released int32
}

func (h *handle) Type() BufferType {
	return bufferType(h.buf.Kind())
}

func (h *handle) Width() int  { return h.buf.Width() }
func (h *handle) Height() int { return h.buf.Height() }

func (h *handle) Release() {
	if !atomic.CompareAndSwapInt32(&h.released, 0, 1) {
		zap.L().Warn("video buffer handle released twice",
			zap.Stringer("type", h.Type()))
		return
	}
	h.buf.Release()
}

func (h *handle) ToI420() *I420Handle {
	return newI420Handle(h.buf.ToI420())
}

func (h *handle) Clone() Buffer {
	h.buf.Retain()
	return wrap(h.buf)
}

// get converts a borrowed native view into an owned reference. The As
// accessors return the underlying buffer without touching its reference
// count; the Retain here, before the reference escapes, is what keeps the
// returned handle alive independently of the receiver. Every extraction
// accessor goes through this function, nothing else takes ownership of a
// borrowed reference.
func (h *handle) get(kind raw.Kind) (raw.Buffer, error) {
	var b raw.Buffer
	switch kind {
	case raw.KindI420:
		if v := h.buf.AsI420(); v != nil {
			b = v
		}
	case raw.KindI420A:
		if v := h.buf.AsI420A(); v != nil {
			b = v
		}
	case raw.KindI422:
		if v := h.buf.AsI422(); v != nil {
			b = v
		}
	case raw.KindI444:
		if v := h.buf.AsI444(); v != nil {
			b = v
		}
	case raw.KindI010:
		if v := h.buf.AsI010(); v != nil {
			b = v
		}
	case raw.KindNV12:
		if v := h.buf.AsNV12(); v != nil {
			b = v
		}
	}
	if b == nil {
		return nil, ErrUnsupportedConversion
	}
	b.Retain()
	return b, nil
}

func (h *handle) GetI420() (*I420Handle, error) {
	b, err := h.get(raw.KindI420)
	if err != nil {
		return nil, err
	}
	return newI420Handle(b.(*raw.I420)), nil
}

func (h *handle) GetI420A() (*I420AHandle, error) {
	b, err := h.get(raw.KindI420A)
	if err != nil {
		return nil, err
	}
	return newI420AHandle(b.(*raw.I420A)), nil
}

func (h *handle) GetI422() (*I422Handle, error) {
	b, err := h.get(raw.KindI422)
	if err != nil {
		return nil, err
	}
	return newI422Handle(b.(*raw.I422)), nil
}

func (h *handle) GetI444() (*I444Handle, error) {
	b, err := h.get(raw.KindI444)
	if err != nil {
		return nil, err
	}
	return newI444Handle(b.(*raw.I444)), nil
}

func (h *handle) GetI010() (*I010Handle, error) {
	b, err := h.get(raw.KindI010)
	if err != nil {
		return nil, err
	}
	return newI010Handle(b.(*raw.I010)), nil
}

func (h *handle) GetNV12() (*NV12Handle, error) {
	b, err := h.get(raw.KindNV12)
	if err != nil {
		return nil, err
	}
	return newNV12Handle(b.(*raw.NV12)), nil
}

// wrap takes ownership of the caller's reference to b and returns a handle
// of the matching concrete type.
func wrap(b raw.Buffer) Buffer {
	switch b.Kind() {
	case raw.KindI420:
		return newI420Handle(b.AsI420())
	case raw.KindI420A:
		return newI420AHandle(b.AsI420A())
	case raw.KindI422:
		return newI422Handle(b.AsI422())
	case raw.KindI444:
		return newI444Handle(b.AsI444())
	case raw.KindI010:
		return newI010Handle(b.AsI010())
	case raw.KindNV12:
		return newNV12Handle(b.AsNV12())
	default:
		return &Handle{handle{buf: b}}
	}
}

func bufferType(k raw.Kind) BufferType {
	switch k {
	case raw.KindI420:
		return BufferTypeI420
	case raw.KindI420A:
		return BufferTypeI420A
	case raw.KindI422:
		return BufferTypeI422
	case raw.KindI444:
		return BufferTypeI444
	case raw.KindI010:
		return BufferTypeI010
	case raw.KindNV12:
		return BufferTypeNV12
	default:
		return BufferTypeNative
	}
}

// Handle wraps a buffer of a kind the adapter has no richer accessors for.
type Handle struct {
	handle
}
