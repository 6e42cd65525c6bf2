package video

import "github.com/muxable/framebuffer/internal/raw"

// I420Handle wraps an 8-bit 4:2:0 planar buffer.
type I420Handle struct {
	handle
	i420 *raw.I420
}

func newI420Handle(b *raw.I420) *I420Handle {
	return &I420Handle{handle{buf: b}, b}
}

// NewI420 allocates a zeroed 4:2:0 buffer ready for writing.
func NewI420(width, height int) (*I420Handle, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return newI420Handle(raw.NewI420(width, height)), nil
}

// CopyI420 returns a deep copy of src. The copy shares no memory with src.
func CopyI420(src *I420Handle) *I420Handle {
	return newI420Handle(raw.CopyI420(src.i420))
}

func (h *I420Handle) ChromaWidth() int  { return h.i420.ChromaWidth() }
func (h *I420Handle) ChromaHeight() int { return h.i420.ChromaHeight() }
func (h *I420Handle) StrideY() int      { return h.i420.StrideY() }
func (h *I420Handle) StrideU() int      { return h.i420.StrideU() }
func (h *I420Handle) StrideV() int      { return h.i420.StrideV() }
func (h *I420Handle) DataY() []byte     { return h.i420.DataY() }
func (h *I420Handle) DataU() []byte     { return h.i420.DataU() }
func (h *I420Handle) DataV() []byte     { return h.i420.DataV() }

// I420AHandle wraps an I420 buffer with an additional full-resolution alpha
// plane. All I420 accessors apply to the same underlying planes.
type I420AHandle struct {
	I420Handle
	i420a *raw.I420A
}

func newI420AHandle(b *raw.I420A) *I420AHandle {
	return &I420AHandle{I420Handle{handle{buf: b}, &b.I420}, b}
}

func (h *I420AHandle) StrideA() int  { return h.i420a.StrideA() }
func (h *I420AHandle) DataA() []byte { return h.i420a.DataA() }

// I422Handle wraps an 8-bit 4:2:2 planar buffer.
type I422Handle struct {
	handle
	i422 *raw.I422
}

func newI422Handle(b *raw.I422) *I422Handle {
	return &I422Handle{handle{buf: b}, b}
}

func (h *I422Handle) ChromaWidth() int  { return h.i422.ChromaWidth() }
func (h *I422Handle) ChromaHeight() int { return h.i422.ChromaHeight() }
func (h *I422Handle) StrideY() int      { return h.i422.StrideY() }
func (h *I422Handle) StrideU() int      { return h.i422.StrideU() }
func (h *I422Handle) StrideV() int      { return h.i422.StrideV() }
func (h *I422Handle) DataY() []byte     { return h.i422.DataY() }
func (h *I422Handle) DataU() []byte     { return h.i422.DataU() }
func (h *I422Handle) DataV() []byte     { return h.i422.DataV() }

// I444Handle wraps an 8-bit 4:4:4 planar buffer.
type I444Handle struct {
	handle
	i444 *raw.I444
}

func newI444Handle(b *raw.I444) *I444Handle {
	return &I444Handle{handle{buf: b}, b}
}

func (h *I444Handle) ChromaWidth() int  { return h.i444.ChromaWidth() }
func (h *I444Handle) ChromaHeight() int { return h.i444.ChromaHeight() }
func (h *I444Handle) StrideY() int      { return h.i444.StrideY() }
func (h *I444Handle) StrideU() int      { return h.i444.StrideU() }
func (h *I444Handle) StrideV() int      { return h.i444.StrideV() }
func (h *I444Handle) DataY() []byte     { return h.i444.DataY() }
func (h *I444Handle) DataU() []byte     { return h.i444.DataU() }
func (h *I444Handle) DataV() []byte     { return h.i444.DataV() }

// I010Handle wraps a 10-bit 4:2:0 planar buffer. Samples occupy the low ten
// bits of each uint16.
type I010Handle struct {
	handle
	i010 *raw.I010
}

func newI010Handle(b *raw.I010) *I010Handle {
	return &I010Handle{handle{buf: b}, b}
}

func (h *I010Handle) ChromaWidth() int  { return h.i010.ChromaWidth() }
func (h *I010Handle) ChromaHeight() int { return h.i010.ChromaHeight() }
func (h *I010Handle) StrideY() int      { return h.i010.StrideY() }
func (h *I010Handle) StrideU() int      { return h.i010.StrideU() }
func (h *I010Handle) StrideV() int      { return h.i010.StrideV() }
func (h *I010Handle) DataY16() []uint16 { return h.i010.DataY() }
func (h *I010Handle) DataU16() []uint16 { return h.i010.DataU() }
func (h *I010Handle) DataV16() []uint16 { return h.i010.DataV() }
