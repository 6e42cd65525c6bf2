package video

import "github.com/muxable/framebuffer/internal/raw"

// NV12Handle wraps an 8-bit 4:2:0 biplanar buffer: a Y plane plus one plane
// of interleaved UV pairs.
type NV12Handle struct {
	handle
	nv12 *raw.NV12
}

func newNV12Handle(b *raw.NV12) *NV12Handle {
	return &NV12Handle{handle{buf: b}, b}
}

func (h *NV12Handle) ChromaWidth() int  { return h.nv12.ChromaWidth() }
func (h *NV12Handle) ChromaHeight() int { return h.nv12.ChromaHeight() }
func (h *NV12Handle) StrideY() int      { return h.nv12.StrideY() }
func (h *NV12Handle) StrideUV() int     { return h.nv12.StrideUV() }
func (h *NV12Handle) DataY() []byte     { return h.nv12.DataY() }
func (h *NV12Handle) DataUV() []byte    { return h.nv12.DataUV() }

var (
	_ Buffer             = (*Handle)(nil)
	_ PlanarYuv8Buffer   = (*I420Handle)(nil)
	_ PlanarYuv8Buffer   = (*I420AHandle)(nil)
	_ PlanarYuv8Buffer   = (*I422Handle)(nil)
	_ PlanarYuv8Buffer   = (*I444Handle)(nil)
	_ PlanarYuv16Buffer  = (*I010Handle)(nil)
	_ BiplanarYuv8Buffer = (*NV12Handle)(nil)
)
