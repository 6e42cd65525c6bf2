package raw

import "github.com/muxable/framebuffer/internal/refcount"

// NV12 is 4:2:0 biplanar: a full-resolution Y plane and a half-resolution
// plane of interleaved UV pairs.
type NV12 struct {
	buffer

	y, uv             []byte
	strideY, strideUV int
	chromaW, chromaH  int
}

func NewNV12(width, height int) *NV12 {
	cw, ch := halfRound(width), halfRound(height)
	b := &NV12{
		strideY:  width,
		strideUV: cw * 2,
		chromaW:  cw,
		chromaH:  ch,
	}
	b.width, b.height = width, height
	b.y = refcount.Alloc(b.strideY * height)
	b.uv = refcount.Alloc(b.strideUV * ch)
	b.init(KindNV12, width, height, func() {
		refcount.Free(b.y)
		refcount.Free(b.uv)
	})
	return b
}

func (n *NV12) ChromaWidth() int  { return n.chromaW }
func (n *NV12) ChromaHeight() int { return n.chromaH }
func (n *NV12) StrideY() int      { return n.strideY }
func (n *NV12) StrideUV() int     { return n.strideUV }
func (n *NV12) DataY() []byte     { return n.y }
func (n *NV12) DataUV() []byte    { return n.uv }

func (n *NV12) AsNV12() *NV12 { return n }

var (
	_ Buffer = (*I420)(nil)
	_ Buffer = (*I420A)(nil)
	_ Buffer = (*I422)(nil)
	_ Buffer = (*I444)(nil)
	_ Buffer = (*I010)(nil)
	_ Buffer = (*NV12)(nil)
)
