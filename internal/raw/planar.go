package raw

import "github.com/muxable/framebuffer/internal/refcount"

// planar8 is the shared layout for three-plane 8-bit buffers. Plane slices
// are exactly stride*rows long.
type planar8 struct {
	buffer

	y, u, v                   []byte
	strideY, strideU, strideV int
	chromaW, chromaH          int
}

func (p *planar8) ChromaWidth() int  { return p.chromaW }
func (p *planar8) ChromaHeight() int { return p.chromaH }
func (p *planar8) StrideY() int      { return p.strideY }
func (p *planar8) StrideU() int      { return p.strideU }
func (p *planar8) StrideV() int      { return p.strideV }
func (p *planar8) DataY() []byte     { return p.y }
func (p *planar8) DataU() []byte     { return p.u }
func (p *planar8) DataV() []byte     { return p.v }

func (p *planar8) allocPlanes(chromaW, chromaH int) {
	p.strideY = p.width
	p.strideU = chromaW
	p.strideV = chromaW
	p.chromaW = chromaW
	p.chromaH = chromaH
	p.y = refcount.Alloc(p.strideY * p.height)
	p.u = refcount.Alloc(p.strideU * chromaH)
	p.v = refcount.Alloc(p.strideV * chromaH)
}

func (p *planar8) freePlanes() {
	refcount.Free(p.y)
	refcount.Free(p.u)
	refcount.Free(p.v)
}

// I420 is 4:2:0 planar with 8-bit samples.
type I420 struct {
	planar8
}

func NewI420(width, height int) *I420 {
	b := &I420{}
	b.width, b.height = width, height
	b.allocPlanes(halfRound(width), halfRound(height))
	b.init(KindI420, width, height, b.freePlanes)
	return b
}

func (i *I420) AsI420() *I420 { return i }

// CopyI420 returns a deep copy of src. The copy never aliases src's planes.
func CopyI420(src *I420) *I420 {
	dst := NewI420(src.width, src.height)
	copyPlane(dst.y, src.y, dst.strideY, src.strideY, src.width, src.height)
	copyPlane(dst.u, src.u, dst.strideU, src.strideU, src.chromaW, src.chromaH)
	copyPlane(dst.v, src.v, dst.strideV, src.strideV, src.chromaW, src.chromaH)
	return dst
}

// I420A is I420 plus a full-resolution 8-bit alpha plane.
type I420A struct {
	I420

	a       []byte
	strideA int
}

func NewI420A(width, height int) *I420A {
	b := &I420A{}
	b.width, b.height = width, height
	b.allocPlanes(halfRound(width), halfRound(height))
	b.strideA = width
	b.a = refcount.Alloc(b.strideA * height)
	b.init(KindI420A, width, height, func() {
		b.freePlanes()
		refcount.Free(b.a)
	})
	return b
}

func (i *I420A) StrideA() int  { return i.strideA }
func (i *I420A) DataA() []byte { return i.a }

// An I420A is not an I420 for borrowing purposes; the kind tags differ.
func (i *I420A) AsI420() *I420   { return nil }
func (i *I420A) AsI420A() *I420A { return i }

// I422 is 4:2:2 planar: chroma at half horizontal, full vertical resolution.
type I422 struct {
	planar8
}

func NewI422(width, height int) *I422 {
	b := &I422{}
	b.width, b.height = width, height
	b.allocPlanes(halfRound(width), height)
	b.init(KindI422, width, height, b.freePlanes)
	return b
}

func (i *I422) AsI422() *I422 { return i }

// I444 is 4:4:4 planar: chroma at full resolution.
type I444 struct {
	planar8
}

func NewI444(width, height int) *I444 {
	b := &I444{}
	b.width, b.height = width, height
	b.allocPlanes(width, height)
	b.init(KindI444, width, height, b.freePlanes)
	return b
}

func (i *I444) AsI444() *I444 { return i }

// I010 is 4:2:0 planar with 10-bit samples stored in the low bits of uint16.
type I010 struct {
	buffer

	y, u, v                   []uint16
	strideY, strideU, strideV int
	chromaW, chromaH          int
}

func NewI010(width, height int) *I010 {
	cw, ch := halfRound(width), halfRound(height)
	b := &I010{
		y:       refcount.Alloc16(width * height),
		u:       refcount.Alloc16(cw * ch),
		v:       refcount.Alloc16(cw * ch),
		strideY: width,
		strideU: cw,
		strideV: cw,
		chromaW: cw,
		chromaH: ch,
	}
	b.width, b.height = width, height
	b.init(KindI010, width, height, func() {
		refcount.Free16(b.y)
		refcount.Free16(b.u)
		refcount.Free16(b.v)
	})
	return b
}

func (i *I010) ChromaWidth() int  { return i.chromaW }
func (i *I010) ChromaHeight() int { return i.chromaH }
func (i *I010) StrideY() int      { return i.strideY }
func (i *I010) StrideU() int      { return i.strideU }
func (i *I010) StrideV() int      { return i.strideV }
func (i *I010) DataY() []uint16   { return i.y }
func (i *I010) DataU() []uint16   { return i.u }
func (i *I010) DataV() []uint16   { return i.v }

func (i *I010) AsI010() *I010 { return i }

func halfRound(n int) int {
	return (n + 1) / 2
}
