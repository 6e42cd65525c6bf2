package raw

import "github.com/muxable/framebuffer/internal/metrics"

// copyPlane copies rows of rowBytes samples between planes with independent
// strides.
func copyPlane(dst, src []byte, dstStride, srcStride, rowBytes, rows int) {
	for r := 0; r < rows; r++ {
		copy(dst[r*dstStride:r*dstStride+rowBytes], src[r*srcStride:r*srcStride+rowBytes])
	}
}

func (i *I420) ToI420() *I420 {
	i.Retain()
	return i
}

// ToI420 drops the alpha plane. The result is always fresh memory.
func (i *I420A) ToI420() *I420 {
	metrics.Conversions.WithLabelValues(i.kind.String(), KindI420.String()).Inc()
	dst := NewI420(i.width, i.height)
	copyPlane(dst.y, i.y, dst.strideY, i.strideY, i.width, i.height)
	copyPlane(dst.u, i.u, dst.strideU, i.strideU, i.chromaW, i.chromaH)
	copyPlane(dst.v, i.v, dst.strideV, i.strideV, i.chromaW, i.chromaH)
	return dst
}

// ToI420 halves the vertical chroma resolution by averaging row pairs.
func (i *I422) ToI420() *I420 {
	metrics.Conversions.WithLabelValues(i.kind.String(), KindI420.String()).Inc()
	dst := NewI420(i.width, i.height)
	copyPlane(dst.y, i.y, dst.strideY, i.strideY, i.width, i.height)
	downsampleRows(dst.u, i.u, dst.strideU, i.strideU, dst.chromaW, dst.chromaH, i.chromaH)
	downsampleRows(dst.v, i.v, dst.strideV, i.strideV, dst.chromaW, dst.chromaH, i.chromaH)
	return dst
}

// ToI420 averages each 2x2 chroma block down to one sample.
func (i *I444) ToI420() *I420 {
	metrics.Conversions.WithLabelValues(i.kind.String(), KindI420.String()).Inc()
	dst := NewI420(i.width, i.height)
	copyPlane(dst.y, i.y, dst.strideY, i.strideY, i.width, i.height)
	downsampleBlocks(dst.u, i.u, dst.strideU, i.strideU, dst.chromaW, dst.chromaH, i.chromaW, i.chromaH)
	downsampleBlocks(dst.v, i.v, dst.strideV, i.strideV, dst.chromaW, dst.chromaH, i.chromaW, i.chromaH)
	return dst
}

// ToI420 narrows 10-bit samples to 8 bits.
func (i *I010) ToI420() *I420 {
	metrics.Conversions.WithLabelValues(i.kind.String(), KindI420.String()).Inc()
	dst := NewI420(i.width, i.height)
	narrowPlane(dst.y, i.y, dst.strideY, i.strideY, i.width, i.height)
	narrowPlane(dst.u, i.u, dst.strideU, i.strideU, i.chromaW, i.chromaH)
	narrowPlane(dst.v, i.v, dst.strideV, i.strideV, i.chromaW, i.chromaH)
	return dst
}

// ToI420 splits the interleaved UV plane into separate U and V planes.
func (n *NV12) ToI420() *I420 {
	metrics.Conversions.WithLabelValues(n.kind.String(), KindI420.String()).Inc()
	dst := NewI420(n.width, n.height)
	copyPlane(dst.y, n.y, dst.strideY, n.strideY, n.width, n.height)
	for r := 0; r < n.chromaH; r++ {
		src := n.uv[r*n.strideUV:]
		u := dst.u[r*dst.strideU:]
		v := dst.v[r*dst.strideV:]
		for x := 0; x < n.chromaW; x++ {
			u[x] = src[2*x]
			v[x] = src[2*x+1]
		}
	}
	return dst
}

// downsampleRows averages vertically adjacent row pairs. srcRows may be odd;
// the last destination row then reads a single source row.
func downsampleRows(dst, src []byte, dstStride, srcStride, rowBytes, dstRows, srcRows int) {
	for r := 0; r < dstRows; r++ {
		r0 := 2 * r
		r1 := r0 + 1
		if r1 >= srcRows {
			r1 = r0
		}
		a := src[r0*srcStride:]
		b := src[r1*srcStride:]
		out := dst[r*dstStride:]
		for x := 0; x < rowBytes; x++ {
			out[x] = byte((int(a[x]) + int(b[x]) + 1) / 2)
		}
	}
}

// downsampleBlocks averages each 2x2 sample block, clamping at odd edges.
func downsampleBlocks(dst, src []byte, dstStride, srcStride, dstW, dstH, srcW, srcH int) {
	for r := 0; r < dstH; r++ {
		r0 := 2 * r
		r1 := r0 + 1
		if r1 >= srcH {
			r1 = r0
		}
		a := src[r0*srcStride:]
		b := src[r1*srcStride:]
		out := dst[r*dstStride:]
		for x := 0; x < dstW; x++ {
			c0 := 2 * x
			c1 := c0 + 1
			if c1 >= srcW {
				c1 = c0
			}
			out[x] = byte((int(a[c0]) + int(a[c1]) + int(b[c0]) + int(b[c1]) + 2) / 4)
		}
	}
}

func narrowPlane(dst []byte, src []uint16, dstStride, srcStride, rowSamples, rows int) {
	for r := 0; r < rows; r++ {
		in := src[r*srcStride:]
		out := dst[r*dstStride:]
		for x := 0; x < rowSamples; x++ {
			out[x] = byte(in[x] >> 2)
		}
	}
}

// The From helpers below expand an I420 frame into the other layouts. They
// exist so callers can produce native buffers of every kind from decoded
// I420 content; the adapter's extraction accessors never convert.

// I420AFromI420 copies src and attaches a fully opaque alpha plane.
func I420AFromI420(src *I420) *I420A {
	metrics.Conversions.WithLabelValues(src.kind.String(), KindI420A.String()).Inc()
	dst := NewI420A(src.width, src.height)
	copyPlane(dst.y, src.y, dst.strideY, src.strideY, src.width, src.height)
	copyPlane(dst.u, src.u, dst.strideU, src.strideU, src.chromaW, src.chromaH)
	copyPlane(dst.v, src.v, dst.strideV, src.strideV, src.chromaW, src.chromaH)
	for i := range dst.a {
		dst.a[i] = 0xff
	}
	return dst
}

// I422FromI420 doubles the vertical chroma resolution by repeating rows.
func I422FromI420(src *I420) *I422 {
	metrics.Conversions.WithLabelValues(src.kind.String(), KindI422.String()).Inc()
	dst := NewI422(src.width, src.height)
	copyPlane(dst.y, src.y, dst.strideY, src.strideY, src.width, src.height)
	for r := 0; r < dst.chromaH; r++ {
		sr := r / 2
		if sr >= src.chromaH {
			sr = src.chromaH - 1
		}
		copy(dst.u[r*dst.strideU:r*dst.strideU+dst.chromaW], src.u[sr*src.strideU:])
		copy(dst.v[r*dst.strideV:r*dst.strideV+dst.chromaW], src.v[sr*src.strideV:])
	}
	return dst
}

// I444FromI420 repeats each chroma sample into its 2x2 block.
func I444FromI420(src *I420) *I444 {
	metrics.Conversions.WithLabelValues(src.kind.String(), KindI444.String()).Inc()
	dst := NewI444(src.width, src.height)
	copyPlane(dst.y, src.y, dst.strideY, src.strideY, src.width, src.height)
	upsamplePlane(dst.u, src.u, dst.strideU, src.strideU, dst.chromaW, dst.chromaH, src.chromaW, src.chromaH)
	upsamplePlane(dst.v, src.v, dst.strideV, src.strideV, dst.chromaW, dst.chromaH, src.chromaW, src.chromaH)
	return dst
}

// I010FromI420 widens 8-bit samples to 10 bits.
func I010FromI420(src *I420) *I010 {
	metrics.Conversions.WithLabelValues(src.kind.String(), KindI010.String()).Inc()
	dst := NewI010(src.width, src.height)
	widenPlane(dst.y, src.y, dst.strideY, src.strideY, src.width, src.height)
	widenPlane(dst.u, src.u, dst.strideU, src.strideU, src.chromaW, src.chromaH)
	widenPlane(dst.v, src.v, dst.strideV, src.strideV, src.chromaW, src.chromaH)
	return dst
}

// NV12FromI420 interleaves the U and V planes.
func NV12FromI420(src *I420) *NV12 {
	metrics.Conversions.WithLabelValues(src.kind.String(), KindNV12.String()).Inc()
	dst := NewNV12(src.width, src.height)
	copyPlane(dst.y, src.y, dst.strideY, src.strideY, src.width, src.height)
	for r := 0; r < dst.chromaH; r++ {
		u := src.u[r*src.strideU:]
		v := src.v[r*src.strideV:]
		out := dst.uv[r*dst.strideUV:]
		for x := 0; x < dst.chromaW; x++ {
			out[2*x] = u[x]
			out[2*x+1] = v[x]
		}
	}
	return dst
}

func upsamplePlane(dst, src []byte, dstStride, srcStride, dstW, dstH, srcW, srcH int) {
	for r := 0; r < dstH; r++ {
		sr := r / 2
		if sr >= srcH {
			sr = srcH - 1
		}
		in := src[sr*srcStride:]
		out := dst[r*dstStride:]
		for x := 0; x < dstW; x++ {
			sx := x / 2
			if sx >= srcW {
				sx = srcW - 1
			}
			out[x] = in[sx]
		}
	}
}

func widenPlane(dst []uint16, src []byte, dstStride, srcStride, rowSamples, rows int) {
	for r := 0; r < rows; r++ {
		in := src[r*srcStride:]
		out := dst[r*dstStride:]
		for x := 0; x < rowSamples; x++ {
			out[x] = uint16(in[x]) << 2
		}
	}
}
