package video

import "github.com/muxable/framebuffer/internal/raw"

// Conversions out of I420 into the other layouts. Each returns a new owned
// handle over fresh memory; src is untouched.

func I420AFromI420(src *I420Handle) *I420AHandle {
	return newI420AHandle(raw.I420AFromI420(src.i420))
}

func I422FromI420(src *I420Handle) *I422Handle {
	return newI422Handle(raw.I422FromI420(src.i420))
}

func I444FromI420(src *I420Handle) *I444Handle {
	return newI444Handle(raw.I444FromI420(src.i420))
}

func I010FromI420(src *I420Handle) *I010Handle {
	return newI010Handle(raw.I010FromI420(src.i420))
}

func NV12FromI420(src *I420Handle) *NV12Handle {
	return newNV12Handle(raw.NV12FromI420(src.i420))
}
