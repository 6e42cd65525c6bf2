// video exposes frame buffers as owned, reference-counted handles. Every
// handle returned by this package holds its own counted reference to the
// underlying plane memory; callers release each handle exactly once, in any
// order, and the memory goes away with the last one.
package video

import "errors"

var (
	// ErrUnsupportedConversion is returned by the Get accessors when the
	// underlying buffer has no native view of the requested kind.
	ErrUnsupportedConversion = errors.New("video: no native buffer of the requested kind")

	// ErrInvalidDimensions is returned by constructors for non-positive
	// width or height.
	ErrInvalidDimensions = errors.New("video: width and height must be positive")
)

// BufferType tags the pixel layout a handle wraps.
type BufferType int

const (
	// BufferTypeNative is a buffer the adapter has no richer accessors for.
	BufferTypeNative BufferType = iota
	BufferTypeI420
	BufferTypeI420A
	BufferTypeI422
	BufferTypeI444
	BufferTypeI010
	BufferTypeNV12
)

func (t BufferType) String() string {
	switch t {
	case BufferTypeNative:
		return "Native"
	case BufferTypeI420:
		return "I420"
	case BufferTypeI420A:
		return "I420A"
	case BufferTypeI422:
		return "I422"
	case BufferTypeI444:
		return "I444"
	case BufferTypeI010:
		return "I010"
	case BufferTypeNV12:
		return "NV12"
	default:
		return "Unknown"
	}
}

// Buffer is the capability set every handle has, regardless of layout.
//
// The Get accessors return the buffer's native view of the requested kind as
// a new owned handle, or ErrUnsupportedConversion when the buffer is not
// stored in that layout. They never convert pixel data; use ToI420 for that.
type Buffer interface {
	Type() BufferType
	Width() int
	Height() int

	// ToI420 returns an I420 rendition of the frame as a new owned handle,
	// converting if the buffer is stored in another layout.
	ToI420() *I420Handle

	GetI420() (*I420Handle, error)
	GetI420A() (*I420AHandle, error)
	GetI422() (*I422Handle, error)
	GetI444() (*I444Handle, error)
	GetI010() (*I010Handle, error)
	GetNV12() (*NV12Handle, error)

	// Clone returns a new handle owning its own reference to the same
	// memory.
	Clone() Buffer

	// Release drops this handle's reference. Plane views obtained from the
	// handle must not be used afterwards.
	Release()
}

// PlanarYuvBuffer adds chroma geometry and per-plane strides.
type PlanarYuvBuffer interface {
	Buffer

	ChromaWidth() int
	ChromaHeight() int
	StrideY() int
	StrideU() int
	StrideV() int
}

// PlanarYuv8Buffer adds the 8-bit plane views. Each view is stride*rows
// samples, scanline-major, and is valid until the handle is released.
type PlanarYuv8Buffer interface {
	PlanarYuvBuffer

	DataY() []byte
	DataU() []byte
	DataV() []byte
}

// PlanarYuv16Buffer adds the 16-bit plane views.
type PlanarYuv16Buffer interface {
	PlanarYuvBuffer

	DataY16() []uint16
	DataU16() []uint16
	DataV16() []uint16
}

// BiplanarYuvBuffer adds chroma geometry for layouts with an interleaved
// chroma plane.
type BiplanarYuvBuffer interface {
	Buffer

	ChromaWidth() int
	ChromaHeight() int
	StrideY() int
	StrideUV() int
}

// BiplanarYuv8Buffer adds the 8-bit plane views for biplanar layouts.
type BiplanarYuv8Buffer interface {
	BiplanarYuvBuffer

	DataY() []byte
	DataUV() []byte
}
