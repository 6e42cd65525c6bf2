package y4m

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/muxable/framebuffer/pkg/video"
)

func TestRoundTrip(t *testing.T) {
	var stream bytes.Buffer
	w := NewWriter(&stream, 4, 2)

	var wantY [][]byte
	for i := 0; i < 3; i++ {
		frame, err := video.NewI420(4, 2)
		if err != nil {
			t.Fatal(err)
		}
		for j := range frame.DataY() {
			frame.DataY()[j] = byte(i*16 + j)
		}
		wantY = append(wantY, append([]byte(nil), frame.DataY()...))
		if err := w.WriteFrame(frame); err != nil {
			t.Fatal(err)
		}
		frame.Release()
	}
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}

	r, err := NewReader(&stream)
	if err != nil {
		t.Fatal(err)
	}
	if r.Width() != 4 || r.Height() != 2 {
		t.Fatalf("expected 4x2, got %dx%d", r.Width(), r.Height())
	}

	for i := 0; i < 3; i++ {
		frame, err := r.ReadFrame()
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(frame.DataY(), wantY[i]) {
			t.Errorf("frame %d: luma mismatch", i)
		}
		frame.Release()
	}
	if _, err := r.ReadFrame(); err != io.EOF {
		t.Errorf("expected EOF, got %v", err)
	}
}

func TestWriterConvertsOtherKinds(t *testing.T) {
	src, err := video.NewI420(4, 2)
	if err != nil {
		t.Fatal(err)
	}
	defer src.Release()
	for i := range src.DataY() {
		src.DataY()[i] = byte(i)
	}

	nv12 := video.NV12FromI420(src)
	defer nv12.Release()

	var stream bytes.Buffer
	w := NewWriter(&stream, 4, 2)
	if err := w.WriteFrame(nv12); err != nil {
		t.Fatal(err)
	}
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}

	r, err := NewReader(&stream)
	if err != nil {
		t.Fatal(err)
	}
	frame, err := r.ReadFrame()
	if err != nil {
		t.Fatal(err)
	}
	defer frame.Release()
	if !bytes.Equal(frame.DataY(), src.DataY()) {
		t.Errorf("luma changed through NV12 write")
	}
}

func TestWriterRejectsMismatchedDimensions(t *testing.T) {
	frame, err := video.NewI420(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	defer frame.Release()

	w := NewWriter(io.Discard, 4, 4)
	if err := w.WriteFrame(frame); err == nil {
		t.Errorf("expected an error for mismatched dimensions")
	}
}

func TestReaderRejectsBadHeader(t *testing.T) {
	if _, err := NewReader(strings.NewReader("MPEG4 W2 H2\n")); err == nil {
		t.Errorf("expected an error for a non-y4m stream")
	}
	if _, err := NewReader(strings.NewReader("YUV4MPEG2 W0 H2\n")); err == nil {
		t.Errorf("expected an error for zero width")
	}
	if _, err := NewReader(strings.NewReader("YUV4MPEG2 W2 H2 C444\n")); err == nil {
		t.Errorf("expected an error for an unsupported colorspace")
	}
}

func TestReaderRejectsTruncatedFrame(t *testing.T) {
	r, err := NewReader(strings.NewReader("YUV4MPEG2 W2 H2 C420\nFRAME\nabc"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.ReadFrame(); err == nil {
		t.Errorf("expected an error for a truncated frame")
	}
}
