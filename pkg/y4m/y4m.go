// y4m reads and writes YUV4MPEG2 streams of I420 frames.
package y4m

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muxable/framebuffer/pkg/video"
)

var (
	errBadHeader      = errors.New("y4m: malformed stream header")
	errBadColorspace  = errors.New("y4m: only 4:2:0 colorspaces are supported")
	errFrameSizeWrong = errors.New("y4m: frame does not match stream dimensions")
)

// Reader decodes one I420 frame per FRAME marker. Frames are returned as
// owned handles; the caller releases each one.
type Reader struct {
	r             *bufio.Reader
	width, height int
}

// NewReader consumes the stream header.
func NewReader(r io.Reader) (*Reader, error) {
	br := bufio.NewReader(r)
	line, err := br.ReadString('\n')
	if err != nil {
		return nil, fmt.Errorf("y4m: reading header: %w", err)
	}
	fields := strings.Fields(strings.TrimSuffix(line, "\n"))
	if len(fields) == 0 || fields[0] != "YUV4MPEG2" {
		return nil, errBadHeader
	}

	y := &Reader{r: br}
	for _, f := range fields[1:] {
		if len(f) < 2 {
			continue
		}
		switch f[0] {
		case 'W':
			if y.width, err = strconv.Atoi(f[1:]); err != nil {
				return nil, errBadHeader
			}
		case 'H':
			if y.height, err = strconv.Atoi(f[1:]); err != nil {
				return nil, errBadHeader
			}
		case 'C':
			if !strings.HasPrefix(f[1:], "420") {
				return nil, errBadColorspace
			}
		}
	}
	if y.width <= 0 || y.height <= 0 {
		return nil, errBadHeader
	}
	return y, nil
}

func (y *Reader) Width() int  { return y.width }
func (y *Reader) Height() int { return y.height }

// ReadFrame returns the next frame, or io.EOF at end of stream.
func (y *Reader) ReadFrame() (*video.I420Handle, error) {
	line, err := y.r.ReadString('\n')
	if err == io.EOF && line == "" {
		return nil, io.EOF
	}
	if err != nil {
		return nil, fmt.Errorf("y4m: reading frame marker: %w", err)
	}
	if !strings.HasPrefix(line, "FRAME") {
		return nil, fmt.Errorf("y4m: expected FRAME marker, got %q", strings.TrimSuffix(line, "\n"))
	}

	frame, err := video.NewI420(y.width, y.height)
	if err != nil {
		return nil, err
	}
	for _, plane := range [][]byte{frame.DataY(), frame.DataU(), frame.DataV()} {
		if _, err := io.ReadFull(y.r, plane); err != nil {
			frame.Release()
			return nil, fmt.Errorf("y4m: reading plane: %w", err)
		}
	}
	return frame, nil
}

// Writer encodes frames into a YUV4MPEG2 stream. Frames of any kind are
// accepted and converted to I420 on the way out.
type Writer struct {
	w             *bufio.Writer
	width, height int
	wroteHeader   bool
}

func NewWriter(w io.Writer, width, height int) *Writer {
	return &Writer{w: bufio.NewWriter(w), width: width, height: height}
}

// WriteFrame appends one frame. The frame is not released; that stays with
// the caller.
func (y *Writer) WriteFrame(b video.Buffer) error {
	if b.Width() != y.width || b.Height() != y.height {
		return errFrameSizeWrong
	}
	if !y.wroteHeader {
		if _, err := fmt.Fprintf(y.w, "YUV4MPEG2 W%d H%d F30:1 Ip A1:1 C420\n", y.width, y.height); err != nil {
			return err
		}
		y.wroteHeader = true
	}

	frame := b.ToI420()
	defer frame.Release()

	if _, err := y.w.WriteString("FRAME\n"); err != nil {
		return err
	}
	for _, plane := range [][]byte{frame.DataY(), frame.DataU(), frame.DataV()} {
		if _, err := y.w.Write(plane); err != nil {
			return err
		}
	}
	return nil
}

// Flush writes out any buffered data.
func (y *Writer) Flush() error {
	return y.w.Flush()
}
