package raw

import "testing"

func TestBorrowedAccessors(t *testing.T) {
	b := NewI420(4, 2)
	defer b.Release()

	if b.AsI420() != b {
		t.Errorf("expected AsI420 to return the receiver")
	}
	if b.AsI420A() != nil || b.AsI422() != nil || b.AsI444() != nil || b.AsI010() != nil || b.AsNV12() != nil {
		t.Errorf("expected nil for every other kind")
	}
}

// An I420A borrows as I420A only; its I420 capabilities are reachable
// through its own accessors, not through a kind-crossing borrow.
func TestI420ADoesNotBorrowAsI420(t *testing.T) {
	a := NewI420A(4, 2)
	defer a.Release()

	if a.AsI420() != nil {
		t.Errorf("expected nil, kind tags differ")
	}
	if a.AsI420A() != a {
		t.Errorf("expected AsI420A to return the receiver")
	}
}

func TestKindsAndGeometry(t *testing.T) {
	cases := []struct {
		b      Buffer
		kind   Kind
		cw, ch int
	}{
		{NewI420(7, 5), KindI420, 4, 3},
		{NewI420A(7, 5), KindI420A, 4, 3},
		{NewI422(7, 5), KindI422, 4, 5},
		{NewI444(7, 5), KindI444, 7, 5},
		{NewI010(7, 5), KindI010, 4, 3},
		{NewNV12(7, 5), KindNV12, 4, 3},
	}
	for _, c := range cases {
		if c.b.Kind() != c.kind {
			t.Errorf("expected kind %v, got %v", c.kind, c.b.Kind())
		}
		if c.b.Width() != 7 || c.b.Height() != 5 {
			t.Errorf("%v: expected 7x5, got %dx%d", c.kind, c.b.Width(), c.b.Height())
		}
		type chromaSized interface {
			ChromaWidth() int
			ChromaHeight() int
		}
		cs := c.b.(chromaSized)
		if cs.ChromaWidth() != c.cw || cs.ChromaHeight() != c.ch {
			t.Errorf("%v: expected %dx%d chroma, got %dx%d", c.kind, c.cw, c.ch, cs.ChromaWidth(), cs.ChromaHeight())
		}
		c.b.Release()
	}
}

// I010 planes come from the wide pool; a buffer allocated after a dirty
// release must still start zeroed.
func TestI010PlanesZeroedAfterReuse(t *testing.T) {
	b := NewI010(4, 4)
	for i := range b.DataY() {
		b.DataY()[i] = 0x3ff
	}
	b.Release()

	b = NewI010(4, 4)
	defer b.Release()
	for i, s := range b.DataY() {
		if s != 0 {
			t.Fatalf("expected zeroed luma plane, got %#x at %d", s, i)
		}
	}
}

func TestCopyI420IsDeep(t *testing.T) {
	src := newTestI420(4, 4)
	defer src.Release()

	dst := CopyI420(src)
	defer dst.Release()

	if &dst.DataY()[0] == &src.DataY()[0] {
		t.Fatalf("copy aliases the source luma plane")
	}
	dst.DataY()[0] ^= 0xff
	if src.DataY()[0] == dst.DataY()[0] {
		t.Errorf("mutating the copy changed the source")
	}
}
