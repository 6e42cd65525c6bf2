package refcount

import "testing"

func TestAllocTiers(t *testing.T) {
	cases := []struct {
		size, wantCap int
	}{
		{1, size4K},
		{size4K, size4K},
		{size4K + 1, size64K},
		{1920 * 1080, size4M},
		{3840 * 2160, size16M},
	}
	for _, c := range cases {
		buf := Alloc(c.size)
		if len(buf) != c.size {
			t.Errorf("Alloc(%d): expected len %d, got %d", c.size, c.size, len(buf))
		}
		if cap(buf) != c.wantCap {
			t.Errorf("Alloc(%d): expected cap %d, got %d", c.size, c.wantCap, cap(buf))
		}
		Free(buf)
	}
}

func TestAllocZeroed(t *testing.T) {
	buf := Alloc(4096)
	for i := range buf {
		buf[i] = 0xab
	}
	Free(buf)

	buf = Alloc(4096)
	defer Free(buf)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("expected zeroed plane, got %#x at %d", b, i)
		}
	}
}

func TestAllocOversized(t *testing.T) {
	size := size16M + 1
	buf := Alloc(size)
	if len(buf) != size {
		t.Errorf("expected len %d, got %d", size, len(buf))
	}
	Free(buf)
}

func TestAlloc16Tiers(t *testing.T) {
	cases := []struct {
		size, wantCap int
	}{
		{1, size4K},
		{size4K + 1, size64K},
		{960 * 540, size1M},
		{1920 * 1080, size4M},
	}
	for _, c := range cases {
		buf := Alloc16(c.size)
		if len(buf) != c.size {
			t.Errorf("Alloc16(%d): expected len %d, got %d", c.size, c.size, len(buf))
		}
		if cap(buf) != c.wantCap {
			t.Errorf("Alloc16(%d): expected cap %d, got %d", c.size, c.wantCap, cap(buf))
		}
		Free16(buf)
	}
}

func TestAlloc16Zeroed(t *testing.T) {
	buf := Alloc16(4096)
	for i := range buf {
		buf[i] = 0x3ff
	}
	Free16(buf)

	buf = Alloc16(4096)
	defer Free16(buf)
	for i, s := range buf {
		if s != 0 {
			t.Fatalf("expected zeroed plane, got %#x at %d", s, i)
		}
	}
}

func TestFreeForeignCapacity(t *testing.T) {
	// not from a pool; Free must leave it to the GC without panicking
	Free(make([]byte, 1000, 1500))
	Free(nil)
	Free16(make([]uint16, 1000, 1500))
	Free16(nil)
}
