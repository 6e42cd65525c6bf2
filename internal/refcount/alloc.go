package refcount

import "sync"

// Plane pool size tiers. The largest tier (16MB) covers a 4K 16-bit luma
// plane; anything bigger falls through to the garbage collector.
const (
	size4K  = 1 << 12
	size64K = 1 << 16
	size1M  = 1 << 20
	size4M  = 1 << 22
	size16M = 1 << 24
)

var (
	pool4K  = sync.Pool{New: func() interface{} { return make([]byte, size4K) }}
	pool64K = sync.Pool{New: func() interface{} { return make([]byte, size64K) }}
	pool1M  = sync.Pool{New: func() interface{} { return make([]byte, size1M) }}
	pool4M  = sync.Pool{New: func() interface{} { return make([]byte, size4M) }}
	pool16M = sync.Pool{New: func() interface{} { return make([]byte, size16M) }}
)

// Wide-plane pools, sized in uint16 samples rather than bytes.
var (
	wide4K  = sync.Pool{New: func() interface{} { return make([]uint16, size4K) }}
	wide64K = sync.Pool{New: func() interface{} { return make([]uint16, size64K) }}
	wide1M  = sync.Pool{New: func() interface{} { return make([]uint16, size1M) }}
	wide4M  = sync.Pool{New: func() interface{} { return make([]uint16, size4M) }}
	wide16M = sync.Pool{New: func() interface{} { return make([]uint16, size16M) }}
)

// Alloc returns a zeroed byte plane of the given size, pooled when a tier
// fits. Planes handed out by Alloc must go back through Free.
func Alloc(size int) []byte {
	var buf []byte
	switch {
	case size <= size4K:
		buf = pool4K.Get().([]byte)[:size]
	case size <= size64K:
		buf = pool64K.Get().([]byte)[:size]
	case size <= size1M:
		buf = pool1M.Get().([]byte)[:size]
	case size <= size4M:
		buf = pool4M.Get().([]byte)[:size]
	case size <= size16M:
		buf = pool16M.Get().([]byte)[:size]
	default:
		return make([]byte, size)
	}
	for i := range buf {
		buf[i] = 0
	}
	return buf
}

// Alloc16 returns a zeroed uint16 plane of the given sample count, pooled
// when a tier fits. Planes handed out by Alloc16 must go back through Free16.
func Alloc16(size int) []uint16 {
	var buf []uint16
	switch {
	case size <= size4K:
		buf = wide4K.Get().([]uint16)[:size]
	case size <= size64K:
		buf = wide64K.Get().([]uint16)[:size]
	case size <= size1M:
		buf = wide1M.Get().([]uint16)[:size]
	case size <= size4M:
		buf = wide4M.Get().([]uint16)[:size]
	case size <= size16M:
		buf = wide16M.Get().([]uint16)[:size]
	default:
		return make([]uint16, size)
	}
	for i := range buf {
		buf[i] = 0
	}
	return buf
}

// Free returns a plane to its pool. Planes with a foreign capacity are left
// to the garbage collector.
func Free(buf []byte) {
	if buf == nil {
		return
	}
	switch cap(buf) {
	case size4K:
		pool4K.Put(buf[:cap(buf)])
	case size64K:
		pool64K.Put(buf[:cap(buf)])
	case size1M:
		pool1M.Put(buf[:cap(buf)])
	case size4M:
		pool4M.Put(buf[:cap(buf)])
	case size16M:
		pool16M.Put(buf[:cap(buf)])
	}
}

// Free16 returns a uint16 plane to its pool.
func Free16(buf []uint16) {
	if buf == nil {
		return
	}
	switch cap(buf) {
	case size4K:
		wide4K.Put(buf[:cap(buf)])
	case size64K:
		wide64K.Put(buf[:cap(buf)])
	case size1M:
		wide1M.Put(buf[:cap(buf)])
	case size4M:
		wide4M.Put(buf[:cap(buf)])
	case size16M:
		wide16M.Put(buf[:cap(buf)])
	}
}
