package emulator

import "testing"

func TestCacheRefill(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	bridge := newTestBridge()
	for i := 0; i < 0x40; i++ {
		bridge.ram[0x2000+i] = uint8(i)
	}

	cache := NewInstructionCache()
	assert(!cache.CheckHit(0x2000))

	cache.RefillLine(bridge, 0x2004, false)

	// the whole 16 byte line came in, the neighbours did not
	assert(cache.CheckHit(0x2000))
	assert(cache.CheckHit(0x2004))
	assert(cache.CheckHit(0x200c))
	assert(!cache.CheckHit(0x2010))

	assert(cache.ReadWord(0x2004) == bridge.ReadWord(0x2004))
	assert(cache.ReadByte(0x2007) == 0x07)
}

func TestCacheTagAliasing(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	bridge := newTestBridge()
	cache := NewInstructionCache()

	// 0x2000 and 0x3000 share a line but differ in tag
	cache.RefillLine(bridge, 0x2000, false)
	assert(cache.CheckHit(0x2000))
	assert(!cache.CheckHit(0x3000))

	cache.RefillLine(bridge, 0x3000, false)
	assert(cache.CheckHit(0x3000))
	assert(!cache.CheckHit(0x2000))
}

func TestCacheIsolation(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	bridge := newTestBridge()
	cache := NewInstructionCache()

	// refills are suppressed while the cache is isolated
	cache.RefillLine(bridge, 0x2000, true)
	assert(!cache.CheckHit(0x2000))

	// an isolated store lands in the data array and invalidates the
	// owning line, which is how the BIOS flushes the cache
	cache.RefillLine(bridge, 0x2000, false)
	assert(cache.CheckHit(0x2000))
	cache.WriteWord(0x2000, 0xcafebabe, true)
	assert(!cache.CheckHit(0x2000))
	assert(cache.ReadWord(0x2000) == 0xcafebabe)

	// a plain store keeps the line valid
	cache.RefillLine(bridge, 0x2000, false)
	cache.WriteWord(0x2004, 0x12345678, false)
	assert(cache.CheckHit(0x2000))
	assert(cache.ReadWord(0x2004) == 0x12345678)
}

func TestCacheControlBits(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	assert(CacheControl(0x00000800).ICacheEnabled())
	assert(!CacheControl(0x00000000).ICacheEnabled())
	assert(CacheControl(0x00000088).ScratchpadEnabled())
	assert(!CacheControl(0x00000080).ScratchpadEnabled())
	assert(!CacheControl(0x00000008).ScratchpadEnabled())
	assert(CacheControl(0x00000004).TagTestMode())
}
