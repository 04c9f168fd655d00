package emulator

type CacheControl uint32

// Returns whether the instruction cache is enabled
func (cache CacheControl) ICacheEnabled() bool {
	return uint32(cache)&0x800 != 0
}

// Returns whether the scratchpad (the "data cache") is enabled
func (cache CacheControl) ScratchpadEnabled() bool {
	return uint32(cache)&0x80 != 0 && uint32(cache)&0x8 != 0
}

func (cache CacheControl) TagTestMode() bool {
	return uint32(cache)&4 != 0
}

const (
	ICACHE_SIZE  = 4096 // bytes of cached instruction data
	ICACHE_LINES = 256  // 16 byte lines
)

// 4 KB direct mapped instruction cache. Data, tags and valid flags
// are kept in separate arrays and indexed by the physical address:
// bits [11:4] pick the line, bits [31:12] form the tag
type InstructionCache struct {
	data  [ICACHE_SIZE]byte
	tags  [ICACHE_LINES]uint32
	valid [ICACHE_LINES]bool
}

func NewInstructionCache() *InstructionCache {
	return &InstructionCache{}
}

func lineIndex(address uint32) uint32 {
	return (address >> 4) & 0xff
}

func lineTag(address uint32) uint32 {
	return (address >> 12) & 0xfffff
}

// Returns whether `address` is resident in the cache
func (cache *InstructionCache) CheckHit(address uint32) bool {
	idx := lineIndex(address)
	return cache.valid[idx] && cache.tags[idx] == lineTag(address)
}

// Reads the word containing `address`, assembled most significant
// byte first
func (cache *InstructionCache) ReadWord(address uint32) uint32 {
	base := address & 0xffc
	return uint32(cache.data[base])<<24 |
		uint32(cache.data[base+1])<<16 |
		uint32(cache.data[base+2])<<8 |
		uint32(cache.data[base+3])
}

func (cache *InstructionCache) ReadByte(address uint32) uint8 {
	return cache.data[address&0xfff]
}

// Stores a word, most significant byte first. When the cache is
// isolated the store also invalidates the owning line, which is how
// the BIOS flushes the cache
func (cache *InstructionCache) WriteWord(address uint32, value uint32, isolated bool) {
	base := address & 0xffc
	cache.data[base] = uint8(value >> 24)
	cache.data[base+1] = uint8(value >> 16)
	cache.data[base+2] = uint8(value >> 8)
	cache.data[base+3] = uint8(value)
	if isolated {
		cache.valid[lineIndex(address)] = false
	}
}

func (cache *InstructionCache) WriteByte(address uint32, value uint8, isolated bool) {
	cache.data[address&0xfff] = value
	if isolated {
		cache.valid[lineIndex(address)] = false
	}
}

// Fetches the 16 byte line containing `address` over the bus and
// marks it valid. Does nothing while the cache is isolated since the
// bus contents are unreachable then
func (cache *InstructionCache) RefillLine(bridge CpuBridge, address uint32, isolated bool) {
	if isolated {
		return
	}
	base := address & ^uint32(0xf)
	for i := uint32(0); i < 16; i++ {
		cache.data[(base&0xfff)+i] = bridge.ReadByte(base + i)
	}
	idx := lineIndex(address)
	cache.tags[idx] = lineTag(address)
	cache.valid[idx] = true
}
