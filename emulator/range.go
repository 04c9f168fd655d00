package emulator

var (
	// RAM, mirrored four times across the first 8MB
	RAM_RANGE = NewRange(0x00000000, 4*RAM_ALLOC_SIZE)
	// Expansion slot 1 (parallel port)
	EXPANSION_1 = NewRange(0x1f000000, 1024*1024)
	// Fast RAM used as the data cache
	SCRATCH_PAD_RANGE = NewRange(0x1f800000, SCRATCH_PAD_SIZE)
	// Memory latency and expansion mapping (also known as SYSCONTROL)
	MEM_CONTROL = NewRange(0x1f801000, 36)
	// Register that has something to do with RAM configuration, configured by the BIOS
	RAM_SIZE = NewRange(0x1f801060, 4)
	// Interrupt status and mask registers
	IRQ_CONTROL = NewRange(0x1f801070, 8)
	// DMA engine registers
	DMA_RANGE = NewRange(0x1f801080, 0x80)
	// The three root counters
	TIMERS_RANGE = NewRange(0x1f801100, 0x30)
	// CD-ROM controller ports
	CDROM_RANGE = NewRange(0x1f801800, 4)
	// Sound processing unit registers
	SPU_RANGE = NewRange(0x1f801c00, 640)
	// Expansion slot 2 (BIOS post register lives here)
	EXPANSION_2 = NewRange(0x1f802000, 66)
	// The range of the BIOS in the system memory
	BIOS_RANGE = NewRange(0x1fc00000, BIOS_SIZE)
	// Cache control register, full address since it's in KSEG2
	CACHE_CONTROL = NewRange(0xfffe0130, 4)
)

type Range struct {
	Start  uint32 // Start address
	Length uint32 // Length of the mapping
}

func NewRange(start uint32, length uint32) Range {
	return Range{Start: start, Length: length}
}

// Returns whether `addr` is located inside this range
func (r *Range) Contains(addr uint32) bool {
	return addr >= r.Start && addr < r.Start+r.Length
}

// Returns the offset between `addr` and the `Start` of the range.
// Does not check if the range contains the address, so if `addr`
// is smaller than `Start`, there will be an overflow
func (r *Range) Offset(addr uint32) uint32 {
	return addr - r.Start
}
