package emulator

// Devices that can own the system bus
type BusHolder int

const (
	BUS_HOLDER_CPU BusHolder = iota // CPU owns the bus
	BUS_HOLDER_DMA BusHolder = iota // DMA engine owns the bus
)

// CpuBridge is the window the CPU core sees the rest of the machine
// through. All addresses are physical. ReadWord/WriteWord assemble the
// four bytes most significant first, so callers on the CPU side swap
// words to get at the little-endian values stored in memory
type CpuBridge interface {
	// Account cycles that elapsed on the CPU side
	AppendSyncCycles(cycles int)
	// Penalty cycles for touching the device behind `address`
	HowManyStallCycles(address uint32) int
	// Whether the address pointer may advance past `address` during a
	// multi-byte access (FIFO ports keep it fixed)
	OkToIncrement(address uint32) bool
	ScratchpadEnabled() bool
	InstructionCacheEnabled() bool
	ReadByte(address uint32) uint8
	ReadWord(address uint32) uint32
	WriteByte(address uint32, value uint8)
	WriteWord(address uint32, value uint32)
	// Advance the peripheral timers by one polling step
	IncrementInterruptCounters()
}
