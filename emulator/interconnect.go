package emulator

// Stall penalty in CPU cycles per device class
const (
	STALL_RAM  = 4  // Main RAM read latency
	STALL_BIOS = 24 // BIOS ROM sits on a slow 8 bit bus
	STALL_MMIO = 2  // Hardware registers
)

// Global interconnect. It stores all of the peripherals and
// implements the bridge the CPU talks to. All addresses it sees are
// physical
type Interconnect struct {
	Bios       *BIOS       // Basic input/output memory
	Ram        *RAM        // Main RAM
	ScratchPad *ScratchPad // Fast RAM used as the data cache
	IrqState   *IrqState   // Interrupt controller
	Timers     *Timers     // The three root counters

	CacheControl CacheControl // KSEG2 cache control register
	ramSize      uint32       // RAM_SIZE register, configured by the BIOS
	memControl   [9]uint32    // Memory latency/expansion mapping registers
	spu          [640]byte    // Raw SPU register window

	syncedCycles uint64 // Cycles the CPU has reported so far
}

// Creates a new interconnect instance
func NewInterconnect(bios *BIOS) *Interconnect {
	return &Interconnect{
		Bios:       bios,
		Ram:        NewRAM(),
		ScratchPad: NewScratchPad(),
		IrqState:   NewIrqState(),
		Timers:     NewTimers(),
	}
}

func (inter *Interconnect) AppendSyncCycles(cycles int) {
	inter.syncedCycles += uint64(cycles)
}

// Cycles the CPU has accounted against the bus since power up
func (inter *Interconnect) SyncedCycles() uint64 {
	return inter.syncedCycles
}

func (inter *Interconnect) HowManyStallCycles(address uint32) int {
	switch {
	case RAM_RANGE.Contains(address):
		return STALL_RAM
	case BIOS_RANGE.Contains(address):
		return STALL_BIOS
	case SCRATCH_PAD_RANGE.Contains(address):
		return 0
	case address >= 0x1f000000 && address < 0x1fc00000:
		return STALL_MMIO
	}
	return 0
}

// The CD-ROM data port is a FIFO, reading it must not walk forward
func (inter *Interconnect) OkToIncrement(address uint32) bool {
	return !CDROM_RANGE.Contains(address)
}

func (inter *Interconnect) ScratchpadEnabled() bool {
	return inter.CacheControl.ScratchpadEnabled()
}

func (inter *Interconnect) InstructionCacheEnabled() bool {
	return inter.CacheControl.ICacheEnabled()
}

func (inter *Interconnect) ReadByte(address uint32) uint8 {
	return inter.load8(address)
}

// Reads the word at `address` assembled most significant byte first,
// which is the byte order the CPU core works in
func (inter *Interconnect) ReadWord(address uint32) uint32 {
	return swapWord(inter.load32(address))
}

func (inter *Interconnect) WriteByte(address uint32, value uint8) {
	inter.store8(address, value)
}

func (inter *Interconnect) WriteWord(address uint32, value uint32) {
	inter.store32(address, swapWord(value))
}

func (inter *Interconnect) IncrementInterruptCounters() {
	inter.Timers.Tick(inter.IrqState)
}

// Extracts one byte out of a little endian register word
func registerByte(value, address uint32) uint8 {
	return uint8(value >> (8 * (address & 3)))
}

// Replaces one byte of a little endian register word
func setRegisterByte(value, address uint32, b uint8) uint32 {
	shift := 8 * (address & 3)
	return value & ^(uint32(0xff)<<shift) | uint32(b)<<shift
}

// Returns a 32 bit little endian value at `addr`. Panics if the
// address is not mapped
func (inter *Interconnect) load32(addr uint32) uint32 {
	switch {
	case RAM_RANGE.Contains(addr):
		return inter.Ram.Load32(RAM_RANGE.Offset(addr))
	case BIOS_RANGE.Contains(addr):
		return inter.Bios.Load32(BIOS_RANGE.Offset(addr))
	case SCRATCH_PAD_RANGE.Contains(addr):
		off := SCRATCH_PAD_RANGE.Offset(addr)
		return uint32(inter.ScratchPad.Load8(off)) |
			uint32(inter.ScratchPad.Load8(off+1))<<8 |
			uint32(inter.ScratchPad.Load8(off+2))<<16 |
			uint32(inter.ScratchPad.Load8(off+3))<<24
	case EXPANSION_1.Contains(addr), EXPANSION_2.Contains(addr):
		// no expansion hardware present
		return 0xffffffff
	case MEM_CONTROL.Contains(addr):
		return inter.memControl[MEM_CONTROL.Offset(addr)>>2]
	case RAM_SIZE.Contains(addr):
		return inter.ramSize
	case IRQ_CONTROL.Contains(addr):
		if IRQ_CONTROL.Offset(addr) < 4 {
			return uint32(inter.IrqState.Status)
		}
		return uint32(inter.IrqState.Mask)
	case DMA_RANGE.Contains(addr):
		return 0
	case TIMERS_RANGE.Contains(addr):
		return inter.Timers.Load32(TIMERS_RANGE.Offset(addr) & ^uint32(3))
	case CDROM_RANGE.Contains(addr):
		return 0
	case SPU_RANGE.Contains(addr):
		off := SPU_RANGE.Offset(addr)
		return uint32(inter.spu[off]) |
			uint32(inter.spu[(off+1)%640])<<8 |
			uint32(inter.spu[(off+2)%640])<<16 |
			uint32(inter.spu[(off+3)%640])<<24
	case CACHE_CONTROL.Contains(addr):
		return uint32(inter.CacheControl)
	}

	panicFmt("interconnect: unhandled load at address 0x%x", addr)
	return 0
}

// Stores a 32 bit little endian value at `addr`
func (inter *Interconnect) store32(addr, val uint32) {
	switch {
	case RAM_RANGE.Contains(addr):
		inter.Ram.Store32(RAM_RANGE.Offset(addr), val)
	case SCRATCH_PAD_RANGE.Contains(addr):
		off := SCRATCH_PAD_RANGE.Offset(addr)
		inter.ScratchPad.Store8(off, byte(val))
		inter.ScratchPad.Store8(off+1, byte(val>>8))
		inter.ScratchPad.Store8(off+2, byte(val>>16))
		inter.ScratchPad.Store8(off+3, byte(val>>24))
	case BIOS_RANGE.Contains(addr):
		// ROM ignores writes
	case EXPANSION_1.Contains(addr), EXPANSION_2.Contains(addr):
	case MEM_CONTROL.Contains(addr):
		inter.memControl[MEM_CONTROL.Offset(addr)>>2] = val
	case RAM_SIZE.Contains(addr):
		inter.ramSize = val
	case IRQ_CONTROL.Contains(addr):
		if IRQ_CONTROL.Offset(addr) < 4 {
			inter.IrqState.Acknowledge(uint16(val))
		} else {
			inter.IrqState.SetMask(uint16(val))
		}
	case DMA_RANGE.Contains(addr):
	case TIMERS_RANGE.Contains(addr):
		inter.Timers.Store32(TIMERS_RANGE.Offset(addr)&^uint32(3), val)
	case CDROM_RANGE.Contains(addr):
	case SPU_RANGE.Contains(addr):
		off := SPU_RANGE.Offset(addr)
		inter.spu[off] = byte(val)
		inter.spu[(off+1)%640] = byte(val >> 8)
		inter.spu[(off+2)%640] = byte(val >> 16)
		inter.spu[(off+3)%640] = byte(val >> 24)
	case CACHE_CONTROL.Contains(addr):
		inter.CacheControl = CacheControl(val)
	default:
		panicFmt("interconnect: unhandled store at address 0x%x", addr)
	}
}

// Fetches the byte at `addr`. Byte sized regions are accessed
// directly, register windows go through a word read
func (inter *Interconnect) load8(addr uint32) uint8 {
	switch {
	case RAM_RANGE.Contains(addr):
		return inter.Ram.Load8(RAM_RANGE.Offset(addr))
	case BIOS_RANGE.Contains(addr):
		return inter.Bios.Load8(BIOS_RANGE.Offset(addr))
	case SCRATCH_PAD_RANGE.Contains(addr):
		return inter.ScratchPad.Load8(SCRATCH_PAD_RANGE.Offset(addr))
	case SPU_RANGE.Contains(addr):
		return inter.spu[SPU_RANGE.Offset(addr)]
	case EXPANSION_1.Contains(addr), EXPANSION_2.Contains(addr):
		return 0xff
	}
	return registerByte(inter.load32(addr&^uint32(3)), addr)
}

// Sets the byte at `addr`, read-modify-writing register windows
func (inter *Interconnect) store8(addr uint32, val uint8) {
	switch {
	case RAM_RANGE.Contains(addr):
		inter.Ram.Store8(RAM_RANGE.Offset(addr), val)
		return
	case BIOS_RANGE.Contains(addr):
		return
	case SCRATCH_PAD_RANGE.Contains(addr):
		inter.ScratchPad.Store8(SCRATCH_PAD_RANGE.Offset(addr), val)
		return
	case SPU_RANGE.Contains(addr):
		inter.spu[SPU_RANGE.Offset(addr)] = val
		return
	case EXPANSION_1.Contains(addr), EXPANSION_2.Contains(addr):
		return
	}
	aligned := addr &^ uint32(3)
	inter.store32(aligned, setRegisterByte(inter.load32(aligned), addr, val))
}
