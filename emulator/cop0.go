package emulator

// Cop0 register indices that do something on the R3051
const (
	COP0_BAD_VADDR = 8  // Bad virtual address
	COP0_STATUS    = 12 // Status register
	COP0_CAUSE     = 13 // Cause register
	COP0_EPC       = 14 // Exception PC
	COP0_PRID      = 15 // Processor ID
)

// Coprocessor 0: System Control. Holds the full 32 entry register
// file even though most of it is wired to zero, so register numbers
// from instructions index it directly
type Cop0 struct {
	Regs          [32]uint32
	ConditionLine bool
}

// Creates a new Cop0 instance in its post-reset state
func NewCop0() *Cop0 {
	cop := &Cop0{}
	cop.Reset()
	return cop
}

// Puts the coprocessor into the state the hardware reset line leaves
// it in. Random points at TLB slot 63 and the cache ends up not
// swapped and not isolated
func (cop *Cop0) Reset() {
	cop.Regs[1] = 63 << 8
	cop.Regs[COP0_STATUS] &= 0xff9fffff
	cop.Regs[COP0_STATUS] &= 0xfffdfffc
	cop.ConditionLine = false
}

// Reads register `reg` the way MFC0 sees it
func (cop *Cop0) ReadReg(reg uint32) uint32 {
	switch reg {
	case COP0_STATUS:
		return cop.Regs[COP0_STATUS] & 0xf27fff3f
	case COP0_CAUSE:
		return cop.Regs[COP0_CAUSE] & 0xb000ff7c
	case COP0_PRID:
		return 0x00000002
	case 1, COP0_BAD_VADDR, COP0_EPC:
		return cop.Regs[reg]
	}
	return 0
}

// Writes register `reg`. Without `override` the hardware write masks
// apply (the path MTC0 takes), with it the raw value lands in the
// register (the path the exception handler takes)
func (cop *Cop0) WriteReg(reg uint32, value uint32, override bool) {
	if override {
		cop.Regs[reg] = value
		return
	}
	switch reg {
	case COP0_STATUS:
		cop.Regs[COP0_STATUS] = (cop.Regs[COP0_STATUS] & 0x0db400c0) |
			(value & 0xf24bff3f)
	case COP0_CAUSE:
		cop.Regs[COP0_CAUSE] = (cop.Regs[COP0_CAUSE] & 0xfffffcff) |
			(value & 0x00000300)
	default:
		cop.Regs[reg] = value
	}
}

// Pops the interrupt enable/kernel mode stack in the status register
func (cop *Cop0) Rfe() {
	status := cop.Regs[COP0_STATUS]
	cop.Regs[COP0_STATUS] = (status & ^uint32(0xf)) |
		logicalRshift32(status, 2)&0xf
}

// Sets or clears the cache miss bit of the status register
func (cop *Cop0) SetCacheMiss(miss bool) {
	if miss {
		cop.Regs[COP0_STATUS] |= 0x00080000
	} else {
		cop.Regs[COP0_STATUS] &= ^uint32(0x00080000)
	}
}

// Translates a virtual address to a physical one. The R3051 has no
// TLB so this just unmaps the KSEG0/KSEG1 windows
func (cop *Cop0) VirtualToPhysical(address uint32) uint32 {
	switch {
	case address >= 0x80000000 && address < 0xa0000000:
		return address - 0x80000000
	case address >= 0xa0000000 && address < 0xc0000000:
		return address - 0xa0000000
	}
	return address
}

// Accesses through KSEG1 bypass the cache, everything below it is
// cacheable
func (cop *Cop0) IsCacheable(address uint32) bool {
	return address < 0xa0000000
}

func (cop *Cop0) InKernelMode() bool {
	return !bitSet(cop.Regs[COP0_STATUS], 1)
}

// User mode may only touch the lower half of the address space
func (cop *Cop0) IsAddressAllowed(address uint32) bool {
	return !bitSet(address, 31) || cop.InKernelMode()
}

func (cop *Cop0) IsDataCacheIsolated() bool {
	return bitSet(cop.Regs[COP0_STATUS], 16)
}

// Software can set the SwC bit but the chip has no data cache to
// swap in, so the caches are never actually exchanged
func (cop *Cop0) AreCachesSwapped() bool {
	return false
}

func (cop *Cop0) IsCoProcessorUsable(num uint32) bool {
	return bitSet(cop.Regs[COP0_STATUS], 28+num)
}

func (cop *Cop0) UserModeOppositeByteOrdering() bool {
	return bitSet(cop.Regs[COP0_STATUS], 25)
}

func (cop *Cop0) InterruptsEnabled() bool {
	return bitSet(cop.Regs[COP0_STATUS], 0)
}

// Whether boot-time (BEV) exception vectors are selected
func (cop *Cop0) BootExceptionVectors() bool {
	return bitSet(cop.Regs[COP0_STATUS], 22)
}

func (cop *Cop0) ResetExceptionVector() uint32 {
	return 0xbfc00000
}

func (cop *Cop0) GeneralExceptionVector() uint32 {
	if cop.BootExceptionVectors() {
		return 0xbfc00180
	}
	return 0x80000080
}
