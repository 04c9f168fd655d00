package emulator

// CPU state. The coprocessors live inside the CPU, everything else
// is reached through a CpuBridge passed into RunBlock
type CPU struct {
	PC   uint32     // The program counter register
	Regs [32]uint32 // General purpose registers. The first value must always be 0
	Hi   uint32     // Multiply/divide result high word
	Lo   uint32     // Multiply/divide result low word

	Cop0  *Cop0             // System control coprocessor
	Gte   *GTE              // Geometry transformation engine
	Cache *InstructionCache // Instruction cache

	// Delay slot bookkeeping. A branch latches its target in
	// jumpAddress and the jump is applied after the next instruction
	jumpAddress uint32
	jumpPending bool
	// Whether the previous/current instruction was a branch type
	prevWasBranch bool
	isBranch      bool

	exception MIPSException
	holder    BusHolder

	cycles      int    // cycles of the instruction in flight
	TotalCycles uint64 // cycles since power up

	Debugger *Debugger // optional, nil when not attached
}

// Creates a new CPU in its post-reset state
func NewCPU() *CPU {
	cpu := &CPU{
		Cop0:  NewCop0(),
		Gte:   NewGTE(),
		Cache: NewInstructionCache(),
	}
	cpu.Reset()
	return cpu
}

// Puts the CPU back at the reset vector
func (cpu *CPU) Reset() {
	cpu.Cop0.Reset()
	cpu.PC = cpu.Cop0.ResetExceptionVector()
	cpu.Regs = [32]uint32{}
	cpu.Hi = 0
	cpu.Lo = 0
	cpu.jumpPending = false
	cpu.prevWasBranch = false
	cpu.isBranch = false
	cpu.exception = NewMIPSException()
	cpu.holder = BUS_HOLDER_CPU
}

// Returns the register value at `index`. The first register is always zero
func (cpu *CPU) Reg(index uint32) uint32 {
	return cpu.Regs[index]
}

// Sets the value at the `index` register and sets the first register to zero
func (cpu *CPU) SetReg(index, val uint32) {
	cpu.Regs[index] = val
	// R0 should always remain 0, we can't change it
	cpu.Regs[0] = 0
}

// Which device currently owns the system bus
func (cpu *CPU) BusHolder() BusHolder {
	return cpu.holder
}

func (cpu *CPU) SetBusHolder(holder BusHolder) {
	cpu.holder = holder
}

// Runs instructions until the end of the current basic block and
// returns how many cycles they took. A block always ends with a
// branch type instruction, so the bus holder can only change between
// fetches of straight line code
func (cpu *CPU) RunBlock(bridge CpuBridge) int {
	total := 0
	for {
		total += cpu.step(bridge)
		if cpu.prevWasBranch {
			break
		}
	}
	return total
}

// Executes a single instruction
func (cpu *CPU) step(bridge CpuBridge) int {
	cpu.cycles = 0

	// another device owns the bus, the CPU stalls on its fetch
	if cpu.holder != BUS_HOLDER_CPU {
		bridge.AppendSyncCycles(1)
		cpu.TotalCycles++
		return 1
	}

	if cpu.Debugger != nil {
		cpu.Debugger.changedPc(cpu, bridge)
	}

	word := cpu.readInstructionWord(bridge, cpu.PC)
	if word < 0 {
		// fetch faulted, the exception is already recorded
		cpu.handleException()
		bridge.AppendSyncCycles(1)
		cpu.TotalCycles++
		return 1
	}

	instruction := Instruction(word)
	cpu.isBranch = false
	cpu.cycles++
	cpu.executeOpcode(bridge, instruction)

	if !cpu.handleException() {
		if cpu.prevWasBranch && cpu.jumpPending {
			cpu.PC = cpu.jumpAddress
			cpu.jumpPending = false
		} else {
			cpu.PC += 4
		}
		cpu.prevWasBranch = cpu.isBranch
		if cpu.isBranch {
			cpu.checkInterrupts(bridge)
		}
	}

	bridge.AppendSyncCycles(cpu.cycles)
	cpu.TotalCycles += uint64(cpu.cycles)
	return cpu.cycles
}

// Records a pending exception for the instruction in flight
func (cpu *CPU) raiseException(reason Exception) {
	cpu.exception.Reason = reason
	cpu.exception.OriginPC = cpu.PC
	cpu.exception.InBranchDelaySlot = cpu.prevWasBranch
}

// Consumes the pending exception record if there is one. Returns
// whether the CPU jumped to an exception vector
func (cpu *CPU) handleException() bool {
	e := &cpu.exception
	switch e.Reason {
	case EXCEPTION_NULL:
		return false
	case EXCEPTION_RESET:
		cpu.Reset()
		e.Reset()
		return true
	}

	// a pending jump never survives an exception
	cpu.jumpPending = false
	cpu.prevWasBranch = false

	cop := cpu.Cop0
	cause := cop.Regs[COP0_CAUSE]
	cause = (cause & ^uint32(0x7c)) | uint32(e.Reason)<<2
	if e.InBranchDelaySlot {
		cause |= 1 << 31
	} else {
		cause &= ^uint32(1 << 31)
	}
	if e.Reason == EXCEPTION_COPROCESSOR_ERROR {
		cause = (cause & ^uint32(0x30000000)) | (e.CoProcessorNum&3)<<28
	}
	cop.WriteReg(COP0_CAUSE, cause, true)

	epc := e.OriginPC
	if e.InBranchDelaySlot {
		epc -= 4
	}
	cop.WriteReg(COP0_EPC, epc, true)

	if e.Reason == EXCEPTION_LOAD_ADDRESS_ERROR ||
		e.Reason == EXCEPTION_STORE_ADDRESS_ERROR {
		cop.WriteReg(COP0_BAD_VADDR, e.BadAddress, true)
	}

	// push a pair of zeroes onto the interrupt enable/kernel mode
	// stack, which masks interrupts and enters kernel mode
	status := cop.Regs[COP0_STATUS]
	mode := status & 0x3f
	status = (status & ^uint32(0x3f)) | (mode<<2)&0x3f
	cop.WriteReg(COP0_STATUS, status, true)

	cpu.PC = cop.GeneralExceptionVector()
	e.Reset()
	return true
}

// Polls the interrupt controller. Only runs after branch type
// instructions, which also paces the peripheral timers
func (cpu *CPU) checkInterrupts(bridge CpuBridge) {
	bridge.IncrementInterruptCounters()

	status := swapWord(bridge.ReadWord(0x1f801070))
	mask := swapWord(bridge.ReadWord(0x1f801074))

	cause := cpu.Cop0.Regs[COP0_CAUSE]
	if status&mask&0x7ff != 0 {
		cause |= 1 << 10
	} else {
		cause &= ^uint32(1 << 10)
	}
	cpu.Cop0.WriteReg(COP0_CAUSE, cause, true)

	sr := cpu.Cop0.Regs[COP0_STATUS]
	if cpu.Cop0.InterruptsEnabled() && cause&sr&0xff00 != 0 {
		cpu.exception.Reason = EXCEPTION_INTERRUPT
		cpu.exception.OriginPC = cpu.PC
		cpu.exception.InBranchDelaySlot = cpu.isBranch
		cpu.handleException()
	}
}

// Fetches the instruction word at `address`, going through the
// instruction cache for cacheable regions. Returns -1 when the fetch
// faulted, with the address error recorded
func (cpu *CPU) readInstructionWord(bridge CpuBridge, address uint32) int64 {
	if address&3 != 0 || !cpu.Cop0.IsAddressAllowed(address) {
		cpu.raiseException(EXCEPTION_LOAD_ADDRESS_ERROR)
		cpu.exception.BadAddress = address
		return -1
	}

	physical := cpu.Cop0.VirtualToPhysical(address)
	if cpu.Cop0.IsCacheable(address) && bridge.InstructionCacheEnabled() {
		if !cpu.Cache.CheckHit(physical) {
			cpu.Cache.RefillLine(bridge, physical, cpu.Cop0.IsDataCacheIsolated())
			cpu.cycles += bridge.HowManyStallCycles(physical)
		}
		return int64(swapWord(cpu.Cache.ReadWord(physical)))
	}

	cpu.cycles += bridge.HowManyStallCycles(physical)
	return int64(swapWord(bridge.ReadWord(physical)))
}

// Reads `width` bytes at `address`, assembled most significant byte
// first. The isolated cache soaks up the access, the scratchpad
// window is serviced without stall cycles and everything else pays
// the device penalty. FIFO ports keep the address pointer from
// advancing between bytes
func (cpu *CPU) readDataValue(bridge CpuBridge, width int, address uint32) uint32 {
	if cpu.Debugger != nil {
		cpu.Debugger.memoryRead(cpu, bridge, address)
	}
	physical := cpu.Cop0.VirtualToPhysical(address)

	if cpu.Cop0.IsDataCacheIsolated() {
		cpu.Cop0.SetCacheMiss(!cpu.Cache.CheckHit(physical))
		var value uint32
		for i := 0; i < width; i++ {
			value = value<<8 | uint32(cpu.Cache.ReadByte(physical+uint32(i)))
		}
		return value
	}

	scratchpad := physical >= 0x1f800000 && physical < 0x1f800400 &&
		bridge.ScratchpadEnabled()
	if !scratchpad {
		cpu.cycles += bridge.HowManyStallCycles(physical)
	}

	var value uint32
	addr := physical
	for i := 0; i < width; i++ {
		value = value<<8 | uint32(bridge.ReadByte(addr))
		if bridge.OkToIncrement(addr) {
			addr++
		}
	}
	return value
}

// Writes `width` bytes at `address`, most significant byte first
func (cpu *CPU) writeDataValue(bridge CpuBridge, width int, address, value uint32) {
	if cpu.Debugger != nil {
		cpu.Debugger.memoryWrite(cpu, bridge, address)
	}
	physical := cpu.Cop0.VirtualToPhysical(address)

	if cpu.Cop0.IsDataCacheIsolated() {
		isolated := true
		for i := 0; i < width; i++ {
			shift := uint32(8 * (width - 1 - i))
			cpu.Cache.WriteByte(physical+uint32(i), uint8(value>>shift), isolated)
		}
		return
	}

	scratchpad := physical >= 0x1f800000 && physical < 0x1f800400 &&
		bridge.ScratchpadEnabled()
	if !scratchpad {
		cpu.cycles += bridge.HowManyStallCycles(physical)
	}

	addr := physical
	for i := 0; i < width; i++ {
		shift := uint32(8 * (width - 1 - i))
		bridge.WriteByte(addr, uint8(value>>shift))
		if bridge.OkToIncrement(addr) {
			addr++
		}
	}
}
