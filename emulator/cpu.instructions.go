package emulator

// Latches a taken branch. The target is applied after the delay slot
func (cpu *CPU) branch(target uint32) {
	cpu.jumpAddress = target
	cpu.jumpPending = true
}

// Decodes and executes an instruction
// http://problemkaputt.de/psx-spx.htm#cpuopcodeencoding
func (cpu *CPU) executeOpcode(bridge CpuBridge, instruction Instruction) {
	switch instruction.Function() {
	case 0x00:
		cpu.executeSpecial(instruction)
	case 0x01:
		cpu.OpBcond(instruction)
	case 0x02:
		cpu.OpJ(instruction)
	case 0x03:
		cpu.OpJAL(instruction)
	case 0x04:
		cpu.OpBEQ(instruction)
	case 0x05:
		cpu.OpBNE(instruction)
	case 0x06:
		cpu.OpBLEZ(instruction)
	case 0x07:
		cpu.OpBGTZ(instruction)
	case 0x08:
		cpu.OpADDI(instruction)
	case 0x09:
		cpu.OpADDIU(instruction)
	case 0x0a:
		cpu.OpSLTI(instruction)
	case 0x0b:
		cpu.OpSLTIU(instruction)
	case 0x0c:
		cpu.OpANDI(instruction)
	case 0x0d:
		cpu.OpORI(instruction)
	case 0x0e:
		cpu.OpXORI(instruction)
	case 0x0f:
		cpu.OpLUI(instruction)
	case 0x10:
		cpu.OpCop0(instruction)
	case 0x11, 0x13:
		// COP1 and COP3 do not exist on the PlayStation
		cpu.raiseException(EXCEPTION_COPROCESSOR_ERROR)
		cpu.exception.CoProcessorNum = instruction.Function() & 3
	case 0x12:
		cpu.OpCop2(instruction)
	case 0x20:
		cpu.OpLB(bridge, instruction)
	case 0x21:
		cpu.OpLH(bridge, instruction)
	case 0x22:
		cpu.OpLWL(bridge, instruction)
	case 0x23:
		cpu.OpLW(bridge, instruction)
	case 0x24:
		cpu.OpLBU(bridge, instruction)
	case 0x25:
		cpu.OpLHU(bridge, instruction)
	case 0x26:
		cpu.OpLWR(bridge, instruction)
	case 0x28:
		cpu.OpSB(bridge, instruction)
	case 0x29:
		cpu.OpSH(bridge, instruction)
	case 0x2a:
		cpu.OpSWL(bridge, instruction)
	case 0x2b:
		cpu.OpSW(bridge, instruction)
	case 0x2e:
		cpu.OpSWR(bridge, instruction)
	case 0x31, 0x33, 0x39, 0x3b:
		// LWC/SWC for the missing coprocessors
		cpu.raiseException(EXCEPTION_COPROCESSOR_ERROR)
		cpu.exception.CoProcessorNum = instruction.Function() & 3
	case 0x32:
		cpu.OpLWC2(bridge, instruction)
	case 0x3a:
		cpu.OpSWC2(bridge, instruction)
	default:
		cpu.raiseException(EXCEPTION_ILLEGAL_INSTRUCTION)
	}
}

func (cpu *CPU) executeSpecial(instruction Instruction) {
	switch instruction.Subfunction() {
	case 0x00:
		cpu.OpSLL(instruction)
	case 0x02:
		cpu.OpSRL(instruction)
	case 0x03:
		cpu.OpSRA(instruction)
	case 0x04:
		cpu.OpSLLV(instruction)
	case 0x06:
		cpu.OpSRLV(instruction)
	case 0x07:
		cpu.OpSRAV(instruction)
	case 0x08:
		cpu.OpJR(instruction)
	case 0x09:
		cpu.OpJALR(instruction)
	case 0x0c:
		cpu.raiseException(EXCEPTION_SYSCALL)
	case 0x0d:
		cpu.raiseException(EXCEPTION_BREAK)
	case 0x10:
		cpu.SetReg(instruction.D(), cpu.Hi)
	case 0x11:
		cpu.Hi = cpu.Reg(instruction.S())
	case 0x12:
		cpu.SetReg(instruction.D(), cpu.Lo)
	case 0x13:
		cpu.Lo = cpu.Reg(instruction.S())
	case 0x18:
		cpu.OpMULT(instruction)
	case 0x19:
		cpu.OpMULTU(instruction)
	case 0x1a:
		cpu.OpDIV(instruction)
	case 0x1b:
		cpu.OpDIVU(instruction)
	case 0x20:
		cpu.OpADD(instruction)
	case 0x21:
		cpu.OpADDU(instruction)
	case 0x22:
		cpu.OpSUB(instruction)
	case 0x23:
		cpu.OpSUBU(instruction)
	case 0x24:
		cpu.OpAND(instruction)
	case 0x25:
		cpu.OpOR(instruction)
	case 0x26:
		cpu.OpXOR(instruction)
	case 0x27:
		cpu.OpNOR(instruction)
	case 0x2a:
		cpu.OpSLT(instruction)
	case 0x2b:
		cpu.OpSLTU(instruction)
	default:
		cpu.raiseException(EXCEPTION_ILLEGAL_INSTRUCTION)
	}
}

// Shift Left Logical
func (cpu *CPU) OpSLL(instruction Instruction) {
	cpu.SetReg(instruction.D(), cpu.Reg(instruction.T())<<instruction.Shift())
}

// Shift Right Logical
func (cpu *CPU) OpSRL(instruction Instruction) {
	cpu.SetReg(instruction.D(),
		logicalRshift32(cpu.Reg(instruction.T()), instruction.Shift()))
}

// Shift Right Arithmetic
func (cpu *CPU) OpSRA(instruction Instruction) {
	v := int32(cpu.Reg(instruction.T())) >> instruction.Shift()
	cpu.SetReg(instruction.D(), uint32(v))
}

// Shift Left Logical Variable
func (cpu *CPU) OpSLLV(instruction Instruction) {
	// shift amount is truncated to the low 5 bits
	shift := cpu.Reg(instruction.S()) & 0x1f
	cpu.SetReg(instruction.D(), cpu.Reg(instruction.T())<<shift)
}

// Shift Right Logical Variable
func (cpu *CPU) OpSRLV(instruction Instruction) {
	cpu.SetReg(instruction.D(),
		logicalRshift32(cpu.Reg(instruction.T()), cpu.Reg(instruction.S())))
}

// Shift Right Arithmetic Variable
func (cpu *CPU) OpSRAV(instruction Instruction) {
	shift := cpu.Reg(instruction.S()) & 0x1f
	v := int32(cpu.Reg(instruction.T())) >> shift
	cpu.SetReg(instruction.D(), uint32(v))
}

// Jump Register
func (cpu *CPU) OpJR(instruction Instruction) {
	cpu.isBranch = true
	cpu.branch(cpu.Reg(instruction.S()))
}

// Jump And Link Register
func (cpu *CPU) OpJALR(instruction Instruction) {
	target := cpu.Reg(instruction.S())
	cpu.SetReg(instruction.D(), cpu.PC+8)
	cpu.isBranch = true
	cpu.branch(target)
}

// Multiply (signed)
func (cpu *CPU) OpMULT(instruction Instruction) {
	a := int64(int32(cpu.Reg(instruction.S())))
	b := int64(int32(cpu.Reg(instruction.T())))
	v := uint64(a * b)
	cpu.Hi = uint32(v >> 32)
	cpu.Lo = uint32(v)
}

// Multiply Unsigned
func (cpu *CPU) OpMULTU(instruction Instruction) {
	a := uint64(cpu.Reg(instruction.S()))
	b := uint64(cpu.Reg(instruction.T()))
	v := a * b
	cpu.Hi = uint32(v >> 32)
	cpu.Lo = uint32(v)
}

// Divide (signed)
func (cpu *CPU) OpDIV(instruction Instruction) {
	n := int32(cpu.Reg(instruction.S()))
	d := int32(cpu.Reg(instruction.T()))

	switch {
	case d == 0:
		// division by zero, results are bogus
		cpu.Hi = uint32(n)
		if n >= 0 {
			cpu.Lo = 0xffffffff
		} else {
			cpu.Lo = 1
		}
	case uint32(n) == 0x80000000 && d == -1:
		// result is not representable in 32 bits
		cpu.Hi = 0
		cpu.Lo = 0x80000000
	default:
		cpu.Hi = uint32(n % d)
		cpu.Lo = uint32(n / d)
	}
}

// Divide Unsigned
func (cpu *CPU) OpDIVU(instruction Instruction) {
	n := cpu.Reg(instruction.S())
	d := cpu.Reg(instruction.T())

	if d == 0 {
		cpu.Hi = n
		cpu.Lo = 0xffffffff
	} else {
		cpu.Hi = n % d
		cpu.Lo = n / d
	}
}

// Add and generate an exception on overflow
func (cpu *CPU) OpADD(instruction Instruction) {
	s := int32(cpu.Reg(instruction.S()))
	t := int32(cpu.Reg(instruction.T()))

	v, err := add32Overflow(s, t)
	if err != nil {
		cpu.raiseException(EXCEPTION_OVERFLOW)
		return
	}
	cpu.SetReg(instruction.D(), uint32(v))
}

// Add Unsigned
func (cpu *CPU) OpADDU(instruction Instruction) {
	cpu.SetReg(instruction.D(),
		cpu.Reg(instruction.S())+cpu.Reg(instruction.T()))
}

// Subtract and generate an exception on overflow
func (cpu *CPU) OpSUB(instruction Instruction) {
	s := int32(cpu.Reg(instruction.S()))
	t := int32(cpu.Reg(instruction.T()))

	v, err := sub32Overflow(s, t)
	if err != nil {
		cpu.raiseException(EXCEPTION_OVERFLOW)
		return
	}
	cpu.SetReg(instruction.D(), uint32(v))
}

// Subtract Unsigned
func (cpu *CPU) OpSUBU(instruction Instruction) {
	cpu.SetReg(instruction.D(),
		cpu.Reg(instruction.S())-cpu.Reg(instruction.T()))
}

// Bitwise And
func (cpu *CPU) OpAND(instruction Instruction) {
	cpu.SetReg(instruction.D(),
		cpu.Reg(instruction.S())&cpu.Reg(instruction.T()))
}

// Bitwise Or
func (cpu *CPU) OpOR(instruction Instruction) {
	cpu.SetReg(instruction.D(),
		cpu.Reg(instruction.S())|cpu.Reg(instruction.T()))
}

// Bitwise Exclusive Or
func (cpu *CPU) OpXOR(instruction Instruction) {
	cpu.SetReg(instruction.D(),
		cpu.Reg(instruction.S())^cpu.Reg(instruction.T()))
}

// Bitwise Not Or
func (cpu *CPU) OpNOR(instruction Instruction) {
	cpu.SetReg(instruction.D(),
		^(cpu.Reg(instruction.S()) | cpu.Reg(instruction.T())))
}

// Set on Less Than (signed)
func (cpu *CPU) OpSLT(instruction Instruction) {
	less := int32(cpu.Reg(instruction.S())) < int32(cpu.Reg(instruction.T()))
	cpu.SetReg(instruction.D(), oneIfTrue(less))
}

// Set on Less Than Unsigned
func (cpu *CPU) OpSLTU(instruction Instruction) {
	less := cpu.Reg(instruction.S()) < cpu.Reg(instruction.T())
	cpu.SetReg(instruction.D(), oneIfTrue(less))
}

// BLTZ, BGEZ, BLTZAL and BGEZAL share opcode 1, the variant hides in
// the T field
func (cpu *CPU) OpBcond(instruction Instruction) {
	cpu.isBranch = true
	variant := instruction.T()

	s := int32(cpu.Reg(instruction.S()))
	var taken bool
	if variant&1 != 0 {
		taken = s >= 0
	} else {
		taken = s < 0
	}

	// the link variants write RA whether the branch is taken or not
	if variant&0x1e == 0x10 {
		cpu.SetReg(31, cpu.PC+8)
	}
	if taken {
		cpu.branch(cpu.PC + 4 + instruction.ImmSE()<<2)
	}
}

// Jump
func (cpu *CPU) OpJ(instruction Instruction) {
	cpu.isBranch = true
	cpu.branch((cpu.PC+4)&0xf0000000 | instruction.ImmJump()<<2)
}

// Jump And Link
func (cpu *CPU) OpJAL(instruction Instruction) {
	cpu.SetReg(31, cpu.PC+8)
	cpu.isBranch = true
	cpu.branch((cpu.PC+4)&0xf0000000 | instruction.ImmJump()<<2)
}

// Branch if Equal
func (cpu *CPU) OpBEQ(instruction Instruction) {
	cpu.isBranch = true
	if cpu.Reg(instruction.S()) == cpu.Reg(instruction.T()) {
		cpu.branch(cpu.PC + 4 + instruction.ImmSE()<<2)
	}
}

// Branch if Not Equal
func (cpu *CPU) OpBNE(instruction Instruction) {
	cpu.isBranch = true
	if cpu.Reg(instruction.S()) != cpu.Reg(instruction.T()) {
		cpu.branch(cpu.PC + 4 + instruction.ImmSE()<<2)
	}
}

// Branch if Less than or Equal to Zero
func (cpu *CPU) OpBLEZ(instruction Instruction) {
	cpu.isBranch = true
	if int32(cpu.Reg(instruction.S())) <= 0 {
		cpu.branch(cpu.PC + 4 + instruction.ImmSE()<<2)
	}
}

// Branch if Greater Than Zero
func (cpu *CPU) OpBGTZ(instruction Instruction) {
	cpu.isBranch = true
	if int32(cpu.Reg(instruction.S())) > 0 {
		cpu.branch(cpu.PC + 4 + instruction.ImmSE()<<2)
	}
}

// Add Immediate and generate an exception on overflow
func (cpu *CPU) OpADDI(instruction Instruction) {
	s := int32(cpu.Reg(instruction.S()))
	imm := int32(instruction.ImmSE())

	v, err := add32Overflow(s, imm)
	if err != nil {
		cpu.raiseException(EXCEPTION_OVERFLOW)
		return
	}
	cpu.SetReg(instruction.T(), uint32(v))
}

// Add Immediate Unsigned
func (cpu *CPU) OpADDIU(instruction Instruction) {
	cpu.SetReg(instruction.T(),
		cpu.Reg(instruction.S())+instruction.ImmSE())
}

// Set on Less Than Immediate (signed)
func (cpu *CPU) OpSLTI(instruction Instruction) {
	less := int32(cpu.Reg(instruction.S())) < int32(instruction.ImmSE())
	cpu.SetReg(instruction.T(), oneIfTrue(less))
}

// Set on Less Than Immediate Unsigned. The immediate still sign
// extends before the unsigned compare
func (cpu *CPU) OpSLTIU(instruction Instruction) {
	less := cpu.Reg(instruction.S()) < instruction.ImmSE()
	cpu.SetReg(instruction.T(), oneIfTrue(less))
}

// Bitwise And Immediate
func (cpu *CPU) OpANDI(instruction Instruction) {
	cpu.SetReg(instruction.T(), cpu.Reg(instruction.S())&instruction.Imm())
}

// Bitwise Or Immediate
func (cpu *CPU) OpORI(instruction Instruction) {
	cpu.SetReg(instruction.T(), cpu.Reg(instruction.S())|instruction.Imm())
}

// Bitwise Exclusive Or Immediate
func (cpu *CPU) OpXORI(instruction Instruction) {
	cpu.SetReg(instruction.T(), cpu.Reg(instruction.S())^instruction.Imm())
}

// Load Upper Immediate
func (cpu *CPU) OpLUI(instruction Instruction) {
	cpu.SetReg(instruction.T(), instruction.Imm()<<16)
}

// Coprocessor 0 opcodes
func (cpu *CPU) OpCop0(instruction Instruction) {
	if !cpu.Cop0.IsCoProcessorUsable(0) && !cpu.Cop0.InKernelMode() {
		cpu.raiseException(EXCEPTION_COPROCESSOR_ERROR)
		cpu.exception.CoProcessorNum = 0
		return
	}

	switch instruction.CopOpcode() {
	case 0x00: // MFC0
		cpu.SetReg(instruction.T(), cpu.Cop0.ReadReg(instruction.D()))
	case 0x04: // MTC0
		cpu.Cop0.WriteReg(instruction.D(), cpu.Reg(instruction.T()), false)
	case 0x08: // BC0F/BC0T
		cpu.isBranch = true
		taken := cpu.Cop0.ConditionLine
		if instruction.T()&1 == 0 {
			taken = !taken
		}
		if taken {
			cpu.branch(cpu.PC + 4 + instruction.ImmSE()<<2)
		}
	case 0x10: // RFE, the only COP0 command the R3051 implements
		if instruction.Subfunction() == 0x10 {
			cpu.Cop0.Rfe()
		} else {
			cpu.raiseException(EXCEPTION_ILLEGAL_INSTRUCTION)
		}
	default:
		cpu.raiseException(EXCEPTION_ILLEGAL_INSTRUCTION)
	}
}

// Coprocessor 2 opcodes
func (cpu *CPU) OpCop2(instruction Instruction) {
	if !cpu.Cop0.IsCoProcessorUsable(2) {
		cpu.raiseException(EXCEPTION_COPROCESSOR_ERROR)
		cpu.exception.CoProcessorNum = 2
		return
	}

	op := instruction.CopOpcode()
	if op&0x10 != 0 {
		// GTE command, its cycles stack on top of the base cost
		cpu.cycles += cpu.Gte.Command(instruction.Cop2Command())
		return
	}

	switch op {
	case 0x00: // MFC2
		cpu.SetReg(instruction.T(), cpu.Gte.ReadData(instruction.D()))
	case 0x02: // CFC2
		cpu.SetReg(instruction.T(), cpu.Gte.ReadControl(instruction.D()))
	case 0x04: // MTC2
		cpu.Gte.WriteData(instruction.D(), cpu.Reg(instruction.T()), false)
	case 0x06: // CTC2
		cpu.Gte.WriteControl(instruction.D(), cpu.Reg(instruction.T()), false)
	case 0x08: // BC2F/BC2T
		cpu.isBranch = true
		taken := cpu.Gte.ConditionLine
		if instruction.T()&1 == 0 {
			taken = !taken
		}
		if taken {
			cpu.branch(cpu.PC + 4 + instruction.ImmSE()<<2)
		}
	default:
		cpu.raiseException(EXCEPTION_ILLEGAL_INSTRUCTION)
	}
}

// Load Byte (signed)
func (cpu *CPU) OpLB(bridge CpuBridge, instruction Instruction) {
	addr := cpu.Reg(instruction.S()) + instruction.ImmSE()
	if !cpu.Cop0.IsAddressAllowed(addr) {
		cpu.raiseException(EXCEPTION_LOAD_ADDRESS_ERROR)
		cpu.exception.BadAddress = addr
		return
	}
	v := cpu.readDataValue(bridge, 1, addr)
	cpu.SetReg(instruction.T(), uint32(int32(int8(v))))
}

// Load Byte Unsigned
func (cpu *CPU) OpLBU(bridge CpuBridge, instruction Instruction) {
	addr := cpu.Reg(instruction.S()) + instruction.ImmSE()
	if !cpu.Cop0.IsAddressAllowed(addr) {
		cpu.raiseException(EXCEPTION_LOAD_ADDRESS_ERROR)
		cpu.exception.BadAddress = addr
		return
	}
	cpu.SetReg(instruction.T(), cpu.readDataValue(bridge, 1, addr))
}

// Load Halfword (signed)
func (cpu *CPU) OpLH(bridge CpuBridge, instruction Instruction) {
	addr := cpu.Reg(instruction.S()) + instruction.ImmSE()
	if addr&1 != 0 || !cpu.Cop0.IsAddressAllowed(addr) {
		cpu.raiseException(EXCEPTION_LOAD_ADDRESS_ERROR)
		cpu.exception.BadAddress = addr
		return
	}
	v := swapHalf(cpu.readDataValue(bridge, 2, addr))
	cpu.SetReg(instruction.T(), uint32(int32(int16(v))))
}

// Load Halfword Unsigned
func (cpu *CPU) OpLHU(bridge CpuBridge, instruction Instruction) {
	addr := cpu.Reg(instruction.S()) + instruction.ImmSE()
	if addr&1 != 0 || !cpu.Cop0.IsAddressAllowed(addr) {
		cpu.raiseException(EXCEPTION_LOAD_ADDRESS_ERROR)
		cpu.exception.BadAddress = addr
		return
	}
	cpu.SetReg(instruction.T(), swapHalf(cpu.readDataValue(bridge, 2, addr)))
}

// Load Word
func (cpu *CPU) OpLW(bridge CpuBridge, instruction Instruction) {
	addr := cpu.Reg(instruction.S()) + instruction.ImmSE()
	if addr&3 != 0 || !cpu.Cop0.IsAddressAllowed(addr) {
		cpu.raiseException(EXCEPTION_LOAD_ADDRESS_ERROR)
		cpu.exception.BadAddress = addr
		return
	}
	cpu.SetReg(instruction.T(), swapWord(cpu.readDataValue(bridge, 4, addr)))
}

// Load Word Left. The unaligned loads merge the covered part of the
// word with the current register value, alignment on purpose goes
// unchecked
func (cpu *CPU) OpLWL(bridge CpuBridge, instruction Instruction) {
	addr := cpu.Reg(instruction.S()) + instruction.ImmSE()
	if !cpu.Cop0.IsAddressAllowed(addr) {
		cpu.raiseException(EXCEPTION_LOAD_ADDRESS_ERROR)
		cpu.exception.BadAddress = addr
		return
	}
	cur := cpu.Reg(instruction.T())
	mem := swapWord(cpu.readDataValue(bridge, 4, addr & ^uint32(3)))

	var v uint32
	switch addr & 3 {
	case 0:
		v = cur&0x00ffffff | mem<<24
	case 1:
		v = cur&0x0000ffff | mem<<16
	case 2:
		v = cur&0x000000ff | mem<<8
	case 3:
		v = mem
	}
	cpu.SetReg(instruction.T(), v)
}

// Load Word Right
func (cpu *CPU) OpLWR(bridge CpuBridge, instruction Instruction) {
	addr := cpu.Reg(instruction.S()) + instruction.ImmSE()
	if !cpu.Cop0.IsAddressAllowed(addr) {
		cpu.raiseException(EXCEPTION_LOAD_ADDRESS_ERROR)
		cpu.exception.BadAddress = addr
		return
	}
	cur := cpu.Reg(instruction.T())
	mem := swapWord(cpu.readDataValue(bridge, 4, addr & ^uint32(3)))

	var v uint32
	switch addr & 3 {
	case 0:
		v = mem
	case 1:
		v = cur&0xff000000 | logicalRshift32(mem, 8)
	case 2:
		v = cur&0xffff0000 | logicalRshift32(mem, 16)
	case 3:
		v = cur&0xffffff00 | logicalRshift32(mem, 24)
	}
	cpu.SetReg(instruction.T(), v)
}

// Store Byte
func (cpu *CPU) OpSB(bridge CpuBridge, instruction Instruction) {
	addr := cpu.Reg(instruction.S()) + instruction.ImmSE()
	if !cpu.Cop0.IsAddressAllowed(addr) {
		cpu.raiseException(EXCEPTION_STORE_ADDRESS_ERROR)
		cpu.exception.BadAddress = addr
		return
	}
	cpu.writeDataValue(bridge, 1, addr, cpu.Reg(instruction.T())&0xff)
}

// Store Halfword
func (cpu *CPU) OpSH(bridge CpuBridge, instruction Instruction) {
	addr := cpu.Reg(instruction.S()) + instruction.ImmSE()
	if addr&1 != 0 || !cpu.Cop0.IsAddressAllowed(addr) {
		cpu.raiseException(EXCEPTION_STORE_ADDRESS_ERROR)
		cpu.exception.BadAddress = addr
		return
	}
	cpu.writeDataValue(bridge, 2, addr, swapHalf(cpu.Reg(instruction.T())))
}

// Store Word
func (cpu *CPU) OpSW(bridge CpuBridge, instruction Instruction) {
	addr := cpu.Reg(instruction.S()) + instruction.ImmSE()
	if addr&3 != 0 || !cpu.Cop0.IsAddressAllowed(addr) {
		cpu.raiseException(EXCEPTION_STORE_ADDRESS_ERROR)
		cpu.exception.BadAddress = addr
		return
	}
	cpu.writeDataValue(bridge, 4, addr, swapWord(cpu.Reg(instruction.T())))
}

// Store Word Left
func (cpu *CPU) OpSWL(bridge CpuBridge, instruction Instruction) {
	addr := cpu.Reg(instruction.S()) + instruction.ImmSE()
	if !cpu.Cop0.IsAddressAllowed(addr) {
		cpu.raiseException(EXCEPTION_STORE_ADDRESS_ERROR)
		cpu.exception.BadAddress = addr
		return
	}
	t := cpu.Reg(instruction.T())
	aligned := addr & ^uint32(3)
	mem := swapWord(cpu.readDataValue(bridge, 4, aligned))

	var v uint32
	switch addr & 3 {
	case 0:
		v = mem&0xffffff00 | logicalRshift32(t, 24)
	case 1:
		v = mem&0xffff0000 | logicalRshift32(t, 16)
	case 2:
		v = mem&0xff000000 | logicalRshift32(t, 8)
	case 3:
		v = t
	}
	cpu.writeDataValue(bridge, 4, aligned, swapWord(v))
}

// Store Word Right
func (cpu *CPU) OpSWR(bridge CpuBridge, instruction Instruction) {
	addr := cpu.Reg(instruction.S()) + instruction.ImmSE()
	if !cpu.Cop0.IsAddressAllowed(addr) {
		cpu.raiseException(EXCEPTION_STORE_ADDRESS_ERROR)
		cpu.exception.BadAddress = addr
		return
	}
	t := cpu.Reg(instruction.T())
	aligned := addr & ^uint32(3)
	mem := swapWord(cpu.readDataValue(bridge, 4, aligned))

	var v uint32
	switch addr & 3 {
	case 0:
		v = t
	case 1:
		v = mem&0x000000ff | t<<8
	case 2:
		v = mem&0x0000ffff | t<<16
	case 3:
		v = mem&0x00ffffff | t<<24
	}
	cpu.writeDataValue(bridge, 4, aligned, swapWord(v))
}

// Load Word to Coprocessor 2
func (cpu *CPU) OpLWC2(bridge CpuBridge, instruction Instruction) {
	if !cpu.Cop0.IsCoProcessorUsable(2) {
		cpu.raiseException(EXCEPTION_COPROCESSOR_ERROR)
		cpu.exception.CoProcessorNum = 2
		return
	}
	addr := cpu.Reg(instruction.S()) + instruction.ImmSE()
	if addr&3 != 0 || !cpu.Cop0.IsAddressAllowed(addr) {
		cpu.raiseException(EXCEPTION_LOAD_ADDRESS_ERROR)
		cpu.exception.BadAddress = addr
		return
	}
	cpu.Gte.WriteData(instruction.T(),
		swapWord(cpu.readDataValue(bridge, 4, addr)), false)
}

// Store Word from Coprocessor 2
func (cpu *CPU) OpSWC2(bridge CpuBridge, instruction Instruction) {
	if !cpu.Cop0.IsCoProcessorUsable(2) {
		cpu.raiseException(EXCEPTION_COPROCESSOR_ERROR)
		cpu.exception.CoProcessorNum = 2
		return
	}
	addr := cpu.Reg(instruction.S()) + instruction.ImmSE()
	if addr&3 != 0 || !cpu.Cop0.IsAddressAllowed(addr) {
		cpu.raiseException(EXCEPTION_STORE_ADDRESS_ERROR)
		cpu.exception.BadAddress = addr
		return
	}
	cpu.writeDataValue(bridge, 4, addr, swapWord(cpu.Gte.ReadData(instruction.T())))
}
