package emulator

type Exception uint32

const (
	EXCEPTION_INTERRUPT             Exception = 0x0 // External interrupt
	EXCEPTION_LOAD_ADDRESS_ERROR    Exception = 0x4 // Address error on load or fetch
	EXCEPTION_STORE_ADDRESS_ERROR   Exception = 0x5 // Address error on store
	EXCEPTION_INSTRUCTION_BUS_ERROR Exception = 0x6 // Bus error on instruction fetch
	EXCEPTION_DATA_BUS_ERROR        Exception = 0x7 // Bus error on data access
	EXCEPTION_SYSCALL               Exception = 0x8 // System call (caused by the SYSCALL opcode)
	EXCEPTION_BREAK                 Exception = 0x9 // Breakpoint (caused by BREAK opcode)
	EXCEPTION_ILLEGAL_INSTRUCTION   Exception = 0xa // CPU encountered an unknown instruction
	EXCEPTION_COPROCESSOR_ERROR     Exception = 0xb // Unusable coprocessor
	EXCEPTION_OVERFLOW              Exception = 0xc // Arithmetic overflow

	// Pseudo exceptions, never written to the Cause register
	EXCEPTION_RESET Exception = 0xd // Hard reset request
	EXCEPTION_NULL  Exception = 0xe // No exception pending
)

// Pending exception state. A single record is kept per CPU, the
// handler consumes it at the end of every instruction
type MIPSException struct {
	Reason            Exception
	OriginPC          uint32 // Address of the faulting instruction
	BadAddress        uint32 // Offending address for address errors
	CoProcessorNum    uint32 // Coprocessor index for usability faults
	InBranchDelaySlot bool
}

func NewMIPSException() MIPSException {
	return MIPSException{Reason: EXCEPTION_NULL}
}

func (e *MIPSException) Reset() {
	e.Reason = EXCEPTION_NULL
	e.OriginPC = 0
	e.BadAddress = 0
	e.CoProcessorNum = 0
	e.InBranchDelaySlot = false
}
