package emulator

// State of the interrupt register
type IrqState struct {
	Status uint16 // Interrupt status
	Mask   uint16 // Interrupt mask
}

// Represents an interrupt line
type Interrupt uint16

const (
	INTERRUPT_VBLANK Interrupt = 0 // GPU is in vertical blanking
	INTERRUPT_CDROM  Interrupt = 2 // CD-ROM controller
	INTERRUPT_DMA    Interrupt = 3 // DMA transfer complete
	INTERRUPT_TIMER0 Interrupt = 4 // Root counter 0
	INTERRUPT_TIMER1 Interrupt = 5 // Root counter 1
	INTERRUPT_TIMER2 Interrupt = 6 // Root counter 2
)

// Returns a new interrupt instance
func NewIrqState() *IrqState {
	return &IrqState{}
}

// Returns true if any enabled interrupt is pending
func (state *IrqState) Active() bool {
	return (state.Status & state.Mask) != 0
}

// Writing the status register acknowledges interrupts: zero bits
// clear the matching pending lines
func (state *IrqState) Acknowledge(ack uint16) {
	state.Status &= ack
}

func (state *IrqState) SetMask(mask uint16) {
	state.Mask = mask
}

func (state *IrqState) SetHigh(interrupt Interrupt) {
	state.Status |= 1 << interrupt
}
