package emulator

// Represents a timer clock source
type Clock uint8

const (
	CLOCK_SYSCLOCK      Clock = iota // CPU clock at 33.8685MHz
	CLOCK_SYSCLOCK_DIV8 Clock = iota // CPU clock divided by 8 (~4.2335625MHz)
	CLOCK_GPU_DOTCLOCK  Clock = iota // GPU's dotclock (~53MHz)
	CLOCK_GPU_HSYNC     Clock = iota // GPU's HSync signal
)

// All timers use different values for sysclocks for some reason
var ClockSourceLookupTable = [3][4]Clock{
	// timer 0
	{
		CLOCK_SYSCLOCK, CLOCK_GPU_DOTCLOCK,
		CLOCK_SYSCLOCK, CLOCK_GPU_DOTCLOCK,
	},
	// timer 1
	{
		CLOCK_SYSCLOCK, CLOCK_GPU_HSYNC,
		CLOCK_SYSCLOCK, CLOCK_GPU_HSYNC,
	},
	// timer 2
	{
		CLOCK_SYSCLOCK, CLOCK_SYSCLOCK,
		CLOCK_SYSCLOCK_DIV8, CLOCK_SYSCLOCK_DIV8,
	},
}

type ClockSource uint8

func ClockSourceFromField(field uint16) ClockSource {
	if field&^3 != 0 {
		panicFmt("invalid clock source %d", field)
	}
	return ClockSource(field)
}

func (cs ClockSource) Clock(instance int) Clock {
	return ClockSourceLookupTable[instance][cs]
}

// Represents timer synchronization modes when `FreeRun` is false
type TSync uint16

const (
	// Timer 0, timer 1: pause during HBlank/VBlank.
	// Timer 2: stop counter.
	TSYNC_PAUSE TSync = 0
	// Timer 0, timer 1: reset counter at HBlank/VBlank.
	// Timer 2: free run.
	TSYNC_RESET TSync = 1
	// Timer 0, timer 1: wait for HBlank/VBlank and then free run.
	// Timer 2: stop counter.
	TSYNC_RESET_AND_PAUSE TSync = 2
)

type Timer struct {
	Instance int    // 0, 1 or 2
	Counter  uint16 // Timer counter
	FreeRun  bool   // If true, the timer does not synchronize with an external signal
	Target   uint16 // Timer counter target
	TSync    TSync  // Synchronization mode when `FreeRun` is false
	// If true, the counter is reset when it reaches `Target`, otherwise it counts to 0xffff
	TargetWrap      bool
	TargetIrq       bool        // Specifies whether to raise an interrupt when `Target` is reached
	WrapIrq         bool        // Raises an interrupt when the counter wraps after 0xffff
	RepeatIrq       bool        // If true, the interrupt is automatically cleared
	NegateIrq       bool        // When true, the IRQ signal is inverted after each interrupt
	ClockSource     ClockSource // Each timer can use a different clock source
	TargetReached   bool        // True if `Target` has been reached since the last read
	OverflowReached bool        // True when the counter overflowed 0xffff
	Interrupt       bool        // True if an interrupt is active
	prescale        uint8       // Sub-ticks accumulated towards the next count
}

// Returns a new Timer instance. The mode register resets to zero,
// which means free running on the sysclock
func NewTimer(instance int) *Timer {
	return &Timer{Instance: instance, FreeRun: true}
}

// Advances the counter by one polling step. The GPU derived clocks
// are counted at sysclock rate since there is no GPU behind this bus
func (timer *Timer) Tick(irqState *IrqState) {
	// stop mode only exists on timer 2
	if !timer.FreeRun && timer.Instance == 2 &&
		(timer.TSync == TSYNC_PAUSE || timer.TSync == TSYNC_RESET_AND_PAUSE) {
		return
	}

	if timer.ClockSource.Clock(timer.Instance) == CLOCK_SYSCLOCK_DIV8 {
		timer.prescale++
		if timer.prescale < 8 {
			return
		}
		timer.prescale = 0
	}

	wrapped := timer.Counter == 0xffff
	if timer.TargetWrap && timer.Counter == timer.Target {
		timer.Counter = 0
	} else {
		timer.Counter++
	}

	if wrapped {
		timer.OverflowReached = true
		if timer.WrapIrq {
			timer.raiseIrq(irqState)
		}
	}
	if timer.Counter == timer.Target {
		timer.TargetReached = true
		if timer.TargetIrq {
			timer.raiseIrq(irqState)
		}
	}
}

func (timer *Timer) raiseIrq(irqState *IrqState) {
	irqState.SetHigh(INTERRUPT_TIMER0 + Interrupt(timer.Instance))
	timer.Interrupt = true
}

// Returns the value of the mode register
func (timer *Timer) Mode() uint16 {
	var r uint16

	r |= uint16(oneIfTrue(!timer.FreeRun))
	r |= uint16(timer.TSync) << 1
	r |= uint16(oneIfTrue(timer.TargetWrap)) << 3
	r |= uint16(oneIfTrue(timer.TargetIrq)) << 4
	r |= uint16(oneIfTrue(timer.WrapIrq)) << 5
	r |= uint16(oneIfTrue(timer.RepeatIrq)) << 6
	r |= uint16(oneIfTrue(timer.NegateIrq)) << 7
	r |= uint16(timer.ClockSource) << 8
	r |= uint16(oneIfTrue(!timer.Interrupt)) << 10
	r |= uint16(oneIfTrue(timer.TargetReached)) << 11
	r |= uint16(oneIfTrue(timer.OverflowReached)) << 12

	// read resets the flags
	timer.TargetReached = false
	timer.OverflowReached = false

	return r
}

// Sets the value of the mode register
func (timer *Timer) SetMode(val uint16) {
	timer.FreeRun = (val & 1) == 0
	timer.TSync = TSync((val >> 1) & 3)
	timer.TargetWrap = (val>>3)&1 != 0
	timer.TargetIrq = (val>>4)&1 != 0
	timer.WrapIrq = (val>>5)&1 != 0
	timer.RepeatIrq = (val>>6)&1 != 0
	timer.NegateIrq = (val>>7)&1 != 0
	timer.ClockSource = ClockSourceFromField((val >> 8) & 3)

	// writing resets the counter and the interrupt flag
	timer.Counter = 0
	timer.Interrupt = false
	timer.prescale = 0
}

type Timers struct {
	// Timer 0: GPU pixel clock.
	// Timer 1: GPU horizontal blanking.
	// Timer 2: System clock divided by 8
	Timers [3]*Timer
}

func NewTimers() *Timers {
	return &Timers{
		Timers: [3]*Timer{NewTimer(0), NewTimer(1), NewTimer(2)},
	}
}

// Advances all three counters by one polling step
func (timers *Timers) Tick(irqState *IrqState) {
	for _, timer := range timers.Timers {
		timer.Tick(irqState)
	}
}

// Reads the register at `offset` into the timer window
func (timers *Timers) Load32(offset uint32) uint32 {
	timer := timers.Timers[offset>>4]

	switch offset & 0xf {
	case 0:
		return uint32(timer.Counter)
	case 4:
		return uint32(timer.Mode())
	case 8:
		return uint32(timer.Target)
	}
	panicFmt("timer: unhandled register %d", offset&0xf)
	return 0
}

// Writes the register at `offset` into the timer window
func (timers *Timers) Store32(offset, val uint32) {
	timer := timers.Timers[offset>>4]

	switch offset & 0xf {
	case 0:
		timer.Counter = uint16(val)
	case 4:
		timer.SetMode(uint16(val))
	case 8:
		timer.Target = uint16(val)
	default:
		panicFmt("timer: unhandled store register %d", offset&0xf)
	}
}
