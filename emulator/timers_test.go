package emulator

import "testing"

func TestTimerFreeRun(t *testing.T) {
	irq := NewIrqState()
	timer := NewTimer(0)

	for i := 0; i < 5; i++ {
		timer.Tick(irq)
	}
	if timer.Counter != 5 {
		t.Errorf("expected counter 5, got %d", timer.Counter)
	}
	if irq.Status != 0 {
		t.Errorf("unexpected interrupt 0x%x", irq.Status)
	}
}

func TestTimerPrescaler(t *testing.T) {
	irq := NewIrqState()
	timer := NewTimer(2)
	// free running on sysclock/8
	timer.SetMode(2 << 8)

	for i := 0; i < 16; i++ {
		timer.Tick(irq)
	}
	if timer.Counter != 2 {
		t.Errorf("expected counter 2, got %d", timer.Counter)
	}
}

func TestTimerStopMode(t *testing.T) {
	irq := NewIrqState()
	timer := NewTimer(2)
	// synchronized, sync mode 0 stops root counter 2
	timer.SetMode(1)

	for i := 0; i < 5; i++ {
		timer.Tick(irq)
	}
	if timer.Counter != 0 {
		t.Errorf("expected stopped counter, got %d", timer.Counter)
	}
}

func TestTimerTargetIrq(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	irq := NewIrqState()
	timer := NewTimer(0)
	// wrap at target, interrupt at target
	timer.SetMode(0x18)
	timer.Target = 3

	timer.Tick(irq)
	timer.Tick(irq)
	assert(irq.Status == 0)

	timer.Tick(irq)
	assert(timer.Counter == 3)
	assert(timer.TargetReached)
	assert(irq.Status == 1<<uint16(INTERRUPT_TIMER0))
	assert(timer.Interrupt)

	// the next step wraps the counter back to zero
	timer.Tick(irq)
	assert(timer.Counter == 0)

	// reading the mode register clears the reached flags
	mode := timer.Mode()
	assert(mode&(1<<11) != 0)
	assert(timer.Mode()&(1<<11) == 0)
}

func TestTimerOverflowIrq(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	irq := NewIrqState()
	timer := NewTimer(1)
	timer.SetMode(0x20)
	timer.Counter = 0xffff

	timer.Tick(irq)
	assert(timer.Counter == 0)
	assert(timer.OverflowReached)
	assert(irq.Status == 1<<uint16(INTERRUPT_TIMER1))
}

func TestTimersWindow(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	irq := NewIrqState()
	timers := NewTimers()

	// counter, mode and target of root counter 1 live 16 bytes in
	timers.Store32(0x18, 0x1234)
	assert(timers.Timers[1].Target == 0x1234)
	timers.Store32(0x10, 0x42)
	assert(timers.Load32(0x10) == 0x42)

	timers.Tick(irq)
	assert(timers.Load32(0x10) == 0x43)
	assert(timers.Load32(0x00) == 1)
	assert(timers.Load32(0x20) == 1)
}
