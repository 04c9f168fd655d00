package emulator

import (
	"fmt"
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Interactive debugger. The CPU calls back into it before every
// instruction and around memory accesses, hitting a breakpoint or
// watchpoint drops into a single key console on the controlling
// terminal
type Debugger struct {
	Breakpoints      []uint32 // All breakpoint addresses
	ReadWatchpoints  []uint32 // All read watchpoints
	WriteWatchpoints []uint32 // All write watchpoints

	stepping bool // Break before the next instruction

	cbreakAttr unix.Termios // Terminal attributes for the console
	savedAttr  unix.Termios // Attributes to restore afterwards
}

func NewDebugger() *Debugger {
	debugger := &Debugger{}
	termios.Tcgetattr(os.Stdin.Fd(), &debugger.savedAttr)
	debugger.cbreakAttr = debugger.savedAttr
	termios.Cfmakecbreak(&debugger.cbreakAttr)
	return debugger
}

// Breaks into the console before the next instruction executes
func (debugger *Debugger) Step() {
	debugger.stepping = true
}

// Adds a breakpoint when the instruction at `addr` is about to be executed
func (debugger *Debugger) AddBreakpoint(addr uint32) {
	// check if that breakpoint already exists
	for _, breakpoint := range debugger.Breakpoints {
		if breakpoint == addr {
			return
		}
	}
	debugger.Breakpoints = append(debugger.Breakpoints, addr)
}

// Deletes a breakpoint at `addr`. Does nothing if it doesn't exist
func (debugger *Debugger) DeleteBreakpoint(addr uint32) {
	for idx, breakpoint := range debugger.Breakpoints {
		if breakpoint == addr {
			debugger.Breakpoints = append(debugger.Breakpoints[:idx], debugger.Breakpoints[idx+1:]...)
			return
		}
	}
}

// Adds a memory read watchpoint for `addr`
func (debugger *Debugger) AddReadWatchpoint(addr uint32) {
	for _, watchpoint := range debugger.ReadWatchpoints {
		if watchpoint == addr {
			return
		}
	}
	debugger.ReadWatchpoints = append(debugger.ReadWatchpoints, addr)
}

// Adds a memory write watchpoint for `addr`
func (debugger *Debugger) AddWriteWatchpoint(addr uint32) {
	for _, watchpoint := range debugger.WriteWatchpoints {
		if watchpoint == addr {
			return
		}
	}
	debugger.WriteWatchpoints = append(debugger.WriteWatchpoints, addr)
}

// Deletes a memory read watchpoint at `addr`. Does nothing if it doesn't exist
func (debugger *Debugger) DeleteReadWatchpoint(addr uint32) {
	for idx, watchpoint := range debugger.ReadWatchpoints {
		if watchpoint == addr {
			debugger.ReadWatchpoints = append(
				debugger.ReadWatchpoints[:idx],
				debugger.ReadWatchpoints[idx+1:]...,
			)
			return
		}
	}
}

// Deletes a memory write watchpoint at `addr`. Does nothing if it doesn't exist
func (debugger *Debugger) DeleteWriteWatchpoint(addr uint32) {
	for idx, watchpoint := range debugger.WriteWatchpoints {
		if watchpoint == addr {
			debugger.WriteWatchpoints = append(
				debugger.WriteWatchpoints[:idx],
				debugger.WriteWatchpoints[idx+1:]...,
			)
			return
		}
	}
}

// Debugger entrypoint, called by the CPU before each instruction
func (debugger *Debugger) changedPc(cpu *CPU, bridge CpuBridge) {
	if debugger.stepping {
		debugger.stepping = false
		debugger.Debug(cpu, bridge)
		return
	}
	for _, breakpoint := range debugger.Breakpoints {
		if breakpoint == cpu.PC {
			fmt.Printf("debugger: reached breakpoint 0x%x\n", cpu.PC)
			debugger.Debug(cpu, bridge)
			return
		}
	}
}

// Called by the CPU when it's about to read a value from memory
func (debugger *Debugger) memoryRead(cpu *CPU, bridge CpuBridge, addr uint32) {
	for _, watchpoint := range debugger.ReadWatchpoints {
		if watchpoint == addr {
			fmt.Printf("debugger: triggered read watchpoint 0x%x\n", addr)
			debugger.Debug(cpu, bridge)
			return
		}
	}
}

// Called by the CPU when it's about to write a value to memory
func (debugger *Debugger) memoryWrite(cpu *CPU, bridge CpuBridge, addr uint32) {
	for _, watchpoint := range debugger.WriteWatchpoints {
		if watchpoint == addr {
			fmt.Printf("debugger: triggered write watchpoint 0x%x\n", addr)
			debugger.Debug(cpu, bridge)
			return
		}
	}
}

// Runs the interactive console until the user resumes execution
func (debugger *Debugger) Debug(cpu *CPU, bridge CpuBridge) {
	fd := os.Stdin.Fd()
	termios.Tcsetattr(fd, termios.TCIFLUSH, &debugger.cbreakAttr)
	defer termios.Tcsetattr(fd, termios.TCIFLUSH, &debugger.savedAttr)

	fmt.Printf("debugger: stopped at pc 0x%08x (s step, c continue, r registers, p register by name, i fetch, q quit)\n", cpu.PC)

	buf := make([]byte, 1)
	for {
		fmt.Print("> ")
		if _, err := os.Stdin.Read(buf); err != nil {
			return
		}
		fmt.Println()

		switch buf[0] {
		case 's':
			debugger.stepping = true
			return
		case 'c':
			return
		case 'r':
			debugger.dumpRegisters(cpu)
		case 'p':
			fmt.Print("register: ")
			name := readLine()
			idx := GetRegisterIndexByName(name)
			if idx == 0 && name != "r0" {
				fmt.Printf("unknown register %q\n", name)
				break
			}
			fmt.Printf("%s: 0x%08x\n", GetRegisterName(idx), cpu.Reg(idx))
		case 'i':
			physical := cpu.Cop0.VirtualToPhysical(cpu.PC)
			fmt.Printf("[0x%08x] = 0x%08x\n", cpu.PC,
				swapWord(bridge.ReadWord(physical)))
		case 'q':
			termios.Tcsetattr(fd, termios.TCIFLUSH, &debugger.savedAttr)
			os.Exit(0)
		case '\n':
			// ignore stray newlines
		default:
			fmt.Printf("unknown command %q\n", buf[0])
		}
	}
}

// Collects keystrokes until enter. The console terminal stays in
// cbreak mode so there is no line editing
func readLine() string {
	var line []byte
	buf := make([]byte, 1)
	for {
		if _, err := os.Stdin.Read(buf); err != nil || buf[0] == '\n' {
			return string(line)
		}
		line = append(line, buf[0])
	}
}

func (debugger *Debugger) dumpRegisters(cpu *CPU) {
	for i := uint32(0); i < 32; i++ {
		fmt.Printf("%s: 0x%08x  ", GetRegisterName(i), cpu.Reg(i))
		if i%4 == 3 {
			fmt.Println()
		}
	}
	fmt.Printf("pc: 0x%08x  hi: 0x%08x  lo: 0x%08x  sr: 0x%08x  cause: 0x%08x  epc: 0x%08x\n",
		cpu.PC, cpu.Hi, cpu.Lo,
		cpu.Cop0.Regs[COP0_STATUS], cpu.Cop0.Regs[COP0_CAUSE], cpu.Cop0.Regs[COP0_EPC])
}
