package emulator

import (
	"errors"
	"fmt"
)

var errOverflow = errors.New("integer overflow")

// Names of registers
var RegisterNames = []string{
	"r0", "at", "v0", "v1", "a0", "a1", "a2", "a3", // 00
	"t0", "t1", "t2", "t3", "t4", "t5", "t6", "t7", // 08
	"s0", "s1", "s2", "s3", "s4", "s5", "s6", "s7", // 10
	"t8", "t9", "k0", "k1", "gp", "sp", "fp", "ra", // 18
}

// Returns the name of the register index
func GetRegisterName(index uint32) string {
	return RegisterNames[index]
}

// Returns the register index by it's name (in RegisterNames).
// Returns 0 if the register name does not exist
func GetRegisterIndexByName(name string) uint32 {
	for idx, n := range RegisterNames {
		if n == name {
			return uint32(idx)
		}
	}
	return 0
}

// Formatted panic()
func panicFmt(format string, a ...interface{}) {
	panic(fmt.Sprintf(format, a...))
}

// Adds two signed integers and checks for overflow
func add32Overflow(a, b int32) (int32, error) {
	c := a + b
	if (c > a) == (b > 0) {
		return c, nil
	}
	return c, errOverflow
}

// Subtracts two signed integers and checks for overflow
func sub32Overflow(a, b int32) (int32, error) {
	c := a - b
	if (c < a) == (b > 0) {
		return c, nil
	}
	return c, errOverflow
}

func oneIfTrue(val bool) uint32 {
	if val {
		return 1
	}
	return 0
}

// Logically shifts `val` right by `by`, only the low 5 bits of `by`
// are used (like the hardware shifter)
func logicalRshift32(val uint32, by uint32) uint32 {
	return val >> (by & 0x1f)
}

// Logically shifts `val` right by `by` as an unsigned 64 bit value
func logicalRshift64(val int64, by uint32) int64 {
	return int64(uint64(val) >> by)
}

// Sign-extends the low `bits` bits of `val` to a full 64 bit value
func signExtend64(val int64, bits uint32) int64 {
	shift := 64 - bits
	return (val << shift) >> shift
}

// Returns true if bit `bit` of `val` is set
func bitSet(val uint32, bit uint32) bool {
	return val&(1<<bit) != 0
}

func countLeadingZeroesU16(val uint16) uint16 {
	var r uint16
	for ((val & 0x8000) == 0) && r < 16 {
		val <<= 1
		r++
	}
	return r
}

func countLeadingZeroesU32(x uint32) uint32 {
	var n uint32 = 32
	var y uint32
	y = x >> 16
	if y != 0 {
		n = n - 16
		x = y
	}
	y = x >> 8
	if y != 0 {
		n = n - 8
		x = y
	}
	y = x >> 4
	if y != 0 {
		n = n - 4
		x = y
	}
	y = x >> 2
	if y != 0 {
		n = n - 2
		x = y
	}
	y = x >> 1
	if y != 0 {
		return n - 2
	}
	return n - x
}

// Counts the run of leading bits of `val` that equal its sign bit
func countLeadingBitRun(val uint32) uint32 {
	if val&0x80000000 != 0 {
		val = ^val
	}
	return countLeadingZeroesU32(val)
}

func minInt64(x, y int64) int64 {
	if x < y {
		return x
	}
	return y
}

func maxInt64(x, y int64) int64 {
	if x > y {
		return x
	}
	return y
}

// Swaps the byte order of a 32 bit word
func swapWord(val uint32) uint32 {
	return val<<24 | (val&0xff00)<<8 | (val>>8)&0xff00 | val>>24
}

// Swaps the byte order of the low 16 bits
func swapHalf(val uint32) uint32 {
	return (val&0xff)<<8 | (val>>8)&0xff
}
