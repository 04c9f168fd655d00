package emulator

// Reciprocal table for the unsigned Newton-Raphson divider
var unrTable = makeUnrTable()

func makeUnrTable() [0x101]int64 {
	var table [0x101]int64
	for i := int64(0); i < 0x101; i++ {
		table[i] = maxInt64(0, (0x40000/(i+0x100)+1)/2-0x101)
	}
	return table
}

// Computes (h*0x20000/sz3+1)/2 the way the hardware divider does,
// with a table driven reciprocal and two Newton-Raphson refinement
// steps. Results saturate at 0x1ffff, and h >= sz3*2 overflows the
// divider which raises flag bit 17
func (gte *GTE) divide(h uint32, sz3 int64) int64 {
	if int64(h) < sz3*2 {
		z := uint32(countLeadingZeroesU16(uint16(sz3)))
		n := int64(h) << z
		d := sz3 << z
		u := unrTable[(d-0x7fc0)>>7] + 0x101
		d = (0x2000080 - d*u) >> 8
		d = (0x80 + d*u) >> 8
		return minInt64(0x1ffff, (n*d+0x8000)>>16)
	}
	gte.setFlag(17)
	return 0x1ffff
}
