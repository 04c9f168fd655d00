package emulator

// GTE control register indices with special behavior
const (
	GTE_CTRL_H    = 26 // Projection plane distance
	GTE_CTRL_DQA  = 27 // Depth queing coefficient (signed 8.8)
	GTE_CTRL_DQB  = 28 // Depth queing offset (signed 8.24)
	GTE_CTRL_ZSF3 = 29 // Z average scale factor for triangles
	GTE_CTRL_ZSF4 = 30 // Z average scale factor for quads
	GTE_CTRL_FLAG = 31 // Overflow flag register
)

// Geometry Transformation Engine (coprocessor 2). The two register
// banks are stored as raw words, the register file and the command
// helpers pull the fixed point fields out on access
type GTE struct {
	Ctrl          [32]uint32 // Control registers (CFC2/CTC2)
	Data          [32]uint32 // Data registers (MFC2/MTC2)
	ConditionLine bool
	flags         uint32 // Flag accumulator of the running command
}

// Returns a new GTE instance
func NewGTE() *GTE {
	return &GTE{}
}

// Set value of a control register. Control writes always store the
// raw word so `override` changes nothing here
func (gte *GTE) WriteControl(reg, val uint32, override bool) {
	gte.Ctrl[reg] = val
}

// Returns the value of a control register. H, DQA, DQB, ZSF3 and
// ZSF4 read back sign extended from 16 bits even though H is really
// unsigned, a hardware bug games depend on
func (gte *GTE) ReadControl(reg uint32) uint32 {
	if reg >= 26 && reg <= 30 {
		return uint32(int32(int16(gte.Ctrl[reg])))
	}
	return gte.Ctrl[reg]
}

// Set value of a data register. Without `override` the register file
// quirks apply: read-only registers swallow the write, SXYP mirrors
// into SXY2 or pushes the XY fifo and IRGB unpacks into IR1..IR3
func (gte *GTE) WriteData(reg, val uint32, override bool) {
	if override {
		gte.Data[reg] = val
		return
	}
	switch reg {
	case 7, 23, 29, 31:
		// read only
	case 14:
		gte.Data[14] = val
		gte.Data[15] = val
	case 15:
		gte.Data[12] = gte.Data[13]
		gte.Data[13] = gte.Data[14]
		gte.Data[14] = val
		gte.Data[15] = val
	case 28:
		gte.Data[28] = val
		gte.Data[9] = (val & 0x1f) << 7
		gte.Data[10] = ((val >> 5) & 0x1f) << 7
		gte.Data[11] = ((val >> 10) & 0x1f) << 7
	default:
		gte.Data[reg] = val
	}
}

// Returns the value of a data register. The 16 bit signed registers
// sign extend, ORGB packs IR1..IR3 back into 5 bit fields and LZCR
// counts the leading bit run of LZCS
func (gte *GTE) ReadData(reg uint32) uint32 {
	switch reg {
	case 1, 3, 5, 8, 9, 10, 11:
		return uint32(int32(int16(gte.Data[reg])))
	case 23, 28:
		return 0
	case 29:
		var out uint32
		for i := uint32(0); i < 3; i++ {
			c := int32(gte.Data[9+i]) >> 7
			if c < 0 {
				c = 0
			} else if c > 0x1f {
				c = 0x1f
			}
			out |= uint32(c) << (5 * i)
		}
		return out
	case 31:
		return countLeadingBitRun(gte.Data[30])
	}
	return gte.Data[reg]
}

func (gte *GTE) setFlag(bit uint32) {
	gte.flags |= 1 << bit
}

// Flags 44 bit MAC overflow (bits 30/29/28 positive, 27/26/25
// negative for MAC1..MAC3) and truncates `val` back into range
func (gte *GTE) ext44(i uint32, val int64) int64 {
	if val > 0x7ffffffffff {
		gte.setFlag(31 - i)
	} else if val < -0x80000000000 {
		gte.setFlag(28 - i)
	}
	return signExtend64(val, 44)
}

func (gte *GTE) checkMac0(val int64) int64 {
	if val > 0x7fffffff {
		gte.setFlag(16)
	} else if val < -0x80000000 {
		gte.setFlag(15)
	}
	return val
}

func (gte *GTE) limIr(i uint32, val int64, lm bool) int64 {
	lo := int64(-0x8000)
	if lm {
		lo = 0
	}
	if val < lo {
		gte.setFlag(25 - i)
		return lo
	}
	if val > 0x7fff {
		gte.setFlag(25 - i)
		return 0x7fff
	}
	return val
}

func (gte *GTE) limIr0(val int64) int64 {
	if val < 0 {
		gte.setFlag(12)
		return 0
	}
	if val > 0x1000 {
		gte.setFlag(12)
		return 0x1000
	}
	return val
}

func (gte *GTE) limColor(i uint32, val int64) int64 {
	if val < 0 {
		gte.setFlag(22 - i)
		return 0
	}
	if val > 0xff {
		gte.setFlag(22 - i)
		return 0xff
	}
	return val
}

// `which` selects the coordinate: 0 is X (flag bit 14), 1 is Y (bit 13)
func (gte *GTE) limSxy(which uint32, val int64) int64 {
	if val < -0x400 {
		gte.setFlag(14 - which)
		return -0x400
	}
	if val > 0x3ff {
		gte.setFlag(14 - which)
		return 0x3ff
	}
	return val
}

func (gte *GTE) limSz3(val int64) int64 {
	if val < 0 {
		gte.setFlag(18)
		return 0
	}
	if val > 0xffff {
		gte.setFlag(18)
		return 0xffff
	}
	return val
}

// Unpacks one of the three 16 bit matrices: base 0 is rotation, 8 is
// light, 16 is light color
func (gte *GTE) matrix(base uint32) [3][3]int64 {
	c := &gte.Ctrl
	s := func(v uint32) int64 { return int64(int16(v)) }
	return [3][3]int64{
		{s(c[base]), s(c[base] >> 16), s(c[base+1])},
		{s(c[base+1] >> 16), s(c[base+2]), s(c[base+2] >> 16)},
		{s(c[base+3]), s(c[base+3] >> 16), s(c[base+4])},
	}
}

// One of the 32 bit control vectors: base 5 is translation, 13 is
// background color, 21 is far color
func (gte *GTE) ctrlVec(base uint32) [3]int64 {
	return [3]int64{
		int64(int32(gte.Ctrl[base])),
		int64(int32(gte.Ctrl[base+1])),
		int64(int32(gte.Ctrl[base+2])),
	}
}

// Vector 0..2 from the data registers, 3 is the IR vector
func (gte *GTE) vector(n uint32) [3]int64 {
	if n == 3 {
		return [3]int64{gte.ir(1), gte.ir(2), gte.ir(3)}
	}
	return [3]int64{
		int64(int16(gte.Data[2*n])),
		int64(int16(gte.Data[2*n] >> 16)),
		int64(int16(gte.Data[2*n+1])),
	}
}

func (gte *GTE) ir(i uint32) int64 {
	return int64(int16(gte.Data[8+i]))
}

func (gte *GTE) setIr(i uint32, val int64) {
	gte.Data[8+i] = uint32(val)
}

func (gte *GTE) mac(i uint32) int64 {
	return int64(int32(gte.Data[24+i]))
}

func (gte *GTE) setMac(i uint32, val int64) {
	gte.Data[24+i] = uint32(val)
}

// RGBC split into its four bytes, the last one is the GP0 code
func (gte *GTE) rgbc() [4]int64 {
	v := gte.Data[6]
	return [4]int64{
		int64(v & 0xff),
		int64((v >> 8) & 0xff),
		int64((v >> 16) & 0xff),
		int64((v >> 24) & 0xff),
	}
}

func (gte *GTE) pushSz(val int64) {
	gte.Data[16] = gte.Data[17]
	gte.Data[17] = gte.Data[18]
	gte.Data[18] = gte.Data[19]
	gte.Data[19] = uint32(val)
}

func (gte *GTE) pushSxy(x, y int64) {
	v := uint32(uint16(x)) | uint32(uint16(y))<<16
	gte.Data[12] = gte.Data[13]
	gte.Data[13] = gte.Data[14]
	gte.Data[14] = v
	gte.Data[15] = v
}

func (gte *GTE) pushColor(r, g, b, code int64) {
	gte.Data[20] = gte.Data[21]
	gte.Data[21] = gte.Data[22]
	gte.Data[22] = uint32(r) | uint32(g)<<8 | uint32(b)<<16 | uint32(code)<<24
}

func (gte *GTE) macToIr(lm bool) {
	for i := uint32(1); i <= 3; i++ {
		gte.setIr(i, gte.limIr(i, gte.mac(i), lm))
	}
}

func (gte *GTE) macToColor() {
	code := gte.rgbc()[3]
	r := gte.limColor(1, gte.mac(1)>>4)
	g := gte.limColor(2, gte.mac(2)>>4)
	b := gte.limColor(3, gte.mac(3)>>4)
	gte.pushColor(r, g, b, code)
}

// Matrix by vector multiply into MAC1..MAC3 with the translation
// vector `t` pre-loaded as 20.12. With `fcBug` the first product is
// only flag checked against the IR limiter and then thrown away, the
// way the hardware mishandles the far color vector
func (gte *GTE) mvmvaCore(m [3][3]int64, v, t [3]int64, shift uint32, fcBug bool) {
	for i := uint32(0); i < 3; i++ {
		var total int64
		if fcBug {
			first := gte.ext44(i+1, (t[i]<<12)+m[i][0]*v[0])
			gte.limIr(i+1, first>>shift, false)
			total = gte.ext44(i+1, m[i][1]*v[1])
			total = gte.ext44(i+1, total+m[i][2]*v[2])
		} else {
			total = gte.ext44(i+1, (t[i]<<12)+m[i][0]*v[0])
			total = gte.ext44(i+1, total+m[i][1]*v[1])
			total = gte.ext44(i+1, total+m[i][2]*v[2])
		}
		gte.setMac(i+1, total>>shift)
	}
}
