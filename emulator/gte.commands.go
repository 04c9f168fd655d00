package emulator

// Execution time of every GTE opcode in CPU cycles. A zero entry
// means the opcode does nothing, not even clear the flag register
var gteCycleTable = [64]int{
	0x01: 15, // RTPS
	0x06: 8,  // NCLIP
	0x0c: 6,  // OP
	0x10: 8,  // DPCS
	0x11: 8,  // INTPL
	0x12: 8,  // MVMVA
	0x13: 19, // NCDS
	0x14: 13, // CDP
	0x16: 44, // NCDT
	0x1b: 17, // NCCS
	0x1c: 11, // CC
	0x1e: 14, // NCS
	0x20: 30, // NCT
	0x28: 5,  // SQR
	0x29: 8,  // DCPL
	0x2a: 17, // DPCT
	0x2d: 5,  // AVSZ3
	0x2e: 6,  // AVSZ4
	0x30: 23, // RTPT
	0x3d: 5,  // GPF
	0x3e: 5,  // GPL
	0x3f: 39, // NCCT
}

// Executes a GTE command word (the low 25 bits of a COP2 opcode) and
// returns how many cycles it took. Unknown opcodes are no-ops that
// take no time
func (gte *GTE) Command(op uint32) int {
	fn := op & 0x3f
	cycles := gteCycleTable[fn]
	if cycles == 0 {
		return 0
	}
	gte.flags = 0
	var sf uint32
	if bitSet(op, 19) {
		sf = 12
	}
	lm := bitSet(op, 10)

	switch fn {
	case 0x01:
		gte.commandRTPS(0, sf, lm, true)
	case 0x06:
		gte.commandNCLIP()
	case 0x0c:
		gte.commandOP(sf, lm)
	case 0x10:
		gte.commandDPCS(sf, lm, false)
	case 0x11:
		gte.commandINTPL(sf, lm)
	case 0x12:
		gte.commandMVMVA(op, sf, lm)
	case 0x13:
		gte.commandNCD(0, sf, lm)
	case 0x14:
		gte.commandCDP(sf, lm)
	case 0x16:
		for i := uint32(0); i < 3; i++ {
			gte.commandNCD(i, sf, lm)
		}
	case 0x1b:
		gte.commandNCC(0, sf, lm)
	case 0x1c:
		gte.commandCC(sf, lm)
	case 0x1e:
		gte.commandNC(0, sf, lm)
	case 0x20:
		for i := uint32(0); i < 3; i++ {
			gte.commandNC(i, sf, lm)
		}
	case 0x28:
		gte.commandSQR(sf, lm)
	case 0x29:
		gte.commandDCPL(sf, lm)
	case 0x2a:
		for i := 0; i < 3; i++ {
			gte.commandDPCS(sf, lm, true)
		}
	case 0x2d:
		gte.commandAVSZ3()
	case 0x2e:
		gte.commandAVSZ4()
	case 0x30:
		for i := uint32(0); i < 3; i++ {
			gte.commandRTPS(i, sf, lm, i == 2)
		}
	case 0x3d:
		gte.commandGPF(sf, lm)
	case 0x3e:
		gte.commandGPL(sf, lm)
	case 0x3f:
		for i := uint32(0); i < 3; i++ {
			gte.commandNCC(i, sf, lm)
		}
	}

	if gte.flags&0x7f87e000 != 0 {
		gte.flags |= 1 << 31
	}
	gte.Ctrl[GTE_CTRL_FLAG] = gte.flags
	return cycles
}

// Perspective transformation of vector `n`. With `dq` the depth
// queing factor lands in MAC0/IR0, RTPT only does that for the last
// vertex
func (gte *GTE) commandRTPS(n, sf uint32, lm, dq bool) {
	rt := gte.matrix(0)
	tr := gte.ctrlVec(5)
	v := gte.vector(n)
	var mac3Raw int64
	for i := uint32(0); i < 3; i++ {
		total := gte.ext44(i+1, (tr[i]<<12)+rt[i][0]*v[0])
		total = gte.ext44(i+1, total+rt[i][1]*v[1])
		total = gte.ext44(i+1, total+rt[i][2]*v[2])
		gte.setMac(i+1, total>>sf)
		if i == 2 {
			mac3Raw = total
		}
	}
	gte.setIr(1, gte.limIr(1, gte.mac(1), lm))
	gte.setIr(2, gte.limIr(2, gte.mac(2), lm))

	// IR3 ignores lm here and always clamps to the signed range,
	// while its saturation flag is judged against the unshifted
	// MAC3 value. Another hardware bug
	pre := mac3Raw >> 12
	if pre < -0x8000 || pre > 0x7fff {
		gte.setFlag(22)
	}
	val := gte.mac(3)
	if val < -0x8000 {
		val = -0x8000
	} else if val > 0x7fff {
		val = 0x7fff
	}
	gte.setIr(3, val)

	sz3 := gte.limSz3(mac3Raw >> 12)
	gte.pushSz(sz3)

	q := gte.divide(uint32(uint16(gte.Ctrl[GTE_CTRL_H])), sz3)
	ofx := int64(int32(gte.Ctrl[24]))
	ofy := int64(int32(gte.Ctrl[25]))
	sx2 := gte.limSxy(0, gte.checkMac0(q*gte.ir(1)+ofx)>>16)
	sy2 := gte.limSxy(1, gte.checkMac0(q*gte.ir(2)+ofy)>>16)
	gte.pushSxy(sx2, sy2)

	if dq {
		dqa := int64(int16(gte.Ctrl[GTE_CTRL_DQA]))
		dqb := int64(int32(gte.Ctrl[GTE_CTRL_DQB]))
		d := gte.checkMac0(dqb + dqa*q)
		gte.setMac(0, d)
		gte.setIr(0, gte.limIr0(d>>12))
	}
}

// Winding of the triangle in the XY fifo, the sign of MAC0 tells
// front from back facing
func (gte *GTE) commandNCLIP() {
	sx := [3]int64{}
	sy := [3]int64{}
	for i := uint32(0); i < 3; i++ {
		sx[i] = int64(int16(gte.Data[12+i]))
		sy[i] = int64(int16(gte.Data[12+i] >> 16))
	}
	v := sx[0]*(sy[1]-sy[2]) + sx[1]*(sy[2]-sy[0]) + sx[2]*(sy[0]-sy[1])
	gte.setMac(0, gte.checkMac0(v))
}

// Cross product of the rotation matrix diagonal with IR
func (gte *GTE) commandOP(sf uint32, lm bool) {
	d1 := int64(int16(gte.Ctrl[0]))
	d2 := int64(int16(gte.Ctrl[2]))
	d3 := int64(int16(gte.Ctrl[4]))
	ir1, ir2, ir3 := gte.ir(1), gte.ir(2), gte.ir(3)
	gte.setMac(1, gte.ext44(1, ir3*d2-ir2*d3)>>sf)
	gte.setMac(2, gte.ext44(2, ir1*d3-ir3*d1)>>sf)
	gte.setMac(3, gte.ext44(3, ir2*d1-ir1*d2)>>sf)
	gte.macToIr(lm)
}

func (gte *GTE) commandSQR(sf uint32, lm bool) {
	for i := uint32(1); i <= 3; i++ {
		v := gte.ir(i)
		gte.setMac(i, gte.ext44(i, v*v)>>sf)
	}
	gte.macToIr(lm)
}

func (gte *GTE) commandAVSZ3() {
	zsf3 := int64(int16(gte.Ctrl[GTE_CTRL_ZSF3]))
	total := zsf3 * (int64(uint16(gte.Data[17])) +
		int64(uint16(gte.Data[18])) + int64(uint16(gte.Data[19])))
	gte.setMac(0, gte.checkMac0(total))
	gte.Data[7] = uint32(gte.limSz3(total >> 12))
}

func (gte *GTE) commandAVSZ4() {
	zsf4 := int64(int16(gte.Ctrl[GTE_CTRL_ZSF4]))
	total := zsf4 * (int64(uint16(gte.Data[16])) + int64(uint16(gte.Data[17])) +
		int64(uint16(gte.Data[18])) + int64(uint16(gte.Data[19])))
	gte.setMac(0, gte.checkMac0(total))
	gte.Data[7] = uint32(gte.limSz3(total >> 12))
}

// General matrix by vector multiply, the operands are picked from
// the opcode fields. Selecting the fourth matrix yields the garbage
// matrix and selecting the far color vector triggers the flag bug in
// mvmvaCore
func (gte *GTE) commandMVMVA(op, sf uint32, lm bool) {
	mx := (op >> 17) & 3
	vn := (op >> 15) & 3
	cv := (op >> 13) & 3

	var m [3][3]int64
	if mx == 3 {
		r := gte.rgbc()[0] << 4
		r13 := int64(int16(gte.Ctrl[1]))
		r22 := int64(int16(gte.Ctrl[2]))
		m = [3][3]int64{
			{-r, r, gte.ir(0)},
			{r13, r13, r13},
			{r22, r22, r22},
		}
	} else {
		m = gte.matrix([3]uint32{0, 8, 16}[mx])
	}
	v := gte.vector(vn)

	var t [3]int64
	switch cv {
	case 0:
		t = gte.ctrlVec(5)
	case 1:
		t = gte.ctrlVec(13)
	case 2:
		t = gte.ctrlVec(21)
	}
	gte.mvmvaCore(m, v, t, sf, cv == 2)
	gte.macToIr(lm)
}

// Depth cue interpolation towards the far color, the shared tail of
// the DPC/INTPL/NCD/CDP family. MAC1..MAC3 hold the base color
// scaled by 1<<sf on entry
func (gte *GTE) interpolate(sf uint32, lm bool) {
	fc := gte.ctrlVec(21)
	ir0 := gte.ir(0)
	for i := uint32(0); i < 3; i++ {
		m := gte.mac(i + 1)
		tmp := gte.limIr(i+1, gte.ext44(i+1, (fc[i]<<12)-m)>>sf, false)
		gte.setMac(i+1, gte.ext44(i+1, m+tmp*ir0)>>sf)
	}
	gte.macToIr(lm)
	gte.macToColor()
}

// Light and background color stages shared by the normal color
// commands
func (gte *GTE) ncStages(n, sf uint32, lm bool) {
	light := gte.matrix(8)
	color := gte.matrix(16)
	bk := gte.ctrlVec(13)
	v := gte.vector(n)
	gte.mvmvaCore(light, v, [3]int64{}, sf, false)
	gte.macToIr(lm)
	gte.mvmvaCore(color, [3]int64{gte.ir(1), gte.ir(2), gte.ir(3)}, bk, sf, false)
	gte.macToIr(lm)
}

func (gte *GTE) commandNC(n, sf uint32, lm bool) {
	gte.ncStages(n, sf, lm)
	gte.macToColor()
}

func (gte *GTE) commandNCC(n, sf uint32, lm bool) {
	gte.ncStages(n, sf, lm)
	rgbc := gte.rgbc()
	for i := uint32(0); i < 3; i++ {
		gte.setMac(i+1, gte.ext44(i+1, (rgbc[i]<<4)*gte.ir(i+1))>>sf)
	}
	gte.macToIr(lm)
	gte.macToColor()
}

func (gte *GTE) commandNCD(n, sf uint32, lm bool) {
	gte.ncStages(n, sf, lm)
	rgbc := gte.rgbc()
	for i := uint32(0); i < 3; i++ {
		gte.setMac(i+1, gte.ext44(i+1, (rgbc[i]<<4)*gte.ir(i+1)))
	}
	gte.interpolate(sf, lm)
}

func (gte *GTE) commandCC(sf uint32, lm bool) {
	color := gte.matrix(16)
	bk := gte.ctrlVec(13)
	gte.mvmvaCore(color, [3]int64{gte.ir(1), gte.ir(2), gte.ir(3)}, bk, sf, false)
	gte.macToIr(lm)
	rgbc := gte.rgbc()
	for i := uint32(0); i < 3; i++ {
		gte.setMac(i+1, gte.ext44(i+1, (rgbc[i]<<4)*gte.ir(i+1))>>sf)
	}
	gte.macToIr(lm)
	gte.macToColor()
}

func (gte *GTE) commandCDP(sf uint32, lm bool) {
	color := gte.matrix(16)
	bk := gte.ctrlVec(13)
	gte.mvmvaCore(color, [3]int64{gte.ir(1), gte.ir(2), gte.ir(3)}, bk, sf, false)
	gte.macToIr(lm)
	rgbc := gte.rgbc()
	for i := uint32(0); i < 3; i++ {
		gte.setMac(i+1, gte.ext44(i+1, (rgbc[i]<<4)*gte.ir(i+1)))
	}
	gte.interpolate(sf, lm)
}

// Depth cue a single color. DPCT pulls the color from the bottom of
// the RGB fifo instead of RGBC so running it three times cues the
// whole fifo
func (gte *GTE) commandDPCS(sf uint32, lm bool, fromFifo bool) {
	var col [3]int64
	if fromFifo {
		v := gte.Data[20]
		col = [3]int64{int64(v & 0xff), int64((v >> 8) & 0xff), int64((v >> 16) & 0xff)}
	} else {
		rgbc := gte.rgbc()
		col = [3]int64{rgbc[0], rgbc[1], rgbc[2]}
	}
	for i := uint32(0); i < 3; i++ {
		gte.setMac(i+1, gte.ext44(i+1, col[i]<<16))
	}
	gte.interpolate(sf, lm)
}

func (gte *GTE) commandDCPL(sf uint32, lm bool) {
	rgbc := gte.rgbc()
	for i := uint32(0); i < 3; i++ {
		gte.setMac(i+1, gte.ext44(i+1, (rgbc[i]<<4)*gte.ir(i+1)))
	}
	gte.interpolate(sf, lm)
}

func (gte *GTE) commandINTPL(sf uint32, lm bool) {
	for i := uint32(0); i < 3; i++ {
		gte.setMac(i+1, gte.ext44(i+1, gte.ir(i+1)<<12))
	}
	gte.interpolate(sf, lm)
}

func (gte *GTE) commandGPF(sf uint32, lm bool) {
	ir0 := gte.ir(0)
	for i := uint32(0); i < 3; i++ {
		gte.setMac(i+1, gte.ext44(i+1, ir0*gte.ir(i+1))>>sf)
	}
	gte.macToIr(lm)
	gte.macToColor()
}

func (gte *GTE) commandGPL(sf uint32, lm bool) {
	ir0 := gte.ir(0)
	for i := uint32(0); i < 3; i++ {
		m := gte.ext44(i+1, int64(int32(gte.Data[24+i+1]))<<sf)
		gte.setMac(i+1, gte.ext44(i+1, m+ir0*gte.ir(i+1))>>sf)
	}
	gte.macToIr(lm)
	gte.macToColor()
}
