package emulator

import (
	"fmt"
	"io"
)

const BIOS_SIZE uint32 = 512 * 1024 // Every retail BIOS image is 512KB

// Read only BIOS image mapped at the top of the physical address space
type BIOS struct {
	Data []byte // Raw image bytes
}

// Reads a full 512KB BIOS image out of `r`. Images of any other size
// are rejected
func LoadBIOS(r io.Reader) (*BIOS, error) {
	data := make([]byte, BIOS_SIZE)
	if _, err := io.ReadFull(r, data); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, fmt.Errorf("BIOS image is smaller than %d bytes", BIOS_SIZE)
		}
		return nil, err
	}
	return &BIOS{Data: data}, nil
}

// Little endian word at `offset`, which counts from the start of the
// image rather than from the CPU visible base address
func (bios *BIOS) Load32(offset uint32) uint32 {
	b0 := uint32(bios.Data[offset+0])
	b1 := uint32(bios.Data[offset+1])
	b2 := uint32(bios.Data[offset+2])
	b3 := uint32(bios.Data[offset+3])
	return b0 | (b1 << 8) | (b2 << 16) | (b3 << 24)
}

// Byte at `offset` into the image
func (bios *BIOS) Load8(offset uint32) byte {
	return bios.Data[offset]
}
