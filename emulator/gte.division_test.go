package emulator

import "testing"

func TestDivision(t *testing.T) {
	gte := NewGTE()
	assert := func(res, want int64) {
		if res != want {
			t.Errorf("expected 0x%x, got 0x%x", want, res)
		}
	}

	assert(gte.divide(0, 1), 0)
	assert(gte.divide(0, 1234), 0)
	assert(gte.divide(1, 1), 0x10000)
	assert(gte.divide(2, 2), 0x10000)
	assert(gte.divide(0xffff, 0xffff), 0xffff)
	assert(gte.divide(0xffff, 0xfffe), 0x10000)
	assert(gte.divide(1, 2), 0x8000)
	assert(gte.divide(1, 3), 0x5555)
	assert(gte.divide(5, 6), 0xd555)
	assert(gte.divide(1, 4), 0x4000)
	assert(gte.divide(10, 40), 0x4000)
	assert(gte.divide(0xf00, 0xbeef), 0x141d)
	assert(gte.divide(9876, 8765), 0x12072)
	assert(gte.divide(200, 10000), 0x51f)
	assert(gte.divide(0xffff, 0x8000), 0x1fffe)
	assert(gte.divide(0xe5d7, 0x72ec), 0x1ffff)

	if gte.flags != 0 {
		t.Errorf("in range division raised flags 0x%x", gte.flags)
	}

	// h >= sz3*2 overflows the divider
	assert(gte.divide(2, 1), 0x1ffff)
	if gte.flags != 1<<17 {
		t.Errorf("expected flag bit 17, got 0x%x", gte.flags)
	}
}
