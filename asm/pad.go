// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

// nops are the recommended multi-byte NOP sequences, indexed by length.
var nops = [...][]byte{
	1: {0x90},
	2: {0x66, 0x90},
	3: {0x0f, 0x1f, 0x00},
	4: {0x0f, 0x1f, 0x40, 0x00},
	5: {0x0f, 0x1f, 0x44, 0x00, 0x00},
	6: {0x66, 0x0f, 0x1f, 0x44, 0x00, 0x00},
	7: {0x0f, 0x1f, 0x80, 0x00, 0x00, 0x00, 0x00},
	8: {0x0f, 0x1f, 0x84, 0x00, 0x00, 0x00, 0x00, 0x00},
	9: {0x66, 0x0f, 0x1f, 0x84, 0x00, 0x00, 0x00, 0x00, 0x00},
}

// padding returns the bytes needed to align addr to a multiple of align.
func padding(addr uint64, align int) int {
	mask := uint64(align) - 1
	return int(-addr & mask)
}

// pad fills buf with the fill pattern.
func pad(buf []byte, fill Fill) {
	if fill != FILL_NOP {
		for n := range buf {
			buf[n] = byte(fill)
		}
		return
	}

	for len(buf) > 0 {
		size := min(len(buf), len(nops)-1)
		buf = buf[copy(buf, nops[size]):]
	}
}
