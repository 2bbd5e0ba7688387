package x86

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var fuzzOperands = []Operand{
	AL, AH, SIL, R9B, AX, R10W, EAX, ECX, R8D, RAX, RSP, R12, R13,
	XMM0, XMM9, XMM17, YMM1, ZMM2, ZMM31, K1, MM3, ST0, ST3, CL, DX, FS,
	Mem(RAX, 0), Mem(RSP, 8), Mem(RBP, -129), MemIndex(R12, R13, 8, 0x1000),
	Mem(RAX, 64).Sized(512), Mem(RBX, 0).Sized(32), Mem(RIP, 0x40).Sized(64),
	Mem(EAX, 4).Sized(16), Memory{Disp: 0x7000}.Sized(8),
	Imm(0), Imm(1), Imm(-1), Imm(0x7f), Imm(0x80), Imm(0xffff), Imm(0x1_0000_0000),
	Absolute(0x1000), Absolute(0x10_0000),
}

func FuzzEncode(f *testing.F) {
	f.Add(uint16(ADD), uint8(6), uint8(36), uint8(2), false)
	f.Add(uint16(MOV), uint8(9), uint8(42), uint8(2), false)
	f.Add(uint16(VADDPS), uint8(17), uint8(18), uint8(3), true)
	f.Add(uint16(JMP), uint8(43), uint8(0), uint8(1), false)
	f.Add(uint16(PUSH), uint8(26), uint8(0), uint8(1), false)
	f.Add(uint16(FADD), uint8(23), uint8(24), uint8(2), false)

	f.Fuzz(func(t *testing.T, mnemonic uint16, a, b, count uint8, mask bool) {
		assert := assert.New(t)

		m := Mnemonic(mnemonic)
		if !m.IsValid() {
			return
		}

		pick := func(n uint8) Operand {
			return fuzzOperands[int(n)%len(fuzzOperands)]
		}
		var operands []Operand
		switch count % 4 {
		case 1:
			operands = []Operand{pick(a)}
		case 2:
			operands = []Operand{pick(a), pick(b)}
		case 3:
			operands = []Operand{pick(a), pick(b), pick(a + b)}
		}

		inst := Inst(m, operands...)
		if mask {
			inst.Mask = K1
		}

		for _, mode := range []Mode{MODE_32, MODE_64} {
			sel, err := Match(mode, inst)
			if err != nil {
				continue
			}
			assert.LessOrEqual(sel.Best.Code.Len(), MaxLength)
			assert.Less(0, sel.Best.Code.Len())
			for _, short := range sel.Short {
				assert.Less(short.Code.Len(), sel.Best.Code.Len())
			}

			code, err := EncodeAt(mode, 0x1000, inst)
			if err != nil {
				assert.ErrorIs(err, ErrOperandOutOfRange)
				continue
			}
			assert.LessOrEqual(code.Len(), sel.Best.Code.Len())
		}
	})
}
