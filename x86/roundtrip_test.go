package x86

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/arch/x86/x86asm"
)

func isLegacy(code []byte) bool {
	switch code[0] {
	case 0xc4, 0xc5, 0x62:
		return false
	}
	return true
}

func TestRoundTripLength(t *testing.T) {
	for _, entry := range encodeCases {
		if !isLegacy(entry.want) {
			continue
		}
		t.Run(entry.name, func(t *testing.T) {
			assert := assert.New(t)

			code, err := EncodeAt(entry.mode, 0x1000, entry.inst)
			assert.NoError(err)

			inst, err := x86asm.Decode(code.Bytes(), int(entry.mode))
			assert.NoError(err)
			assert.Equal(code.Len(), inst.Len)
		})
	}
}

func TestRoundTripOperands(t *testing.T) {
	table := []struct {
		inst *Instruction
		op   x86asm.Op
		args []x86asm.Arg
	}{
		{Inst(ADD, EAX, Imm(1)), x86asm.ADD, []x86asm.Arg{x86asm.EAX, x86asm.Imm(1)}},
		{Inst(ADD, RAX, RBX), x86asm.ADD, []x86asm.Arg{x86asm.RAX, x86asm.RBX}},
		{Inst(MOV, R8D, Imm(1)), x86asm.MOV, []x86asm.Arg{x86asm.R8L, x86asm.Imm(1)}},
		{Inst(MOV, SIL, AL), x86asm.MOV, []x86asm.Arg{x86asm.SIB, x86asm.AL}},
		{Inst(MOV, AH, AL), x86asm.MOV, []x86asm.Arg{x86asm.AH, x86asm.AL}},
		{Inst(LEA, RAX, MemIndex(RBX, RCX, 4, 16)), x86asm.LEA, []x86asm.Arg{x86asm.RAX, x86asm.Mem{Base: x86asm.RBX, Scale: 4, Index: x86asm.RCX, Disp: 16}}},
		{Inst(LEA, RAX, MemIndex(R8, R9, 8, 0x100)), x86asm.LEA, []x86asm.Arg{x86asm.RAX, x86asm.Mem{Base: x86asm.R8, Scale: 8, Index: x86asm.R9, Disp: 0x100}}},
		{Inst(PUSH, R12), x86asm.PUSH, []x86asm.Arg{x86asm.R12}},
		{Inst(MOVZX, EAX, AL), x86asm.MOVZX, []x86asm.Arg{x86asm.EAX, x86asm.AL}},
		{Inst(SAR, RAX, Imm(3)), x86asm.SAR, []x86asm.Arg{x86asm.RAX, x86asm.Imm(3)}},
		{Inst(CMOVNE, EAX, ECX), x86asm.CMOVNE, []x86asm.Arg{x86asm.EAX, x86asm.ECX}},
		{Inst(SETE, AL), x86asm.SETE, []x86asm.Arg{x86asm.AL}},
		{Inst(IMUL, EAX, ECX, Imm(10)), x86asm.IMUL, []x86asm.Arg{x86asm.EAX, x86asm.ECX, x86asm.Imm(10)}},
		{Inst(ADDSD, XMM8, XMM1), x86asm.ADDSD, []x86asm.Arg{x86asm.X8, x86asm.X1}},
		{Inst(ADDPS, XMM0, XMM1), x86asm.ADDPS, []x86asm.Arg{x86asm.X0, x86asm.X1}},
		{Inst(BSWAP, R9), x86asm.BSWAP, []x86asm.Arg{x86asm.R9}},
		{Inst(XCHG, EAX, ECX), x86asm.XCHG, nil},
	}

	for _, entry := range table {
		t.Run(entry.inst.String(), func(t *testing.T) {
			assert := assert.New(t)

			code, err := EncodeAt(MODE_64, 0, entry.inst)
			assert.NoError(err)

			inst, err := x86asm.Decode(code.Bytes(), 64)
			assert.NoError(err)
			assert.Equal(entry.op, inst.Op)
			assert.Equal(code.Len(), inst.Len)
			for n, arg := range entry.args {
				assert.Equal(arg, inst.Args[n], n)
			}
		})
	}
}

// sampleOperands builds one operand per slot of a signature. high selects
// registers 8-15 and an R11+R13 memory operand where the family has them;
// memory selects the memory form of r/m slots.
func sampleOperands(mode Mode, sig *Signature, high, memory bool) (ops []Operand, ok bool) {
	mem := Mem(EBX, 0x10)
	if mode == MODE_64 {
		mem = Mem(RBX, 0x10)
		if high {
			mem = MemIndex(R11, R13, 4, 0x10)
		}
	}

	for _, slot := range sig.Slots {
		var op Operand
		switch slot.Kind {
		case SLOT_FIXED:
			op = slot.Fixed
		case SLOT_ONE:
			op = Imm(1)
		case SLOT_REG, SLOT_RM:
			if slot.Kind == SLOT_RM && memory {
				op = mem
				break
			}
			reg := Register{Family: slot.Family, Index: 2}
			if high && (slot.Family.IsGeneral() || slot.Family.IsVector()) {
				reg.Index = 10
			}
			if !reg.ValidIn(mode) {
				return nil, false
			}
			op = reg
		case SLOT_MEM:
			op = mem
		case SLOT_IMM:
			op = Imm(0x12)
		case SLOT_REL:
			op = Absolute(0x1000)
		default:
			return nil, false
		}
		ops = append(ops, op)
	}
	return ops, true
}

// vexLength is the length of a VEX or EVEX register form after its prefix.
func vexLength(sig *Signature) (n int, ok bool) {
	enc := &sig.Encoding
	n = 1
	if enc.ModRM {
		n++
	}
	if enc.Is4 {
		n++
	}
	for _, slot := range sig.Slots {
		switch slot.Kind {
		case SLOT_MEM:
			return 0, false
		case SLOT_IMM:
			n += slot.Width / 8
		}
	}
	return n, true
}

// checkVex verifies the prefix and opcode bytes of a VEX or EVEX form.
func checkVex(t *testing.T, mode Mode, sig *Signature, code []byte, memory bool) {
	assert := assert.New(t)
	enc := &sig.Encoding

	pp := map[byte]byte{0: 0, 0x66: 1, 0xf3: 2, 0xf2: 3}[enc.Prefix]
	w := byte(0)
	if enc.W == 1 {
		w = 1
	}
	l := byte(0)
	switch enc.L {
	case 256:
		l = 1
	case 512:
		l = 2
	}

	var op byte
	var prefix int
	switch code[0] {
	case 0xc5:
		assert.Equal(MAP_0F, enc.Map)
		assert.Zero(w)
		assert.Equal(pp, code[1]&3)
		assert.Equal(l, code[1]>>2&1)
		if mode == MODE_32 {
			assert.NotZero(code[1] & 0x80)
		}
		op, prefix = code[2], 2
	case 0xc4:
		assert.Equal(byte(enc.Map), code[1]&0x1f)
		assert.Equal(w, code[2]>>7)
		assert.Equal(pp, code[2]&3)
		assert.Equal(l, code[2]>>2&1)
		if mode == MODE_32 {
			assert.Equal(byte(0xe0), code[1]&0xe0)
		}
		op, prefix = code[3], 3
	case 0x62:
		assert.Equal(ENC_EVEX, enc.Kind)
		assert.Equal(byte(enc.Map), code[1]&0x0f)
		assert.Equal(w, code[2]>>7)
		assert.NotZero(code[2] & 0x04)
		assert.Equal(pp, code[2]&3)
		assert.Equal(l, code[3]>>5&3)
		if mode == MODE_32 {
			assert.Equal(byte(0xf0), code[1]&0xf0)
			assert.NotZero(code[3] & 0x08)
		}
		op, prefix = code[4], 4
	default:
		assert.Failf("prefix", "%02x is not a VEX or EVEX prefix", code[0])
		return
	}
	assert.Equal(enc.Opcode[0], op)

	if want, ok := vexLength(sig); ok && !memory {
		assert.Equal(prefix+want, len(code))
	}
}

func TestRoundTripSignatures(t *testing.T) {
	assert := assert.New(t)

	known := map[string]bool{}
	for i := range 4096 {
		name := x86asm.Op(i).String()
		if !strings.HasPrefix(name, "Op(") {
			known[name] = true
		}
	}

	type variant struct {
		high, memory bool
	}

	var legacy, vex int
	for _, mode := range []Mode{MODE_32, MODE_64} {
		variants := []variant{{false, false}, {false, true}}
		if mode == MODE_64 {
			variants = append(variants, variant{true, false}, variant{true, true})
		}
		for m := range Mnemonics() {
			name := strings.ToUpper(m.String())
			for _, sig := range Signatures(m) {
				switch {
				case sig.Flags&FLAG_ONLY64 != 0 && mode != MODE_64,
					sig.Flags&FLAG_ONLY32 != 0 && mode == MODE_64,
					sig.Encoding.RexW && mode != MODE_64:
					continue
				}
				for _, v := range variants {
					ops, ok := sampleOperands(mode, sig, v.high, v.memory)
					if !ok {
						continue
					}
					inst := Inst(m, ops...)
					code, err := Encode(mode, inst, sig)
					if !assert.NoError(err, "%v %v", mode, inst) {
						continue
					}

					if sig.Encoding.Kind != ENC_LEGACY {
						vex++
						checkVex(t, mode, sig, code.Bytes(), v.memory)
						continue
					}

					// x86asm does not know adcx, rdseed, endbr64 and a
					// few others; the encode tables cover those.
					if !known[name] {
						continue
					}
					legacy++
					dec, err := x86asm.Decode(code.Bytes(), int(mode))
					if !assert.NoError(err, "%v %v: % x", mode, inst, code.Bytes()) {
						continue
					}
					assert.Equal(code.Len(), dec.Len, "%v %v: % x", mode, inst, code.Bytes())
					got := dec.Op.String()
					assert.True(got == name || got == name+"_XMM", "%v %v: % x decoded as %v", mode, inst, code.Bytes(), got)
				}
			}
		}
	}

	assert.Greater(legacy, 1000)
	assert.Greater(vex, 500)
}
