package x86

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

type encodeCase struct {
	name string
	mode Mode
	inst *Instruction
	want []byte
}

func k1z(inst *Instruction) *Instruction {
	inst.Mask = K1
	inst.Zeroing = true
	return inst
}

func bcst(inst *Instruction) *Instruction {
	inst.Broadcast = true
	return inst
}

func round(rc Rounding, inst *Instruction) *Instruction {
	inst.Rounding = rc
	return inst
}

func prefix(p Prefix, inst *Instruction) *Instruction {
	inst.Prefix = p
	return inst
}

var encodeCases = []encodeCase{
	{"add eax, 1", MODE_64, Inst(ADD, EAX, Imm(1)), []byte{0x83, 0xc0, 0x01}},
	{"mov eax, 0", MODE_64, Inst(MOV, EAX, Imm(0)), []byte{0xb8, 0x00, 0x00, 0x00, 0x00}},
	{"cmp eax, 10", MODE_64, Inst(CMP, EAX, Imm(10)), []byte{0x83, 0xf8, 0x0a}},
	{"add eax, 0xffffffff", MODE_64, Inst(ADD, EAX, Imm(0xffffffff)), []byte{0x83, 0xc0, 0xff}},
	{"add eax, 0x1000", MODE_64, Inst(ADD, EAX, Imm(0x1000)), []byte{0x05, 0x00, 0x10, 0x00, 0x00}},
	{"add rax, rbx", MODE_64, Inst(ADD, RAX, RBX), []byte{0x48, 0x01, 0xd8}},
	{"xor eax, eax", MODE_64, Inst(XOR, EAX, EAX), []byte{0x31, 0xc0}},
	{"test eax, eax", MODE_64, Inst(TEST, EAX, EAX), []byte{0x85, 0xc0}},
	{"mov rax, imm64", MODE_64, Inst(MOV, RAX, Imm(0x1122334455667788)), []byte{0x48, 0xb8, 0x88, 0x77, 0x66, 0x55, 0x44, 0x33, 0x22, 0x11}},
	{"mov rax, -1", MODE_64, Inst(MOV, RAX, Imm(-1)), []byte{0x48, 0xc7, 0xc0, 0xff, 0xff, 0xff, 0xff}},
	{"mov r8d, 1", MODE_64, Inst(MOV, R8D, Imm(1)), []byte{0x41, 0xb8, 0x01, 0x00, 0x00, 0x00}},
	{"mov ax, 1", MODE_64, Inst(MOV, AX, Imm(1)), []byte{0x66, 0xb8, 0x01, 0x00}},
	{"mov sil, al", MODE_64, Inst(MOV, SIL, AL), []byte{0x40, 0x88, 0xc6}},
	{"mov ah, al", MODE_64, Inst(MOV, AH, AL), []byte{0x88, 0xc4}},
	{"movzx eax, al", MODE_64, Inst(MOVZX, EAX, AL), []byte{0x0f, 0xb6, 0xc0}},
	{"mov [rsp+8], eax", MODE_64, Inst(MOV, Mem(RSP, 8), EAX), []byte{0x89, 0x44, 0x24, 0x08}},
	{"mov [rbp], eax", MODE_64, Inst(MOV, Mem(RBP, 0), EAX), []byte{0x89, 0x45, 0x00}},
	{"mov [r13], eax", MODE_64, Inst(MOV, Mem(R13, 0), EAX), []byte{0x41, 0x89, 0x45, 0x00}},
	{"mov [r12], eax", MODE_64, Inst(MOV, Mem(R12, 0), EAX), []byte{0x41, 0x89, 0x04, 0x24}},
	{"mov eax, [rbx+0x100]", MODE_64, Inst(MOV, EAX, Mem(RBX, 0x100)), []byte{0x8b, 0x83, 0x00, 0x01, 0x00, 0x00}},
	{"mov eax, [0x1234]", MODE_64, Inst(MOV, EAX, Memory{Disp: 0x1234}), []byte{0x8b, 0x04, 0x25, 0x34, 0x12, 0x00, 0x00}},
	{"mov eax, [rip+0x10]", MODE_64, Inst(MOV, EAX, Mem(RIP, 0x10)), []byte{0x8b, 0x05, 0x10, 0x00, 0x00, 0x00}},
	{"mov eax, [eax]", MODE_64, Inst(MOV, EAX, Mem(EAX, 0)), []byte{0x67, 0x8b, 0x00}},
	{"mov eax, fs:[rax]", MODE_64, Inst(MOV, EAX, Memory{Segment: FS, Base: RAX}), []byte{0x64, 0x8b, 0x00}},
	{"lea rax, [rbx+rcx*4+16]", MODE_64, Inst(LEA, RAX, MemIndex(RBX, RCX, 4, 16)), []byte{0x48, 0x8d, 0x44, 0x8b, 0x10}},
	{"lea rax, [r8+r9*8+0x100]", MODE_64, Inst(LEA, RAX, MemIndex(R8, R9, 8, 0x100)), []byte{0x4b, 0x8d, 0x84, 0xc8, 0x00, 0x01, 0x00, 0x00}},
	{"lea eax, [rcx*2]", MODE_64, Inst(LEA, EAX, MemIndex(Register{}, RCX, 2, 0)), []byte{0x8d, 0x04, 0x4d, 0x00, 0x00, 0x00, 0x00}},
	{"push rbp", MODE_64, Inst(PUSH, RBP), []byte{0x55}},
	{"push r12", MODE_64, Inst(PUSH, R12), []byte{0x41, 0x54}},
	{"pop rbp", MODE_64, Inst(POP, RBP), []byte{0x5d}},
	{"push [rax]", MODE_64, Inst(PUSH, Mem(RAX, 0)), []byte{0xff, 0x30}},
	{"push 1", MODE_64, Inst(PUSH, Imm(1)), []byte{0x6a, 0x01}},
	{"ret", MODE_64, Inst(RET), []byte{0xc3}},
	{"shl eax, 1", MODE_64, Inst(SHL, EAX, Imm(1)), []byte{0xd1, 0xe0}},
	{"shl eax, cl", MODE_64, Inst(SHL, EAX, CL), []byte{0xd3, 0xe0}},
	{"sar rax, 3", MODE_64, Inst(SAR, RAX, Imm(3)), []byte{0x48, 0xc1, 0xf8, 0x03}},
	{"neg rax", MODE_64, Inst(NEG, RAX), []byte{0x48, 0xf7, 0xd8}},
	{"inc eax", MODE_64, Inst(INC, EAX), []byte{0xff, 0xc0}},
	{"imul eax, ecx, 10", MODE_64, Inst(IMUL, EAX, ECX, Imm(10)), []byte{0x6b, 0xc1, 0x0a}},
	{"sete al", MODE_64, Inst(SETE, AL), []byte{0x0f, 0x94, 0xc0}},
	{"cmovne eax, ecx", MODE_64, Inst(CMOVNE, EAX, ECX), []byte{0x0f, 0x45, 0xc1}},
	{"xchg eax, ecx", MODE_64, Inst(XCHG, EAX, ECX), []byte{0x91}},
	{"xchg eax, eax", MODE_64, Inst(XCHG, EAX, EAX), []byte{0x87, 0xc0}},
	{"syscall", MODE_64, Inst(SYSCALL), []byte{0x0f, 0x05}},
	{"cpuid", MODE_64, Inst(CPUID), []byte{0x0f, 0xa2}},
	{"lock add dword [rax], 1", MODE_64, prefix(PREFIX_LOCK, Inst(ADD, Mem(RAX, 0).Sized(32), Imm(1))), []byte{0xf0, 0x83, 0x00, 0x01}},
	{"rep movsb", MODE_64, prefix(PREFIX_REP, Inst(MOVSB)), []byte{0xf3, 0xa4}},

	{"addps xmm0, xmm1", MODE_64, Inst(ADDPS, XMM0, XMM1), []byte{0x0f, 0x58, 0xc1}},
	{"addsd xmm8, xmm1", MODE_64, Inst(ADDSD, XMM8, XMM1), []byte{0xf2, 0x44, 0x0f, 0x58, 0xc1}},
	{"movaps xmm0, xmm1", MODE_64, Inst(MOVAPS, XMM0, XMM1), []byte{0x0f, 0x28, 0xc1}},
	{"movaps xmm0, [rax]", MODE_64, Inst(MOVAPS, XMM0, Mem(RAX, 0)), []byte{0x0f, 0x28, 0x00}},

	{"vaddps ymm0, ymm1, ymm2", MODE_64, Inst(VADDPS, YMM0, YMM1, YMM2), []byte{0xc5, 0xf4, 0x58, 0xc2}},
	{"vaddps xmm0, xmm1, xmm8", MODE_64, Inst(VADDPS, XMM0, XMM1, XMM8), []byte{0xc4, 0xc1, 0x70, 0x58, 0xc0}},
	{"andn eax, ebx, ecx", MODE_64, Inst(ANDN, EAX, EBX, ECX), []byte{0xc4, 0xe2, 0x60, 0xf2, 0xc1}},

	{"vaddps zmm0, zmm1, zmm2", MODE_64, Inst(VADDPS, ZMM0, ZMM1, ZMM2), []byte{0x62, 0xf1, 0x74, 0x48, 0x58, 0xc2}},
	{"vaddps zmm0 {k1}{z}, zmm1, zmm2", MODE_64, k1z(Inst(VADDPS, ZMM0, ZMM1, ZMM2)), []byte{0x62, 0xf1, 0x74, 0xc9, 0x58, 0xc2}},
	{"vaddps zmm0, zmm1, [rax+64]", MODE_64, Inst(VADDPS, ZMM0, ZMM1, Mem(RAX, 64)), []byte{0x62, 0xf1, 0x74, 0x48, 0x58, 0x40, 0x01}},
	{"vaddps zmm0, zmm1, [rax+4]{1to16}", MODE_64, bcst(Inst(VADDPS, ZMM0, ZMM1, Mem(RAX, 4))), []byte{0x62, 0xf1, 0x74, 0x58, 0x58, 0x40, 0x01}},
	{"vaddps zmm0, zmm1, zmm2, {rz-sae}", MODE_64, round(ROUND_RZ, Inst(VADDPS, ZMM0, ZMM1, ZMM2)), []byte{0x62, 0xf1, 0x74, 0x78, 0x58, 0xc2}},
	{"vaddps xmm16, xmm1, xmm2", MODE_64, Inst(VADDPS, XMM16, XMM1, XMM2), []byte{0x62, 0xe1, 0x74, 0x08, 0x58, 0xc2}},

	{"inc ecx (32)", MODE_32, Inst(INC, ECX), []byte{0x41}},
	{"push ebp (32)", MODE_32, Inst(PUSH, EBP), []byte{0x55}},
	{"mov eax, [0x1000] (32)", MODE_32, Inst(MOV, EAX, Memory{Disp: 0x1000}), []byte{0x8b, 0x05, 0x00, 0x10, 0x00, 0x00}},
	{"mov eax, [0xfffffff0] (32)", MODE_32, Inst(MOV, EAX, Memory{Disp: 0xfffffff0}), []byte{0x8b, 0x05, 0xf0, 0xff, 0xff, 0xff}},
	{"push [eax] (32)", MODE_32, Inst(PUSH, Mem(EAX, 0)), []byte{0xff, 0x30}},
	{"jecxz (32)", MODE_32, Inst(JECXZ, Absolute(0x1000)), []byte{0xe3, 0xfe}},
}

func TestEncodeGolden(t *testing.T) {
	for _, entry := range encodeCases {
		t.Run(entry.name, func(t *testing.T) {
			assert := assert.New(t)

			code, err := EncodeAt(entry.mode, 0x1000, entry.inst)
			assert.NoError(err)
			if diff := cmp.Diff(entry.want, code.Bytes()); diff != "" {
				t.Errorf("%v: (-want +got)\n%v", entry.inst, diff)
			}
			assert.Empty(code.Fixups())
		})
	}
}

func TestEncodeBranch(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		inst *Instruction
		want []byte
	}{
		{Inst(JMP, Absolute(0x1000)), []byte{0xeb, 0xfe}},
		{Inst(JMP, Absolute(0x1081)), []byte{0xeb, 0x7f}},
		{Inst(JMP, Absolute(0x1082)), []byte{0xe9, 0x7d, 0x00, 0x00, 0x00}},
		{Inst(JMP, Absolute(0x2000)), []byte{0xe9, 0xfb, 0x0f, 0x00, 0x00}},
		{Inst(JL, Absolute(0x0ffb)), []byte{0x7c, 0xf9}},
		{Inst(JL, Absolute(0x0f00)), []byte{0x0f, 0x8c, 0xfa, 0xfe, 0xff, 0xff}},
		{Inst(CALL, Absolute(0x1005)), []byte{0xe8, 0x00, 0x00, 0x00, 0x00}},
		{Inst(LOOP, Absolute(0x1000)), []byte{0xe2, 0xfe}},
	}

	for _, entry := range table {
		code, err := EncodeAt(MODE_64, 0x1000, entry.inst)
		assert.NoError(err, entry.inst.String())
		if diff := cmp.Diff(entry.want, code.Bytes()); diff != "" {
			t.Errorf("%v: (-want +got)\n%v", entry.inst, diff)
		}
	}

	_, err := EncodeAt(MODE_64, 0x1000, Inst(LOOP, Absolute(0x2000)))
	assert.ErrorIs(err, ErrOperandOutOfRange)

	_, err = EncodeAt(MODE_64, 0x1000, Inst(JMP, Label(1)))
	assert.ErrorIs(err, ErrUnresolvedTarget)
}

func TestEncodeFixups(t *testing.T) {
	assert := assert.New(t)

	// RIP-relative label reference.
	sel, err := Match(MODE_64, Inst(LEA, RAX, MemLabel(7, 4)))
	assert.NoError(err)
	assert.Equal([]byte{0x48, 0x8d, 0x05, 0, 0, 0, 0}, sel.Best.Code.Bytes())
	assert.Equal([]Fixup{{Offset: 3, Width: 32, Kind: FIXUP_REL, Target: Label(7), Addend: 4}}, sel.Best.Code.Fixups())

	// Absolute label reference in 32-bit mode.
	sel, err = Match(MODE_32, Inst(MOV, EAX, MemLabel(7, 0)))
	assert.NoError(err)
	assert.Equal([]byte{0x8b, 0x05, 0, 0, 0, 0}, sel.Best.Code.Bytes())
	assert.Equal([]Fixup{{Offset: 2, Width: 32, Kind: FIXUP_ABS, Target: Label(7)}}, sel.Best.Code.Fixups())

	// Pointer immediates.
	sel, err = Match(MODE_64, Inst(MOV, RAX, Pointer{Symbol: 3, Addend: 8}))
	assert.NoError(err)
	assert.Equal(10, sel.Best.Code.Len())
	assert.Equal([]Fixup{{Offset: 2, Width: 64, Kind: FIXUP_ABS, Target: Symbol(3), Addend: 8}}, sel.Best.Code.Fixups())

	sel, err = Match(MODE_64, Inst(MOV, RAX, Pointer{Label: 2, Width: 32}))
	assert.NoError(err)
	assert.Equal([]byte{0x48, 0xc7, 0xc0, 0, 0, 0, 0}, sel.Best.Code.Bytes())
	assert.Equal([]Fixup{{Offset: 3, Width: 32, Kind: FIXUP_ABS, Target: Label(2), Signed: true}}, sel.Best.Code.Fixups())

	// External call.
	sel, err = Match(MODE_64, Inst(CALL, Symbol(1)))
	assert.NoError(err)
	assert.False(sel.IsRelaxable())
	assert.Equal([]Fixup{{Offset: 1, Width: 32, Kind: FIXUP_REL, Target: Symbol(1)}}, sel.Best.Code.Fixups())

	// Symbol fixups survive EncodeAt.
	code, err := EncodeAt(MODE_64, 0x1000, Inst(CALL, Symbol(1)))
	assert.NoError(err)
	assert.Len(code.Fixups(), 1)
}

func TestFixupValue(t *testing.T) {
	assert := assert.New(t)

	rel := Fixup{Width: 8, Kind: FIXUP_REL}
	assert.Equal(int64(-5), rel.Value(0x1002, 0x1007))
	assert.True(rel.Fits(-128))
	assert.False(rel.Fits(128))

	abs := Fixup{Width: 32, Kind: FIXUP_ABS, Addend: 4}
	assert.Equal(int64(0x2004), abs.Value(0x2000, 0x1000))
	assert.True(abs.Fits(0xffff_ffff))
	assert.False(abs.Fits(-1))

	abs.Signed = true
	assert.False(abs.Fits(0xffff_ffff))
	assert.True(abs.Fits(-1))

	buf := make([]byte, 6)
	Fixup{Offset: 2, Width: 32}.Put(buf, -2)
	assert.Equal([]byte{0, 0, 0xfe, 0xff, 0xff, 0xff}, buf)
}
