package x86

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchErrors(t *testing.T) {
	table := []struct {
		name string
		mode Mode
		inst *Instruction
		err  error
	}{
		{"add xmm0, rax", MODE_64, Inst(ADD, XMM0, RAX), ErrInvalidInstruction},
		{"add eax", MODE_64, Inst(ADD, EAX), ErrInvalidInstruction},
		{"bad mnemonic", MODE_64, Inst(Mnemonic(0)), ErrInvalidInstruction},
		{"nil operand", MODE_64, Inst(ADD, EAX, nil), ErrInvalidInstruction},
		{"add [rax], 1", MODE_64, Inst(ADD, Mem(RAX, 0), Imm(1)), ErrAmbiguousOperandSize},
		{"inc [rax]", MODE_64, Inst(INC, Mem(RAX, 0)), ErrAmbiguousOperandSize},
		{"add al, 0x1000", MODE_64, Inst(ADD, AL, Imm(0x1000)), ErrOperandOutOfRange},
		{"shl eax, 0x100", MODE_64, Inst(SHL, EAX, Imm(0x100)), ErrOperandOutOfRange},
		{"add rax, 0x80000000", MODE_64, Inst(ADD, RAX, Imm(0x8000_0000)), ErrOperandOutOfRange},
		{"mov eax, [rsp*2]", MODE_64, Inst(MOV, EAX, MemIndex(RAX, RSP, 2, 0)), ErrInvalidAddressing},
		{"mov eax, [rax+ecx]", MODE_64, Inst(MOV, EAX, MemIndex(RAX, ECX, 1, 0)), ErrInvalidAddressing},
		{"mov eax, [ax]", MODE_64, Inst(MOV, EAX, Mem(AX, 0)), ErrInvalidAddressing},
		{"mov eax, [rip+rax]", MODE_64, Inst(MOV, EAX, MemIndex(RIP, RAX, 1, 0)), ErrInvalidAddressing},
		{"mov eax, [rax*3]", MODE_64, Inst(MOV, EAX, MemIndex(RBX, RAX, 3, 0)), ErrInvalidAddressing},
		{"mov eax, [rax] (32)", MODE_32, Inst(MOV, EAX, Mem(RAX, 0)), ErrInvalidAddressing},
		{"mov rax, rbx (32)", MODE_32, Inst(MOV, RAX, RBX), ErrInvalidInstruction},
		{"syscall (32)", MODE_32, Inst(SYSCALL), ErrInvalidInstruction},
		{"mov ah, sil", MODE_64, Inst(MOV, AH, SIL), ErrUnencodableRegisterCombination},
		{"movzx r8d, ah", MODE_64, Inst(MOVZX, R8D, AH), ErrUnencodableRegisterCombination},
		{"lock add eax, 1", MODE_64, prefix(PREFIX_LOCK, Inst(ADD, EAX, Imm(1))), ErrInvalidInstruction},
		{"lock mov [rax], eax", MODE_64, prefix(PREFIX_LOCK, Inst(MOV, Mem(RAX, 0), EAX)), ErrInvalidInstruction},
		{"rep add eax, ecx", MODE_64, prefix(PREFIX_REP, Inst(ADD, EAX, ECX)), ErrInvalidInstruction},
		{"add eax, ecx {k1}", MODE_64, &Instruction{Mnemonic: ADD, Operands: []Operand{EAX, ECX}, Mask: K1}, ErrInvalidInstruction},
		{"vaddps zmm0 {z}", MODE_64, &Instruction{Mnemonic: VADDPS, Operands: []Operand{ZMM0, ZMM1, ZMM2}, Zeroing: true}, ErrInvalidInstruction},
		{"vaddps zmm0 {k0}", MODE_64, &Instruction{Mnemonic: VADDPS, Operands: []Operand{ZMM0, ZMM1, ZMM2}, Mask: K0}, ErrInvalidInstruction},
		{"vaddps zmm0, zmm1, [rax], {rn-sae}", MODE_64, round(ROUND_RN, Inst(VADDPS, ZMM0, ZMM1, Mem(RAX, 0))), ErrInvalidInstruction},
		{"vaddps zmm0, zmm1, zmm2 {1to16}", MODE_64, bcst(Inst(VADDPS, ZMM0, ZMM1, ZMM2)), ErrInvalidInstruction},
		{"vaddps ymm0, ymm1, ymm2, {rn-sae}", MODE_64, round(ROUND_RN, Inst(VADDPS, YMM0, YMM1, YMM2)), ErrInvalidInstruction},
		{"call rel8 symbol", MODE_64, Inst(JRCXZ, Symbol(1)), ErrInvalidInstruction},
		{"xmm16 (32)", MODE_32, Inst(VADDPS, XMM16, XMM1, XMM2), ErrInvalidInstruction},
	}

	for _, entry := range table {
		t.Run(entry.name, func(t *testing.T) {
			assert := assert.New(t)

			_, err := Match(entry.mode, entry.inst)
			assert.ErrorIs(err, entry.err)

			var build *ErrBuild
			assert.True(errors.As(err, &build))
		})
	}
}

func TestMatchSelection(t *testing.T) {
	assert := assert.New(t)

	// Register forms prefer the shortest encoding.
	sel, err := Match(MODE_64, Inst(ADD, EAX, Imm(1)))
	assert.NoError(err)
	assert.Equal("add r/m32, simm8 ; 83 /0 ib", sel.Best.Signature.String())
	assert.False(sel.IsRelaxable())

	// Legacy and VEX are preferred over EVEX.
	sel, err = Match(MODE_64, Inst(VADDPS, XMM0, XMM1, XMM2))
	assert.NoError(err)
	assert.Equal(ENC_VEX, sel.Best.Signature.Encoding.Kind)

	// EVEX only attributes force EVEX.
	sel, err = Match(MODE_64, &Instruction{Mnemonic: VADDPS, Operands: []Operand{XMM0, XMM1, XMM2}, Mask: K2})
	assert.NoError(err)
	assert.True(sel.Best.Signature.IsEvex())

	// Branches to labels carry the widest form and the shorter ones.
	sel, err = Match(MODE_64, Inst(JMP, Label(1)))
	assert.NoError(err)
	assert.Equal(32, sel.Best.Signature.Encoding.Rel)
	assert.Equal(5, sel.Best.Code.Len())
	assert.Len(sel.Short, 1)
	assert.Equal(8, sel.Short[0].Signature.Encoding.Rel)
	assert.Equal(2, sel.Short[0].Code.Len())

	sel, err = Match(MODE_64, Inst(JE, Label(1)))
	assert.NoError(err)
	assert.Equal(6, sel.Best.Code.Len())
	assert.Len(sel.Short, 1)

	// rel8 only branches have nothing to relax.
	sel, err = Match(MODE_64, Inst(JRCXZ, Label(1)))
	assert.NoError(err)
	assert.Equal(8, sel.Best.Signature.Encoding.Rel)
	assert.False(sel.IsRelaxable())

	// Unsized memory uses the default form.
	sel, err = Match(MODE_64, Inst(JMP, Mem(RAX, 0)))
	assert.NoError(err)
	assert.Equal([]byte{0xff, 0x20}, sel.Best.Code.Bytes())

	// Sized memory resolves the ambiguity.
	sel, err = Match(MODE_64, Inst(ADD, Mem(RAX, 0).Sized(8), Imm(1)))
	assert.NoError(err)
	assert.Equal([]byte{0x80, 0x00, 0x01}, sel.Best.Code.Bytes())

	// Immediate width hint.
	sel, err = Match(MODE_64, Inst(ADD, EAX, Immediate{Value: 1, Width: 32}))
	assert.NoError(err)
	assert.Equal([]byte{0x05, 0x01, 0x00, 0x00, 0x00}, sel.Best.Code.Bytes())
}

func TestEncodeSignature(t *testing.T) {
	assert := assert.New(t)

	inst := Inst(ADD, EAX, Imm(1))
	for _, sig := range Signatures(ADD) {
		code, err := Encode(MODE_64, inst, sig)
		if sig.String() == "add EAX, imm32 ; 05 id" {
			assert.NoError(err)
			assert.Equal([]byte{0x05, 0x01, 0, 0, 0}, code.Bytes())
		}
		if sig.Slots[0].Family == FAMILY_GP8 {
			assert.ErrorIs(err, ErrInvalidInstruction)
		}
	}
}
