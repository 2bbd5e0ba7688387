package x86

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatabaseLoad(t *testing.T) {
	assert := assert.New(t)

	db, err := loadDatabase()
	assert.NoError(err)
	if err != nil {
		return
	}

	assert.Equal(SignatureCount(), db.count)
	assert.Less(1000, db.count)

	for m := range Mnemonics() {
		for _, sig := range Signatures(m) {
			assert.Equal(m, sig.Mnemonic)
			assert.LessOrEqual(len(sig.Slots), MaxOperands)
		}
	}

	for _, m := range []Mnemonic{
		ADD, MOV, LEA, JMP, JE, SETE, CMOVE, PUSH, POP, CALL, RET, NOP,
		FADD, FLD, EMMS, PADDB, ADDPS, VADDPS, VFMADD231PS, KMOVW, ANDN,
		VPADDD, VPTERNLOGD, CPUID, SYSCALL, MOVSB,
	} {
		assert.NotEmpty(Signatures(m), m.String())
	}
	assert.Empty(Signatures(Mnemonic(0)))
}

func TestDatabaseOrder(t *testing.T) {
	assert := assert.New(t)

	for m := range Mnemonics() {
		sigs := Signatures(m)
		for n := 1; n < len(sigs); n++ {
			assert.Less(sigs[n-1].Order, sigs[n].Order, m.String())
		}
	}
}

func TestSignatureParse(t *testing.T) {
	assert := assert.New(t)

	sig, err := newSignature(row{ADD, "r/m64, simm32", "MI", "REX.W + 81 /0 id", FLAG_LOCK}, 0)
	assert.NoError(err)
	assert.Equal(ENC_LEGACY, sig.Encoding.Kind)
	assert.True(sig.Encoding.RexW)
	assert.Equal(byte(0x81), sig.Encoding.Opcode[0])
	assert.Equal(int8(0), sig.Encoding.Digit)
	assert.Equal(1, sig.Encoding.Imms)
	assert.Equal(64, sig.OpSize)
	assert.Equal(SLOT_RM, sig.Slots[0].Kind)
	assert.Equal(FAMILY_GP64, sig.Slots[0].Family)
	assert.Equal(EXT_SIGN, sig.Slots[1].Ext)
	assert.Equal(32, sig.Slots[1].Width)

	sig, err = newSignature(row{VADDPS, "zmm1 {k1}{z}, zmm2, zmm3/m512/m32bcst{er}", "RVM", "EVEX.512.0F.W0 58 /r", T_FV}, 0)
	assert.NoError(err)
	assert.Equal(ENC_EVEX, sig.Encoding.Kind)
	assert.Equal(512, sig.Encoding.L)
	assert.Equal(MAP_0F, sig.Encoding.Map)
	assert.Equal(int8(0), sig.Encoding.W)
	assert.Equal(TUPLE_FV, sig.Flags.Tuple())
	assert.True(sig.Slots[0].Mask)
	assert.True(sig.Slots[0].Zero)
	assert.Equal(PLACE_VVVV, sig.Slots[1].Place)
	assert.Equal(32, sig.Slots[2].Bcst)
	assert.Equal(512, sig.Slots[2].MemWidth)
	assert.True(sig.Slots[2].Round)

	sig, err = newSignature(row{CRC32, "r32, r/m16", "RM", "66 F2 0F 38 F1 /r", 0}, 0)
	assert.NoError(err)
	assert.True(sig.Encoding.OpSize16)
	assert.Equal(byte(0xf2), sig.Encoding.Prefix)
	assert.Equal(MAP_0F38, sig.Encoding.Map)

	var errTable *ErrTable
	for _, bad := range []row{
		{ADD, "r/m32, imm32", "M", "81 /0 id", 0},
		{ADD, "r/m32, imm32", "MI", "81 /0", 0},
		{ADD, "r32, r/m32", "RM", "03", 0},
		{ADD, "bogus", "M", "03 /r", 0},
		{ADD, "r32", "O", "B8 id", 0},
		{ADD, "xmm1, xmm2", "RV", "66 0F 58 /r", 0},
		{ADD, "", "", "VEX.128.66.WIG 58", 0},
	} {
		_, err = newSignature(bad, 0)
		assert.True(errors.As(err, &errTable), bad.operands)
	}
}

func TestLookup(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		name     string
		mnemonic Mnemonic
	}{
		{"add", ADD},
		{"ADD", ADD},
		{"jz", JE},
		{"JNZ", JNE},
		{"setnae", SETB},
		{"cmovnle", CMOVG},
		{"sal", SHL},
		{"loopz", LOOPE},
		{"wait", FWAIT},
		{"vfmadd231ps", VFMADD231PS},
	}

	for _, entry := range table {
		m, err := Lookup(entry.name)
		assert.NoError(err, entry.name)
		assert.Equal(entry.mnemonic, m, entry.name)
	}

	_, err := Lookup("frobnicate")
	assert.ErrorIs(err, ErrInvalidInstruction)
	assert.Equal(ErrMnemonic("frobnicate"), err)

	assert.Equal("vaddps", VADDPS.String())
	assert.Equal("(bad)", Mnemonic(0).String())
	assert.False(Mnemonic(0).IsValid())
}

func TestNames(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("gp64", FAMILY_GP64.String())
	assert.Equal("k", FAMILY_MASK.String())
	assert.Equal("Family(99)", Family(99).String())
	assert.Equal("rel", FIXUP_REL.String())
	assert.Equal("rn-sae", ROUND_RN.String())
	assert.Equal("r/m", SLOT_RM.String())
	assert.Equal("simm", EXT_SIGN.String())
	assert.Equal("V", PLACE_VVVV.String())
	assert.Equal("evex", ENC_EVEX.String())
	assert.Equal("0F 38", MAP_0F38.String())
	assert.Equal("tuple1 scalar", TUPLE_T1S.String())
	assert.Equal("memory", OPERAND_MEMORY.String())
	assert.Equal("OperandKind(0)", OperandKind(0).String())

	// The operand encoding letters parse back to their places.
	for letter, place := range placeLetters {
		assert.Equal(string(letter), place.String())
	}
}
