// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package x86

import (
	"math"
)

// address is an encoded memory operand.
type address struct {
	mod, rm  byte
	sib      byte
	hasSib   bool
	disp     int64
	dispSize int // In bytes: 0, 1 or 4.
	fixup    Fixup
	hasFixup bool
	addr32   bool // Needs the 0x67 address size prefix.
}

// encoder holds the operands of an instruction bound to their placements.
type encoder struct {
	mode Mode
	inst *Instruction
	sig  *Signature
	enc  *Encoding
	code Code

	reg     Register
	rm      Register
	vvvv    Register
	opreg   Register
	is4     Register
	mem     *Memory
	memSlot *Slot
	addr    address
}

// encode emits the bytes of a checked instruction.
func encode(mode Mode, inst *Instruction, sig *Signature) (code Code, err error) {
	e := &encoder{mode: mode, inst: inst, sig: sig, enc: &sig.Encoding}

	e.bind()

	if e.mem != nil {
		e.addr, err = e.address(*e.mem)
		if err != nil {
			return
		}
	}

	for _, step := range []func() error{
		e.prefixes,
		e.opcode,
		e.modrm,
		e.immediates,
	} {
		err = step()
		if err != nil {
			return
		}
	}

	code = e.code
	return
}

// bind assigns each operand to its encoding place.
func (e *encoder) bind() {
	for n := range e.sig.Slots {
		slot := &e.sig.Slots[n]
		op := e.inst.Operands[n]
		switch slot.Place {
		case PLACE_REG:
			e.reg, _ = op.(Register)
		case PLACE_RM:
			switch op := op.(type) {
			case Register:
				e.rm = op
			case Memory:
				e.mem = &op
				e.memSlot = slot
			}
		case PLACE_VVVV:
			e.vvvv, _ = op.(Register)
		case PLACE_OPCODE:
			e.opreg, _ = op.(Register)
		case PLACE_IS4:
			e.is4, _ = op.(Register)
		}
	}
}

var scaleBits = map[uint8]byte{1: 0, 2: 1, 4: 2, 8: 3}

// addressWidth returns the address width implied by a base or index.
func addressWidth(reg Register) (width int, err error) {
	if !reg.IsValid() {
		err = ErrInvalidAddressing
		return
	}
	switch reg.Family {
	case FAMILY_GP32:
		width = 32
	case FAMILY_GP64, FAMILY_RIP:
		width = 64
	default:
		err = ErrInvalidAddressing
	}
	return
}

// disp8Scale returns the EVEX compressed displacement factor, or zero if
// the short displacement form must not be used.
func (e *encoder) disp8Scale() int64 {
	if !e.sig.IsEvex() {
		return 1
	}
	vl := int64(e.enc.L / 8)
	if vl == 0 {
		vl = 16
	}
	element := int64(e.memSlot.Bcst / 8)
	switch e.sig.Flags.Tuple() {
	case TUPLE_FV:
		if e.inst.Broadcast {
			return element
		}
		return vl
	case TUPLE_HV:
		if e.inst.Broadcast {
			return element
		}
		return vl / 2
	case TUPLE_FVM:
		return vl
	case TUPLE_HVM:
		return vl / 2
	case TUPLE_QVM:
		return vl / 4
	case TUPLE_OVM:
		return vl / 8
	case TUPLE_M128:
		return 16
	case TUPLE_DUP:
		if vl == 16 {
			return 8
		}
		return vl
	case TUPLE_T1S, TUPLE_T1F, TUPLE_T2, TUPLE_T4, TUPLE_T8:
		return int64(e.memSlot.MemWidth / 8)
	}
	return 0
}

// address encodes a memory operand into ModRM, SIB and displacement.
func (e *encoder) address(mem Memory) (a address, err error) {
	base, index := mem.Base, mem.Index

	if mem.Segment != (Register{}) && (mem.Segment.Family != FAMILY_SEGMENT || !mem.Segment.IsValid()) {
		err = ErrInvalidAddressing
		return
	}
	if mem.Label != 0 && mem.Symbol != 0 {
		err = ErrInvalidAddressing
		return
	}

	width := 0
	for _, reg := range []Register{base, index} {
		if reg == (Register{}) {
			continue
		}
		var w int
		w, err = addressWidth(reg)
		if err != nil {
			return
		}
		if width != 0 && w != width {
			err = ErrInvalidAddressing
			return
		}
		width = w
	}

	hasBase := base != (Register{})
	hasIndex := index != (Register{})

	scale := mem.Scale
	if scale == 0 {
		scale = 1
	}
	if _, ok := scaleBits[scale]; !ok || (!hasIndex && scale != 1) {
		err = ErrInvalidAddressing
		return
	}

	switch {
	case index.Family == FAMILY_RIP,
		hasIndex && index.Index == 4,
		base.Family == FAMILY_RIP && hasIndex,
		e.mode == MODE_32 && width == 64,
		e.mode == MODE_32 && (base.Index >= 8 || index.Index >= 8):
		err = ErrInvalidAddressing
		return
	}
	a.addr32 = e.mode == MODE_64 && width == 32

	var target Operand
	switch {
	case mem.Label != 0:
		target = mem.Label
	case mem.Symbol != 0:
		target = mem.Symbol
	}

	disp := mem.Disp
	if target == nil && !fitsInt32(disp) {
		if e.mode == MODE_32 && !hasBase && !hasIndex && disp >= 0 && disp <= math.MaxUint32 {
			disp = int64(int32(uint32(disp)))
		} else {
			err = ErrOperandOutOfRange
			return
		}
	}

	absolute := func() {
		a.dispSize = 4
		if target != nil {
			a.hasFixup = true
			a.fixup = Fixup{
				Width:  32,
				Kind:   FIXUP_ABS,
				Target: target,
				Addend: mem.Disp,
				Signed: e.mode == MODE_64,
			}
		} else {
			a.disp = disp
		}
	}

	switch {
	case base.Family == FAMILY_RIP || mem.isRelative(e.mode):
		a.mod, a.rm = 0, 5
		a.dispSize = 4
		if target != nil {
			a.hasFixup = true
			a.fixup = Fixup{Width: 32, Kind: FIXUP_REL, Target: target, Addend: mem.Disp}
		} else {
			a.disp = disp
		}
	case !hasBase && !hasIndex:
		a.mod = 0
		if e.mode == MODE_64 {
			a.rm = 4
			a.hasSib = true
			a.sib = 0x25
		} else {
			a.rm = 5
		}
		absolute()
	case !hasBase:
		a.mod, a.rm = 0, 4
		a.hasSib = true
		a.sib = scaleBits[scale]<<6 | index.low3()<<3 | 5
		absolute()
	default:
		switch n := e.disp8Scale(); {
		case target != nil:
			absolute()
		case disp == 0 && base.low3() != 5:
			a.dispSize = 0
		case n != 0 && disp%n == 0 && fitsSigned(disp/n, 8):
			a.dispSize = 1
			a.disp = disp / n
		default:
			a.dispSize = 4
			a.disp = disp
		}
		switch a.dispSize {
		case 0:
			a.mod = 0
		case 1:
			a.mod = 1
		default:
			a.mod = 2
		}
		if hasIndex || base.low3() == 4 {
			a.rm = 4
			a.hasSib = true
			idx := byte(4)
			if hasIndex {
				idx = index.low3()
			}
			a.sib = scaleBits[scale]<<6 | idx<<3 | base.low3()
		} else {
			a.rm = base.low3()
		}
	}

	return
}

// registers returns every register operand of the instruction.
func (e *encoder) registers() (regs []Register) {
	for _, op := range e.inst.Operands {
		if reg, ok := op.(Register); ok {
			regs = append(regs, reg)
		}
	}
	return
}

// extension returns the REX style R, X and B register extension bits.
func (e *encoder) extension() (r, x, b byte) {
	if e.enc.Digit < 0 {
		r = e.reg.bit3()
	}
	switch {
	case e.mem != nil:
		x = e.mem.Index.bit3()
		if e.mem.Base.Family != FAMILY_RIP {
			b = e.mem.Base.bit3()
		}
	case e.enc.PlusR:
		b = e.opreg.bit3()
	default:
		b = e.rm.bit3()
	}
	return
}

// prefixes emits the legacy prefixes and the REX, VEX or EVEX prefix.
func (e *encoder) prefixes() (err error) {
	inst := e.inst
	code := &e.code

	var legacy []byte
	if inst.Prefix&PREFIX_LOCK != 0 {
		legacy = append(legacy, 0xf0)
	}
	if inst.Prefix&PREFIX_REP != 0 {
		legacy = append(legacy, 0xf3)
	}
	if inst.Prefix&PREFIX_REPNE != 0 {
		legacy = append(legacy, 0xf2)
	}
	if e.mem != nil && e.mem.Segment.IsValid() {
		legacy = append(legacy, e.mem.Segment.segmentPrefix())
	}
	if e.addr.addr32 || (e.enc.AddrSize && e.mode == MODE_64) {
		legacy = append(legacy, 0x67)
	}
	if e.sig.needsOpSize16() {
		legacy = append(legacy, 0x66)
	}
	if e.enc.Kind == ENC_LEGACY && e.enc.Prefix != 0 {
		legacy = append(legacy, e.enc.Prefix)
	}
	err = code.emit(legacy...)
	if err != nil {
		return
	}

	switch e.enc.Kind {
	case ENC_VEX:
		return e.vex()
	case ENC_EVEX:
		return e.evex()
	}
	return e.rex()
}

func (e *encoder) rex() (err error) {
	r, x, b := e.extension()
	rex := r<<2 | x<<1 | b
	if e.enc.RexW {
		rex |= 8
	}

	need := rex != 0
	high := false
	for _, reg := range e.registers() {
		need = need || reg.forcesRex()
		high = high || reg.High
	}
	if !need {
		return
	}
	if e.mode != MODE_64 {
		return ErrInvalidInstruction
	}
	if high {
		return ErrUnencodableRegisterCombination
	}
	return e.code.emit(0x40 | rex)
}

// pp returns the VEX/EVEX implied mandatory prefix field.
func (e *encoder) pp() byte {
	switch e.enc.Prefix {
	case 0x66:
		return 1
	case 0xf3:
		return 2
	case 0xf2:
		return 3
	}
	return 0
}

func (e *encoder) vex() (err error) {
	r, x, b := e.extension()
	w := byte(0)
	if e.enc.W == 1 {
		w = 1
	}
	l := byte(0)
	if e.enc.L == 256 {
		l = 1
	}
	vvvv := ^e.vvvv.Index & 0xf
	if !e.vvvv.IsValid() {
		vvvv = 0xf
	}

	if x == 0 && b == 0 && w == 0 && e.enc.Map == MAP_0F {
		return e.code.emit(0xc5, (r^1)<<7|vvvv<<3|l<<2|e.pp())
	}
	return e.code.emit(0xc4,
		(r^1)<<7|(x^1)<<6|(b^1)<<5|byte(e.enc.Map),
		w<<7|vvvv<<3|l<<2|e.pp())
}

func (e *encoder) evex() (err error) {
	inst := e.inst
	r, x, b := e.extension()
	var r4 byte
	if e.enc.Digit < 0 {
		r4 = e.reg.bit4()
	}
	if e.mem == nil && !e.enc.PlusR {
		x = e.rm.bit4()
	}

	w := byte(0)
	if e.enc.W == 1 {
		w = 1
	}
	vvvv, v4 := byte(0xf), byte(1)
	if e.vvvv.IsValid() {
		vvvv = ^e.vvvv.Index & 0xf
		v4 = e.vvvv.bit4() ^ 1
	}

	var ll, bit byte
	switch e.enc.L {
	case 256:
		ll = 1
	case 512:
		ll = 2
	}
	switch inst.Rounding {
	case ROUND_NONE:
	case ROUND_SAE:
		bit = 1
	default:
		bit = 1
		ll = byte(inst.Rounding - ROUND_RN)
	}
	if inst.Broadcast {
		bit = 1
	}
	z := byte(0)
	if inst.Zeroing {
		z = 1
	}
	aaa := byte(0)
	if inst.Mask.IsValid() {
		aaa = inst.Mask.Index & 7
	}

	return e.code.emit(0x62,
		(r^1)<<7|(x^1)<<6|(b^1)<<5|(r4^1)<<4|byte(e.enc.Map),
		w<<7|vvvv<<3|1<<2|e.pp(),
		z<<7|ll<<5|bit<<4|v4<<3|aaa)
}

// opcode emits the map escape and opcode bytes.
func (e *encoder) opcode() (err error) {
	if e.enc.Kind == ENC_LEGACY {
		switch e.enc.Map {
		case MAP_0F:
			err = e.code.emit(0x0f)
		case MAP_0F38:
			err = e.code.emit(0x0f, 0x38)
		case MAP_0F3A:
			err = e.code.emit(0x0f, 0x3a)
		}
		if err != nil {
			return
		}
	}

	op := e.enc.Opcode
	if e.enc.PlusR {
		op[e.enc.OpcodeLen-1] += e.opreg.low3()
	}
	return e.code.emit(op[:e.enc.OpcodeLen]...)
}

// modrm emits ModRM, SIB and displacement.
func (e *encoder) modrm() (err error) {
	if !e.enc.ModRM {
		return
	}

	field := e.reg.low3()
	if e.enc.Digit >= 0 {
		field = byte(e.enc.Digit)
	}

	if e.mem == nil {
		return e.code.emit(0xc0 | field<<3 | e.rm.low3())
	}

	a := &e.addr
	err = e.code.emit(a.mod<<6 | field<<3 | a.rm)
	if err == nil && a.hasSib {
		err = e.code.emit(a.sib)
	}
	if err != nil {
		return
	}

	switch {
	case a.hasFixup:
		err = e.code.emitFixup(a.fixup)
	case a.dispSize == 1:
		err = e.code.emit(byte(int8(a.disp)))
	case a.dispSize == 4:
		err = e.code.emitLE(32, uint64(a.disp))
	}
	return
}

// immediates emits immediate, is4 and relative fields in operand order.
func (e *encoder) immediates() (err error) {
	sig := e.sig
	for n := range sig.Slots {
		slot := &sig.Slots[n]
		switch op := e.inst.Operands[n].(type) {
		case Immediate:
			if slot.Kind == SLOT_IMM {
				err = e.code.emitLE(slot.Width, uint64(op.Value))
			}
		case Pointer:
			fix := Fixup{
				Width:  slot.Width,
				Kind:   FIXUP_ABS,
				Target: op.Label,
				Addend: op.Addend,
				Signed: slot.Ext == EXT_SIGN || slot.Width < sig.OpSize ||
					(sig.OpSize == 0 && e.mode == MODE_64 && slot.Width == 32),
			}
			if op.Symbol != 0 {
				fix.Target = op.Symbol
			}
			err = e.code.emitFixup(fix)
		case Label, Symbol, Absolute:
			err = e.code.emitFixup(Fixup{Width: e.enc.Rel, Kind: FIXUP_REL, Target: op})
		}
		if err != nil {
			return
		}
	}

	if e.enc.Is4 {
		err = e.code.emit(e.is4.Index << 4)
	}
	return
}
