// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package x86

import (
	"errors"
	"slices"
)

// Form is a matched signature and its trial encoding. Fixup fields of the
// trial encoding hold zero.
type Form struct {
	Signature *Signature
	Code      Code
}

// Selection is the result of matching an instruction. Best is the form to
// emit; for branches to labels and absolute addresses it is the widest
// form, and Short lists the shorter alternatives, shortest first.
type Selection struct {
	Best  Form
	Short []Form
}

// IsRelaxable returns true if shorter branch forms exist.
func (sel *Selection) IsRelaxable() bool {
	return len(sel.Short) > 0
}

// immFits returns true if value fits an immediate slot of a signature.
func (sig *Signature) immFits(slot *Slot, imm Immediate) bool {
	if imm.Width > slot.Width {
		return false
	}

	value := imm.Value
	size := sig.OpSize
	if slot.Ext == EXT_SIGN && size > 0 && size < 64 {
		// An unsigned constant of the operand size is read as its
		// two's complement.
		top := int64(1) << size
		if value >= top/2 && value < top {
			value -= top
		}
	}

	width := slot.Width
	if width >= 64 {
		return true
	}
	limit := int64(1) << (width - 1)
	switch slot.Ext {
	case EXT_SIGN:
		return value >= -limit && value < limit
	case EXT_ZERO:
		return value >= 0 && value < 2*limit
	}
	return value >= -limit && value < 2*limit
}

// memWidth returns the memory access width of the slot for the instruction.
func (slot *Slot) memWidth(inst *Instruction) int {
	if inst.Broadcast && slot.Bcst != 0 {
		return slot.Bcst
	}
	return slot.MemWidth
}

// checkOperand validates one operand against its slot.
func (sig *Signature) checkOperand(mode Mode, inst *Instruction, slot *Slot, op Operand) (err error) {
	switch op := op.(type) {
	case Register:
		if !op.ValidIn(mode) {
			return ErrInvalidInstruction
		}
		switch slot.Kind {
		case SLOT_FIXED:
			if op != slot.Fixed {
				return ErrInvalidInstruction
			}
		case SLOT_REG, SLOT_RM:
			if op.Family != slot.Family {
				return ErrInvalidInstruction
			}
			if op.Index >= 16 && !sig.IsEvex() {
				return ErrInvalidInstruction
			}
			if slot.Place == PLACE_OPCODE && op.Index == 0 && mode == MODE_64 && sig.Flags&FLAG_NOT_R0_64 != 0 {
				return ErrInvalidInstruction
			}
		default:
			return ErrInvalidInstruction
		}
	case Memory:
		if slot.Kind != SLOT_MEM && slot.Kind != SLOT_RM {
			return ErrInvalidInstruction
		}
		if inst.Broadcast && slot.Bcst == 0 {
			return ErrInvalidInstruction
		}
		if width := slot.memWidth(inst); op.Size != 0 && width != 0 && op.Size != width {
			return ErrInvalidInstruction
		}
	case Immediate:
		switch slot.Kind {
		case SLOT_ONE:
			if op.Value != 1 || op.Width > 8 {
				return ErrInvalidInstruction
			}
		case SLOT_IMM:
			if !sig.immFits(slot, op) {
				return ErrOperandOutOfRange
			}
		default:
			return ErrInvalidInstruction
		}
	case Pointer:
		if slot.Kind != SLOT_IMM || slot.Width != op.width(mode) {
			return ErrInvalidInstruction
		}
		if (op.Label == 0) == (op.Symbol == 0) {
			return ErrInvalidInstruction
		}
	case Label:
		if slot.Kind != SLOT_REL || op == 0 {
			return ErrInvalidInstruction
		}
	case Absolute:
		if slot.Kind != SLOT_REL {
			return ErrInvalidInstruction
		}
	case Symbol:
		if slot.Kind != SLOT_REL || slot.Width != 32 || op == 0 {
			return ErrInvalidInstruction
		}
	default:
		return ErrInvalidInstruction
	}
	return
}

// check returns nil if the instruction satisfies the signature.
func (sig *Signature) check(mode Mode, inst *Instruction) (err error) {
	if len(inst.Operands) != len(sig.Slots) {
		return ErrInvalidInstruction
	}

	switch {
	case sig.Flags&FLAG_ONLY64 != 0 && mode != MODE_64,
		sig.Flags&FLAG_ONLY32 != 0 && mode == MODE_64,
		sig.Encoding.RexW && mode != MODE_64:
		return ErrInvalidInstruction
	}

	if inst.Prefix&PREFIX_LOCK != 0 {
		if sig.Flags&FLAG_LOCK == 0 {
			return ErrInvalidInstruction
		}
		if _, ok := inst.Operands[0].(Memory); !ok {
			return ErrInvalidInstruction
		}
	}
	if inst.Prefix&PREFIX_REP != 0 && sig.Flags&FLAG_REP == 0 {
		return ErrInvalidInstruction
	}
	if inst.Prefix&PREFIX_REPNE != 0 && sig.Flags&FLAG_REPNE == 0 {
		return ErrInvalidInstruction
	}

	if inst.needsEvex() {
		if !sig.IsEvex() {
			return ErrInvalidInstruction
		}
		err = sig.checkEvex(inst)
		if err != nil {
			return
		}
	}

	// Out of range is only reported once every operand kind matched.
	for n := range sig.Slots {
		operr := sig.checkOperand(mode, inst, &sig.Slots[n], inst.Operands[n])
		switch {
		case operr == nil:
		case errors.Is(operr, ErrOperandOutOfRange):
			err = operr
		default:
			return operr
		}
	}

	return
}

// checkEvex validates the EVEX attributes of an instruction.
func (sig *Signature) checkEvex(inst *Instruction) (err error) {
	var round, sae, hasMemory bool
	for n := range sig.Slots {
		slot := &sig.Slots[n]
		round = round || slot.Round
		sae = sae || slot.Sae
		if _, ok := inst.Operands[n].(Memory); ok {
			hasMemory = true
		}
	}

	if len(sig.Slots) == 0 {
		return ErrInvalidInstruction
	}
	first := &sig.Slots[0]

	if inst.Mask.IsValid() {
		if !first.Mask || inst.Mask.Family != FAMILY_MASK || inst.Mask.Index == 0 {
			return ErrInvalidInstruction
		}
	}
	if inst.Zeroing {
		if !inst.Mask.IsValid() || !first.Zero {
			return ErrInvalidInstruction
		}
		if _, ok := inst.Operands[0].(Memory); ok {
			return ErrInvalidInstruction
		}
	}
	switch inst.Rounding {
	case ROUND_NONE:
	case ROUND_SAE:
		if !sae || hasMemory {
			return ErrInvalidInstruction
		}
	default:
		if !round || hasMemory {
			return ErrInvalidInstruction
		}
		if sig.Encoding.L != 0 && sig.Encoding.L != 512 {
			return ErrInvalidInstruction
		}
	}
	if inst.Broadcast && !hasMemory {
		return ErrInvalidInstruction
	}
	return
}

// memorySlot returns the slot bound to a memory operand, or nil.
func (sig *Signature) memorySlot(inst *Instruction) (slot *Slot, mem Memory) {
	for n, op := range inst.Operands {
		if m, ok := op.(Memory); ok {
			return &sig.Slots[n], m
		}
	}
	return nil, Memory{}
}

// isBranchTarget returns true if the operand is a relaxable branch target.
func isBranchTarget(op Operand) bool {
	switch op.(type) {
	case Label, Absolute:
		return true
	}
	return false
}

// Match selects the signature and trial encoding for an instruction.
// Legacy and VEX forms are preferred over EVEX forms unless an EVEX only
// attribute is requested, then the shortest encoding, then table order.
func Match(mode Mode, inst *Instruction) (sel Selection, err error) {
	defer func() {
		if err != nil {
			err = &ErrBuild{Instruction: inst.String(), Err: err}
		}
	}()

	if len(inst.Operands) > MaxOperands {
		err = ErrTooManyOperands
		return
	}
	sigs := Signatures(inst.Mnemonic)
	if len(sigs) == 0 {
		err = ErrInvalidInstruction
		return
	}

	var matched []*Signature
	var outOfRange bool
	for _, sig := range sigs {
		check := sig.check(mode, inst)
		switch {
		case check == nil:
			matched = append(matched, sig)
		case errors.Is(check, ErrOperandOutOfRange):
			outOfRange = true
		}
	}
	if len(matched) == 0 {
		if outOfRange {
			err = ErrOperandOutOfRange
		} else {
			err = ErrInvalidInstruction
		}
		return
	}

	matched, err = resolveMemoryWidth(inst, matched)
	if err != nil {
		return
	}

	var forms []Form
	var encodeErr error
	for _, sig := range matched {
		code, cerr := encode(mode, inst, sig)
		if cerr != nil {
			if encodeErr == nil {
				encodeErr = cerr
			}
			continue
		}
		forms = append(forms, Form{Signature: sig, Code: code})
	}
	if len(forms) == 0 {
		err = encodeErr
		return
	}

	evexPenalty := func(form *Form) int {
		if form.Signature.IsEvex() && !inst.needsEvex() {
			return 1
		}
		return 0
	}
	slices.SortStableFunc(forms, func(a, b Form) int {
		if pa, pb := evexPenalty(&a), evexPenalty(&b); pa != pb {
			return pa - pb
		}
		if a.Code.n != b.Code.n {
			return a.Code.n - b.Code.n
		}
		return a.Signature.Order - b.Signature.Order
	})

	rel := forms[0].Signature.relSlot()
	if rel < 0 || !isBranchTarget(inst.Operands[rel]) {
		sel.Best = forms[0]
		return
	}

	// Branch: the widest field is the placeholder.
	widest := 0
	for n := range forms {
		if forms[n].Signature.Encoding.Rel > forms[widest].Signature.Encoding.Rel {
			widest = n
		}
	}
	sel.Best = forms[widest]
	for n := range forms {
		if n != widest && forms[n].Signature.Encoding.Rel < sel.Best.Signature.Encoding.Rel {
			sel.Short = append(sel.Short, forms[n])
		}
	}
	return
}

// resolveMemoryWidth rejects, or settles on the default form of, unsized
// memory operands whose width the matched signatures disagree on.
func resolveMemoryWidth(inst *Instruction, matched []*Signature) (result []*Signature, err error) {
	result = matched

	slot, mem := matched[0].memorySlot(inst)
	if slot == nil || mem.Size != 0 {
		return
	}

	width := slot.memWidth(inst)
	agree := true
	for _, sig := range matched[1:] {
		other, _ := sig.memorySlot(inst)
		if other.memWidth(inst) != width {
			agree = false
			break
		}
	}
	if agree {
		return
	}

	result = nil
	for _, sig := range matched {
		if sig.Flags&FLAG_DEFAULT != 0 {
			result = append(result, sig)
		}
	}
	if len(result) == 0 {
		err = ErrAmbiguousOperandSize
	}
	return
}

// Encode encodes an instruction with the given signature. Fixup fields are
// left zero and listed in the Code.
func Encode(mode Mode, inst *Instruction, sig *Signature) (code Code, err error) {
	err = sig.check(mode, inst)
	if err == nil {
		code, err = encode(mode, inst, sig)
	}
	if err != nil {
		err = &ErrBuild{Instruction: inst.String(), Err: err}
	}
	return
}

// EncodeAt matches and encodes an instruction placed at addr. Absolute
// branch targets are resolved, choosing the shortest form that reaches.
// Symbol fixups are left in the Code; label targets are an error.
func EncodeAt(mode Mode, addr uint64, inst *Instruction) (code Code, err error) {
	sel, err := Match(mode, inst)
	if err != nil {
		return
	}

	candidates := append(slices.Clone(sel.Short), sel.Best)
	for n, form := range candidates {
		code = form.Code
		err = resolveAbsolute(&code, addr)
		if err == nil || n == len(candidates)-1 {
			break
		}
	}
	if err != nil {
		err = &ErrBuild{Instruction: inst.String(), Err: err}
	}
	return
}

// resolveAbsolute patches the fixups of absolute targets.
func resolveAbsolute(code *Code, addr uint64) (err error) {
	end := addr + uint64(code.Len())
	for n := 0; n < code.nfix; {
		fix := code.fixups[n]
		switch target := fix.Target.(type) {
		case Absolute:
			err = code.Patch(n, fix.Value(uint64(target), end))
			if err != nil {
				return
			}
		case Label:
			return ErrUnresolvedTarget
		default:
			n++
		}
	}
	return
}
