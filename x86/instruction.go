// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package x86

import (
	"strings"
)

// MaxOperands is the largest operand count of any instruction form.
const MaxOperands = 5

// Prefix is a set of instruction prefix attributes.
type Prefix uint8

const (
	PREFIX_LOCK  = Prefix(1 << 0) // lock
	PREFIX_REP   = Prefix(1 << 1) // rep
	PREFIX_REPNE = Prefix(1 << 2) // repne

	PREFIX_REPE = PREFIX_REP // repe
)

// Rounding is the EVEX embedded rounding or exception suppression control.
type Rounding uint8

//go:generate go tool stringer -linecomment -type=Rounding
const (
	ROUND_NONE = Rounding(0) // none
	ROUND_RN   = Rounding(1) // rn-sae
	ROUND_RD   = Rounding(2) // rd-sae
	ROUND_RU   = Rounding(3) // ru-sae
	ROUND_RZ   = Rounding(4) // rz-sae
	ROUND_SAE  = Rounding(5) // sae
)

// Instruction is one mnemonic with its concrete operands and attributes.
type Instruction struct {
	Mnemonic  Mnemonic
	Operands  []Operand
	Prefix    Prefix
	Mask      Register // EVEX write mask, K1..K7.
	Zeroing   bool     // EVEX zeroing masking.
	Broadcast bool     // EVEX memory broadcast.
	Rounding  Rounding // EVEX rounding control.
}

// Inst returns an instruction with no attributes.
func Inst(mnemonic Mnemonic, operands ...Operand) *Instruction {
	return &Instruction{Mnemonic: mnemonic, Operands: operands}
}

// needsEvex returns true if the attributes can only be carried by EVEX.
func (inst *Instruction) needsEvex() bool {
	return inst.Mask.IsValid() || inst.Zeroing || inst.Broadcast || inst.Rounding != ROUND_NONE
}

func (inst *Instruction) String() string {
	var sb strings.Builder

	if inst.Prefix&PREFIX_LOCK != 0 {
		sb.WriteString("lock ")
	}
	if inst.Prefix&PREFIX_REP != 0 {
		sb.WriteString("rep ")
	}
	if inst.Prefix&PREFIX_REPNE != 0 {
		sb.WriteString("repne ")
	}
	sb.WriteString(inst.Mnemonic.String())

	for n, op := range inst.Operands {
		if n == 0 {
			sb.WriteByte(' ')
		} else {
			sb.WriteString(", ")
		}
		if op == nil {
			sb.WriteString("<nil>")
			continue
		}
		sb.WriteString(op.String())
		if n == 0 && inst.Mask.IsValid() {
			sb.WriteString(" {" + inst.Mask.String() + "}")
			if inst.Zeroing {
				sb.WriteString("{z}")
			}
		}
		if _, ok := op.(Memory); ok && inst.Broadcast {
			sb.WriteString(" {1toN}")
		}
	}
	if inst.Rounding != ROUND_NONE {
		sb.WriteString(", {" + inst.Rounding.String() + "}")
	}

	return sb.String()
}
