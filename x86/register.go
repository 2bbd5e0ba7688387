// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package x86

import (
	"fmt"
	"strings"
)

// Family is a register family.
type Family uint8

//go:generate go tool stringer -linecomment -type=Family
const (
	FAMILY_NONE    = Family(0)  // none
	FAMILY_GP8     = Family(1)  // gp8
	FAMILY_GP16    = Family(2)  // gp16
	FAMILY_GP32    = Family(3)  // gp32
	FAMILY_GP64    = Family(4)  // gp64
	FAMILY_XMM     = Family(5)  // xmm
	FAMILY_YMM     = Family(6)  // ymm
	FAMILY_ZMM     = Family(7)  // zmm
	FAMILY_MASK    = Family(8)  // k
	FAMILY_SEGMENT = Family(9)  // sreg
	FAMILY_CONTROL = Family(10) // cr
	FAMILY_DEBUG   = Family(11) // dr
	FAMILY_ST      = Family(12) // st
	FAMILY_MMX     = Family(13) // mm
	FAMILY_BND     = Family(14) // bnd
	FAMILY_TMM     = Family(15) // tmm
	FAMILY_RIP     = Family(16) // rip
)

// Width returns the register width in bits.
func (fam Family) Width() int {
	switch fam {
	case FAMILY_GP8:
		return 8
	case FAMILY_GP16, FAMILY_SEGMENT:
		return 16
	case FAMILY_GP32:
		return 32
	case FAMILY_GP64, FAMILY_MASK, FAMILY_MMX, FAMILY_CONTROL, FAMILY_DEBUG, FAMILY_RIP:
		return 64
	case FAMILY_ST:
		return 80
	case FAMILY_XMM, FAMILY_BND:
		return 128
	case FAMILY_YMM:
		return 256
	case FAMILY_ZMM:
		return 512
	case FAMILY_TMM:
		return 8192
	}
	return 0
}

// IsGeneral returns true for the general purpose integer families.
func (fam Family) IsGeneral() bool {
	return fam >= FAMILY_GP8 && fam <= FAMILY_GP64
}

// IsVector returns true for the SSE/AVX register families.
func (fam Family) IsVector() bool {
	return fam == FAMILY_XMM || fam == FAMILY_YMM || fam == FAMILY_ZMM
}

// Register is a tagged register value: a family and an index within it.
// High marks the legacy high byte registers AH, CH, DH and BH, which
// share the encodings 4..7 with SPL, BPL, SIL and DIL.
type Register struct {
	Family Family
	Index  uint8
	High   bool
}

var _ Operand = Register{}

// OperandKind implements Operand.
func (reg Register) OperandKind() OperandKind {
	return OPERAND_REGISTER
}

// IsValid returns true if the register names a real register.
func (reg Register) IsValid() bool {
	if reg.Family == FAMILY_NONE {
		return false
	}
	names, ok := registerNames[reg.Family]
	if !ok || int(reg.Index) >= len(names) {
		return false
	}
	if reg.High {
		return reg.Family == FAMILY_GP8 && reg.Index >= 4 && reg.Index <= 7
	}
	return true
}

// Width returns the register width in bits.
func (reg Register) Width() int {
	return reg.Family.Width()
}

func (reg Register) String() string {
	if !reg.IsValid() {
		return "<none>"
	}
	if reg.High {
		return [...]string{"ah", "ch", "dh", "bh"}[reg.Index-4]
	}
	return registerNames[reg.Family][reg.Index]
}

// low3 is the register number as placed in ModRM, SIB or the opcode.
func (reg Register) low3() byte {
	return reg.Index & 7
}

// bit3 is the REX/VEX extension bit for the register.
func (reg Register) bit3() byte {
	if reg.High {
		return 0
	}
	return (reg.Index >> 3) & 1
}

// bit4 is the EVEX high extension bit for the register.
func (reg Register) bit4() byte {
	return (reg.Index >> 4) & 1
}

// forcesRex is true for SPL, BPL, SIL and DIL, which only exist with a REX prefix.
func (reg Register) forcesRex() bool {
	return reg.Family == FAMILY_GP8 && !reg.High && reg.Index >= 4 && reg.Index <= 7
}

// ValidIn returns true if the register can be named in the given mode.
func (reg Register) ValidIn(mode Mode) bool {
	if !reg.IsValid() {
		return false
	}
	if mode == MODE_64 {
		return true
	}
	switch {
	case reg.Family == FAMILY_GP64, reg.Family == FAMILY_RIP:
		return false
	case reg.forcesRex():
		return false
	case reg.Family == FAMILY_CONTROL || reg.Family == FAMILY_DEBUG:
		return reg.Index < 8
	case reg.Index >= 8:
		return false
	}
	return true
}

// segmentPrefix returns the legacy segment override prefix byte.
func (reg Register) segmentPrefix() byte {
	return [...]byte{0x26, 0x2e, 0x36, 0x3e, 0x64, 0x65}[reg.Index]
}

var registerByName map[string]Register

func init() {
	registerByName = make(map[string]Register, 256)
	for fam, names := range registerNames {
		for n, name := range names {
			registerByName[name] = Register{Family: fam, Index: uint8(n)}
		}
	}
	for n, name := range []string{"ah", "ch", "dh", "bh"} {
		registerByName[name] = Register{Family: FAMILY_GP8, Index: uint8(n + 4), High: true}
	}
	for n := range 8 {
		registerByName[fmt.Sprintf("st(%d)", n)] = Register{Family: FAMILY_ST, Index: uint8(n)}
	}
	registerByName["st"] = ST0
}

// RegisterByName looks up a register by its assembler name, case insensitive.
func RegisterByName(name string) (reg Register, ok bool) {
	reg, ok = registerByName[strings.ToLower(name)]
	return
}
