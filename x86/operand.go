// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package x86

import (
	"fmt"
	"strings"
)

// Mode is the processor mode instructions are assembled for.
type Mode int

const (
	MODE_32 = Mode(32) // 32-bit protected mode
	MODE_64 = Mode(64) // 64-bit long mode
)

// OperandKind identifies the concrete type of an Operand.
type OperandKind int

//go:generate go tool stringer -linecomment -type=OperandKind
const (
	OPERAND_REGISTER  = OperandKind(1) // register
	OPERAND_MEMORY    = OperandKind(2) // memory
	OPERAND_IMMEDIATE = OperandKind(3) // immediate
	OPERAND_LABEL     = OperandKind(4) // label
	OPERAND_SYMBOL    = OperandKind(5) // symbol
	OPERAND_ABSOLUTE  = OperandKind(6) // absolute
	OPERAND_POINTER   = OperandKind(7) // pointer
)

// Operand is one instruction operand. The concrete types are Register,
// Memory, Immediate, Label, Symbol, Absolute and Pointer.
type Operand interface {
	OperandKind() OperandKind
	String() string
}

// Immediate is an integer constant operand. Width, when non-zero, is the
// minimal field width in bits the caller insists on.
type Immediate struct {
	Value int64
	Width int
}

var _ Operand = Immediate{}

// Imm returns an immediate operand.
func Imm(value int64) Immediate {
	return Immediate{Value: value}
}

// OperandKind implements Operand.
func (imm Immediate) OperandKind() OperandKind {
	return OPERAND_IMMEDIATE
}

func (imm Immediate) String() string {
	if imm.Value < 0 {
		return fmt.Sprintf("-%#x", uint64(-imm.Value))
	}
	return fmt.Sprintf("%#x", imm.Value)
}

// MinWidth returns the smallest width in bits holding the value as a
// signed integer.
func (imm Immediate) MinWidth() (width int) {
	v := imm.Value
	switch {
	case v >= -0x80 && v <= 0x7f:
		width = 8
	case v >= -0x8000 && v <= 0x7fff:
		width = 16
	case v >= -0x8000_0000 && v <= 0x7fff_ffff:
		width = 32
	default:
		width = 64
	}
	if imm.Width > width {
		width = imm.Width
	}
	return
}

// Label is a program scoped code location. The zero Label is invalid.
type Label uint32

var _ Operand = Label(0)

// OperandKind implements Operand.
func (label Label) OperandKind() OperandKind {
	return OPERAND_LABEL
}

func (label Label) String() string {
	return fmt.Sprintf("L%d", uint32(label))
}

// Symbol is an external symbol, resolved outside of the assembled buffer.
// The zero Symbol is invalid.
type Symbol uint32

var _ Operand = Symbol(0)

// OperandKind implements Operand.
func (sym Symbol) OperandKind() OperandKind {
	return OPERAND_SYMBOL
}

func (sym Symbol) String() string {
	return fmt.Sprintf("S%d", uint32(sym))
}

// Absolute is a known absolute code address, used as a branch target.
type Absolute uint64

var _ Operand = Absolute(0)

// OperandKind implements Operand.
func (abs Absolute) OperandKind() OperandKind {
	return OPERAND_ABSOLUTE
}

func (abs Absolute) String() string {
	return fmt.Sprintf("%#x", uint64(abs))
}

// Pointer is an immediate whose value is the address of a label or of an
// external symbol, plus Addend. Width selects the immediate width; zero
// means the mode's address width.
type Pointer struct {
	Label  Label
	Symbol Symbol
	Addend int64
	Width  int
}

var _ Operand = Pointer{}

// OperandKind implements Operand.
func (ptr Pointer) OperandKind() OperandKind {
	return OPERAND_POINTER
}

func (ptr Pointer) String() string {
	var target string
	if ptr.Symbol != 0 {
		target = ptr.Symbol.String()
	} else {
		target = ptr.Label.String()
	}
	if ptr.Addend != 0 {
		target = fmt.Sprintf("%v%+d", target, ptr.Addend)
	}
	return "offset " + target
}

// width returns the immediate width of the pointer in the given mode.
func (ptr Pointer) width(mode Mode) int {
	if ptr.Width != 0 {
		return ptr.Width
	}
	return int(mode)
}

// Memory is a memory reference. A Label or Symbol without Base or Index is
// RIP-relative in 64-bit mode and an absolute address in 32-bit mode; with
// a Base or Index it is an absolute 32-bit displacement. Size is the
// operand width in bits, or zero when it is inferred from the instruction.
type Memory struct {
	Segment Register
	Base    Register
	Index   Register
	Scale   uint8
	Disp    int64
	Label   Label
	Symbol  Symbol
	Size    int
}

var _ Operand = Memory{}

// Mem returns a memory reference to [base + disp].
func Mem(base Register, disp int64) Memory {
	return Memory{Base: base, Disp: disp}
}

// MemIndex returns a memory reference to [base + index*scale + disp].
func MemIndex(base, index Register, scale uint8, disp int64) Memory {
	return Memory{Base: base, Index: index, Scale: scale, Disp: disp}
}

// MemLabel returns a memory reference to the location of a label.
func MemLabel(label Label, disp int64) Memory {
	return Memory{Label: label, Disp: disp}
}

// Sized returns a copy of the reference with an explicit operand size.
func (mem Memory) Sized(bits int) Memory {
	mem.Size = bits
	return mem
}

// OperandKind implements Operand.
func (mem Memory) OperandKind() OperandKind {
	return OPERAND_MEMORY
}

// isRelative returns true if the reference is RIP-relative in the mode.
func (mem Memory) isRelative(mode Mode) bool {
	if mem.Base.Family == FAMILY_RIP {
		return true
	}
	return mode == MODE_64 && !mem.Base.IsValid() && !mem.Index.IsValid() &&
		(mem.Label != 0 || mem.Symbol != 0)
}

var sizeNames = map[int]string{
	8:   "byte",
	16:  "word",
	32:  "dword",
	64:  "qword",
	80:  "tword",
	128: "xmmword",
	256: "ymmword",
	512: "zmmword",
}

func (mem Memory) String() string {
	var sb strings.Builder

	if name, ok := sizeNames[mem.Size]; ok {
		sb.WriteString(name)
		sb.WriteString(" ptr ")
	}
	if mem.Segment.IsValid() {
		sb.WriteString(mem.Segment.String())
		sb.WriteByte(':')
	}

	var terms []string
	if mem.Base.IsValid() {
		terms = append(terms, mem.Base.String())
	}
	if mem.Index.IsValid() {
		scale := mem.Scale
		if scale == 0 {
			scale = 1
		}
		terms = append(terms, fmt.Sprintf("%v*%d", mem.Index, scale))
	}
	if mem.Label != 0 {
		terms = append(terms, mem.Label.String())
	}
	if mem.Symbol != 0 {
		terms = append(terms, mem.Symbol.String())
	}

	sb.WriteByte('[')
	sb.WriteString(strings.Join(terms, "+"))
	switch {
	case mem.Disp < 0:
		fmt.Fprintf(&sb, "-%#x", uint64(-mem.Disp))
	case mem.Disp > 0 && len(terms) > 0:
		fmt.Fprintf(&sb, "+%#x", mem.Disp)
	case len(terms) == 0:
		fmt.Fprintf(&sb, "%#x", mem.Disp)
	}
	sb.WriteByte(']')

	return sb.String()
}
