// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package x86

import (
	"encoding/binary"
	"fmt"
	"math"
)

// MaxLength is the architectural limit on the length of an instruction.
const MaxLength = 15

// FixupKind is how a fixup field is computed from its target. Relative
// fields are measured from the end of the instruction.
type FixupKind uint8

//go:generate go tool stringer -linecomment -type=FixupKind
const (
	FIXUP_REL = FixupKind(1) // rel
	FIXUP_ABS = FixupKind(2) // abs
)

// Fixup is a field of an encoded instruction whose value depends on the
// address of a Label, Symbol or Absolute target. The field holds zero
// until it is patched.
type Fixup struct {
	Offset int // Byte offset of the field in the instruction.
	Width  int // Field width in bits.
	Kind   FixupKind
	Target Operand // Label, Symbol or Absolute.
	Addend int64
	Signed bool // Absolute field is sign extended by the processor.
}

// Value computes the field value for a target address, given the address
// of the end of the instruction.
func (fix Fixup) Value(target uint64, end uint64) int64 {
	value := int64(target) + fix.Addend
	if fix.Kind == FIXUP_REL {
		value -= int64(end)
	}
	return value
}

// Fits returns true if the value can be stored in the field.
func (fix Fixup) Fits(value int64) bool {
	if fix.Width >= 64 {
		return true
	}
	if fix.Kind == FIXUP_REL || fix.Signed {
		limit := int64(1) << (fix.Width - 1)
		return value >= -limit && value < limit
	}
	return value >= 0 && uint64(value) < uint64(1)<<fix.Width
}

// Put stores the value, little-endian, into the field of an instruction.
func (fix Fixup) Put(code []byte, value int64) {
	putLE(code[fix.Offset:], fix.Width, uint64(value))
}

func putLE(buf []byte, width int, value uint64) {
	switch width {
	case 8:
		buf[0] = byte(value)
	case 16:
		binary.LittleEndian.PutUint16(buf, uint16(value))
	case 32:
		binary.LittleEndian.PutUint32(buf, uint32(value))
	case 64:
		binary.LittleEndian.PutUint64(buf, value)
	}
}

// fitsSigned returns true if the value fits a signed field of width bits.
func fitsSigned(value int64, width int) bool {
	if width >= 64 {
		return true
	}
	limit := int64(1) << (width - 1)
	return value >= -limit && value < limit
}

// fitsInt32 returns true for values of a sign extended 32-bit field.
func fitsInt32(value int64) bool {
	return value >= math.MinInt32 && value <= math.MaxInt32
}

// Code is one encoded instruction and its pending fixups.
type Code struct {
	buf    [MaxLength]byte
	n      int
	fixups [2]Fixup
	nfix   int
}

// Len returns the instruction length in bytes.
func (code *Code) Len() int {
	return code.n
}

// Bytes returns a copy of the encoded instruction.
func (code *Code) Bytes() []byte {
	return append([]byte(nil), code.buf[:code.n]...)
}

// Fixups returns the fields still to be patched.
func (code *Code) Fixups() []Fixup {
	return code.fixups[:code.nfix:code.nfix]
}

// Patch resolves a fixup field in place and removes it from the list.
func (code *Code) Patch(n int, value int64) (err error) {
	fix := code.fixups[n]
	if !fix.Fits(value) {
		err = ErrOperandOutOfRange
		return
	}
	fix.Put(code.buf[:code.n], value)
	copy(code.fixups[n:], code.fixups[n+1:code.nfix])
	code.nfix--
	code.fixups[code.nfix] = Fixup{}
	return
}

func (code *Code) emit(bytes ...byte) (err error) {
	if code.n+len(bytes) > MaxLength {
		err = ErrInstructionSize
		return
	}
	code.n += copy(code.buf[code.n:], bytes)
	return
}

func (code *Code) emitLE(width int, value uint64) (err error) {
	size := width / 8
	if code.n+size > MaxLength {
		err = ErrInstructionSize
		return
	}
	putLE(code.buf[code.n:], width, value)
	code.n += size
	return
}

// emitFixup reserves a zero field for a fixup.
func (code *Code) emitFixup(fix Fixup) (err error) {
	fix.Offset = code.n
	err = code.emitLE(fix.Width, 0)
	if err != nil {
		return
	}
	code.fixups[code.nfix] = fix
	code.nfix++
	return
}

func (code *Code) String() string {
	return fmt.Sprintf("% x", code.buf[:code.n])
}
