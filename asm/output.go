// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"iter"
	"slices"
	"sort"

	"github.com/ezrec/jitasm/internal"
	"github.com/ezrec/jitasm/x86"
)

// DefaultSection is the section of nodes preceding any Section node.
const DefaultSection = ".text"

// RelocationKind is how a relocated field is computed: a 32 or 64-bit
// absolute address, or a 32 or 8-bit PC relative offset.
type RelocationKind uint8

//go:generate go tool stringer -linecomment -type=RelocationKind
const (
	RELOC_ABS32 = RelocationKind(1) // abs32
	RELOC_ABS64 = RelocationKind(2) // abs64
	RELOC_REL32 = RelocationKind(3) // rel32
	RELOC_REL8  = RelocationKind(4) // rel8
)

// Width returns the field width in bits.
func (kind RelocationKind) Width() int {
	switch kind {
	case RELOC_ABS32, RELOC_REL32:
		return 32
	case RELOC_ABS64:
		return 64
	case RELOC_REL8:
		return 8
	}
	return 0
}

// IsRelative returns true for PC relative kinds.
func (kind RelocationKind) IsRelative() bool {
	return kind == RELOC_REL32 || kind == RELOC_REL8
}

func relocationKind(fix x86.Fixup) (kind RelocationKind, ok bool) {
	switch {
	case fix.Kind == x86.FIXUP_REL && fix.Width == 8:
		kind = RELOC_REL8
	case fix.Kind == x86.FIXUP_REL && fix.Width == 32:
		kind = RELOC_REL32
	case fix.Kind == x86.FIXUP_ABS && fix.Width == 32:
		kind = RELOC_ABS32
	case fix.Kind == x86.FIXUP_ABS && fix.Width == 64:
		kind = RELOC_ABS64
	default:
		return
	}
	ok = true
	return
}

// Relocation is a field of the output whose value depends on where the
// buffer is placed. Fields referencing a Symbol are left zero; all others
// hold the value for Output.Base.
//
// For an absolute kind the field value is S + Addend. For a relative kind
// it is S + Addend - P, where P is the address of the field itself.
type Relocation struct {
	Node       NodeID
	NodeOffset int // Field offset in the bytes of Node.
	Offset     int // Field offset in Output.Bytes.
	Kind       RelocationKind
	Target     uint64     // Resolved target address, when not a Symbol.
	Symbol     x86.Symbol // External target.
	Addend     int64
	Signed     bool // 32-bit absolute field is sign extended.
}

// Section is an address range of the output.
type Section struct {
	Name    string
	Address uint64
	Size    int
}

type span struct {
	id   NodeID
	addr uint64
	size int
}

// Output is a finalized program.
type Output struct {
	Base        uint64
	Bytes       []byte
	Labels      map[x86.Label]uint64 // Resolved label addresses.
	Sections    []Section
	Relocations []Relocation // In field offset order.
	Symbols     map[x86.Symbol]string
	Passes      int // Layout passes used.

	spans []span
	index map[NodeID]int
}

// NodeAddress returns the address of a node.
func (out *Output) NodeAddress(id NodeID) (addr uint64, ok bool) {
	n, ok := out.index[id]
	if ok {
		addr = out.spans[n].addr
	}
	return
}

// NodeBytes returns the bytes emitted for a node.
func (out *Output) NodeBytes(id NodeID) (code []byte) {
	n, ok := out.index[id]
	if !ok {
		return
	}
	start := int(out.spans[n].addr - out.Base)
	code = out.Bytes[start : start+out.spans[n].size]
	return
}

// LabelAddress returns the resolved address of a label.
func (out *Output) LabelAddress(label x86.Label) (addr uint64, ok bool) {
	addr, ok = out.Labels[label]
	return
}

// Lookup finds the node emitting the byte at addr, and the offset of the
// byte in the node.
func (out *Output) Lookup(addr uint64) (id NodeID, offset int, ok bool) {
	n := sort.Search(len(out.spans), func(n int) bool {
		sp := out.spans[n]
		return sp.addr+uint64(sp.size) > addr
	})
	for ; n < len(out.spans); n++ {
		sp := out.spans[n]
		if addr < sp.addr {
			break
		}
		if sp.size > 0 {
			return sp.id, int(addr - sp.addr), true
		}
	}
	return
}

// External iterates over the relocations of external symbols.
func (out *Output) External() iter.Seq[Relocation] {
	return internal.Filter(slices.Values(out.Relocations), func(reloc Relocation) bool {
		return reloc.Symbol != 0
	})
}
