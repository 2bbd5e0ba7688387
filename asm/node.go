// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"fmt"

	"github.com/ezrec/jitasm/x86"
)

// NodeID is a stable reference to a node of a Program. It stays valid
// across insertions and removals of other nodes. The zero NodeID is
// invalid.
type NodeID int32

func (id NodeID) String() string {
	return fmt.Sprintf("#%d", int32(id))
}

// NodeKind is the kind of a program node. Data nodes hold raw bytes or a
// pointer; align and section nodes hold padding.
type NodeKind uint8

//go:generate go tool stringer -linecomment -type=NodeKind
const (
	NODE_INSTRUCTION = NodeKind(1) // instruction
	NODE_LABEL       = NodeKind(2) // label
	NODE_DATA        = NodeKind(3) // data
	NODE_ALIGN       = NodeKind(4) // align
	NODE_SECTION     = NodeKind(5) // section
)

// Fill selects the padding of Align and Section nodes.
type Fill int16

const (
	FILL_NOP  = Fill(-1)   // multi-byte NOPs
	FILL_ZERO = Fill(0)    // zero bytes
	FILL_INT3 = Fill(0xcc) // breakpoint bytes
)

// IsValid returns true for FILL_NOP or a byte value.
func (fill Fill) IsValid() bool {
	return fill >= FILL_NOP && fill <= 0xff
}

// Node is one element of a program. Only the fields of its Kind are set.
type Node struct {
	Kind NodeKind

	Instruction *x86.Instruction // NODE_INSTRUCTION
	Label       x86.Label        // NODE_LABEL
	Data        []byte           // NODE_DATA
	Pointer     *x86.Pointer     // NODE_DATA holding an address
	Align       int              // NODE_ALIGN, NODE_SECTION
	Fill        Fill             // NODE_ALIGN, NODE_SECTION
	Section     string           // NODE_SECTION

	selection  x86.Selection
	prev, next NodeID
	live       bool
}

func (node *Node) String() string {
	switch node.Kind {
	case NODE_INSTRUCTION:
		return node.Instruction.String()
	case NODE_LABEL:
		return node.Label.String() + ":"
	case NODE_DATA:
		if node.Pointer != nil {
			return fmt.Sprintf(".ptr%d %v", node.Pointer.Width, node.Pointer)
		}
		return fmt.Sprintf(".byte % x", node.Data)
	case NODE_ALIGN:
		return fmt.Sprintf(".align %d", node.Align)
	case NODE_SECTION:
		return fmt.Sprintf(".section %v, %d", node.Section, node.Align)
	}
	return node.Kind.String()
}

// IsRelaxable returns true for instructions that have shorter forms
// depending on the final layout.
func (node *Node) IsRelaxable() bool {
	return node.Kind == NODE_INSTRUCTION && node.selection.IsRelaxable()
}
