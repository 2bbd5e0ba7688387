// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"iter"
	"math/bits"
	"slices"

	"github.com/ezrec/jitasm/x86"
)

// LabelState is the binding state of a label in a program. Labels of
// another program are invalid.
type LabelState uint8

//go:generate go tool stringer -linecomment -type=LabelState
const (
	LABEL_INVALID = LabelState(0) // invalid
	LABEL_UNBOUND = LabelState(1) // unbound
	LABEL_BOUND   = LabelState(2) // bound
)

type labelEntry struct {
	name  string
	bound NodeID
}

// Program is an ordered list of nodes kept in an arena. Nodes are
// linked by index, so removal or insertion never invalidates the NodeID
// of another node. New nodes are linked after the cursor, which then
// advances to them.
type Program struct {
	Mode x86.Mode

	nodes   []Node // nodes[0] is the list head.
	count   int
	cursor  NodeID
	labels  []labelEntry
	symbols []string
}

// NewProgram returns an empty program for the processor mode.
func NewProgram(mode x86.Mode) (prog *Program) {
	prog = &Program{
		Mode:  mode,
		nodes: make([]Node, 1, 64),
	}
	return
}

// Len returns the number of nodes in the program.
func (prog *Program) Len() int {
	return prog.count
}

// Node returns the node of an id.
func (prog *Program) Node(id NodeID) (node *Node, ok bool) {
	if id <= 0 || int(id) >= len(prog.nodes) || !prog.nodes[id].live {
		return
	}
	return &prog.nodes[id], true
}

// Nodes iterates over the nodes in program order.
func (prog *Program) Nodes() iter.Seq2[NodeID, *Node] {
	return func(yield func(id NodeID, node *Node) bool) {
		for id := prog.nodes[0].next; id != 0; id = prog.nodes[id].next {
			if !yield(id, &prog.nodes[id]) {
				return
			}
		}
	}
}

// Cursor returns the node new nodes are linked after; zero is the start
// of the program.
func (prog *Program) Cursor() NodeID {
	return prog.cursor
}

// InsertAfter moves the cursor so the next nodes follow the node id.
func (prog *Program) InsertAfter(id NodeID) (err error) {
	if _, ok := prog.Node(id); !ok {
		err = ErrNodeInvalid
		return
	}
	prog.cursor = id
	return
}

// InsertBefore moves the cursor so the next nodes precede the node id.
func (prog *Program) InsertBefore(id NodeID) (err error) {
	node, ok := prog.Node(id)
	if !ok {
		err = ErrNodeInvalid
		return
	}
	prog.cursor = node.prev
	return
}

// Append moves the cursor to the end of the program.
func (prog *Program) Append() {
	prog.cursor = prog.nodes[0].prev
}

// Remove unlinks a node. A removed label node leaves its label unbound.
func (prog *Program) Remove(id NodeID) (err error) {
	node, ok := prog.Node(id)
	if !ok {
		err = ErrNodeInvalid
		return
	}

	prog.nodes[node.prev].next = node.next
	prog.nodes[node.next].prev = node.prev
	if prog.cursor == id {
		prog.cursor = node.prev
	}
	if node.Kind == NODE_LABEL {
		prog.labels[node.Label-1].bound = 0
	}

	*node = Node{}
	prog.count--
	return
}

// link adds a node after the cursor.
func (prog *Program) link(node Node) (id NodeID) {
	id = NodeID(len(prog.nodes))
	after := prog.cursor
	before := prog.nodes[after].next

	node.prev = after
	node.next = before
	node.live = true
	prog.nodes = append(prog.nodes, node)
	prog.nodes[after].next = id
	prog.nodes[before].prev = id

	prog.cursor = id
	prog.count++
	return
}

// NewLabel creates an unbound label.
func (prog *Program) NewLabel() x86.Label {
	return prog.NewNamedLabel("")
}

// NewNamedLabel creates an unbound label with a name for diagnostics.
func (prog *Program) NewNamedLabel(name string) (label x86.Label) {
	prog.labels = append(prog.labels, labelEntry{name: name})
	label = x86.Label(len(prog.labels))
	return
}

// LabelName returns the name of a label, or its generic name.
func (prog *Program) LabelName(label x86.Label) string {
	if prog.LabelState(label) != LABEL_INVALID {
		if name := prog.labels[label-1].name; len(name) != 0 {
			return name
		}
	}
	return label.String()
}

// LabelState returns the binding state of a label.
func (prog *Program) LabelState(label x86.Label) LabelState {
	if label == 0 || int(label) > len(prog.labels) {
		return LABEL_INVALID
	}
	if prog.labels[label-1].bound == 0 {
		return LABEL_UNBOUND
	}
	return LABEL_BOUND
}

// Labels iterates over the labels of the program in creation order.
func (prog *Program) Labels() iter.Seq2[x86.Label, string] {
	return func(yield func(label x86.Label, name string) bool) {
		for n := range prog.labels {
			label := x86.Label(n + 1)
			if !yield(label, prog.LabelName(label)) {
				return
			}
		}
	}
}

// Bind places a label at the cursor. A label is bound at most once.
func (prog *Program) Bind(label x86.Label) (id NodeID, err error) {
	switch prog.LabelState(label) {
	case LABEL_INVALID:
		err = ErrLabelInvalid
		return
	case LABEL_BOUND:
		err = ErrLabelBound
		return
	}

	id = prog.link(Node{Kind: NODE_LABEL, Label: label})
	prog.labels[label-1].bound = id
	return
}

// NewSymbol declares an external symbol. Symbols of the same name share
// one Symbol.
func (prog *Program) NewSymbol(name string) x86.Symbol {
	if n := slices.Index(prog.symbols, name); n >= 0 {
		return x86.Symbol(n + 1)
	}
	prog.symbols = append(prog.symbols, name)
	return x86.Symbol(len(prog.symbols))
}

// SymbolName returns the name of an external symbol.
func (prog *Program) SymbolName(sym x86.Symbol) string {
	if !prog.validSymbol(sym) {
		return sym.String()
	}
	return prog.symbols[sym-1]
}

// symbolNames iterates over the declared symbols.
func (prog *Program) symbolNames() iter.Seq2[x86.Symbol, string] {
	return func(yield func(sym x86.Symbol, name string) bool) {
		for n, name := range prog.symbols {
			if !yield(x86.Symbol(n+1), name) {
				return
			}
		}
	}
}

func (prog *Program) validSymbol(sym x86.Symbol) bool {
	return sym != 0 && int(sym) <= len(prog.symbols)
}

func (prog *Program) validLabel(label x86.Label) bool {
	return prog.LabelState(label) != LABEL_INVALID
}

// checkReferences verifies the labels and symbols of an operand belong to
// the program.
func (prog *Program) checkReferences(op x86.Operand) (err error) {
	var label x86.Label
	var sym x86.Symbol
	switch op := op.(type) {
	case x86.Label:
		label = op
		if label == 0 {
			return ErrLabelInvalid
		}
	case x86.Symbol:
		sym = op
		if sym == 0 {
			return ErrSymbolInvalid
		}
	case x86.Memory:
		label, sym = op.Label, op.Symbol
	case x86.Pointer:
		label, sym = op.Label, op.Symbol
	}

	if label != 0 && !prog.validLabel(label) {
		return ErrLabelInvalid
	}
	if sym != 0 && !prog.validSymbol(sym) {
		return ErrSymbolInvalid
	}
	return
}

// Emit adds an instruction at the cursor.
func (prog *Program) Emit(mnemonic x86.Mnemonic, operands ...x86.Operand) (id NodeID, err error) {
	return prog.EmitInstruction(x86.Inst(mnemonic, operands...))
}

// EmitInstruction matches an instruction against the database and adds
// it at the cursor. On error the program is unchanged.
func (prog *Program) EmitInstruction(inst *x86.Instruction) (id NodeID, err error) {
	for _, op := range inst.Operands {
		err = prog.checkReferences(op)
		if err != nil {
			err = &x86.ErrBuild{Instruction: inst.String(), Err: err}
			return
		}
	}

	sel, err := x86.Match(prog.Mode, inst)
	if err != nil {
		return
	}

	clone := *inst
	clone.Operands = slices.Clone(inst.Operands)
	id = prog.link(Node{Kind: NODE_INSTRUCTION, Instruction: &clone, selection: sel})
	return
}

// Data adds raw bytes at the cursor.
func (prog *Program) Data(data []byte) (id NodeID) {
	id = prog.link(Node{Kind: NODE_DATA, Data: slices.Clone(data)})
	return
}

// Pointer adds the address of a label or symbol as a data word of width
// bits.
func (prog *Program) Pointer(target x86.Operand, width int) (id NodeID, err error) {
	if width != 32 && width != 64 {
		err = ErrPointerWidth
		return
	}

	ptr := x86.Pointer{Width: width}
	switch target := target.(type) {
	case x86.Label:
		ptr.Label = target
	case x86.Symbol:
		ptr.Symbol = target
	case x86.Pointer:
		ptr = target
		ptr.Width = width
		if (ptr.Label == 0) == (ptr.Symbol == 0) {
			err = ErrPointerInvalid
			return
		}
	default:
		err = ErrPointerInvalid
		return
	}

	err = prog.checkReferences(ptr)
	if err != nil {
		return
	}

	id = prog.link(Node{Kind: NODE_DATA, Data: make([]byte, width/8), Pointer: &ptr})
	return
}

// MaxAlign is the largest alignment of Align and Section nodes.
const MaxAlign = 1 << 20

func checkAlign(n int) error {
	if n <= 0 || n > MaxAlign || bits.OnesCount(uint(n)) != 1 {
		return ErrAlignInvalid
	}
	return nil
}

// Align pads the program to a multiple of n bytes, a power of two.
func (prog *Program) Align(n int, fill Fill) (id NodeID, err error) {
	err = checkAlign(n)
	if err != nil {
		return
	}
	if !fill.IsValid() {
		err = ErrFillInvalid
		return
	}
	id = prog.link(Node{Kind: NODE_ALIGN, Align: n, Fill: fill})
	return
}

// Section starts a named section aligned to align bytes.
func (prog *Program) Section(name string, align int) (id NodeID, err error) {
	err = checkAlign(align)
	if err != nil {
		return
	}
	fill := FILL_NOP
	if name != DefaultSection {
		fill = FILL_ZERO
	}
	id = prog.link(Node{Kind: NODE_SECTION, Section: name, Align: align, Fill: fill})
	return
}
