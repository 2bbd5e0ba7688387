package asm

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/jitasm/x86"
)

func nodeIDs(prog *Program) (ids []NodeID) {
	for id := range prog.Nodes() {
		ids = append(ids, id)
	}
	return
}

func TestProgramEmit(t *testing.T) {
	assert := assert.New(t)

	prog := NewProgram(x86.MODE_64)
	id, err := prog.Emit(x86.ADD, x86.EAX, x86.Imm(1))
	assert.NoError(err)
	assert.Equal(NodeID(1), id)
	assert.Equal(1, prog.Len())

	node, ok := prog.Node(id)
	assert.True(ok)
	assert.Equal(NODE_INSTRUCTION, node.Kind)
	assert.False(node.IsRelaxable())

	// Invalid instructions leave the program unchanged.
	_, err = prog.Emit(x86.ADD, x86.XMM0, x86.RAX)
	assert.ErrorIs(err, x86.ErrInvalidInstruction)
	assert.Equal(1, prog.Len())
	assert.Equal([]NodeID{1}, nodeIDs(prog))

	_, err = prog.Emit(x86.ADD, x86.Mem(x86.RAX, 0), x86.Imm(1))
	assert.ErrorIs(err, x86.ErrAmbiguousOperandSize)
	assert.Equal(1, prog.Len())

	// The program keeps its own copy of the operands.
	inst := x86.Inst(x86.MOV, x86.EAX, x86.ECX)
	id, err = prog.EmitInstruction(inst)
	assert.NoError(err)
	inst.Operands[1] = x86.EDX
	node, _ = prog.Node(id)
	assert.Equal(x86.Operand(x86.ECX), node.Instruction.Operands[1])
}

func TestProgramLabels(t *testing.T) {
	assert := assert.New(t)

	prog := NewProgram(x86.MODE_64)
	loop := prog.NewNamedLabel("loop")
	other := prog.NewLabel()

	assert.Equal(LABEL_UNBOUND, prog.LabelState(loop))
	assert.Equal(LABEL_INVALID, prog.LabelState(x86.Label(0)))
	assert.Equal(LABEL_INVALID, prog.LabelState(x86.Label(99)))
	assert.Equal("loop", prog.LabelName(loop))
	assert.Equal(other.String(), prog.LabelName(other))

	id, err := prog.Bind(loop)
	assert.NoError(err)
	assert.Equal(LABEL_BOUND, prog.LabelState(loop))

	_, err = prog.Bind(loop)
	assert.ErrorIs(err, ErrLabelBound)

	_, err = prog.Bind(x86.Label(99))
	assert.ErrorIs(err, ErrLabelInvalid)

	// Branches may reference labels bound later.
	_, err = prog.Emit(x86.JMP, other)
	assert.NoError(err)

	// Labels of other programs are refused.
	_, err = prog.Emit(x86.JMP, x86.Label(99))
	assert.ErrorIs(err, ErrLabelInvalid)
	var build *x86.ErrBuild
	assert.True(errors.As(err, &build))

	_, err = prog.Emit(x86.LEA, x86.RAX, x86.MemLabel(x86.Label(42), 0))
	assert.ErrorIs(err, ErrLabelInvalid)
	assert.Equal(2, prog.Len())

	// Removing the binding unbinds the label.
	assert.NoError(prog.Remove(id))
	assert.Equal(LABEL_UNBOUND, prog.LabelState(loop))
	_, err = prog.Bind(loop)
	assert.NoError(err)

	var names []string
	for _, name := range prog.Labels() {
		names = append(names, name)
	}
	assert.Equal([]string{"loop", other.String()}, names)
}

func TestProgramSymbols(t *testing.T) {
	assert := assert.New(t)

	prog := NewProgram(x86.MODE_64)
	puts := prog.NewSymbol("puts")
	exit := prog.NewSymbol("exit")
	assert.NotEqual(puts, exit)
	assert.Equal(puts, prog.NewSymbol("puts"))
	assert.Equal("exit", prog.SymbolName(exit))
	assert.Equal(x86.Symbol(7).String(), prog.SymbolName(x86.Symbol(7)))

	_, err := prog.Emit(x86.CALL, puts)
	assert.NoError(err)

	_, err = prog.Emit(x86.CALL, x86.Symbol(7))
	assert.ErrorIs(err, ErrSymbolInvalid)
}

func TestProgramInsert(t *testing.T) {
	assert := assert.New(t)

	prog := NewProgram(x86.MODE_64)
	a, _ := prog.Emit(x86.NOP)
	b, _ := prog.Emit(x86.RET)
	assert.Equal([]NodeID{a, b}, nodeIDs(prog))

	assert.NoError(prog.InsertBefore(b))
	c, _ := prog.Emit(x86.INT3)
	d := prog.Data([]byte{1, 2})
	assert.Equal([]NodeID{a, c, d, b}, nodeIDs(prog))

	assert.NoError(prog.InsertBefore(a))
	e, _ := prog.Emit(x86.PUSH, x86.RBP)
	assert.Equal([]NodeID{e, a, c, d, b}, nodeIDs(prog))

	assert.NoError(prog.Remove(c))
	assert.Equal([]NodeID{e, a, d, b}, nodeIDs(prog))
	assert.Equal(4, prog.Len())
	assert.ErrorIs(prog.Remove(c), ErrNodeInvalid)
	_, ok := prog.Node(c)
	assert.False(ok)

	// Surviving ids still reach their nodes.
	node, ok := prog.Node(d)
	assert.True(ok)
	assert.Equal([]byte{1, 2}, node.Data)

	assert.NoError(prog.InsertAfter(d))
	assert.Equal(d, prog.Cursor())
	f, _ := prog.Emit(x86.NOP)
	assert.Equal([]NodeID{e, a, d, f, b}, nodeIDs(prog))

	prog.Append()
	g, _ := prog.Emit(x86.HLT)
	assert.Equal([]NodeID{e, a, d, f, b, g}, nodeIDs(prog))

	assert.ErrorIs(prog.InsertAfter(NodeID(0)), ErrNodeInvalid)
	assert.ErrorIs(prog.InsertBefore(NodeID(99)), ErrNodeInvalid)

	// Removing every node empties the list.
	for _, id := range slices.Clone(nodeIDs(prog)) {
		assert.NoError(prog.Remove(id))
	}
	assert.Equal(0, prog.Len())
	assert.Empty(nodeIDs(prog))
}

func TestProgramDirectives(t *testing.T) {
	assert := assert.New(t)

	prog := NewProgram(x86.MODE_64)
	label := prog.NewLabel()

	_, err := prog.Align(3, FILL_NOP)
	assert.ErrorIs(err, ErrAlignInvalid)
	_, err = prog.Align(0, FILL_NOP)
	assert.ErrorIs(err, ErrAlignInvalid)
	_, err = prog.Align(MaxAlign*2, FILL_NOP)
	assert.ErrorIs(err, ErrAlignInvalid)
	_, err = prog.Section(".data", 12)
	assert.ErrorIs(err, ErrAlignInvalid)
	_, err = prog.Align(16, Fill(0x100))
	assert.ErrorIs(err, ErrFillInvalid)
	_, err = prog.Align(16, Fill(-2))
	assert.ErrorIs(err, ErrFillInvalid)

	_, err = prog.Pointer(label, 16)
	assert.ErrorIs(err, ErrPointerWidth)
	_, err = prog.Pointer(x86.Imm(1), 64)
	assert.ErrorIs(err, ErrPointerInvalid)
	_, err = prog.Pointer(x86.Label(5), 64)
	assert.ErrorIs(err, ErrLabelInvalid)
	assert.Equal(0, prog.Len())

	id, err := prog.Pointer(label, 64)
	assert.NoError(err)
	node, _ := prog.Node(id)
	assert.Equal(NODE_DATA, node.Kind)
	assert.Len(node.Data, 8)
	assert.Equal(label, node.Pointer.Label)

	id, err = prog.Pointer(x86.Pointer{Label: label, Addend: 8}, 32)
	assert.NoError(err)
	node, _ = prog.Node(id)
	assert.Equal(int64(8), node.Pointer.Addend)
	assert.Equal(32, node.Pointer.Width)

	id, err = prog.Align(16, FILL_INT3)
	assert.NoError(err)
	node, _ = prog.Node(id)
	assert.Equal(".align 16", node.String())
	assert.Equal("align", node.Kind.String())
	assert.Equal("NodeKind(0)", NodeKind(0).String())
	assert.Equal("bound", LABEL_BOUND.String())
	assert.Equal("rel32", RELOC_REL32.String())
}
