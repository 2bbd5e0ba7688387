package asm

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"golang.org/x/arch/x86/x86asm"

	"github.com/ezrec/jitasm/x86"
)

// scenario is a small counting loop.
func scenario(t *testing.T) (prog *Program, loop x86.Label, jl NodeID) {
	assert := assert.New(t)

	prog = NewProgram(x86.MODE_64)
	loop = prog.NewNamedLabel("loop")

	_, err := prog.Emit(x86.MOV, x86.EAX, x86.Imm(0))
	assert.NoError(err)
	_, err = prog.Bind(loop)
	assert.NoError(err)
	_, err = prog.Emit(x86.CMP, x86.EAX, x86.Imm(10))
	assert.NoError(err)
	jl, err = prog.Emit(x86.JL, loop)
	assert.NoError(err)
	return
}

func TestFinalizeScenario(t *testing.T) {
	assert := assert.New(t)

	prog, loop, jl := scenario(t)

	as := &Assembler{}
	out, err := as.Finalize(prog, 0x1000)
	assert.NoError(err)

	expected := []byte{
		0xb8, 0x00, 0x00, 0x00, 0x00,
		0x83, 0xf8, 0x0a,
		0x7c, 0xfb,
	}
	assert.Empty(cmp.Diff(expected, out.Bytes))
	assert.Equal(uint64(0x1000), out.Base)
	assert.Equal(map[x86.Label]uint64{loop: 0x1005}, out.Labels)
	assert.Empty(out.Relocations)
	assert.Equal([]Section{{Name: DefaultSection, Address: 0x1000, Size: 10}}, out.Sections)
	assert.Equal(2, out.Passes)

	addr, ok := out.NodeAddress(jl)
	assert.True(ok)
	assert.Equal(uint64(0x1008), addr)
	assert.Equal([]byte{0x7c, 0xfb}, out.NodeBytes(jl))

	id, offset, ok := out.Lookup(0x1009)
	assert.True(ok)
	assert.Equal(jl, id)
	assert.Equal(1, offset)

	id, offset, ok = out.Lookup(0x1005)
	assert.True(ok)
	assert.Equal(0, offset)
	node, _ := prog.Node(id)
	assert.Equal(x86.CMP, node.Instruction.Mnemonic)

	_, _, ok = out.Lookup(0x100a)
	assert.False(ok)
}

func TestFinalizeSingle(t *testing.T) {
	assert := assert.New(t)

	prog := NewProgram(x86.MODE_64)
	_, err := prog.Emit(x86.ADD, x86.EAX, x86.Imm(1))
	assert.NoError(err)

	out, err := (&Assembler{}).Finalize(prog, 0)
	assert.NoError(err)
	assert.Equal([]byte{0x83, 0xc0, 0x01}, out.Bytes)
	assert.Equal(1, out.Passes)
}

func TestFinalizeEmpty(t *testing.T) {
	assert := assert.New(t)

	out, err := (&Assembler{}).Finalize(NewProgram(x86.MODE_64), 0x4000)
	assert.NoError(err)
	assert.Empty(out.Bytes)
	assert.Equal([]Section{{Name: DefaultSection, Address: 0x4000}}, out.Sections)
}

// jumpChain returns a program whose first jump only reaches its target
// once the second one is shortened.
func jumpChain() *Program {
	prog := NewProgram(x86.MODE_64)
	end := prog.NewLabel()
	prog.Emit(x86.JMP, end)
	prog.Emit(x86.JMP, end)
	prog.Data(make([]byte, 123))
	prog.Bind(end)
	return prog
}

func TestFinalizeJumpChain(t *testing.T) {
	assert := assert.New(t)

	as := &Assembler{Verbose: testing.Verbose()}
	out, err := as.Finalize(jumpChain(), 0)
	assert.NoError(err)

	assert.Equal([]byte{0xeb, 0x7d, 0xeb, 0x7b}, out.Bytes[:4])
	assert.Len(out.Bytes, 127)
	assert.Equal(3, out.Passes)
}

func TestFinalizeJumpTable(t *testing.T) {
	table := map[int]int{
		10: 0,
		30: 5,
		40: 15,
		60: 35,
	}

	for jumps, wide := range table {
		t.Run(fmt.Sprintf("%d", jumps), func(t *testing.T) {
			assert := assert.New(t)

			prog := NewProgram(x86.MODE_64)
			end := prog.NewLabel()
			var ids []NodeID
			for range jumps {
				id, err := prog.Emit(x86.JMP, end)
				assert.NoError(err)
				ids = append(ids, id)
				prog.Data([]byte{1, 2, 3})
			}
			prog.Bind(end)

			out, err := (&Assembler{}).Finalize(prog, 0)
			assert.NoError(err)
			target, ok := out.LabelAddress(end)
			assert.True(ok)

			count := 0
			for n, id := range ids {
				code := out.NodeBytes(id)
				if code[0] == 0xe9 {
					count++
					assert.Len(code, 5)
				} else {
					assert.Equal([]byte{0xeb}, code[:1])
				}
				// Only the leading jumps are too far for rel8.
				assert.Equal(n < wide, code[0] == 0xe9, "jump %d", n)

				addr, _ := out.NodeAddress(id)
				inst, err := x86asm.Decode(code, 64)
				assert.NoError(err)
				rel, ok := inst.Args[0].(x86asm.Rel)
				assert.True(ok)
				assert.Equal(target, addr+uint64(len(code))+uint64(int64(rel)))
			}
			assert.Equal(wide, count)

			again, err := (&Assembler{}).Finalize(prog, 0)
			assert.NoError(err)
			assert.Empty(cmp.Diff(out.Bytes, again.Bytes))
		})
	}
}

func TestFinalizeNonConvergent(t *testing.T) {
	assert := assert.New(t)

	as := &Assembler{MaxPasses: 2}
	out, err := as.Finalize(jumpChain(), 0)
	assert.ErrorIs(err, ErrNonConvergentLayout)
	assert.Nil(out)

	as.MaxPasses = 3
	_, err = as.Finalize(jumpChain(), 0)
	assert.NoError(err)
}

func TestFinalizeWide(t *testing.T) {
	assert := assert.New(t)

	prog := NewProgram(x86.MODE_64)
	end := prog.NewLabel()
	prog.Emit(x86.JE, end)
	prog.Data(make([]byte, 200))
	prog.Bind(end)

	out, err := (&Assembler{}).Finalize(prog, 0)
	assert.NoError(err)
	assert.Equal([]byte{0x0f, 0x84, 0xc8, 0x00, 0x00, 0x00}, out.Bytes[:6])
}

func TestFinalizeAlignPinsWide(t *testing.T) {
	assert := assert.New(t)

	// Shortening the jump grows the padding before the target, which
	// then falls out of reach of the short form.
	prog := NewProgram(x86.MODE_64)
	end := prog.NewLabel()
	prog.Emit(x86.JMP, end)
	prog.Data(make([]byte, 127))
	prog.Align(4, FILL_INT3)
	prog.Bind(end)

	out, err := (&Assembler{}).Finalize(prog, 0x1000)
	assert.NoError(err)
	assert.Equal([]byte{0xe9, 0x7f, 0x00, 0x00, 0x00}, out.Bytes[:5])
	assert.Equal(uint64(0x1084), out.Labels[end])
	assert.Equal(3, out.Passes)
}

func TestFinalizeLabelDisplacement(t *testing.T) {
	for _, distance := range []int{0, 1, 100, 125, 126, 127, 128, 129, 200, 1000, 70000} {
		for _, backward := range []bool{false, true} {
			t.Run(fmt.Sprintf("%d-%v", distance, backward), func(t *testing.T) {
				assert := assert.New(t)

				prog := NewProgram(x86.MODE_64)
				label := prog.NewLabel()
				var jmp NodeID
				if backward {
					prog.Bind(label)
					prog.Data(make([]byte, distance))
					jmp, _ = prog.Emit(x86.JMP, label)
				} else {
					jmp, _ = prog.Emit(x86.JMP, label)
					prog.Data(make([]byte, distance))
					prog.Bind(label)
				}

				out, err := (&Assembler{}).Finalize(prog, 0x40_0000)
				assert.NoError(err)

				code := out.NodeBytes(jmp)
				inst, err := x86asm.Decode(code, 64)
				assert.NoError(err)
				assert.Equal(x86asm.JMP, inst.Op)
				assert.Equal(len(code), inst.Len)

				addr, _ := out.NodeAddress(jmp)
				rel := int64(inst.Args[0].(x86asm.Rel))
				assert.Equal(out.Labels[label], uint64(int64(addr)+int64(len(code))+rel))

				short := distance <= 127
				if backward {
					short = distance <= 126
				}
				assert.Equal(short, len(code) == 2)
			})
		}
	}
}

func TestFinalizeUnresolved(t *testing.T) {
	assert := assert.New(t)

	prog := NewProgram(x86.MODE_64)
	missing := prog.NewNamedLabel("missing")
	_, err := prog.Emit(x86.JMP, missing)
	assert.NoError(err)

	_, err = (&Assembler{}).Finalize(prog, 0)
	var unresolved ErrUnresolvedLabel
	assert.True(errors.As(err, &unresolved))
	assert.Equal(ErrUnresolvedLabel("missing"), unresolved)

	prog = NewProgram(x86.MODE_64)
	missing = prog.NewLabel()
	_, err = prog.Pointer(missing, 64)
	assert.NoError(err)
	_, err = (&Assembler{}).Finalize(prog, 0)
	assert.True(errors.As(err, &unresolved))
}

func TestFinalizeOverflow(t *testing.T) {
	assert := assert.New(t)

	prog := NewProgram(x86.MODE_64)
	end := prog.NewLabel()
	jrcxz, _ := prog.Emit(x86.JRCXZ, end)
	prog.Data(make([]byte, 200))
	prog.Bind(end)

	_, err := (&Assembler{}).Finalize(prog, 0)
	var overflow *ErrRelocationOverflow
	assert.True(errors.As(err, &overflow))
	assert.Equal(jrcxz, overflow.Node)
	assert.Equal(1, overflow.Offset)
	assert.Equal(8, overflow.Width)
	assert.Equal(int64(200), overflow.Value)

	// Unsigned 32-bit pointer above 4GiB.
	prog = NewProgram(x86.MODE_64)
	here := prog.NewLabel()
	prog.Bind(here)
	prog.Pointer(here, 32)

	_, err = (&Assembler{}).Finalize(prog, 0x1_0000_0000)
	assert.True(errors.As(err, &overflow))
	assert.Equal(32, overflow.Width)

	out, err := (&Assembler{}).Finalize(prog, 0xffff_0000)
	assert.NoError(err)
	assert.Equal([]byte{0x00, 0x00, 0xff, 0xff}, out.Bytes)
}

func TestFinalizeRelocations(t *testing.T) {
	assert := assert.New(t)

	prog := NewProgram(x86.MODE_64)
	data := prog.NewNamedLabel("data")
	puts := prog.NewSymbol("puts")

	call, _ := prog.Emit(x86.CALL, puts)
	lea, _ := prog.Emit(x86.LEA, x86.RAX, x86.MemLabel(data, 0))
	mov, _ := prog.Emit(x86.MOV, x86.RCX, x86.Pointer{Label: data, Addend: 4})
	jmp, _ := prog.Emit(x86.JMP, x86.Absolute(0x1040))
	prog.Bind(data)
	ptr, _ := prog.Pointer(puts, 64)

	out, err := (&Assembler{}).Finalize(prog, 0x1000)
	assert.NoError(err)

	// call puts           @0x1000 e8 00 00 00 00
	// lea rax, [data]     @0x1005 48 8d 05 rel32
	// mov rcx, data+4     @0x100c 48 b9 imm64
	// jmp 0x1040          @0x1016 eb rel8
	// data:               @0x1018 .quad puts
	expected := []byte{
		0xe8, 0x00, 0x00, 0x00, 0x00,
		0x48, 0x8d, 0x05, 0x0c, 0x00, 0x00, 0x00,
		0x48, 0xb9, 0x1c, 0x10, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0xeb, 0x28,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}
	assert.Empty(cmp.Diff(expected, out.Bytes))
	assert.Equal(uint64(0x1018), out.Labels[data])

	relocs := []Relocation{
		{Node: call, NodeOffset: 1, Offset: 1, Kind: RELOC_REL32, Symbol: puts, Addend: -4},
		{Node: mov, NodeOffset: 2, Offset: 0x0e, Kind: RELOC_ABS64, Target: 0x1018, Addend: 4},
		{Node: jmp, NodeOffset: 1, Offset: 0x17, Kind: RELOC_REL8, Target: 0x1040, Addend: -1},
		{Node: ptr, NodeOffset: 0, Offset: 0x18, Kind: RELOC_ABS64, Symbol: puts},
	}
	assert.Empty(cmp.Diff(relocs, out.Relocations))

	// The node offset locates the field within the node's bytes.
	for _, reloc := range out.Relocations {
		addr, ok := out.NodeAddress(reloc.Node)
		assert.True(ok)
		assert.Equal(reloc.Offset, int(addr-out.Base)+reloc.NodeOffset)
	}

	external := slices.Collect(out.External())
	assert.Equal([]Relocation{relocs[0], relocs[3]}, external)
	assert.Equal(map[x86.Symbol]string{puts: "puts"}, out.Symbols)

	_, ok := out.NodeAddress(lea)
	assert.True(ok)
}

func TestFinalizeMode32(t *testing.T) {
	assert := assert.New(t)

	prog := NewProgram(x86.MODE_32)
	value := prog.NewLabel()
	top := prog.NewLabel()
	prog.Bind(top)
	prog.Emit(x86.MOV, x86.EAX, x86.MemLabel(value, 0))
	prog.Emit(x86.JMP, top)
	prog.Bind(value)
	prog.Data([]byte{1, 2, 3, 4})

	out, err := (&Assembler{}).Finalize(prog, 0x1000)
	assert.NoError(err)

	expected := []byte{
		0x8b, 0x05, 0x08, 0x10, 0x00, 0x00,
		0xeb, 0xf8,
		0x01, 0x02, 0x03, 0x04,
	}
	assert.Empty(cmp.Diff(expected, out.Bytes))
	assert.Equal([]Relocation{{Node: 2, NodeOffset: 2, Offset: 2, Kind: RELOC_ABS32, Target: 0x1008}}, out.Relocations)

	inst, err := x86asm.Decode(out.Bytes, 32)
	assert.NoError(err)
	assert.Equal(x86asm.MOV, inst.Op)
	assert.Equal(6, inst.Len)
}

func TestFinalizeAlign(t *testing.T) {
	assert := assert.New(t)

	prog := NewProgram(x86.MODE_64)
	prog.Emit(x86.ADD, x86.EAX, x86.Imm(1))
	prog.Align(16, FILL_NOP)
	prog.Emit(x86.RET)
	prog.Align(4, FILL_INT3)
	prog.Align(4, FILL_INT3)

	out, err := (&Assembler{}).Finalize(prog, 0x1000)
	assert.NoError(err)
	assert.Len(out.Bytes, 20)
	assert.Equal(nops[9], out.Bytes[3:12])
	assert.Equal(nops[4], out.Bytes[12:16])
	assert.Equal(byte(0xc3), out.Bytes[16])
	assert.Equal([]byte{0xcc, 0xcc, 0xcc}, out.Bytes[17:])

	// The padding decodes as two NOP instructions.
	for _, span := range [][]byte{out.Bytes[3:12], out.Bytes[12:16]} {
		inst, err := x86asm.Decode(span, 64)
		assert.NoError(err)
		assert.Equal(x86asm.NOP, inst.Op)
		assert.Equal(len(span), inst.Len)
	}
}

func TestFinalizeSections(t *testing.T) {
	assert := assert.New(t)

	prog := NewProgram(x86.MODE_64)
	prog.Emit(x86.RET)
	prog.Section(".data", 16)
	prog.Data([]byte{1, 2, 3, 4})

	out, err := (&Assembler{}).Finalize(prog, 0x1000)
	assert.NoError(err)
	assert.Equal([]Section{
		{Name: DefaultSection, Address: 0x1000, Size: 1},
		{Name: ".data", Address: 0x1010, Size: 4},
	}, out.Sections)
	assert.Equal(make([]byte, 15), out.Bytes[1:16])

	// A leading section replaces the default one.
	prog = NewProgram(x86.MODE_64)
	prog.Section(".init", 16)
	prog.Emit(x86.RET)
	out, err = (&Assembler{}).Finalize(prog, 0x1000)
	assert.NoError(err)
	assert.Equal([]Section{{Name: ".init", Address: 0x1000, Size: 1}}, out.Sections)
}

func TestFinalizeIdempotent(t *testing.T) {
	assert := assert.New(t)

	build := func() *Program {
		prog, loop, _ := scenario(t)
		sym := prog.NewSymbol("callback")
		prog.Emit(x86.CALL, sym)
		prog.Emit(x86.JMP, loop)
		prog.Align(16, FILL_NOP)
		prog.Pointer(loop, 64)
		return prog
	}

	as := &Assembler{}
	prog := build()
	first, err := as.Finalize(prog, 0x2000)
	assert.NoError(err)
	second, err := as.Finalize(prog, 0x2000)
	assert.NoError(err)
	other, err := as.Finalize(build(), 0x2000)
	assert.NoError(err)

	opts := cmp.AllowUnexported(Output{}, span{})
	assert.Empty(cmp.Diff(first, second, opts))
	assert.Empty(cmp.Diff(first, other, opts))

	// A different base moves the labels with it.
	moved, err := as.Finalize(prog, 0x3000)
	assert.NoError(err)
	for label, addr := range first.Labels {
		assert.Equal(addr+0x1000, moved.Labels[label])
	}
}

func TestFinalizeEdit(t *testing.T) {
	assert := assert.New(t)

	prog, loop, jl := scenario(t)

	// Grow the loop body until the branch needs its wide form.
	assert.NoError(prog.InsertBefore(jl))
	pad := prog.Data(make([]byte, 130))

	out, err := (&Assembler{}).Finalize(prog, 0x1000)
	assert.NoError(err)
	assert.Equal([]byte{0x0f, 0x8c}, out.NodeBytes(jl)[:2])

	// And shrink it back.
	assert.NoError(prog.Remove(pad))
	out, err = (&Assembler{}).Finalize(prog, 0x1000)
	assert.NoError(err)
	assert.Equal([]byte{0x7c, 0xfb}, out.NodeBytes(jl))
	assert.Equal(uint64(0x1005), out.Labels[loop])
}

func TestFinalizeDecode(t *testing.T) {
	assert := assert.New(t)

	prog := NewProgram(x86.MODE_64)
	top := prog.NewLabel()
	done := prog.NewLabel()
	var ids []NodeID
	emit := func(m x86.Mnemonic, ops ...x86.Operand) {
		id, err := prog.Emit(m, ops...)
		assert.NoError(err)
		ids = append(ids, id)
	}

	prog.Bind(top)
	emit(x86.PUSH, x86.RBX)
	emit(x86.MOV, x86.RBX, x86.RDI)
	emit(x86.TEST, x86.RBX, x86.RBX)
	emit(x86.JE, done)
	emit(x86.LEA, x86.RDI, x86.MemIndex(x86.RBX, x86.RSI, 8, 0x10))
	emit(x86.DEC, x86.ESI)
	emit(x86.JNE, top)
	prog.Bind(done)
	emit(x86.POP, x86.RBX)
	emit(x86.RET)

	out, err := (&Assembler{}).Finalize(prog, 0x40_1000)
	assert.NoError(err)

	var decoded []NodeID
	for pc := 0; pc < len(out.Bytes); {
		inst, err := x86asm.Decode(out.Bytes[pc:], 64)
		if !assert.NoError(err) {
			break
		}
		id, offset, ok := out.Lookup(out.Base + uint64(pc))
		assert.True(ok)
		assert.Equal(0, offset)
		assert.Equal(len(out.NodeBytes(id)), inst.Len)
		decoded = append(decoded, id)
		pc += inst.Len
	}
	assert.Equal(ids, decoded)
}
