package source

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/arch/x86/x86asm"

	"github.com/ezrec/jitasm/asm"
	"github.com/ezrec/jitasm/x86"
)

func parse(p *Parser, lines ...string) (*asm.Program, error) {
	return p.Parse(strings.NewReader(strings.Join(lines, "\n")))
}

// instructions returns the instructions of a program in order.
func instructions(prog *asm.Program) (insts []*x86.Instruction) {
	for _, node := range prog.Nodes() {
		if node.Kind == asm.NODE_INSTRUCTION {
			insts = append(insts, node.Instruction)
		}
	}
	return
}

// decode returns the decoded mnemonics of machine code.
func decode(t *testing.T, code []byte) (ops []string) {
	for len(code) > 0 {
		inst, err := x86asm.Decode(code, 64)
		require.NoError(t, err)
		ops = append(ops, inst.Op.String())
		code = code[inst.Len:]
	}
	return
}

func TestParser(t *testing.T) {
	assert := assert.New(t)

	p := &Parser{}

	prog, err := parse(p, "")
	assert.NoError(err)
	assert.Equal(0, prog.Len())
	assert.Equal(x86.MODE_64, prog.Mode)

	assert.Equal("0", p.Equate["LINENO"])
	assert.Equal("64", p.Equate["MODE"])
	assert.Equal("8", p.Equate["PTRSIZE"])
}

func TestParserScenario(t *testing.T) {
	assert := assert.New(t)

	p := &Parser{Verbose: testing.Verbose()}
	prog, err := parse(p,
		"; count to ten",
		"        mov eax, 0",
		"loop:   cmp eax, 10  ; compare",
		"        jl loop",
	)
	require.NoError(t, err)
	assert.Equal(4, prog.Len())

	out, err := (&asm.Assembler{}).Finalize(prog, 0x1000)
	require.NoError(t, err)

	expected := []byte{
		0xb8, 0x00, 0x00, 0x00, 0x00,
		0x83, 0xf8, 0x0a,
		0x7c, 0xfb,
	}
	assert.Empty(cmp.Diff(expected, out.Bytes))
	assert.Equal(uint64(0x1005), out.Labels[p.Label["loop"]])

	// Each node remembers its source line.
	var lines []int
	for id := range prog.Nodes() {
		lines = append(lines, p.Source[id].LineNo)
	}
	assert.Equal([]int{2, 3, 3, 4}, lines)
}

func TestParserEqu(t *testing.T) {
	assert := assert.New(t)

	p := &Parser{}
	p.Predefine("BASE", "0x40")
	prog, err := parse(p,
		".equ COUNT 0x10",
		".equ DOUBLE $(COUNT * 2)",
		"mov eax, COUNT",
		"mov ecx, DOUBLE",
		"mov edx, $(LINENO * 8)",
		"mov ebx, 'A'",
		"mov esi, BASE",
		".equ REG, edi",
		"mov REG, ~0",
	)
	require.NoError(t, err)

	var values []x86.Operand
	for _, inst := range instructions(prog) {
		values = append(values, inst.Operands[1])
	}
	assert.Equal([]x86.Operand{
		x86.Imm(0x10), x86.Imm(0x20), x86.Imm(40), x86.Imm('A'), x86.Imm(0x40), x86.Imm(-1),
	}, values)
	assert.Equal(x86.Operand(x86.EDI), instructions(prog)[5].Operands[0])
}

func TestParserEquStrings(t *testing.T) {
	assert := assert.New(t)

	p := &Parser{}
	prog, err := parse(p,
		".equ FOO 7",
		".macro DEF name",
		"name: .byte FOO",
		".endm",
		"msg: .ascii \"FOO\", \"a \\\"FOO\\\" b\"",
		"DEF here",
	)
	require.NoError(t, err)
	assert.Contains(p.Label, "msg")
	assert.Contains(p.Label, "here")

	var data [][]byte
	for _, node := range prog.Nodes() {
		if node.Kind == asm.NODE_DATA {
			data = append(data, node.Data)
		}
	}
	assert.Equal([][]byte{[]byte("FOOa \"FOO\" b"), {7}}, data)
}

func TestParserMacro(t *testing.T) {
	assert := assert.New(t)

	p := &Parser{}
	prog, err := parse(p,
		".macro CLEAR reg",
		"xor reg, reg",
		".endm",
		".macro SPIN count",
		"mov ecx, count",
		"@top: dec ecx",
		"jnz @top",
		".endm",
		"CLEAR eax",
		"SPIN 3",
		"SPIN $(2 * 2)",
	)
	require.NoError(t, err)
	assert.Contains(p.Label, "SPIN_2_top")
	assert.Contains(p.Label, "SPIN_3_top")
	assert.Len(p.Macro["SPIN"].Lines, 3)
	assert.Equal([]string{"count"}, p.Macro["SPIN"].Args)

	out, err := (&asm.Assembler{}).Finalize(prog, 0)
	require.NoError(t, err)
	assert.Equal([]string{"XOR", "MOV", "DEC", "JNE", "MOV", "DEC", "JNE"}, decode(t, out.Bytes))

	// Macro arguments are scoped to the expansion.
	_, ok := p.Equate["count"]
	assert.False(ok)
}

func TestParserMemory(t *testing.T) {
	table := []struct {
		line string
		mem  x86.Memory
	}{
		{"mov eax, [rax]", x86.Mem(x86.RAX, 0)},
		{"mov eax, dword ptr [rbx + rcx*4 + 0x10]", x86.Memory{Base: x86.RBX, Index: x86.RCX, Scale: 4, Disp: 0x10, Size: 32}},
		{"mov eax, [rbp - 8]", x86.Mem(x86.RBP, -8)},
		{"mov eax, fs:[0x28]", x86.Memory{Segment: x86.FS, Disp: 0x28}},
		{"mov eax, dword ptr gs:[rax]", x86.Memory{Segment: x86.GS, Base: x86.RAX, Size: 32}},
		{"mov eax, [8*rsi + rdi]", x86.Memory{Base: x86.RDI, Index: x86.RSI, Scale: 8}},
		{"mov al, byte ptr [r8 + r9]", x86.Memory{Base: x86.R8, Index: x86.R9, Scale: 1, Size: 8}},
		{"mov eax, [rip + 0x10]", x86.Mem(x86.RIP, 0x10)},
		{"lea rax, [rip + data]", x86.Memory{Label: 1}},
		{"lea rax, [data + 4]", x86.Memory{Label: 1, Disp: 4}},
		{"mov eax, [rbx + data]", x86.Memory{Base: x86.RBX, Label: 1}},
	}

	for _, entry := range table {
		t.Run(entry.line, func(t *testing.T) {
			assert := assert.New(t)

			p := &Parser{}
			prog, err := parse(p, entry.line, "data:")
			require.NoError(t, err)

			insts := instructions(prog)
			require.Len(t, insts, 1)
			assert.Equal(x86.Operand(entry.mem), insts[0].Operands[1])
		})
	}
}

func TestParserDecorations(t *testing.T) {
	assert := assert.New(t)

	p := &Parser{}
	prog, err := parse(p,
		"vaddps zmm0 {k1}{z}, zmm1, zmm2",
		"vaddps zmm0, zmm1, dword ptr [rax]{1to16}",
		"vaddps zmm0, zmm1, zmm2, {rn-sae}",
		"lock add dword ptr [rax], 1",
		"rep movsb",
	)
	require.NoError(t, err)

	insts := instructions(prog)
	require.Len(t, insts, 5)

	assert.Equal(x86.K1, insts[0].Mask)
	assert.True(insts[0].Zeroing)
	assert.True(insts[1].Broadcast)
	assert.Equal(x86.ROUND_RN, insts[2].Rounding)
	assert.Len(insts[2].Operands, 3)
	assert.Equal(x86.PREFIX_LOCK, insts[3].Prefix)
	assert.Equal(x86.PREFIX_REP, insts[4].Prefix)

	out, err := (&asm.Assembler{}).Finalize(prog, 0)
	require.NoError(t, err)
	assert.Equal([]byte{0x62, 0xf1, 0x74, 0xc9, 0x58, 0xc2}, out.Bytes[:6])
}

func TestParserDirectives(t *testing.T) {
	assert := assert.New(t)

	p := &Parser{}
	prog, err := parse(p,
		".extern puts",
		"start:",
		"    call puts",
		"    lea rdi, [message]",
		"    ret",
		".align 8",
		"table:",
		"    .quad start, message+1, puts",
		"    .dword 1, -1",
		"    .byte 'a', 2",
		".section .rodata, 16",
		"message:",
		"    .asciz \"hi;\\n\"",
		"    .fill 3, 0x90",
	)
	require.NoError(t, err)

	out, err := (&asm.Assembler{}).Finalize(prog, 0)
	require.NoError(t, err)
	assert.Len(out.Bytes, 72)

	message := out.Labels[p.Label["message"]]
	assert.Equal(uint64(64), message)
	assert.Equal(uint64(16), out.Labels[p.Label["table"]])

	assert.Equal([]byte{0xc3}, out.Bytes[12:13])
	assert.Equal(make([]byte, 8), out.Bytes[16:24])
	assert.Equal([]byte{65, 0, 0, 0, 0, 0, 0, 0}, out.Bytes[24:32])
	assert.Equal([]byte{1, 0, 0, 0, 0xff, 0xff, 0xff, 0xff}, out.Bytes[40:48])
	assert.Equal([]byte{'a', 2}, out.Bytes[48:50])
	assert.Equal([]byte("hi;\n\x00"), out.Bytes[64:69])
	assert.Equal([]byte{0x90, 0x90, 0x90}, out.Bytes[69:72])

	assert.Equal([]asm.Section{
		{Name: asm.DefaultSection, Address: 0, Size: 50},
		{Name: ".rodata", Address: 64, Size: 8},
	}, out.Sections)

	puts := p.Symbol["puts"]
	var kinds []asm.RelocationKind
	for _, reloc := range out.Relocations {
		kinds = append(kinds, reloc.Kind)
	}
	assert.Equal([]asm.RelocationKind{asm.RELOC_REL32, asm.RELOC_ABS64, asm.RELOC_ABS64, asm.RELOC_ABS64}, kinds)
	assert.Equal(puts, out.Relocations[0].Symbol)
	assert.Equal(uint64(64), out.Relocations[2].Target)
	assert.Equal(int64(1), out.Relocations[2].Addend)
	assert.Equal(puts, out.Relocations[3].Symbol)
	assert.Equal("puts", out.Symbols[puts])
}

func TestParserMode32(t *testing.T) {
	assert := assert.New(t)

	p := &Parser{Mode: x86.MODE_32}
	prog, err := parse(p,
		"push ebp",
		"mov eax, MODE",
		"mov eax, [value]",
		"value: .dword value",
	)
	require.NoError(t, err)
	assert.Equal(x86.MODE_32, prog.Mode)

	out, err := (&asm.Assembler{}).Finalize(prog, 0x8000)
	require.NoError(t, err)

	expected := []byte{
		0x55,
		0xb8, 0x20, 0x00, 0x00, 0x00,
		0x8b, 0x05, 0x0c, 0x80, 0x00, 0x00,
		0x0c, 0x80, 0x00, 0x00,
	}
	assert.Empty(cmp.Diff(expected, out.Bytes))

	_, err = parse(p, "push rbp")
	assert.ErrorIs(err, x86.ErrInvalidInstruction)
}

func TestParserErrors(t *testing.T) {
	table := []struct {
		name   string
		source []string
		err    error
	}{
		{"empty operand", []string{"mov eax,"}, ErrOperandSyntax},
		{"mnemonic", []string{"frob eax"}, x86.ErrInvalidInstruction},
		{"operands", []string{"add xmm0, rax"}, x86.ErrInvalidInstruction},
		{"size", []string{"add [rax], 1"}, x86.ErrAmbiguousOperandSize},
		{"range", []string{"add al, 0x1000"}, x86.ErrOperandOutOfRange},
		{"label", []string{"x: nop", "x: nop"}, ErrLabelDuplicate},
		{"extern label", []string{".extern x", "x: nop"}, ErrLabelDuplicate},
		{"equ duplicate", []string{".equ A 1", ".equ A 2"}, ErrEquateDuplicate},
		{"equ syntax", []string{".equ A"}, ErrEquateSyntax},
		{"macro lonely", []string{".macro M"}, ErrMacroLonely},
		{"endm lonely", []string{".endm"}, ErrMacroLonelyEndm},
		{"macro nesting", []string{".macro M", ".macro N"}, ErrMacroNesting},
		{"macro duplicate", []string{".macro M", ".endm", ".macro M"}, ErrMacroDuplicate},
		{"macro args", []string{".macro M", "nop", ".endm", "M 1"}, ErrMacroSyntax},
		{"macro recursion", []string{".macro R", "R", ".endm", "R"}, ErrMacroRecursion},
		{"directive", []string{".bogus"}, ErrDirectiveInvalid},
		{"byte range", []string{".byte 300"}, ErrParseNumber("300")},
		{"byte label", []string{"x: .byte x"}, ErrParseNumber("x")},
		{"ascii", []string{".ascii hello"}, ErrDirectiveSyntax},
		{"memory", []string{"mov eax, [rax"}, ErrMemorySyntax},
		{"memory registers", []string{"mov eax, [rax + rbx + rcx]"}, ErrMemorySyntax},
		{"memory size", []string{"mov eax, huge ptr [rax]"}, ErrMemorySyntax},
		{"decoration", []string{"add eax, ecx {k1}"}, ErrDecoration},
		{"prefix only", []string{"lock"}, ErrMnemonicMissing},
		{"align", []string{".align 3"}, asm.ErrAlignInvalid},
		{"align huge", []string{".align 0x40000000"}, ErrDirectiveSyntax},
		{"fill huge", []string{".fill 0x7fffffffffffffff"}, ErrDirectiveSyntax},
		{"fill large", []string{".fill 0x100000000, 0x90"}, ErrDirectiveSyntax},
		{"fill negative", []string{".fill -1"}, ErrDirectiveSyntax},
		{"fill value", []string{".fill 4, 0x100"}, ErrDirectiveSyntax},
		{"operand", []string{"mov eax, ebx ebx"}, ErrParseOperand("ebx ebx")},
		{"character", []string{"mov eax, 'ab'"}, ErrParseOperand("'ab'")},
	}

	for _, entry := range table {
		t.Run(entry.name, func(t *testing.T) {
			assert := assert.New(t)

			_, err := parse(&Parser{}, entry.source...)
			assert.ErrorIs(err, entry.err)

			var syntax ErrSyntax
			assert.True(errors.As(err, &syntax))
			assert.Equal(len(entry.source), syntax.LineNo)
		})
	}
}

func TestParserErrorContext(t *testing.T) {
	assert := assert.New(t)

	_, err := parse(&Parser{}, "nop", "jmp nowhere", "ret")
	var missing ErrLabelMissing
	assert.True(errors.As(err, &missing))
	assert.Equal(ErrLabelMissing("nowhere"), missing)

	_, err = parse(&Parser{}, "mov eax, $(1 +)")
	var syntax ErrSyntax
	assert.True(errors.As(err, &syntax))
	assert.Equal(1, syntax.LineNo)

	_, err = parse(&Parser{},
		".macro BAD",
		"nop",
		"add xmm0, rax",
		".endm",
		"nop",
		"BAD",
	)
	var macro ErrMacro
	assert.True(errors.As(err, &macro))
	assert.Equal("BAD", macro.Macro)
	assert.Equal(3, macro.Line)
	assert.ErrorIs(err, x86.ErrInvalidInstruction)
	assert.True(errors.As(err, &syntax))
	assert.Equal(6, syntax.LineNo)
}
