// Package asm builds programs of x86 instructions and assembles them into
// position dependent machine code.
//
// A Program is an arena of nodes: instructions, label bindings, data,
// alignment and section markers. Instructions are validated and matched
// when they are emitted, so a Program only ever holds encodable
// instructions. The Assembler finalizes a Program at a base address:
//
//	prog := asm.NewProgram(x86.MODE_64)
//	loop := prog.NewLabel()
//	prog.Emit(x86.MOV, x86.EAX, x86.Imm(0))
//	prog.Bind(loop)
//	prog.Emit(x86.CMP, x86.EAX, x86.Imm(10))
//	prog.Emit(x86.JL, loop)
//
//	var as asm.Assembler
//	out, err := as.Finalize(prog, 0x1000)
//
// Branches to labels start in their widest form and are shortened while
// their targets stay in reach. References to external symbols are left
// for the caller, listed in Output.Relocations.
package asm
