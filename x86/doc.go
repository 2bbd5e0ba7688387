// Package x86 implements the operand model, instruction database, signature
// matcher and encoder of a runtime x86/x86-64 assembler.
//
// An Instruction names a Mnemonic and up to five typed operands (registers,
// memory references, immediates, labels, external symbols). Match selects
// the best Signature from the immutable instruction database, and Encode
// turns it into machine code, leaving Fixups for every field whose value
// depends on a final address.
//
// The database rows are written in Intel SDM notation, for example
//
//	{ADD, "r/m32, simm8", "MI", "83 /0 ib", 0}
//	{VADDPS, "zmm1 {k1}{z}, zmm2, zmm3/m512/m32bcst{er}", "RVM", "EVEX.512.0F.W0 58 /r", T_FV}
//
// and are parsed once when the package is initialised.
package x86
