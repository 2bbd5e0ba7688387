// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package x86

import (
	"fmt"
)

// Condition codes, in encoding order.
var conditions = [16]struct {
	jump, set, cmov Mnemonic
}{
	{JO, SETO, CMOVO},
	{JNO, SETNO, CMOVNO},
	{JB, SETB, CMOVB},
	{JAE, SETAE, CMOVAE},
	{JE, SETE, CMOVE},
	{JNE, SETNE, CMOVNE},
	{JBE, SETBE, CMOVBE},
	{JA, SETA, CMOVA},
	{JS, SETS, CMOVS},
	{JNS, SETNS, CMOVNS},
	{JP, SETP, CMOVP},
	{JNP, SETNP, CMOVNP},
	{JL, SETL, CMOVL},
	{JGE, SETGE, CMOVGE},
	{JLE, SETLE, CMOVLE},
	{JG, SETG, CMOVG},
}

func conditionRows() (rows []row) {
	for cc, cond := range conditions {
		rows = append(rows,
			row{cond.jump, "rel8", "D", fmt.Sprintf("%02X cb", 0x70+cc), 0},
			row{cond.jump, "rel32", "D", fmt.Sprintf("0F %02X cd", 0x80+cc), 0},
			row{cond.set, "r/m8", "M", fmt.Sprintf("0F %02X /0", 0x90+cc), 0},
			row{cond.cmov, "r16, r/m16", "RM", fmt.Sprintf("0F %02X /r", 0x40+cc), 0},
			row{cond.cmov, "r32, r/m32", "RM", fmt.Sprintf("0F %02X /r", 0x40+cc), 0},
			row{cond.cmov, "r64, r/m64", "RM", fmt.Sprintf("REX.W + 0F %02X /r", 0x40+cc), 0},
		)
	}
	return
}

// ALU group: opcode row digit*8, immediate group 80/81/83 /digit.
var aluOps = [...]struct {
	mnemonic Mnemonic
	digit    int
	flags    Flag
}{
	{ADD, 0, FLAG_LOCK},
	{OR, 1, FLAG_LOCK},
	{ADC, 2, FLAG_LOCK},
	{SBB, 3, FLAG_LOCK},
	{AND, 4, FLAG_LOCK},
	{SUB, 5, FLAG_LOCK},
	{XOR, 6, FLAG_LOCK},
	{CMP, 7, 0},
}

func aluRows() (rows []row) {
	for _, op := range aluOps {
		m, d, lk := op.mnemonic, op.digit, op.flags
		base := d * 8
		rows = append(rows,
			row{m, "AL, imm8", "AI", fmt.Sprintf("%02X ib", base+4), 0},
			row{m, "AX, imm16", "AI", fmt.Sprintf("%02X iw", base+5), 0},
			row{m, "EAX, imm32", "AI", fmt.Sprintf("%02X id", base+5), 0},
			row{m, "RAX, simm32", "AI", fmt.Sprintf("REX.W + %02X id", base+5), 0},
			row{m, "r/m8, imm8", "MI", fmt.Sprintf("80 /%d ib", d), lk},
			row{m, "r/m16, simm8", "MI", fmt.Sprintf("83 /%d ib", d), lk},
			row{m, "r/m16, imm16", "MI", fmt.Sprintf("81 /%d iw", d), lk},
			row{m, "r/m32, simm8", "MI", fmt.Sprintf("83 /%d ib", d), lk},
			row{m, "r/m32, imm32", "MI", fmt.Sprintf("81 /%d id", d), lk},
			row{m, "r/m64, simm8", "MI", fmt.Sprintf("REX.W + 83 /%d ib", d), lk},
			row{m, "r/m64, simm32", "MI", fmt.Sprintf("REX.W + 81 /%d id", d), lk},
			row{m, "r/m8, r8", "MR", fmt.Sprintf("%02X /r", base+0), lk},
			row{m, "r/m16, r16", "MR", fmt.Sprintf("%02X /r", base+1), lk},
			row{m, "r/m32, r32", "MR", fmt.Sprintf("%02X /r", base+1), lk},
			row{m, "r/m64, r64", "MR", fmt.Sprintf("REX.W + %02X /r", base+1), lk},
			row{m, "r8, r/m8", "RM", fmt.Sprintf("%02X /r", base+2), 0},
			row{m, "r16, r/m16", "RM", fmt.Sprintf("%02X /r", base+3), 0},
			row{m, "r32, r/m32", "RM", fmt.Sprintf("%02X /r", base+3), 0},
			row{m, "r64, r/m64", "RM", fmt.Sprintf("REX.W + %02X /r", base+3), 0},
		)
	}
	return
}

// Shift and rotate group: D0/D1 by one, D2/D3 by CL, C0/C1 by imm8.
var shiftOps = [...]struct {
	mnemonic Mnemonic
	digit    int
}{
	{ROL, 0}, {ROR, 1}, {RCL, 2}, {RCR, 3}, {SHL, 4}, {SHR, 5}, {SAR, 7},
}

func shiftRows() (rows []row) {
	for _, op := range shiftOps {
		m, d := op.mnemonic, op.digit
		for _, sz := range []struct{ rm, w, one, cl, ib string }{
			{"r/m8", "", "D0", "D2", "C0"},
			{"r/m16", "", "D1", "D3", "C1"},
			{"r/m32", "", "D1", "D3", "C1"},
			{"r/m64", "REX.W + ", "D1", "D3", "C1"},
		} {
			rows = append(rows,
				row{m, sz.rm + ", 1", "MA", fmt.Sprintf("%v%v /%d", sz.w, sz.one, d), 0},
				row{m, sz.rm + ", CL", "MA", fmt.Sprintf("%v%v /%d", sz.w, sz.cl, d), 0},
				row{m, sz.rm + ", imm8", "MI", fmt.Sprintf("%v%v /%d ib", sz.w, sz.ib, d), 0},
			)
		}
	}
	return
}

// Unary group F6/F7 and FE/FF.
var unaryOps = [...]struct {
	mnemonic Mnemonic
	b, v     string
	flags    Flag
}{
	{INC, "FE /0", "FF /0", FLAG_LOCK},
	{DEC, "FE /1", "FF /1", FLAG_LOCK},
	{NOT, "F6 /2", "F7 /2", FLAG_LOCK},
	{NEG, "F6 /3", "F7 /3", FLAG_LOCK},
	{MUL, "F6 /4", "F7 /4", 0},
	{IMUL, "F6 /5", "F7 /5", 0},
	{DIV, "F6 /6", "F7 /6", 0},
	{IDIV, "F6 /7", "F7 /7", 0},
}

func unaryRows() (rows []row) {
	for _, op := range unaryOps {
		rows = append(rows,
			row{op.mnemonic, "r/m8", "M", op.b, op.flags},
			row{op.mnemonic, "r/m16", "M", op.v, op.flags},
			row{op.mnemonic, "r/m32", "M", op.v, op.flags},
			row{op.mnemonic, "r/m64", "M", "REX.W + " + op.v, op.flags},
		)
	}
	return
}

// Bit test group: 0F xx /r and 0F BA /digit ib.
var bitTestOps = [...]struct {
	mnemonic Mnemonic
	opcode   byte
	digit    int
	flags    Flag
}{
	{BT, 0xa3, 4, 0},
	{BTS, 0xab, 5, FLAG_LOCK},
	{BTR, 0xb3, 6, FLAG_LOCK},
	{BTC, 0xbb, 7, FLAG_LOCK},
}

func bitTestRows() (rows []row) {
	for _, op := range bitTestOps {
		m, fl := op.mnemonic, op.flags
		rows = append(rows,
			row{m, "r/m16, r16", "MR", fmt.Sprintf("0F %02X /r", op.opcode), fl},
			row{m, "r/m32, r32", "MR", fmt.Sprintf("0F %02X /r", op.opcode), fl},
			row{m, "r/m64, r64", "MR", fmt.Sprintf("REX.W + 0F %02X /r", op.opcode), fl},
			row{m, "r/m16, imm8", "MI", fmt.Sprintf("0F BA /%d ib", op.digit), fl},
			row{m, "r/m32, imm8", "MI", fmt.Sprintf("0F BA /%d ib", op.digit), fl},
			row{m, "r/m64, imm8", "MI", fmt.Sprintf("REX.W + 0F BA /%d ib", op.digit), fl},
		)
	}
	return
}

// Two operand reg, r/m forms in 16, 32 and 64 bit widths.
func regRMRows(m Mnemonic, prefix string, opcode string, flags Flag) []row {
	if len(prefix) != 0 {
		prefix += " "
	}
	return []row{
		{m, "r16, r/m16", "RM", prefix + opcode + " /r", flags},
		{m, "r32, r/m32", "RM", prefix + opcode + " /r", flags},
		{m, "r64, r/m64", "RM", prefix + "REX.W + " + opcode + " /r", flags},
	}
}

// Two operand r/m, reg forms in all four widths, byte opcode first.
func rmRegRows(m Mnemonic, op8, op string, flags Flag) []row {
	return []row{
		{m, "r/m8, r8", "MR", op8 + " /r", flags},
		{m, "r/m16, r16", "MR", op + " /r", flags},
		{m, "r/m32, r32", "MR", op + " /r", flags},
		{m, "r/m64, r64", "MR", "REX.W + " + op + " /r", flags},
	}
}

var tableMove = []row{
	{MOV, "r/m8, r8", "MR", "88 /r", 0},
	{MOV, "r/m16, r16", "MR", "89 /r", 0},
	{MOV, "r/m32, r32", "MR", "89 /r", 0},
	{MOV, "r/m64, r64", "MR", "REX.W + 89 /r", 0},
	{MOV, "r8, r/m8", "RM", "8A /r", 0},
	{MOV, "r16, r/m16", "RM", "8B /r", 0},
	{MOV, "r32, r/m32", "RM", "8B /r", 0},
	{MOV, "r64, r/m64", "RM", "REX.W + 8B /r", 0},
	{MOV, "r16, Sreg", "MR", "8C /r", 0},
	{MOV, "r32/m16, Sreg", "MR", "8C /r", 0},
	{MOV, "r64/m16, Sreg", "MR", "REX.W + 8C /r", 0},
	{MOV, "Sreg, r/m16", "RM", "8E /r", FLAG_NO_OPSIZE},
	{MOV, "r8, imm8", "OI", "B0+rb ib", 0},
	{MOV, "r16, imm16", "OI", "B8+rw iw", 0},
	{MOV, "r32, imm32", "OI", "B8+rd id", 0},
	{MOV, "r64, imm64", "OI", "REX.W + B8+ro io", 0},
	{MOV, "r/m8, imm8", "MI", "C6 /0 ib", 0},
	{MOV, "r/m16, imm16", "MI", "C7 /0 iw", 0},
	{MOV, "r/m32, imm32", "MI", "C7 /0 id", 0},
	{MOV, "r/m64, simm32", "MI", "REX.W + C7 /0 id", 0},
	{MOV, "r32, CR", "MR", "0F 20 /r", FLAG_ONLY32},
	{MOV, "r64, CR", "MR", "0F 20 /r", FLAG_ONLY64},
	{MOV, "CR, r32", "RM", "0F 22 /r", FLAG_ONLY32},
	{MOV, "CR, r64", "RM", "0F 22 /r", FLAG_ONLY64},
	{MOV, "r32, DR", "MR", "0F 21 /r", FLAG_ONLY32},
	{MOV, "r64, DR", "MR", "0F 21 /r", FLAG_ONLY64},
	{MOV, "DR, r32", "RM", "0F 23 /r", FLAG_ONLY32},
	{MOV, "DR, r64", "RM", "0F 23 /r", FLAG_ONLY64},

	{MOVZX, "r16, r/m8", "RM", "0F B6 /r", 0},
	{MOVZX, "r32, r/m8", "RM", "0F B6 /r", 0},
	{MOVZX, "r64, r/m8", "RM", "REX.W + 0F B6 /r", 0},
	{MOVZX, "r32, r/m16", "RM", "0F B7 /r", 0},
	{MOVZX, "r64, r/m16", "RM", "REX.W + 0F B7 /r", 0},
	{MOVSX, "r16, r/m8", "RM", "0F BE /r", 0},
	{MOVSX, "r32, r/m8", "RM", "0F BE /r", 0},
	{MOVSX, "r64, r/m8", "RM", "REX.W + 0F BE /r", 0},
	{MOVSX, "r32, r/m16", "RM", "0F BF /r", 0},
	{MOVSX, "r64, r/m16", "RM", "REX.W + 0F BF /r", 0},
	{MOVSXD, "r64, r/m32", "RM", "REX.W + 63 /r", FLAG_ONLY64},
	{MOVBE, "r16, m16", "RM", "0F 38 F0 /r", 0},
	{MOVBE, "r32, m32", "RM", "0F 38 F0 /r", 0},
	{MOVBE, "r64, m64", "RM", "REX.W + 0F 38 F0 /r", 0},
	{MOVBE, "m16, r16", "MR", "0F 38 F1 /r", 0},
	{MOVBE, "m32, r32", "MR", "0F 38 F1 /r", 0},
	{MOVBE, "m64, r64", "MR", "REX.W + 0F 38 F1 /r", 0},

	{LEA, "r16, m", "RM", "8D /r", 0},
	{LEA, "r32, m", "RM", "8D /r", 0},
	{LEA, "r64, m", "RM", "REX.W + 8D /r", 0},

	{XCHG, "AX, r16", "AO", "90+rw", 0},
	{XCHG, "r16, AX", "OA", "90+rw", 0},
	{XCHG, "EAX, r32", "AO", "90+rd", FLAG_NOT_R0_64},
	{XCHG, "r32, EAX", "OA", "90+rd", FLAG_NOT_R0_64},
	{XCHG, "RAX, r64", "AO", "REX.W + 90+ro", 0},
	{XCHG, "r64, RAX", "OA", "REX.W + 90+ro", 0},
	{XCHG, "r/m8, r8", "MR", "86 /r", FLAG_LOCK},
	{XCHG, "r8, r/m8", "RM", "86 /r", 0},
	{XCHG, "r/m16, r16", "MR", "87 /r", FLAG_LOCK},
	{XCHG, "r16, r/m16", "RM", "87 /r", 0},
	{XCHG, "r/m32, r32", "MR", "87 /r", FLAG_LOCK},
	{XCHG, "r32, r/m32", "RM", "87 /r", 0},
	{XCHG, "r/m64, r64", "MR", "REX.W + 87 /r", FLAG_LOCK},
	{XCHG, "r64, r/m64", "RM", "REX.W + 87 /r", 0},
	{CMPXCHG8B, "m64", "M", "0F C7 /1", FLAG_LOCK},
	{CMPXCHG16B, "m128", "M", "REX.W + 0F C7 /1", FLAG_LOCK | FLAG_ONLY64},

	{TEST, "AL, imm8", "AI", "A8 ib", 0},
	{TEST, "AX, imm16", "AI", "A9 iw", 0},
	{TEST, "EAX, imm32", "AI", "A9 id", 0},
	{TEST, "RAX, simm32", "AI", "REX.W + A9 id", 0},
	{TEST, "r/m8, imm8", "MI", "F6 /0 ib", 0},
	{TEST, "r/m16, imm16", "MI", "F7 /0 iw", 0},
	{TEST, "r/m32, imm32", "MI", "F7 /0 id", 0},
	{TEST, "r/m64, simm32", "MI", "REX.W + F7 /0 id", 0},
	{TEST, "r/m8, r8", "MR", "84 /r", 0},
	{TEST, "r/m16, r16", "MR", "85 /r", 0},
	{TEST, "r/m32, r32", "MR", "85 /r", 0},
	{TEST, "r/m64, r64", "MR", "REX.W + 85 /r", 0},

	{INC, "r16", "O", "40+rw", FLAG_ONLY32},
	{INC, "r32", "O", "40+rd", FLAG_ONLY32},
	{DEC, "r16", "O", "48+rw", FLAG_ONLY32},
	{DEC, "r32", "O", "48+rd", FLAG_ONLY32},

	{IMUL, "r16, r/m16", "RM", "0F AF /r", 0},
	{IMUL, "r32, r/m32", "RM", "0F AF /r", 0},
	{IMUL, "r64, r/m64", "RM", "REX.W + 0F AF /r", 0},
	{IMUL, "r16, r/m16, simm8", "RMI", "6B /r ib", 0},
	{IMUL, "r16, r/m16, imm16", "RMI", "69 /r iw", 0},
	{IMUL, "r32, r/m32, simm8", "RMI", "6B /r ib", 0},
	{IMUL, "r32, r/m32, imm32", "RMI", "69 /r id", 0},
	{IMUL, "r64, r/m64, simm8", "RMI", "REX.W + 6B /r ib", 0},
	{IMUL, "r64, r/m64, simm32", "RMI", "REX.W + 69 /r id", 0},

	{SHLD, "r/m16, r16, imm8", "MRI", "0F A4 /r ib", 0},
	{SHLD, "r/m16, r16, CL", "MRA", "0F A5 /r", 0},
	{SHLD, "r/m32, r32, imm8", "MRI", "0F A4 /r ib", 0},
	{SHLD, "r/m32, r32, CL", "MRA", "0F A5 /r", 0},
	{SHLD, "r/m64, r64, imm8", "MRI", "REX.W + 0F A4 /r ib", 0},
	{SHLD, "r/m64, r64, CL", "MRA", "REX.W + 0F A5 /r", 0},
	{SHRD, "r/m16, r16, imm8", "MRI", "0F AC /r ib", 0},
	{SHRD, "r/m16, r16, CL", "MRA", "0F AD /r", 0},
	{SHRD, "r/m32, r32, imm8", "MRI", "0F AC /r ib", 0},
	{SHRD, "r/m32, r32, CL", "MRA", "0F AD /r", 0},
	{SHRD, "r/m64, r64, imm8", "MRI", "REX.W + 0F AC /r ib", 0},
	{SHRD, "r/m64, r64, CL", "MRA", "REX.W + 0F AD /r", 0},

	{BSWAP, "r32", "O", "0F C8+rd", 0},
	{BSWAP, "r64", "O", "REX.W + 0F C8+ro", 0},

	{CRC32, "r32, r/m8", "RM", "F2 0F 38 F0 /r", 0},
	{CRC32, "r32, r/m16", "RM", "66 F2 0F 38 F1 /r", 0},
	{CRC32, "r32, r/m32", "RM", "F2 0F 38 F1 /r", 0},
	{CRC32, "r64, r/m8", "RM", "F2 REX.W 0F 38 F0 /r", 0},
	{CRC32, "r64, r/m64", "RM", "F2 REX.W 0F 38 F1 /r", 0},

	{RDRAND, "r16", "M", "0F C7 /6", 0},
	{RDRAND, "r32", "M", "0F C7 /6", 0},
	{RDRAND, "r64", "M", "REX.W + 0F C7 /6", 0},
	{RDSEED, "r16", "M", "0F C7 /7", 0},
	{RDSEED, "r32", "M", "0F C7 /7", 0},
	{RDSEED, "r64", "M", "REX.W + 0F C7 /7", 0},
}

var tableStack = []row{
	{PUSH, "r16", "O", "50+rw", 0},
	{PUSH, "r32", "O", "50+rd", FLAG_ONLY32},
	{PUSH, "r64", "O", "50+ro", FLAG_ONLY64},
	{PUSH, "r/m16", "M", "FF /6", 0},
	{PUSH, "r/m32", "M", "FF /6", FLAG_ONLY32 | FLAG_DEFAULT},
	{PUSH, "r/m64", "M", "FF /6", FLAG_ONLY64 | FLAG_DEFAULT},
	{PUSH, "simm8", "I", "6A ib", 0},
	{PUSH, "imm32", "I", "68 id", FLAG_ONLY32},
	{PUSH, "simm32", "I", "68 id", FLAG_ONLY64},
	{PUSH, "FS", "A", "0F A0", 0},
	{PUSH, "GS", "A", "0F A8", 0},
	{POP, "r16", "O", "58+rw", 0},
	{POP, "r32", "O", "58+rd", FLAG_ONLY32},
	{POP, "r64", "O", "58+ro", FLAG_ONLY64},
	{POP, "r/m16", "M", "8F /0", 0},
	{POP, "r/m32", "M", "8F /0", FLAG_ONLY32 | FLAG_DEFAULT},
	{POP, "r/m64", "M", "8F /0", FLAG_ONLY64 | FLAG_DEFAULT},
	{POP, "FS", "A", "0F A1", 0},
	{POP, "GS", "A", "0F A9", 0},
	{PUSHFD, "", "", "9C", FLAG_ONLY32},
	{PUSHFQ, "", "", "9C", FLAG_ONLY64},
	{POPFD, "", "", "9D", FLAG_ONLY32},
	{POPFQ, "", "", "9D", FLAG_ONLY64},
	{PUSHAD, "", "", "60", FLAG_ONLY32},
	{POPAD, "", "", "61", FLAG_ONLY32},
	{ENTER, "uimm16, uimm8", "II", "C8 iw ib", 0},
	{LEAVE, "", "", "C9", 0},
}

var tableBranch = []row{
	{JMP, "rel8", "D", "EB cb", 0},
	{JMP, "rel32", "D", "E9 cd", 0},
	{JMP, "r/m32", "M", "FF /4", FLAG_ONLY32 | FLAG_DEFAULT},
	{JMP, "r/m64", "M", "FF /4", FLAG_ONLY64 | FLAG_DEFAULT},
	{CALL, "rel32", "D", "E8 cd", 0},
	{CALL, "r/m32", "M", "FF /2", FLAG_ONLY32 | FLAG_DEFAULT},
	{CALL, "r/m64", "M", "FF /2", FLAG_ONLY64 | FLAG_DEFAULT},
	{RET, "", "", "C3", 0},
	{RET, "uimm16", "I", "C2 iw", 0},
	{JECXZ, "rel8", "D", "E3 cb", FLAG_ONLY32},
	{JECXZ, "rel8", "D", "67 E3 cb", FLAG_ONLY64},
	{JRCXZ, "rel8", "D", "E3 cb", FLAG_ONLY64},
	{LOOP, "rel8", "D", "E2 cb", 0},
	{LOOPE, "rel8", "D", "E1 cb", 0},
	{LOOPNE, "rel8", "D", "E0 cb", 0},
	{INT3, "", "", "CC", 0},
	{INT, "uimm8", "I", "CD ib", 0},
	{SYSCALL, "", "", "0F 05", FLAG_ONLY64},
	{SYSENTER, "", "", "0F 34", 0},
}

var tableString = []row{
	{MOVSB, "", "", "A4", FLAG_REP},
	{MOVSW, "", "", "66 A5", FLAG_REP},
	{MOVSD, "", "", "A5", FLAG_REP},
	{MOVSQ, "", "", "REX.W + A5", FLAG_REP | FLAG_ONLY64},
	{STOSB, "", "", "AA", FLAG_REP},
	{STOSW, "", "", "66 AB", FLAG_REP},
	{STOSD, "", "", "AB", FLAG_REP},
	{STOSQ, "", "", "REX.W + AB", FLAG_REP | FLAG_ONLY64},
	{LODSB, "", "", "AC", FLAG_REP},
	{LODSW, "", "", "66 AD", FLAG_REP},
	{LODSD, "", "", "AD", FLAG_REP},
	{LODSQ, "", "", "REX.W + AD", FLAG_REP | FLAG_ONLY64},
	{SCASB, "", "", "AE", FLAG_REP | FLAG_REPNE},
	{SCASW, "", "", "66 AF", FLAG_REP | FLAG_REPNE},
	{SCASD, "", "", "AF", FLAG_REP | FLAG_REPNE},
	{SCASQ, "", "", "REX.W + AF", FLAG_REP | FLAG_REPNE | FLAG_ONLY64},
	{CMPSB, "", "", "A6", FLAG_REP | FLAG_REPNE},
	{CMPSW, "", "", "66 A7", FLAG_REP | FLAG_REPNE},
	{CMPSD, "", "", "A7", FLAG_REP | FLAG_REPNE},
	{CMPSQ, "", "", "REX.W + A7", FLAG_REP | FLAG_REPNE | FLAG_ONLY64},
}

var tableSystem = []row{
	{NOP, "", "", "90", 0},
	{NOP, "r/m16", "M", "0F 1F /0", 0},
	{NOP, "r/m32", "M", "0F 1F /0", 0},
	{PAUSE, "", "", "F3 90", 0},
	{HLT, "", "", "F4", 0},
	{UD2, "", "", "0F 0B", 0},
	{CPUID, "", "", "0F A2", 0},
	{RDTSC, "", "", "0F 31", 0},
	{RDTSCP, "", "", "0F 01 F9", 0},
	{RDPMC, "", "", "0F 33", 0},
	{RDMSR, "", "", "0F 32", 0},
	{WRMSR, "", "", "0F 30", 0},
	{XGETBV, "", "", "0F 01 D0", 0},
	{WBINVD, "", "", "0F 09", 0},
	{ENDBR64, "", "", "F3 0F 1E FA", 0},
	{ENDBR32, "", "", "F3 0F 1E FB", 0},
	{LFENCE, "", "", "NP 0F AE E8", 0},
	{MFENCE, "", "", "NP 0F AE F0", 0},
	{SFENCE, "", "", "NP 0F AE F8", 0},
	{CLFLUSH, "m8", "M", "NP 0F AE /7", 0},
	{PREFETCHNTA, "m8", "M", "0F 18 /0", 0},
	{PREFETCHT0, "m8", "M", "0F 18 /1", 0},
	{PREFETCHT1, "m8", "M", "0F 18 /2", 0},
	{PREFETCHT2, "m8", "M", "0F 18 /3", 0},
	{CLC, "", "", "F8", 0},
	{STC, "", "", "F9", 0},
	{CMC, "", "", "F5", 0},
	{CLD, "", "", "FC", 0},
	{STD, "", "", "FD", 0},
	{CLI, "", "", "FA", 0},
	{STI, "", "", "FB", 0},
	{SAHF, "", "", "9E", 0},
	{LAHF, "", "", "9F", 0},
	{CBW, "", "", "66 98", 0},
	{CWDE, "", "", "98", 0},
	{CDQE, "", "", "REX.W + 98", FLAG_ONLY64},
	{CWD, "", "", "66 99", 0},
	{CDQ, "", "", "99", 0},
	{CQO, "", "", "REX.W + 99", FLAG_ONLY64},
	{IN, "AL, uimm8", "AI", "E4 ib", 0},
	{IN, "AX, uimm8", "AI", "E5 ib", 0},
	{IN, "EAX, uimm8", "AI", "E5 ib", 0},
	{IN, "AL, DX", "AA", "EC", 0},
	{IN, "AX, DX", "AA", "ED", 0},
	{IN, "EAX, DX", "AA", "ED", 0},
	{OUT, "uimm8, AL", "IA", "E6 ib", 0},
	{OUT, "uimm8, AX", "IA", "E7 ib", 0},
	{OUT, "uimm8, EAX", "IA", "E7 ib", 0},
	{OUT, "DX, AL", "AA", "EE", FLAG_NO_OPSIZE},
	{OUT, "DX, AX", "AA", "EF", 0},
	{OUT, "DX, EAX", "AA", "EF", FLAG_NO_OPSIZE},
}

// BMI1 and BMI2 general purpose VEX forms.
var tableBMI = []row{
	{ANDN, "r32a, r32b, r/m32", "RVM", "VEX.LZ.0F38.W0 F2 /r", 0},
	{ANDN, "r64a, r64b, r/m64", "RVM", "VEX.LZ.0F38.W1 F2 /r", 0},
	{BLSR, "r32, r/m32", "VM", "VEX.LZ.0F38.W0 F3 /1", 0},
	{BLSR, "r64, r/m64", "VM", "VEX.LZ.0F38.W1 F3 /1", 0},
	{BLSMSK, "r32, r/m32", "VM", "VEX.LZ.0F38.W0 F3 /2", 0},
	{BLSMSK, "r64, r/m64", "VM", "VEX.LZ.0F38.W1 F3 /2", 0},
	{BLSI, "r32, r/m32", "VM", "VEX.LZ.0F38.W0 F3 /3", 0},
	{BLSI, "r64, r/m64", "VM", "VEX.LZ.0F38.W1 F3 /3", 0},
	{BEXTR, "r32a, r/m32, r32b", "RMV", "VEX.LZ.0F38.W0 F7 /r", 0},
	{BEXTR, "r64a, r/m64, r64b", "RMV", "VEX.LZ.0F38.W1 F7 /r", 0},
	{BZHI, "r32a, r/m32, r32b", "RMV", "VEX.LZ.0F38.W0 F5 /r", 0},
	{BZHI, "r64a, r/m64, r64b", "RMV", "VEX.LZ.0F38.W1 F5 /r", 0},
	{SARX, "r32a, r/m32, r32b", "RMV", "VEX.LZ.F3.0F38.W0 F7 /r", 0},
	{SARX, "r64a, r/m64, r64b", "RMV", "VEX.LZ.F3.0F38.W1 F7 /r", 0},
	{SHLX, "r32a, r/m32, r32b", "RMV", "VEX.LZ.66.0F38.W0 F7 /r", 0},
	{SHLX, "r64a, r/m64, r64b", "RMV", "VEX.LZ.66.0F38.W1 F7 /r", 0},
	{SHRX, "r32a, r/m32, r32b", "RMV", "VEX.LZ.F2.0F38.W0 F7 /r", 0},
	{SHRX, "r64a, r/m64, r64b", "RMV", "VEX.LZ.F2.0F38.W1 F7 /r", 0},
	{PDEP, "r32a, r32b, r/m32", "RVM", "VEX.LZ.F2.0F38.W0 F5 /r", 0},
	{PDEP, "r64a, r64b, r/m64", "RVM", "VEX.LZ.F2.0F38.W1 F5 /r", 0},
	{PEXT, "r32a, r32b, r/m32", "RVM", "VEX.LZ.F3.0F38.W0 F5 /r", 0},
	{PEXT, "r64a, r64b, r/m64", "RVM", "VEX.LZ.F3.0F38.W1 F5 /r", 0},
	{MULX, "r32a, r32b, r/m32", "RVM", "VEX.LZ.F2.0F38.W0 F6 /r", 0},
	{MULX, "r64a, r64b, r/m64", "RVM", "VEX.LZ.F2.0F38.W1 F6 /r", 0},
	{RORX, "r32, r/m32, imm8", "RMI", "VEX.LZ.F2.0F3A.W0 F0 /r ib", 0},
	{RORX, "r64, r/m64, imm8", "RMI", "VEX.LZ.F2.0F3A.W1 F0 /r ib", 0},
}

// gpRows returns the general purpose integer rows in table order.
func gpRows() (rows []row) {
	rows = append(rows, aluRows()...)
	rows = append(rows, tableMove...)
	rows = append(rows, unaryRows()...)
	rows = append(rows, shiftRows()...)
	rows = append(rows, bitTestRows()...)
	rows = append(rows, regRMRows(BSF, "", "0F BC", 0)...)
	rows = append(rows, regRMRows(BSR, "", "0F BD", 0)...)
	rows = append(rows, regRMRows(TZCNT, "F3", "0F BC", 0)...)
	rows = append(rows, regRMRows(LZCNT, "F3", "0F BD", 0)...)
	rows = append(rows, regRMRows(POPCNT, "F3", "0F B8", 0)...)
	rows = append(rows, regRMRows(ADCX, "66", "0F 38 F6", 0)[1:]...)
	rows = append(rows, regRMRows(ADOX, "F3", "0F 38 F6", 0)[1:]...)
	rows = append(rows, rmRegRows(XADD, "0F C0", "0F C1", FLAG_LOCK)...)
	rows = append(rows, rmRegRows(CMPXCHG, "0F B0", "0F B1", FLAG_LOCK)...)
	rows = append(rows, tableStack...)
	rows = append(rows, tableBranch...)
	rows = append(rows, conditionRows()...)
	rows = append(rows, tableString...)
	rows = append(rows, tableSystem...)
	rows = append(rows, tableBMI...)
	return
}
