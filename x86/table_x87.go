// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package x86

import (
	"fmt"
)

// x87 arithmetic: memory forms D8/DC /digit, register forms D8 and DC.
// The DC register forms swap the reversed and plain SUB and DIV digits.
var x87Arith = [...]struct {
	mnemonic, pop, integer Mnemonic
	digit, dcDigit         int
}{
	{FADD, FADDP, FIADD, 0, 0},
	{FMUL, FMULP, FIMUL, 1, 1},
	{FSUB, FSUBP, FISUB, 4, 5},
	{FSUBR, FSUBRP, FISUBR, 5, 4},
	{FDIV, FDIVP, FIDIV, 6, 7},
	{FDIVR, FDIVRP, FIDIVR, 7, 6},
}

func x87ArithRows() (rows []row) {
	for _, op := range x87Arith {
		rows = append(rows,
			row{op.mnemonic, "m32fp", "M", fmt.Sprintf("D8 /%d", op.digit), 0},
			row{op.mnemonic, "m64fp", "M", fmt.Sprintf("DC /%d", op.digit), 0},
			row{op.mnemonic, "ST(0), ST(i)", "AO", fmt.Sprintf("D8 %02X+i", 0xc0+op.digit*8), 0},
			row{op.mnemonic, "ST(i), ST(0)", "OA", fmt.Sprintf("DC %02X+i", 0xc0+op.dcDigit*8), 0},
			row{op.pop, "ST(i), ST(0)", "OA", fmt.Sprintf("DE %02X+i", 0xc0+op.dcDigit*8), 0},
			row{op.pop, "", "", fmt.Sprintf("DE %02X", 0xc1+op.dcDigit*8), 0},
			row{op.integer, "m32int", "M", fmt.Sprintf("DA /%d", op.digit), 0},
			row{op.integer, "m16int", "M", fmt.Sprintf("DE /%d", op.digit), 0},
		)
	}
	return
}

var tableX87 = []row{
	{FLD, "m32fp", "M", "D9 /0", 0},
	{FLD, "m64fp", "M", "DD /0", 0},
	{FLD, "m80fp", "M", "DB /5", 0},
	{FLD, "ST(i)", "O", "D9 C0+i", 0},
	{FST, "m32fp", "M", "D9 /2", 0},
	{FST, "m64fp", "M", "DD /2", 0},
	{FST, "ST(i)", "O", "DD D0+i", 0},
	{FSTP, "m32fp", "M", "D9 /3", 0},
	{FSTP, "m64fp", "M", "DD /3", 0},
	{FSTP, "m80fp", "M", "DB /7", 0},
	{FSTP, "ST(i)", "O", "DD D8+i", 0},
	{FILD, "m16int", "M", "DF /0", 0},
	{FILD, "m32int", "M", "DB /0", 0},
	{FILD, "m64int", "M", "DF /5", 0},
	{FIST, "m16int", "M", "DF /2", 0},
	{FIST, "m32int", "M", "DB /2", 0},
	{FISTP, "m16int", "M", "DF /3", 0},
	{FISTP, "m32int", "M", "DB /3", 0},
	{FISTP, "m64int", "M", "DF /7", 0},
	{FISTTP, "m16int", "M", "DF /1", 0},
	{FISTTP, "m32int", "M", "DB /1", 0},
	{FISTTP, "m64int", "M", "DD /1", 0},

	{FLD1, "", "", "D9 E8", 0},
	{FLDL2T, "", "", "D9 E9", 0},
	{FLDL2E, "", "", "D9 EA", 0},
	{FLDPI, "", "", "D9 EB", 0},
	{FLDLG2, "", "", "D9 EC", 0},
	{FLDLN2, "", "", "D9 ED", 0},
	{FLDZ, "", "", "D9 EE", 0},

	{FXCH, "ST(i)", "O", "D9 C8+i", 0},
	{FXCH, "", "", "D9 C9", 0},
	{FCHS, "", "", "D9 E0", 0},
	{FABS, "", "", "D9 E1", 0},
	{FTST, "", "", "D9 E4", 0},
	{FXAM, "", "", "D9 E5", 0},
	{FPTAN, "", "", "D9 F2", 0},
	{FPATAN, "", "", "D9 F3", 0},
	{FDECSTP, "", "", "D9 F6", 0},
	{FINCSTP, "", "", "D9 F7", 0},
	{FPREM, "", "", "D9 F8", 0},
	{FSQRT, "", "", "D9 FA", 0},
	{FRNDINT, "", "", "D9 FC", 0},
	{FSCALE, "", "", "D9 FD", 0},
	{FSIN, "", "", "D9 FE", 0},
	{FCOS, "", "", "D9 FF", 0},
	{FFREE, "ST(i)", "O", "DD C0+i", 0},

	{FCOM, "m32fp", "M", "D8 /2", 0},
	{FCOM, "m64fp", "M", "DC /2", 0},
	{FCOM, "ST(i)", "O", "D8 D0+i", 0},
	{FCOMP, "m32fp", "M", "D8 /3", 0},
	{FCOMP, "m64fp", "M", "DC /3", 0},
	{FCOMP, "ST(i)", "O", "D8 D8+i", 0},
	{FCOMPP, "", "", "DE D9", 0},
	{FUCOM, "ST(i)", "O", "DD E0+i", 0},
	{FUCOMP, "ST(i)", "O", "DD E8+i", 0},
	{FUCOMPP, "", "", "DA E9", 0},
	{FCOMI, "ST(0), ST(i)", "AO", "DB F0+i", 0},
	{FCOMIP, "ST(0), ST(i)", "AO", "DF F0+i", 0},
	{FUCOMI, "ST(0), ST(i)", "AO", "DB E8+i", 0},
	{FUCOMIP, "ST(0), ST(i)", "AO", "DF E8+i", 0},

	{FWAIT, "", "", "9B", 0},
	{FNINIT, "", "", "DB E3", 0},
	{FINIT, "", "", "9B DB E3", 0},
	{FNCLEX, "", "", "DB E2", 0},
	{FNSTSW, "AX", "A", "DF E0", FLAG_NO_OPSIZE},
	{FNSTSW, "m2byte", "M", "DD /7", 0},
	{FNSTCW, "m2byte", "M", "D9 /7", 0},
	{FLDCW, "m2byte", "M", "D9 /5", 0},
	{FXSAVE, "m512byte", "M", "NP 0F AE /0", 0},
	{FXRSTOR, "m512byte", "M", "NP 0F AE /1", 0},
}

// MMX rows outside of the shared packed integer families.
var tableMMX = []row{
	{EMMS, "", "", "NP 0F 77", 0},
	{MOVD, "mm, r/m32", "RM", "NP 0F 6E /r", 0},
	{MOVD, "r/m32, mm", "MR", "NP 0F 7E /r", 0},
	{MOVQ, "mm, r/m64", "RM", "NP REX.W + 0F 6E /r", FLAG_ONLY64},
	{MOVQ, "r/m64, mm", "MR", "NP REX.W + 0F 7E /r", FLAG_ONLY64},
	{MOVQ, "mm1, mm2/m64", "RM", "NP 0F 6F /r", 0},
	{MOVQ, "mm2/m64, mm1", "MR", "NP 0F 7F /r", 0},
}

func x87Rows() (rows []row) {
	rows = append(rows, tableX87...)
	rows = append(rows, x87ArithRows()...)
	rows = append(rows, tableMMX...)
	return
}
