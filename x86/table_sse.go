// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package x86

import (
	"fmt"
	"strings"
)

// vecShape is the operand pattern of a vector operation.
type vecShape uint8

const (
	SHAPE_BINARY   = vecShape(0) // x, x/m ; VEX x, x, x/m
	SHAPE_BINARY_I = vecShape(1) // x, x/m, imm8 ; VEX x, x, x/m, imm8
	SHAPE_UNARY    = vecShape(2) // x, x/m
	SHAPE_UNARY_I  = vecShape(3) // x, x/m, imm8
	SHAPE_STORE    = vecShape(4) // x/m, x
	SHAPE_SHIFT_I  = vecShape(5) // x, imm8 ; VEX x, x, imm8
	SHAPE_CMP_K    = vecShape(6) // k, x, x/m (EVEX only)
	SHAPE_CMP_K_I  = vecShape(7) // k, x, x/m, imm8 (EVEX only)
)

// vecForm selects the additional forms of a vector operation.
type vecForm uint8

const (
	VEC_MMX = vecForm(1 << 0) // NP 0F MMX form
	VEC_YMM = vecForm(1 << 1) // VEX.256 form
	VEC_LIG = vecForm(1 << 2) // scalar, VEX.LIG
	VEC_W0  = vecForm(1 << 3) // VEX.W0
	VEC_W1  = vecForm(1 << 4) // VEX.W1
)

// vecOp is an SSE operation and its VEX encoded AVX counterpart. Either
// mnemonic may be zero when the form does not exist.
type vecOp struct {
	legacy, vex Mnemonic
	pp          string // NP, 66, F2 or F3
	opcode      string // "0F 58", "0F 38 00", "0F 71 /6"
	mem         int    // memory width of the xmm form
	shape       vecShape
	form        vecForm
}

// vexMap splits a legacy opcode string into its VEX map field and the rest.
func vexMap(opcode string) (opmap string, rest string) {
	words := strings.Fields(opcode)
	opmap = "0F"
	words = words[1:]
	if words[0] == "38" || words[0] == "3A" {
		opmap += words[0]
		words = words[1:]
	}
	rest = strings.Join(words, " ")
	return
}

func (op *vecOp) suffix() string {
	switch op.shape {
	case SHAPE_BINARY_I, SHAPE_UNARY_I:
		return " /r ib"
	case SHAPE_SHIFT_I:
		return " ib"
	}
	return " /r"
}

func (op *vecOp) legacyRow(reg string, rm string, pp string) row {
	var operands, openc string
	switch op.shape {
	case SHAPE_BINARY, SHAPE_UNARY:
		operands, openc = fmt.Sprintf("%v1, %v2/%v", reg, reg, rm), "RM"
	case SHAPE_BINARY_I, SHAPE_UNARY_I:
		operands, openc = fmt.Sprintf("%v1, %v2/%v, imm8", reg, reg, rm), "RMI"
	case SHAPE_STORE:
		operands, openc = fmt.Sprintf("%v2/%v, %v1", reg, rm, reg), "MR"
	case SHAPE_SHIFT_I:
		operands, openc = fmt.Sprintf("%v1, imm8", reg), "MI"
	}
	return row{op.legacy, operands, openc, pp + " " + op.opcode + op.suffix(), 0}
}

func (op *vecOp) vexRow(reg string, rm string, length string) row {
	var operands, openc string
	switch op.shape {
	case SHAPE_BINARY:
		operands, openc = fmt.Sprintf("%v1, %v2, %v3/%v", reg, reg, reg, rm), "RVM"
	case SHAPE_BINARY_I:
		operands, openc = fmt.Sprintf("%v1, %v2, %v3/%v, imm8", reg, reg, reg, rm), "RVMI"
	case SHAPE_UNARY:
		operands, openc = fmt.Sprintf("%v1, %v2/%v", reg, reg, rm), "RM"
	case SHAPE_UNARY_I:
		operands, openc = fmt.Sprintf("%v1, %v2/%v, imm8", reg, reg, rm), "RMI"
	case SHAPE_STORE:
		operands, openc = fmt.Sprintf("%v2/%v, %v1", reg, rm, reg), "MR"
	case SHAPE_SHIFT_I:
		operands, openc = fmt.Sprintf("%v1, %v2, imm8", reg, reg), "VMI"
	}

	fields := []string{"VEX", length}
	if op.pp != "NP" {
		fields = append(fields, op.pp)
	}
	opmap, rest := vexMap(op.opcode)
	fields = append(fields, opmap)
	switch {
	case op.form&VEC_W0 != 0:
		fields = append(fields, "W0")
	case op.form&VEC_W1 != 0:
		fields = append(fields, "W1")
	default:
		fields = append(fields, "WIG")
	}

	return row{op.vex, operands, openc, strings.Join(fields, ".") + " " + rest + op.suffix(), 0}
}

// vecRows expands vector operations into their MMX, SSE and AVX rows.
func vecRows(ops []vecOp) (rows []row) {
	for n := range ops {
		op := &ops[n]
		rm := fmt.Sprintf("m%d", op.mem)
		if op.legacy != 0 {
			if op.form&VEC_MMX != 0 {
				rows = append(rows, op.legacyRow("mm", "m64", "NP"))
			}
			rows = append(rows, op.legacyRow("xmm", rm, op.pp))
		}
		if op.vex == 0 {
			continue
		}
		if op.form&VEC_LIG != 0 {
			rows = append(rows, op.vexRow("xmm", rm, "LIG"))
			continue
		}
		rows = append(rows, op.vexRow("xmm", rm, "128"))
		if op.form&VEC_YMM != 0 {
			rows = append(rows, op.vexRow("ymm", "m256", "256"))
		}
	}
	return
}

// fpFamily returns the packed and scalar single and double forms of a
// floating point operation.
func fpFamily(ps, pd, ss, sd, vps, vpd, vss, vsd Mnemonic, opcode string, packed vecShape) []vecOp {
	return []vecOp{
		{ps, vps, "NP", opcode, 128, packed, VEC_YMM},
		{pd, vpd, "66", opcode, 128, packed, VEC_YMM},
		{ss, vss, "F3", opcode, 32, SHAPE_BINARY, VEC_LIG},
		{sd, vsd, "F2", opcode, 64, SHAPE_BINARY, VEC_LIG},
	}
}

// packedFamily returns the packed single and double forms.
func packedFamily(ps, pd, vps, vpd Mnemonic, opcode string, shape vecShape) []vecOp {
	return []vecOp{
		{ps, vps, "NP", opcode, 128, shape, VEC_YMM},
		{pd, vpd, "66", opcode, 128, shape, VEC_YMM},
	}
}

var vecFloat = [][]vecOp{
	fpFamily(ADDPS, ADDPD, ADDSS, ADDSD, VADDPS, VADDPD, VADDSS, VADDSD, "0F 58", SHAPE_BINARY),
	fpFamily(MULPS, MULPD, MULSS, MULSD, VMULPS, VMULPD, VMULSS, VMULSD, "0F 59", SHAPE_BINARY),
	fpFamily(SUBPS, SUBPD, SUBSS, SUBSD, VSUBPS, VSUBPD, VSUBSS, VSUBSD, "0F 5C", SHAPE_BINARY),
	fpFamily(MINPS, MINPD, MINSS, MINSD, VMINPS, VMINPD, VMINSS, VMINSD, "0F 5D", SHAPE_BINARY),
	fpFamily(DIVPS, DIVPD, DIVSS, DIVSD, VDIVPS, VDIVPD, VDIVSS, VDIVSD, "0F 5E", SHAPE_BINARY),
	fpFamily(MAXPS, MAXPD, MAXSS, MAXSD, VMAXPS, VMAXPD, VMAXSS, VMAXSD, "0F 5F", SHAPE_BINARY),
	fpFamily(SQRTPS, SQRTPD, SQRTSS, SQRTSD, VSQRTPS, VSQRTPD, VSQRTSS, VSQRTSD, "0F 51", SHAPE_UNARY),
	fpFamily(CMPPS, CMPPD, 0, 0, VCMPPS, VCMPPD, 0, 0, "0F C2", SHAPE_BINARY_I)[:2],
	packedFamily(ANDPS, ANDPD, VANDPS, VANDPD, "0F 54", SHAPE_BINARY),
	packedFamily(ANDNPS, ANDNPD, VANDNPS, VANDNPD, "0F 55", SHAPE_BINARY),
	packedFamily(ORPS, ORPD, VORPS, VORPD, "0F 56", SHAPE_BINARY),
	packedFamily(XORPS, XORPD, VXORPS, VXORPD, "0F 57", SHAPE_BINARY),
	packedFamily(UNPCKLPS, UNPCKLPD, VUNPCKLPS, VUNPCKLPD, "0F 14", SHAPE_BINARY),
	packedFamily(UNPCKHPS, UNPCKHPD, VUNPCKHPS, VUNPCKHPD, "0F 15", SHAPE_BINARY),
	packedFamily(SHUFPS, SHUFPD, VSHUFPS, VSHUFPD, "0F C6", SHAPE_BINARY_I),
	packedFamily(MOVAPS, MOVAPD, VMOVAPS, VMOVAPD, "0F 28", SHAPE_UNARY),
	packedFamily(MOVAPS, MOVAPD, VMOVAPS, VMOVAPD, "0F 29", SHAPE_STORE),
	packedFamily(MOVUPS, MOVUPD, VMOVUPS, VMOVUPD, "0F 10", SHAPE_UNARY),
	packedFamily(MOVUPS, MOVUPD, VMOVUPS, VMOVUPD, "0F 11", SHAPE_STORE),
	{
		{CMPSS, VCMPSS, "F3", "0F C2", 32, SHAPE_BINARY_I, VEC_LIG},
		{CMPSD, VCMPSD, "F2", "0F C2", 64, SHAPE_BINARY_I, VEC_LIG},
		{MOVDQA, VMOVDQA, "66", "0F 6F", 128, SHAPE_UNARY, VEC_YMM},
		{MOVDQA, VMOVDQA, "66", "0F 7F", 128, SHAPE_STORE, VEC_YMM},
		{MOVDQU, VMOVDQU, "F3", "0F 6F", 128, SHAPE_UNARY, VEC_YMM},
		{MOVDQU, VMOVDQU, "F3", "0F 7F", 128, SHAPE_STORE, VEC_YMM},
		{RCPPS, VRCPPS, "NP", "0F 53", 128, SHAPE_UNARY, VEC_YMM},
		{RSQRTPS, VRSQRTPS, "NP", "0F 52", 128, SHAPE_UNARY, VEC_YMM},
		{RCPSS, VRCPSS, "F3", "0F 53", 32, SHAPE_BINARY, VEC_LIG},
		{RSQRTSS, VRSQRTSS, "F3", "0F 52", 32, SHAPE_BINARY, VEC_LIG},
		{UCOMISS, VUCOMISS, "NP", "0F 2E", 32, SHAPE_UNARY, VEC_LIG},
		{UCOMISD, VUCOMISD, "66", "0F 2E", 64, SHAPE_UNARY, VEC_LIG},
		{COMISS, VCOMISS, "NP", "0F 2F", 32, SHAPE_UNARY, VEC_LIG},
		{COMISD, VCOMISD, "66", "0F 2F", 64, SHAPE_UNARY, VEC_LIG},
		{CVTSS2SD, VCVTSS2SD, "F3", "0F 5A", 32, SHAPE_BINARY, VEC_LIG},
		{CVTSD2SS, VCVTSD2SS, "F2", "0F 5A", 64, SHAPE_BINARY, VEC_LIG},
		{CVTPS2PD, VCVTPS2PD, "NP", "0F 5A", 64, SHAPE_UNARY, 0},
		{CVTPD2PS, VCVTPD2PS, "66", "0F 5A", 128, SHAPE_UNARY, 0},
		{CVTDQ2PS, VCVTDQ2PS, "NP", "0F 5B", 128, SHAPE_UNARY, VEC_YMM},
		{CVTPS2DQ, VCVTPS2DQ, "66", "0F 5B", 128, SHAPE_UNARY, VEC_YMM},
		{CVTTPS2DQ, VCVTTPS2DQ, "F3", "0F 5B", 128, SHAPE_UNARY, VEC_YMM},
		{CVTDQ2PD, VCVTDQ2PD, "F3", "0F E6", 64, SHAPE_UNARY, 0},
		{CVTPD2DQ, VCVTPD2DQ, "F2", "0F E6", 128, SHAPE_UNARY, 0},
		{CVTTPD2DQ, VCVTTPD2DQ, "66", "0F E6", 128, SHAPE_UNARY, 0},
		{ADDSUBPS, VADDSUBPS, "F2", "0F D0", 128, SHAPE_BINARY, VEC_YMM},
		{ADDSUBPD, VADDSUBPD, "66", "0F D0", 128, SHAPE_BINARY, VEC_YMM},
		{HADDPS, VHADDPS, "F2", "0F 7C", 128, SHAPE_BINARY, VEC_YMM},
		{HADDPD, VHADDPD, "66", "0F 7C", 128, SHAPE_BINARY, VEC_YMM},
		{HSUBPS, VHSUBPS, "F2", "0F 7D", 128, SHAPE_BINARY, VEC_YMM},
		{HSUBPD, VHSUBPD, "66", "0F 7D", 128, SHAPE_BINARY, VEC_YMM},
		{MOVSHDUP, VMOVSHDUP, "F3", "0F 16", 128, SHAPE_UNARY, VEC_YMM},
		{MOVSLDUP, VMOVSLDUP, "F3", "0F 12", 128, SHAPE_UNARY, VEC_YMM},
		{MOVDDUP, VMOVDDUP, "F2", "0F 12", 64, SHAPE_UNARY, 0},
		{BLENDPS, VBLENDPS, "66", "0F 3A 0C", 128, SHAPE_BINARY_I, VEC_YMM},
		{BLENDPD, VBLENDPD, "66", "0F 3A 0D", 128, SHAPE_BINARY_I, VEC_YMM},
		{ROUNDPS, VROUNDPS, "66", "0F 3A 08", 128, SHAPE_UNARY_I, VEC_YMM},
		{ROUNDPD, VROUNDPD, "66", "0F 3A 09", 128, SHAPE_UNARY_I, VEC_YMM},
		{ROUNDSS, VROUNDSS, "66", "0F 3A 0A", 32, SHAPE_BINARY_I, VEC_LIG},
		{ROUNDSD, VROUNDSD, "66", "0F 3A 0B", 64, SHAPE_BINARY_I, VEC_LIG},
		{DPPS, VDPPS, "66", "0F 3A 40", 128, SHAPE_BINARY_I, VEC_YMM},
		{DPPD, VDPPD, "66", "0F 3A 41", 128, SHAPE_BINARY_I, 0},
		{INSERTPS, VINSERTPS, "66", "0F 3A 21", 32, SHAPE_BINARY_I, 0},
	},
}

// Packed integer operations shared by MMX, SSE2 and AVX/AVX2.
var vecInteger = []vecOp{
	{PADDB, VPADDB, "66", "0F FC", 128, SHAPE_BINARY, VEC_MMX | VEC_YMM},
	{PADDW, VPADDW, "66", "0F FD", 128, SHAPE_BINARY, VEC_MMX | VEC_YMM},
	{PADDD, VPADDD, "66", "0F FE", 128, SHAPE_BINARY, VEC_MMX | VEC_YMM},
	{PADDQ, VPADDQ, "66", "0F D4", 128, SHAPE_BINARY, VEC_MMX | VEC_YMM},
	{PSUBB, VPSUBB, "66", "0F F8", 128, SHAPE_BINARY, VEC_MMX | VEC_YMM},
	{PSUBW, VPSUBW, "66", "0F F9", 128, SHAPE_BINARY, VEC_MMX | VEC_YMM},
	{PSUBD, VPSUBD, "66", "0F FA", 128, SHAPE_BINARY, VEC_MMX | VEC_YMM},
	{PSUBQ, VPSUBQ, "66", "0F FB", 128, SHAPE_BINARY, VEC_MMX | VEC_YMM},
	{PADDSB, VPADDSB, "66", "0F EC", 128, SHAPE_BINARY, VEC_MMX | VEC_YMM},
	{PADDSW, VPADDSW, "66", "0F ED", 128, SHAPE_BINARY, VEC_MMX | VEC_YMM},
	{PADDUSB, VPADDUSB, "66", "0F DC", 128, SHAPE_BINARY, VEC_MMX | VEC_YMM},
	{PADDUSW, VPADDUSW, "66", "0F DD", 128, SHAPE_BINARY, VEC_MMX | VEC_YMM},
	{PSUBSB, VPSUBSB, "66", "0F E8", 128, SHAPE_BINARY, VEC_MMX | VEC_YMM},
	{PSUBSW, VPSUBSW, "66", "0F E9", 128, SHAPE_BINARY, VEC_MMX | VEC_YMM},
	{PSUBUSB, VPSUBUSB, "66", "0F D8", 128, SHAPE_BINARY, VEC_MMX | VEC_YMM},
	{PSUBUSW, VPSUBUSW, "66", "0F D9", 128, SHAPE_BINARY, VEC_MMX | VEC_YMM},
	{PMULLW, VPMULLW, "66", "0F D5", 128, SHAPE_BINARY, VEC_MMX | VEC_YMM},
	{PMULHW, VPMULHW, "66", "0F E5", 128, SHAPE_BINARY, VEC_MMX | VEC_YMM},
	{PMULHUW, VPMULHUW, "66", "0F E4", 128, SHAPE_BINARY, VEC_MMX | VEC_YMM},
	{PMULUDQ, VPMULUDQ, "66", "0F F4", 128, SHAPE_BINARY, VEC_MMX | VEC_YMM},
	{PMADDWD, VPMADDWD, "66", "0F F5", 128, SHAPE_BINARY, VEC_MMX | VEC_YMM},
	{PAND, VPAND, "66", "0F DB", 128, SHAPE_BINARY, VEC_MMX | VEC_YMM},
	{PANDN, VPANDN, "66", "0F DF", 128, SHAPE_BINARY, VEC_MMX | VEC_YMM},
	{POR, VPOR, "66", "0F EB", 128, SHAPE_BINARY, VEC_MMX | VEC_YMM},
	{PXOR, VPXOR, "66", "0F EF", 128, SHAPE_BINARY, VEC_MMX | VEC_YMM},
	{PCMPEQB, VPCMPEQB, "66", "0F 74", 128, SHAPE_BINARY, VEC_MMX | VEC_YMM},
	{PCMPEQW, VPCMPEQW, "66", "0F 75", 128, SHAPE_BINARY, VEC_MMX | VEC_YMM},
	{PCMPEQD, VPCMPEQD, "66", "0F 76", 128, SHAPE_BINARY, VEC_MMX | VEC_YMM},
	{PCMPGTB, VPCMPGTB, "66", "0F 64", 128, SHAPE_BINARY, VEC_MMX | VEC_YMM},
	{PCMPGTW, VPCMPGTW, "66", "0F 65", 128, SHAPE_BINARY, VEC_MMX | VEC_YMM},
	{PCMPGTD, VPCMPGTD, "66", "0F 66", 128, SHAPE_BINARY, VEC_MMX | VEC_YMM},
	{PUNPCKLBW, VPUNPCKLBW, "66", "0F 60", 128, SHAPE_BINARY, VEC_MMX | VEC_YMM},
	{PUNPCKLWD, VPUNPCKLWD, "66", "0F 61", 128, SHAPE_BINARY, VEC_MMX | VEC_YMM},
	{PUNPCKLDQ, VPUNPCKLDQ, "66", "0F 62", 128, SHAPE_BINARY, VEC_MMX | VEC_YMM},
	{PUNPCKHBW, VPUNPCKHBW, "66", "0F 68", 128, SHAPE_BINARY, VEC_MMX | VEC_YMM},
	{PUNPCKHWD, VPUNPCKHWD, "66", "0F 69", 128, SHAPE_BINARY, VEC_MMX | VEC_YMM},
	{PUNPCKHDQ, VPUNPCKHDQ, "66", "0F 6A", 128, SHAPE_BINARY, VEC_MMX | VEC_YMM},
	{PUNPCKLQDQ, VPUNPCKLQDQ, "66", "0F 6C", 128, SHAPE_BINARY, VEC_YMM},
	{PUNPCKHQDQ, VPUNPCKHQDQ, "66", "0F 6D", 128, SHAPE_BINARY, VEC_YMM},
	{PACKSSWB, VPACKSSWB, "66", "0F 63", 128, SHAPE_BINARY, VEC_MMX | VEC_YMM},
	{PACKUSWB, VPACKUSWB, "66", "0F 67", 128, SHAPE_BINARY, VEC_MMX | VEC_YMM},
	{PACKSSDW, VPACKSSDW, "66", "0F 6B", 128, SHAPE_BINARY, VEC_MMX | VEC_YMM},
	{PAVGB, VPAVGB, "66", "0F E0", 128, SHAPE_BINARY, VEC_MMX | VEC_YMM},
	{PAVGW, VPAVGW, "66", "0F E3", 128, SHAPE_BINARY, VEC_MMX | VEC_YMM},
	{PMINUB, VPMINUB, "66", "0F DA", 128, SHAPE_BINARY, VEC_MMX | VEC_YMM},
	{PMAXUB, VPMAXUB, "66", "0F DE", 128, SHAPE_BINARY, VEC_MMX | VEC_YMM},
	{PMINSW, VPMINSW, "66", "0F EA", 128, SHAPE_BINARY, VEC_MMX | VEC_YMM},
	{PMAXSW, VPMAXSW, "66", "0F EE", 128, SHAPE_BINARY, VEC_MMX | VEC_YMM},
	{PSADBW, VPSADBW, "66", "0F F6", 128, SHAPE_BINARY, VEC_MMX | VEC_YMM},
	{PSRLW, VPSRLW, "66", "0F D1", 128, SHAPE_BINARY, VEC_MMX},
	{PSRLD, VPSRLD, "66", "0F D2", 128, SHAPE_BINARY, VEC_MMX},
	{PSRLQ, VPSRLQ, "66", "0F D3", 128, SHAPE_BINARY, VEC_MMX},
	{PSRAW, VPSRAW, "66", "0F E1", 128, SHAPE_BINARY, VEC_MMX},
	{PSRAD, VPSRAD, "66", "0F E2", 128, SHAPE_BINARY, VEC_MMX},
	{PSLLW, VPSLLW, "66", "0F F1", 128, SHAPE_BINARY, VEC_MMX},
	{PSLLD, VPSLLD, "66", "0F F2", 128, SHAPE_BINARY, VEC_MMX},
	{PSLLQ, VPSLLQ, "66", "0F F3", 128, SHAPE_BINARY, VEC_MMX},
	{PSRLW, VPSRLW, "66", "0F 71 /2", 128, SHAPE_SHIFT_I, VEC_MMX | VEC_YMM},
	{PSRAW, VPSRAW, "66", "0F 71 /4", 128, SHAPE_SHIFT_I, VEC_MMX | VEC_YMM},
	{PSLLW, VPSLLW, "66", "0F 71 /6", 128, SHAPE_SHIFT_I, VEC_MMX | VEC_YMM},
	{PSRLD, VPSRLD, "66", "0F 72 /2", 128, SHAPE_SHIFT_I, VEC_MMX | VEC_YMM},
	{PSRAD, VPSRAD, "66", "0F 72 /4", 128, SHAPE_SHIFT_I, VEC_MMX | VEC_YMM},
	{PSLLD, VPSLLD, "66", "0F 72 /6", 128, SHAPE_SHIFT_I, VEC_MMX | VEC_YMM},
	{PSRLQ, VPSRLQ, "66", "0F 73 /2", 128, SHAPE_SHIFT_I, VEC_MMX | VEC_YMM},
	{PSRLDQ, VPSRLDQ, "66", "0F 73 /3", 128, SHAPE_SHIFT_I, VEC_YMM},
	{PSLLQ, VPSLLQ, "66", "0F 73 /6", 128, SHAPE_SHIFT_I, VEC_MMX | VEC_YMM},
	{PSLLDQ, VPSLLDQ, "66", "0F 73 /7", 128, SHAPE_SHIFT_I, VEC_YMM},
	{PSHUFD, VPSHUFD, "66", "0F 70", 128, SHAPE_UNARY_I, VEC_YMM},
	{PSHUFHW, VPSHUFHW, "F3", "0F 70", 128, SHAPE_UNARY_I, VEC_YMM},
	{PSHUFLW, VPSHUFLW, "F2", "0F 70", 128, SHAPE_UNARY_I, VEC_YMM},

	{PSHUFB, VPSHUFB, "66", "0F 38 00", 128, SHAPE_BINARY, VEC_MMX | VEC_YMM},
	{PHADDW, VPHADDW, "66", "0F 38 01", 128, SHAPE_BINARY, VEC_MMX | VEC_YMM},
	{PHADDD, VPHADDD, "66", "0F 38 02", 128, SHAPE_BINARY, VEC_MMX | VEC_YMM},
	{PHADDSW, VPHADDSW, "66", "0F 38 03", 128, SHAPE_BINARY, VEC_MMX | VEC_YMM},
	{PMADDUBSW, VPMADDUBSW, "66", "0F 38 04", 128, SHAPE_BINARY, VEC_MMX | VEC_YMM},
	{PHSUBW, VPHSUBW, "66", "0F 38 05", 128, SHAPE_BINARY, VEC_MMX | VEC_YMM},
	{PHSUBD, VPHSUBD, "66", "0F 38 06", 128, SHAPE_BINARY, VEC_MMX | VEC_YMM},
	{PHSUBSW, VPHSUBSW, "66", "0F 38 07", 128, SHAPE_BINARY, VEC_MMX | VEC_YMM},
	{PSIGNB, VPSIGNB, "66", "0F 38 08", 128, SHAPE_BINARY, VEC_MMX | VEC_YMM},
	{PSIGNW, VPSIGNW, "66", "0F 38 09", 128, SHAPE_BINARY, VEC_MMX | VEC_YMM},
	{PSIGND, VPSIGND, "66", "0F 38 0A", 128, SHAPE_BINARY, VEC_MMX | VEC_YMM},
	{PMULHRSW, VPMULHRSW, "66", "0F 38 0B", 128, SHAPE_BINARY, VEC_MMX | VEC_YMM},
	{PABSB, VPABSB, "66", "0F 38 1C", 128, SHAPE_UNARY, VEC_MMX | VEC_YMM},
	{PABSW, VPABSW, "66", "0F 38 1D", 128, SHAPE_UNARY, VEC_MMX | VEC_YMM},
	{PABSD, VPABSD, "66", "0F 38 1E", 128, SHAPE_UNARY, VEC_MMX | VEC_YMM},
	{PALIGNR, VPALIGNR, "66", "0F 3A 0F", 128, SHAPE_BINARY_I, VEC_MMX | VEC_YMM},

	{PMULDQ, VPMULDQ, "66", "0F 38 28", 128, SHAPE_BINARY, VEC_YMM},
	{PCMPEQQ, VPCMPEQQ, "66", "0F 38 29", 128, SHAPE_BINARY, VEC_YMM},
	{PACKUSDW, VPACKUSDW, "66", "0F 38 2B", 128, SHAPE_BINARY, VEC_YMM},
	{PCMPGTQ, VPCMPGTQ, "66", "0F 38 37", 128, SHAPE_BINARY, VEC_YMM},
	{PMINSB, VPMINSB, "66", "0F 38 38", 128, SHAPE_BINARY, VEC_YMM},
	{PMINSD, VPMINSD, "66", "0F 38 39", 128, SHAPE_BINARY, VEC_YMM},
	{PMINUW, VPMINUW, "66", "0F 38 3A", 128, SHAPE_BINARY, VEC_YMM},
	{PMINUD, VPMINUD, "66", "0F 38 3B", 128, SHAPE_BINARY, VEC_YMM},
	{PMAXSB, VPMAXSB, "66", "0F 38 3C", 128, SHAPE_BINARY, VEC_YMM},
	{PMAXSD, VPMAXSD, "66", "0F 38 3D", 128, SHAPE_BINARY, VEC_YMM},
	{PMAXUW, VPMAXUW, "66", "0F 38 3E", 128, SHAPE_BINARY, VEC_YMM},
	{PMAXUD, VPMAXUD, "66", "0F 38 3F", 128, SHAPE_BINARY, VEC_YMM},
	{PMULLD, VPMULLD, "66", "0F 38 40", 128, SHAPE_BINARY, VEC_YMM},
	{PHMINPOSUW, VPHMINPOSUW, "66", "0F 38 41", 128, SHAPE_UNARY, 0},
	{PTEST, VPTEST, "66", "0F 38 17", 128, SHAPE_UNARY, VEC_YMM},
	{PMOVSXBW, VPMOVSXBW, "66", "0F 38 20", 64, SHAPE_UNARY, 0},
	{PMOVSXBD, VPMOVSXBD, "66", "0F 38 21", 32, SHAPE_UNARY, 0},
	{PMOVSXBQ, VPMOVSXBQ, "66", "0F 38 22", 16, SHAPE_UNARY, 0},
	{PMOVSXWD, VPMOVSXWD, "66", "0F 38 23", 64, SHAPE_UNARY, 0},
	{PMOVSXWQ, VPMOVSXWQ, "66", "0F 38 24", 32, SHAPE_UNARY, 0},
	{PMOVSXDQ, VPMOVSXDQ, "66", "0F 38 25", 64, SHAPE_UNARY, 0},
	{PMOVZXBW, VPMOVZXBW, "66", "0F 38 30", 64, SHAPE_UNARY, 0},
	{PMOVZXBD, VPMOVZXBD, "66", "0F 38 31", 32, SHAPE_UNARY, 0},
	{PMOVZXBQ, VPMOVZXBQ, "66", "0F 38 32", 16, SHAPE_UNARY, 0},
	{PMOVZXWD, VPMOVZXWD, "66", "0F 38 33", 64, SHAPE_UNARY, 0},
	{PMOVZXWQ, VPMOVZXWQ, "66", "0F 38 34", 32, SHAPE_UNARY, 0},
	{PMOVZXDQ, VPMOVZXDQ, "66", "0F 38 35", 64, SHAPE_UNARY, 0},
	{PBLENDW, VPBLENDW, "66", "0F 3A 0E", 128, SHAPE_BINARY_I, VEC_YMM},
	{MPSADBW, VMPSADBW, "66", "0F 3A 42", 128, SHAPE_BINARY_I, VEC_YMM},
	{PCMPESTRM, VPCMPESTRM, "66", "0F 3A 60", 128, SHAPE_UNARY_I, 0},
	{PCMPESTRI, VPCMPESTRI, "66", "0F 3A 61", 128, SHAPE_UNARY_I, 0},
	{PCMPISTRM, VPCMPISTRM, "66", "0F 3A 62", 128, SHAPE_UNARY_I, 0},
	{PCMPISTRI, VPCMPISTRI, "66", "0F 3A 63", 128, SHAPE_UNARY_I, 0},

	{AESIMC, VAESIMC, "66", "0F 38 DB", 128, SHAPE_UNARY, 0},
	{AESENC, VAESENC, "66", "0F 38 DC", 128, SHAPE_BINARY, 0},
	{AESENCLAST, VAESENCLAST, "66", "0F 38 DD", 128, SHAPE_BINARY, 0},
	{AESDEC, VAESDEC, "66", "0F 38 DE", 128, SHAPE_BINARY, 0},
	{AESDECLAST, VAESDECLAST, "66", "0F 38 DF", 128, SHAPE_BINARY, 0},
	{AESKEYGENASSIST, VAESKEYGENASSIST, "66", "0F 3A DF", 128, SHAPE_UNARY_I, 0},
	{PCLMULQDQ, VPCLMULQDQ, "66", "0F 3A 44", 128, SHAPE_BINARY_I, 0},
}

var tableSSE = []row{
	{MOVSS, "xmm1, xmm2", "RM", "F3 0F 10 /r", 0},
	{MOVSS, "xmm1, m32", "RM", "F3 0F 10 /r", 0},
	{MOVSS, "m32, xmm1", "MR", "F3 0F 11 /r", 0},
	{MOVSD, "xmm1, xmm2", "RM", "F2 0F 10 /r", 0},
	{MOVSD, "xmm1, m64", "RM", "F2 0F 10 /r", 0},
	{MOVSD, "m64, xmm1", "MR", "F2 0F 11 /r", 0},
	{MOVD, "xmm, r/m32", "RM", "66 0F 6E /r", 0},
	{MOVD, "r/m32, xmm", "MR", "66 0F 7E /r", 0},
	{MOVQ, "xmm, r/m64", "RM", "66 REX.W 0F 6E /r", FLAG_ONLY64},
	{MOVQ, "r/m64, xmm", "MR", "66 REX.W 0F 7E /r", FLAG_ONLY64},
	{MOVQ, "xmm1, xmm2/m64", "RM", "F3 0F 7E /r", 0},
	{MOVQ, "xmm2/m64, xmm1", "MR", "66 0F D6 /r", 0},
	{MOVHLPS, "xmm1, xmm2", "RM", "NP 0F 12 /r", 0},
	{MOVLHPS, "xmm1, xmm2", "RM", "NP 0F 16 /r", 0},
	{MOVLPS, "xmm1, m64", "RM", "NP 0F 12 /r", 0},
	{MOVLPS, "m64, xmm1", "MR", "NP 0F 13 /r", 0},
	{MOVHPS, "xmm1, m64", "RM", "NP 0F 16 /r", 0},
	{MOVHPS, "m64, xmm1", "MR", "NP 0F 17 /r", 0},
	{MOVMSKPS, "r32, xmm", "RM", "NP 0F 50 /r", 0},
	{MOVMSKPD, "r32, xmm", "RM", "66 0F 50 /r", 0},
	{PMOVMSKB, "r32, mm", "RM", "NP 0F D7 /r", 0},
	{PMOVMSKB, "r32, xmm", "RM", "66 0F D7 /r", 0},
	{PSHUFW, "mm1, mm2/m64, imm8", "RMI", "NP 0F 70 /r ib", 0},
	{PEXTRW, "r32, xmm, imm8", "RMI", "66 0F C5 /r ib", 0},
	{PINSRW, "xmm, r32/m16, imm8", "RMI", "66 0F C4 /r ib", 0},
	{PEXTRB, "r32/m8, xmm2, imm8", "MRI", "66 0F 3A 14 /r ib", 0},
	{PEXTRD, "r/m32, xmm2, imm8", "MRI", "66 0F 3A 16 /r ib", 0},
	{PEXTRQ, "r/m64, xmm2, imm8", "MRI", "66 REX.W 0F 3A 16 /r ib", FLAG_ONLY64},
	{EXTRACTPS, "r/m32, xmm1, imm8", "MRI", "66 0F 3A 17 /r ib", 0},
	{PINSRB, "xmm1, r32/m8, imm8", "RMI", "66 0F 3A 20 /r ib", 0},
	{PINSRD, "xmm1, r/m32, imm8", "RMI", "66 0F 3A 22 /r ib", 0},
	{PINSRQ, "xmm1, r/m64, imm8", "RMI", "66 REX.W 0F 3A 22 /r ib", FLAG_ONLY64},
	{CVTSI2SS, "xmm1, r/m32", "RM", "F3 0F 2A /r", 0},
	{CVTSI2SS, "xmm1, r/m64", "RM", "F3 REX.W 0F 2A /r", FLAG_ONLY64},
	{CVTSI2SD, "xmm1, r/m32", "RM", "F2 0F 2A /r", 0},
	{CVTSI2SD, "xmm1, r/m64", "RM", "F2 REX.W 0F 2A /r", FLAG_ONLY64},
	{CVTSS2SI, "r32, xmm1/m32", "RM", "F3 0F 2D /r", 0},
	{CVTSS2SI, "r64, xmm1/m32", "RM", "F3 REX.W 0F 2D /r", FLAG_ONLY64},
	{CVTTSS2SI, "r32, xmm1/m32", "RM", "F3 0F 2C /r", 0},
	{CVTTSS2SI, "r64, xmm1/m32", "RM", "F3 REX.W 0F 2C /r", FLAG_ONLY64},
	{CVTSD2SI, "r32, xmm1/m64", "RM", "F2 0F 2D /r", 0},
	{CVTSD2SI, "r64, xmm1/m64", "RM", "F2 REX.W 0F 2D /r", FLAG_ONLY64},
	{CVTTSD2SI, "r32, xmm1/m64", "RM", "F2 0F 2C /r", 0},
	{CVTTSD2SI, "r64, xmm1/m64", "RM", "F2 REX.W 0F 2C /r", FLAG_ONLY64},
	{LDDQU, "xmm1, m128", "RM", "F2 0F F0 /r", 0},
	{MOVNTDQA, "xmm1, m128", "RM", "66 0F 38 2A /r", 0},
	{MOVNTDQ, "m128, xmm1", "MR", "66 0F E7 /r", 0},
	{MOVNTPS, "m128, xmm1", "MR", "NP 0F 2B /r", 0},
	{MOVNTPD, "m128, xmm1", "MR", "66 0F 2B /r", 0},
	{MOVNTI, "m32, r32", "MR", "NP 0F C3 /r", 0},
	{MOVNTI, "m64, r64", "MR", "NP REX.W + 0F C3 /r", 0},
	{BLENDVPS, "xmm1, xmm2/m128, <XMM0>", "RMA", "66 0F 38 14 /r", 0},
	{BLENDVPD, "xmm1, xmm2/m128, <XMM0>", "RMA", "66 0F 38 15 /r", 0},
	{PBLENDVB, "xmm1, xmm2/m128, <XMM0>", "RMA", "66 0F 38 10 /r", 0},
	{LDMXCSR, "m32", "M", "NP 0F AE /2", 0},
	{STMXCSR, "m32", "M", "NP 0F AE /3", 0},
}

// sseRows returns the MMX, SSE and VEX rows of the vector families, the
// legacy rows outside of them first.
func sseRows() (rows []row) {
	rows = append(rows, tableSSE...)
	for _, family := range vecFloat {
		rows = append(rows, vecRows(family)...)
	}
	rows = append(rows, vecRows(vecInteger)...)
	return
}
