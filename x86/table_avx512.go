// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package x86

import (
	"fmt"
	"strings"
)

// evexLength is a set of EVEX vector lengths.
type evexLength uint8

const (
	EVEX_128  = evexLength(1 << 0) // xmm
	EVEX_256  = evexLength(1 << 1) // ymm
	EVEX_512  = evexLength(1 << 2) // zmm
	EVEX_ALL  = EVEX_128 | EVEX_256 | EVEX_512
	EVEX_WIDE = EVEX_256 | EVEX_512
)

// evexOp is an AVX-512 operation. Packed operations expand into one row
// per vector length; a non-zero scalar width gives a single EVEX.LIG row.
type evexOp struct {
	mnemonic Mnemonic
	pp       string // NP, 66, F2 or F3
	opcode   string // "0F 58", "0F 38 40", "0F 72 /6"
	w        string // W0, W1 or WIG
	bcst     int    // broadcast element width
	tuple    Flag
	shape    vecShape
	deco     string // "{er}", "{sae}" or empty, on the register source
	length   evexLength
	scalar   int
}

func (op *evexOp) row(reg string, rm string, length string, deco string) row {
	if op.bcst != 0 && op.scalar == 0 {
		rm += fmt.Sprintf("/m%dbcst", op.bcst)
	}
	rm += deco

	var operands, openc string
	switch op.shape {
	case SHAPE_BINARY:
		operands, openc = fmt.Sprintf("%v1 {k1}{z}, %v2, %v3/%v", reg, reg, reg, rm), "RVM"
	case SHAPE_BINARY_I:
		operands, openc = fmt.Sprintf("%v1 {k1}{z}, %v2, %v3/%v, imm8", reg, reg, reg, rm), "RVMI"
	case SHAPE_UNARY:
		operands, openc = fmt.Sprintf("%v1 {k1}{z}, %v2/%v", reg, reg, rm), "RM"
	case SHAPE_UNARY_I:
		operands, openc = fmt.Sprintf("%v1 {k1}{z}, %v2/%v, imm8", reg, reg, rm), "RMI"
	case SHAPE_STORE:
		operands, openc = fmt.Sprintf("%v2/%v {k1}{z}, %v1", reg, rm, reg), "MR"
	case SHAPE_SHIFT_I:
		operands, openc = fmt.Sprintf("%v1 {k1}{z}, %v2/%v, imm8", reg, reg, rm), "VMI"
	case SHAPE_CMP_K:
		operands, openc = fmt.Sprintf("k1 {k2}, %v2, %v3/%v", reg, reg, rm), "RVM"
	case SHAPE_CMP_K_I:
		operands, openc = fmt.Sprintf("k1 {k2}, %v2, %v3/%v, imm8", reg, reg, rm), "RVMI"
	}

	fields := []string{"EVEX", length}
	if op.pp != "NP" {
		fields = append(fields, op.pp)
	}
	opmap, rest := vexMap(op.opcode)
	fields = append(fields, opmap, op.w)

	if !strings.Contains(rest, "/") {
		rest += " /r"
	}
	switch op.shape {
	case SHAPE_BINARY_I, SHAPE_UNARY_I, SHAPE_SHIFT_I, SHAPE_CMP_K_I:
		rest += " ib"
	}

	return row{op.mnemonic, operands, openc, strings.Join(fields, ".") + " " + rest, op.tuple}
}

// evexRows expands AVX-512 operations into their rows.
func evexRows(ops []evexOp) (rows []row) {
	for n := range ops {
		op := &ops[n]
		if op.scalar != 0 {
			rows = append(rows, op.row("xmm", fmt.Sprintf("m%d", op.scalar), "LIG", op.deco))
			continue
		}
		if op.length&EVEX_128 != 0 {
			rows = append(rows, op.row("xmm", "m128", "128", ""))
		}
		if op.length&EVEX_256 != 0 {
			rows = append(rows, op.row("ymm", "m256", "256", ""))
		}
		if op.length&EVEX_512 != 0 {
			rows = append(rows, op.row("zmm", "m512", "512", op.deco))
		}
	}
	return
}

// evexFP returns the packed and scalar single and double forms.
func evexFP(ps, pd, ss, sd Mnemonic, opcode string, packed vecShape, deco string) []evexOp {
	ops := []evexOp{
		{ps, "NP", opcode, "W0", 32, T_FV, packed, deco, EVEX_ALL, 0},
		{pd, "66", opcode, "W1", 64, T_FV, packed, deco, EVEX_ALL, 0},
	}
	if ss != 0 {
		ops = append(ops,
			evexOp{ss, "F3", opcode, "W0", 0, T_T1S, SHAPE_BINARY, deco, 0, 32},
			evexOp{sd, "F2", opcode, "W1", 0, T_T1S, SHAPE_BINARY, deco, 0, 64},
		)
	}
	return ops
}

// evexDQ returns the dword and qword forms of an integer operation.
func evexDQ(d, q Mnemonic, pp string, opcode string, shape vecShape, length evexLength) []evexOp {
	return []evexOp{
		{d, pp, opcode, "W0", 32, T_FV, shape, "", length, 0},
		{q, pp, opcode, "W1", 64, T_FV, shape, "", length, 0},
	}
}

// evexBW returns a byte or word integer operation.
func evexBW(m Mnemonic, opcode string, shape vecShape) evexOp {
	return evexOp{m, "66", opcode, "WIG", 0, T_FVM, shape, "", EVEX_ALL, 0}
}

var vecAVX512 = [][]evexOp{
	evexFP(VADDPS, VADDPD, VADDSS, VADDSD, "0F 58", SHAPE_BINARY, "{er}"),
	evexFP(VMULPS, VMULPD, VMULSS, VMULSD, "0F 59", SHAPE_BINARY, "{er}"),
	evexFP(VSUBPS, VSUBPD, VSUBSS, VSUBSD, "0F 5C", SHAPE_BINARY, "{er}"),
	evexFP(VMINPS, VMINPD, VMINSS, VMINSD, "0F 5D", SHAPE_BINARY, "{sae}"),
	evexFP(VDIVPS, VDIVPD, VDIVSS, VDIVSD, "0F 5E", SHAPE_BINARY, "{er}"),
	evexFP(VMAXPS, VMAXPD, VMAXSS, VMAXSD, "0F 5F", SHAPE_BINARY, "{sae}"),
	evexFP(VSQRTPS, VSQRTPD, VSQRTSS, VSQRTSD, "0F 51", SHAPE_UNARY, "{er}"),
	evexFP(VANDPS, VANDPD, 0, 0, "0F 54", SHAPE_BINARY, ""),
	evexFP(VANDNPS, VANDNPD, 0, 0, "0F 55", SHAPE_BINARY, ""),
	evexFP(VORPS, VORPD, 0, 0, "0F 56", SHAPE_BINARY, ""),
	evexFP(VXORPS, VXORPD, 0, 0, "0F 57", SHAPE_BINARY, ""),
	evexFP(VUNPCKLPS, VUNPCKLPD, 0, 0, "0F 14", SHAPE_BINARY, ""),
	evexFP(VUNPCKHPS, VUNPCKHPD, 0, 0, "0F 15", SHAPE_BINARY, ""),
	evexFP(VSHUFPS, VSHUFPD, 0, 0, "0F C6", SHAPE_BINARY_I, ""),
	{
		{VCMPPS, "NP", "0F C2", "W0", 32, T_FV, SHAPE_CMP_K_I, "{sae}", EVEX_ALL, 0},
		{VCMPPD, "66", "0F C2", "W1", 64, T_FV, SHAPE_CMP_K_I, "{sae}", EVEX_ALL, 0},
		{VCMPSS, "F3", "0F C2", "W0", 0, T_T1S, SHAPE_CMP_K_I, "{sae}", 0, 32},
		{VCMPSD, "F2", "0F C2", "W1", 0, T_T1S, SHAPE_CMP_K_I, "{sae}", 0, 64},
		{VMOVAPS, "NP", "0F 28", "W0", 0, T_FVM, SHAPE_UNARY, "", EVEX_ALL, 0},
		{VMOVAPS, "NP", "0F 29", "W0", 0, T_FVM, SHAPE_STORE, "", EVEX_ALL, 0},
		{VMOVAPD, "66", "0F 28", "W1", 0, T_FVM, SHAPE_UNARY, "", EVEX_ALL, 0},
		{VMOVAPD, "66", "0F 29", "W1", 0, T_FVM, SHAPE_STORE, "", EVEX_ALL, 0},
		{VMOVUPS, "NP", "0F 10", "W0", 0, T_FVM, SHAPE_UNARY, "", EVEX_ALL, 0},
		{VMOVUPS, "NP", "0F 11", "W0", 0, T_FVM, SHAPE_STORE, "", EVEX_ALL, 0},
		{VMOVUPD, "66", "0F 10", "W1", 0, T_FVM, SHAPE_UNARY, "", EVEX_ALL, 0},
		{VMOVUPD, "66", "0F 11", "W1", 0, T_FVM, SHAPE_STORE, "", EVEX_ALL, 0},
		{VMOVDQA32, "66", "0F 6F", "W0", 0, T_FVM, SHAPE_UNARY, "", EVEX_ALL, 0},
		{VMOVDQA32, "66", "0F 7F", "W0", 0, T_FVM, SHAPE_STORE, "", EVEX_ALL, 0},
		{VMOVDQA64, "66", "0F 6F", "W1", 0, T_FVM, SHAPE_UNARY, "", EVEX_ALL, 0},
		{VMOVDQA64, "66", "0F 7F", "W1", 0, T_FVM, SHAPE_STORE, "", EVEX_ALL, 0},
		{VMOVDQU32, "F3", "0F 6F", "W0", 0, T_FVM, SHAPE_UNARY, "", EVEX_ALL, 0},
		{VMOVDQU32, "F3", "0F 7F", "W0", 0, T_FVM, SHAPE_STORE, "", EVEX_ALL, 0},
		{VMOVDQU64, "F3", "0F 6F", "W1", 0, T_FVM, SHAPE_UNARY, "", EVEX_ALL, 0},
		{VMOVDQU64, "F3", "0F 7F", "W1", 0, T_FVM, SHAPE_STORE, "", EVEX_ALL, 0},
		{VMOVDQU8, "F2", "0F 6F", "W0", 0, T_FVM, SHAPE_UNARY, "", EVEX_ALL, 0},
		{VMOVDQU8, "F2", "0F 7F", "W0", 0, T_FVM, SHAPE_STORE, "", EVEX_ALL, 0},
		{VMOVDQU16, "F2", "0F 6F", "W1", 0, T_FVM, SHAPE_UNARY, "", EVEX_ALL, 0},
		{VMOVDQU16, "F2", "0F 7F", "W1", 0, T_FVM, SHAPE_STORE, "", EVEX_ALL, 0},
		{VCVTDQ2PS, "NP", "0F 5B", "W0", 32, T_FV, SHAPE_UNARY, "{er}", EVEX_ALL, 0},
		{VCVTPS2DQ, "66", "0F 5B", "W0", 32, T_FV, SHAPE_UNARY, "{er}", EVEX_ALL, 0},
		{VCVTTPS2DQ, "F3", "0F 5B", "W0", 32, T_FV, SHAPE_UNARY, "{sae}", EVEX_ALL, 0},
	},
	evexDQ(VPADDD, VPADDQ, "66", "0F FE", SHAPE_BINARY, EVEX_ALL)[:1],
	evexDQ(VPADDD, VPADDQ, "66", "0F D4", SHAPE_BINARY, EVEX_ALL)[1:],
	evexDQ(VPSUBD, VPSUBQ, "66", "0F FA", SHAPE_BINARY, EVEX_ALL)[:1],
	evexDQ(VPSUBD, VPSUBQ, "66", "0F FB", SHAPE_BINARY, EVEX_ALL)[1:],
	evexDQ(VPMULLD, VPMULLQ, "66", "0F 38 40", SHAPE_BINARY, EVEX_ALL),
	evexDQ(VPMULUDQ, VPMULUDQ, "66", "0F F4", SHAPE_BINARY, EVEX_ALL)[1:],
	evexDQ(VPMULDQ, VPMULDQ, "66", "0F 38 28", SHAPE_BINARY, EVEX_ALL)[1:],
	evexDQ(VPANDD, VPANDQ, "66", "0F DB", SHAPE_BINARY, EVEX_ALL),
	evexDQ(VPANDND, VPANDNQ, "66", "0F DF", SHAPE_BINARY, EVEX_ALL),
	evexDQ(VPORD, VPORQ, "66", "0F EB", SHAPE_BINARY, EVEX_ALL),
	evexDQ(VPXORD, VPXORQ, "66", "0F EF", SHAPE_BINARY, EVEX_ALL),
	evexDQ(VPMINSD, VPMINSQ, "66", "0F 38 39", SHAPE_BINARY, EVEX_ALL),
	evexDQ(VPMINUD, VPMINUQ, "66", "0F 38 3B", SHAPE_BINARY, EVEX_ALL),
	evexDQ(VPMAXSD, VPMAXSQ, "66", "0F 38 3D", SHAPE_BINARY, EVEX_ALL),
	evexDQ(VPMAXUD, VPMAXUQ, "66", "0F 38 3F", SHAPE_BINARY, EVEX_ALL),
	evexDQ(VPABSD, VPABSQ, "66", "0F 38 1E", SHAPE_UNARY, EVEX_ALL)[:1],
	evexDQ(VPABSD, VPABSQ, "66", "0F 38 1F", SHAPE_UNARY, EVEX_ALL)[1:],
	evexDQ(VPSHUFD, VPSHUFD, "66", "0F 70", SHAPE_UNARY_I, EVEX_ALL)[:1],
	evexDQ(VPTERNLOGD, VPTERNLOGQ, "66", "0F 3A 25", SHAPE_BINARY_I, EVEX_ALL),
	evexDQ(VPERMD, VPERMQ, "66", "0F 38 36", SHAPE_BINARY, EVEX_WIDE),
	evexDQ(VPERMPS, VPERMPD, "66", "0F 38 16", SHAPE_BINARY, EVEX_WIDE),
	evexDQ(VPERMQ, VPERMQ, "66", "0F 3A 00", SHAPE_UNARY_I, EVEX_WIDE)[1:],
	evexDQ(VPERMPD, VPERMPD, "66", "0F 3A 01", SHAPE_UNARY_I, EVEX_WIDE)[1:],
	evexDQ(VPSLLVD, VPSLLVQ, "66", "0F 38 47", SHAPE_BINARY, EVEX_ALL),
	evexDQ(VPSRLVD, VPSRLVQ, "66", "0F 38 45", SHAPE_BINARY, EVEX_ALL),
	evexDQ(VPSRAVD, VPSRAVQ, "66", "0F 38 46", SHAPE_BINARY, EVEX_ALL),
	evexDQ(VPSRLD, VPSRLQ, "66", "0F 72 /2", SHAPE_SHIFT_I, EVEX_ALL)[:1],
	evexDQ(VPSRLD, VPSRLQ, "66", "0F 73 /2", SHAPE_SHIFT_I, EVEX_ALL)[1:],
	evexDQ(VPSLLD, VPSLLQ, "66", "0F 72 /6", SHAPE_SHIFT_I, EVEX_ALL)[:1],
	evexDQ(VPSLLD, VPSLLQ, "66", "0F 73 /6", SHAPE_SHIFT_I, EVEX_ALL)[1:],
	evexDQ(VPSRAD, VPSRAQ, "66", "0F 72 /4", SHAPE_SHIFT_I, EVEX_ALL),
	evexDQ(VPCMPEQD, VPCMPEQD, "66", "0F 76", SHAPE_CMP_K, EVEX_ALL)[:1],
	evexDQ(VPCMPEQQ, VPCMPEQQ, "66", "0F 38 29", SHAPE_CMP_K, EVEX_ALL)[1:],
	evexDQ(VPCMPGTD, VPCMPGTD, "66", "0F 66", SHAPE_CMP_K, EVEX_ALL)[:1],
	evexDQ(VPCMPGTQ, VPCMPGTQ, "66", "0F 38 37", SHAPE_CMP_K, EVEX_ALL)[1:],
	evexDQ(VPCMPD, VPCMPQ, "66", "0F 3A 1F", SHAPE_CMP_K_I, EVEX_ALL),
	evexDQ(VPCMPUD, VPCMPUQ, "66", "0F 3A 1E", SHAPE_CMP_K_I, EVEX_ALL),
	{
		evexBW(VPADDB, "0F FC", SHAPE_BINARY),
		evexBW(VPADDW, "0F FD", SHAPE_BINARY),
		evexBW(VPSUBB, "0F F8", SHAPE_BINARY),
		evexBW(VPSUBW, "0F F9", SHAPE_BINARY),
		evexBW(VPMULLW, "0F D5", SHAPE_BINARY),
		evexBW(VPSHUFB, "0F 38 00", SHAPE_BINARY),
		evexBW(VPABSB, "0F 38 1C", SHAPE_UNARY),
		evexBW(VPABSW, "0F 38 1D", SHAPE_UNARY),
		evexBW(VPCMPEQB, "0F 74", SHAPE_CMP_K),
		evexBW(VPCMPEQW, "0F 75", SHAPE_CMP_K),
		evexBW(VPCMPGTB, "0F 64", SHAPE_CMP_K),
		evexBW(VPCMPGTW, "0F 65", SHAPE_CMP_K),
	},
}

// Opmask operations: binary forms are VEX.L1, unary forms VEX.L0.
var maskOps = [...]struct {
	b, w, d, q Mnemonic
	opcode     byte
	binary     bool
}{
	{KANDB, KANDW, KANDD, KANDQ, 0x41, true},
	{KANDNB, KANDNW, KANDND, KANDNQ, 0x42, true},
	{KORB, KORW, KORD, KORQ, 0x45, true},
	{KXNORB, KXNORW, KXNORD, KXNORQ, 0x46, true},
	{KXORB, KXORW, KXORD, KXORQ, 0x47, true},
	{KADDB, KADDW, KADDD, KADDQ, 0x4a, true},
	{KNOTB, KNOTW, KNOTD, KNOTQ, 0x44, false},
	{KORTESTB, KORTESTW, KORTESTD, KORTESTQ, 0x98, false},
	{KTESTB, KTESTW, KTESTD, KTESTQ, 0x99, false},
}

func maskRows() (rows []row) {
	for _, op := range maskOps {
		operands, openc, length := "k1, k2", "RM", "L0"
		if op.binary {
			operands, openc, length = "k1, k2, k3", "RVM", "L1"
		}
		for _, form := range []struct {
			m     Mnemonic
			pp, w string
		}{
			{op.b, "66.", "W0"},
			{op.w, "", "W0"},
			{op.d, "66.", "W1"},
			{op.q, "", "W1"},
		} {
			enc := fmt.Sprintf("VEX.%v.%v0F.%v %02X /r", length, form.pp, form.w, op.opcode)
			rows = append(rows, row{form.m, operands, openc, enc, 0})
		}
	}
	return
}

var tableAVX512 = []row{
	{KMOVB, "k1, k2/m8", "RM", "VEX.L0.66.0F.W0 90 /r", 0},
	{KMOVB, "m8, k1", "MR", "VEX.L0.66.0F.W0 91 /r", 0},
	{KMOVB, "k1, r32", "RM", "VEX.L0.66.0F.W0 92 /r", 0},
	{KMOVB, "r32, k1", "RM", "VEX.L0.66.0F.W0 93 /r", 0},
	{KMOVW, "k1, k2/m16", "RM", "VEX.L0.0F.W0 90 /r", 0},
	{KMOVW, "m16, k1", "MR", "VEX.L0.0F.W0 91 /r", 0},
	{KMOVW, "k1, r32", "RM", "VEX.L0.0F.W0 92 /r", 0},
	{KMOVW, "r32, k1", "RM", "VEX.L0.0F.W0 93 /r", 0},
	{KMOVD, "k1, k2/m32", "RM", "VEX.L0.66.0F.W1 90 /r", 0},
	{KMOVD, "m32, k1", "MR", "VEX.L0.66.0F.W1 91 /r", 0},
	{KMOVD, "k1, r32", "RM", "VEX.L0.F2.0F.W0 92 /r", 0},
	{KMOVD, "r32, k1", "RM", "VEX.L0.F2.0F.W0 93 /r", 0},
	{KMOVQ, "k1, k2/m64", "RM", "VEX.L0.0F.W1 90 /r", 0},
	{KMOVQ, "m64, k1", "MR", "VEX.L0.0F.W1 91 /r", 0},
	{KMOVQ, "k1, r64", "RM", "VEX.L0.F2.0F.W1 92 /r", FLAG_ONLY64},
	{KMOVQ, "r64, k1", "RM", "VEX.L0.F2.0F.W1 93 /r", FLAG_ONLY64},
	{KSHIFTLB, "k1, k2, imm8", "RMI", "VEX.L0.66.0F3A.W0 32 /r ib", 0},
	{KSHIFTLW, "k1, k2, imm8", "RMI", "VEX.L0.66.0F3A.W1 32 /r ib", 0},
	{KSHIFTLD, "k1, k2, imm8", "RMI", "VEX.L0.66.0F3A.W0 33 /r ib", 0},
	{KSHIFTLQ, "k1, k2, imm8", "RMI", "VEX.L0.66.0F3A.W1 33 /r ib", 0},
	{KSHIFTRB, "k1, k2, imm8", "RMI", "VEX.L0.66.0F3A.W0 30 /r ib", 0},
	{KSHIFTRW, "k1, k2, imm8", "RMI", "VEX.L0.66.0F3A.W1 30 /r ib", 0},
	{KSHIFTRD, "k1, k2, imm8", "RMI", "VEX.L0.66.0F3A.W0 31 /r ib", 0},
	{KSHIFTRQ, "k1, k2, imm8", "RMI", "VEX.L0.66.0F3A.W1 31 /r ib", 0},
	{KUNPCKBW, "k1, k2, k3", "RVM", "VEX.L1.66.0F.W0 4B /r", 0},
	{KUNPCKWD, "k1, k2, k3", "RVM", "VEX.L1.0F.W0 4B /r", 0},
	{KUNPCKDQ, "k1, k2, k3", "RVM", "VEX.L1.0F.W1 4B /r", 0},

	{VMOVSS, "xmm1 {k1}{z}, xmm2, xmm3", "RVM", "EVEX.LIG.F3.0F.W0 10 /r", 0},
	{VMOVSS, "xmm1 {k1}{z}, m32", "RM", "EVEX.LIG.F3.0F.W0 10 /r", T_T1S},
	{VMOVSS, "m32 {k1}, xmm1", "MR", "EVEX.LIG.F3.0F.W0 11 /r", T_T1S},
	{VMOVSD, "xmm1 {k1}{z}, xmm2, xmm3", "RVM", "EVEX.LIG.F2.0F.W1 10 /r", 0},
	{VMOVSD, "xmm1 {k1}{z}, m64", "RM", "EVEX.LIG.F2.0F.W1 10 /r", T_T1S},
	{VMOVSD, "m64 {k1}, xmm1", "MR", "EVEX.LIG.F2.0F.W1 11 /r", T_T1S},
	{VMOVD, "xmm1, r/m32", "RM", "EVEX.128.66.0F.W0 6E /r", T_T1S},
	{VMOVD, "r/m32, xmm1", "MR", "EVEX.128.66.0F.W0 7E /r", T_T1S},
	{VMOVQ, "xmm1, r/m64", "RM", "EVEX.128.66.0F.W1 6E /r", T_T1S | FLAG_ONLY64},
	{VMOVQ, "r/m64, xmm1", "MR", "EVEX.128.66.0F.W1 7E /r", T_T1S | FLAG_ONLY64},
	{VMOVQ, "xmm1, xmm2/m64", "RM", "EVEX.128.F3.0F.W1 7E /r", T_T1S},
	{VMOVQ, "xmm1/m64, xmm2", "MR", "EVEX.128.66.0F.W1 D6 /r", T_T1S},
	{VCVTSI2SS, "xmm1, xmm2, r/m32{er}", "RVM", "EVEX.LIG.F3.0F.W0 2A /r", T_T1S},
	{VCVTSI2SS, "xmm1, xmm2, r/m64{er}", "RVM", "EVEX.LIG.F3.0F.W1 2A /r", T_T1S | FLAG_ONLY64},
	{VCVTSI2SD, "xmm1, xmm2, r/m32", "RVM", "EVEX.LIG.F2.0F.W0 2A /r", T_T1S},
	{VCVTSI2SD, "xmm1, xmm2, r/m64{er}", "RVM", "EVEX.LIG.F2.0F.W1 2A /r", T_T1S | FLAG_ONLY64},

	{VBROADCASTSS, "xmm1 {k1}{z}, xmm2/m32", "RM", "EVEX.128.66.0F38.W0 18 /r", T_T1S},
	{VBROADCASTSS, "ymm1 {k1}{z}, xmm2/m32", "RM", "EVEX.256.66.0F38.W0 18 /r", T_T1S},
	{VBROADCASTSS, "zmm1 {k1}{z}, xmm2/m32", "RM", "EVEX.512.66.0F38.W0 18 /r", T_T1S},
	{VBROADCASTSD, "ymm1 {k1}{z}, xmm2/m64", "RM", "EVEX.256.66.0F38.W1 19 /r", T_T1S},
	{VBROADCASTSD, "zmm1 {k1}{z}, xmm2/m64", "RM", "EVEX.512.66.0F38.W1 19 /r", T_T1S},
	{VPBROADCASTD, "xmm1 {k1}{z}, xmm2/m32", "RM", "EVEX.128.66.0F38.W0 58 /r", T_T1S},
	{VPBROADCASTD, "ymm1 {k1}{z}, xmm2/m32", "RM", "EVEX.256.66.0F38.W0 58 /r", T_T1S},
	{VPBROADCASTD, "zmm1 {k1}{z}, xmm2/m32", "RM", "EVEX.512.66.0F38.W0 58 /r", T_T1S},
	{VPBROADCASTQ, "xmm1 {k1}{z}, xmm2/m64", "RM", "EVEX.128.66.0F38.W1 59 /r", T_T1S},
	{VPBROADCASTQ, "ymm1 {k1}{z}, xmm2/m64", "RM", "EVEX.256.66.0F38.W1 59 /r", T_T1S},
	{VPBROADCASTQ, "zmm1 {k1}{z}, xmm2/m64", "RM", "EVEX.512.66.0F38.W1 59 /r", T_T1S},
	{VPBROADCASTD, "xmm1 {k1}{z}, r32", "RM", "EVEX.128.66.0F38.W0 7C /r", 0},
	{VPBROADCASTD, "ymm1 {k1}{z}, r32", "RM", "EVEX.256.66.0F38.W0 7C /r", 0},
	{VPBROADCASTD, "zmm1 {k1}{z}, r32", "RM", "EVEX.512.66.0F38.W0 7C /r", 0},
	{VPBROADCASTQ, "xmm1 {k1}{z}, r64", "RM", "EVEX.128.66.0F38.W1 7C /r", FLAG_ONLY64},
	{VPBROADCASTQ, "ymm1 {k1}{z}, r64", "RM", "EVEX.256.66.0F38.W1 7C /r", FLAG_ONLY64},
	{VPBROADCASTQ, "zmm1 {k1}{z}, r64", "RM", "EVEX.512.66.0F38.W1 7C /r", FLAG_ONLY64},
	{VINSERTF32X4, "zmm1 {k1}{z}, zmm2, xmm3/m128, imm8", "RVMI", "EVEX.512.66.0F3A.W0 18 /r ib", T_T4},
	{VEXTRACTF32X4, "xmm1/m128 {k1}{z}, zmm2, imm8", "MRI", "EVEX.512.66.0F3A.W0 19 /r ib", T_T4},
	{VINSERTI32X4, "zmm1 {k1}{z}, zmm2, xmm3/m128, imm8", "RVMI", "EVEX.512.66.0F3A.W0 38 /r ib", T_T4},
	{VEXTRACTI32X4, "xmm1/m128 {k1}{z}, zmm2, imm8", "MRI", "EVEX.512.66.0F3A.W0 39 /r ib", T_T4},
	{VINSERTF64X4, "zmm1 {k1}{z}, zmm2, ymm3/m256, imm8", "RVMI", "EVEX.512.66.0F3A.W1 1A /r ib", T_T4},
	{VEXTRACTF64X4, "ymm1/m256 {k1}{z}, zmm2, imm8", "MRI", "EVEX.512.66.0F3A.W1 1B /r ib", T_T4},
	{VINSERTI64X4, "zmm1 {k1}{z}, zmm2, ymm3/m256, imm8", "RVMI", "EVEX.512.66.0F3A.W1 3A /r ib", T_T4},
	{VEXTRACTI64X4, "ymm1/m256 {k1}{z}, zmm2, imm8", "MRI", "EVEX.512.66.0F3A.W1 3B /r ib", T_T4},
}

// fmaEvexRows returns the EVEX forms of the FMA3 operations.
func fmaEvexRows() (rows []row) {
	var ops []evexOp
	for _, op := range fmaOps {
		packed := fmt.Sprintf("0F 38 %02X", op.opcode)
		scalar := fmt.Sprintf("0F 38 %02X", op.opcode+1)
		ops = append(ops,
			evexOp{op.ps, "66", packed, "W0", 32, T_FV, SHAPE_BINARY, "{er}", EVEX_ALL, 0},
			evexOp{op.pd, "66", packed, "W1", 64, T_FV, SHAPE_BINARY, "{er}", EVEX_ALL, 0},
			evexOp{op.ss, "66", scalar, "W0", 0, T_T1S, SHAPE_BINARY, "{er}", 0, 32},
			evexOp{op.sd, "66", scalar, "W1", 0, T_T1S, SHAPE_BINARY, "{er}", 0, 64},
		)
	}
	return evexRows(ops)
}

func avx512Rows() (rows []row) {
	rows = append(rows, maskRows()...)
	rows = append(rows, tableAVX512...)
	for _, family := range vecAVX512 {
		rows = append(rows, evexRows(family)...)
	}
	rows = append(rows, fmaEvexRows()...)
	return
}
