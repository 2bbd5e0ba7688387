// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package x86

import (
	"fmt"
)

// FMA3 operations: packed opcode, the scalar opcode is one higher.
var fmaOps = [...]struct {
	ps, pd, ss, sd Mnemonic
	opcode         byte
}{
	{VFMADD132PS, VFMADD132PD, VFMADD132SS, VFMADD132SD, 0x98},
	{VFMADD213PS, VFMADD213PD, VFMADD213SS, VFMADD213SD, 0xa8},
	{VFMADD231PS, VFMADD231PD, VFMADD231SS, VFMADD231SD, 0xb8},
	{VFMSUB132PS, VFMSUB132PD, VFMSUB132SS, VFMSUB132SD, 0x9a},
	{VFMSUB213PS, VFMSUB213PD, VFMSUB213SS, VFMSUB213SD, 0xaa},
	{VFMSUB231PS, VFMSUB231PD, VFMSUB231SS, VFMSUB231SD, 0xba},
	{VFNMADD132PS, VFNMADD132PD, VFNMADD132SS, VFNMADD132SD, 0x9c},
	{VFNMADD213PS, VFNMADD213PD, VFNMADD213SS, VFNMADD213SD, 0xac},
	{VFNMADD231PS, VFNMADD231PD, VFNMADD231SS, VFNMADD231SD, 0xbc},
	{VFNMSUB132PS, VFNMSUB132PD, VFNMSUB132SS, VFNMSUB132SD, 0x9e},
	{VFNMSUB213PS, VFNMSUB213PD, VFNMSUB213SS, VFNMSUB213SD, 0xae},
	{VFNMSUB231PS, VFNMSUB231PD, VFNMSUB231SS, VFNMSUB231SD, 0xbe},
}

func fmaRows() (rows []row) {
	for _, op := range fmaOps {
		packed := fmt.Sprintf("%02X /r", op.opcode)
		scalar := fmt.Sprintf("%02X /r", op.opcode+1)
		rows = append(rows,
			row{op.ps, "xmm1, xmm2, xmm3/m128", "RVM", "VEX.128.66.0F38.W0 " + packed, 0},
			row{op.ps, "ymm1, ymm2, ymm3/m256", "RVM", "VEX.256.66.0F38.W0 " + packed, 0},
			row{op.pd, "xmm1, xmm2, xmm3/m128", "RVM", "VEX.128.66.0F38.W1 " + packed, 0},
			row{op.pd, "ymm1, ymm2, ymm3/m256", "RVM", "VEX.256.66.0F38.W1 " + packed, 0},
			row{op.ss, "xmm1, xmm2, xmm3/m32", "RVM", "VEX.LIG.66.0F38.W0 " + scalar, 0},
			row{op.sd, "xmm1, xmm2, xmm3/m64", "RVM", "VEX.LIG.66.0F38.W1 " + scalar, 0},
		)
	}
	return
}

// AVX2 operations without an SSE counterpart.
var vecAVX2 = []vecOp{
	{0, VPSRLVD, "66", "0F 38 45", 128, SHAPE_BINARY, VEC_YMM | VEC_W0},
	{0, VPSRLVQ, "66", "0F 38 45", 128, SHAPE_BINARY, VEC_YMM | VEC_W1},
	{0, VPSRAVD, "66", "0F 38 46", 128, SHAPE_BINARY, VEC_YMM | VEC_W0},
	{0, VPSLLVD, "66", "0F 38 47", 128, SHAPE_BINARY, VEC_YMM | VEC_W0},
	{0, VPSLLVQ, "66", "0F 38 47", 128, SHAPE_BINARY, VEC_YMM | VEC_W1},
	{0, VPERMILPS, "66", "0F 38 0C", 128, SHAPE_BINARY, VEC_YMM | VEC_W0},
	{0, VPERMILPD, "66", "0F 38 0D", 128, SHAPE_BINARY, VEC_YMM | VEC_W0},
	{0, VPERMILPS, "66", "0F 3A 04", 128, SHAPE_UNARY_I, VEC_YMM | VEC_W0},
	{0, VPERMILPD, "66", "0F 3A 05", 128, SHAPE_UNARY_I, VEC_YMM | VEC_W0},
	{0, VTESTPS, "66", "0F 38 0E", 128, SHAPE_UNARY, VEC_YMM | VEC_W0},
	{0, VTESTPD, "66", "0F 38 0F", 128, SHAPE_UNARY, VEC_YMM | VEC_W0},
	{0, VPBLENDD, "66", "0F 3A 02", 128, SHAPE_BINARY_I, VEC_YMM | VEC_W0},
}

var tableAVX = []row{
	{VMOVSS, "xmm1, xmm2, xmm3", "RVM", "VEX.LIG.F3.0F.WIG 10 /r", 0},
	{VMOVSS, "xmm1, m32", "RM", "VEX.LIG.F3.0F.WIG 10 /r", 0},
	{VMOVSS, "m32, xmm1", "MR", "VEX.LIG.F3.0F.WIG 11 /r", 0},
	{VMOVSD, "xmm1, xmm2, xmm3", "RVM", "VEX.LIG.F2.0F.WIG 10 /r", 0},
	{VMOVSD, "xmm1, m64", "RM", "VEX.LIG.F2.0F.WIG 10 /r", 0},
	{VMOVSD, "m64, xmm1", "MR", "VEX.LIG.F2.0F.WIG 11 /r", 0},
	{VMOVD, "xmm1, r/m32", "RM", "VEX.128.66.0F.W0 6E /r", 0},
	{VMOVD, "r/m32, xmm1", "MR", "VEX.128.66.0F.W0 7E /r", 0},
	{VMOVQ, "xmm1, r/m64", "RM", "VEX.128.66.0F.W1 6E /r", FLAG_ONLY64},
	{VMOVQ, "r/m64, xmm1", "MR", "VEX.128.66.0F.W1 7E /r", FLAG_ONLY64},
	{VMOVQ, "xmm1, xmm2/m64", "RM", "VEX.128.F3.0F.WIG 7E /r", 0},
	{VMOVQ, "xmm1/m64, xmm2", "MR", "VEX.128.66.0F.WIG D6 /r", 0},
	{VMOVMSKPS, "r32, xmm2", "RM", "VEX.128.0F.WIG 50 /r", 0},
	{VMOVMSKPS, "r32, ymm2", "RM", "VEX.256.0F.WIG 50 /r", 0},
	{VMOVMSKPD, "r32, xmm2", "RM", "VEX.128.66.0F.WIG 50 /r", 0},
	{VMOVMSKPD, "r32, ymm2", "RM", "VEX.256.66.0F.WIG 50 /r", 0},
	{VPMOVMSKB, "r32, xmm1", "RM", "VEX.128.66.0F.WIG D7 /r", 0},
	{VPMOVMSKB, "r32, ymm1", "RM", "VEX.256.66.0F.WIG D7 /r", 0},
	{VMOVNTDQ, "m128, xmm1", "MR", "VEX.128.66.0F.WIG E7 /r", 0},
	{VMOVNTDQ, "m256, ymm1", "MR", "VEX.256.66.0F.WIG E7 /r", 0},
	{VMOVNTPS, "m128, xmm1", "MR", "VEX.128.0F.WIG 2B /r", 0},
	{VMOVNTPS, "m256, ymm1", "MR", "VEX.256.0F.WIG 2B /r", 0},
	{VLDDQU, "xmm1, m128", "RM", "VEX.128.F2.0F.WIG F0 /r", 0},
	{VLDDQU, "ymm1, m256", "RM", "VEX.256.F2.0F.WIG F0 /r", 0},
	{VMOVDDUP, "ymm1, ymm2/m256", "RM", "VEX.256.F2.0F.WIG 12 /r", 0},
	{VCVTPS2PD, "ymm1, xmm2/m128", "RM", "VEX.256.0F.WIG 5A /r", 0},
	{VCVTDQ2PD, "ymm1, xmm2/m128", "RM", "VEX.256.F3.0F.WIG E6 /r", 0},
	{VCVTPD2PS, "xmm1, ymm2/m256", "RM", "VEX.256.66.0F.WIG 5A /r", 0},
	{VCVTPD2DQ, "xmm1, ymm2/m256", "RM", "VEX.256.F2.0F.WIG E6 /r", 0},
	{VCVTTPD2DQ, "xmm1, ymm2/m256", "RM", "VEX.256.66.0F.WIG E6 /r", 0},
	{VCVTPH2PS, "xmm1, xmm2/m64", "RM", "VEX.128.66.0F38.W0 13 /r", 0},
	{VCVTPH2PS, "ymm1, xmm2/m128", "RM", "VEX.256.66.0F38.W0 13 /r", 0},
	{VCVTPS2PH, "xmm1/m64, xmm2, imm8", "MRI", "VEX.128.66.0F3A.W0 1D /r ib", 0},
	{VCVTPS2PH, "xmm1/m128, ymm2, imm8", "MRI", "VEX.256.66.0F3A.W0 1D /r ib", 0},
	{VCVTSI2SS, "xmm1, xmm2, r/m32", "RVM", "VEX.LIG.F3.0F.W0 2A /r", 0},
	{VCVTSI2SS, "xmm1, xmm2, r/m64", "RVM", "VEX.LIG.F3.0F.W1 2A /r", FLAG_ONLY64},
	{VCVTSI2SD, "xmm1, xmm2, r/m32", "RVM", "VEX.LIG.F2.0F.W0 2A /r", 0},
	{VCVTSI2SD, "xmm1, xmm2, r/m64", "RVM", "VEX.LIG.F2.0F.W1 2A /r", FLAG_ONLY64},
	{VCVTSS2SI, "r32, xmm1/m32", "RM", "VEX.LIG.F3.0F.W0 2D /r", 0},
	{VCVTSS2SI, "r64, xmm1/m32", "RM", "VEX.LIG.F3.0F.W1 2D /r", FLAG_ONLY64},
	{VCVTTSS2SI, "r32, xmm1/m32", "RM", "VEX.LIG.F3.0F.W0 2C /r", 0},
	{VCVTTSS2SI, "r64, xmm1/m32", "RM", "VEX.LIG.F3.0F.W1 2C /r", FLAG_ONLY64},
	{VCVTSD2SI, "r32, xmm1/m64", "RM", "VEX.LIG.F2.0F.W0 2D /r", 0},
	{VCVTSD2SI, "r64, xmm1/m64", "RM", "VEX.LIG.F2.0F.W1 2D /r", FLAG_ONLY64},
	{VCVTTSD2SI, "r32, xmm1/m64", "RM", "VEX.LIG.F2.0F.W0 2C /r", 0},
	{VCVTTSD2SI, "r64, xmm1/m64", "RM", "VEX.LIG.F2.0F.W1 2C /r", FLAG_ONLY64},
	{VPEXTRB, "r32/m8, xmm2, imm8", "MRI", "VEX.128.66.0F3A.W0 14 /r ib", 0},
	{VPEXTRW, "r32, xmm1, imm8", "RMI", "VEX.128.66.0F.W0 C5 /r ib", 0},
	{VPEXTRD, "r/m32, xmm2, imm8", "MRI", "VEX.128.66.0F3A.W0 16 /r ib", 0},
	{VPEXTRQ, "r/m64, xmm2, imm8", "MRI", "VEX.128.66.0F3A.W1 16 /r ib", FLAG_ONLY64},
	{VEXTRACTPS, "r/m32, xmm1, imm8", "MRI", "VEX.128.66.0F3A.WIG 17 /r ib", 0},
	{VPINSRB, "xmm1, xmm2, r32/m8, imm8", "RVMI", "VEX.128.66.0F3A.W0 20 /r ib", 0},
	{VPINSRW, "xmm1, xmm2, r32/m16, imm8", "RVMI", "VEX.128.66.0F.W0 C4 /r ib", 0},
	{VPINSRD, "xmm1, xmm2, r/m32, imm8", "RVMI", "VEX.128.66.0F3A.W0 22 /r ib", 0},
	{VPINSRQ, "xmm1, xmm2, r/m64, imm8", "RVMI", "VEX.128.66.0F3A.W1 22 /r ib", FLAG_ONLY64},
	{VBLENDVPS, "xmm1, xmm2, xmm3/m128, xmm4", "RVML", "VEX.128.66.0F3A.W0 4A /r /is4", 0},
	{VBLENDVPS, "ymm1, ymm2, ymm3/m256, ymm4", "RVML", "VEX.256.66.0F3A.W0 4A /r /is4", 0},
	{VBLENDVPD, "xmm1, xmm2, xmm3/m128, xmm4", "RVML", "VEX.128.66.0F3A.W0 4B /r /is4", 0},
	{VBLENDVPD, "ymm1, ymm2, ymm3/m256, ymm4", "RVML", "VEX.256.66.0F3A.W0 4B /r /is4", 0},
	{VPBLENDVB, "xmm1, xmm2, xmm3/m128, xmm4", "RVML", "VEX.128.66.0F3A.W0 4C /r /is4", 0},
	{VPBLENDVB, "ymm1, ymm2, ymm3/m256, ymm4", "RVML", "VEX.256.66.0F3A.W0 4C /r /is4", 0},
	{VBROADCASTSS, "xmm1, m32", "RM", "VEX.128.66.0F38.W0 18 /r", 0},
	{VBROADCASTSS, "ymm1, m32", "RM", "VEX.256.66.0F38.W0 18 /r", 0},
	{VBROADCASTSS, "xmm1, xmm2", "RM", "VEX.128.66.0F38.W0 18 /r", 0},
	{VBROADCASTSS, "ymm1, xmm2", "RM", "VEX.256.66.0F38.W0 18 /r", 0},
	{VBROADCASTSD, "ymm1, m64", "RM", "VEX.256.66.0F38.W0 19 /r", 0},
	{VBROADCASTSD, "ymm1, xmm2", "RM", "VEX.256.66.0F38.W0 19 /r", 0},
	{VBROADCASTF128, "ymm1, m128", "RM", "VEX.256.66.0F38.W0 1A /r", 0},
	{VBROADCASTI128, "ymm1, m128", "RM", "VEX.256.66.0F38.W0 5A /r", 0},
	{VPBROADCASTB, "xmm1, xmm2/m8", "RM", "VEX.128.66.0F38.W0 78 /r", 0},
	{VPBROADCASTB, "ymm1, xmm2/m8", "RM", "VEX.256.66.0F38.W0 78 /r", 0},
	{VPBROADCASTW, "xmm1, xmm2/m16", "RM", "VEX.128.66.0F38.W0 79 /r", 0},
	{VPBROADCASTW, "ymm1, xmm2/m16", "RM", "VEX.256.66.0F38.W0 79 /r", 0},
	{VPBROADCASTD, "xmm1, xmm2/m32", "RM", "VEX.128.66.0F38.W0 58 /r", 0},
	{VPBROADCASTD, "ymm1, xmm2/m32", "RM", "VEX.256.66.0F38.W0 58 /r", 0},
	{VPBROADCASTQ, "xmm1, xmm2/m64", "RM", "VEX.128.66.0F38.W0 59 /r", 0},
	{VPBROADCASTQ, "ymm1, xmm2/m64", "RM", "VEX.256.66.0F38.W0 59 /r", 0},
	{VINSERTF128, "ymm1, ymm2, xmm3/m128, imm8", "RVMI", "VEX.256.66.0F3A.W0 18 /r ib", 0},
	{VEXTRACTF128, "xmm1/m128, ymm2, imm8", "MRI", "VEX.256.66.0F3A.W0 19 /r ib", 0},
	{VINSERTI128, "ymm1, ymm2, xmm3/m128, imm8", "RVMI", "VEX.256.66.0F3A.W0 38 /r ib", 0},
	{VEXTRACTI128, "xmm1/m128, ymm2, imm8", "MRI", "VEX.256.66.0F3A.W0 39 /r ib", 0},
	{VPERM2F128, "ymm1, ymm2, ymm3/m256, imm8", "RVMI", "VEX.256.66.0F3A.W0 06 /r ib", 0},
	{VPERM2I128, "ymm1, ymm2, ymm3/m256, imm8", "RVMI", "VEX.256.66.0F3A.W0 46 /r ib", 0},
	{VPERMD, "ymm1, ymm2, ymm3/m256", "RVM", "VEX.256.66.0F38.W0 36 /r", 0},
	{VPERMPS, "ymm1, ymm2, ymm3/m256", "RVM", "VEX.256.66.0F38.W0 16 /r", 0},
	{VPERMQ, "ymm1, ymm2/m256, imm8", "RMI", "VEX.256.66.0F3A.W1 00 /r ib", 0},
	{VPERMPD, "ymm1, ymm2/m256, imm8", "RMI", "VEX.256.66.0F3A.W1 01 /r ib", 0},
	{VPSRLW, "ymm1, ymm2, xmm3/m128", "RVM", "VEX.256.66.0F.WIG D1 /r", 0},
	{VPSRLD, "ymm1, ymm2, xmm3/m128", "RVM", "VEX.256.66.0F.WIG D2 /r", 0},
	{VPSRLQ, "ymm1, ymm2, xmm3/m128", "RVM", "VEX.256.66.0F.WIG D3 /r", 0},
	{VPSRAW, "ymm1, ymm2, xmm3/m128", "RVM", "VEX.256.66.0F.WIG E1 /r", 0},
	{VPSRAD, "ymm1, ymm2, xmm3/m128", "RVM", "VEX.256.66.0F.WIG E2 /r", 0},
	{VPSLLW, "ymm1, ymm2, xmm3/m128", "RVM", "VEX.256.66.0F.WIG F1 /r", 0},
	{VPSLLD, "ymm1, ymm2, xmm3/m128", "RVM", "VEX.256.66.0F.WIG F2 /r", 0},
	{VPSLLQ, "ymm1, ymm2, xmm3/m128", "RVM", "VEX.256.66.0F.WIG F3 /r", 0},
	{VPMOVSXBW, "ymm1, xmm2/m128", "RM", "VEX.256.66.0F38.WIG 20 /r", 0},
	{VPMOVSXBD, "ymm1, xmm2/m64", "RM", "VEX.256.66.0F38.WIG 21 /r", 0},
	{VPMOVSXWD, "ymm1, xmm2/m128", "RM", "VEX.256.66.0F38.WIG 23 /r", 0},
	{VPMOVSXDQ, "ymm1, xmm2/m128", "RM", "VEX.256.66.0F38.WIG 25 /r", 0},
	{VPMOVZXBW, "ymm1, xmm2/m128", "RM", "VEX.256.66.0F38.WIG 30 /r", 0},
	{VPMOVZXBD, "ymm1, xmm2/m64", "RM", "VEX.256.66.0F38.WIG 31 /r", 0},
	{VPMOVZXWD, "ymm1, xmm2/m128", "RM", "VEX.256.66.0F38.WIG 33 /r", 0},
	{VPMOVZXDQ, "ymm1, xmm2/m128", "RM", "VEX.256.66.0F38.WIG 35 /r", 0},
	{VLDMXCSR, "m32", "M", "VEX.LZ.0F.WIG AE /2", 0},
	{VSTMXCSR, "m32", "M", "VEX.LZ.0F.WIG AE /3", 0},
	{VZEROUPPER, "", "", "VEX.128.0F.WIG 77", 0},
	{VZEROALL, "", "", "VEX.256.0F.WIG 77", 0},
}

func avxRows() (rows []row) {
	rows = append(rows, tableAVX...)
	rows = append(rows, vecRows(vecAVX2)...)
	rows = append(rows, fmaRows()...)
	return
}
