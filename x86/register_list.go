package x86

// Architectural registers.
var (
	AL   = Register{Family: FAMILY_GP8, Index: 0}
	CL   = Register{Family: FAMILY_GP8, Index: 1}
	DL   = Register{Family: FAMILY_GP8, Index: 2}
	BL   = Register{Family: FAMILY_GP8, Index: 3}
	SPL  = Register{Family: FAMILY_GP8, Index: 4}
	BPL  = Register{Family: FAMILY_GP8, Index: 5}
	SIL  = Register{Family: FAMILY_GP8, Index: 6}
	DIL  = Register{Family: FAMILY_GP8, Index: 7}
	R8B  = Register{Family: FAMILY_GP8, Index: 8}
	R9B  = Register{Family: FAMILY_GP8, Index: 9}
	R10B = Register{Family: FAMILY_GP8, Index: 10}
	R11B = Register{Family: FAMILY_GP8, Index: 11}
	R12B = Register{Family: FAMILY_GP8, Index: 12}
	R13B = Register{Family: FAMILY_GP8, Index: 13}
	R14B = Register{Family: FAMILY_GP8, Index: 14}
	R15B = Register{Family: FAMILY_GP8, Index: 15}

	AX   = Register{Family: FAMILY_GP16, Index: 0}
	CX   = Register{Family: FAMILY_GP16, Index: 1}
	DX   = Register{Family: FAMILY_GP16, Index: 2}
	BX   = Register{Family: FAMILY_GP16, Index: 3}
	SP   = Register{Family: FAMILY_GP16, Index: 4}
	BP   = Register{Family: FAMILY_GP16, Index: 5}
	SI   = Register{Family: FAMILY_GP16, Index: 6}
	DI   = Register{Family: FAMILY_GP16, Index: 7}
	R8W  = Register{Family: FAMILY_GP16, Index: 8}
	R9W  = Register{Family: FAMILY_GP16, Index: 9}
	R10W = Register{Family: FAMILY_GP16, Index: 10}
	R11W = Register{Family: FAMILY_GP16, Index: 11}
	R12W = Register{Family: FAMILY_GP16, Index: 12}
	R13W = Register{Family: FAMILY_GP16, Index: 13}
	R14W = Register{Family: FAMILY_GP16, Index: 14}
	R15W = Register{Family: FAMILY_GP16, Index: 15}

	EAX  = Register{Family: FAMILY_GP32, Index: 0}
	ECX  = Register{Family: FAMILY_GP32, Index: 1}
	EDX  = Register{Family: FAMILY_GP32, Index: 2}
	EBX  = Register{Family: FAMILY_GP32, Index: 3}
	ESP  = Register{Family: FAMILY_GP32, Index: 4}
	EBP  = Register{Family: FAMILY_GP32, Index: 5}
	ESI  = Register{Family: FAMILY_GP32, Index: 6}
	EDI  = Register{Family: FAMILY_GP32, Index: 7}
	R8D  = Register{Family: FAMILY_GP32, Index: 8}
	R9D  = Register{Family: FAMILY_GP32, Index: 9}
	R10D = Register{Family: FAMILY_GP32, Index: 10}
	R11D = Register{Family: FAMILY_GP32, Index: 11}
	R12D = Register{Family: FAMILY_GP32, Index: 12}
	R13D = Register{Family: FAMILY_GP32, Index: 13}
	R14D = Register{Family: FAMILY_GP32, Index: 14}
	R15D = Register{Family: FAMILY_GP32, Index: 15}

	RAX = Register{Family: FAMILY_GP64, Index: 0}
	RCX = Register{Family: FAMILY_GP64, Index: 1}
	RDX = Register{Family: FAMILY_GP64, Index: 2}
	RBX = Register{Family: FAMILY_GP64, Index: 3}
	RSP = Register{Family: FAMILY_GP64, Index: 4}
	RBP = Register{Family: FAMILY_GP64, Index: 5}
	RSI = Register{Family: FAMILY_GP64, Index: 6}
	RDI = Register{Family: FAMILY_GP64, Index: 7}
	R8  = Register{Family: FAMILY_GP64, Index: 8}
	R9  = Register{Family: FAMILY_GP64, Index: 9}
	R10 = Register{Family: FAMILY_GP64, Index: 10}
	R11 = Register{Family: FAMILY_GP64, Index: 11}
	R12 = Register{Family: FAMILY_GP64, Index: 12}
	R13 = Register{Family: FAMILY_GP64, Index: 13}
	R14 = Register{Family: FAMILY_GP64, Index: 14}
	R15 = Register{Family: FAMILY_GP64, Index: 15}

	XMM0  = Register{Family: FAMILY_XMM, Index: 0}
	XMM1  = Register{Family: FAMILY_XMM, Index: 1}
	XMM2  = Register{Family: FAMILY_XMM, Index: 2}
	XMM3  = Register{Family: FAMILY_XMM, Index: 3}
	XMM4  = Register{Family: FAMILY_XMM, Index: 4}
	XMM5  = Register{Family: FAMILY_XMM, Index: 5}
	XMM6  = Register{Family: FAMILY_XMM, Index: 6}
	XMM7  = Register{Family: FAMILY_XMM, Index: 7}
	XMM8  = Register{Family: FAMILY_XMM, Index: 8}
	XMM9  = Register{Family: FAMILY_XMM, Index: 9}
	XMM10 = Register{Family: FAMILY_XMM, Index: 10}
	XMM11 = Register{Family: FAMILY_XMM, Index: 11}
	XMM12 = Register{Family: FAMILY_XMM, Index: 12}
	XMM13 = Register{Family: FAMILY_XMM, Index: 13}
	XMM14 = Register{Family: FAMILY_XMM, Index: 14}
	XMM15 = Register{Family: FAMILY_XMM, Index: 15}
	XMM16 = Register{Family: FAMILY_XMM, Index: 16}
	XMM17 = Register{Family: FAMILY_XMM, Index: 17}
	XMM18 = Register{Family: FAMILY_XMM, Index: 18}
	XMM19 = Register{Family: FAMILY_XMM, Index: 19}
	XMM20 = Register{Family: FAMILY_XMM, Index: 20}
	XMM21 = Register{Family: FAMILY_XMM, Index: 21}
	XMM22 = Register{Family: FAMILY_XMM, Index: 22}
	XMM23 = Register{Family: FAMILY_XMM, Index: 23}
	XMM24 = Register{Family: FAMILY_XMM, Index: 24}
	XMM25 = Register{Family: FAMILY_XMM, Index: 25}
	XMM26 = Register{Family: FAMILY_XMM, Index: 26}
	XMM27 = Register{Family: FAMILY_XMM, Index: 27}
	XMM28 = Register{Family: FAMILY_XMM, Index: 28}
	XMM29 = Register{Family: FAMILY_XMM, Index: 29}
	XMM30 = Register{Family: FAMILY_XMM, Index: 30}
	XMM31 = Register{Family: FAMILY_XMM, Index: 31}

	YMM0  = Register{Family: FAMILY_YMM, Index: 0}
	YMM1  = Register{Family: FAMILY_YMM, Index: 1}
	YMM2  = Register{Family: FAMILY_YMM, Index: 2}
	YMM3  = Register{Family: FAMILY_YMM, Index: 3}
	YMM4  = Register{Family: FAMILY_YMM, Index: 4}
	YMM5  = Register{Family: FAMILY_YMM, Index: 5}
	YMM6  = Register{Family: FAMILY_YMM, Index: 6}
	YMM7  = Register{Family: FAMILY_YMM, Index: 7}
	YMM8  = Register{Family: FAMILY_YMM, Index: 8}
	YMM9  = Register{Family: FAMILY_YMM, Index: 9}
	YMM10 = Register{Family: FAMILY_YMM, Index: 10}
	YMM11 = Register{Family: FAMILY_YMM, Index: 11}
	YMM12 = Register{Family: FAMILY_YMM, Index: 12}
	YMM13 = Register{Family: FAMILY_YMM, Index: 13}
	YMM14 = Register{Family: FAMILY_YMM, Index: 14}
	YMM15 = Register{Family: FAMILY_YMM, Index: 15}
	YMM16 = Register{Family: FAMILY_YMM, Index: 16}
	YMM17 = Register{Family: FAMILY_YMM, Index: 17}
	YMM18 = Register{Family: FAMILY_YMM, Index: 18}
	YMM19 = Register{Family: FAMILY_YMM, Index: 19}
	YMM20 = Register{Family: FAMILY_YMM, Index: 20}
	YMM21 = Register{Family: FAMILY_YMM, Index: 21}
	YMM22 = Register{Family: FAMILY_YMM, Index: 22}
	YMM23 = Register{Family: FAMILY_YMM, Index: 23}
	YMM24 = Register{Family: FAMILY_YMM, Index: 24}
	YMM25 = Register{Family: FAMILY_YMM, Index: 25}
	YMM26 = Register{Family: FAMILY_YMM, Index: 26}
	YMM27 = Register{Family: FAMILY_YMM, Index: 27}
	YMM28 = Register{Family: FAMILY_YMM, Index: 28}
	YMM29 = Register{Family: FAMILY_YMM, Index: 29}
	YMM30 = Register{Family: FAMILY_YMM, Index: 30}
	YMM31 = Register{Family: FAMILY_YMM, Index: 31}

	ZMM0  = Register{Family: FAMILY_ZMM, Index: 0}
	ZMM1  = Register{Family: FAMILY_ZMM, Index: 1}
	ZMM2  = Register{Family: FAMILY_ZMM, Index: 2}
	ZMM3  = Register{Family: FAMILY_ZMM, Index: 3}
	ZMM4  = Register{Family: FAMILY_ZMM, Index: 4}
	ZMM5  = Register{Family: FAMILY_ZMM, Index: 5}
	ZMM6  = Register{Family: FAMILY_ZMM, Index: 6}
	ZMM7  = Register{Family: FAMILY_ZMM, Index: 7}
	ZMM8  = Register{Family: FAMILY_ZMM, Index: 8}
	ZMM9  = Register{Family: FAMILY_ZMM, Index: 9}
	ZMM10 = Register{Family: FAMILY_ZMM, Index: 10}
	ZMM11 = Register{Family: FAMILY_ZMM, Index: 11}
	ZMM12 = Register{Family: FAMILY_ZMM, Index: 12}
	ZMM13 = Register{Family: FAMILY_ZMM, Index: 13}
	ZMM14 = Register{Family: FAMILY_ZMM, Index: 14}
	ZMM15 = Register{Family: FAMILY_ZMM, Index: 15}
	ZMM16 = Register{Family: FAMILY_ZMM, Index: 16}
	ZMM17 = Register{Family: FAMILY_ZMM, Index: 17}
	ZMM18 = Register{Family: FAMILY_ZMM, Index: 18}
	ZMM19 = Register{Family: FAMILY_ZMM, Index: 19}
	ZMM20 = Register{Family: FAMILY_ZMM, Index: 20}
	ZMM21 = Register{Family: FAMILY_ZMM, Index: 21}
	ZMM22 = Register{Family: FAMILY_ZMM, Index: 22}
	ZMM23 = Register{Family: FAMILY_ZMM, Index: 23}
	ZMM24 = Register{Family: FAMILY_ZMM, Index: 24}
	ZMM25 = Register{Family: FAMILY_ZMM, Index: 25}
	ZMM26 = Register{Family: FAMILY_ZMM, Index: 26}
	ZMM27 = Register{Family: FAMILY_ZMM, Index: 27}
	ZMM28 = Register{Family: FAMILY_ZMM, Index: 28}
	ZMM29 = Register{Family: FAMILY_ZMM, Index: 29}
	ZMM30 = Register{Family: FAMILY_ZMM, Index: 30}
	ZMM31 = Register{Family: FAMILY_ZMM, Index: 31}

	K0 = Register{Family: FAMILY_MASK, Index: 0}
	K1 = Register{Family: FAMILY_MASK, Index: 1}
	K2 = Register{Family: FAMILY_MASK, Index: 2}
	K3 = Register{Family: FAMILY_MASK, Index: 3}
	K4 = Register{Family: FAMILY_MASK, Index: 4}
	K5 = Register{Family: FAMILY_MASK, Index: 5}
	K6 = Register{Family: FAMILY_MASK, Index: 6}
	K7 = Register{Family: FAMILY_MASK, Index: 7}

	ES = Register{Family: FAMILY_SEGMENT, Index: 0}
	CS = Register{Family: FAMILY_SEGMENT, Index: 1}
	SS = Register{Family: FAMILY_SEGMENT, Index: 2}
	DS = Register{Family: FAMILY_SEGMENT, Index: 3}
	FS = Register{Family: FAMILY_SEGMENT, Index: 4}
	GS = Register{Family: FAMILY_SEGMENT, Index: 5}

	CR0  = Register{Family: FAMILY_CONTROL, Index: 0}
	CR1  = Register{Family: FAMILY_CONTROL, Index: 1}
	CR2  = Register{Family: FAMILY_CONTROL, Index: 2}
	CR3  = Register{Family: FAMILY_CONTROL, Index: 3}
	CR4  = Register{Family: FAMILY_CONTROL, Index: 4}
	CR5  = Register{Family: FAMILY_CONTROL, Index: 5}
	CR6  = Register{Family: FAMILY_CONTROL, Index: 6}
	CR7  = Register{Family: FAMILY_CONTROL, Index: 7}
	CR8  = Register{Family: FAMILY_CONTROL, Index: 8}
	CR9  = Register{Family: FAMILY_CONTROL, Index: 9}
	CR10 = Register{Family: FAMILY_CONTROL, Index: 10}
	CR11 = Register{Family: FAMILY_CONTROL, Index: 11}
	CR12 = Register{Family: FAMILY_CONTROL, Index: 12}
	CR13 = Register{Family: FAMILY_CONTROL, Index: 13}
	CR14 = Register{Family: FAMILY_CONTROL, Index: 14}
	CR15 = Register{Family: FAMILY_CONTROL, Index: 15}

	DR0 = Register{Family: FAMILY_DEBUG, Index: 0}
	DR1 = Register{Family: FAMILY_DEBUG, Index: 1}
	DR2 = Register{Family: FAMILY_DEBUG, Index: 2}
	DR3 = Register{Family: FAMILY_DEBUG, Index: 3}
	DR4 = Register{Family: FAMILY_DEBUG, Index: 4}
	DR5 = Register{Family: FAMILY_DEBUG, Index: 5}
	DR6 = Register{Family: FAMILY_DEBUG, Index: 6}
	DR7 = Register{Family: FAMILY_DEBUG, Index: 7}

	ST0 = Register{Family: FAMILY_ST, Index: 0}
	ST1 = Register{Family: FAMILY_ST, Index: 1}
	ST2 = Register{Family: FAMILY_ST, Index: 2}
	ST3 = Register{Family: FAMILY_ST, Index: 3}
	ST4 = Register{Family: FAMILY_ST, Index: 4}
	ST5 = Register{Family: FAMILY_ST, Index: 5}
	ST6 = Register{Family: FAMILY_ST, Index: 6}
	ST7 = Register{Family: FAMILY_ST, Index: 7}

	MM0 = Register{Family: FAMILY_MMX, Index: 0}
	MM1 = Register{Family: FAMILY_MMX, Index: 1}
	MM2 = Register{Family: FAMILY_MMX, Index: 2}
	MM3 = Register{Family: FAMILY_MMX, Index: 3}
	MM4 = Register{Family: FAMILY_MMX, Index: 4}
	MM5 = Register{Family: FAMILY_MMX, Index: 5}
	MM6 = Register{Family: FAMILY_MMX, Index: 6}
	MM7 = Register{Family: FAMILY_MMX, Index: 7}

	BND0 = Register{Family: FAMILY_BND, Index: 0}
	BND1 = Register{Family: FAMILY_BND, Index: 1}
	BND2 = Register{Family: FAMILY_BND, Index: 2}
	BND3 = Register{Family: FAMILY_BND, Index: 3}

	TMM0 = Register{Family: FAMILY_TMM, Index: 0}
	TMM1 = Register{Family: FAMILY_TMM, Index: 1}
	TMM2 = Register{Family: FAMILY_TMM, Index: 2}
	TMM3 = Register{Family: FAMILY_TMM, Index: 3}
	TMM4 = Register{Family: FAMILY_TMM, Index: 4}
	TMM5 = Register{Family: FAMILY_TMM, Index: 5}
	TMM6 = Register{Family: FAMILY_TMM, Index: 6}
	TMM7 = Register{Family: FAMILY_TMM, Index: 7}

	AH = Register{Family: FAMILY_GP8, Index: 4, High: true}
	CH = Register{Family: FAMILY_GP8, Index: 5, High: true}
	DH = Register{Family: FAMILY_GP8, Index: 6, High: true}
	BH = Register{Family: FAMILY_GP8, Index: 7, High: true}

	RIP = Register{Family: FAMILY_RIP}
)

// registerNames lists the assembler names of each family, by index.
var registerNames = map[Family][]string{
	FAMILY_GP8:     {"al", "cl", "dl", "bl", "spl", "bpl", "sil", "dil", "r8b", "r9b", "r10b", "r11b", "r12b", "r13b", "r14b", "r15b"},
	FAMILY_GP16:    {"ax", "cx", "dx", "bx", "sp", "bp", "si", "di", "r8w", "r9w", "r10w", "r11w", "r12w", "r13w", "r14w", "r15w"},
	FAMILY_GP32:    {"eax", "ecx", "edx", "ebx", "esp", "ebp", "esi", "edi", "r8d", "r9d", "r10d", "r11d", "r12d", "r13d", "r14d", "r15d"},
	FAMILY_GP64:    {"rax", "rcx", "rdx", "rbx", "rsp", "rbp", "rsi", "rdi", "r8", "r9", "r10", "r11", "r12", "r13", "r14", "r15"},
	FAMILY_XMM:     {"xmm0", "xmm1", "xmm2", "xmm3", "xmm4", "xmm5", "xmm6", "xmm7", "xmm8", "xmm9", "xmm10", "xmm11", "xmm12", "xmm13", "xmm14", "xmm15", "xmm16", "xmm17", "xmm18", "xmm19", "xmm20", "xmm21", "xmm22", "xmm23", "xmm24", "xmm25", "xmm26", "xmm27", "xmm28", "xmm29", "xmm30", "xmm31"},
	FAMILY_YMM:     {"ymm0", "ymm1", "ymm2", "ymm3", "ymm4", "ymm5", "ymm6", "ymm7", "ymm8", "ymm9", "ymm10", "ymm11", "ymm12", "ymm13", "ymm14", "ymm15", "ymm16", "ymm17", "ymm18", "ymm19", "ymm20", "ymm21", "ymm22", "ymm23", "ymm24", "ymm25", "ymm26", "ymm27", "ymm28", "ymm29", "ymm30", "ymm31"},
	FAMILY_ZMM:     {"zmm0", "zmm1", "zmm2", "zmm3", "zmm4", "zmm5", "zmm6", "zmm7", "zmm8", "zmm9", "zmm10", "zmm11", "zmm12", "zmm13", "zmm14", "zmm15", "zmm16", "zmm17", "zmm18", "zmm19", "zmm20", "zmm21", "zmm22", "zmm23", "zmm24", "zmm25", "zmm26", "zmm27", "zmm28", "zmm29", "zmm30", "zmm31"},
	FAMILY_MASK:    {"k0", "k1", "k2", "k3", "k4", "k5", "k6", "k7"},
	FAMILY_SEGMENT: {"es", "cs", "ss", "ds", "fs", "gs"},
	FAMILY_CONTROL: {"cr0", "cr1", "cr2", "cr3", "cr4", "cr5", "cr6", "cr7", "cr8", "cr9", "cr10", "cr11", "cr12", "cr13", "cr14", "cr15"},
	FAMILY_DEBUG:   {"dr0", "dr1", "dr2", "dr3", "dr4", "dr5", "dr6", "dr7"},
	FAMILY_ST:      {"st0", "st1", "st2", "st3", "st4", "st5", "st6", "st7"},
	FAMILY_MMX:     {"mm0", "mm1", "mm2", "mm3", "mm4", "mm5", "mm6", "mm7"},
	FAMILY_BND:     {"bnd0", "bnd1", "bnd2", "bnd3"},
	FAMILY_TMM:     {"tmm0", "tmm1", "tmm2", "tmm3", "tmm4", "tmm5", "tmm6", "tmm7"},
	FAMILY_RIP:     {"rip"},
}
