package x86

import (
	"strings"
)

// Mnemonic identifies an instruction mnemonic. The zero Mnemonic is invalid.
type Mnemonic uint16

const (
	ADC = Mnemonic(iota + 1)
	ADCX
	ADD
	ADDPD
	ADDPS
	ADDSD
	ADDSS
	ADDSUBPD
	ADDSUBPS
	ADOX
	AESDEC
	AESDECLAST
	AESENC
	AESENCLAST
	AESIMC
	AESKEYGENASSIST
	AND
	ANDN
	ANDNPD
	ANDNPS
	ANDPD
	ANDPS
	BEXTR
	BLENDPD
	BLENDPS
	BLENDVPD
	BLENDVPS
	BLSI
	BLSMSK
	BLSR
	BSF
	BSR
	BSWAP
	BT
	BTC
	BTR
	BTS
	BZHI
	CALL
	CBW
	CDQ
	CDQE
	CLC
	CLD
	CLFLUSH
	CLI
	CMC
	CMOVA
	CMOVAE
	CMOVB
	CMOVBE
	CMOVE
	CMOVG
	CMOVGE
	CMOVL
	CMOVLE
	CMOVNE
	CMOVNO
	CMOVNP
	CMOVNS
	CMOVO
	CMOVP
	CMOVS
	CMP
	CMPPD
	CMPPS
	CMPSB
	CMPSD
	CMPSQ
	CMPSS
	CMPSW
	CMPXCHG
	CMPXCHG16B
	CMPXCHG8B
	COMISD
	COMISS
	CPUID
	CQO
	CRC32
	CVTDQ2PD
	CVTDQ2PS
	CVTPD2DQ
	CVTPD2PS
	CVTPS2DQ
	CVTPS2PD
	CVTSD2SI
	CVTSD2SS
	CVTSI2SD
	CVTSI2SS
	CVTSS2SD
	CVTSS2SI
	CVTTPD2DQ
	CVTTPS2DQ
	CVTTSD2SI
	CVTTSS2SI
	CWD
	CWDE
	DEC
	DIV
	DIVPD
	DIVPS
	DIVSD
	DIVSS
	DPPD
	DPPS
	EMMS
	ENDBR32
	ENDBR64
	ENTER
	EXTRACTPS
	FABS
	FADD
	FADDP
	FCHS
	FCOM
	FCOMI
	FCOMIP
	FCOMP
	FCOMPP
	FCOS
	FDECSTP
	FDIV
	FDIVP
	FDIVR
	FDIVRP
	FFREE
	FIADD
	FIDIV
	FIDIVR
	FILD
	FIMUL
	FINCSTP
	FINIT
	FIST
	FISTP
	FISTTP
	FISUB
	FISUBR
	FLD
	FLD1
	FLDCW
	FLDL2E
	FLDL2T
	FLDLG2
	FLDLN2
	FLDPI
	FLDZ
	FMUL
	FMULP
	FNCLEX
	FNINIT
	FNSTCW
	FNSTSW
	FPATAN
	FPREM
	FPTAN
	FRNDINT
	FSCALE
	FSIN
	FSQRT
	FST
	FSTP
	FSUB
	FSUBP
	FSUBR
	FSUBRP
	FTST
	FUCOM
	FUCOMI
	FUCOMIP
	FUCOMP
	FUCOMPP
	FWAIT
	FXAM
	FXCH
	FXRSTOR
	FXSAVE
	HADDPD
	HADDPS
	HLT
	HSUBPD
	HSUBPS
	IDIV
	IMUL
	IN
	INC
	INSERTPS
	INT
	INT3
	JA
	JAE
	JB
	JBE
	JE
	JECXZ
	JG
	JGE
	JL
	JLE
	JMP
	JNE
	JNO
	JNP
	JNS
	JO
	JP
	JRCXZ
	JS
	KADDB
	KADDD
	KADDQ
	KADDW
	KANDB
	KANDD
	KANDNB
	KANDND
	KANDNQ
	KANDNW
	KANDQ
	KANDW
	KMOVB
	KMOVD
	KMOVQ
	KMOVW
	KNOTB
	KNOTD
	KNOTQ
	KNOTW
	KORB
	KORD
	KORQ
	KORTESTB
	KORTESTD
	KORTESTQ
	KORTESTW
	KORW
	KSHIFTLB
	KSHIFTLD
	KSHIFTLQ
	KSHIFTLW
	KSHIFTRB
	KSHIFTRD
	KSHIFTRQ
	KSHIFTRW
	KTESTB
	KTESTD
	KTESTQ
	KTESTW
	KUNPCKBW
	KUNPCKDQ
	KUNPCKWD
	KXNORB
	KXNORD
	KXNORQ
	KXNORW
	KXORB
	KXORD
	KXORQ
	KXORW
	LAHF
	LDDQU
	LDMXCSR
	LEA
	LEAVE
	LFENCE
	LODSB
	LODSD
	LODSQ
	LODSW
	LOOP
	LOOPE
	LOOPNE
	LZCNT
	MAXPD
	MAXPS
	MAXSD
	MAXSS
	MFENCE
	MINPD
	MINPS
	MINSD
	MINSS
	MOV
	MOVAPD
	MOVAPS
	MOVBE
	MOVD
	MOVDDUP
	MOVDQA
	MOVDQU
	MOVHLPS
	MOVHPS
	MOVLHPS
	MOVLPS
	MOVMSKPD
	MOVMSKPS
	MOVNTDQ
	MOVNTDQA
	MOVNTI
	MOVNTPD
	MOVNTPS
	MOVQ
	MOVSB
	MOVSD
	MOVSHDUP
	MOVSLDUP
	MOVSQ
	MOVSS
	MOVSW
	MOVSX
	MOVSXD
	MOVUPD
	MOVUPS
	MOVZX
	MPSADBW
	MUL
	MULPD
	MULPS
	MULSD
	MULSS
	MULX
	NEG
	NOP
	NOT
	OR
	ORPD
	ORPS
	OUT
	PABSB
	PABSD
	PABSW
	PACKSSDW
	PACKSSWB
	PACKUSDW
	PACKUSWB
	PADDB
	PADDD
	PADDQ
	PADDSB
	PADDSW
	PADDUSB
	PADDUSW
	PADDW
	PALIGNR
	PAND
	PANDN
	PAUSE
	PAVGB
	PAVGW
	PBLENDVB
	PBLENDW
	PCLMULQDQ
	PCMPEQB
	PCMPEQD
	PCMPEQQ
	PCMPEQW
	PCMPESTRI
	PCMPESTRM
	PCMPGTB
	PCMPGTD
	PCMPGTQ
	PCMPGTW
	PCMPISTRI
	PCMPISTRM
	PDEP
	PEXT
	PEXTRB
	PEXTRD
	PEXTRQ
	PEXTRW
	PHADDD
	PHADDSW
	PHADDW
	PHMINPOSUW
	PHSUBD
	PHSUBSW
	PHSUBW
	PINSRB
	PINSRD
	PINSRQ
	PINSRW
	PMADDUBSW
	PMADDWD
	PMAXSB
	PMAXSD
	PMAXSW
	PMAXUB
	PMAXUD
	PMAXUW
	PMINSB
	PMINSD
	PMINSW
	PMINUB
	PMINUD
	PMINUW
	PMOVMSKB
	PMOVSXBD
	PMOVSXBQ
	PMOVSXBW
	PMOVSXDQ
	PMOVSXWD
	PMOVSXWQ
	PMOVZXBD
	PMOVZXBQ
	PMOVZXBW
	PMOVZXDQ
	PMOVZXWD
	PMOVZXWQ
	PMULDQ
	PMULHRSW
	PMULHUW
	PMULHW
	PMULLD
	PMULLW
	PMULUDQ
	POP
	POPAD
	POPCNT
	POPFD
	POPFQ
	POR
	PREFETCHNTA
	PREFETCHT0
	PREFETCHT1
	PREFETCHT2
	PSADBW
	PSHUFB
	PSHUFD
	PSHUFHW
	PSHUFLW
	PSHUFW
	PSIGNB
	PSIGND
	PSIGNW
	PSLLD
	PSLLDQ
	PSLLQ
	PSLLW
	PSRAD
	PSRAW
	PSRLD
	PSRLDQ
	PSRLQ
	PSRLW
	PSUBB
	PSUBD
	PSUBQ
	PSUBSB
	PSUBSW
	PSUBUSB
	PSUBUSW
	PSUBW
	PTEST
	PUNPCKHBW
	PUNPCKHDQ
	PUNPCKHQDQ
	PUNPCKHWD
	PUNPCKLBW
	PUNPCKLDQ
	PUNPCKLQDQ
	PUNPCKLWD
	PUSH
	PUSHAD
	PUSHFD
	PUSHFQ
	PXOR
	RCL
	RCPPS
	RCPSS
	RCR
	RDMSR
	RDPMC
	RDRAND
	RDSEED
	RDTSC
	RDTSCP
	RET
	ROL
	ROR
	RORX
	ROUNDPD
	ROUNDPS
	ROUNDSD
	ROUNDSS
	RSQRTPS
	RSQRTSS
	SAHF
	SAR
	SARX
	SBB
	SCASB
	SCASD
	SCASQ
	SCASW
	SETA
	SETAE
	SETB
	SETBE
	SETE
	SETG
	SETGE
	SETL
	SETLE
	SETNE
	SETNO
	SETNP
	SETNS
	SETO
	SETP
	SETS
	SFENCE
	SHL
	SHLD
	SHLX
	SHR
	SHRD
	SHRX
	SHUFPD
	SHUFPS
	SQRTPD
	SQRTPS
	SQRTSD
	SQRTSS
	STC
	STD
	STI
	STMXCSR
	STOSB
	STOSD
	STOSQ
	STOSW
	SUB
	SUBPD
	SUBPS
	SUBSD
	SUBSS
	SYSCALL
	SYSENTER
	TEST
	TZCNT
	UCOMISD
	UCOMISS
	UD2
	UNPCKHPD
	UNPCKHPS
	UNPCKLPD
	UNPCKLPS
	VADDPD
	VADDPS
	VADDSD
	VADDSS
	VADDSUBPD
	VADDSUBPS
	VAESDEC
	VAESDECLAST
	VAESENC
	VAESENCLAST
	VAESIMC
	VAESKEYGENASSIST
	VANDNPD
	VANDNPS
	VANDPD
	VANDPS
	VBLENDPD
	VBLENDPS
	VBLENDVPD
	VBLENDVPS
	VBROADCASTF128
	VBROADCASTI128
	VBROADCASTSD
	VBROADCASTSS
	VCMPPD
	VCMPPS
	VCMPSD
	VCMPSS
	VCOMISD
	VCOMISS
	VCVTDQ2PD
	VCVTDQ2PS
	VCVTPD2DQ
	VCVTPD2PS
	VCVTPH2PS
	VCVTPS2DQ
	VCVTPS2PD
	VCVTPS2PH
	VCVTSD2SI
	VCVTSD2SS
	VCVTSI2SD
	VCVTSI2SS
	VCVTSS2SD
	VCVTSS2SI
	VCVTTPD2DQ
	VCVTTPS2DQ
	VCVTTSD2SI
	VCVTTSS2SI
	VDIVPD
	VDIVPS
	VDIVSD
	VDIVSS
	VDPPD
	VDPPS
	VEXTRACTF128
	VEXTRACTF32X4
	VEXTRACTF64X4
	VEXTRACTI128
	VEXTRACTI32X4
	VEXTRACTI64X4
	VEXTRACTPS
	VFMADD132PD
	VFMADD132PS
	VFMADD132SD
	VFMADD132SS
	VFMADD213PD
	VFMADD213PS
	VFMADD213SD
	VFMADD213SS
	VFMADD231PD
	VFMADD231PS
	VFMADD231SD
	VFMADD231SS
	VFMSUB132PD
	VFMSUB132PS
	VFMSUB132SD
	VFMSUB132SS
	VFMSUB213PD
	VFMSUB213PS
	VFMSUB213SD
	VFMSUB213SS
	VFMSUB231PD
	VFMSUB231PS
	VFMSUB231SD
	VFMSUB231SS
	VFNMADD132PD
	VFNMADD132PS
	VFNMADD132SD
	VFNMADD132SS
	VFNMADD213PD
	VFNMADD213PS
	VFNMADD213SD
	VFNMADD213SS
	VFNMADD231PD
	VFNMADD231PS
	VFNMADD231SD
	VFNMADD231SS
	VFNMSUB132PD
	VFNMSUB132PS
	VFNMSUB132SD
	VFNMSUB132SS
	VFNMSUB213PD
	VFNMSUB213PS
	VFNMSUB213SD
	VFNMSUB213SS
	VFNMSUB231PD
	VFNMSUB231PS
	VFNMSUB231SD
	VFNMSUB231SS
	VHADDPD
	VHADDPS
	VHSUBPD
	VHSUBPS
	VINSERTF128
	VINSERTF32X4
	VINSERTF64X4
	VINSERTI128
	VINSERTI32X4
	VINSERTI64X4
	VINSERTPS
	VLDDQU
	VLDMXCSR
	VMAXPD
	VMAXPS
	VMAXSD
	VMAXSS
	VMINPD
	VMINPS
	VMINSD
	VMINSS
	VMOVAPD
	VMOVAPS
	VMOVD
	VMOVDDUP
	VMOVDQA
	VMOVDQA32
	VMOVDQA64
	VMOVDQU
	VMOVDQU16
	VMOVDQU32
	VMOVDQU64
	VMOVDQU8
	VMOVMSKPD
	VMOVMSKPS
	VMOVNTDQ
	VMOVNTPS
	VMOVQ
	VMOVSD
	VMOVSHDUP
	VMOVSLDUP
	VMOVSS
	VMOVUPD
	VMOVUPS
	VMPSADBW
	VMULPD
	VMULPS
	VMULSD
	VMULSS
	VORPD
	VORPS
	VPABSB
	VPABSD
	VPABSQ
	VPABSW
	VPACKSSDW
	VPACKSSWB
	VPACKUSDW
	VPACKUSWB
	VPADDB
	VPADDD
	VPADDQ
	VPADDSB
	VPADDSW
	VPADDUSB
	VPADDUSW
	VPADDW
	VPALIGNR
	VPAND
	VPANDD
	VPANDN
	VPANDND
	VPANDNQ
	VPANDQ
	VPAVGB
	VPAVGW
	VPBLENDD
	VPBLENDVB
	VPBLENDW
	VPBROADCASTB
	VPBROADCASTD
	VPBROADCASTQ
	VPBROADCASTW
	VPCLMULQDQ
	VPCMPD
	VPCMPEQB
	VPCMPEQD
	VPCMPEQQ
	VPCMPEQW
	VPCMPESTRI
	VPCMPESTRM
	VPCMPGTB
	VPCMPGTD
	VPCMPGTQ
	VPCMPGTW
	VPCMPISTRI
	VPCMPISTRM
	VPCMPQ
	VPCMPUD
	VPCMPUQ
	VPERM2F128
	VPERM2I128
	VPERMD
	VPERMILPD
	VPERMILPS
	VPERMPD
	VPERMPS
	VPERMQ
	VPEXTRB
	VPEXTRD
	VPEXTRQ
	VPEXTRW
	VPHADDD
	VPHADDSW
	VPHADDW
	VPHMINPOSUW
	VPHSUBD
	VPHSUBSW
	VPHSUBW
	VPINSRB
	VPINSRD
	VPINSRQ
	VPINSRW
	VPMADDUBSW
	VPMADDWD
	VPMAXSB
	VPMAXSD
	VPMAXSQ
	VPMAXSW
	VPMAXUB
	VPMAXUD
	VPMAXUQ
	VPMAXUW
	VPMINSB
	VPMINSD
	VPMINSQ
	VPMINSW
	VPMINUB
	VPMINUD
	VPMINUQ
	VPMINUW
	VPMOVMSKB
	VPMOVSXBD
	VPMOVSXBQ
	VPMOVSXBW
	VPMOVSXDQ
	VPMOVSXWD
	VPMOVSXWQ
	VPMOVZXBD
	VPMOVZXBQ
	VPMOVZXBW
	VPMOVZXDQ
	VPMOVZXWD
	VPMOVZXWQ
	VPMULDQ
	VPMULHRSW
	VPMULHUW
	VPMULHW
	VPMULLD
	VPMULLQ
	VPMULLW
	VPMULUDQ
	VPOR
	VPORD
	VPORQ
	VPSADBW
	VPSHUFB
	VPSHUFD
	VPSHUFHW
	VPSHUFLW
	VPSIGNB
	VPSIGND
	VPSIGNW
	VPSLLD
	VPSLLDQ
	VPSLLQ
	VPSLLVD
	VPSLLVQ
	VPSLLW
	VPSRAD
	VPSRAQ
	VPSRAVD
	VPSRAVQ
	VPSRAW
	VPSRLD
	VPSRLDQ
	VPSRLQ
	VPSRLVD
	VPSRLVQ
	VPSRLW
	VPSUBB
	VPSUBD
	VPSUBQ
	VPSUBSB
	VPSUBSW
	VPSUBUSB
	VPSUBUSW
	VPSUBW
	VPTERNLOGD
	VPTERNLOGQ
	VPTEST
	VPUNPCKHBW
	VPUNPCKHDQ
	VPUNPCKHQDQ
	VPUNPCKHWD
	VPUNPCKLBW
	VPUNPCKLDQ
	VPUNPCKLQDQ
	VPUNPCKLWD
	VPXOR
	VPXORD
	VPXORQ
	VRCPPS
	VRCPSS
	VROUNDPD
	VROUNDPS
	VROUNDSD
	VROUNDSS
	VRSQRTPS
	VRSQRTSS
	VSHUFPD
	VSHUFPS
	VSQRTPD
	VSQRTPS
	VSQRTSD
	VSQRTSS
	VSTMXCSR
	VSUBPD
	VSUBPS
	VSUBSD
	VSUBSS
	VTESTPD
	VTESTPS
	VUCOMISD
	VUCOMISS
	VUNPCKHPD
	VUNPCKHPS
	VUNPCKLPD
	VUNPCKLPS
	VXORPD
	VXORPS
	VZEROALL
	VZEROUPPER
	WBINVD
	WRMSR
	XADD
	XCHG
	XGETBV
	XOR
	XORPD
	XORPS

	mnemonicCount
)

var mnemonicNames = [mnemonicCount]string{
	ADC:              "adc",
	ADCX:             "adcx",
	ADD:              "add",
	ADDPD:            "addpd",
	ADDPS:            "addps",
	ADDSD:            "addsd",
	ADDSS:            "addss",
	ADDSUBPD:         "addsubpd",
	ADDSUBPS:         "addsubps",
	ADOX:             "adox",
	AESDEC:           "aesdec",
	AESDECLAST:       "aesdeclast",
	AESENC:           "aesenc",
	AESENCLAST:       "aesenclast",
	AESIMC:           "aesimc",
	AESKEYGENASSIST:  "aeskeygenassist",
	AND:              "and",
	ANDN:             "andn",
	ANDNPD:           "andnpd",
	ANDNPS:           "andnps",
	ANDPD:            "andpd",
	ANDPS:            "andps",
	BEXTR:            "bextr",
	BLENDPD:          "blendpd",
	BLENDPS:          "blendps",
	BLENDVPD:         "blendvpd",
	BLENDVPS:         "blendvps",
	BLSI:             "blsi",
	BLSMSK:           "blsmsk",
	BLSR:             "blsr",
	BSF:              "bsf",
	BSR:              "bsr",
	BSWAP:            "bswap",
	BT:               "bt",
	BTC:              "btc",
	BTR:              "btr",
	BTS:              "bts",
	BZHI:             "bzhi",
	CALL:             "call",
	CBW:              "cbw",
	CDQ:              "cdq",
	CDQE:             "cdqe",
	CLC:              "clc",
	CLD:              "cld",
	CLFLUSH:          "clflush",
	CLI:              "cli",
	CMC:              "cmc",
	CMOVA:            "cmova",
	CMOVAE:           "cmovae",
	CMOVB:            "cmovb",
	CMOVBE:           "cmovbe",
	CMOVE:            "cmove",
	CMOVG:            "cmovg",
	CMOVGE:           "cmovge",
	CMOVL:            "cmovl",
	CMOVLE:           "cmovle",
	CMOVNE:           "cmovne",
	CMOVNO:           "cmovno",
	CMOVNP:           "cmovnp",
	CMOVNS:           "cmovns",
	CMOVO:            "cmovo",
	CMOVP:            "cmovp",
	CMOVS:            "cmovs",
	CMP:              "cmp",
	CMPPD:            "cmppd",
	CMPPS:            "cmpps",
	CMPSB:            "cmpsb",
	CMPSD:            "cmpsd",
	CMPSQ:            "cmpsq",
	CMPSS:            "cmpss",
	CMPSW:            "cmpsw",
	CMPXCHG:          "cmpxchg",
	CMPXCHG16B:       "cmpxchg16b",
	CMPXCHG8B:        "cmpxchg8b",
	COMISD:           "comisd",
	COMISS:           "comiss",
	CPUID:            "cpuid",
	CQO:              "cqo",
	CRC32:            "crc32",
	CVTDQ2PD:         "cvtdq2pd",
	CVTDQ2PS:         "cvtdq2ps",
	CVTPD2DQ:         "cvtpd2dq",
	CVTPD2PS:         "cvtpd2ps",
	CVTPS2DQ:         "cvtps2dq",
	CVTPS2PD:         "cvtps2pd",
	CVTSD2SI:         "cvtsd2si",
	CVTSD2SS:         "cvtsd2ss",
	CVTSI2SD:         "cvtsi2sd",
	CVTSI2SS:         "cvtsi2ss",
	CVTSS2SD:         "cvtss2sd",
	CVTSS2SI:         "cvtss2si",
	CVTTPD2DQ:        "cvttpd2dq",
	CVTTPS2DQ:        "cvttps2dq",
	CVTTSD2SI:        "cvttsd2si",
	CVTTSS2SI:        "cvttss2si",
	CWD:              "cwd",
	CWDE:             "cwde",
	DEC:              "dec",
	DIV:              "div",
	DIVPD:            "divpd",
	DIVPS:            "divps",
	DIVSD:            "divsd",
	DIVSS:            "divss",
	DPPD:             "dppd",
	DPPS:             "dpps",
	EMMS:             "emms",
	ENDBR32:          "endbr32",
	ENDBR64:          "endbr64",
	ENTER:            "enter",
	EXTRACTPS:        "extractps",
	FABS:             "fabs",
	FADD:             "fadd",
	FADDP:            "faddp",
	FCHS:             "fchs",
	FCOM:             "fcom",
	FCOMI:            "fcomi",
	FCOMIP:           "fcomip",
	FCOMP:            "fcomp",
	FCOMPP:           "fcompp",
	FCOS:             "fcos",
	FDECSTP:          "fdecstp",
	FDIV:             "fdiv",
	FDIVP:            "fdivp",
	FDIVR:            "fdivr",
	FDIVRP:           "fdivrp",
	FFREE:            "ffree",
	FIADD:            "fiadd",
	FIDIV:            "fidiv",
	FIDIVR:           "fidivr",
	FILD:             "fild",
	FIMUL:            "fimul",
	FINCSTP:          "fincstp",
	FINIT:            "finit",
	FIST:             "fist",
	FISTP:            "fistp",
	FISTTP:           "fisttp",
	FISUB:            "fisub",
	FISUBR:           "fisubr",
	FLD:              "fld",
	FLD1:             "fld1",
	FLDCW:            "fldcw",
	FLDL2E:           "fldl2e",
	FLDL2T:           "fldl2t",
	FLDLG2:           "fldlg2",
	FLDLN2:           "fldln2",
	FLDPI:            "fldpi",
	FLDZ:             "fldz",
	FMUL:             "fmul",
	FMULP:            "fmulp",
	FNCLEX:           "fnclex",
	FNINIT:           "fninit",
	FNSTCW:           "fnstcw",
	FNSTSW:           "fnstsw",
	FPATAN:           "fpatan",
	FPREM:            "fprem",
	FPTAN:            "fptan",
	FRNDINT:          "frndint",
	FSCALE:           "fscale",
	FSIN:             "fsin",
	FSQRT:            "fsqrt",
	FST:              "fst",
	FSTP:             "fstp",
	FSUB:             "fsub",
	FSUBP:            "fsubp",
	FSUBR:            "fsubr",
	FSUBRP:           "fsubrp",
	FTST:             "ftst",
	FUCOM:            "fucom",
	FUCOMI:           "fucomi",
	FUCOMIP:          "fucomip",
	FUCOMP:           "fucomp",
	FUCOMPP:          "fucompp",
	FWAIT:            "fwait",
	FXAM:             "fxam",
	FXCH:             "fxch",
	FXRSTOR:          "fxrstor",
	FXSAVE:           "fxsave",
	HADDPD:           "haddpd",
	HADDPS:           "haddps",
	HLT:              "hlt",
	HSUBPD:           "hsubpd",
	HSUBPS:           "hsubps",
	IDIV:             "idiv",
	IMUL:             "imul",
	IN:               "in",
	INC:              "inc",
	INSERTPS:         "insertps",
	INT:              "int",
	INT3:             "int3",
	JA:               "ja",
	JAE:              "jae",
	JB:               "jb",
	JBE:              "jbe",
	JE:               "je",
	JECXZ:            "jecxz",
	JG:               "jg",
	JGE:              "jge",
	JL:               "jl",
	JLE:              "jle",
	JMP:              "jmp",
	JNE:              "jne",
	JNO:              "jno",
	JNP:              "jnp",
	JNS:              "jns",
	JO:               "jo",
	JP:               "jp",
	JRCXZ:            "jrcxz",
	JS:               "js",
	KADDB:            "kaddb",
	KADDD:            "kaddd",
	KADDQ:            "kaddq",
	KADDW:            "kaddw",
	KANDB:            "kandb",
	KANDD:            "kandd",
	KANDNB:           "kandnb",
	KANDND:           "kandnd",
	KANDNQ:           "kandnq",
	KANDNW:           "kandnw",
	KANDQ:            "kandq",
	KANDW:            "kandw",
	KMOVB:            "kmovb",
	KMOVD:            "kmovd",
	KMOVQ:            "kmovq",
	KMOVW:            "kmovw",
	KNOTB:            "knotb",
	KNOTD:            "knotd",
	KNOTQ:            "knotq",
	KNOTW:            "knotw",
	KORB:             "korb",
	KORD:             "kord",
	KORQ:             "korq",
	KORTESTB:         "kortestb",
	KORTESTD:         "kortestd",
	KORTESTQ:         "kortestq",
	KORTESTW:         "kortestw",
	KORW:             "korw",
	KSHIFTLB:         "kshiftlb",
	KSHIFTLD:         "kshiftld",
	KSHIFTLQ:         "kshiftlq",
	KSHIFTLW:         "kshiftlw",
	KSHIFTRB:         "kshiftrb",
	KSHIFTRD:         "kshiftrd",
	KSHIFTRQ:         "kshiftrq",
	KSHIFTRW:         "kshiftrw",
	KTESTB:           "ktestb",
	KTESTD:           "ktestd",
	KTESTQ:           "ktestq",
	KTESTW:           "ktestw",
	KUNPCKBW:         "kunpckbw",
	KUNPCKDQ:         "kunpckdq",
	KUNPCKWD:         "kunpckwd",
	KXNORB:           "kxnorb",
	KXNORD:           "kxnord",
	KXNORQ:           "kxnorq",
	KXNORW:           "kxnorw",
	KXORB:            "kxorb",
	KXORD:            "kxord",
	KXORQ:            "kxorq",
	KXORW:            "kxorw",
	LAHF:             "lahf",
	LDDQU:            "lddqu",
	LDMXCSR:          "ldmxcsr",
	LEA:              "lea",
	LEAVE:            "leave",
	LFENCE:           "lfence",
	LODSB:            "lodsb",
	LODSD:            "lodsd",
	LODSQ:            "lodsq",
	LODSW:            "lodsw",
	LOOP:             "loop",
	LOOPE:            "loope",
	LOOPNE:           "loopne",
	LZCNT:            "lzcnt",
	MAXPD:            "maxpd",
	MAXPS:            "maxps",
	MAXSD:            "maxsd",
	MAXSS:            "maxss",
	MFENCE:           "mfence",
	MINPD:            "minpd",
	MINPS:            "minps",
	MINSD:            "minsd",
	MINSS:            "minss",
	MOV:              "mov",
	MOVAPD:           "movapd",
	MOVAPS:           "movaps",
	MOVBE:            "movbe",
	MOVD:             "movd",
	MOVDDUP:          "movddup",
	MOVDQA:           "movdqa",
	MOVDQU:           "movdqu",
	MOVHLPS:          "movhlps",
	MOVHPS:           "movhps",
	MOVLHPS:          "movlhps",
	MOVLPS:           "movlps",
	MOVMSKPD:         "movmskpd",
	MOVMSKPS:         "movmskps",
	MOVNTDQ:          "movntdq",
	MOVNTDQA:         "movntdqa",
	MOVNTI:           "movnti",
	MOVNTPD:          "movntpd",
	MOVNTPS:          "movntps",
	MOVQ:             "movq",
	MOVSB:            "movsb",
	MOVSD:            "movsd",
	MOVSHDUP:         "movshdup",
	MOVSLDUP:         "movsldup",
	MOVSQ:            "movsq",
	MOVSS:            "movss",
	MOVSW:            "movsw",
	MOVSX:            "movsx",
	MOVSXD:           "movsxd",
	MOVUPD:           "movupd",
	MOVUPS:           "movups",
	MOVZX:            "movzx",
	MPSADBW:          "mpsadbw",
	MUL:              "mul",
	MULPD:            "mulpd",
	MULPS:            "mulps",
	MULSD:            "mulsd",
	MULSS:            "mulss",
	MULX:             "mulx",
	NEG:              "neg",
	NOP:              "nop",
	NOT:              "not",
	OR:               "or",
	ORPD:             "orpd",
	ORPS:             "orps",
	OUT:              "out",
	PABSB:            "pabsb",
	PABSD:            "pabsd",
	PABSW:            "pabsw",
	PACKSSDW:         "packssdw",
	PACKSSWB:         "packsswb",
	PACKUSDW:         "packusdw",
	PACKUSWB:         "packuswb",
	PADDB:            "paddb",
	PADDD:            "paddd",
	PADDQ:            "paddq",
	PADDSB:           "paddsb",
	PADDSW:           "paddsw",
	PADDUSB:          "paddusb",
	PADDUSW:          "paddusw",
	PADDW:            "paddw",
	PALIGNR:          "palignr",
	PAND:             "pand",
	PANDN:            "pandn",
	PAUSE:            "pause",
	PAVGB:            "pavgb",
	PAVGW:            "pavgw",
	PBLENDVB:         "pblendvb",
	PBLENDW:          "pblendw",
	PCLMULQDQ:        "pclmulqdq",
	PCMPEQB:          "pcmpeqb",
	PCMPEQD:          "pcmpeqd",
	PCMPEQQ:          "pcmpeqq",
	PCMPEQW:          "pcmpeqw",
	PCMPESTRI:        "pcmpestri",
	PCMPESTRM:        "pcmpestrm",
	PCMPGTB:          "pcmpgtb",
	PCMPGTD:          "pcmpgtd",
	PCMPGTQ:          "pcmpgtq",
	PCMPGTW:          "pcmpgtw",
	PCMPISTRI:        "pcmpistri",
	PCMPISTRM:        "pcmpistrm",
	PDEP:             "pdep",
	PEXT:             "pext",
	PEXTRB:           "pextrb",
	PEXTRD:           "pextrd",
	PEXTRQ:           "pextrq",
	PEXTRW:           "pextrw",
	PHADDD:           "phaddd",
	PHADDSW:          "phaddsw",
	PHADDW:           "phaddw",
	PHMINPOSUW:       "phminposuw",
	PHSUBD:           "phsubd",
	PHSUBSW:          "phsubsw",
	PHSUBW:           "phsubw",
	PINSRB:           "pinsrb",
	PINSRD:           "pinsrd",
	PINSRQ:           "pinsrq",
	PINSRW:           "pinsrw",
	PMADDUBSW:        "pmaddubsw",
	PMADDWD:          "pmaddwd",
	PMAXSB:           "pmaxsb",
	PMAXSD:           "pmaxsd",
	PMAXSW:           "pmaxsw",
	PMAXUB:           "pmaxub",
	PMAXUD:           "pmaxud",
	PMAXUW:           "pmaxuw",
	PMINSB:           "pminsb",
	PMINSD:           "pminsd",
	PMINSW:           "pminsw",
	PMINUB:           "pminub",
	PMINUD:           "pminud",
	PMINUW:           "pminuw",
	PMOVMSKB:         "pmovmskb",
	PMOVSXBD:         "pmovsxbd",
	PMOVSXBQ:         "pmovsxbq",
	PMOVSXBW:         "pmovsxbw",
	PMOVSXDQ:         "pmovsxdq",
	PMOVSXWD:         "pmovsxwd",
	PMOVSXWQ:         "pmovsxwq",
	PMOVZXBD:         "pmovzxbd",
	PMOVZXBQ:         "pmovzxbq",
	PMOVZXBW:         "pmovzxbw",
	PMOVZXDQ:         "pmovzxdq",
	PMOVZXWD:         "pmovzxwd",
	PMOVZXWQ:         "pmovzxwq",
	PMULDQ:           "pmuldq",
	PMULHRSW:         "pmulhrsw",
	PMULHUW:          "pmulhuw",
	PMULHW:           "pmulhw",
	PMULLD:           "pmulld",
	PMULLW:           "pmullw",
	PMULUDQ:          "pmuludq",
	POP:              "pop",
	POPAD:            "popad",
	POPCNT:           "popcnt",
	POPFD:            "popfd",
	POPFQ:            "popfq",
	POR:              "por",
	PREFETCHNTA:      "prefetchnta",
	PREFETCHT0:       "prefetcht0",
	PREFETCHT1:       "prefetcht1",
	PREFETCHT2:       "prefetcht2",
	PSADBW:           "psadbw",
	PSHUFB:           "pshufb",
	PSHUFD:           "pshufd",
	PSHUFHW:          "pshufhw",
	PSHUFLW:          "pshuflw",
	PSHUFW:           "pshufw",
	PSIGNB:           "psignb",
	PSIGND:           "psignd",
	PSIGNW:           "psignw",
	PSLLD:            "pslld",
	PSLLDQ:           "pslldq",
	PSLLQ:            "psllq",
	PSLLW:            "psllw",
	PSRAD:            "psrad",
	PSRAW:            "psraw",
	PSRLD:            "psrld",
	PSRLDQ:           "psrldq",
	PSRLQ:            "psrlq",
	PSRLW:            "psrlw",
	PSUBB:            "psubb",
	PSUBD:            "psubd",
	PSUBQ:            "psubq",
	PSUBSB:           "psubsb",
	PSUBSW:           "psubsw",
	PSUBUSB:          "psubusb",
	PSUBUSW:          "psubusw",
	PSUBW:            "psubw",
	PTEST:            "ptest",
	PUNPCKHBW:        "punpckhbw",
	PUNPCKHDQ:        "punpckhdq",
	PUNPCKHQDQ:       "punpckhqdq",
	PUNPCKHWD:        "punpckhwd",
	PUNPCKLBW:        "punpcklbw",
	PUNPCKLDQ:        "punpckldq",
	PUNPCKLQDQ:       "punpcklqdq",
	PUNPCKLWD:        "punpcklwd",
	PUSH:             "push",
	PUSHAD:           "pushad",
	PUSHFD:           "pushfd",
	PUSHFQ:           "pushfq",
	PXOR:             "pxor",
	RCL:              "rcl",
	RCPPS:            "rcpps",
	RCPSS:            "rcpss",
	RCR:              "rcr",
	RDMSR:            "rdmsr",
	RDPMC:            "rdpmc",
	RDRAND:           "rdrand",
	RDSEED:           "rdseed",
	RDTSC:            "rdtsc",
	RDTSCP:           "rdtscp",
	RET:              "ret",
	ROL:              "rol",
	ROR:              "ror",
	RORX:             "rorx",
	ROUNDPD:          "roundpd",
	ROUNDPS:          "roundps",
	ROUNDSD:          "roundsd",
	ROUNDSS:          "roundss",
	RSQRTPS:          "rsqrtps",
	RSQRTSS:          "rsqrtss",
	SAHF:             "sahf",
	SAR:              "sar",
	SARX:             "sarx",
	SBB:              "sbb",
	SCASB:            "scasb",
	SCASD:            "scasd",
	SCASQ:            "scasq",
	SCASW:            "scasw",
	SETA:             "seta",
	SETAE:            "setae",
	SETB:             "setb",
	SETBE:            "setbe",
	SETE:             "sete",
	SETG:             "setg",
	SETGE:            "setge",
	SETL:             "setl",
	SETLE:            "setle",
	SETNE:            "setne",
	SETNO:            "setno",
	SETNP:            "setnp",
	SETNS:            "setns",
	SETO:             "seto",
	SETP:             "setp",
	SETS:             "sets",
	SFENCE:           "sfence",
	SHL:              "shl",
	SHLD:             "shld",
	SHLX:             "shlx",
	SHR:              "shr",
	SHRD:             "shrd",
	SHRX:             "shrx",
	SHUFPD:           "shufpd",
	SHUFPS:           "shufps",
	SQRTPD:           "sqrtpd",
	SQRTPS:           "sqrtps",
	SQRTSD:           "sqrtsd",
	SQRTSS:           "sqrtss",
	STC:              "stc",
	STD:              "std",
	STI:              "sti",
	STMXCSR:          "stmxcsr",
	STOSB:            "stosb",
	STOSD:            "stosd",
	STOSQ:            "stosq",
	STOSW:            "stosw",
	SUB:              "sub",
	SUBPD:            "subpd",
	SUBPS:            "subps",
	SUBSD:            "subsd",
	SUBSS:            "subss",
	SYSCALL:          "syscall",
	SYSENTER:         "sysenter",
	TEST:             "test",
	TZCNT:            "tzcnt",
	UCOMISD:          "ucomisd",
	UCOMISS:          "ucomiss",
	UD2:              "ud2",
	UNPCKHPD:         "unpckhpd",
	UNPCKHPS:         "unpckhps",
	UNPCKLPD:         "unpcklpd",
	UNPCKLPS:         "unpcklps",
	VADDPD:           "vaddpd",
	VADDPS:           "vaddps",
	VADDSD:           "vaddsd",
	VADDSS:           "vaddss",
	VADDSUBPD:        "vaddsubpd",
	VADDSUBPS:        "vaddsubps",
	VAESDEC:          "vaesdec",
	VAESDECLAST:      "vaesdeclast",
	VAESENC:          "vaesenc",
	VAESENCLAST:      "vaesenclast",
	VAESIMC:          "vaesimc",
	VAESKEYGENASSIST: "vaeskeygenassist",
	VANDNPD:          "vandnpd",
	VANDNPS:          "vandnps",
	VANDPD:           "vandpd",
	VANDPS:           "vandps",
	VBLENDPD:         "vblendpd",
	VBLENDPS:         "vblendps",
	VBLENDVPD:        "vblendvpd",
	VBLENDVPS:        "vblendvps",
	VBROADCASTF128:   "vbroadcastf128",
	VBROADCASTI128:   "vbroadcasti128",
	VBROADCASTSD:     "vbroadcastsd",
	VBROADCASTSS:     "vbroadcastss",
	VCMPPD:           "vcmppd",
	VCMPPS:           "vcmpps",
	VCMPSD:           "vcmpsd",
	VCMPSS:           "vcmpss",
	VCOMISD:          "vcomisd",
	VCOMISS:          "vcomiss",
	VCVTDQ2PD:        "vcvtdq2pd",
	VCVTDQ2PS:        "vcvtdq2ps",
	VCVTPD2DQ:        "vcvtpd2dq",
	VCVTPD2PS:        "vcvtpd2ps",
	VCVTPH2PS:        "vcvtph2ps",
	VCVTPS2DQ:        "vcvtps2dq",
	VCVTPS2PD:        "vcvtps2pd",
	VCVTPS2PH:        "vcvtps2ph",
	VCVTSD2SI:        "vcvtsd2si",
	VCVTSD2SS:        "vcvtsd2ss",
	VCVTSI2SD:        "vcvtsi2sd",
	VCVTSI2SS:        "vcvtsi2ss",
	VCVTSS2SD:        "vcvtss2sd",
	VCVTSS2SI:        "vcvtss2si",
	VCVTTPD2DQ:       "vcvttpd2dq",
	VCVTTPS2DQ:       "vcvttps2dq",
	VCVTTSD2SI:       "vcvttsd2si",
	VCVTTSS2SI:       "vcvttss2si",
	VDIVPD:           "vdivpd",
	VDIVPS:           "vdivps",
	VDIVSD:           "vdivsd",
	VDIVSS:           "vdivss",
	VDPPD:            "vdppd",
	VDPPS:            "vdpps",
	VEXTRACTF128:     "vextractf128",
	VEXTRACTF32X4:    "vextractf32x4",
	VEXTRACTF64X4:    "vextractf64x4",
	VEXTRACTI128:     "vextracti128",
	VEXTRACTI32X4:    "vextracti32x4",
	VEXTRACTI64X4:    "vextracti64x4",
	VEXTRACTPS:       "vextractps",
	VFMADD132PD:      "vfmadd132pd",
	VFMADD132PS:      "vfmadd132ps",
	VFMADD132SD:      "vfmadd132sd",
	VFMADD132SS:      "vfmadd132ss",
	VFMADD213PD:      "vfmadd213pd",
	VFMADD213PS:      "vfmadd213ps",
	VFMADD213SD:      "vfmadd213sd",
	VFMADD213SS:      "vfmadd213ss",
	VFMADD231PD:      "vfmadd231pd",
	VFMADD231PS:      "vfmadd231ps",
	VFMADD231SD:      "vfmadd231sd",
	VFMADD231SS:      "vfmadd231ss",
	VFMSUB132PD:      "vfmsub132pd",
	VFMSUB132PS:      "vfmsub132ps",
	VFMSUB132SD:      "vfmsub132sd",
	VFMSUB132SS:      "vfmsub132ss",
	VFMSUB213PD:      "vfmsub213pd",
	VFMSUB213PS:      "vfmsub213ps",
	VFMSUB213SD:      "vfmsub213sd",
	VFMSUB213SS:      "vfmsub213ss",
	VFMSUB231PD:      "vfmsub231pd",
	VFMSUB231PS:      "vfmsub231ps",
	VFMSUB231SD:      "vfmsub231sd",
	VFMSUB231SS:      "vfmsub231ss",
	VFNMADD132PD:     "vfnmadd132pd",
	VFNMADD132PS:     "vfnmadd132ps",
	VFNMADD132SD:     "vfnmadd132sd",
	VFNMADD132SS:     "vfnmadd132ss",
	VFNMADD213PD:     "vfnmadd213pd",
	VFNMADD213PS:     "vfnmadd213ps",
	VFNMADD213SD:     "vfnmadd213sd",
	VFNMADD213SS:     "vfnmadd213ss",
	VFNMADD231PD:     "vfnmadd231pd",
	VFNMADD231PS:     "vfnmadd231ps",
	VFNMADD231SD:     "vfnmadd231sd",
	VFNMADD231SS:     "vfnmadd231ss",
	VFNMSUB132PD:     "vfnmsub132pd",
	VFNMSUB132PS:     "vfnmsub132ps",
	VFNMSUB132SD:     "vfnmsub132sd",
	VFNMSUB132SS:     "vfnmsub132ss",
	VFNMSUB213PD:     "vfnmsub213pd",
	VFNMSUB213PS:     "vfnmsub213ps",
	VFNMSUB213SD:     "vfnmsub213sd",
	VFNMSUB213SS:     "vfnmsub213ss",
	VFNMSUB231PD:     "vfnmsub231pd",
	VFNMSUB231PS:     "vfnmsub231ps",
	VFNMSUB231SD:     "vfnmsub231sd",
	VFNMSUB231SS:     "vfnmsub231ss",
	VHADDPD:          "vhaddpd",
	VHADDPS:          "vhaddps",
	VHSUBPD:          "vhsubpd",
	VHSUBPS:          "vhsubps",
	VINSERTF128:      "vinsertf128",
	VINSERTF32X4:     "vinsertf32x4",
	VINSERTF64X4:     "vinsertf64x4",
	VINSERTI128:      "vinserti128",
	VINSERTI32X4:     "vinserti32x4",
	VINSERTI64X4:     "vinserti64x4",
	VINSERTPS:        "vinsertps",
	VLDDQU:           "vlddqu",
	VLDMXCSR:         "vldmxcsr",
	VMAXPD:           "vmaxpd",
	VMAXPS:           "vmaxps",
	VMAXSD:           "vmaxsd",
	VMAXSS:           "vmaxss",
	VMINPD:           "vminpd",
	VMINPS:           "vminps",
	VMINSD:           "vminsd",
	VMINSS:           "vminss",
	VMOVAPD:          "vmovapd",
	VMOVAPS:          "vmovaps",
	VMOVD:            "vmovd",
	VMOVDDUP:         "vmovddup",
	VMOVDQA:          "vmovdqa",
	VMOVDQA32:        "vmovdqa32",
	VMOVDQA64:        "vmovdqa64",
	VMOVDQU:          "vmovdqu",
	VMOVDQU16:        "vmovdqu16",
	VMOVDQU32:        "vmovdqu32",
	VMOVDQU64:        "vmovdqu64",
	VMOVDQU8:         "vmovdqu8",
	VMOVMSKPD:        "vmovmskpd",
	VMOVMSKPS:        "vmovmskps",
	VMOVNTDQ:         "vmovntdq",
	VMOVNTPS:         "vmovntps",
	VMOVQ:            "vmovq",
	VMOVSD:           "vmovsd",
	VMOVSHDUP:        "vmovshdup",
	VMOVSLDUP:        "vmovsldup",
	VMOVSS:           "vmovss",
	VMOVUPD:          "vmovupd",
	VMOVUPS:          "vmovups",
	VMPSADBW:         "vmpsadbw",
	VMULPD:           "vmulpd",
	VMULPS:           "vmulps",
	VMULSD:           "vmulsd",
	VMULSS:           "vmulss",
	VORPD:            "vorpd",
	VORPS:            "vorps",
	VPABSB:           "vpabsb",
	VPABSD:           "vpabsd",
	VPABSQ:           "vpabsq",
	VPABSW:           "vpabsw",
	VPACKSSDW:        "vpackssdw",
	VPACKSSWB:        "vpacksswb",
	VPACKUSDW:        "vpackusdw",
	VPACKUSWB:        "vpackuswb",
	VPADDB:           "vpaddb",
	VPADDD:           "vpaddd",
	VPADDQ:           "vpaddq",
	VPADDSB:          "vpaddsb",
	VPADDSW:          "vpaddsw",
	VPADDUSB:         "vpaddusb",
	VPADDUSW:         "vpaddusw",
	VPADDW:           "vpaddw",
	VPALIGNR:         "vpalignr",
	VPAND:            "vpand",
	VPANDD:           "vpandd",
	VPANDN:           "vpandn",
	VPANDND:          "vpandnd",
	VPANDNQ:          "vpandnq",
	VPANDQ:           "vpandq",
	VPAVGB:           "vpavgb",
	VPAVGW:           "vpavgw",
	VPBLENDD:         "vpblendd",
	VPBLENDVB:        "vpblendvb",
	VPBLENDW:         "vpblendw",
	VPBROADCASTB:     "vpbroadcastb",
	VPBROADCASTD:     "vpbroadcastd",
	VPBROADCASTQ:     "vpbroadcastq",
	VPBROADCASTW:     "vpbroadcastw",
	VPCLMULQDQ:       "vpclmulqdq",
	VPCMPD:           "vpcmpd",
	VPCMPEQB:         "vpcmpeqb",
	VPCMPEQD:         "vpcmpeqd",
	VPCMPEQQ:         "vpcmpeqq",
	VPCMPEQW:         "vpcmpeqw",
	VPCMPESTRI:       "vpcmpestri",
	VPCMPESTRM:       "vpcmpestrm",
	VPCMPGTB:         "vpcmpgtb",
	VPCMPGTD:         "vpcmpgtd",
	VPCMPGTQ:         "vpcmpgtq",
	VPCMPGTW:         "vpcmpgtw",
	VPCMPISTRI:       "vpcmpistri",
	VPCMPISTRM:       "vpcmpistrm",
	VPCMPQ:           "vpcmpq",
	VPCMPUD:          "vpcmpud",
	VPCMPUQ:          "vpcmpuq",
	VPERM2F128:       "vperm2f128",
	VPERM2I128:       "vperm2i128",
	VPERMD:           "vpermd",
	VPERMILPD:        "vpermilpd",
	VPERMILPS:        "vpermilps",
	VPERMPD:          "vpermpd",
	VPERMPS:          "vpermps",
	VPERMQ:           "vpermq",
	VPEXTRB:          "vpextrb",
	VPEXTRD:          "vpextrd",
	VPEXTRQ:          "vpextrq",
	VPEXTRW:          "vpextrw",
	VPHADDD:          "vphaddd",
	VPHADDSW:         "vphaddsw",
	VPHADDW:          "vphaddw",
	VPHMINPOSUW:      "vphminposuw",
	VPHSUBD:          "vphsubd",
	VPHSUBSW:         "vphsubsw",
	VPHSUBW:          "vphsubw",
	VPINSRB:          "vpinsrb",
	VPINSRD:          "vpinsrd",
	VPINSRQ:          "vpinsrq",
	VPINSRW:          "vpinsrw",
	VPMADDUBSW:       "vpmaddubsw",
	VPMADDWD:         "vpmaddwd",
	VPMAXSB:          "vpmaxsb",
	VPMAXSD:          "vpmaxsd",
	VPMAXSQ:          "vpmaxsq",
	VPMAXSW:          "vpmaxsw",
	VPMAXUB:          "vpmaxub",
	VPMAXUD:          "vpmaxud",
	VPMAXUQ:          "vpmaxuq",
	VPMAXUW:          "vpmaxuw",
	VPMINSB:          "vpminsb",
	VPMINSD:          "vpminsd",
	VPMINSQ:          "vpminsq",
	VPMINSW:          "vpminsw",
	VPMINUB:          "vpminub",
	VPMINUD:          "vpminud",
	VPMINUQ:          "vpminuq",
	VPMINUW:          "vpminuw",
	VPMOVMSKB:        "vpmovmskb",
	VPMOVSXBD:        "vpmovsxbd",
	VPMOVSXBQ:        "vpmovsxbq",
	VPMOVSXBW:        "vpmovsxbw",
	VPMOVSXDQ:        "vpmovsxdq",
	VPMOVSXWD:        "vpmovsxwd",
	VPMOVSXWQ:        "vpmovsxwq",
	VPMOVZXBD:        "vpmovzxbd",
	VPMOVZXBQ:        "vpmovzxbq",
	VPMOVZXBW:        "vpmovzxbw",
	VPMOVZXDQ:        "vpmovzxdq",
	VPMOVZXWD:        "vpmovzxwd",
	VPMOVZXWQ:        "vpmovzxwq",
	VPMULDQ:          "vpmuldq",
	VPMULHRSW:        "vpmulhrsw",
	VPMULHUW:         "vpmulhuw",
	VPMULHW:          "vpmulhw",
	VPMULLD:          "vpmulld",
	VPMULLQ:          "vpmullq",
	VPMULLW:          "vpmullw",
	VPMULUDQ:         "vpmuludq",
	VPOR:             "vpor",
	VPORD:            "vpord",
	VPORQ:            "vporq",
	VPSADBW:          "vpsadbw",
	VPSHUFB:          "vpshufb",
	VPSHUFD:          "vpshufd",
	VPSHUFHW:         "vpshufhw",
	VPSHUFLW:         "vpshuflw",
	VPSIGNB:          "vpsignb",
	VPSIGND:          "vpsignd",
	VPSIGNW:          "vpsignw",
	VPSLLD:           "vpslld",
	VPSLLDQ:          "vpslldq",
	VPSLLQ:           "vpsllq",
	VPSLLVD:          "vpsllvd",
	VPSLLVQ:          "vpsllvq",
	VPSLLW:           "vpsllw",
	VPSRAD:           "vpsrad",
	VPSRAQ:           "vpsraq",
	VPSRAVD:          "vpsravd",
	VPSRAVQ:          "vpsravq",
	VPSRAW:           "vpsraw",
	VPSRLD:           "vpsrld",
	VPSRLDQ:          "vpsrldq",
	VPSRLQ:           "vpsrlq",
	VPSRLVD:          "vpsrlvd",
	VPSRLVQ:          "vpsrlvq",
	VPSRLW:           "vpsrlw",
	VPSUBB:           "vpsubb",
	VPSUBD:           "vpsubd",
	VPSUBQ:           "vpsubq",
	VPSUBSB:          "vpsubsb",
	VPSUBSW:          "vpsubsw",
	VPSUBUSB:         "vpsubusb",
	VPSUBUSW:         "vpsubusw",
	VPSUBW:           "vpsubw",
	VPTERNLOGD:       "vpternlogd",
	VPTERNLOGQ:       "vpternlogq",
	VPTEST:           "vptest",
	VPUNPCKHBW:       "vpunpckhbw",
	VPUNPCKHDQ:       "vpunpckhdq",
	VPUNPCKHQDQ:      "vpunpckhqdq",
	VPUNPCKHWD:       "vpunpckhwd",
	VPUNPCKLBW:       "vpunpcklbw",
	VPUNPCKLDQ:       "vpunpckldq",
	VPUNPCKLQDQ:      "vpunpcklqdq",
	VPUNPCKLWD:       "vpunpcklwd",
	VPXOR:            "vpxor",
	VPXORD:           "vpxord",
	VPXORQ:           "vpxorq",
	VRCPPS:           "vrcpps",
	VRCPSS:           "vrcpss",
	VROUNDPD:         "vroundpd",
	VROUNDPS:         "vroundps",
	VROUNDSD:         "vroundsd",
	VROUNDSS:         "vroundss",
	VRSQRTPS:         "vrsqrtps",
	VRSQRTSS:         "vrsqrtss",
	VSHUFPD:          "vshufpd",
	VSHUFPS:          "vshufps",
	VSQRTPD:          "vsqrtpd",
	VSQRTPS:          "vsqrtps",
	VSQRTSD:          "vsqrtsd",
	VSQRTSS:          "vsqrtss",
	VSTMXCSR:         "vstmxcsr",
	VSUBPD:           "vsubpd",
	VSUBPS:           "vsubps",
	VSUBSD:           "vsubsd",
	VSUBSS:           "vsubss",
	VTESTPD:          "vtestpd",
	VTESTPS:          "vtestps",
	VUCOMISD:         "vucomisd",
	VUCOMISS:         "vucomiss",
	VUNPCKHPD:        "vunpckhpd",
	VUNPCKHPS:        "vunpckhps",
	VUNPCKLPD:        "vunpcklpd",
	VUNPCKLPS:        "vunpcklps",
	VXORPD:           "vxorpd",
	VXORPS:           "vxorps",
	VZEROALL:         "vzeroall",
	VZEROUPPER:       "vzeroupper",
	WBINVD:           "wbinvd",
	WRMSR:            "wrmsr",
	XADD:             "xadd",
	XCHG:             "xchg",
	XGETBV:           "xgetbv",
	XOR:              "xor",
	XORPD:            "xorpd",
	XORPS:            "xorps",
}

// mnemonicAliases maps alternate assembler names to their mnemonic.
var mnemonicAliases = map[string]Mnemonic{
	"jc":     JB,
	"jnae":   JB,
	"jnb":    JAE,
	"jnc":    JAE,
	"jz":     JE,
	"jnz":    JNE,
	"jna":    JBE,
	"jnbe":   JA,
	"jpe":    JP,
	"jpo":    JNP,
	"jnge":   JL,
	"jnl":    JGE,
	"jng":    JLE,
	"jnle":   JG,
	"setc":   SETB,
	"setnae": SETB,
	"setnb":  SETAE,
	"setnc":  SETAE,
	"setz":   SETE,
	"setnz":  SETNE,
	"setna":  SETBE,
	"setnbe": SETA,
	"setpe":  SETP,
	"setpo":  SETNP,
	"setnge": SETL,
	"setnl":  SETGE,
	"setng":  SETLE,
	"setnle": SETG,
	"cmovc":  CMOVB,
	"cmovnae":CMOVB,
	"cmovnb": CMOVAE,
	"cmovnc": CMOVAE,
	"cmovz":  CMOVE,
	"cmovnz": CMOVNE,
	"cmovna": CMOVBE,
	"cmovnbe":CMOVA,
	"cmovpe": CMOVP,
	"cmovpo": CMOVNP,
	"cmovnge":CMOVL,
	"cmovnl": CMOVGE,
	"cmovng": CMOVLE,
	"cmovnle":CMOVG,
	"sal":    SHL,
	"loopz":  LOOPE,
	"loopnz": LOOPNE,
	"wait":   FWAIT,
	"jcxz":   JECXZ,
	"pushf":  PUSHFQ,
	"popf":   POPFQ,
}

var mnemonicByName map[string]Mnemonic

func init() {
	mnemonicByName = make(map[string]Mnemonic, int(mnemonicCount)+len(mnemonicAliases))
	for m := ADC; m < mnemonicCount; m++ {
		mnemonicByName[mnemonicNames[m]] = m
	}
	for name, m := range mnemonicAliases {
		mnemonicByName[name] = m
	}
}

// IsValid returns true for a defined mnemonic.
func (m Mnemonic) IsValid() bool {
	return m > 0 && m < mnemonicCount
}

func (m Mnemonic) String() string {
	if !m.IsValid() {
		return "(bad)"
	}
	return mnemonicNames[m]
}

// Lookup resolves a mnemonic name or alias, case insensitive.
func Lookup(name string) (m Mnemonic, err error) {
	m, ok := mnemonicByName[strings.ToLower(name)]
	if !ok {
		err = ErrMnemonic(name)
	}
	return
}
