// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package x86

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// SlotKind is the operand kind accepted by a signature slot.
type SlotKind uint8

//go:generate go tool stringer -linecomment -type=SlotKind
const (
	SLOT_REG   = SlotKind(1) // reg
	SLOT_RM    = SlotKind(2) // r/m
	SLOT_MEM   = SlotKind(3) // m
	SLOT_IMM   = SlotKind(4) // imm
	SLOT_REL   = SlotKind(5) // rel
	SLOT_FIXED = SlotKind(6) // fixed
	SLOT_ONE   = SlotKind(7) // 1
)

// Extension is how an immediate is widened into its destination. A raw
// imm field is used as is, simm is sign extended to the operand size and
// uimm is zero extended.
type Extension uint8

//go:generate go tool stringer -linecomment -type=Extension
const (
	EXT_RAW  = Extension(0) // imm
	EXT_SIGN = Extension(1) // simm
	EXT_ZERO = Extension(2) // uimm
)

// Place is where an operand is encoded, named by its letter in the
// operand encoding column:
//
//	A  implicit
//	R  ModRM.reg
//	M  ModRM.rm
//	V  VEX/EVEX.vvvv
//	O  low bits of the last opcode byte
//	I  immediate field
//	D  relative code offset
//	L  immediate bits 7:4
type Place uint8

//go:generate go tool stringer -linecomment -type=Place
const (
	PLACE_NONE   = Place(0) // A
	PLACE_REG    = Place(1) // R
	PLACE_RM     = Place(2) // M
	PLACE_VVVV   = Place(3) // V
	PLACE_OPCODE = Place(4) // O
	PLACE_IMM    = Place(5) // I
	PLACE_REL    = Place(6) // D
	PLACE_IS4    = Place(7) // L
)

var placeLetters = map[rune]Place{
	'A': PLACE_NONE,
	'R': PLACE_REG,
	'M': PLACE_RM,
	'V': PLACE_VVVV,
	'O': PLACE_OPCODE,
	'I': PLACE_IMM,
	'D': PLACE_REL,
	'L': PLACE_IS4,
}

// Slot is one operand position of a signature.
type Slot struct {
	Kind     SlotKind
	Family   Family    // Register family for SLOT_REG and SLOT_RM.
	MemWidth int       // Memory width for SLOT_RM and SLOT_MEM, zero for any.
	Width    int       // Field width for SLOT_IMM and SLOT_REL.
	Ext      Extension // Immediate extension policy.
	Fixed    Register  // The register of a SLOT_FIXED.
	Place    Place
	Bcst     int  // Broadcast element width, zero if not broadcastable.
	Mask     bool // {k} write masking allowed.
	Zero     bool // {z} zeroing allowed.
	Round    bool // {er} embedded rounding allowed.
	Sae      bool // {sae} exception suppression allowed.
}

// EncKind is the prefix scheme of an encoding.
type EncKind uint8

//go:generate go tool stringer -linecomment -type=EncKind
const (
	ENC_LEGACY = EncKind(0) // legacy
	ENC_VEX    = EncKind(1) // vex
	ENC_EVEX   = EncKind(2) // evex
)

// OpMap is the opcode map selected by escape bytes or VEX/EVEX.mmmmm.
type OpMap uint8

//go:generate go tool stringer -linecomment -type=OpMap
const (
	MAP_NONE = OpMap(0) // none
	MAP_0F   = OpMap(1) // 0F
	MAP_0F38 = OpMap(2) // 0F 38
	MAP_0F3A = OpMap(3) // 0F 3A
)

// Encoding is the byte template of a signature.
type Encoding struct {
	Kind      EncKind
	Prefix    byte // Mandatory prefix: 0, 0x66, 0xf2 or 0xf3.
	OpSize16  bool // Force the 0x66 operand size prefix.
	AddrSize  bool // Force the 0x67 address size prefix.
	Map       OpMap
	Opcode    [3]byte
	OpcodeLen int
	Digit     int8 // ModRM.reg opcode extension, or -1.
	ModRM     bool
	PlusR     bool // Register number added to the last opcode byte.
	RexW      bool // Legacy REX.W.
	W         int8 // VEX/EVEX.W: 0, 1 or -1 when ignored.
	L         int  // Vector length in bits; zero when ignored.
	Imms      int  // Count of immediate fields.
	Is4       bool // Register in immediate bits 7:4.
	Rel       int  // Relative code offset width in bits.
}

// Flag holds signature attributes and the EVEX tuple type.
type Flag uint32

const (
	FLAG_LOCK      = Flag(1 << 0) // LOCK allowed with a memory destination.
	FLAG_REP       = Flag(1 << 1) // REP/REPE allowed.
	FLAG_REPNE     = Flag(1 << 2) // REPNE allowed.
	FLAG_ONLY64    = Flag(1 << 3) // Valid in 64-bit mode only.
	FLAG_ONLY32    = Flag(1 << 4) // Invalid in 64-bit mode.
	FLAG_DEFAULT   = Flag(1 << 5) // Default form for unsized memory.
	FLAG_NO_OPSIZE = Flag(1 << 6) // No 0x66 for 16-bit operands.
	FLAG_NOT_R0_64 = Flag(1 << 7) // Register zero means NOP in 64-bit mode.

	tupleShift = 16
	tupleMask  = Flag(0xff) << tupleShift
)

// Tuple is the EVEX tuple type, selecting the disp8*N scale.
type Tuple uint8

//go:generate go tool stringer -linecomment -type=Tuple
const (
	TUPLE_NONE = Tuple(0)  // none
	TUPLE_FV   = Tuple(1)  // full vector
	TUPLE_FVM  = Tuple(2)  // full vector memory
	TUPLE_HV   = Tuple(3)  // half vector
	TUPLE_HVM  = Tuple(4)  // half vector memory
	TUPLE_QVM  = Tuple(5)  // quarter vector memory
	TUPLE_OVM  = Tuple(6)  // eighth vector memory
	TUPLE_T1S  = Tuple(7)  // tuple1 scalar
	TUPLE_T1F  = Tuple(8)  // tuple1 fixed
	TUPLE_T2   = Tuple(9)  // tuple2
	TUPLE_T4   = Tuple(10) // tuple4
	TUPLE_T8   = Tuple(11) // tuple8
	TUPLE_M128 = Tuple(12) // mem128
	TUPLE_DUP  = Tuple(13) // movddup
)

// Tuple flags for database rows.
const (
	T_FV   = Flag(TUPLE_FV) << tupleShift
	T_FVM  = Flag(TUPLE_FVM) << tupleShift
	T_HV   = Flag(TUPLE_HV) << tupleShift
	T_HVM  = Flag(TUPLE_HVM) << tupleShift
	T_QVM  = Flag(TUPLE_QVM) << tupleShift
	T_OVM  = Flag(TUPLE_OVM) << tupleShift
	T_T1S  = Flag(TUPLE_T1S) << tupleShift
	T_T1F  = Flag(TUPLE_T1F) << tupleShift
	T_T2   = Flag(TUPLE_T2) << tupleShift
	T_T4   = Flag(TUPLE_T4) << tupleShift
	T_T8   = Flag(TUPLE_T8) << tupleShift
	T_M128 = Flag(TUPLE_M128) << tupleShift
	T_DUP  = Flag(TUPLE_DUP) << tupleShift
)

// Tuple extracts the tuple type.
func (fl Flag) Tuple() Tuple {
	return Tuple((fl & tupleMask) >> tupleShift)
}

// Signature is one legal operand pattern of a mnemonic and its encoding.
type Signature struct {
	Mnemonic Mnemonic
	Slots    []Slot
	Encoding Encoding
	Flags    Flag
	OpSize   int // Operand size attribute of legacy general purpose forms.
	Order    int // Position in the database.

	syntax   string
	template string
}

func (sig *Signature) String() string {
	if len(sig.syntax) == 0 {
		return fmt.Sprintf("%v ; %v", sig.Mnemonic, sig.template)
	}
	return fmt.Sprintf("%v %v ; %v", sig.Mnemonic, sig.syntax, sig.template)
}

// IsEvex returns true for EVEX encoded signatures.
func (sig *Signature) IsEvex() bool {
	return sig.Encoding.Kind == ENC_EVEX
}

// relSlot returns the index of the relative branch slot, or -1.
func (sig *Signature) relSlot() int {
	for n := range sig.Slots {
		if sig.Slots[n].Kind == SLOT_REL {
			return n
		}
	}
	return -1
}

// row is one database line in Intel SDM notation.
type row struct {
	mnemonic Mnemonic
	operands string
	openc    string
	encoding string
	flags    Flag
}

var (
	reDecoration = regexp.MustCompile(`\{[a-z0-9]+\}`)
	reVectorName = regexp.MustCompile(`^(xmm|ymm|zmm|k|mm|bnd|tmm)[0-9]*$`)
	reGpName     = regexp.MustCompile(`^r(8|16|32|64)[ab]?$`)
	reHexByte    = regexp.MustCompile(`^[0-9A-F]{2}$`)
	reOpcodeReg  = regexp.MustCompile(`^([0-9A-F]{2})\+(rb|rw|rd|ro|i)$`)
)

var fixedSlots = map[string]Register{
	"al":     AL,
	"ax":     AX,
	"eax":    EAX,
	"rax":    RAX,
	"cl":     CL,
	"dx":     DX,
	"<xmm0>": XMM0,
	"st(0)":  ST0,
	"fs":     FS,
	"gs":     GS,
}

var classFamilies = map[string]Family{
	"r8":    FAMILY_GP8,
	"r16":   FAMILY_GP16,
	"r32":   FAMILY_GP32,
	"r64":   FAMILY_GP64,
	"xmm":   FAMILY_XMM,
	"ymm":   FAMILY_YMM,
	"zmm":   FAMILY_ZMM,
	"k":     FAMILY_MASK,
	"mm":    FAMILY_MMX,
	"bnd":   FAMILY_BND,
	"tmm":   FAMILY_TMM,
	"sreg":  FAMILY_SEGMENT,
	"cr":    FAMILY_CONTROL,
	"dr":    FAMILY_DEBUG,
	"st(i)": FAMILY_ST,
}

var memoryWidths = map[string]int{
	"m":        0,
	"mem":      0,
	"m8":       8,
	"m16":      16,
	"m32":      32,
	"m64":      64,
	"m80":      80,
	"m128":     128,
	"m256":     256,
	"m512":     512,
	"m16int":   16,
	"m32int":   32,
	"m64int":   64,
	"m32fp":    32,
	"m64fp":    64,
	"m80fp":    80,
	"m2byte":   16,
	"m512byte": 0,
}

// className normalises an SDM register class name ("xmm2", "r32a").
func className(word string) string {
	if m := reVectorName.FindStringSubmatch(word); m != nil {
		return m[1]
	}
	if m := reGpName.FindStringSubmatch(word); m != nil {
		return "r" + m[1]
	}
	return word
}

// parseSlot parses one SDM operand description.
func parseSlot(text string) (slot Slot, err error) {
	for _, deco := range reDecoration.FindAllString(text, -1) {
		switch deco {
		case "{z}":
			slot.Zero = true
		case "{er}":
			slot.Round = true
			slot.Sae = true
		case "{sae}":
			slot.Sae = true
		default:
			if strings.HasPrefix(deco, "{k") {
				slot.Mask = true
				continue
			}
			err = fmt.Errorf("decoration %v", deco)
			return
		}
	}
	word := strings.ToLower(strings.TrimSpace(reDecoration.ReplaceAllString(text, "")))

	if word == "1" {
		slot.Kind = SLOT_ONE
		return
	}
	if reg, ok := fixedSlots[word]; ok {
		slot.Kind = SLOT_FIXED
		slot.Fixed = reg
		slot.Family = reg.Family
		return
	}

	if rest, ok := strings.CutPrefix(word, "r/m"); ok {
		var width int
		width, err = strconv.Atoi(rest)
		if err != nil {
			return
		}
		slot.Kind = SLOT_RM
		slot.Family = map[int]Family{8: FAMILY_GP8, 16: FAMILY_GP16, 32: FAMILY_GP32, 64: FAMILY_GP64}[width]
		slot.MemWidth = width
		if slot.Family == FAMILY_NONE {
			err = fmt.Errorf("operand %v", word)
		}
		return
	}

	parts := strings.Split(word, "/")
	head := className(parts[0])

	switch {
	case strings.HasPrefix(head, "imm"), strings.HasPrefix(head, "simm"), strings.HasPrefix(head, "uimm"):
		slot.Kind = SLOT_IMM
		switch {
		case head[0] == 's':
			slot.Ext = EXT_SIGN
			head = head[1:]
		case head[0] == 'u':
			slot.Ext = EXT_ZERO
			head = head[1:]
		}
		slot.Width, err = strconv.Atoi(head[3:])
		return
	case strings.HasPrefix(head, "rel"):
		slot.Kind = SLOT_REL
		slot.Width, err = strconv.Atoi(head[3:])
		return
	}

	if width, ok := memoryWidths[head]; ok {
		slot.Kind = SLOT_MEM
		slot.MemWidth = width
		parts = parts[1:]
	} else if fam, ok := classFamilies[head]; ok {
		slot.Kind = SLOT_REG
		slot.Family = fam
		parts = parts[1:]
		if len(parts) > 0 {
			width, ok := memoryWidths[parts[0]]
			if !ok {
				err = fmt.Errorf("operand %v", word)
				return
			}
			slot.Kind = SLOT_RM
			slot.MemWidth = width
			parts = parts[1:]
		}
	} else {
		err = fmt.Errorf("operand %v", word)
		return
	}

	for _, part := range parts {
		bcst, ok := strings.CutSuffix(part, "bcst")
		if !ok || len(bcst) < 2 || bcst[0] != 'm' {
			err = fmt.Errorf("operand %v", word)
			return
		}
		slot.Bcst, err = strconv.Atoi(bcst[1:])
		if err != nil {
			return
		}
	}

	return
}

// parseEncoding parses an SDM opcode column, legacy, VEX or EVEX.
func parseEncoding(text string) (enc Encoding, err error) {
	enc.Digit = -1
	enc.W = -1

	words := strings.Fields(text)
	if len(words) == 0 {
		err = fmt.Errorf("empty encoding")
		return
	}

	if strings.HasPrefix(words[0], "VEX.") || strings.HasPrefix(words[0], "EVEX.") {
		err = enc.parseVex(words[0])
		if err != nil {
			return
		}
		words = words[1:]
		if len(words) == 0 || !reHexByte.MatchString(words[0]) {
			err = fmt.Errorf("missing opcode")
			return
		}
		op, _ := strconv.ParseUint(words[0], 16, 8)
		enc.Opcode[0] = byte(op)
		enc.OpcodeLen = 1
		words = words[1:]
	} else {
		words, err = enc.parseLegacy(words)
		if err != nil {
			return
		}
	}

	for _, word := range words {
		switch word {
		case "/r":
			enc.ModRM = true
		case "/0", "/1", "/2", "/3", "/4", "/5", "/6", "/7":
			enc.ModRM = true
			enc.Digit = int8(word[1] - '0')
		case "ib", "iw", "id", "io":
			enc.Imms++
		case "cb":
			enc.Rel = 8
		case "cw":
			enc.Rel = 16
		case "cd":
			enc.Rel = 32
		case "/is4":
			enc.Is4 = true
		default:
			err = fmt.Errorf("encoding token %v", word)
			return
		}
	}

	return
}

func (enc *Encoding) parseVex(field string) (err error) {
	for n, part := range strings.Split(field, ".") {
		if n == 0 {
			if part == "VEX" {
				enc.Kind = ENC_VEX
			} else {
				enc.Kind = ENC_EVEX
			}
			continue
		}
		switch part {
		case "128", "L0", "LZ":
			enc.L = 128
		case "256", "L1":
			enc.L = 256
		case "512":
			enc.L = 512
		case "LIG":
			enc.L = 0
		case "66":
			enc.Prefix = 0x66
		case "F2":
			enc.Prefix = 0xf2
		case "F3":
			enc.Prefix = 0xf3
		case "NP":
		case "0F":
			enc.Map = MAP_0F
		case "0F38":
			enc.Map = MAP_0F38
		case "0F3A":
			enc.Map = MAP_0F3A
		case "W0":
			enc.W = 0
		case "W1":
			enc.W = 1
		case "WIG":
			enc.W = -1
		default:
			err = fmt.Errorf("vex field %v", part)
			return
		}
	}
	if enc.Map == MAP_NONE {
		err = fmt.Errorf("vex map missing")
	}
	return
}

func (enc *Encoding) parseLegacy(words []string) (rest []string, err error) {
	var prefixes []byte

	n := 0
prefixes:
	for ; n < len(words); n++ {
		switch words[n] {
		case "NP", "+":
		case "REX.W":
			enc.RexW = true
		case "66", "F2", "F3":
			b, _ := strconv.ParseUint(words[n], 16, 8)
			prefixes = append(prefixes, byte(b))
		case "67":
			enc.AddrSize = true
		default:
			break prefixes
		}
	}

	switch len(prefixes) {
	case 0:
	case 1:
		enc.Prefix = prefixes[0]
	case 2:
		if prefixes[0] != 0x66 {
			err = fmt.Errorf("prefixes %x", prefixes)
			return
		}
		enc.OpSize16 = true
		enc.Prefix = prefixes[1]
	default:
		err = fmt.Errorf("prefixes %x", prefixes)
		return
	}

	for ; n < len(words); n++ {
		word := words[n]
		if word == "+" || word == "REX.W" {
			if word == "REX.W" {
				enc.RexW = true
			}
			continue
		}
		var op uint64
		if m := reOpcodeReg.FindStringSubmatch(word); m != nil {
			op, _ = strconv.ParseUint(m[1], 16, 8)
			enc.PlusR = true
		} else if reHexByte.MatchString(word) {
			op, _ = strconv.ParseUint(word, 16, 8)
		} else {
			break
		}

		switch {
		case enc.OpcodeLen == 0 && enc.Map == MAP_NONE && op == 0x0f:
			enc.Map = MAP_0F
		case enc.OpcodeLen == 0 && enc.Map == MAP_0F && op == 0x38:
			enc.Map = MAP_0F38
		case enc.OpcodeLen == 0 && enc.Map == MAP_0F && op == 0x3a:
			enc.Map = MAP_0F3A
		default:
			if enc.OpcodeLen == len(enc.Opcode) {
				err = fmt.Errorf("opcode too long")
				return
			}
			enc.Opcode[enc.OpcodeLen] = byte(op)
			enc.OpcodeLen++
		}
		if enc.PlusR {
			n++
			break
		}
	}

	if enc.OpcodeLen == 0 {
		err = fmt.Errorf("missing opcode")
		return
	}

	rest = words[n:]
	return
}

// newSignature parses and validates a database row.
func newSignature(r row, order int) (sig *Signature, err error) {
	sig = &Signature{
		Mnemonic: r.mnemonic,
		Flags:    r.flags,
		Order:    order,
		syntax:   r.operands,
		template: r.encoding,
	}

	defer func() {
		if err != nil {
			err = &ErrTable{Row: fmt.Sprintf("%v %v", r.mnemonic, r.operands), Err: err.Error()}
			sig = nil
		}
	}()

	sig.Encoding, err = parseEncoding(r.encoding)
	if err != nil {
		return
	}

	if len(strings.TrimSpace(r.operands)) != 0 {
		for _, text := range strings.Split(r.operands, ",") {
			var slot Slot
			slot, err = parseSlot(text)
			if err != nil {
				return
			}
			sig.Slots = append(sig.Slots, slot)
		}
	}

	if len(r.openc) != len(sig.Slots) {
		err = fmt.Errorf("operand encoding %q for %d operands", r.openc, len(sig.Slots))
		return
	}
	if len(sig.Slots) > MaxOperands {
		err = ErrTooManyOperands
		return
	}

	var imms, places [8]int
	for n, letter := range r.openc {
		place, ok := placeLetters[letter]
		if !ok {
			err = fmt.Errorf("operand encoding letter %q", letter)
			return
		}
		slot := &sig.Slots[n]
		slot.Place = place
		places[place]++
		switch slot.Kind {
		case SLOT_IMM:
			if place != PLACE_IMM {
				err = fmt.Errorf("immediate operand %d placed as %q", n, letter)
				return
			}
			imms[0]++
		case SLOT_REL:
			if place != PLACE_REL {
				err = fmt.Errorf("relative operand %d placed as %q", n, letter)
				return
			}
		case SLOT_FIXED, SLOT_ONE:
			if place != PLACE_NONE && place != PLACE_OPCODE {
				err = fmt.Errorf("fixed operand %d placed as %q", n, letter)
				return
			}
		case SLOT_MEM, SLOT_RM:
			if place != PLACE_RM {
				err = fmt.Errorf("memory operand %d placed as %q", n, letter)
				return
			}
		default:
			if place == PLACE_IMM || place == PLACE_REL || place == PLACE_NONE {
				err = fmt.Errorf("register operand %d placed as %q", n, letter)
				return
			}
		}
	}

	enc := &sig.Encoding
	switch {
	case imms[0] != enc.Imms:
		err = fmt.Errorf("%d immediate operands, %d immediate fields", imms[0], enc.Imms)
	case (places[PLACE_REL] != 0) != (enc.Rel != 0):
		err = fmt.Errorf("relative operand without code offset")
	case (places[PLACE_OPCODE] != 0) != enc.PlusR:
		err = fmt.Errorf("opcode register without +r")
	case (places[PLACE_IS4] != 0) != enc.Is4:
		err = fmt.Errorf("is4 operand without /is4")
	case (places[PLACE_REG] != 0 || places[PLACE_RM] != 0) && !enc.ModRM:
		err = fmt.Errorf("ModRM operand without /r")
	case places[PLACE_REG] != 0 && enc.Digit >= 0:
		err = fmt.Errorf("ModRM.reg operand with /digit")
	case places[PLACE_VVVV] != 0 && enc.Kind == ENC_LEGACY:
		err = fmt.Errorf("vvvv operand in legacy encoding")
	case places[PLACE_REG] > 1, places[PLACE_RM] > 1, places[PLACE_VVVV] > 1, places[PLACE_OPCODE] > 1:
		err = fmt.Errorf("duplicate operand placement")
	}
	if err != nil {
		return
	}

	if enc.Kind == ENC_LEGACY {
		sig.OpSize = operandSize(sig.Slots)
	}

	return
}

// operandSize derives the operand size attribute from the first general
// purpose register (or register-or-memory) slot.
func operandSize(slots []Slot) int {
	for _, slot := range slots {
		switch slot.Kind {
		case SLOT_REG, SLOT_RM, SLOT_FIXED:
			if slot.Family.IsGeneral() {
				return slot.Family.Width()
			}
		}
	}
	return 0
}

// needsOpSize16 returns true if the legacy form needs the 0x66 prefix.
func (sig *Signature) needsOpSize16() bool {
	if sig.Encoding.Kind != ENC_LEGACY {
		return false
	}
	if sig.Encoding.OpSize16 {
		return true
	}
	return sig.OpSize == 16 && sig.Flags&FLAG_NO_OPSIZE == 0 && !sig.Encoding.RexW
}
