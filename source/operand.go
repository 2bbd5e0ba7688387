// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package source

import (
	"regexp"
	"strings"

	"github.com/ezrec/jitasm/x86"
)

// prefixMap maps instruction prefix names.
var prefixMap = map[string]x86.Prefix{
	"lock":  x86.PREFIX_LOCK,
	"rep":   x86.PREFIX_REP,
	"repe":  x86.PREFIX_REPE,
	"repz":  x86.PREFIX_REPE,
	"repne": x86.PREFIX_REPNE,
	"repnz": x86.PREFIX_REPNE,
}

// sizeMap maps memory operand size names to bits.
var sizeMap = map[string]int{
	"byte":    8,
	"word":    16,
	"dword":   32,
	"qword":   64,
	"tword":   80,
	"xmmword": 128,
	"ymmword": 256,
	"zmmword": 512,
}

// roundingMap maps EVEX rounding decorations.
var roundingMap = map[string]x86.Rounding{
	"rn-sae": x86.ROUND_RN,
	"rd-sae": x86.ROUND_RD,
	"ru-sae": x86.ROUND_RU,
	"rz-sae": x86.ROUND_RZ,
	"sae":    x86.ROUND_SAE,
}

var (
	reDecoration = regexp.MustCompile(`\{([^{}]*)\}\s*$`)
	reBroadcast  = regexp.MustCompile(`^1to(2|4|8|16|32)$`)
)

// target returns the label or symbol of a name.
func (p *Parser) target(name string) (op x86.Operand, err error) {
	if !reName.MatchString(name) {
		err = ErrParseOperand(name)
		return
	}
	if sym, ok := p.Symbol[name]; ok {
		op = sym
		return
	}
	op = p.label(name)
	return
}

// decorate strips the trailing {...} decorations of an operand and applies
// them to the instruction.
func (p *Parser) decorate(text string, inst *x86.Instruction) (rest string, err error) {
	first := len(inst.Operands) == 0
	for {
		match := reDecoration.FindStringSubmatchIndex(text)
		if match == nil {
			break
		}
		dec := strings.ToLower(strings.TrimSpace(text[match[2]:match[3]]))
		text = strings.TrimSpace(text[:match[0]])
		memory := strings.HasSuffix(text, "]")

		rounding, isRounding := roundingMap[dec]
		reg, isReg := x86.RegisterByName(dec)
		switch {
		case isRounding && len(text) == 0:
			inst.Rounding = rounding
		case dec == "z" && first:
			inst.Zeroing = true
		case isReg && reg.Family == x86.FAMILY_MASK && first:
			inst.Mask = reg
		case reBroadcast.MatchString(dec) && memory:
			inst.Broadcast = true
		default:
			err = ErrDecoration
			return
		}
	}
	rest = text
	return
}

// memory parses a memory reference:
//
//	[size ptr] [seg:] '[' term {(+|-) term} ']'
//
// where a term is a register, register*scale, a number or a label.
func (p *Parser) memory(text string) (mem x86.Memory, err error) {
	open := strings.Index(text, "[")
	if open < 0 || !strings.HasSuffix(text, "]") {
		err = ErrMemorySyntax
		return
	}

	head := strings.Fields(strings.ToLower(text[:open]))
	if n := len(head); n > 0 && strings.HasSuffix(head[n-1], ":") {
		segment := strings.TrimSuffix(head[n-1], ":")
		mem.Segment, err = p.register(segment)
		if err != nil {
			return
		}
		head = head[:n-1]
	}
	switch len(head) {
	case 0:
	case 2:
		if head[1] != "ptr" {
			err = ErrMemorySyntax
			return
		}
		fallthrough
	case 1:
		size, ok := sizeMap[head[0]]
		if !ok {
			err = ErrMemorySyntax
			return
		}
		mem.Size = size
	default:
		err = ErrMemorySyntax
		return
	}

	inner := text[open+1 : len(text)-1]
	if segment, rest, ok := strings.Cut(inner, ":"); ok {
		mem.Segment, err = p.register(strings.TrimSpace(segment))
		if err != nil {
			return
		}
		inner = rest
	}

	inner = strings.ReplaceAll(inner, "-", "+-")
	for _, term := range strings.Split(inner, "+") {
		term = strings.TrimSpace(term)
		if len(term) == 0 {
			continue
		}
		negative := strings.HasPrefix(term, "-")
		if negative {
			term = strings.TrimSpace(term[1:])
		}

		if left, right, ok := strings.Cut(term, "*"); ok {
			left, right = strings.TrimSpace(left), strings.TrimSpace(right)
			reg, isReg := x86.RegisterByName(left)
			scale := right
			if !isReg {
				reg, isReg = x86.RegisterByName(right)
				scale = left
			}
			var value int64
			value, err = valueOf(scale)
			if !isReg || err != nil || negative || mem.Index.IsValid() || value < 1 || value > 8 {
				err = ErrMemorySyntax
				return
			}
			mem.Index = reg
			mem.Scale = uint8(value)
			continue
		}

		if reg, ok := x86.RegisterByName(term); ok {
			switch {
			case negative:
				err = ErrMemorySyntax
				return
			case !mem.Base.IsValid():
				mem.Base = reg
			case !mem.Index.IsValid():
				mem.Index = reg
				mem.Scale = 1
			default:
				err = ErrMemorySyntax
				return
			}
			continue
		}

		if value, verr := valueOf(term); verr == nil {
			if negative {
				value = -value
			}
			mem.Disp += value
			continue
		}

		if negative || mem.Label != 0 || mem.Symbol != 0 {
			err = ErrMemorySyntax
			return
		}
		var op x86.Operand
		op, err = p.target(term)
		if err != nil {
			return
		}
		switch op := op.(type) {
		case x86.Label:
			mem.Label = op
		case x86.Symbol:
			mem.Symbol = op
		}
	}

	// [label + rip] names the RIP-relative form explicitly.
	if mem.Base == x86.RIP && !mem.Index.IsValid() && (mem.Label != 0 || mem.Symbol != 0) {
		mem.Base = x86.Register{}
	}

	return
}

// register looks up a register by name.
func (p *Parser) register(name string) (reg x86.Register, err error) {
	reg, ok := x86.RegisterByName(name)
	if !ok {
		err = ErrParseOperand(name)
	}
	return
}

// pointer parses 'offset name[+addend]'.
func (p *Parser) pointer(text string) (ptr x86.Pointer, err error) {
	name := text
	var addend int64
	if n := strings.IndexAny(text, "+-"); n > 0 {
		name = strings.TrimSpace(text[:n])
		addend, err = valueOf(strings.ReplaceAll(text[n:], " ", ""))
		if err != nil {
			return
		}
	}

	op, err := p.target(name)
	if err != nil {
		return
	}
	switch op := op.(type) {
	case x86.Label:
		ptr.Label = op
	case x86.Symbol:
		ptr.Symbol = op
	}
	ptr.Addend = addend
	return
}

// operand parses one instruction operand. Decorations are applied to the
// instruction; a lone rounding decoration yields no operand.
func (p *Parser) operand(text string, inst *x86.Instruction) (op x86.Operand, err error) {
	text, err = p.decorate(text, inst)
	if err != nil || len(text) == 0 {
		return
	}

	lower := strings.ToLower(text)
	switch {
	case strings.Contains(text, "["):
		op, err = p.memory(text)
		return
	case strings.HasPrefix(lower, "offset "):
		op, err = p.pointer(strings.TrimSpace(text[len("offset "):]))
		return
	}

	if reg, ok := x86.RegisterByName(text); ok {
		op = reg
		return
	}

	if value, verr := valueOf(text); verr == nil {
		op = x86.Imm(value)
		return
	}

	op, err = p.target(text)
	return
}

// instruction parses '[prefix...] mnemonic [operand {, operand}]'.
func (p *Parser) instruction(line string) (err error) {
	inst := &x86.Instruction{}

	word, rest := cutWord(line)
	for {
		prefix, ok := prefixMap[strings.ToLower(word)]
		if !ok {
			break
		}
		inst.Prefix |= prefix
		word, rest = cutWord(rest)
	}
	if len(word) == 0 {
		err = ErrMnemonicMissing
		return
	}

	inst.Mnemonic, err = x86.Lookup(word)
	if err != nil {
		return
	}

	if len(rest) != 0 {
		for _, text := range splitOperands(rest) {
			if len(text) == 0 {
				err = ErrOperandSyntax
				return
			}
			var op x86.Operand
			op, err = p.operand(text, inst)
			if err != nil {
				return
			}
			if op != nil {
				inst.Operands = append(inst.Operands, op)
			}
		}
	}

	id, err := p.prog.EmitInstruction(inst)
	if err != nil {
		return
	}
	p.record(id)
	return
}
