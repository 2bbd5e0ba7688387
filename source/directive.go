package source

import (
	"encoding/binary"
	"strconv"

	"github.com/ezrec/jitasm/asm"
	"github.com/ezrec/jitasm/x86"
)

// dataWidth maps data directives to their width in bits.
var dataWidth = map[string]int{
	".byte":  8,
	".word":  16,
	".dword": 32,
	".long":  32,
	".qword": 64,
	".quad":  64,
}

// maxCount bounds the byte count of .fill and .align.
const maxCount = 1 << 24

// fitsWidth returns true if a value can be stored in width bits, signed
// or unsigned.
func fitsWidth(value int64, width int) bool {
	if width >= 64 {
		return true
	}
	limit := int64(1) << width
	return value >= -limit/2 && value < limit
}

func appendLE(data []byte, width int, value uint64) []byte {
	switch width {
	case 8:
		return append(data, byte(value))
	case 16:
		return binary.LittleEndian.AppendUint16(data, uint16(value))
	case 32:
		return binary.LittleEndian.AppendUint32(data, uint32(value))
	}
	return binary.LittleEndian.AppendUint64(data, value)
}

// directive handles the assembler directives.
func (p *Parser) directive(name, rest string) (err error) {
	var args []string
	if len(rest) != 0 {
		args = splitOperands(rest)
	}

	if width, ok := dataWidth[name]; ok {
		err = p.data(width, args)
		return
	}

	switch name {
	case ".ascii", ".asciz":
		if len(args) == 0 {
			err = ErrDirectiveSyntax
			return
		}
		var data []byte
		for _, arg := range args {
			var str string
			str, err = strconv.Unquote(arg)
			if err != nil {
				err = ErrDirectiveSyntax
				return
			}
			data = append(data, str...)
			if name == ".asciz" {
				data = append(data, 0)
			}
		}
		p.record(p.prog.Data(data))
	case ".fill":
		var count, value int64
		count, value, err = p.countValue(args, 0)
		if err != nil {
			return
		}
		data := make([]byte, count)
		for n := range data {
			data[n] = byte(value)
		}
		p.record(p.prog.Data(data))
	case ".align":
		var align, fill int64
		align, fill, err = p.countValue(args, int64(asm.FILL_NOP))
		if err != nil {
			return
		}
		var id asm.NodeID
		id, err = p.prog.Align(int(align), asm.Fill(fill))
		p.record(id)
	case ".section":
		if len(args) < 1 || len(args) > 2 {
			err = ErrDirectiveSyntax
			return
		}
		align := int64(16)
		if len(args) == 2 {
			align, err = valueOf(args[1])
			if err != nil {
				return
			}
		}
		var id asm.NodeID
		id, err = p.prog.Section(args[0], int(align))
		p.record(id)
	case ".extern":
		if len(args) == 0 {
			err = ErrDirectiveSyntax
			return
		}
		for _, sym := range args {
			if !reName.MatchString(sym) {
				err = ErrParseOperand(sym)
				return
			}
			if _, ok := p.Label[sym]; ok {
				err = ErrLabelDuplicate
				return
			}
			p.Symbol[sym] = p.prog.NewSymbol(sym)
		}
	default:
		err = ErrDirectiveInvalid
	}

	return
}

// countValue parses 'count [, value]' arguments.
func (p *Parser) countValue(args []string, fill int64) (count, value int64, err error) {
	value = fill
	if len(args) < 1 || len(args) > 2 {
		err = ErrDirectiveSyntax
		return
	}
	count, err = valueOf(args[0])
	if err != nil {
		return
	}
	if count < 0 || count > maxCount {
		err = ErrDirectiveSyntax
		return
	}
	if len(args) == 2 {
		value, err = valueOf(args[1])
		if err != nil {
			return
		}
		if value < 0 || value > 0xff {
			err = ErrDirectiveSyntax
			return
		}
	}
	return
}

// data emits integer data, and label or symbol addresses for the 32 and
// 64 bit widths.
func (p *Parser) data(width int, args []string) (err error) {
	if len(args) == 0 {
		err = ErrDirectiveSyntax
		return
	}

	var data []byte
	flush := func() {
		if len(data) != 0 {
			p.record(p.prog.Data(data))
			data = nil
		}
	}

	for _, arg := range args {
		value, verr := valueOf(arg)
		if verr == nil {
			if !fitsWidth(value, width) {
				err = ErrParseNumber(arg)
				return
			}
			data = appendLE(data, width, uint64(value))
			continue
		}

		if width < 32 {
			err = ErrParseNumber(arg)
			return
		}

		var ptr x86.Pointer
		ptr, err = p.pointer(arg)
		if err != nil {
			return
		}
		flush()
		var id asm.NodeID
		id, err = p.prog.Pointer(ptr, width)
		if err != nil {
			return
		}
		p.record(id)
	}
	flush()

	return
}
