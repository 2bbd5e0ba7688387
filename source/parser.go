// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package source

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/jitasm/asm"
	"github.com/ezrec/jitasm/x86"
)

// Macro represents a macro definition in the assembly language.
type Macro struct {
	LineNo int      // Line number of the macro definition.
	Args   []string // Arguments for the macro.
	Lines  []string // Lines of macro text to expand.
}

// Line is a line of source text.
type Line struct {
	LineNo int
	Text   string
}

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
}

// maxMacroDepth limits nested macro expansion.
const maxMacroDepth = 32

// Parser is a single pass macro assembler for Intel syntax x86 source.
// It builds an asm.Program; addresses are assigned when the program is
// finalized.
type Parser struct {
	Verbose bool     // If set, verbosely logs the parsed lines.
	Mode    x86.Mode // Processor mode, MODE_64 if zero.

	predefine map[string]string
	Equate    map[string]string    // Map of equates.
	Macro     map[string]*Macro    // Map of macros.
	Label     map[string]x86.Label // Map of label names.
	Symbol    map[string]x86.Symbol
	Source    map[asm.NodeID]Line // Source line of each program node.

	prog       *asm.Program
	line       Line
	depth      int
	expansions int
}

// Predefine defines a new equate or redefines an existing equate.
func (p *Parser) Predefine(equ string, value string) {
	if p.predefine == nil {
		p.predefine = map[string]string{equ: value}
	} else {
		p.predefine[equ] = value
	}
}

var (
	reCharacter  = regexp.MustCompile(`'\\?[^']'`)
	reExpression = regexp.MustCompile(`\$\([^\$]*\)`)
	reWord       = regexp.MustCompile(`[A-Za-z0-9_.@]+`)
	reLabel      = regexp.MustCompile(`^([A-Za-z_.@][A-Za-z0-9_.@]*):(\s|$)`)
	reName       = regexp.MustCompile(`^[A-Za-z_.@][A-Za-z0-9_.@]*$`)
)

// valueOf returns the value of a simple word.
func valueOf(word string) (value int64, err error) {
	invert := false
	if strings.HasPrefix(word, "~") {
		invert = true
		word = word[1:]
	}
	if strings.HasPrefix(word, "'") {
		// Character quotes should have been expanded into
		// values in parseLine()
		err = ErrParseCharacter(strings.Trim(word, "'"))
		return
	}

	value, err = strconv.ParseInt(word, 0, 64)
	if err != nil {
		var u64 uint64
		u64, err = strconv.ParseUint(word, 0, 64)
		if err != nil {
			err = ErrParseNumber(word)
			return
		}
		value = int64(u64)
	}

	if invert {
		value = ^value
	}

	return
}

// parenEval does compile-time $(...) evaluations
func (p *Parser) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range p.Equate {
		var v64 int64
		v64, err = valueOf(str)
		if err != nil {
			// Ignore non-integer equates. They may be registers
			// or something else.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}
	err = nil

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

// stripComment removes a trailing ';' comment outside of quotes.
func stripComment(text string) string {
	var quote byte
	for n := 0; n < len(text); n++ {
		c := text[n]
		switch {
		case quote != 0 && c == '\\':
			n++
		case quote != 0 && c == quote:
			quote = 0
		case quote != 0:
		case c == '"' || c == '\'':
			quote = c
		case c == ';':
			return text[:n]
		}
	}
	return text
}

// fields splits a line on blanks and commas.
func fields(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	})
}

// cutWord splits the first blank separated word from a line.
func cutWord(line string) (word, rest string) {
	line = strings.TrimSpace(line)
	n := strings.IndexAny(line, " \t")
	if n < 0 {
		return line, ""
	}
	return line[:n], strings.TrimSpace(line[n:])
}

// splitOperands splits an operand list on the commas outside of brackets,
// braces and quotes.
func splitOperands(text string) (operands []string) {
	var depth int
	var quote byte
	start := 0
	for n := 0; n < len(text); n++ {
		c := text[n]
		switch {
		case quote != 0 && c == '\\':
			n++
		case quote != 0 && c == quote:
			quote = 0
		case quote != 0:
		case c == '"' || c == '\'':
			quote = c
		case c == '[' || c == '{':
			depth++
		case c == ']' || c == '}':
			depth--
		case c == ',' && depth == 0:
			operands = append(operands, strings.TrimSpace(text[start:n]))
			start = n + 1
		}
	}
	operands = append(operands, strings.TrimSpace(text[start:]))
	return
}

// substitute replaces the equates of a line, outside of quoted strings.
func (p *Parser) substitute(line string) string {
	replace := func(text string) string {
		return reWord.ReplaceAllStringFunc(text, func(word string) string {
			if word[0] >= '0' && word[0] <= '9' {
				return word
			}
			if equate, ok := p.Equate[word]; ok {
				return equate
			}
			return word
		})
	}

	var sb strings.Builder
	var quote byte
	start := 0
	for n := 0; n < len(line); n++ {
		c := line[n]
		switch {
		case quote != 0 && c == '\\':
			n++
		case quote != 0 && c == quote:
			quote = 0
			sb.WriteString(line[start : n+1])
			start = n + 1
		case quote != 0:
		case c == '"' || c == '\'':
			sb.WriteString(replace(line[start:n]))
			quote = c
			start = n
		}
	}
	if quote != 0 {
		sb.WriteString(line[start:])
	} else {
		sb.WriteString(replace(line[start:]))
	}
	return sb.String()
}

// record notes the source line of a program node.
func (p *Parser) record(id asm.NodeID) {
	if id != 0 {
		p.Source[id] = p.line
	}
}

// label returns the label of a name, creating it on first reference.
func (p *Parser) label(name string) (label x86.Label) {
	label, ok := p.Label[name]
	if !ok {
		label = p.prog.NewNamedLabel(name)
		p.Label[name] = label
	}
	return
}

// bind binds a label name at the current position.
func (p *Parser) bind(name string) (err error) {
	if _, ok := p.Symbol[name]; ok {
		err = ErrLabelDuplicate
		return
	}
	label := p.label(name)
	if p.prog.LabelState(label) == asm.LABEL_BOUND {
		err = ErrLabelDuplicate
		return
	}
	id, err := p.prog.Bind(label)
	p.record(id)
	return
}

// parseLine parses a single line of source text.
func (p *Parser) parseLine(line string, lineno int) (err error) {
	// Set line number.
	p.Equate["LINENO"] = fmt.Sprintf("%v", lineno)
	p.line = Line{LineNo: lineno, Text: line}

	// Do 'x' evaluations
	line = reCharacter.ReplaceAllStringFunc(line, func(word string) string {
		str := word[1 : len(word)-1]
		if str[0] == '\\' {
			str = str[1:]
			switch str {
			case "\\":
				str = "\\"
			case "n":
				str = "\n"
			case "r":
				str = "\r"
			case "t":
				str = "\t"
			case "e":
				str = "\033"
			case "0":
				str = "\000"
			default:
				return word
			}
		} else if len(str) != 1 {
			return word
		}
		return fmt.Sprintf("%v", str[0])
	})

	// Do $() evaluations
	line = reExpression.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := p.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%#x", value)
	})
	if err != nil {
		return
	}

	words := fields(line)
	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		_, rest := cutWord(line)
		name, value := cutWord(strings.Replace(rest, ",", " ", 1))
		if len(name) == 0 || len(value) == 0 || !reName.MatchString(name) {
			err = ErrEquateSyntax
			return
		}
		_, ok := p.Equate[name]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		p.Equate[name] = value
		return
	}

	line = p.substitute(line)

	for {
		match := reLabel.FindStringSubmatch(line)
		if match == nil {
			break
		}
		err = p.bind(match[1])
		if err != nil {
			return
		}
		line = strings.TrimSpace(line[len(match[0]):])
	}
	if len(line) == 0 {
		return
	}

	name, rest := cutWord(line)

	// .macro processing
	macro, ok := p.Macro[name]
	if ok {
		err = p.expand(name, macro, rest)
		return
	}

	if strings.HasPrefix(name, ".") {
		err = p.directive(name, rest)
		return
	}

	err = p.instruction(line)
	return
}

// expand expands a macro invocation.
func (p *Parser) expand(name string, macro *Macro, rest string) (err error) {
	var args []string
	if len(rest) != 0 {
		args = splitOperands(rest)
	}
	if len(args) != len(macro.Args) {
		err = ErrMacroSyntax
		return
	}
	if p.depth >= maxMacroDepth {
		err = ErrMacroRecursion
		return
	}

	// Turn args into equs
	old_equate := maps.Clone(p.Equate)
	for n, arg := range macro.Args {
		p.Equate[arg] = args[n]
	}
	p.depth++
	p.expansions++
	local := fmt.Sprintf("%v_%v_", name, p.expansions)
	defer func() {
		p.Equate = old_equate
		p.depth--
	}()

	for n, line := range macro.Lines {
		lineno := macro.LineNo + n

		line = strings.ReplaceAll(line, "@", local)
		err = p.parseLine(line, lineno)
		if err != nil {
			err = ErrMacro{Macro: name, Line: lineno, Err: err}
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
			return
		}
	}

	return
}

// parse reads the lines of the input.
func (p *Parser) parse(input io.Reader) (err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int
	var macro *Macro

	defer func() {
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if p.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line = strings.TrimSpace(stripComment(text))
		words := fields(line)

		// .macro NAME arg...
		if len(words) > 0 && words[0] == ".macro" {
			if macro != nil {
				err = ErrMacroNesting
				return
			}
			if len(words) < 2 || !reName.MatchString(words[1]) {
				err = ErrMacroSyntax
				return
			}
			_, ok := p.Macro[words[1]]
			if ok {
				err = ErrMacroDuplicate
				return
			}
			macro = &Macro{
				LineNo: lineno + 1,
			}
			if len(words) > 2 {
				macro.Args = words[2:]
			}
			p.Macro[words[1]] = macro
			continue
		}

		if len(words) > 0 && words[0] == ".endm" {
			if macro == nil {
				err = ErrMacroLonelyEndm
				return
			}
			macro = nil
			continue
		}

		if macro != nil {
			macro.Lines = append(macro.Lines, line)
			continue
		}

		err = p.parseLine(line, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	if macro != nil {
		err = ErrMacroLonely
		return
	}

	return
}

// Parse parses an input stream into a Program.
func (p *Parser) Parse(input io.Reader) (prog *asm.Program, err error) {
	mode := p.Mode
	if mode == 0 {
		mode = x86.MODE_64
	}

	p.prog = asm.NewProgram(mode)
	p.Label = make(map[string]x86.Label)
	p.Symbol = make(map[string]x86.Symbol)
	p.Macro = make(map[string]*Macro)
	p.Source = make(map[asm.NodeID]Line)
	p.depth = 0
	p.expansions = 0
	p.Equate = maps.Clone(sysEquate)
	p.Equate["MODE"] = fmt.Sprintf("%d", int(mode))
	p.Equate["PTRSIZE"] = fmt.Sprintf("%d", int(mode)/8)
	for attr, val := range p.predefine {
		p.Equate[attr] = val
	}

	err = p.parse(input)
	if err != nil {
		return
	}

	// Every referenced label must be defined.
	for _, name := range slices.Sorted(maps.Keys(p.Label)) {
		if p.prog.LabelState(p.Label[name]) != asm.LABEL_BOUND {
			err = ErrLabelMissing(name)
			return
		}
	}

	prog = p.prog
	return
}
