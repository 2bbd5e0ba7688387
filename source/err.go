package source

import (
	"errors"

	"github.com/ezrec/jitasm/translate"
)

var f = translate.From

var (
	// Directive errors
	ErrEquateSyntax     = errors.New(f(".equ syntax"))
	ErrEquateDuplicate  = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate   = errors.New(f("label duplicated"))
	ErrMacroSyntax      = errors.New(f(".macro syntax"))
	ErrMacroNesting     = errors.New(f(".macro in .macro prohibited"))
	ErrMacroDuplicate   = errors.New(f(".macro duplicated"))
	ErrMacroLonely      = errors.New(f(".macro without .endm"))
	ErrMacroLonelyEndm  = errors.New(f(".endm without .macro"))
	ErrMacroRecursion   = errors.New(f(".macro expansion too deep"))
	ErrDirectiveInvalid = errors.New(f("directive invalid"))
	ErrDirectiveSyntax  = errors.New(f("directive syntax"))

	// Instruction errors
	ErrMnemonicMissing = errors.New(f("mnemonic missing"))
	ErrOperandSyntax   = errors.New(f("operand syntax"))
	ErrMemorySyntax    = errors.New(f("memory operand syntax"))
	ErrDecoration      = errors.New(f("operand decoration invalid"))
)

// ErrLabelMissing reports a referenced label that is never defined.
type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

// ErrSyntax reports the source line an error was found on.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseCharacter string

func (err ErrParseCharacter) Error() string {
	return f("'%v' is not a character", string(err))
}

type ErrParseOperand string

func (err ErrParseOperand) Error() string {
	return f("'%v' is not a register, value or label", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrMacro reports an error inside a macro expansion.
type ErrMacro struct {
	Macro string
	Line  int
	Err   error
}

func (err ErrMacro) Error() string {
	return f("macro %v line %v %v", err.Macro, err.Line, err.Err.Error())
}

func (err ErrMacro) Unwrap() error {
	return err.Err
}
