package x86

import (
	"errors"

	"github.com/ezrec/jitasm/translate"
)

var f = translate.From

var (
	// Build errors
	ErrInvalidInstruction             = errors.New(f("invalid instruction"))
	ErrAmbiguousOperandSize           = errors.New(f("ambiguous operand size"))
	ErrInvalidAddressing              = errors.New(f("invalid addressing"))
	ErrUnencodableRegisterCombination = errors.New(f("unencodable register combination"))
	ErrOperandOutOfRange              = errors.New(f("operand out of range"))

	// Instruction shape errors
	ErrTooManyOperands = errors.New(f("too many operands"))
	ErrInstructionSize = errors.New(f("instruction exceeds 15 bytes"))

	// Encoding errors
	ErrUnresolvedTarget = errors.New(f("unresolved branch target"))
)

// ErrBuild reports why an instruction could not be assembled.
type ErrBuild struct {
	Instruction string
	Err         error
}

func (err *ErrBuild) Error() string {
	return f("%v: %v", err.Instruction, err.Err)
}

func (err *ErrBuild) Unwrap() error {
	return err.Err
}

// ErrMnemonic reports an unknown mnemonic name.
type ErrMnemonic string

func (err ErrMnemonic) Error() string {
	return f("mnemonic '%v' unknown", string(err))
}

func (err ErrMnemonic) Is(target error) bool {
	return target == ErrInvalidInstruction
}

// ErrTable reports a malformed instruction database row.
type ErrTable struct {
	Row string
	Err string
}

func (err *ErrTable) Error() string {
	return f("table row %v: %v", err.Row, err.Err)
}
