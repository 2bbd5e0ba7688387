package asm

import (
	"errors"

	"github.com/ezrec/jitasm/translate"
)

var f = translate.From

var (
	// Program errors
	ErrLabelInvalid   = errors.New(f("label invalid"))
	ErrLabelBound     = errors.New(f("label already bound"))
	ErrSymbolInvalid  = errors.New(f("symbol invalid"))
	ErrNodeInvalid    = errors.New(f("node invalid"))
	ErrAlignInvalid   = errors.New(f("alignment not a power of two"))
	ErrFillInvalid    = errors.New(f("fill not a byte or FILL_NOP"))
	ErrPointerInvalid = errors.New(f("pointer target invalid"))
	ErrPointerWidth   = errors.New(f("pointer width invalid"))

	// Finalize errors
	ErrNonConvergentLayout = errors.New(f("layout did not converge"))
)

// ErrUnresolvedLabel reports a label that is referenced but never bound.
type ErrUnresolvedLabel string

func (err ErrUnresolvedLabel) Error() string {
	return f("label %v unresolved", string(err))
}

// ErrRelocationOverflow reports a resolved field value that does not fit
// in its field.
type ErrRelocationOverflow struct {
	Node   NodeID
	Offset int
	Width  int
	Value  int64
}

func (err *ErrRelocationOverflow) Error() string {
	return f("node %v offset %#x: value %d overflows %d bits", err.Node, err.Offset, err.Value, err.Width)
}
