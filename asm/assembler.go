// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"log"
	"maps"
	"slices"

	"github.com/ezrec/jitasm/x86"
)

// DefaultMaxPasses bounds the branch relaxation passes when
// Assembler.MaxPasses is zero.
const DefaultMaxPasses = 32

// Assembler turns a Program into machine code at a base address.
type Assembler struct {
	Verbose   bool // If set, logs the layout passes.
	MaxPasses int  // Relaxation pass limit, or DefaultMaxPasses if zero.
}

// item is the layout state of one node during finalization.
type item struct {
	id     NodeID
	node   *Node
	addr   uint64
	size   int
	form   int  // Index of the short form in use, or -1 for the best form.
	pinned bool // Kept on the best form for the rest of the layout.
}

func (it *item) code() *x86.Code {
	if it.form < 0 {
		return &it.node.selection.Best.Code
	}
	return &it.node.selection.Short[it.form].Code
}

// branch returns the relaxable fixup of a branch form.
func branch(code *x86.Code) (fix x86.Fixup, ok bool) {
	for _, fix = range code.Fixups() {
		if fix.Kind != x86.FIXUP_REL {
			continue
		}
		switch fix.Target.(type) {
		case x86.Label, x86.Absolute:
			ok = true
			return
		}
	}
	return
}

// layout holds the finalization state of one program.
type layout struct {
	prog   *Program
	base   uint64
	items  []item
	labels []int // Item index per label, -1 if unbound.
}

// referencedLabel returns the label an operand depends on, if any.
func referencedLabel(op x86.Operand) x86.Label {
	switch op := op.(type) {
	case x86.Label:
		return op
	case x86.Memory:
		return op.Label
	case x86.Pointer:
		return op.Label
	}
	return 0
}

func newLayout(prog *Program, base uint64) (lay *layout, err error) {
	lay = &layout{
		prog:   prog,
		base:   base,
		items:  make([]item, 0, prog.Len()),
		labels: make([]int, len(prog.labels)),
	}
	for n := range lay.labels {
		lay.labels[n] = -1
	}

	for id, node := range prog.Nodes() {
		it := item{id: id, node: node, form: -1}
		switch node.Kind {
		case NODE_INSTRUCTION:
			it.size = node.selection.Best.Code.Len()
		case NODE_LABEL:
			lay.labels[node.Label-1] = len(lay.items)
		case NODE_DATA:
			it.size = len(node.Data)
		}
		lay.items = append(lay.items, it)
	}

	check := func(label x86.Label) error {
		if label != 0 && lay.labels[label-1] < 0 {
			return ErrUnresolvedLabel(prog.LabelName(label))
		}
		return nil
	}

	for _, it := range lay.items {
		switch it.node.Kind {
		case NODE_INSTRUCTION:
			for _, op := range it.node.Instruction.Operands {
				err = check(referencedLabel(op))
				if err != nil {
					return
				}
			}
		case NODE_DATA:
			if it.node.Pointer != nil {
				err = check(it.node.Pointer.Label)
				if err != nil {
					return
				}
			}
		}
	}

	return
}

// place computes the address of every item, and returns the total size.
func (lay *layout) place() (size int) {
	addr := lay.base
	for n := range lay.items {
		it := &lay.items[n]
		it.addr = addr
		switch it.node.Kind {
		case NODE_ALIGN, NODE_SECTION:
			it.size = padding(addr, it.node.Align)
		}
		addr += uint64(it.size)
	}
	size = int(addr - lay.base)
	return
}

// target returns the address of a fixup target, and whether the target
// moves along with the end of the item when the item shrinks.
func (lay *layout) target(n int, op x86.Operand) (addr uint64, moves bool) {
	switch op := op.(type) {
	case x86.Label:
		index := lay.labels[op-1]
		addr = lay.items[index].addr
		moves = index > n
	case x86.Absolute:
		addr = uint64(op)
	}
	return
}

// reaches returns true if the branch of item n reaches its target with
// the given form.
func (lay *layout) reaches(n int, code *x86.Code) bool {
	it := &lay.items[n]
	fix, ok := branch(code)
	if !ok {
		return false
	}

	target, moves := lay.target(n, fix.Target)
	end := it.addr + uint64(code.Len())
	if moves {
		end = it.addr + uint64(it.size)
	}
	return fix.Fits(fix.Value(target, end))
}

// relax runs one relaxation pass over the placed items, and returns the
// number of shortened and pinned branches.
func (lay *layout) relax() (shortened int, pinned int) {
	for n := range lay.items {
		it := &lay.items[n]
		if it.pinned || !it.node.IsRelaxable() {
			continue
		}

		if it.form >= 0 && !lay.reaches(n, it.code()) {
			it.form = -1
			it.pinned = true
			it.size = it.code().Len()
			pinned++
			continue
		}

		for k := range it.node.selection.Short {
			code := &it.node.selection.Short[k].Code
			if code.Len() >= it.size {
				break
			}
			if lay.reaches(n, code) {
				it.form = k
				it.size = code.Len()
				shortened++
				break
			}
		}
	}
	return
}

// resolve patches one fixup of item n, whose code starts at buf.
func (lay *layout) resolve(out *Output, n int, buf []byte, fix x86.Fixup, end uint64) (err error) {
	it := &lay.items[n]
	offset := int(it.addr-lay.base) + fix.Offset

	kind, known := relocationKind(fix)
	reloc := Relocation{
		Node:       it.id,
		NodeOffset: fix.Offset,
		Offset:     offset,
		Kind:       kind,
		Addend:     fix.Addend,
		Signed:     fix.Signed,
	}
	if kind.IsRelative() {
		reloc.Addend -= int64(end - (it.addr + uint64(fix.Offset)))
	}

	var listed bool
	switch target := fix.Target.(type) {
	case x86.Symbol:
		if !known {
			return &ErrRelocationOverflow{Node: it.id, Offset: offset, Width: fix.Width}
		}
		reloc.Symbol = target
		out.Relocations = append(out.Relocations, reloc)
		return
	case x86.Label:
		reloc.Target, _ = lay.target(n, target)
		listed = fix.Kind == x86.FIXUP_ABS
	case x86.Absolute:
		reloc.Target = uint64(target)
		listed = fix.Kind == x86.FIXUP_REL
	}

	value := fix.Value(reloc.Target, end)
	if !fix.Fits(value) {
		return &ErrRelocationOverflow{Node: it.id, Offset: offset, Width: fix.Width, Value: value}
	}
	fix.Put(buf, value)

	if listed && known {
		out.Relocations = append(out.Relocations, reloc)
	}
	return
}

// emit writes the final image of the placed items.
func (lay *layout) emit(size int) (out *Output, err error) {
	out = &Output{
		Base:     lay.base,
		Bytes:    make([]byte, size),
		Labels:   make(map[x86.Label]uint64),
		Sections: []Section{{Name: DefaultSection, Address: lay.base}},
		Symbols:  make(map[x86.Symbol]string),
		spans:    make([]span, 0, len(lay.items)),
		index:    make(map[NodeID]int, len(lay.items)),
	}

	for n := range lay.items {
		it := &lay.items[n]
		start := int(it.addr - lay.base)
		buf := out.Bytes[start : start+it.size]
		end := it.addr + uint64(it.size)

		out.index[it.id] = len(out.spans)
		out.spans = append(out.spans, span{id: it.id, addr: it.addr, size: it.size})

		switch it.node.Kind {
		case NODE_INSTRUCTION:
			code := it.code()
			copy(buf, code.Bytes())
			for _, fix := range code.Fixups() {
				err = lay.resolve(out, n, buf, fix, end)
				if err != nil {
					return
				}
			}
		case NODE_LABEL:
			out.Labels[it.node.Label] = it.addr
		case NODE_DATA:
			copy(buf, it.node.Data)
			if ptr := it.node.Pointer; ptr != nil {
				fix := x86.Fixup{Width: ptr.Width, Kind: x86.FIXUP_ABS, Addend: ptr.Addend}
				if ptr.Symbol != 0 {
					fix.Target = ptr.Symbol
				} else {
					fix.Target = ptr.Label
				}
				err = lay.resolve(out, n, buf, fix, end)
				if err != nil {
					return
				}
			}
		case NODE_ALIGN:
			pad(buf, it.node.Fill)
		case NODE_SECTION:
			pad(buf, it.node.Fill)
			last := &out.Sections[len(out.Sections)-1]
			last.Size = int(it.addr - last.Address)
			out.Sections = append(out.Sections, Section{Name: it.node.Section, Address: end})
		}
	}

	last := &out.Sections[len(out.Sections)-1]
	last.Size = int(lay.base + uint64(size) - last.Address)
	if out.Sections[0].Size == 0 && len(out.Sections) > 1 {
		out.Sections = out.Sections[1:]
	}

	slices.SortStableFunc(out.Relocations, func(a, b Relocation) int {
		return a.Offset - b.Offset
	})

	for sym, name := range lay.prog.symbolNames() {
		out.Symbols[sym] = name
	}
	return
}

// Finalize lays out the program at base, relaxes its branches to their
// shortest reaching forms, and produces the machine code. The program is
// not modified, so Finalize may be called repeatedly with the same
// result.
func (as *Assembler) Finalize(prog *Program, base uint64) (out *Output, err error) {
	lay, err := newLayout(prog, base)
	if err != nil {
		return
	}

	maxPasses := as.MaxPasses
	if maxPasses <= 0 {
		maxPasses = DefaultMaxPasses
	}

	var size, passes int
	for {
		if passes == maxPasses {
			err = ErrNonConvergentLayout
			return
		}
		passes++
		size = lay.place()
		shortened, pinned := lay.relax()
		if as.Verbose {
			log.Printf("asm: pass %d: %d bytes, %d shortened, %d pinned", passes, size, shortened, pinned)
		}
		if shortened == 0 && pinned == 0 {
			break
		}
	}

	out, err = lay.emit(size)
	if err != nil {
		out = nil
		return
	}
	out.Passes = passes

	if as.Verbose {
		log.Printf("asm: %d nodes, %d bytes at %#x, %d labels, %d relocations",
			prog.Len(), len(out.Bytes), base, len(out.Labels), len(out.Relocations))
		for _, label := range slices.Sorted(maps.Keys(out.Labels)) {
			log.Printf("asm: %v = %#x", prog.LabelName(label), out.Labels[label])
		}
	}
	return
}
