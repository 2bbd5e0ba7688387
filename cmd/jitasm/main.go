// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/ezrec/jitasm/asm"
	"github.com/ezrec/jitasm/source"
	"github.com/ezrec/jitasm/x86"
)

// listing writes the address, bytes and source line of each node.
func listing(w io.Writer, prog *asm.Program, out *asm.Output, parser *source.Parser) {
	for id := range prog.Nodes() {
		addr, ok := out.NodeAddress(id)
		if !ok {
			continue
		}
		code := out.NodeBytes(id)
		line := parser.Source[id]
		fmt.Fprintf(w, "%08x  %-24s  %4d  %v\n", addr, hex.EncodeToString(code), line.LineNo, line.Text)
	}
}

// relocations writes the relocation table.
func relocations(w io.Writer, out *asm.Output) {
	for _, rel := range out.Relocations {
		target := fmt.Sprintf("%#x", rel.Target)
		if rel.Symbol != 0 {
			target = out.Symbols[rel.Symbol]
		}
		fmt.Fprintf(w, "%08x  %-6v  %v%+d\n", out.Base+uint64(rel.Offset), rel.Kind, target, rel.Addend)
	}
}

func main() {
	var compile string
	var base string
	var mode int
	var output string
	var list bool
	var reloc bool
	var passes int
	var verbose bool

	parser := &source.Parser{}

	flag.StringVar(&compile, "c", "-", "Assembly source file to compile")
	flag.StringVar(&base, "b", "0", "Base address")
	flag.IntVar(&mode, "m", 64, "Processor mode (32 or 64)")
	flag.StringVar(&output, "o", "", "Raw machine code output file")
	flag.BoolVar(&list, "l", false, "Print a listing")
	flag.BoolVar(&reloc, "r", false, "Print the relocation table")
	flag.IntVar(&passes, "p", asm.DefaultMaxPasses, "Maximum layout passes")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.Func("D", "Predefine an equate as name=value", func(def string) error {
		name, value, ok := strings.Cut(def, "=")
		if !ok || len(name) == 0 {
			return fmt.Errorf("%v: expected name=value", def)
		}
		parser.Predefine(name, value)
		return nil
	})

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	origin, err := strconv.ParseUint(base, 0, 64)
	if err != nil {
		log.Fatalf("-b %v: %v", base, err)
	}

	switch mode {
	case 32:
		parser.Mode = x86.MODE_32
	case 64:
		parser.Mode = x86.MODE_64
	default:
		log.Fatalf("-m %v: mode must be 32 or 64", mode)
	}
	parser.Verbose = verbose

	inf := os.Stdin
	if compile != "-" {
		inf, err = os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()
	}

	prog, err := parser.Parse(inf)
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	as := &asm.Assembler{Verbose: verbose, MaxPasses: passes}
	out, err := as.Finalize(prog, origin)
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	if len(output) != 0 {
		err = os.WriteFile(output, out.Bytes, 0o644)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
	}

	if list {
		listing(os.Stdout, prog, out, parser)
	}

	if reloc {
		relocations(os.Stdout, out)
	}

	if len(output) == 0 && !list && !reloc {
		fmt.Println(hex.EncodeToString(out.Bytes))
	}
}
