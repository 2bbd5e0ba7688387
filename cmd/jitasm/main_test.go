package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/jitasm/asm"
	"github.com/ezrec/jitasm/source"
)

const testSource = `
.extern puts
start:
    jmp start
    call puts
`

func TestListing(t *testing.T) {
	assert := assert.New(t)

	parser := &source.Parser{}
	prog, err := parser.Parse(strings.NewReader(testSource))
	require.NoError(t, err)

	out, err := (&asm.Assembler{}).Finalize(prog, 0x1000)
	require.NoError(t, err)
	assert.Equal([]byte{0xeb, 0xfe, 0xe8, 0, 0, 0, 0}, out.Bytes)

	var buf bytes.Buffer
	listing(&buf, prog, out, parser)

	var lines [][]string
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		lines = append(lines, strings.Fields(line))
	}
	assert.Equal([][]string{
		{"00001000", "3", "start:"},
		{"00001000", "ebfe", "4", "jmp", "start"},
		{"00001002", "e800000000", "5", "call", "puts"},
	}, lines)

	buf.Reset()
	relocations(&buf, out)
	assert.Equal([]string{"00001003", "rel32", "puts-4"}, strings.Fields(buf.String()))
}
