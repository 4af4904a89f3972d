package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

const testDump = `4400 <__init_stack>
4400:  3140 0044      1@.D
4404 main:
4404:  ff3f           .?
fffe:  0044
`

func TestConvert(t *testing.T) {
	base := filepath.Join(t.TempDir(), "image")

	count, err := convert(strings.NewReader(testDump), base)
	assert.NoError(t, err)
	assert.Equal(t, 2, count)

	image, err := os.ReadFile(base + ".bin")
	assert.NoError(t, err)
	assert.Len(t, image, 0x10000)
	assert.Equal(t, []byte{0x31, 0x40, 0x00, 0x44, 0xff, 0x3f}, image[0x4400:0x4406])
	assert.Equal(t, []byte{0x00, 0x44}, image[0xfffe:])

	symbols, err := os.ReadFile(base + ".symbols")
	assert.NoError(t, err)
	assert.Equal(t, "0x4400 __init_stack\n0x4404 main\n", string(symbols))
}

func TestConvertFile_Verify(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "level.txt")
	assert.NoError(t, os.WriteFile(input, []byte(testDump), 0600))

	err := convertFile(optionFlags{input: input, verify: true, quiet: true})
	assert.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "level.bin"))
	assert.NoError(t, err)
}

func TestOutputBase(t *testing.T) {
	assert.Equal(t, "out", outputBase(optionFlags{input: "dump.txt", output: "out"}))
	assert.Equal(t, "dir/dump", outputBase(optionFlags{input: "dir/dump.txt"}))
	assert.Equal(t, stdinBase, outputBase(optionFlags{input: "-"}))
}

func TestCompareImages(t *testing.T) {
	tests := []struct {
		name     string
		expected []byte
		written  []byte
		err      string
	}{
		{name: "equal", expected: []byte{1, 2, 3}, written: []byte{1, 2, 3}},
		{name: "short output", expected: []byte{1, 2}, written: []byte{1}, err: "written image has 1 bytes, expected 2"},
		{name: "first difference", expected: []byte{1, 2, 3}, written: []byte{1, 0, 0}, err: "written image differs at 0x0001: 0x00 != 0x02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := compareImages(tt.expected, tt.written)
			if tt.err == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.err)
		})
	}
}
