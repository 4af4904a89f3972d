package writer

import (
	"bytes"
	"testing"

	"github.com/retroenv/msp430disasm/internal/program"
	"github.com/retroenv/retrogolib/assert"
)

func testProgram() *program.Program {
	app := program.New(0x4400)
	app.Checksum = 0xdeadbeef
	app.Offsets = []program.Offset{
		{
			Address:  0x4400,
			Data:     []byte{0x35, 0x40, 0x34, 0x12},
			Mnemonic: "MOV",
			Operands: "#0x1234, r5",
		},
		{
			Address:  0x4404,
			Data:     []byte{0x03, 0x43},
			Mnemonic: "NOP",
		},
		{
			Address:  0x4406,
			Data:     []byte{0xFF, 0x3F},
			Mnemonic: "JMP",
			Operands: "#0x4406",
			Comment:  "loop",
		},
	}
	return app
}

func TestWriter_Write(t *testing.T) {
	tests := []struct {
		name     string
		options  Options
		expected string
	}{
		{
			name: "default",
			expected: `0x4400:   MOV     #0x1234, r5
0x4404:   NOP
0x4406:   JMP     #0x4406                ; loop
`,
		},
		{
			name:    "hex comments",
			options: Options{HexComments: true},
			expected: `0x4400:   MOV     #0x1234, r5            ; 35 40 34 12
0x4404:   NOP                            ; 03 43
0x4406:   JMP     #0x4406                ; FF 3F  loop
`,
		},
		{
			name:    "header comments",
			options: Options{HeaderComments: true},
			expected: `; CRC32 checksum: deadbeef
; Reset vector: 0x4400

0x4400:   MOV     #0x1234, r5
0x4404:   NOP
0x4406:   JMP     #0x4406                ; loop
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := New(testProgram(), &buf, tt.options)
			assert.NoError(t, w.Write())
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestWriter_FlowComments(t *testing.T) {
	app := testProgram()
	app.Offsets[0].SetType(program.CodeOffset | program.EntryPoint)
	app.Offsets[1].SetType(program.InvalidCode)
	app.Offsets[2].SetType(program.EntryPoint | program.BranchDestination)

	var buf bytes.Buffer
	w := New(app, &buf, Options{FlowComments: true})
	assert.NoError(t, w.Write())
	assert.Equal(t, `0x4400:   MOV     #0x1234, r5            ; entry point
0x4404:   NOP                            ; invalid instruction
0x4406:   JMP     #0x4406                ; entry point, branch destination  loop
`, buf.String())
}

func TestWriter_FlowAndHexComments(t *testing.T) {
	app := testProgram()
	app.Offsets[0].SetType(program.EntryPoint)
	app.Offsets[1].SetType(program.InvalidCode)
	app.Offsets[2].SetType(program.BranchDestination)

	var buf bytes.Buffer
	w := New(app, &buf, Options{FlowComments: true, HexComments: true})
	assert.NoError(t, w.Write())
	assert.Equal(t, `0x4400:   MOV     #0x1234, r5            ; 35 40 34 12  entry point
0x4404:   NOP                            ; 03 43  invalid instruction
0x4406:   JMP     #0x4406                ; FF 3F  branch destination  loop
`, buf.String())
}

func TestWriter_EntryPoints(t *testing.T) {
	app := testProgram()
	app.EntryPoints = []uint16{0x5000, 0xfff0}

	var buf bytes.Buffer
	w := New(app, &buf, Options{})
	assert.NoError(t, w.WriteCommentHeader())
	assert.Equal(t, `; CRC32 checksum: deadbeef
; Reset vector: 0x4400
; Entry point: 0x5000
; Entry point: 0xfff0

`, buf.String())
}

func TestFormatLine(t *testing.T) {
	assert.Equal(t, "0x0010:   (bad)", FormatLine(program.Offset{Address: 0x10, Mnemonic: "(bad)"}))
	assert.Equal(t, "0xfffe:   PUSH.B  r5", FormatLine(program.Offset{Address: 0xfffe, Mnemonic: "PUSH.B", Operands: "r5"}))
	assert.Equal(t, "0x4400:   CALL    #0x4500", FormatLine(program.Offset{Address: 0x4400, Mnemonic: "CALL", Operands: "#0x4500"}))
}
