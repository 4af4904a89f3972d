// Package writer implements the listing output of a disassembled program.
package writer

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/msp430disasm/internal/program"
)

const (
	mnemonicWidth = 8  // column width of the mnemonic including size suffix
	commentColumn = 40 // column where comments start
)

// Writer writes a program as listing with one line per instruction.
type Writer struct {
	app     *program.Program
	options Options
	writer  io.Writer
}

// Options of the writer.
type Options struct {
	HeaderComments bool // write checksum and entry points as comment header
	HexComments    bool // write the instruction bytes as comment
	FlowComments   bool // mark entry points, branch destinations and invalid instructions
}

// New creates a new writer.
func New(app *program.Program, writer io.Writer, options Options) *Writer {
	return &Writer{
		app:     app,
		options: options,
		writer:  writer,
	}
}

// Write writes the listing of all program offsets in address order.
func (w Writer) Write() error {
	if w.options.HeaderComments {
		if err := w.WriteCommentHeader(); err != nil {
			return err
		}
	}

	for _, offset := range w.app.Offsets {
		if err := w.writeCodeLine(offset); err != nil {
			return fmt.Errorf("writing code line at 0x%04x: %w", offset.Address, err)
		}
	}
	return nil
}

// WriteCommentHeader writes the CRC32 checksum and the entry points as comments to the output.
func (w Writer) WriteCommentHeader() error {
	if _, err := fmt.Fprintf(w.writer, "; CRC32 checksum: %08x\n", w.app.Checksum); err != nil {
		return fmt.Errorf("writing checksum: %w", err)
	}
	if _, err := fmt.Fprintf(w.writer, "; Reset vector: 0x%04x\n", w.app.ResetVector); err != nil {
		return fmt.Errorf("writing reset vector: %w", err)
	}
	for _, address := range w.app.EntryPoints {
		if _, err := fmt.Fprintf(w.writer, "; Entry point: 0x%04x\n", address); err != nil {
			return fmt.Errorf("writing entry point: %w", err)
		}
	}
	if _, err := fmt.Fprintln(w.writer); err != nil {
		return fmt.Errorf("writing line: %w", err)
	}
	return nil
}

// FormatLine returns the listing line of an offset without comments.
func FormatLine(offset program.Offset) string {
	line := fmt.Sprintf("0x%04x:   %-*s%s", offset.Address, mnemonicWidth, offset.Mnemonic, offset.Operands)
	return strings.TrimRight(line, " ")
}

func (w Writer) writeCodeLine(offset program.Offset) error {
	line := FormatLine(offset)

	comment, err := w.comment(offset)
	if err != nil {
		return err
	}

	if comment == "" {
		_, err = fmt.Fprintf(w.writer, "%s\n", line)
	} else {
		_, err = fmt.Fprintf(w.writer, "%-*s ; %s\n", commentColumn, line, comment)
	}
	if err != nil {
		return fmt.Errorf("writing line: %w", err)
	}
	return nil
}

func (w Writer) comment(offset program.Offset) (string, error) {
	var parts []string

	if w.options.HexComments {
		hexCodeComment, err := offset.HexCodeComment()
		if err != nil {
			return "", fmt.Errorf("creating hex code comment: %w", err)
		}
		parts = append(parts, hexCodeComment)
	}
	if w.options.FlowComments {
		if flow := flowComment(offset); flow != "" {
			parts = append(parts, flow)
		}
	}
	if offset.Comment != "" {
		parts = append(parts, offset.Comment)
	}

	return strings.Join(parts, "  "), nil
}

// flowComment returns the execution flow role of the offset.
func flowComment(offset program.Offset) string {
	var roles []string
	if offset.IsType(program.EntryPoint) {
		roles = append(roles, "entry point")
	}
	if offset.IsType(program.BranchDestination) {
		roles = append(roles, "branch destination")
	}
	if offset.IsType(program.InvalidCode) {
		roles = append(roles, "invalid instruction")
	}
	return strings.Join(roles, ", ")
}
