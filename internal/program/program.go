// Package program represents a disassembled MSP430 program.
package program

import (
	"fmt"
	"strings"
)

// Offset defines the content of a program address that starts a decoded instruction.
type Offset struct {
	Address uint16
	Data    []byte // all bytes that are part of the instruction

	Type OffsetType

	Mnemonic string // instruction name including size suffix
	Operands string // comma separated operands
	Comment  string
}

// Code returns the assembly text of the instruction.
func (o Offset) Code() string {
	if o.Operands == "" {
		return o.Mnemonic
	}
	return o.Mnemonic + " " + o.Operands
}

// HexCodeComment returns the instruction bytes as hex string.
func (o Offset) HexCodeComment() (string, error) {
	buf := &strings.Builder{}

	for i, b := range o.Data {
		if i > 0 {
			if _, err := buf.WriteString(" "); err != nil {
				return "", fmt.Errorf("writing separator: %w", err)
			}
		}
		if _, err := fmt.Fprintf(buf, "%02X", b); err != nil {
			return "", fmt.Errorf("writing hex byte: %w", err)
		}
	}

	return buf.String(), nil
}

// Program defines a disassembled program, the offsets are sorted by address.
type Program struct {
	Offsets []Offset

	ResetVector uint16
	EntryPoints []uint16 // additional entry points besides the reset vector
	Checksum    uint32   // CRC32 checksum of the memory image
}

// New creates a new empty program.
func New(resetVector uint16) *Program {
	return &Program{
		ResetVector: resetVector,
	}
}
