// Package msp430 provides the MSP430 instruction set support of the disassembler.
//
// # Instruction Formats
//
// Every instruction starts with a 16-bit little-endian word that selects one of
// three encodings:
//
//	bit:            |15|14|13|12|11|10|9 |8 |7 |6 |5 |4 |3 |2 |1 |0 |
//	SingleOperand   |0 |0 |0 |1 |0 |0 | Opcode |BW| Ad  | Dest Reg  |
//	ConditionalJump |0 |0 |1 | Cond.  |          PC Offset          |
//	DoubleOperand   |  Opcode   |  Src Reg  |Ad|BW| As  | Dest Reg  |
//
// The single operand mask is checked first, followed by the jump mask. Every word
// that matches neither is decoded as a double operand instruction.
//
// # Extension Words
//
// Indexed operands and immediates (@pc+) are followed by one extension word each.
// The source extension word always precedes the destination extension word, so an
// instruction occupies 2, 4 or 6 bytes.
//
// # Constant Generators
//
// The status register (sr) and the constant generator register (cg) synthesize
// the constants 0, 1, 2, 4, 8 and -1 depending on the addressing mode. Indexed
// mode on cg does not read an extension word, indexed mode on sr addresses an
// absolute memory location.
//
// # Emulated Instructions
//
// Many common mnemonics like NOP, RET or BR are encodings of core instructions.
// The Formatter scans an ordered AliasTable and prints the first matching alias
// instead of the core mnemonic.
package msp430
