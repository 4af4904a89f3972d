package msp430

const (
	singleOperandMask = 0xFC00
	singleOperandBits = 0x1000
	jumpMask          = 0xE000
	jumpBits          = 0x2000

	wordSize = 2
)

// Memory provides word access to the address space.
type Memory interface {
	// Word reads a little-endian word, wrapping around at the end of the address space.
	Word(address uint16) uint16
}

// Decode decodes the instruction at the given address. Decoding never fails,
// unknown encodings are returned as instruction with the Invalid flag set.
func Decode(mem Memory, address uint16) *Instruction {
	ins := &Instruction{
		Address: address,
		Length:  wordSize,
	}
	word := mem.Word(address)

	switch {
	case word&singleOperandMask == singleOperandBits:
		ins.Format = SingleOperand
		ins.Opcode = Opcode(Bitfield(word, 9, 3))
		ins.Size = Size(Bitfield(word, 6, 1))
		ins.DestMode = Mode(Bitfield(word, 5, 2))
		ins.DestRegister = Register(Bitfield(word, 3, 4))

		// @pc+ is an immediate operand, commonly used by CALL
		if ins.DestRegister == PC && ins.DestMode == IndirectIncrement {
			ins.DestValue = ins.readExtension(mem)
		}

	case word&jumpMask == jumpBits:
		ins.Format = ConditionalJump
		ins.Opcode = Opcode(Bitfield(word, 12, 3))
		ins.JumpOffset = SignExtend10(Bitfield(word, 9, 10))

	default:
		ins.Format = DoubleOperand
		ins.Opcode = Opcode(Bitfield(word, 15, 4))
		ins.SourceRegister = Register(Bitfield(word, 11, 4))
		ins.DestMode = Mode(Bitfield(word, 7, 1))
		ins.Size = Size(Bitfield(word, 6, 1))
		ins.SourceMode = Mode(Bitfield(word, 5, 2))
		ins.DestRegister = Register(Bitfield(word, 3, 4))

		if ins.SourceRegister == PC && ins.SourceMode == IndirectIncrement {
			ins.SourceValue = ins.readExtension(mem)
		}
	}

	// indexed cg generates the constant 1 and has no extension word
	if ins.SourceMode == Indexed && ins.SourceRegister != CG {
		ins.SourceValue = ins.readExtension(mem)
	}
	if ins.DestMode == Indexed {
		ins.DestValue = ins.readExtension(mem)
	}

	info, ok := LookupOpcode(ins.Format, ins.Opcode)
	if !ok || (ins.Size == Byte && info.NoByteMode) {
		ins.Invalid = true
	}
	return ins
}

// readExtension reads the extension word that follows the already consumed
// bytes of the instruction.
func (i *Instruction) readExtension(mem Memory) uint16 {
	value := mem.Word(i.Address + i.Length)
	i.Length += wordSize
	return value
}
