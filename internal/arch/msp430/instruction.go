package msp430

// Format is the encoding format of an instruction.
type Format uint8

// Instruction formats.
const (
	SingleOperand Format = iota
	ConditionalJump
	DoubleOperand
)

func (f Format) String() string {
	switch f {
	case SingleOperand:
		return "single operand"
	case ConditionalJump:
		return "conditional jump"
	case DoubleOperand:
		return "double operand"
	default:
		return "unknown"
	}
}

// Size is the operand size of an instruction.
type Size uint8

// Operand sizes, encoded by the BW bit.
const (
	Word Size = iota
	Byte
)

// Mode is an addressing mode.
type Mode uint8

// Addressing modes.
const (
	Direct            Mode = iota // Rn
	Indexed                       // offset(Rn)
	Indirect                      // @Rn
	IndirectIncrement             // @Rn+
)

func (m Mode) String() string {
	switch m {
	case Direct:
		return "direct"
	case Indexed:
		return "indexed"
	case Indirect:
		return "indirect"
	case IndirectIncrement:
		return "indirect increment"
	default:
		return "unknown"
	}
}

// Instruction is a decoded instruction at a specific address.
type Instruction struct {
	Format Format
	Opcode Opcode // meaning depends on the format
	Size   Size

	SourceRegister Register // double operand only
	DestRegister   Register
	SourceMode     Mode // double operand only
	DestMode       Mode

	SourceValue uint16 // immediate or index extension word
	DestValue   uint16 // immediate or index extension word

	JumpOffset int // conditional jump only, in words

	Invalid bool // unknown opcode or byte mode not supported by the opcode

	Address uint16 // start address
	Length  uint16 // length in bytes, 2, 4 or 6
}

// NextAddress returns the address following the instruction.
func (i *Instruction) NextAddress() uint16 {
	return i.Address + i.Length
}

// BranchTarget returns the destination of a conditional jump. The offset is
// relative to the address of the following word.
func (i *Instruction) BranchTarget() uint16 {
	return uint16(int(i.Address) + i.JumpOffset*2 + 2)
}

// IsBranchImmediate returns whether the instruction is a MOV @pc+, pc which
// jumps to the address stored in its extension word.
func (i *Instruction) IsBranchImmediate() bool {
	return i.Format == DoubleOperand &&
		i.Opcode == Mov &&
		i.SourceRegister == PC &&
		i.SourceMode == IndirectIncrement &&
		i.DestRegister == PC &&
		i.DestMode == Direct
}
