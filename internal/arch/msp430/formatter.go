package msp430

import (
	"fmt"
	"strings"
)

const (
	badInstruction  = "(bad)"
	byteSuffix      = ".B"
	invalidRegister = "[invalid register]"
)

// constantOperands renders the operands of the registers that double as constant
// generators, indexed by addressing mode.
var constantOperands = map[Register][4]func(value uint16) string{
	SR: {
		Direct:            func(uint16) string { return SR.String() },
		Indexed:           func(value uint16) string { return fmt.Sprintf("&0x%04x", value) },
		Indirect:          func(uint16) string { return "#0x4" },
		IndirectIncrement: func(uint16) string { return "#0x8" },
	},
	CG: {
		Direct:            func(uint16) string { return "#0x0" },
		Indexed:           func(uint16) string { return "#0x1" },
		Indirect:          func(uint16) string { return "#0x2" },
		IndirectIncrement: func(uint16) string { return "#-0x1" },
	},
}

// Text is the textual form of an instruction.
type Text struct {
	Mnemonic string
	Operands []string
}

// String returns the mnemonic followed by the comma separated operands.
func (t Text) String() string {
	if len(t.Operands) == 0 {
		return t.Mnemonic
	}
	return t.Mnemonic + " " + t.OperandList()
}

// OperandList returns the comma separated operands.
func (t Text) OperandList() string {
	return strings.Join(t.Operands, ", ")
}

// Formatter converts decoded instructions to text.
type Formatter struct {
	aliases AliasTable
}

// NewFormatter returns a formatter that prints the given aliases instead of
// the core instructions that they are encoded as.
func NewFormatter(aliases AliasTable) *Formatter {
	return &Formatter{
		aliases: aliases,
	}
}

var defaultFormatter = NewFormatter(DefaultAliases)

// FormatInstruction returns the text of the instruction using the default alias table.
func FormatInstruction(ins *Instruction) Text {
	return defaultFormatter.Format(ins)
}

// Format returns the text of the instruction.
func (f *Formatter) Format(ins *Instruction) Text {
	if ins.Invalid {
		return Text{Mnemonic: badInstruction}
	}

	if alias, ok := f.aliases.Match(ins); ok {
		text := Text{Mnemonic: sizedMnemonic(alias.Name, ins.Size)}
		switch {
		case alias.PrintSource:
			text.Operands = []string{operand(ins.SourceRegister, ins.SourceMode, ins.SourceValue)}
		case alias.PrintDest:
			text.Operands = []string{operand(ins.DestRegister, ins.DestMode, ins.DestValue)}
		}
		return text
	}

	info, _ := LookupOpcode(ins.Format, ins.Opcode)
	text := Text{Mnemonic: sizedMnemonic(info.Name, ins.Size)}

	switch ins.Format {
	case SingleOperand:
		text.Operands = []string{operand(ins.DestRegister, ins.DestMode, ins.DestValue)}
	case ConditionalJump:
		text.Operands = []string{address(ins.BranchTarget())}
	case DoubleOperand:
		text.Operands = []string{
			operand(ins.SourceRegister, ins.SourceMode, ins.SourceValue),
			operand(ins.DestRegister, ins.DestMode, ins.DestValue),
		}
	}
	return text
}

func sizedMnemonic(name string, size Size) string {
	if size == Byte {
		return name + byteSuffix
	}
	return name
}

// address renders an address or immediate value.
func address(value uint16) string {
	return fmt.Sprintf("#0x%04x", value)
}

// operand renders a register operand in the given addressing mode.
func operand(reg Register, mode Mode, value uint16) string {
	if reg >= RegisterCount || mode > IndirectIncrement {
		return invalidRegister
	}

	if templates, ok := constantOperands[reg]; ok {
		return templates[mode](value)
	}

	switch mode {
	case Direct:
		return reg.String()
	case Indexed:
		return fmt.Sprintf("0x%x(%s)", value, reg)
	case Indirect:
		return "@" + reg.String()
	default:
		if reg == PC {
			return address(value)
		}
		return "@" + reg.String() + "+"
	}
}
