package msp430

// Field is an alias pattern field that either matches any value or exactly one.
// The zero value matches any value.
type Field[T comparable] struct {
	value T
	set   bool
}

// Is returns a field that only matches the given value.
func Is[T comparable](value T) Field[T] {
	return Field[T]{value: value, set: true}
}

// Matches returns whether the field matches the given value.
func (f Field[T]) Matches(value T) bool {
	return !f.set || f.value == value
}

// Alias describes an emulated instruction, a conventional mnemonic for a
// specific encoding of a core instruction.
type Alias struct {
	Name string

	Format         Field[Format]
	Opcode         Field[Opcode]
	SourceRegister Field[Register]
	DestRegister   Field[Register]
	SourceMode     Field[Mode]
	DestMode       Field[Mode]

	PrintSource   bool // print the source operand
	PrintDest     bool // print the destination operand, if the source is not printed
	OperandsMatch bool // source and destination operand have to be identical
}

// Matches returns whether the instruction is an encoding of the alias.
func (a Alias) Matches(ins *Instruction) bool {
	if !a.Format.Matches(ins.Format) ||
		!a.Opcode.Matches(ins.Opcode) ||
		!a.SourceRegister.Matches(ins.SourceRegister) ||
		!a.DestRegister.Matches(ins.DestRegister) ||
		!a.SourceMode.Matches(ins.SourceMode) ||
		!a.DestMode.Matches(ins.DestMode) {
		return false
	}

	if a.OperandsMatch {
		return ins.SourceRegister == ins.DestRegister &&
			ins.SourceMode == ins.DestMode &&
			ins.SourceValue == ins.DestValue
	}
	return true
}

// AliasTable is an ordered list of aliases. The first matching entry wins, so
// specific aliases have to be listed before broader ones.
type AliasTable []Alias

// Match returns the first alias that matches the instruction.
func (t AliasTable) Match(ins *Instruction) (Alias, bool) {
	for _, alias := range t {
		if alias.Matches(ins) {
			return alias, true
		}
	}
	return Alias{}, false
}

// With returns a copy of the table with the given aliases appended.
func (t AliasTable) With(aliases ...Alias) AliasTable {
	table := make(AliasTable, 0, len(t)+len(aliases))
	table = append(table, t...)
	return append(table, aliases...)
}

// constantAlias returns an alias for a double operand opcode that uses a constant
// generator register and mode as source.
func constantAlias(name string, opcode Opcode, source Register, mode Mode) Alias {
	return Alias{
		Name:           name,
		Format:         Is(DoubleOperand),
		Opcode:         Is(opcode),
		SourceRegister: Is(source),
		SourceMode:     Is(mode),
		PrintDest:      true,
	}
}

// statusAlias returns an alias for a status register bit manipulation.
func statusAlias(name string, opcode Opcode, source Register, mode Mode) Alias {
	return Alias{
		Name:           name,
		Format:         Is(DoubleOperand),
		Opcode:         Is(opcode),
		SourceRegister: Is(source),
		DestRegister:   Is(SR),
		SourceMode:     Is(mode),
		DestMode:       Is(Direct),
	}
}

// DefaultAliases contains the emulated instructions of the MSP430 instruction set.
var DefaultAliases = AliasTable{
	{
		Name:          "NOP",
		Format:        Is(DoubleOperand),
		Opcode:        Is(Mov),
		OperandsMatch: true,
	},
	{
		Name:           "RET",
		Format:         Is(DoubleOperand),
		Opcode:         Is(Mov),
		SourceRegister: Is(SP),
		DestRegister:   Is(PC),
		SourceMode:     Is(IndirectIncrement),
		DestMode:       Is(Direct),
	},
	{
		Name:           "POP",
		Format:         Is(DoubleOperand),
		Opcode:         Is(Mov),
		SourceRegister: Is(SP),
		SourceMode:     Is(IndirectIncrement),
		DestMode:       Is(Direct),
		PrintDest:      true,
	},
	{
		Name:         "BR",
		Format:       Is(DoubleOperand),
		Opcode:       Is(Mov),
		DestRegister: Is(PC),
		DestMode:     Is(Direct),
		PrintSource:  true,
	},

	statusAlias("CLRC", Bic, CG, Indexed),
	statusAlias("SETC", Bis, CG, Indexed),
	statusAlias("CLRZ", Bic, CG, Indirect),
	statusAlias("SETZ", Bis, CG, Indirect),
	statusAlias("CLRN", Bic, SR, Indirect),
	statusAlias("SETN", Bis, SR, Indirect),
	statusAlias("DINT", Bic, SR, IndirectIncrement),
	statusAlias("EINT", Bis, SR, IndirectIncrement),

	constantAlias("CLR", Mov, CG, Direct),
	constantAlias("TST", Cmp, CG, Direct),
	constantAlias("INC", Add, CG, Indexed),
	constantAlias("INCD", Add, CG, Indirect),
	constantAlias("DEC", Sub, CG, Indexed),
	constantAlias("DECD", Sub, CG, Indirect),
	constantAlias("INV", Xor, CG, IndirectIncrement),
	constantAlias("ADC", Addc, CG, Direct),
	constantAlias("SBC", Subc, CG, Direct),
	constantAlias("DADC", Dadd, CG, Direct),

	{
		Name:          "RLA",
		Format:        Is(DoubleOperand),
		Opcode:        Is(Add),
		PrintDest:     true,
		OperandsMatch: true,
	},
	{
		Name:          "RLC",
		Format:        Is(DoubleOperand),
		Opcode:        Is(Addc),
		PrintDest:     true,
		OperandsMatch: true,
	},
}
