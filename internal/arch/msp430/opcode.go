package msp430

// Opcode is an opcode number. The same number names different operations
// in different formats.
type Opcode uint8

// Single operand opcodes.
const (
	Rrc  Opcode = 0
	Swpb Opcode = 1
	Rra  Opcode = 2
	Sxt  Opcode = 3
	Push Opcode = 4
	Call Opcode = 5
	Reti Opcode = 6
)

// Conditional jump opcodes.
const (
	Jne Opcode = 0 // JNZ
	Jeq Opcode = 1 // JZ
	Jnc Opcode = 2 // JLO
	Jc  Opcode = 3 // JHS
	Jn  Opcode = 4
	Jge Opcode = 5
	Jl  Opcode = 6
	Jmp Opcode = 7
)

// Double operand opcodes.
const (
	Mov  Opcode = 4
	Add  Opcode = 5
	Addc Opcode = 6
	Subc Opcode = 7
	Sub  Opcode = 8
	Cmp  Opcode = 9
	Dadd Opcode = 10
	Bit  Opcode = 11
	Bic  Opcode = 12
	Bis  Opcode = 13
	Xor  Opcode = 14
	And  Opcode = 15
)

const opcodeCount = 16

// OpcodeInfo contains the static information of an opcode.
type OpcodeInfo struct {
	Name       string
	NoByteMode bool // the .B variant is not a valid instruction
}

var opcodes = [...][opcodeCount]OpcodeInfo{
	SingleOperand: {
		Rrc:  {Name: "RRC"},
		Swpb: {Name: "SWPB", NoByteMode: true},
		Rra:  {Name: "RRA"},
		Sxt:  {Name: "SXT", NoByteMode: true},
		Push: {Name: "PUSH"},
		Call: {Name: "CALL", NoByteMode: true},
		Reti: {Name: "RETI", NoByteMode: true},
	},
	ConditionalJump: {
		Jne: {Name: "JNE"},
		Jeq: {Name: "JEQ"},
		Jnc: {Name: "JNC"},
		Jc:  {Name: "JC"},
		Jn:  {Name: "JN"},
		Jge: {Name: "JGE"},
		Jl:  {Name: "JL"},
		Jmp: {Name: "JMP"},
	},
	DoubleOperand: {
		Mov:  {Name: "MOV"},
		Add:  {Name: "ADD"},
		Addc: {Name: "ADDC"},
		Subc: {Name: "SUBC"},
		Sub:  {Name: "SUB"},
		Cmp:  {Name: "CMP"},
		Dadd: {Name: "DADD"},
		Bit:  {Name: "BIT"},
		Bic:  {Name: "BIC"},
		Bis:  {Name: "BIS"},
		Xor:  {Name: "XOR"},
		And:  {Name: "AND"},
	},
}

// LookupOpcode returns the information for the opcode of the given format and
// whether the opcode is known.
func LookupOpcode(format Format, opcode Opcode) (OpcodeInfo, bool) {
	if int(format) >= len(opcodes) || opcode >= opcodeCount {
		return OpcodeInfo{}, false
	}
	info := opcodes[format][opcode]
	return info, info.Name != ""
}
