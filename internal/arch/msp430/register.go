package msp430

// Register is one of the 16 CPU registers.
type Register uint8

// Registers with a special meaning, r4 to r15 are general purpose.
const (
	PC Register = 0 // program counter
	SP Register = 1 // stack pointer
	SR Register = 2 // status register, constant generator 1
	CG Register = 3 // constant generator 2
)

// RegisterCount is the number of registers.
const RegisterCount = 16

var registerNames = [RegisterCount]string{
	"pc", "sp", "sr", "cg",
	"r4", "r5", "r6", "r7",
	"r8", "r9", "r10", "r11",
	"r12", "r13", "r14", "r15",
}

// String returns the assembler name of the register.
func (r Register) String() string {
	if r >= RegisterCount {
		return invalidRegister
	}
	return registerNames[r]
}
