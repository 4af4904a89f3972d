package msp430

// Successors returns the addresses that can be executed after the instruction.
// Invalid instructions end the execution flow, unconditional jumps and
// branches to an immediate address have no fall-through successor.
func Successors(ins *Instruction) []uint16 {
	switch {
	case ins.Invalid:
		return nil

	case ins.Format == ConditionalJump:
		if ins.Opcode == Jmp {
			return []uint16{ins.BranchTarget()}
		}
		return []uint16{ins.BranchTarget(), ins.NextAddress()}

	case ins.IsBranchImmediate():
		return []uint16{ins.SourceValue}

	default:
		return []uint16{ins.NextAddress()}
	}
}
