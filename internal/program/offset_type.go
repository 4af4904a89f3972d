package program

// OffsetType defines the type of a program offset.
type OffsetType uint8

// offset types.
const (
	CodeOffset        OffsetType = 1 << iota
	InvalidCode                  // undecodable instruction that ends the execution flow
	BranchDestination            // target of a jump or branch
	EntryPoint                   // reset vector or additional entry point
	Overlapping                  // covers the start of another instruction
)

// IsType returns whether the offset is of given type.
func (o *Offset) IsType(typ OffsetType) bool {
	ret := o.Type&typ != 0
	return ret
}

// SetType sets the type of the offset.
func (o *Offset) SetType(typ OffsetType) {
	o.Type |= typ
}
