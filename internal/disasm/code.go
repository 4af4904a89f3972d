package disasm

import (
	"fmt"
	"slices"

	"github.com/retroenv/msp430disasm/internal/program"
	"github.com/retroenv/retrogolib/log"
)

// sortedAddresses returns the start addresses of all decoded instructions in
// increasing order.
func (dis *Disasm) sortedAddresses() []uint16 {
	addresses := make([]uint16, 0, len(dis.instructions))
	for address := range dis.instructions {
		addresses = append(addresses, address)
	}
	slices.Sort(addresses)
	return addresses
}

// processOverlaps adds comments to instructions that cover the start address of
// another decoded instruction, which happens when the execution flow branches
// into the extension word of an instruction.
func (dis *Disasm) processOverlaps(app *program.Program) {
	index := make(map[uint16]int, len(app.Offsets))
	for i, offset := range app.Offsets {
		index[offset.Address] = i
	}

	for i := range app.Offsets {
		offset := &app.Offsets[i]
		ins := dis.instructions[offset.Address]

		for j := uint16(1); j < ins.Length; j++ {
			inner, ok := index[offset.Address+j]
			if !ok {
				continue
			}

			offset.SetType(program.Overlapping)
			addComment(offset, fmt.Sprintf("overlaps instruction at 0x%04x", offset.Address+j))
			addComment(&app.Offsets[inner], fmt.Sprintf("branch into instruction at 0x%04x", offset.Address))

			dis.logger.Debug("Branch into instruction detected",
				log.Hex("instruction", offset.Address),
				log.String("code", offset.Code()),
				log.Hex("destination", offset.Address+j))
		}
	}
}

func addComment(offset *program.Offset, comment string) {
	if offset.Comment == "" {
		offset.Comment = comment
		return
	}
	offset.Comment += ", " + comment
}
