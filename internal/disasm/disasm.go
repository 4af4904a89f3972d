// Package disasm implements the control flow driven MSP430 disassembler.
package disasm

import (
	"fmt"
	"hash/crc32"
	"io"

	"github.com/retroenv/msp430disasm/internal/arch/msp430"
	"github.com/retroenv/msp430disasm/internal/memory"
	"github.com/retroenv/msp430disasm/internal/options"
	"github.com/retroenv/msp430disasm/internal/program"
	"github.com/retroenv/msp430disasm/internal/queue"
	"github.com/retroenv/msp430disasm/internal/writer"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// decodeFunc decodes the instruction at the given address.
type decodeFunc func(mem msp430.Memory, address uint16) *msp430.Instruction

// Stats contains counters of the execution flow tracing.
type Stats struct {
	Decoded int // number of decoded instructions
	Invalid int // number of instructions that could not be decoded
	Dropped int // number of addresses dropped because the work queue was full
}

// Disasm implements a disassembler.
type Disasm struct {
	logger    *log.Logger
	options   options.Disassembler
	mem       *memory.Image
	decode    decodeFunc
	formatter *msp430.Formatter

	instructions       map[uint16]*msp430.Instruction // decoded instructions by start address
	offsetsToParse     *queue.Queue[uint16]
	branchDestinations set.Set[uint16] // set of all addresses that are branched to
	entryPoints        set.Set[uint16]

	stats Stats
}

// New creates a new disassembler for the given memory image.
func New(logger *log.Logger, mem *memory.Image, options options.Disassembler) *Disasm {
	return &Disasm{
		logger:             logger,
		options:            options,
		mem:                mem,
		decode:             msp430.Decode,
		formatter:          msp430.NewFormatter(msp430.DefaultAliases),
		instructions:       map[uint16]*msp430.Instruction{},
		offsetsToParse:     queue.New[uint16](options.QueueSize),
		branchDestinations: set.New[uint16](),
		entryPoints:        set.New[uint16](),
	}
}

// Process disassembles the memory image and writes the listing to the writer.
func (dis *Disasm) Process(mainWriter io.Writer) (*program.Program, error) {
	dis.Explore()

	app := dis.convertToProgram()
	listing := writer.New(app, mainWriter, writer.Options{
		HeaderComments: dis.options.HeaderComments,
		HexComments:    dis.options.HexComments,
		FlowComments:   dis.options.FlowComments,
	})
	if err := listing.Write(); err != nil {
		return nil, fmt.Errorf("writing listing: %w", err)
	}
	return app, nil
}

// Explore follows the execution flow starting at the reset vector and all
// configured entry points until no address is left to parse. Calling it again
// has no effect as all reachable addresses are decoded already.
func (dis *Disasm) Explore() {
	resetVector := dis.mem.ResetVector()
	dis.logger.Debug("Reset vector", log.Hex("address", resetVector))

	dis.entryPoints.Add(resetVector)
	dis.addAddressToParse(resetVector)
	for _, address := range dis.options.EntryPoints {
		dis.entryPoints.Add(address)
		dis.addAddressToParse(address)
	}

	dis.followExecutionFlow()

	dis.logger.Debug("Execution flow traced",
		log.Int("decoded", dis.stats.Decoded),
		log.Int("invalid", dis.stats.Invalid),
		log.Int("dropped", dis.stats.Dropped))
}

// Instructions returns all decoded instructions by their start address.
// The returned map must not be modified.
func (dis *Disasm) Instructions() map[uint16]*msp430.Instruction {
	return dis.instructions
}

// Stats returns the counters of the execution flow tracing.
func (dis *Disasm) Stats() Stats {
	return dis.stats
}

// followExecutionFlow decodes instructions and follows the execution flow to parse all code.
func (dis *Disasm) followExecutionFlow() {
	for {
		address, ok := dis.offsetsToParse.Pop()
		if !ok {
			return
		}
		if _, ok := dis.instructions[address]; ok {
			continue // already visited
		}

		ins := dis.decode(dis.mem, address)
		dis.instructions[address] = ins
		dis.stats.Decoded++

		if ins.Invalid {
			dis.stats.Invalid++
			dis.logger.Debug("Invalid instruction ends execution flow",
				log.Hex("address", address),
				log.Hex("word", dis.mem.Word(address)))
			continue
		}

		switch {
		case ins.Format == msp430.ConditionalJump:
			dis.branchDestinations.Add(ins.BranchTarget())
		case ins.IsBranchImmediate():
			dis.branchDestinations.Add(ins.SourceValue)
		}

		for _, next := range msp430.Successors(ins) {
			dis.addAddressToParse(next)
		}
	}
}

// addAddressToParse adds an address to the queue of addresses to be processed.
// Addresses that were already parsed are filtered when they are taken from the
// queue. If the queue is full the address is dropped.
func (dis *Disasm) addAddressToParse(address uint16) {
	if dis.offsetsToParse.Push(address) {
		return
	}

	dis.stats.Dropped++
	if dis.stats.Dropped == 1 {
		dis.logger.Warn("Work queue is full, not all code paths will be disassembled",
			log.Int("queue_size", dis.offsetsToParse.Cap()))
	}
	dis.logger.Debug("Dropped address to parse",
		log.Hex("address", address),
		log.Int("pending", dis.offsetsToParse.Len()))
}

// convertToProgram converts the internal disassembly representation to a program type
// that will be used by the listing writer.
func (dis *Disasm) convertToProgram() *program.Program {
	app := program.New(dis.mem.ResetVector())
	app.EntryPoints = dis.options.EntryPoints
	app.Checksum = crc32.ChecksumIEEE(dis.mem.Data())

	addresses := dis.sortedAddresses()
	app.Offsets = make([]program.Offset, 0, len(addresses))

	for _, address := range addresses {
		ins := dis.instructions[address]
		text := dis.formatter.Format(ins)

		offset := program.Offset{
			Address:  address,
			Data:     dis.mem.Bytes(address, int(ins.Length)),
			Mnemonic: text.Mnemonic,
			Operands: text.OperandList(),
		}

		offset.SetType(program.CodeOffset)
		if ins.Invalid {
			offset.SetType(program.InvalidCode)
		}
		if dis.branchDestinations.Contains(address) {
			offset.SetType(program.BranchDestination)
		}
		if dis.entryPoints.Contains(address) {
			offset.SetType(program.EntryPoint)
		}

		app.Offsets = append(app.Offsets, offset)
	}

	dis.processOverlaps(app)
	return app
}
