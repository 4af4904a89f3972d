// Package options contains the program options.
package options

// DefaultQueueSize is the default number of slots of the work queue of
// addresses to disassemble.
const DefaultQueueSize = 0x100

// Program options of the disassembler.
type Program struct {
	Input  string // input image file
	Output string // output listing file, printed on console if empty
	Batch  string // glob pattern of input files to process
	Format string // input format, auto-detected from the file extension if empty

	Debug bool
	Quiet bool
}

// Disassembler defines options to control the disassembler.
type Disassembler struct {
	EntryPoints []uint16 // additional entry points besides the reset vector
	QueueSize   int      // number of slots of the work queue

	HeaderComments bool // output checksum and reset vector as comment header
	HexComments    bool // output instruction bytes as hex values in comments
	FlowComments   bool // output entry points, branch destinations and invalid instructions in comments
}

// NewDisassembler returns a new options instance with default options.
func NewDisassembler() Disassembler {
	return Disassembler{
		QueueSize: DefaultQueueSize,
	}
}
