// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/retroenv/msp430disasm/internal/detector"
	"github.com/retroenv/msp430disasm/internal/options"
	"github.com/retroenv/retrogolib/set"
)

// minQueueSize is the smallest work queue that can hold an address.
const minQueueSize = 2

// ParseFlags parses command line flags and returns program and disassembler options
func ParseFlags() (options.Program, options.Disassembler, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	var opts options.Program
	disasmOptions := options.NewDisassembler()
	var entryPoints string

	readOptionFlags(flags, &opts)
	readDisasmOptionFlags(flags, &disasmOptions, &entryPoints)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Batch == "") {
		return opts, options.Disassembler{}, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, options.Disassembler{}, err
	}

	if err := normalizeOptions(&opts, &disasmOptions, entryPoints); err != nil {
		return opts, options.Disassembler{}, err
	}

	if opts.Batch == "" {
		opts.Input = args[0]
	}

	return opts, disasmOptions, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: msp430disasm [options] <memory image to disassemble>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after file to disassemble, please pass the file to disassemble as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program, disasmOptions *options.Disassembler, entryPoints string) error {
	if opts.Format != "" {
		format, err := detector.FormatFromString(opts.Format)
		if err != nil {
			return fmt.Errorf("%w. Valid options: bin, dump", err)
		}
		opts.Format = string(format)
	}

	if disasmOptions.QueueSize < minQueueSize {
		return fmt.Errorf("invalid work queue size %d, minimum is %d", disasmOptions.QueueSize, minQueueSize)
	}

	addresses, err := parseAddresses(entryPoints)
	if err != nil {
		return fmt.Errorf("parsing entry points: %w", err)
	}
	disasmOptions.EntryPoints = addresses
	return nil
}

// parseAddresses parses a comma separated list of hex addresses, duplicates
// are removed while keeping the order.
func parseAddresses(s string) ([]uint16, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	seen := set.New[uint16]()
	var addresses []uint16

	for field := range strings.SplitSeq(s, ",") {
		field = strings.TrimSpace(field)
		field = strings.TrimPrefix(strings.ToLower(field), "0x")
		if field == "" {
			return nil, errors.New("empty address")
		}

		value, err := strconv.ParseUint(field, 16, 16)
		if err != nil {
			return nil, fmt.Errorf("invalid address '%s': %w", field, err)
		}

		address := uint16(value)
		if seen.Contains(address) {
			continue
		}
		seen.Add(address)
		addresses = append(addresses, address)
	}
	return addresses, nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Output, "o", "", "name of the output listing file, printed on console if no name given")
	flags.StringVar(&opts.Format, "f", "", "input format (bin, dump) - if not auto-detected from file extension")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of given path and file mask and automatically .asm file naming, for example *.bin")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}

func readDisasmOptionFlags(flags *flag.FlagSet, opts *options.Disassembler, entryPoints *string) {
	flags.StringVar(entryPoints, "e", "", "comma separated list of additional hex entry point addresses, for example 4500,0x4600")
	flags.IntVar(&opts.QueueSize, "queue", options.DefaultQueueSize, "capacity of the work queue of addresses to disassemble")
	flags.BoolVar(&opts.HexComments, "hex", false, "output instruction bytes as hex values in comments")
	flags.BoolVar(&opts.HeaderComments, "header", false, "output checksum and entry points as comment header")
	flags.BoolVar(&opts.FlowComments, "flow", false, "mark entry points, branch destinations and invalid instructions in comments")
}
