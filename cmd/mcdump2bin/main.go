// Package main implements a converter of memory dump listings to raw memory images
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/retroenv/msp430disasm/internal/loader"
	"github.com/retroenv/retrogolib/buildinfo"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

// stdinBase is the output base name used when the dump is read from stdin.
const stdinBase = "input"

type optionFlags struct {
	input  string
	output string

	verify bool
	quiet  bool
}

func main() {
	options := readArguments()

	if !options.quiet {
		printBanner(options)
	}

	if err := convertFile(options); err != nil {
		fmt.Println(fmt.Errorf("converting failed: %w", err))
		os.Exit(1)
	}
}

func readArguments() optionFlags {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	options := optionFlags{}

	flags.StringVar(&options.output, "o", "", "base name of the output .bin and .symbols files, defaults to the input name")
	flags.BoolVar(&options.verify, "verify", false, "verify the written memory image by reading it back")
	flags.BoolVar(&options.quiet, "q", false, "perform operations quietly")

	err := flags.Parse(os.Args[1:])
	args := flags.Args()

	if err != nil || len(args) == 0 {
		printBanner(options)
		fmt.Printf("usage: mcdump2bin [options] <memory dump to convert, - for stdin>\n\n")
		flags.PrintDefaults()
		os.Exit(1)
	}
	options.input = args[0]

	return options
}

func printBanner(options optionFlags) {
	if !options.quiet {
		fmt.Println("[----------------------------------------------------]")
		fmt.Println("[ mcdump2bin - memory dump to memory image converter ]")
		fmt.Printf("[----------------------------------------------------]\n\n")
		fmt.Printf("version: %s\n\n", buildinfo.Version(version, commit, date))
	}
}

func convertFile(options optionFlags) error {
	var reader io.Reader
	if options.input == "-" {
		reader = os.Stdin
	} else {
		file, err := os.Open(options.input)
		if err != nil {
			return fmt.Errorf("opening file '%s': %w", options.input, err)
		}
		defer func() { _ = file.Close() }()
		reader = file
	}

	base := outputBase(options)
	symbolCount, err := convert(reader, base)
	if err != nil {
		return err
	}

	if options.verify {
		if err := verifyOutput(options.input, base); err != nil {
			return err
		}
	}

	if !options.quiet {
		fmt.Printf("Wrote %s.bin and %s.symbols with %d symbols.\n", base, base, symbolCount)
	}
	return nil
}

// outputBase returns the base name of the output files.
func outputBase(options optionFlags) string {
	switch {
	case options.output != "":
		return options.output
	case options.input == "-":
		return stdinBase
	default:
		ext := filepath.Ext(options.input)
		return options.input[:len(options.input)-len(ext)]
	}
}

// convert parses the dump from the reader and writes the memory image and the
// symbol list using the given base name.
func convert(reader io.Reader, base string) (int, error) {
	mem, symbols, err := loader.ParseDump(reader)
	if err != nil {
		return 0, fmt.Errorf("parsing memory dump: %w", err)
	}

	if err := os.WriteFile(base+".bin", mem.Data(), 0o644); err != nil {
		return 0, fmt.Errorf("writing memory image: %w", err)
	}

	var buf bytes.Buffer
	if err := loader.WriteSymbols(&buf, symbols); err != nil {
		return 0, fmt.Errorf("writing symbols: %w", err)
	}
	if err := os.WriteFile(base+".symbols", buf.Bytes(), 0o644); err != nil {
		return 0, fmt.Errorf("writing symbols file: %w", err)
	}

	return len(symbols), nil
}

func verifyOutput(input, base string) error {
	if input == "-" {
		return errors.New("can not verify stdin input")
	}

	source, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("opening file for comparison: %w", err)
	}
	defer func() { _ = source.Close() }()

	expected, _, err := loader.ParseDump(source)
	if err != nil {
		return fmt.Errorf("parsing memory dump for comparison: %w", err)
	}

	written, err := os.ReadFile(base + ".bin")
	if err != nil {
		return fmt.Errorf("reading file for comparison: %w", err)
	}

	return compareImages(expected.Data(), written)
}

// compareImages reports the first byte where the written image deviates
// from the parsed dump.
func compareImages(expected, written []byte) error {
	if bytes.Equal(expected, written) {
		return nil
	}
	if len(expected) != len(written) {
		return fmt.Errorf("written image has %d bytes, expected %d", len(written), len(expected))
	}
	for i := range expected {
		if expected[i] != written[i] {
			return fmt.Errorf("written image differs at 0x%04x: 0x%02x != 0x%02x", i, written[i], expected[i])
		}
	}
	return nil
}
