// Package loader handles memory image loading operations.
package loader

import (
	"bufio"
	"cmp"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/retroenv/msp430disasm/internal/detector"
	"github.com/retroenv/msp430disasm/internal/memory"
	"github.com/retroenv/msp430disasm/internal/options"
)

// ErrInvalidDump is returned when a memory dump listing can not be parsed.
var ErrInvalidDump = errors.New("invalid memory dump")

// dumpWord matches a data word of an instruction line, any characters
// following the first 4 hex digits are ignored.
var dumpWord = regexp.MustCompile(`^[0-9a-f]{4}`)

// Symbol is a named address of a memory dump.
type Symbol struct {
	Address uint16
	Name    string
}

// Loader handles loading memory images from disk.
type Loader struct{}

// New creates a new memory image loader.
func New() *Loader {
	return &Loader{}
}

// Load loads a memory image file in the given format. Symbols are only
// returned for memory dump listings.
func (l *Loader) Load(opts options.Program, format detector.Format) (*memory.Image, []Symbol, error) {
	file, err := os.Open(opts.Input)
	if err != nil {
		return nil, nil, fmt.Errorf("opening file %s: %w", opts.Input, err)
	}
	defer func() { _ = file.Close() }()

	return l.LoadFromReader(file, format)
}

// LoadFromReader loads a memory image in the given format from a reader.
func (l *Loader) LoadFromReader(reader io.Reader, format detector.Format) (*memory.Image, []Symbol, error) {
	switch format {
	case detector.Dump:
		mem, symbols, err := ParseDump(reader)
		if err != nil {
			return nil, nil, fmt.Errorf("parsing memory dump: %w", err)
		}
		return mem, symbols, nil

	case detector.Binary:
		data, err := io.ReadAll(reader)
		if err != nil {
			return nil, nil, fmt.Errorf("reading memory image: %w", err)
		}
		mem, err := memory.New(data)
		if err != nil {
			return nil, nil, fmt.Errorf("loading memory image: %w", err)
		}
		return mem, nil, nil

	default:
		return nil, nil, fmt.Errorf("unsupported input format '%s'", format)
	}
}

// ParseDump parses a memory dump listing and returns the memory image and the
// symbols that it contains. The listing consists of these line types:
//
//	4400:  3140 0044 1542 5c01   1@.D.B\.
//	4538:  "Hello\n"
//	4400 <__init_stack>
//	4438 main:
//
// Memory that is not covered by the listing is zero.
func ParseDump(reader io.Reader) (*memory.Image, []Symbol, error) {
	data := make([]byte, memory.Size)
	var symbols []Symbol

	scanner := bufio.NewScanner(reader)
	for lineNumber := 1; scanner.Scan(); lineNumber++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		symbol, err := parseDumpLine(data, line)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", lineNumber, err)
		}
		if symbol != nil {
			symbols = append(symbols, *symbol)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading memory dump: %w", err)
	}

	mem, err := memory.New(data)
	if err != nil {
		return nil, nil, fmt.Errorf("creating memory image: %w", err)
	}
	return mem, symbols, nil
}

func parseDumpLine(data []byte, line string) (*Symbol, error) {
	if len(line) < 5 {
		return nil, fmt.Errorf("%w: line too short '%s'", ErrInvalidDump, line)
	}
	address, err := strconv.ParseUint(line[:4], 16, 16)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid address '%s'", ErrInvalidDump, line[:4])
	}

	if line[4] != ':' {
		name := strings.TrimSpace(line[5:])
		switch {
		case strings.HasPrefix(name, "<") && strings.HasSuffix(name, ">"):
			name = name[1 : len(name)-1]
		case strings.HasSuffix(name, ":"):
			name = name[:len(name)-1]
		}
		return &Symbol{Address: uint16(address), Name: name}, nil
	}

	content := strings.TrimSpace(line[5:])
	if strings.HasPrefix(content, `"`) {
		value, err := strconv.Unquote(content)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid string %s", ErrInvalidDump, content)
		}
		copy(data[address:], value)
		return nil, nil
	}

	var words []byte
	for field := range strings.SplitSeq(content, " ") {
		if !dumpWord.MatchString(field) {
			break
		}
		// words are listed in memory byte order
		high, _ := strconv.ParseUint(field[:2], 16, 8)
		low, _ := strconv.ParseUint(field[2:4], 16, 8)
		words = append(words, byte(high), byte(low))
	}
	copy(data[address:], words)
	return nil, nil
}

// WriteSymbols writes the symbols sorted by address as one "0x%04x name" line
// per symbol.
func WriteSymbols(writer io.Writer, symbols []Symbol) error {
	sorted := slices.Clone(symbols)
	slices.SortStableFunc(sorted, func(a, b Symbol) int {
		return cmp.Or(cmp.Compare(a.Address, b.Address), strings.Compare(a.Name, b.Name))
	})

	for _, symbol := range sorted {
		if _, err := fmt.Fprintf(writer, "0x%04x %s\n", symbol.Address, symbol.Name); err != nil {
			return fmt.Errorf("writing symbol: %w", err)
		}
	}
	return nil
}
