// Package detector handles input format detection.
package detector

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/retroenv/msp430disasm/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// Format of an input file.
type Format string

// Supported input formats.
const (
	Binary Format = "bin"  // raw 64KB memory image
	Dump   Format = "dump" // textual memory dump listing
)

// Formats contains all supported input formats.
var Formats = []Format{Binary, Dump}

// Detector handles input format detection from file extensions and options.
type Detector struct {
	logger *log.Logger
}

// New creates a new format detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the input format from options or file auto-detection.
// It first checks if a format is explicitly specified in options, otherwise
// attempts to detect the format from the input filename extension.
func (d *Detector) Detect(opts options.Program) (Format, error) {
	if opts.Format != "" {
		format, err := FormatFromString(opts.Format)
		if err != nil {
			return "", err
		}
		return format, nil
	}

	format := detectFromFile(opts.Input)
	d.logger.Debug("Auto-detected input format",
		log.String("format", string(format)),
		log.String("file", opts.Input))
	return format, nil
}

// FormatFromString returns the format matching the given name.
func FormatFromString(name string) (Format, error) {
	for _, format := range Formats {
		if strings.EqualFold(name, string(format)) {
			return format, nil
		}
	}
	return "", fmt.Errorf("unsupported input format '%s'", name)
}

// detectFromFile determines the format based on file extension.
func detectFromFile(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt", ".dump", ".objdump":
		return Dump
	default:
		return Binary
	}
}
