// Package fileprocessor handles file loading and processing operations
package fileprocessor

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/retroenv/msp430disasm/internal/options"
	"github.com/retroenv/msp430disasm/internal/pipeline"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile handles the complete file processing workflow
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program, disasmOptions options.Disassembler) (err error) {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("processing %s: %w", opts.Input, err)
	}

	writer, err := createWriter(opts)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}
	defer func() {
		if closeErr := closeWriter(writer); closeErr != nil && err == nil {
			err = fmt.Errorf("closing output file %s: %w", opts.Output, closeErr)
		}
	}()

	result, err := pipeline.New(logger).Execute(ctx, opts, disasmOptions, writer)
	if err != nil {
		return fmt.Errorf("disassembling %s: %w", opts.Input, err)
	}

	logger.Info("Disassembled memory image",
		log.String("file", opts.Input),
		log.Int("instructions", result.Stats.Decoded),
		log.Int("invalid", result.Stats.Invalid),
		log.Int("dropped", result.Stats.Dropped))
	return nil
}

// GetFilesToProcess returns list of files to process based on options
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch != "" {
		matches, err := filepath.Glob(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		return matches, nil
	}
	return []string{opts.Input}, nil
}

// GenerateOutputFilename generates output filename for a given input file
func GenerateOutputFilename(inputFile string) string {
	ext := filepath.Ext(inputFile)
	return inputFile[:len(inputFile)-len(ext)] + ".asm"
}

func createWriter(opts options.Program) (io.Writer, error) {
	if opts.Output == "" {
		return os.Stdout, nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, nil
}

// closeWriter closes the writer if it is a created output file.
func closeWriter(writer io.Writer) error {
	closer, ok := writer.(io.Closer)
	if !ok || writer == os.Stdout {
		return nil
	}
	return closer.Close()
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("msp430disasm", log.String("version", buildinfo.Version(version, commit, date)))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Debug("Build", log.String("date", date))
	}
}
