// Package pipeline orchestrates the disassembly workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/retroenv/msp430disasm/internal/detector"
	"github.com/retroenv/msp430disasm/internal/disasm"
	"github.com/retroenv/msp430disasm/internal/loader"
	"github.com/retroenv/msp430disasm/internal/memory"
	"github.com/retroenv/msp430disasm/internal/options"
	"github.com/retroenv/msp430disasm/internal/program"
	"github.com/retroenv/retrogolib/log"
)

// Result of a disassembly run.
type Result struct {
	Program *program.Program
	Stats   disasm.Stats
	Symbols []loader.Symbol // symbols of the loaded image, not applied to the listing
}

// Pipeline orchestrates the complete disassembly workflow.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
}

// New creates a new disassembly pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
	}
}

// Execute runs the complete disassembly pipeline.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, disasmOpts options.Disassembler, writer io.Writer) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("processing %s: %w", opts.Input, err)
	}

	format, err := p.detector.Detect(opts)
	if err != nil {
		return nil, fmt.Errorf("detecting input format: %w", err)
	}

	mem, syms, err := p.loader.Load(opts, format)
	if err != nil {
		return nil, fmt.Errorf("loading memory image: %w", err)
	}

	p.printInfo(opts, format, mem, len(syms))

	result, err := p.ExecuteWithImage(ctx, mem, disasmOpts, writer)
	if err != nil {
		return nil, err
	}
	result.Symbols = syms
	return result, nil
}

// ExecuteWithImage runs the disassembly pipeline with a pre-loaded memory image.
// This is useful for testing and programmatic usage where the image is already in memory.
func (p *Pipeline) ExecuteWithImage(ctx context.Context, mem *memory.Image,
	disasmOpts options.Disassembler, writer io.Writer) (*Result, error) {

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("disassembling: %w", err)
	}

	dis := disasm.New(p.logger, mem, disasmOpts)
	app, err := dis.Process(writer)
	if err != nil {
		return nil, fmt.Errorf("disassembling: %w", err)
	}

	stats := dis.Stats()
	if stats.Dropped > 0 {
		p.logger.Debug("Increase the work queue size to disassemble all code paths",
			log.Int("queue_size", disasmOpts.QueueSize),
			log.Int("dropped", stats.Dropped))
	}

	return &Result{
		Program: app,
		Stats:   stats,
	}, nil
}

// printInfo prints information about the memory image being processed.
func (p *Pipeline) printInfo(opts options.Program, format detector.Format, mem *memory.Image, symbolCount int) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Processing memory image",
		log.String("file", opts.Input),
		log.String("format", string(format)),
		log.Hex("reset_vector", mem.ResetVector()),
		log.Int("symbols", symbolCount),
	)
}
