package pipeline

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/msp430disasm/internal/loader"
	"github.com/retroenv/msp430disasm/internal/memory"
	"github.com/retroenv/msp430disasm/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// selfJumpImage returns an image that contains a JMP $ instruction at the
// reset vector target 0x4400.
func selfJumpImage() []byte {
	data := make([]byte, memory.Size)
	data[0x4400] = 0xff
	data[0x4401] = 0x3f
	data[memory.ResetVectorAddress+1] = 0x44
	return data
}

func TestNew(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)

	assert.NotNil(t, p)
	assert.NotNil(t, p.logger)
	assert.NotNil(t, p.detector)
	assert.NotNil(t, p.loader)
}

//nolint:funlen // test functions can be long
func TestExecute(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)

	tmpFile := createTempFile(t, "image.bin", selfJumpImage())

	t.Run("execute pipeline successfully", func(t *testing.T) {
		opts := options.Program{
			Input: tmpFile,
			Quiet: true,
		}

		var buf bytes.Buffer
		result, err := p.Execute(context.Background(), opts, options.NewDisassembler(), &buf)
		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Equal(t, "0x4400:   JMP     #0x4400\n", buf.String())
		assert.Equal(t, 1, result.Stats.Decoded)
		assert.Equal(t, uint16(0x4400), result.Program.ResetVector)
	})

	t.Run("execute dump with symbols", func(t *testing.T) {
		dump := "4400 <__init_stack>\n4400:  ff3f\n4500 <unused>\nfffe:  0044\n"
		opts := options.Program{
			Input: createTempFile(t, "image.txt", []byte(dump)),
		}

		var buf bytes.Buffer
		result, err := p.Execute(context.Background(), opts, options.NewDisassembler(), &buf)
		assert.NoError(t, err)
		assert.Equal(t, "0x4400:   JMP     #0x4400\n", buf.String())
		assert.Equal(t, []loader.Symbol{
			{Address: 0x4400, Name: "__init_stack"},
			{Address: 0x4500, Name: "unused"},
		}, result.Symbols)
	})

	t.Run("error on non-existent file", func(t *testing.T) {
		opts := options.Program{
			Input: "/nonexistent/image.bin",
		}

		var buf bytes.Buffer
		_, err := p.Execute(context.Background(), opts, options.NewDisassembler(), &buf)
		assert.ErrorContains(t, err, "loading memory image")
	})

	t.Run("error on unsupported format", func(t *testing.T) {
		opts := options.Program{
			Input:  tmpFile,
			Format: "hex",
		}

		var buf bytes.Buffer
		_, err := p.Execute(context.Background(), opts, options.NewDisassembler(), &buf)
		assert.ErrorContains(t, err, "unsupported input format")
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		opts := options.Program{
			Input: tmpFile,
		}

		var buf bytes.Buffer
		_, err := p.Execute(ctx, opts, options.NewDisassembler(), &buf)
		assert.True(t, errors.Is(err, context.Canceled))
		assert.Equal(t, 0, buf.Len())
	})
}

func TestExecuteWithImage(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)

	mem, err := memory.New(selfJumpImage())
	assert.NoError(t, err)

	disasmOpts := options.NewDisassembler()
	disasmOpts.HexComments = true

	var buf bytes.Buffer
	result, err := p.ExecuteWithImage(context.Background(), mem, disasmOpts, &buf)
	assert.NoError(t, err)
	assert.Equal(t, "0x4400:   JMP     #0x4400                ; FF 3F\n", buf.String())
	assert.Len(t, result.Symbols, 0)
	assert.Equal(t, 1, result.Stats.Decoded)
}

func createTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, name)
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}
