package detector

import (
	"testing"

	"github.com/retroenv/msp430disasm/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestDetect(t *testing.T) {
	logger := log.NewTestLogger(t)
	d := New(logger)

	tests := []struct {
		name       string
		formatOpt  string
		inputFile  string
		wantFormat Format
		wantErr    bool
	}{
		{
			name:       "explicit binary format option",
			formatOpt:  "bin",
			inputFile:  "hollywood.txt",
			wantFormat: Binary,
		},
		{
			name:       "explicit dump format option",
			formatOpt:  "DUMP",
			inputFile:  "image.bin",
			wantFormat: Dump,
		},
		{
			name:      "unsupported format option",
			formatOpt: "elf",
			inputFile: "image.bin",
			wantErr:   true,
		},
		{
			name:       "detect from .txt extension",
			inputFile:  "new_orleans.txt",
			wantFormat: Dump,
		},
		{
			name:       "unknown extension defaults to binary",
			inputFile:  "image.rom",
			wantFormat: Binary,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := options.Program{
				Input:  tt.inputFile,
				Format: tt.formatOpt,
			}

			got, err := d.Detect(opts)
			if tt.wantErr {
				assert.ErrorContains(t, err, "unsupported input format")
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantFormat, got)
		})
	}
}

func TestDetectFromFile(t *testing.T) {
	tests := []struct {
		name       string
		filename   string
		wantFormat Format
	}{
		{
			name:       ".dump extension",
			filename:   "sydney.dump",
			wantFormat: Dump,
		},
		{
			name:       ".TXT extension (uppercase)",
			filename:   "CUSCO.TXT",
			wantFormat: Dump,
		},
		{
			name:       ".objdump extension",
			filename:   "firmware.objdump",
			wantFormat: Dump,
		},
		{
			name:       "no extension",
			filename:   "image",
			wantFormat: Binary,
		},
		{
			name:       ".bin extension",
			filename:   "image.bin",
			wantFormat: Binary,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantFormat, detectFromFile(tt.filename))
		})
	}
}
