// Package memory provides the flat 64KB address space of an MSP430 memory image.
package memory

import (
	"errors"
	"fmt"
)

const (
	// Size is the size of the addressable memory in bytes.
	Size = 0x10000

	// ResetVectorAddress is the address of the little-endian reset vector word.
	ResetVectorAddress = 0xFFFE
)

// ErrImageSize is returned when a memory image does not cover the full address space.
var ErrImageSize = errors.New("memory image must be exactly 64KB")

// Image is a read-only view of the complete 16-bit address space.
// All address arithmetic wraps around at the end of the address space.
type Image struct {
	data []byte
}

// New returns a new memory image for the given buffer. The buffer is not copied
// and must not be modified afterwards.
func New(data []byte) (*Image, error) {
	if len(data) != Size {
		return nil, fmt.Errorf("%w: got %d bytes", ErrImageSize, len(data))
	}
	return &Image{data: data}, nil
}

// Byte reads a byte from the given address.
func (m *Image) Byte(address uint16) byte {
	return m.data[address]
}

// Word reads a little-endian word from the given address. The high byte is read
// from address+1, which wraps to 0x0000 for the last address.
func (m *Image) Word(address uint16) uint16 {
	low := uint16(m.data[address])
	high := uint16(m.data[address+1])
	return high<<8 | low
}

// Bytes returns length bytes starting at the given address, wrapping around
// at the end of the address space.
func (m *Image) Bytes(address uint16, length int) []byte {
	b := make([]byte, length)
	for i := range length {
		b[i] = m.Byte(address + uint16(i))
	}
	return b
}

// ResetVector returns the entry address stored in the reset vector.
func (m *Image) ResetVector() uint16 {
	return m.Word(ResetVectorAddress)
}

// Data returns the underlying buffer.
func (m *Image) Data() []byte {
	return m.data
}
