package msp430

// testMemory is a sparse word addressed memory that records all reads.
type testMemory struct {
	words map[uint16]uint16
	reads []uint16
}

// newTestMemory returns a memory with the given words stored consecutively
// starting at address.
func newTestMemory(address uint16, words ...uint16) *testMemory {
	m := &testMemory{
		words: make(map[uint16]uint16, len(words)),
	}
	for i, w := range words {
		m.words[address+uint16(2*i)] = w
	}
	return m
}

func (m *testMemory) Word(address uint16) uint16 {
	m.reads = append(m.reads, address)
	return m.words[address]
}

// decodeWords decodes the given words stored at address.
func decodeWords(address uint16, words ...uint16) *Instruction {
	return Decode(newTestMemory(address, words...), address)
}
