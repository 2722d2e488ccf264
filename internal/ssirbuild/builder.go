// Package ssirbuild assembles binary SSIR modules for tests. It mirrors
// the encoding half of the SPIR-V word format that the transpiler
// package decodes, so tests can construct both well-formed and
// deliberately malformed modules without hand-packing byte slices.
package ssirbuild

import (
	"encoding/binary"
	"math"
)

// Op is a raw SPIR-V opcode number, kept untyped here so tests can build
// instructions with opcodes outside the transpiler's supported subset
// (to exercise the "unsupported opcode" rejection path).
type Op uint16

// Builder assembles a sequence of instruction words following a fixed
// 5-word module header. It performs no validation of its own; tests
// drive it word by word, or through the higher-level helpers below, to
// get exactly the module bytes a scenario calls for.
type Builder struct {
	words  []uint32
	nextID uint32
}

// New returns a Builder with its result-id allocator starting at 1, and
// the module header reserved but not yet finalized (Bytes fills in the
// id bound once all instructions have been added).
func New() *Builder {
	return &Builder{nextID: 1}
}

// AllocID reserves and returns the next unused result id.
func (b *Builder) AllocID() uint32 {
	id := b.nextID
	b.nextID++
	return id
}

// Inst appends one instruction: opcode followed by operand words, each
// instruction self-describing its word count in the packed header word.
func (b *Builder) Inst(op Op, operands ...uint32) {
	wordCount := uint32(len(operands) + 1)
	b.words = append(b.words, (wordCount<<16)|uint32(op))
	b.words = append(b.words, operands...)
}

// RawWord appends a single raw word outside of the Inst framing, for
// tests that need to corrupt a word count or truncate a stream.
func (b *Builder) RawWord(w uint32) {
	b.words = append(b.words, w)
}

// PackString encodes s as null-terminated, word-padded UTF-8 words, the
// form OpExtInstImport and the LinkageAttributes decoration operand of
// OpDecorate expect.
func PackString(s string) []uint32 {
	bytes := []byte(s)
	bytes = append(bytes, 0)
	for len(bytes)%4 != 0 {
		bytes = append(bytes, 0)
	}
	words := make([]uint32, len(bytes)/4)
	for i := range words {
		words[i] = uint32(bytes[i*4]) |
			uint32(bytes[i*4+1])<<8 |
			uint32(bytes[i*4+2])<<16 |
			uint32(bytes[i*4+3])<<24
	}
	return words
}

// Float32Bits reinterprets a float32 as its IEEE-754 bit pattern, the
// form OpConstant's literal word expects.
func Float32Bits(v float32) uint32 {
	return math.Float32bits(v)
}

// Bytes finalizes the module: a 5-word header (arbitrary magic/version/
// generator, the allocated id bound, zero schema) followed by every
// instruction word appended so far, little-endian encoded.
func (b *Builder) Bytes() []byte {
	header := []uint32{0x07230203, 0x00010300, 0, b.nextID, 0}
	all := make([]uint32, 0, len(header)+len(b.words))
	all = append(all, header...)
	all = append(all, b.words...)

	out := make([]byte, len(all)*4)
	for i, w := range all {
		binary.LittleEndian.PutUint32(out[i*4:i*4+4], w)
	}
	return out
}

// BytesNoHeader finalizes the module without prepending a header, for
// tests that inspect the encoded instruction words directly. The reader
// in spirvwords always consumes the first 5 words as the header, and
// treats a stream of fewer than 5 words as a header with zero-valued
// fields and no instructions, so it does not decode this output's
// leading instructions.
func (b *Builder) BytesNoHeader() []byte {
	out := make([]byte, len(b.words)*4)
	for i, w := range b.words {
		binary.LittleEndian.PutUint32(out[i*4:i*4+4], w)
	}
	return out
}
