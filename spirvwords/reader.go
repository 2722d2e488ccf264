package spirvwords

import (
	"encoding/binary"
	"math"
)

// headerWords is the number of words in the SPIR-V module header
// (magic, version, generator, id bound, schema/reserved).
const headerWords = 5

// Header holds the five leading words of a SPIR-V module. This package
// does not validate Magic or Version for the supported subset (a
// producer contract is assumed), but the words are still consumed so the
// instruction stream starts at the right offset.
type Header struct {
	Magic     uint32
	Version   uint32
	Generator uint32
	IDBound   uint32
	Schema    uint32
}

// Instruction is one decoded SPIR-V instruction. TypeID and ResultID are
// zero when the opcode doesn't carry that slot. Operands holds the
// remaining operand words, with any leading type-id/result-id words
// already stripped off.
type Instruction struct {
	Opcode   OpCode
	TypeID   uint32
	ResultID uint32
	Operands []uint32
}

// hasTypeResult reports whether opcode op carries a result-type-id word
// and/or a result-id word, per the SPIR-V instruction layout for the
// opcodes this package recognises. Opcodes outside the supported subset
// are reported as carrying neither; the Module Validator rejects them
// before any operand is read, so the exact split never matters for them.
func hasTypeResult(op OpCode) (hasType, hasResult bool) {
	switch op {
	case OpConstant, OpConstantComposite, OpCompositeConstruct, OpVariable,
		OpFunction, OpFunctionParameter, OpFNegate, OpFAdd, OpFSub, OpFMul,
		OpFDiv, OpFMod, OpDot, OpVectorTimesScalar, OpVectorTimesMatrix,
		OpMatrixTimesVector, OpMatrixTimesMatrix, OpExtInst, OpLoad:
		return true, true
	case OpExtInstImport, OpTypeFloat, OpTypeVector, OpTypePointer,
		OpTypeFunction, OpLabel:
		return false, true
	default:
		return false, false
	}
}

// Reader decodes a SPIR-V word stream into a sequence of Instructions.
type Reader struct {
	words  []uint32
	pos    int // word cursor, past the header
	Header Header
}

// NewReader validates the framing of data and constructs a Reader
// positioned just past the header. It returns ok=false with a diagnostic
// message if data's length is not a multiple of 4.
func NewReader(data []byte) (r *Reader, invalidDataMsg string, ok bool) {
	if len(data)%4 != 0 {
		return nil, "Provided data was not an integer number of 32-bit words", false
	}

	words := make([]uint32, len(data)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(data[i*4 : i*4+4])
	}

	r = &Reader{words: words}
	if len(words) >= headerWords {
		r.Header = Header{
			Magic:     words[0],
			Version:   words[1],
			Generator: words[2],
			IDBound:   words[3],
			Schema:    words[4],
		}
		r.pos = headerWords
	} else {
		r.pos = len(words)
	}
	return r, "", true
}

// Done reports whether the cursor has reached the end of the word stream.
func (r *Reader) Done() bool {
	return r.pos >= len(r.words)
}

// Next decodes the instruction at the cursor and advances past it. ok is
// false if the word count is zero or runs past the end of the buffer, in
// which case errMsg describes the framing violation.
func (r *Reader) Next() (inst Instruction, errMsg string, ok bool) {
	if r.Done() {
		return Instruction{}, "", false
	}

	word0 := r.words[r.pos]
	wordCount := int(word0 >> 16)
	opcode := OpCode(word0 & 0xFFFF)

	if wordCount == 0 {
		return Instruction{}, "invalid instruction: word count is zero", false
	}
	if r.pos+wordCount > len(r.words) {
		return Instruction{}, "invalid instruction: word count runs past end of module", false
	}

	body := r.words[r.pos+1 : r.pos+wordCount]
	r.pos += wordCount

	hasType, hasResult := hasTypeResult(opcode)
	inst.Opcode = opcode

	idx := 0
	if hasType {
		if idx >= len(body) {
			return Instruction{}, opcode.String() + ": missing result-type-id word", false
		}
		inst.TypeID = body[idx]
		idx++
	}
	if hasResult {
		if idx >= len(body) {
			return Instruction{}, opcode.String() + ": missing result-id word", false
		}
		inst.ResultID = body[idx]
		idx++
	}
	inst.Operands = body[idx:]

	return inst, "", true
}

// DecodeFloat32 reinterprets a 32-bit operand word as an IEEE-754 binary32
// float, matching how OpConstant's literal word is stored.
func DecodeFloat32(word uint32) float32 {
	return math.Float32frombits(word)
}

// DecodeString reads a null-terminated UTF-8 string packed into
// consecutive operand words starting at index start. It returns the
// decoded string and the number of words consumed (including the word
// holding the terminator), or ok=false if no terminator is found within
// the given words.
func DecodeString(words []uint32, start int) (s string, wordsUsed int, ok bool) {
	var buf []byte
	for i := start; i < len(words); i++ {
		w := words[i]
		for shift := 0; shift < 32; shift += 8 {
			b := byte(w >> shift)
			if b == 0 {
				return string(buf), i - start + 1, true
			}
			buf = append(buf, b)
		}
	}
	return "", 0, false
}
