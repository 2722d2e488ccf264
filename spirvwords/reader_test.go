package spirvwords

import (
	"encoding/binary"
	"math"
	"testing"
)

// wordsToBytes packs words into a little-endian byte buffer, the way a
// SPIR-V producer would.
func wordsToBytes(words []uint32) []byte {
	buf := make([]byte, len(words)*4)
	for i, w := range words {
		binary.LittleEndian.PutUint32(buf[i*4:], w)
	}
	return buf
}

func header(idBound uint32) []uint32 {
	return []uint32{0x07230203, 0x00010200, 0, idBound, 0}
}

func inst(op OpCode, operands ...uint32) []uint32 {
	words := append([]uint32{0}, operands...)
	words[0] = uint32(len(words))<<16 | uint32(op)
	return words
}

func TestNewReaderRejectsPartialWords(t *testing.T) {
	_, msg, ok := NewReader([]byte{1, 2, 3})
	if ok {
		t.Fatal("expected framing error for non-multiple-of-4 length")
	}
	want := "Provided data was not an integer number of 32-bit words"
	if msg != want {
		t.Errorf("message = %q, want %q", msg, want)
	}
}

func TestReaderDecodesHeaderAndInstructions(t *testing.T) {
	var words []uint32
	words = append(words, header(10)...)
	words = append(words, inst(OpCapability, CapabilityShader)...)
	words = append(words, inst(OpMemoryModel, AddressingModelLogical, MemoryModelGLSL450)...)

	r, _, ok := NewReader(wordsToBytes(words))
	if !ok {
		t.Fatal("NewReader failed")
	}
	if r.Header.IDBound != 10 {
		t.Errorf("IDBound = %d, want 10", r.Header.IDBound)
	}

	i1, msg, ok := r.Next()
	if !ok {
		t.Fatalf("Next() failed: %s", msg)
	}
	if i1.Opcode != OpCapability || len(i1.Operands) != 1 || i1.Operands[0] != CapabilityShader {
		t.Errorf("unexpected capability instruction: %+v", i1)
	}

	i2, msg, ok := r.Next()
	if !ok {
		t.Fatalf("Next() failed: %s", msg)
	}
	if i2.Opcode != OpMemoryModel || len(i2.Operands) != 2 {
		t.Errorf("unexpected memory model instruction: %+v", i2)
	}

	if !r.Done() {
		t.Error("expected reader to be exhausted")
	}
}

func TestReaderSplitsTypeAndResult(t *testing.T) {
	var words []uint32
	words = append(words, header(10)...)
	// OpConstant <type> <result> <value>
	words = append(words, inst(OpConstant, 5, 6, math.Float32bits(1.5))...)

	r, _, ok := NewReader(wordsToBytes(words))
	if !ok {
		t.Fatal("NewReader failed")
	}
	i, msg, ok := r.Next()
	if !ok {
		t.Fatalf("Next() failed: %s", msg)
	}
	if i.TypeID != 5 || i.ResultID != 6 {
		t.Fatalf("TypeID/ResultID = %d/%d, want 5/6", i.TypeID, i.ResultID)
	}
	if len(i.Operands) != 1 || DecodeFloat32(i.Operands[0]) != 1.5 {
		t.Fatalf("unexpected operands: %+v", i.Operands)
	}
}

func TestReaderRejectsZeroWordCount(t *testing.T) {
	var words []uint32
	words = append(words, header(1)...)
	words = append(words, 0) // wordCount=0, opcode=0

	r, _, ok := NewReader(wordsToBytes(words))
	if !ok {
		t.Fatal("NewReader failed")
	}
	_, msg, ok := r.Next()
	if ok {
		t.Fatal("expected failure for zero word count")
	}
	if msg == "" {
		t.Error("expected a diagnostic message")
	}
}

func TestReaderRejectsTruncatedInstruction(t *testing.T) {
	var words []uint32
	words = append(words, header(1)...)
	// Claims wordCount=3 but only 1 word (the header word) is present.
	words = append(words, uint32(3)<<16|uint32(OpCapability))

	r, _, ok := NewReader(wordsToBytes(words))
	if !ok {
		t.Fatal("NewReader failed")
	}
	_, msg, ok := r.Next()
	if ok {
		t.Fatal("expected failure for truncated instruction")
	}
	if msg == "" {
		t.Error("expected a diagnostic message")
	}
}

func TestDecodeString(t *testing.T) {
	words := []uint32{}
	packed := packString(t, "main")
	words = append(words, packed...)

	s, used, ok := DecodeString(words, 0)
	if !ok {
		t.Fatal("DecodeString failed")
	}
	if s != "main" {
		t.Errorf("s = %q, want %q", s, "main")
	}
	if used != len(packed) {
		t.Errorf("used = %d, want %d", used, len(packed))
	}
}

func TestDecodeStringNoTerminator(t *testing.T) {
	_, _, ok := DecodeString([]uint32{0x41414141}, 0)
	if ok {
		t.Fatal("expected failure without a null terminator")
	}
}

// packString mirrors the SPIR-V string encoding: UTF-8 bytes, a null
// terminator, padded to a word boundary.
func packString(t *testing.T, s string) []uint32 {
	t.Helper()
	b := []byte(s)
	b = append(b, 0)
	for len(b)%4 != 0 {
		b = append(b, 0)
	}
	words := make([]uint32, len(b)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(b[i*4:])
	}
	return words
}
