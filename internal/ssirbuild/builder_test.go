package ssirbuild

import (
	"encoding/binary"
	"testing"
)

func TestInstEncodesWordCountAndOpcode(t *testing.T) {
	b := New()
	b.Inst(Op(14), 0, 1) // OpMemoryModel Logical GLSL450
	data := b.BytesNoHeader()

	if len(data) != 12 {
		t.Fatalf("len(data) = %d, want 12", len(data))
	}
	word0 := binary.LittleEndian.Uint32(data[0:4])
	if wordCount := word0 >> 16; wordCount != 3 {
		t.Errorf("word count = %d, want 3", wordCount)
	}
	if opcode := word0 & 0xFFFF; opcode != 14 {
		t.Errorf("opcode = %d, want 14", opcode)
	}
}

func TestBytesPrependsHeaderWithIDBound(t *testing.T) {
	b := New()
	_ = b.AllocID()
	_ = b.AllocID()
	b.Inst(Op(17), 1)

	data := b.Bytes()
	if len(data) < 20 {
		t.Fatalf("len(data) = %d, want at least 20", len(data))
	}
	idBound := binary.LittleEndian.Uint32(data[12:16])
	if idBound != 3 {
		t.Errorf("id bound = %d, want 3", idBound)
	}
}

func TestPackStringRoundTrips(t *testing.T) {
	words := PackString("GLSL.std.450")
	var buf []byte
	for _, w := range words {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], w)
		buf = append(buf, b[:]...)
	}

	nul := -1
	for i, c := range buf {
		if c == 0 {
			nul = i
			break
		}
	}
	if nul == -1 {
		t.Fatal("PackString: no null terminator found")
	}
	if got := string(buf[:nul]); got != "GLSL.std.450" {
		t.Errorf("decoded = %q, want %q", got, "GLSL.std.450")
	}
	if len(buf)%4 != 0 {
		t.Errorf("PackString did not word-align, len(buf) = %d", len(buf))
	}
}

func TestFloat32BitsRoundTrips(t *testing.T) {
	bits := Float32Bits(1.5)
	if bits != 0x3FC00000 {
		t.Errorf("Float32Bits(1.5) = %#x, want 0x3fc00000", bits)
	}
}
