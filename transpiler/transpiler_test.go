package transpiler

import (
	"testing"

	"github.com/gogpu/ssir/diag"
	"github.com/gogpu/ssir/internal/ssirbuild"
	"github.com/gogpu/ssir/spirvwords"
)

func TestZeroValueTranspilerWorks(t *testing.T) {
	var tr Transpiler
	result := tr.Transpile([]byte{1, 2, 3})
	if result.Status != diag.InvalidData {
		t.Fatalf("Status = %v, want InvalidData", result.Status)
	}
}

func TestGetSkSLEmptyBeforeAnyTranspile(t *testing.T) {
	tr := New()
	if got := tr.GetSkSL(); got != "" {
		t.Errorf("GetSkSL() before Transpile = %q, want empty", got)
	}
}

func TestResetAllowsReuseAfterFailure(t *testing.T) {
	tr := New()
	if result := tr.Transpile([]byte{1, 2, 3}); result.OK() {
		t.Fatalf("first Transpile unexpectedly succeeded")
	}
	tr.Reset()

	b := ssirbuild.New()
	ids := buildPreamble(b)
	zero := b.AllocID()
	composite := b.AllocID()
	b.Inst(ssirbuild.Op(spirvwords.OpConstant), ids.floatType, zero, ssirbuild.Float32Bits(0))
	b.Inst(ssirbuild.Op(spirvwords.OpConstantComposite), ids.vec4Type, composite, zero, zero, zero, zero)
	b.Inst(ssirbuild.Op(spirvwords.OpReturnValue), composite)
	b.Inst(ssirbuild.Op(spirvwords.OpFunctionEnd))

	result := tr.Transpile(b.Bytes())
	if !result.OK() {
		t.Fatalf("Transpile() after Reset() = %+v, want Success", result)
	}
	if got := tr.GetSkSL(); got == "" {
		t.Error("GetSkSL() after successful Transpile = empty, want non-empty")
	}
}

func TestTranspileTruncatedInstructionIsInvalidData(t *testing.T) {
	b := ssirbuild.New()
	// Claims three words but the stream ends after the opcode word.
	b.RawWord(uint32(3)<<16 | uint32(spirvwords.OpCapability))

	tr := New()
	result := tr.Transpile(b.Bytes())
	if result.Status != diag.InvalidData {
		t.Fatalf("Status = %v, want InvalidData", result.Status)
	}
	if got := tr.GetSkSL(); got != "" {
		t.Errorf("GetSkSL() after failure = %q, want empty", got)
	}
}

func TestTranspileRejectsEmptyModule(t *testing.T) {
	tr := New()
	result := tr.Transpile(nil)
	if result.OK() {
		t.Fatal("Transpile(nil) unexpectedly succeeded")
	}
}
