// Package transpiler converts a binary SSIR module (a deliberately
// narrow SPIR-V subset restricted to pure shader expressions of the form
// half4 main(half2 fragPos)) into SkSL source text.
//
// Translation is single-pass and streaming: no intermediate AST or IR
// tree is built. Each decoded instruction is validated against the
// module's accumulated symbol table and, if valid, lowered directly into
// an SkSL fragment appended to the output buffer.
package transpiler

import (
	"go.uber.org/zap"

	"github.com/gogpu/ssir/diag"
	"github.com/gogpu/ssir/sksl"
	"github.com/gogpu/ssir/spirvwords"
)

// Transpiler holds the state of one translation. It is not safe for
// concurrent use: a single Transpiler instance processes at most one
// module's instruction stream at a time, matching SSIR's single-module,
// single-function scope.
type Transpiler struct {
	symbols symbolTable
	buf     *sksl.Buffer
}

// New returns a ready-to-use Transpiler.
func New() *Transpiler {
	return &Transpiler{buf: sksl.New()}
}

// Reset discards all accumulated state, so the Transpiler can be reused
// for another module.
func (t *Transpiler) Reset() {
	t.symbols = symbolTable{}
	if t.buf == nil {
		t.buf = sksl.New()
	} else {
		t.buf.Reset()
	}
}

// Transpile decodes and validates data as an SSIR module, lowering it
// into SkSL as it goes. On success, GetSkSL returns the translated
// source and the returned Result's Status is diag.Success. On failure,
// any partial SkSL is discarded and GetSkSL returns "" until the next
// successful Transpile call.
func (t *Transpiler) Transpile(data []byte) diag.Result {
	if t.buf == nil {
		t.buf = sksl.New()
	}
	t.symbols = symbolTable{}
	t.buf.Reset()

	reader, msg, ok := spirvwords.NewReader(data)
	if !ok {
		return diag.Data(msg)
	}

	for !reader.Done() {
		inst, msg, ok := reader.Next()
		if !ok {
			t.buf.Reset()
			return diag.Data(msg)
		}

		result := t.dispatch(inst)
		Logger().Debug("handled instruction",
			zap.String("opcode", inst.Opcode.String()),
			zap.Stringer("status", result.Status),
		)
		if !result.OK() {
			t.buf.Reset()
			return result
		}

		t.symbols.lastOp = inst.Opcode
	}

	if t.symbols.mainFunction == 0 || t.symbols.mainFunctionType == 0 ||
		t.symbols.fragPosParam == 0 || t.symbols.returnValue == 0 {
		t.buf.Reset()
		return diag.Invalid("module ended before a complete main function was emitted")
	}

	return diag.Ok
}

// GetSkSL returns the SkSL produced by the most recent Transpile call if
// that call succeeded, or "" if it failed or no call has been made yet.
func (t *Transpiler) GetSkSL() string {
	if t.buf == nil {
		return ""
	}
	return t.buf.Snapshot()
}
