// Package ssir translates a binary SSIR module, a narrow SPIR-V subset
// describing a single pure shader expression of the form
// half4 main(half2 fragPos), into SkSL source text.
//
// The supported subset, its validation rules, and the exact SkSL output
// shape are documented per-package: spirvwords decodes the binary word
// stream, transpiler validates and lowers it, and sksl accumulates the
// resulting source text.
package ssir

import (
	"github.com/gogpu/ssir/diag"
	"github.com/gogpu/ssir/transpiler"
)

// Transpile decodes, validates, and lowers data in one call. It is a
// convenience wrapper around transpiler.New for callers who only need a
// single one-shot translation; callers doing many translations should
// keep a *transpiler.Transpiler around and call Reset between them
// instead of constructing a new one each time.
func Transpile(data []byte) (string, diag.Result) {
	t := transpiler.New()
	result := t.Transpile(data)
	if !result.OK() {
		return "", result
	}
	return t.GetSkSL(), result
}
