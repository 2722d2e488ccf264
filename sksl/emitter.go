// Package sksl provides an append-only text buffer for composing SkSL
// (Skia Shading Language) source as a SPIR-V instruction stream is
// consumed, one fragment at a time.
package sksl

import "strings"

// Buffer accumulates SkSL source text. It keeps module-scope declarations
// (uniform variables) in a section separate from the function body, so
// instructions for either can be emitted in whatever order they're
// encountered without one interleaving into the other's text, the same
// way a SPIR-V module builder keeps ordered sections and concatenates
// them only once, at the end.
//
// A Buffer is append-only from the caller's perspective: Snapshot never
// mutates the accumulated text, and the only way to discard content is
// Reset.
type Buffer struct {
	prologue strings.Builder
	body     strings.Builder
}

// New returns an empty Buffer.
func New() *Buffer {
	return &Buffer{}
}

// WriteUniform appends a module-scope uniform declaration, e.g.
// "uniform vec3 i9;\n".
func (b *Buffer) WriteUniform(line string) {
	b.prologue.WriteString(line)
}

// WriteBody appends a fragment to the function body section: the
// prologue `half4 main(...) {`, a declaration/operator/intrinsic
// statement, or the closing `return`/`}`.
func (b *Buffer) WriteBody(s string) {
	b.body.WriteString(s)
}

// Snapshot returns the accumulated SkSL: any uniform declarations
// followed by the function body, in that order.
func (b *Buffer) Snapshot() string {
	if b.prologue.Len() == 0 {
		return b.body.String()
	}
	return b.prologue.String() + b.body.String()
}

// Reset discards all accumulated text. Called whenever validation or
// lowering fails, so partial SkSL never leaks to a caller.
func (b *Buffer) Reset() {
	b.prologue.Reset()
	b.body.Reset()
}
