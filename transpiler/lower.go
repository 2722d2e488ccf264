package transpiler

import (
	"strconv"
	"strings"

	"github.com/gogpu/ssir/spirvwords"
)

// glslStd450Names maps a GLSL.std.450 extended-instruction operation
// number to its SkSL intrinsic name. Operations outside this table are
// rejected by handleExtInst.
var glslStd450Names = map[uint32]string{
	spirvwords.GLSLStd450Trunc:       "trunc",
	spirvwords.GLSLStd450FAbs:        "abs",
	spirvwords.GLSLStd450FSign:       "sign",
	spirvwords.GLSLStd450Floor:       "floor",
	spirvwords.GLSLStd450Ceil:        "ceil",
	spirvwords.GLSLStd450Fract:       "fract",
	spirvwords.GLSLStd450Radians:     "radians",
	spirvwords.GLSLStd450Degrees:     "degrees",
	spirvwords.GLSLStd450Sin:         "sin",
	spirvwords.GLSLStd450Cos:         "cos",
	spirvwords.GLSLStd450Tan:         "tan",
	spirvwords.GLSLStd450Asin:        "asin",
	spirvwords.GLSLStd450Acos:        "acos",
	spirvwords.GLSLStd450Atan:        "atan",
	spirvwords.GLSLStd450Atan2:       "atan2",
	spirvwords.GLSLStd450Pow:         "pow",
	spirvwords.GLSLStd450Exp:         "exp",
	spirvwords.GLSLStd450Log:         "log",
	spirvwords.GLSLStd450Exp2:        "exp2",
	spirvwords.GLSLStd450Log2:        "log2",
	spirvwords.GLSLStd450Sqrt:        "sqrt",
	spirvwords.GLSLStd450InverseSqrt: "inversesqrt",
	spirvwords.GLSLStd450FMin:        "min",
	spirvwords.GLSLStd450FMax:        "max",
	spirvwords.GLSLStd450FClamp:      "clamp",
	spirvwords.GLSLStd450FMix:        "mix",
	spirvwords.GLSLStd450Step:        "step",
	spirvwords.GLSLStd450SmoothStep:  "smoothstep",
	spirvwords.GLSLStd450Length:      "length",
	spirvwords.GLSLStd450Distance:    "distance",
	spirvwords.GLSLStd450Cross:       "cross",
	spirvwords.GLSLStd450Normalize:   "normalize",
	spirvwords.GLSLStd450FaceForward: "faceforward",
	spirvwords.GLSLStd450Reflect:     "reflect",
}

// resolveGLSLName returns the SkSL intrinsic name for a GLSL.std.450
// operation number, or "" if unsupported.
func resolveGLSLName(op uint32) string {
	return glslStd450Names[op]
}

// declStatement renders the uniform one-statement-per-instruction form
// shared by every value-producing handler: "  <type> <name> = <expr>;\n".
func declStatement(typ, name, expr string) string {
	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(typ)
	b.WriteByte(' ')
	b.WriteString(name)
	b.WriteString(" = ")
	b.WriteString(expr)
	b.WriteString(";\n")
	return b.String()
}

// binaryExpr renders "lhs<op>rhs" with no surrounding whitespace around
// the operator, matching the literal form the original source emits.
func binaryExpr(lhs string, op byte, rhs string) string {
	var b strings.Builder
	b.WriteString(lhs)
	b.WriteByte(op)
	b.WriteString(rhs)
	return b.String()
}

// callExpr renders "name(arg0, arg1, ...)".
func callExpr(name string, args ...string) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('(')
	for i, a := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a)
	}
	b.WriteByte(')')
	return b.String()
}

// formatFloat32 renders a float32 value the way a decimal literal is
// expected to appear in SkSL source.
func formatFloat32(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}
