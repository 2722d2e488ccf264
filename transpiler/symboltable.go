package transpiler

import (
	"strconv"

	"github.com/gogpu/ssir/spirvwords"
)

// stage tracks where in the instruction stream the cursor is, so
// handlers can reject module-scope opcodes (OpVariable, OpTypePointer)
// appearing at or after OpFunction, and body opcodes (OpLoad,
// OpCompositeConstruct) appearing before OpLabel has opened the body.
type stage uint8

const (
	stageModule stage = iota
	stageFunctionHeader
	stageFunctionBody
)

// symbolTable holds the result-ids that name the distinguished types, the
// exported function, and its parameter. Its lifetime is one Transpile
// call; it is never reset mid-stream, only at the start of each
// Transpile call and by Transpiler.Reset.
type symbolTable struct {
	floatType uint32
	vec2Type  uint32
	vec3Type  uint32
	vec4Type  uint32

	floatUniformType uint32
	vec2UniformType  uint32
	vec3UniformType  uint32
	vec4UniformType  uint32

	mainFunction     uint32
	mainFunctionType uint32
	fragPosParam     uint32
	returnValue      uint32

	glslExtSet uint32

	lastOp spirvwords.OpCode
	stage  stage
}

// resolveName deterministically renders a result-id as an SkSL
// identifier. Collision-freedom follows from SPIR-V's own guarantee that
// ids are unique within a module.
func resolveName(id uint32) string {
	return "i" + strconv.FormatUint(uint64(id), 10)
}

// resolveType maps a type-id (or a uniform pointer-to-type-id) to its
// SkSL spelling, or "" if id names none of the four distinguished types.
func (s *symbolTable) resolveType(id uint32) string {
	switch id {
	case s.floatType, s.floatUniformType:
		if id == 0 {
			return ""
		}
		return "float"
	case s.vec2Type, s.vec2UniformType:
		if id == 0 {
			return ""
		}
		return "vec2"
	case s.vec3Type, s.vec3UniformType:
		if id == 0 {
			return ""
		}
		return "vec3"
	case s.vec4Type, s.vec4UniformType:
		if id == 0 {
			return ""
		}
		return "vec4"
	default:
		return ""
	}
}
