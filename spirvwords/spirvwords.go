// Package spirvwords decodes the little-endian 32-bit word stream of a
// SPIR-V module and names the opcodes and enumerants this transpiler's
// supported subset cares about.
//
// Only the opcodes and enum values needed by the SSIR subset are listed
// here; this is not a general SPIR-V grammar table.
package spirvwords

import "strconv"

// OpCode identifies a SPIR-V instruction.
type OpCode uint16

// Opcodes recognised anywhere in the supported subset. Values match the
// SPIR-V 1.2 binary encoding.
const (
	OpExtInstImport      OpCode = 11
	OpExtInst            OpCode = 12
	OpMemoryModel        OpCode = 14
	OpCapability         OpCode = 17
	OpTypeFloat          OpCode = 22
	OpTypeVector         OpCode = 23
	OpTypePointer        OpCode = 32
	OpTypeFunction       OpCode = 33
	OpConstant           OpCode = 43
	OpConstantComposite  OpCode = 44
	OpFunction           OpCode = 54
	OpFunctionParameter  OpCode = 55
	OpFunctionEnd        OpCode = 56
	OpVariable           OpCode = 59
	OpLoad               OpCode = 61
	OpDecorate           OpCode = 71
	OpCompositeConstruct OpCode = 80
	OpFNegate            OpCode = 127
	OpFAdd               OpCode = 129
	OpFSub               OpCode = 131
	OpFMul               OpCode = 133
	OpFDiv               OpCode = 136
	OpFMod               OpCode = 141
	OpVectorTimesScalar  OpCode = 142
	OpVectorTimesMatrix  OpCode = 144
	OpMatrixTimesVector  OpCode = 145
	OpMatrixTimesMatrix  OpCode = 146
	OpDot                OpCode = 148
	OpLabel              OpCode = 248
	OpReturnValue        OpCode = 254
)

// opNames is used only to render diagnostics; unknown opcodes fall back to
// their decimal form.
var opNames = map[OpCode]string{
	OpExtInstImport:      "OpExtInstImport",
	OpExtInst:            "OpExtInst",
	OpMemoryModel:        "OpMemoryModel",
	OpCapability:         "OpCapability",
	OpTypeFloat:          "OpTypeFloat",
	OpTypeVector:         "OpTypeVector",
	OpTypePointer:        "OpTypePointer",
	OpTypeFunction:       "OpTypeFunction",
	OpConstant:           "OpConstant",
	OpConstantComposite:  "OpConstantComposite",
	OpFunction:           "OpFunction",
	OpFunctionParameter:  "OpFunctionParameter",
	OpFunctionEnd:        "OpFunctionEnd",
	OpVariable:           "OpVariable",
	OpLoad:               "OpLoad",
	OpDecorate:           "OpDecorate",
	OpCompositeConstruct: "OpCompositeConstruct",
	OpFNegate:            "OpFNegate",
	OpFAdd:               "OpFAdd",
	OpFSub:               "OpFSub",
	OpFMul:               "OpFMul",
	OpFDiv:               "OpFDiv",
	OpFMod:               "OpFMod",
	OpVectorTimesScalar:  "OpVectorTimesScalar",
	OpVectorTimesMatrix:  "OpVectorTimesMatrix",
	OpMatrixTimesVector:  "OpMatrixTimesVector",
	OpMatrixTimesMatrix:  "OpMatrixTimesMatrix",
	OpDot:                "OpDot",
	OpLabel:              "OpLabel",
	OpReturnValue:        "OpReturnValue",
}

// String renders an opcode for diagnostics, e.g. "OpCapability" or
// "Op#4242" for an opcode this package doesn't recognise.
func (op OpCode) String() string {
	if name, ok := opNames[op]; ok {
		return name
	}
	return "Op#" + strconv.FormatUint(uint64(op), 10)
}

// Capability values accepted by OpCapability.
const (
	CapabilityMatrix  uint32 = 0
	CapabilityShader  uint32 = 1
	CapabilityLinkage uint32 = 5
)

// AddressingModel values accepted by OpMemoryModel.
const (
	AddressingModelLogical uint32 = 0
)

// MemoryModel values accepted by OpMemoryModel.
const (
	MemoryModelGLSL450 uint32 = 1
)

// Decoration values accepted by OpDecorate.
const (
	DecorationLinkageAttributes uint32 = 41
)

// LinkageType values accepted by OpDecorate LinkageAttributes.
const (
	LinkageTypeExport uint32 = 0
)

// StorageClass values accepted by OpTypePointer and OpVariable.
const (
	StorageClassUniform uint32 = 2
)

// FunctionControl values accepted by OpFunction.
const (
	FunctionControlMaskNone uint32 = 0
)

// GLSLStd450 identifies an operation number in the GLSL.std.450 extended
// instruction set, as carried by OpExtInst.
const (
	GLSLStd450Trunc        uint32 = 3
	GLSLStd450FAbs         uint32 = 4
	GLSLStd450FSign        uint32 = 6
	GLSLStd450Floor        uint32 = 8
	GLSLStd450Ceil         uint32 = 9
	GLSLStd450Fract        uint32 = 10
	GLSLStd450Radians      uint32 = 11
	GLSLStd450Degrees      uint32 = 12
	GLSLStd450Sin          uint32 = 13
	GLSLStd450Cos          uint32 = 14
	GLSLStd450Tan          uint32 = 15
	GLSLStd450Asin         uint32 = 16
	GLSLStd450Acos         uint32 = 17
	GLSLStd450Atan         uint32 = 18
	GLSLStd450Atan2        uint32 = 25
	GLSLStd450Pow          uint32 = 26
	GLSLStd450Exp          uint32 = 27
	GLSLStd450Log          uint32 = 28
	GLSLStd450Exp2         uint32 = 29
	GLSLStd450Log2         uint32 = 30
	GLSLStd450Sqrt         uint32 = 31
	GLSLStd450InverseSqrt  uint32 = 32
	GLSLStd450FMin         uint32 = 37
	GLSLStd450FMax         uint32 = 40
	GLSLStd450FClamp       uint32 = 43
	GLSLStd450FMix         uint32 = 46
	GLSLStd450Step         uint32 = 48
	GLSLStd450SmoothStep   uint32 = 49
	GLSLStd450Length       uint32 = 66
	GLSLStd450Distance     uint32 = 67
	GLSLStd450Cross        uint32 = 68
	GLSLStd450Normalize    uint32 = 69
	GLSLStd450FaceForward  uint32 = 70
	GLSLStd450Reflect      uint32 = 71
)

// ExtImportName is the only extended instruction set this transpiler
// recognises.
const ExtImportName = "GLSL.std.450"
