package transpiler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/ssir/diag"
	"github.com/gogpu/ssir/spirvwords"
)

// dispatch routes a decoded instruction to its opcode handler. Any
// opcode outside the supported subset is rejected here, before any
// handler-specific rule is consulted.
func (t *Transpiler) dispatch(inst spirvwords.Instruction) diag.Result {
	switch inst.Opcode {
	case spirvwords.OpCapability:
		return t.handleCapability(inst)
	case spirvwords.OpExtInstImport:
		return t.handleExtInstImport(inst)
	case spirvwords.OpMemoryModel:
		return t.handleMemoryModel(inst)
	case spirvwords.OpDecorate:
		return t.handleDecorate(inst)
	case spirvwords.OpTypeFloat:
		return t.handleTypeFloat(inst)
	case spirvwords.OpTypeVector:
		return t.handleTypeVector(inst)
	case spirvwords.OpTypePointer:
		return t.handleTypePointer(inst)
	case spirvwords.OpTypeFunction:
		return t.handleTypeFunction(inst)
	case spirvwords.OpConstant:
		return t.handleConstant(inst)
	case spirvwords.OpConstantComposite:
		return t.handleConstantComposite(inst)
	case spirvwords.OpCompositeConstruct:
		return t.handleCompositeConstruct(inst)
	case spirvwords.OpVariable:
		return t.handleVariable(inst)
	case spirvwords.OpFunction:
		return t.handleFunction(inst)
	case spirvwords.OpFunctionParameter:
		return t.handleFunctionParameter(inst)
	case spirvwords.OpLabel:
		return t.handleLabel(inst)
	case spirvwords.OpReturnValue:
		return t.handleReturnValue(inst)
	case spirvwords.OpLoad:
		return t.handleLoad(inst)
	case spirvwords.OpFNegate:
		return t.handleFNegate(inst)
	case spirvwords.OpFAdd:
		return t.handleOperator(inst, '+')
	case spirvwords.OpFSub:
		return t.handleOperator(inst, '-')
	case spirvwords.OpFDiv:
		return t.handleOperator(inst, '/')
	case spirvwords.OpFMul, spirvwords.OpVectorTimesScalar,
		spirvwords.OpVectorTimesMatrix, spirvwords.OpMatrixTimesVector,
		spirvwords.OpMatrixTimesMatrix:
		return t.handleOperator(inst, '*')
	case spirvwords.OpFMod:
		return t.handleBuiltin(inst, "mod")
	case spirvwords.OpDot:
		return t.handleBuiltin(inst, "dot")
	case spirvwords.OpExtInst:
		return t.handleExtInst(inst)
	case spirvwords.OpFunctionEnd:
		return t.handleFunctionEnd(inst)
	default:
		return diag.Invalid("Unsupported OP: " + strconv.FormatUint(uint64(inst.Opcode), 10))
	}
}

func (t *Transpiler) handleCapability(inst spirvwords.Instruction) diag.Result {
	if len(inst.Operands) < 1 {
		return diag.Invalid("OpCapability: missing capability operand.")
	}
	capability := inst.Operands[0]
	switch capability {
	case spirvwords.CapabilityMatrix, spirvwords.CapabilityShader, spirvwords.CapabilityLinkage:
		return diag.Ok
	default:
		return diag.Unsupported("OpCapability", fmt.Sprintf("Capability %d is unsupported.", capability))
	}
}

func (t *Transpiler) handleExtInstImport(inst spirvwords.Instruction) diag.Result {
	name, _, ok := spirvwords.DecodeString(inst.Operands, 0)
	if !ok {
		return diag.Invalid("OpExtInstImport: malformed import name.")
	}
	if name != spirvwords.ExtImportName {
		return diag.Unsupported("OpExtInstImport", fmt.Sprintf("'%s' is not supported.", name))
	}
	t.symbols.glslExtSet = inst.ResultID
	return diag.Ok
}

func (t *Transpiler) handleMemoryModel(inst spirvwords.Instruction) diag.Result {
	if len(inst.Operands) < 2 {
		return diag.Invalid("OpMemoryModel: missing operands.")
	}
	if inst.Operands[0] != spirvwords.AddressingModelLogical {
		return diag.Unsupported("OpMemoryModel", "Only `Logical` addressing model is supported.")
	}
	if inst.Operands[1] != spirvwords.MemoryModelGLSL450 {
		return diag.Unsupported("OpMemoryModel", "Only memory model `GLSL450` is supported.")
	}
	return diag.Ok
}

func (t *Transpiler) handleDecorate(inst spirvwords.Instruction) diag.Result {
	if len(inst.Operands) < 2 {
		return diag.Invalid("OpDecorate: missing operands.")
	}
	target := inst.Operands[0]
	decoration := inst.Operands[1]
	if decoration != spirvwords.DecorationLinkageAttributes {
		return diag.Unsupported("OpDecorate", "Only LinkageAttributes are supported.")
	}

	name, used, ok := spirvwords.DecodeString(inst.Operands, 2)
	if !ok {
		return diag.Invalid("OpDecorate: malformed linkage name.")
	}
	linkageTypeIdx := 2 + used
	if linkageTypeIdx >= len(inst.Operands) {
		return diag.Invalid("OpDecorate: missing linkage type.")
	}
	if inst.Operands[linkageTypeIdx] != spirvwords.LinkageTypeExport {
		return diag.Unsupported("OpDecorate", "Only exporting is available using LinkageAttributes.")
	}

	if name != "main" || t.symbols.mainFunction != 0 {
		return diag.Unsupported("OpDecorate", "There can only be a single exported function named 'main'")
	}

	t.symbols.mainFunction = target
	return diag.Ok
}

func (t *Transpiler) handleTypeFloat(inst spirvwords.Instruction) diag.Result {
	if len(inst.Operands) < 1 {
		return diag.Invalid("OpTypeFloat: missing width operand.")
	}
	if inst.Operands[0] != 32 {
		return diag.Unsupported("OpTypeFloat", fmt.Sprintf("Only 32-bit width is supported. Got width %d", inst.Operands[0]))
	}
	if t.symbols.floatType != 0 {
		return diag.Unsupported("OpTypeFloat", "Only one OpTypeFloat should be specified.")
	}
	t.symbols.floatType = inst.ResultID
	return diag.Ok
}

func (t *Transpiler) handleTypeVector(inst spirvwords.Instruction) diag.Result {
	if len(inst.Operands) < 2 {
		return diag.Invalid("OpTypeVector: missing operands.")
	}
	componentType := inst.Operands[0]
	if componentType == 0 || componentType != t.symbols.floatType {
		return diag.Invalid("OpTypeVector: OpTypeFloat was not declared, or didn't match the given component type.")
	}

	count := inst.Operands[1]
	var slot *uint32
	switch count {
	case 2:
		slot = &t.symbols.vec2Type
	case 3:
		slot = &t.symbols.vec3Type
	case 4:
		slot = &t.symbols.vec4Type
	default:
		return diag.Unsupported("OpTypeVector", "Component count must be 2, 3, or 4.")
	}
	if *slot != 0 {
		return diag.Unsupported("OpTypeVector", fmt.Sprintf("A vec%d type was already declared.", count))
	}
	*slot = inst.ResultID
	return diag.Ok
}

func (t *Transpiler) handleTypePointer(inst spirvwords.Instruction) diag.Result {
	if t.symbols.stage != stageModule {
		return diag.Invalid("OpTypePointer: must be declared before the function body.")
	}
	if len(inst.Operands) < 2 {
		return diag.Invalid("OpTypePointer: missing operands.")
	}
	storageClass := inst.Operands[0]
	typ := inst.Operands[1]
	if storageClass != spirvwords.StorageClassUniform {
		return diag.Unsupported("OpTypePointer", "Only storage class 'Uniform' is supported.")
	}

	var slot *uint32
	switch typ {
	case t.symbols.floatType:
		slot = &t.symbols.floatUniformType
	case t.symbols.vec2Type:
		slot = &t.symbols.vec2UniformType
	case t.symbols.vec3Type:
		slot = &t.symbols.vec3UniformType
	case t.symbols.vec4Type:
		slot = &t.symbols.vec4UniformType
	default:
		return diag.Unsupported("OpTypePointer", "Must be a supported SSIR type.")
	}
	if *slot != 0 {
		return diag.Unsupported("OpTypePointer", "A pointer to this type was already declared.")
	}
	*slot = inst.ResultID
	return diag.Ok
}

func (t *Transpiler) handleTypeFunction(inst spirvwords.Instruction) diag.Result {
	if t.symbols.mainFunctionType != 0 {
		return diag.Unsupported("OpTypeFunction", "Only a single function type is supported.")
	}
	if len(inst.Operands) != 2 {
		return diag.Unsupported("OpTypeFunction", "Only one parameter is supported.")
	}

	returnType := inst.Operands[0]
	if returnType == 0 || returnType != t.symbols.vec4Type {
		return diag.Unsupported("OpTypeFunction", "Return type was not defined or was not vec4.")
	}
	paramType := inst.Operands[1]
	if paramType == 0 || paramType != t.symbols.vec2Type {
		return diag.Unsupported("OpTypeFunction", "Parameter type was not defined or was not vec2.")
	}

	t.symbols.mainFunctionType = inst.ResultID
	return diag.Ok
}

func (t *Transpiler) handleConstant(inst spirvwords.Instruction) diag.Result {
	if inst.TypeID == 0 || inst.TypeID != t.symbols.floatType {
		return diag.Unsupported("OpConstant", "Must have float-type.")
	}
	if len(inst.Operands) < 1 {
		return diag.Invalid("OpConstant: missing value operand.")
	}
	value := spirvwords.DecodeFloat32(inst.Operands[0])
	t.buf.WriteBody("  const float " + resolveName(inst.ResultID) + " = " + formatFloat32(value) + ";\n")
	return diag.Ok
}

func (t *Transpiler) handleConstantComposite(inst spirvwords.Instruction) diag.Result {
	k := len(inst.Operands)
	args := make([]string, k)
	for i, w := range inst.Operands {
		args[i] = resolveName(w)
	}
	vecK := "vec" + strconv.Itoa(k)
	name := resolveName(inst.ResultID)
	t.buf.WriteBody("  const " + vecK + name + " = " + vecK + "(" + strings.Join(args, ", ") + ");\n")
	return diag.Ok
}

func (t *Transpiler) handleCompositeConstruct(inst spirvwords.Instruction) diag.Result {
	if t.symbols.stage != stageFunctionBody {
		return diag.Invalid("OpCompositeConstruct: must appear inside the function body.")
	}
	typ := t.symbols.resolveType(inst.TypeID)
	if typ == "" {
		return diag.Invalid("Invalid type.")
	}
	if len(inst.Operands) < 2 {
		return diag.Invalid("OpCompositeConstruct: needs at least two components.")
	}
	args := make([]string, len(inst.Operands))
	for i, w := range inst.Operands {
		args[i] = resolveName(w)
	}
	t.buf.WriteBody(declStatement(typ, resolveName(inst.ResultID), callExpr(typ, args...)))
	return diag.Ok
}

func (t *Transpiler) handleVariable(inst spirvwords.Instruction) diag.Result {
	if t.symbols.stage != stageModule {
		return diag.Invalid("OpVariable: must be declared before the function body.")
	}
	if len(inst.Operands) < 1 {
		return diag.Invalid("OpVariable: missing storage class operand.")
	}
	if inst.Operands[0] != spirvwords.StorageClassUniform {
		return diag.Unsupported("OpVariable", "Must use storage class 'Uniform'")
	}

	s := &t.symbols
	isUniformPtr := inst.TypeID == s.floatUniformType || inst.TypeID == s.vec2UniformType ||
		inst.TypeID == s.vec3UniformType || inst.TypeID == s.vec4UniformType
	typ := s.resolveType(inst.TypeID)
	if inst.TypeID == 0 || !isUniformPtr || typ == "" {
		return diag.Unsupported("OpVariable", "Must use SSIR-valid type.")
	}

	t.buf.WriteUniform("uniform " + typ + " " + resolveName(inst.ResultID) + ";\n")
	return diag.Ok
}

func (t *Transpiler) handleFunction(inst spirvwords.Instruction) diag.Result {
	if inst.ResultID == 0 || inst.ResultID != t.symbols.mainFunction {
		return diag.Unsupported("OpFunction", "There must be one function exported as 'main'")
	}
	if len(inst.Operands) < 2 {
		return diag.Invalid("OpFunction: missing operands.")
	}
	if inst.Operands[0] != spirvwords.FunctionControlMaskNone {
		return diag.Unsupported("OpFunction", "No function control flags are supported.")
	}
	functionType := inst.Operands[1]
	if functionType == 0 || functionType != t.symbols.mainFunctionType {
		return diag.Unsupported("OpFunction", "Function type mismatch.")
	}
	if inst.TypeID != t.symbols.vec4Type {
		return diag.Unsupported("OpFunction", "Function must return vec4 type.")
	}

	t.buf.WriteBody("half4 main(")
	t.symbols.stage = stageFunctionHeader
	return diag.Ok
}

func (t *Transpiler) handleFunctionParameter(inst spirvwords.Instruction) diag.Result {
	if t.symbols.fragPosParam != 0 {
		return diag.Unsupported("OpFunctionParam", "There can only be one specified parameter.")
	}
	if inst.TypeID != t.symbols.vec2Type {
		return diag.Unsupported("OpFunctionParam", "Param must be type vec2.")
	}

	t.symbols.fragPosParam = inst.ResultID
	t.buf.WriteBody("half2 " + resolveName(inst.ResultID))
	return diag.Ok
}

func (t *Transpiler) handleLabel(inst spirvwords.Instruction) diag.Result {
	if t.symbols.lastOp != spirvwords.OpFunctionParameter {
		return diag.Unsupported("OpLabel", "The last instruction should have been OpFunctionParameter.")
	}
	t.buf.WriteBody(") {\n")
	t.symbols.stage = stageFunctionBody
	return diag.Ok
}

func (t *Transpiler) handleReturnValue(inst spirvwords.Instruction) diag.Result {
	if t.symbols.returnValue != 0 {
		return diag.Unsupported("OpReturnValue", "There can only be one return value.")
	}
	if len(inst.Operands) < 1 {
		return diag.Invalid("OpReturnValue: missing return operand.")
	}
	t.symbols.returnValue = inst.Operands[0]
	t.buf.WriteBody("  return half4(" + resolveName(inst.Operands[0]) + ");\n")
	return diag.Ok
}

func (t *Transpiler) handleFunctionEnd(inst spirvwords.Instruction) diag.Result {
	t.buf.WriteBody("}\n")
	return diag.Ok
}

func (t *Transpiler) handleLoad(inst spirvwords.Instruction) diag.Result {
	if t.symbols.stage != stageFunctionBody {
		return diag.Invalid("OpLoad: must appear inside the function body.")
	}
	typ := t.symbols.resolveType(inst.TypeID)
	if typ == "" {
		return diag.Invalid("Invalid type.")
	}
	if len(inst.Operands) < 1 {
		return diag.Invalid("OpLoad: missing pointer operand.")
	}
	t.buf.WriteBody(declStatement(typ, resolveName(inst.ResultID), resolveName(inst.Operands[0])))
	return diag.Ok
}

func (t *Transpiler) handleFNegate(inst spirvwords.Instruction) diag.Result {
	typ := t.symbols.resolveType(inst.TypeID)
	if typ == "" {
		return diag.Invalid("Invalid type.")
	}
	if len(inst.Operands) < 1 {
		return diag.Invalid("OpFNegate: missing operand.")
	}
	t.buf.WriteBody(declStatement(typ, resolveName(inst.ResultID), "-"+resolveName(inst.Operands[0])))
	return diag.Ok
}

func (t *Transpiler) handleOperator(inst spirvwords.Instruction, op byte) diag.Result {
	if len(inst.Operands) != 2 {
		return diag.Invalid(fmt.Sprintf("Operator '%c' needs two arguments.", op))
	}
	typ := t.symbols.resolveType(inst.TypeID)
	if typ == "" {
		return diag.Invalid("Invalid type.")
	}
	expr := binaryExpr(resolveName(inst.Operands[0]), op, resolveName(inst.Operands[1]))
	t.buf.WriteBody(declStatement(typ, resolveName(inst.ResultID), expr))
	return diag.Ok
}

func (t *Transpiler) handleBuiltin(inst spirvwords.Instruction, name string) diag.Result {
	if len(inst.Operands) != 2 {
		return diag.Invalid(fmt.Sprintf("Builtin '%s' needs two arguments.", name))
	}
	typ := t.symbols.resolveType(inst.TypeID)
	if typ == "" {
		return diag.Invalid("Invalid type.")
	}
	expr := callExpr(name, resolveName(inst.Operands[0]), resolveName(inst.Operands[1]))
	t.buf.WriteBody(declStatement(typ, resolveName(inst.ResultID), expr))
	return diag.Ok
}

func (t *Transpiler) handleExtInst(inst spirvwords.Instruction) diag.Result {
	typ := t.symbols.resolveType(inst.TypeID)
	if typ == "" {
		return diag.Invalid("Invalid type.")
	}
	if len(inst.Operands) < 2 {
		return diag.Invalid("OpExtInst: missing set or instruction operand.")
	}
	if inst.Operands[0] != t.symbols.glslExtSet {
		return diag.Unsupported("OpExtInst", "Must be from 'GLSL.std.450'")
	}

	glslOp := inst.Operands[1]
	name := resolveGLSLName(glslOp)
	if name == "" {
		return diag.Unsupported("OpExtInst", fmt.Sprintf("'%d' is not a supported GLSL instruction.", glslOp))
	}

	args := make([]string, len(inst.Operands)-2)
	for i, w := range inst.Operands[2:] {
		args[i] = resolveName(w)
	}
	t.buf.WriteBody(declStatement(typ, resolveName(inst.ResultID), callExpr(name, args...)))
	return diag.Ok
}
