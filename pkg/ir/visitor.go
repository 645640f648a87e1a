package ir

// Visitor defines one method per IR node kind. Implementations
// traverse and/or transform the tree by implementing the methods they
// care about; embedding BaseVisitor supplies a default no-op/traversal
// body for the rest, the same split the teacher uses between
// ast.Visitor and ast.BaseVisitor.
type Visitor interface {
	// Top-level
	VisitContract(*Contract) interface{}
	VisitInterface(*Interface) interface{}
	VisitContractField(*ContractField) interface{}
	VisitEvent(*Event) interface{}
	VisitEnum(*Enum) interface{}
	VisitStruct(*Struct) interface{}
	VisitFunction(*Function) interface{}
	VisitFunctionHeader(*FunctionHeader) interface{}
	VisitModifier(*Modifier) interface{}

	// Statements
	VisitComment(*Comment) interface{}
	VisitRaw(*Raw) interface{}
	VisitDeclaration(*Declaration) interface{}
	VisitAssign(*Assign) interface{}
	VisitIf(*If) interface{}
	VisitElseIf(*ElseIf) interface{}
	VisitElse(*Else) interface{}
	VisitIfEnd(*IfEnd) interface{}
	VisitWhile(*While) interface{}
	VisitWhileEnd(*WhileEnd) interface{}
	VisitEmit(*Emit) interface{}
	VisitFunctionCallStmt(*FunctionCallStmt) interface{}
	VisitRequire(*Require) interface{}
	VisitReturn(*Return) interface{}
	VisitTry(*Try) interface{}
	VisitTryEnd(*TryEnd) interface{}
	VisitCatch(*Catch) interface{}
	VisitCatchEnd(*CatchEnd) interface{}
	VisitAssembly(*Assembly) interface{}
	VisitAssemblyEnd(*AssemblyEnd) interface{}
	VisitGroup(*Group) interface{}
	VisitModifierBody(*ModifierBody) interface{}

	// Expressions
	VisitLiteral(*Literal) interface{}
	VisitMember(*Member) interface{}
	VisitMapping(*Mapping) interface{}
	VisitFunctionCall(*FunctionCall) interface{}
	VisitArithmetic(*Arithmetic) interface{}
	VisitLogical(*Logical) interface{}
	VisitConditionExpr(*ConditionExpr) interface{}
	VisitEnclosed(*Enclosed) interface{}
	VisitCast(*Cast) interface{}
	VisitIsZero(*IsZero) interface{}
	VisitEnvCaller(*EnvCaller) interface{}
	VisitNewArray(*NewArray) interface{}
	VisitStructInit(*StructInit) interface{}
	VisitStructArg(*StructArg) interface{}
	VisitTernary(*Ternary) interface{}
	VisitWithSelector(*WithSelector) interface{}
	VisitModifierExpr(*ModifierExpr) interface{}
	VisitZeroAddressInto(*ZeroAddressInto) interface{}
}
