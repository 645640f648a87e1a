package ir

// BaseVisitor provides default traversal for every IR node. Concrete
// visitors (the assembler's Emitter, a future linter) embed it and
// override only the node kinds they need, exactly as
// codegen.WGSLGenerator embeds guixast.BaseVisitor in the teacher.
type BaseVisitor struct{}

var _ Visitor = (*BaseVisitor)(nil)

func (v *BaseVisitor) VisitContract(n *Contract) interface{} {
	for i := range n.Fields {
		n.Fields[i].Accept(v)
	}
	n.Constructor.Accept(v)
	for i := range n.Events {
		n.Events[i].Accept(v)
	}
	for i := range n.Enums {
		n.Enums[i].Accept(v)
	}
	for i := range n.Structs {
		n.Structs[i].Accept(v)
	}
	for i := range n.Functions {
		n.Functions[i].Accept(v)
	}
	for i := range n.Modifiers {
		n.Modifiers[i].Accept(v)
	}
	return nil
}

func (v *BaseVisitor) VisitInterface(n *Interface) interface{} {
	for i := range n.Events {
		n.Events[i].Accept(v)
	}
	for i := range n.Enums {
		n.Enums[i].Accept(v)
	}
	for i := range n.Structs {
		n.Structs[i].Accept(v)
	}
	for i := range n.FunctionHeaders {
		n.FunctionHeaders[i].Accept(v)
	}
	return nil
}

func (v *BaseVisitor) VisitContractField(n *ContractField) interface{} {
	if n.InitialValue != nil {
		n.InitialValue.Accept(v)
	}
	return nil
}

func (v *BaseVisitor) VisitEvent(n *Event) interface{}  { return nil }
func (v *BaseVisitor) VisitEnum(n *Enum) interface{}    { return nil }
func (v *BaseVisitor) VisitStruct(n *Struct) interface{} { return nil }

func (v *BaseVisitor) VisitFunction(n *Function) interface{} {
	n.Header.Accept(v)
	for _, stmt := range n.Body {
		stmt.Accept(v)
	}
	return nil
}

func (v *BaseVisitor) VisitFunctionHeader(n *FunctionHeader) interface{} { return nil }

func (v *BaseVisitor) VisitModifier(n *Modifier) interface{} {
	n.Header.Accept(v)
	for _, stmt := range n.Body {
		stmt.Accept(v)
	}
	return nil
}

// Statements — leaves default to no-op; the few with nested
// expressions/statements recurse into them.

func (v *BaseVisitor) VisitComment(n *Comment) interface{} { return nil }
func (v *BaseVisitor) VisitRaw(n *Raw) interface{}         { return nil }

func (v *BaseVisitor) VisitDeclaration(n *Declaration) interface{} {
	if n.Value != nil {
		n.Value.Accept(v)
	}
	return nil
}

func (v *BaseVisitor) VisitAssign(n *Assign) interface{} {
	n.Lhs.Accept(v)
	n.Rhs.Accept(v)
	return nil
}

func (v *BaseVisitor) VisitIf(n *If) interface{}           { return nil }
func (v *BaseVisitor) VisitElseIf(n *ElseIf) interface{}   { return nil }
func (v *BaseVisitor) VisitElse(n *Else) interface{}       { return nil }
func (v *BaseVisitor) VisitIfEnd(n *IfEnd) interface{}     { return nil }
func (v *BaseVisitor) VisitWhile(n *While) interface{}     { return nil }
func (v *BaseVisitor) VisitWhileEnd(n *WhileEnd) interface{} { return nil }

func (v *BaseVisitor) VisitEmit(n *Emit) interface{} {
	for _, a := range n.Args {
		a.Accept(v)
	}
	return nil
}

func (v *BaseVisitor) VisitFunctionCallStmt(n *FunctionCallStmt) interface{} {
	n.Call.Accept(v)
	return nil
}

func (v *BaseVisitor) VisitRequire(n *Require) interface{} { return nil }

func (v *BaseVisitor) VisitReturn(n *Return) interface{} {
	if n.Value != nil {
		n.Value.Accept(v)
	}
	return nil
}

func (v *BaseVisitor) VisitTry(n *Try) interface{}             { return nil }
func (v *BaseVisitor) VisitTryEnd(n *TryEnd) interface{}       { return nil }
func (v *BaseVisitor) VisitCatch(n *Catch) interface{}         { return nil }
func (v *BaseVisitor) VisitCatchEnd(n *CatchEnd) interface{}   { return nil }
func (v *BaseVisitor) VisitAssembly(n *Assembly) interface{}   { return nil }
func (v *BaseVisitor) VisitAssemblyEnd(n *AssemblyEnd) interface{} { return nil }

func (v *BaseVisitor) VisitGroup(n *Group) interface{} {
	for _, stmt := range n.Body {
		stmt.Accept(v)
	}
	return nil
}

func (v *BaseVisitor) VisitModifierBody(n *ModifierBody) interface{} { return nil }

// Expressions

func (v *BaseVisitor) VisitLiteral(n *Literal) interface{} { return nil }
func (v *BaseVisitor) VisitMember(n *Member) interface{}   { return nil }

func (v *BaseVisitor) VisitMapping(n *Mapping) interface{} {
	for _, idx := range n.Indices {
		idx.Accept(v)
	}
	if n.InsertValue != nil {
		n.InsertValue.Accept(v)
	}
	return nil
}

func (v *BaseVisitor) VisitFunctionCall(n *FunctionCall) interface{} {
	for _, a := range n.Args {
		a.Accept(v)
	}
	return nil
}

func (v *BaseVisitor) VisitArithmetic(n *Arithmetic) interface{} {
	n.Lhs.Accept(v)
	n.Rhs.Accept(v)
	return nil
}

func (v *BaseVisitor) VisitLogical(n *Logical) interface{} {
	n.Lhs.Accept(v)
	n.Rhs.Accept(v)
	return nil
}

func (v *BaseVisitor) VisitConditionExpr(n *ConditionExpr) interface{} { return nil }

func (v *BaseVisitor) VisitEnclosed(n *Enclosed) interface{} {
	n.Inner.Accept(v)
	return nil
}

func (v *BaseVisitor) VisitCast(n *Cast) interface{} {
	n.Inner.Accept(v)
	return nil
}

func (v *BaseVisitor) VisitIsZero(n *IsZero) interface{} {
	n.Inner.Accept(v)
	return nil
}

func (v *BaseVisitor) VisitEnvCaller(n *EnvCaller) interface{} { return nil }

func (v *BaseVisitor) VisitNewArray(n *NewArray) interface{} {
	if n.Size != nil {
		n.Size.Accept(v)
	}
	return nil
}

func (v *BaseVisitor) VisitStructInit(n *StructInit) interface{} {
	for _, a := range n.Args {
		a.Accept(v)
	}
	return nil
}

func (v *BaseVisitor) VisitStructArg(n *StructArg) interface{} {
	n.Value.Accept(v)
	return nil
}

func (v *BaseVisitor) VisitTernary(n *Ternary) interface{} {
	n.IfTrue.Accept(v)
	n.IfFalse.Accept(v)
	return nil
}

func (v *BaseVisitor) VisitWithSelector(n *WithSelector) interface{} {
	n.Right.Accept(v)
	return nil
}

func (v *BaseVisitor) VisitModifierExpr(n *ModifierExpr) interface{} { return nil }
func (v *BaseVisitor) VisitZeroAddressInto(n *ZeroAddressInto) interface{} { return nil }
