package ir

// Accept methods wire each IR node into the visitor pattern. Top-level
// and member types are included alongside statements/expressions so a
// single Visitor implementation (the assembler, a linter, a debug
// dumper) can walk the whole tree from a Contract or Interface root,
// the way codegen.WGSLGenerator walks a Guix file in the teacher.

func (n *Contract) Accept(v Visitor) interface{}        { return v.VisitContract(n) }
func (n *Interface) Accept(v Visitor) interface{}       { return v.VisitInterface(n) }
func (n *ContractField) Accept(v Visitor) interface{}   { return v.VisitContractField(n) }
func (n *Event) Accept(v Visitor) interface{}           { return v.VisitEvent(n) }
func (n *Enum) Accept(v Visitor) interface{}            { return v.VisitEnum(n) }
func (n *Struct) Accept(v Visitor) interface{}          { return v.VisitStruct(n) }
func (n *Function) Accept(v Visitor) interface{}        { return v.VisitFunction(n) }
func (n *FunctionHeader) Accept(v Visitor) interface{}  { return v.VisitFunctionHeader(n) }
func (n *Modifier) Accept(v Visitor) interface{}        { return v.VisitModifier(n) }

// Statements

func (n *Comment) Accept(v Visitor) interface{}           { return v.VisitComment(n) }
func (n *Raw) Accept(v Visitor) interface{}               { return v.VisitRaw(n) }
func (n *Declaration) Accept(v Visitor) interface{}       { return v.VisitDeclaration(n) }
func (n *Assign) Accept(v Visitor) interface{}            { return v.VisitAssign(n) }
func (n *If) Accept(v Visitor) interface{}                { return v.VisitIf(n) }
func (n *ElseIf) Accept(v Visitor) interface{}            { return v.VisitElseIf(n) }
func (n *Else) Accept(v Visitor) interface{}              { return v.VisitElse(n) }
func (n *IfEnd) Accept(v Visitor) interface{}             { return v.VisitIfEnd(n) }
func (n *While) Accept(v Visitor) interface{}             { return v.VisitWhile(n) }
func (n *WhileEnd) Accept(v Visitor) interface{}          { return v.VisitWhileEnd(n) }
func (n *Emit) Accept(v Visitor) interface{}              { return v.VisitEmit(n) }
func (n *FunctionCallStmt) Accept(v Visitor) interface{}  { return v.VisitFunctionCallStmt(n) }
func (n *Require) Accept(v Visitor) interface{}           { return v.VisitRequire(n) }
func (n *Return) Accept(v Visitor) interface{}            { return v.VisitReturn(n) }
func (n *Try) Accept(v Visitor) interface{}               { return v.VisitTry(n) }
func (n *TryEnd) Accept(v Visitor) interface{}            { return v.VisitTryEnd(n) }
func (n *Catch) Accept(v Visitor) interface{}             { return v.VisitCatch(n) }
func (n *CatchEnd) Accept(v Visitor) interface{}          { return v.VisitCatchEnd(n) }
func (n *Assembly) Accept(v Visitor) interface{}          { return v.VisitAssembly(n) }
func (n *AssemblyEnd) Accept(v Visitor) interface{}       { return v.VisitAssemblyEnd(n) }
func (n *Group) Accept(v Visitor) interface{}             { return v.VisitGroup(n) }
func (n *ModifierBody) Accept(v Visitor) interface{}      { return v.VisitModifierBody(n) }

// Expressions

func (n *Literal) Accept(v Visitor) interface{}         { return v.VisitLiteral(n) }
func (n *Member) Accept(v Visitor) interface{}          { return v.VisitMember(n) }
func (n *Mapping) Accept(v Visitor) interface{}         { return v.VisitMapping(n) }
func (n *FunctionCall) Accept(v Visitor) interface{}    { return v.VisitFunctionCall(n) }
func (n *Arithmetic) Accept(v Visitor) interface{}      { return v.VisitArithmetic(n) }
func (n *Logical) Accept(v Visitor) interface{}         { return v.VisitLogical(n) }
func (n *ConditionExpr) Accept(v Visitor) interface{}   { return v.VisitConditionExpr(n) }
func (n *Enclosed) Accept(v Visitor) interface{}        { return v.VisitEnclosed(n) }
func (n *Cast) Accept(v Visitor) interface{}            { return v.VisitCast(n) }
func (n *IsZero) Accept(v Visitor) interface{}          { return v.VisitIsZero(n) }
func (n *EnvCaller) Accept(v Visitor) interface{}       { return v.VisitEnvCaller(n) }
func (n *NewArray) Accept(v Visitor) interface{}        { return v.VisitNewArray(n) }
func (n *StructInit) Accept(v Visitor) interface{}      { return v.VisitStructInit(n) }
func (n *StructArg) Accept(v Visitor) interface{}       { return v.VisitStructArg(n) }
func (n *Ternary) Accept(v Visitor) interface{}         { return v.VisitTernary(n) }
func (n *WithSelector) Accept(v Visitor) interface{}    { return v.VisitWithSelector(n) }
func (n *ModifierExpr) Accept(v Visitor) interface{}    { return v.VisitModifierExpr(n) }
func (n *ZeroAddressInto) Accept(v Visitor) interface{} { return v.VisitZeroAddressInto(n) }
