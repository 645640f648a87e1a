package ir

// Statement is the tagged union of lowered function-body forms.
//
// Bodies are represented as a flat []Statement per block (see
// SPEC_FULL.md §1 for the rationale). Compound constructs — If,
// ElseIf, Else, While, Try, Catch, Assembly — are boundary markers:
// the statements belonging to that branch follow immediately in the
// same flat slice, and the matching *End marker closes it. Group is
// the sole exception and nests its body directly, since it stands
// alone and needs no sibling bookkeeping.
type Statement interface {
	statementNode()
	Accept(v Visitor) interface{}
}

// Comment is a documentation or explanatory line carried into the
// output verbatim as a target-language comment.
type Comment struct {
	Text string
}

func (*Comment) statementNode() {}

// Raw is unrecognized source text the parser could not lower further.
// It is emitted as a comment with a "please handle manually" marker;
// per spec.md §7 this is best-effort residue, not a parse error.
type Raw struct {
	Text string
}

func (*Raw) statementNode() {}

// Declaration is `type name [= expr];`.
type Declaration struct {
	Name  string
	Type  string // already type-converted
	Value Expression // nil when uninitialized
}

func (*Declaration) statementNode() {}

// Assign is `lhs op= rhs` (plain `=` uses Operation == OpTrue).
type Assign struct {
	Lhs       Expression
	Rhs       Expression
	Operation Operation
}

func (*Assign) statementNode() {}

// If opens an if-branch; statements inside it follow in the flat
// stream up to the next sibling marker (ElseIf/Else/IfEnd).
type If struct {
	Condition Condition
}

func (*If) statementNode() {}

// ElseIf opens a subsequent `else if` branch of the same chain.
type ElseIf struct {
	Condition Condition
}

func (*ElseIf) statementNode() {}

// Else opens the trailing unconditional branch of the chain.
type Else struct{}

func (*Else) statementNode() {}

// IfEnd closes the nearest open If/ElseIf/Else chain.
type IfEnd struct{}

func (*IfEnd) statementNode() {}

// While opens a loop. Init and Step are themselves Statements (a
// Declaration or Assign) run once before the loop and once per
// iteration respectively; both are nil for a plain `while (cond)`.
// A Solidity `for (init; cond; step) { body }` lowers to this same
// shape with Init as a prelude statement emitted just before While and
// Step appended as the last statement inside the loop body, so the
// emitted loop is always a `while`.
type While struct {
	Init      Statement // nil if absent
	Condition Condition
	Step      Statement // nil if absent
}

func (*While) statementNode() {}

// WhileEnd closes the nearest open While.
type WhileEnd struct{}

func (*WhileEnd) statementNode() {}

// Emit is `emit Event(args)`.
type Emit struct {
	EventName string
	Args      []Expression
}

func (*Emit) statementNode() {}

// FunctionCallStmt is a bare call used as a statement (its result
// discarded), e.g. `token.transfer(to, amount);`.
type FunctionCallStmt struct {
	Call Expression
}

func (*FunctionCallStmt) statementNode() {}

// Require is `require(cond, "message");`.
type Require struct {
	Condition Condition
	Error     string
}

func (*Require) statementNode() {}

// Return is `return expr;` (expr is nil for a bare `return;`).
type Return struct {
	Value Expression
}

func (*Return) statementNode() {}

// Try opens a try block; body preserved verbatim per spec.md §9 (no
// attempt to execute or type the caught error).
type Try struct{}

func (*Try) statementNode() {}

// TryEnd closes the nearest open Try.
type TryEnd struct{}

func (*TryEnd) statementNode() {}

// Catch opens a catch clause following a Try.
type Catch struct {
	Declaration string // raw catch-clause parameter text, if any
}

func (*Catch) statementNode() {}

// CatchEnd closes the nearest open Catch.
type CatchEnd struct{}

func (*CatchEnd) statementNode() {}

// Assembly opens an `unchecked { ... }` or inline `assembly { ... }`
// block. Its contents are preserved only as Comment statements; no
// wraparound or register semantics are reconstructed.
type Assembly struct{}

func (*Assembly) statementNode() {}

// AssemblyEnd closes the nearest open Assembly.
type AssemblyEnd struct{}

func (*AssemblyEnd) statementNode() {}

// Group is a bare `{ ... }` block that is not part of an if/while/try
// chain. Unlike the other compound statements it nests its body
// directly, since there is no sibling marker sequence to track.
type Group struct {
	Body []Statement
}

func (*Group) statementNode() {}

// ModifierBody is the injection point, inside a lowered modifier body,
// where the wrapped function thunk must be invoked (the Solidity `_;`
// placeholder). The assembler prints it as a call to the thunk
// parameter.
type ModifierBody struct{}

func (*ModifierBody) statementNode() {}
