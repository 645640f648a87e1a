package assembler

import (
	"fmt"

	"github.com/solidity2ink/transpiler/internal/casing"
	"github.com/solidity2ink/transpiler/pkg/ir"
)

// printStatements walks one flat []ir.Statement stream and writes the
// equivalent ink!/openbrush block to e, maintaining brace nesting via
// e's own indent level rather than a parallel data structure — the
// flat-stream-with-boundary-markers design (SPEC_FULL.md §1) means
// sibling markers (ElseIf/Else/IfEnd, Catch/CatchEnd, …) are always
// encountered in the position that naturally closes/reopens a brace,
// so no separate stack is needed except for While, whose Init/Step
// statements live on the While node itself and must be deferred until
// its matching WhileEnd — see whileSteps below.
//
// Grounded on the ToTokens impl for Statement in
// original_source/src/assembler.rs: same per-variant shape, restated
// over the flat Go stream instead of Rust's natively nested enum.
func (e *Emitter) printStatements(stmts []ir.Statement) {
	var whileSteps []ir.Statement

	for _, s := range stmts {
		switch n := s.(type) {
		case *ir.Comment:
			if n.Text != "" {
				e.writeln("// " + n.Text)
			}
		case *ir.Raw:
			e.writeln("// " + n.Text + " // Please handle manually")
		case *ir.Declaration:
			e.printDeclaration(n)
		case *ir.Assign:
			e.printAssign(n)
		case *ir.If:
			e.writeln(fmt.Sprintf("if %s {", printCondition(n.Condition, e.selector)))
			e.increaseIndent()
		case *ir.ElseIf:
			e.decreaseIndent()
			e.writeln(fmt.Sprintf("} else if %s {", printCondition(n.Condition, e.selector)))
			e.increaseIndent()
		case *ir.Else:
			e.decreaseIndent()
			e.writeln("} else {")
			e.increaseIndent()
		case *ir.IfEnd:
			e.decreaseIndent()
			e.writeln("}")
		case *ir.While:
			if n.Init != nil {
				e.printStatements([]ir.Statement{n.Init})
			}
			whileSteps = append(whileSteps, n.Step)
			e.writeln(fmt.Sprintf("while %s {", printCondition(n.Condition, e.selector)))
			e.increaseIndent()
		case *ir.WhileEnd:
			step := whileSteps[len(whileSteps)-1]
			whileSteps = whileSteps[:len(whileSteps)-1]
			if step != nil {
				e.printStatements([]ir.Statement{step})
			}
			e.decreaseIndent()
			e.writeln("}")
		case *ir.Emit:
			e.printEmit(n)
		case *ir.FunctionCallStmt:
			e.writeln(printExpr(n.Call, e.selector) + ";")
		case *ir.Require:
			e.printRequire(n)
		case *ir.Return:
			if n.Value != nil {
				e.writeln(fmt.Sprintf("return Ok(%s);", printExpr(n.Value, e.selector)))
			} else {
				e.writeln("return Ok(());")
			}
		case *ir.Try:
			e.writeln("// Please handle try/catch blocks manually >>>")
			e.writeln("if true {")
			e.increaseIndent()
		case *ir.TryEnd:
			e.decreaseIndent()
			e.writeln("}")
		case *ir.Catch:
			e.decreaseIndent()
			e.writeln("} else if false {")
			e.increaseIndent()
			if n.Declaration != "" {
				e.writeln("// catch (" + n.Declaration + ")")
			}
			e.writeln("// <<< Please handle try/catch blocks manually")
		case *ir.CatchEnd:
			e.decreaseIndent()
			e.writeln("}")
		case *ir.Assembly:
			e.writeln("// unchecked/assembly block, please handle manually >>>")
		case *ir.AssemblyEnd:
			e.writeln("// <<< end of unchecked/assembly block")
		case *ir.Group:
			e.writeln("{")
			e.increaseIndent()
			e.printStatements(n.Body)
			e.decreaseIndent()
			e.writeln("}")
		case *ir.ModifierBody:
			e.writeln("body(instance)")
		}
	}
}

func (e *Emitter) printDeclaration(n *ir.Declaration) {
	name := casing.Snake(n.Name)
	if n.Value != nil {
		e.writeln(fmt.Sprintf("let %s: %s = %s;", name, n.Type, printExpr(n.Value, e.selector)))
		return
	}
	e.writeln(fmt.Sprintf("let %s: %s;", name, n.Type))
}

// printAssign special-cases a storage-mapping write: spec.md §1 calls
// out that "detection of storage-mapping writes must produce insert
// calls rather than index-assignment" — Lhs is an *ir.Mapping whose
// InsertValue the parser already populated, so printExpr(Lhs) alone
// already is the full `m.insert(&key, &value)` call; appending the
// plain-assignment form on top of that would double-apply the value.
func (e *Emitter) printAssign(n *ir.Assign) {
	if m, ok := n.Lhs.(*ir.Mapping); ok && m.InsertValue != nil {
		e.writeln(printExpr(m, e.selector) + ";")
		return
	}
	op := "="
	if n.Operation != ir.OpTrue {
		op = n.Operation.String()
	}
	e.writeln(fmt.Sprintf("%s %s %s;", printExpr(n.Lhs, e.selector), op, printExpr(n.Rhs, e.selector)))
}

func (e *Emitter) printEmit(n *ir.Emit) {
	e.writeln(fmt.Sprintf("%s.env().emit_event(%s {", e.selector, n.EventName))
	e.increaseIndent()
	for _, a := range n.Args {
		e.writeln(printExpr(a, e.selector) + ",")
	}
	e.decreaseIndent()
	e.writeln("});")
}

func (e *Emitter) printRequire(n *ir.Require) {
	e.writeln(fmt.Sprintf("if !(%s) {", printCondition(n.Condition, e.selector)))
	e.increaseIndent()
	e.writeln(fmt.Sprintf("return Err(Error::Custom(String::from(%q)));", n.Error))
	e.decreaseIndent()
	e.writeln("}")
}
