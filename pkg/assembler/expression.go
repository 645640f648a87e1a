package assembler

import (
	"fmt"
	"strings"

	"github.com/solidity2ink/transpiler/internal/casing"
	"github.com/solidity2ink/transpiler/pkg/ir"
)

// printExpr renders one ir.Expression as ink!/openbrush token text.
// selector is the receiver in scope for an EnvCaller node ("instance"
// inside a constructor or modifier body, "self" elsewhere) — spec.md
// §4.8 fills this in only at emission time, never in the IR itself.
// Grounded on the ToTokens impl for Expression in
// original_source/src/assembler.rs, restated as a plain recursive
// function over the tagged union rather than a trait impl, matching
// the recursive generate* function style of
// pkg/codegen.WGSLGenerator.generateExpression in the teacher.
func printExpr(e ir.Expression, selector string) string {
	switch n := e.(type) {
	case *ir.Literal:
		return n.Text
	case *ir.Member:
		name := casing.Snake(n.Name)
		if n.Selector != "" {
			return n.Selector + "." + name
		}
		return name
	case *ir.Mapping:
		return printMapping(n, selector)
	case *ir.FunctionCall:
		return printFunctionCall(n, selector)
	case *ir.Arithmetic:
		if n.Operation == ir.OpPow {
			return fmt.Sprintf("%s.pow(%s as u32)", printExpr(n.Lhs, selector), printExpr(n.Rhs, selector))
		}
		return fmt.Sprintf("%s %s %s", printExpr(n.Lhs, selector), n.Operation, printExpr(n.Rhs, selector))
	case *ir.Logical:
		return fmt.Sprintf("%s %s %s", printExpr(n.Lhs, selector), n.Operation, printExpr(n.Rhs, selector))
	case *ir.ConditionExpr:
		return printCondition(n.Condition, selector)
	case *ir.Enclosed:
		return "(" + printExpr(n.Inner, selector) + ")"
	case *ir.Cast:
		if n.Unique {
			return fmt.Sprintf("%s(%s)", n.Type, printExpr(n.Inner, selector))
		}
		return fmt.Sprintf("(%s as %s)", printExpr(n.Inner, selector), n.Type)
	case *ir.IsZero:
		return printExpr(n.Inner, selector) + ".is_zero()"
	case *ir.EnvCaller:
		return selector + ".env().caller()"
	case *ir.NewArray:
		return fmt.Sprintf("vec![%s::default(); %s]", n.Type, printExpr(n.Size, selector))
	case *ir.StructInit:
		args := make([]string, len(n.Args))
		for i, a := range n.Args {
			args[i] = printExpr(a, selector)
		}
		return fmt.Sprintf("%s { %s }", casing.Pascal(n.Name), strings.Join(args, ", "))
	case *ir.StructArg:
		return fmt.Sprintf("%s: %s", casing.Snake(n.Field), printExpr(n.Value, selector))
	case *ir.Ternary:
		return fmt.Sprintf("if %s { %s } else { %s }", printCondition(n.Condition, selector), printExpr(n.IfTrue, selector), printExpr(n.IfFalse, selector))
	case *ir.WithSelector:
		return n.Left + "." + printExpr(n.Right, selector)
	case *ir.ModifierExpr:
		return n.Text
	case *ir.ZeroAddressInto:
		return "ZERO_ADDRESS.into()"
	default:
		return ""
	}
}

func printMapping(n *ir.Mapping, selector string) string {
	var index string
	if len(n.Indices) > 1 {
		parts := make([]string, len(n.Indices))
		for i, idx := range n.Indices {
			parts[i] = printExpr(idx, selector)
		}
		index = "(" + strings.Join(parts, ", ") + ")"
	} else if len(n.Indices) == 1 {
		index = printExpr(n.Indices[0], selector)
	}

	name := casing.Snake(n.Name)
	target := name
	if n.Selector != "" {
		target = n.Selector + "." + name
	}

	if n.InsertValue != nil {
		return fmt.Sprintf("%s.insert(&%s, &%s)", target, index, printExpr(n.InsertValue, selector))
	}
	return fmt.Sprintf("%s.get(&%s).unwrap()", target, index)
}

func printFunctionCall(n *ir.FunctionCall, selector string) string {
	var b strings.Builder
	if n.Selector != "" {
		b.WriteString(n.Selector)
		b.WriteString(".")
	}
	if !n.External {
		b.WriteString("_")
	}
	b.WriteString(casing.Snake(n.Name))
	b.WriteString("(")
	for i, a := range n.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(printExpr(a, selector))
	}
	b.WriteString(")?")
	return b.String()
}

// printCondition renders a Condition: "left op right", or just "op
// left" when Right is absent (e.g. "!x", or bare "x" when Operation is
// ir.OpTrue, the identity operator).
func printCondition(c ir.Condition, selector string) string {
	left := printExpr(c.Left, selector)
	if c.Right == nil {
		if c.Operation == ir.OpTrue {
			return left
		}
		return c.Operation.String() + left
	}
	return fmt.Sprintf("%s %s %s", left, c.Operation, printExpr(c.Right, selector))
}
