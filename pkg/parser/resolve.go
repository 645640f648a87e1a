package parser

import "github.com/solidity2ink/transpiler/pkg/ir"

// selectorResolver is the identifier-resolution half of the second
// parsing pass: once a body has been lowered to statements, it walks
// the tree and qualifies every reference to a contract-level name with
// the receiver in scope, the way parse_assignment in
// original_source/src/parser.rs prefixes storage writes with
// "self."/"instance.". Names shadowed by a parameter or a local
// declaration are left unqualified; locals accumulate in source order,
// which is sound for the flat statement stream since Solidity forbids
// use-before-declaration.
type selectorResolver struct {
	sel       string
	storage   map[string]struct{}
	functions map[string]bool // name -> declared external/public
	locals    map[string]struct{}
}

func (r *selectorResolver) stmts(list []ir.Statement) {
	for _, s := range list {
		r.stmt(s)
	}
}

func (r *selectorResolver) stmt(s ir.Statement) {
	switch n := s.(type) {
	case *ir.Declaration:
		if n.Value != nil {
			r.expr(n.Value)
		}
		r.locals[n.Name] = struct{}{}
	case *ir.Assign:
		r.expr(n.Lhs)
		r.expr(n.Rhs)
	case *ir.If:
		r.cond(&n.Condition)
	case *ir.ElseIf:
		r.cond(&n.Condition)
	case *ir.While:
		if n.Init != nil {
			r.stmt(n.Init)
		}
		r.cond(&n.Condition)
		if n.Step != nil {
			r.stmt(n.Step)
		}
	case *ir.Emit:
		for _, a := range n.Args {
			r.expr(a)
		}
	case *ir.FunctionCallStmt:
		r.expr(n.Call)
	case *ir.Require:
		r.cond(&n.Condition)
	case *ir.Return:
		if n.Value != nil {
			r.expr(n.Value)
		}
	case *ir.Group:
		r.stmts(n.Body)
	}
}

func (r *selectorResolver) cond(c *ir.Condition) {
	if c.Left != nil {
		r.expr(c.Left)
	}
	if c.Right != nil {
		r.expr(c.Right)
	}
}

func (r *selectorResolver) expr(e ir.Expression) {
	switch n := e.(type) {
	case *ir.Member:
		if n.Selector == "" && r.isStorage(n.Name) {
			n.Selector = r.sel
		}
	case *ir.Mapping:
		if n.Selector == "" && r.isStorage(n.Name) {
			n.Selector = r.sel
		}
		for _, idx := range n.Indices {
			r.expr(idx)
		}
		if n.InsertValue != nil {
			r.expr(n.InsertValue)
		}
	case *ir.FunctionCall:
		if n.Selector == "" {
			if external, known := r.functions[n.Name]; known {
				n.Selector = r.sel
				n.External = external
			}
		}
		for _, a := range n.Args {
			r.expr(a)
		}
	case *ir.Arithmetic:
		r.expr(n.Lhs)
		r.expr(n.Rhs)
	case *ir.Logical:
		r.expr(n.Lhs)
		r.expr(n.Rhs)
	case *ir.ConditionExpr:
		r.cond(&n.Condition)
	case *ir.Enclosed:
		r.expr(n.Inner)
	case *ir.Cast:
		r.expr(n.Inner)
	case *ir.IsZero:
		r.expr(n.Inner)
	case *ir.NewArray:
		if n.Size != nil {
			r.expr(n.Size)
		}
	case *ir.StructInit:
		for _, a := range n.Args {
			r.expr(a)
		}
	case *ir.StructArg:
		r.expr(n.Value)
	case *ir.Ternary:
		r.cond(&n.Condition)
		r.expr(n.IfTrue)
		r.expr(n.IfFalse)
	case *ir.WithSelector:
		r.expr(n.Right)
	}
}

func (r *selectorResolver) isStorage(name string) bool {
	if _, shadowed := r.locals[name]; shadowed {
		return false
	}
	_, ok := r.storage[name]
	return ok
}
