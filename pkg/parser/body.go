package parser

import (
	"strings"

	"github.com/solidity2ink/transpiler/pkg/ir"
	"github.com/solidity2ink/transpiler/pkg/source"
	"github.com/solidity2ink/transpiler/pkg/typeconvert"
)

// lowerBody runs the second parsing pass over a function/modifier body
// captured as a single raw span during the first pass (see
// parseFunctionLike). By the time this runs, the contract's full
// storage-variable and function-name symbol table is available, which
// is what spec.md §4.6 requires before statements can be lowered: the
// resolver below uses it to qualify storage reads/writes and internal
// calls with the receiver in scope (sel is "instance" for constructor
// and modifier bodies, "self" for regular functions).
func lowerBody(stmts []ir.Statement, sel string, params []ir.FunctionParam, storage map[string]struct{}, functions map[string]bool, imports *ir.ImportSet) []ir.Statement {
	if len(stmts) == 0 {
		return nil
	}
	raw, ok := stmts[0].(*ir.Raw)
	if !ok {
		return stmts
	}
	out := parseBlock(raw.Text, imports)

	r := &selectorResolver{
		sel:       sel,
		storage:   storage,
		functions: functions,
		locals:    make(map[string]struct{}, len(params)),
	}
	for _, p := range params {
		r.locals[p.Name] = struct{}{}
	}
	r.stmts(out)
	return out
}

// parseBlock lowers one brace-delimited statement list. It is called
// recursively for every nested block (if/while/try/bare-group bodies).
func parseBlock(text string, imports *ir.ImportSet) []ir.Statement {
	c := source.New(text)
	var out []ir.Statement

	for {
		c.SkipWhitespace()
		if c.Done() {
			break
		}
		switch {
		case c.HasPrefix("//"):
			c.Next()
			c.Next()
			if t := readLineComment(c); t != "" {
				out = append(out, &ir.Comment{Text: t})
			}
		case c.HasPrefix("/*"):
			c.Next()
			c.Next()
			for _, t := range readBlockComment(c) {
				out = append(out, &ir.Comment{Text: t})
			}
		case tryKeyword(c, "if"):
			out = append(out, parseIfChain(c, imports)...)
		case tryKeyword(c, "while"):
			out = append(out, parseWhile(c, imports)...)
		case tryKeyword(c, "do"):
			out = append(out, parseDoWhile(c, imports)...)
		case tryKeyword(c, "for"):
			out = append(out, parseFor(c, imports)...)
		case tryKeyword(c, "try"):
			out = append(out, parseTry(c)...)
		case tryKeyword(c, "unchecked"):
			out = append(out, parseOpaqueBlock(c)...)
		case tryKeyword(c, "assembly"):
			out = append(out, parseOpaqueBlock(c)...)
		case tryKeyword(c, "require"):
			out = append(out, parseRequire(c, imports))
		case tryKeyword(c, "emit"):
			out = append(out, parseEmit(c, imports))
		case tryKeyword(c, "return"):
			out = append(out, parseReturn(c, imports))
		case c.HasPrefix("{"):
			c.Next()
			body := c.ReadBalanced('{', '}')
			out = append(out, &ir.Group{Body: parseBlock(body, imports)})
		default:
			raw := strings.TrimSpace(c.ReadUntil(';'))
			if raw == "" {
				continue
			}
			out = append(out, parseSimpleStatement(raw, imports))
		}
	}
	return out
}

// tryKeyword consumes kw (plus any trailing whitespace) if the cursor
// is positioned at kw as a whole word, reporting whether it matched.
func tryKeyword(c *source.Cursor, kw string) bool {
	if !c.HasPrefix(kw) {
		return false
	}
	if after, ok := c.PeekAt(len([]rune(kw))); ok && isIdentRune(after) {
		return false
	}
	c.Consume(kw)
	c.SkipWhitespace()
	return true
}

func isIdentRune(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// parseIfChain parses an if/else-if*/else? chain, the leading "if" and
// following whitespace already consumed.
func parseIfChain(c *source.Cursor, imports *ir.ImportSet) []ir.Statement {
	c.Consume("(")
	condRaw := c.ReadBalanced('(', ')')
	c.SkipWhitespace()
	hasBrace := c.Consume("{")
	var bodyRaw string
	if hasBrace {
		bodyRaw = c.ReadBalanced('{', '}')
	} else {
		bodyRaw = c.ReadUntil(';') + ";"
	}

	out := []ir.Statement{&ir.If{Condition: parseCondition(condRaw, imports)}}
	out = append(out, parseBlock(bodyRaw, imports)...)

	for {
		c.SkipWhitespace()
		if !tryKeyword(c, "else") {
			break
		}
		if tryKeyword(c, "if") {
			c.Consume("(")
			condRaw2 := c.ReadBalanced('(', ')')
			c.SkipWhitespace()
			brace2 := c.Consume("{")
			var bodyRaw2 string
			if brace2 {
				bodyRaw2 = c.ReadBalanced('{', '}')
			} else {
				bodyRaw2 = c.ReadUntil(';') + ";"
			}
			out = append(out, &ir.ElseIf{Condition: parseCondition(condRaw2, imports)})
			out = append(out, parseBlock(bodyRaw2, imports)...)
			continue
		}
		c.SkipWhitespace()
		brace3 := c.Consume("{")
		var elseBodyRaw string
		if brace3 {
			elseBodyRaw = c.ReadBalanced('{', '}')
		} else {
			elseBodyRaw = c.ReadUntil(';') + ";"
		}
		out = append(out, &ir.Else{})
		out = append(out, parseBlock(elseBodyRaw, imports)...)
		break
	}
	out = append(out, &ir.IfEnd{})
	return out
}

func parseWhile(c *source.Cursor, imports *ir.ImportSet) []ir.Statement {
	c.Consume("(")
	condRaw := c.ReadBalanced('(', ')')
	c.SkipWhitespace()
	c.Consume("{")
	bodyRaw := c.ReadBalanced('{', '}')

	out := []ir.Statement{&ir.While{Condition: parseCondition(condRaw, imports)}}
	out = append(out, parseBlock(bodyRaw, imports)...)
	out = append(out, &ir.WhileEnd{})
	return out
}

// parseDoWhile lowers "do { body } while (cond);" to the same While
// shape as a plain while loop. The at-least-once semantics are not
// reconstructed; the trailing condition simply becomes the loop guard.
func parseDoWhile(c *source.Cursor, imports *ir.ImportSet) []ir.Statement {
	c.Consume("{")
	bodyRaw := c.ReadBalanced('{', '}')
	c.SkipWhitespace()
	tryKeyword(c, "while")
	c.Consume("(")
	condRaw := c.ReadBalanced('(', ')')
	c.SkipUntil(';')

	out := []ir.Statement{&ir.While{Condition: parseCondition(condRaw, imports)}}
	out = append(out, parseBlock(bodyRaw, imports)...)
	out = append(out, &ir.WhileEnd{})
	return out
}

// parseFor desugars a Solidity for-loop into the same While shape used
// for a plain while loop, carrying the init/step statements on the
// While node itself (see ir.While's doc comment).
func parseFor(c *source.Cursor, imports *ir.ImportSet) []ir.Statement {
	c.Consume("(")
	headerRaw := c.ReadBalanced('(', ')')
	c.SkipWhitespace()
	c.Consume("{")
	bodyRaw := c.ReadBalanced('{', '}')

	parts := splitTopLevelSemicolon(headerRaw)
	cond := ir.Condition{Left: &ir.Literal{Text: "true"}, Operation: ir.OpTrue}
	var initStmt, stepStmt ir.Statement
	if len(parts) == 3 {
		if initRaw := strings.TrimSpace(parts[0]); initRaw != "" {
			initStmt = parseSimpleStatement(initRaw, imports)
		}
		if condRaw := strings.TrimSpace(parts[1]); condRaw != "" {
			cond = parseCondition(condRaw, imports)
		}
		if stepRaw := strings.TrimSpace(parts[2]); stepRaw != "" {
			stepStmt = parseSimpleStatement(stepRaw, imports)
		}
	}

	out := []ir.Statement{&ir.While{Init: initStmt, Condition: cond, Step: stepStmt}}
	out = append(out, parseBlock(bodyRaw, imports)...)
	out = append(out, &ir.WhileEnd{})
	return out
}

// parseTry/parseOpaqueBlock implement only the scaffolding spec.md §9
// calls for: the boundary markers are real, but try/catch and
// unchecked/assembly bodies are preserved verbatim as comments rather
// than lowered into statements, since neither has a faithful
// ink!/openbrush counterpart.
func parseTry(c *source.Cursor) []ir.Statement {
	exprRaw := strings.TrimSpace(c.ReadUntil('{'))
	bodyRaw := strings.TrimSpace(c.ReadBalanced('{', '}'))

	out := []ir.Statement{&ir.Try{}}
	if exprRaw != "" {
		out = append(out, &ir.Comment{Text: "try " + exprRaw})
	}
	out = append(out, commentLines(bodyRaw)...)
	out = append(out, &ir.TryEnd{})

	c.SkipWhitespace()
	if tryKeyword(c, "catch") {
		var declRaw string
		if c.HasPrefix("(") {
			c.Next()
			declRaw = strings.TrimSpace(c.ReadBalanced('(', ')'))
		}
		c.SkipWhitespace()
		c.Consume("{")
		catchBodyRaw := strings.TrimSpace(c.ReadBalanced('{', '}'))
		out = append(out, &ir.Catch{Declaration: declRaw})
		out = append(out, commentLines(catchBodyRaw)...)
		out = append(out, &ir.CatchEnd{})
	}
	return out
}

func parseOpaqueBlock(c *source.Cursor) []ir.Statement {
	c.SkipWhitespace()
	c.Consume("{")
	bodyRaw := strings.TrimSpace(c.ReadBalanced('{', '}'))
	out := []ir.Statement{&ir.Assembly{}}
	out = append(out, commentLines(bodyRaw)...)
	out = append(out, &ir.AssemblyEnd{})
	return out
}

// commentLines turns a verbatim block body into one Comment per
// non-blank line, so that every line is emitted commented out.
func commentLines(text string) []ir.Statement {
	var out []ir.Statement
	for _, line := range strings.Split(text, "\n") {
		if t := strings.TrimSpace(line); t != "" {
			out = append(out, &ir.Comment{Text: t})
		}
	}
	return out
}

func parseRequire(c *source.Cursor, imports *ir.ImportSet) ir.Statement {
	c.Consume("(")
	argsRaw := c.ReadBalanced('(', ')')
	c.SkipUntil(';')

	parts := splitTopLevelComma(argsRaw)
	condRaw := strings.TrimSpace(parts[0])
	var errMsg string
	if len(parts) > 1 {
		errMsg = strings.Trim(strings.TrimSpace(parts[1]), `"`)
	}
	return &ir.Require{Condition: parseCondition(condRaw, imports), Error: errMsg}
}

func parseEmit(c *source.Cursor, imports *ir.ImportSet) ir.Statement {
	name := strings.TrimSpace(c.ReadUntil('('))
	argsRaw := c.ReadBalanced('(', ')')
	c.SkipUntil(';')
	return &ir.Emit{EventName: name, Args: parseArgList(argsRaw, imports)}
}

func parseReturn(c *source.Cursor, imports *ir.ImportSet) ir.Statement {
	raw := strings.TrimSpace(c.ReadUntil(';'))
	if raw == "" {
		return &ir.Return{}
	}
	return &ir.Return{Value: parseExpression(raw, imports)}
}

// parseSimpleStatement lowers one ";"-terminated statement that is
// none of the keyword-led forms above: a declaration, an assignment
// (possibly compound or a mapping write), an increment/decrement, the
// "_;" modifier-body placeholder, or a bare function-call statement.
// Grounded on parse_assignment in original_source/src/parser.rs,
// generalized to cover declarations, compound operators, and
// increment/decrement, which the original left as TODOs.
func parseSimpleStatement(raw string, imports *ir.ImportSet) ir.Statement {
	raw = strings.TrimSpace(strings.TrimSuffix(raw, ";"))
	if raw == "" {
		return &ir.Comment{}
	}
	if raw == "_" {
		return &ir.ModifierBody{}
	}

	if lhs, rhs, op, ok := splitAssignment(raw); ok {
		if op == ir.OpTrue {
			if filtered := filterStorageQualifiers(strings.Fields(lhs)); len(filtered) >= 2 && looksLikeDeclarable(filtered) {
				typ := strings.Join(filtered[:len(filtered)-1], " ")
				name := filtered[len(filtered)-1]
				return &ir.Declaration{
					Name:  name,
					Type:  typeconvert.Convert(typ, imports),
					Value: parseExpression(rhs, imports),
				}
			}
		}
		lhsExpr := parseExpression(lhs, imports)
		rhsExpr := parseExpression(rhs, imports)
		if m, ok := lhsExpr.(*ir.Mapping); ok && op == ir.OpTrue {
			m.InsertValue = rhsExpr
		}
		return &ir.Assign{Lhs: lhsExpr, Rhs: rhsExpr, Operation: op}
	}

	if strings.HasSuffix(raw, "++") {
		target := strings.TrimSpace(strings.TrimSuffix(raw, "++"))
		return &ir.Assign{Lhs: parseExpression(target, imports), Rhs: &ir.Literal{Text: "1"}, Operation: ir.OpAddAssign}
	}
	if strings.HasSuffix(raw, "--") {
		target := strings.TrimSpace(strings.TrimSuffix(raw, "--"))
		return &ir.Assign{Lhs: parseExpression(target, imports), Rhs: &ir.Literal{Text: "1"}, Operation: ir.OpSubAssign}
	}

	if fields := filterStorageQualifiers(strings.Fields(raw)); len(fields) >= 2 && !strings.ContainsAny(raw, "(") && looksLikeDeclarable(fields) {
		typ := strings.Join(fields[:len(fields)-1], " ")
		name := fields[len(fields)-1]
		return &ir.Declaration{Name: name, Type: typeconvert.Convert(typ, imports)}
	}

	expr := parseExpression(raw, imports)
	if _, ok := expr.(*ir.FunctionCall); ok {
		return &ir.FunctionCallStmt{Call: expr}
	}
	return &ir.Raw{Text: raw + ";"}
}

// looksLikeDeclarable reports whether tokens look like "Type[ storage] name"
// rather than some other multi-word expression fragment.
func looksLikeDeclarable(tokens []string) bool {
	if len(tokens) < 2 {
		return false
	}
	name := tokens[len(tokens)-1]
	for _, r := range name {
		if !isIdentRune(r) {
			return false
		}
	}
	return true
}

// splitAssignment finds the top-level assignment operator in s (plain
// "=" or a compound "+="/"-="/... variant), returning the trimmed
// left/right-hand sides and the Operation (OpTrue for a plain "=").
// Comparison operators ("==", "!=", "<=", ">=") are recognized and
// skipped rather than mistaken for an assignment.
func splitAssignment(s string) (lhs, rhs string, op ir.Operation, ok bool) {
	runes := []rune(s)
	depth := 0
	inString := false
	var quote rune

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if inString {
			if r == quote {
				inString = false
			}
			continue
		}
		switch r {
		case '"', '\'':
			inString = true
			quote = r
			continue
		case '(', '[', '{':
			depth++
			continue
		case ')', ']', '}':
			depth--
			continue
		}
		if depth != 0 || r != '=' {
			continue
		}

		var next rune
		if i+1 < len(runes) {
			next = runes[i+1]
		}
		if next == '=' {
			i++
			continue
		}
		var prev rune
		if i > 0 {
			prev = runes[i-1]
		}
		switch prev {
		case '!', '<', '>':
			continue
		case '+':
			return strings.TrimSpace(string(runes[:i-1])), strings.TrimSpace(string(runes[i+1:])), ir.OpAddAssign, true
		case '-':
			return strings.TrimSpace(string(runes[:i-1])), strings.TrimSpace(string(runes[i+1:])), ir.OpSubAssign, true
		case '*':
			return strings.TrimSpace(string(runes[:i-1])), strings.TrimSpace(string(runes[i+1:])), ir.OpMulAssign, true
		case '/':
			return strings.TrimSpace(string(runes[:i-1])), strings.TrimSpace(string(runes[i+1:])), ir.OpDivAssign, true
		case '%':
			return strings.TrimSpace(string(runes[:i-1])), strings.TrimSpace(string(runes[i+1:])), ir.OpModAssign, true
		case '&':
			return strings.TrimSpace(string(runes[:i-1])), strings.TrimSpace(string(runes[i+1:])), ir.OpAndAssign, true
		case '|':
			return strings.TrimSpace(string(runes[:i-1])), strings.TrimSpace(string(runes[i+1:])), ir.OpOrAssign, true
		default:
			return strings.TrimSpace(string(runes[:i])), strings.TrimSpace(string(runes[i+1:])), ir.OpTrue, true
		}
	}
	return "", "", ir.OpTrue, false
}

// splitTopLevelSemicolon splits s on ";" at paren/bracket/brace depth 0,
// used to split a for-loop header into init/condition/step.
func splitTopLevelSemicolon(s string) []string {
	var parts []string
	depth := 0
	start := 0
	runes := []rune(s)
	for i, r := range runes {
		switch r {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case ';':
			if depth == 0 {
				parts = append(parts, string(runes[start:i]))
				start = i + 1
			}
		}
	}
	parts = append(parts, string(runes[start:]))
	return parts
}
