package parser

import (
	"strconv"
	"strings"

	"github.com/solidity2ink/transpiler/pkg/ir"
	"github.com/solidity2ink/transpiler/pkg/typeconvert"
)

// parseExpression is the expression-parser entry point: it peels off a
// ternary at the top, then hands off to the operator-precedence
// climber. imports may be nil when the caller only needs the resulting
// tree (tests) rather than accurate import bookkeeping.
func parseExpression(s string, imports *ir.ImportSet) ir.Expression {
	s = strings.TrimSpace(s)
	if s == "" {
		return &ir.Literal{Text: ""}
	}
	if q, ok := findTopLevelRune(s, '?'); ok {
		if c, ok := findTopLevelRune(s[q+1:], ':'); ok {
			condRaw := s[:q]
			trueRaw := s[q+1 : q+1+c]
			falseRaw := s[q+1+c+1:]
			return &ir.Ternary{
				Condition: parseCondition(condRaw, imports),
				IfTrue:    parseExpression(trueRaw, imports),
				IfFalse:   parseExpression(falseRaw, imports),
			}
		}
	}
	return parseBinaryExpr(s, imports)
}

// parseCondition parses s as a boolean test for an If/While/Require
// position. A top-level comparison or logical combination is used
// directly; anything else is wrapped as a bare truthy check.
func parseCondition(s string, imports *ir.ImportSet) ir.Condition {
	expr := parseBinaryExpr(strings.TrimSpace(s), imports)
	if ce, ok := expr.(*ir.ConditionExpr); ok {
		return ce.Condition
	}
	return ir.Condition{Left: expr, Operation: ir.OpTrue}
}

type opToken struct {
	sym string
	op  ir.Operation
}

// binaryTokens is ordered longest-symbol-first so the scanner never
// matches "=" inside "==" or "<" inside "<=".
var binaryTokens = []opToken{
	{"&&", ir.OpAnd}, {"||", ir.OpOr},
	{"==", ir.OpEq}, {"!=", ir.OpNeq}, {"<=", ir.OpLte}, {">=", ir.OpGte},
	{"<<", ir.OpShl}, {">>", ir.OpShr}, {"**", ir.OpPow},
	{"+", ir.OpAdd}, {"-", ir.OpSub}, {"*", ir.OpMul}, {"/", ir.OpDiv}, {"%", ir.OpMod},
	{"&", ir.OpBitAnd}, {"|", ir.OpBitOr}, {"^", ir.OpBitXor},
	{"<", ir.OpLt}, {">", ir.OpGt},
}

// parseBinaryExpr implements precedence climbing directly over the
// source text: it finds every top-level (paren/bracket/brace-depth 0,
// outside string literals) binary operator occurrence, picks the one
// with the lowest Operation.Precedence(), and on ties picks the
// rightmost occurrence so that same-precedence operators associate
// left ("a - b - c" becomes "(a - b) - c").
func parseBinaryExpr(s string, imports *ir.ImportSet) ir.Expression {
	s = strings.TrimSpace(s)
	if s == "" {
		return &ir.Literal{Text: ""}
	}

	pos, length, op, found := findSplitOperator(s)
	if !found {
		return parsePrimary(s, imports)
	}

	left := parseBinaryExpr(s[:pos], imports)
	right := parseBinaryExpr(s[pos+length:], imports)

	switch {
	case op == ir.OpAnd || op == ir.OpOr:
		return &ir.Logical{Lhs: left, Operation: op, Rhs: right}
	case op.IsComparison():
		return &ir.ConditionExpr{Condition: ir.Condition{Left: left, Operation: op, Right: right}}
	default:
		return &ir.Arithmetic{Lhs: left, Rhs: right, Operation: op}
	}
}

// findSplitOperator scans s for the binary operator to split on.
func findSplitOperator(s string) (pos, length int, op ir.Operation, found bool) {
	runes := []rune(s)
	depth := 0
	inString := false
	var quote rune
	bestPrec := 1 << 30

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
		if depth != 0 || i == 0 {
			continue
		}

		for _, tok := range binaryTokens {
			if !hasPrefixAt(runes, i, tok.sym) {
				continue
			}
			if len(tok.sym) == 1 && (tok.sym == "+" || tok.sym == "-") && isUnaryPosition(runes, i) {
				continue
			}
			prec := tok.op.Precedence()
			if prec <= bestPrec {
				bestPrec = prec
				pos, length, op, found = i, len(tok.sym), tok.op, true
			}
			i += len(tok.sym) - 1
			break
		}
	}
	return pos, length, op, found
}

func hasPrefixAt(runes []rune, i int, sym string) bool {
	symRunes := []rune(sym)
	if i+len(symRunes) > len(runes) {
		return false
	}
	for j, r := range symRunes {
		if runes[i+j] != r {
			return false
		}
	}
	return true
}

// isUnaryPosition reports whether a '+' or '-' at index i is a unary
// sign rather than a binary operator, judged by what precedes it.
func isUnaryPosition(runes []rune, i int) bool {
	j := i - 1
	for j >= 0 && runes[j] == ' ' {
		j--
	}
	if j < 0 {
		return true
	}
	prev := runes[j]
	switch prev {
	case '(', '[', ',', '=', '<', '>', '!', '&', '|', '+', '-', '*', '/', '%', '?', ':':
		return true
	default:
		return false
	}
}

// findTopLevelRune finds the first occurrence of r at depth 0, outside
// string literals.
func findTopLevelRune(s string, r rune) (int, bool) {
	depth := 0
	inString := false
	var quote rune
	for i, c := range s {
		if inString {
			if c == quote {
				inString = false
			}
			continue
		}
		switch c {
		case '"', '\'':
			inString = true
			quote = c
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case r:
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// parsePrimary parses a primary expression: a literal, identifier,
// selector chain, call, mapping/array access, cast, struct literal, or
// parenthesized sub-expression. By the time control reaches here,
// parseBinaryExpr has already ruled out any top-level binary operator.
func parsePrimary(s string, imports *ir.ImportSet) ir.Expression {
	s = strings.TrimSpace(s)
	if s == "" {
		return &ir.Literal{Text: ""}
	}

	switch {
	case strings.HasPrefix(s, "!"):
		inner := parsePrimary(strings.TrimSpace(s[1:]), imports)
		return &ir.ConditionExpr{Condition: ir.Condition{Left: inner, Operation: ir.OpNot}}
	case s == "msg.sender":
		return &ir.EnvCaller{}
	case isZeroAddressCall(s):
		return &ir.ZeroAddressInto{}
	case isLiteral(s):
		return &ir.Literal{Text: s}
	case strings.HasPrefix(s, "-") && isLiteral(s[1:]):
		return &ir.Literal{Text: s}
	case strings.HasPrefix(s, "(") && matchingIndex(s, '(', ')', 0) == len(s)-1:
		return &ir.Enclosed{Inner: parseExpression(s[1:len(s)-1], imports)}
	case strings.HasPrefix(s, "new "):
		return parseNewArray(s, imports)
	}

	if dot, ok := findTopLevelRune(s, '.'); ok {
		left := s[:dot]
		right := s[dot+1:]
		if right == "isZero()" {
			return &ir.IsZero{Inner: parsePrimary(left, imports)}
		}
		return parseSelected(left, right, imports)
	}

	return parseUnselected(s, imports)
}

// parseSelected parses "selector.right", where right is either a bare
// field name, a mapping/array index, or a method call.
func parseSelected(selector, right string, imports *ir.ImportSet) ir.Expression {
	right = strings.TrimSpace(right)
	if open := strings.Index(right, "("); open >= 0 && strings.HasSuffix(right, ")") && matchingIndex(right, '(', ')', open) == len(right)-1 {
		name := right[:open]
		args := parseArgList(right[open+1:len(right)-1], imports)
		return &ir.FunctionCall{Name: name, Args: args, Selector: selector, External: true}
	}
	if open := strings.Index(right, "["); open >= 0 {
		return parseMappingAccess(right, open, selector, imports)
	}
	return &ir.Member{Name: right, Selector: selector}
}

// parseUnselected parses a non-dotted primary: a call, cast, struct
// literal, mapping/array access, or bare identifier.
func parseUnselected(s string, imports *ir.ImportSet) ir.Expression {
	if open := strings.Index(s, "("); open >= 0 && strings.HasSuffix(s, ")") && matchingIndex(s, '(', ')', open) == len(s)-1 {
		name := strings.TrimSpace(s[:open])
		argsRaw := s[open+1 : len(s)-1]
		switch {
		case name == "payable":
			return &ir.Cast{Unique: true, Inner: parseExpression(argsRaw, imports)}
		case looksLikeType(name):
			return &ir.Cast{Type: typeconvert.Convert(name, imports), Inner: parseExpression(argsRaw, imports)}
		case strings.HasPrefix(strings.TrimSpace(argsRaw), "{"):
			return parseStructInit(name, strings.TrimSpace(argsRaw), imports)
		default:
			return &ir.FunctionCall{Name: name, Args: parseArgList(argsRaw, imports)}
		}
	}
	if open := strings.Index(s, "["); open >= 0 && strings.HasSuffix(s, "]") {
		return parseMappingAccess(s, open, "", imports)
	}
	return &ir.Member{Name: s}
}

func parseMappingAccess(s string, firstBracket int, selector string, imports *ir.ImportSet) ir.Expression {
	name := s[:firstBracket]
	rest := s[firstBracket:]
	var indices []ir.Expression
	for strings.HasPrefix(rest, "[") {
		close := matchingIndex(rest, '[', ']', 0)
		if close < 0 {
			break
		}
		indices = append(indices, parseExpression(rest[1:close], imports))
		rest = rest[close+1:]
	}
	return &ir.Mapping{Name: name, Indices: indices, Selector: selector}
}

func parseStructInit(name, braced string, imports *ir.ImportSet) ir.Expression {
	inner := strings.TrimSuffix(strings.TrimPrefix(braced, "{"), "}")
	var args []ir.Expression
	for _, part := range splitTopLevelComma(inner) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if colon, ok := findTopLevelRune(part, ':'); ok {
			field := strings.TrimSpace(part[:colon])
			value := parseExpression(part[colon+1:], imports)
			args = append(args, &ir.StructArg{Field: field, Value: value})
		} else {
			args = append(args, parseExpression(part, imports))
		}
	}
	return &ir.StructInit{Name: name, Args: args}
}

func parseNewArray(s string, imports *ir.ImportSet) ir.Expression {
	rest := strings.TrimSpace(strings.TrimPrefix(s, "new "))
	open := strings.Index(rest, "[")
	typ := strings.TrimSpace(rest[:open])
	closeBracket := matchingIndex(rest, '[', ']', open)
	callOpen := strings.Index(rest[closeBracket:], "(") + closeBracket
	sizeRaw := rest[callOpen+1 : len(rest)-1]
	return &ir.NewArray{Type: typeconvert.Convert(typ, imports), Size: parseExpression(sizeRaw, imports)}
}

func parseArgList(s string, imports *ir.ImportSet) []ir.Expression {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	var args []ir.Expression
	for _, part := range splitTopLevelComma(s) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		args = append(args, parseExpression(part, imports))
	}
	return args
}

// matchingIndex returns the index, within s, of the close rune matching
// the open rune found at position openAt (openAt itself must hold
// open), or -1 if unbalanced.
func matchingIndex(s string, open, close rune, openAt int) int {
	depth := 0
	for i, r := range s {
		if i < openAt {
			continue
		}
		switch r {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func isZeroAddressCall(s string) bool {
	return s == "address(0)" || s == "address(0x0)"
}

// isLiteral recognizes numeric, boolean, hex, and quoted string
// literals, left as opaque text (spec.md §4.6: no escape interpretation).
func isLiteral(s string) bool {
	if s == "" {
		return false
	}
	if s == "true" || s == "false" {
		return true
	}
	if strings.HasPrefix(s, "\"") && strings.HasSuffix(s, "\"") && len(s) >= 2 {
		return true
	}
	if strings.HasPrefix(s, "'") && strings.HasSuffix(s, "'") && len(s) >= 2 {
		return true
	}
	if strings.HasPrefix(s, "0x") {
		_, err := strconv.ParseUint(s[2:], 16, 64)
		return err == nil || len(s) > 2
	}
	for _, r := range s {
		if (r < '0' || r > '9') && r != '_' {
			return false
		}
	}
	return true
}

// looksLikeType reports whether name is a Solidity primitive type name,
// used to distinguish a cast "uint256(x)" from an ordinary call "f(x)".
func looksLikeType(name string) bool {
	switch {
	case name == "bool", name == "string", name == "address":
		return true
	case strings.HasPrefix(name, "uint"), strings.HasPrefix(name, "int"):
		rest := strings.TrimPrefix(strings.TrimPrefix(name, "uint"), "int")
		if rest == "" {
			return true
		}
		_, err := strconv.Atoi(rest)
		return err == nil
	case strings.HasPrefix(name, "bytes"):
		rest := strings.TrimPrefix(name, "bytes")
		if rest == "" {
			return true
		}
		_, err := strconv.Atoi(rest)
		return err == nil
	default:
		return false
	}
}
