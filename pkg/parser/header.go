package parser

import (
	"strings"

	"github.com/solidity2ink/transpiler/pkg/ir"
	"github.com/solidity2ink/transpiler/pkg/typeconvert"
)

// parseFunctionHeader parses a raw header span already captured up to
// (and including) its trailing "{" or ";", e.g.
//
//	"transfer(address to, uint256 amount) external onlyOwner returns (bool) {"
//
// Grounded on parse_function_header in original_source/src/parser.rs,
// generalized to also recognize arbitrary modifier invocations (the
// original only recognized external/view/payable attributes).
func parseFunctionHeader(raw string, imports *ir.ImportSet, comments []string) ir.FunctionHeader {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimSuffix(raw, "{")
	raw = strings.TrimSuffix(raw, ";")
	raw = strings.TrimSpace(raw)

	open := strings.Index(raw, "(")
	name := strings.TrimSpace(raw[:open])
	rest := raw[open+1:]

	close := matchingParen(rest)
	paramsRaw := strings.TrimSpace(rest[:close])
	tail := strings.TrimSpace(rest[close+1:])

	var returnsRaw string
	if idx := strings.Index(tail, "returns"); idx >= 0 {
		before := tail[:idx]
		after := strings.TrimSpace(tail[idx+len("returns"):])
		tail = before
		after = strings.TrimPrefix(after, "(")
		if rc := strings.LastIndex(after, ")"); rc >= 0 {
			returnsRaw = after[:rc]
		} else {
			returnsRaw = after
		}
	}

	external, view, payable, modifiers := parseAttributesAndModifiers(tail)

	return ir.FunctionHeader{
		Name:         name,
		Params:       parseParamList(paramsRaw, imports, false),
		External:     external,
		View:         view,
		Payable:      payable,
		ReturnParams: parseParamList(returnsRaw, imports, true),
		Modifiers:    modifiers,
		Comments:     comments,
	}
}

// matchingParen finds the index, within s, of the ")" matching the
// implicit opening paren consumed by the caller.
func matchingParen(s string) int {
	depth := 1
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return len(s)
}

var knownAttributes = map[string]bool{
	"external": true, "public": true, "internal": true, "private": true,
	"view": true, "pure": true, "payable": true, "override": true,
	"virtual": true,
}

// parseAttributesAndModifiers splits the tokens between a function's
// closing param paren and its "returns" clause (or opening brace) into
// Solidity visibility/mutability attributes and modifier invocations.
func parseAttributesAndModifiers(s string) (external, view, payable bool, modifiers []string) {
	for _, tok := range strings.Fields(s) {
		name := tok
		if idx := strings.Index(name, "("); idx >= 0 {
			name = name[:idx]
		}
		switch {
		case name == "external" || name == "public":
			external = true
		case name == "view" || name == "pure":
			view = true
		case name == "payable":
			payable = true
		case knownAttributes[name]:
			// internal/private/override/virtual: tracked by neither
			// flag; spec.md scopes visibility down to external/view/payable.
		case name == "":
			// skip
		default:
			// keep the whole invocation (arguments included); only the
			// name is case-converted at emission.
			modifiers = append(modifiers, tok)
		}
	}
	return external, view, payable, modifiers
}

// parseParamList parses a comma-separated "type name, type name" list,
// splitting only at paren-depth 0 so composite types with commas (e.g.
// a mapping key tuple) are not split apart. allowUnnamed accepts a
// bare type with no following name (Solidity return parameters may
// omit the name), substituting "_".
func parseParamList(s string, imports *ir.ImportSet, allowUnnamed bool) []ir.FunctionParam {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	var params []ir.FunctionParam
	for _, part := range splitTopLevelComma(s) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		fields := filterStorageQualifiers(strings.Fields(part))
		if len(fields) == 0 {
			continue
		}
		var typ, name string
		if len(fields) == 1 {
			typ, name = fields[0], "_"
			if !allowUnnamed {
				name = fields[0]
			}
		} else {
			typ = fields[0]
			name = fields[len(fields)-1]
		}
		params = append(params, ir.FunctionParam{
			Name:      name,
			ParamType: typeconvert.Convert(typ, imports),
		})
	}
	return params
}

// filterStorageQualifiers drops Solidity's "memory"/"calldata"/"storage"
// data-location keywords, which carry no meaning in ink!/openbrush.
func filterStorageQualifiers(tokens []string) []string {
	out := tokens[:0:0]
	for _, t := range tokens {
		if t == "memory" || t == "calldata" || t == "storage" {
			continue
		}
		out = append(out, t)
	}
	return out
}

// splitTopLevelComma splits s on commas that occur at paren/bracket/
// brace depth 0, so a nested call's or struct literal's own commas are
// left alone.
func splitTopLevelComma(s string) []string {
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
		case ',':
			if depth == 0 {
				parts = append(parts, string(runes[start:i]))
				start = i + 1
			}
		}
	}
	parts = append(parts, string(runes[start:]))
	return parts
}
