package parser

import (
	"strings"

	"github.com/solidity2ink/transpiler/pkg/ir"
	"github.com/solidity2ink/transpiler/pkg/source"
	"github.com/solidity2ink/transpiler/pkg/typeconvert"
)

// parseEvent parses an "event Name(type indexed? name, ...);" span, the
// opening "event" keyword already consumed. Grounded on parse_event in
// original_source/src/parser.rs.
func parseEvent(c *source.Cursor, imports *ir.ImportSet, comments []string) ir.Event {
	raw := collapseWhitespace(c.ReadUntil(';'))
	raw = strings.TrimSpace(raw)

	open := strings.Index(raw, "(")
	name := strings.TrimSpace(raw[:open])
	paramsRaw := raw[open+1:]
	if close := strings.LastIndex(paramsRaw, ")"); close >= 0 {
		paramsRaw = paramsRaw[:close]
	}

	var fields []ir.EventField
	for _, part := range splitTopLevelComma(paramsRaw) {
		fields = append(fields, parseEventField(part, imports))
	}

	return ir.Event{Name: name, Fields: fields, Comments: comments}
}

func parseEventField(part string, imports *ir.ImportSet) ir.EventField {
	tokens := strings.Fields(part)
	indexed := false
	filtered := tokens[:0:0]
	for _, t := range tokens {
		if t == "indexed" {
			indexed = true
			continue
		}
		filtered = append(filtered, t)
	}
	if len(filtered) == 0 {
		return ir.EventField{}
	}
	name := filtered[len(filtered)-1]
	typ := strings.Join(filtered[:len(filtered)-1], " ")
	return ir.EventField{
		Name:      name,
		FieldType: typeconvert.Convert(typ, imports),
		Indexed:   indexed,
	}
}

// parseEnum parses an "enum Name { V1, V2, ... }" span, the opening
// "enum" keyword already consumed.
func parseEnum(c *source.Cursor, comments []string) ir.Enum {
	raw := collapseWhitespace(c.ReadBalanced('{', '}'))
	tokens := strings.Fields(raw)
	values := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimSuffix(tok, ",")
		if tok == "" {
			continue
		}
		values = append(values, tok)
	}
	// the "Name" preceding the brace was consumed on the way in; find it
	// from the raw text before ReadBalanced, which the caller supplies
	// separately. See parseEnumWithName.
	return ir.Enum{Values: values, Comments: comments}
}

// parseEnumWithName parses "Name { V1, V2, ... }", the "enum" keyword
// already consumed and c positioned right after it.
func parseEnumWithName(c *source.Cursor, comments []string) ir.Enum {
	c.SkipWhitespace()
	name := strings.TrimSpace(c.ReadUntil('{'))
	e := parseEnum(c, comments)
	e.Name = name
	return e
}

// parseStructWithName parses "Name { type name; type name; ... }", the
// "struct" keyword already consumed.
func parseStructWithName(c *source.Cursor, imports *ir.ImportSet, comments []string) ir.Struct {
	c.SkipWhitespace()
	name := strings.TrimSpace(c.ReadUntil('{'))
	raw := collapseWhitespace(c.ReadBalanced('{', '}'))

	var fields []ir.StructField
	for _, decl := range strings.Split(raw, ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		tokens := strings.Fields(decl)
		if len(tokens) < 2 {
			continue
		}
		fields = append(fields, ir.StructField{
			Name:      tokens[len(tokens)-1],
			FieldType: typeconvert.Convert(strings.Join(tokens[:len(tokens)-1], " "), imports),
		})
	}
	return ir.Struct{Name: name, Fields: fields, Comments: comments}
}

// parseContractField parses a state-variable declaration of the form
// "type[ constant] name[ = initialValue];", with the trailing ";"
// already stripped by the caller.
func parseContractField(decl string, imports *ir.ImportSet) ir.ContractField {
	decl = strings.TrimSpace(decl)
	decl = strings.ReplaceAll(decl, " => ", "=>")
	decl = strings.ReplaceAll(decl, " =>", "=>")
	decl = strings.ReplaceAll(decl, "=> ", "=>")

	var initRaw string
	if eq := indexAssignEq(decl); eq >= 0 {
		initRaw = strings.TrimSpace(decl[eq+1:])
		decl = strings.TrimSpace(decl[:eq])
	}

	tokens := strings.Fields(decl)
	constant := false
	filtered := tokens[:0:0]
	for _, t := range tokens {
		switch t {
		case "constant", "immutable":
			constant = true
		case "public", "private", "internal":
		default:
			filtered = append(filtered, t)
		}
	}

	name := filtered[len(filtered)-1]
	typ := strings.Join(filtered[:len(filtered)-1], " ")

	var value ir.Expression
	if initRaw != "" {
		value = parseExpression(initRaw, imports)
	}

	return ir.ContractField{
		Name:         name,
		FieldType:    typeconvert.Convert(typ, imports),
		Constant:     constant,
		InitialValue: value,
	}
}

// indexAssignEq finds the index of the first "=" in s that starts an
// initializer rather than belonging to a mapping's "=>" arrow (already
// normalized to have no surrounding spaces by the caller).
func indexAssignEq(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] != '=' {
			continue
		}
		if i+1 < len(s) && s[i+1] == '>' {
			continue
		}
		return i
	}
	return -1
}

// collapseWhitespace folds any run of whitespace (including newlines)
// into a single space, mirroring the `\s+` regex normalization pass in
// original_source/src/parser.rs's per-member readers.
func collapseWhitespace(s string) string {
	var b strings.Builder
	lastSpace := false
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			if !lastSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			lastSpace = true
			continue
		}
		lastSpace = false
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}
