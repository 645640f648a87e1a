package parser

import (
	"strings"

	"github.com/solidity2ink/transpiler/pkg/ir"
	"github.com/solidity2ink/transpiler/pkg/source"
)

type memberKind int

const (
	memberField memberKind = iota
	memberEvent
	memberEnum
	memberStruct
	memberFunction
	memberConstructor
	memberModifier
	memberHeaderOnly
)

type parsedMember struct {
	kind     memberKind
	field    ir.ContractField
	event    ir.Event
	enum     ir.Enum
	strct    ir.Struct
	function ir.Function
}

// scanMembers consumes a contract or interface body, the opening "{"
// of which was already consumed by the caller reading the name, up to
// and including its matching closing "}". It mirrors the shared
// character-at-a-time member dispatch loop found in both parse_contract
// and parse_interface in original_source/src/parser.rs.
func scanMembers(c *source.Cursor, imports *ir.ImportSet) ([]parsedMember, error) {
	var members []parsedMember
	var comments []string
	var buffer strings.Builder

	for {
		r, ok := c.Next()
		if !ok {
			return nil, newError(ContractCorrupted, "body ended before its closing brace")
		}

		switch {
		case r == '}':
			return members, nil
		case r == '/' && peekIs(c, '/'):
			c.Next()
			if text := readLineComment(c); text != "" {
				comments = append(comments, text)
			}
		case r == '/' && peekIs(c, '*'):
			c.Next()
			comments = append(comments, readBlockComment(c)...)
		case isSpaceRune(r):
			// a whitespace run becomes one separating space, so a
			// declaration such as "uint256 public count" keeps its tokens
			if s := buffer.String(); s != "" && !strings.HasSuffix(s, " ") {
				buffer.WriteByte(' ')
			}
		case r == ';':
			decl := strings.TrimSpace(buffer.String())
			buffer.Reset()
			if decl == "" {
				continue
			}
			field := parseContractField(decl, imports)
			field.Comments = comments
			members = append(members, parsedMember{kind: memberField, field: field})
			comments = nil
		default:
			buffer.WriteRune(r)
			switch strings.TrimSpace(buffer.String()) {
			case "event":
				buffer.Reset()
				ev := parseEvent(c, imports, comments)
				comments = nil
				members = append(members, parsedMember{kind: memberEvent, event: ev})
			case "enum":
				buffer.Reset()
				e := parseEnumWithName(c, comments)
				comments = nil
				members = append(members, parsedMember{kind: memberEnum, enum: e})
			case "struct":
				buffer.Reset()
				s := parseStructWithName(c, imports, comments)
				comments = nil
				members = append(members, parsedMember{kind: memberStruct, strct: s})
			case "constructor":
				buffer.Reset()
				fn, _, err := parseFunctionLike(c, imports, comments)
				if err != nil {
					return nil, err
				}
				comments = nil
				members = append(members, parsedMember{kind: memberConstructor, function: fn})
			case "function":
				buffer.Reset()
				fn, hasBody, err := parseFunctionLike(c, imports, comments)
				if err != nil {
					return nil, err
				}
				comments = nil
				if hasBody {
					members = append(members, parsedMember{kind: memberFunction, function: fn})
				} else {
					members = append(members, parsedMember{kind: memberHeaderOnly, function: fn})
				}
			case "modifier":
				buffer.Reset()
				fn, _, err := parseFunctionLike(c, imports, comments)
				if err != nil {
					return nil, err
				}
				comments = nil
				members = append(members, parsedMember{kind: memberModifier, function: fn})
			}
		}
	}
}

// parseFunctionLike parses a function/modifier/constructor header and,
// if present, its raw body span. An interface function header ends in
// ";" and has no body; hasBody distinguishes that declaration-only
// form from a function whose body merely happens to be empty.
func parseFunctionLike(c *source.Cursor, imports *ir.ImportSet, comments []string) (fn ir.Function, hasBody bool, err error) {
	headerRaw, hasBody, err := composeHeader(c)
	if err != nil {
		return ir.Function{}, false, err
	}
	header := parseFunctionHeader(headerRaw, imports, comments)

	fn = ir.Function{Header: header}
	if hasBody {
		bodyRaw := c.ReadBalanced('{', '}')
		if strings.TrimSpace(bodyRaw) != "" {
			fn.Body = []ir.Statement{&ir.Raw{Text: bodyRaw}}
		}
	}
	return fn, hasBody, nil
}

// composeHeader reads header text up to (and consuming) its
// terminating ";" or "{", collapsing newlines to single spaces.
// Grounded on compose_function_header in original_source/src/parser.rs.
func composeHeader(c *source.Cursor) (text string, hasBody bool, err error) {
	var b strings.Builder
	for {
		r, ok := c.Next()
		if !ok {
			return "", false, newError(ContractCorrupted, "function header never closed")
		}
		switch r {
		case ';':
			return collapseWhitespace(b.String()), false, nil
		case '{':
			return collapseWhitespace(b.String()), true, nil
		case '\n':
			b.WriteByte(' ')
		default:
			b.WriteRune(r)
		}
	}
}
