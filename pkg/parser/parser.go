// Package parser turns Solidity source text into the ir.CompilationUnit
// tagged-union IR. It is a hand-rolled, two-phase, single-pass-over-
// runes recursive descent parser: a first pass captures each member's
// raw text span under brace-balance accounting (pkg/source.Cursor),
// and only once the contract's full symbol table (storage variables,
// function names) is known does a second pass lower statement and
// expression text into ir.Statement/ir.Expression nodes. Grounded on
// original_source/src/parser.rs, restated in idiomatic Go: a shared
// std::str::Chars iterator threaded through every helper becomes a
// shared *source.Cursor here, and the per-character match statement
// becomes a small explicit state loop per member kind.
package parser

import (
	"strings"

	"github.com/solidity2ink/transpiler/pkg/ir"
	"github.com/solidity2ink/transpiler/pkg/source"
)

// ParseFile parses a complete Solidity source file into exactly one of
// a Contract or an Interface. It returns a *Error of kind FileCorrupted
// if the source runs out before either keyword appears, or if a second
// contract or interface keyword follows the first definition.
func ParseFile(src string) (*ir.CompilationUnit, error) {
	c := source.New(src)
	var comments []string
	var buffer strings.Builder
	var unit *ir.CompilationUnit

	for {
		r, ok := c.Next()
		if !ok {
			if unit != nil {
				return unit, nil
			}
			return nil, newError(FileCorrupted, "no contract or interface definition found")
		}

		switch {
		case r == '/' && peekIs(c, '/'):
			c.Next()
			if text := readLineComment(c); text != "" {
				comments = append(comments, text)
			}
		case r == '/' && peekIs(c, '*'):
			c.Next()
			comments = append(comments, readBlockComment(c)...)
		case isSpaceRune(r):
			// not accumulated into buffer
		default:
			buffer.WriteRune(r)
			switch strings.TrimSpace(buffer.String()) {
			case "pragma", "import":
				c.SkipUntil(';')
				buffer.Reset()
			case "contract", "interface":
				if unit != nil {
					return nil, newError(FileCorrupted, "more than one contract or interface definition found")
				}
				if strings.TrimSpace(buffer.String()) == "contract" {
					contract, err := parseContract(c, comments)
					if err != nil {
						return nil, err
					}
					unit = &ir.CompilationUnit{Contract: contract}
				} else {
					iface, err := parseInterface(c, comments)
					if err != nil {
						return nil, err
					}
					unit = &ir.CompilationUnit{Interface: iface}
				}
				buffer.Reset()
				comments = nil
			}
		}
	}
}

func peekIs(c *source.Cursor, want rune) bool {
	r, ok := c.Peek()
	return ok && r == want
}

func isSpaceRune(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// parseContract parses a contract body, the "contract" keyword and the
// name up to its opening "{" already pending on c.
func parseContract(c *source.Cursor, contractComments []string) (*ir.Contract, error) {
	c.SkipWhitespace()
	name := firstToken(c.ReadUntil('{'))

	contract := &ir.Contract{
		Name:     name,
		Imports:  ir.NewImportSet(),
		Comments: contractComments,
	}

	var constructor *ir.Function
	storage := map[string]struct{}{}
	functions := map[string]bool{}

	members, err := scanMembers(c, contract.Imports)
	if err != nil {
		return nil, err
	}
	for _, m := range members {
		switch m.kind {
		case memberField:
			contract.Fields = append(contract.Fields, m.field)
			storage[m.field.Name] = struct{}{}
		case memberEvent:
			contract.Events = append(contract.Events, m.event)
		case memberEnum:
			contract.Enums = append(contract.Enums, m.enum)
		case memberStruct:
			contract.Structs = append(contract.Structs, m.strct)
		case memberFunction:
			fn := m.function
			functions[fn.Header.Name] = fn.Header.External
			contract.Functions = append(contract.Functions, fn)
		case memberConstructor:
			fn := m.function
			constructor = &fn
		case memberModifier:
			contract.Modifiers = append(contract.Modifiers, ir.Modifier{
				Header:   m.function.Header,
				Body:     m.function.Body,
				Comments: m.function.Header.Comments,
			})
		}
	}

	// second pass: lower raw statement text now that the contract's
	// full symbol table is known (spec.md §4.6). Constructor and
	// modifier bodies run with "instance" as their receiver, regular
	// function bodies with "self" (spec.md §4.8).
	for i := range contract.Functions {
		fn := &contract.Functions[i]
		fn.Body = lowerBody(fn.Body, "self", fn.Header.Params, storage, functions, contract.Imports)
	}
	for i := range contract.Modifiers {
		m := &contract.Modifiers[i]
		m.Body = lowerBody(m.Body, "instance", m.Header.Params, storage, functions, contract.Imports)
	}
	if constructor != nil {
		constructor.Body = lowerBody(constructor.Body, "instance", constructor.Header.Params, storage, functions, contract.Imports)
		contract.Constructor = *constructor
	}

	return contract, nil
}

// parseInterface parses an interface body, the "interface" keyword and
// name up to its opening "{" already pending on c.
func parseInterface(c *source.Cursor, ifaceComments []string) (*ir.Interface, error) {
	c.SkipWhitespace()
	name := firstToken(c.ReadUntil('{'))

	iface := &ir.Interface{
		Name:     name,
		Imports:  ir.NewImportSet(),
		Comments: ifaceComments,
	}

	members, err := scanMembers(c, iface.Imports)
	if err != nil {
		return nil, err
	}
	for _, m := range members {
		switch m.kind {
		case memberEvent:
			iface.Events = append(iface.Events, m.event)
		case memberEnum:
			iface.Enums = append(iface.Enums, m.enum)
		case memberStruct:
			iface.Structs = append(iface.Structs, m.strct)
		case memberFunction, memberHeaderOnly:
			iface.FunctionHeaders = append(iface.FunctionHeaders, m.function.Header)
		}
	}
	return iface, nil
}

// firstToken returns the first whitespace-delimited token of s, which
// discards a trailing Solidity inheritance clause ("Foo is Bar, Baz").
func firstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
