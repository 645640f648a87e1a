// Package typeconvert maps Solidity type names to ink!/openbrush type
// names. Convert is a pure function of its two arguments: it never
// reads or writes process-wide state, and every import it requires is
// recorded on the caller-supplied *ir.ImportSet (spec.md §4.7, §9).
//
// Grounded on pkg/codegen/gpu_types.go's shape in the teacher (a lookup
// table plus recursive handling of composite types) and on the rules
// in original_source/src/parser.rs's convert_variable_type/convert_int,
// restated so nested mappings flatten by peeling one "mapping(" layer
// at a time rather than the original's literal two-level-only string
// hack (spec.md §4.7 rule 2 is explicit about "at the top level",
// which this generalizes correctly to arbitrary nesting depth).
package typeconvert

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/solidity2ink/transpiler/pkg/ir"
)

const (
	importVec       = "use ink::prelude::vec::Vec;\n"
	importMapping   = "use ink_storage::Mapping;\n"
	importAccountID = "use brush::traits::AccountId;\n"
	importString    = "use ink::prelude::string::String;\n"
)

var supportedWidths = []int{8, 16, 32, 64, 128}

// Convert maps a Solidity type name to its ink!/openbrush equivalent,
// recording any import the converted type requires on imports.
// imports may be nil, in which case conversion still succeeds but
// nothing is recorded (useful for tests that only care about the
// resulting type string).
func Convert(solType string, imports *ir.ImportSet) string {
	t := strings.TrimSpace(solType)

	// Rule 1: array suffix.
	if strings.HasSuffix(t, "[]") {
		elem := Convert(strings.TrimSpace(t[:len(t)-2]), imports)
		imports.Add(importVec)
		return fmt.Sprintf("Vec<%s>", elem)
	}

	// Rule 2: mapping.
	if strings.HasPrefix(t, "mapping(") && strings.HasSuffix(t, ")") {
		return convertMapping(t, imports)
	}

	// Rule 3: uintN/intN.
	if width, unsigned, ok := parseIntWidth(t); ok {
		rounded := roundWidth(width)
		if unsigned {
			return fmt.Sprintf("u%d", rounded)
		}
		return fmt.Sprintf("i%d", rounded)
	}

	// Rule 4: fixed-size bytesN.
	if n, ok := parseFixedBytes(t); ok {
		return fmt.Sprintf("[u8; %d]", n)
	}

	// Rule 5: bytes (dynamic).
	if t == "bytes" {
		imports.Add(importVec)
		return "Vec<u8>"
	}

	// Rule 6: address.
	if t == "address" || t == "address payable" {
		imports.Add(importAccountID)
		return "AccountId"
	}

	// Rule 7: string.
	if t == "string" {
		imports.Add(importString)
		return "String"
	}

	// Rule 8: pass through unchanged (user-defined struct/enum/contract
	// name, or anything else the converter doesn't recognize).
	return t
}

// convertMapping converts "mapping(K=>V)" (and arbitrarily nested
// mapping values) into "Mapping<K, V>" / "Mapping<(K1, K2, ...), V>".
// Solidity does not allow a mapping as a key type, so only the value
// position of each layer can itself be "mapping(...)"; this peels that
// layer by layer, accumulating one key segment per layer.
func convertMapping(t string, imports *ir.ImportSet) string {
	var keys []string
	value := t
	for strings.HasPrefix(value, "mapping(") && strings.HasSuffix(value, ")") {
		inner := value[len("mapping(") : len(value)-1]
		left, right, ok := splitTopLevelArrow(inner)
		if !ok {
			// Malformed mapping type; fall back to passthrough rather
			// than panicking on best-effort input.
			break
		}
		keys = append(keys, strings.TrimSpace(left))
		value = strings.TrimSpace(right)
	}

	imports.Add(importMapping)

	convertedKeys := make([]string, len(keys))
	for i, k := range keys {
		convertedKeys[i] = Convert(k, imports)
	}
	convertedValue := Convert(value, imports)

	keyType := ""
	switch len(convertedKeys) {
	case 0:
		keyType = "()"
	case 1:
		keyType = convertedKeys[0]
	default:
		keyType = "(" + strings.Join(convertedKeys, ", ") + ")"
	}
	return fmt.Sprintf("Mapping<%s, %s>", keyType, convertedValue)
}

// splitTopLevelArrow finds the first "=>" at paren-depth 0 and returns
// the text before and after it. Only the right-hand side can ever
// contain parens (a nested mapping value), so tracking depth on both
// "(" and ")" while scanning left to right is sufficient.
func splitTopLevelArrow(s string) (left, right string, ok bool) {
	depth := 0
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '(':
			depth++
		case ')':
			depth--
		case '=':
			if depth == 0 && i+1 < len(runes) && runes[i+1] == '>' {
				return string(runes[:i]), string(runes[i+2:]), true
			}
		}
	}
	return "", "", false
}

// parseIntWidth recognizes "uintN"/"intN"/"uint"/"int" and returns the
// declared bit width (128 when unqualified) and its signedness.
func parseIntWidth(t string) (width int, unsigned bool, ok bool) {
	switch {
	case t == "uint":
		return 128, true, true
	case t == "int":
		return 128, false, true
	case strings.HasPrefix(t, "uint"):
		if n, err := strconv.Atoi(t[4:]); err == nil {
			return n, true, true
		}
	case strings.HasPrefix(t, "int"):
		if n, err := strconv.Atoi(t[3:]); err == nil {
			return n, false, true
		}
	}
	return 0, false, false
}

// roundWidth rounds n up to the next member of supportedWidths,
// clamping to the widest supported width if n exceeds it.
func roundWidth(n int) int {
	for _, w := range supportedWidths {
		if n <= w {
			return w
		}
	}
	return supportedWidths[len(supportedWidths)-1]
}

// parseFixedBytes recognizes "bytes1".."bytes32".
func parseFixedBytes(t string) (n int, ok bool) {
	if !strings.HasPrefix(t, "bytes") || t == "bytes" {
		return 0, false
	}
	rest := t[len("bytes"):]
	if rest == "" {
		return 0, false
	}
	v, err := strconv.Atoi(rest)
	if err != nil || v < 1 || v > 32 {
		return 0, false
	}
	return v, true
}
