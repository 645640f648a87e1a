// Package source provides the forward, single-pass character cursor
// the parser reads Solidity source through. It mirrors the cursor
// model in original_source/src/parser.rs (a plain std::str::Chars
// iterator, consumed character by character with no backtracking)
// rather than a backtracking or lookahead-buffered reader: spec.md §5
// requires a strictly forward, synchronous pass over the input.
package source

import "strings"

// Cursor is a forward-only rune reader over a Solidity source string.
// It never backs up; callers that need to inspect upcoming characters
// without consuming them use Peek (one rune), PeekAt (one rune at an
// offset) or HasPrefix (a whole string).
type Cursor struct {
	runes []rune
	pos   int
}

// New wraps src as a Cursor positioned at its first rune.
func New(src string) *Cursor {
	return &Cursor{runes: []rune(src)}
}

// Next consumes and returns the next rune, and false once exhausted.
func (c *Cursor) Next() (rune, bool) {
	if c.pos >= len(c.runes) {
		return 0, false
	}
	r := c.runes[c.pos]
	c.pos++
	return r, true
}

// Peek returns the next rune without consuming it, and false once
// exhausted.
func (c *Cursor) Peek() (rune, bool) {
	if c.pos >= len(c.runes) {
		return 0, false
	}
	return c.runes[c.pos], true
}

// PeekAt returns the rune offset runes ahead of the cursor (PeekAt(0)
// is equivalent to Peek), used by the statement parser to check that a
// keyword such as `if` is followed by a non-identifier rune before
// consuming it.
func (c *Cursor) PeekAt(offset int) (rune, bool) {
	i := c.pos + offset
	if i < 0 || i >= len(c.runes) {
		return 0, false
	}
	return c.runes[i], true
}

// Done reports whether the cursor has been exhausted.
func (c *Cursor) Done() bool {
	return c.pos >= len(c.runes)
}

// HasPrefix reports whether the unconsumed remainder of the source
// begins with s, without consuming anything.
func (c *Cursor) HasPrefix(s string) bool {
	want := []rune(s)
	if c.pos+len(want) > len(c.runes) {
		return false
	}
	for i, r := range want {
		if c.runes[c.pos+i] != r {
			return false
		}
	}
	return true
}

// Consume advances past s if the remainder has that exact prefix,
// reporting whether it did.
func (c *Cursor) Consume(s string) bool {
	if !c.HasPrefix(s) {
		return false
	}
	c.pos += len([]rune(s))
	return true
}

// SkipUntil advances past the next occurrence of delim (consuming it),
// discarding everything in between. Used for skipping `pragma ...;` and
// `import ...;` directives (spec.md §4.1).
func (c *Cursor) SkipUntil(delim rune) {
	for {
		r, ok := c.Next()
		if !ok || r == delim {
			return
		}
	}
}

// ReadUntil reads and returns everything up to (but not including) the
// next occurrence of delim, then consumes the delimiter itself.
func (c *Cursor) ReadUntil(delim rune) string {
	var b strings.Builder
	for {
		r, ok := c.Next()
		if !ok || r == delim {
			return b.String()
		}
		b.WriteRune(r)
	}
}

// ReadBalanced reads and returns the raw text between a matching pair
// of open/close runes, given that `open` has already been consumed by
// the caller. Nested occurrences of open/close are tracked so that, for
// example, a function body containing a nested `if { ... }` block is
// captured whole rather than truncated at the first inner `}`. This is
// the "scoped sub-parsing" primitive spec.md §4.1/§4.3 requires for
// capturing a raw function-body span under brace-balance accounting.
// The returned text does not include the final, matching close rune,
// which is consumed but discarded.
func (c *Cursor) ReadBalanced(open, close rune) string {
	depth := 1
	var b strings.Builder
	for {
		r, ok := c.Next()
		if !ok {
			return b.String()
		}
		switch r {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return b.String()
			}
		}
		b.WriteRune(r)
	}
}

// SkipWhitespace advances past any run of spaces, tabs, and newlines.
func (c *Cursor) SkipWhitespace() {
	for {
		r, ok := c.Peek()
		if !ok || !isSpace(r) {
			return
		}
		c.Next()
	}
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// Remaining returns everything not yet consumed, without consuming it.
// Used sparingly — mainly by tests and error messages.
func (c *Cursor) Remaining() string {
	return string(c.runes[c.pos:])
}
