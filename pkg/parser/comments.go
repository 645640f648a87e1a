package parser

import (
	"strings"

	"github.com/solidity2ink/transpiler/pkg/source"
)

// readLineComment consumes through the end of the current line comment
// ("//" has already been consumed by the caller) and returns its
// trimmed text. Any leading "/" runes left over from a "///" doc
// comment are discarded.
func readLineComment(c *source.Cursor) string {
	text := c.ReadUntil('\n')
	text = strings.TrimLeft(text, "/")
	return strings.TrimSpace(text)
}

// readBlockComment consumes through the closing "*/" ("/*" has already
// been consumed by the caller) and returns one entry per non-blank
// line of the comment body, with Solidity's conventional leading "*"
// gutter stripped.
func readBlockComment(c *source.Cursor) []string {
	var lines []string
	var buf strings.Builder
	for {
		r, ok := c.Next()
		if !ok {
			break
		}
		if r == '*' {
			if next, ok := c.Peek(); ok && next == '/' {
				c.Next()
				break
			}
		}
		if r == '\n' {
			if line := cleanCommentLine(buf.String()); line != "" {
				lines = append(lines, line)
			}
			buf.Reset()
			continue
		}
		buf.WriteRune(r)
	}
	if line := cleanCommentLine(buf.String()); line != "" {
		lines = append(lines, line)
	}
	return lines
}

// cleanCommentLine strips surrounding whitespace and a leading "*"
// gutter character from one line of a block comment.
func cleanCommentLine(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "*")
	return strings.TrimSpace(s)
}
