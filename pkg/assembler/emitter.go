// Package assembler lowers the parser's ir.CompilationUnit into
// ink!/openbrush source text (spec.md §4.8). It is implemented the way
// the teacher generates WGSL: a small buffer-printer
// (write/writeln/indent/increaseIndent/decreaseIndent) driving a set
// of recursive generate-style functions, one per IR node kind, rather
// than a templating engine — directly modelled on
// pkg/codegen.WGSLGenerator in _examples/gaarutyunov-guix, generalized
// from "WGSL tokens" to "ink!/openbrush tokens". Emitter embeds
// ir.BaseVisitor for the same reason WGSLGenerator embeds
// guixast.BaseVisitor: it is the IR's walking idiom, shared with the
// Accept-driven visitors.Analyzer pass, even though Emitter's own
// generation methods walk concrete struct fields directly rather than
// dispatching through Accept.
package assembler

import (
	"bytes"
	"strings"

	"github.com/solidity2ink/transpiler/pkg/ir"
)

// Emitter accumulates emitted ink!/openbrush source text for one
// compilation unit. It is not reused across units.
type Emitter struct {
	ir.BaseVisitor
	buf         bytes.Buffer
	indentLevel int
	// selector is the receiver in scope for the statement/expression
	// printer's EnvCaller substitution: "instance" while printing a
	// constructor or modifier body, "self" while printing a regular
	// function body (spec.md §4.8).
	selector string
}

func newEmitter() *Emitter {
	return &Emitter{selector: "self"}
}

func (e *Emitter) write(s string) {
	e.buf.WriteString(s)
}

func (e *Emitter) writeln(s string) {
	if s != "" {
		e.write(e.indent() + s)
	}
	e.buf.WriteString("\n")
}

func (e *Emitter) indent() string {
	return strings.Repeat("    ", e.indentLevel)
}

func (e *Emitter) increaseIndent() {
	e.indentLevel++
}

func (e *Emitter) decreaseIndent() {
	if e.indentLevel > 0 {
		e.indentLevel--
	}
}

// Assemble lowers a complete compilation unit (exactly one of
// unit.Contract or unit.Interface set, as ParseFile guarantees) to
// ink!/openbrush source text.
func Assemble(unit *ir.CompilationUnit) []byte {
	if unit.Contract != nil {
		return AssembleContract(unit.Contract)
	}
	return AssembleInterface(unit.Interface)
}

// AssembleContract emits a complete ink!/openbrush contract module for
// c, including the provenance banner (spec.md §4.8, §4.9).
func AssembleContract(c *ir.Contract) []byte {
	e := newEmitter()
	e.assembleContract(c)
	return e.buf.Bytes()
}

// AssembleInterface emits a complete ink!/openbrush trait definition
// for iface, including the provenance banner (spec.md §4.8, §4.9).
func AssembleInterface(iface *ir.Interface) []byte {
	e := newEmitter()
	e.assembleInterface(iface)
	return e.buf.Bytes()
}
