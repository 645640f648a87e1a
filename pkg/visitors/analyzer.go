// Package visitors provides IR visitor passes run between parsing and
// assembly.
package visitors

import (
	"fmt"

	"github.com/solidity2ink/transpiler/pkg/ir"
)

// Warning flags a lowering artifact the emitted code will carry, such
// as an untranslated statement or a modifier that never reaches its
// wrapped function. Warnings never abort a run: best-effort residue is
// part of the output contract, so the analyzer reports it instead of
// failing.
type Warning struct {
	Context string
	Message string
}

func (w *Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Context, w.Message)
}

// Analyzer inspects a lowered compilation unit and collects warnings
// about what the parser could only translate best-effort:
// - Raw statements, which are emitted as "handle manually" comments
// - modifier bodies with no (or more than one) "_;" injection point
// - unbalanced compound-statement boundary markers
type Analyzer struct {
	ir.BaseVisitor

	// Warnings collected during analysis
	Warnings []*Warning

	contract string
	context  string
}

// NewAnalyzer creates a new analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze runs a fresh Analyzer over one lowered compilation unit and
// returns it for inspection.
func Analyze(unit *ir.CompilationUnit) *Analyzer {
	a := NewAnalyzer()
	if unit.Contract != nil {
		unit.Contract.Accept(a)
	}
	if unit.Interface != nil {
		unit.Interface.Accept(a)
	}
	return a
}

// HasWarnings returns true if any warnings were found.
func (a *Analyzer) HasWarnings() bool {
	return len(a.Warnings) > 0
}

func (a *Analyzer) addWarning(format string, args ...interface{}) {
	a.Warnings = append(a.Warnings, &Warning{
		Context: a.context,
		Message: fmt.Sprintf(format, args...),
	})
}

func (a *Analyzer) qualify(name string) string {
	if a.contract == "" {
		return name
	}
	return a.contract + "." + name
}

func (a *Analyzer) VisitContract(n *ir.Contract) interface{} {
	a.contract = n.Name
	a.context = a.qualify("constructor")
	a.checkBody(n.Constructor.Body)
	for i := range n.Functions {
		n.Functions[i].Accept(a)
	}
	for i := range n.Modifiers {
		n.Modifiers[i].Accept(a)
	}
	return nil
}

func (a *Analyzer) VisitInterface(n *ir.Interface) interface{} {
	// headers only, nothing to lower and nothing to flag
	a.contract = n.Name
	return nil
}

func (a *Analyzer) VisitFunction(n *ir.Function) interface{} {
	a.context = a.qualify(n.Header.Name)
	a.checkBody(n.Body)
	return nil
}

func (a *Analyzer) VisitModifier(n *ir.Modifier) interface{} {
	a.context = a.qualify(n.Header.Name)
	a.checkBody(n.Body)
	switch bodies := countModifierBodies(n.Body); {
	case bodies == 0:
		a.addWarning(`modifier never reaches the wrapped function (no "_;" placeholder)`)
	case bodies > 1:
		a.addWarning("modifier invokes the wrapped function %d times", bodies)
	}
	return nil
}

func (a *Analyzer) VisitRaw(n *ir.Raw) interface{} {
	a.addWarning("statement %q could not be translated and is emitted as a comment to handle manually", n.Text)
	return nil
}

func (a *Analyzer) VisitGroup(n *ir.Group) interface{} {
	a.checkBody(n.Body)
	return nil
}

// checkBody walks one flat statement stream, verifying every compound
// start marker is closed by its matching *End before the stream runs
// out, and visiting each statement so nested Raw/Group nodes are
// reached.
func (a *Analyzer) checkBody(body []ir.Statement) {
	depth := 0
	for _, s := range body {
		switch s.(type) {
		case *ir.If, *ir.While, *ir.Try, *ir.Catch, *ir.Assembly:
			depth++
		case *ir.IfEnd, *ir.WhileEnd, *ir.TryEnd, *ir.CatchEnd, *ir.AssemblyEnd:
			depth--
		}
		s.Accept(a)
	}
	if depth != 0 {
		a.addWarning("unbalanced block markers (depth %d at end of body)", depth)
	}
}

func countModifierBodies(body []ir.Statement) int {
	count := 0
	for _, s := range body {
		switch n := s.(type) {
		case *ir.ModifierBody:
			count++
		case *ir.Group:
			count += countModifierBodies(n.Body)
		}
	}
	return count
}
