package assembler

import (
	"fmt"

	"github.com/solidity2ink/transpiler/internal/casing"
	"github.com/solidity2ink/transpiler/pkg/ir"
	"github.com/solidity2ink/transpiler/pkg/provenance"
)

// assembleInterface carries spec.md §4.8's interface emission order:
// provenance, imports, events, enums, structs, a `<Name>Ref` wrapper
// alias, and a trait definition holding the function headers.
// Grounded on assemble_interface in original_source/src/assembler.rs.
func (e *Emitter) assembleInterface(iface *ir.Interface) {
	e.write(provenance.Banner())

	e.assembleImports(iface.Imports)
	e.assembleEvents(iface.Events)
	e.assembleEnums(iface.Enums)
	e.assembleStructs(iface.Structs)

	e.writeln("#[brush::wrapper]")
	e.writeln(fmt.Sprintf("pub type %sRef = dyn %s;", iface.Name, iface.Name))
	e.writeln("")
	e.writeln("#[brush::trait_definition]")
	e.writeln(fmt.Sprintf("pub trait %s {", iface.Name))
	e.increaseIndent()
	e.assembleFunctionHeaders(iface.FunctionHeaders)
	e.decreaseIndent()
	e.writeln("}")
}

// assembleFunctionHeaders emits one declaration-only trait method per
// header, ending in ";" rather than a body (spec.md §4.8).
func (e *Emitter) assembleFunctionHeaders(headers []ir.FunctionHeader) {
	for _, h := range headers {
		e.writeDocComments(h.Comments)
		if h.External {
			if h.Payable {
				e.writeln("#[ink(message, payable)]")
			} else {
				e.writeln("#[ink(message)]")
			}
		}

		receiver := "&mut self"
		if h.View {
			receiver = "&self"
		}
		returnType := returnTypeOf(h.ReturnParams)

		e.writeln(fmt.Sprintf("fn %s(%s%s) -> Result<%s, Error>;", casing.Snake(h.Name), receiver, joinParamsLeading(h.Params), returnType))
		e.writeln("")
	}
}
