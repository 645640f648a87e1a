package assembler

import (
	"fmt"
	"strings"

	"github.com/solidity2ink/transpiler/internal/casing"
	"github.com/solidity2ink/transpiler/pkg/ir"
	"github.com/solidity2ink/transpiler/pkg/provenance"
)

// assembleContract carries spec.md §4.8's contract emission order:
// module attributes, provenance banner, contract doc comments, then a
// `mod <name>` block of imports, the Error enum, constants, modifiers,
// events, enums, structs, the storage record, and the impl block.
// Grounded on assemble_contract in original_source/src/assembler.rs.
func (e *Emitter) assembleContract(c *ir.Contract) {
	e.writeln(`#![cfg_attr(not(feature = "std"), no_std)]`)
	e.writeln("#![feature(min_specialization)]")
	e.writeln("")
	e.write(provenance.Banner())
	e.writeDocComments(c.Comments)

	e.writeln("#[brush::contract]")
	e.writeln(fmt.Sprintf("pub mod %s {", casing.Snake(c.Name)))
	e.increaseIndent()

	e.assembleImports(c.Imports)
	e.assembleErrorEnum()
	e.assembleConstants(c.Fields)
	e.assembleModifiers(c.Modifiers, c.Name)
	e.assembleEvents(c.Events)
	e.assembleEnums(c.Enums)
	e.assembleStructs(c.Structs)
	e.assembleStorage(c.Name, c.Fields)

	e.writeln(fmt.Sprintf("impl %s {", c.Name))
	e.increaseIndent()
	e.assembleConstructor(c.Constructor, c.Fields)
	e.assembleFunctions(c.Functions)
	e.decreaseIndent()
	e.writeln("}")

	e.decreaseIndent()
	e.writeln("}")
}

func (e *Emitter) writeDocComments(comments []string) {
	for _, c := range comments {
		e.writeln(fmt.Sprintf("#[doc = %q]", c))
	}
}

func (e *Emitter) assembleImports(imports *ir.ImportSet) {
	for _, imp := range imports.Sorted() {
		e.writeln(strings.TrimSuffix(imp, "\n"))
	}
	e.writeln("")
}

func (e *Emitter) assembleErrorEnum() {
	e.writeln("#[derive(Debug, Encode, Decode, PartialEq)]")
	e.writeln(`#[cfg_attr(feature = "std", derive(scale_info::TypeInfo))]`)
	e.writeln("pub enum Error {")
	e.increaseIndent()
	e.writeln("Custom(String),")
	e.decreaseIndent()
	e.writeln("}")
	e.writeln("")
}

func (e *Emitter) assembleConstants(fields []ir.ContractField) {
	any := false
	for _, f := range fields {
		if !f.Constant {
			continue
		}
		any = true
		e.writeDocComments(f.Comments)
		value := ""
		if f.InitialValue != nil {
			value = printExpr(f.InitialValue, e.selector)
		}
		e.writeln(fmt.Sprintf("pub const %s: %s = %s;", casing.Snake(f.Name), f.FieldType, value))
	}
	if any {
		e.writeln("")
	}
}

func (e *Emitter) assembleEvents(events []ir.Event) {
	for _, ev := range events {
		e.writeDocComments(ev.Comments)
		e.writeln("#[ink(event)]")
		e.writeln(fmt.Sprintf("pub struct %s {", ev.Name))
		e.increaseIndent()
		for _, f := range ev.Fields {
			if f.Indexed {
				e.writeln("#[ink(topic)]")
			}
			e.writeln(fmt.Sprintf("%s: %s,", casing.Snake(f.Name), f.FieldType))
		}
		e.decreaseIndent()
		e.writeln("}")
		e.writeln("")
	}
}

func (e *Emitter) assembleEnums(enums []ir.Enum) {
	for _, en := range enums {
		e.writeDocComments(en.Comments)
		e.writeln(fmt.Sprintf("pub enum %s {", casing.Pascal(en.Name)))
		e.increaseIndent()
		for _, v := range en.Values {
			e.writeln(casing.Pascal(v) + ",")
		}
		e.decreaseIndent()
		e.writeln("}")
		e.writeln("")
	}
}

func (e *Emitter) assembleStructs(structs []ir.Struct) {
	for _, s := range structs {
		e.writeDocComments(s.Comments)
		e.writeln("#[derive(Default, Encode, Decode)]")
		e.writeln(`#[cfg_attr(feature = "std", derive(scale_info::TypeInfo))]`)
		e.writeln(fmt.Sprintf("pub struct %s {", casing.Pascal(s.Name)))
		e.increaseIndent()
		for _, f := range s.Fields {
			e.writeln(fmt.Sprintf("%s: %s,", casing.Snake(f.Name), f.FieldType))
		}
		e.decreaseIndent()
		e.writeln("}")
		e.writeln("")
	}
}

// assembleStorage collects every non-constant contract field into the
// `#[ink(storage)]` record (spec.md §4.8 "Storage record").
func (e *Emitter) assembleStorage(contractName string, fields []ir.ContractField) {
	e.writeln("#[ink(storage)]")
	e.writeln("#[derive(Default, SpreadAllocate)]")
	e.writeln(fmt.Sprintf("pub struct %s {", contractName))
	e.increaseIndent()
	for _, f := range fields {
		if f.Constant {
			continue
		}
		e.writeDocComments(f.Comments)
		e.writeln(fmt.Sprintf("%s: %s,", casing.Snake(f.Name), f.FieldType))
	}
	e.decreaseIndent()
	e.writeln("}")
	e.writeln("")
}

// assembleConstructor emits `new`, the constructor's lowered body run
// inside ink!'s initialize_contract helper, followed by the assignment
// of every non-constant field that carries a parsed initial value
// (spec.md §4.8 "Constructor"). EnvCaller inside this body resolves to
// "instance", the closure's mutable-self parameter.
func (e *Emitter) assembleConstructor(ctor ir.Function, fields []ir.ContractField) {
	e.writeDocComments(ctor.Header.Comments)
	e.writeln("#[ink(constructor)]")
	e.writeln(fmt.Sprintf("pub fn new(%s) -> Self {", joinParams(ctor.Header.Params)))
	e.increaseIndent()
	e.writeln("ink_lang::codegen::initialize_contract(|instance: &mut Self| {")
	e.increaseIndent()

	prevSelector := e.selector
	e.selector = "instance"
	e.printStatements(ctor.Body)
	for _, f := range fields {
		if f.Constant || f.InitialValue == nil {
			continue
		}
		e.writeln(fmt.Sprintf("instance.%s = %s;", casing.Snake(f.Name), printExpr(f.InitialValue, e.selector)))
	}
	e.selector = prevSelector

	e.decreaseIndent()
	e.writeln("})")
	e.decreaseIndent()
	e.writeln("}")
	e.writeln("")
}

// assembleFunctions carries spec.md §4.8 "Regular function": snake_case
// name prefixed with "_" for non-external functions, &self/&mut self
// receiver by View, Result<T, Error> return position, modifier
// invocations as #[modifiers(...)] annotations.
func (e *Emitter) assembleFunctions(functions []ir.Function) {
	for _, fn := range functions {
		h := fn.Header
		e.writeDocComments(h.Comments)
		for _, m := range h.Modifiers {
			e.writeln(fmt.Sprintf("#[modifiers(%s)]", snakeInvocation(m)))
		}
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
		name := "fn _" + casing.Snake(h.Name)
		if h.External {
			name = "pub fn " + casing.Snake(h.Name)
		}
		returnType := returnTypeOf(h.ReturnParams)

		e.writeln(fmt.Sprintf("%s(%s%s) -> Result<%s, Error> {", name, receiver, joinParamsLeading(h.Params), returnType))
		e.increaseIndent()

		prevSelector := e.selector
		e.selector = "self"
		for _, rp := range h.ReturnParams {
			if rp.Name == "_" {
				continue
			}
			e.writeln(fmt.Sprintf("let mut %s = Default::default();", casing.Snake(rp.Name)))
		}
		e.printStatements(fn.Body)
		if trailing := trailingReturn(h.ReturnParams); trailing != "" {
			e.writeln(trailing)
		}
		e.selector = prevSelector

		e.decreaseIndent()
		e.writeln("}")
		e.writeln("")
	}
}

// assembleModifiers emits each modifier as a generic higher-order
// function constrained by the contract's own trait, with the body's
// ModifierBody injection point becoming a call to the wrapped thunk
// (spec.md §4.8 "Modifier"). EnvCaller inside a modifier body resolves
// to "instance", its only receiver parameter.
func (e *Emitter) assembleModifiers(modifiers []ir.Modifier, contractName string) {
	for _, m := range modifiers {
		e.writeDocComments(m.Comments)
		e.writeln(`#[doc = "The type of T should be the trait implementing this contract's storage"]`)
		e.writeln("#[modifier_definition]")
		name := casing.Snake(m.Header.Name)
		e.writeln(fmt.Sprintf("pub fn %s<T, F, R>(instance: &mut T, body: F%s) -> Result<R, Error>", name, joinParamsLeading(m.Header.Params)))
		e.writeln("where")
		e.increaseIndent()
		e.writeln(fmt.Sprintf("T: %s,", contractName))
		e.writeln("F: FnOnce(&mut T) -> Result<R, Error>,")
		e.decreaseIndent()
		e.writeln("{")
		e.increaseIndent()

		prevSelector := e.selector
		e.selector = "instance"
		e.printStatements(m.Body)
		e.selector = prevSelector

		e.decreaseIndent()
		e.writeln("}")
		e.writeln("")
	}
}

// snakeInvocation snake-cases the name part of a modifier invocation
// while leaving any argument list untouched: "onlyRole(role)" becomes
// "only_role(role)".
func snakeInvocation(inv string) string {
	if open := strings.Index(inv, "("); open >= 0 {
		return casing.Snake(inv[:open]) + inv[open:]
	}
	return casing.Snake(inv)
}

// joinParams renders a parameter list with no leading separator:
// "a: TypeA, b: TypeB".
func joinParams(params []ir.FunctionParam) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = fmt.Sprintf("%s: %s", casing.Snake(p.Name), p.ParamType)
	}
	return strings.Join(parts, ", ")
}

// joinParamsLeading renders a parameter list the way a receiver-first
// signature needs it: ", a: TypeA, b: TypeB" (empty when params is
// empty), matching the leading-comma shape
// original_source/src/assembler.rs builds with its own token-by-token
// params.extend(quote! { , #param_name: #param_type }) loop.
func joinParamsLeading(params []ir.FunctionParam) string {
	var b strings.Builder
	for _, p := range params {
		b.WriteString(", ")
		b.WriteString(casing.Snake(p.Name))
		b.WriteString(": ")
		b.WriteString(p.ParamType)
	}
	return b.String()
}

func returnTypeOf(params []ir.FunctionParam) string {
	switch len(params) {
	case 0:
		return "()"
	case 1:
		return params[0].ParamType
	default:
		types := make([]string, len(params))
		for i, p := range params {
			types[i] = p.ParamType
		}
		return "(" + strings.Join(types, ", ") + ")"
	}
}

// trailingReturn builds the function body's final "Ok(...)" expression
// for functions whose return value comes from named return parameters
// rather than an explicit `return` statement (spec.md §4.8). When the
// sole return parameter is the unnamed placeholder "_", nothing is
// appended: the body is expected to end with an explicit Return
// statement instead (the Return node already emits "return Ok(...);").
func trailingReturn(params []ir.FunctionParam) string {
	if len(params) == 0 {
		return "Ok(())"
	}
	if params[0].Name == "_" {
		return ""
	}
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = casing.Snake(p.Name)
	}
	if len(params) > 1 {
		return fmt.Sprintf("Ok((%s))", strings.Join(names, ", "))
	}
	return fmt.Sprintf("Ok(%s)", names[0])
}
