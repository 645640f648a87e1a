// Package manifest generates the fixed, non-parameterized Cargo.toml
// text for the emitted ink!/openbrush crate (spec.md §6 "Auxiliary
// artifact"). Grounded on generate_cargo_toml/generate_ink_dependency
// in original_source/src/toml_builder.rs, restated as Go string
// building with strings.Builder rather than repeated push_str calls,
// matching the write/writeln style pkg/assembler uses instead of
// reaching for text/template (neither the teacher nor the original use
// a templating engine for this).
package manifest

import "strings"

const inkVersion = "~3.3.0"

// inkDependency is one line of the [dependencies] table, mirroring one
// call to original_source's generate_ink_dependency.
type inkDependency struct {
	crate    string
	derive   bool
	optional bool
}

var inkDependencies = []inkDependency{
	{crate: "ink_primitives"},
	{crate: "ink_metadata", derive: true, optional: true},
	{crate: "ink_env"},
	{crate: "ink_storage"},
	{crate: "ink_lang"},
	{crate: "ink_prelude"},
	{crate: "ink_engine", optional: true},
}

// Generate returns the complete Cargo.toml text for the generated
// crate. Its content is deterministic and never parameterized by the
// source contract, per spec.md §6.
func Generate() string {
	var b strings.Builder

	b.WriteString("[package]\n")
	b.WriteString("name = \"sol_2_ink_generated\"\n")
	b.WriteString("version = \"0.1.0\"\n")
	b.WriteString("edition = \"2021\"\n")
	b.WriteString("authors = [\"sol2ink\"]\n")
	b.WriteString("\n")

	b.WriteString("[dependencies]\n")
	for _, dep := range inkDependencies {
		writeInkDependency(&b, dep)
	}
	b.WriteString("scale = { package = \"parity-scale-codec\", version = \"3\", default-features = false, features = [\"derive\"] }\n")
	b.WriteString("scale-info = { version = \"2\", default-features = false, features = [\"derive\"], optional = true }\n")
	b.WriteString("openbrush = { version = \"2.2.0\", default-features = false }\n")
	b.WriteString("\n")

	b.WriteString("[lib]\n")
	b.WriteString("name = \"sol_2_ink_generated\"\n")
	b.WriteString("path = \"lib.rs\"\n")
	b.WriteString("crate-type = [\"cdylib\"]\n")
	b.WriteString("\n")

	b.WriteString("[features]\n")
	b.WriteString("default = [\"std\"]\n")
	b.WriteString("std = [\n")
	b.WriteString("    \"ink_primitives/std\",\n")
	b.WriteString("    \"ink_metadata\",\n")
	b.WriteString("    \"ink_metadata/std\",\n")
	b.WriteString("    \"ink_env/std\",\n")
	b.WriteString("    \"ink_storage/std\",\n")
	b.WriteString("    \"ink_lang/std\",\n")
	b.WriteString("    \"scale/std\",\n")
	b.WriteString("    \"scale-info\",\n")
	b.WriteString("    \"scale-info/std\",\n")
	b.WriteString("    \"openbrush/std\",\n")
	b.WriteString("]\n")

	return b.String()
}

func writeInkDependency(b *strings.Builder, dep inkDependency) {
	b.WriteString(dep.crate)
	b.WriteString(" = { version = \"")
	b.WriteString(inkVersion)
	b.WriteString("\", default-features = false")
	if dep.derive {
		b.WriteString(", features = [\"derive\"]")
	}
	if dep.optional {
		b.WriteString(", optional = true")
	}
	b.WriteString(" }\n")
}
