package manifest

import (
	"strings"
	"testing"
)

func TestGenerateIsDeterministic(t *testing.T) {
	a := Generate()
	b := Generate()
	if a != b {
		t.Fatal("Generate() is not deterministic")
	}
}

func TestGenerateContainsExpectedSections(t *testing.T) {
	out := Generate()
	for _, want := range []string{
		"[package]",
		"name = \"sol_2_ink_generated\"",
		"[dependencies]",
		"ink_primitives = { version = \"~3.3.0\", default-features = false }",
		"openbrush = { version = \"2.2.0\", default-features = false }",
		"[lib]",
		"crate-type = [\"cdylib\"]",
		"[features]",
		"\"openbrush/std\",",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Generate() missing %q", want)
		}
	}
}
