package typeconvert

import (
	"testing"

	"github.com/solidity2ink/transpiler/pkg/ir"
)

func TestConvertIntWidths(t *testing.T) {
	cases := map[string]string{
		"uint":    "u128",
		"uint8":   "u8",
		"uint7":   "u8",
		"uint16":  "u16",
		"uint24":  "u32",
		"uint256": "u128",
		"int":     "i128",
		"int32":   "i32",
		"int33":   "i64",
	}
	for in, want := range cases {
		if got := Convert(in, nil); got != want {
			t.Errorf("Convert(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestConvertFixedBytes(t *testing.T) {
	if got, want := Convert("bytes32", nil), "[u8; 32]"; got != want {
		t.Errorf("Convert(bytes32) = %q, want %q", got, want)
	}
	if got, want := Convert("bytes1", nil), "[u8; 1]"; got != want {
		t.Errorf("Convert(bytes1) = %q, want %q", got, want)
	}
}

func TestConvertBytesDynamic(t *testing.T) {
	imports := ir.NewImportSet()
	if got, want := Convert("bytes", imports), "Vec<u8>"; got != want {
		t.Errorf("Convert(bytes) = %q, want %q", got, want)
	}
	if imports.Len() != 1 {
		t.Errorf("imports.Len() = %d, want 1", imports.Len())
	}
}

func TestConvertAddress(t *testing.T) {
	imports := ir.NewImportSet()
	if got, want := Convert("address", imports), "AccountId"; got != want {
		t.Errorf("Convert(address) = %q, want %q", got, want)
	}
	if got := imports.Sorted(); len(got) != 1 || got[0] != importAccountID {
		t.Errorf("imports = %v, want [%q]", got, importAccountID)
	}
}

func TestConvertString(t *testing.T) {
	if got, want := Convert("string", nil), "String"; got != want {
		t.Errorf("Convert(string) = %q, want %q", got, want)
	}
}

func TestConvertArray(t *testing.T) {
	if got, want := Convert("uint256[]", nil), "Vec<u128>"; got != want {
		t.Errorf("Convert(uint256[]) = %q, want %q", got, want)
	}
}

func TestConvertArrayIsLeftInverseOfMapping(t *testing.T) {
	// convert("T[]") = vector-of convert("T"); composing with mapping
	// recursively strips the suffix the same way regardless of what T is.
	got := Convert("mapping(address=>uint256)[]", nil)
	want := "Vec<" + Convert("mapping(address=>uint256)", nil) + ">"
	if got != want {
		t.Errorf("Convert(mapping(...)[]) = %q, want %q", got, want)
	}
}

func TestConvertSimpleMapping(t *testing.T) {
	imports := ir.NewImportSet()
	got := Convert("mapping(address=>uint256)", imports)
	want := "Mapping<AccountId, u128>"
	if got != want {
		t.Errorf("Convert(mapping) = %q, want %q", got, want)
	}
	if imports.Len() != 2 { // Mapping + AccountId
		t.Errorf("imports.Len() = %d, want 2", imports.Len())
	}
}

func TestConvertNestedMappingFlattensToTupleKey(t *testing.T) {
	got := Convert("mapping(address=>mapping(address=>uint256))", nil)
	want := "Mapping<(AccountId, AccountId), u128>"
	if got != want {
		t.Errorf("Convert(nested mapping) = %q, want %q", got, want)
	}
}

func TestConvertTripleNestedMapping(t *testing.T) {
	got := Convert("mapping(address=>mapping(uint256=>mapping(bool=>string)))", nil)
	want := "Mapping<(AccountId, u128, bool), String>"
	if got != want {
		t.Errorf("Convert(triple nested mapping) = %q, want %q", got, want)
	}
}

func TestConvertPassesThroughUnknownType(t *testing.T) {
	if got, want := Convert("MyStruct", nil), "MyStruct"; got != want {
		t.Errorf("Convert(MyStruct) = %q, want %q", got, want)
	}
}
