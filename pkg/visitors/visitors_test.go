package visitors

import (
	"strings"
	"testing"

	"github.com/solidity2ink/transpiler/pkg/ir"
	"github.com/solidity2ink/transpiler/pkg/parser"
)

func TestAnalyzer_FlagsRawResidue(t *testing.T) {
	contract := &ir.Contract{
		Name: "Demo",
		Functions: []ir.Function{
			{
				Header: ir.FunctionHeader{Name: "f"},
				Body: []ir.Statement{
					&ir.Raw{Text: "x | y;"},
				},
			},
		},
	}

	analyzer := NewAnalyzer()
	contract.Accept(analyzer)

	if !analyzer.HasWarnings() {
		t.Fatal("Expected warning for raw residue, got none")
	}
	if len(analyzer.Warnings) != 1 {
		t.Fatalf("Expected 1 warning, got %d", len(analyzer.Warnings))
	}
	w := analyzer.Warnings[0]
	if w.Context != "Demo.f" {
		t.Errorf("Expected context 'Demo.f', got '%s'", w.Context)
	}
	if !strings.Contains(w.Message, "handle manually") {
		t.Errorf("Expected 'handle manually' in message, got '%s'", w.Message)
	}
}

func TestAnalyzer_ModifierWithoutPlaceholder(t *testing.T) {
	contract := &ir.Contract{
		Name: "Demo",
		Modifiers: []ir.Modifier{
			{
				Header: ir.FunctionHeader{Name: "broken"},
				Body: []ir.Statement{
					&ir.Comment{Text: "no placeholder here"},
				},
			},
		},
	}

	analyzer := NewAnalyzer()
	contract.Accept(analyzer)

	if len(analyzer.Warnings) != 1 {
		t.Fatalf("Expected 1 warning, got %d", len(analyzer.Warnings))
	}
	w := analyzer.Warnings[0]
	if w.Context != "Demo.broken" {
		t.Errorf("Expected context 'Demo.broken', got '%s'", w.Context)
	}
	if !strings.Contains(w.Message, `"_;"`) {
		t.Errorf("Expected placeholder warning, got '%s'", w.Message)
	}
}

func TestAnalyzer_ModifierWithDoublePlaceholder(t *testing.T) {
	contract := &ir.Contract{
		Name: "Demo",
		Modifiers: []ir.Modifier{
			{
				Header: ir.FunctionHeader{Name: "twice"},
				Body: []ir.Statement{
					&ir.ModifierBody{},
					&ir.ModifierBody{},
				},
			},
		},
	}

	analyzer := NewAnalyzer()
	contract.Accept(analyzer)

	if len(analyzer.Warnings) != 1 {
		t.Fatalf("Expected 1 warning, got %d", len(analyzer.Warnings))
	}
	if !strings.Contains(analyzer.Warnings[0].Message, "2 times") {
		t.Errorf("Expected double-invocation warning, got '%s'", analyzer.Warnings[0].Message)
	}
}

func TestAnalyzer_UnbalancedMarkers(t *testing.T) {
	contract := &ir.Contract{
		Name: "Demo",
		Functions: []ir.Function{
			{
				Header: ir.FunctionHeader{Name: "f"},
				Body: []ir.Statement{
					&ir.If{Condition: ir.Condition{Left: &ir.Literal{Text: "true"}, Operation: ir.OpTrue}},
					&ir.Return{Value: &ir.Literal{Text: "1"}},
					// missing IfEnd
				},
			},
		},
	}

	analyzer := NewAnalyzer()
	contract.Accept(analyzer)

	if len(analyzer.Warnings) != 1 {
		t.Fatalf("Expected 1 warning, got %d", len(analyzer.Warnings))
	}
	if !strings.Contains(analyzer.Warnings[0].Message, "unbalanced") {
		t.Errorf("Expected unbalanced-markers warning, got '%s'", analyzer.Warnings[0].Message)
	}
}

func TestAnalyzer_RawInsideGroup(t *testing.T) {
	contract := &ir.Contract{
		Name: "Demo",
		Functions: []ir.Function{
			{
				Header: ir.FunctionHeader{Name: "f"},
				Body: []ir.Statement{
					&ir.Group{Body: []ir.Statement{
						&ir.Raw{Text: "assembly residue"},
					}},
				},
			},
		},
	}

	analyzer := NewAnalyzer()
	contract.Accept(analyzer)

	if len(analyzer.Warnings) != 1 {
		t.Fatalf("Expected 1 warning for nested raw statement, got %d", len(analyzer.Warnings))
	}
}

func TestAnalyze_CleanContractHasNoWarnings(t *testing.T) {
	src := `
contract Owned {
    address owner;

    modifier onlyOwner() {
        require(msg.sender == owner, "not owner");
        _;
    }

    function setOwner(address newOwner) external onlyOwner {
        owner = newOwner;
    }
}
`
	unit, err := parser.ParseFile(src)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}

	analyzer := Analyze(unit)
	if analyzer.HasWarnings() {
		t.Errorf("Expected no warnings, got %v", analyzer.Warnings)
	}
}

func TestAnalyze_InterfaceHasNoWarnings(t *testing.T) {
	src := `
interface IGetter {
    function f(address a) external view returns (uint256);
}
`
	unit, err := parser.ParseFile(src)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}

	if analyzer := Analyze(unit); analyzer.HasWarnings() {
		t.Errorf("Expected no warnings, got %v", analyzer.Warnings)
	}
}
