package parser

import (
	"errors"
	"testing"

	"github.com/solidity2ink/transpiler/pkg/ir"
)

func TestParseFileSimpleContract(t *testing.T) {
	src := `
pragma solidity ^0.8.0;

contract Counter {
    uint256 public count;

    constructor() {
        count = 0;
    }

    function increment() external {
        count = count + 1;
    }

    function getCount() external view returns (uint256) {
        return count;
    }
}
`
	unit, err := ParseFile(src)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	if unit.Contract == nil {
		t.Fatal("unit.Contract is nil")
	}
	if unit.Interface != nil {
		t.Fatal("unit.Interface is not nil")
	}
	c := unit.Contract
	if c.Name != "Counter" {
		t.Errorf("Name = %q, want Counter", c.Name)
	}
	if len(c.Fields) != 1 || c.Fields[0].Name != "count" || c.Fields[0].FieldType != "u128" {
		t.Errorf("Fields = %+v, want one u128 field named count", c.Fields)
	}
	if len(c.Functions) != 2 {
		t.Fatalf("len(Functions) = %d, want 2", len(c.Functions))
	}
	if c.Functions[0].Header.Name != "increment" || !c.Functions[0].Header.External {
		t.Errorf("Functions[0].Header = %+v", c.Functions[0].Header)
	}
	if len(c.Functions[0].Body) != 1 {
		t.Fatalf("increment body = %+v, want 1 statement", c.Functions[0].Body)
	}
	assign, ok := c.Functions[0].Body[0].(*ir.Assign)
	if !ok {
		t.Fatalf("increment body[0] = %T, want *ir.Assign", c.Functions[0].Body[0])
	}
	if assign.Operation != ir.OpTrue {
		t.Errorf("assign.Operation = %v, want OpTrue", assign.Operation)
	}
	lhs, ok := assign.Lhs.(*ir.Member)
	if !ok {
		t.Fatalf("assign.Lhs = %T, want *ir.Member", assign.Lhs)
	}
	if lhs.Name != "count" || lhs.Selector != "self" {
		t.Errorf("assign.Lhs = %+v, want storage member count qualified with self", lhs)
	}
	if len(c.Constructor.Body) != 1 {
		t.Fatalf("constructor body = %+v, want 1 statement", c.Constructor.Body)
	}
	ctorAssign, ok := c.Constructor.Body[0].(*ir.Assign)
	if !ok {
		t.Fatalf("constructor body[0] = %T, want *ir.Assign", c.Constructor.Body[0])
	}
	ctorLhs := ctorAssign.Lhs.(*ir.Member)
	if ctorLhs.Selector != "instance" {
		t.Errorf("constructor Lhs selector = %q, want instance", ctorLhs.Selector)
	}
}

func TestParseFileInterfaceWithEvent(t *testing.T) {
	src := `
interface IToken {
    event Transfer(address indexed from, address indexed to, uint256 value);

    function transfer(address to, uint256 amount) external returns (bool);
}
`
	unit, err := ParseFile(src)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	if unit.Interface == nil {
		t.Fatal("unit.Interface is nil")
	}
	iface := unit.Interface
	if iface.Name != "IToken" {
		t.Errorf("Name = %q, want IToken", iface.Name)
	}
	if len(iface.Events) != 1 {
		t.Fatalf("len(Events) = %d, want 1", len(iface.Events))
	}
	ev := iface.Events[0]
	if ev.Name != "Transfer" || len(ev.Fields) != 3 {
		t.Fatalf("event = %+v", ev)
	}
	if !ev.Fields[0].Indexed || ev.Fields[0].Name != "from" {
		t.Errorf("Fields[0] = %+v, want indexed from", ev.Fields[0])
	}
	if ev.Fields[2].Indexed || ev.Fields[2].Name != "value" || ev.Fields[2].FieldType != "u128" {
		t.Errorf("Fields[2] = %+v, want non-indexed value:u128", ev.Fields[2])
	}
	if len(iface.FunctionHeaders) != 1 {
		t.Fatalf("len(FunctionHeaders) = %d, want 1", len(iface.FunctionHeaders))
	}
	header := iface.FunctionHeaders[0]
	if header.Name != "transfer" || !header.External {
		t.Errorf("header = %+v", header)
	}
	if len(header.ReturnParams) != 1 || header.ReturnParams[0].ParamType != "bool" {
		t.Errorf("ReturnParams = %+v", header.ReturnParams)
	}
}

func TestParseFileNestedMappingField(t *testing.T) {
	src := `
contract Allowances {
    mapping(address => mapping(address => uint256)) public allowance;
}
`
	unit, err := ParseFile(src)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	c := unit.Contract
	if len(c.Fields) != 1 {
		t.Fatalf("len(Fields) = %d, want 1", len(c.Fields))
	}
	want := "Mapping<(AccountId, AccountId), u128>"
	if c.Fields[0].FieldType != want {
		t.Errorf("FieldType = %q, want %q", c.Fields[0].FieldType, want)
	}
	if c.Imports.Len() == 0 {
		t.Error("expected AccountId/Mapping imports to be recorded")
	}
}

func TestParseFilePureFunctionReturningBool(t *testing.T) {
	src := `
contract Checker {
    function isEven(uint256 n) external pure returns (bool) {
        return n % 2 == 0;
    }
}
`
	unit, err := ParseFile(src)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	fn := unit.Contract.Functions[0]
	if fn.Header.Name != "isEven" {
		t.Fatalf("Name = %q", fn.Header.Name)
	}
	if len(fn.Header.ReturnParams) != 1 || fn.Header.ReturnParams[0].ParamType != "bool" {
		t.Fatalf("ReturnParams = %+v", fn.Header.ReturnParams)
	}
	if len(fn.Body) != 1 {
		t.Fatalf("body = %+v, want 1 statement", fn.Body)
	}
	ret, ok := fn.Body[0].(*ir.Return)
	if !ok {
		t.Fatalf("body[0] = %T, want *ir.Return", fn.Body[0])
	}
	ce, ok := ret.Value.(*ir.ConditionExpr)
	if !ok {
		t.Fatalf("return value = %T, want *ir.ConditionExpr", ret.Value)
	}
	if ce.Condition.Operation != ir.OpEq {
		t.Errorf("condition op = %v, want OpEq", ce.Condition.Operation)
	}
}

func TestParseFileMissingDefinitionIsError(t *testing.T) {
	_, err := ParseFile("pragma solidity ^0.8.0;\nimport \"./Foo.sol\";\n")
	if err == nil {
		t.Fatal("expected an error for a file with no contract or interface")
	}
	if !errors.Is(err, ErrFileCorrupted) {
		t.Errorf("err = %v, want errors.Is(err, ErrFileCorrupted)", err)
	}
	if errors.Is(err, ErrContractCorrupted) {
		t.Errorf("err = %v unexpectedly matches ErrContractCorrupted", err)
	}
}

func TestParseFileTruncatedHeaderIsContractCorrupted(t *testing.T) {
	_, err := ParseFile("contract C {\n    function f(uint256 a")
	if err == nil {
		t.Fatal("expected an error for a truncated function header")
	}
	if !errors.Is(err, ErrContractCorrupted) {
		t.Errorf("err = %v, want errors.Is(err, ErrContractCorrupted)", err)
	}
}

func TestParseContractDefinition(t *testing.T) {
	lines := []string{
		"pragma solidity ^0.8.0;",
		"",
		"contract Counter {",
	}
	def, err := ParseContractDefinition(lines)
	if err != nil {
		t.Fatalf("ParseContractDefinition() error = %v", err)
	}
	if def.ContractName != "Counter" || def.ContractType != ContractTypeContract || def.NextLine != 3 {
		t.Errorf("def = %+v", def)
	}

	def, err = ParseContractDefinition([]string{"interface IToken {"})
	if err != nil {
		t.Fatalf("ParseContractDefinition() error = %v", err)
	}
	if def.ContractName != "IToken" || def.ContractType != ContractTypeInterface {
		t.Errorf("def = %+v", def)
	}

	_, err = ParseContractDefinition([]string{"pragma solidity ^0.8.0;"})
	if !errors.Is(err, ErrNoContractDefinitionFound) {
		t.Errorf("err = %v, want errors.Is(err, ErrNoContractDefinitionFound)", err)
	}
}

func TestParseFileMappingWriteBecomesInsert(t *testing.T) {
	src := `
contract Bank {
    mapping(address => uint256) balances;

    function deposit(uint256 amount) external {
        balances[msg.sender] = amount;
    }
}
`
	unit, err := ParseFile(src)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	body := unit.Contract.Functions[0].Body
	if len(body) != 1 {
		t.Fatalf("body = %+v, want 1 statement", body)
	}
	assign, ok := body[0].(*ir.Assign)
	if !ok {
		t.Fatalf("body[0] = %T, want *ir.Assign", body[0])
	}
	m, ok := assign.Lhs.(*ir.Mapping)
	if !ok {
		t.Fatalf("assign.Lhs = %T, want *ir.Mapping", assign.Lhs)
	}
	if m.Name != "balances" || m.Selector != "self" {
		t.Errorf("mapping = %+v, want balances qualified with self", m)
	}
	if m.InsertValue == nil {
		t.Error("mapping write did not populate InsertValue")
	}
	if len(m.Indices) != 1 {
		t.Fatalf("indices = %+v, want 1", m.Indices)
	}
	if _, ok := m.Indices[0].(*ir.EnvCaller); !ok {
		t.Errorf("index = %T, want *ir.EnvCaller", m.Indices[0])
	}
}

func TestParseFileForLoopLowersToWhile(t *testing.T) {
	src := `
contract Summer {
    function sum(uint256 n) external pure returns (uint256) {
        uint256 total = 0;
        for (uint256 i = 0; i < n; i++) {
            total = total + i;
        }
        return total;
    }
}
`
	unit, err := ParseFile(src)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	body := unit.Contract.Functions[0].Body

	var loop *ir.While
	for _, s := range body {
		if w, ok := s.(*ir.While); ok {
			loop = w
			break
		}
	}
	if loop == nil {
		t.Fatalf("no While in body %+v", body)
	}
	if loop.Init == nil {
		t.Error("for-loop init was not carried onto the While node")
	}
	if _, ok := loop.Init.(*ir.Declaration); !ok {
		t.Errorf("loop.Init = %T, want *ir.Declaration", loop.Init)
	}
	if loop.Condition.Operation != ir.OpLt {
		t.Errorf("loop condition op = %v, want OpLt", loop.Condition.Operation)
	}
	step, ok := loop.Step.(*ir.Assign)
	if !ok {
		t.Fatalf("loop.Step = %T, want *ir.Assign", loop.Step)
	}
	if step.Operation != ir.OpAddAssign {
		t.Errorf("step op = %v, want OpAddAssign", step.Operation)
	}
}

func TestParseFileModifierBodyPlaceholder(t *testing.T) {
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
	unit, err := ParseFile(src)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	c := unit.Contract
	if len(c.Modifiers) != 1 {
		t.Fatalf("len(Modifiers) = %d, want 1", len(c.Modifiers))
	}
	m := c.Modifiers[0]
	if m.Header.Name != "onlyOwner" {
		t.Errorf("modifier name = %q", m.Header.Name)
	}
	if len(m.Body) != 2 {
		t.Fatalf("modifier body = %+v, want [Require, ModifierBody]", m.Body)
	}
	req, ok := m.Body[0].(*ir.Require)
	if !ok {
		t.Fatalf("body[0] = %T, want *ir.Require", m.Body[0])
	}
	owner := req.Condition.Right.(*ir.Member)
	if owner.Selector != "instance" {
		t.Errorf("modifier storage selector = %q, want instance", owner.Selector)
	}
	if _, ok := m.Body[1].(*ir.ModifierBody); !ok {
		t.Errorf("body[1] = %T, want *ir.ModifierBody", m.Body[1])
	}
	if len(c.Functions) != 1 || len(c.Functions[0].Header.Modifiers) != 1 || c.Functions[0].Header.Modifiers[0] != "onlyOwner" {
		t.Errorf("Functions = %+v, want setOwner carrying the onlyOwner invocation", c.Functions)
	}
}

func TestParseFileIfElseChain(t *testing.T) {
	src := `
contract Sign {
    function sign(int256 x) external pure returns (int256) {
        if (x > 0) {
            return 1;
        } else if (x < 0) {
            return -1;
        } else {
            return 0;
        }
    }
}
`
	unit, err := ParseFile(src)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	body := unit.Contract.Functions[0].Body
	var kinds []string
	for _, s := range body {
		switch s.(type) {
		case *ir.If:
			kinds = append(kinds, "If")
		case *ir.ElseIf:
			kinds = append(kinds, "ElseIf")
		case *ir.Else:
			kinds = append(kinds, "Else")
		case *ir.IfEnd:
			kinds = append(kinds, "IfEnd")
		case *ir.Return:
			kinds = append(kinds, "Return")
		}
	}
	want := []string{"If", "Return", "ElseIf", "Return", "Else", "Return", "IfEnd"}
	if len(kinds) != len(want) {
		t.Fatalf("kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("kinds[%d] = %q, want %q (full: %v)", i, kinds[i], want[i], kinds)
		}
	}
}
