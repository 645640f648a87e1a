package ir

// CompilationUnit is produced once per input file: exactly one of
// Contract or Interface is non-nil.
type CompilationUnit struct {
	Contract  *Contract
	Interface *Interface
}

// Contract is the IR for a Solidity `contract` declaration.
type Contract struct {
	Name        string
	Fields      []ContractField
	Constructor Function
	Events      []Event
	Enums       []Enum
	Structs     []Struct
	Functions   []Function
	Modifiers   []Modifier
	Imports     *ImportSet
	Comments    []string
}

// Interface is the IR for a Solidity `interface` declaration.
type Interface struct {
	Name            string
	Events          []Event
	Enums           []Enum
	Structs         []Struct
	FunctionHeaders []FunctionHeader
	Imports         *ImportSet
	Comments        []string
}

// ContractField is one state-variable declaration.
type ContractField struct {
	Name         string
	FieldType    string // already type-converted
	Constant     bool
	InitialValue Expression // nil if absent
	Comments     []string
}

// Event is one `event` declaration.
type Event struct {
	Name     string
	Fields   []EventField
	Comments []string
}

// EventField is one field of an event. FieldType is already
// type-converted, per the Event invariant in spec.md §3.
type EventField struct {
	Name      string
	FieldType string
	Indexed   bool
}

// Enum is one `enum` declaration. Variant identifiers are capitalized
// to PascalCase only at emission time; Values keeps the source casing.
type Enum struct {
	Name     string
	Values   []string
	Comments []string
}

// Struct is one `struct` declaration.
type Struct struct {
	Name     string
	Fields   []StructField
	Comments []string
}

// StructField is one field of a struct declaration.
type StructField struct {
	Name      string
	FieldType string // already type-converted
}

// FunctionHeader is a function signature without a body, used both for
// interface members and as the header half of a concrete Function.
type FunctionHeader struct {
	Name         string
	Params       []FunctionParam
	External     bool
	View         bool
	Payable      bool
	ReturnParams []FunctionParam
	Modifiers    []string // modifier invocation names
	Comments     []string
}

// FunctionParam is one parameter or return value.
type FunctionParam struct {
	Name      string
	ParamType string // already type-converted
}

// Function pairs a header with its lowered body.
type Function struct {
	Header FunctionHeader
	Body   []Statement
}

// Modifier is a Solidity function modifier: a header plus a lowered
// body containing exactly one ModifierBody injection point. A source
// modifier that never references `_;` is not a parse error; the
// analysis pass flags it as a warning instead.
type Modifier struct {
	Header   FunctionHeader
	Body     []Statement
	Comments []string
}
