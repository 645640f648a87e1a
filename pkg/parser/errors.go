package parser

import "fmt"

// Kind classifies a parse failure, mirroring the ParserError variants
// in original_source/src/parser.rs.
type Kind int

const (
	// FileError wraps an I/O failure reading the source file.
	FileError Kind = iota
	// FileCorrupted means the source contains neither a contract nor
	// an interface definition, or both.
	FileCorrupted
	// ContractCorrupted means a function/modifier header, or the
	// contract/interface body itself, was opened but never closed
	// before the source ran out.
	ContractCorrupted
	// NoContractDefinitionFound means ParseContractDefinition found no
	// line declaring a "contract" or "interface" (ParseFile reports
	// that case as FileCorrupted).
	NoContractDefinitionFound
)

func (k Kind) String() string {
	switch k {
	case FileError:
		return "file error"
	case FileCorrupted:
		return "file corrupted"
	case ContractCorrupted:
		return "contract corrupted"
	case NoContractDefinitionFound:
		return "no contract definition found"
	default:
		return "unknown parse error"
	}
}

// Error is the error type every exported parsing function returns.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func newError(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Is reports whether err is a *Error of the same Kind, so callers can
// use errors.Is(err, parser.ErrFileCorrupted) style checks against the
// sentinel values below (cmd/sol2ink branches its error reporting on
// them).
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// Sentinel values for errors.Is comparisons against a specific Kind.
var (
	ErrFileCorrupted            = &Error{Kind: FileCorrupted}
	ErrContractCorrupted        = &Error{Kind: ContractCorrupted}
	ErrNoContractDefinitionFound = &Error{Kind: NoContractDefinitionFound}
)
