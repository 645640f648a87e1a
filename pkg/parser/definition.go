package parser

import "strings"

// ContractType distinguishes which top-level declaration kind a source
// file defines.
type ContractType int

const (
	ContractTypeContract ContractType = iota
	ContractTypeInterface
)

// ContractDefinition locates the contract or interface declaration in
// a Solidity file split into lines.
type ContractDefinition struct {
	ContractName string
	// NextLine is the index of the first line after the declaration.
	NextLine     int
	ContractType ContractType
}

// ParseContractDefinition scans lines for the first "contract Name" or
// "interface Name" declaration, returning a *Error of kind
// NoContractDefinitionFound when the file contains neither. Grounded
// on parse_contract_definition in original_source/src/parser.rs.
func ParseContractDefinition(lines []string) (ContractDefinition, error) {
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		tokens := strings.Fields(line)
		if len(tokens) < 2 {
			continue
		}
		switch tokens[0] {
		case "contract":
			return ContractDefinition{
				ContractName: tokens[1],
				NextLine:     i + 1,
				ContractType: ContractTypeContract,
			}, nil
		case "interface":
			return ContractDefinition{
				ContractName: tokens[1],
				NextLine:     i + 1,
				ContractType: ContractTypeInterface,
			}, nil
		}
	}
	return ContractDefinition{}, newError(NoContractDefinitionFound, "")
}
