// Command sol2ink reads one Solidity source file and writes its
// ink!/openbrush translation next to it. It is a single-file, no-flags
// CLI in the teacher's style (examples/calculator and examples/counter
// under _examples/gaarutyunov-guix keep their own main functions to a
// handful of straight-line calls with no CLI framework); the control
// flow itself is grounded on fn run() in
// original_source/src/main.rs.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/solidity2ink/transpiler/pkg/assembler"
	"github.com/solidity2ink/transpiler/pkg/parser"
	"github.com/solidity2ink/transpiler/pkg/visitors"
)

func main() {
	if len(os.Args) <= 1 {
		fmt.Fprintln(os.Stderr, "usage: sol2ink <path-to-contract.sol>")
		os.Exit(1)
	}

	if err := run(os.Args[1]); err != nil {
		switch {
		case errors.Is(err, parser.ErrFileCorrupted):
			fmt.Fprintf(os.Stderr, "error: %v (the file must define exactly one contract or interface)\n", err)
		case errors.Is(err, parser.ErrContractCorrupted):
			fmt.Fprintf(os.Stderr, "error: %v (a member declaration is truncated)\n", err)
		default:
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

// run mirrors original_source/src/main.rs's run: read the file, parse
// it into exactly one of a contract or an interface, report what the
// parser could only translate best-effort, assemble the matching
// ink!/openbrush source, and write it to the input path with its
// ".sol" suffix dropped.
func run(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return &parser.Error{Kind: parser.FileError, Msg: err.Error()}
	}

	unit, err := parser.ParseFile(string(content))
	if err != nil {
		return err
	}

	if analysis := visitors.Analyze(unit); analysis.HasWarnings() {
		for _, w := range analysis.Warnings {
			fmt.Fprintf(os.Stderr, "warning: %s\n", w)
		}
	}

	out := assembler.Assemble(unit)
	outPath := strings.TrimSuffix(path, ".sol")
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return &parser.Error{Kind: parser.FileError, Msg: err.Error()}
	}

	fmt.Println("File saved!")
	return nil
}
