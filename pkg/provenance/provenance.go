// Package provenance emits the two-line banner (tool name + version,
// project URL) that both contract and interface emission place first
// in their output (spec.md §4.9). Grounded on the `signature()` helper
// in original_source/src/assembler.rs, which builds the equivalent two
// `_comment_!()` lines from env!("CARGO_PKG_VERSION").
package provenance

import (
	"fmt"

	"github.com/solidity2ink/transpiler/pkg/buildinfo"
)

const (
	toolName    = "sol2ink"
	homepageURL = "https://github.com/solidity2ink/transpiler"
)

// Banner renders the two-line provenance comment followed by a blank
// line, ready to be written verbatim at the top of emitted output.
func Banner() string {
	return fmt.Sprintf(
		"// Generated with %s v%s\n// %s\n\n",
		toolName, buildinfo.Version, homepageURL,
	)
}
