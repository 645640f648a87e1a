package provenance

import (
	"strings"
	"testing"

	"github.com/solidity2ink/transpiler/pkg/buildinfo"
)

func TestBannerContainsToolNameVersionAndURL(t *testing.T) {
	old := buildinfo.Version
	buildinfo.Version = "1.2.3"
	defer func() { buildinfo.Version = old }()

	b := Banner()
	for _, want := range []string{"sol2ink", "1.2.3", "https://github.com/solidity2ink/transpiler"} {
		if !strings.Contains(b, want) {
			t.Errorf("Banner() = %q, missing %q", b, want)
		}
	}
	if !strings.HasSuffix(b, "\n\n") {
		t.Errorf("Banner() = %q, want trailing blank line", b)
	}
}
