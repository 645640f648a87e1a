// Package buildinfo holds version metadata injected at build time via
// -ldflags -X, the way _examples/tablelandnetwork-go-tableland's own
// buildinfo package is populated by govvv. Only the fields the
// provenance banner needs are kept; the rest of tableland's
// GetSummary/telemetry plumbing has no analogue here.
package buildinfo

var (
	// Version is set by -ldflags -X at release build time.
	Version = "dev"
	// GitCommit is set by -ldflags -X at release build time.
	GitCommit = "n/a"
	// BuildDate is set by -ldflags -X at release build time.
	BuildDate = "n/a"
)
