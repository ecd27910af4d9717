// Package version exposes build metadata stamped in by the linker.
package version

import "fmt"

// These variables are populated by the Go linker (LDFLAGS) at build time.
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// String formats the build metadata for -version output.
func String() string {
	return fmt.Sprintf("ctestdash %s (commit %s, built %s)", Version, CommitHash, BuildDate)
}
