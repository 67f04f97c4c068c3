// Package version carries build metadata stamped in via ldflags.
package version

//nolint:revive // Overridden by the build.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
