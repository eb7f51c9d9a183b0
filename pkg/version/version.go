// Package version exposes build metadata injected via -ldflags.
package version

import "fmt"

var (
	// Version is injected at build time via -ldflags.
	Version = "dev"
	// BuildTime is injected at build time via -ldflags.
	BuildTime = "unknown"
	// GitCommit is injected at build time via -ldflags.
	GitCommit = "unknown"
)

const appName = "imabot"

// GetVersion returns the short semantic version.
func GetVersion() string {
	return Version
}

// GetFullVersion returns a user-facing build string.
func GetFullVersion() string {
	if Version == "dev" {
		return fmt.Sprintf("%s/%s (commit: %s, built: %s)", appName, Version, GitCommit, BuildTime)
	}
	return fmt.Sprintf("%s/%s", appName, Version)
}
