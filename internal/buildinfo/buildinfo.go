// Package buildinfo carries version metadata set via -ldflags at release time.
package buildinfo

import "fmt"

var (
	// Version is the release tag.
	Version = "dev"
	// Commit is the git commit the binary was built from.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)

// String renders the version line printed by `squaremat version`.
func String() string {
	return fmt.Sprintf("squaremat %s (commit=%s, date=%s)", Version, Commit, Date)
}
