package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/arthur-debert/statbadges/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/arthur-debert/statbadges/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/arthur-debert/statbadges/internal/version.Date={{.Date}}
)

// String returns the one-line version banner printed by `statbadges version`.
func String() string {
	return fmt.Sprintf("statbadges %s (commit %s, built %s)", Version, Commit, Date)
}
