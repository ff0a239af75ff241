// Package testutil provides utilities for testing statbadges components.
//
// Key components:
//   - TestEnvironment: isolates every directory and variable statbadges
//     reads, so a test never sees the host's configuration or store
//   - AdaSnapshot: the reference statistics used by the end-to-end tests
//
// Usage guidelines:
//   - Tests touching config, paths or the CLI start with NewTestEnvironment
//   - Test data is defined inline, not in external files
package testutil
