// Package paths provides centralized path handling for statbadges.
// It follows the XDG Base Directory specification for the config file and
// the snapshot store, with environment overrides for each directory.
package paths
