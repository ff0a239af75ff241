// Package config loads statbadges configuration.
//
// Two kinds of configuration exist. Settings describe how the tool runs
// (where badges go, which templates to use, where snapshots come from) and are
// layered with koanf:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. a config file: --config, else statbadges.{toml,yaml,yml} in the working
//     directory, else config.{toml,yaml,yml} in the XDG config directory
//  3. STATBADGES_* environment variables (STATBADGES_OUTPUT_DIR -> output.dir)
//  4. explicit overrides, typically command line flags
//
// Environment describes whom the badges are for and which repositories and
// languages to leave out. Its variable names (ACCESS_TOKEN, GITHUB_ACTOR, ...)
// follow the CI conventions the tool is usually run under and are parsed once
// at startup.
package config
