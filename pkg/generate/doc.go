// Package generate runs the badge pipeline: it checks the run configuration,
// builds one statistics source and renders the overview and languages badges
// concurrently into the output directory.
//
// The two badges are joined fail-fast. The first failure cancels the shared
// context, the other badge stops at its next source read or before writing,
// and Run reports that first failure once both have returned.
package generate
