// Package badges renders the overview and languages badges.
//
// Each renderer reads the statistics it needs from a source, shapes them into
// display strings, substitutes them into its template once per theme and hands
// the three resulting artifacts (alias, light, dark) to a Writer:
//
//	overview.svg   overview-light.svg   overview-dark.svg
//	languages.svg  languages-light.svg  languages-dark.svg
//
// The alias file always carries the light render.
package badges
