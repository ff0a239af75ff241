// Package template implements the placeholder substitution used to turn badge
// templates into finished SVG documents.
//
// A template is plain text containing tokens of the form "{{ identifier }}",
// where identifier is made of lowercase letters and underscores and is
// surrounded by exactly one space on each side. Anything else that looks like a
// placeholder ("{{name}}", "{{ Name }}", "{{  name }}") is left alone.
//
// Substitution is a single pass over the text: no nesting, conditionals or
// loops. Values come from two layers merged per call, the theme palette first
// and the caller's values second, so caller values win on a key collision.
// Identifiers found in neither layer render as the empty string.
package template
