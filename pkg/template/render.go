package template

import (
	"io/fs"
	"regexp"

	"github.com/arthur-debert/statbadges/pkg/errors"
)

var placeholderPattern = regexp.MustCompile(`\{\{ ([a-z_]+) \}\}`)

// Render substitutes every placeholder in tmpl using the palette of theme
// overlaid with values. It holds no state and never fails.
func Render(tmpl string, values map[string]string, theme Theme) string {
	variables := theme.Palette().Values()
	for k, v := range values {
		variables[k] = v
	}

	return placeholderPattern.ReplaceAllStringFunc(tmpl, func(token string) string {
		key := placeholderPattern.FindStringSubmatch(token)[1]
		return variables[key]
	})
}

// Placeholders returns the distinct identifiers referenced by tmpl in order of
// first appearance.
func Placeholders(tmpl string) []string {
	seen := make(map[string]bool)
	var keys []string
	for _, m := range placeholderPattern.FindAllStringSubmatch(tmpl, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			keys = append(keys, m[1])
		}
	}
	return keys
}

// UsesPalette reports whether tmpl references any theme palette key, i.e.
// whether its light and dark renders can differ.
func UsesPalette(tmpl string) bool {
	for _, key := range Placeholders(tmpl) {
		switch key {
		case KeyColor, KeyHeading, KeyAccent:
			return true
		}
	}
	return false
}

// Load reads the named template from fsys. The file is read in full and
// released before returning; reading the same file twice yields the same text.
func Load(fsys fs.FS, name string) (string, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrTemplateLoad, "failed to load template %s", name).
			WithDetail("template", name)
	}
	return string(data), nil
}
