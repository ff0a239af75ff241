package template

import "strings"

// Theme selects the color palette applied to a template.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Themes lists every theme a badge is rendered in, in output order.
var Themes = []Theme{Light, Dark}

// Palette keys reserved in every variable mapping.
const (
	KeyColor   = "var_color"
	KeyHeading = "var_heading"
	KeyAccent  = "var_accent"
)

// Palette is the fixed triple of colors a theme contributes to a render.
type Palette struct {
	Color   string
	Heading string
	Accent  string
}

var (
	lightPalette = Palette{
		Color:   "#24292f",
		Heading: "#0969da",
		Accent:  "#6e7781",
	}

	darkPalette = Palette{
		Color:   "#57a6ff",
		Heading: "#8b949e",
		Accent:  "#484f58",
	}
)

// ParseTheme maps a theme name to a Theme. Only "dark" (any case) selects the
// dark theme; every other value, including the empty string, is Light.
func ParseTheme(name string) Theme {
	if strings.EqualFold(strings.TrimSpace(name), string(Dark)) {
		return Dark
	}
	return Light
}

// Palette returns the colors for t. Unknown themes get the light palette.
func (t Theme) Palette() Palette {
	if t == Dark {
		return darkPalette
	}
	return lightPalette
}

// Values returns the palette as placeholder values.
func (p Palette) Values() map[string]string {
	return map[string]string{
		KeyColor:   p.Color,
		KeyHeading: p.Heading,
		KeyAccent:  p.Accent,
	}
}

// Suffix is the file name suffix for the theme variant, e.g. "-dark".
func (t Theme) Suffix() string {
	return "-" + string(t.normalize())
}

func (t Theme) normalize() Theme {
	if t == Dark {
		return Dark
	}
	return Light
}
