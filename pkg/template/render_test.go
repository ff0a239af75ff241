package template

import (
	"testing"
	"testing/fstest"

	"github.com/arthur-debert/statbadges/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name   string
		tmpl   string
		values map[string]string
		theme  Theme
		want   string
	}{
		{
			name:   "replaces_single_token",
			tmpl:   `<text>{{ name }}</text>`,
			values: map[string]string{"name": "Ada"},
			theme:  Light,
			want:   `<text>Ada</text>`,
		},
		{
			name:   "replaces_every_occurrence",
			tmpl:   `{{ stars }}/{{ stars }}`,
			values: map[string]string{"stars": "1,234"},
			theme:  Light,
			want:   `1,234/1,234`,
		},
		{
			name:  "unknown_key_is_empty",
			tmpl:  `{{ unknown }}`,
			theme: Light,
			want:  ``,
		},
		{
			name:  "light_palette",
			tmpl:  `{{ var_color }} {{ var_heading }} {{ var_accent }}`,
			theme: Light,
			want:  `#24292f #0969da #6e7781`,
		},
		{
			name:  "dark_palette",
			tmpl:  `{{ var_color }} {{ var_heading }} {{ var_accent }}`,
			theme: Dark,
			want:  `#57a6ff #8b949e #484f58`,
		},
		{
			name:  "unknown_theme_falls_back_to_light",
			tmpl:  `{{ var_color }}`,
			theme: Theme("solarized"),
			want:  `#24292f`,
		},
		{
			name:   "values_override_palette",
			tmpl:   `{{ var_color }}`,
			values: map[string]string{"var_color": "#ff0000"},
			theme:  Dark,
			want:   `#ff0000`,
		},
		{
			name:   "malformed_tokens_untouched",
			tmpl:   `{{name}} {{  name }} {{ Name }} {{ name2 }} {{ name}}`,
			values: map[string]string{"name": "Ada", "Name": "x", "name2": "y"},
			theme:  Light,
			want:   `{{name}} {{  name }} {{ Name }} {{ name2 }} {{ name}}`,
		},
		{
			name:   "no_recursive_expansion",
			tmpl:   `{{ a }}`,
			values: map[string]string{"a": "{{ b }}", "b": "nope"},
			theme:  Light,
			want:   `{{ b }}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.tmpl, tt.values, tt.theme))
		})
	}
}

func TestRenderOnlyReplacesToken(t *testing.T) {
	tmpl := "<svg>\n  <g fill=\"none\">{{ key }}</g>\n</svg>\n"
	got := Render(tmpl, map[string]string{"key": "value"}, Light)
	assert.Equal(t, "<svg>\n  <g fill=\"none\">value</g>\n</svg>\n", got)
}

func TestRenderIsPure(t *testing.T) {
	tmpl := `{{ var_heading }}:{{ name }}`
	values := map[string]string{"name": "Ada"}

	light := Render(tmpl, values, Light)
	dark := Render(tmpl, values, Dark)

	assert.NotEqual(t, light, dark)
	assert.Equal(t, light, Render(tmpl, values, Light))
	assert.Equal(t, map[string]string{"name": "Ada"}, values, "caller values must not be mutated")
}

func TestParseTheme(t *testing.T) {
	assert.Equal(t, Dark, ParseTheme("dark"))
	assert.Equal(t, Dark, ParseTheme("DARK"))
	assert.Equal(t, Light, ParseTheme("light"))
	assert.Equal(t, Light, ParseTheme(""))
	assert.Equal(t, Light, ParseTheme("sepia"))
}

func TestThemeSuffix(t *testing.T) {
	assert.Equal(t, "-light", Light.Suffix())
	assert.Equal(t, "-dark", Dark.Suffix())
	assert.Equal(t, "-light", Theme("other").Suffix())
}

func TestPlaceholders(t *testing.T) {
	got := Placeholders(`{{ name }} {{ var_color }} {{ name }} {{Bad}}`)
	assert.Equal(t, []string{"name", "var_color"}, got)

	assert.True(t, UsesPalette(`<rect fill="{{ var_accent }}"/>`))
	assert.False(t, UsesPalette(`<text>{{ name }}</text>`))
}

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"overview.svg": &fstest.MapFile{Data: []byte(`<svg>{{ name }}</svg>`)},
	}

	first, err := Load(fsys, "overview.svg")
	require.NoError(t, err)
	second, err := Load(fsys, "overview.svg")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, `<svg>{{ name }}</svg>`, first)

	_, err = Load(fsys, "missing.svg")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateLoad))
}
