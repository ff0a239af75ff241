package badges

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/arthur-debert/statbadges/pkg/errors"
	"github.com/arthur-debert/statbadges/pkg/synthfs"
	"github.com/arthur-debert/statbadges/pkg/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileName(t *testing.T) {
	assert.Equal(t, "overview.svg", FileName(Overview, ""))
	assert.Equal(t, "overview-light.svg", FileName(Overview, template.Light))
	assert.Equal(t, "languages-dark.svg", FileName(Languages, template.Dark))
}

func TestDefaultTemplatesArePresentAndThemed(t *testing.T) {
	for _, badge := range Names {
		tmpl, err := template.Load(DefaultTemplates(), TemplateName(badge))
		require.NoError(t, err, badge)
		assert.True(t, template.UsesPalette(tmpl), "%s template should reference the palette", badge)
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(`<svg xmlns="http://www.w3.org/2000/svg"><g/></svg>`))
	assert.Error(t, Validate(`<svg><g></svg>`))
	assert.Error(t, Validate(`plain text`))
	assert.Error(t, Validate(`<html></html>`))
}

func TestRendererMissingTemplate(t *testing.T) {
	w := newMemWriter()
	r := NewRenderer(fstest.MapFS{}, w)

	_, err := r.Overview(context.Background(), adaSource())
	assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateLoad))
	assert.Empty(t, w.files)
}

func TestRendererValidation(t *testing.T) {
	broken := fstest.MapFS{
		"overview.svg": &fstest.MapFile{Data: []byte(`<svg><text>{{ name }}</svg>`)},
	}

	t.Run("enabled_rejects_malformed_output", func(t *testing.T) {
		w := newMemWriter()
		_, err := NewRenderer(broken, w, WithValidation(true)).Overview(context.Background(), adaSource())
		assert.True(t, errors.IsErrorCode(err, errors.ErrRenderInvalid))
		assert.Empty(t, w.files)
	})

	t.Run("disabled_writes_as_is", func(t *testing.T) {
		w := newMemWriter()
		_, err := NewRenderer(broken, w).Overview(context.Background(), adaSource())
		require.NoError(t, err)
		assert.Equal(t, `<svg><text>Ada</svg>`, w.files["overview.svg"])
	})
}

func TestRendererWriterError(t *testing.T) {
	w := newMemWriter()
	w.err = errors.New(errors.ErrFileWrite, "disk full")

	_, err := NewRenderer(DefaultTemplates(), w).Languages(context.Background(), adaSource())
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileWrite))
}

func TestRendererWritesToDisk(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "generated")
	r := NewRenderer(DefaultTemplates(), synthfs.NewWriter(dir), WithValidation(true))

	_, err := r.Overview(context.Background(), adaSource())
	require.NoError(t, err)
	_, err = r.Languages(context.Background(), adaSource())
	require.NoError(t, err)

	for _, badge := range Names {
		alias, err := os.ReadFile(filepath.Join(dir, FileName(badge, "")))
		require.NoError(t, err)
		light, err := os.ReadFile(filepath.Join(dir, FileName(badge, template.Light)))
		require.NoError(t, err)
		dark, err := os.ReadFile(filepath.Join(dir, FileName(badge, template.Dark)))
		require.NoError(t, err)

		assert.Equal(t, alias, light, badge)
		assert.NotEqual(t, light, dark, badge)
	}
}
