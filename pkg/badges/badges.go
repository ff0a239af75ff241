package badges

import (
	"context"
	"embed"
	"io/fs"

	"github.com/arthur-debert/statbadges/pkg/errors"
	"github.com/arthur-debert/statbadges/pkg/logging"
	"github.com/arthur-debert/statbadges/pkg/synthfs"
	"github.com/arthur-debert/statbadges/pkg/template"
	"github.com/rs/zerolog"
)

// Badge names, also the base names of their template and output files.
const (
	Overview  = "overview"
	Languages = "languages"
)

// Names lists every badge in generation order.
var Names = []string{Overview, Languages}

//go:embed templates/*.svg
var embedded embed.FS

// DefaultTemplates returns the templates bundled with the binary.
func DefaultTemplates() fs.FS {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// TemplateName returns the template file name of a badge.
func TemplateName(badge string) string {
	return badge + ".svg"
}

// FileName returns the output file name of a badge variant. An empty theme
// names the alias file.
func FileName(badge string, theme template.Theme) string {
	if theme == "" {
		return badge + ".svg"
	}
	return badge + theme.Suffix() + ".svg"
}

// Writer persists a batch of rendered files.
type Writer interface {
	Write(ctx context.Context, files []synthfs.File) ([]string, error)
}

// Result describes one rendered badge.
type Result struct {
	Badge string
	Light string
	Dark  string
	// Files are the paths handed back by the writer, alias first.
	Files []string
}

// Renderer renders badges from a template set into a Writer.
type Renderer struct {
	templates fs.FS
	writer    Writer
	validate  bool
	logger    zerolog.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithValidation checks that every render is a well-formed SVG document
// before anything is written.
func WithValidation(enabled bool) Option {
	return func(r *Renderer) {
		r.validate = enabled
	}
}

// NewRenderer creates a renderer reading templates from templates (see
// DefaultTemplates) and writing through writer.
func NewRenderer(templates fs.FS, writer Writer, opts ...Option) *Renderer {
	r := &Renderer{
		templates: templates,
		writer:    writer,
		logger:    logging.GetLogger("badges"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// render substitutes values into the badge template for both themes,
// validates and writes the three artifacts.
func (r *Renderer) render(ctx context.Context, badge string, values map[string]string) (Result, error) {
	tmpl, err := template.Load(r.templates, TemplateName(badge))
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Badge: badge,
		Light: template.Render(tmpl, values, template.Light),
		Dark:  template.Render(tmpl, values, template.Dark),
	}

	if r.validate {
		for _, v := range []struct {
			theme template.Theme
			svg   string
		}{{template.Light, res.Light}, {template.Dark, res.Dark}} {
			if err := Validate(v.svg); err != nil {
				return Result{}, errors.Wrapf(err, errors.ErrRenderInvalid,
					"%s badge is not a well-formed SVG", badge).
					WithDetail("theme", string(v.theme))
			}
		}
	}

	files := []synthfs.File{
		{Name: FileName(badge, ""), Content: []byte(res.Light)},
		{Name: FileName(badge, template.Light), Content: []byte(res.Light)},
		{Name: FileName(badge, template.Dark), Content: []byte(res.Dark)},
	}
	res.Files, err = r.writer.Write(ctx, files)
	if err != nil {
		return Result{}, err
	}

	r.logger.Info().
		Str("badge", badge).
		Strs("files", res.Files).
		Msg("Badge written")
	return res, nil
}
