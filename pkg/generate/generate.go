package generate

import (
	"context"
	"io/fs"
	"os"

	"github.com/arthur-debert/statbadges/pkg/badges"
	"github.com/arthur-debert/statbadges/pkg/errors"
	"github.com/arthur-debert/statbadges/pkg/logging"
	"github.com/arthur-debert/statbadges/pkg/stats"
	"github.com/arthur-debert/statbadges/pkg/synthfs"
	"golang.org/x/sync/errgroup"
)

// Config is everything one run needs. It is built once by the caller; nothing
// below Run reads the environment.
type Config struct {
	Options stats.Options
	// OutputDir receives the six badge files. Created when missing.
	OutputDir string
	// Templates holds overview.svg and languages.svg. Nil uses the built-in set.
	Templates fs.FS
	Validate  bool
	DryRun    bool
}

// SourceFactory builds the statistics source for a run.
type SourceFactory func(ctx context.Context, opts stats.Options) (stats.Source, error)

// Report describes a finished run.
type Report struct {
	Overview  badges.Result
	Languages badges.Result
	DryRun    bool
}

// Files lists every file written (or that would have been, on a dry run).
func (r Report) Files() []string {
	files := make([]string, 0, len(r.Overview.Files)+len(r.Languages.Files))
	files = append(files, r.Overview.Files...)
	return append(files, r.Languages.Files...)
}

// Templates returns the template set found in dir, or the built-in set when
// dir is empty.
func Templates(dir string) fs.FS {
	if dir == "" {
		return badges.DefaultTemplates()
	}
	return os.DirFS(dir)
}

// Run renders both badges from the source newSource builds.
func Run(ctx context.Context, cfg Config, newSource SourceFactory) (Report, error) {
	logger := logging.GetLogger("generate")
	done := logging.LogOperationStart(logger, "generate")
	defer done()

	if cfg.Options.Token == "" {
		return Report{}, errors.New(errors.ErrConfigMissing, "ACCESS_TOKEN is required").
			WithDetail("variable", "ACCESS_TOKEN")
	}
	if newSource == nil {
		return Report{}, errors.New(errors.ErrInvalidInput, "no statistics source configured")
	}
	if cfg.OutputDir == "" {
		return Report{}, errors.New(errors.ErrInvalidInput, "output directory is required")
	}

	src, err := newSource(ctx, cfg.Options)
	if err != nil {
		return Report{}, err
	}

	templates := cfg.Templates
	if templates == nil {
		templates = badges.DefaultTemplates()
	}
	writer := synthfs.NewWriter(cfg.OutputDir).WithDryRun(cfg.DryRun)
	renderer := badges.NewRenderer(templates, writer, badges.WithValidation(cfg.Validate))

	logger.Debug().
		Str("user", cfg.Options.User).
		Str("output", cfg.OutputDir).
		Bool("validate", cfg.Validate).
		Bool("dry_run", cfg.DryRun).
		Msg("Rendering badges")

	report := Report{DryRun: cfg.DryRun}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res, err := renderer.Overview(gctx, src)
		report.Overview = res
		return err
	})
	g.Go(func() error {
		res, err := renderer.Languages(gctx, src)
		report.Languages = res
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Msg("Badge generation failed")
		return Report{}, err
	}

	logger.Info().
		Int("files", len(report.Files())).
		Bool("dry_run", cfg.DryRun).
		Msg("Badges generated")
	return report, nil
}
