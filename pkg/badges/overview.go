package badges

import (
	"context"
	"strconv"

	"github.com/arthur-debert/statbadges/pkg/errors"
	"github.com/arthur-debert/statbadges/pkg/logging"
	"golang.org/x/sync/errgroup"
)

// OverviewSource is the part of stats.Source the overview badge reads.
type OverviewSource interface {
	Name(ctx context.Context) (string, error)
	Stargazers(ctx context.Context) (int, error)
	Forks(ctx context.Context) (int, error)
	TotalContributions(ctx context.Context) (int, error)
	LinesChanged(ctx context.Context) ([]int, error)
	Views(ctx context.Context) (int, error)
	Repos(ctx context.Context) ([]string, error)
}

// Overview renders and writes the overview badge.
func (r *Renderer) Overview(ctx context.Context, src OverviewSource) (Result, error) {
	done := logging.LogOperationStart(r.logger, "render-overview")
	defer done()

	values, err := OverviewValues(ctx, src)
	if err != nil {
		return Result{}, err
	}
	return r.render(ctx, Overview, values)
}

// OverviewValues fetches every overview statistic concurrently and formats
// them as template values. The first failing accessor cancels the others.
func OverviewValues(ctx context.Context, src OverviewSource) (map[string]string, error) {
	var (
		name          string
		stars         int
		forks         int
		contributions int
		lines         []int
		views         int
		repos         []string
	)

	g, gctx := errgroup.WithContext(ctx)
	fetch(g, "name", func() (err error) { name, err = src.Name(gctx); return })
	fetch(g, "stargazers", func() (err error) { stars, err = src.Stargazers(gctx); return })
	fetch(g, "forks", func() (err error) { forks, err = src.Forks(gctx); return })
	fetch(g, "contributions", func() (err error) { contributions, err = src.TotalContributions(gctx); return })
	fetch(g, "lines_changed", func() (err error) { lines, err = src.LinesChanged(gctx); return })
	fetch(g, "views", func() (err error) { views, err = src.Views(gctx); return })
	fetch(g, "repos", func() (err error) { repos, err = src.Repos(gctx); return })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return map[string]string{
		"name":          escapeText(name),
		"stars":         formatCount(stars),
		"forks":         formatCount(forks),
		"contributions": formatCount(contributions),
		"lines_changed": strconv.Itoa(sum(lines)),
		"views":         formatCount(views),
		"repos":         formatCount(len(repos)),
	}, nil
}

// fetch runs one accessor in g, tagging its failure with the field name.
func fetch(g *errgroup.Group, field string, read func() error) {
	g.Go(func() error {
		if err := read(); err != nil {
			return errors.Wrapf(err, errors.ErrSourceFetch, "failed to fetch %s", field).
				WithDetail("field", field)
		}
		return nil
	})
}
