package stats

import (
	"context"
	"maps"
	"strings"
	"sync"
)

// SnapshotSource answers Source accessors from a Snapshot. It is safe for
// concurrent use; the aggregation runs at most once.
type SnapshotSource struct {
	snap Snapshot
	opts Options

	once sync.Once
	agg  aggregate
}

type aggregate struct {
	stars     int
	forks     int
	repos     []string
	languages map[string]LanguageStat
}

var _ Source = (*SnapshotSource)(nil)

// NewSnapshotSource returns a Source over snap filtered by opts.
func NewSnapshotSource(snap Snapshot, opts Options) *SnapshotSource {
	return &SnapshotSource{snap: snap, opts: opts}
}

func (s *SnapshotSource) aggregated() *aggregate {
	s.once.Do(func() {
		s.agg = aggregateSnapshot(s.snap, s.opts)
	})
	return &s.agg
}

func aggregateSnapshot(snap Snapshot, opts Options) aggregate {
	excludedLangs := make(map[string]bool, len(opts.ExcludeLangs))
	for name := range opts.ExcludeLangs {
		excludedLangs[strings.ToLower(name)] = true
	}

	agg := aggregate{
		repos:     []string{},
		languages: make(map[string]LanguageStat),
	}
	var total int64
	for _, repo := range snap.Repos {
		if opts.ExcludeRepos.Has(repo.Name) {
			continue
		}
		if opts.IgnoreForkedRepos && repo.Fork {
			continue
		}
		agg.stars += repo.Stargazers
		agg.forks += repo.Forks
		agg.repos = append(agg.repos, repo.Name)

		for name, lang := range repo.Languages {
			if excludedLangs[strings.ToLower(name)] {
				continue
			}
			stat := agg.languages[name]
			stat.Size += lang.Size
			if stat.Color == "" {
				stat.Color = lang.Color
			}
			agg.languages[name] = stat
			total += lang.Size
		}
	}

	for name, stat := range agg.languages {
		prop := 0.0
		if total > 0 {
			prop = 100 * float64(stat.Size) / float64(total)
		}
		stat.Proportion = &prop
		agg.languages[name] = stat
	}
	return agg
}

func (s *SnapshotSource) Name(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	switch {
	case s.snap.Name != "":
		return s.snap.Name, nil
	case s.snap.User != "":
		return s.snap.User, nil
	default:
		return s.opts.User, nil
	}
}

func (s *SnapshotSource) Stargazers(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return s.aggregated().stars, nil
}

func (s *SnapshotSource) Forks(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return s.aggregated().forks, nil
}

func (s *SnapshotSource) TotalContributions(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return s.snap.Contributions, nil
}

func (s *SnapshotSource) LinesChanged(ctx context.Context) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]int(nil), s.snap.LinesChanged...), nil
}

func (s *SnapshotSource) Views(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return s.snap.Views, nil
}

func (s *SnapshotSource) Repos(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]string(nil), s.aggregated().repos...), nil
}

// Languages returns a copy of the aggregated language usage; callers may
// modify it freely.
func (s *SnapshotSource) Languages(ctx context.Context) (map[string]LanguageStat, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return maps.Clone(s.aggregated().languages), nil
}
