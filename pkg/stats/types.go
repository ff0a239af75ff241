package stats

import "context"

// LanguageStat is the usage of one language across the considered repositories.
type LanguageStat struct {
	// Size orders languages; its unit is whatever the source measures (bytes).
	Size int64
	// Proportion is the share of Size in percent (0-100). Nil means unknown.
	Proportion *float64
	// Color is a hex color such as "#00ADD8". Empty means unknown.
	Color string
}

// ProportionOrZero returns the proportion, or 0 when it is unknown.
func (l LanguageStat) ProportionOrZero() float64 {
	if l.Proportion == nil {
		return 0
	}
	return *l.Proportion
}

// Source supplies the statistics the badges are built from.
type Source interface {
	Name(ctx context.Context) (string, error)
	Stargazers(ctx context.Context) (int, error)
	Forks(ctx context.Context) (int, error)
	TotalContributions(ctx context.Context) (int, error)
	// LinesChanged returns per-category line change counts (additions, deletions).
	LinesChanged(ctx context.Context) ([]int, error)
	Views(ctx context.Context) (int, error)
	// Repos returns the names of the repositories considered.
	Repos(ctx context.Context) ([]string, error)
	Languages(ctx context.Context) (map[string]LanguageStat, error)
}

// Set is a set of names. A nil Set means "no exclusions".
type Set map[string]struct{}

// NewSet builds a Set from names. No names yields a nil Set.
func NewSet(names ...string) Set {
	if len(names) == 0 {
		return nil
	}
	s := make(Set, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Has reports whether name is in the set. A nil set contains nothing.
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Options carries everything a Source is constructed with.
type Options struct {
	User              string
	Token             string
	ExcludeRepos      Set
	ExcludeLangs      Set
	IgnoreForkedRepos bool
}
