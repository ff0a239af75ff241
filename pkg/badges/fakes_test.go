package badges

import (
	"context"
	"sync"

	"github.com/arthur-debert/statbadges/pkg/stats"
	"github.com/arthur-debert/statbadges/pkg/synthfs"
)

// fakeSource is an in-memory stats.Source. Accessors named in errs fail.
type fakeSource struct {
	name          string
	stars         int
	forks         int
	contributions int
	lines         []int
	views         int
	repos         []string
	languages     map[string]stats.LanguageStat
	errs          map[string]error
}

var _ stats.Source = (*fakeSource)(nil)

func (f *fakeSource) fail(field string) error {
	return f.errs[field]
}

func (f *fakeSource) Name(ctx context.Context) (string, error) {
	return f.name, f.fail("name")
}

func (f *fakeSource) Stargazers(ctx context.Context) (int, error) {
	return f.stars, f.fail("stargazers")
}

func (f *fakeSource) Forks(ctx context.Context) (int, error) {
	return f.forks, f.fail("forks")
}

func (f *fakeSource) TotalContributions(ctx context.Context) (int, error) {
	return f.contributions, f.fail("contributions")
}

func (f *fakeSource) LinesChanged(ctx context.Context) ([]int, error) {
	return f.lines, f.fail("lines_changed")
}

func (f *fakeSource) Views(ctx context.Context) (int, error) {
	return f.views, f.fail("views")
}

func (f *fakeSource) Repos(ctx context.Context) ([]string, error) {
	return f.repos, f.fail("repos")
}

func (f *fakeSource) Languages(ctx context.Context) (map[string]stats.LanguageStat, error) {
	return f.languages, f.fail("languages")
}

func prop(v float64) *float64 {
	return &v
}

// adaSource returns the reference statistics used across the badge tests.
func adaSource() *fakeSource {
	repos := make([]string, 12)
	for i := range repos {
		repos[i] = "repo"
	}
	return &fakeSource{
		name:          "Ada",
		stars:         1234,
		forks:         56,
		contributions: 7890,
		lines:         []int{100, 200, 300},
		views:         4321,
		repos:         repos,
		languages: map[string]stats.LanguageStat{
			"Go":   {Size: 500, Proportion: prop(60.0), Color: "#00ADD8"},
			"Rust": {Size: 300, Proportion: prop(40.0), Color: "#dea584"},
		},
	}
}

// memWriter records written files instead of touching the disk.
type memWriter struct {
	mu    sync.Mutex
	files map[string]string
	err   error
}

func newMemWriter() *memWriter {
	return &memWriter{files: make(map[string]string)}
}

func (w *memWriter) Write(ctx context.Context, files []synthfs.File) ([]string, error) {
	if w.err != nil {
		return nil, w.err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	names := make([]string, len(files))
	for i, f := range files {
		w.files[f.Name] = string(f.Content)
		names[i] = f.Name
	}
	return names, nil
}
