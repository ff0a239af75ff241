package stats

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadAda(t *testing.T) Snapshot {
	t.Helper()
	snap, err := LoadSnapshot(filepath.Join("testdata", "ada.yaml"))
	require.NoError(t, err)
	return snap
}

func TestSnapshotSourceTotals(t *testing.T) {
	ctx := context.Background()
	src := NewSnapshotSource(loadAda(t), Options{User: "ada"})

	name, err := src.Name(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", name)

	stars, err := src.Stargazers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1333, stars)

	forks, err := src.Forks(ctx)
	require.NoError(t, err)
	assert.Equal(t, 57, forks)

	repos, err := src.Repos(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"ada/engine", "ada/notes", "someone/fork"}, repos)

	contributions, err := src.TotalContributions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7890, contributions)

	lines, err := src.LinesChanged(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{100, 200, 300}, lines)

	views, err := src.Views(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4321, views)
}

func TestSnapshotSourceExclusions(t *testing.T) {
	ctx := context.Background()

	t.Run("forked_repos_ignored", func(t *testing.T) {
		src := NewSnapshotSource(loadAda(t), Options{IgnoreForkedRepos: true})

		repos, err := src.Repos(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"ada/engine", "ada/notes"}, repos)

		langs, err := src.Languages(ctx)
		require.NoError(t, err)
		assert.NotContains(t, langs, "Python")
		assert.Equal(t, int64(500), langs["Go"].Size)
		assert.InDelta(t, 62.5, langs["Go"].ProportionOrZero(), 1e-9)
		assert.InDelta(t, 37.5, langs["Rust"].ProportionOrZero(), 1e-9)
	})

	t.Run("excluded_repo", func(t *testing.T) {
		src := NewSnapshotSource(loadAda(t), Options{ExcludeRepos: NewSet("ada/engine")})

		stars, err := src.Stargazers(ctx)
		require.NoError(t, err)
		assert.Equal(t, 133, stars)
	})

	t.Run("excluded_language_case_insensitive", func(t *testing.T) {
		src := NewSnapshotSource(loadAda(t), Options{ExcludeLangs: NewSet("python")})

		langs, err := src.Languages(ctx)
		require.NoError(t, err)
		assert.Len(t, langs, 2)
		assert.InDelta(t, 62.5, langs["Go"].ProportionOrZero(), 1e-9)
	})

	t.Run("no_exclusions_keeps_everything", func(t *testing.T) {
		src := NewSnapshotSource(loadAda(t), Options{})

		langs, err := src.Languages(ctx)
		require.NoError(t, err)
		assert.Len(t, langs, 3)
		assert.Equal(t, "#00ADD8", langs["Go"].Color)
	})
}

func TestSnapshotSourceNameFallback(t *testing.T) {
	ctx := context.Background()

	name, err := NewSnapshotSource(Snapshot{User: "ada"}, Options{}).Name(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ada", name)

	name, err = NewSnapshotSource(Snapshot{}, Options{User: "grace"}).Name(ctx)
	require.NoError(t, err)
	assert.Equal(t, "grace", name)
}

func TestSnapshotSourceLanguagesAreCopies(t *testing.T) {
	ctx := context.Background()
	src := NewSnapshotSource(loadAda(t), Options{})

	first, err := src.Languages(ctx)
	require.NoError(t, err)
	delete(first, "Go")

	second, err := src.Languages(ctx)
	require.NoError(t, err)
	assert.Contains(t, second, "Go")
}

func TestSnapshotSourceConcurrentReads(t *testing.T) {
	ctx := context.Background()
	src := NewSnapshotSource(loadAda(t), Options{})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = src.Languages(ctx)
			_, _ = src.Stargazers(ctx)
			_, _ = src.Repos(ctx)
		}()
	}
	wg.Wait()

	stars, err := src.Stargazers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1333, stars)
}

func TestSnapshotSourceCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := NewSnapshotSource(loadAda(t), Options{})
	_, err := src.Views(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = src.Languages(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSet(t *testing.T) {
	assert.Nil(t, NewSet())
	assert.False(t, Set(nil).Has("anything"))

	s := NewSet("a", "b")
	assert.True(t, s.Has("a"))
	assert.False(t, s.Has("c"))
}
