// pkg/generate/generate_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: Temp dirs, sqlite
// PURPOSE: Test the full badge pipeline and its failure modes

package generate

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/arthur-debert/statbadges/pkg/errors"
	"github.com/arthur-debert/statbadges/pkg/stats"
	"github.com/arthur-debert/statbadges/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const adaSnapshot = "../stats/testdata/ada.yaml"

func adaOptions() stats.Options {
	return stats.Options{User: "ada", Token: "secret", IgnoreForkedRepos: true}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestRun_EndToEnd(t *testing.T) {
	out := filepath.Join(t.TempDir(), "generated")

	report, err := Run(context.Background(), Config{
		Options:   adaOptions(),
		OutputDir: out,
		Validate:  true,
	}, FromSnapshotFile(adaSnapshot))
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(out, "overview.svg"),
		filepath.Join(out, "overview-light.svg"),
		filepath.Join(out, "overview-dark.svg"),
		filepath.Join(out, "languages.svg"),
		filepath.Join(out, "languages-light.svg"),
		filepath.Join(out, "languages-dark.svg"),
	}, report.Files())

	overview := readFile(t, filepath.Join(out, "overview.svg"))
	for _, want := range []string{"Ada Lovelace", "1,234", "56", "7,890", "600", "4,321"} {
		assert.Contains(t, overview, want)
	}
	assert.NotContains(t, overview, "{{ ")
	assert.Equal(t, overview, readFile(t, filepath.Join(out, "overview-light.svg")))
	assert.NotEqual(t, overview, readFile(t, filepath.Join(out, "overview-dark.svg")))

	languages := readFile(t, filepath.Join(out, "languages.svg"))
	assert.Contains(t, languages, "width: 62.500%;")
	assert.Contains(t, languages, "width: 37.500%;")
	assert.NotContains(t, languages, "Python", "forked repository languages are excluded")
	goAt := strings.Index(languages, ">Go<")
	rustAt := strings.Index(languages, ">Rust<")
	require.True(t, goAt >= 0 && rustAt >= 0)
	assert.Less(t, goAt, rustAt)

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Len(t, entries, 6, "no staging directories are left behind")
}

func TestRun_Deterministic(t *testing.T) {
	dirs := []string{filepath.Join(t.TempDir(), "a"), filepath.Join(t.TempDir(), "b")}
	for _, dir := range dirs {
		_, err := Run(context.Background(), Config{Options: adaOptions(), OutputDir: dir}, FromSnapshotFile(adaSnapshot))
		require.NoError(t, err)
	}

	for _, name := range []string{"overview.svg", "overview-dark.svg", "languages.svg", "languages-dark.svg"} {
		assert.Equal(t, readFile(t, filepath.Join(dirs[0], name)), readFile(t, filepath.Join(dirs[1], name)), name)
	}
}

func TestRun_MissingCredential(t *testing.T) {
	out := filepath.Join(t.TempDir(), "generated")
	var calls int32
	factory := func(ctx context.Context, opts stats.Options) (stats.Source, error) {
		atomic.AddInt32(&calls, 1)
		return nil, nil
	}

	_, err := Run(context.Background(), Config{Options: stats.Options{User: "ada"}, OutputDir: out}, factory)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigMissing))
	assert.Zero(t, atomic.LoadInt32(&calls), "no source is built")

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "no output directory is created")
}

func TestRun_DryRun(t *testing.T) {
	out := filepath.Join(t.TempDir(), "generated")

	report, err := Run(context.Background(), Config{
		Options:   adaOptions(),
		OutputDir: out,
		Validate:  true,
		DryRun:    true,
	}, FromSnapshotFile(adaSnapshot))
	require.NoError(t, err)

	assert.True(t, report.DryRun)
	assert.Len(t, report.Files(), 6)
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRun_FactoryError(t *testing.T) {
	_, err := Run(context.Background(), Config{Options: adaOptions(), OutputDir: t.TempDir()},
		FromSnapshotFile(filepath.Join(t.TempDir(), "missing.yaml")))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

// blockingSource fails its stargazers read and blocks every other read until
// the context is cancelled.
type blockingSource struct {
	cancelled atomic.Int32
}

var errUpstream = stderrors.New("upstream unavailable")

func (b *blockingSource) wait(ctx context.Context) error {
	<-ctx.Done()
	b.cancelled.Add(1)
	return ctx.Err()
}

func (b *blockingSource) Name(ctx context.Context) (string, error) { return "", b.wait(ctx) }
func (b *blockingSource) Stargazers(ctx context.Context) (int, error) {
	return 0, errUpstream
}
func (b *blockingSource) Forks(ctx context.Context) (int, error) { return 0, b.wait(ctx) }
func (b *blockingSource) TotalContributions(ctx context.Context) (int, error) {
	return 0, b.wait(ctx)
}
func (b *blockingSource) LinesChanged(ctx context.Context) ([]int, error) { return nil, b.wait(ctx) }
func (b *blockingSource) Views(ctx context.Context) (int, error)          { return 0, b.wait(ctx) }
func (b *blockingSource) Repos(ctx context.Context) ([]string, error)     { return nil, b.wait(ctx) }
func (b *blockingSource) Languages(ctx context.Context) (map[string]stats.LanguageStat, error) {
	return nil, b.wait(ctx)
}

func TestRun_FailFast(t *testing.T) {
	out := filepath.Join(t.TempDir(), "generated")
	src := &blockingSource{}

	_, err := Run(context.Background(), Config{Options: adaOptions(), OutputDir: out},
		func(ctx context.Context, opts stats.Options) (stats.Source, error) { return src, nil })
	require.Error(t, err)

	assert.True(t, errors.IsErrorCode(err, errors.ErrSourceFetch))
	assert.ErrorIs(t, err, errUpstream)
	assert.Equal(t, "stargazers", errors.GetErrorDetails(err)["field"])
	// Six overview fields and languages were blocked until cancellation.
	assert.Equal(t, int32(7), src.cancelled.Load())

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "nothing is written")
}

func TestFromStore(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "snapshots.db")

	snap, err := stats.LoadSnapshot(adaSnapshot)
	require.NoError(t, err)
	st, err := store.Open(ctx, dbPath)
	require.NoError(t, err)
	_, err = st.Save(ctx, snap)
	require.NoError(t, err)
	require.NoError(t, st.Close())

	src, err := FromStore(dbPath)(ctx, adaOptions())
	require.NoError(t, err)

	stars, err := src.Stargazers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1234, stars)
}

func TestFromStore_RequiresUser(t *testing.T) {
	_, err := FromStore(filepath.Join(t.TempDir(), "x.db"))(context.Background(), stats.Options{Token: "t"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigMissing))
}

func TestFromSettings(t *testing.T) {
	src, err := FromSettings(adaSnapshot, "")(context.Background(), adaOptions())
	require.NoError(t, err)
	name, err := src.Name(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", name)
}
