package generate

import (
	"context"

	"github.com/arthur-debert/statbadges/pkg/errors"
	"github.com/arthur-debert/statbadges/pkg/stats"
	"github.com/arthur-debert/statbadges/pkg/store"
)

// FromSnapshotFile reads statistics from a snapshot file.
func FromSnapshotFile(path string) SourceFactory {
	return func(ctx context.Context, opts stats.Options) (stats.Source, error) {
		snap, err := stats.LoadSnapshot(path)
		if err != nil {
			return nil, err
		}
		return stats.NewSnapshotSource(snap, opts), nil
	}
}

// FromStore reads the newest stored snapshot of opts.User.
func FromStore(path string) SourceFactory {
	return func(ctx context.Context, opts stats.Options) (stats.Source, error) {
		if opts.User == "" {
			return nil, errors.New(errors.ErrConfigMissing, "GITHUB_ACTOR is required to read from the snapshot store").
				WithDetail("variable", "GITHUB_ACTOR")
		}

		st, err := store.Open(ctx, path)
		if err != nil {
			return nil, err
		}
		defer func() { _ = st.Close() }()

		snap, err := st.Latest(ctx, opts.User)
		if err != nil {
			return nil, err
		}
		return stats.NewSnapshotSource(snap, opts), nil
	}
}

// FromSettings picks the snapshot file when one is configured and the store
// otherwise.
func FromSettings(snapshotPath, storePath string) SourceFactory {
	if snapshotPath != "" {
		return FromSnapshotFile(snapshotPath)
	}
	return FromStore(storePath)
}
