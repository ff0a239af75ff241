// Package stats defines the statistics source consumed by the badge renderers
// and ships an offline implementation backed by a snapshot document.
//
// A Source exposes one accessor per statistic. Accessors take a context, may
// block, and must be safe to call concurrently from several goroutines: both
// badge renderers share a single Source and fire their accessors in parallel.
//
// SnapshotSource aggregates a Snapshot once, applying the repository, language
// and fork exclusions carried by Options, and answers every accessor from that
// aggregate.
package stats
