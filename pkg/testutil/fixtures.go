package testutil

import (
	"github.com/arthur-debert/statbadges/pkg/stats"
)

// AdaSnapshotYAML is AdaSnapshot as a snapshot file.
const AdaSnapshotYAML = `user: ada
name: Ada Lovelace
contributions: 7890
lines_changed: [100, 200, 300]
views: 4321
repos:
  - name: ada/engine
    stargazers: 1200
    forks: 50
    languages:
      Go: {size: 400, color: "#00ADD8"}
      Rust: {size: 300, color: "#dea584"}
  - name: ada/notes
    stargazers: 34
    forks: 6
    languages:
      Go: {size: 100}
  - name: someone/fork
    fork: true
    stargazers: 99
    forks: 1
    languages:
      Python: {size: 1000, color: "#3572A5"}
`

// AdaSnapshot is the reference profile. With forks excluded it aggregates to
// 1,234 stars, 56 forks, two repositories and Go 62.5% / Rust 37.5%.
func AdaSnapshot() stats.Snapshot {
	return stats.Snapshot{
		User:          "ada",
		Name:          "Ada Lovelace",
		Contributions: 7890,
		LinesChanged:  []int{100, 200, 300},
		Views:         4321,
		Repos: []stats.Repo{
			{
				Name:       "ada/engine",
				Stargazers: 1200,
				Forks:      50,
				Languages: map[string]stats.RepoLanguage{
					"Go":   {Size: 400, Color: "#00ADD8"},
					"Rust": {Size: 300, Color: "#dea584"},
				},
			},
			{
				Name:       "ada/notes",
				Stargazers: 34,
				Forks:      6,
				Languages:  map[string]stats.RepoLanguage{"Go": {Size: 100}},
			},
			{
				Name:       "someone/fork",
				Fork:       true,
				Stargazers: 99,
				Forks:      1,
				Languages:  map[string]stats.RepoLanguage{"Python": {Size: 1000, Color: "#3572A5"}},
			},
		},
	}
}

// WriteAdaSnapshot writes AdaSnapshotYAML into the environment and returns its path.
func (env *TestEnvironment) WriteAdaSnapshot() string {
	env.t.Helper()
	return env.WriteFile("ada.yaml", AdaSnapshotYAML)
}
