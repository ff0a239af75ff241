// pkg/testutil/environment.go
// DEPENDENCIES: paths
// PURPOSE: Isolate tests from the host environment

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/statbadges/pkg/paths"
)

// EnvStateDir mirrors logging.EnvStateDir without importing the logger.
const EnvStateDir = "STATBADGES_STATE_DIR"

// RunVars are the variables a run reads its identity and filters from.
var RunVars = []string{"ACCESS_TOKEN", "GITHUB_ACTOR", "EXCLUDED", "EXCLUDED_LANGS", "EXCLUDE_FORKED_REPOS"}

// TestEnvironment is an isolated set of statbadges directories.
type TestEnvironment struct {
	Root      string
	WorkDir   string
	ConfigDir string
	DataDir   string
	StateDir  string

	t *testing.T
}

// NewTestEnvironment points every statbadges directory at a fresh temp dir
// and clears the run variables. With chdir set the test also runs inside
// WorkDir.
func NewTestEnvironment(t *testing.T, chdir bool) *TestEnvironment {
	t.Helper()

	root := t.TempDir()
	env := &TestEnvironment{
		Root:      root,
		WorkDir:   filepath.Join(root, "work"),
		ConfigDir: filepath.Join(root, "config"),
		DataDir:   filepath.Join(root, "data"),
		StateDir:  filepath.Join(root, "state"),
		t:         t,
	}
	if err := os.MkdirAll(env.WorkDir, 0755); err != nil {
		t.Fatalf("Failed to create work dir: %v", err)
	}

	t.Setenv(paths.EnvConfigDir, env.ConfigDir)
	t.Setenv(paths.EnvDataDir, env.DataDir)
	t.Setenv(EnvStateDir, env.StateDir)
	for _, name := range RunVars {
		t.Setenv(name, "")
	}

	if chdir {
		t.Chdir(env.WorkDir)
	}
	return env
}

// WriteFile writes content at path, relative paths resolving against WorkDir,
// and returns the absolute path.
func (env *TestEnvironment) WriteFile(path, content string) string {
	env.t.Helper()

	if !filepath.IsAbs(path) {
		path = filepath.Join(env.WorkDir, path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		env.t.Fatalf("Failed to create dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		env.t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

// StorePath is where the snapshot store lives inside the environment.
func (env *TestEnvironment) StorePath() string {
	return filepath.Join(env.DataDir, paths.StoreFileName)
}
