package synthfs

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/arthur-debert/statbadges/pkg/errors"
	"github.com/arthur-debert/statbadges/pkg/logging"
	"github.com/arthur-debert/synthfs/pkg/synthfs"
	"github.com/arthur-debert/synthfs/pkg/synthfs/core"
	"github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
	"github.com/arthur-debert/synthfs/pkg/synthfs/operations"
	"github.com/rs/zerolog"
)

const (
	dirMode  fs.FileMode = 0755
	fileMode fs.FileMode = 0644

	stagingPattern = ".staging-*"
)

// File is one artifact to write, named relative to the writer's directory.
type File struct {
	Name    string
	Content []byte
}

// Writer writes batches of files into a single output directory.
type Writer struct {
	logger zerolog.Logger
	dir    string
	dryRun bool
}

// NewWriter creates a writer targeting dir. The directory is created on the
// first write if it does not exist.
func NewWriter(dir string) *Writer {
	return &Writer{
		logger: logging.GetLogger("synthfs.writer"),
		dir:    dir,
	}
}

// WithDryRun makes the writer log the files it would write instead of writing them.
func (w *Writer) WithDryRun(dryRun bool) *Writer {
	w.dryRun = dryRun
	return w
}

// Dir returns the output directory.
func (w *Writer) Dir() string {
	return w.dir
}

// Write replaces every file in files and returns their destination paths in
// the same order. Existing files are overwritten.
func (w *Writer) Write(ctx context.Context, files []File) ([]string, error) {
	if err := validateNames(files); err != nil {
		return nil, err
	}

	targets := make([]string, len(files))
	for i, f := range files {
		targets[i] = filepath.Join(w.dir, f.Name)
	}

	if w.dryRun {
		for i, f := range files {
			w.logger.Info().
				Str("target", targets[i]).
				Int("contentLen", len(f.Content)).
				Msg("Would write file")
		}
		return targets, nil
	}

	if err := os.MkdirAll(w.dir, dirMode); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirCreate,
			"failed to create output directory %s", w.dir)
	}

	staging, err := os.MkdirTemp(w.dir, stagingPattern)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirCreate,
			"failed to create staging directory in %s", w.dir)
	}
	defer func() {
		if err := os.RemoveAll(staging); err != nil {
			w.logger.Warn().Err(err).Str("staging", staging).Msg("Failed to remove staging directory")
		}
	}()

	if err := w.stage(ctx, staging, files); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for i, f := range files {
		if err := os.Rename(filepath.Join(staging, f.Name), targets[i]); err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileWrite,
				"failed to move %s into place", f.Name).
				WithDetail("target", targets[i])
		}
		w.logger.Debug().Str("target", targets[i]).Msg("File written")
	}

	return targets, nil
}

// stage materialises files inside staging using a synthfs pipeline.
func (w *Writer) stage(ctx context.Context, staging string, files []File) error {
	pipeline := synthfs.NewMemPipeline()
	for _, f := range files {
		opID := core.OperationID(fmt.Sprintf("write-file-%s", f.Name))
		createOp := operations.NewCreateFileOperation(opID, f.Name)
		createOp.SetItem(&fileItem{
			path:    f.Name,
			content: f.Content,
			mode:    fileMode,
		})

		if err := pipeline.Add(synthfs.NewOperationsPackageAdapter(createOp)); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite,
				"failed to add %s to pipeline", f.Name)
		}
	}

	w.logger.Debug().
		Int("operationCount", len(files)).
		Str("staging", staging).
		Msg("Staging files")

	result := synthfs.NewExecutor().Run(ctx, pipeline, filesystem.NewOSFileSystem(staging))
	if result.GetError() != nil {
		return errors.Wrapf(result.GetError(), errors.ErrFileWrite,
			"failed to stage files in %s", staging)
	}
	return nil
}

func validateNames(files []File) error {
	seen := make(map[string]bool, len(files))
	for _, f := range files {
		switch {
		case f.Name == "", f.Name == ".", f.Name == "..":
			return errors.Newf(errors.ErrInvalidInput, "invalid file name %q", f.Name)
		case strings.ContainsAny(f.Name, `/\`):
			return errors.Newf(errors.ErrInvalidInput,
				"file name must not contain a path separator: %s", f.Name)
		case seen[f.Name]:
			return errors.Newf(errors.ErrInvalidInput, "duplicate file name %s", f.Name)
		}
		seen[f.Name] = true
	}
	return nil
}

// fileItem implements the interface needed for file operations
type fileItem struct {
	path    string
	content []byte
	mode    fs.FileMode
}

func (f *fileItem) Path() string       { return f.path }
func (f *fileItem) Type() string       { return "file" }
func (f *fileItem) Content() []byte    { return f.content }
func (f *fileItem) Mode() fs.FileMode  { return f.mode }
func (f *fileItem) IsDir() bool        { return false }
func (f *fileItem) ModTime() time.Time { return time.Now() }
func (f *fileItem) Size() int64        { return int64(len(f.content)) }
