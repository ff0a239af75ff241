package stats

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/statbadges/pkg/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Snapshot is a point-in-time capture of a user's activity, as produced by an
// external collector and fed to statbadges as a file or from the store.
type Snapshot struct {
	User          string `json:"user" yaml:"user" toml:"user"`
	Name          string `json:"name" yaml:"name" toml:"name"`
	Contributions int    `json:"contributions" yaml:"contributions" toml:"contributions"`
	LinesChanged  []int  `json:"lines_changed" yaml:"lines_changed" toml:"lines_changed"`
	Views         int    `json:"views" yaml:"views" toml:"views"`
	Repos         []Repo `json:"repos" yaml:"repos" toml:"repos"`
}

// Repo is one repository in a snapshot.
type Repo struct {
	Name       string                  `json:"name" yaml:"name" toml:"name"`
	Fork       bool                    `json:"fork" yaml:"fork" toml:"fork"`
	Stargazers int                     `json:"stargazers" yaml:"stargazers" toml:"stargazers"`
	Forks      int                     `json:"forks" yaml:"forks" toml:"forks"`
	Languages  map[string]RepoLanguage `json:"languages" yaml:"languages" toml:"languages"`
}

// RepoLanguage is the size and color of one language inside a repository.
type RepoLanguage struct {
	Size  int64  `json:"size" yaml:"size" toml:"size"`
	Color string `json:"color,omitempty" yaml:"color,omitempty" toml:"color,omitempty"`
}

// Format is a snapshot document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath infers the snapshot format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unsupported snapshot format: %s", path).
			WithDetail("path", path)
	}
}

// LoadSnapshot reads and decodes the snapshot file at path.
func LoadSnapshot(path string) (Snapshot, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Snapshot{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, errors.Wrapf(err, errors.ErrNotFound, "cannot read snapshot %s", path)
	}

	snap, err := DecodeSnapshot(data, format)
	if err != nil {
		return Snapshot{}, errors.Wrapf(err, errors.ErrSnapshotParse, "cannot parse snapshot %s", path).
			WithDetail("format", string(format))
	}
	return snap, nil
}

// DecodeSnapshot decodes data in the given format.
func DecodeSnapshot(data []byte, format Format) (Snapshot, error) {
	var snap Snapshot
	var err error
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&snap)
	case FormatYAML:
		err = yaml.Unmarshal(data, &snap)
	case FormatTOML:
		err = toml.Unmarshal(data, &snap)
	default:
		return Snapshot{}, errors.Newf(errors.ErrInvalidInput, "unsupported snapshot format: %s", format)
	}
	if err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// EncodeJSON encodes the snapshot as compact JSON, the form kept in the store.
func (s Snapshot) EncodeJSON() ([]byte, error) {
	return json.Marshal(s)
}
