package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/statbadges/pkg/errors"
	"github.com/arthur-debert/statbadges/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every settings environment variable.
const EnvPrefix = "STATBADGES_"

// Settings is the resolved runtime configuration.
type Settings struct {
	Output    OutputSettings    `koanf:"output" toml:"output"`
	Templates TemplatesSettings `koanf:"templates" toml:"templates"`
	Source    SourceSettings    `koanf:"source" toml:"source"`
	Store     StoreSettings     `koanf:"store" toml:"store"`
	Server    ServerSettings    `koanf:"server" toml:"server"`

	// File is the config file that was loaded, empty when none was.
	File string `koanf:"-" toml:"-"`
}

type OutputSettings struct {
	Dir      string `koanf:"dir" toml:"dir"`
	Validate bool   `koanf:"validate" toml:"validate"`
}

type TemplatesSettings struct {
	Dir string `koanf:"dir" toml:"dir"`
}

type SourceSettings struct {
	Snapshot string `koanf:"snapshot" toml:"snapshot"`
}

type StoreSettings struct {
	Path string `koanf:"path" toml:"path"`
}

type ServerSettings struct {
	Addr string `koanf:"addr" toml:"addr"`
}

// LoadOptions controls where settings are read from.
type LoadOptions struct {
	// ConfigFile is an explicit config file; it must exist when set.
	ConfigFile string
	// WorkDir is searched for statbadges.{toml,yaml,yml}. Empty means the
	// current directory.
	WorkDir string
	// Overrides are applied last, keyed by dotted path ("output.dir").
	Overrides map[string]interface{}
}

// Load resolves settings from defaults, config file, environment and overrides.
func Load(opts LoadOptions) (*Settings, error) {
	k := koanf.New(".")

	// 1. Load embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Load config file if one is given or found
	configFile, err := resolveConfigFile(opts)
	if err != nil {
		return nil, err
	}
	if configFile != "" {
		parser, err := parserFor(configFile)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(configFile), parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", configFile).
				WithDetail("path", configFile)
		}
	}

	// 3. Load env vars
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Apply overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var s Settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &s,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &s, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	s.File = configFile
	if s.Store.Path == "" {
		s.Store.Path = paths.StorePath()
	}
	return &s, nil
}

// envKey maps STATBADGES_OUTPUT_DIR to output.dir. Only the first underscore
// separates section and key, so keys may themselves contain underscores.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}

func resolveConfigFile(opts LoadOptions) (string, error) {
	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not readable", opts.ConfigFile).
				WithDetail("path", opts.ConfigFile)
		}
		return opts.ConfigFile, nil
	}

	workDir := opts.WorkDir
	if workDir == "" {
		workDir = "."
	}
	return paths.FindConfigFile(workDir), nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigParse, "unsupported config file type: %s", path).
			WithDetail("path", path)
	}
}
