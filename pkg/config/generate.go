package config

import (
	"bytes"

	"github.com/arthur-debert/statbadges/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

// Defaults returns the settings produced by the embedded defaults alone.
func Defaults() (Settings, error) {
	var s Settings
	if err := toml.Unmarshal(defaultConfig, &s); err != nil {
		return Settings{}, errors.Wrap(err, errors.ErrConfigParse, "failed to parse embedded defaults")
	}
	return s, nil
}

// Encode renders s as a TOML config document that Load accepts.
func Encode(s Settings) (string, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(s); err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode settings")
	}
	return buf.String(), nil
}
