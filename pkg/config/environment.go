package config

import (
	"strings"

	"github.com/arthur-debert/statbadges/pkg/errors"
	"github.com/arthur-debert/statbadges/pkg/stats"
	"github.com/caarlos0/env/v11"
)

// Environment is the run's identity and filtering, read from the process
// environment once at startup.
type Environment struct {
	AccessToken        string `env:"ACCESS_TOKEN"`
	User               string `env:"GITHUB_ACTOR"`
	ExcludedRepos      string `env:"EXCLUDED"`
	ExcludedLangs      string `env:"EXCLUDED_LANGS"`
	ExcludeForkedRepos string `env:"EXCLUDE_FORKED_REPOS"`
}

// LoadEnvironment parses the process environment.
func LoadEnvironment() (Environment, error) {
	var e Environment
	if err := env.Parse(&e); err != nil {
		return Environment{}, errors.Wrap(err, errors.ErrConfigParse, "failed to parse environment")
	}
	return e, nil
}

// LoadEnvironmentFrom parses vars instead of the process environment.
func LoadEnvironmentFrom(vars map[string]string) (Environment, error) {
	var e Environment
	if err := env.ParseWithOptions(&e, env.Options{Environment: vars}); err != nil {
		return Environment{}, errors.Wrap(err, errors.ErrConfigParse, "failed to parse environment")
	}
	return e, nil
}

// Options converts the environment into statistics source options.
func (e Environment) Options() stats.Options {
	return stats.Options{
		User:              e.User,
		Token:             e.AccessToken,
		ExcludeRepos:      ParseList(e.ExcludedRepos),
		ExcludeLangs:      ParseList(e.ExcludedLangs),
		IgnoreForkedRepos: ParseTruthy(e.ExcludeForkedRepos),
	}
}

// ParseList splits a comma-separated list into a set of trimmed names.
// Empty input, or input holding only separators and blanks, yields nil
// ("no exclusions").
func ParseList(s string) stats.Set {
	var names []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			names = append(names, item)
		}
	}
	return stats.NewSet(names...)
}

// ParseTruthy is true for any non-empty value except "false" in any case.
func ParseTruthy(s string) bool {
	return s != "" && !strings.EqualFold(strings.TrimSpace(s), "false")
}
