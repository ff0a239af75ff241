package badges

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/arthur-debert/statbadges/pkg/errors"
	"github.com/arthur-debert/statbadges/pkg/logging"
	"github.com/arthur-debert/statbadges/pkg/stats"
)

const (
	// MaxLanguages is how many languages make it into the progress bar.
	MaxLanguages = 10
	// ListedLanguages is how many of those get a labelled row.
	ListedLanguages = 4
	// RowDelay is the animation delay step between rows, in milliseconds.
	RowDelay = 50
	// DefaultColor fills languages the source has no color for.
	DefaultColor = "#000000"
)

const progressFormat = `<span style="background-color: %s;width: %.3f%%;" class="progress-item"></span>`

const rowFormat = `
<li style="animation-delay: %dms;">
<svg xmlns="http://www.w3.org/2000/svg" class="octicon" style="fill:%s;" viewBox="0 0 16 16" version="1.1" width="16" height="16"><path fill-rule="evenodd" d="M8 4a4 4 0 100 8 4 4 0 000-8z"></path></svg>
<span class="lang">%s</span>
<span class="percent">%.2f%%</span>
</li>
`

// LanguagesSource is the part of stats.Source the languages badge reads.
type LanguagesSource interface {
	Languages(ctx context.Context) (map[string]stats.LanguageStat, error)
}

// Language is a named language entry.
type Language struct {
	Name string
	stats.LanguageStat
}

// FillColor returns the language color, or DefaultColor when it is unknown.
func (l Language) FillColor() string {
	if l.Color == "" {
		return DefaultColor
	}
	return l.Color
}

// Languages renders and writes the languages badge.
func (r *Renderer) Languages(ctx context.Context, src LanguagesSource) (Result, error) {
	done := logging.LogOperationStart(r.logger, "render-languages")
	defer done()

	langs, err := src.Languages(ctx)
	if err != nil {
		return Result{}, errors.Wrap(err, errors.ErrSourceFetch, "failed to fetch languages").
			WithDetail("field", "languages")
	}
	return r.render(ctx, Languages, LanguageValues(langs))
}

// TopLanguages orders langs by size, largest first, and keeps at most n.
// Equal sizes are ordered by name so the result does not depend on map order.
func TopLanguages(langs map[string]stats.LanguageStat, n int) []Language {
	sorted := make([]Language, 0, len(langs))
	for name, stat := range langs {
		sorted = append(sorted, Language{Name: name, LanguageStat: stat})
	}

	slices.SortStableFunc(sorted, func(a, b Language) int {
		if c := cmp.Compare(b.Size, a.Size); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// LanguageValues builds the "progress" and "lang_list" template values.
func LanguageValues(langs map[string]stats.LanguageStat) map[string]string {
	top := TopLanguages(langs, MaxLanguages)

	var progress, list strings.Builder
	for i, lang := range top {
		progress.WriteString(ProgressSegment(lang))
		if i < ListedLanguages {
			list.WriteString(ListRow(i, lang))
		}
	}

	return map[string]string{
		"progress":  progress.String(),
		"lang_list": list.String(),
	}
}

// ProgressSegment renders one colored segment of the progress bar.
func ProgressSegment(lang Language) string {
	return fmt.Sprintf(progressFormat, escapeText(lang.FillColor()), lang.ProportionOrZero())
}

// ListRow renders the labelled row for the language at 0-based position i.
func ListRow(i int, lang Language) string {
	return fmt.Sprintf(rowFormat, i*RowDelay, escapeText(lang.FillColor()), escapeText(lang.Name), lang.ProportionOrZero())
}
