// Package report builds a human readable summary of a statistics source, the
// same figures the badges show, as markdown for the terminal.
package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/arthur-debert/statbadges/pkg/badges"
	"github.com/arthur-debert/statbadges/pkg/errors"
	"github.com/arthur-debert/statbadges/pkg/stats"
	"github.com/charmbracelet/glamour"
)

// Markdown renders the overview figures and the language ranking of src.
func Markdown(ctx context.Context, src stats.Source) (string, error) {
	overview, err := badges.OverviewValues(ctx, src)
	if err != nil {
		return "", err
	}
	langs, err := src.Languages(ctx)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrSourceFetch, "failed to fetch languages").
			WithDetail("field", "languages")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", overview["name"])

	b.WriteString("| Statistic | Value |\n|---|---:|\n")
	for _, row := range [][2]string{
		{"Stars", overview["stars"]},
		{"Forks", overview["forks"]},
		{"Contributions", overview["contributions"]},
		{"Lines of code changed", overview["lines_changed"]},
		{"Repository views", overview["views"]},
		{"Repositories", overview["repos"]},
	} {
		fmt.Fprintf(&b, "| %s | %s |\n", row[0], row[1])
	}

	b.WriteString("\n## Languages\n\n")
	top := badges.TopLanguages(langs, badges.MaxLanguages)
	if len(top) == 0 {
		b.WriteString("_No language data._\n")
		return b.String(), nil
	}
	b.WriteString("| Language | Share |\n|---|---:|\n")
	for _, lang := range top {
		fmt.Fprintf(&b, "| %s | %.2f%% |\n", escapeCell(lang.Name), lang.ProportionOrZero())
	}
	return b.String(), nil
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// Render converts markdown to styled terminal output. Width 0 keeps
// glamour's default wrapping. On any rendering error md is returned as is.
func Render(md string, width int, styled bool) string {
	var options []glamour.TermRendererOption
	if styled {
		options = append(options, glamour.WithAutoStyle())
	} else {
		options = append(options, glamour.WithStandardStyle("notty"))
	}
	if width > 0 {
		options = append(options, glamour.WithWordWrap(width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return md
	}

	rendered, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return rendered
}
