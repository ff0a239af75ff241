package style

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/arthur-debert/statbadges/pkg/errors"
	"github.com/pterm/pterm"
)

// BadgeFiles is one row of the generate summary.
type BadgeFiles struct {
	Badge string
	Files []string
}

// RenderGenerated renders the files written by a generate run as a table.
func RenderGenerated(rows []BadgeFiles, dryRun bool) string {
	if len(rows) == 0 {
		return MutedStyle.Render("No badges rendered")
	}

	title := SuccessStyle.Render(SuccessIndicator + " Badges generated")
	if dryRun {
		title = WarningStyle.Render(PendingIndicator + " Dry run, nothing was written")
	}

	data := pterm.TableData{{"Badge", "File"}}
	for _, row := range rows {
		for i, file := range row.Files {
			badge := ""
			if i == 0 {
				badge = row.Badge
			}
			data = append(data, []string{badge, file})
		}
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		// Fall back to a plain list
		var b strings.Builder
		for _, row := range rows {
			for _, file := range row.Files {
				fmt.Fprintf(&b, "%s\t%s\n", row.Badge, file)
			}
		}
		table = strings.TrimRight(b.String(), "\n")
	}

	return title + "\n\n" + table
}

// SnapshotRow is one line of the snapshot history.
type SnapshotRow struct {
	ID      int64
	User    string
	TakenAt time.Time
}

// RenderSnapshots renders stored snapshot summaries, newest first as given.
func RenderSnapshots(rows []SnapshotRow) string {
	if len(rows) == 0 {
		return MutedStyle.Render("No snapshots stored")
	}

	data := pterm.TableData{{"ID", "User", "Taken at"}}
	for _, row := range rows {
		data = append(data, []string{
			fmt.Sprintf("%d", row.ID),
			row.User,
			row.TakenAt.UTC().Format(time.RFC3339),
		})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Sprintf("%d snapshots", len(rows))
	}
	return table
}

// RenderError renders err with its code and details, one detail per line.
func RenderError(err error) string {
	if err == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(ErrorStyle.Render(ErrorIndicator + " " + err.Error()))

	details := errors.GetErrorDetails(err)
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString("\n")
		b.WriteString(Indent(MutedStyle.Render(fmt.Sprintf("%s: %v", k, details[k])), 1))
	}
	return b.String()
}
