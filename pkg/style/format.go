package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// Format is how command output is rendered.
type Format string

const (
	// FormatTerminal uses colours and styling.
	FormatTerminal Format = "terminal"
	// FormatText is plain text for pipes, files and NO_COLOR.
	FormatText Format = "text"
)

// DetectFormat determines the appropriate output format based on environment and terminal capabilities
func DetectFormat(output *os.File) Format {
	// Check if NO_COLOR is set
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}

	// Check if we're being piped or redirected
	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return FormatText
	}

	// Check terminal color support
	if termenv.ColorProfile() == termenv.Ascii {
		return FormatText
	}

	return FormatTerminal
}

// Configure applies format to every renderer the commands print through.
func Configure(format Format) {
	if format == FormatText {
		lipgloss.SetColorProfile(termenv.Ascii)
		pterm.DisableStyling()
		return
	}
	lipgloss.SetColorProfile(termenv.ColorProfile())
	pterm.EnableStyling()
}
