package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Color definitions using AdaptiveColor for automatic light/dark mode switching
var (
	PrimaryColor = lipgloss.AdaptiveColor{
		Light: "#0969DA", // Blue
		Dark:  "#57A6FF",
	}

	SuccessColor = lipgloss.AdaptiveColor{
		Light: "#1A7F37", // Green
		Dark:  "#4CDD76",
	}

	ErrorColor = lipgloss.AdaptiveColor{
		Light: "#CF222E", // Red
		Dark:  "#FF6B7D",
	}

	WarningColor = lipgloss.AdaptiveColor{
		Light: "#9A6700", // Amber
		Dark:  "#FFD54F",
	}

	HeadingColor = lipgloss.AdaptiveColor{
		Light: "#24292F", // Almost black
		Dark:  "#F0F6FC", // Almost white
	}

	MutedColor = lipgloss.AdaptiveColor{
		Light: "#6E7781", // Medium gray
		Dark:  "#8B949E",
	}
)
