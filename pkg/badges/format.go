package badges

import (
	"html"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// formatCount renders n with thousands separators, e.g. 1234 -> "1,234".
func formatCount(n int) string {
	return message.NewPrinter(language.English).Sprintf("%d", n)
}

// escapeText makes s safe to embed as SVG/XHTML text content.
func escapeText(s string) string {
	return html.EscapeString(s)
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}
