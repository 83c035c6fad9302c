package style

import "github.com/charmbracelet/lipgloss"

// Palette of the full screen browser.
var (
	Base    = lipgloss.Color("#1e1e2e")
	Text    = lipgloss.Color("#cdd6f4")
	Subtext = lipgloss.Color("#a6adc8")

	Mauve = lipgloss.Color("#cba6f7")
	Red   = lipgloss.Color("#f38ba8")
	Peach = lipgloss.Color("#fab387")

	AccentColor = Mauve
	ErrorColor  = Red
	HiRed       = Red
)
