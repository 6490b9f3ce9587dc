// Package style holds the colors and icons shared by the logger and the
// summary renderer.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Thread = lipgloss.Color("#7C3AED")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
)

// Header renders table headers in the summary.
var Header = lipgloss.NewStyle().Bold(true).Foreground(Thread)

// Muted renders secondary text.
var Muted = lipgloss.NewStyle().Foreground(Slate)
