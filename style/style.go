// Package style renders strings with lipgloss for the CLI and the full screen browser.
package style

import (
	"github.com/atres-cli/atres/color"
	"github.com/charmbracelet/lipgloss"
)

func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Fg returns a renderer coloring its input with c.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return New().Foreground(c).Render(s) }
}

// Truncate returns a renderer fitting its input in max columns.
func Truncate(max int) func(string) string {
	return func(s string) string { return New().Width(max).MaxHeight(1).Render(s) }
}

var (
	Faint = func(s string) string { return New().Faint(true).Render(s) }
	Bold  = func(s string) string { return New().Bold(true).Render(s) }
)

// Title renders a heading as a padded badge.
var Title = func(s string) string {
	return New().Foreground(color.New("230")).Background(color.New("62")).Padding(0, 1).Render(s)
}

// ErrorTitle is Title on a red badge.
var ErrorTitle = func(s string) string {
	return New().Foreground(color.New("230")).Background(color.Red).Padding(0, 1).Render(s)
}
