package tui

import (
	"strings"

	"github.com/atres-cli/atres/color"
	"github.com/atres-cli/atres/icon"
	"github.com/atres-cli/atres/style"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

func (b *statefulBubble) View() string {
	switch b.state {
	case loadingState:
		return b.viewLoading()
	case searchState:
		return b.viewSearch()
	case pageState:
		return listExtraPaddingStyle.Render(b.pageC.View())
	case videoState:
		return b.viewVideo()
	case errorState:
		return b.viewError()
	default:
		return "Unknown state"
	}
}

func (b *statefulBubble) viewLoading() string {
	return b.renderLines(true, []string{
		style.Title("Loading"),
		"",
		b.spinnerC.View() + " " + b.status,
	})
}

func (b *statefulBubble) viewSearch() string {
	lines := []string{
		style.Title("Search"),
		"",
		b.inputC.View(),
	}

	if suggestion, ok := b.searchSuggestion.Get(); ok && suggestion != b.inputC.Value() {
		lines = append(lines, "", style.Faint(icon.Get(icon.Search)+" "+suggestion))
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewVideo() string {
	lines := []string{
		style.Title("Now Playing"),
		"",
		style.Truncate(b.width)(icon.Get(icon.Video) + " " + style.Fg(color.Purple)(b.video.Title)),
		"",
	}

	for i, src := range b.video.Video.Sources {
		prefix := "  "
		if i == 0 {
			prefix = style.Fg(color.Green)("> ")
		}
		lines = append(lines, style.Truncate(b.width)(prefix+src))
	}

	if b.status != "" {
		lines = append(lines, "", style.Faint(b.status))
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewError() string {
	body := lipgloss.NewStyle().Foreground(style.ErrorColor).Bold(true).Render(b.lastError.Error())
	return b.renderLines(true, []string{
		style.ErrorTitle("Error"),
		"",
		icon.Get(icon.Fail) + " Something went wrong",
		"",
		wrap.String(body, b.width),
	})
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
