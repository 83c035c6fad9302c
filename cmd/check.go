package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/atres-cli/atres/icon"
	"github.com/atres-cli/atres/key"
	"github.com/atres-cli/atres/style"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
)

// checkPlayer exits when the configured player is not installed.
// An empty player means the system handler, which is always there.
func checkPlayer() {
	player := viper.GetString(key.Player)
	if player == "" {
		return
	}

	if _, err := exec.LookPath(player); err != nil {
		printMissingPlayer(player)
		os.Exit(1)
	}
}

func printMissingPlayer(player string) {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.HiRed).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(style.HiRed).Render(fmt.Sprintf("%s Player not found", icon.Get(icon.Fail)))
	body := style.New().Foreground(style.Text).Render(fmt.Sprintf("The configured player '%s' was not found in your PATH.", player))
	suggestion := fmt.Sprintf(
		"\n\nInstall it, or fall back to the system handler with:\n  %s",
		style.New().Foreground(style.AccentColor).Bold(true).Render(fmt.Sprintf("%s config set %s \"\"", "atres", key.Player)),
	)

	fmt.Println(box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
		),
	))
}
