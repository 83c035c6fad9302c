package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/atres-cli/atres/color"
	"github.com/atres-cli/atres/icon"
	"github.com/atres-cli/atres/open"
	"github.com/atres-cli/atres/page"
	"github.com/atres-cli/atres/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// openVideo opens an episode page, asking for credentials when needed.
// An unavailable episode is an error here.
func openVideo(ctx context.Context, arg string) (*page.Page, error) {
	token, err := episodeToken(arg)
	if err != nil {
		return nil, err
	}

	p, err := newCatalog(true).Open(ctx, token)
	if err != nil {
		return nil, err
	}

	switch p.Type {
	case page.Video:
		return p, nil
	case page.Unavailable:
		return nil, fmt.Errorf("%s: %s", p.Title, p.Reason)
	default:
		return nil, errors.New("not an episode: " + arg)
	}
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().BoolP("json", "j", false, "Print the video bundle as json")
	resolveCmd.SetOut(os.Stdout)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve [episode-token|episode-url]",
	Short: "Print the video sources of an episode",
	Long:  "Print the video sources of an episode, preferred first. Resolving requires a session.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		p, err := openVideo(cmd.Context(), args[0])
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(p.Video))
			return
		}

		for _, src := range p.Video.Sources {
			cmd.Println(src)
		}
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().BoolP("browser", "b", false, "Open the episode source in the browser instead of the player")
}

var playCmd = &cobra.Command{
	Use:   "play [episode-token|episode-url]",
	Short: "Open the preferred video source of an episode",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		browser := lo.Must(cmd.Flags().GetBool("browser"))
		if !browser {
			checkPlayer()
		}

		p, err := openVideo(cmd.Context(), args[0])
		handleErr(err)

		if browser {
			handleErr(open.URL(p.Video.Preferred()))
		} else {
			handleErr(open.Play(p.Video))
		}

		fmt.Printf("%s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), p.Title)
	},
}
