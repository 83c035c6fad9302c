package cmd

import (
	"github.com/atres-cli/atres/mini"
	"github.com/atres-cli/atres/open"
	"github.com/atres-cli/atres/page"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(browseCmd)
	browseCmd.Flags().BoolP("search", "s", false, "Start with a search")
	browseCmd.Flags().String("token", "", "Start at the page of a navigation token")
}

var browseCmd = &cobra.Command{
	Use:     "browse",
	Short:   "Browse the catalog with terminal prompts",
	Aliases: []string{"mini"},
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		checkPlayer()

		handleErr(mini.Run(cmd.Context(), &mini.Options{
			Navigator: newCatalog(true),
			Start:     lo.Must(cmd.Flags().GetString("token")),
			Search:    lo.Must(cmd.Flags().GetBool("search")),
			Play: func(p *page.Page) error {
				return open.Play(p.Video)
			},
			OpenURL: open.URL,
		}))
	},
}
