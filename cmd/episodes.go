package cmd

import (
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(episodesCmd)
	episodesCmd.Flags().BoolP("tokens", "t", false, "List the navigation tokens of the items")
	episodesCmd.Flags().BoolP("all", "a", false, "Load every season")
	episodesCmd.Flags().IntP("seasons", "n", 1, "Number of seasons to load")
	episodesCmd.MarkFlagsMutuallyExclusive("all", "seasons")
	episodesCmd.SetOut(os.Stdout)
}

var episodesCmd = &cobra.Command{
	Use:   "episodes [program-token|program-url]",
	Short: "List the episodes of a program, season by season",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		token, err := programToken(args[0])
		handleErr(err)

		p, err := newCatalog(false).Open(cmd.Context(), token)
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("all")) {
			for p.More() {
				p.Advance()
			}
		} else {
			// the page opens with the first season loaded
			for n := lo.Must(cmd.Flags().GetInt("seasons")); n > 1 && p.More(); n-- {
				p.Advance()
			}
		}

		if p.Paginator != nil {
			handleErr(p.Paginator.Err())
		}

		renderPage(cmd.OutOrStdout(), p, lo.Must(cmd.Flags().GetBool("tokens")))
	},
}
