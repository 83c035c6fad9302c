package cmd

import (
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(openCmd)
	openCmd.Flags().BoolP("tokens", "t", false, "List the navigation tokens of the items")
	openCmd.Flags().IntP("more", "m", 0, "Number of extra batches to load")
	openCmd.SetOut(os.Stdout)
}

var openCmd = &cobra.Command{
	Use:   "open [token]",
	Short: "Open any navigation token and print its page",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		p, err := newCatalog(true).Open(cmd.Context(), args[0])
		handleErr(err)

		for n := lo.Must(cmd.Flags().GetInt("more")); n > 0 && p.More(); n-- {
			p.Advance()
		}
		if p.Paginator != nil {
			handleErr(p.Paginator.Err())
		}

		switch {
		case p.Video != nil:
			cmd.Println(p.Title)
			for _, src := range p.Video.Sources {
				cmd.Println(src)
			}
		case p.Reason != "":
			cmd.Printf("%s: %s\n", p.Title, p.Reason)
		default:
			renderPage(cmd.OutOrStdout(), p, lo.Must(cmd.Flags().GetBool("tokens")))
		}
	},
}
