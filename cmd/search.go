package cmd

import (
	"os"
	"strings"

	"github.com/atres-cli/atres/key"
	"github.com/atres-cli/atres/log"
	"github.com/atres-cli/atres/query"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().BoolP("tokens", "t", false, "List the navigation tokens of the items")
	searchCmd.Flags().IntP("pages", "p", 1, "Number of result pages to load")
	lo.Must0(viper.BindPFlag(key.SearchPages, searchCmd.Flags().Lookup("pages")))
	searchCmd.SetOut(os.Stdout)
}

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the catalog",
	Args:  cobra.MinimumNArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		q := strings.Join(args, " ")
		if err := query.Remember(q, 1); err != nil {
			log.Warnf("remember query: %s", err)
		}

		p, err := newCatalog(false).SearchPage(cmd.Context(), q)
		handleErr(err)

		for n := viper.GetInt(key.SearchPages); n > 1 && p.More(); n-- {
			p.Advance()
		}
		handleErr(p.Paginator.Err())

		renderPage(cmd.OutOrStdout(), p, lo.Must(cmd.Flags().GetBool("tokens")))
	},
}
