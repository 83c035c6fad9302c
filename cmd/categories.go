package cmd

import (
	"fmt"
	"os"

	"github.com/atres-cli/atres/catalog"
	"github.com/atres-cli/atres/color"
	"github.com/atres-cli/atres/source"
	"github.com/atres-cli/atres/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(categoriesCmd)
	categoriesCmd.Flags().BoolP("tokens", "t", false, "List the navigation tokens of the items")
	categoriesCmd.SetOut(os.Stdout)
}

var categoriesCmd = &cobra.Command{
	Use:     "categories",
	Short:   "List the catalog categories",
	Aliases: []string{"start"},
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		p, err := newCatalog(false).StartPage(cmd.Context())
		handleErr(err)
		renderPage(cmd.OutOrStdout(), p, lo.Must(cmd.Flags().GetBool("tokens")))
	},
}

func init() {
	rootCmd.AddCommand(programsCmd)
	programsCmd.Flags().BoolP("tokens", "t", false, "List the navigation tokens of the items")
	programsCmd.SetOut(os.Stdout)
}

func completionCategories(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return lo.Map(source.Categories(), func(c *source.Category, _ int) string {
		return c.ID
	}), cobra.ShellCompDirectiveNoFileComp
}

var programsCmd = &cobra.Command{
	Use:               "programs [category]",
	Short:             "List the programs of a category",
	Long:              "List the programs of a category, given by id or title. Misspelled names pick the closest category.",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionCategories,
	Run: func(cmd *cobra.Command, args []string) {
		category, exact := catalog.FindCategory(args[0])
		if !exact {
			fmt.Fprintf(os.Stderr, "no category %s, showing %s\n",
				style.Fg(color.Red)(args[0]),
				style.Fg(color.Yellow)(category.Title),
			)
		}

		p, err := newCatalog(false).CategoryPage(cmd.Context(), category)
		handleErr(err)
		renderPage(cmd.OutOrStdout(), p, lo.Must(cmd.Flags().GetBool("tokens")))
	},
}
