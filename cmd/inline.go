package cmd

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/atres-cli/atres/filesystem"
	"github.com/atres-cli/atres/inline"
	"github.com/atres-cli/atres/query"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().StringP("token", "T", "", "Navigation token of the page to print")
	inlineCmd.Flags().StringP("query", "q", "", "Search query whose results to print")
	inlineCmd.MarkFlagsMutuallyExclusive("token", "query")
	inlineCmd.Flags().StringP("items", "i", "", "Criteria for selecting items of the page")
	inlineCmd.Flags().IntP("batches", "b", 0, "Number of extra batches to load, -1 for all")
	inlineCmd.Flags().BoolP("json", "j", false, "Format the output as json")
	inlineCmd.Flags().BoolP("include-videos", "V", false, "Resolve the video sources of the selected episodes")
	inlineCmd.Flags().StringP("output", "o", "", "Write the output to a file")
	inlineCmd.Flags().Bool("schema", false, "Print the json schema of the output and exit")

	_ = inlineCmd.RegisterFlagCompletionFunc("query", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
}

var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Print a page without interaction, for scripts",
	Long: `Open a page by token or search query and print it, without any interaction.

Item selectors:
  all - every item
  first - first item of the page
  last - last item of the page
  videos - the episodes
  directories - the categories and programs
  [number] - item by index (starting from 0)
  [from]-[to] - items by range, inclusive
  @[substring]@ - items whose title contains substring

Credentials are only read from the keyring; run "atres login" first to resolve videos.`,
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("schema")) {
			handleErr(json.NewEncoder(os.Stdout).Encode(inlineSchema()))
			return
		}

		var (
			token = lo.Must(cmd.Flags().GetString("token"))
			q     = lo.Must(cmd.Flags().GetString("query"))
		)

		if token == "" && q == "" {
			handleErr(errors.New("either --token or --query is required"))
		}

		var writer io.Writer = os.Stdout
		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			file, err := filesystem.API().Create(output)
			handleErr(err)
			defer file.Close()
			writer = file
		}

		filter := mo.None[inline.ItemsFilter]()
		if items := lo.Must(cmd.Flags().GetString("items")); items != "" {
			fn, err := inline.ParseItemsFilter(items)
			handleErr(err)
			filter = mo.Some(fn)
		}

		if q != "" {
			if err := query.Remember(q, 1); err != nil {
				handleErr(err)
			}
		}

		handleErr(inline.Run(cmd.Context(), &inline.Options{
			Out:         writer,
			Navigator:   newCatalog(false),
			Token:       token,
			Query:       q,
			Batches:     lo.Must(cmd.Flags().GetInt("batches")),
			ItemsFilter: filter,
			Videos:      lo.Must(cmd.Flags().GetBool("include-videos")),
			Json:        lo.Must(cmd.Flags().GetBool("json")),
		}))
	},
}

func inlineSchema() *jsonschema.Schema {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.Namer = func(t reflect.Type) string {
		name := t.Name()
		switch strings.ToLower(name) {
		case "item", "entry", "output", "metadata":
			return t.PkgPath()[strings.LastIndex(t.PkgPath(), "/")+1:] + "." + name
		}

		return name
	}

	return reflector.Reflect(&inline.Output{})
}
