package cmd

import (
	"fmt"

	"github.com/atres-cli/atres/filesystem"
	"github.com/atres-cli/atres/icon"
	"github.com/atres-cli/atres/query"
	"github.com/atres-cli/atres/util"
	"github.com/atres-cli/atres/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

// clearTarget is a file or directory the clear command can remove.
type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	remove   func() error
}

func removeAll(location func() string) func() error {
	return func() error { return filesystem.API().RemoveAll(location()) }
}

var clearTargets = []clearTarget{
	{"cache directory", "cache", mo.Some("c"), removeAll(where.Cache)},
	{"queries history", "queries", mo.Some("q"), query.Clear},
	{"logs directory", "logs", mo.Some("l"), removeAll(where.Logs)},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if target.argShort.IsPresent() {
			clearCmd.Flags().BoolP(target.argLong, target.argShort.MustGet(), false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}

	clearCmd.Flags().String("forget", "", "remove a single query from the history")
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove caches, the query history or the logs",
	Run: func(cmd *cobra.Command, args []string) {
		if forget := lo.Must(cmd.Flags().GetString("forget")); forget != "" {
			handleErr(query.Forget(forget))
			fmt.Printf("%s Forgot %q\n", icon.Get(icon.Success), forget)
			return
		}

		var anyCleared bool

		doClear := func(what string) bool {
			return lo.Must(cmd.Flags().GetBool(what))
		}

		for _, target := range clearTargets {
			if doClear(target.argLong) {
				anyCleared = true
				e := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), util.Capitalize(target.name)))
				err := target.remove()
				e()
				handleErr(err)
				fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(target.name))
			}
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}
