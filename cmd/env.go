package cmd

import (
	"os"

	"github.com/atres-cli/atres/color"
	"github.com/atres-cli/atres/config"
	"github.com/atres-cli/atres/style"
	"github.com/atres-cli/atres/where"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "list only the variables that are set")
	envCmd.Flags().BoolP("unset-only", "u", false, "list only the variables that are unset")

	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
}

type envVar struct {
	name, key string
}

// envVars lists the variables read at startup, sorted by name.
func envVars() []envVar {
	vars := lo.MapToSlice(config.Default, func(k string, f config.Field) envVar {
		return envVar{name: f.Env(), key: k}
	})
	vars = append(vars, envVar{name: where.EnvConfigPath, key: "config path"})

	slices.SortFunc(vars, func(a, b envVar) int {
		switch {
		case a.name < b.name:
			return -1
		case a.name > b.name:
			return 1
		default:
			return 0
		}
	})

	return vars
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "List the environment variables atres reads",
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))

		tw := table.NewWriter()
		tw.SetOutputMirror(cmd.OutOrStdout())
		tw.SetStyle(table.StyleLight)
		tw.AppendHeader(table.Row{"Variable", "Key", "Value"})

		for _, v := range envVars() {
			value, present := os.LookupEnv(v.name)

			if (setOnly && !present) || (unsetOnly && present) {
				continue
			}

			rendered := style.Fg(color.Red)("unset")
			if present {
				rendered = style.Fg(color.Green)(value)
			}

			tw.AppendRow(table.Row{style.Fg(color.Purple)(v.name), style.Faint(v.key), rendered})
		}

		tw.Render()
	},
}
