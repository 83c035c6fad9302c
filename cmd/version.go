package cmd

import (
	"encoding/json"
	"os"
	"runtime"
	"strings"
	"text/template"

	"github.com/atres-cli/atres/color"
	"github.com/atres-cli/atres/constant"
	"github.com/atres-cli/atres/key"
	"github.com/atres-cli/atres/network"
	"github.com/atres-cli/atres/style"
	"github.com/atres-cli/atres/version"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "print the version only")
	versionCmd.Flags().BoolP("json", "j", false, "print build metadata as json")
}

type buildInfo struct {
	App      string `json:"app"`
	Version  string `json:"version"`
	Revision string `json:"revision"`
	BuiltAt  string `json:"built_at"`
	BuiltBy  string `json:"built_by"`
	Go       string `json:"go"`
	Platform string `json:"platform"`
	Catalog  string `json:"catalog"`
	Resolver string `json:"resolver"`
}

func currentBuild() buildInfo {
	return buildInfo{
		App:      constant.Atres,
		Version:  constant.Version,
		Revision: constant.Revision,
		BuiltAt:  strings.TrimSpace(constant.BuiltAt),
		BuiltBy:  constant.BuiltBy,
		Go:       runtime.Version(),
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
		Catalog:  viper.GetString(key.CatalogBaseURL),
		Resolver: viper.GetString(key.CatalogResolverURL),
	}
}

var versionTemplate = template.Must(template.New("version").Funcs(template.FuncMap{
	"faint":  style.Faint,
	"bold":   style.Bold,
	"accent": style.Fg(color.Purple),
}).Parse(`{{ accent "▇▇▇" }} {{ accent .App }} {{ faint "for" }} {{ .Catalog }}

  {{ faint "Version " }}  {{ bold .Version }}
  {{ faint "Revision" }}  {{ bold .Revision }}
  {{ faint "Built   " }}  {{ bold .BuiltAt }} {{ faint "by" }} {{ bold .BuiltBy }}
  {{ faint "Runtime " }}  {{ bold .Go }} {{ faint "on" }} {{ bold .Platform }}
  {{ faint "Resolver" }}  {{ .Resolver }}
`))

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and build metadata",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		info := currentBuild()

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(info))
			return
		}

		defer version.Notify(cmd.Context(), network.Default())
		handleErr(versionTemplate.Execute(cmd.OutOrStdout(), info))
	},
}
