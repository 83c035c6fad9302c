// Package cmd implements the atres command line.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/atres-cli/atres/color"
	"github.com/atres-cli/atres/constant"
	"github.com/atres-cli/atres/icon"
	"github.com/atres-cli/atres/key"
	"github.com/atres-cli/atres/log"
	"github.com/atres-cli/atres/network"
	"github.com/atres-cli/atres/open"
	"github.com/atres-cli/atres/page"
	"github.com/atres-cli/atres/style"
	"github.com/atres-cli/atres/tui"
	"github.com/atres-cli/atres/util"
	"github.com/atres-cli/atres/version"
	"github.com/atres-cli/atres/where"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Icons variant")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().Bool("login", true, "Log in when the start page opens")
	lo.Must0(viper.BindPFlag(key.AuthEnable, rootCmd.PersistentFlags().Lookup("login")))

	rootCmd.Flags().StringP("search", "s", "", "Start with a search instead of the start page")
	rootCmd.Flags().String("token", "", "Start at the page of a navigation token")
	rootCmd.MarkFlagsMutuallyExclusive("search", "token")

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify(cmd.Context(), network.Default())
	})

	go func() {
		_ = util.Delete(where.Temp())
	}()
}

var rootCmd = &cobra.Command{
	Use:   constant.Atres,
	Short: "Browse and play the " + constant.Title + " catalog from the terminal",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Browse and play the "+constant.Title+" catalog from the terminal"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		checkPlayer()

		c := newCatalog(false)
		options := tui.Options{
			Start:  lo.Must(cmd.Flags().GetString("token")),
			Search: lo.Must(cmd.Flags().GetString("search")),
			Play: func(p *page.Page) error {
				return open.Play(p.Video)
			},
		}

		handleErr(tui.Run(cmd.Context(), c, &options))
	},
}

// Execute runs the root command until it finishes or the process is interrupted.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		stop()
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
