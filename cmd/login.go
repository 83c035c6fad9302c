package cmd

import (
	"errors"
	"fmt"

	"github.com/atres-cli/atres/color"
	"github.com/atres-cli/atres/credentials"
	"github.com/atres-cli/atres/icon"
	"github.com/atres-cli/atres/session"
	"github.com/atres-cli/atres/style"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(loginCmd)
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and keep the credentials in the system keyring",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		sessions := newCatalog(true).Sessions()
		s, err := sessions.Ensure(cmd.Context(), session.DefaultReason)
		handleErr(err)

		if s.IsAbsent() {
			handleErr(errors.New("login abandoned"))
		}

		// a prompted login was already announced by the notifier
		if sessions.Prompts() == 0 {
			fmt.Printf("%s logged in as %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), s.MustGet().Username)
		}
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored credentials from the system keyring",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(credentials.Delete())
		fmt.Printf("%s credentials removed\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}
