package cmd

import (
	"fmt"
	"strings"

	"github.com/atres-cli/atres/catalog"
	"github.com/atres-cli/atres/color"
	"github.com/atres-cli/atres/credentials"
	"github.com/atres-cli/atres/icon"
	"github.com/atres-cli/atres/log"
	"github.com/atres-cli/atres/session"
	"github.com/atres-cli/atres/source"
	"github.com/atres-cli/atres/style"
	"github.com/atres-cli/atres/uri"
)

// newCatalog builds the catalog from the configuration.
// An interactive catalog asks for credentials on the terminal when the keyring has none.
func newCatalog(interactive bool) *catalog.Catalog {
	var (
		prompter session.Prompter
		notifier session.Notifier
	)

	if interactive {
		prompter = credentials.NewPrompter()
		notifier = session.NotifierFunc(func(message string) {
			fmt.Printf("%s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), message)
		})
	} else {
		prompter = credentials.NewKeyringPrompter()
		notifier = session.NotifierFunc(func(message string) {
			log.Info(message)
		})
	}

	return catalog.Default(prompter, notifier)
}

// programToken accepts a program token or a program page URL.
func programToken(arg string) (string, error) {
	if strings.HasPrefix(arg, uri.Prefix+":") {
		return arg, nil
	}

	if !isURL(arg) {
		return "", fmt.Errorf("not a program token or url: %s", arg)
	}

	return uri.ProgramURI(&source.Program{URL: arg, Title: arg})
}

// episodeToken accepts an episode token or an episode page URL.
func episodeToken(arg string) (string, error) {
	if strings.HasPrefix(arg, uri.Prefix+":") {
		return arg, nil
	}

	if !isURL(arg) {
		return "", fmt.Errorf("not an episode token or url: %s", arg)
	}

	return uri.EpisodeURI(&source.Episode{URL: arg, Title: arg})
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
