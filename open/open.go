// Package open hands resolved video sources and pages to external applications.
package open

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/atres-cli/atres/constant"
	"github.com/atres-cli/atres/key"
	"github.com/atres-cli/atres/log"
	"github.com/atres-cli/atres/source"
	"github.com/spf13/viper"
)

// ErrNothingToPlay is returned when a bundle has no source.
var ErrNothingToPlay = errors.New("nothing to play")

// Play opens the preferred source of bundle with the configured player, or the system
// default handler when none is configured. It does not wait for the player to exit.
func Play(bundle *source.VideoBundle) error {
	target := bundle.Preferred()
	if target == "" {
		return ErrNothingToPlay
	}

	app := viper.GetString(key.Player)
	log.Infof("opening %s with %q", target, app)

	cmd, err := Command(target, app)
	if err != nil {
		return err
	}
	return cmd.Start()
}

// URL opens target with the system default handler and waits for the handler to return.
func URL(target string) error {
	cmd, err := Command(target, "")
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Command returns the command opening target with app. An empty app means the system default handler.
func Command(target, app string) (*exec.Cmd, error) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case constant.Windows:
		if app == "" {
			rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
			cmd = exec.Command(rundll, "url.dll,FileProtocolHandler", target)
		} else {
			// start treats & as a command separator
			cmd = exec.Command("cmd", "/C", "start", "", app, strings.ReplaceAll(target, "&", "^&"))
		}
	case constant.Darwin:
		if app == "" {
			cmd = exec.Command("open", target)
		} else {
			cmd = exec.Command("open", "-a", app, target)
		}
	case constant.Linux:
		if app == "" {
			cmd = exec.Command("xdg-open", target)
		} else {
			cmd = exec.Command(app, target)
		}
	case constant.Android:
		if app == "" {
			cmd = exec.Command("termux-open", target)
		} else {
			cmd = exec.Command("termux-open", "--choose", target)
		}
	default:
		return nil, fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}

	return cmd, nil
}
