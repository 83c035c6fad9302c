package version

import (
	"context"
	"fmt"
	"time"

	"github.com/atres-cli/atres/color"
	"github.com/atres-cli/atres/constant"
	"github.com/atres-cli/atres/icon"
	"github.com/atres-cli/atres/key"
	"github.com/atres-cli/atres/log"
	"github.com/atres-cli/atres/network"
	"github.com/atres-cli/atres/style"
	"github.com/atres-cli/atres/util"
	"github.com/spf13/viper"
)

// Notify prints a notice when a newer version is available and the check is enabled.
func Notify(ctx context.Context, fetcher network.Fetcher) {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	erase := util.PrintErasable(fmt.Sprintf("%s Checking if new version is available...", icon.Get(icon.Progress)))
	latest, err := Latest(ctx, fetcher)
	erase()
	if err != nil {
		log.Warnf("version check: %s", err)
		return
	}

	if comp, err := Compare(latest, constant.Version); err != nil || comp <= 0 {
		return
	}

	fmt.Printf(`
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint("https://github.com/atres-cli/atres/releases/tag/v"+latest),
	)
}
