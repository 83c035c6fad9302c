// Package main is the entry point of atres.
package main

import (
	"github.com/atres-cli/atres/cmd"
	"github.com/atres-cli/atres/config"
	"github.com/atres-cli/atres/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
