// Package main is the entry point for the dsakit application.
package main

import (
	"github.com/dsakit/dsakit/cmd"
	"github.com/dsakit/dsakit/config"
	"github.com/dsakit/dsakit/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
