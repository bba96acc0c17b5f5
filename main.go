// Package main is the entry point of vnkit.
package main

import (
	"github.com/samber/lo"
	"github.com/vnkit/vnkit/cmd"
	"github.com/vnkit/vnkit/config"
	"github.com/vnkit/vnkit/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
