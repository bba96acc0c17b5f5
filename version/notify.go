// Package version provides unified mechanisms for application version tracking, update discovery, and compatibility validation.
package version

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/viper"
	"github.com/vnkit/vnkit/color"
	"github.com/vnkit/vnkit/constant"
	"github.com/vnkit/vnkit/icon"
	"github.com/vnkit/vnkit/key"
	"github.com/vnkit/vnkit/style"
	"github.com/vnkit/vnkit/util"
)

// Notify displays a terminal alert if a more recent stable application version is available.
func Notify(ctx context.Context) {
	if !viper.GetBool(key.CliVersionCheck) || !util.IsTerminal() {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	erase := util.PrintErasable(fmt.Sprintf("%s Checking if new version is available...", icon.Get(icon.Progress)))
	version, err := Latest(ctx)
	erase()
	if err != nil {
		return
	}

	if comp, err := Compare(version, constant.Version); err != nil || comp <= 0 {
		return
	}

	fmt.Printf(`
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(version),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint("https://github.com/"+constant.Repository+"/releases/tag/v"+version),
	)
}
