package cmd

import (
	"os"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/vnkit/vnkit/color"
	"github.com/vnkit/vnkit/style"
	"github.com/vnkit/vnkit/where"
)

type whereTarget struct {
	name     string
	where    func() string
	argLong  string
	argShort mo.Option[string]
}

var wherePaths = []whereTarget{
	{"Config", where.Config, "config", mo.Some("c")},
	{"Config file", where.ConfigFile, "config-file", mo.Some("f")},
	{"Logs", where.Logs, "logs", mo.Some("l")},
	{"Cache", where.Cache, "cache", mo.None[string]()},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, t := range wherePaths {
		if short, ok := t.argShort.Get(); ok {
			whereCmd.Flags().BoolP(t.argLong, short, false, t.name+" path")
		} else {
			whereCmd.Flags().Bool(t.argLong, false, t.name+" path")
		}
	}

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(wherePaths, func(t whereTarget, _ int) string {
		return t.argLong
	})...)

	whereCmd.SetOut(os.Stdout)
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show the paths used for configuration, logs and cache",
	Run: func(cmd *cobra.Command, args []string) {
		headerStyle := style.New().Bold(true).Foreground(color.Purple).Render

		for _, t := range wherePaths {
			if lo.Must(cmd.Flags().GetBool(t.argLong)) {
				cmd.Println(t.where())
				return
			}
		}

		for i, t := range wherePaths {
			cmd.Printf("%s %s\n", headerStyle(t.name+"?"), style.Fg(color.Yellow)("--"+t.argLong))
			cmd.Println(t.where())

			if i < len(wherePaths)-1 {
				cmd.Println()
			}
		}
	},
}
