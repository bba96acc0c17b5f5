package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vnkit/vnkit/color"
	"github.com/vnkit/vnkit/style"
	"github.com/vnkit/vnkit/tui"
	"github.com/vnkit/vnkit/vndb"
)

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().BoolP("json", "j", false, "Print the statistics as JSON")
	statsCmd.SetOut(os.Stdout)
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the number of entries in the database",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		var stats *vndb.Stats
		err := tui.Wait(cmd.Context(), "Fetching statistics", func(ctx context.Context) (err error) {
			stats, err = newClient().Stats(ctx)
			return err
		})
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(printJSON(cmd, stats))
			return
		}

		for _, row := range []lo.Tuple2[string, int]{
			{A: "Visual novels", B: stats.VN},
			{A: "Releases", B: stats.Releases},
			{A: "Producers", B: stats.Producers},
			{A: "Characters", B: stats.Chars},
			{A: "Staff", B: stats.Staff},
			{A: "Tags", B: stats.Tags},
			{A: "Traits", B: stats.Traits},
		} {
			cmd.Printf("%s %s\n", style.Faint(fmt.Sprintf("%-14s", row.A)), style.Fg(color.Yellow)(fmt.Sprint(row.B)))
		}
	},
}
