package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vnkit/vnkit/color"
	"github.com/vnkit/vnkit/icon"
	"github.com/vnkit/vnkit/query"
	"github.com/vnkit/vnkit/style"
	"github.com/vnkit/vnkit/tui"
)

var releaseStatuses = []query.ReleaseStatus{
	query.Unknown,
	query.Pending,
	query.Obtained,
	query.OnLoan,
	query.Deleted,
}

// parseReleaseStatus accepts a status name, with or without spaces, or its number.
func parseReleaseStatus(value string) (query.ReleaseStatus, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(value)), "-", " ")

	for _, status := range releaseStatuses {
		name := status.String()
		if normalized == name || normalized == strings.ReplaceAll(name, " ", "") {
			return status, nil
		}
	}

	if n, err := strconv.Atoi(normalized); err == nil && n >= int(query.Unknown) && n <= int(query.Deleted) {
		return query.ReleaseStatus(n), nil
	}

	names := lo.Map(releaseStatuses, func(s query.ReleaseStatus, _ int) string { return s.String() })
	return query.Unknown, errUnknown("release status", value, names)
}

func init() {
	rootCmd.AddCommand(rlistCmd)
}

var rlistCmd = &cobra.Command{
	Use:   "rlist",
	Short: "Change the releases on your list",
}

func init() {
	rlistCmd.AddCommand(rlistSetCmd)
	rlistSetCmd.Flags().String("status", query.Unknown.String(), "unknown, pending, obtained, on loan or deleted")
	lo.Must0(rlistSetCmd.RegisterFlagCompletionFunc("status", completionFields(func([]string) []string {
		return lo.Map(releaseStatuses, func(s query.ReleaseStatus, _ int) string { return s.String() })
	})))
}

var rlistSetCmd = &cobra.Command{
	Use:     "set <release-id>",
	Short:   "Add a release to your list or change its status",
	Example: `  vnkit rlist set r12 --status obtained`,
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		status, err := parseReleaseStatus(lo.Must(cmd.Flags().GetString("status")))
		handleErr(err)

		err = tui.Wait(cmd.Context(), "Updating "+args[0], func(ctx context.Context) error {
			return newClient().PatchRList(ctx, args[0], query.RListPatch{Status: status})
		})
		handleErr(err)

		fmt.Printf(
			"%s marked %s as %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(args[0]),
			style.Fg(color.Yellow)(status.String()),
		)
	},
}

func init() {
	rlistCmd.AddCommand(rlistRemoveCmd)
}

var rlistRemoveCmd = &cobra.Command{
	Use:     "remove <release-id>",
	Short:   "Remove a release from your list",
	Aliases: []string{"rm"},
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		err := tui.Wait(cmd.Context(), "Removing "+args[0], func(ctx context.Context) error {
			return newClient().RemoveRList(ctx, args[0])
		})
		handleErr(err)

		fmt.Printf("%s removed %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), style.Fg(color.Purple)(args[0]))
	},
}
