package cmd

import (
	"context"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vnkit/vnkit/query"
	"github.com/vnkit/vnkit/tui"
	"github.com/vnkit/vnkit/vndb"
)

func init() {
	rootCmd.AddCommand(userCmd)
	userCmd.Flags().StringSliceP("fields", "F", nil, "Extra fields: "+query.AllFields[query.User]().CSV())
	userCmd.Flags().BoolP("all-fields", "A", false, "Select every field")
	userCmd.MarkFlagsMutuallyExclusive("fields", "all-fields")
	addOutputFlag(userCmd)
}

var userCmd = &cobra.Command{
	Use:     "user <name-or-id>...",
	Short:   "Look up users by name or id",
	Long:    "Look up users by name or id. Users that do not exist are printed as null.",
	Example: `  vnkit user yorhel u2 --all-fields`,
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fields := query.NoFields[query.User]()
		if lo.Must(cmd.Flags().GetBool("all-fields")) {
			fields = query.AllFields[query.User]()
		} else if names := lo.Must(cmd.Flags().GetStringSlice("fields")); len(names) > 0 {
			var unknown []string
			fields, unknown = query.ParseFields[query.User](names)
			if len(unknown) > 0 {
				handleErr(errUnknown("field", unknown[0], query.KnownFields[query.User]()))
			}
		}

		var users vndb.UserSearch
		err := tui.Wait(cmd.Context(), "Looking up users", func(ctx context.Context) (err error) {
			users, err = newClient().Users(ctx, args, fields)
			return err
		})
		handleErr(err)
		handleErr(printJSON(cmd, users))
	},
}
