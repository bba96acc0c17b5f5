package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vnkit/vnkit/color"
	"github.com/vnkit/vnkit/icon"
	"github.com/vnkit/vnkit/key"
	"github.com/vnkit/vnkit/query"
	"github.com/vnkit/vnkit/style"
	"github.com/vnkit/vnkit/tui"
	"github.com/vnkit/vnkit/vndb"
)

var labelNames = map[string]query.LabelID{
	"playing":   query.Playing,
	"finished":  query.Finished,
	"stalled":   query.Stalled,
	"dropped":   query.Dropped,
	"wishlist":  query.WishList,
	"blacklist": query.BlackList,
}

// parseLabels accepts built-in label names and numeric label ids.
func parseLabels(values []string) ([]query.LabelID, error) {
	ids := make([]query.LabelID, 0, len(values))
	for _, value := range values {
		value = strings.ToLower(strings.TrimSpace(value))
		if id, ok := labelNames[value]; ok {
			ids = append(ids, id)
			continue
		}

		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return nil, errUnknown("label", value, lo.Keys(labelNames))
		}
		ids = append(ids, query.LabelID(n))
	}

	return ids, nil
}

func userFlag(cmd *cobra.Command) string {
	if user := lo.Must(cmd.Flags().GetString("user")); user != "" {
		return user
	}
	return viper.GetString(key.QueryUser)
}

func init() {
	rootCmd.AddCommand(ulistCmd)
}

var ulistCmd = &cobra.Command{
	Use:   "ulist",
	Short: "Read and change visual novel lists",
}

func init() {
	ulistCmd.AddCommand(ulistGetCmd)
	addQueryFlags(ulistGetCmd)
	ulistGetCmd.Flags().StringP("user", "u", "", "User id. Defaults to query.user, then to the owner of the token")

	lo.Must0(ulistGetCmd.RegisterFlagCompletionFunc("fields", completionFields(func([]string) []string {
		return query.KnownFields[query.UList]()
	})))
	lo.Must0(ulistGetCmd.RegisterFlagCompletionFunc("sort", completionFields(func([]string) []string {
		return sortNames(query.SortFields[query.UList]())
	})))
}

var ulistGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Query a user's visual novel list",
	Example: `  vnkit ulist get --user u2 --filter '["label","=",2]' --fields vote,vn.title --sort vote -r
  vnkit ulist get --all-fields --count`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		user := userFlag(cmd)
		handleErr(runSearch(cmd, newClient().UList, func(b query.QueryBuilder[query.UList]) query.QueryBuilder[query.UList] {
			if user == "" {
				return b
			}
			return b.User(user)
		}))
	},
}

func init() {
	ulistCmd.AddCommand(ulistLabelsCmd)
	ulistLabelsCmd.Flags().StringP("user", "u", "", "User id. Defaults to query.user, then to the owner of the token")
	ulistLabelsCmd.Flags().BoolP("count", "c", false, "Include the number of entries per label")
	addOutputFlag(ulistLabelsCmd)
}

var ulistLabelsCmd = &cobra.Command{
	Use:   "labels",
	Short: "List the labels of a user",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fields := query.NoFields[query.Label]()
		if lo.Must(cmd.Flags().GetBool("count")) {
			fields = query.FieldsOf(query.LabelCount)
		}

		var labels *vndb.UListLabels
		err := tui.Wait(cmd.Context(), "Fetching labels", func(ctx context.Context) (err error) {
			labels, err = newClient().UListLabels(ctx, userFlag(cmd), fields)
			return err
		})
		handleErr(err)
		handleErr(printJSON(cmd, labels))
	},
}

func init() {
	ulistCmd.AddCommand(ulistSetCmd)
	addUListSetFlags(ulistSetCmd)
}

func addUListSetFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.Int("vote", 0, "Vote from 10 to 100")
	flags.String("notes", "", "Notes")
	flags.String("started", "", "Start date as YYYY-MM-DD")
	flags.String("finished", "", "Finish date as YYYY-MM-DD")
	flags.StringSlice("labels", nil, "Replace every label with these")
	flags.StringSlice("add-labels", nil, "Labels to add")
	flags.StringSlice("remove-labels", nil, "Labels to remove")
	cmd.MarkFlagsMutuallyExclusive("labels", "add-labels")
	cmd.MarkFlagsMutuallyExclusive("labels", "remove-labels")

	for _, name := range []string{"labels", "add-labels", "remove-labels"} {
		lo.Must0(cmd.RegisterFlagCompletionFunc(name, completionFields(func([]string) []string {
			return lo.Keys(labelNames)
		})))
	}
}

var ulistSetCmd = &cobra.Command{
	Use:   "set <vn-id>",
	Short: "Add a visual novel to your list or change its entry",
	Long: `Add a visual novel to your list or change its entry.
Only the given flags are changed. Needs a token with the listwrite permission.

Labels are ids or one of: playing, finished, stalled, dropped, wishlist, blacklist.`,
	Example: `  vnkit ulist set v17 --vote 90 --finished 2024-03-02 --add-labels finished --remove-labels playing`,
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		patch, err := ulistPatch(cmd)
		handleErr(err)

		err = tui.Wait(cmd.Context(), "Updating "+args[0], func(ctx context.Context) error {
			return newClient().PatchUList(ctx, args[0], patch)
		})
		handleErr(err)

		fmt.Printf("%s updated %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), style.Fg(color.Purple)(args[0]))
	},
}

// ulistPatch builds a patch from the flags that were given.
func ulistPatch(cmd *cobra.Command) (query.UListPatch, error) {
	var (
		flags   = cmd.Flags()
		builder = query.NewUListPatch()
	)

	if flags.Changed("vote") {
		builder = builder.Vote(lo.Must(flags.GetInt("vote")))
	}
	if flags.Changed("notes") {
		builder = builder.Notes(lo.Must(flags.GetString("notes")))
	}

	if flags.Changed("started") {
		date, err := flagDate(cmd, "started")
		if err != nil {
			return query.UListPatch{}, err
		}
		builder = builder.Started(date)
	}
	if flags.Changed("finished") {
		date, err := flagDate(cmd, "finished")
		if err != nil {
			return query.UListPatch{}, err
		}
		builder = builder.Finished(date)
	}

	if flags.Changed("labels") {
		ids, err := flagLabels(cmd, "labels")
		if err != nil {
			return query.UListPatch{}, err
		}
		builder = builder.Labels(ids...)
	}
	if flags.Changed("add-labels") {
		ids, err := flagLabels(cmd, "add-labels")
		if err != nil {
			return query.UListPatch{}, err
		}
		builder = builder.LabelsSet(ids...)
	}
	if flags.Changed("remove-labels") {
		ids, err := flagLabels(cmd, "remove-labels")
		if err != nil {
			return query.UListPatch{}, err
		}
		builder = builder.LabelsUnset(ids...)
	}

	return builder.Build(), nil
}

func flagDate(cmd *cobra.Command, name string) (query.Date, error) {
	date, err := query.ParseDate(lo.Must(cmd.Flags().GetString(name)))
	if err != nil {
		return date, fmt.Errorf("--%s: %w", name, err)
	}
	return date, nil
}

func flagLabels(cmd *cobra.Command, name string) ([]query.LabelID, error) {
	return parseLabels(lo.Must(cmd.Flags().GetStringSlice(name)))
}

func init() {
	ulistCmd.AddCommand(ulistRemoveCmd)
}

var ulistRemoveCmd = &cobra.Command{
	Use:     "remove <vn-id>",
	Short:   "Remove a visual novel from your list",
	Aliases: []string{"rm"},
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		err := tui.Wait(cmd.Context(), "Removing "+args[0], func(ctx context.Context) error {
			return newClient().RemoveUList(ctx, args[0])
		})
		handleErr(err)

		fmt.Printf("%s removed %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), style.Fg(color.Purple)(args[0]))
	},
}
