package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/vnkit/vnkit/key"
	"github.com/vnkit/vnkit/log"
	"github.com/vnkit/vnkit/query"
	"github.com/vnkit/vnkit/style"
	"github.com/vnkit/vnkit/tui"
	"github.com/vnkit/vnkit/util"
)

// addQueryFlags registers the flags shared by every command that sends a query.
func addQueryFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringP("filter", "f", "", "Filter as a JSON array, or a compact filter string")
	flags.StringP("search", "s", "", "Search text. Combined with --filter using \"and\"")
	flags.StringSliceP("fields", "F", nil, "Fields to select, comma separated")
	flags.BoolP("all-fields", "A", false, "Select every field of the resource")
	flags.String("sort", string(query.SortID), "Field to sort on")
	flags.BoolP("reverse", "r", false, "Sort in descending order")
	flags.IntP("results", "n", 0, "Results per page, from 0 to 100. Defaults to query.results")
	flags.IntP("page", "p", 1, "Page number, starting at 1")
	flags.BoolP("count", "c", false, "Include the total number of matches")
	flags.Bool("compact-filters", false, "Include the compact form of the filter")
	flags.Bool("normalized-filters", false, "Include the normalized form of the filter")
	addOutputFlag(cmd)

	cmd.MarkFlagsMutuallyExclusive("fields", "all-fields")
}

// queryBuilder turns the query flags into a builder for R.
// With cli.strict set, unknown field names and sort fields the resource can not use are errors.
func queryBuilder[R query.Resource](flags *pflag.FlagSet) (query.QueryBuilder[R], error) {
	var (
		builder = query.New[R]()
		strict  = viper.GetBool(key.CliStrict)
	)

	filter, err := flagFilter(flags)
	if err != nil {
		return builder, err
	}
	if filter != nil {
		builder = builder.Filters(filter)
	}

	if lo.Must(flags.GetBool("all-fields")) {
		builder = builder.Fields(query.AllFields[R]())
	} else if names := lo.Must(flags.GetStringSlice("fields")); len(names) > 0 {
		fields, unknown := query.ParseFields[R](names)
		if len(unknown) > 0 {
			if strict {
				return builder, errUnknown("field", unknown[0], query.KnownFields[R]())
			}
			fields = query.FieldsOf(lo.FilterMap(names, func(name string, _ int) (R, bool) {
				name = strings.TrimSpace(name)
				return R(name), name != ""
			})...)
		}
		builder = builder.Fields(fields)
	}

	name := lo.Must(flags.GetString("sort"))
	sortField, ok := query.ParseSortField(name)
	if !ok {
		return builder, errUnknown("sort field", name, sortNames(query.SortFields[R]()))
	}
	if !lo.Contains(query.SortFields[R](), sortField) {
		if strict {
			return builder, errUnknown("sort field", name, sortNames(query.SortFields[R]()))
		}
		log.Warnf("%s can not be sorted by %s, keeping %s", query.Endpoint[R](), sortField, query.SortID)
	}
	builder = builder.Sort(sortField)

	if lo.Must(flags.GetBool("reverse")) {
		builder = builder.Reverse()
	}

	results := viper.GetInt(key.QueryResults)
	if flags.Changed("results") {
		results = lo.Must(flags.GetInt("results"))
	}
	builder = builder.Results(results).Page(lo.Must(flags.GetInt("page")))

	if lo.Must(flags.GetBool("count")) {
		builder = builder.Count()
	}
	if lo.Must(flags.GetBool("compact-filters")) {
		builder = builder.CompactFilters()
	}
	if lo.Must(flags.GetBool("normalized-filters")) {
		builder = builder.NormalizedFilters()
	}

	return builder, nil
}

// flagFilter reads --filter and --search. It returns nil when neither is set.
func flagFilter(flags *pflag.FlagSet) (query.Filter, error) {
	var filters []query.Filter

	if text := strings.TrimSpace(lo.Must(flags.GetString("filter"))); text != "" {
		filter, err := query.ParseFilter([]byte(text))
		switch {
		case err == nil:
		case json.Valid([]byte(text)):
			log.Warnf("sending filter as given: %s", err)
			filter = query.Raw(text)
		case strings.HasPrefix(text, "["):
			return nil, fmt.Errorf("invalid filter: %w", err)
		default:
			filter = query.Raw(text)
		}
		filters = append(filters, filter)
	}

	if text := lo.Must(flags.GetString("search")); text != "" {
		filters = append(filters, query.Search(text))
	}

	switch len(filters) {
	case 0:
		return nil, nil
	case 1:
		return filters[0], nil
	default:
		return query.And(filters...), nil
	}
}

// runSearch sends the query described by the flags and prints the response.
func runSearch[R query.Resource, T any](
	cmd *cobra.Command,
	send func(context.Context, query.Query[R]) (*query.Response[T], error),
	options ...func(query.QueryBuilder[R]) query.QueryBuilder[R],
) error {
	builder, err := queryBuilder[R](cmd.Flags())
	if err != nil {
		return err
	}

	for _, option := range options {
		builder = option(builder)
	}

	q := builder.Build()
	log.Infof("query %s: %s", q.Endpoint(), lo.Must(q.MarshalJSON()))

	var response *query.Response[T]
	err = tui.Wait(cmd.Context(), "Querying "+q.Endpoint(), func(ctx context.Context) (err error) {
		response, err = send(ctx, q)
		return err
	})
	if err != nil {
		return err
	}

	if err := printJSON(cmd, response); err != nil {
		return err
	}

	if response.More && util.IsTerminal() {
		_, _ = fmt.Fprintln(os.Stderr, style.Faint(fmt.Sprintf("More results on page %d", q.Page()+1)))
	}

	return nil
}

func completionFields(fields func(args []string) []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
		return fields(args), cobra.ShellCompDirectiveNoFileComp
	}
}
