package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vnkit/vnkit/query"
	"github.com/vnkit/vnkit/util"
	"github.com/vnkit/vnkit/vndb"
)

// resource is what the CLI knows about one API resource.
type resource struct {
	fields []string
	sorts  []query.SortField
	record any

	// search is nil for resources that can not be queried with POST.
	search func(cmd *cobra.Command) error
}

var resources = map[string]resource{
	query.Endpoint[query.VN](): {
		fields: query.KnownFields[query.VN](),
		sorts:  query.SortFields[query.VN](),
		record: &vndb.VisualNovel{},
		search: func(cmd *cobra.Command) error { return runSearch(cmd, newClient().VN) },
	},
	query.Endpoint[query.Release](): {
		fields: query.KnownFields[query.Release](),
		sorts:  query.SortFields[query.Release](),
		record: &vndb.Release{},
		search: func(cmd *cobra.Command) error { return runSearch(cmd, newClient().Releases) },
	},
	query.Endpoint[query.Producer](): {
		fields: query.KnownFields[query.Producer](),
		sorts:  query.SortFields[query.Producer](),
		record: &vndb.Producer{},
		search: func(cmd *cobra.Command) error { return runSearch(cmd, newClient().Producers) },
	},
	query.Endpoint[query.Character](): {
		fields: query.KnownFields[query.Character](),
		sorts:  query.SortFields[query.Character](),
		record: &vndb.Character{},
		search: func(cmd *cobra.Command) error { return runSearch(cmd, newClient().Characters) },
	},
	query.Endpoint[query.Staff](): {
		fields: query.KnownFields[query.Staff](),
		sorts:  query.SortFields[query.Staff](),
		record: &vndb.Staff{},
		search: func(cmd *cobra.Command) error { return runSearch(cmd, newClient().Staff) },
	},
	query.Endpoint[query.Tag](): {
		fields: query.KnownFields[query.Tag](),
		sorts:  query.SortFields[query.Tag](),
		record: &vndb.Tag{},
		search: func(cmd *cobra.Command) error { return runSearch(cmd, newClient().Tags) },
	},
	query.Endpoint[query.Trait](): {
		fields: query.KnownFields[query.Trait](),
		sorts:  query.SortFields[query.Trait](),
		record: &vndb.Trait{},
		search: func(cmd *cobra.Command) error { return runSearch(cmd, newClient().Traits) },
	},
	query.Endpoint[query.UList](): {
		fields: query.KnownFields[query.UList](),
		sorts:  query.SortFields[query.UList](),
		record: &vndb.UListEntry{},
	},
	"user": {
		fields: query.KnownFields[query.User](),
		record: &vndb.User{},
	},
	"ulist_labels": {
		fields: query.KnownFields[query.Label](),
		record: &vndb.LabelInfo{},
	},
}

func resourceNames(searchable bool) []string {
	names := lo.Keys(lo.PickBy(resources, func(_ string, r resource) bool {
		return !searchable || r.search != nil
	}))
	sort.Strings(names)
	return names
}

func lookupResource(name string, searchable bool) (resource, error) {
	r, ok := resources[strings.ToLower(name)]
	if !ok || (searchable && r.search == nil) {
		return resource{}, errUnknown("resource", name, resourceNames(searchable))
	}
	return r, nil
}

func completionResources(searchable bool) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return resourceNames(searchable), cobra.ShellCompDirectiveNoFileComp
	}
}

func sortNames(sorts []query.SortField) []string {
	return lo.Map(sorts, func(s query.SortField, _ int) string { return string(s) })
}

// summary describes the size of the field registry and the sort whitelist.
func (r resource) summary() string {
	fields := util.Quantify(len(r.fields), "field", "fields")
	if len(r.sorts) == 0 {
		return fields
	}
	return fmt.Sprintf("%s, sort by %s", fields, strings.Join(sortNames(r.sorts), ", "))
}
