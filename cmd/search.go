package cmd

import (
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(searchCmd)
	addQueryFlags(searchCmd)

	lo.Must0(searchCmd.RegisterFlagCompletionFunc("fields", completionFields(func(args []string) []string {
		if len(args) == 0 {
			return nil
		}
		return resources[args[0]].fields
	})))
	lo.Must0(searchCmd.RegisterFlagCompletionFunc("sort", completionFields(func(args []string) []string {
		if len(args) == 0 {
			return nil
		}
		return sortNames(resources[args[0]].sorts)
	})))
}

var searchCmd = &cobra.Command{
	Use:   "search <resource>",
	Short: "Query a database resource",
	Long: `Query one of the database resources and print the response as JSON.

Resources: ` + strings.Join(resourceNames(true), ", ") + `

Filters use the API syntax, either as a JSON array or as a compact filter string.`,
	Example: `  vnkit search vn --search "Saya no Uta" --fields title,released,rating
  vnkit search vn --filter '["and",["olang","!=","en"],["released",">=","2020-01-01"]]' --sort rating -r
  vnkit search character --filter '["vn","=",["id","=","v17"]]' -A --count`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionResources(true),
	Run: func(cmd *cobra.Command, args []string) {
		r, err := lookupResource(args[0], true)
		handleErr(err)
		handleErr(r.search(cmd))
	},
}
