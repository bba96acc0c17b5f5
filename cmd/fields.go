package cmd

import (
	"os"
	"sort"

	"github.com/invopop/jsonschema"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vnkit/vnkit/color"
	"github.com/vnkit/vnkit/style"
)

// matchFields ranks fields by how closely they match text. The best match comes first.
func matchFields(text string, fields []string) []string {
	ranks := fuzzy.RankFindNormalizedFold(text, fields)
	sort.Stable(ranks)

	return lo.Map(ranks, func(r fuzzy.Rank, _ int) string { return r.Target })
}

func init() {
	rootCmd.AddCommand(fieldsCmd)
	fieldsCmd.Flags().StringP("match", "m", "", "Only show fields that fuzzy match this text")
	fieldsCmd.Flags().BoolP("sort", "s", false, "Show the fields the resource can be sorted on instead")
	fieldsCmd.SetOut(os.Stdout)
}

var fieldsCmd = &cobra.Command{
	Use:   "fields [resource]",
	Short: "List the fields that can be selected for a resource",
	Long: `List the fields that can be selected for a resource.
Without a resource every resource is listed.`,
	Example:           `  vnkit fields vn --match staf`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionResources(false),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			for _, name := range resourceNames(false) {
				cmd.Println(style.Fg(color.Purple)(name), style.Faint(resources[name].summary()))
			}
			return
		}

		r, err := lookupResource(args[0], false)
		handleErr(err)

		names := r.fields
		if lo.Must(cmd.Flags().GetBool("sort")) {
			names = sortNames(r.sorts)
		}

		if text := lo.Must(cmd.Flags().GetString("match")); text != "" {
			names = matchFields(text, names)
		}

		for _, name := range names {
			cmd.Println(name)
		}
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.SetOut(os.Stdout)
}

var schemaCmd = &cobra.Command{
	Use:               "schema <resource>",
	Short:             "Print the JSON schema of the records of a resource",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionResources(false),
	Run: func(cmd *cobra.Command, args []string) {
		r, err := lookupResource(args[0], false)
		handleErr(err)

		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		handleErr(printJSON(cmd, reflector.Reflect(r.record)))
	},
}
