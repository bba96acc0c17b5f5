package cmd

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vnkit/vnkit/key"
	"github.com/vnkit/vnkit/open"
)

func init() {
	rootCmd.AddCommand(openCmd)
	openCmd.Flags().BoolP("print", "p", false, "Print the URL instead of opening it")
}

var openCmd = &cobra.Command{
	Use:     "open <id>",
	Short:   "Open the website page of an entry",
	Long:    "Open the website page of a visual novel, release, producer, character, staff, tag, trait or user.",
	Example: "  vnkit open v17",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		page, err := open.Page(args[0])
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("print")) {
			fmt.Println(page)
			return
		}

		handleErr(open.StartWith(page, viper.GetString(key.CliBrowser)))
	},
}
