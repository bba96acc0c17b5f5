package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vnkit/vnkit/filesystem"
	"github.com/vnkit/vnkit/key"
	"github.com/vnkit/vnkit/util"
)

func addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "", "Write the response to a file instead of stdout")
}

// printJSON writes v to stdout or to the file named by --output.
// Output is indented when output.pretty is set and it goes to a terminal or a file.
func printJSON(cmd *cobra.Command, v any) (err error) {
	var (
		out    io.Writer = cmd.OutOrStdout()
		pretty           = viper.GetBool(key.OutputPretty) && util.IsTerminal()
	)

	if flag := cmd.Flags().Lookup("output"); flag != nil {
		if path := lo.Must(cmd.Flags().GetString("output")); path != "" {
			file, err := filesystem.Create(path)
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := file.Close(); err == nil && closeErr != nil {
					err = fmt.Errorf("close %s: %w", path, closeErr)
				}
			}()

			out = file
			pretty = viper.GetBool(key.OutputPretty)
		}
	}

	encoder := json.NewEncoder(out)
	encoder.SetEscapeHTML(false)
	if pretty {
		encoder.SetIndent("", "  ")
	}

	return encoder.Encode(v)
}
