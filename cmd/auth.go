package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vnkit/vnkit/auth"
	"github.com/vnkit/vnkit/color"
	"github.com/vnkit/vnkit/icon"
	"github.com/vnkit/vnkit/style"
	"github.com/vnkit/vnkit/tui"
	"github.com/vnkit/vnkit/vndb"
)

func init() {
	rootCmd.AddCommand(authCmd)
}

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the stored API token",
}

func init() {
	authCmd.AddCommand(authLoginCmd)
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Check an API token and store it in the system keyring",
	Long: `Check an API token and store it in the system keyring.
Tokens are created at https://vndb.org/u/tokens`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		var token string
		handleErr(survey.AskOne(&survey.Password{
			Message: "API token:",
		}, &token, survey.WithValidator(survey.Required)))
		token = strings.TrimSpace(token)

		var info *vndb.AuthInfo
		err := tui.Wait(cmd.Context(), "Checking token", func(ctx context.Context) (err error) {
			info, err = newClientWithToken(token).AuthInfo(ctx)
			return err
		})
		handleErr(err)
		handleErr(auth.SetToken(token))

		fmt.Printf(
			"%s logged in as %s %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(info.Username),
			style.Faint(fmt.Sprintf("(%s)", info.ID)),
		)
		if !info.Can(vndb.PermissionListWrite) {
			fmt.Printf("%s token can not change lists\n", style.Fg(color.Yellow)(icon.Get(icon.Warn)))
		}
	},
}

func init() {
	authCmd.AddCommand(authLogoutCmd)
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored API token",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(auth.DeleteToken())
		fmt.Printf("%s removed the stored token\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

func init() {
	authCmd.AddCommand(authInfoCmd)
	authInfoCmd.Flags().BoolP("json", "j", false, "Print the token information as JSON")
	authInfoCmd.SetOut(os.Stdout)
}

var authInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the user and permissions of the current token",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()
		if !client.Authenticated() {
			handleErr(auth.ErrNoToken)
		}

		var info *vndb.AuthInfo
		err := tui.Wait(cmd.Context(), "Checking token", func(ctx context.Context) (err error) {
			info, err = client.AuthInfo(ctx)
			return err
		})
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(printJSON(cmd, info))
			return
		}

		permissions := lo.Map(info.Permissions, func(p vndb.Permission, _ int) string { return string(p) })
		if len(permissions) == 0 {
			permissions = []string{"none"}
		}

		cmd.Printf("%s %s %s\n", icon.Get(icon.Key), style.Fg(color.Purple)(info.Username), style.Faint(info.ID))
		cmd.Printf("%s %s\n", style.Faint("permissions"), strings.Join(permissions, ", "))
	},
}
