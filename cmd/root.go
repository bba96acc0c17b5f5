// Package cmd implements the vnkit command-line interface.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vnkit/vnkit/auth"
	"github.com/vnkit/vnkit/color"
	"github.com/vnkit/vnkit/constant"
	"github.com/vnkit/vnkit/icon"
	"github.com/vnkit/vnkit/key"
	"github.com/vnkit/vnkit/log"
	"github.com/vnkit/vnkit/network"
	"github.com/vnkit/vnkit/style"
	"github.com/vnkit/vnkit/version"
	"github.com/vnkit/vnkit/vndb"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Icons variant")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().String("token", "", "VNDB API token. Overrides the stored one")
	lo.Must0(viper.BindPFlag(key.APIToken, rootCmd.PersistentFlags().Lookup("token")))

	rootCmd.PersistentFlags().String("endpoint", "", "Base URL of the API")
	lo.Must0(viper.BindPFlag(key.APIEndpoint, rootCmd.PersistentFlags().Lookup("endpoint")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify(cmd.Context())
	})
}

var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "Query the VNDB visual novel database from the terminal",
	Long: constant.Banner + "\n" +
		style.New().Italic(true).Foreground(color.Accent).Render("    - Query the VNDB visual novel database from the terminal"),
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("version")) {
			versionCmd.Run(versionCmd, args)
			return
		}

		_ = cmd.Help()
	},
}

// Execute runs the command named on the command line. Interrupts cancel the running request.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		if vndb.IsUnauthorized(err) {
			_, _ = fmt.Fprintln(os.Stderr, style.Faint("Run \"vnkit auth login\" or pass --token"))
		}
		os.Exit(1)
	}
}

// resolveToken prefers the flag, environment and config file over the keyring.
func resolveToken() string {
	if token := viper.GetString(key.APIToken); token != "" {
		return token
	}

	token, err := auth.GetToken()
	if err != nil {
		if !errors.Is(err, auth.ErrNoToken) {
			log.Warn(err)
		}
		return ""
	}

	return token
}

func newClient() *vndb.Client {
	return newClientWithToken(resolveToken())
}

func newClientWithToken(token string) *vndb.Client {
	return vndb.New(
		vndb.WithEndpoint(viper.GetString(key.APIEndpoint)),
		vndb.WithToken(token),
		vndb.WithUserAgent(viper.GetString(key.APIUserAgent)),
		vndb.WithHTTPClient(network.NewClient(time.Duration(viper.GetInt(key.APITimeout))*time.Second)),
	)
}
