package fabnboot

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/timoth-y/fabnboot/cmd/fabnboot/ca"
	"github.com/timoth-y/fabnboot/cmd/fabnboot/channel"
	"github.com/timoth-y/fabnboot/cmd/fabnboot/orderer"
	"github.com/timoth-y/fabnboot/cmd/fabnboot/shared"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "fabnboot",
	Short: "Tool for bootstrapping Hyperledger Fabric network components with local Fabric binaries",

	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, shared.ErrHandled) {
			rootCmd.PrintErrln(viper.GetString("cli.error_emoji"), "Error:", err)
		}

		stop()
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(shared.InitConfig)

	shared.AddGlobalFlags(rootCmd)

	rootCmd.AddCommand(checkCmd)

	ca.AddTo(rootCmd)
	orderer.AddTo(rootCmd)
	channel.AddTo(rootCmd)
}
