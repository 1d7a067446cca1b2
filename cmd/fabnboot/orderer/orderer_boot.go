package orderer

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/timoth-y/fabnboot/cmd/fabnboot/shared"
	"github.com/timoth-y/fabnboot/pkg/fabric"
	"github.com/timoth-y/fabnboot/pkg/process"
	"github.com/timoth-y/fabnboot/pkg/term"
)

// bootCmd represents the orderer boot command.
var bootCmd = &cobra.Command{
	Use:   "boot",
	Short: "Boots orderer with existing configuration and keeps it running in foreground",
	Long: `Boots orderer with existing configuration and keeps it running in foreground

Examples:
  # Boot orderer with configuration from ./orderer/orderer.yaml:
  fabnboot orderer boot -c ./orderer`,

	RunE: shared.WithHandleErrors(boot),
}

// startCmd represents the orderer start command.
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Issues orderer.yaml and boots orderer with it",
	Long: `Issues orderer.yaml and boots orderer with it, keeping orderer running in foreground

Accepts the same flags as 'orderer issue'.

Examples:
  # Start orderer without system channel:
  fabnboot orderer start -o ./orderer --msp-id OrdererMSP --msp-dir ./orderer/msp --channel-participation`,

	RunE: shared.WithHandleErrors(start),
}

func init() {
	cmd.AddCommand(bootCmd)
	cmd.AddCommand(startCmd)

	bootCmd.Flags().StringP("config-path", "c", ".", "orderer.yaml file or directory containing it")

	addConfigFlags(startCmd.Flags())
}

func boot(cmd *cobra.Command, _ []string) error {
	var logger = term.NewLogger()

	cfgPath, _ := cmd.Flags().GetString("config-path")

	return supervise(cmd, logger, func(ctx context.Context) (*process.Handle, error) {
		return fabric.BootOrderer(ctx, cfgPath, shared.FabricOptions(logger)...)
	})
}

func start(cmd *cobra.Command, _ []string) error {
	var logger = term.NewLogger()

	cfg, err := configFromFlags(cmd.Flags())
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")

	return supervise(cmd, logger, func(ctx context.Context) (*process.Handle, error) {
		return fabric.StartOrderer(ctx, cfg, output, shared.FabricOptions(logger)...)
	})
}

func supervise(
	cmd *cobra.Command,
	logger *term.Logger,
	bootFn func(ctx context.Context) (*process.Handle, error),
) error {
	ctx, cancel := shared.BootContext(cmd.Context())
	defer cancel()

	handle, err := bootFn(ctx)
	if err != nil {
		return err
	}

	logger.Successf("Orderer is serving requests (pid %d), press Ctrl+C to stop it", handle.Pid())

	return shared.Supervise(cmd.Context(), handle, logger)
}
