package orderer

import (
	"github.com/spf13/cobra"
)

// cmd represents the orderer command.
var cmd = &cobra.Command{
	Use:   "orderer",
	Short: "Provides methods for orderer configuration and startup",
	Long: `Provides methods for orderer configuration and startup

Examples:
  # Issue orderer configuration:
  fabnboot orderer issue -o ./orderer --msp-id OrdererMSP --msp-dir ./orderer/msp

  # Boot orderer with previously issued configuration:
  fabnboot orderer boot -c ./orderer

  # Issue configuration and boot orderer at once:
  fabnboot orderer start -o ./orderer --msp-id OrdererMSP --channel-participation`,
}

// AddTo adds orderer commands to `root` cobra.Command.
func AddTo(root *cobra.Command) {
	root.AddCommand(cmd)
}
