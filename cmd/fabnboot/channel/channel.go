package channel

import (
	"github.com/spf13/cobra"
)

// cmd represents the channel command.
var cmd = &cobra.Command{
	Use:   "channel",
	Short: "Provides methods for channel artifacts generation and orderer channel participation",
	Long: `Provides methods for channel artifacts generation and orderer channel participation

Examples:
  # Generate genesis block:
  fabnboot channel genesis --profile TwoOrgsApplicationGenesis --channelID mychannel -o ./channel-artifacts/mychannel.block

  # Join orderer to the channel:
  fabnboot channel join --orderer-address localhost:7053 --channelID mychannel --config-block ./channel-artifacts/mychannel.block`,
}

// AddTo adds channel commands to `root` cobra.Command.
func AddTo(root *cobra.Command) {
	root.AddCommand(cmd)
}
