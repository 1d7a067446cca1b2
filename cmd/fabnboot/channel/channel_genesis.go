package channel

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/timoth-y/fabnboot/cmd/fabnboot/shared"
	"github.com/timoth-y/fabnboot/pkg/fabric"
	"github.com/timoth-y/fabnboot/pkg/term"
)

// genesisCmd represents the channel genesis command.
var genesisCmd = &cobra.Command{
	Use:   "genesis",
	Short: "Generates channel genesis block with configtxgen",
	Long: `Generates channel genesis block with configtxgen

Examples:
  # Generate application channel genesis block using ./configtx.yaml:
  fabnboot channel genesis --profile TwoOrgsApplicationGenesis --channelID mychannel \
    --configPath . -o ./channel-artifacts/mychannel.block`,

	RunE: shared.WithHandleErrors(genesis),
}

func init() {
	cmd.AddCommand(genesisCmd)

	genesisCmd.Flags().String("profile", "", "configtx.yaml profile to use for generation (required)")
	genesisCmd.Flags().StringP("channelID", "C", "", "Channel name (required)")
	genesisCmd.Flags().String("configPath", "", "Directory containing configtx.yaml, FABRIC_CFG_PATH is used when omitted")
	genesisCmd.Flags().StringP("outputBlock", "o", "", "Path to write the genesis block to (required)")

	_ = genesisCmd.MarkFlagRequired("profile")
	_ = genesisCmd.MarkFlagRequired("channelID")
	_ = genesisCmd.MarkFlagRequired("outputBlock")
}

func genesis(cmd *cobra.Command, _ []string) error {
	var (
		logger = shared.NewLogger()
		err    error
		profile, channelID, configPath, outputBlock string
	)

	if profile, err = cmd.Flags().GetString("profile"); err != nil {
		return fmt.Errorf("%w: failed to parse 'profile' parameter", term.ErrInvalidArgs)
	}

	if channelID, err = cmd.Flags().GetString("channelID"); err != nil {
		return fmt.Errorf("%w: failed to parse 'channelID' parameter", term.ErrInvalidArgs)
	}

	if configPath, err = cmd.Flags().GetString("configPath"); err != nil {
		return fmt.Errorf("%w: failed to parse 'configPath' parameter", term.ErrInvalidArgs)
	}

	if outputBlock, err = cmd.Flags().GetString("outputBlock"); err != nil {
		return fmt.Errorf("%w: failed to parse 'outputBlock' parameter", term.ErrInvalidArgs)
	}

	return logger.Stream(func() error {
		return fabric.CreateGenesisBlock(cmd.Context(),
			profile, channelID, configPath, outputBlock,
			shared.FabricOptions(logger)...,
		)
	},
		fmt.Sprintf("Generating genesis block for channel '%s'", channelID),
		fmt.Sprintf("Genesis block for channel '%s' written to %s", channelID, outputBlock),
	)
}
