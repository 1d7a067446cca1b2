package channel

import (
	"github.com/spf13/cobra"
	"github.com/timoth-y/fabnboot/cmd/fabnboot/shared"
	"github.com/timoth-y/fabnboot/pkg/fabric"
)

// joinCmd represents the channel join command.
var joinCmd = &cobra.Command{
	Use:   "join",
	Short: "Joins orderer to the channel via channel participation API",
	Long: `Joins orderer to the channel via channel participation API

Examples:
  # Join orderer to the channel:
  fabnboot channel join --orderer-address localhost:7053 --channelID mychannel \
    --config-block ./channel-artifacts/mychannel.block \
    --ca-file ./tls/ca.crt --client-cert ./tls/admin.crt --client-key ./tls/admin.key`,

	RunE: shared.WithHandleErrors(join),
}

func init() {
	cmd.AddCommand(joinCmd)

	joinCmd.Flags().String("orderer-address", "", "Admin endpoint of the orderer (required)")
	joinCmd.Flags().String("ca-file", "", "TLS CA certificate of the orderer admin endpoint")
	joinCmd.Flags().String("client-cert", "", "Client TLS certificate for mutual TLS")
	joinCmd.Flags().String("client-key", "", "Client TLS private key for mutual TLS")
	joinCmd.Flags().StringP("channelID", "C", "", "Channel name (required)")
	joinCmd.Flags().StringP("config-block", "b", "", "Genesis or latest config block of the channel (required)")

	_ = joinCmd.MarkFlagRequired("orderer-address")
	_ = joinCmd.MarkFlagRequired("channelID")
	_ = joinCmd.MarkFlagRequired("config-block")
}

func join(cmd *cobra.Command, _ []string) error {
	var logger = shared.NewLogger()

	admin, err := fabric.NewOSNAdmin().ApplyFlags(cmd.Flags())
	if err != nil {
		return err
	}

	if _, err = fabric.OSNAdminJoin(cmd.Context(), admin, shared.FabricOptions(logger)...); err != nil {
		return err
	}

	channelID, _ := cmd.Flags().GetString("channelID")
	logger.Successf("Orderer joined channel '%s'", channelID)

	return nil
}
