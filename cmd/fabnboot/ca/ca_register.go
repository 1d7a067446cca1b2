package ca

import (
	"github.com/spf13/cobra"
	"github.com/timoth-y/fabnboot/cmd/fabnboot/shared"
	"github.com/timoth-y/fabnboot/pkg/fabric"
	"github.com/timoth-y/fabnboot/pkg/term"
)

// registerCmd represents the ca register command.
var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Registers new identity on Fabric CA server",
	Long: `Registers new identity on Fabric CA server

Registrar identity must be enrolled beforehand in the client home directory.

Examples:
  # Register orderer identity:
  fabnboot ca register -u http://localhost:7054 -H ./ca-admin \
    --id.name orderer --id.secret ordererpw --id.type orderer`,

	RunE: shared.WithHandleErrors(register),
}

func init() {
	cmd.AddCommand(registerCmd)

	addClientFlags(registerCmd.Flags())

	registerCmd.Flags().String("id.name", "", "Unique name of the identity")
	registerCmd.Flags().String("id.secret", "", "Enrollment secret for the identity")
	registerCmd.Flags().String("id.type", "", "Type of identity: client, peer, orderer, admin or user")
	registerCmd.Flags().String("id.affiliation", "", "Affiliation of the identity")
	registerCmd.Flags().StringSlice("id.attrs", nil, "Attributes of the identity, e.g. hf.Registrar.Roles=peer")
	registerCmd.Flags().Int("id.maxenrollments", 0, "Maximum number of times the secret can be reused to enroll")

	_ = registerCmd.MarkFlagRequired("id.name")
}

func register(cmd *cobra.Command, _ []string) error {
	var logger = term.NewLogger()

	client, err := fabric.NewCAClient().ApplyFlags(cmd.Flags())
	if err != nil {
		return err
	}

	if _, err = fabric.ClientRegistration(cmd.Context(), client, shared.FabricOptions(logger)...); err != nil {
		return err
	}

	name, _ := cmd.Flags().GetString("id.name")
	logger.Successf("Identity '%s' successfully registered", name)

	return nil
}
