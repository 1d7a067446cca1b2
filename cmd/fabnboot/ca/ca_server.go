package ca

import (
	"github.com/spf13/cobra"
	"github.com/timoth-y/fabnboot/cmd/fabnboot/shared"
	"github.com/timoth-y/fabnboot/pkg/fabric"
	"github.com/timoth-y/fabnboot/pkg/term"
)

// serverCmd represents the ca server command.
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Starts Fabric CA server and keeps it running in foreground",
	Long: `Starts Fabric CA server and keeps it running in foreground

Command returns control once server is stopped with interrupt signal.

Examples:
  # Start CA server with bootstrap admin identity:
  fabnboot ca server --home ./ca --boot admin:adminpw

  # Start TLS-enabled CA server:
  fabnboot ca server --home ./ca --boot admin:adminpw --tls.enabled --csr.hosts ca.example.com,localhost`,

	RunE: shared.WithHandleErrors(server),
}

func init() {
	cmd.AddCommand(serverCmd)

	serverCmd.Flags().StringP("home", "H", "", "fabric-ca-server home directory")
	serverCmd.Flags().StringP("boot", "b", "", "Bootstrap admin identity in form of 'user:password'")
	serverCmd.Flags().String("address", "", "Listening address of fabric-ca-server")
	serverCmd.Flags().IntP("port", "p", 0, "Listening port of fabric-ca-server")
	serverCmd.Flags().StringP("ca.name", "n", "", "Certificate Authority name")
	serverCmd.Flags().String("ca.certfile", "", "PEM-encoded CA certificate file")
	serverCmd.Flags().String("ca.keyfile", "", "PEM-encoded CA key file")
	serverCmd.Flags().String("ca.chainfile", "", "PEM-encoded CA chain file")
	serverCmd.Flags().String("csr.cn", "", "Common name field of the CA certificate signing request")
	serverCmd.Flags().StringSlice("csr.hosts", nil, "Subject alternative names of the CA certificate")
	serverCmd.Flags().String("db.type", "", "Registry database type: sqlite3, postgres or mysql")
	serverCmd.Flags().String("db.datasource", "", "Registry database data source")
	serverCmd.Flags().Bool("tls.enabled", false, "Enable TLS on the listening port")
	serverCmd.Flags().String("tls.certfile", "", "PEM-encoded TLS certificate file")
	serverCmd.Flags().String("tls.keyfile", "", "PEM-encoded TLS key file")
	serverCmd.Flags().String("operations.listenaddress", "", "Operations server listening address")
	serverCmd.Flags().Bool("cfg.affiliations.allowremove", false, "Allow removal of affiliations")
	serverCmd.Flags().Bool("cfg.identities.allowremove", false, "Allow removal of identities")
	serverCmd.Flags().String("loglevel", "", "fabric-ca-server logging level")
	serverCmd.Flags().BoolP("debug", "d", false, "Enable fabric-ca-server debug logging")
}

func server(cmd *cobra.Command, _ []string) error {
	var logger = term.NewLogger()

	caServer, err := fabric.NewCAServer().ApplyFlags(cmd.Flags())
	if err != nil {
		return err
	}

	bootCtx, cancel := shared.BootContext(cmd.Context())
	defer cancel()

	handle, err := fabric.ServerBoot(bootCtx, caServer, shared.FabricOptions(logger)...)
	if err != nil {
		return err
	}

	logger.Successf("CA server is listening (pid %d), press Ctrl+C to stop it", handle.Pid())

	return shared.Supervise(cmd.Context(), handle, logger)
}
