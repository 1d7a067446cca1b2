package ca

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/timoth-y/fabnboot/cmd/fabnboot/shared"
	"github.com/timoth-y/fabnboot/pkg/fabric/config"
	"github.com/timoth-y/fabnboot/pkg/term"
)

// configCmd represents the ca config command.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Issues fabric-ca-server-config.yaml based on default configuration",
	Long: `Issues fabric-ca-server-config.yaml based on default configuration

Only leaves passed with flags are overwritten, the rest of default configuration stays untouched.

Examples:
  # Issue CA server configuration into its home directory:
  fabnboot ca config -o ./ca --port 7054 --ca.name ca-org1 --csr.cn ca.org1.example.com

  # Override arbitrary leaf:
  fabnboot ca config -o ./ca --set cfg.identities.allowremove=true`,

	RunE: shared.WithHandleErrors(issueConfig),
}

func init() {
	cmd.AddCommand(configCmd)

	configCmd.Flags().StringP("output", "o", ".", "Output directory or .yaml file path")
	configCmd.Flags().String("base", "", "Configuration file to use as the base instead of the default one")
	configCmd.Flags().IntP("port", "p", 0, "Listening port")
	configCmd.Flags().Bool("debug", false, "Enable debug logging")
	configCmd.Flags().Bool("tls.enabled", false, "Enable TLS on the listening port")
	configCmd.Flags().String("tls.certfile", "", "PEM-encoded TLS certificate file")
	configCmd.Flags().String("tls.keyfile", "", "PEM-encoded TLS key file")
	configCmd.Flags().String("ca.name", "", "Certificate Authority name")
	configCmd.Flags().String("csr.cn", "", "Common name field of the CA certificate signing request")
	configCmd.Flags().StringSlice("csr.hosts", nil, "Subject alternative names of the CA certificate")
	configCmd.Flags().String("db.type", "", "Registry database type: sqlite3, postgres or mysql")
	configCmd.Flags().String("db.datasource", "", "Registry database data source")
	configCmd.Flags().String("operations.listenaddress", "", "Operations server listening address")
	configCmd.Flags().StringArray("set", nil, "Override configuration leaf in form of 'dot.separated.path=value'")
}

func issueConfig(cmd *cobra.Command, _ []string) error {
	var (
		logger = term.NewLogger()
		flags  = cmd.Flags()
		cfg    config.CAServerConfig
	)

	output, _ := flags.GetString("output")
	base, _ := flags.GetString("base")
	port, _ := flags.GetInt("port")
	debug, _ := flags.GetBool("debug")
	certFile, _ := flags.GetString("tls.certfile")
	keyFile, _ := flags.GetString("tls.keyfile")
	caName, _ := flags.GetString("ca.name")
	cn, _ := flags.GetString("csr.cn")
	hosts, _ := flags.GetStringSlice("csr.hosts")
	dbType, _ := flags.GetString("db.type")
	dataSource, _ := flags.GetString("db.datasource")
	opsAddress, _ := flags.GetString("operations.listenaddress")

	overrides, err := shared.ParseOverrides(flags)
	if err != nil {
		return err
	}

	if len(base) != 0 {
		cfg, err = config.LoadCAServerConfig(base)
	} else {
		cfg, err = config.NewCAServerConfig()
	}

	if err != nil {
		return err
	}

	var tls = &config.CATLS{CertFile: certFile, KeyFile: keyFile}
	if flags.Changed("tls.enabled") {
		enabled, _ := flags.GetBool("tls.enabled")
		tls.Enabled = &enabled
	}

	cfg = cfg.
		SetPort(port).
		SetDebug(debug).
		SetTLS(tls).
		SetCA(&config.CA{Name: caName}).
		SetCSR(&config.CSR{CN: cn, Hosts: hosts}).
		SetDB(&config.DB{Type: dbType, DataSource: dataSource}).
		SetOperations(&config.CAOperations{ListenAddress: opsAddress})

	for _, o := range overrides {
		cfg = cfg.Set(o.Path, o.Value)
	}

	path, err := cfg.Save(output)
	if err != nil {
		return fmt.Errorf("failed to issue CA server configuration: %w", err)
	}

	logger.Successf("CA server configuration issued at %s", path)

	return nil
}
