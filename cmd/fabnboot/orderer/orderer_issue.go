package orderer

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/timoth-y/fabnboot/cmd/fabnboot/shared"
	"github.com/timoth-y/fabnboot/pkg/fabric"
	"github.com/timoth-y/fabnboot/pkg/fabric/config"
	"github.com/timoth-y/fabnboot/pkg/term"
)

// issueCmd represents the orderer issue command.
var issueCmd = &cobra.Command{
	Use:   "issue",
	Short: "Issues orderer.yaml based on default configuration",
	Long: `Issues orderer.yaml based on default configuration

Only leaves passed with flags are overwritten, the rest of default configuration stays untouched.

Examples:
  # Issue orderer configuration:
  fabnboot orderer issue -o ./orderer --listen-port 7050 --msp-id OrdererMSP

  # Issue configuration with TLS and channel participation API enabled:
  fabnboot orderer issue -o ./orderer --tls --tls.cert ./tls/server.crt --tls.key ./tls/server.key \
    --tls.rootcas ./tls/ca.crt --channel-participation --admin-address 0.0.0.0:7053

  # Override arbitrary leaf:
  fabnboot orderer issue -o ./orderer --set General.Cluster.SendBufferSize=100`,

	RunE: shared.WithHandleErrors(issue),
}

func init() {
	cmd.AddCommand(issueCmd)

	addConfigFlags(issueCmd.Flags())
}

// addConfigFlags registers flags describing orderer configuration.
func addConfigFlags(flags *pflag.FlagSet) {
	flags.StringP("output", "o", ".", "Output directory or .yaml file path")
	flags.String("base", "", "Configuration file to use as the base instead of the default one")
	flags.String("listen-address", "", "Orderer listening address")
	flags.IntP("listen-port", "p", 0, "Orderer listening port")
	flags.String("msp-id", "", "Orderer organization MSP ID")
	flags.String("msp-dir", "", "Orderer local MSP directory")
	flags.String("bootstrap-file", "", "Genesis block file, orderer boots without system channel when omitted")
	flags.Bool("tls", false, "Enable TLS on the listening port")
	flags.String("tls.cert", "", "TLS certificate file")
	flags.String("tls.key", "", "TLS private key file")
	flags.StringSlice("tls.rootcas", nil, "TLS root CA certificate files")
	flags.String("ledger-location", "", "Ledger storage directory")
	flags.String("admin-address", "", "Admin server listening address")
	flags.String("operations-address", "", "Operations server listening address")
	flags.String("metrics-provider", "", "Metrics provider: statsd, prometheus or disabled")
	flags.Bool("channel-participation", false, "Enable channel participation API")
	flags.String("wal-dir", "", "Raft write-ahead log directory")
	flags.String("snap-dir", "", "Raft snapshot directory")
	flags.StringArray("set", nil, "Override configuration leaf in form of 'dot.separated.path=value'")
}

// configFromFlags builds orderer configuration from flags registered with addConfigFlags.
func configFromFlags(flags *pflag.FlagSet) (config.OrdererConfig, error) {
	var (
		cfg config.OrdererConfig
		err error
	)

	base, _ := flags.GetString("base")
	listenAddress, _ := flags.GetString("listen-address")
	listenPort, _ := flags.GetInt("listen-port")
	mspID, _ := flags.GetString("msp-id")
	mspDir, _ := flags.GetString("msp-dir")
	bootstrapFile, _ := flags.GetString("bootstrap-file")
	tlsCert, _ := flags.GetString("tls.cert")
	tlsKey, _ := flags.GetString("tls.key")
	tlsRootCAs, _ := flags.GetStringSlice("tls.rootcas")
	ledger, _ := flags.GetString("ledger-location")
	adminAddress, _ := flags.GetString("admin-address")
	opsAddress, _ := flags.GetString("operations-address")
	metricsProvider, _ := flags.GetString("metrics-provider")
	walDir, _ := flags.GetString("wal-dir")
	snapDir, _ := flags.GetString("snap-dir")

	overrides, err := shared.ParseOverrides(flags)
	if err != nil {
		return cfg, err
	}

	if len(base) != 0 {
		cfg, err = config.LoadOrdererConfig(base)
	} else {
		cfg, err = config.NewOrdererConfig()
	}

	if err != nil {
		return cfg, err
	}

	var tls = &config.TLS{
		PrivateKey:  tlsKey,
		Certificate: tlsCert,
		RootCAs:     tlsRootCAs,
	}

	if flags.Changed("tls") {
		enabled, _ := flags.GetBool("tls")
		tls.Enabled = &enabled
	}

	var participation = &config.ChannelParticipation{}
	if flags.Changed("channel-participation") {
		enabled, _ := flags.GetBool("channel-participation")
		participation.Enabled = &enabled

		if enabled && len(bootstrapFile) == 0 {
			cfg = cfg.SetGeneral(&config.General{BootstrapMethod: "none"})
		}
	}

	cfg = cfg.
		SetListenAddress(listenAddress).
		SetListenPort(listenPort).
		SetLocalMSPID(mspID).
		SetLocalMSPDir(mspDir).
		SetBootstrapFile(bootstrapFile).
		SetTLS(tls).
		SetFileLedger(&config.FileLedger{Location: ledger}).
		SetAdmin(&config.Admin{ListenAddress: adminAddress}).
		SetOperations(&config.Operations{ListenAddress: opsAddress}).
		SetMetrics(&config.Metrics{Provider: metricsProvider}).
		SetChannelParticipation(participation).
		SetConsensus(&config.Consensus{WALDir: walDir, SnapDir: snapDir})

	for _, o := range overrides {
		cfg = cfg.Set(o.Path, o.Value)
	}

	return cfg, cfg.Err()
}

func issue(cmd *cobra.Command, _ []string) error {
	var logger = term.NewLogger()

	cfg, err := configFromFlags(cmd.Flags())
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")

	path, err := fabric.IssueOrderer(cfg, output, fabric.WithLogger(logger))
	if err != nil {
		return err
	}

	logger.Successf("Orderer configuration issued at %s", path)

	return nil
}
