package shared

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	ConfigFile string
	Quiet      bool
)

func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(
		&ConfigFile,
		"config", "",
		"CLI configuration file (default is ./.fabnboot.yaml)",
	)

	cmd.PersistentFlags().String(
		"bin-path", "",
		"Directory containing Fabric binaries, $PATH is used when omitted",
	)

	cmd.PersistentFlags().Duration(
		"timeout", 0,
		"Time limit for Fabric binaries to complete or become ready, e.g. 30s (0 means no limit)",
	)

	cmd.PersistentFlags().String(
		"log-level", "",
		"Logging level: debug, info, warning or error",
	)

	cmd.PersistentFlags().BoolVarP(
		&Quiet,
		"quiet", "q",
		false,
		"Don't stream output of Fabric binaries, offer to view it on failure instead",
	)

	_ = viper.BindPFlag("fabric.bin_path", cmd.PersistentFlags().Lookup("bin-path"))
	_ = viper.BindPFlag("process.timeout", cmd.PersistentFlags().Lookup("timeout"))
	_ = viper.BindPFlag("logging", cmd.PersistentFlags().Lookup("log-level"))
}
