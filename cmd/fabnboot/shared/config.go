package shared

import (
	"strings"

	"github.com/spf13/viper"
)

// InitConfig configures viper from environment variables and configuration files.
func InitConfig() {
	viper.SetEnvPrefix("fabnboot")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("logging", "info")

	viper.SetDefault("fabric.bin_path", "")

	viper.SetDefault("process.timeout", "0s")
	viper.SetDefault("process.boot_timeout", "60s")

	viper.SetDefault("cli.success_emoji", "👍")
	viper.SetDefault("cli.ok_emoji", "✔")
	viper.SetDefault("cli.error_emoji", "❌")
	viper.SetDefault("cli.warning_emoji", "❗")
	viper.SetDefault("cli.info_emoji", "ℹ")

	viper.SetConfigType("yaml")
	if len(ConfigFile) != 0 {
		viper.SetConfigFile(ConfigFile)
	} else {
		viper.SetConfigName(".fabnboot")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
	}

	_ = viper.ReadInConfig()
}
