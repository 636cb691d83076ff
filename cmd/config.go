package cmd

import (
	logger "github.com/PolarWolf314/sealkit/internal/logging"
	"github.com/spf13/cobra"
)

var (
	configVerbose bool
	configDebug   bool
	ConfigLogger  logger.Logger

	// ConfigCmd is the top-level config command.
	ConfigCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage sealkit configuration",
		Long: `Manages the certificate used for sealing and other settings stored in
$XDG_CONFIG_HOME/sealkit/config.toml.

Examples:
  # Point sealkit at a folder of sealing certificates
  sealkit config set-cert-folder ~/certs

  # See which certificates are available
  sealkit config list-certs

  # Pick the certificate to seal with
  sealkit config select-cert prod.pem

  # Show the current configuration
  sealkit config show`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ConfigLogger = logger.Logger{
				Verbose: configVerbose,
				Debug:   configDebug,
			}
			ConfigLogger.Debugf("Initializing config command with verbose=%t, debug=%t", configVerbose, configDebug)
		},
	}
)

func init() {
	ConfigCmd.PersistentFlags().BoolVarP(&configVerbose, "verbose", "v", false, "enable verbose output")
	ConfigCmd.PersistentFlags().BoolVarP(&configDebug, "debug", "d", false, "enable debug output")

	ConfigCmd.AddCommand(setCertFolderCmd)
	ConfigCmd.AddCommand(selectCertCmd)
	ConfigCmd.AddCommand(listCertsCmd)
	ConfigCmd.AddCommand(configShowCmd)
}

// GetConfigCmd returns the ConfigCmd for testing.
func GetConfigCmd() *cobra.Command {
	return ConfigCmd
}

// ResetConfigState resets all config command flags to their defaults for testing.
func ResetConfigState() {
	configVerbose = false
	configDebug = false
	resetListCertsState()
	resetConfigShowState()
	resetCobraFlagState(ConfigCmd)
}
